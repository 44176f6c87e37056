// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, domain, and event types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateUserRequest: name
  - CreatePollRequest: title, creator_id, princess_mode
  - JoinPollRequest: userId
  - AddOptionRequest: label
  - VoteRequest: userId, entries ([]VoteEntry)
  - ReadyRequest: userId
  - ClonePollRequest: creator_id

# Response Types

Types for JSON responses:

  - UserResponse: userId, name
  - PollResponse: pollId, title, created_at, winner_id, creator_id, princess_mode
  - JoinPollResponse: participantId
  - OptionResponse: id, label
  - OKResponse: ok
  - ReadyResponse: readyCount, totalParticipants
  - StatusResponse: title, counts, winner, creator_id, princess_mode
  - RevealResponse: winner
  - ErrorResponse: error, message

# Domain Types

  - Poll: poll metadata, lifecycle phase, winner once revealed
  - Option: candidate item with label, append-only within its poll
  - VoteEntry: one participant's rating-or-veto for one option

# Events

Websocket frames form a closed set of tagged variants, each struct
carrying a fixed "type" tag set by its constructor:

Poll channel: option_added, ready_counts, reveal, participant_joined,
participant_left, status (reply to request_status only).

Lobby channel: poll_created, poll_deleted, poll_cloned.

# Constants

Lifecycle phases:

	PhaseCollecting = "collecting"
	PhaseRevealed   = "revealed"

Rating scale:

	RatingMin = 1
	RatingMax = 10
*/
package models
