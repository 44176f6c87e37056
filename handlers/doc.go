// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP and websocket request handlers for the
Themis API.

# Handler Types

Each handler is a struct with its dependencies injected through a
constructor:

  - UserHandler: participant identity issuance
  - PollHandler: poll lifecycle (create, list, add options, reveal,
    delete, clone)
  - VotingHandler: joining, vote submission, readiness
  - ResultsHandler: status and option reads
  - WSHandler: poll and lobby websocket channels

# Poll Lifecycle

Polls progress through two phases: collecting → revealed

	POST /polls                → CreatePoll (broadcasts poll_created on the lobby)
	POST /polls/{id}/join      → JoinPoll (idempotent per participant)
	POST /polls/{id}/options   → AddOption (collecting only)
	PUT  /polls/{id}/vote      → SubmitVote (partial sets allowed)
	POST /polls/{id}/ready     → MarkReady (reveals when everyone is ready)
	POST /polls/{id}/reveal    → RevealPoll (creator-initiated early reveal)
	GET  /polls/{id}/status    → GetStatus (winner appears after reveal)
	DELETE /polls/{id}         → DeletePoll
	POST /polls/{id}/clone     → ClonePoll (options only, fresh ids)

# Websocket Channels

	GET /ws/polls/{id} → PollSocket (option_added, ready_counts, reveal,
	                     participant_joined, participant_left)
	GET /ws/lobby      → LobbySocket (poll_created, poll_deleted, poll_cloned)

A poll socket accepts {"type":"request_status"} and answers with a
status frame on that connection; the lobby socket is broadcast-only.

# Error Mapping

Session errors map to statuses in domainError: not found → 404,
forbidden → 403, poll closed → 409, invalid input → 400.
*/
package handlers
