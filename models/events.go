// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Broadcast event type tags. Every frame on a websocket channel is one
// of these variants, identified by its "type" field.
const (
	EventOptionAdded       = "option_added"
	EventReadyCounts       = "ready_counts"
	EventReveal            = "reveal"
	EventParticipantJoined = "participant_joined"
	EventParticipantLeft   = "participant_left"
	EventStatus            = "status"

	EventPollCreated = "poll_created"
	EventPollDeleted = "poll_deleted"
	EventPollCloned  = "poll_cloned"
)

// Poll-scoped events

type OptionAddedEvent struct {
	Type   string         `json:"type"`
	Option OptionResponse `json:"option"`
}

type ReadyCountsEvent struct {
	Type         string `json:"type"`
	Ready        int    `json:"ready"`
	Participants int    `json:"participants"`
}

// RevealEvent deliberately carries no winner; clients fetch it from the
// status endpoint once the event arrives.
type RevealEvent struct {
	Type string `json:"type"`
}

type ParticipantJoinedEvent struct {
	Type         string `json:"type"`
	Participants int    `json:"participants"`
}

type ParticipantLeftEvent struct {
	Type         string `json:"type"`
	Participants int    `json:"participants"`
}

// StatusEvent is a point-in-time snapshot sent to a single connection
// in reply to a request_status client message.
type StatusEvent struct {
	Type         string `json:"type"`
	Participants int    `json:"participants"`
	Ready        int    `json:"ready"`
	OptionCount  int    `json:"optionCount"`
}

// Lobby-scoped events

type PollCreatedEvent struct {
	Type string       `json:"type"`
	Poll PollResponse `json:"poll"`
}

type PollDeletedEvent struct {
	Type   string `json:"type"`
	PollID string `json:"pollId"`
}

type PollClonedEvent struct {
	Type string       `json:"type"`
	Poll PollResponse `json:"poll"`
}

func NewOptionAdded(opt Option) OptionAddedEvent {
	return OptionAddedEvent{
		Type:   EventOptionAdded,
		Option: OptionResponse{ID: opt.ID, Label: opt.Label},
	}
}

func NewReadyCounts(ready, participants int) ReadyCountsEvent {
	return ReadyCountsEvent{Type: EventReadyCounts, Ready: ready, Participants: participants}
}

func NewReveal() RevealEvent {
	return RevealEvent{Type: EventReveal}
}

func NewParticipantJoined(participants int) ParticipantJoinedEvent {
	return ParticipantJoinedEvent{Type: EventParticipantJoined, Participants: participants}
}

func NewParticipantLeft(participants int) ParticipantLeftEvent {
	return ParticipantLeftEvent{Type: EventParticipantLeft, Participants: participants}
}

func NewStatus(participants, ready, optionCount int) StatusEvent {
	return StatusEvent{Type: EventStatus, Participants: participants, Ready: ready, OptionCount: optionCount}
}

func NewPollCreated(poll Poll) PollCreatedEvent {
	return PollCreatedEvent{Type: EventPollCreated, Poll: poll.Response()}
}

func NewPollDeleted(pollID string) PollDeletedEvent {
	return PollDeletedEvent{Type: EventPollDeleted, PollID: pollID}
}

func NewPollCloned(poll Poll) PollClonedEvent {
	return PollClonedEvent{Type: EventPollCloned, Poll: poll.Response()}
}
