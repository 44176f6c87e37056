// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Poll lifecycle phases
const (
	PhaseCollecting = "collecting"
	PhaseRevealed   = "revealed"
)

// Rating bounds for a vote entry
const (
	RatingMin = 1
	RatingMax = 10
)

// Request types

type CreateUserRequest struct {
	Name string `json:"name"`
}

type CreatePollRequest struct {
	Title        string `json:"title"`
	CreatorID    string `json:"creator_id"`
	PrincessMode bool   `json:"princess_mode"`
}

type JoinPollRequest struct {
	UserID string `json:"userId"`
}

type AddOptionRequest struct {
	Label string `json:"label"`
}

// VoteEntry carries one participant's verdict on one option. A nil
// rating means no numeric rating was given; a vetoed entry's rating is
// disregarded regardless of its value.
type VoteEntry struct {
	OptionID string `json:"optionId"`
	Rating   *int   `json:"rating"`
	Veto     bool   `json:"veto"`
}

type VoteRequest struct {
	UserID  string      `json:"userId"`
	Entries []VoteEntry `json:"entries"`
}

type ReadyRequest struct {
	UserID string `json:"userId"`
}

type ClonePollRequest struct {
	CreatorID string `json:"creator_id"`
}

// Response types

type UserResponse struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

type PollResponse struct {
	PollID       string  `json:"pollId"`
	Title        string  `json:"title"`
	CreatedAt    string  `json:"created_at"`
	WinnerID     *string `json:"winner_id"`
	CreatorID    string  `json:"creator_id"`
	PrincessMode bool    `json:"princess_mode"`
}

type JoinPollResponse struct {
	ParticipantID string `json:"participantId"`
}

type OptionResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// OKResponse acknowledges a mutation with no other payload (vote
// submission, poll deletion).
type OKResponse struct {
	OK bool `json:"ok"`
}

type ReadyResponse struct {
	ReadyCount        int `json:"readyCount"`
	TotalParticipants int `json:"totalParticipants"`
}

type StatusResponse struct {
	Title             string          `json:"title"`
	ReadyCount        int             `json:"readyCount"`
	TotalParticipants int             `json:"totalParticipants"`
	OptionCount       int             `json:"optionCount"`
	Winner            *OptionResponse `json:"winner"`
	CreatorID         string          `json:"creator_id"`
	PrincessMode      bool            `json:"princess_mode"`
}

type RevealResponse struct {
	Winner *OptionResponse `json:"winner"`
}

// Domain types

type Poll struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	CreatorID    string    `json:"creator_id"`
	PrincessMode bool      `json:"princess_mode"`
	Phase        string    `json:"phase"`
	WinnerID     string    `json:"winner_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Option struct {
	ID     string `json:"id"`
	PollID string `json:"poll_id"`
	Label  string `json:"label"`
}

// Response converts a Poll to its wire representation.
func (p Poll) Response() PollResponse {
	var winner *string
	if p.WinnerID != "" {
		w := p.WinnerID
		winner = &w
	}
	return PollResponse{
		PollID:       p.ID,
		Title:        p.Title,
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339),
		WinnerID:     winner,
		CreatorID:    p.CreatorID,
		PrincessMode: p.PrincessMode,
	}
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
