// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/themis/hub"
	"github.com/danielhkuo/themis/models"
)

// Session owns one poll's mutable state: options, participants, votes,
// readiness, and lifecycle phase. Every mutation runs under s.mu, so
// transitions are linearizable per poll and observers never see a
// partial update. Broadcasts happen while the lock is held, which pins
// fan-out order to mutation-commit order; the hub never blocks, so
// holding the lock across a broadcast is cheap.
type Session struct {
	mu      sync.Mutex
	poll    models.Poll
	options []models.Option
	joined  map[string]bool
	votes   map[string]map[string]Vote
	gate    readinessGate
	hub     *hub.Hub
}

func newSession(title, creatorID string, princessMode bool) *Session {
	return &Session{
		poll: models.Poll{
			ID:           uuid.NewString(),
			Title:        title,
			CreatorID:    creatorID,
			PrincessMode: princessMode,
			Phase:        models.PhaseCollecting,
			CreatedAt:    time.Now(),
		},
		joined: make(map[string]bool),
		votes:  make(map[string]map[string]Vote),
		gate:   newReadinessGate(),
		hub:    hub.New(),
	}
}

// Hub returns the session's broadcast hub for websocket subscription.
func (s *Session) Hub() *hub.Hub {
	return s.hub
}

// Poll returns a snapshot of the poll's metadata.
func (s *Session) Poll() models.Poll {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.poll
}

// ID returns the poll identifier. Immutable, needs no lock.
func (s *Session) ID() string {
	return s.poll.ID
}

// Join adds the participant to the poll. Rejoining is a no-op that
// emits nothing, since the participant count did not change; only a
// first join increments the readiness denominator and broadcasts.
// A first join after reveal is rejected.
func (s *Session) Join(participantID string) (total int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.joined[participantID] {
		_, total = s.gate.counts()
		return total, nil
	}
	if s.poll.Phase == models.PhaseRevealed {
		return 0, fmt.Errorf("join %s: %w", s.poll.ID, ErrPollClosed)
	}

	s.joined[participantID] = true
	s.gate.join()
	_, total = s.gate.counts()

	s.hub.Broadcast(models.NewParticipantJoined(total))
	return total, nil
}

// Options returns the option list in creation order.
func (s *Session) Options() []models.Option {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Option, len(s.options))
	copy(out, s.options)
	return out
}

// AddOption appends an option and broadcasts it. Options are
// append-only: once added they are never edited or removed.
func (s *Session) AddOption(label string) (models.Option, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.poll.Phase == models.PhaseRevealed {
		return models.Option{}, fmt.Errorf("add option: %w", ErrPollClosed)
	}
	if strings.TrimSpace(label) == "" {
		return models.Option{}, fmt.Errorf("add option: blank label: %w", ErrInvalidInput)
	}

	opt := models.Option{
		ID:     uuid.NewString(),
		PollID: s.poll.ID,
		Label:  label,
	}
	s.options = append(s.options, opt)

	s.hub.Broadcast(models.NewOptionAdded(opt))
	return opt, nil
}

// SubmitVotes replaces the participant's stored votes for exactly the
// option ids present in entries; omitted options keep their previous
// vote. The whole batch is validated before anything is written, so a
// rejected submission mutates nothing.
func (s *Session) SubmitVotes(participantID string, entries []models.VoteEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.poll.Phase == models.PhaseRevealed {
		return fmt.Errorf("submit votes: %w", ErrPollClosed)
	}
	if !s.joined[participantID] {
		return fmt.Errorf("participant %s has not joined: %w", participantID, ErrNotFound)
	}
	if s.poll.PrincessMode && participantID != s.poll.CreatorID {
		return fmt.Errorf("princess mode: only the creator may rate: %w", ErrForbidden)
	}

	known := make(map[string]bool, len(s.options))
	for _, opt := range s.options {
		known[opt.ID] = true
	}
	for _, e := range entries {
		if !known[e.OptionID] {
			return fmt.Errorf("option %s: %w", e.OptionID, ErrNotFound)
		}
		if e.Rating != nil && (*e.Rating < models.RatingMin || *e.Rating > models.RatingMax) {
			return fmt.Errorf("rating %d out of range %d..%d: %w",
				*e.Rating, models.RatingMin, models.RatingMax, ErrInvalidInput)
		}
	}

	byOption := s.votes[participantID]
	if byOption == nil {
		byOption = make(map[string]Vote)
		s.votes[participantID] = byOption
	}
	for _, e := range entries {
		// The rating is stored even alongside a veto: the aggregator
		// normally disregards it, but falls back to raw ratings when
		// every option ends up vetoed.
		v := Vote{Veto: e.Veto}
		if e.Rating != nil {
			r := *e.Rating
			v.Rating = &r
		}
		// Last write wins per (participant, option) pair.
		byOption[e.OptionID] = v
	}
	return nil
}

// MarkReady sets the participant's readiness flag. Readiness is
// monotonic and recomputes quorum incrementally; when quorum holds the
// session transitions to revealed, aggregates once, and broadcasts the
// reveal before returning.
func (s *Session) MarkReady(participantID string) (ready, total int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.poll.Phase == models.PhaseRevealed {
		return 0, 0, fmt.Errorf("mark ready: %w", ErrPollClosed)
	}
	if !s.joined[participantID] {
		return 0, 0, fmt.Errorf("participant %s has not joined: %w", participantID, ErrNotFound)
	}

	changed := s.gate.markReady(participantID)
	ready, total = s.gate.counts()
	if changed {
		s.hub.Broadcast(models.NewReadyCounts(ready, total))
	}

	if changed && s.gate.quorum() {
		s.revealLocked()
	}
	return ready, total, nil
}

// Reveal forces the reveal transition unconditionally, for
// creator-initiated early reveal. A second reveal is a post-reveal
// mutation and is rejected.
func (s *Session) Reveal() (winner *models.Option, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.poll.Phase == models.PhaseRevealed {
		return nil, fmt.Errorf("reveal: %w", ErrPollClosed)
	}
	s.revealLocked()
	return s.winnerLocked(), nil
}

// revealLocked runs the one-time Collecting → Revealed transition:
// aggregate, fix the winner, broadcast. Caller holds s.mu and has
// checked the phase.
func (s *Session) revealLocked() {
	s.poll.Phase = models.PhaseRevealed
	if id, ok := Winner(s.options, s.votes); ok {
		s.poll.WinnerID = id
	}
	slog.Info("poll revealed", "poll_id", s.poll.ID, "winner_id", s.poll.WinnerID)

	s.hub.Broadcast(models.NewReveal())
}

func (s *Session) winnerLocked() *models.Option {
	if s.poll.WinnerID == "" {
		return nil
	}
	for i := range s.options {
		if s.options[i].ID == s.poll.WinnerID {
			opt := s.options[i]
			return &opt
		}
	}
	return nil
}

// Status returns a consistent snapshot for the status endpoint.
func (s *Session) Status() models.StatusResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	ready, total := s.gate.counts()
	resp := models.StatusResponse{
		Title:             s.poll.Title,
		ReadyCount:        ready,
		TotalParticipants: total,
		OptionCount:       len(s.options),
		CreatorID:         s.poll.CreatorID,
		PrincessMode:      s.poll.PrincessMode,
	}
	if w := s.winnerLocked(); w != nil {
		resp.Winner = &models.OptionResponse{ID: w.ID, Label: w.Label}
	}
	return resp
}

// optionLabels snapshots the option labels in creation order, for
// cloning into a fresh poll.
func (s *Session) optionLabels() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	labels := make([]string, len(s.options))
	for i, opt := range s.options {
		labels[i] = opt.Label
	}
	return labels
}
