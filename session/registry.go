// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/danielhkuo/themis/models"
)

// Registry is the process-wide source of truth mapping poll id →
// Session. Its lock guards only the map; each session's internal lock
// is independent, so polls mutate without contending with each other.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Create makes a new poll in the collecting phase.
func (r *Registry) Create(title, creatorID string, princessMode bool) (*Session, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("create poll: blank title: %w", ErrInvalidInput)
	}

	s := newSession(title, creatorID, princessMode)

	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()
	return s, nil
}

// Get looks up a session by poll id.
func (r *Registry) Get(pollID string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[pollID]
	return s, ok
}

// Delete removes a poll at any phase. Stored state goes with it; live
// poll connections simply stop receiving events.
func (r *Registry) Delete(pollID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[pollID]; !ok {
		return false
	}
	delete(r.sessions, pollID)
	return true
}

// Clone creates a fresh poll with copies of the source poll's options
// (under new ids) and none of its votes, readiness, or winner. The
// clone starts collecting regardless of the source's phase.
func (r *Registry) Clone(pollID, creatorID string) (*Session, error) {
	src, ok := r.Get(pollID)
	if !ok {
		return nil, fmt.Errorf("poll %s: %w", pollID, ErrNotFound)
	}
	srcPoll := src.Poll()

	clone := newSession(srcPoll.Title, creatorID, srcPoll.PrincessMode)
	for _, label := range src.optionLabels() {
		if _, err := clone.AddOption(label); err != nil {
			return nil, fmt.Errorf("clone poll %s: %w", pollID, err)
		}
	}

	r.mu.Lock()
	r.sessions[clone.ID()] = clone
	r.mu.Unlock()
	return clone, nil
}

// List returns a snapshot of all polls, newest first.
func (r *Registry) List() []models.Poll {
	r.mu.RLock()
	polls := make([]models.Poll, 0, len(r.sessions))
	for _, s := range r.sessions {
		polls = append(polls, s.Poll())
	}
	r.mu.RUnlock()

	sort.Slice(polls, func(i, j int) bool {
		if polls[i].CreatedAt.Equal(polls[j].CreatedAt) {
			return polls[i].ID < polls[j].ID
		}
		return polls[i].CreatedAt.After(polls[j].CreatedAt)
	})
	return polls
}

// Len returns the number of live polls.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
