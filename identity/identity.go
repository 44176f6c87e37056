// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var ErrBlankName = errors.New("name is required")

// User is a participant identity: an opaque id issued once for a
// display name, reused across every poll the participant joins.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Store issues and resolves participant identities in memory. There is
// no authentication beyond holding the opaque id.
type Store struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewStore() *Store {
	return &Store{users: make(map[string]User)}
}

// Create issues a fresh identity for the given display name. Names are
// not unique; two participants may share one.
func (s *Store) Create(name string) (User, error) {
	if strings.TrimSpace(name) == "" {
		return User{}, ErrBlankName
	}

	u := User{ID: uuid.NewString(), Name: name}
	s.mu.Lock()
	s.users[u.ID] = u
	s.mu.Unlock()
	return u, nil
}

// Get resolves an id to its identity.
func (s *Store) Get(id string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}
