// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/themis/cliparse"
	"github.com/danielhkuo/themis/hub"
	"github.com/danielhkuo/themis/identity"
	"github.com/danielhkuo/themis/models"
	"github.com/danielhkuo/themis/router"
	"github.com/danielhkuo/themis/session"
)

// Env bundles the in-process state handler tests run against: a fresh
// registry, lobby hub, identity store, and the wired router.
type Env struct {
	Registry *session.Registry
	Lobby    *hub.Hub
	IDs      *identity.Store
	Mux      *http.ServeMux
}

// NewEnv builds a fresh server environment for one test.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	registry := session.NewRegistry()
	lobby := hub.New()
	ids := identity.NewStore()
	return &Env{
		Registry: registry,
		Lobby:    lobby,
		IDs:      ids,
		Mux:      router.NewRouter(registry, lobby, ids, GetTestConfig()),
	}
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           8000,
		AllowedOrigins: []string{"http://localhost:5173"},
	}
}

// CreateTestUser issues an identity directly through the store.
func (e *Env) CreateTestUser(t *testing.T, name string) string {
	t.Helper()

	u, err := e.IDs.Create(name)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return u.ID
}

// CreateTestPoll creates a poll directly through the registry.
func (e *Env) CreateTestPoll(t *testing.T, title, creatorID string, princessMode bool) *session.Session {
	t.Helper()

	sess, err := e.Registry.Create(title, creatorID, princessMode)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}
	return sess
}

// JoinTestPoll joins a participant to a poll.
func (e *Env) JoinTestPoll(t *testing.T, sess *session.Session, userID string) {
	t.Helper()

	if _, err := sess.Join(userID); err != nil {
		t.Fatalf("Failed to join test poll: %v", err)
	}
}

// AddTestOption appends an option to a poll.
func (e *Env) AddTestOption(t *testing.T, sess *session.Session, label string) models.Option {
	t.Helper()

	opt, err := sess.AddOption(label)
	if err != nil {
		t.Fatalf("Failed to add test option: %v", err)
	}
	return opt
}

// IntPtr returns a pointer to the given rating value.
func IntPtr(v int) *int {
	return &v
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
