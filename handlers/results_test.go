// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/themis/models"
	"github.com/danielhkuo/themis/testutil"
)

func TestGetStatus(t *testing.T) {
	env := testutil.NewEnv(t)
	creatorID := env.CreateTestUser(t, "Alice")
	bobID := env.CreateTestUser(t, "Bob")
	sess := env.CreateTestPoll(t, "Dinner", creatorID, true)
	env.JoinTestPoll(t, sess, creatorID)
	env.JoinTestPoll(t, sess, bobID)
	opt := env.AddTestOption(t, sess, "Sushi")
	env.AddTestOption(t, sess, "Tacos")

	w := httptest.NewRecorder()
	env.Mux.ServeHTTP(w, testutil.MakeRequest("GET", "/polls/"+sess.ID()+"/status", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.StatusResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Title != "Dinner" {
		t.Errorf("Expected title 'Dinner', got '%s'", resp.Title)
	}
	if resp.ReadyCount != 0 || resp.TotalParticipants != 2 || resp.OptionCount != 2 {
		t.Errorf("Unexpected counts: %+v", resp)
	}
	if resp.Winner != nil {
		t.Error("Winner must be hidden before reveal")
	}
	if !resp.PrincessMode || resp.CreatorID != creatorID {
		t.Errorf("Status must carry creator and princess mode: %+v", resp)
	}

	// Reveal and check the winner surfaces
	if err := sess.SubmitVotes(creatorID, []models.VoteEntry{
		{OptionID: opt.ID, Rating: testutil.IntPtr(9)},
	}); err != nil {
		t.Fatalf("SubmitVotes failed: %v", err)
	}
	if _, err := sess.Reveal(); err != nil {
		t.Fatalf("Reveal failed: %v", err)
	}

	w = httptest.NewRecorder()
	env.Mux.ServeHTTP(w, testutil.MakeRequest("GET", "/polls/"+sess.ID()+"/status", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &resp)
	if resp.Winner == nil || resp.Winner.ID != opt.ID {
		t.Errorf("Expected winner %s, got %+v", opt.ID, resp.Winner)
	}
}

func TestGetStatusUnknownPoll(t *testing.T) {
	env := testutil.NewEnv(t)

	w := httptest.NewRecorder()
	env.Mux.ServeHTTP(w, testutil.MakeRequest("GET", "/polls/no-such-poll/status", nil, nil))

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestListOptionsHTTP(t *testing.T) {
	env := testutil.NewEnv(t)
	creatorID := env.CreateTestUser(t, "Alice")
	sess := env.CreateTestPoll(t, "Dinner", creatorID, false)
	env.AddTestOption(t, sess, "Sushi")
	env.AddTestOption(t, sess, "Tacos")

	w := httptest.NewRecorder()
	env.Mux.ServeHTTP(w, testutil.MakeRequest("GET", "/polls/"+sess.ID()+"/options", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp []models.OptionResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp) != 2 {
		t.Fatalf("Expected 2 options, got %d", len(resp))
	}
	if resp[0].Label != "Sushi" || resp[1].Label != "Tacos" {
		t.Errorf("Options out of creation order: %+v", resp)
	}
}

func TestListOptionsEmptyPoll(t *testing.T) {
	env := testutil.NewEnv(t)
	creatorID := env.CreateTestUser(t, "Alice")
	sess := env.CreateTestPoll(t, "Dinner", creatorID, false)

	w := httptest.NewRecorder()
	env.Mux.ServeHTTP(w, testutil.MakeRequest("GET", "/polls/"+sess.ID()+"/options", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp []models.OptionResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp) != 0 {
		t.Errorf("Expected no options, got %+v", resp)
	}
}
