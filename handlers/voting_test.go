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

func TestJoinPoll(t *testing.T) {
	env := testutil.NewEnv(t)
	creatorID := env.CreateTestUser(t, "Alice")
	userID := env.CreateTestUser(t, "Bob")
	sess := env.CreateTestPoll(t, "Dinner", creatorID, false)

	tests := []struct {
		name           string
		pollID         string
		requestBody    models.JoinPollRequest
		expectedStatus int
	}{
		{
			name:           "valid join",
			pollID:         sess.ID(),
			requestBody:    models.JoinPollRequest{UserID: userID},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "rejoin is idempotent",
			pollID:         sess.ID(),
			requestBody:    models.JoinPollRequest{UserID: userID},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown poll",
			pollID:         "no-such-poll",
			requestBody:    models.JoinPollRequest{UserID: userID},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "unknown user",
			pollID:         sess.ID(),
			requestBody:    models.JoinPollRequest{UserID: "no-such-user"},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/polls/"+tt.pollID+"/join", tt.requestBody, nil)
			w := httptest.NewRecorder()

			env.Mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var resp models.JoinPollResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.ParticipantID != tt.requestBody.UserID {
					t.Errorf("Expected participantId '%s', got '%s'", tt.requestBody.UserID, resp.ParticipantID)
				}
			}
		})
	}

	// Rejoin must not have inflated the participant count
	if st := sess.Status(); st.TotalParticipants != 1 {
		t.Errorf("Expected 1 participant after rejoin, got %d", st.TotalParticipants)
	}
}

func TestJoinRevealedPoll(t *testing.T) {
	env := testutil.NewEnv(t)
	creatorID := env.CreateTestUser(t, "Alice")
	lateID := env.CreateTestUser(t, "Bob")
	sess := env.CreateTestPoll(t, "Dinner", creatorID, false)
	env.JoinTestPoll(t, sess, creatorID)
	if _, err := sess.Reveal(); err != nil {
		t.Fatalf("Reveal failed: %v", err)
	}

	req := testutil.MakeRequest("POST", "/polls/"+sess.ID()+"/join",
		models.JoinPollRequest{UserID: lateID}, nil)
	w := httptest.NewRecorder()

	env.Mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestSubmitVote(t *testing.T) {
	env := testutil.NewEnv(t)
	creatorID := env.CreateTestUser(t, "Alice")
	sess := env.CreateTestPoll(t, "Dinner", creatorID, false)
	env.JoinTestPoll(t, sess, creatorID)
	opt := env.AddTestOption(t, sess, "Sushi")

	tests := []struct {
		name           string
		requestBody    models.VoteRequest
		expectedStatus int
	}{
		{
			name: "valid rating",
			requestBody: models.VoteRequest{
				UserID:  creatorID,
				Entries: []models.VoteEntry{{OptionID: opt.ID, Rating: testutil.IntPtr(8)}},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "veto with rating",
			requestBody: models.VoteRequest{
				UserID:  creatorID,
				Entries: []models.VoteEntry{{OptionID: opt.ID, Rating: testutil.IntPtr(3), Veto: true}},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not joined",
			requestBody: models.VoteRequest{
				UserID:  "stranger",
				Entries: []models.VoteEntry{{OptionID: opt.ID, Rating: testutil.IntPtr(5)}},
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "unknown option",
			requestBody: models.VoteRequest{
				UserID:  creatorID,
				Entries: []models.VoteEntry{{OptionID: "no-such-option", Rating: testutil.IntPtr(5)}},
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "rating out of range",
			requestBody: models.VoteRequest{
				UserID:  creatorID,
				Entries: []models.VoteEntry{{OptionID: opt.ID, Rating: testutil.IntPtr(11)}},
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("PUT", "/polls/"+sess.ID()+"/vote", tt.requestBody, nil)
			w := httptest.NewRecorder()

			env.Mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestSubmitVotePrincessMode(t *testing.T) {
	env := testutil.NewEnv(t)
	creatorID := env.CreateTestUser(t, "Alice")
	guestID := env.CreateTestUser(t, "Bob")
	sess := env.CreateTestPoll(t, "Movie night", creatorID, true)
	env.JoinTestPoll(t, sess, creatorID)
	env.JoinTestPoll(t, sess, guestID)
	opt := env.AddTestOption(t, sess, "Option A")

	// Guest rating is forbidden
	req := testutil.MakeRequest("PUT", "/polls/"+sess.ID()+"/vote", models.VoteRequest{
		UserID:  guestID,
		Entries: []models.VoteEntry{{OptionID: opt.ID, Rating: testutil.IntPtr(7)}},
	}, nil)
	w := httptest.NewRecorder()
	env.Mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusForbidden)

	// Creator rating works
	req = testutil.MakeRequest("PUT", "/polls/"+sess.ID()+"/vote", models.VoteRequest{
		UserID:  creatorID,
		Entries: []models.VoteEntry{{OptionID: opt.ID, Rating: testutil.IntPtr(7)}},
	}, nil)
	w = httptest.NewRecorder()
	env.Mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Guest may still add options
	req = testutil.MakeRequest("POST", "/polls/"+sess.ID()+"/options",
		models.AddOptionRequest{Label: "Option B"}, nil)
	w = httptest.NewRecorder()
	env.Mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)
}

func TestMarkReadyFlow(t *testing.T) {
	env := testutil.NewEnv(t)
	aliceID := env.CreateTestUser(t, "Alice")
	bobID := env.CreateTestUser(t, "Bob")
	sess := env.CreateTestPoll(t, "Dinner", aliceID, false)
	env.JoinTestPoll(t, sess, aliceID)
	env.JoinTestPoll(t, sess, bobID)
	opt := env.AddTestOption(t, sess, "Sushi")

	if err := sess.SubmitVotes(aliceID, []models.VoteEntry{
		{OptionID: opt.ID, Rating: testutil.IntPtr(9)},
	}); err != nil {
		t.Fatalf("SubmitVotes failed: %v", err)
	}

	// First ready: 1/2, still collecting
	req := testutil.MakeRequest("POST", "/polls/"+sess.ID()+"/ready",
		models.ReadyRequest{UserID: aliceID}, nil)
	w := httptest.NewRecorder()
	env.Mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ReadyResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.ReadyCount != 1 || resp.TotalParticipants != 2 {
		t.Errorf("Expected 1/2 ready, got %d/%d", resp.ReadyCount, resp.TotalParticipants)
	}
	if sess.Poll().Phase != models.PhaseCollecting {
		t.Fatal("Poll revealed before quorum")
	}

	// Repeat ready is a no-op, still 1/2
	w = httptest.NewRecorder()
	env.Mux.ServeHTTP(w, testutil.MakeRequest("POST", "/polls/"+sess.ID()+"/ready",
		models.ReadyRequest{UserID: aliceID}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &resp)
	if resp.ReadyCount != 1 {
		t.Errorf("Repeat ready must not double-count: got %d", resp.ReadyCount)
	}

	// Second ready completes quorum and reveals
	w = httptest.NewRecorder()
	env.Mux.ServeHTTP(w, testutil.MakeRequest("POST", "/polls/"+sess.ID()+"/ready",
		models.ReadyRequest{UserID: bobID}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &resp)
	if resp.ReadyCount != 2 || resp.TotalParticipants != 2 {
		t.Errorf("Expected 2/2 ready, got %d/%d", resp.ReadyCount, resp.TotalParticipants)
	}

	poll := sess.Poll()
	if poll.Phase != models.PhaseRevealed {
		t.Fatal("Quorum must reveal the poll")
	}
	if poll.WinnerID != opt.ID {
		t.Errorf("Expected winner %s, got %s", opt.ID, poll.WinnerID)
	}

	// Ready after reveal conflicts
	w = httptest.NewRecorder()
	env.Mux.ServeHTTP(w, testutil.MakeRequest("POST", "/polls/"+sess.ID()+"/ready",
		models.ReadyRequest{UserID: aliceID}, nil))
	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestMarkReadyNotJoinedHTTP(t *testing.T) {
	env := testutil.NewEnv(t)
	creatorID := env.CreateTestUser(t, "Alice")
	sess := env.CreateTestPoll(t, "Dinner", creatorID, false)
	env.JoinTestPoll(t, sess, creatorID)

	req := testutil.MakeRequest("POST", "/polls/"+sess.ID()+"/ready",
		models.ReadyRequest{UserID: "stranger"}, nil)
	w := httptest.NewRecorder()

	env.Mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}
