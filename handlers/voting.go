// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/themis/identity"
	"github.com/danielhkuo/themis/middleware"
	"github.com/danielhkuo/themis/models"
	"github.com/danielhkuo/themis/session"
)

type VotingHandler struct {
	registry *session.Registry
	ids      *identity.Store
}

func NewVotingHandler(registry *session.Registry, ids *identity.Store) *VotingHandler {
	return &VotingHandler{registry: registry, ids: ids}
}

// JoinPoll handles POST /polls/{id}/join
// Joining is idempotent; only a first join grows the readiness
// denominator.
func (h *VotingHandler) JoinPoll(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.registry.Get(r.PathValue("id"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	var req models.JoinPollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if _, ok := h.ids.Get(req.UserID); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}

	if _, err := sess.Join(req.UserID); err != nil {
		domainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.JoinPollResponse{
		ParticipantID: req.UserID,
	})
}

// SubmitVote handles PUT /polls/{id}/vote
// Accepts a partial vote set; entries for omitted options are left
// untouched, and resubmitting an option overwrites its prior entry.
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.registry.Get(r.PathValue("id"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := sess.SubmitVotes(req.UserID, req.Entries); err != nil {
		domainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// MarkReady handles POST /polls/{id}/ready
// Readiness is monotonic. When the last joined participant declares
// readiness the poll reveals synchronously, inside this call.
func (h *VotingHandler) MarkReady(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.registry.Get(r.PathValue("id"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	var req models.ReadyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	ready, total, err := sess.MarkReady(req.UserID)
	if err != nil {
		domainError(w, err)
		return
	}

	slog.Info("participant ready", "poll_id", sess.ID(), "ready", ready, "total", total)

	middleware.JSONResponse(w, http.StatusOK, models.ReadyResponse{
		ReadyCount:        ready,
		TotalParticipants: total,
	})
}
