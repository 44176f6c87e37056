// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/themis/hub"
	"github.com/danielhkuo/themis/identity"
	"github.com/danielhkuo/themis/middleware"
	"github.com/danielhkuo/themis/models"
	"github.com/danielhkuo/themis/session"
)

type PollHandler struct {
	registry *session.Registry
	lobby    *hub.Hub
	ids      *identity.Store
}

func NewPollHandler(registry *session.Registry, lobby *hub.Hub, ids *identity.Store) *PollHandler {
	return &PollHandler{registry: registry, lobby: lobby, ids: ids}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Creator identity is optional, but if given it must exist
	if req.CreatorID != "" {
		if _, ok := h.ids.Get(req.CreatorID); !ok {
			middleware.ErrorResponse(w, http.StatusNotFound, "Creator user not found")
			return
		}
	}

	sess, err := h.registry.Create(req.Title, req.CreatorID, req.PrincessMode)
	if err != nil {
		domainError(w, err)
		return
	}
	poll := sess.Poll()

	slog.Info("poll created", "poll_id", poll.ID, "creator_id", poll.CreatorID, "princess_mode", poll.PrincessMode)

	h.lobby.Broadcast(models.NewPollCreated(poll))

	middleware.JSONResponse(w, http.StatusCreated, poll.Response())
}

// ListPolls handles GET /polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls := h.registry.List()

	resp := make([]models.PollResponse, len(polls))
	for i, p := range polls {
		resp[i] = p.Response()
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// AddOption handles POST /polls/{id}/options
func (h *PollHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.registry.Get(r.PathValue("id"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	var req models.AddOptionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	opt, err := sess.AddOption(req.Label)
	if err != nil {
		domainError(w, err)
		return
	}

	slog.Info("option added", "poll_id", sess.ID(), "option_id", opt.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.OptionResponse{
		ID:    opt.ID,
		Label: opt.Label,
	})
}

// RevealPoll handles POST /polls/{id}/reveal
// Creator-initiated early reveal; forces the transition regardless of
// readiness.
func (h *PollHandler) RevealPoll(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.registry.Get(r.PathValue("id"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	winner, err := sess.Reveal()
	if err != nil {
		domainError(w, err)
		return
	}

	resp := models.RevealResponse{}
	if winner != nil {
		resp.Winner = &models.OptionResponse{ID: winner.ID, Label: winner.Label}
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// DeletePoll handles DELETE /polls/{id}
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if !h.registry.Delete(pollID) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	slog.Info("poll deleted", "poll_id", pollID)

	h.lobby.Broadcast(models.NewPollDeleted(pollID))

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// ClonePoll handles POST /polls/{id}/clone
// The clone copies the source's options under fresh ids and starts
// collecting with no votes or readiness.
func (h *PollHandler) ClonePoll(w http.ResponseWriter, r *http.Request) {
	var req models.ClonePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.CreatorID != "" {
		if _, ok := h.ids.Get(req.CreatorID); !ok {
			middleware.ErrorResponse(w, http.StatusNotFound, "Creator user not found")
			return
		}
	}

	clone, err := h.registry.Clone(r.PathValue("id"), req.CreatorID)
	if err != nil {
		domainError(w, err)
		return
	}
	poll := clone.Poll()

	slog.Info("poll cloned", "source_poll_id", r.PathValue("id"), "poll_id", poll.ID)

	h.lobby.Broadcast(models.NewPollCloned(poll))

	middleware.JSONResponse(w, http.StatusCreated, poll.Response())
}
