// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/themis/middleware"
	"github.com/danielhkuo/themis/models"
	"github.com/danielhkuo/themis/session"
)

type ResultsHandler struct {
	registry *session.Registry
}

func NewResultsHandler(registry *session.Registry) *ResultsHandler {
	return &ResultsHandler{registry: registry}
}

// GetStatus handles GET /polls/{id}/status
// The winner field is populated only once the poll has revealed.
func (h *ResultsHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.registry.Get(r.PathValue("id"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, sess.Status())
}

// ListOptions handles GET /polls/{id}/options
func (h *ResultsHandler) ListOptions(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.registry.Get(r.PathValue("id"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	options := sess.Options()
	resp := make([]models.OptionResponse, len(options))
	for i, opt := range options {
		resp[i] = models.OptionResponse{ID: opt.ID, Label: opt.Label}
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}
