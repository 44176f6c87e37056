// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/themis/identity"
	"github.com/danielhkuo/themis/middleware"
	"github.com/danielhkuo/themis/models"
)

type UserHandler struct {
	ids *identity.Store
}

func NewUserHandler(ids *identity.Store) *UserHandler {
	return &UserHandler{ids: ids}
}

// CreateUser handles POST /users
// Issues an opaque participant identity for a display name.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	user, err := h.ids.Create(req.Name)
	if err != nil {
		if errors.Is(err, identity.ErrBlankName) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
			return
		}
		slog.Error("failed to create user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	slog.Info("user created", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.UserResponse{
		UserID: user.ID,
		Name:   user.Name,
	})
}
