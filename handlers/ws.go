// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/themis/cliparse"
	"github.com/danielhkuo/themis/hub"
	"github.com/danielhkuo/themis/middleware"
	"github.com/danielhkuo/themis/models"
	"github.com/danielhkuo/themis/session"
)

// clientMessage is the only message shape clients may send on a poll
// socket; anything else is ignored.
type clientMessage struct {
	Type string `json:"type"`
}

type WSHandler struct {
	registry *session.Registry
	lobby    *hub.Hub
	upgrader websocket.Upgrader
}

func NewWSHandler(registry *session.Registry, lobby *hub.Hub, cfg cliparse.Config) *WSHandler {
	return &WSHandler{
		registry: registry,
		lobby:    lobby,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return middleware.OriginAllowed(cfg.AllowedOrigins, r)
			},
		},
	}
}

// PollSocket handles GET /ws/polls/{id}
// Subscribes the connection to the poll's event channel. The client
// may send {"type":"request_status"} to get a status snapshot on this
// connection only; everything else flows server → client.
func (h *WSHandler) PollSocket(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.registry.Get(r.PathValue("id"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err, "remote", middleware.GetClientIP(r))
		return
	}

	pollHub := sess.Hub()
	client := hub.NewClient(conn)
	pollHub.Subscribe(client)
	slog.Info("poll socket connected", "poll_id", sess.ID(), "connections", pollHub.ConnCount())

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			continue // ignore invalid JSON
		}
		if msg.Type == "request_status" {
			st := sess.Status()
			client.SendJSON(models.NewStatus(st.TotalParticipants, st.ReadyCount, st.OptionCount))
		}
	}

	// Connection loss is a transport event: the stored poll state —
	// votes, options, readiness — is untouched.
	pollHub.Unsubscribe(client)
	st := sess.Status()
	pollHub.Broadcast(models.NewParticipantLeft(st.TotalParticipants))
	slog.Info("poll socket disconnected", "poll_id", sess.ID(), "connections", pollHub.ConnCount())
}

// LobbySocket handles GET /ws/lobby
// Broadcast-only feed of poll creation, deletion, and cloning for
// clients not yet inside a poll.
func (h *WSHandler) LobbySocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err, "remote", middleware.GetClientIP(r))
		return
	}

	client := hub.NewClient(conn)
	h.lobby.Subscribe(client)

	// Drain and discard; the lobby channel is broadcast-only.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.lobby.Unsubscribe(client)
}
