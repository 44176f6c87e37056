// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/themis/cliparse"
	"github.com/danielhkuo/themis/handlers"
	"github.com/danielhkuo/themis/hub"
	"github.com/danielhkuo/themis/identity"
	"github.com/danielhkuo/themis/middleware"
	"github.com/danielhkuo/themis/session"
)

func NewRouter(registry *session.Registry, lobby *hub.Hub, ids *identity.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(ids)
	pollHandler := handlers.NewPollHandler(registry, lobby, ids)
	votingHandler := handlers.NewVotingHandler(registry, ids)
	resultsHandler := handlers.NewResultsHandler(registry)
	wsHandler := handlers.NewWSHandler(registry, lobby, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Participant identity
	mux.HandleFunc("POST /users", middleware.WithLogging(userHandler.CreateUser))

	// Poll lifecycle
	mux.HandleFunc("GET /polls", middleware.WithLogging(pollHandler.ListPolls))
	mux.HandleFunc("POST /polls", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("POST /polls/{id}/options", middleware.WithLogging(pollHandler.AddOption))
	mux.HandleFunc("POST /polls/{id}/reveal", middleware.WithLogging(pollHandler.RevealPoll))
	mux.HandleFunc("DELETE /polls/{id}", middleware.WithLogging(pollHandler.DeletePoll))
	mux.HandleFunc("POST /polls/{id}/clone", middleware.WithLogging(pollHandler.ClonePoll))

	// Voting operations
	mux.HandleFunc("POST /polls/{id}/join", middleware.WithLogging(votingHandler.JoinPoll))
	mux.HandleFunc("PUT /polls/{id}/vote", middleware.WithLogging(votingHandler.SubmitVote))
	mux.HandleFunc("POST /polls/{id}/ready", middleware.WithLogging(votingHandler.MarkReady))

	// Reads
	mux.HandleFunc("GET /polls/{id}/status", middleware.WithLogging(resultsHandler.GetStatus))
	mux.HandleFunc("GET /polls/{id}/options", middleware.WithLogging(resultsHandler.ListOptions))

	// Websocket channels (no logging wrapper; these are long-lived)
	mux.HandleFunc("GET /ws/polls/{id}", wsHandler.PollSocket)
	mux.HandleFunc("GET /ws/lobby", wsHandler.LobbySocket)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("themis API v1"))
	})

	return mux
}
