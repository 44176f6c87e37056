// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Themis API server.

Themis lets a group collaboratively rate a shared set of options and
converge on a single winner, with live websocket updates as options are
added, ratings change, and participants declare readiness. All state is
held in process; there is no database.

# Starting the Server

	go run main.go

Or with flags:

	go run main.go -p 8000 -origins "http://localhost:5173"

# Configuration

Optional settings (flag or environment, .env supported):

  - PORT (-p): server port (default: 8000)
  - ALLOWED_ORIGINS (-origins): comma-separated origins allowed for
    CORS and websocket upgrades (default: http://localhost:5173)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - session: poll sessions, registry, readiness gate, vote aggregator
  - hub: websocket fan-out (one hub per poll, one lobby hub)
  - identity: opaque participant ids
  - handlers: HTTP and websocket request handlers
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response/event types
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
