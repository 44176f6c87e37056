package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/themis/cliparse"
	"github.com/danielhkuo/themis/hub"
	"github.com/danielhkuo/themis/identity"
	"github.com/danielhkuo/themis/middleware"
	"github.com/danielhkuo/themis/router"
	"github.com/danielhkuo/themis/session"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// All state is in-process: the registry owns poll sessions, the
	// lobby hub fans out registry-level events, the identity store
	// issues participant ids.
	registry := session.NewRegistry()
	lobby := hub.New()
	ids := identity.NewStore()

	// Create router
	mux := router.NewRouter(registry, lobby, ids, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigins, mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
