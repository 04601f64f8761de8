// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Amuniare/eventease/internal/catalog"
	"github.com/Amuniare/eventease/internal/config"
	"github.com/Amuniare/eventease/internal/handler"
	"github.com/Amuniare/eventease/internal/service"
	"github.com/Amuniare/eventease/internal/session"
	"github.com/Amuniare/eventease/internal/storage"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(log)

	ctx := context.Background()

	// ── 1. Open the durable session storage ──────────────────────────────
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Error("storage open failed", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	log.Info("session storage ready", "path", cfg.DBPath)

	// ── 2. Wire up layers ────────────────────────────────────────────────
	sess := session.New(ctx, store, log.With("component", "session"))
	cat := catalog.New()
	svc := service.New(cat, sess)
	eventHandler := handler.NewEventHandler(svc)

	// ── 3. Build the router ───────────────────────────────────────────────
	r := chi.NewRouter()

	// Global middleware stack
	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(handler.Logger(log.With("component", "http")))
	r.Use(handler.CORS) // permissive CORS for demo

	// Health
	r.Get("/health", handler.HealthCheck)

	// API routes
	r.Route("/events", func(r chi.Router) {
		r.Get("/", eventHandler.ListEvents)
		r.Get("/{id}", eventHandler.GetEvent)
		r.Post("/{id}/register", eventHandler.Register)
		r.Delete("/{id}/register", eventHandler.Unregister)
		r.Post("/{id}/attend", eventHandler.MarkAttended)
	})
	r.Route("/session", func(r chi.Router) {
		r.Get("/", eventHandler.GetSession)
		r.Delete("/", eventHandler.Logout)
	})

	// ── 4. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run in background goroutine so we can listen for shutdown signal.
	go func() {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}

	// Flush the session so the durable entry reflects the final state.
	if err := sess.Flush(shutdownCtx); err != nil {
		log.Warn("session flush failed", "error", err)
	}
	log.Info("server stopped")
}
