// Copyright (c) 2026 Riwaya. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/riwaya/riwaya/internal/auth"
	"github.com/riwaya/riwaya/internal/authors"
	"github.com/riwaya/riwaya/internal/categories"
	"github.com/riwaya/riwaya/internal/chapters"
	"github.com/riwaya/riwaya/internal/favourites"
	"github.com/riwaya/riwaya/internal/novels"
	"github.com/riwaya/riwaya/internal/platform/config"
	"github.com/riwaya/riwaya/internal/platform/constants"
	"github.com/riwaya/riwaya/internal/platform/middleware"
	"github.com/riwaya/riwaya/internal/tags"
	"github.com/riwaya/riwaya/internal/uploads"
	"github.com/riwaya/riwaya/internal/users"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles registration, login, and logout.
	Auth *auth.Handler

	// Users handles profiles and the follow graph.
	Users *users.Handler

	// Novels handles the catalog, covers, and tag attachments.
	Novels *novels.Handler

	// Chapters handles reading, views, likes, and comments.
	Chapters *chapters.Handler

	// Categories manages the fixed genre taxonomy.
	Categories *categories.Handler

	// Tags manages the free-form tag set.
	Tags *tags.Handler

	// Authors serves the public author directory.
	Authors *authors.Handler

	// Favourites manages the personal reading library.
	Favourites *favourites.Handler

	// Uploads stores ad-hoc files in object storage.
	Uploads *uploads.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, sessions middleware.SessionChecker, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier, sessions))
	r.Use(middleware.CORS(cfg, splitOrigins(cfg.ExtraOrigins)))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/users", h.Users.Routes())
		api.Mount("/novels", h.Novels.Routes())
		api.Mount("/novels/{novelId}/chapters", h.Chapters.NovelRoutes())
		api.Mount("/chapters", h.Chapters.Routes())
		api.Mount("/categories", h.Categories.Routes())
		api.Mount("/tags", h.Tags.Routes())
		api.Mount("/authors", h.Authors.Routes())
		api.Mount("/favourites", h.Favourites.Routes())
		api.Mount("/uploads", h.Uploads.Routes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// splitOrigins parses the comma-separated EXTRA_ORIGINS setting.
func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}

	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
