// Copyright (c) 2026 Riwaya. All rights reserved.

// Command api is the entry point for the Riwaya HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Connect to object storage (S3-compatible).
//  6. Run database migrations (idempotent).
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/riwaya/riwaya/internal/api"
	"github.com/riwaya/riwaya/internal/auth"
	"github.com/riwaya/riwaya/internal/authors"
	"github.com/riwaya/riwaya/internal/categories"
	"github.com/riwaya/riwaya/internal/chapters"
	"github.com/riwaya/riwaya/internal/favourites"
	"github.com/riwaya/riwaya/internal/novels"
	"github.com/riwaya/riwaya/internal/platform/config"
	"github.com/riwaya/riwaya/internal/platform/constants"
	"github.com/riwaya/riwaya/internal/platform/migration"
	pgstore "github.com/riwaya/riwaya/internal/platform/postgres"
	redisstore "github.com/riwaya/riwaya/internal/platform/redis"
	"github.com/riwaya/riwaya/internal/platform/sec"
	"github.com/riwaya/riwaya/internal/platform/storage"
	"github.com/riwaya/riwaya/internal/tags"
	"github.com/riwaya/riwaya/internal/uploads"
	"github.com/riwaya/riwaya/internal/users"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Riwaya] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	// A local .env file is optional; real deployments inject the environment.
	if err := godotenv.Load(); err == nil {
		log.Info("dotenv_loaded")
	}

	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Object Storage ─────────────────────────────────────────────────
	objectStore, err := storage.NewS3Store(startupCtx, storage.Config{
		Bucket:        cfg.S3Bucket,
		Region:        cfg.S3Region,
		Endpoint:      cfg.S3Endpoint,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		PublicBaseURL: cfg.S3PublicBaseURL,
	}, log)
	must(log, err, "connect to object storage")

	// ── 6. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 7. Auth Service ───────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.TokenSecret, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewPostgresUserRepository(pool)
	sessionRepository := auth.NewRedisSessionRepository(rdb)
	authService := auth.NewService(userRepository, sessionRepository, jwtSvc, log)

	profileRepository := users.NewPostgresRepository(pool)
	userService := users.NewService(profileRepository, objectStore, jwtSvc, log)

	novelRepository := novels.NewPostgresRepository(pool)
	novelService := novels.NewService(novelRepository, objectStore, log)

	chapterRepository := chapters.NewPostgresRepository(pool)
	chapterService := chapters.NewService(chapterRepository, log)

	categoryRepository := categories.NewPostgresRepository(pool)
	categoryService := categories.NewService(categoryRepository, log)

	tagRepository := tags.NewPostgresRepository(pool)
	tagService := tags.NewService(tagRepository, log)

	authorRepository := authors.NewPostgresRepository(pool)
	authorService := authors.NewService(authorRepository)

	favouriteRepository := favourites.NewPostgresRepository(pool)
	favouriteService := favourites.NewService(favouriteRepository, log)

	uploadService := uploads.NewService(objectStore, log)

	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       auth.NewHandler(authService),
		Users:      users.NewHandler(userService),
		Novels:     novels.NewHandler(novelService),
		Chapters:   chapters.NewHandler(chapterService),
		Categories: categories.NewHandler(categoryService),
		Tags:       tags.NewHandler(tagService),
		Authors:    authors.NewHandler(authorService),
		Favourites: favourites.NewHandler(favouriteService),
		Uploads:    uploads.NewHandler(uploadService),
	}

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	// serverCtx outlives startup: the rate limiter's cleanup goroutine runs
	// until shutdown.
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, sessionRepository, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
