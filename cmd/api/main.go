// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the YomiTube HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the entity store selected by STORE_DRIVER (postgres, mongo or memory).
//  4. Connect to Redis for refresh sessions.
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/yomitube/internal/api"
	"github.com/taibuivan/yomitube/internal/platform/config"
	"github.com/taibuivan/yomitube/internal/platform/constants"
	"github.com/taibuivan/yomitube/internal/platform/migration"
	mongoplatform "github.com/taibuivan/yomitube/internal/platform/mongo"
	pgplatform "github.com/taibuivan/yomitube/internal/platform/postgres"
	redisplatform "github.com/taibuivan/yomitube/internal/platform/redis"
	"github.com/taibuivan/yomitube/internal/platform/sec"
	"github.com/taibuivan/yomitube/internal/store"
	"github.com/taibuivan/yomitube/internal/store/memory"
	"github.com/taibuivan/yomitube/internal/store/mongodb"
	"github.com/taibuivan/yomitube/internal/store/postgres"
	"github.com/taibuivan/yomitube/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("store_driver", cfg.StoreDriver),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Entity Store ───────────────────────────────────────────────────
	entities, closeStore, err := openStore(startupCtx, cfg, log)
	must(log, err, "open entity store")
	defer closeStore()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisplatform.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	handlers := api.NewHandlers(api.Dependencies{
		Store:    entities,
		Sessions: auth.NewSessionRepository(rdb),
		Tokens:   jwtSvc,
		Checks: []api.DependencyCheck{
			{Name: cfg.StoreDriver, Check: entities.Ping},
			{Name: "redis", Check: func(ctx context.Context) error { return redisplatform.Ping(ctx, rdb) }},
		},
		Logger:        log,
		SecureCookies: !cfg.IsDevelopment(),
	})

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	server := api.NewServer(appCtx, cfg, log, jwtSvc, handlers)

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

// newLogger builds the JSON logger tagged with the application name.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

/*
openStore connects the backend named by cfg.StoreDriver and prepares its
schema: migrations for postgres, indexes for mongo.

Returns:
  - store.Store: The ready entity store
  - func(): Releases the connection
  - error: Connection or schema failures
*/
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (store.Store, func(), error) {
	switch cfg.StoreDriver {
	case constants.DriverPostgres:
		if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
			return nil, nil, err
		}
		pool, err := pgplatform.NewPool(ctx, cfg.DatabaseURL, pgplatform.PoolOptions{MaxConns: cfg.DatabaseMaxConns}, log)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewRepository(pool), func() {
			log.Info("closing postgres pool")
			pool.Close()
		}, nil

	case constants.DriverMongo:
		client, err := mongoplatform.NewClient(ctx, cfg.MongoURI, log)
		if err != nil {
			return nil, nil, err
		}
		repository := mongodb.NewRepository(client, cfg.MongoDatabase)
		if err := repository.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}
		return repository, func() {
			log.Info("closing mongo client")
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error("mongo disconnect error", slog.Any("error", err))
			}
		}, nil

	case constants.DriverMemory:
		log.Warn("memory_store_selected", slog.String("note", "data is lost on restart"))
		return memory.New(), func() {}, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
