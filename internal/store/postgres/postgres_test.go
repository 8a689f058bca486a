// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomitube/internal/platform/migration"
	pgplatform "github.com/taibuivan/yomitube/internal/platform/postgres"
	"github.com/taibuivan/yomitube/internal/store"
	"github.com/taibuivan/yomitube/internal/store/postgres"
	"github.com/taibuivan/yomitube/internal/store/storetest"
)

// TestPostgresStore runs the shared suite against TEST_DATABASE_URL.
func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, migration.RunUp(dsn, "../../../data/migrations", logger))

	pool, err := pgplatform.NewPool(context.Background(), dsn, pgplatform.PoolOptions{MaxConns: 4}, logger)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	repository := postgres.NewRepository(pool)
	storetest.Run(t, func(t *testing.T) store.Store {
		return repository
	})
}
