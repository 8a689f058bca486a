// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mongodb_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	mongoplatform "github.com/taibuivan/yomitube/internal/platform/mongo"
	"github.com/taibuivan/yomitube/internal/store"
	"github.com/taibuivan/yomitube/internal/store/mongodb"
	"github.com/taibuivan/yomitube/internal/store/storetest"
)

// TestMongoStore runs the shared suite against TEST_MONGO_URI.
func TestMongoStore(t *testing.T) {
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set")
	}

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client, err := mongoplatform.NewClient(ctx, uri, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	repository := mongodb.NewRepository(client, "yomitube_test")
	require.NoError(t, repository.EnsureIndexes(ctx))

	storetest.Run(t, func(t *testing.T) store.Store {
		return repository
	})
}
