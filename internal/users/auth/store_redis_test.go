// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomitube/internal/platform/dberr"
	"github.com/taibuivan/yomitube/internal/users/auth"
)

func TestRedisSessionRepository(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repository := auth.NewSessionRepository(client)

	newSession := func(id, hash string) *auth.Session {
		return &auth.Session{
			ID:        id,
			UserID:    "user-1",
			TokenHash: hash,
			ExpiresAt: time.Now().Add(time.Hour),
			CreatedAt: time.Now(),
		}
	}

	first, second, third := newSession("s1", "h1"), newSession("s2", "h2"), newSession("s3", "h3")
	for _, session := range []*auth.Session{first, second, third} {
		require.NoError(t, repository.Create(ctx, session))
	}

	found, err := repository.FindByTokenHash(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, "s1", found.ID)
	assert.Equal(t, "user-1", found.UserID)

	require.NoError(t, repository.Revoke(ctx, first))
	_, err = repository.FindByTokenHash(ctx, "h1")
	assert.ErrorIs(t, err, dberr.ErrNotFound)

	require.NoError(t, repository.RevokeOthers(ctx, "user-1", "h2"))
	_, err = repository.FindByTokenHash(ctx, "h2")
	assert.NoError(t, err)
	_, err = repository.FindByTokenHash(ctx, "h3")
	assert.ErrorIs(t, err, dberr.ErrNotFound)

	// Sessions expire with their key.
	server.FastForward(2 * time.Hour)
	_, err = repository.FindByTokenHash(ctx, "h2")
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}
