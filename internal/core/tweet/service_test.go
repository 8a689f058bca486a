// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tweet_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomitube/internal/core/tweet"
	"github.com/taibuivan/yomitube/internal/core/view"
	"github.com/taibuivan/yomitube/internal/platform/apperr"
	"github.com/taibuivan/yomitube/internal/store/memory"
	"github.com/taibuivan/yomitube/internal/store/storetest"
	"github.com/taibuivan/yomitube/pkg/pagination"
)

func TestTweetLifecycle(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := memory.New()
	service := tweet.NewService(s, view.NewComposer(s, logger), logger)

	alice := storetest.NewUser(t, s)
	bob := storetest.NewUser(t, s)

	_, err := service.CreateTweet(ctx, alice.ID, tweet.Input{Content: strings.Repeat("a", 281)})
	assert.True(t, apperr.Is(err, apperr.CodeValidation))

	posted, err := service.CreateTweet(ctx, alice.ID, tweet.Input{Content: "first"})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, posted.OwnerID)

	page, err := service.ListTweets(ctx, alice.ID, pagination.Normalize(1, 10))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Pagination.Total)

	_, err = service.UpdateTweet(ctx, bob.ID, posted.ID, tweet.Input{Content: "hijacked"})
	assert.True(t, apperr.Is(err, apperr.CodeForbidden))
	assert.True(t, apperr.Is(service.DeleteTweet(ctx, bob.ID, posted.ID), apperr.CodeForbidden))

	updated, err := service.UpdateTweet(ctx, alice.ID, posted.ID, tweet.Input{Content: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	require.NoError(t, service.DeleteTweet(ctx, alice.ID, posted.ID))

	page, err = service.ListTweets(ctx, alice.ID, pagination.Normalize(1, 10))
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestTweet_BlankContent(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := memory.New()
	service := tweet.NewService(s, view.NewComposer(s, logger), logger)

	alice := storetest.NewUser(t, s)

	for _, content := range []string{"", "   ", " \t\n "} {
		_, err := service.CreateTweet(ctx, alice.ID, tweet.Input{Content: content})
		assert.True(t, apperr.Is(err, apperr.CodeValidation), "content %q", content)
	}

	page, err := service.ListTweets(ctx, alice.ID, pagination.Normalize(1, 10))
	require.NoError(t, err)
	assert.Zero(t, page.Pagination.Total)

	posted, err := service.CreateTweet(ctx, alice.ID, tweet.Input{Content: "  hello  "})
	require.NoError(t, err)
	assert.Equal(t, "hello", posted.Content)

	_, err = service.UpdateTweet(ctx, alice.ID, posted.ID, tweet.Input{Content: "   "})
	assert.True(t, apperr.Is(err, apperr.CodeValidation))

	stored, err := s.FindTweetByID(ctx, posted.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", stored.Content)
}
