// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package like_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/core/like"
	"github.com/taibuivan/yomitube/internal/core/relation"
	"github.com/taibuivan/yomitube/internal/core/view"
	"github.com/taibuivan/yomitube/internal/platform/apperr"
	"github.com/taibuivan/yomitube/internal/store/memory"
	"github.com/taibuivan/yomitube/internal/store/storetest"
	"github.com/taibuivan/yomitube/pkg/pagination"
	"github.com/taibuivan/yomitube/pkg/uuid"
)

func newService(s *memory.Store) *like.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return like.NewService(relation.NewToggler(s, logger), view.NewComposer(s, logger))
}

func TestLikedVideos(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	service := newService(s)

	creator := storetest.NewUser(t, s)
	fan := storetest.NewUser(t, s)
	older := storetest.NewVideo(t, s, creator.ID, "Older")
	newer := storetest.NewVideo(t, s, creator.ID, "Newer")

	_, err := service.ToggleVideoLike(ctx, fan.ID, older.ID)
	require.NoError(t, err)
	storetest.Pause()
	_, err = service.ToggleVideoLike(ctx, fan.ID, newer.ID)
	require.NoError(t, err)

	page, err := service.LikedVideos(ctx, fan.ID, pagination.Normalize(1, 10))
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Newer", page.Items[0].Title)
	assert.Equal(t, creator.Username, page.Items[0].Owner.Username)

	// Unliking removes the video from the list.
	result, err := service.ToggleVideoLike(ctx, fan.ID, newer.ID)
	require.NoError(t, err)
	assert.Equal(t, relation.StateOff, result.State)

	page, err = service.LikedVideos(ctx, fan.ID, pagination.Normalize(1, 10))
	require.NoError(t, err)
	assert.Equal(t, 1, page.Pagination.Total)
}

func TestToggleKinds(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	service := newService(s)

	author := storetest.NewUser(t, s)
	video := storetest.NewVideo(t, s, author.ID, "Clip")

	comment := &entity.Comment{ID: uuid.New(), OwnerID: author.ID, VideoID: video.ID, Content: "hi"}
	require.NoError(t, s.CreateComment(ctx, comment))
	tweet := &entity.Tweet{ID: uuid.New(), OwnerID: author.ID, Content: "hello"}
	require.NoError(t, s.CreateTweet(ctx, tweet))

	result, err := service.ToggleCommentLike(ctx, author.ID, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.KindCommentLike, result.Edge.Kind)

	result, err = service.ToggleTweetLike(ctx, author.ID, tweet.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.KindTweetLike, result.Edge.Kind)

	// A video ID is not a tweet.
	_, err = service.ToggleTweetLike(ctx, author.ID, video.ID)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestLikeStatus(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	service := newService(s)

	author := storetest.NewUser(t, s)
	fan := storetest.NewUser(t, s)
	video := storetest.NewVideo(t, s, author.ID, "Clip")

	status, err := service.LikeStatus(ctx, fan.ID, video.ID, entity.KindVideoLike)
	require.NoError(t, err)
	assert.False(t, status.Liked)

	_, err = service.ToggleVideoLike(ctx, fan.ID, video.ID)
	require.NoError(t, err)

	status, err = service.LikeStatus(ctx, fan.ID, video.ID, entity.KindVideoLike)
	require.NoError(t, err)
	assert.True(t, status.Liked)

	// The same target under another kind is a different relation.
	status, err = service.LikeStatus(ctx, fan.ID, video.ID, entity.KindTweetLike)
	require.NoError(t, err)
	assert.False(t, status.Liked)

	_, err = service.LikeStatus(ctx, fan.ID, "nope", entity.KindVideoLike)
	assert.True(t, apperr.Is(err, apperr.CodeValidation))
}
