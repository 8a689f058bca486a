// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package view_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/core/view"
	"github.com/taibuivan/yomitube/internal/platform/apperr"
	"github.com/taibuivan/yomitube/internal/store"
	"github.com/taibuivan/yomitube/internal/store/memory"
	"github.com/taibuivan/yomitube/internal/store/storetest"
	"github.com/taibuivan/yomitube/pkg/pagination"
	"github.com/taibuivan/yomitube/pkg/uuid"
)

// tickingClock advances one second per call so creation order is unambiguous.
func tickingClock() func() time.Time {
	var mu sync.Mutex
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)
		return current
	}
}

func setup(t *testing.T) (*memory.Store, *view.Composer) {
	t.Helper()
	s := memory.New(memory.WithClock(tickingClock()))
	return s, view.NewComposer(s, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func like(t *testing.T, s store.Store, kind entity.EdgeKind, actorID, targetID string) {
	t.Helper()
	edge := &entity.Edge{ID: uuid.New(), Kind: kind, ActorID: actorID, TargetID: targetID}
	require.NoError(t, s.InsertEdge(context.Background(), edge))
}

func TestVideoDetail(t *testing.T) {
	ctx := context.Background()
	s, composer := setup(t)

	alice := storetest.NewUser(t, s)
	bob := storetest.NewUser(t, s)
	video := storetest.NewVideo(t, s, alice.ID, "Launch")

	like(t, s, entity.KindVideoLike, bob.ID, video.ID)
	require.NoError(t, s.CreateComment(ctx, &entity.Comment{ID: uuid.New(), OwnerID: bob.ID, VideoID: video.ID, Content: "nice"}))
	require.NoError(t, s.CreateComment(ctx, &entity.Comment{ID: uuid.New(), OwnerID: uuid.New(), VideoID: video.ID, Content: "orphan"}))

	t.Run("joins", func(t *testing.T) {
		detail, err := composer.VideoDetail(ctx, video.ID, bob.ID)
		require.NoError(t, err)

		require.NotNil(t, detail.Owner)
		assert.Equal(t, alice.Username, detail.Owner.Username)
		assert.Equal(t, 1, detail.LikeCount)
		assert.True(t, detail.IsLiked)
		assert.Equal(t, 2, detail.CommentCount)
		require.Len(t, detail.Comments, 2)

		// Newest first: the orphan comment was created last and has no owner.
		assert.Equal(t, "orphan", detail.Comments[0].Content)
		assert.Nil(t, detail.Comments[0].Owner)
		require.NotNil(t, detail.Comments[1].Owner)
		assert.Equal(t, bob.Username, detail.Comments[1].Owner.Username)
	})

	t.Run("anonymous_viewer", func(t *testing.T) {
		detail, err := composer.VideoDetail(ctx, video.ID, "")
		require.NoError(t, err)
		assert.False(t, detail.IsLiked)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := composer.VideoDetail(ctx, uuid.New(), "")
		require.True(t, apperr.Is(err, apperr.CodeNotFound))
		assert.Equal(t, "Video not found", err.Error())
	})
}

func TestVideoDetail_CountsEveryView(t *testing.T) {
	ctx := context.Background()
	s, composer := setup(t)

	owner := storetest.NewUser(t, s)
	video := storetest.NewVideo(t, s, owner.ID, "Counter")

	const fetches = 5
	for i := 1; i <= fetches; i++ {
		detail, err := composer.VideoDetail(ctx, video.ID, "")
		require.NoError(t, err)
		assert.EqualValues(t, i, detail.Views)
	}

	stored, err := s.FindVideoByID(ctx, video.ID)
	require.NoError(t, err)
	assert.EqualValues(t, fetches, stored.Views)
}

func TestVideoDetail_UnpublishedOnlyForOwner(t *testing.T) {
	ctx := context.Background()
	s, composer := setup(t)

	owner := storetest.NewUser(t, s)
	stranger := storetest.NewUser(t, s)
	video := storetest.NewVideo(t, s, owner.ID, "Draft")
	video.IsPublished = false
	require.NoError(t, s.UpdateVideo(ctx, video))

	for _, viewerID := range []string{stranger.ID, "", stranger.ID} {
		_, err := composer.VideoDetail(ctx, video.ID, viewerID)
		assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	}

	// Refused fetches leave the counter alone.
	stored, err := s.FindVideoByID(ctx, video.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, stored.Views)

	detail, err := composer.VideoDetail(ctx, video.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, detail.IsPublished)
	assert.EqualValues(t, 1, detail.Views)
}

func TestVideos(t *testing.T) {
	ctx := context.Background()
	s, composer := setup(t)

	owner := storetest.NewUser(t, s)
	other := storetest.NewUser(t, s)

	storetest.NewVideo(t, s, owner.ID, "Cooking pasta")
	storetest.NewVideo(t, s, other.ID, "Pasta at home")
	draft := storetest.NewVideo(t, s, owner.ID, "Pasta draft")
	draft.IsPublished = false
	require.NoError(t, s.UpdateVideo(ctx, draft))

	params := pagination.Normalize(1, 10)

	t.Run("search_hides_drafts", func(t *testing.T) {
		page, err := composer.Videos(ctx, "", store.VideoFilter{Query: "PASTA"}, params)
		require.NoError(t, err)
		assert.Equal(t, 2, page.Pagination.Total)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "Pasta at home", page.Items[0].Title)
		require.NotNil(t, page.Items[0].Owner)
		assert.Equal(t, other.Username, page.Items[0].Owner.Username)
	})

	t.Run("owner_sees_drafts", func(t *testing.T) {
		page, err := composer.Videos(ctx, owner.ID, store.VideoFilter{OwnerID: owner.ID}, params)
		require.NoError(t, err)
		assert.Equal(t, 2, page.Pagination.Total)
		assert.Equal(t, draft.ID, page.Items[0].ID)
	})

	t.Run("stranger_does_not", func(t *testing.T) {
		page, err := composer.Videos(ctx, other.ID, store.VideoFilter{OwnerID: owner.ID}, params)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Pagination.Total)
	})

	t.Run("ascending", func(t *testing.T) {
		page, err := composer.Videos(ctx, "", store.VideoFilter{Ascending: true}, params)
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "Cooking pasta", page.Items[0].Title)
	})

	t.Run("past_the_end", func(t *testing.T) {
		page, err := composer.Videos(ctx, "", store.VideoFilter{}, pagination.Normalize(5, 10))
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.NotNil(t, page.Items)
		assert.Equal(t, pagination.Meta{Total: 2, Page: 5, Pages: 1}, page.Pagination)
	})
}

func TestTweets_PaginatedNewestFirst(t *testing.T) {
	ctx := context.Background()
	s, composer := setup(t)
	author := storetest.NewUser(t, s)

	ids := make([]string, 0, 5)
	for range 5 {
		tweet := &entity.Tweet{ID: uuid.New(), OwnerID: author.ID, Content: "post"}
		require.NoError(t, s.CreateTweet(ctx, tweet))
		ids = append(ids, tweet.ID)
	}

	page, err := composer.Tweets(ctx, author.ID, pagination.Normalize(1, 2))
	require.NoError(t, err)

	assert.Equal(t, pagination.Meta{Total: 5, Page: 1, Pages: 3}, page.Pagination)
	require.Len(t, page.Items, 2)
	assert.Equal(t, ids[4], page.Items[0].ID)
	assert.Equal(t, ids[3], page.Items[1].ID)
	assert.Equal(t, author.Username, page.Items[0].Owner.Username)

	_, err = composer.Tweets(ctx, uuid.New(), pagination.Normalize(1, 2))
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestComments(t *testing.T) {
	ctx := context.Background()
	s, composer := setup(t)

	author := storetest.NewUser(t, s)
	video := storetest.NewVideo(t, s, author.ID, "Talk")

	page, err := composer.Comments(ctx, video.ID, pagination.Normalize(1, 10))
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Pagination.Pages)

	_, err = composer.Comments(ctx, uuid.New(), pagination.Normalize(1, 10))
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestPlaylist(t *testing.T) {
	ctx := context.Background()
	s, composer := setup(t)

	curator := storetest.NewUser(t, s)
	creator := storetest.NewUser(t, s)
	first := storetest.NewVideo(t, s, creator.ID, "First")
	second := storetest.NewVideo(t, s, curator.ID, "Second")

	playlist := &entity.Playlist{
		ID:       uuid.New(),
		OwnerID:  curator.ID,
		Name:     "Mix",
		VideoIDs: []string{second.ID, uuid.New(), first.ID},
	}
	require.NoError(t, s.CreatePlaylist(ctx, playlist))

	detail, err := composer.Playlist(ctx, playlist.ID)
	require.NoError(t, err)

	assert.Equal(t, curator.Username, detail.Creator.Username)
	assert.Equal(t, 2, detail.TotalVideos)
	require.Len(t, detail.Videos, 2)
	assert.Equal(t, second.ID, detail.Videos[0].ID)
	assert.Equal(t, first.ID, detail.Videos[1].ID)
	assert.Equal(t, creator.Username, detail.Videos[1].Owner.Username)

	listed, err := composer.UserPlaylists(ctx, curator.ID, pagination.Normalize(1, 10))
	require.NoError(t, err)
	require.Len(t, listed.Items, 1)
	assert.Equal(t, 3, listed.Items[0].TotalVideos)
}

func TestLikedVideos_DeletedVideo(t *testing.T) {
	ctx := context.Background()
	s, composer := setup(t)

	creator := storetest.NewUser(t, s)
	fan := storetest.NewUser(t, s)
	other := storetest.NewUser(t, s)
	kept := storetest.NewVideo(t, s, creator.ID, "Kept")
	gone := storetest.NewVideo(t, s, creator.ID, "Gone")

	like(t, s, entity.KindVideoLike, fan.ID, kept.ID)
	like(t, s, entity.KindVideoLike, other.ID, kept.ID)
	like(t, s, entity.KindVideoLike, fan.ID, gone.ID)
	require.NoError(t, s.DeleteVideo(ctx, gone.ID))

	page, err := composer.LikedVideos(ctx, fan.ID, pagination.Normalize(1, 10))
	require.NoError(t, err)
	assert.Equal(t, 2, page.Pagination.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, kept.ID, page.Items[0].ID)

	detail, err := composer.VideoDetail(ctx, kept.ID, fan.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, detail.LikeCount)
}

func TestSubscriptions_CountMatchesList(t *testing.T) {
	ctx := context.Background()
	s, composer := setup(t)

	channel := storetest.NewUser(t, s)
	first := storetest.NewUser(t, s)
	second := storetest.NewUser(t, s)

	like(t, s, entity.KindSubscription, first.ID, channel.ID)
	like(t, s, entity.KindSubscription, second.ID, channel.ID)
	like(t, s, entity.KindSubscription, uuid.New(), channel.ID) // account no longer exists
	like(t, s, entity.KindSubscription, first.ID, second.ID)

	subscribers, err := composer.Subscribers(ctx, channel.ID)
	require.NoError(t, err)
	assert.Equal(t, len(subscribers.Users), subscribers.Count)
	require.Equal(t, 2, subscribers.Count)
	assert.Equal(t, second.ID, subscribers.Users[0].ID)

	channels, err := composer.SubscribedChannels(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, len(channels.Users), channels.Count)
	assert.Equal(t, 2, channels.Count)

	empty, err := composer.SubscribedChannels(ctx, channel.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Count)
	assert.NotNil(t, empty.Users)

	_, err = composer.Subscribers(ctx, uuid.New())
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestChannel(t *testing.T) {
	ctx := context.Background()
	s, composer := setup(t)

	creator := storetest.NewUser(t, s)
	fan := storetest.NewUser(t, s)
	like(t, s, entity.KindSubscription, fan.ID, creator.ID)

	profile, err := composer.Channel(ctx, creator.Username, fan.ID)
	require.NoError(t, err)
	assert.Equal(t, creator.ID, profile.ID)
	assert.Equal(t, 1, profile.SubscribersCount)
	assert.Equal(t, 0, profile.SubscribedToCount)
	assert.True(t, profile.IsSubscribed)

	anonymous, err := composer.Channel(ctx, creator.Username, "")
	require.NoError(t, err)
	assert.False(t, anonymous.IsSubscribed)

	_, err = composer.Channel(ctx, "nobody_here", "")
	assert.Equal(t, "Channel not found", err.Error())
}

func TestChannel_CountsMatchLists(t *testing.T) {
	ctx := context.Background()
	s, composer := setup(t)

	creator := storetest.NewUser(t, s)
	fan := storetest.NewUser(t, s)
	like(t, s, entity.KindSubscription, fan.ID, creator.ID)
	like(t, s, entity.KindSubscription, uuid.New(), creator.ID)
	like(t, s, entity.KindSubscription, creator.ID, fan.ID)
	like(t, s, entity.KindSubscription, creator.ID, uuid.New())

	profile, err := composer.Channel(ctx, creator.Username, "")
	require.NoError(t, err)

	subscribers, err := composer.Subscribers(ctx, creator.ID)
	require.NoError(t, err)
	channels, err := composer.SubscribedChannels(ctx, creator.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, profile.SubscribersCount)
	assert.Equal(t, subscribers.Count, profile.SubscribersCount)
	assert.Equal(t, 1, profile.SubscribedToCount)
	assert.Equal(t, channels.Count, profile.SubscribedToCount)
}
