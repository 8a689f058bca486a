// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package storetest holds the behavioural suite every [store.Store] backend must
pass. Backend packages call [Run] from their own tests with a factory that
returns a ready store.

Records are created with fresh UUIDs and randomised handles so the suite can
run repeatedly against a shared database.
*/
package storetest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
	"github.com/taibuivan/yomitube/internal/store"
	"github.com/taibuivan/yomitube/pkg/uuid"
)

// Factory returns the store under test.
type Factory func(t *testing.T) store.Store

// Run executes the full suite.
func Run(t *testing.T, factory Factory) {
	t.Run("Users", func(t *testing.T) { testUsers(t, factory(t)) })
	t.Run("Videos", func(t *testing.T) { testVideos(t, factory(t)) })
	t.Run("Comments", func(t *testing.T) { testComments(t, factory(t)) })
	t.Run("Tweets", func(t *testing.T) { testTweets(t, factory(t)) })
	t.Run("Playlists", func(t *testing.T) { testPlaylists(t, factory(t)) })
	t.Run("Edges", func(t *testing.T) { testEdges(t, factory(t)) })
}

// handle returns a short unique lowercase username.
func handle(prefix string) string {
	id := strings.ReplaceAll(uuid.New(), "-", "")
	return prefix + "_" + id[len(id)-12:]
}

// NewUser inserts a user with a unique handle and email.
func NewUser(t *testing.T, s store.Store) *entity.User {
	t.Helper()
	name := handle("user")
	user := &entity.User{
		ID:           uuid.New(),
		Username:     name,
		Email:        name + "@example.com",
		DisplayName:  "User " + name,
		AvatarURL:    "https://cdn.example.com/" + name + ".png",
		PasswordHash: "hash",
	}
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user
}

// NewVideo inserts a published video owned by ownerID.
func NewVideo(t *testing.T, s store.Store, ownerID, title string) *entity.Video {
	t.Helper()
	video := &entity.Video{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		VideoURL:     "https://cdn.example.com/v.mp4",
		ThumbnailURL: "https://cdn.example.com/t.png",
		Title:        title,
		Description:  "about " + title,
		Duration:     60,
		IsPublished:  true,
	}
	require.NoError(t, s.CreateVideo(context.Background(), video))
	return video
}

// Pause separates creation timestamps on backends with millisecond precision.
func Pause() {
	time.Sleep(2 * time.Millisecond)
}

func testUsers(t *testing.T, s store.Store) {
	ctx := context.Background()
	alice := NewUser(t, s)

	t.Run("lookup", func(t *testing.T) {
		byName, err := s.FindUserByUsername(ctx, strings.ToUpper(alice.Username))
		require.NoError(t, err)
		assert.Equal(t, alice.ID, byName.ID)

		byEmail, err := s.FindUserByEmail(ctx, strings.ToUpper(alice.Email))
		require.NoError(t, err)
		assert.Equal(t, alice.ID, byEmail.ID)

		_, err = s.FindUserByID(ctx, uuid.New())
		assert.True(t, dberr.IsNotFound(err))
	})

	t.Run("uniqueness", func(t *testing.T) {
		sameName := &entity.User{ID: uuid.New(), Username: alice.Username, Email: handle("x") + "@example.com", DisplayName: "x", PasswordHash: "h"}
		assert.True(t, dberr.IsDuplicate(s.CreateUser(ctx, sameName)))

		sameEmail := &entity.User{ID: uuid.New(), Username: handle("y"), Email: strings.ToUpper(alice.Email), DisplayName: "y", PasswordHash: "h"}
		assert.True(t, dberr.IsDuplicate(s.CreateUser(ctx, sameEmail)))
	})

	t.Run("batch", func(t *testing.T) {
		bob := NewUser(t, s)
		found, err := s.FindUsersByIDs(ctx, []string{alice.ID, bob.ID, uuid.New()})
		require.NoError(t, err)
		assert.Len(t, found, 2)
		assert.Equal(t, bob.Username, found[bob.ID].Username)
	})

	t.Run("update", func(t *testing.T) {
		alice.DisplayName = "Alice Renamed"
		require.NoError(t, s.UpdateUser(ctx, alice))

		reloaded, err := s.FindUserByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice Renamed", reloaded.DisplayName)

		ghost := &entity.User{ID: uuid.New(), Email: handle("g") + "@example.com"}
		assert.True(t, dberr.IsNotFound(s.UpdateUser(ctx, ghost)))
	})
}

func testVideos(t *testing.T, s store.Store) {
	ctx := context.Background()
	owner := NewUser(t, s)
	token := handle("tok")

	first := NewVideo(t, s, owner.ID, "Intro "+token)
	Pause()
	second := NewVideo(t, s, owner.ID, "Deep dive")
	Pause()
	hidden := NewVideo(t, s, owner.ID, "Draft "+token)
	hidden.IsPublished = false
	require.NoError(t, s.UpdateVideo(ctx, hidden))

	t.Run("newest_first_window", func(t *testing.T) {
		filter := store.VideoFilter{OwnerID: owner.ID}
		page, total, err := s.ListVideos(ctx, filter, 0, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, page, 2)
		assert.Equal(t, hidden.ID, page[0].ID)
		assert.Equal(t, second.ID, page[1].ID)

		past, total, err := s.ListVideos(ctx, filter, 10, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Empty(t, past)
	})

	t.Run("query_and_published", func(t *testing.T) {
		filter := store.VideoFilter{OwnerID: owner.ID, Query: strings.ToUpper(token), PublishedOnly: true}
		page, total, err := s.ListVideos(ctx, filter, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, page, 1)
		assert.Equal(t, first.ID, page[0].ID)
	})

	t.Run("views", func(t *testing.T) {
		require.NoError(t, s.IncrementVideoViews(ctx, second.ID))
		require.NoError(t, s.IncrementVideoViews(ctx, second.ID))

		filter := store.VideoFilter{OwnerID: owner.ID, SortBy: store.SortViews}
		page, _, err := s.ListVideos(ctx, filter, 0, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, second.ID, page[0].ID)
		assert.EqualValues(t, 2, page[0].Views)

		assert.True(t, dberr.IsNotFound(s.IncrementVideoViews(ctx, uuid.New())))
	})

	t.Run("batch_and_delete", func(t *testing.T) {
		found, err := s.FindVideosByIDs(ctx, []string{first.ID, uuid.New()})
		require.NoError(t, err)
		assert.Len(t, found, 1)

		require.NoError(t, s.DeleteVideo(ctx, first.ID))
		_, err = s.FindVideoByID(ctx, first.ID)
		assert.True(t, dberr.IsNotFound(err))
		assert.True(t, dberr.IsNotFound(s.DeleteVideo(ctx, first.ID)))
	})
}

func testComments(t *testing.T, s store.Store) {
	ctx := context.Background()
	owner := NewUser(t, s)
	video := NewVideo(t, s, owner.ID, "Commented")

	ids := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		comment := &entity.Comment{ID: uuid.New(), OwnerID: owner.ID, VideoID: video.ID, Content: "c"}
		require.NoError(t, s.CreateComment(ctx, comment))
		ids = append(ids, comment.ID)
		Pause()
	}

	page, total, err := s.ListCommentsByVideo(ctx, video.ID, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 1)
	assert.Equal(t, ids[1], page[0].ID)

	edited := &entity.Comment{ID: ids[0], Content: "edited"}
	require.NoError(t, s.UpdateComment(ctx, edited))
	reloaded, err := s.FindCommentByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, "edited", reloaded.Content)
	assert.Equal(t, owner.ID, reloaded.OwnerID)

	require.NoError(t, s.DeleteComment(ctx, ids[0]))
	assert.True(t, dberr.IsNotFound(s.DeleteComment(ctx, ids[0])))
}

func testTweets(t *testing.T, s store.Store) {
	ctx := context.Background()
	owner := NewUser(t, s)

	ids := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		tweet := &entity.Tweet{ID: uuid.New(), OwnerID: owner.ID, Content: "t"}
		require.NoError(t, s.CreateTweet(ctx, tweet))
		ids = append(ids, tweet.ID)
		Pause()
	}

	page, total, err := s.ListTweetsByOwner(ctx, owner.ID, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, ids[4], page[0].ID)
	assert.Equal(t, ids[3], page[1].ID)

	edited := &entity.Tweet{ID: ids[2], Content: "edited"}
	require.NoError(t, s.UpdateTweet(ctx, edited))
	assert.Equal(t, "edited", edited.Content)

	require.NoError(t, s.DeleteTweet(ctx, ids[2]))
	_, err = s.FindTweetByID(ctx, ids[2])
	assert.True(t, dberr.IsNotFound(err))
}

func testPlaylists(t *testing.T, s store.Store) {
	ctx := context.Background()
	owner := NewUser(t, s)
	videoA, videoB, videoC := uuid.New(), uuid.New(), uuid.New()

	playlist := &entity.Playlist{
		ID:       uuid.New(),
		OwnerID:  owner.ID,
		Name:     "Watch later",
		VideoIDs: []string{videoA, videoB, videoA},
	}
	require.NoError(t, s.CreatePlaylist(ctx, playlist))
	assert.Equal(t, []string{videoA, videoB}, playlist.VideoIDs)

	added, err := s.AddPlaylistVideo(ctx, playlist.ID, videoA)
	require.NoError(t, err)
	assert.False(t, added)

	added, err = s.AddPlaylistVideo(ctx, playlist.ID, videoC)
	require.NoError(t, err)
	assert.True(t, added)

	removed, err := s.RemovePlaylistVideo(ctx, playlist.ID, videoB)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.RemovePlaylistVideo(ctx, playlist.ID, videoB)
	require.NoError(t, err)
	assert.False(t, removed)

	reloaded, err := s.FindPlaylistByID(ctx, playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{videoA, videoC}, reloaded.VideoIDs)

	_, err = s.AddPlaylistVideo(ctx, uuid.New(), videoA)
	assert.True(t, dberr.IsNotFound(err))

	empty := &entity.Playlist{ID: uuid.New(), OwnerID: owner.ID, Name: "Empty"}
	require.NoError(t, s.CreatePlaylist(ctx, empty))

	page, total, err := s.ListPlaylistsByOwner(ctx, owner.ID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, page, 2)
	assert.Equal(t, empty.ID, page[0].ID)
	assert.NotNil(t, page[0].VideoIDs)

	empty.Name = "Renamed"
	require.NoError(t, s.UpdatePlaylist(ctx, empty))
	assert.Equal(t, "Renamed", empty.Name)

	require.NoError(t, s.DeletePlaylist(ctx, empty.ID))
	_, err = s.FindPlaylistByID(ctx, empty.ID)
	assert.True(t, dberr.IsNotFound(err))
}

func testEdges(t *testing.T, s store.Store) {
	ctx := context.Background()
	actor, target := uuid.New(), uuid.New()

	edge := &entity.Edge{ID: uuid.New(), Kind: entity.KindVideoLike, ActorID: actor, TargetID: target}
	require.NoError(t, s.InsertEdge(ctx, edge))
	assert.False(t, edge.CreatedAt.IsZero())

	clash := &entity.Edge{ID: uuid.New(), Kind: entity.KindVideoLike, ActorID: actor, TargetID: target}
	assert.True(t, dberr.IsDuplicate(s.InsertEdge(ctx, clash)))

	// Same pair under another kind is a different relation.
	other := &entity.Edge{ID: uuid.New(), Kind: entity.KindSubscription, ActorID: actor, TargetID: target}
	require.NoError(t, s.InsertEdge(ctx, other))

	exists, err := s.EdgeExists(ctx, entity.KindVideoLike, actor, target)
	require.NoError(t, err)
	assert.True(t, exists)

	count, err := s.CountEdgesByTarget(ctx, entity.KindVideoLike, target)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	Pause()
	second := &entity.Edge{ID: uuid.New(), Kind: entity.KindVideoLike, ActorID: actor, TargetID: uuid.New()}
	require.NoError(t, s.InsertEdge(ctx, second))

	page, total, err := s.ListEdgesByActor(ctx, entity.KindVideoLike, actor, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, page, 1)
	assert.Equal(t, second.ID, page[0].ID)

	byTarget, err := s.ListEdgesByTarget(ctx, entity.KindSubscription, target)
	require.NoError(t, err)
	require.Len(t, byTarget, 1)
	assert.Equal(t, actor, byTarget[0].ActorID)

	deleted, err := s.DeleteEdge(ctx, entity.KindVideoLike, actor, target)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.DeleteEdge(ctx, entity.KindVideoLike, actor, target)
	require.NoError(t, err)
	assert.False(t, deleted)

	count, err = s.CountEdgesByActor(ctx, entity.KindVideoLike, actor)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
