// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package relation_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/core/relation"
	"github.com/taibuivan/yomitube/internal/platform/apperr"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
	"github.com/taibuivan/yomitube/internal/store/memory"
	"github.com/taibuivan/yomitube/internal/store/storetest"
	"github.com/taibuivan/yomitube/pkg/uuid"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestToggle_FlipsState(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	toggler := relation.NewToggler(s, discard)

	alice := storetest.NewUser(t, s)
	bob := storetest.NewUser(t, s)
	video := storetest.NewVideo(t, s, alice.ID, "Launch")

	result, err := toggler.Toggle(ctx, bob.ID, video.ID, entity.KindVideoLike)
	require.NoError(t, err)
	assert.Equal(t, relation.StateOn, result.State)
	require.NotNil(t, result.Edge)
	assert.Equal(t, bob.ID, result.Edge.ActorID)
	assert.Equal(t, video.ID, result.Edge.TargetID)

	count, err := s.CountEdgesByTarget(ctx, entity.KindVideoLike, video.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	result, err = toggler.Toggle(ctx, bob.ID, video.ID, entity.KindVideoLike)
	require.NoError(t, err)
	assert.Equal(t, relation.StateOff, result.State)
	assert.Nil(t, result.Edge)

	count, err = s.CountEdgesByTarget(ctx, entity.KindVideoLike, video.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	exists, err := toggler.Exists(ctx, bob.ID, video.ID, entity.KindVideoLike)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestToggle_EveryKind(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	toggler := relation.NewToggler(s, discard)

	alice := storetest.NewUser(t, s)
	bob := storetest.NewUser(t, s)
	video := storetest.NewVideo(t, s, alice.ID, "Launch")
	comment := &entity.Comment{ID: uuid.New(), OwnerID: alice.ID, VideoID: video.ID, Content: "first"}
	require.NoError(t, s.CreateComment(ctx, comment))
	tweet := &entity.Tweet{ID: uuid.New(), OwnerID: alice.ID, Content: "hello"}
	require.NoError(t, s.CreateTweet(ctx, tweet))

	targets := map[entity.EdgeKind]string{
		entity.KindVideoLike:    video.ID,
		entity.KindCommentLike:  comment.ID,
		entity.KindTweetLike:    tweet.ID,
		entity.KindSubscription: alice.ID,
	}

	for kind, targetID := range targets {
		t.Run(string(kind), func(t *testing.T) {
			for i, want := range []relation.State{relation.StateOn, relation.StateOff, relation.StateOn} {
				result, err := toggler.Toggle(ctx, bob.ID, targetID, kind)
				require.NoError(t, err, "toggle %d", i)
				assert.Equal(t, want, result.State)
			}
			exists, err := toggler.Exists(ctx, bob.ID, targetID, kind)
			require.NoError(t, err)
			assert.True(t, exists)
		})
	}
}

func TestToggle_Rejections(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	toggler := relation.NewToggler(s, discard)
	alice := storetest.NewUser(t, s)

	tests := []struct {
		name     string
		actorID  string
		targetID string
		kind     entity.EdgeKind
		code     string
	}{
		{"malformed_actor", "not-a-uuid", uuid.New(), entity.KindVideoLike, apperr.CodeValidation},
		{"malformed_target", alice.ID, "42", entity.KindVideoLike, apperr.CodeValidation},
		{"unknown_kind", alice.ID, uuid.New(), entity.EdgeKind("playlist_like"), apperr.CodeValidation},
		{"missing_video", alice.ID, uuid.New(), entity.KindVideoLike, apperr.CodeNotFound},
		{"missing_channel", alice.ID, uuid.New(), entity.KindSubscription, apperr.CodeNotFound},
		{"self_subscription", alice.ID, alice.ID, entity.KindSubscription, apperr.CodeUnprocess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := toggler.Toggle(ctx, tt.actorID, tt.targetID, tt.kind)
			assert.Nil(t, result)
			assert.True(t, apperr.Is(err, tt.code), "got %v", err)
		})
	}

	_, err := toggler.Toggle(ctx, alice.ID, uuid.New(), entity.KindCommentLike)
	assert.Equal(t, "Comment not found", err.Error())
}

// Concurrent toggles of one triple must never leave more than one edge, and
// the final state must match the parity of successful toggles.
func TestToggle_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	toggler := relation.NewToggler(s, discard)

	alice := storetest.NewUser(t, s)
	bob := storetest.NewUser(t, s)
	video := storetest.NewVideo(t, s, alice.ID, "Viral")

	const workers = 32
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := toggler.Toggle(ctx, bob.ID, video.ID, entity.KindVideoLike)
			if err != nil {
				assert.True(t, apperr.Is(err, apperr.CodeConflict), "unexpected error %v", err)
				return
			}
			mu.Lock()
			succeeded++
			mu.Unlock()
		}()
	}
	wg.Wait()

	count, err := s.CountEdgesByTarget(ctx, entity.KindVideoLike, video.ID)
	require.NoError(t, err)
	assert.LessOrEqual(t, count, 1)
	assert.Equal(t, succeeded%2, count)
}

// racingStore inserts a rival edge right before the toggler's first insert,
// as a concurrent request would.
type racingStore struct {
	*memory.Store
	raced bool
}

func (r *racingStore) InsertEdge(ctx context.Context, edge *entity.Edge) error {
	if !r.raced {
		r.raced = true
		rival := *edge
		rival.ID = uuid.New()
		if err := r.Store.InsertEdge(ctx, &rival); err != nil {
			return err
		}
	}
	return r.Store.InsertEdge(ctx, edge)
}

func TestToggle_LostRaceRetriesAsDelete(t *testing.T) {
	ctx := context.Background()
	s := &racingStore{Store: memory.New()}
	toggler := relation.NewToggler(s, discard)

	alice := storetest.NewUser(t, s)
	bob := storetest.NewUser(t, s)

	result, err := toggler.Toggle(ctx, bob.ID, alice.ID, entity.KindSubscription)
	require.NoError(t, err)
	assert.Equal(t, relation.StateOff, result.State)

	count, err := s.CountEdgesByTarget(ctx, entity.KindSubscription, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

// contendedStore never lets a toggle settle.
type contendedStore struct {
	*memory.Store
	deleteErr error
}

func (c *contendedStore) DeleteEdge(context.Context, entity.EdgeKind, string, string) (bool, error) {
	return false, c.deleteErr
}

func (c *contendedStore) InsertEdge(context.Context, *entity.Edge) error {
	return dberr.ErrDuplicate
}

func TestToggle_GivesUpWithConflict(t *testing.T) {
	ctx := context.Background()
	s := &contendedStore{Store: memory.New()}
	toggler := relation.NewToggler(s, discard)

	alice := storetest.NewUser(t, s)
	bob := storetest.NewUser(t, s)

	_, err := toggler.Toggle(ctx, bob.ID, alice.ID, entity.KindSubscription)
	assert.True(t, apperr.Is(err, apperr.CodeConflict))
}

func TestToggle_StorageErrorPassesThrough(t *testing.T) {
	ctx := context.Background()
	storageErr := apperr.Internal(errors.New("connection reset"))
	s := &contendedStore{Store: memory.New(), deleteErr: storageErr}
	toggler := relation.NewToggler(s, discard)

	alice := storetest.NewUser(t, s)
	bob := storetest.NewUser(t, s)

	_, err := toggler.Toggle(ctx, bob.ID, alice.ID, entity.KindSubscription)
	assert.Same(t, storageErr, err)
}
