// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package memory implements [store.Store] with mutex-guarded maps.

It enforces the same uniqueness rules as the database backends (username,
email, one edge per kind/actor/target, playlist video sets) so the core can be
exercised without infrastructure. Records are stored by value and copied on
the way in and out; callers never alias internal state.
*/
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/store"
)

// Store is the in-memory backend.
type Store struct {
	mu sync.RWMutex

	users     map[string]entity.User
	videos    map[string]entity.Video
	comments  map[string]entity.Comment
	tweets    map[string]entity.Tweet
	playlists map[string]entity.Playlist
	edges     map[edgeKey]entity.Edge

	now func() time.Time
}

type edgeKey struct {
	kind     entity.EdgeKind
	actorID  string
	targetID string
}

var _ store.Store = (*Store)(nil)

// Option mutates store configuration.
type Option func(*Store)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		users:     make(map[string]entity.User),
		videos:    make(map[string]entity.Video),
		comments:  make(map[string]entity.Comment),
		tweets:    make(map[string]entity.Tweet),
		playlists: make(map[string]entity.Playlist),
		edges:     make(map[edgeKey]entity.Edge),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error {
	return nil
}

// window applies skip/limit to an already ordered slice.
func window[T any](items []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []T{}
	}
	items = items[skip:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// newestFirst orders records by creation time, then ID, both descending.
// IDs are UUIDv7 so the tie-break follows insertion order.
func newestFirst[T any](items []T, key func(T) (time.Time, string)) {
	sort.SliceStable(items, func(i, j int) bool {
		leftTime, leftID := key(items[i])
		rightTime, rightID := key(items[j])
		if !leftTime.Equal(rightTime) {
			return leftTime.After(rightTime)
		}
		return leftID > rightID
	})
}
