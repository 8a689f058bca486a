// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package store defines the persistence contract shared by every backend.

Backends:

  - postgres: pgx against the schema in data/migrations.
  - mongodb: one collection per record type, unique indexes created at startup.
  - memory: mutex-guarded maps, used by tests and the memory driver.

All backends report a missing record as [dberr.ErrNotFound] and a unique
constraint violation as [dberr.ErrDuplicate]. Any other failure is an
INTERNAL_ERROR [apperr.AppError].

Joins are not part of the contract. Callers resolve references through the
keyed batch lookups (FindUsersByIDs, FindVideosByIDs) which return only the
records that exist.
*/
package store

import (
	"context"

	"github.com/taibuivan/yomitube/internal/core/entity"
)

// # Query Types

// VideoSort names a sortable video column.
type VideoSort string

const (
	SortCreatedAt VideoSort = "createdAt"
	SortViews     VideoSort = "views"
	SortDuration  VideoSort = "duration"
	SortTitle     VideoSort = "title"
)

// ParseVideoSort maps a client value to a [VideoSort], defaulting to creation time.
func ParseVideoSort(value string) VideoSort {
	switch VideoSort(value) {
	case SortViews, SortDuration, SortTitle:
		return VideoSort(value)
	}
	return SortCreatedAt
}

// VideoFilter narrows a video scan.
type VideoFilter struct {
	// Query matches title OR description, case-insensitively. Postgres
	// (ILIKE) and mongodb ($regex with "i") compare accented letters as
	// distinct; the memory backend also folds accents, so "cafe" matches
	// "café" there only.
	Query string
	// OwnerID restricts the scan to one channel.
	OwnerID string
	// PublishedOnly hides unpublished videos.
	PublishedOnly bool
	// SortBy selects the ordering column.
	SortBy VideoSort
	// Ascending reverses the default newest/largest-first order.
	Ascending bool
}

// # Data Access Contracts

// UserStore persists accounts.
type UserStore interface {

	/*
		CreateUser inserts a new account.

		Returns:
		  - error: dberr.ErrDuplicate if username or email is taken
	*/
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID returns the account with the given ID.
	FindUserByID(ctx context.Context, id string) (*entity.User, error)

	// FindUserByUsername returns the account owning a channel handle.
	FindUserByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindUserByEmail returns the account registered with an email.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	/*
		FindUsersByIDs resolves many users at once.

		Returns:
		  - map[string]*entity.User: Found users keyed by ID; missing IDs are absent
		  - error: Storage failures only
	*/
	FindUsersByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error)

	/*
		UpdateUser writes profile fields and the password hash.

		Returns:
		  - error: dberr.ErrNotFound, dberr.ErrDuplicate on email clash
	*/
	UpdateUser(ctx context.Context, user *entity.User) error
}

// VideoStore persists videos.
type VideoStore interface {
	CreateVideo(ctx context.Context, video *entity.Video) error
	FindVideoByID(ctx context.Context, id string) (*entity.Video, error)

	// FindVideosByIDs resolves many videos at once; missing IDs are absent from the map.
	FindVideosByIDs(ctx context.Context, ids []string) (map[string]*entity.Video, error)

	/*
		ListVideos scans videos matching filter.

		Parameters:
		  - filter: VideoFilter
		  - skip, limit: int (limit <= 0 means no limit)

		Returns:
		  - []*entity.Video: The requested window, ordered by filter.SortBy
		  - int: Total matching count before skip/limit
		  - error: Storage failures
	*/
	ListVideos(ctx context.Context, filter VideoFilter, skip, limit int) ([]*entity.Video, int, error)

	// UpdateVideo writes title, description, thumbnail and publish flag.
	UpdateVideo(ctx context.Context, video *entity.Video) error

	DeleteVideo(ctx context.Context, id string) error

	/*
		IncrementVideoViews adds one view atomically.

		Returns:
		  - error: dberr.ErrNotFound if the video does not exist
	*/
	IncrementVideoViews(ctx context.Context, id string) error
}

// CommentStore persists comments.
type CommentStore interface {
	CreateComment(ctx context.Context, comment *entity.Comment) error
	FindCommentByID(ctx context.Context, id string) (*entity.Comment, error)

	// ListCommentsByVideo returns a video's comments newest first plus the total.
	ListCommentsByVideo(ctx context.Context, videoID string, skip, limit int) ([]*entity.Comment, int, error)

	UpdateComment(ctx context.Context, comment *entity.Comment) error
	DeleteComment(ctx context.Context, id string) error
}

// TweetStore persists tweets.
type TweetStore interface {
	CreateTweet(ctx context.Context, tweet *entity.Tweet) error
	FindTweetByID(ctx context.Context, id string) (*entity.Tweet, error)

	// ListTweetsByOwner returns a channel's tweets newest first plus the total.
	ListTweetsByOwner(ctx context.Context, ownerID string, skip, limit int) ([]*entity.Tweet, int, error)

	UpdateTweet(ctx context.Context, tweet *entity.Tweet) error
	DeleteTweet(ctx context.Context, id string) error
}

// PlaylistStore persists playlists and their ordered video sets.
type PlaylistStore interface {
	CreatePlaylist(ctx context.Context, playlist *entity.Playlist) error
	FindPlaylistByID(ctx context.Context, id string) (*entity.Playlist, error)

	// ListPlaylistsByOwner returns a user's playlists newest first plus the total.
	ListPlaylistsByOwner(ctx context.Context, ownerID string, skip, limit int) ([]*entity.Playlist, int, error)

	// UpdatePlaylist writes name and description.
	UpdatePlaylist(ctx context.Context, playlist *entity.Playlist) error

	DeletePlaylist(ctx context.Context, id string) error

	/*
		AddPlaylistVideo appends a video unless it is already present.

		Returns:
		  - bool: true if the video was appended
		  - error: dberr.ErrNotFound if the playlist does not exist
	*/
	AddPlaylistVideo(ctx context.Context, playlistID, videoID string) (bool, error)

	// RemovePlaylistVideo removes a video; the bool reports whether it was present.
	RemovePlaylistVideo(ctx context.Context, playlistID, videoID string) (bool, error)
}

// EdgeStore persists likes and subscriptions.
type EdgeStore interface {

	/*
		InsertEdge creates a relation guarded by the (kind, actor, target) unique index.

		Returns:
		  - error: dberr.ErrDuplicate if the relation already exists
	*/
	InsertEdge(ctx context.Context, edge *entity.Edge) error

	/*
		DeleteEdge removes the relation if present.

		Returns:
		  - bool: true if a row was removed by this call
		  - error: Storage failures
	*/
	DeleteEdge(ctx context.Context, kind entity.EdgeKind, actorID, targetID string) (bool, error)

	EdgeExists(ctx context.Context, kind entity.EdgeKind, actorID, targetID string) (bool, error)

	// CountEdgesByTarget counts relations pointing at a target (e.g. likes on a video).
	CountEdgesByTarget(ctx context.Context, kind entity.EdgeKind, targetID string) (int, error)

	// CountEdgesByActor counts relations made by an actor (e.g. channels subscribed to).
	CountEdgesByActor(ctx context.Context, kind entity.EdgeKind, actorID string) (int, error)

	// ListEdgesByTarget returns every relation pointing at a target, newest first.
	ListEdgesByTarget(ctx context.Context, kind entity.EdgeKind, targetID string) ([]*entity.Edge, error)

	// ListEdgesByActor returns an actor's relations newest first plus the total.
	ListEdgesByActor(ctx context.Context, kind entity.EdgeKind, actorID string, skip, limit int) ([]*entity.Edge, int, error)
}

// Store is the full persistence surface consumed by the core.
type Store interface {
	UserStore
	VideoStore
	CommentStore
	TweetStore
	PlaylistStore
	EdgeStore

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}
