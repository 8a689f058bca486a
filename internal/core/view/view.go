// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package view composes the denormalized read models returned by the API.

A view joins a primary record with the records it references: owner
profiles, like counts, nested comments, playlist videos. Joins are resolved
with keyed batch lookups against the [store.Store] and behave like left joins:

  - An unresolved owner leaves the projection nil instead of failing the view.
  - A list join that matches nothing yields an empty slice.

Independent sub-joins of a single view run concurrently.
*/
package view

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/store"
	"github.com/taibuivan/yomitube/pkg/slice"
)

// # Read Models

// VideoSummary is the list representation of a video.
type VideoSummary struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	ThumbnailURL string        `json:"thumbnailUrl"`
	Duration     float64       `json:"duration"`
	Views        int64         `json:"views"`
	IsPublished  bool          `json:"isPublished"`
	CreatedAt    time.Time     `json:"createdAt"`
	Owner        *entity.Owner `json:"owner"`
}

// VideoDetail is the full video page.
type VideoDetail struct {
	*entity.Video
	Owner        *entity.Owner  `json:"owner"`
	LikeCount    int            `json:"likeCount"`
	IsLiked      bool           `json:"isLiked"`
	Comments     []*CommentView `json:"comments"`
	CommentCount int            `json:"commentCount"`
}

// CommentView is a comment with its author.
type CommentView struct {
	*entity.Comment
	Owner *entity.Owner `json:"owner"`
}

// TweetView is a tweet with its author.
type TweetView struct {
	*entity.Tweet
	Owner *entity.Owner `json:"owner"`
}

// PlaylistDetail is a playlist with its creator and resolved videos.
type PlaylistDetail struct {
	*entity.Playlist
	Creator     *entity.Owner   `json:"creator"`
	Videos      []*VideoSummary `json:"videos"`
	TotalVideos int             `json:"totalVideos"`
}

// PlaylistSummary is the list representation of a playlist.
type PlaylistSummary struct {
	*entity.Playlist
	TotalVideos int `json:"totalVideos"`
}

// UserList is a list of user projections. Count always equals len(Users).
type UserList struct {
	Users []*entity.Owner `json:"users"`
	Count int             `json:"count"`
}

// Channel is the public profile of a user's channel.
type Channel struct {
	*entity.Owner
	CoverImageURL     string    `json:"coverImageUrl"`
	CreatedAt         time.Time `json:"createdAt"`
	SubscribersCount  int       `json:"subscribersCount"`
	SubscribedToCount int       `json:"subscribedToCount"`
	IsSubscribed      bool      `json:"isSubscribed"`
}

// # Composer

// Composer builds read models from the entity store.
type Composer struct {
	store  store.Store
	logger *slog.Logger
}

// NewComposer constructs a [Composer].
func NewComposer(entities store.Store, logger *slog.Logger) *Composer {
	return &Composer{store: entities, logger: logger}
}

// # Join Helpers

// owners resolves user projections for the given IDs in one batch lookup.
// Missing users are absent from the map.
func (composer *Composer) owners(context context.Context, ids ...string) (map[string]*entity.Owner, error) {
	users, err := composer.store.FindUsersByIDs(context, slice.Unique(ids))
	if err != nil {
		return nil, err
	}

	projections := make(map[string]*entity.Owner, len(users))
	for id, user := range users {
		projections[id] = user.Project()
	}
	return projections, nil
}

// usersInOrder projects the users behind ids, preserving order and dropping
// IDs that no longer resolve.
func (composer *Composer) usersInOrder(context context.Context, ids []string) (*UserList, error) {
	projections, err := composer.owners(context, ids...)
	if err != nil {
		return nil, err
	}

	list := &UserList{Users: make([]*entity.Owner, 0, len(ids))}
	for _, id := range ids {
		if owner, ok := projections[id]; ok {
			list.Users = append(list.Users, owner)
		}
	}
	list.Count = len(list.Users)
	return list, nil
}

func summarize(video *entity.Video, owners map[string]*entity.Owner) *VideoSummary {
	return &VideoSummary{
		ID:           video.ID,
		Title:        video.Title,
		ThumbnailURL: video.ThumbnailURL,
		Duration:     video.Duration,
		Views:        video.Views,
		IsPublished:  video.IsPublished,
		CreatedAt:    video.CreatedAt,
		Owner:        owners[video.OwnerID],
	}
}

// summarizeInOrder resolves videos by ID, keeping the order of ids and
// skipping dangling references.
func (composer *Composer) summarizeInOrder(context context.Context, ids []string, extraOwners ...string) ([]*VideoSummary, map[string]*entity.Owner, error) {
	videos, err := composer.store.FindVideosByIDs(context, ids)
	if err != nil {
		return nil, nil, err
	}

	ownerIDs := append([]string{}, extraOwners...)
	for _, video := range videos {
		ownerIDs = append(ownerIDs, video.OwnerID)
	}
	owners, err := composer.owners(context, ownerIDs...)
	if err != nil {
		return nil, nil, err
	}

	summaries := make([]*VideoSummary, 0, len(ids))
	for _, id := range ids {
		if video, ok := videos[id]; ok {
			summaries = append(summaries, summarize(video, owners))
		}
	}
	return summaries, owners, nil
}
