// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package view

import (
	"context"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
	"github.com/taibuivan/yomitube/pkg/pagination"
	"github.com/taibuivan/yomitube/pkg/slice"
)

// # Comments

/*
Comments lists a video's comments newest first, each with its author.

Returns:
  - *pagination.Page[*CommentView]
  - error: NOT_FOUND if the video does not exist
*/
func (composer *Composer) Comments(context context.Context, videoID string, params pagination.Params) (*pagination.Page[*CommentView], error) {
	if _, err := composer.store.FindVideoByID(context, videoID); err != nil {
		return nil, dberr.NotFoundAs(err, "Video")
	}

	comments, total, err := composer.store.ListCommentsByVideo(context, videoID, params.Offset(), params.Limit)
	if err != nil {
		return nil, err
	}

	owners, err := composer.owners(context, slice.Map(comments, func(comment *entity.Comment) string { return comment.OwnerID })...)
	if err != nil {
		return nil, err
	}

	return pagination.NewPage(withCommentOwners(comments, owners), params, total), nil
}

// # Tweets

/*
Tweets lists a user's tweets newest first.

Returns:
  - *pagination.Page[*TweetView]
  - error: NOT_FOUND if the user does not exist
*/
func (composer *Composer) Tweets(context context.Context, ownerID string, params pagination.Params) (*pagination.Page[*TweetView], error) {
	user, err := composer.store.FindUserByID(context, ownerID)
	if err != nil {
		return nil, dberr.NotFoundAs(err, "User")
	}

	tweets, total, err := composer.store.ListTweetsByOwner(context, ownerID, params.Offset(), params.Limit)
	if err != nil {
		return nil, err
	}

	owner := user.Project()
	items := slice.Map(tweets, func(tweet *entity.Tweet) *TweetView {
		return &TweetView{Tweet: tweet, Owner: owner}
	})
	return pagination.NewPage(items, params, total), nil
}

// # Playlists

/*
Playlist composes a playlist with its creator and its videos in playlist
order. References to deleted videos are skipped.
*/
func (composer *Composer) Playlist(context context.Context, playlistID string) (*PlaylistDetail, error) {
	playlist, err := composer.store.FindPlaylistByID(context, playlistID)
	if err != nil {
		return nil, dberr.NotFoundAs(err, "Playlist")
	}

	videos, owners, err := composer.summarizeInOrder(context, playlist.VideoIDs, playlist.OwnerID)
	if err != nil {
		return nil, err
	}

	return &PlaylistDetail{
		Playlist:    playlist,
		Creator:     owners[playlist.OwnerID],
		Videos:      videos,
		TotalVideos: len(videos),
	}, nil
}

// UserPlaylists lists a user's playlists newest first with their video counts.
func (composer *Composer) UserPlaylists(context context.Context, ownerID string, params pagination.Params) (*pagination.Page[*PlaylistSummary], error) {
	if _, err := composer.store.FindUserByID(context, ownerID); err != nil {
		return nil, dberr.NotFoundAs(err, "User")
	}

	playlists, total, err := composer.store.ListPlaylistsByOwner(context, ownerID, params.Offset(), params.Limit)
	if err != nil {
		return nil, err
	}

	items := slice.Map(playlists, func(playlist *entity.Playlist) *PlaylistSummary {
		return &PlaylistSummary{Playlist: playlist, TotalVideos: len(playlist.VideoIDs)}
	})
	return pagination.NewPage(items, params, total), nil
}
