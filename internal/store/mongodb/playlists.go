// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
	"github.com/taibuivan/yomitube/pkg/slice"
)

func (r *Repository) CreatePlaylist(ctx context.Context, playlist *entity.Playlist) error {
	playlist.VideoIDs = slice.Unique(playlist.VideoIDs)
	playlist.CreatedAt = now()
	playlist.UpdatedAt = playlist.CreatedAt

	_, err := r.playlists.InsertOne(ctx, playlist)
	return dberr.Wrap(err, "create_playlist")
}

func (r *Repository) FindPlaylistByID(ctx context.Context, id string) (*entity.Playlist, error) {
	playlist, err := findOne[entity.Playlist](ctx, r.playlists, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_playlist_by_id")
	}
	return normalizePlaylist(playlist), nil
}

func (r *Repository) ListPlaylistsByOwner(ctx context.Context, ownerID string, skip, limit int) ([]*entity.Playlist, int, error) {
	playlists, total, err := countAndFind[entity.Playlist](ctx, r.playlists, bson.M{"ownerId": ownerID}, windowed(newestFirst, skip, limit))
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_playlists")
	}
	for _, playlist := range playlists {
		normalizePlaylist(playlist)
	}
	return playlists, total, nil
}

func (r *Repository) UpdatePlaylist(ctx context.Context, playlist *entity.Playlist) error {
	update := bson.M{"$set": bson.M{
		"name":        playlist.Name,
		"description": playlist.Description,
		"updatedAt":   now(),
	}}

	err := r.playlists.FindOneAndUpdate(ctx, bson.M{"_id": playlist.ID}, update, afterUpdate()).Decode(playlist)
	normalizePlaylist(playlist)
	return dberr.Wrap(err, "update_playlist")
}

func (r *Repository) DeletePlaylist(ctx context.Context, id string) error {
	return dberr.Wrap(deleteOne(ctx, r.playlists, id), "delete_playlist")
}

// AddPlaylistVideo appends with $addToSet; ModifiedCount tells whether this call added it.
func (r *Repository) AddPlaylistVideo(ctx context.Context, playlistID, videoID string) (bool, error) {
	update := bson.M{
		"$addToSet": bson.M{"videoIds": videoID},
		"$set":      bson.M{"updatedAt": now()},
	}
	return r.modifyPlaylistVideos(ctx, playlistID, videoID, update, "add_playlist_video")
}

func (r *Repository) RemovePlaylistVideo(ctx context.Context, playlistID, videoID string) (bool, error) {
	update := bson.M{
		"$pull": bson.M{"videoIds": videoID},
		"$set":  bson.M{"updatedAt": now()},
	}
	return r.modifyPlaylistVideos(ctx, playlistID, videoID, update, "remove_playlist_video")
}

// modifyPlaylistVideos applies a set update and distinguishes a missing
// playlist from a no-op. The updatedAt bump would make every match count as
// modified, so membership is compared on the returned documents instead.
func (r *Repository) modifyPlaylistVideos(ctx context.Context, playlistID, videoID string, update bson.M, action string) (bool, error) {
	before := &entity.Playlist{}
	err := r.playlists.FindOneAndUpdate(ctx, bson.M{"_id": playlistID}, update).Decode(before)
	if err != nil {
		return false, dberr.Wrap(err, action)
	}

	had := before.HasVideo(videoID)
	if _, adding := update["$addToSet"]; adding {
		return !had, nil
	}
	return had, nil
}

func normalizePlaylist(playlist *entity.Playlist) *entity.Playlist {
	if playlist.VideoIDs == nil {
		playlist.VideoIDs = []string{}
	}
	return playlist
}
