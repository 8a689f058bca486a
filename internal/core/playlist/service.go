// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package playlist

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/core/ownership"
	"github.com/taibuivan/yomitube/internal/core/view"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
	"github.com/taibuivan/yomitube/internal/platform/validate"
	"github.com/taibuivan/yomitube/internal/store"
	"github.com/taibuivan/yomitube/pkg/pagination"
	"github.com/taibuivan/yomitube/pkg/pointer"
	"github.com/taibuivan/yomitube/pkg/uuid"
)

// Store is the persistence the playlist service needs.
type Store interface {
	store.PlaylistStore
	FindVideoByID(ctx context.Context, id string) (*entity.Video, error)
}

// Service manages user playlists.
type Service struct {
	store    Store
	composer *view.Composer
	logger   *slog.Logger
}

// NewService constructs a new playlist [Service].
func NewService(playlists Store, composer *view.Composer, logger *slog.Logger) *Service {
	return &Service{store: playlists, composer: composer, logger: logger}
}

// # Reads

// GetPlaylist returns a playlist with its creator and videos.
func (service *Service) GetPlaylist(context context.Context, playlistID string) (*view.PlaylistDetail, error) {
	return service.composer.Playlist(context, playlistID)
}

// ListUserPlaylists returns a user's playlists newest first.
func (service *Service) ListUserPlaylists(context context.Context, userID string, params pagination.Params) (*pagination.Page[*view.PlaylistSummary], error) {
	return service.composer.UserPlaylists(context, userID, params)
}

// # Mutations

// CreatePlaylist creates an empty playlist owned by the actor.
func (service *Service) CreatePlaylist(context context.Context, actorID string, input CreateInput) (*entity.Playlist, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	playlist := &entity.Playlist{
		ID:          uuid.New(),
		OwnerID:     actorID,
		Name:        input.Name,
		Description: input.Description,
		VideoIDs:    []string{},
	}

	if err := service.store.CreatePlaylist(context, playlist); err != nil {
		return nil, err
	}

	service.logger.Info("playlist_created", slog.String("playlist_id", playlist.ID))

	return playlist, nil
}

// UpdatePlaylist changes the name or description of the actor's playlist.
func (service *Service) UpdatePlaylist(context context.Context, actorID, playlistID string, input UpdateInput) (*entity.Playlist, error) {
	input.Name = pointer.TrimSpace(input.Name)
	input.Description = pointer.TrimSpace(input.Description)
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	playlist, err := ownership.Load(context, service.store.FindPlaylistByID, "Playlist", playlistID, actorID)
	if err != nil {
		return nil, err
	}

	playlist.Name = pointer.Fallback(input.Name, playlist.Name)
	playlist.Description = pointer.Fallback(input.Description, playlist.Description)

	if err := service.store.UpdatePlaylist(context, playlist); err != nil {
		return nil, err
	}

	return playlist, nil
}

// DeletePlaylist removes the actor's playlist. Videos are untouched.
func (service *Service) DeletePlaylist(context context.Context, actorID, playlistID string) error {
	if _, err := ownership.Load(context, service.store.FindPlaylistByID, "Playlist", playlistID, actorID); err != nil {
		return err
	}

	if err := service.store.DeletePlaylist(context, playlistID); err != nil {
		return err
	}

	service.logger.Info("playlist_deleted", slog.String("playlist_id", playlistID))

	return nil
}

/*
AddVideo appends a video to the actor's playlist. Adding a video that is
already present leaves the playlist unchanged.

Returns:
  - *entity.Playlist: The playlist after the change
  - error: NOT_FOUND for a missing playlist or video, FORBIDDEN for non-owners
*/
func (service *Service) AddVideo(context context.Context, actorID, playlistID, videoID string) (*entity.Playlist, error) {
	if _, err := ownership.Load(context, service.store.FindPlaylistByID, "Playlist", playlistID, actorID); err != nil {
		return nil, err
	}

	if _, err := service.store.FindVideoByID(context, videoID); err != nil {
		return nil, dberr.NotFoundAs(err, "Video")
	}

	added, err := service.store.AddPlaylistVideo(context, playlistID, videoID)
	if err != nil {
		return nil, dberr.NotFoundAs(err, "Playlist")
	}

	service.logger.Info("playlist_video_added",
		slog.String("playlist_id", playlistID),
		slog.String("video_id", videoID),
		slog.Bool("changed", added),
	)

	return service.reload(context, playlistID)
}

// RemoveVideo drops a video from the actor's playlist. The video itself need
// not exist any more.
func (service *Service) RemoveVideo(context context.Context, actorID, playlistID, videoID string) (*entity.Playlist, error) {
	if _, err := ownership.Load(context, service.store.FindPlaylistByID, "Playlist", playlistID, actorID); err != nil {
		return nil, err
	}

	removed, err := service.store.RemovePlaylistVideo(context, playlistID, videoID)
	if err != nil {
		return nil, dberr.NotFoundAs(err, "Playlist")
	}

	service.logger.Info("playlist_video_removed",
		slog.String("playlist_id", playlistID),
		slog.String("video_id", videoID),
		slog.Bool("changed", removed),
	)

	return service.reload(context, playlistID)
}

func (service *Service) reload(context context.Context, playlistID string) (*entity.Playlist, error) {
	playlist, err := service.store.FindPlaylistByID(context, playlistID)
	if err != nil {
		return nil, dberr.NotFoundAs(err, "Playlist")
	}
	return playlist, nil
}
