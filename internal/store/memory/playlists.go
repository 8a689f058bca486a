// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package memory

import (
	"context"
	"slices"
	"time"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
)

func (s *Store) CreatePlaylist(_ context.Context, playlist *entity.Playlist) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.playlists[playlist.ID]; exists {
		return dberr.ErrDuplicate
	}

	playlist.VideoIDs = dedupe(playlist.VideoIDs)
	playlist.CreatedAt = s.now()
	playlist.UpdatedAt = playlist.CreatedAt
	s.playlists[playlist.ID] = clonePlaylist(*playlist)
	return nil
}

func (s *Store) FindPlaylistByID(_ context.Context, id string) (*entity.Playlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	playlist, ok := s.playlists[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := clonePlaylist(playlist)
	return &copied, nil
}

func (s *Store) ListPlaylistsByOwner(_ context.Context, ownerID string, skip, limit int) ([]*entity.Playlist, int, error) {
	s.mu.RLock()
	matches := make([]*entity.Playlist, 0)
	for _, playlist := range s.playlists {
		if playlist.OwnerID == ownerID {
			copied := clonePlaylist(playlist)
			matches = append(matches, &copied)
		}
	}
	s.mu.RUnlock()

	newestFirst(matches, func(p *entity.Playlist) (time.Time, string) { return p.CreatedAt, p.ID })
	return window(matches, skip, limit), len(matches), nil
}

func (s *Store) UpdatePlaylist(_ context.Context, playlist *entity.Playlist) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.playlists[playlist.ID]
	if !ok {
		return dberr.ErrNotFound
	}

	existing.Name = playlist.Name
	existing.Description = playlist.Description
	existing.UpdatedAt = s.now()
	s.playlists[playlist.ID] = existing

	*playlist = clonePlaylist(existing)
	return nil
}

func (s *Store) DeletePlaylist(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.playlists[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(s.playlists, id)
	return nil
}

// AddPlaylistVideo appends videoID unless present, keeping insertion order.
func (s *Store) AddPlaylistVideo(_ context.Context, playlistID, videoID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	playlist, ok := s.playlists[playlistID]
	if !ok {
		return false, dberr.ErrNotFound
	}
	if slices.Contains(playlist.VideoIDs, videoID) {
		return false, nil
	}

	playlist.VideoIDs = append(slices.Clone(playlist.VideoIDs), videoID)
	playlist.UpdatedAt = s.now()
	s.playlists[playlistID] = playlist
	return true, nil
}

func (s *Store) RemovePlaylistVideo(_ context.Context, playlistID, videoID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	playlist, ok := s.playlists[playlistID]
	if !ok {
		return false, dberr.ErrNotFound
	}

	index := slices.Index(playlist.VideoIDs, videoID)
	if index < 0 {
		return false, nil
	}

	playlist.VideoIDs = slices.Delete(slices.Clone(playlist.VideoIDs), index, index+1)
	playlist.UpdatedAt = s.now()
	s.playlists[playlistID] = playlist
	return true, nil
}

func clonePlaylist(playlist entity.Playlist) entity.Playlist {
	playlist.VideoIDs = slices.Clone(playlist.VideoIDs)
	if playlist.VideoIDs == nil {
		playlist.VideoIDs = []string{}
	}
	return playlist
}

// dedupe drops repeated IDs while keeping first-seen order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
