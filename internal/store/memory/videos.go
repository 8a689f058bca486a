// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
	"github.com/taibuivan/yomitube/internal/store"
	"github.com/taibuivan/yomitube/pkg/fold"
)

func (s *Store) CreateVideo(_ context.Context, video *entity.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.videos[video.ID]; exists {
		return dberr.ErrDuplicate
	}

	video.CreatedAt = s.now()
	video.UpdatedAt = video.CreatedAt
	s.videos[video.ID] = *video
	return nil
}

func (s *Store) FindVideoByID(_ context.Context, id string) (*entity.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	video, ok := s.videos[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &video, nil
}

func (s *Store) FindVideosByIDs(_ context.Context, ids []string) (map[string]*entity.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make(map[string]*entity.Video, len(ids))
	for _, id := range ids {
		if video, ok := s.videos[id]; ok {
			found[id] = &video
		}
	}
	return found, nil
}

// ListVideos filters, sorts and windows the video set.
func (s *Store) ListVideos(_ context.Context, filter store.VideoFilter, skip, limit int) ([]*entity.Video, int, error) {
	s.mu.RLock()
	matches := make([]*entity.Video, 0, len(s.videos))
	for _, video := range s.videos {
		if matchesVideo(video, filter) {
			matches = append(matches, &video)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(matches, func(i, j int) bool {
		left, right := matches[i], matches[j]
		compare := compareVideos(left, right, filter.SortBy)
		if compare == 0 {
			compare = strings.Compare(left.ID, right.ID)
		}
		if filter.Ascending {
			return compare < 0
		}
		return compare > 0
	})

	return window(matches, skip, limit), len(matches), nil
}

func (s *Store) UpdateVideo(_ context.Context, video *entity.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.videos[video.ID]
	if !ok {
		return dberr.ErrNotFound
	}

	existing.Title = video.Title
	existing.Description = video.Description
	existing.ThumbnailURL = video.ThumbnailURL
	existing.IsPublished = video.IsPublished
	existing.UpdatedAt = s.now()
	s.videos[video.ID] = existing

	*video = existing
	return nil
}

func (s *Store) DeleteVideo(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.videos[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(s.videos, id)
	return nil
}

// IncrementVideoViews adds one view under the write lock.
func (s *Store) IncrementVideoViews(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	video, ok := s.videos[id]
	if !ok {
		return dberr.ErrNotFound
	}
	video.Views++
	s.videos[id] = video
	return nil
}

// matchesVideo applies filter; Query is folded for both case and accents.
func matchesVideo(video entity.Video, filter store.VideoFilter) bool {
	if filter.OwnerID != "" && video.OwnerID != filter.OwnerID {
		return false
	}
	if filter.PublishedOnly && !video.IsPublished {
		return false
	}
	if filter.Query != "" {
		return fold.Contains(video.Title, filter.Query) || fold.Contains(video.Description, filter.Query)
	}
	return true
}

func compareVideos(left, right *entity.Video, sortBy store.VideoSort) int {
	switch sortBy {
	case store.SortViews:
		return compareOrdered(left.Views, right.Views)
	case store.SortDuration:
		return compareOrdered(left.Duration, right.Duration)
	case store.SortTitle:
		return strings.Compare(fold.String(left.Title), fold.String(right.Title))
	default:
		return left.CreatedAt.Compare(right.CreatedAt)
	}
}

func compareOrdered[T int64 | float64](left, right T) int {
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	}
	return 0
}
