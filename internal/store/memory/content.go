// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package memory

import (
	"context"
	"time"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
)

// # Comments

func (s *Store) CreateComment(_ context.Context, comment *entity.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.comments[comment.ID]; exists {
		return dberr.ErrDuplicate
	}

	comment.CreatedAt = s.now()
	comment.UpdatedAt = comment.CreatedAt
	s.comments[comment.ID] = *comment
	return nil
}

func (s *Store) FindCommentByID(_ context.Context, id string) (*entity.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comment, ok := s.comments[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &comment, nil
}

func (s *Store) ListCommentsByVideo(_ context.Context, videoID string, skip, limit int) ([]*entity.Comment, int, error) {
	s.mu.RLock()
	matches := make([]*entity.Comment, 0)
	for _, comment := range s.comments {
		if comment.VideoID == videoID {
			matches = append(matches, &comment)
		}
	}
	s.mu.RUnlock()

	newestFirst(matches, func(c *entity.Comment) (time.Time, string) { return c.CreatedAt, c.ID })
	return window(matches, skip, limit), len(matches), nil
}

func (s *Store) UpdateComment(_ context.Context, comment *entity.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.comments[comment.ID]
	if !ok {
		return dberr.ErrNotFound
	}

	existing.Content = comment.Content
	existing.UpdatedAt = s.now()
	s.comments[comment.ID] = existing

	*comment = existing
	return nil
}

func (s *Store) DeleteComment(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(s.comments, id)
	return nil
}

// # Tweets

func (s *Store) CreateTweet(_ context.Context, tweet *entity.Tweet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tweets[tweet.ID]; exists {
		return dberr.ErrDuplicate
	}

	tweet.CreatedAt = s.now()
	tweet.UpdatedAt = tweet.CreatedAt
	s.tweets[tweet.ID] = *tweet
	return nil
}

func (s *Store) FindTweetByID(_ context.Context, id string) (*entity.Tweet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tweet, ok := s.tweets[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &tweet, nil
}

func (s *Store) ListTweetsByOwner(_ context.Context, ownerID string, skip, limit int) ([]*entity.Tweet, int, error) {
	s.mu.RLock()
	matches := make([]*entity.Tweet, 0)
	for _, tweet := range s.tweets {
		if tweet.OwnerID == ownerID {
			matches = append(matches, &tweet)
		}
	}
	s.mu.RUnlock()

	newestFirst(matches, func(t *entity.Tweet) (time.Time, string) { return t.CreatedAt, t.ID })
	return window(matches, skip, limit), len(matches), nil
}

func (s *Store) UpdateTweet(_ context.Context, tweet *entity.Tweet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tweets[tweet.ID]
	if !ok {
		return dberr.ErrNotFound
	}

	existing.Content = tweet.Content
	existing.UpdatedAt = s.now()
	s.tweets[tweet.ID] = existing

	*tweet = existing
	return nil
}

func (s *Store) DeleteTweet(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tweets[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(s.tweets, id)
	return nil
}
