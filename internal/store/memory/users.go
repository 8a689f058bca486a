// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package memory

import (
	"context"
	"strings"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
)

// CreateUser inserts an account, rejecting duplicate usernames and emails.
func (s *Store) CreateUser(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.ID]; exists {
		return dberr.ErrDuplicate
	}
	if s.userTakenLocked(user.ID, user.Username, user.Email) {
		return dberr.ErrDuplicate
	}

	user.CreatedAt = s.now()
	user.UpdatedAt = user.CreatedAt
	s.users[user.ID] = *user
	return nil
}

func (s *Store) FindUserByID(_ context.Context, id string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &user, nil
}

func (s *Store) FindUserByUsername(_ context.Context, username string) (*entity.User, error) {
	return s.findUserBy(func(user entity.User) bool {
		return user.Username == strings.ToLower(username)
	})
}

func (s *Store) FindUserByEmail(_ context.Context, email string) (*entity.User, error) {
	return s.findUserBy(func(user entity.User) bool {
		return strings.EqualFold(user.Email, email)
	})
}

func (s *Store) FindUsersByIDs(_ context.Context, ids []string) (map[string]*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make(map[string]*entity.User, len(ids))
	for _, id := range ids {
		if user, ok := s.users[id]; ok {
			found[id] = &user
		}
	}
	return found, nil
}

// UpdateUser replaces the mutable profile fields.
func (s *Store) UpdateUser(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[user.ID]
	if !ok {
		return dberr.ErrNotFound
	}
	if s.userTakenLocked(user.ID, existing.Username, user.Email) {
		return dberr.ErrDuplicate
	}

	existing.Email = user.Email
	existing.DisplayName = user.DisplayName
	existing.AvatarURL = user.AvatarURL
	existing.CoverImageURL = user.CoverImageURL
	existing.PasswordHash = user.PasswordHash
	existing.UpdatedAt = s.now()
	s.users[user.ID] = existing

	*user = existing
	return nil
}

func (s *Store) findUserBy(match func(entity.User) bool) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if match(user) {
			return &user, nil
		}
	}
	return nil, dberr.ErrNotFound
}

// userTakenLocked reports whether another account already uses the handle or email.
func (s *Store) userTakenLocked(selfID, username, email string) bool {
	for id, other := range s.users {
		if id == selfID {
			continue
		}
		if other.Username == username || strings.EqualFold(other.Email, email) {
			return true
		}
	}
	return false
}
