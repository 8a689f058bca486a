// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/core/view"
	"github.com/taibuivan/yomitube/internal/platform/apperr"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
	"github.com/taibuivan/yomitube/internal/platform/validate"
	"github.com/taibuivan/yomitube/internal/store"
	"github.com/taibuivan/yomitube/pkg/pointer"
)

// # Service Layer

// Service orchestrates profile reads and updates.
type Service struct {
	users    store.UserStore
	composer *view.Composer
	logger   *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(users store.UserStore, composer *view.Composer, logger *slog.Logger) *Service {
	return &Service{
		users:    users,
		composer: composer,
		logger:   logger,
	}
}

// # Profile Management

/*
GetProfile retrieves the private profile of the actor.

Parameters:
  - context: context.Context
  - actorID: string

Returns:
  - *entity.User: The account
  - error: NOT_FOUND or execution failures
*/
func (service *Service) GetProfile(context context.Context, actorID string) (*entity.User, error) {
	user, err := service.users.FindUserByID(context, actorID)
	if err != nil {
		return nil, dberr.NotFoundAs(err, "User")
	}
	return user, nil
}

/*
UpdateProfile applies a partial set of changes to the actor's account.

Description: An account is owned by itself, so the actor can only ever
reach their own record.

Returns:
  - *entity.User: The updated account
  - error: VALIDATION_ERROR, CONFLICT when the email is taken, or storage failures
*/
func (service *Service) UpdateProfile(context context.Context, actorID string, input UpdateInput) (*entity.User, error) {
	input.Email = pointer.TrimSpace(input.Email)
	input.DisplayName = pointer.TrimSpace(input.DisplayName)

	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	user, err := service.users.FindUserByID(context, actorID)
	if err != nil {
		return nil, dberr.NotFoundAs(err, "User")
	}

	if input.Email != nil && !strings.EqualFold(*input.Email, user.Email) {
		if _, err := service.users.FindUserByEmail(context, *input.Email); err == nil {
			return nil, apperr.Conflict("Email is already registered")
		}
	}

	user.DisplayName = pointer.Fallback(input.DisplayName, user.DisplayName)
	user.Email = pointer.Fallback(input.Email, user.Email)
	user.AvatarURL = pointer.Fallback(input.AvatarURL, user.AvatarURL)
	user.CoverImageURL = pointer.Fallback(input.CoverImageURL, user.CoverImageURL)

	if err := service.users.UpdateUser(context, user); err != nil {
		if dberr.IsDuplicate(err) {
			return nil, apperr.Conflict("Email is already registered")
		}
		return nil, err
	}

	service.logger.Info("user_profile_updated", slog.String("user_id", actorID))

	return user, nil
}

// # Channel Pages

// Channel returns the public channel page for a username, with the viewer's
// subscription status when viewerID is set.
func (service *Service) Channel(context context.Context, username, viewerID string) (*view.Channel, error) {
	return service.composer.Channel(context, strings.ToLower(username), viewerID)
}
