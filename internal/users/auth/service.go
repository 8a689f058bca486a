// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements registration, credential checks and the refresh
session lifecycle.

Access tokens are RS256 JWTs. Refresh tokens are random strings handed to the
client in an HttpOnly cookie; the server keeps only their SHA-256 in Redis.
Every refresh rotates the token.
*/
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/platform/apperr"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
	"github.com/taibuivan/yomitube/internal/platform/sec"
	"github.com/taibuivan/yomitube/internal/platform/validate"
	"github.com/taibuivan/yomitube/internal/store"
	"github.com/taibuivan/yomitube/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for generating access tokens.
type TokenProvider interface {
	GenerateAccessToken(userID, username string, timeToLive time.Duration) (string, error)
}

// Service implements the account credential use cases.
type Service struct {
	users    store.UserStore
	sessions SessionRepository
	tokens   TokenProvider
	logger   *slog.Logger
}

// NewService constructs a new auth [Service].
func NewService(users store.UserStore, sessions SessionRepository, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

// # Registration Flow

// RegisterInput holds the data required to open a channel.
type RegisterInput struct {
	Username      string `json:"username"      validate:"required,username"`
	Email         string `json:"email"         validate:"required,email,max=254"`
	Password      string `json:"password"      validate:"required,min=8,max=72"`
	DisplayName   string `json:"displayName"   validate:"required,max=80"`
	AvatarURL     string `json:"avatarUrl"     validate:"omitempty,http_url"`
	CoverImageURL string `json:"coverImageUrl" validate:"omitempty,http_url"`
}

/*
Register validates, hashes and persists a new account.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *entity.User: Created account
  - error: VALIDATION_ERROR, CONFLICT if the username or email is taken, or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*entity.User, error) {
	input.Username = strings.ToLower(strings.TrimSpace(input.Username))
	input.Email = strings.TrimSpace(input.Email)

	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	if _, err := service.users.FindUserByEmail(context, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}
	if _, err := service.users.FindUserByUsername(context, input.Username); err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &entity.User{
		ID:            uuid.New(),
		Username:      input.Username,
		Email:         input.Email,
		DisplayName:   input.DisplayName,
		AvatarURL:     input.AvatarURL,
		CoverImageURL: input.CoverImageURL,
		PasswordHash:  hashedPassword,
	}

	// The unique indexes still decide a race between two registrations.
	if err := service.users.CreateUser(context, user); err != nil {
		if dberr.IsDuplicate(err) {
			return nil, apperr.Conflict("Username or email is already taken")
		}
		return nil, err
	}

	service.logger.Info("user_registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	// Login is a username or an email address.
	Login     string `json:"login"    validate:"required"`
	Password  string `json:"password" validate:"required"`
	UserAgent string `json:"-"`
	IPAddress string `json:"-"`
}

// LoginSession represents a successfully established user session.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	User                  *entity.User
}

/*
Login validates user credentials and issues a token pair.

Returns:
  - *LoginSession: Access token, refresh token and the account
  - error: UNAUTHORIZED with one generic message for any credential failure
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	user, err := service.lookupLogin(context, strings.TrimSpace(input.Login))
	if err != nil {
		if !dberr.IsNotFound(err) {
			return nil, err
		}
		// Unknown logins still pay for one bcrypt comparison.
		sec.BurnPasswordCheck(input.Password)
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		service.logger.Warn("login_rejected", slog.String("user_id", user.ID))
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	session, err := service.issue(context, user, input.UserAgent, input.IPAddress)
	if err != nil {
		return nil, err
	}

	service.logger.Info("user_logged_in", slog.String("user_id", user.ID))

	return session, nil
}

// lookupLogin resolves an email when the value looks like one, a username otherwise.
func (service *Service) lookupLogin(context context.Context, login string) (*entity.User, error) {
	if strings.Contains(login, "@") {
		return service.users.FindUserByEmail(context, login)
	}
	return service.users.FindUserByUsername(context, strings.ToLower(login))
}

// issue signs an access token and stores a fresh refresh session.
func (service *Service) issue(context context.Context, user *entity.User, userAgent, ipAddress string) (*LoginSession, error) {
	accessToken, err := service.tokens.GenerateAccessToken(user.ID, user.Username, AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_token_failed: %w", err)
	}

	now := time.Now().UTC()
	session := &Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: sec.HashToken(refreshToken),
		UserAgent: userAgent,
		IPAddress: ipAddress,
		ExpiresAt: now.Add(RefreshTokenTTL),
		CreatedAt: now,
	}

	if err := service.sessions.Create(context, session); err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: session.ExpiresAt,
		User:                  user,
	}, nil
}

// Logout revokes the session behind a refresh token. Unknown tokens are
// treated as already logged out.
func (service *Service) Logout(context context.Context, refreshToken string) error {
	session, err := service.sessions.FindByTokenHash(context, sec.HashToken(refreshToken))
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil
		}
		return err
	}

	if err := service.sessions.Revoke(context, session); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	service.logger.Info("user_logged_out", slog.String("user_id", session.UserID))

	return nil
}

// # Session Management

/*
RefreshSession rotates a refresh token.

Description: The presented token is revoked before a new pair is issued, so a
replayed token is rejected.

Returns:
  - *LoginSession: New credentials
  - error: UNAUTHORIZED for unknown or expired tokens
*/
func (service *Service) RefreshSession(context context.Context, refreshToken, userAgent, ipAddress string) (*LoginSession, error) {
	session, err := service.sessions.FindByTokenHash(context, sec.HashToken(refreshToken))
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, apperr.Unauthorized("Invalid or expired refresh token")
		}
		return nil, err
	}

	if err := service.sessions.Revoke(context, session); err != nil {
		return nil, fmt.Errorf("auth_service_refresh_revoke_failed: %w", err)
	}

	user, err := service.users.FindUserByID(context, session.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("Account no longer exists")
	}

	return service.issue(context, user, userAgent, ipAddress)
}

// ChangePasswordInput is the body of a password change.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=8,max=72"`
}

/*
ChangePassword replaces the actor's password after checking the current one.

Description: Every other refresh session of the actor is revoked; the session
behind currentRefreshToken, if any, stays valid.

Returns:
  - error: VALIDATION_ERROR, UNAUTHORIZED for a wrong current password, or storage failures
*/
func (service *Service) ChangePassword(context context.Context, actorID string, input ChangePasswordInput, currentRefreshToken string) error {
	if err := validate.Struct(input); err != nil {
		return err
	}

	user, err := service.users.FindUserByID(context, actorID)
	if err != nil {
		return dberr.NotFoundAs(err, "User")
	}

	if !sec.CheckPasswordHash(input.CurrentPassword, user.PasswordHash) {
		return apperr.Unauthorized("Current password is incorrect")
	}

	hashedPassword, err := sec.HashPassword(input.NewPassword)
	if err != nil {
		return fmt.Errorf("auth_service_change_password_hash_failed: %w", err)
	}

	user.PasswordHash = hashedPassword
	if err := service.users.UpdateUser(context, user); err != nil {
		return err
	}

	keep := ""
	if currentRefreshToken != "" {
		keep = sec.HashToken(currentRefreshToken)
	}
	if err := service.sessions.RevokeOthers(context, actorID, keep); err != nil {
		service.logger.Error("session_revoke_failed", slog.String("user_id", actorID), slog.Any("error", err))
	}

	service.logger.Info("password_changed", slog.String("user_id", actorID))

	return nil
}
