// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomitube/internal/platform/apperr"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
	"github.com/taibuivan/yomitube/internal/platform/sec"
	"github.com/taibuivan/yomitube/internal/store/memory"
	"github.com/taibuivan/yomitube/internal/users/auth"
)

// fakeSessions keeps sessions in a map keyed by token hash.
type fakeSessions struct {
	mu       sync.Mutex
	sessions map[string]*auth.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: make(map[string]*auth.Session)}
}

func (f *fakeSessions) Create(_ context.Context, session *auth.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *session
	f.sessions[session.TokenHash] = &copied
	return nil
}

func (f *fakeSessions) FindByTokenHash(_ context.Context, tokenHash string) (*auth.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[tokenHash]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := *session
	return &copied, nil
}

func (f *fakeSessions) Revoke(_ context.Context, session *auth.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, session.TokenHash)
	return nil
}

func (f *fakeSessions) RevokeOthers(_ context.Context, userID, keepTokenHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for hash, session := range f.sessions {
		if session.UserID == userID && hash != keepTokenHash {
			delete(f.sessions, hash)
		}
	}
	return nil
}

func newTokenService(t *testing.T) *sec.TokenService {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return sec.NewTokenServiceFromKey(key, "yomitube.test")
}

func newService(t *testing.T) (*auth.Service, *fakeSessions, *sec.TokenService) {
	t.Helper()
	sessions := newFakeSessions()
	tokens := newTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return auth.NewService(memory.New(), sessions, tokens, logger), sessions, tokens
}

var validRegistration = auth.RegisterInput{
	Username:    "Rin.Codes",
	Email:       "rin@example.com",
	Password:    "correct horse",
	DisplayName: "Rin",
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newService(t)

	user, err := service.Register(ctx, validRegistration)
	require.NoError(t, err)
	assert.Equal(t, "rin.codes", user.Username)
	assert.NotEqual(t, validRegistration.Password, user.PasswordHash)

	t.Run("duplicate username", func(t *testing.T) {
		input := validRegistration
		input.Email = "other@example.com"
		_, err := service.Register(ctx, input)
		assert.True(t, apperr.Is(err, apperr.CodeConflict))
	})

	t.Run("duplicate email", func(t *testing.T) {
		input := validRegistration
		input.Username = "someone_else"
		_, err := service.Register(ctx, input)
		assert.True(t, apperr.Is(err, apperr.CodeConflict))
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name  string
			input auth.RegisterInput
		}{
			{"short password", auth.RegisterInput{Username: "valid_name", Email: "a@b.co", Password: "short", DisplayName: "A"}},
			{"bad email", auth.RegisterInput{Username: "valid_name", Email: "nope", Password: "long enough", DisplayName: "A"}},
			{"bad handle", auth.RegisterInput{Username: "has space", Email: "a@b.co", Password: "long enough", DisplayName: "A"}},
			{"missing display name", auth.RegisterInput{Username: "valid_name", Email: "a@b.co", Password: "long enough"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.Register(ctx, tt.input)
				assert.True(t, apperr.Is(err, apperr.CodeValidation))
			})
		}
	})
}

func TestLoginAndRefresh(t *testing.T) {
	ctx := context.Background()
	service, sessions, tokens := newService(t)

	user, err := service.Register(ctx, validRegistration)
	require.NoError(t, err)

	for _, login := range []string{"rin.codes", "rin@example.com"} {
		session, err := service.Login(ctx, auth.LoginInput{Login: login, Password: validRegistration.Password})
		require.NoError(t, err, login)

		claims, err := tokens.VerifyToken(session.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
	}

	_, err = service.Login(ctx, auth.LoginInput{Login: "rin.codes", Password: "wrong password"})
	assert.True(t, apperr.Is(err, apperr.CodeUnauthorized))
	_, err = service.Login(ctx, auth.LoginInput{Login: "ghost", Password: "whatever1"})
	assert.True(t, apperr.Is(err, apperr.CodeUnauthorized))

	session, err := service.Login(ctx, auth.LoginInput{Login: "rin.codes", Password: validRegistration.Password})
	require.NoError(t, err)

	rotated, err := service.RefreshSession(ctx, session.RefreshToken, "test", "127.0.0.1")
	require.NoError(t, err)
	assert.NotEqual(t, session.RefreshToken, rotated.RefreshToken)

	// The rotated-out token cannot be replayed.
	_, err = service.RefreshSession(ctx, session.RefreshToken, "test", "127.0.0.1")
	assert.True(t, apperr.Is(err, apperr.CodeUnauthorized))

	require.NoError(t, service.Logout(ctx, rotated.RefreshToken))
	require.NoError(t, service.Logout(ctx, rotated.RefreshToken))

	_, err = sessions.FindByTokenHash(ctx, sec.HashToken(rotated.RefreshToken))
	assert.True(t, dberr.IsNotFound(err))
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	service, sessions, _ := newService(t)

	user, err := service.Register(ctx, validRegistration)
	require.NoError(t, err)

	login := auth.LoginInput{Login: "rin.codes", Password: validRegistration.Password}
	current, err := service.Login(ctx, login)
	require.NoError(t, err)
	other, err := service.Login(ctx, login)
	require.NoError(t, err)

	err = service.ChangePassword(ctx, user.ID, auth.ChangePasswordInput{CurrentPassword: "wrong one", NewPassword: "new password"}, current.RefreshToken)
	assert.True(t, apperr.Is(err, apperr.CodeUnauthorized))

	err = service.ChangePassword(ctx, user.ID, auth.ChangePasswordInput{CurrentPassword: validRegistration.Password, NewPassword: "new password"}, current.RefreshToken)
	require.NoError(t, err)

	_, err = sessions.FindByTokenHash(ctx, sec.HashToken(current.RefreshToken))
	assert.NoError(t, err)
	_, err = sessions.FindByTokenHash(ctx, sec.HashToken(other.RefreshToken))
	assert.True(t, dberr.IsNotFound(err))

	_, err = service.Login(ctx, login)
	assert.True(t, apperr.Is(err, apperr.CodeUnauthorized))

	_, err = service.Login(ctx, auth.LoginInput{Login: "rin.codes", Password: "new password"})
	assert.NoError(t, err)
}
