// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomitube/internal/core/view"
	"github.com/taibuivan/yomitube/internal/platform/apperr"
	"github.com/taibuivan/yomitube/internal/store/memory"
	"github.com/taibuivan/yomitube/internal/store/storetest"
	"github.com/taibuivan/yomitube/internal/users/account"
	"github.com/taibuivan/yomitube/pkg/pointer"
)

func newService(s *memory.Store) *account.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return account.NewService(s, view.NewComposer(s, logger), logger)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	service := newService(s)

	me := storetest.NewUser(t, s)
	other := storetest.NewUser(t, s)

	updated, err := service.UpdateProfile(ctx, me.ID, account.UpdateInput{
		DisplayName: pointer.To("New Name"),
		AvatarURL:   pointer.To("https://cdn.example.com/a.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.DisplayName)
	assert.Equal(t, me.Email, updated.Email)

	_, err = service.UpdateProfile(ctx, me.ID, account.UpdateInput{Email: pointer.To(strings.ToUpper(other.Email))})
	assert.True(t, apperr.Is(err, apperr.CodeConflict))

	_, err = service.UpdateProfile(ctx, me.ID, account.UpdateInput{AvatarURL: pointer.To("not a url")})
	assert.True(t, apperr.Is(err, apperr.CodeValidation))

	stored, err := service.GetProfile(ctx, me.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", stored.DisplayName)
}

func TestChannel(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	service := newService(s)

	channel := storetest.NewUser(t, s)

	page, err := service.Channel(ctx, strings.ToUpper(channel.Username), "")
	require.NoError(t, err)
	assert.Equal(t, channel.ID, page.ID)
	assert.False(t, page.IsSubscribed)

	_, err = service.Channel(ctx, "nobody_here", "")
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}
