// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomitube/internal/core/comment"
	"github.com/taibuivan/yomitube/internal/core/view"
	"github.com/taibuivan/yomitube/internal/platform/apperr"
	"github.com/taibuivan/yomitube/internal/store/memory"
	"github.com/taibuivan/yomitube/internal/store/storetest"
	"github.com/taibuivan/yomitube/pkg/pagination"
	"github.com/taibuivan/yomitube/pkg/uuid"
)

func TestCommentLifecycle(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := memory.New()
	service := comment.NewService(s, view.NewComposer(s, logger), logger)

	author := storetest.NewUser(t, s)
	viewer := storetest.NewUser(t, s)
	video := storetest.NewVideo(t, s, author.ID, "Talk")

	t.Run("validation", func(t *testing.T) {
		_, err := service.AddComment(ctx, viewer.ID, video.ID, comment.Input{Content: strings.Repeat("x", 301)})
		assert.True(t, apperr.Is(err, apperr.CodeValidation))

		_, err = service.AddComment(ctx, viewer.ID, uuid.New(), comment.Input{Content: "hello"})
		assert.True(t, apperr.Is(err, apperr.CodeNotFound))

		_, err = service.AddComment(ctx, viewer.ID, video.ID, comment.Input{Content: " \t "})
		assert.True(t, apperr.Is(err, apperr.CodeValidation))
	})

	added, err := service.AddComment(ctx, viewer.ID, video.ID, comment.Input{Content: "Great talk"})
	require.NoError(t, err)

	page, err := service.ListComments(ctx, video.ID, pagination.Normalize(1, 10))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, viewer.Username, page.Items[0].Owner.Username)

	// The video owner does not own the comment.
	_, err = service.UpdateComment(ctx, author.ID, added.ID, comment.Input{Content: "edited"})
	assert.True(t, apperr.Is(err, apperr.CodeForbidden))
	assert.True(t, apperr.Is(service.DeleteComment(ctx, author.ID, added.ID), apperr.CodeForbidden))

	_, err = service.UpdateComment(ctx, viewer.ID, added.ID, comment.Input{Content: "    "})
	assert.True(t, apperr.Is(err, apperr.CodeValidation))

	edited, err := service.UpdateComment(ctx, viewer.ID, added.ID, comment.Input{Content: " Great talk! "})
	require.NoError(t, err)
	assert.Equal(t, "Great talk!", edited.Content)

	require.NoError(t, service.DeleteComment(ctx, viewer.ID, added.ID))
	assert.True(t, apperr.Is(service.DeleteComment(ctx, viewer.ID, added.ID), apperr.CodeNotFound))
}
