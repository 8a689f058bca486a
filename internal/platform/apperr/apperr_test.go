// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/yomitube/internal/platform/apperr"
)

func TestStatusByCode(t *testing.T) {
	tests := []struct {
		err  *apperr.AppError
		want int
	}{
		{apperr.ValidationError("bad"), http.StatusBadRequest},
		{apperr.Unauthorized("who"), http.StatusUnauthorized},
		{apperr.Forbidden("no"), http.StatusForbidden},
		{apperr.NotFound("Video"), http.StatusNotFound},
		{apperr.Conflict("taken"), http.StatusConflict},
		{apperr.Unprocessable("self"), http.StatusUnprocessableEntity},
		{apperr.RateLimited(1), http.StatusTooManyRequests},
		{apperr.Internal(errors.New("boom")), http.StatusInternalServerError},
		{apperr.New("SOMETHING_NEW", "?"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Code, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus)
		})
	}
}

func TestIs_ThroughWrapping(t *testing.T) {
	cause := errors.New("pool exhausted")
	wrapped := fmt.Errorf("list videos: %w", apperr.Internal(cause))

	assert.True(t, apperr.Is(wrapped, apperr.CodeInternal))
	assert.False(t, apperr.Is(wrapped, apperr.CodeNotFound))
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "An unexpected error occurred", apperr.As(wrapped).Message)

	assert.Equal(t, "Video not found", apperr.NotFound("Video").Error())
	assert.Nil(t, apperr.As(cause))
}
