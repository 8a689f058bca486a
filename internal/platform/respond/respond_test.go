// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomitube/internal/platform/apperr"
	"github.com/taibuivan/yomitube/internal/platform/respond"
)

/*
TestOK verifies the success envelope.
*/
func TestOK(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.OK(recorder, map[string]string{"id": "v1"}, "Video fetched")

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, float64(200), body["statusCode"])
	assert.Equal(t, "Video fetched", body["message"])
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "v1", body["data"].(map[string]any)["id"])
}

/*
TestOK_NilData ensures a nil payload is rendered as an empty object.
*/
func TestOK_NilData(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.OK(recorder, nil, "Like removed")

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{}, body["data"])
}

/*
TestError verifies status mapping and that no data field leaks into failures.
*/
func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not_found", apperr.NotFound("Video"), http.StatusNotFound, apperr.CodeNotFound},
		{"forbidden", apperr.Forbidden("nope"), http.StatusForbidden, apperr.CodeForbidden},
		{"conflict", apperr.Conflict("busy"), http.StatusConflict, apperr.CodeConflict},
		{"validation", apperr.InvalidArgument("videoId", "Must be a valid UUID"), http.StatusBadRequest, apperr.CodeValidation},
		{"plain_error", errors.New("boom"), http.StatusInternalServerError, apperr.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/", nil)

			respond.Error(recorder, request, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body["code"])
			assert.Equal(t, false, body["success"])
			assert.NotContains(t, body, "data")
		})
	}
}
