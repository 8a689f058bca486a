// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package respond writes the two JSON envelopes every endpoint returns.

	success: {statusCode, data, message, success: true}
	failure: {statusCode, code, error, details?, success: false}

A failure never carries data. A success with nothing to return carries an
empty object.
*/
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/taibuivan/yomitube/internal/platform/apperr"
	"github.com/taibuivan/yomitube/internal/platform/ctxutil"
)

// SuccessEnvelope wraps every 2xx body.
type SuccessEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// ErrorEnvelope wraps every 4xx and 5xx body.
type ErrorEnvelope struct {
	StatusCode int                 `json:"statusCode"`
	Error      string              `json:"error"`
	Code       string              `json:"code"`
	Details    []apperr.FieldError `json:"details,omitempty"`
	Success    bool                `json:"success"`
}

// emptyObject renders as {}.
var emptyObject = struct{}{}

// JSON writes payload as-is. Prefer the envelope helpers.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

func OK(writer http.ResponseWriter, data any, message string) {
	Status(writer, http.StatusOK, data, message)
}

func Created(writer http.ResponseWriter, data any, message string) {
	Status(writer, http.StatusCreated, data, message)
}

// Status writes a success envelope; nil data becomes {}.
func Status(writer http.ResponseWriter, statusCode int, data any, message string) {
	if data == nil {
		data = emptyObject
	}
	JSON(writer, statusCode, SuccessEnvelope{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

/*
Error writes the failure envelope for err.

Errors without an [*apperr.AppError] in their chain become a generic 500.
Every 5xx is logged with its cause on the request-scoped logger.
*/
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	appErr := apperr.As(err)
	if appErr == nil {
		appErr = apperr.Internal(err)
	}

	if appErr.HTTPStatus >= http.StatusInternalServerError {
		ctx := request.Context()
		ctxutil.Logger(ctx).ErrorContext(ctx, "api_server_error",
			slog.String("code", appErr.Code),
			slog.String("request_id", ctxutil.RequestID(ctx)),
			slog.Any("cause", appErr.Cause),
		)
	}

	JSON(writer, appErr.HTTPStatus, ErrorEnvelope{
		StatusCode: appErr.HTTPStatus,
		Error:      appErr.Message,
		Code:       appErr.Code,
		Details:    appErr.Details,
		Success:    false,
	})
}
