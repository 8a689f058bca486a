// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the error vocabulary shared by the store, the core
components and the HTTP edge.

Every failure that leaves a service is an [*AppError] carrying one of the codes
below. The status for each code is fixed in one table here, so handlers never
pick a status themselves.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Machine-readable error codes.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeConflict     = "CONFLICT"
	CodeUnprocess    = "UNPROCESSABLE"
	CodeRateLimited  = "RATE_LIMITED"
	CodeInternal     = "INTERNAL_ERROR"
)

var statusByCode = map[string]int{
	CodeValidation:   http.StatusBadRequest,
	CodeUnauthorized: http.StatusUnauthorized,
	CodeForbidden:    http.StatusForbidden,
	CodeNotFound:     http.StatusNotFound,
	CodeConflict:     http.StatusConflict,
	CodeUnprocess:    http.StatusUnprocessableEntity,
	CodeRateLimited:  http.StatusTooManyRequests,
	CodeInternal:     http.StatusInternalServerError,
}

// AppError is a client-safe failure.
//
// Cause is kept for server-side logs and never serialized.
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"error"`
	HTTPStatus int          `json:"-"`
	Cause      error        `json:"-"`
	Details    []FieldError `json:"details,omitempty"`
}

// FieldError is one failing input field, named as the client sent it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Cause }

// New builds an [AppError] for code. Unknown codes map to 500.
func New(code, message string) *AppError {
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// NotFound reports a missing resource as "<resource> not found".
func NotFound(resource string) *AppError {
	return New(CodeNotFound, resource+" not found")
}

func Unauthorized(message string) *AppError { return New(CodeUnauthorized, message) }

func Forbidden(message string) *AppError { return New(CodeForbidden, message) }

// Conflict reports a uniqueness clash or a write that lost a race.
func Conflict(message string) *AppError { return New(CodeConflict, message) }

// Unprocessable reports well-formed input that the operation refuses, such
// as subscribing to yourself.
func Unprocessable(message string) *AppError { return New(CodeUnprocess, message) }

// ValidationError reports malformed input with optional per-field details.
func ValidationError(message string, details ...FieldError) *AppError {
	err := New(CodeValidation, message)
	err.Details = details
	return err
}

// InvalidArgument is a [ValidationError] for a single field.
func InvalidArgument(field, message string) *AppError {
	return ValidationError("Invalid "+field, FieldError{Field: field, Message: message})
}

func RateLimited(retryAfterSeconds int) *AppError {
	return New(CodeRateLimited, fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds))
}

// Internal hides cause behind a generic message.
func Internal(cause error) *AppError {
	err := New(CodeInternal, "An unexpected error occurred")
	err.Cause = cause
	return err
}

// IsAppError reports whether err's chain holds an [*AppError].
func IsAppError(err error) bool {
	return As(err) != nil
}

// As extracts the [*AppError] from err's chain, or nil.
func As(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// Is reports whether err carries an [*AppError] with the given code.
func Is(err error, code string) bool {
	appErr := As(err)
	return appErr != nil && appErr.Code == code
}
