// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil reads inputs off an [http.Request]: JSON bodies, chi path
parameters and the authenticated actor.

Every helper fails with an [apperr.AppError] so handlers can pass the error
straight to respond.Error.
*/
package requestutil

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/yomitube/internal/platform/apperr"
	"github.com/taibuivan/yomitube/internal/platform/ctxutil"
	"github.com/taibuivan/yomitube/internal/platform/validate"
)

// maxBodyBytes caps a JSON request body.
const maxBodyBytes = 1 << 20

// DecodeJSON decodes the body into target, failing with validate.ErrInvalidJSON
// on malformed, empty or oversized input.
func DecodeJSON(request *http.Request, target any) error {
	if request.Body == nil {
		return validate.ErrInvalidJSON
	}
	decoder := json.NewDecoder(io.LimitReader(request.Body, maxBodyBytes))
	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// ID reads a path parameter that must be a UUID and returns it lower-cased.
func ID(request *http.Request, name string) (string, error) {
	value := strings.ToLower(chi.URLParam(request, name))
	if err := new(validate.Validator).UUID(name, value).Err(); err != nil {
		return "", err
	}
	return value, nil
}

// Param reads a raw path parameter.
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// ViewerID is the actor for reads: the user ID, or "" when anonymous.
func ViewerID(request *http.Request) string {
	return ctxutil.ActorID(request.Context())
}

// RequiredUserID is the actor for writes. Anonymous requests get UNAUTHORIZED.
func RequiredUserID(request *http.Request) (string, error) {
	actorID := ctxutil.ActorID(request.Context())
	if actorID == "" {
		return "", apperr.Unauthorized("Authentication required")
	}
	return actorID, nil
}

/*
ActorAndID combines [RequiredUserID] and [ID] for the common
"act on resource X" route shape.

Returns:
  - string: Actor user ID
  - string: The path identifier
  - error: UNAUTHORIZED or VALIDATION_ERROR
*/
func ActorAndID(request *http.Request, name string) (string, string, error) {
	actorID, err := RequiredUserID(request)
	if err != nil {
		return "", "", err
	}

	id, err := ID(request, name)
	if err != nil {
		return "", "", err
	}

	return actorID, id, nil
}
