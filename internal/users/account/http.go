// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/yomitube/internal/platform/middleware"
	requestutil "github.com/taibuivan/yomitube/internal/platform/request"
	"github.com/taibuivan/yomitube/internal/platform/respond"
	"github.com/taibuivan/yomitube/internal/platform/validate"
)

// Handler implements the HTTP layer for user accounts.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// RegisterRoutes attaches the profile routes to the /users router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/channel/{username}", handler.getChannel)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Get("/me", handler.getMe)
		protected.Patch("/me", handler.updateMe)
	})
}

/*
GET /api/v1/users/me.

Response:
  - 200: User: The actor's account
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) getMe(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.GetProfile(request.Context(), actorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user, "Current user fetched successfully")
}

/*
PATCH /api/v1/users/me.

Request:
  - body: UpdateInput (partial JSON)

Response:
  - 200: User: The updated account
  - 409: ErrConflict: Email already registered
*/
func (handler *Handler) updateMe(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	user, err := handler.accountService.UpdateProfile(request.Context(), actorID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user, "Account details updated successfully")
}

/*
GET /api/v1/users/channel/{username}.

Response:
  - 200: Channel: Profile, subscription counts and the viewer's status
  - 404: ErrNotFound: Channel not found
*/
func (handler *Handler) getChannel(writer http.ResponseWriter, request *http.Request) {
	channel, err := handler.accountService.Channel(
		request.Context(),
		requestutil.Param(request, "username"),
		requestutil.ViewerID(request),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, channel, "Channel fetched successfully")
}
