// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package like provides like toggles on videos, comments and tweets.

A toggle answers with the created like when the like is switched on and with
an empty object when it is switched off. The message names the new state.
*/
package like

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/core/relation"
	"github.com/taibuivan/yomitube/internal/platform/apperr"
	"github.com/taibuivan/yomitube/internal/platform/middleware"
	requestutil "github.com/taibuivan/yomitube/internal/platform/request"
	"github.com/taibuivan/yomitube/internal/platform/respond"
	"github.com/taibuivan/yomitube/pkg/pagination"
)

type toggleFunc func(context context.Context, actorID, targetID string) (*relation.Result, error)

// Handler implements the HTTP layer for likes.
type Handler struct {
	service *Service
}

// NewHandler constructs a new like [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with like endpoints. Every route
// requires authentication.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Post("/toggle/v/{targetID}", handler.toggle(handler.service.ToggleVideoLike, "Video"))
	router.Post("/toggle/c/{targetID}", handler.toggle(handler.service.ToggleCommentLike, "Comment"))
	router.Post("/toggle/t/{targetID}", handler.toggle(handler.service.ToggleTweetLike, "Tweet"))
	router.Get("/videos", handler.likedVideos)
	router.Get("/status/{kind}/{targetID}", handler.likeStatus)

	return router
}

/*
POST /api/v1/likes/toggle/{v|c|t}/{targetID}.

Response:
  - 200: Edge when liked, {} when unliked
  - 404: ErrNotFound: Target not found
  - 409: ErrConflict: Toggle kept racing with concurrent requests
*/
func (handler *Handler) toggle(toggle toggleFunc, noun string) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		actorID, targetID, err := requestutil.ActorAndID(request, "targetID")
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		result, err := toggle(request.Context(), actorID, targetID)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		if result.State == relation.StateOn {
			respond.OK(writer, result.Edge, noun+" liked")
			return
		}
		respond.OK(writer, nil, noun+" unliked")
	}
}

// GET /api/v1/likes/videos.
func (handler *Handler) likedVideos(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.LikedVideos(request.Context(), actorID, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, page, "Liked videos fetched successfully")
}

// likeKinds maps the short route segment to the edge kind.
var likeKinds = map[string]entity.EdgeKind{
	"v": entity.KindVideoLike,
	"c": entity.KindCommentLike,
	"t": entity.KindTweetLike,
}

/*
GET /api/v1/likes/status/{v|c|t}/{targetID}.

Response:
  - 200: {kind, targetId, liked}
  - 400: ErrValidation: Unknown kind or malformed identifier
*/
func (handler *Handler) likeStatus(writer http.ResponseWriter, request *http.Request) {
	kind, ok := likeKinds[requestutil.Param(request, "kind")]
	if !ok {
		respond.Error(writer, request, apperr.InvalidArgument("kind", "Must be one of: v, c, t"))
		return
	}

	actorID, targetID, err := requestutil.ActorAndID(request, "targetID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	status, err := handler.service.LikeStatus(request.Context(), actorID, targetID, kind)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, status, "Like status fetched successfully")
}
