// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package comment provides the comment threads under videos.
package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/yomitube/internal/platform/middleware"
	requestutil "github.com/taibuivan/yomitube/internal/platform/request"
	"github.com/taibuivan/yomitube/internal/platform/respond"
	"github.com/taibuivan/yomitube/pkg/pagination"
)

// Handler implements the HTTP layer for comments.
type Handler struct {
	service *Service
}

// NewHandler constructs a new comment [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with comment endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{videoID}", handler.listComments)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Post("/{videoID}", handler.addComment)
		protected.Patch("/c/{commentID}", handler.updateComment)
		protected.Delete("/c/{commentID}", handler.deleteComment)
	})

	return router
}

/*
GET /api/v1/comments/{videoID}.

Response:
  - 200: Page[CommentView], newest first
  - 404: ErrNotFound: Video not found
*/
func (handler *Handler) listComments(writer http.ResponseWriter, request *http.Request) {
	videoID, err := requestutil.ID(request, "videoID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.ListComments(request.Context(), videoID, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, page, "Comments fetched successfully")
}

/*
POST /api/v1/comments/{videoID}.

Request (Body):
  - content: string (1..300 characters)

Response:
  - 201: Comment
*/
func (handler *Handler) addComment(writer http.ResponseWriter, request *http.Request) {
	actorID, videoID, err := requestutil.ActorAndID(request, "videoID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.AddComment(request.Context(), actorID, videoID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, comment, "Comment added successfully")
}

// PATCH /api/v1/comments/c/{commentID}.
func (handler *Handler) updateComment(writer http.ResponseWriter, request *http.Request) {
	actorID, commentID, err := requestutil.ActorAndID(request, "commentID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.UpdateComment(request.Context(), actorID, commentID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comment, "Comment updated successfully")
}

// DELETE /api/v1/comments/c/{commentID}.
func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	actorID, commentID, err := requestutil.ActorAndID(request, "commentID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteComment(request.Context(), actorID, commentID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, nil, "Comment deleted successfully")
}
