// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package tweet provides channel tweets.
package tweet

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/yomitube/internal/platform/middleware"
	requestutil "github.com/taibuivan/yomitube/internal/platform/request"
	"github.com/taibuivan/yomitube/internal/platform/respond"
	"github.com/taibuivan/yomitube/pkg/pagination"
)

// Handler implements the HTTP layer for tweets.
type Handler struct {
	service *Service
}

// NewHandler constructs a new tweet [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with tweet endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/user/{userID}", handler.listTweets)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Post("/", handler.createTweet)
		protected.Patch("/{tweetID}", handler.updateTweet)
		protected.Delete("/{tweetID}", handler.deleteTweet)
	})

	return router
}

/*
POST /api/v1/tweets.

Request (Body):
  - content: string (1..280 characters)

Response:
  - 201: Tweet
*/
func (handler *Handler) createTweet(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tweet, err := handler.service.CreateTweet(request.Context(), actorID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, tweet, "Tweet created successfully")
}

/*
GET /api/v1/tweets/user/{userID}.

Response:
  - 200: Page[TweetView], newest first
  - 404: ErrNotFound: User not found
*/
func (handler *Handler) listTweets(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.ID(request, "userID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.ListTweets(request.Context(), userID, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, page, "Tweets fetched successfully")
}

// PATCH /api/v1/tweets/{tweetID}.
func (handler *Handler) updateTweet(writer http.ResponseWriter, request *http.Request) {
	actorID, tweetID, err := requestutil.ActorAndID(request, "tweetID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tweet, err := handler.service.UpdateTweet(request.Context(), actorID, tweetID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, tweet, "Tweet updated successfully")
}

// DELETE /api/v1/tweets/{tweetID}.
func (handler *Handler) deleteTweet(writer http.ResponseWriter, request *http.Request) {
	actorID, tweetID, err := requestutil.ActorAndID(request, "tweetID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteTweet(request.Context(), actorID, tweetID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, nil, "Tweet deleted successfully")
}
