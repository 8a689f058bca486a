// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package subscription provides channel subscriptions.
package subscription

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/yomitube/internal/core/relation"
	"github.com/taibuivan/yomitube/internal/platform/middleware"
	requestutil "github.com/taibuivan/yomitube/internal/platform/request"
	"github.com/taibuivan/yomitube/internal/platform/respond"
)

// Handler implements the HTTP layer for subscriptions.
type Handler struct {
	service *Service
}

// NewHandler constructs a new subscription [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with subscription endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/c/{channelID}", handler.listSubscribers)
	router.Get("/u/{subscriberID}", handler.listSubscribedChannels)
	router.With(middleware.RequireAuth).Post("/c/{channelID}", handler.toggleSubscription)

	return router
}

/*
POST /api/v1/subscriptions/c/{channelID}.

Response:
  - 200: Edge when subscribed, {} when unsubscribed
  - 404: ErrNotFound: Channel not found
  - 422: ErrUnprocessable: Channel is the actor's own
*/
func (handler *Handler) toggleSubscription(writer http.ResponseWriter, request *http.Request) {
	actorID, channelID, err := requestutil.ActorAndID(request, "channelID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.ToggleSubscription(request.Context(), actorID, channelID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if result.State == relation.StateOn {
		respond.OK(writer, result.Edge, "Subscribed")
		return
	}
	respond.OK(writer, nil, "Unsubscribed")
}

// GET /api/v1/subscriptions/c/{channelID}.
func (handler *Handler) listSubscribers(writer http.ResponseWriter, request *http.Request) {
	channelID, err := requestutil.ID(request, "channelID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	list, err := handler.service.Subscribers(request.Context(), channelID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, list, "Subscribers fetched successfully")
}

// GET /api/v1/subscriptions/u/{subscriberID}.
func (handler *Handler) listSubscribedChannels(writer http.ResponseWriter, request *http.Request) {
	subscriberID, err := requestutil.ID(request, "subscriberID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	list, err := handler.service.SubscribedChannels(request.Context(), subscriberID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, list, "Subscribed channels fetched successfully")
}
