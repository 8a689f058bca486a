// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package video provides publishing, browsing and owner-managed editing of videos.

# Routing Strategy

  - Public: Browse and search (GET /videos), watch page (GET /videos/{videoID}).
  - Authenticated: Publish (POST /videos).
  - Owner only: Edit, delete and toggle publication.

Reads are composed by the view package; this package owns the write rules.
*/
package video

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/yomitube/internal/platform/middleware"
	requestutil "github.com/taibuivan/yomitube/internal/platform/request"
	"github.com/taibuivan/yomitube/internal/platform/respond"
	"github.com/taibuivan/yomitube/internal/platform/validate"
	"github.com/taibuivan/yomitube/internal/store"
	"github.com/taibuivan/yomitube/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for video operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new video [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with video endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery
	router.Get("/", handler.listVideos)
	router.Get("/{videoID}", handler.getVideo)

	// ## Channel Management (Auth Required)
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Post("/", handler.publishVideo)
		protected.Patch("/{videoID}", handler.updateVideo)
		protected.Delete("/{videoID}", handler.deleteVideo)
		protected.Patch("/{videoID}/publish", handler.togglePublish)
	})

	return router
}

/*
GET /api/v1/videos.

Description: Searches and browses videos. Unpublished videos are listed only
when the caller filters on their own channel.

Request:
  - query: string (matches title or description)
  - userId: string (channel filter)
  - sortBy: createdAt | views | duration | title
  - sortType: asc | desc
  - page, limit: int

Response:
  - 200: Page[VideoSummary]
  - 400: ErrValidation: Malformed userId
*/
func (handler *Handler) listVideos(writer http.ResponseWriter, request *http.Request) {
	queryParams := request.URL.Query()

	filter := store.VideoFilter{
		Query:     strings.TrimSpace(queryParams.Get("query")),
		OwnerID:   strings.ToLower(queryParams.Get("userId")),
		SortBy:    store.ParseVideoSort(queryParams.Get("sortBy")),
		Ascending: strings.EqualFold(queryParams.Get("sortType"), "asc"),
	}

	if filter.OwnerID != "" {
		if err := (&validate.Validator{}).UUID("userId", filter.OwnerID).Err(); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	page, err := handler.service.ListVideos(request.Context(), requestutil.ViewerID(request), filter, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, page, "Videos fetched successfully")
}

/*
GET /api/v1/videos/{videoID}.

Description: Returns the watch page and counts one view.

Response:
  - 200: VideoDetail
  - 400: ErrValidation: Malformed ID
  - 404: ErrNotFound
*/
func (handler *Handler) getVideo(writer http.ResponseWriter, request *http.Request) {
	videoID, err := requestutil.ID(request, "videoID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.service.GetVideo(request.Context(), videoID, requestutil.ViewerID(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detail, "Video fetched successfully")
}

/*
POST /api/v1/videos.

Request (Body):
  - PublishInput JSON object

Response:
  - 201: Video
  - 400: ErrValidation
*/
func (handler *Handler) publishVideo(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input PublishInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	video, err := handler.service.PublishVideo(request.Context(), actorID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, video, "Video published successfully")
}

/*
PATCH /api/v1/videos/{videoID}.

Request (Body):
  - UpdateInput JSON object

Response:
  - 200: Video
  - 403: ErrForbidden: Not the owner
  - 404: ErrNotFound
*/
func (handler *Handler) updateVideo(writer http.ResponseWriter, request *http.Request) {
	actorID, videoID, err := requestutil.ActorAndID(request, "videoID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	video, err := handler.service.UpdateVideo(request.Context(), actorID, videoID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, video, "Video updated successfully")
}

/*
DELETE /api/v1/videos/{videoID}.

Response:
  - 200: {}
  - 403: ErrForbidden: Not the owner
  - 404: ErrNotFound
*/
func (handler *Handler) deleteVideo(writer http.ResponseWriter, request *http.Request) {
	actorID, videoID, err := requestutil.ActorAndID(request, "videoID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteVideo(request.Context(), actorID, videoID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, nil, "Video deleted successfully")
}

/*
PATCH /api/v1/videos/{videoID}/publish.

Response:
  - 200: Video with the flipped isPublished flag
*/
func (handler *Handler) togglePublish(writer http.ResponseWriter, request *http.Request) {
	actorID, videoID, err := requestutil.ActorAndID(request, "videoID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	video, err := handler.service.TogglePublish(request.Context(), actorID, videoID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, video, "Publish status toggled successfully")
}
