// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package playlist provides user-curated, ordered video collections.

Routing Strategy:

Membership changes carry both IDs in the path, video first:

	PATCH /playlists/add/{videoID}/{playlistID}
	PATCH /playlists/remove/{videoID}/{playlistID}
*/
package playlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/yomitube/internal/platform/middleware"
	requestutil "github.com/taibuivan/yomitube/internal/platform/request"
	"github.com/taibuivan/yomitube/internal/platform/respond"
	"github.com/taibuivan/yomitube/pkg/pagination"
)

// Handler implements the HTTP layer for playlists.
type Handler struct {
	service *Service
}

// NewHandler constructs a new playlist [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with playlist endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{playlistID}", handler.getPlaylist)
	router.Get("/user/{userID}", handler.listUserPlaylists)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Post("/", handler.createPlaylist)
		protected.Patch("/{playlistID}", handler.updatePlaylist)
		protected.Delete("/{playlistID}", handler.deletePlaylist)
		protected.Patch("/add/{videoID}/{playlistID}", handler.addVideo)
		protected.Patch("/remove/{videoID}/{playlistID}", handler.removeVideo)
	})

	return router
}

/*
GET /api/v1/playlists/{playlistID}.

Response:
  - 200: PlaylistDetail
  - 404: ErrNotFound: Playlist not found
*/
func (handler *Handler) getPlaylist(writer http.ResponseWriter, request *http.Request) {
	playlistID, err := requestutil.ID(request, "playlistID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.service.GetPlaylist(request.Context(), playlistID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detail, "Playlist fetched successfully")
}

// GET /api/v1/playlists/user/{userID}.
func (handler *Handler) listUserPlaylists(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.ID(request, "userID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.ListUserPlaylists(request.Context(), userID, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, page, "Playlists fetched successfully")
}

/*
POST /api/v1/playlists.

Request (Body):
  - name: string (required, up to 100 characters)
  - description: string (up to 300 characters)

Response:
  - 201: Playlist
*/
func (handler *Handler) createPlaylist(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	playlist, err := handler.service.CreatePlaylist(request.Context(), actorID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, playlist, "Playlist created successfully")
}

// PATCH /api/v1/playlists/{playlistID}.
func (handler *Handler) updatePlaylist(writer http.ResponseWriter, request *http.Request) {
	actorID, playlistID, err := requestutil.ActorAndID(request, "playlistID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	playlist, err := handler.service.UpdatePlaylist(request.Context(), actorID, playlistID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, playlist, "Playlist updated successfully")
}

// DELETE /api/v1/playlists/{playlistID}.
func (handler *Handler) deletePlaylist(writer http.ResponseWriter, request *http.Request) {
	actorID, playlistID, err := requestutil.ActorAndID(request, "playlistID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeletePlaylist(request.Context(), actorID, playlistID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, nil, "Playlist deleted successfully")
}

// PATCH /api/v1/playlists/add/{videoID}/{playlistID}.
func (handler *Handler) addVideo(writer http.ResponseWriter, request *http.Request) {
	actorID, playlistID, videoID, err := membershipParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	playlist, err := handler.service.AddVideo(request.Context(), actorID, playlistID, videoID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, playlist, "Video added to playlist")
}

// PATCH /api/v1/playlists/remove/{videoID}/{playlistID}.
func (handler *Handler) removeVideo(writer http.ResponseWriter, request *http.Request) {
	actorID, playlistID, videoID, err := membershipParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	playlist, err := handler.service.RemoveVideo(request.Context(), actorID, playlistID, videoID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, playlist, "Video removed from playlist")
}

func membershipParams(request *http.Request) (actorID, playlistID, videoID string, err error) {
	actorID, playlistID, err = requestutil.ActorAndID(request, "playlistID")
	if err != nil {
		return "", "", "", err
	}
	videoID, err = requestutil.ID(request, "videoID")
	if err != nil {
		return "", "", "", err
	}
	return actorID, playlistID, videoID, nil
}
