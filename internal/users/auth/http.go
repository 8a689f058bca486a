// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/platform/apperr"
	"github.com/taibuivan/yomitube/internal/platform/constants"
	"github.com/taibuivan/yomitube/internal/platform/middleware"
	requestutil "github.com/taibuivan/yomitube/internal/platform/request"
	"github.com/taibuivan/yomitube/internal/platform/respond"
	"github.com/taibuivan/yomitube/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the credential endpoints under /users.
type Handler struct {
	authService *Service
	// secureCookies is false only for local development over plain HTTP.
	secureCookies bool
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service, secureCookies bool) *Handler {
	return &Handler{authService: service, secureCookies: secureCookies}
}

// RegisterRoutes attaches the credential routes to the /users router, which
// it shares with the account handler.
//
// # Endpoints
//   - POST /register : Creates a new account.
//   - POST /login    : Authenticates and returns a JWT.
//   - POST /refresh  : Rotates the refresh cookie.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/refresh", handler.refresh)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Post("/logout", handler.logout)
		protected.Post("/change-password", handler.changePassword)
	})
}

/*
POST /api/v1/users/register

Request:
  - Body: RegisterInput

Response:
  - 201: User: Created account
  - 400: ErrValidation: Bad input
  - 409: ErrConflict: Username or Email already exists
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input RegisterInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	user, err := handler.authService.Register(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user, "User registered successfully")
}

/*
POST /api/v1/users/login

Request:
  - Body: { login, password }

Response:
  - 200: { accessToken, user } and the refresh cookie
  - 401: ErrUnauthorized: Invalid credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input LoginInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}
	input.UserAgent = request.UserAgent()
	input.IPAddress = middleware.RealIP(request)

	session, err := handler.authService.Login(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setRefreshCookie(writer, session.RefreshToken, session.RefreshTokenExpiresAt)

	respond.OK(writer, newTokenResponse(session), "User logged in successfully")
}

/*
POST /api/v1/users/logout

Response:
  - 200: Session terminated and cookie cleared
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	cookie, err := request.Cookie(constants.RefreshTokenCookieName)
	if err == nil && cookie.Value != "" {
		if err := handler.authService.Logout(request.Context(), cookie.Value); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	handler.setRefreshCookie(writer, "", time.Time{})

	respond.OK(writer, nil, "User logged out")
}

/*
POST /api/v1/users/refresh

Response:
  - 200: { accessToken, tokenType, expiresIn } and a rotated cookie
  - 401: ErrUnauthorized: Missing or invalid refresh token
*/
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	cookie, err := request.Cookie(constants.RefreshTokenCookieName)
	if err != nil || cookie.Value == "" {
		respond.Error(writer, request, apperr.Unauthorized("Missing refresh token in cookies"))
		return
	}

	session, err := handler.authService.RefreshSession(request.Context(), cookie.Value, request.UserAgent(), middleware.RealIP(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setRefreshCookie(writer, session.RefreshToken, session.RefreshTokenExpiresAt)

	response := newTokenResponse(session)
	response.User = nil
	respond.OK(writer, response, "Access token refreshed")
}

/*
POST /api/v1/users/change-password

Request:
  - Body: ChangePasswordInput

Response:
  - 200: Password changed; other sessions are signed out
  - 401: ErrUnauthorized: Wrong current password
*/
func (handler *Handler) changePassword(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input ChangePasswordInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	currentToken := ""
	if cookie, err := request.Cookie(constants.RefreshTokenCookieName); err == nil {
		currentToken = cookie.Value
	}

	if err := handler.authService.ChangePassword(request.Context(), actorID, input, currentToken); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, nil, "Password changed successfully")
}

// setRefreshCookie writes the refresh cookie; an empty value clears it.
func (handler *Handler) setRefreshCookie(writer http.ResponseWriter, value string, expiresAt time.Time) {
	cookie := &http.Cookie{
		Name:     constants.RefreshTokenCookieName,
		Value:    value,
		Path:     constants.RefreshTokenCookiePath,
		Expires:  expiresAt,
		Secure:   handler.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	if value == "" {
		cookie.MaxAge = -1
	}
	http.SetCookie(writer, cookie)
}

// tokenResponse is the body of login and refresh. The refresh token only
// travels in the cookie.
type tokenResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresIn   int          `json:"expiresIn"`
	User        *entity.User `json:"user,omitempty"`
}

func newTokenResponse(session *LoginSession) tokenResponse {
	return tokenResponse{
		AccessToken: session.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(AccessTokenTTL / time.Second),
		User:        session.User,
	}
}
