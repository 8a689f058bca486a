// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomitube/internal/api"
	"github.com/taibuivan/yomitube/internal/platform/config"
	"github.com/taibuivan/yomitube/internal/platform/sec"
	"github.com/taibuivan/yomitube/internal/store/memory"
	"github.com/taibuivan/yomitube/internal/users/auth"
)

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Code       string          `json:"code"`
	Success    bool            `json:"success"`
}

type client struct {
	t      *testing.T
	router http.Handler
	token  string
}

func newClient(t *testing.T) *client {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	tokens := sec.NewTokenServiceFromKey(key, "yomitube.test")

	entities := memory.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handlers := api.NewHandlers(api.Dependencies{
		Store:    entities,
		Sessions: auth.NewSessionRepository(rdb),
		Tokens:   tokens,
		Checks: []api.DependencyCheck{
			{Name: "store", Check: entities.Ping},
			{Name: "redis", Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
		},
		Logger: logger,
	})

	cfg := &config.Config{ServerPort: "0", Environment: "test"}
	return &client{t: t, router: api.NewRouter(ctx, cfg, logger, tokens, handlers)}
}

// as returns a copy of the client that sends the given bearer token.
func (c *client) as(token string) *client {
	return &client{t: c.t, router: c.router, token: token}
}

func (c *client) do(method, path string, body any) (int, envelope) {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(payload)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		request.Header.Set("Authorization", "Bearer "+c.token)
	}

	recorder := httptest.NewRecorder()
	c.router.ServeHTTP(recorder, request)

	var decoded envelope
	require.NoError(c.t, json.Unmarshal(recorder.Body.Bytes(), &decoded), recorder.Body.String())
	return recorder.Code, decoded
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var value T
	require.NoError(t, json.Unmarshal(raw, &value))
	return value
}

// signUp registers and logs in a user, returning their ID and access token.
func (c *client) signUp(username string) (string, string) {
	c.t.Helper()

	status, _ := c.do(http.MethodPost, "/api/v1/users/register", map[string]string{
		"username":    username,
		"email":       username + "@example.com",
		"password":    "password123",
		"displayName": username,
	})
	require.Equal(c.t, http.StatusCreated, status)

	status, body := c.do(http.MethodPost, "/api/v1/users/login", map[string]string{
		"login":    username,
		"password": "password123",
	})
	require.Equal(c.t, http.StatusOK, status)

	login := decode[struct {
		AccessToken string `json:"accessToken"`
		User        struct {
			ID string `json:"id"`
		} `json:"user"`
	}](c.t, body.Data)
	return login.User.ID, login.AccessToken
}

func TestPlatformScenario(t *testing.T) {
	anonymous := newClient(t)

	_, aliceToken := anonymous.signUp("alice")
	_, bobToken := anonymous.signUp("bob")
	alice, bob := anonymous.as(aliceToken), anonymous.as(bobToken)

	// Alice publishes a video.
	status, body := alice.do(http.MethodPost, "/api/v1/videos", map[string]any{
		"title":        "Intro",
		"description":  "First upload",
		"videoUrl":     "https://cdn.example.com/intro.mp4",
		"thumbnailUrl": "https://cdn.example.com/intro.png",
		"duration":     42.5,
	})
	require.Equal(t, http.StatusCreated, status)
	videoID := decode[struct {
		ID string `json:"id"`
	}](t, body.Data).ID

	// Bob likes it.
	status, body = bob.do(http.MethodPost, "/api/v1/likes/toggle/v/"+videoID, nil)
	require.Equal(t, http.StatusOK, status)
	edge := decode[map[string]any](t, body.Data)
	assert.Equal(t, "video_like", edge["kind"])

	status, body = bob.do(http.MethodGet, "/api/v1/videos/"+videoID, nil)
	require.Equal(t, http.StatusOK, status)
	detail := decode[struct {
		LikeCount int   `json:"likeCount"`
		IsLiked   bool  `json:"isLiked"`
		Views     int64 `json:"views"`
		Owner     struct {
			Username string `json:"username"`
		} `json:"owner"`
	}](t, body.Data)
	assert.Equal(t, 1, detail.LikeCount)
	assert.True(t, detail.IsLiked)
	assert.Equal(t, int64(1), detail.Views)
	assert.Equal(t, "alice", detail.Owner.Username)

	// Bob unlikes it; the response data is an empty object.
	status, body = bob.do(http.MethodPost, "/api/v1/likes/toggle/v/"+videoID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{}`, string(body.Data))

	// Bob cannot delete Alice's video.
	status, body = bob.do(http.MethodDelete, "/api/v1/videos/"+videoID, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", body.Code)

	// Alice can.
	status, _ = alice.do(http.MethodDelete, "/api/v1/videos/"+videoID, nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = anonymous.do(http.MethodGet, "/api/v1/videos/"+videoID, nil)
	assert.Equal(t, http.StatusNotFound, status)

	// Alice tweets; Bob cannot delete it.
	status, body = alice.do(http.MethodPost, "/api/v1/tweets", map[string]string{"content": "hello"})
	require.Equal(t, http.StatusCreated, status)
	tweetID := decode[struct {
		ID string `json:"id"`
	}](t, body.Data).ID

	status, body = bob.do(http.MethodDelete, "/api/v1/tweets/"+tweetID, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.False(t, body.Success)
}

func TestAuthBoundaries(t *testing.T) {
	anonymous := newClient(t)

	status, body := anonymous.do(http.MethodPost, "/api/v1/tweets", map[string]string{"content": "hi"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", body.Code)

	status, _ = anonymous.as("not-a-jwt").do(http.MethodGet, "/api/v1/videos", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = anonymous.do(http.MethodGet, "/api/v1/videos/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	// Registration is unique by handle.
	anonymous.signUp("carol")
	status, body = anonymous.do(http.MethodPost, "/api/v1/users/register", map[string]string{
		"username":    "carol",
		"email":       "carol2@example.com",
		"password":    "password123",
		"displayName": "Carol",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body.Code)
}

func TestSubscriptionsOverHTTP(t *testing.T) {
	anonymous := newClient(t)

	channelID, channelToken := anonymous.signUp("studio")
	_, fanToken := anonymous.signUp("fan")

	status, _ := anonymous.as(channelToken).do(http.MethodPost, "/api/v1/subscriptions/c/"+channelID, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = anonymous.as(fanToken).do(http.MethodPost, "/api/v1/subscriptions/c/"+channelID, nil)
	require.Equal(t, http.StatusOK, status)

	status, body := anonymous.as(fanToken).do(http.MethodGet, "/api/v1/users/channel/studio", nil)
	require.Equal(t, http.StatusOK, status)
	channel := decode[struct {
		SubscribersCount int  `json:"subscribersCount"`
		IsSubscribed     bool `json:"isSubscribed"`
	}](t, body.Data)
	assert.Equal(t, 1, channel.SubscribersCount)
	assert.True(t, channel.IsSubscribed)

	status, body = anonymous.do(http.MethodGet, "/api/v1/subscriptions/c/"+channelID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, decode[struct {
		Count int `json:"count"`
	}](t, body.Data).Count)
}

func TestHealth(t *testing.T) {
	anonymous := newClient(t)

	status, _ := anonymous.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)

	status, body := anonymous.do(http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ready", decode[map[string]any](t, body.Data)["status"])
}
