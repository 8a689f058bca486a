// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package constants holds the fixed values shared across layers: server
// timing, header names, throttling, token cookies, store drivers and Redis
// key prefixes.
package constants

import "time"

const (
	AppName    = "yomitube-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	DefaultReadTimeout       = 5 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultIdleTimeout       = 120 * time.Second
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout bounds a whole request, handler and store calls included.
	// Postgres sessions also use it as their statement_timeout.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is the drain window for in-flight requests.
	ShutdownTimeout = 30 * time.Second
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderAuthorization = "Authorization"
	HeaderRetryAfter    = "Retry-After"
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS refills each client bucket at this many tokens per second.
	DefaultRateLimitRPS = 100.0
	// DefaultRateLimitBurst is the bucket size.
	DefaultRateLimitBurst = 150

	RateLimitCleanupInterval = 1 * time.Minute
	// RateLimitClientTTL is the idle time after which a client's bucket is dropped.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the 'iss' claim of every access token.
	AuthIssuer = "yomitube.app"

	RefreshTokenCookieName = "refresh_token"
	// RefreshTokenCookiePath scopes the cookie to the account routes.
	RefreshTokenCookiePath = "/api/v1/users"
)

// # Response Fields

const (
	FieldStatusCode = "statusCode"
	FieldSuccess    = "success"
	FieldStatus     = "status"
	FieldApp        = "app"
	FieldChecks     = "checks"
)

// # Store Drivers

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// # Redis Keys

const (
	// RedisPrefixSession + token hash holds one serialized refresh session.
	RedisPrefixSession = "auth:session:"
	// RedisPrefixUserSession + user ID is the set of that user's live token hashes.
	RedisPrefixUserSession = "auth:user_sessions:"
)
