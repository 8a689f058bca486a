// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ctxutil carries per-request values through [context.Context].

Only the HTTP edge writes these values. Services receive the acting user as
an explicit argument and never read identity from the context.
*/
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/yomitube/internal/platform/sec"
)

// contextKey is unexported so no other package can collide with these slots.
type contextKey int

const (
	requestIDKey contextKey = iota
	loggerKey
	claimsKey
)

// WithRequestID attaches the correlation ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the correlation ID, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithLogger attaches a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Logger returns the request-scoped logger, falling back to [slog.Default].
func Logger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// WithAuthUser attaches verified token claims.
func WithAuthUser(ctx context.Context, claims *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// AuthUser returns the verified claims, or nil for anonymous requests.
func AuthUser(ctx context.Context) *sec.AuthClaims {
	claims, _ := ctx.Value(claimsKey).(*sec.AuthClaims)
	return claims
}

// ActorID returns the authenticated user ID, or "" for anonymous requests.
func ActorID(ctx context.Context) string {
	if claims := AuthUser(ctx); claims != nil {
		return claims.UserID
	}
	return ""
}
