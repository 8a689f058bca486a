// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package middleware holds the HTTP decorators mounted in front of every route.

Order in the router, outermost first:

  - RequestID: correlation ID in the context and the X-Request-ID header.
  - AccessLog: request-scoped slog logger plus one line per finished request.
  - RateLimit: token bucket per client IP.
  - PanicRecovery: a panicking handler becomes a 500 envelope.
  - Authenticate / RequireAuth: bearer token resolution.
  - CORS: origin allow-list and preflight answers.

Every rejection is written through [respond.Error] so clients always see the
same error envelope.
*/
package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/taibuivan/yomitube/internal/platform/constants"
)

// RealIP returns the client address, preferring proxy headers over the socket peer.
func RealIP(request *http.Request) string {
	if ip := strings.TrimSpace(request.Header.Get(constants.HeaderXRealIP)); ip != "" {
		return ip
	}

	if forwarded := request.Header.Get(constants.HeaderXForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}
