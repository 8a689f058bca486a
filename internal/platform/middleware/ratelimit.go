// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/yomitube/internal/platform/apperr"
	"github.com/taibuivan/yomitube/internal/platform/constants"
	"github.com/taibuivan/yomitube/internal/platform/respond"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiter keeps one token bucket per client IP. Each router owns its own
// instance, so parallel test servers never share buckets.
type ipLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	visitors map[string]*visitor
}

func (l *ipLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.visitors[ip]
	if !ok {
		entry = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

// sweep drops idle visitors until ctx ends.
func (l *ipLimiter) sweep(ctx context.Context, every, idle time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			l.mu.Lock()
			for ip, entry := range l.visitors {
				if now.Sub(entry.lastSeen) > idle {
					delete(l.visitors, ip)
				}
			}
			l.mu.Unlock()
		}
	}
}

/*
RateLimit throttles each client IP with a token bucket of the given rate and
burst. Rejected requests get 429 with a Retry-After header.

The idle-visitor sweeper stops when ctx is cancelled.
*/
func RateLimit(ctx context.Context, limit rate.Limit, burst int) func(http.Handler) http.Handler {
	limiter := &ipLimiter{limit: limit, burst: burst, visitors: make(map[string]*visitor)}
	go limiter.sweep(ctx, constants.RateLimitCleanupInterval, constants.RateLimitClientTTL)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !limiter.allow(RealIP(request), time.Now()) {
				writer.Header().Set(constants.HeaderRetryAfter, strconv.Itoa(1))
				respond.Error(writer, request, apperr.RateLimited(1))
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}
