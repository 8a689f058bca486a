// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"log/slog"

	"github.com/taibuivan/yomitube/internal/core/comment"
	"github.com/taibuivan/yomitube/internal/core/like"
	"github.com/taibuivan/yomitube/internal/core/playlist"
	"github.com/taibuivan/yomitube/internal/core/relation"
	"github.com/taibuivan/yomitube/internal/core/subscription"
	"github.com/taibuivan/yomitube/internal/core/tweet"
	"github.com/taibuivan/yomitube/internal/core/video"
	"github.com/taibuivan/yomitube/internal/core/view"
	"github.com/taibuivan/yomitube/internal/store"
	"github.com/taibuivan/yomitube/internal/users/account"
	"github.com/taibuivan/yomitube/internal/users/auth"
)

// Dependencies are the infrastructure pieces every domain service is built from.
type Dependencies struct {
	Store    store.Store
	Sessions auth.SessionRepository
	Tokens   auth.TokenProvider
	Checks   []DependencyCheck
	Logger   *slog.Logger

	// SecureCookies marks the refresh cookie Secure. Off only for local HTTP.
	SecureCookies bool
}

// NewHandlers builds every domain service over one entity store and returns
// their HTTP handlers.
func NewHandlers(deps Dependencies) Handlers {
	logger := deps.Logger
	composer := view.NewComposer(deps.Store, logger.With(slog.String("component", "view")))
	toggler := relation.NewToggler(deps.Store, logger.With(slog.String("component", "relation")))

	liveness, readiness := NewHealthHandlers(deps.Checks, logger)

	return Handlers{
		Liveness:  liveness,
		Readiness: readiness,

		Auth:    auth.NewHandler(auth.NewService(deps.Store, deps.Sessions, deps.Tokens, logger), deps.SecureCookies),
		Account: account.NewHandler(account.NewService(deps.Store, composer, logger)),

		Video:        video.NewHandler(video.NewService(deps.Store, composer, logger)),
		Comment:      comment.NewHandler(comment.NewService(deps.Store, composer, logger)),
		Tweet:        tweet.NewHandler(tweet.NewService(deps.Store, composer, logger)),
		Playlist:     playlist.NewHandler(playlist.NewService(deps.Store, composer, logger)),
		Like:         like.NewHandler(like.NewService(toggler, composer)),
		Subscription: subscription.NewHandler(subscription.NewService(toggler, composer)),
	}
}
