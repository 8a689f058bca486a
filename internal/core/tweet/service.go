// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tweet

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/core/ownership"
	"github.com/taibuivan/yomitube/internal/core/view"
	"github.com/taibuivan/yomitube/internal/platform/validate"
	"github.com/taibuivan/yomitube/internal/store"
	"github.com/taibuivan/yomitube/pkg/pagination"
	"github.com/taibuivan/yomitube/pkg/uuid"
)

// Input is the body of a create or edit request.
type Input struct {
	Content string `json:"content" validate:"required,notblank,max=280"`
}

// Service manages short text posts on a channel.
type Service struct {
	tweets   store.TweetStore
	composer *view.Composer
	logger   *slog.Logger
}

// NewService constructs a new tweet [Service].
func NewService(tweets store.TweetStore, composer *view.Composer, logger *slog.Logger) *Service {
	return &Service{tweets: tweets, composer: composer, logger: logger}
}

// CreateTweet posts a tweet on the actor's channel.
func (service *Service) CreateTweet(context context.Context, actorID string, input Input) (*entity.Tweet, error) {
	input.Content = strings.TrimSpace(input.Content)
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	tweet := &entity.Tweet{ID: uuid.New(), OwnerID: actorID, Content: input.Content}
	if err := service.tweets.CreateTweet(context, tweet); err != nil {
		return nil, err
	}

	service.logger.Info("tweet_created", slog.String("tweet_id", tweet.ID))

	return tweet, nil
}

// ListTweets returns a user's tweets newest first.
func (service *Service) ListTweets(context context.Context, userID string, params pagination.Params) (*pagination.Page[*view.TweetView], error) {
	return service.composer.Tweets(context, userID, params)
}

// UpdateTweet replaces the content of the actor's tweet.
func (service *Service) UpdateTweet(context context.Context, actorID, tweetID string, input Input) (*entity.Tweet, error) {
	input.Content = strings.TrimSpace(input.Content)
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	tweet, err := ownership.Load(context, service.tweets.FindTweetByID, "Tweet", tweetID, actorID)
	if err != nil {
		return nil, err
	}

	tweet.Content = input.Content
	if err := service.tweets.UpdateTweet(context, tweet); err != nil {
		return nil, err
	}

	return tweet, nil
}

// DeleteTweet removes the actor's tweet.
func (service *Service) DeleteTweet(context context.Context, actorID, tweetID string) error {
	if _, err := ownership.Load(context, service.tweets.FindTweetByID, "Tweet", tweetID, actorID); err != nil {
		return err
	}

	if err := service.tweets.DeleteTweet(context, tweetID); err != nil {
		return err
	}

	service.logger.Info("tweet_deleted", slog.String("tweet_id", tweetID))

	return nil
}
