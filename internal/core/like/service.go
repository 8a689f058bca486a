// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package like

import (
	"context"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/core/relation"
	"github.com/taibuivan/yomitube/internal/core/view"
	"github.com/taibuivan/yomitube/pkg/pagination"
)

// Service toggles likes and lists the videos a user liked.
type Service struct {
	toggler  *relation.Toggler
	composer *view.Composer
}

// NewService constructs a new like [Service].
func NewService(toggler *relation.Toggler, composer *view.Composer) *Service {
	return &Service{toggler: toggler, composer: composer}
}

// ToggleVideoLike likes the video, or removes the actor's existing like.
func (service *Service) ToggleVideoLike(context context.Context, actorID, videoID string) (*relation.Result, error) {
	return service.toggler.Toggle(context, actorID, videoID, entity.KindVideoLike)
}

// ToggleCommentLike likes the comment, or removes the actor's existing like.
func (service *Service) ToggleCommentLike(context context.Context, actorID, commentID string) (*relation.Result, error) {
	return service.toggler.Toggle(context, actorID, commentID, entity.KindCommentLike)
}

// ToggleTweetLike likes the tweet, or removes the actor's existing like.
func (service *Service) ToggleTweetLike(context context.Context, actorID, tweetID string) (*relation.Result, error) {
	return service.toggler.Toggle(context, actorID, tweetID, entity.KindTweetLike)
}

// LikedVideos lists the videos the actor liked, most recent like first.
func (service *Service) LikedVideos(context context.Context, actorID string, params pagination.Params) (*pagination.Page[*view.VideoSummary], error) {
	return service.composer.LikedVideos(context, actorID, params)
}

// Status is the answer of a like lookup.
type Status struct {
	Kind     entity.EdgeKind `json:"kind"`
	TargetID string          `json:"targetId"`
	Liked    bool            `json:"liked"`
}

// LikeStatus reports whether the actor currently likes the target. It does
// not check that the target still exists.
func (service *Service) LikeStatus(context context.Context, actorID, targetID string, kind entity.EdgeKind) (*Status, error) {
	liked, err := service.toggler.Exists(context, actorID, targetID, kind)
	if err != nil {
		return nil, err
	}
	return &Status{Kind: kind, TargetID: targetID, Liked: liked}, nil
}
