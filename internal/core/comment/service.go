// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/core/ownership"
	"github.com/taibuivan/yomitube/internal/core/view"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
	"github.com/taibuivan/yomitube/internal/platform/validate"
	"github.com/taibuivan/yomitube/internal/store"
	"github.com/taibuivan/yomitube/pkg/pagination"
	"github.com/taibuivan/yomitube/pkg/uuid"
)

// Input is the body of a create or edit request.
type Input struct {
	Content string `json:"content" validate:"required,notblank,max=300"`
}

// Store is the persistence the comment service needs.
type Store interface {
	store.CommentStore
	FindVideoByID(ctx context.Context, id string) (*entity.Video, error)
}

// Service manages comments on videos.
type Service struct {
	store    Store
	composer *view.Composer
	logger   *slog.Logger
}

// NewService constructs a new comment [Service].
func NewService(comments Store, composer *view.Composer, logger *slog.Logger) *Service {
	return &Service{store: comments, composer: composer, logger: logger}
}

// ListComments returns a video's comments newest first.
func (service *Service) ListComments(context context.Context, videoID string, params pagination.Params) (*pagination.Page[*view.CommentView], error) {
	return service.composer.Comments(context, videoID, params)
}

/*
AddComment posts a comment on a video.

Returns:
  - *entity.Comment: The stored comment
  - error: VALIDATION_ERROR, NOT_FOUND if the video is missing, or persistence failures
*/
func (service *Service) AddComment(context context.Context, actorID, videoID string, input Input) (*entity.Comment, error) {
	input.Content = strings.TrimSpace(input.Content)
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	if _, err := service.store.FindVideoByID(context, videoID); err != nil {
		return nil, dberr.NotFoundAs(err, "Video")
	}

	comment := &entity.Comment{
		ID:      uuid.New(),
		OwnerID: actorID,
		VideoID: videoID,
		Content: input.Content,
	}

	if err := service.store.CreateComment(context, comment); err != nil {
		return nil, err
	}

	service.logger.Info("comment_added",
		slog.String("comment_id", comment.ID),
		slog.String("video_id", videoID),
	)

	return comment, nil
}

// UpdateComment replaces the content of the actor's comment.
func (service *Service) UpdateComment(context context.Context, actorID, commentID string, input Input) (*entity.Comment, error) {
	input.Content = strings.TrimSpace(input.Content)
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	comment, err := ownership.Load(context, service.store.FindCommentByID, "Comment", commentID, actorID)
	if err != nil {
		return nil, err
	}

	comment.Content = input.Content
	if err := service.store.UpdateComment(context, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// DeleteComment removes the actor's comment.
func (service *Service) DeleteComment(context context.Context, actorID, commentID string) error {
	if _, err := ownership.Load(context, service.store.FindCommentByID, "Comment", commentID, actorID); err != nil {
		return err
	}

	if err := service.store.DeleteComment(context, commentID); err != nil {
		return err
	}

	service.logger.Info("comment_deleted", slog.String("comment_id", commentID))

	return nil
}
