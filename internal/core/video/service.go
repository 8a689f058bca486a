// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video

import (
	"context"
	"log/slog"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/core/ownership"
	"github.com/taibuivan/yomitube/internal/core/view"
	"github.com/taibuivan/yomitube/internal/platform/validate"
	"github.com/taibuivan/yomitube/internal/store"
	"github.com/taibuivan/yomitube/pkg/pagination"
	"github.com/taibuivan/yomitube/pkg/pointer"
	"github.com/taibuivan/yomitube/pkg/uuid"
)

// # Service Layer

// Service implements video publishing and owner-gated edits. Reads are
// delegated to the [view.Composer].
type Service struct {
	videos   store.VideoStore
	composer *view.Composer
	logger   *slog.Logger
}

// NewService constructs a new video [Service].
func NewService(videos store.VideoStore, composer *view.Composer, logger *slog.Logger) *Service {
	return &Service{
		videos:   videos,
		composer: composer,
		logger:   logger,
	}
}

// # Reads

// GetVideo returns the video page and counts the view.
func (service *Service) GetVideo(context context.Context, videoID, viewerID string) (*view.VideoDetail, error) {
	return service.composer.VideoDetail(context, videoID, viewerID)
}

// ListVideos returns a filtered page of video summaries.
func (service *Service) ListVideos(context context.Context, viewerID string, filter store.VideoFilter, params pagination.Params) (*pagination.Page[*view.VideoSummary], error) {
	return service.composer.Videos(context, viewerID, filter, params)
}

// # Mutations

/*
PublishVideo creates a published video owned by the actor.

Parameters:
  - context: context.Context
  - actorID: string
  - input: PublishInput

Returns:
  - *entity.Video: The created video
  - error: Validation or persistence failures
*/
func (service *Service) PublishVideo(context context.Context, actorID string, input PublishInput) (*entity.Video, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	video := &entity.Video{
		ID:           uuid.New(),
		OwnerID:      actorID,
		VideoURL:     input.VideoURL,
		ThumbnailURL: input.ThumbnailURL,
		Title:        input.Title,
		Description:  input.Description,
		Duration:     input.Duration,
		IsPublished:  true,
	}

	if err := service.videos.CreateVideo(context, video); err != nil {
		return nil, err
	}

	service.logger.Info("video_published",
		slog.String("video_id", video.ID),
		slog.String("owner_id", actorID),
	)

	return video, nil
}

/*
UpdateVideo edits title, description or thumbnail.

Returns:
  - *entity.Video: The updated video
  - error: VALIDATION_ERROR, NOT_FOUND, FORBIDDEN or persistence failures
*/
func (service *Service) UpdateVideo(context context.Context, actorID, videoID string, input UpdateInput) (*entity.Video, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	video, err := ownership.Load(context, service.videos.FindVideoByID, "Video", videoID, actorID)
	if err != nil {
		return nil, err
	}

	video.Title = pointer.Fallback(input.Title, video.Title)
	video.Description = pointer.Fallback(input.Description, video.Description)
	video.ThumbnailURL = pointer.Fallback(input.ThumbnailURL, video.ThumbnailURL)

	if err := service.videos.UpdateVideo(context, video); err != nil {
		return nil, err
	}

	service.logger.Info("video_updated", slog.String("video_id", videoID))

	return video, nil
}

// TogglePublish flips the published flag of the actor's video.
func (service *Service) TogglePublish(context context.Context, actorID, videoID string) (*entity.Video, error) {
	video, err := ownership.Load(context, service.videos.FindVideoByID, "Video", videoID, actorID)
	if err != nil {
		return nil, err
	}

	video.IsPublished = !video.IsPublished
	if err := service.videos.UpdateVideo(context, video); err != nil {
		return nil, err
	}

	service.logger.Info("video_publish_toggled",
		slog.String("video_id", videoID),
		slog.Bool("is_published", video.IsPublished),
	)

	return video, nil
}

// DeleteVideo removes the actor's video. Comments and likes are left in place.
func (service *Service) DeleteVideo(context context.Context, actorID, videoID string) error {
	if _, err := ownership.Load(context, service.videos.FindVideoByID, "Video", videoID, actorID); err != nil {
		return err
	}

	if err := service.videos.DeleteVideo(context, videoID); err != nil {
		return err
	}

	service.logger.Info("video_deleted", slog.String("video_id", videoID), slog.String("owner_id", actorID))

	return nil
}
