// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package view

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/platform/apperr"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
	"github.com/taibuivan/yomitube/internal/store"
	"github.com/taibuivan/yomitube/pkg/pagination"
	"github.com/taibuivan/yomitube/pkg/slice"
)

/*
VideoDetail composes the video page and counts one view.

Description: An unpublished video is only visible to its owner, and a refused
fetch does not count. Once visibility is settled the counter is incremented
atomically and the video re-read, so the returned views include this request.

Parameters:
  - context: context.Context
  - videoID: string
  - viewerID: string (empty for anonymous viewers)

Returns:
  - *VideoDetail: Video with owner, likes and comments
  - error: NOT_FOUND or storage failures
*/
func (composer *Composer) VideoDetail(context context.Context, videoID, viewerID string) (*VideoDetail, error) {
	video, err := composer.store.FindVideoByID(context, videoID)
	if err != nil {
		return nil, dberr.NotFoundAs(err, "Video")
	}

	if !video.IsPublished && video.OwnerID != viewerID {
		return nil, apperr.NotFound("Video")
	}

	if err := composer.store.IncrementVideoViews(context, videoID); err != nil {
		return nil, dberr.NotFoundAs(err, "Video")
	}

	// Re-read for the incremented counter.
	video, err = composer.store.FindVideoByID(context, videoID)
	if err != nil {
		return nil, dberr.NotFoundAs(err, "Video")
	}

	detail := &VideoDetail{Video: video}
	var comments []*entity.Comment

	group, groupContext := errgroup.WithContext(context)

	group.Go(func() error {
		count, err := composer.store.CountEdgesByTarget(groupContext, entity.KindVideoLike, videoID)
		detail.LikeCount = count
		return err
	})

	if viewerID != "" {
		group.Go(func() error {
			liked, err := composer.store.EdgeExists(groupContext, entity.KindVideoLike, viewerID, videoID)
			detail.IsLiked = liked
			return err
		})
	}

	group.Go(func() error {
		var err error
		comments, _, err = composer.store.ListCommentsByVideo(groupContext, videoID, 0, 0)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	ownerIDs := append(slice.Map(comments, func(comment *entity.Comment) string { return comment.OwnerID }), video.OwnerID)
	owners, err := composer.owners(context, ownerIDs...)
	if err != nil {
		return nil, err
	}

	detail.Owner = owners[video.OwnerID]
	detail.Comments = withCommentOwners(comments, owners)
	detail.CommentCount = len(detail.Comments)

	composer.logger.Debug("video_viewed",
		slog.String("video_id", videoID),
		slog.Int64("views", video.Views),
	)

	return detail, nil
}

/*
Videos lists video summaries matching filter.

Description: Unpublished videos are included only when the viewer is the
channel named by filter.OwnerID.

Parameters:
  - context: context.Context
  - viewerID: string
  - filter: store.VideoFilter
  - params: pagination.Params

Returns:
  - *pagination.Page[*VideoSummary]
  - error: Storage failures
*/
func (composer *Composer) Videos(context context.Context, viewerID string, filter store.VideoFilter, params pagination.Params) (*pagination.Page[*VideoSummary], error) {
	filter.PublishedOnly = viewerID == "" || filter.OwnerID != viewerID

	videos, total, err := composer.store.ListVideos(context, filter, params.Offset(), params.Limit)
	if err != nil {
		return nil, err
	}

	owners, err := composer.owners(context, slice.Map(videos, func(video *entity.Video) string { return video.OwnerID })...)
	if err != nil {
		return nil, err
	}

	items := slice.Map(videos, func(video *entity.Video) *VideoSummary { return summarize(video, owners) })
	return pagination.NewPage(items, params, total), nil
}

/*
LikedVideos lists the videos an actor liked, most recent like first.

Description: The total counts the actor's like edges. A like whose video has
since been deleted is skipped on the page rather than failing the view.
*/
func (composer *Composer) LikedVideos(context context.Context, actorID string, params pagination.Params) (*pagination.Page[*VideoSummary], error) {
	edges, total, err := composer.store.ListEdgesByActor(context, entity.KindVideoLike, actorID, params.Offset(), params.Limit)
	if err != nil {
		return nil, err
	}

	videoIDs := slice.Map(edges, func(edge *entity.Edge) string { return edge.TargetID })
	items, _, err := composer.summarizeInOrder(context, videoIDs)
	if err != nil {
		return nil, err
	}

	return pagination.NewPage(items, params, total), nil
}

func withCommentOwners(comments []*entity.Comment, owners map[string]*entity.Owner) []*CommentView {
	views := make([]*CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, &CommentView{Comment: comment, Owner: owners[comment.OwnerID]})
	}
	return views
}
