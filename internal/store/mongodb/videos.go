// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mongodb

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
	"github.com/taibuivan/yomitube/internal/store"
)

func (r *Repository) CreateVideo(ctx context.Context, video *entity.Video) error {
	video.CreatedAt = now()
	video.UpdatedAt = video.CreatedAt

	_, err := r.videos.InsertOne(ctx, video)
	return dberr.Wrap(err, "create_video")
}

func (r *Repository) FindVideoByID(ctx context.Context, id string) (*entity.Video, error) {
	video, err := findOne[entity.Video](ctx, r.videos, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_video_by_id")
	}
	return video, nil
}

func (r *Repository) FindVideosByIDs(ctx context.Context, ids []string) (map[string]*entity.Video, error) {
	found := make(map[string]*entity.Video, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	videos, err := findAll[entity.Video](ctx, r.videos, bson.M{"_id": bson.M{"$in": ids}}, options.Find())
	if err != nil {
		return nil, dberr.Wrap(err, "get_videos_by_ids")
	}
	for _, video := range videos {
		found[video.ID] = video
	}
	return found, nil
}

/*
ListVideos runs the filtered count and the sorted window.

Description: Query text is quoted before use in $regex so user input is
always matched literally. Title sorting uses the case-insensitive collation.
*/
func (r *Repository) ListVideos(ctx context.Context, filter store.VideoFilter, skip, limit int) ([]*entity.Video, int, error) {
	query := bson.M{}
	if filter.OwnerID != "" {
		query["ownerId"] = filter.OwnerID
	}
	if filter.PublishedOnly {
		query["isPublished"] = true
	}
	if filter.Query != "" {
		pattern := containsFolded(filter.Query)
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}

	direction := -1
	if filter.Ascending {
		direction = 1
	}
	sort := bson.D{{Key: sortField(filter.SortBy), Value: direction}, {Key: "_id", Value: direction}}

	findOptions := windowed(sort, skip, limit)
	if filter.SortBy == store.SortTitle {
		findOptions.SetCollation(caseInsensitive)
	}

	videos, total, err := countAndFind[entity.Video](ctx, r.videos, query, findOptions)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_videos")
	}
	return videos, total, nil
}

// containsFolded matches text literally anywhere in the field, ignoring case.
func containsFolded(text string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(text), "$options": "i"}
}

func sortField(sortBy store.VideoSort) string {
	switch sortBy {
	case store.SortViews:
		return "views"
	case store.SortDuration:
		return "duration"
	case store.SortTitle:
		return "title"
	default:
		return "createdAt"
	}
}

func (r *Repository) UpdateVideo(ctx context.Context, video *entity.Video) error {
	update := bson.M{"$set": bson.M{
		"title":        video.Title,
		"description":  video.Description,
		"thumbnailUrl": video.ThumbnailURL,
		"isPublished":  video.IsPublished,
		"updatedAt":    now(),
	}}

	err := r.videos.FindOneAndUpdate(ctx, bson.M{"_id": video.ID}, update, afterUpdate()).Decode(video)
	return dberr.Wrap(err, "update_video")
}

func (r *Repository) DeleteVideo(ctx context.Context, id string) error {
	return dberr.Wrap(deleteOne(ctx, r.videos, id), "delete_video")
}

// IncrementVideoViews applies $inc so concurrent views are never lost.
func (r *Repository) IncrementVideoViews(ctx context.Context, id string) error {
	result, err := r.videos.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return dberr.Wrap(err, "increment_video_views")
	}
	if result.MatchedCount == 0 {
		return dberr.Wrap(mongo.ErrNoDocuments, "increment_video_views")
	}
	return nil
}
