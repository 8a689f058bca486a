// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
)

// # Comments

func (r *Repository) CreateComment(ctx context.Context, comment *entity.Comment) error {
	comment.CreatedAt = now()
	comment.UpdatedAt = comment.CreatedAt

	_, err := r.comments.InsertOne(ctx, comment)
	return dberr.Wrap(err, "create_comment")
}

func (r *Repository) FindCommentByID(ctx context.Context, id string) (*entity.Comment, error) {
	comment, err := findOne[entity.Comment](ctx, r.comments, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_comment_by_id")
	}
	return comment, nil
}

func (r *Repository) ListCommentsByVideo(ctx context.Context, videoID string, skip, limit int) ([]*entity.Comment, int, error) {
	comments, total, err := countAndFind[entity.Comment](ctx, r.comments, bson.M{"videoId": videoID}, windowed(newestFirst, skip, limit))
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_comments")
	}
	return comments, total, nil
}

func (r *Repository) UpdateComment(ctx context.Context, comment *entity.Comment) error {
	update := bson.M{"$set": bson.M{"content": comment.Content, "updatedAt": now()}}
	err := r.comments.FindOneAndUpdate(ctx, bson.M{"_id": comment.ID}, update, afterUpdate()).Decode(comment)
	return dberr.Wrap(err, "update_comment")
}

func (r *Repository) DeleteComment(ctx context.Context, id string) error {
	return dberr.Wrap(deleteOne(ctx, r.comments, id), "delete_comment")
}

// # Tweets

func (r *Repository) CreateTweet(ctx context.Context, tweet *entity.Tweet) error {
	tweet.CreatedAt = now()
	tweet.UpdatedAt = tweet.CreatedAt

	_, err := r.tweets.InsertOne(ctx, tweet)
	return dberr.Wrap(err, "create_tweet")
}

func (r *Repository) FindTweetByID(ctx context.Context, id string) (*entity.Tweet, error) {
	tweet, err := findOne[entity.Tweet](ctx, r.tweets, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_tweet_by_id")
	}
	return tweet, nil
}

func (r *Repository) ListTweetsByOwner(ctx context.Context, ownerID string, skip, limit int) ([]*entity.Tweet, int, error) {
	tweets, total, err := countAndFind[entity.Tweet](ctx, r.tweets, bson.M{"ownerId": ownerID}, windowed(newestFirst, skip, limit))
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_tweets")
	}
	return tweets, total, nil
}

func (r *Repository) UpdateTweet(ctx context.Context, tweet *entity.Tweet) error {
	update := bson.M{"$set": bson.M{"content": tweet.Content, "updatedAt": now()}}
	err := r.tweets.FindOneAndUpdate(ctx, bson.M{"_id": tweet.ID}, update, afterUpdate()).Decode(tweet)
	return dberr.Wrap(err, "update_tweet")
}

func (r *Repository) DeleteTweet(ctx context.Context, id string) error {
	return dberr.Wrap(deleteOne(ctx, r.tweets, id), "delete_tweet")
}
