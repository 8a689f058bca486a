// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/platform/database/schema"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
)

// # Comments

var commentColumns = columns("", schema.ContentComment.Columns())

func scanComment(row scanner) (*entity.Comment, error) {
	comment := &entity.Comment{}
	err := row.Scan(&comment.ID, &comment.OwnerID, &comment.VideoID, &comment.Content, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (repository *Repository) CreateComment(context context.Context, comment *entity.Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)
		RETURNING %s, %s
	`,
		schema.ContentComment.Table,
		schema.ContentComment.ID, schema.ContentComment.OwnerID, schema.ContentComment.VideoID, schema.ContentComment.Content,
		schema.ContentComment.CreatedAt, schema.ContentComment.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, comment.ID, comment.OwnerID, comment.VideoID, comment.Content).
		Scan(&comment.CreatedAt, &comment.UpdatedAt)

	return dberr.Wrap(err, "create_comment")
}

func (repository *Repository) FindCommentByID(context context.Context, id string) (*entity.Comment, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		commentColumns, schema.ContentComment.Table, schema.ContentComment.ID)

	comment, err := scanComment(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_comment_by_id")
	}
	return comment, nil
}

func (repository *Repository) ListCommentsByVideo(context context.Context, videoID string, skip, limit int) ([]*entity.Comment, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, schema.ContentComment.Table, schema.ContentComment.VideoID)
	if err := repository.db.QueryRow(context, countQuery, videoID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_comments")
	}

	var queryBuilder strings.Builder
	fmt.Fprintf(&queryBuilder, `SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC, %s DESC`,
		commentColumns, schema.ContentComment.Table, schema.ContentComment.VideoID,
		schema.ContentComment.CreatedAt, schema.ContentComment.ID)
	args := appendWindow(&queryBuilder, []any{videoID}, skip, limit)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_comments")
	}
	defer rows.Close()

	comments := make([]*entity.Comment, 0)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_comments")
	}
	return comments, total, nil
}

func (repository *Repository) UpdateComment(context context.Context, comment *entity.Comment) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1 RETURNING %s`,
		schema.ContentComment.Table, schema.ContentComment.Content, schema.ContentComment.UpdatedAt,
		schema.ContentComment.ID, schema.ContentComment.UpdatedAt)

	err := repository.db.QueryRow(context, query, comment.ID, comment.Content).Scan(&comment.UpdatedAt)
	return dberr.Wrap(err, "update_comment")
}

func (repository *Repository) DeleteComment(context context.Context, id string) error {
	return repository.deleteByID(context, schema.ContentComment.Table, schema.ContentComment.ID, id, "delete_comment")
}

// # Tweets

var tweetColumns = columns("", schema.ContentTweet.Columns())

func scanTweet(row scanner) (*entity.Tweet, error) {
	tweet := &entity.Tweet{}
	err := row.Scan(&tweet.ID, &tweet.OwnerID, &tweet.Content, &tweet.CreatedAt, &tweet.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return tweet, nil
}

func (repository *Repository) CreateTweet(context context.Context, tweet *entity.Tweet) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)
		RETURNING %s, %s
	`,
		schema.ContentTweet.Table,
		schema.ContentTweet.ID, schema.ContentTweet.OwnerID, schema.ContentTweet.Content,
		schema.ContentTweet.CreatedAt, schema.ContentTweet.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, tweet.ID, tweet.OwnerID, tweet.Content).
		Scan(&tweet.CreatedAt, &tweet.UpdatedAt)

	return dberr.Wrap(err, "create_tweet")
}

func (repository *Repository) FindTweetByID(context context.Context, id string) (*entity.Tweet, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		tweetColumns, schema.ContentTweet.Table, schema.ContentTweet.ID)

	tweet, err := scanTweet(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_tweet_by_id")
	}
	return tweet, nil
}

func (repository *Repository) ListTweetsByOwner(context context.Context, ownerID string, skip, limit int) ([]*entity.Tweet, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, schema.ContentTweet.Table, schema.ContentTweet.OwnerID)
	if err := repository.db.QueryRow(context, countQuery, ownerID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_tweets")
	}

	var queryBuilder strings.Builder
	fmt.Fprintf(&queryBuilder, `SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC, %s DESC`,
		tweetColumns, schema.ContentTweet.Table, schema.ContentTweet.OwnerID,
		schema.ContentTweet.CreatedAt, schema.ContentTweet.ID)
	args := appendWindow(&queryBuilder, []any{ownerID}, skip, limit)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_tweets")
	}
	defer rows.Close()

	tweets := make([]*entity.Tweet, 0)
	for rows.Next() {
		tweet, err := scanTweet(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_tweet")
		}
		tweets = append(tweets, tweet)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_tweets")
	}
	return tweets, total, nil
}

func (repository *Repository) UpdateTweet(context context.Context, tweet *entity.Tweet) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1 RETURNING %s`,
		schema.ContentTweet.Table, schema.ContentTweet.Content, schema.ContentTweet.UpdatedAt,
		schema.ContentTweet.ID, schema.ContentTweet.UpdatedAt)

	err := repository.db.QueryRow(context, query, tweet.ID, tweet.Content).Scan(&tweet.UpdatedAt)
	return dberr.Wrap(err, "update_tweet")
}

func (repository *Repository) DeleteTweet(context context.Context, id string) error {
	return repository.deleteByID(context, schema.ContentTweet.Table, schema.ContentTweet.ID, id, "delete_tweet")
}

// deleteByID removes one row and maps "nothing deleted" to ErrNotFound.
func (repository *Repository) deleteByID(context context.Context, table, idColumn, id, action string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table, idColumn)

	result, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, action)
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
