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
	"github.com/taibuivan/yomitube/internal/store"
)

var videoColumns = columns("", schema.ContentVideo.Columns())

// likeEscaper neutralizes LIKE wildcards in user input.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func scanVideo(row scanner) (*entity.Video, error) {
	video := &entity.Video{}
	err := row.Scan(
		&video.ID, &video.OwnerID, &video.VideoURL, &video.ThumbnailURL, &video.Title, &video.Description,
		&video.Duration, &video.Views, &video.IsPublished, &video.CreatedAt, &video.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return video, nil
}

// # Video Retrieval

func (repository *Repository) FindVideoByID(context context.Context, id string) (*entity.Video, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		videoColumns, schema.ContentVideo.Table, schema.ContentVideo.ID)

	video, err := scanVideo(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_video_by_id")
	}
	return video, nil
}

func (repository *Repository) FindVideosByIDs(context context.Context, ids []string) (map[string]*entity.Video, error) {
	found := make(map[string]*entity.Video, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ANY($1::uuid[])`,
		videoColumns, schema.ContentVideo.Table, schema.ContentVideo.ID)

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "list_videos_by_ids")
	}
	defer rows.Close()

	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_video")
		}
		found[video.ID] = video
	}

	return found, dberr.Wrap(rows.Err(), "iterate_videos")
}

/*
ListVideos returns a filtered, sorted window of videos and the total match count.

Description: Title and description are matched with ILIKE. The total is read
with a separate COUNT so that a page past the end still reports it.

Parameters:
  - context: context.Context
  - filter: store.VideoFilter
  - skip, limit: int

Returns:
  - []*entity.Video: Requested window
  - int: Total record count
  - error: Database retrieval failures
*/
func (repository *Repository) ListVideos(context context.Context, filter store.VideoFilter, skip, limit int) ([]*entity.Video, int, error) {
	var whereBuilder strings.Builder
	whereBuilder.WriteString(" WHERE TRUE")
	args := []any{}

	if filter.OwnerID != "" {
		args = append(args, filter.OwnerID)
		fmt.Fprintf(&whereBuilder, " AND %s = $%d", schema.ContentVideo.OwnerID, len(args))
	}

	if filter.PublishedOnly {
		fmt.Fprintf(&whereBuilder, " AND %s = TRUE", schema.ContentVideo.IsPublished)
	}

	if filter.Query != "" {
		args = append(args, "%"+likeEscaper.Replace(filter.Query)+"%")
		fmt.Fprintf(&whereBuilder, " AND (%s ILIKE $%d OR %s ILIKE $%d)",
			schema.ContentVideo.Title, len(args), schema.ContentVideo.Description, len(args))
	}

	// Total
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s%s`, schema.ContentVideo.Table, whereBuilder.String())
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_videos")
	}

	// Window
	direction := "DESC"
	if filter.Ascending {
		direction = "ASC"
	}

	var queryBuilder strings.Builder
	fmt.Fprintf(&queryBuilder, `SELECT %s FROM %s%s ORDER BY %s %s, %s %s`,
		videoColumns, schema.ContentVideo.Table, whereBuilder.String(),
		sortColumn(filter.SortBy), direction, schema.ContentVideo.ID, direction)
	args = appendWindow(&queryBuilder, args, skip, limit)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_videos")
	}
	defer rows.Close()

	videos := make([]*entity.Video, 0)
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_video")
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_videos")
	}

	return videos, total, nil
}

func sortColumn(sortBy store.VideoSort) string {
	switch sortBy {
	case store.SortViews:
		return schema.ContentVideo.Views
	case store.SortDuration:
		return schema.ContentVideo.Duration
	case store.SortTitle:
		return "LOWER(" + schema.ContentVideo.Title + ")"
	default:
		return schema.ContentVideo.CreatedAt
	}
}

// # Video Mutation

func (repository *Repository) CreateVideo(context context.Context, video *entity.Video) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s, %s
	`,
		schema.ContentVideo.Table,
		schema.ContentVideo.ID, schema.ContentVideo.OwnerID, schema.ContentVideo.VideoURL,
		schema.ContentVideo.ThumbnailURL, schema.ContentVideo.Title, schema.ContentVideo.Description,
		schema.ContentVideo.Duration, schema.ContentVideo.Views, schema.ContentVideo.IsPublished,
		schema.ContentVideo.CreatedAt, schema.ContentVideo.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		video.ID, video.OwnerID, video.VideoURL, video.ThumbnailURL, video.Title,
		video.Description, video.Duration, video.Views, video.IsPublished,
	).Scan(&video.CreatedAt, &video.UpdatedAt)

	return dberr.Wrap(err, "create_video")
}

func (repository *Repository) UpdateVideo(context context.Context, video *entity.Video) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.ContentVideo.Table,
		schema.ContentVideo.Title, schema.ContentVideo.Description, schema.ContentVideo.ThumbnailURL,
		schema.ContentVideo.IsPublished, schema.ContentVideo.UpdatedAt,
		schema.ContentVideo.ID,
		schema.ContentVideo.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		video.ID, video.Title, video.Description, video.ThumbnailURL, video.IsPublished,
	).Scan(&video.UpdatedAt)

	return dberr.Wrap(err, "update_video")
}

func (repository *Repository) DeleteVideo(context context.Context, id string) error {
	return repository.deleteByID(context, schema.ContentVideo.Table, schema.ContentVideo.ID, id, "delete_video")
}

// IncrementVideoViews performs a single-statement atomic increment.
func (repository *Repository) IncrementVideoViews(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = %s + 1 WHERE %s = $1`,
		schema.ContentVideo.Table, schema.ContentVideo.Views, schema.ContentVideo.Views, schema.ContentVideo.ID)

	result, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "increment_video_views")
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
