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

// playlistSelect loads playlist columns plus the ordered video ID array.
var playlistSelect = fmt.Sprintf(`
	SELECT %s,
		ARRAY(
			SELECT pv.%s::text FROM %s pv
			WHERE pv.%s = p.%s
			ORDER BY pv.%s
		) AS videoids
	FROM %s p
`,
	columns("p", schema.ContentPlaylist.Columns()),
	schema.ContentPlaylistVideo.VideoID, schema.ContentPlaylistVideo.Table,
	schema.ContentPlaylistVideo.PlaylistID, schema.ContentPlaylist.ID,
	schema.ContentPlaylistVideo.Position,
	schema.ContentPlaylist.Table,
)

func scanPlaylist(row scanner) (*entity.Playlist, error) {
	playlist := &entity.Playlist{}
	err := row.Scan(
		&playlist.ID, &playlist.OwnerID, &playlist.Name, &playlist.Description,
		&playlist.CreatedAt, &playlist.UpdatedAt, &playlist.VideoIDs,
	)
	if err != nil {
		return nil, err
	}
	if playlist.VideoIDs == nil {
		playlist.VideoIDs = []string{}
	}
	return playlist, nil
}

// # Playlist Retrieval

func (repository *Repository) FindPlaylistByID(context context.Context, id string) (*entity.Playlist, error) {
	query := playlistSelect + fmt.Sprintf(` WHERE p.%s = $1`, schema.ContentPlaylist.ID)

	playlist, err := scanPlaylist(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_playlist_by_id")
	}
	return playlist, nil
}

func (repository *Repository) ListPlaylistsByOwner(context context.Context, ownerID string, skip, limit int) ([]*entity.Playlist, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, schema.ContentPlaylist.Table, schema.ContentPlaylist.OwnerID)
	if err := repository.db.QueryRow(context, countQuery, ownerID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_playlists")
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(playlistSelect)
	fmt.Fprintf(&queryBuilder, ` WHERE p.%s = $1 ORDER BY p.%s DESC, p.%s DESC`,
		schema.ContentPlaylist.OwnerID, schema.ContentPlaylist.CreatedAt, schema.ContentPlaylist.ID)
	args := appendWindow(&queryBuilder, []any{ownerID}, skip, limit)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_playlists")
	}
	defer rows.Close()

	playlists := make([]*entity.Playlist, 0)
	for rows.Next() {
		playlist, err := scanPlaylist(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_playlist")
		}
		playlists = append(playlists, playlist)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_playlists")
	}
	return playlists, total, nil
}

// # Playlist Mutation

/*
CreatePlaylist inserts the playlist and its initial videos in one transaction.

Parameters:
  - context: context.Context
  - playlist: *entity.Playlist

Returns:
  - error: Persistence failures
*/
func (repository *Repository) CreatePlaylist(context context.Context, playlist *entity.Playlist) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_playlist_tx")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)
		RETURNING %s, %s
	`,
		schema.ContentPlaylist.Table,
		schema.ContentPlaylist.ID, schema.ContentPlaylist.OwnerID, schema.ContentPlaylist.Name, schema.ContentPlaylist.Description,
		schema.ContentPlaylist.CreatedAt, schema.ContentPlaylist.UpdatedAt,
	)
	err = transaction.QueryRow(context, query, playlist.ID, playlist.OwnerID, playlist.Name, playlist.Description).
		Scan(&playlist.CreatedAt, &playlist.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_playlist")
	}

	// Initial videos keep their order; repeats are dropped by the primary key.
	insertVideo := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		schema.ContentPlaylistVideo.Table, schema.ContentPlaylistVideo.PlaylistID, schema.ContentPlaylistVideo.VideoID)

	kept := make([]string, 0, len(playlist.VideoIDs))
	for _, videoID := range playlist.VideoIDs {
		result, err := transaction.Exec(context, insertVideo, playlist.ID, videoID)
		if err != nil {
			return dberr.Wrap(err, "insert_playlist_video")
		}
		if result.RowsAffected() == 1 {
			kept = append(kept, videoID)
		}
	}
	playlist.VideoIDs = kept

	return dberr.Wrap(transaction.Commit(context), "commit_create_playlist")
}

func (repository *Repository) UpdatePlaylist(context context.Context, playlist *entity.Playlist) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = NOW() WHERE %s = $1 RETURNING %s`,
		schema.ContentPlaylist.Table,
		schema.ContentPlaylist.Name, schema.ContentPlaylist.Description, schema.ContentPlaylist.UpdatedAt,
		schema.ContentPlaylist.ID, schema.ContentPlaylist.UpdatedAt)

	err := repository.db.QueryRow(context, query, playlist.ID, playlist.Name, playlist.Description).Scan(&playlist.UpdatedAt)
	return dberr.Wrap(err, "update_playlist")
}

// DeletePlaylist removes the playlist; its entries go with it via ON DELETE CASCADE.
func (repository *Repository) DeletePlaylist(context context.Context, id string) error {
	return repository.deleteByID(context, schema.ContentPlaylist.Table, schema.ContentPlaylist.ID, id, "delete_playlist")
}

/*
AddPlaylistVideo appends a video unless it is already in the playlist.

Description: ON CONFLICT DO NOTHING on the (playlistid, videoid) key gives set
semantics; RowsAffected tells whether this call added it.

Parameters:
  - context: context.Context
  - playlistID, videoID: string

Returns:
  - bool: true if appended
  - error: dberr.ErrNotFound if the playlist is missing
*/
func (repository *Repository) AddPlaylistVideo(context context.Context, playlistID, videoID string) (bool, error) {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return false, dberr.Wrap(err, "begin_add_playlist_video_tx")
	}
	defer transaction.Rollback(context)

	if err := touchPlaylist(context, transaction, playlistID); err != nil {
		return false, err
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		schema.ContentPlaylistVideo.Table, schema.ContentPlaylistVideo.PlaylistID, schema.ContentPlaylistVideo.VideoID)

	result, err := transaction.Exec(context, query, playlistID, videoID)
	if err != nil {
		return false, dberr.Wrap(err, "insert_playlist_video")
	}

	if err := transaction.Commit(context); err != nil {
		return false, dberr.Wrap(err, "commit_add_playlist_video")
	}
	return result.RowsAffected() == 1, nil
}

func (repository *Repository) RemovePlaylistVideo(context context.Context, playlistID, videoID string) (bool, error) {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return false, dberr.Wrap(err, "begin_remove_playlist_video_tx")
	}
	defer transaction.Rollback(context)

	if err := touchPlaylist(context, transaction, playlistID); err != nil {
		return false, err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.ContentPlaylistVideo.Table, schema.ContentPlaylistVideo.PlaylistID, schema.ContentPlaylistVideo.VideoID)

	result, err := transaction.Exec(context, query, playlistID, videoID)
	if err != nil {
		return false, dberr.Wrap(err, "delete_playlist_video")
	}

	if err := transaction.Commit(context); err != nil {
		return false, dberr.Wrap(err, "commit_remove_playlist_video")
	}
	return result.RowsAffected() == 1, nil
}

// touchPlaylist bumps updatedat and locks the playlist row for the transaction.
func touchPlaylist(context context.Context, transaction execer, playlistID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1`,
		schema.ContentPlaylist.Table, schema.ContentPlaylist.UpdatedAt, schema.ContentPlaylist.ID)

	result, err := transaction.Exec(context, query, playlistID)
	if err != nil {
		return dberr.Wrap(err, "touch_playlist")
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
