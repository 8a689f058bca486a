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

var edgeColumns = columns("", schema.SocialEdge.Columns())

func scanEdge(row scanner) (*entity.Edge, error) {
	edge := &entity.Edge{}
	if err := row.Scan(&edge.ID, &edge.Kind, &edge.ActorID, &edge.TargetID, &edge.CreatedAt); err != nil {
		return nil, err
	}
	return edge, nil
}

/*
InsertEdge creates a like or subscription.

Description: The (kind, actorid, targetid) unique constraint rejects a second
concurrent insert; the violation is reported as dberr.ErrDuplicate.

Parameters:
  - context: context.Context
  - edge: *entity.Edge

Returns:
  - error: dberr.ErrDuplicate or persistence failures
*/
func (repository *Repository) InsertEdge(context context.Context, edge *entity.Edge) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)
		RETURNING %s
	`,
		schema.SocialEdge.Table,
		schema.SocialEdge.ID, schema.SocialEdge.Kind, schema.SocialEdge.ActorID, schema.SocialEdge.TargetID,
		schema.SocialEdge.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, edge.ID, string(edge.Kind), edge.ActorID, edge.TargetID).
		Scan(&edge.CreatedAt)

	return dberr.Wrap(err, "insert_edge")
}

func (repository *Repository) DeleteEdge(context context.Context, kind entity.EdgeKind, actorID, targetID string) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2 AND %s = $3`,
		schema.SocialEdge.Table, schema.SocialEdge.Kind, schema.SocialEdge.ActorID, schema.SocialEdge.TargetID)

	result, err := repository.db.Exec(context, query, string(kind), actorID, targetID)
	if err != nil {
		return false, dberr.Wrap(err, "delete_edge")
	}
	return result.RowsAffected() == 1, nil
}

func (repository *Repository) EdgeExists(context context.Context, kind entity.EdgeKind, actorID, targetID string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1 AND %s = $2 AND %s = $3)`,
		schema.SocialEdge.Table, schema.SocialEdge.Kind, schema.SocialEdge.ActorID, schema.SocialEdge.TargetID)

	var exists bool
	if err := repository.db.QueryRow(context, query, string(kind), actorID, targetID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "check_edge_exists")
	}
	return exists, nil
}

func (repository *Repository) CountEdgesByTarget(context context.Context, kind entity.EdgeKind, targetID string) (int, error) {
	return repository.countEdges(context, schema.SocialEdge.TargetID, kind, targetID, "count_edges_by_target")
}

func (repository *Repository) CountEdgesByActor(context context.Context, kind entity.EdgeKind, actorID string) (int, error) {
	return repository.countEdges(context, schema.SocialEdge.ActorID, kind, actorID, "count_edges_by_actor")
}

func (repository *Repository) countEdges(context context.Context, column string, kind entity.EdgeKind, id, action string) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1 AND %s = $2`,
		schema.SocialEdge.Table, schema.SocialEdge.Kind, column)

	var total int
	if err := repository.db.QueryRow(context, query, string(kind), id).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, action)
	}
	return total, nil
}

func (repository *Repository) ListEdgesByTarget(context context.Context, kind entity.EdgeKind, targetID string) ([]*entity.Edge, error) {
	return repository.listEdges(context, schema.SocialEdge.TargetID, kind, targetID, 0, 0, "list_edges_by_target")
}

func (repository *Repository) ListEdgesByActor(context context.Context, kind entity.EdgeKind, actorID string, skip, limit int) ([]*entity.Edge, int, error) {
	total, err := repository.CountEdgesByActor(context, kind, actorID)
	if err != nil {
		return nil, 0, err
	}

	edges, err := repository.listEdges(context, schema.SocialEdge.ActorID, kind, actorID, skip, limit, "list_edges_by_actor")
	if err != nil {
		return nil, 0, err
	}
	return edges, total, nil
}

func (repository *Repository) listEdges(context context.Context, column string, kind entity.EdgeKind, id string, skip, limit int, action string) ([]*entity.Edge, error) {
	var queryBuilder strings.Builder
	fmt.Fprintf(&queryBuilder, `SELECT %s FROM %s WHERE %s = $1 AND %s = $2 ORDER BY %s DESC, %s DESC`,
		edgeColumns, schema.SocialEdge.Table, schema.SocialEdge.Kind, column,
		schema.SocialEdge.CreatedAt, schema.SocialEdge.ID)
	args := appendWindow(&queryBuilder, []any{string(kind), id}, skip, limit)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	edges := make([]*entity.Edge, 0)
	for rows.Next() {
		edge, err := scanEdge(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_edge")
		}
		edges = append(edges, edge)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return edges, nil
}
