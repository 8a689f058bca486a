// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
)

func edgeFilter(kind entity.EdgeKind, actorID, targetID string) bson.M {
	return bson.M{"kind": kind, "actorId": actorID, "targetId": targetID}
}

// InsertEdge relies on the unique (kind, actorId, targetId) index; a
// duplicate key error surfaces as dberr.ErrDuplicate.
func (r *Repository) InsertEdge(ctx context.Context, edge *entity.Edge) error {
	edge.CreatedAt = now()
	_, err := r.edges.InsertOne(ctx, edge)
	return dberr.Wrap(err, "insert_edge")
}

func (r *Repository) DeleteEdge(ctx context.Context, kind entity.EdgeKind, actorID, targetID string) (bool, error) {
	result, err := r.edges.DeleteOne(ctx, edgeFilter(kind, actorID, targetID))
	if err != nil {
		return false, dberr.Wrap(err, "delete_edge")
	}
	return result.DeletedCount == 1, nil
}

func (r *Repository) EdgeExists(ctx context.Context, kind entity.EdgeKind, actorID, targetID string) (bool, error) {
	count, err := r.edges.CountDocuments(ctx, edgeFilter(kind, actorID, targetID))
	if err != nil {
		return false, dberr.Wrap(err, "check_edge_exists")
	}
	return count > 0, nil
}

func (r *Repository) CountEdgesByTarget(ctx context.Context, kind entity.EdgeKind, targetID string) (int, error) {
	count, err := r.edges.CountDocuments(ctx, bson.M{"kind": kind, "targetId": targetID})
	if err != nil {
		return 0, dberr.Wrap(err, "count_edges_by_target")
	}
	return int(count), nil
}

func (r *Repository) CountEdgesByActor(ctx context.Context, kind entity.EdgeKind, actorID string) (int, error) {
	count, err := r.edges.CountDocuments(ctx, bson.M{"kind": kind, "actorId": actorID})
	if err != nil {
		return 0, dberr.Wrap(err, "count_edges_by_actor")
	}
	return int(count), nil
}

func (r *Repository) ListEdgesByTarget(ctx context.Context, kind entity.EdgeKind, targetID string) ([]*entity.Edge, error) {
	edges, err := findAll[entity.Edge](ctx, r.edges, bson.M{"kind": kind, "targetId": targetID}, windowed(newestFirst, 0, 0))
	if err != nil {
		return nil, dberr.Wrap(err, "list_edges_by_target")
	}
	return edges, nil
}

func (r *Repository) ListEdgesByActor(ctx context.Context, kind entity.EdgeKind, actorID string, skip, limit int) ([]*entity.Edge, int, error) {
	edges, total, err := countAndFind[entity.Edge](ctx, r.edges, bson.M{"kind": kind, "actorId": actorID}, windowed(newestFirst, skip, limit))
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_edges_by_actor")
	}
	return edges, total, nil
}
