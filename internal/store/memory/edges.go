// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package memory

import (
	"context"
	"time"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
)

// InsertEdge stores the relation unless the (kind, actor, target) key is taken.
func (s *Store) InsertEdge(_ context.Context, edge *entity.Edge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := edgeKey{kind: edge.Kind, actorID: edge.ActorID, targetID: edge.TargetID}
	if _, exists := s.edges[key]; exists {
		return dberr.ErrDuplicate
	}

	edge.CreatedAt = s.now()
	s.edges[key] = *edge
	return nil
}

// DeleteEdge removes the relation and reports whether this call removed it.
func (s *Store) DeleteEdge(_ context.Context, kind entity.EdgeKind, actorID, targetID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := edgeKey{kind: kind, actorID: actorID, targetID: targetID}
	if _, exists := s.edges[key]; !exists {
		return false, nil
	}
	delete(s.edges, key)
	return true, nil
}

func (s *Store) EdgeExists(_ context.Context, kind entity.EdgeKind, actorID, targetID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.edges[edgeKey{kind: kind, actorID: actorID, targetID: targetID}]
	return exists, nil
}

func (s *Store) CountEdgesByTarget(_ context.Context, kind entity.EdgeKind, targetID string) (int, error) {
	return len(s.collectEdges(func(key edgeKey) bool {
		return key.kind == kind && key.targetID == targetID
	})), nil
}

func (s *Store) CountEdgesByActor(_ context.Context, kind entity.EdgeKind, actorID string) (int, error) {
	return len(s.collectEdges(func(key edgeKey) bool {
		return key.kind == kind && key.actorID == actorID
	})), nil
}

func (s *Store) ListEdgesByTarget(_ context.Context, kind entity.EdgeKind, targetID string) ([]*entity.Edge, error) {
	edges := s.collectEdges(func(key edgeKey) bool {
		return key.kind == kind && key.targetID == targetID
	})
	newestFirst(edges, edgeOrder)
	return edges, nil
}

func (s *Store) ListEdgesByActor(_ context.Context, kind entity.EdgeKind, actorID string, skip, limit int) ([]*entity.Edge, int, error) {
	edges := s.collectEdges(func(key edgeKey) bool {
		return key.kind == kind && key.actorID == actorID
	})
	newestFirst(edges, edgeOrder)
	return window(edges, skip, limit), len(edges), nil
}

func (s *Store) collectEdges(match func(edgeKey) bool) []*entity.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	edges := make([]*entity.Edge, 0)
	for key, edge := range s.edges {
		if match(key) {
			edges = append(edges, &edge)
		}
	}
	return edges
}

func edgeOrder(edge *entity.Edge) (time.Time, string) {
	return edge.CreatedAt, edge.ID
}
