// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package relation maintains likes and subscriptions as toggled edges.

Each (kind, actor, target) triple is either ABSENT or PRESENT. [Toggler.Toggle]
is the only transition and flips the state unconditionally; the store's unique
index on the triple guarantees that at most one edge ever exists, even when the
same actor toggles concurrently.

# Algorithm

 1. Conditionally delete the edge. If a row was removed the new state is OFF.
 2. Otherwise insert a new edge. Success means the new state is ON.
 3. A duplicate-key failure means a concurrent toggle inserted first. The race
    is benign: retry from step 1, which now removes that edge.
*/
package relation

import (
	"context"
	"log/slog"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/platform/apperr"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
	"github.com/taibuivan/yomitube/internal/platform/validate"
	"github.com/taibuivan/yomitube/internal/store"
	"github.com/taibuivan/yomitube/pkg/uuid"
)

// maxToggleAttempts bounds delete/insert rounds lost to concurrent toggles.
const maxToggleAttempts = 3

// State is the outcome of a toggle.
type State string

const (
	StateOn  State = "ON"
	StateOff State = "OFF"
)

// Result reports the new state and, when ON, the edge that was created.
type Result struct {
	State State        `json:"state"`
	Edge  *entity.Edge `json:"edge,omitempty"`
}

// Store is the persistence surface the toggler needs: edges plus target lookups.
type Store interface {
	store.EdgeStore
	FindUserByID(ctx context.Context, id string) (*entity.User, error)
	FindVideoByID(ctx context.Context, id string) (*entity.Video, error)
	FindCommentByID(ctx context.Context, id string) (*entity.Comment, error)
	FindTweetByID(ctx context.Context, id string) (*entity.Tweet, error)
}

// Toggler flips relation edges.
type Toggler struct {
	store  Store
	logger *slog.Logger
}

// NewToggler constructs a [Toggler].
func NewToggler(store Store, logger *slog.Logger) *Toggler {
	return &Toggler{store: store, logger: logger}
}

/*
Toggle flips the edge between actorID and targetID.

Parameters:
  - context: context.Context
  - actorID: string (liker or subscriber)
  - targetID: string (video, comment, tweet or channel user)
  - kind: entity.EdgeKind

Returns:
  - *Result: ON with the new edge, or OFF
  - error: VALIDATION_ERROR, NOT_FOUND, UNPROCESSABLE_ENTITY (self subscription),
    CONFLICT after repeated lost races, or storage failures
*/
func (toggler *Toggler) Toggle(context context.Context, actorID, targetID string, kind entity.EdgeKind) (*Result, error) {
	if err := checkTriple(actorID, targetID, kind); err != nil {
		return nil, err
	}

	if kind == entity.KindSubscription && actorID == targetID {
		return nil, apperr.Unprocessable("You cannot subscribe to your own channel")
	}

	if err := toggler.ensureTarget(context, kind, targetID); err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= maxToggleAttempts; attempt++ {

		// ── 1. PRESENT -> ABSENT ─────────────────────────────────────────
		removed, err := toggler.store.DeleteEdge(context, kind, actorID, targetID)
		if err != nil {
			return nil, err
		}
		if removed {
			toggler.logToggle(kind, actorID, targetID, StateOff, attempt)
			return &Result{State: StateOff}, nil
		}

		// ── 2. ABSENT -> PRESENT ─────────────────────────────────────────
		edge := &entity.Edge{
			ID:       uuid.New(),
			Kind:     kind,
			ActorID:  actorID,
			TargetID: targetID,
		}

		err = toggler.store.InsertEdge(context, edge)
		if err == nil {
			toggler.logToggle(kind, actorID, targetID, StateOn, attempt)
			return &Result{State: StateOn, Edge: edge}, nil
		}

		// ── 3. Lost race ─────────────────────────────────────────────────
		if !dberr.IsDuplicate(err) {
			return nil, err
		}
	}

	toggler.logger.Warn("relation_toggle_contended",
		slog.String("kind", string(kind)),
		slog.String("actor_id", actorID),
		slog.String("target_id", targetID),
	)

	return nil, apperr.Conflict("Relation is being modified concurrently, please retry")
}

/*
Exists reports whether the edge is PRESENT. Unlike [Toggler.Toggle] it is
idempotent and does not check that the target exists.
*/
func (toggler *Toggler) Exists(context context.Context, actorID, targetID string, kind entity.EdgeKind) (bool, error) {
	if err := checkTriple(actorID, targetID, kind); err != nil {
		return false, err
	}
	return toggler.store.EdgeExists(context, kind, actorID, targetID)
}

// checkTriple validates identifiers and kind before any persistence call.
func checkTriple(actorID, targetID string, kind entity.EdgeKind) error {
	validator := &validate.Validator{}
	validator.UUID("actorId", actorID).UUID("targetId", targetID)
	validator.Custom("kind", !kind.Valid(), "Unknown relation kind")
	return validator.Err()
}

// ensureTarget verifies the target record exists for the given kind.
func (toggler *Toggler) ensureTarget(context context.Context, kind entity.EdgeKind, targetID string) error {
	var err error
	switch kind {
	case entity.KindVideoLike:
		_, err = toggler.store.FindVideoByID(context, targetID)
	case entity.KindCommentLike:
		_, err = toggler.store.FindCommentByID(context, targetID)
	case entity.KindTweetLike:
		_, err = toggler.store.FindTweetByID(context, targetID)
	case entity.KindSubscription:
		_, err = toggler.store.FindUserByID(context, targetID)
	}
	return dberr.NotFoundAs(err, kind.Target())
}

func (toggler *Toggler) logToggle(kind entity.EdgeKind, actorID, targetID string, state State, attempt int) {
	toggler.logger.Info("relation_toggled",
		slog.String("kind", string(kind)),
		slog.String("actor_id", actorID),
		slog.String("target_id", targetID),
		slog.String("state", string(state)),
		slog.Int("attempt", attempt),
	)
}
