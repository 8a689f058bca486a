// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ownership gates mutations on owned records.

Every update or delete of a video, comment, tweet or playlist loads the record
and passes it through [AssertOwner] before touching the store. Reads never go
through this package.
*/
package ownership

import (
	"context"
	"strings"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/platform/apperr"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
)

/*
AssertOwner fails unless actorID owns the record.

Parameters:
  - record: entity.Owned
  - actorID: string (the authenticated user)

Returns:
  - error: FORBIDDEN when the actor is empty or not the owner
*/
func AssertOwner(record entity.Owned, actorID string) error {
	if actorID == "" || record.OwnedBy() != actorID {
		return apperr.Forbidden("You do not have permission to modify this " + strings.ToLower(record.ResourceName()))
	}
	return nil
}

/*
Load fetches a record and asserts ownership in one step.

Parameters:
  - ctx: context.Context
  - find: func (usually a store method value)
  - resource: string (name used in the NOT_FOUND message)
  - id, actorID: string

Returns:
  - T: The record, only when the actor owns it
  - error: NOT_FOUND, FORBIDDEN or storage failures
*/
func Load[T entity.Owned](ctx context.Context, find func(context.Context, string) (T, error), resource, id, actorID string) (T, error) {
	record, err := find(ctx, id)
	if err != nil {
		var zero T
		return zero, dberr.NotFoundAs(err, resource)
	}

	if err := AssertOwner(record, actorID); err != nil {
		var zero T
		return zero, err
	}

	return record, nil
}
