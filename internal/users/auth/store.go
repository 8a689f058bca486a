// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "context"

// # Session Data Access

// SessionRepository defines the data access contract for refresh-token sessions.
type SessionRepository interface {

	/*
		Create persists a new session for an authenticated login.

		Parameters:
		  - context: context.Context
		  - session: *Session

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, session *Session) error

	/*
		FindByTokenHash returns the live session matching the given token hash.

		Returns:
		  - *Session: Hydrated entity
		  - error: dberr.ErrNotFound if absent, expired or revoked
	*/
	FindByTokenHash(context context.Context, tokenHash string) (*Session, error)

	// Revoke removes a single session. Revoking a missing session is not an error.
	Revoke(context context.Context, session *Session) error

	// RevokeOthers removes every session of the user except the one whose
	// token hash is keepTokenHash.
	RevokeOthers(context context.Context, userID, keepTokenHash string) error
}
