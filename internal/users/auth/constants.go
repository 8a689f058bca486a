// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "time"

const (
	// AccessTokenTTL is the lifetime of a signed access token.
	AccessTokenTTL = 15 * time.Minute

	// RefreshTokenTTL is the lifetime of a refresh session; rotation starts a fresh one.
	RefreshTokenTTL = 30 * 24 * time.Hour

	// RefreshTokenLength is the entropy of a refresh token in bytes.
	RefreshTokenLength = 32
)
