// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package playlist

// CreateInput is the body of POST /playlists.
type CreateInput struct {
	Name        string `json:"name"        validate:"required,notblank,max=100"`
	Description string `json:"description" validate:"max=300"`
}

// UpdateInput holds the fields a PATCH may change. Nil means keep.
type UpdateInput struct {
	Name        *string `json:"name"        validate:"omitempty,notblank,max=100"`
	Description *string `json:"description" validate:"omitempty,max=300"`
}
