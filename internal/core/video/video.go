// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video

// PublishInput carries the media references of an uploaded video.
// The files themselves are stored by the upload service; only URLs arrive here.
type PublishInput struct {
	Title        string  `json:"title"        validate:"required,max=200"`
	Description  string  `json:"description"  validate:"max=5000"`
	VideoURL     string  `json:"videoUrl"     validate:"required,http_url"`
	ThumbnailURL string  `json:"thumbnailUrl" validate:"required,http_url"`
	Duration     float64 `json:"duration"     validate:"gte=0"`
}

// UpdateInput holds the editable fields. Nil fields are left untouched.
type UpdateInput struct {
	Title        *string `json:"title"        validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description"  validate:"omitempty,max=5000"`
	ThumbnailURL *string `json:"thumbnailUrl" validate:"omitempty,http_url"`
}
