// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ContentVideoTable represents the 'content.video' table
type ContentVideoTable struct {
	Table        string
	ID           string
	OwnerID      string
	VideoURL     string
	ThumbnailURL string
	Title        string
	Description  string
	Duration     string
	Views        string
	IsPublished  string
	CreatedAt    string
	UpdatedAt    string
}

// ContentVideo is the schema definition for content.video
var ContentVideo = ContentVideoTable{
	Table:        "content.video",
	ID:           "id",
	OwnerID:      "ownerid",
	VideoURL:     "videourl",
	ThumbnailURL: "thumbnailurl",
	Title:        "title",
	Description:  "description",
	Duration:     "duration",
	Views:        "views",
	IsPublished:  "ispublished",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns all standard column names
func (t ContentVideoTable) Columns() []string {
	return []string{
		t.ID, t.OwnerID, t.VideoURL, t.ThumbnailURL, t.Title, t.Description,
		t.Duration, t.Views, t.IsPublished, t.CreatedAt, t.UpdatedAt,
	}
}
