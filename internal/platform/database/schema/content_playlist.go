// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ContentPlaylistTable represents the 'content.playlist' table
type ContentPlaylistTable struct {
	Table       string
	ID          string
	OwnerID     string
	Name        string
	Description string
	CreatedAt   string
	UpdatedAt   string
}

// ContentPlaylist is the schema definition for content.playlist
var ContentPlaylist = ContentPlaylistTable{
	Table:       "content.playlist",
	ID:          "id",
	OwnerID:     "ownerid",
	Name:        "name",
	Description: "description",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t ContentPlaylistTable) Columns() []string {
	return []string{t.ID, t.OwnerID, t.Name, t.Description, t.CreatedAt, t.UpdatedAt}
}

// ContentPlaylistVideoTable represents the 'content.playlistvideo' join table
type ContentPlaylistVideoTable struct {
	Table      string
	PlaylistID string
	VideoID    string
	Position   string
}

// ContentPlaylistVideo is the schema definition for content.playlistvideo
var ContentPlaylistVideo = ContentPlaylistVideoTable{
	Table:      "content.playlistvideo",
	PlaylistID: "playlistid",
	VideoID:    "videoid",
	Position:   "position",
}
