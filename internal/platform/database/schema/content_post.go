// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ContentCommentTable represents the 'content.comment' table
type ContentCommentTable struct {
	Table     string
	ID        string
	OwnerID   string
	VideoID   string
	Content   string
	CreatedAt string
	UpdatedAt string
}

// ContentComment is the schema definition for content.comment
var ContentComment = ContentCommentTable{
	Table:     "content.comment",
	ID:        "id",
	OwnerID:   "ownerid",
	VideoID:   "videoid",
	Content:   "content",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t ContentCommentTable) Columns() []string {
	return []string{t.ID, t.OwnerID, t.VideoID, t.Content, t.CreatedAt, t.UpdatedAt}
}

// ContentTweetTable represents the 'content.tweet' table
type ContentTweetTable struct {
	Table     string
	ID        string
	OwnerID   string
	Content   string
	CreatedAt string
	UpdatedAt string
}

// ContentTweet is the schema definition for content.tweet
var ContentTweet = ContentTweetTable{
	Table:     "content.tweet",
	ID:        "id",
	OwnerID:   "ownerid",
	Content:   "content",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t ContentTweetTable) Columns() []string {
	return []string{t.ID, t.OwnerID, t.Content, t.CreatedAt, t.UpdatedAt}
}
