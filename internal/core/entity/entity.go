// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package entity defines the persisted records of the platform and the read
projections built from them.

Records:

  - User, Video, Comment, Tweet, Playlist: owned content.
  - Edge: a relation between an actor and a target (likes, subscriptions).

Every owned record exposes its owner through [Owned] so that a single guard
can gate mutations for all of them.
*/
package entity

import "time"

// Owned is implemented by every record that only its owner may mutate.
type Owned interface {
	// OwnedBy returns the owning user's ID.
	OwnedBy() string
	// ResourceName returns a human-readable kind for error messages.
	ResourceName() string
}

// # Users

// User is a registered account. Its channel is addressed by Username.
type User struct {
	ID            string    `json:"id" bson:"_id"`
	Username      string    `json:"username" bson:"username"`
	Email         string    `json:"email" bson:"email"`
	DisplayName   string    `json:"displayName" bson:"displayName"`
	AvatarURL     string    `json:"avatarUrl" bson:"avatarUrl"`
	CoverImageURL string    `json:"coverImageUrl,omitempty" bson:"coverImageUrl,omitempty"`
	PasswordHash  string    `json:"-" bson:"passwordHash"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Owner is the public projection of a user embedded in other views.
type Owner struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl"`
}

// Project returns the public owner projection of the user.
func (u *User) Project() *Owner {
	if u == nil {
		return nil
	}
	return &Owner{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
	}
}

// # Videos

// Video is an uploaded media item. Media files live elsewhere; only their URLs are stored.
type Video struct {
	ID           string    `json:"id" bson:"_id"`
	OwnerID      string    `json:"ownerId" bson:"ownerId"`
	VideoURL     string    `json:"videoUrl" bson:"videoUrl"`
	ThumbnailURL string    `json:"thumbnailUrl" bson:"thumbnailUrl"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description" bson:"description"`
	Duration     float64   `json:"duration" bson:"duration"`
	Views        int64     `json:"views" bson:"views"`
	IsPublished  bool      `json:"isPublished" bson:"isPublished"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (v *Video) OwnedBy() string      { return v.OwnerID }
func (v *Video) ResourceName() string { return "Video" }

// # Comments

// Comment is a text reply attached to a video.
type Comment struct {
	ID        string    `json:"id" bson:"_id"`
	OwnerID   string    `json:"ownerId" bson:"ownerId"`
	VideoID   string    `json:"videoId" bson:"videoId"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (c *Comment) OwnedBy() string      { return c.OwnerID }
func (c *Comment) ResourceName() string { return "Comment" }

// # Tweets

// Tweet is a short text post on a channel's community tab.
type Tweet struct {
	ID        string    `json:"id" bson:"_id"`
	OwnerID   string    `json:"ownerId" bson:"ownerId"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (t *Tweet) OwnedBy() string      { return t.OwnerID }
func (t *Tweet) ResourceName() string { return "Tweet" }

// # Playlists

// Playlist is an ordered set of videos curated by its owner.
type Playlist struct {
	ID          string    `json:"id" bson:"_id"`
	OwnerID     string    `json:"ownerId" bson:"ownerId"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	VideoIDs    []string  `json:"videoIds" bson:"videoIds"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (p *Playlist) OwnedBy() string      { return p.OwnerID }
func (p *Playlist) ResourceName() string { return "Playlist" }

// HasVideo reports whether videoID is already in the playlist.
func (p *Playlist) HasVideo(videoID string) bool {
	for _, id := range p.VideoIDs {
		if id == videoID {
			return true
		}
	}
	return false
}
