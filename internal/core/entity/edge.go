// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity

import "time"

// EdgeKind tags what an [Edge] points at. The kind and the target ID together
// identify exactly one target, so a like can never reference two things.
type EdgeKind string

const (
	KindVideoLike    EdgeKind = "video_like"
	KindCommentLike  EdgeKind = "comment_like"
	KindTweetLike    EdgeKind = "tweet_like"
	KindSubscription EdgeKind = "subscription"
)

// Valid reports whether k is a known edge kind.
func (k EdgeKind) Valid() bool {
	switch k {
	case KindVideoLike, KindCommentLike, KindTweetLike, KindSubscription:
		return true
	}
	return false
}

// Target returns the resource name of the edge's target, for error messages.
func (k EdgeKind) Target() string {
	switch k {
	case KindVideoLike:
		return "Video"
	case KindCommentLike:
		return "Comment"
	case KindTweetLike:
		return "Tweet"
	case KindSubscription:
		return "Channel"
	}
	return "Resource"
}

// Edge is a directed relation from an actor to a target.
//
// For likes the actor is the liking user; for subscriptions the actor is the
// subscriber and the target is the channel (a user ID). At most one edge
// exists per (Kind, ActorID, TargetID).
type Edge struct {
	ID        string    `json:"id" bson:"_id"`
	Kind      EdgeKind  `json:"kind" bson:"kind"`
	ActorID   string    `json:"actorId" bson:"actorId"`
	TargetID  string    `json:"targetId" bson:"targetId"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
