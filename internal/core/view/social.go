// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
	"github.com/taibuivan/yomitube/pkg/slice"
)

// Subscribers lists the users subscribed to a channel, newest first.
// Subscribers whose account no longer resolves are omitted before counting.
func (composer *Composer) Subscribers(context context.Context, channelID string) (*UserList, error) {
	if _, err := composer.store.FindUserByID(context, channelID); err != nil {
		return nil, dberr.NotFoundAs(err, "Channel")
	}

	edges, err := composer.store.ListEdgesByTarget(context, entity.KindSubscription, channelID)
	if err != nil {
		return nil, err
	}

	return composer.usersInOrder(context, slice.Map(edges, func(edge *entity.Edge) string { return edge.ActorID }))
}

// SubscribedChannels lists the channels a user subscribed to, newest first.
func (composer *Composer) SubscribedChannels(context context.Context, subscriberID string) (*UserList, error) {
	if _, err := composer.store.FindUserByID(context, subscriberID); err != nil {
		return nil, dberr.NotFoundAs(err, "User")
	}

	edges, _, err := composer.store.ListEdgesByActor(context, entity.KindSubscription, subscriberID, 0, 0)
	if err != nil {
		return nil, err
	}

	return composer.usersInOrder(context, slice.Map(edges, func(edge *entity.Edge) string { return edge.TargetID }))
}

/*
Channel composes a channel profile by username.

Description: Both counts skip accounts that no longer resolve, matching the
lengths of [Composer.Subscribers] and [Composer.SubscribedChannels].

Parameters:
  - context: context.Context
  - username: string
  - viewerID: string (empty for anonymous viewers)

Returns:
  - *Channel: Profile with subscription counts and the viewer's status
  - error: NOT_FOUND or storage failures
*/
func (composer *Composer) Channel(context context.Context, username, viewerID string) (*Channel, error) {
	user, err := composer.store.FindUserByUsername(context, username)
	if err != nil {
		return nil, dberr.NotFoundAs(err, "Channel")
	}

	channel := &Channel{
		Owner:         user.Project(),
		CoverImageURL: user.CoverImageURL,
		CreatedAt:     user.CreatedAt,
	}

	group, groupContext := errgroup.WithContext(context)

	group.Go(func() error {
		edges, err := composer.store.ListEdgesByTarget(groupContext, entity.KindSubscription, user.ID)
		if err != nil {
			return err
		}
		channel.SubscribersCount, err = composer.countUsers(groupContext, slice.Map(edges, func(edge *entity.Edge) string { return edge.ActorID }))
		return err
	})

	group.Go(func() error {
		edges, _, err := composer.store.ListEdgesByActor(groupContext, entity.KindSubscription, user.ID, 0, 0)
		if err != nil {
			return err
		}
		channel.SubscribedToCount, err = composer.countUsers(groupContext, slice.Map(edges, func(edge *entity.Edge) string { return edge.TargetID }))
		return err
	})

	if viewerID != "" {
		group.Go(func() error {
			subscribed, err := composer.store.EdgeExists(groupContext, entity.KindSubscription, viewerID, user.ID)
			channel.IsSubscribed = subscribed
			return err
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return channel, nil
}

// countUsers reports how many of ids still resolve to an account.
func (composer *Composer) countUsers(context context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	users, err := composer.store.FindUsersByIDs(context, ids)
	if err != nil {
		return 0, err
	}
	return len(users), nil
}
