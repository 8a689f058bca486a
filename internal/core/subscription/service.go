// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package subscription

import (
	"context"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/core/relation"
	"github.com/taibuivan/yomitube/internal/core/view"
)

// Service manages channel subscriptions.
type Service struct {
	toggler  *relation.Toggler
	composer *view.Composer
}

// NewService constructs a new subscription [Service].
func NewService(toggler *relation.Toggler, composer *view.Composer) *Service {
	return &Service{toggler: toggler, composer: composer}
}

// ToggleSubscription subscribes the actor to a channel, or unsubscribes them.
func (service *Service) ToggleSubscription(context context.Context, actorID, channelID string) (*relation.Result, error) {
	return service.toggler.Toggle(context, actorID, channelID, entity.KindSubscription)
}

// Subscribers lists the users subscribed to a channel.
func (service *Service) Subscribers(context context.Context, channelID string) (*view.UserList, error) {
	return service.composer.Subscribers(context, channelID)
}

// SubscribedChannels lists the channels a user subscribes to.
func (service *Service) SubscribedChannels(context context.Context, subscriberID string) (*view.UserList, error) {
	return service.composer.SubscribedChannels(context, subscriberID)
}
