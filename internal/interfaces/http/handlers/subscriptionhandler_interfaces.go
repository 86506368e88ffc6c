package handlers

import (
	"context"

	"github.com/tcworld/magadmin/internal/application/subscription/dto"
	"github.com/tcworld/magadmin/internal/application/subscription/usecases"
)

// Use case interfaces for SubscriptionHandler

type createSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateSubscriptionCommand) (*dto.SubscriptionDTO, error)
}

type updateSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateSubscriptionCommand) (*dto.SubscriptionDTO, error)
}

type getSubscriptionUseCase interface {
	Execute(ctx context.Context, id string) (*dto.SubscriptionDTO, error)
}

type listSubscriptionsUseCase interface {
	Execute(ctx context.Context, query usecases.ListSubscriptionsQuery) (*usecases.ListSubscriptionsResult, error)
}

type listBySubscriberUseCase interface {
	Execute(ctx context.Context, subscriberID string) ([]*dto.SubscriptionDTO, error)
}

type deleteSubscriptionUseCase interface {
	Execute(ctx context.Context, id string) error
}
