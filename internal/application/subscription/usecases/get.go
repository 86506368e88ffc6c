package usecases

import (
	"context"

	"github.com/tcworld/magadmin/internal/application/subscription/dto"
	"github.com/tcworld/magadmin/internal/domain/subscription"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

type GetSubscriptionUseCase struct {
	repo   subscription.Repository
	logger logger.Interface
}

func NewGetSubscriptionUseCase(repo subscription.Repository, logger logger.Interface) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, id string) (*dto.SubscriptionDTO, error) {
	s, err := getSubscription(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	return dto.ToSubscriptionDTO(s), nil
}

// ListBySubscriberUseCase returns every subscription of one subscriber. An
// unknown subscriber simply has none.
type ListBySubscriberUseCase struct {
	repo   subscription.Repository
	logger logger.Interface
}

func NewListBySubscriberUseCase(repo subscription.Repository, logger logger.Interface) *ListBySubscriberUseCase {
	return &ListBySubscriberUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListBySubscriberUseCase) Execute(ctx context.Context, subscriberID string) ([]*dto.SubscriptionDTO, error) {
	subs, err := uc.repo.ListBySubscriber(ctx, subscriberID)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions by subscriber", "subscriber", subscriberID, "error", err)
		return nil, err
	}
	return dto.ToSubscriptionDTOList(subs), nil
}
