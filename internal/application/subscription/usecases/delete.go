package usecases

import (
	"context"

	"github.com/tcworld/magadmin/internal/domain/subscription"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

type DeleteSubscriptionUseCase struct {
	repo   subscription.Repository
	logger logger.Interface
}

func NewDeleteSubscriptionUseCase(repo subscription.Repository, logger logger.Interface) *DeleteSubscriptionUseCase {
	return &DeleteSubscriptionUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *DeleteSubscriptionUseCase) Execute(ctx context.Context, id string) error {
	if _, err := getSubscription(ctx, uc.repo, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete subscription", "id", id, "error", err)
		return err
	}
	uc.logger.Infow("subscription deleted", "id", id)
	return nil
}
