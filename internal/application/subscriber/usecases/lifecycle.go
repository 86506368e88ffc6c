package usecases

import (
	"context"

	"github.com/tcworld/magadmin/internal/domain/subscriber"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

// DeleteSubscriberUseCase marks a subscriber deleted. Subscriptions are kept.
type DeleteSubscriberUseCase struct {
	repo   subscriber.Repository
	logger logger.Interface
}

func NewDeleteSubscriberUseCase(repo subscriber.Repository, logger logger.Interface) *DeleteSubscriberUseCase {
	return &DeleteSubscriberUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *DeleteSubscriberUseCase) Execute(ctx context.Context, id string) error {
	s, err := getSubscriber(ctx, uc.repo, id)
	if err != nil {
		return err
	}
	if !s.Delete() {
		return nil
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to delete subscriber", "id", id, "error", err)
		return err
	}
	uc.logger.Infow("subscriber deleted", "id", id)
	return nil
}

// ActivateSubscriberUseCase clears the deleted mark.
type ActivateSubscriberUseCase struct {
	repo   subscriber.Repository
	logger logger.Interface
}

func NewActivateSubscriberUseCase(repo subscriber.Repository, logger logger.Interface) *ActivateSubscriberUseCase {
	return &ActivateSubscriberUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ActivateSubscriberUseCase) Execute(ctx context.Context, id string) error {
	s, err := getSubscriber(ctx, uc.repo, id)
	if err != nil {
		return err
	}
	if !s.Activate() {
		return nil
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to activate subscriber", "id", id, "error", err)
		return err
	}
	uc.logger.Infow("subscriber activated", "id", id)
	return nil
}
