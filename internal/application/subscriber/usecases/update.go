package usecases

import (
	"context"

	"github.com/tcworld/magadmin/internal/application/common"
	"github.com/tcworld/magadmin/internal/application/subscriber/dto"
	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/domain/subscriber"
	"github.com/tcworld/magadmin/internal/domain/subscription"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

// UpdateSubscriberCommand is a partial update. Nil fields are left untouched.
type UpdateSubscriberCommand struct {
	ID      string
	Changes subscriber.Changes
}

type UpdateSubscriberUseCase struct {
	repo    subscriber.Repository
	refRepo reference.Repository
	subs    SubscriptionReader
	logger  logger.Interface
}

func NewUpdateSubscriberUseCase(
	repo subscriber.Repository,
	refRepo reference.Repository,
	subs SubscriptionReader,
	logger logger.Interface,
) *UpdateSubscriberUseCase {
	return &UpdateSubscriberUseCase{
		repo:    repo,
		refRepo: refRepo,
		subs:    subs,
		logger:  logger,
	}
}

func (uc *UpdateSubscriberUseCase) Execute(ctx context.Context, cmd UpdateSubscriberCommand) (*dto.SubscriberDTO, error) {
	s, err := getSubscriber(ctx, uc.repo, cmd.ID)
	if err != nil {
		return nil, err
	}

	c := cmd.Changes
	verrs := errors.NewValidationErrors()
	if c.Name != nil {
		verrs.RequireString("name", c.Name)
	}
	if c.Email != nil {
		checkEmail(verrs, *c.Email)
	}
	if c.CategoryID != nil {
		if _, err := common.ResolveReference(ctx, verrs, uc.refRepo, reference.KindCategory, "category", *c.CategoryID); err != nil {
			return nil, err
		}
	}
	if c.TypeID != nil {
		if _, err := common.ResolveReference(ctx, verrs, uc.refRepo, reference.KindType, "stype", *c.TypeID); err != nil {
			return nil, err
		}
	}
	if err := verrs.Err(); err != nil {
		uc.logger.Infow("subscriber update rejected", "id", cmd.ID, "error", err)
		return nil, err
	}

	if err := s.Apply(c); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to update subscriber", "id", cmd.ID, "error", err)
		return nil, err
	}

	subs, err := uc.subs.ListBySubscriber(ctx, s.ID())
	if err != nil {
		uc.logger.Errorw("failed to load subscriber subscriptions", "id", s.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("subscriber updated", "id", s.ID())
	return dto.ToSubscriberDTO(subscription.ComposeSubscriber(s, subs), ""), nil
}

func getSubscriber(ctx context.Context, repo subscriber.Repository, id string) (*subscriber.Subscriber, error) {
	s, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errors.NewNotFoundError("Subscriber not found")
	}
	return s, nil
}
