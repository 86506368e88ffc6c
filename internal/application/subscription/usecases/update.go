package usecases

import (
	"context"
	"strings"

	"github.com/tcworld/magadmin/internal/application/subscription/dto"
	"github.com/tcworld/magadmin/internal/domain/plan"
	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/domain/subscriber"
	"github.com/tcworld/magadmin/internal/domain/subscription"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

// UpdateSubscriptionCommand is a partial update. Only supplied fields are
// validated; date order is checked against the merged record.
type UpdateSubscriptionCommand struct {
	ID            string
	SubscriberID  *string
	PlanID        *string
	PaymentModeID *string
	StartDate     *string
	EndDate       *string
	PaymentStatus *string
	Active        *bool
}

type UpdateSubscriptionUseCase struct {
	repo     subscription.Repository
	resolver resolver
	logger   logger.Interface
}

func NewUpdateSubscriptionUseCase(
	repo subscription.Repository,
	subscribers subscriber.Repository,
	plans plan.Repository,
	refs reference.Repository,
	logger logger.Interface,
) *UpdateSubscriptionUseCase {
	return &UpdateSubscriptionUseCase{
		repo:     repo,
		resolver: resolver{subscribers: subscribers, plans: plans, refs: refs},
		logger:   logger,
	}
}

func (uc *UpdateSubscriptionUseCase) Execute(ctx context.Context, cmd UpdateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	s, err := getSubscription(ctx, uc.repo, cmd.ID)
	if err != nil {
		return nil, err
	}

	merged := s.Params()
	verrs := errors.NewValidationErrors()

	if cmd.SubscriberID != nil {
		if merged.Subscriber, err = uc.resolver.subscriber(ctx, verrs, *cmd.SubscriberID); err != nil {
			return nil, err
		}
	}
	if cmd.PlanID != nil {
		if merged.Plan, err = uc.resolver.plan(ctx, verrs, *cmd.PlanID); err != nil {
			return nil, err
		}
	}
	if cmd.PaymentModeID != nil {
		if merged.PaymentMode, err = uc.resolver.paymentMode(ctx, verrs, *cmd.PaymentModeID); err != nil {
			return nil, err
		}
	}
	if cmd.StartDate != nil {
		if strings.TrimSpace(*cmd.StartDate) == "" {
			verrs.Add("start_date", errors.MsgBlank)
		} else if t := parseDate(verrs, "start_date", cmd.StartDate); t != nil {
			merged.StartDate = *t
		}
	}
	if cmd.EndDate != nil {
		before := verrs.Len()
		end := parseDate(verrs, "end_date", cmd.EndDate)
		if verrs.Len() == before {
			merged.EndDate = end
		}
	}
	if cmd.PaymentStatus != nil {
		merged.PaymentStatus = *cmd.PaymentStatus
		subscription.CheckPaymentStatus(verrs, merged.PaymentStatus)
	}
	if cmd.Active != nil {
		merged.Active = *cmd.Active
	}
	if !verrs.Has("start_date") && !verrs.Has("end_date") {
		subscription.CheckDates(verrs, merged.StartDate, merged.EndDate)
	}

	if err := verrs.Err(); err != nil {
		uc.logger.Infow("subscription update rejected", "id", cmd.ID, "error", err)
		return nil, err
	}

	candidate := subscription.ReconstructSubscription(merged, s.CreatedAt(), s.UpdatedAt())
	if err := checkDuplicate(ctx, verrs, uc.repo, candidate); err != nil {
		uc.logger.Errorw("failed to check duplicate subscription", "id", cmd.ID, "error", err)
		return nil, err
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	if err := s.Replace(merged); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to update subscription", "id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("subscription updated", "id", s.ID())
	return dto.ToSubscriptionDTO(s), nil
}

func getSubscription(ctx context.Context, repo subscription.Repository, id string) (*subscription.Subscription, error) {
	s, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errors.NewNotFoundError("Subscription not found")
	}
	return s, nil
}
