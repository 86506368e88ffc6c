package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/tcworld/magadmin/internal/application/subscription/dto"
	"github.com/tcworld/magadmin/internal/domain/plan"
	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/domain/subscriber"
	"github.com/tcworld/magadmin/internal/domain/subscription"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

type CreateSubscriptionCommand struct {
	ID            string
	SubscriberID  string
	PlanID        string
	PaymentModeID string
	StartDate     *string
	EndDate       *string
	PaymentStatus string
	Active        *bool
}

type CreateSubscriptionUseCase struct {
	repo     subscription.Repository
	resolver resolver
	logger   logger.Interface
}

func NewCreateSubscriptionUseCase(
	repo subscription.Repository,
	subscribers subscriber.Repository,
	plans plan.Repository,
	refs reference.Repository,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		repo:     repo,
		resolver: resolver{subscribers: subscribers, plans: plans, refs: refs},
		logger:   logger,
	}
}

// Execute resolves the referenced records, validates the fields, and refuses
// a subscription that repeats an existing one. A new subscription is active
// unless the command says otherwise.
func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, cmd CreateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	uc.logger.Infow("executing create subscription use case", "id", cmd.ID, "subscriber", cmd.SubscriberID, "plan", cmd.PlanID)

	id := strings.TrimSpace(cmd.ID)
	verrs := errors.NewValidationErrors()

	if id == "" {
		verrs.Add("_id", errors.MsgRequired)
	} else {
		exists, err := uc.repo.Exists(ctx, id)
		if err != nil {
			uc.logger.Errorw("failed to check subscription id", "id", id, "error", err)
			return nil, err
		}
		if exists {
			verrs.AddUnique("_id", subscription.MsgDuplicateID)
		}
	}

	sub, err := uc.resolver.subscriber(ctx, verrs, cmd.SubscriberID)
	if err != nil {
		return nil, err
	}
	pl, err := uc.resolver.plan(ctx, verrs, cmd.PlanID)
	if err != nil {
		return nil, err
	}
	mode, err := uc.resolver.paymentMode(ctx, verrs, cmd.PaymentModeID)
	if err != nil {
		return nil, err
	}

	var start time.Time
	if cmd.StartDate == nil || strings.TrimSpace(*cmd.StartDate) == "" {
		verrs.Add("start_date", errors.MsgRequired)
	} else if t := parseDate(verrs, "start_date", cmd.StartDate); t != nil {
		start = *t
	}
	end := parseDate(verrs, "end_date", cmd.EndDate)
	subscription.CheckDates(verrs, start, end)
	subscription.CheckPaymentStatus(verrs, cmd.PaymentStatus)

	if err := verrs.Err(); err != nil {
		uc.logger.Infow("subscription create rejected", "id", id, "error", err)
		return nil, err
	}

	active := true
	if cmd.Active != nil {
		active = *cmd.Active
	}
	s, err := subscription.NewSubscription(subscription.Params{
		ID:            id,
		Subscriber:    sub,
		Plan:          pl,
		PaymentMode:   mode,
		StartDate:     start,
		EndDate:       end,
		PaymentStatus: cmd.PaymentStatus,
		Active:        active,
	})
	if err != nil {
		return nil, err
	}

	if err := checkDuplicate(ctx, verrs, uc.repo, s); err != nil {
		uc.logger.Errorw("failed to check duplicate subscription", "id", id, "error", err)
		return nil, err
	}
	if err := verrs.Err(); err != nil {
		uc.logger.Infow("duplicate subscription rejected", "id", id, "subscriber", sub.ID())
		return nil, err
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		if errors.IsDuplicateError(err) {
			dup := errors.NewValidationErrors()
			dup.AddUnique("_id", subscription.MsgDuplicateID)
			return nil, dup
		}
		uc.logger.Errorw("failed to create subscription", "id", id, "error", err)
		return nil, err
	}

	uc.logger.Infow("subscription created", "id", s.ID(), "subscriber", sub.ID(), "plan", pl.ID())
	return dto.ToSubscriptionDTO(s), nil
}
