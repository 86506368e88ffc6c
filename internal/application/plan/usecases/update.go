package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tcworld/magadmin/internal/application/plan/dto"
	"github.com/tcworld/magadmin/internal/domain/plan"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

// UpdatePlanCommand is a partial update. Nil fields are left untouched.
// Language and mode may be repeated but not changed.
type UpdatePlanCommand struct {
	ID               string
	Name             *string
	StartDate        *string
	Price            *decimal.Decimal
	LanguageID       *string
	ModeID           *string
	DurationInMonths *int
}

type UpdatePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo plan.Repository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	p, err := getPlan(ctx, uc.planRepo, cmd.ID)
	if err != nil {
		return nil, err
	}

	verrs := errors.NewValidationErrors()
	if cmd.LanguageID != nil && *cmd.LanguageID != p.LanguageID() {
		verrs.Add("subscription_language", plan.MsgImmutable)
	}
	if cmd.ModeID != nil && *cmd.ModeID != p.ModeID() {
		verrs.Add("subscription_mode", plan.MsgImmutable)
	}
	if cmd.Price != nil {
		plan.CheckPrice(verrs, cmd.Price)
	}
	if cmd.DurationInMonths != nil {
		plan.CheckDuration(verrs, cmd.DurationInMonths)
	}

	changes := plan.Changes{
		Name:             cmd.Name,
		Price:            cmd.Price,
		DurationInMonths: cmd.DurationInMonths,
	}
	if cmd.StartDate != nil {
		before := verrs.Len()
		changes.StartDate = plan.ParseStartDate(verrs, cmd.StartDate)
		changes.ClearStartDate = changes.StartDate == nil && verrs.Len() == before
	}

	if err := verrs.Err(); err != nil {
		uc.logger.Infow("plan update rejected", "id", cmd.ID, "error", err)
		return nil, err
	}

	var siblings []*plan.Plan
	if cmd.Price != nil && !cmd.Price.Equal(p.Price()) {
		all, err := uc.planRepo.ListByIdentity(ctx, p.LanguageID(), p.ModeID())
		if err != nil {
			uc.logger.Errorw("failed to load sibling plans", "id", p.ID(), "error", err)
			return nil, err
		}
		siblings = plan.Siblings(all, p.LanguageID(), p.ModeID(), p.ID())
	}

	previous := p.Version()
	if err := p.Apply(changes, siblings); err != nil {
		return nil, err
	}

	if err := uc.planRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update plan", "id", p.ID(), "error", err)
		return nil, err
	}

	if previous != p.Version() {
		uc.logger.Infow("plan version re-derived", "id", p.ID(), "from", previous, "to", p.Version())
	}
	uc.logger.Infow("plan updated", "id", p.ID())
	return dto.ToPlanDTO(p), nil
}

func getPlan(ctx context.Context, repo plan.Repository, id string) (*plan.Plan, error) {
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.NewNotFoundError(plan.MsgNotFound)
	}
	return p, nil
}
