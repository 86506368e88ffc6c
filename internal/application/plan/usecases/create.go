package usecases

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tcworld/magadmin/internal/application/common"
	"github.com/tcworld/magadmin/internal/application/plan/dto"
	"github.com/tcworld/magadmin/internal/domain/plan"
	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

type CreatePlanCommand struct {
	ID               string
	Version          string
	Name             string
	StartDate        *string
	Price            *decimal.Decimal
	LanguageID       string
	ModeID           string
	DurationInMonths *int
}

type CreatePlanUseCase struct {
	planRepo plan.Repository
	refRepo  reference.Repository
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo plan.Repository, refRepo reference.Repository, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		refRepo:  refRepo,
		logger:   logger,
	}
}

// Execute validates every field, collecting all failures, then labels the
// plan's price tier among its (language, mode) siblings and stores it.
func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	uc.logger.Infow("executing create plan use case", "id", cmd.ID, "language", cmd.LanguageID, "mode", cmd.ModeID)

	id := strings.TrimSpace(cmd.ID)
	verrs := errors.NewValidationErrors()

	if id == "" {
		verrs.Add("_id", errors.MsgRequired)
	} else {
		exists, err := uc.planRepo.Exists(ctx, id)
		if err != nil {
			uc.logger.Errorw("failed to check plan id", "id", id, "error", err)
			return nil, err
		}
		if exists {
			verrs.AddUnique("_id", plan.MsgDuplicateID)
		}
	}

	language, err := common.ResolveReference(ctx, verrs, uc.refRepo, reference.KindLanguage, "subscription_language", cmd.LanguageID)
	if err != nil {
		uc.logger.Errorw("failed to resolve plan language", "language", cmd.LanguageID, "error", err)
		return nil, err
	}
	mode, err := common.ResolveReference(ctx, verrs, uc.refRepo, reference.KindMode, "subscription_mode", cmd.ModeID)
	if err != nil {
		uc.logger.Errorw("failed to resolve plan mode", "mode", cmd.ModeID, "error", err)
		return nil, err
	}

	plan.CheckPrice(verrs, cmd.Price)
	plan.CheckDuration(verrs, cmd.DurationInMonths)
	startDate := plan.ParseStartDate(verrs, cmd.StartDate)

	if err := verrs.Err(); err != nil {
		uc.logger.Infow("plan create rejected", "id", id, "error", err)
		return nil, err
	}

	siblings, err := uc.planRepo.ListByIdentity(ctx, language.ID(), mode.ID())
	if err != nil {
		uc.logger.Errorw("failed to load sibling plans", "language", language.ID(), "mode", mode.ID(), "error", err)
		return nil, err
	}
	version := plan.ResolveVersion(siblings, *cmd.Price, cmd.Version)

	p, err := plan.NewPlan(plan.Params{
		ID:               id,
		Version:          version,
		Name:             cmd.Name,
		StartDate:        startDate,
		Price:            *cmd.Price,
		LanguageID:       language.ID(),
		ModeID:           mode.ID(),
		DurationInMonths: *cmd.DurationInMonths,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.planRepo.Create(ctx, p); err != nil {
		if errors.IsDuplicateError(err) {
			dup := errors.NewValidationErrors()
			dup.AddUnique("_id", plan.MsgDuplicateID)
			return nil, dup
		}
		uc.logger.Errorw("failed to create plan", "id", id, "error", err)
		return nil, err
	}

	uc.logger.Infow("plan created", "id", p.ID(), "version", p.Version(), "price", p.Price().String())
	return dto.ToPlanDTO(p), nil
}
