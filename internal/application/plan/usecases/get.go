package usecases

import (
	"context"

	"github.com/tcworld/magadmin/internal/application/plan/dto"
	"github.com/tcworld/magadmin/internal/domain/plan"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

type GetPlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewGetPlanUseCase(planRepo plan.Repository, logger logger.Interface) *GetPlanUseCase {
	return &GetPlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *GetPlanUseCase) Execute(ctx context.Context, id string) (*dto.PlanDTO, error) {
	p, err := getPlan(ctx, uc.planRepo, id)
	if err != nil {
		return nil, err
	}
	return dto.ToPlanDTO(p), nil
}
