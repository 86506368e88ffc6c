package usecases

import (
	"context"

	"github.com/tcworld/magadmin/internal/application/plan/dto"
	"github.com/tcworld/magadmin/internal/domain/plan"
	"github.com/tcworld/magadmin/internal/shared/logger"
	"github.com/tcworld/magadmin/internal/shared/utils"
)

type ListPlansQuery struct {
	Page       int
	PageSize   int
	LanguageID string
	ModeID     string
}

type ListPlansResult struct {
	Items    []*dto.PlanDTO
	Total    int64
	Page     int
	PageSize int
}

type ListPlansUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo plan.Repository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, query ListPlansQuery) (*ListPlansResult, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)
	plans, total, err := uc.planRepo.List(ctx, plan.ListFilter{
		Page:       p.Page,
		PageSize:   p.PageSize,
		LanguageID: query.LanguageID,
		ModeID:     query.ModeID,
	})
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, err
	}

	items := dto.ToPlanDTOList(plans)
	if items == nil {
		items = []*dto.PlanDTO{}
	}
	return &ListPlansResult{Items: items, Total: total, Page: p.Page, PageSize: p.PageSize}, nil
}
