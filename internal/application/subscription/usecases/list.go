package usecases

import (
	"context"

	"github.com/tcworld/magadmin/internal/application/subscription/dto"
	"github.com/tcworld/magadmin/internal/domain/subscription"
	"github.com/tcworld/magadmin/internal/shared/logger"
	"github.com/tcworld/magadmin/internal/shared/utils"
)

type ListSubscriptionsQuery struct {
	Page         int
	PageSize     int
	SubscriberID string
	PlanID       string
	Active       *bool
}

type ListSubscriptionsResult struct {
	Items    []*dto.SubscriptionDTO
	Total    int64
	Page     int
	PageSize int
}

type ListSubscriptionsUseCase struct {
	repo   subscription.Repository
	logger logger.Interface
}

func NewListSubscriptionsUseCase(repo subscription.Repository, logger logger.Interface) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, query ListSubscriptionsQuery) (*ListSubscriptionsResult, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)
	subs, total, err := uc.repo.List(ctx, subscription.ListFilter{
		Page:         p.Page,
		PageSize:     p.PageSize,
		SubscriberID: query.SubscriberID,
		PlanID:       query.PlanID,
		Active:       query.Active,
	})
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, err
	}
	return &ListSubscriptionsResult{
		Items:    dto.ToSubscriptionDTOList(subs),
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
