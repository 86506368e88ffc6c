package usecases

import (
	"context"

	"github.com/tcworld/magadmin/internal/application/subscriber/dto"
	"github.com/tcworld/magadmin/internal/domain/subscriber"
	"github.com/tcworld/magadmin/internal/domain/subscription"
	"github.com/tcworld/magadmin/internal/shared/logger"
	"github.com/tcworld/magadmin/internal/shared/utils"
)

type ListSubscribersQuery struct {
	Page       int
	PageSize   int
	IsDeleted  *bool
	CategoryID string
	TypeID     string
	Search     string
}

type ListSubscribersResult struct {
	Items    []*dto.SubscriberDTO
	Total    int64
	Page     int
	PageSize int
}

type ListSubscribersUseCase struct {
	repo   subscriber.Repository
	subs   SubscriptionReader
	logger logger.Interface
}

func NewListSubscribersUseCase(repo subscriber.Repository, subs SubscriptionReader, logger logger.Interface) *ListSubscribersUseCase {
	return &ListSubscribersUseCase{
		repo:   repo,
		subs:   subs,
		logger: logger,
	}
}

func (uc *ListSubscribersUseCase) Execute(ctx context.Context, query ListSubscribersQuery) (*ListSubscribersResult, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)
	subscribers, total, err := uc.repo.List(ctx, subscriber.ListFilter{
		Page:       p.Page,
		PageSize:   p.PageSize,
		IsDeleted:  query.IsDeleted,
		CategoryID: query.CategoryID,
		TypeID:     query.TypeID,
		Search:     query.Search,
	})
	if err != nil {
		uc.logger.Errorw("failed to list subscribers", "error", err)
		return nil, err
	}

	ids := make([]string, 0, len(subscribers))
	for _, s := range subscribers {
		ids = append(ids, s.ID())
	}
	var subs []*subscription.Subscription
	if len(ids) > 0 {
		subs, err = uc.subs.ListBySubscribers(ctx, ids)
		if err != nil {
			uc.logger.Errorw("failed to load subscriptions for subscriber page", "error", err)
			return nil, err
		}
	}

	aggs := subscription.ComposeSubscribers(subscribers, subs)
	items := make([]*dto.SubscriberDTO, 0, len(aggs))
	for _, agg := range aggs {
		items = append(items, dto.ToSubscriberDTO(agg, ""))
	}
	return &ListSubscribersResult{Items: items, Total: total, Page: p.Page, PageSize: p.PageSize}, nil
}
