package usecases

import (
	"context"
	"fmt"

	"github.com/tcworld/magadmin/internal/application/reference/dto"
	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
	"github.com/tcworld/magadmin/internal/shared/utils"
)

type ListReferencesQuery struct {
	Kind     reference.Kind
	Page     int
	PageSize int
	Search   string
}

type ListReferencesResult struct {
	Items    []*dto.ReferenceDTO
	Total    int64
	Page     int
	PageSize int
}

type ListReferencesUseCase struct {
	repo   reference.Repository
	logger logger.Interface
}

func NewListReferencesUseCase(repo reference.Repository, logger logger.Interface) *ListReferencesUseCase {
	return &ListReferencesUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListReferencesUseCase) Execute(ctx context.Context, query ListReferencesQuery) (*ListReferencesResult, error) {
	if !query.Kind.IsValid() {
		return nil, errors.NewBadRequestError(fmt.Sprintf("unknown reference kind %q", query.Kind))
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	entities, total, err := uc.repo.List(ctx, query.Kind, reference.ListFilter{
		Page:     p.Page,
		PageSize: p.PageSize,
		Search:   query.Search,
	})
	if err != nil {
		uc.logger.Errorw("failed to list references", "kind", query.Kind, "error", err)
		return nil, err
	}

	items := dto.ToReferenceDTOList(entities)
	if items == nil {
		items = []*dto.ReferenceDTO{}
	}
	return &ListReferencesResult{
		Items:    items,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
