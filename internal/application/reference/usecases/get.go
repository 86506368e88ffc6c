package usecases

import (
	"context"

	"github.com/tcworld/magadmin/internal/application/reference/dto"
	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

type GetReferenceUseCase struct {
	repo   reference.Repository
	logger logger.Interface
}

func NewGetReferenceUseCase(repo reference.Repository, logger logger.Interface) *GetReferenceUseCase {
	return &GetReferenceUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *GetReferenceUseCase) Execute(ctx context.Context, kind reference.Kind, id string) (*dto.ReferenceDTO, error) {
	entity, err := getEntity(ctx, uc.repo, kind, id)
	if err != nil {
		return nil, err
	}
	return dto.ToReferenceDTO(entity), nil
}
