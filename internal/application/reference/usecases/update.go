package usecases

import (
	"context"
	"fmt"

	"github.com/tcworld/magadmin/internal/application/reference/dto"
	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

type UpdateReferenceCommand struct {
	Kind reference.Kind
	ID   string
	Name *string
}

type UpdateReferenceUseCase struct {
	repo   reference.Repository
	logger logger.Interface
}

func NewUpdateReferenceUseCase(repo reference.Repository, logger logger.Interface) *UpdateReferenceUseCase {
	return &UpdateReferenceUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *UpdateReferenceUseCase) Execute(ctx context.Context, cmd UpdateReferenceCommand) (*dto.ReferenceDTO, error) {
	entity, err := getEntity(ctx, uc.repo, cmd.Kind, cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := entity.Rename(cmd.Name); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to update reference", "kind", cmd.Kind, "id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("reference updated", "kind", cmd.Kind, "id", cmd.ID)
	return dto.ToReferenceDTO(entity), nil
}

func getEntity(ctx context.Context, repo reference.Repository, kind reference.Kind, id string) (*reference.Entity, error) {
	if !kind.IsValid() {
		return nil, errors.NewBadRequestError(fmt.Sprintf("unknown reference kind %q", kind))
	}
	entity, err := repo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NewNotFoundError(kind.NotFoundMessage())
	}
	return entity, nil
}
