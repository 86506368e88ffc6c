package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/tcworld/magadmin/internal/application/reference/dto"
	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

type CreateReferenceCommand struct {
	Kind reference.Kind
	ID   string
	Name *string
}

type CreateReferenceUseCase struct {
	repo   reference.Repository
	logger logger.Interface
}

func NewCreateReferenceUseCase(repo reference.Repository, logger logger.Interface) *CreateReferenceUseCase {
	return &CreateReferenceUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *CreateReferenceUseCase) Execute(ctx context.Context, cmd CreateReferenceCommand) (*dto.ReferenceDTO, error) {
	if !cmd.Kind.IsValid() {
		return nil, errors.NewBadRequestError(fmt.Sprintf("unknown reference kind %q", cmd.Kind))
	}

	id := strings.TrimSpace(cmd.ID)
	verrs := errors.NewValidationErrors()
	entity, err := reference.NewEntity(cmd.Kind, id, cmd.Name)
	if err != nil {
		if fieldErrs := errors.GetValidationErrors(err); fieldErrs != nil {
			verrs.Merge(fieldErrs)
		} else {
			return nil, err
		}
	}

	if id != "" {
		exists, err := uc.repo.Exists(ctx, cmd.Kind, id)
		if err != nil {
			uc.logger.Errorw("failed to check reference id", "kind", cmd.Kind, "id", id, "error", err)
			return nil, err
		}
		if exists {
			verrs.AddUnique("_id", cmd.Kind.DuplicateIDMessage(id))
		}
	}

	if err := verrs.Err(); err != nil {
		uc.logger.Infow("reference create rejected", "kind", cmd.Kind, "id", id, "error", err)
		return nil, err
	}

	if err := uc.repo.Create(ctx, entity); err != nil {
		if errors.IsDuplicateError(err) {
			dup := errors.NewValidationErrors()
			dup.AddUnique("_id", cmd.Kind.DuplicateIDMessage(entity.ID()))
			return nil, dup
		}
		uc.logger.Errorw("failed to create reference", "kind", cmd.Kind, "id", entity.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("reference created", "kind", cmd.Kind, "id", entity.ID())
	return dto.ToReferenceDTO(entity), nil
}
