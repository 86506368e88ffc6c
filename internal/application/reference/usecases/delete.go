package usecases

import (
	"context"

	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

type DeleteReferenceUseCase struct {
	repo   reference.Repository
	logger logger.Interface
}

func NewDeleteReferenceUseCase(repo reference.Repository, logger logger.Interface) *DeleteReferenceUseCase {
	return &DeleteReferenceUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute removes the record outright. Records pointing at it are left as they are.
func (uc *DeleteReferenceUseCase) Execute(ctx context.Context, kind reference.Kind, id string) error {
	if _, err := getEntity(ctx, uc.repo, kind, id); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, kind, id); err != nil {
		uc.logger.Errorw("failed to delete reference", "kind", kind, "id", id, "error", err)
		return err
	}

	uc.logger.Infow("reference deleted", "kind", kind, "id", id)
	return nil
}
