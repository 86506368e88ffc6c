package handlers

import (
	"context"

	"github.com/tcworld/magadmin/internal/application/reference/dto"
	"github.com/tcworld/magadmin/internal/application/reference/usecases"
	"github.com/tcworld/magadmin/internal/domain/reference"
)

// Use case interfaces for ReferenceHandler

type createReferenceUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateReferenceCommand) (*dto.ReferenceDTO, error)
}

type updateReferenceUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateReferenceCommand) (*dto.ReferenceDTO, error)
}

type getReferenceUseCase interface {
	Execute(ctx context.Context, kind reference.Kind, id string) (*dto.ReferenceDTO, error)
}

type listReferencesUseCase interface {
	Execute(ctx context.Context, query usecases.ListReferencesQuery) (*usecases.ListReferencesResult, error)
}

type deleteReferenceUseCase interface {
	Execute(ctx context.Context, kind reference.Kind, id string) error
}
