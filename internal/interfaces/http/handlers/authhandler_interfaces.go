package handlers

import (
	"context"

	"github.com/tcworld/magadmin/internal/application/admin/dto"
	"github.com/tcworld/magadmin/internal/application/admin/usecases"
	"github.com/tcworld/magadmin/internal/domain/admin"
)

// Use case interfaces for AuthHandler and AdminUserHandler

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*dto.LoginResponse, error)
}

type logoutUseCase interface {
	Execute(ctx context.Context, principal *admin.Principal) error
}

type signupUseCase interface {
	Execute(ctx context.Context, cmd usecases.SignupCommand) (*dto.AdminUserDTO, error)
}

type getAdminUserUseCase interface {
	Execute(ctx context.Context, id string) (*dto.AdminUserDTO, error)
}

type listAdminUsersUseCase interface {
	Execute(ctx context.Context, query usecases.ListAdminUsersQuery) (*usecases.ListAdminUsersResult, error)
}
