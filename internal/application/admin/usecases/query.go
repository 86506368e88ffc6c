package usecases

import (
	"context"

	"github.com/tcworld/magadmin/internal/application/admin/dto"
	"github.com/tcworld/magadmin/internal/domain/admin"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
	"github.com/tcworld/magadmin/internal/shared/utils"
)

type GetAdminUserUseCase struct {
	repo   admin.Repository
	logger logger.Interface
}

func NewGetAdminUserUseCase(repo admin.Repository, logger logger.Interface) *GetAdminUserUseCase {
	return &GetAdminUserUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *GetAdminUserUseCase) Execute(ctx context.Context, id string) (*dto.AdminUserDTO, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("Admin user not found")
	}
	return dto.ToAdminUserDTO(u), nil
}

type ListAdminUsersQuery struct {
	Page     int
	PageSize int
	Role     string
	Search   string
}

type ListAdminUsersResult struct {
	Items    []*dto.AdminUserDTO
	Total    int64
	Page     int
	PageSize int
}

type ListAdminUsersUseCase struct {
	repo   admin.Repository
	logger logger.Interface
}

func NewListAdminUsersUseCase(repo admin.Repository, logger logger.Interface) *ListAdminUsersUseCase {
	return &ListAdminUsersUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListAdminUsersUseCase) Execute(ctx context.Context, query ListAdminUsersQuery) (*ListAdminUsersResult, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)
	users, total, err := uc.repo.List(ctx, admin.ListFilter{
		Page:     p.Page,
		PageSize: p.PageSize,
		Role:     query.Role,
		Search:   query.Search,
	})
	if err != nil {
		uc.logger.Errorw("failed to list admin users", "error", err)
		return nil, err
	}
	items := dto.ToAdminUserDTOList(users)
	if items == nil {
		items = []*dto.AdminUserDTO{}
	}
	return &ListAdminUsersResult{Items: items, Total: total, Page: p.Page, PageSize: p.PageSize}, nil
}
