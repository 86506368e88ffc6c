package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/tcworld/magadmin/internal/domain/admin"
	"github.com/tcworld/magadmin/internal/infrastructure/persistence/mappers"
	"github.com/tcworld/magadmin/internal/infrastructure/persistence/models"
	"github.com/tcworld/magadmin/internal/shared/db"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

type AdminUserRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AdminUserMapper
	logger logger.Interface
}

func NewAdminUserRepository(db *gorm.DB, logger logger.Interface) admin.Repository {
	return &AdminUserRepositoryImpl{
		db:     db,
		mapper: mappers.NewAdminUserMapper(),
		logger: logger,
	}
}

func (r *AdminUserRepositoryImpl) Create(ctx context.Context, u *admin.User) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ToModel(u)).Error; err != nil {
		r.logger.Errorw("failed to create admin user", "error", err, "username", u.Username())
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}

func (r *AdminUserRepositoryImpl) GetByID(ctx context.Context, id string) (*admin.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *AdminUserRepositoryImpl) GetByUsername(ctx context.Context, username string) (*admin.User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *AdminUserRepositoryImpl) first(ctx context.Context, cond string, arg string) (*admin.User, error) {
	var model models.AdminUserModel
	if err := db.GetTxFromContext(ctx, r.db).Where(cond, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get admin user", "error", err, "condition", cond)
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *AdminUserRepositoryImpl) Update(ctx context.Context, u *admin.User) error {
	model := r.mapper.ToModel(u)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.AdminUserModel{}).
		Where("id = ?", u.ID()).
		Updates(map[string]interface{}{
			"email":         model.Email,
			"first_name":    model.FirstName,
			"last_name":     model.LastName,
			"aadhaar":       model.Aadhaar,
			"mobile":        model.Mobile,
			"role":          model.Role,
			"password_hash": model.PasswordHash,
			"active":        model.Active,
			"last_login":    model.LastLogin,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update admin user", "error", result.Error, "admin_id", u.ID())
		return fmt.Errorf("failed to update admin user: %w", result.Error)
	}
	return nil
}

func (r *AdminUserRepositoryImpl) List(ctx context.Context, filter admin.ListFilter) ([]*admin.User, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.AdminUserModel{})
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		query = query.Where("LOWER(username) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count admin users", "error", err)
		return nil, 0, fmt.Errorf("failed to count admin users: %w", err)
	}

	var rows []*models.AdminUserModel
	if err := query.Order("username ASC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list admin users", "error", err)
		return nil, 0, fmt.Errorf("failed to list admin users: %w", err)
	}
	return r.mapper.ToEntities(rows), total, nil
}

func (r *AdminUserRepositoryImpl) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.AdminUserModel{}).
		Where("username = ? OR email = ?", username, strings.ToLower(email)).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check admin user existence: %w", err)
	}
	return count > 0, nil
}
