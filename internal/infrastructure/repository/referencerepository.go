package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/infrastructure/persistence/mappers"
	"github.com/tcworld/magadmin/internal/infrastructure/persistence/models"
	"github.com/tcworld/magadmin/internal/shared/db"
	apperrors "github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

// ReferenceRepositoryImpl keeps each registry in its own table.
type ReferenceRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ReferenceMapper
	logger logger.Interface
}

func NewReferenceRepository(db *gorm.DB, logger logger.Interface) reference.Repository {
	return &ReferenceRepositoryImpl{
		db:     db,
		mapper: mappers.NewReferenceMapper(),
		logger: logger,
	}
}

func (r *ReferenceRepositoryImpl) table(ctx context.Context, kind reference.Kind) (*gorm.DB, error) {
	name := models.ReferenceTable(kind)
	if name == "" {
		return nil, fmt.Errorf("unknown reference kind %q", kind)
	}
	return db.GetTxFromContext(ctx, r.db).Table(name), nil
}

func (r *ReferenceRepositoryImpl) Create(ctx context.Context, entity *reference.Entity) error {
	tx, err := r.table(ctx, entity.Kind())
	if err != nil {
		return err
	}
	if err := tx.Create(r.mapper.ToModel(entity)).Error; err != nil {
		r.logger.Errorw("failed to create reference", "kind", entity.Kind(), "id", entity.ID(), "error", err)
		return fmt.Errorf("failed to create %s: %w", entity.Kind(), err)
	}
	return nil
}

func (r *ReferenceRepositoryImpl) GetByID(ctx context.Context, kind reference.Kind, id string) (*reference.Entity, error) {
	tx, err := r.table(ctx, kind)
	if err != nil {
		return nil, err
	}
	var model models.ReferenceModel
	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get reference", "kind", kind, "id", id, "error", err)
		return nil, fmt.Errorf("failed to get %s: %w", kind, err)
	}
	return r.mapper.ToEntity(kind, &model), nil
}

func (r *ReferenceRepositoryImpl) Update(ctx context.Context, entity *reference.Entity) error {
	tx, err := r.table(ctx, entity.Kind())
	if err != nil {
		return err
	}
	result := tx.Where("id = ?", entity.ID()).Updates(map[string]interface{}{
		"name":       entity.Name(),
		"updated_at": entity.UpdatedAt(),
	})
	if result.Error != nil {
		r.logger.Errorw("failed to update reference", "kind", entity.Kind(), "id", entity.ID(), "error", result.Error)
		return fmt.Errorf("failed to update %s: %w", entity.Kind(), result.Error)
	}
	return nil
}

func (r *ReferenceRepositoryImpl) Delete(ctx context.Context, kind reference.Kind, id string) error {
	tx, err := r.table(ctx, kind)
	if err != nil {
		return err
	}
	result := tx.Where("id = ?", id).Delete(&models.ReferenceModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete reference", "kind", kind, "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete %s: %w", kind, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(kind.NotFoundMessage())
	}
	r.logger.Infow("reference deleted", "kind", kind, "id", id)
	return nil
}

func (r *ReferenceRepositoryImpl) List(ctx context.Context, kind reference.Kind, filter reference.ListFilter) ([]*reference.Entity, int64, error) {
	tx, err := r.table(ctx, kind)
	if err != nil {
		return nil, 0, err
	}
	query := tx.Model(&models.ReferenceModel{}).Scopes(db.NameContains("name", filter.Search))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count references", "kind", kind, "error", err)
		return nil, 0, fmt.Errorf("failed to count %s: %w", kind, err)
	}

	var rows []*models.ReferenceModel
	if err := query.Order("id ASC").Scopes(db.Paginate(filter.Page, filter.PageSize)).Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list references", "kind", kind, "error", err)
		return nil, 0, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	return r.mapper.ToEntities(kind, rows), total, nil
}

func (r *ReferenceRepositoryImpl) Exists(ctx context.Context, kind reference.Kind, id string) (bool, error) {
	tx, err := r.table(ctx, kind)
	if err != nil {
		return false, err
	}
	var count int64
	if err := tx.Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", kind, err)
	}
	return count > 0, nil
}
