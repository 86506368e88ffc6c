package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tcworld/magadmin/internal/domain/plan"
	"github.com/tcworld/magadmin/internal/infrastructure/persistence/mappers"
	"github.com/tcworld/magadmin/internal/infrastructure/persistence/models"
	"github.com/tcworld/magadmin/internal/shared/db"
	apperrors "github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) plan.Repository {
	return &PlanRepositoryImpl{
		db:     db,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, p *plan.Plan) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ToModel(p)).Error; err != nil {
		r.logger.Errorw("failed to create subscription plan", "error", err, "plan_id", p.ID())
		return fmt.Errorf("failed to create subscription plan: %w", err)
	}
	r.logger.Infow("subscription plan created successfully", "plan_id", p.ID(), "version", p.Version())
	return nil
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id string) (*plan.Plan, error) {
	var model models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription plan by ID", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get subscription plan: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *PlanRepositoryImpl) Update(ctx context.Context, p *plan.Plan) error {
	model := r.mapper.ToModel(p)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{}).
		Where("id = ?", p.ID()).
		Updates(map[string]interface{}{
			"version":            model.Version,
			"name":               model.Name,
			"start_date":         model.StartDate,
			"price":              model.Price,
			"duration_in_months": model.DurationInMonths,
			"updated_at":         model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription plan", "error", result.Error, "plan_id", p.ID())
		return fmt.Errorf("failed to update subscription plan: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	r.logger.Infow("subscription plan updated successfully", "plan_id", p.ID(), "version", p.Version())
	return nil
}

func (r *PlanRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.PlanModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete subscription plan", "error", result.Error, "plan_id", id)
		return fmt.Errorf("failed to delete subscription plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Subscription plan not found")
	}
	r.logger.Infow("subscription plan deleted successfully", "plan_id", id)
	return nil
}

func (r *PlanRepositoryImpl) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check subscription plan existence: %w", err)
	}
	return count > 0, nil
}

func (r *PlanRepositoryImpl) List(ctx context.Context, filter plan.ListFilter) ([]*plan.Plan, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{})
	if filter.LanguageID != "" {
		query = query.Where("language_id = ?", filter.LanguageID)
	}
	if filter.ModeID != "" {
		query = query.Where("mode_id = ?", filter.ModeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count subscription plans", "error", err)
		return nil, 0, fmt.Errorf("failed to count subscription plans: %w", err)
	}

	var rows []*models.PlanModel
	if err := query.Order("language_id ASC, mode_id ASC, id ASC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list subscription plans", "error", err)
		return nil, 0, fmt.Errorf("failed to list subscription plans: %w", err)
	}
	return r.mapper.ToEntities(rows), total, nil
}

func (r *PlanRepositoryImpl) ListByIdentity(ctx context.Context, languageID, modeID string) ([]*plan.Plan, error) {
	var rows []*models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("language_id = ? AND mode_id = ?", languageID, modeID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list plans by identity", "error", err, "language_id", languageID, "mode_id", modeID)
		return nil, fmt.Errorf("failed to list plans by identity: %w", err)
	}
	return r.mapper.ToEntities(rows), nil
}
