package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tcworld/magadmin/internal/domain/subscriber"
	"github.com/tcworld/magadmin/internal/infrastructure/persistence/mappers"
	"github.com/tcworld/magadmin/internal/infrastructure/persistence/models"
	"github.com/tcworld/magadmin/internal/shared/db"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

type SubscriberRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriberMapper
	logger logger.Interface
}

func NewSubscriberRepository(db *gorm.DB, logger logger.Interface) subscriber.Repository {
	return &SubscriberRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriberMapper(),
		logger: logger,
	}
}

func (r *SubscriberRepositoryImpl) Create(ctx context.Context, s *subscriber.Subscriber) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ToModel(s)).Error; err != nil {
		r.logger.Errorw("failed to create subscriber", "error", err, "subscriber_id", s.ID())
		return fmt.Errorf("failed to create subscriber: %w", err)
	}
	return nil
}

func (r *SubscriberRepositoryImpl) GetByID(ctx context.Context, id string) (*subscriber.Subscriber, error) {
	var model models.SubscriberModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscriber by ID", "error", err, "subscriber_id", id)
		return nil, fmt.Errorf("failed to get subscriber: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

// Update writes every mutable column, including the deleted flag.
func (r *SubscriberRepositoryImpl) Update(ctx context.Context, s *subscriber.Subscriber) error {
	model := r.mapper.ToModel(s)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.SubscriberModel{}).
		Where("id = ?", s.ID()).
		Updates(map[string]interface{}{
			"name":                model.Name,
			"registration_number": model.RegistrationNumber,
			"address":             model.Address,
			"city_town":           model.CityTown,
			"district":            model.District,
			"state":               model.State,
			"pincode":             model.Pincode,
			"phone":               model.Phone,
			"email":               model.Email,
			"category_id":         model.CategoryID,
			"type_id":             model.TypeID,
			"notes":               model.Notes,
			"is_deleted":          model.IsDeleted,
			"updated_at":          model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscriber", "error", result.Error, "subscriber_id", s.ID())
		return fmt.Errorf("failed to update subscriber: %w", result.Error)
	}
	return nil
}

func (r *SubscriberRepositoryImpl) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.SubscriberModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check subscriber existence: %w", err)
	}
	return count > 0, nil
}

func (r *SubscriberRepositoryImpl) List(ctx context.Context, filter subscriber.ListFilter) ([]*subscriber.Subscriber, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.SubscriberModel{}).
		Scopes(db.NameContains("name", filter.Search))
	if filter.IsDeleted != nil {
		query = query.Where("is_deleted = ?", *filter.IsDeleted)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.TypeID != "" {
		query = query.Where("type_id = ?", filter.TypeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count subscribers", "error", err)
		return nil, 0, fmt.Errorf("failed to count subscribers: %w", err)
	}

	var rows []*models.SubscriberModel
	if err := query.Order("name ASC, id ASC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list subscribers", "error", err)
		return nil, 0, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return r.mapper.ToEntities(rows), total, nil
}

func (r *SubscriberRepositoryImpl) ListForReport(ctx context.Context) ([]*subscriber.Subscriber, error) {
	var rows []*models.SubscriberModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.NotDeleted()).
		Order("name ASC, id ASC").
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list subscribers for report", "error", err)
		return nil, fmt.Errorf("failed to list subscribers for report: %w", err)
	}
	return r.mapper.ToEntities(rows), nil
}
