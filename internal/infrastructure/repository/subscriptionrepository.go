package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tcworld/magadmin/internal/domain/subscription"
	"github.com/tcworld/magadmin/internal/infrastructure/persistence/mappers"
	"github.com/tcworld/magadmin/internal/infrastructure/persistence/models"
	"github.com/tcworld/magadmin/internal/shared/db"
	apperrors "github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) subscription.Repository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, s *subscription.Subscription) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ToModel(s)).Error; err != nil {
		r.logger.Errorw("failed to create subscription", "error", err, "subscription_id", s.ID())
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id string) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by ID", "error", err, "subscription_id", id)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, s *subscription.Subscription) error {
	model := r.mapper.ToModel(s)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.SubscriptionModel{}).
		Where("id = ?", s.ID()).
		Updates(map[string]interface{}{
			"subscriber_id":   model.SubscriberID,
			"plan_id":         model.PlanID,
			"payment_mode_id": model.PaymentModeID,
			"start_date":      model.StartDate,
			"end_date":        model.EndDate,
			"payment_status":  model.PaymentStatus,
			"active":          model.Active,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "error", result.Error, "subscription_id", s.ID())
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.SubscriptionModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete subscription", "error", result.Error, "subscription_id", id)
		return fmt.Errorf("failed to delete subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Subscription not found")
	}
	r.logger.Infow("subscription deleted", "subscription_id", id)
	return nil
}

func (r *SubscriptionRepositoryImpl) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.SubscriptionModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check subscription existence: %w", err)
	}
	return count > 0, nil
}

func (r *SubscriptionRepositoryImpl) List(ctx context.Context, filter subscription.ListFilter) ([]*subscription.Subscription, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.SubscriptionModel{})
	if filter.SubscriberID != "" {
		query = query.Where("subscriber_id = ?", filter.SubscriberID)
	}
	if filter.PlanID != "" {
		query = query.Where("plan_id = ?", filter.PlanID)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count subscriptions", "error", err)
		return nil, 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	var rows []*models.SubscriptionModel
	if err := query.Order("start_date DESC, id ASC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return r.mapper.ToEntities(rows), total, nil
}

func (r *SubscriptionRepositoryImpl) ListBySubscriber(ctx context.Context, subscriberID string) ([]*subscription.Subscription, error) {
	return r.ListBySubscribers(ctx, []string{subscriberID})
}

func (r *SubscriptionRepositoryImpl) ListBySubscribers(ctx context.Context, subscriberIDs []string) ([]*subscription.Subscription, error) {
	if len(subscriberIDs) == 0 {
		return []*subscription.Subscription{}, nil
	}
	var rows []*models.SubscriptionModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("subscriber_id IN ?", subscriberIDs).
		Order("start_date ASC, id ASC").
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list subscriptions by subscribers", "error", err, "count", len(subscriberIDs))
		return nil, fmt.Errorf("failed to list subscriptions by subscribers: %w", err)
	}
	return r.mapper.ToEntities(rows), nil
}

func (r *SubscriptionRepositoryImpl) CountByPlanID(ctx context.Context, planID string) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.SubscriptionModel{}).Where("plan_id = ?", planID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count subscriptions by plan: %w", err)
	}
	return count, nil
}
