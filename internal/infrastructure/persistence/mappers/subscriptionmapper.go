package mappers

import (
	"time"

	"gorm.io/datatypes"

	"github.com/tcworld/magadmin/internal/domain/plan"
	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/domain/shared/ref"
	"github.com/tcworld/magadmin/internal/domain/subscriber"
	"github.com/tcworld/magadmin/internal/domain/subscription"
	"github.com/tcworld/magadmin/internal/infrastructure/persistence/models"
	"github.com/tcworld/magadmin/internal/shared/dates"
)

// SubscriptionMapper handles the conversion between domain entities and persistence models.
// Loaded subscriptions carry unresolved references.
type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) *subscription.Subscription
	ToModel(entity *subscription.Subscription) *models.SubscriptionModel
	ToEntities(models []*models.SubscriptionModel) []*subscription.Subscription
}

type subscriptionMapper struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &subscriptionMapper{}
}

func (m *subscriptionMapper) ToEntity(model *models.SubscriptionModel) *subscription.Subscription {
	if model == nil {
		return nil
	}
	return subscription.ReconstructSubscription(subscription.Params{
		ID:            model.ID,
		Subscriber:    ref.ID[subscriber.Subscriber](model.SubscriberID),
		Plan:          ref.ID[plan.Plan](model.PlanID),
		PaymentMode:   ref.ID[reference.Entity](model.PaymentModeID),
		StartDate:     time.Time(model.StartDate),
		EndDate:       fromDate(model.EndDate),
		PaymentStatus: model.PaymentStatus,
		Active:        model.Active,
	}, model.CreatedAt, model.UpdatedAt)
}

func (m *subscriptionMapper) ToModel(entity *subscription.Subscription) *models.SubscriptionModel {
	if entity == nil {
		return nil
	}
	return &models.SubscriptionModel{
		ID:            entity.ID(),
		SubscriberID:  entity.Subscriber().ID(),
		PlanID:        entity.Plan().ID(),
		PaymentModeID: entity.PaymentMode().ID(),
		StartDate:     datatypes.Date(dates.Truncate(entity.StartDate())),
		EndDate:       toDate(entity.EndDate()),
		PaymentStatus: entity.PaymentStatus(),
		Active:        entity.IsActive(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

func (m *subscriptionMapper) ToEntities(rows []*models.SubscriptionModel) []*subscription.Subscription {
	entities := make([]*subscription.Subscription, 0, len(rows))
	for _, row := range rows {
		entities = append(entities, m.ToEntity(row))
	}
	return entities
}
