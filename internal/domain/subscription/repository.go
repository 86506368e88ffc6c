package subscription

import "context"

type Repository interface {
	Create(ctx context.Context, subscription *Subscription) error
	GetByID(ctx context.Context, id string) (*Subscription, error)
	Update(ctx context.Context, subscription *Subscription) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*Subscription, int64, error)

	ListBySubscriber(ctx context.Context, subscriberID string) ([]*Subscription, error)
	ListBySubscribers(ctx context.Context, subscriberIDs []string) ([]*Subscription, error)
	CountByPlanID(ctx context.Context, planID string) (int64, error)
}

// ListFilter represents filtering and pagination options for subscription list
type ListFilter struct {
	Page         int
	PageSize     int
	SubscriberID string
	PlanID       string
	Active       *bool
}
