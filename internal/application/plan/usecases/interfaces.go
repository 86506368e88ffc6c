package usecases

import "context"

// SubscriptionCounter reports how many subscriptions reference a plan.
type SubscriptionCounter interface {
	CountByPlanID(ctx context.Context, planID string) (int64, error)
}
