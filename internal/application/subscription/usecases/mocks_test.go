package usecases

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tcworld/magadmin/internal/domain/plan"
	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/domain/subscriber"
	"github.com/tcworld/magadmin/internal/domain/subscription"
)

type memorySubscriptionRepository struct {
	subs map[string]*subscription.Subscription
}

func newMemorySubscriptionRepository() *memorySubscriptionRepository {
	return &memorySubscriptionRepository{subs: make(map[string]*subscription.Subscription)}
}

func (r *memorySubscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) error {
	r.subs[s.ID()] = s
	return nil
}

func (r *memorySubscriptionRepository) GetByID(ctx context.Context, id string) (*subscription.Subscription, error) {
	return r.subs[id], nil
}

func (r *memorySubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	r.subs[s.ID()] = s
	return nil
}

func (r *memorySubscriptionRepository) Delete(ctx context.Context, id string) error {
	delete(r.subs, id)
	return nil
}

func (r *memorySubscriptionRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.subs[id]
	return ok, nil
}

func (r *memorySubscriptionRepository) List(ctx context.Context, filter subscription.ListFilter) ([]*subscription.Subscription, int64, error) {
	var out []*subscription.Subscription
	for _, s := range r.sorted() {
		if filter.SubscriberID != "" && s.Subscriber().ID() != filter.SubscriberID {
			continue
		}
		if filter.PlanID != "" && s.Plan().ID() != filter.PlanID {
			continue
		}
		if filter.Active != nil && s.IsActive() != *filter.Active {
			continue
		}
		out = append(out, s)
	}
	return out, int64(len(out)), nil
}

func (r *memorySubscriptionRepository) ListBySubscriber(ctx context.Context, subscriberID string) ([]*subscription.Subscription, error) {
	out, _, err := r.List(ctx, subscription.ListFilter{SubscriberID: subscriberID})
	return out, err
}

func (r *memorySubscriptionRepository) ListBySubscribers(ctx context.Context, ids []string) ([]*subscription.Subscription, error) {
	var out []*subscription.Subscription
	for _, id := range ids {
		own, _ := r.ListBySubscriber(ctx, id)
		out = append(out, own...)
	}
	return out, nil
}

func (r *memorySubscriptionRepository) CountByPlanID(ctx context.Context, planID string) (int64, error) {
	_, n, err := r.List(ctx, subscription.ListFilter{PlanID: planID})
	return n, err
}

func (r *memorySubscriptionRepository) sorted() []*subscription.Subscription {
	out := make([]*subscription.Subscription, 0, len(r.subs))
	for _, s := range r.subs {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

type subscriberLookupStub struct {
	subscriber.Repository
}

func (subscriberLookupStub) GetByID(ctx context.Context, id string) (*subscriber.Subscriber, error) {
	if id != "S1" && id != "S2" {
		return nil, nil
	}
	return subscriber.ReconstructSubscriber(subscriber.Params{ID: id, Name: id, CategoryID: "C", TypeID: "T"}, false, time.Now(), time.Now()), nil
}

type planLookupStub struct {
	plan.Repository
}

func (planLookupStub) GetByID(ctx context.Context, id string) (*plan.Plan, error) {
	if id != "P1" && id != "P2" {
		return nil, nil
	}
	return plan.ReconstructPlan(plan.Params{
		ID:               id,
		Version:          "v1",
		Price:            decimal.NewFromInt(200),
		LanguageID:       "TA",
		ModeID:           "PRINT",
		DurationInMonths: 12,
	}, time.Now(), time.Now()), nil
}

type paymentModeStub struct {
	reference.Repository
}

func (paymentModeStub) GetByID(ctx context.Context, kind reference.Kind, id string) (*reference.Entity, error) {
	if kind != reference.KindPaymentMode || (id != "CASH" && id != "UPI") {
		return nil, nil
	}
	return reference.ReconstructEntity(kind, id, id, time.Now(), time.Now()), nil
}
