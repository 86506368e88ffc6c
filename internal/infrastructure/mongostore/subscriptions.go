package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tcworld/magadmin/internal/domain/subscription"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

type SubscriptionRepository struct {
	coll   *mongo.Collection
	logger logger.Interface
}

func NewSubscriptionRepository(db *mongo.Database, logger logger.Interface) subscription.Repository {
	return &SubscriptionRepository{coll: db.Collection(CollectionSubscriptions), logger: logger}
}

func (r *SubscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) error {
	if _, err := r.coll.InsertOne(ctx, toSubscriptionDocument(s)); err != nil {
		r.logger.Errorw("failed to insert subscription", "subscription_id", s.ID(), "error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) GetByID(ctx context.Context, id string) (*subscription.Subscription, error) {
	doc, err := findOne[subscriptionDocument](ctx, r.coll, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	return doc.entity(), nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	return replaceByID(ctx, r.coll, s.ID(), toSubscriptionDocument(s))
}

func (r *SubscriptionRepository) Delete(ctx context.Context, id string) error {
	deleted, err := deleteByID(ctx, r.coll, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.NewNotFoundError("Subscription not found")
	}
	return nil
}

func (r *SubscriptionRepository) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.coll, id)
}

func (r *SubscriptionRepository) List(ctx context.Context, filter subscription.ListFilter) ([]*subscription.Subscription, int64, error) {
	query := bson.D{}
	if filter.SubscriberID != "" {
		query = append(query, bson.E{Key: "subscriber", Value: filter.SubscriberID})
	}
	if filter.PlanID != "" {
		query = append(query, bson.E{Key: "subscription_plan", Value: filter.PlanID})
	}
	if filter.Active != nil {
		query = append(query, bson.E{Key: "active", Value: *filter.Active})
	}
	sort := bson.D{{Key: "start_date", Value: -1}, {Key: "_id", Value: 1}}
	docs, total, err := findPage[subscriptionDocument](ctx, r.coll, query, sort, filter.Page, filter.PageSize)
	if err != nil {
		return nil, 0, err
	}
	return subscriptionEntities(docs), total, nil
}

func (r *SubscriptionRepository) ListBySubscriber(ctx context.Context, subscriberID string) ([]*subscription.Subscription, error) {
	return r.ListBySubscribers(ctx, []string{subscriberID})
}

func (r *SubscriptionRepository) ListBySubscribers(ctx context.Context, subscriberIDs []string) ([]*subscription.Subscription, error) {
	if len(subscriberIDs) == 0 {
		return []*subscription.Subscription{}, nil
	}
	docs, err := findAll[subscriptionDocument](ctx, r.coll,
		bson.D{{Key: "subscriber", Value: bson.D{{Key: "$in", Value: subscriberIDs}}}},
		options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	return subscriptionEntities(docs), nil
}

func (r *SubscriptionRepository) CountByPlanID(ctx context.Context, planID string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "subscription_plan", Value: planID}})
	if err != nil {
		return 0, fmt.Errorf("failed to count subscriptions by plan: %w", err)
	}
	return n, nil
}

func subscriptionEntities(docs []subscriptionDocument) []*subscription.Subscription {
	out := make([]*subscription.Subscription, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.entity())
	}
	return out
}
