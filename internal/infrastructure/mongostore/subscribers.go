package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tcworld/magadmin/internal/domain/subscriber"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

type SubscriberRepository struct {
	coll   *mongo.Collection
	logger logger.Interface
}

func NewSubscriberRepository(db *mongo.Database, logger logger.Interface) subscriber.Repository {
	return &SubscriberRepository{coll: db.Collection(CollectionSubscribers), logger: logger}
}

func (r *SubscriberRepository) Create(ctx context.Context, s *subscriber.Subscriber) error {
	if _, err := r.coll.InsertOne(ctx, toSubscriberDocument(s)); err != nil {
		r.logger.Errorw("failed to insert subscriber", "subscriber_id", s.ID(), "error", err)
		return fmt.Errorf("failed to create subscriber: %w", err)
	}
	return nil
}

func (r *SubscriberRepository) GetByID(ctx context.Context, id string) (*subscriber.Subscriber, error) {
	doc, err := findOne[subscriberDocument](ctx, r.coll, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return nil, fmt.Errorf("failed to get subscriber: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	return doc.entity(), nil
}

func (r *SubscriberRepository) Update(ctx context.Context, s *subscriber.Subscriber) error {
	return replaceByID(ctx, r.coll, s.ID(), toSubscriberDocument(s))
}

func (r *SubscriberRepository) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.coll, id)
}

func (r *SubscriberRepository) List(ctx context.Context, filter subscriber.ListFilter) ([]*subscriber.Subscriber, int64, error) {
	query := bson.D{}
	if filter.IsDeleted != nil {
		query = append(query, bson.E{Key: "isDeleted", Value: *filter.IsDeleted})
	}
	if filter.CategoryID != "" {
		query = append(query, bson.E{Key: "category", Value: filter.CategoryID})
	}
	if filter.TypeID != "" {
		query = append(query, bson.E{Key: "stype", Value: filter.TypeID})
	}
	if filter.Search != "" {
		query = append(query, containsFold("name", filter.Search))
	}
	docs, total, err := findPage[subscriberDocument](ctx, r.coll, query, byName, filter.Page, filter.PageSize)
	if err != nil {
		return nil, 0, err
	}
	return subscriberEntities(docs), total, nil
}

func (r *SubscriberRepository) ListForReport(ctx context.Context) ([]*subscriber.Subscriber, error) {
	docs, err := findAll[subscriberDocument](ctx, r.coll,
		bson.D{{Key: "isDeleted", Value: false}},
		options.Find().SetSort(byName))
	if err != nil {
		return nil, err
	}
	return subscriberEntities(docs), nil
}

var byName = bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}

func subscriberEntities(docs []subscriberDocument) []*subscriber.Subscriber {
	out := make([]*subscriber.Subscriber, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.entity())
	}
	return out
}
