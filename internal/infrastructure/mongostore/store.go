package mongostore

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tcworld/magadmin/internal/domain/reference"
)

// findOne decodes the document matching filter into T, or returns (nil, nil) when none does.
func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.D) (*T, error) {
	var doc T
	if err := coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

// findPage counts and fetches one page of documents matching filter.
func findPage[T any](ctx context.Context, coll *mongo.Collection, filter bson.D, sort bson.D, page, pageSize int) ([]T, int64, error) {
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count %s: %w", coll.Name(), err)
	}

	opts := options.Find().SetSort(sort)
	if pageSize > 0 {
		if page < 1 {
			page = 1
		}
		opts.SetSkip(int64((page - 1) * pageSize)).SetLimit(int64(pageSize))
	}
	docs, err := findAll[T](ctx, coll, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.D, opts ...options.Lister[options.FindOptions]) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", coll.Name(), err)
	}
	return docs, nil
}

func exists(ctx context.Context, coll *mongo.Collection, id string) (bool, error) {
	n, err := coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: id}}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", coll.Name(), err)
	}
	return n > 0, nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) (bool, error) {
	res, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return false, fmt.Errorf("failed to delete from %s: %w", coll.Name(), err)
	}
	return res.DeletedCount > 0, nil
}

func replaceByID(ctx context.Context, coll *mongo.Collection, id string, doc any) error {
	if _, err := coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: id}}, doc); err != nil {
		return fmt.Errorf("failed to update %s: %w", coll.Name(), err)
	}
	return nil
}

// containsFold is a case-insensitive substring match on field.
func containsFold(field, term string) bson.E {
	return bson.E{Key: field, Value: bson.D{
		{Key: "$regex", Value: regexp.QuoteMeta(term)},
		{Key: "$options", Value: "i"},
	}}
}

// EnsureIndexes creates the secondary indexes the repositories query by.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		CollectionPlans: {
			{Keys: bson.D{{Key: "subscription_language", Value: 1}, {Key: "subscription_mode", Value: 1}}},
		},
		CollectionSubscribers: {
			{Keys: bson.D{{Key: "name", Value: 1}}},
			{Keys: bson.D{{Key: "isDeleted", Value: 1}}},
		},
		CollectionSubscriptions: {
			{Keys: bson.D{{Key: "subscriber", Value: 1}}},
			{Keys: bson.D{{Key: "subscription_plan", Value: 1}}},
		},
		CollectionAdminUsers: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}
	for _, kind := range reference.Kinds {
		specs[referenceCollection(kind)] = []mongo.IndexModel{{Keys: bson.D{{Key: "name", Value: 1}}}}
	}

	for name, indexes := range specs {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}
	return nil
}
