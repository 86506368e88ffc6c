package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

type ReferenceRepository struct {
	db     *mongo.Database
	logger logger.Interface
}

func NewReferenceRepository(db *mongo.Database, logger logger.Interface) reference.Repository {
	return &ReferenceRepository{db: db, logger: logger}
}

func (r *ReferenceRepository) coll(kind reference.Kind) (*mongo.Collection, error) {
	name := referenceCollection(kind)
	if name == "" {
		return nil, fmt.Errorf("unknown reference kind %q", kind)
	}
	return r.db.Collection(name), nil
}

func (r *ReferenceRepository) Create(ctx context.Context, entity *reference.Entity) error {
	coll, err := r.coll(entity.Kind())
	if err != nil {
		return err
	}
	if _, err := coll.InsertOne(ctx, toReferenceDocument(entity)); err != nil {
		r.logger.Errorw("failed to insert reference", "kind", entity.Kind(), "id", entity.ID(), "error", err)
		return fmt.Errorf("failed to create %s: %w", entity.Kind(), err)
	}
	return nil
}

func (r *ReferenceRepository) GetByID(ctx context.Context, kind reference.Kind, id string) (*reference.Entity, error) {
	coll, err := r.coll(kind)
	if err != nil {
		return nil, err
	}
	doc, err := findOne[referenceDocument](ctx, coll, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", kind, err)
	}
	if doc == nil {
		return nil, nil
	}
	return doc.entity(kind), nil
}

func (r *ReferenceRepository) Update(ctx context.Context, entity *reference.Entity) error {
	coll, err := r.coll(entity.Kind())
	if err != nil {
		return err
	}
	return replaceByID(ctx, coll, entity.ID(), toReferenceDocument(entity))
}

func (r *ReferenceRepository) Delete(ctx context.Context, kind reference.Kind, id string) error {
	coll, err := r.coll(kind)
	if err != nil {
		return err
	}
	deleted, err := deleteByID(ctx, coll, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.NewNotFoundError(kind.NotFoundMessage())
	}
	return nil
}

func (r *ReferenceRepository) List(ctx context.Context, kind reference.Kind, filter reference.ListFilter) ([]*reference.Entity, int64, error) {
	coll, err := r.coll(kind)
	if err != nil {
		return nil, 0, err
	}
	query := bson.D{}
	if filter.Search != "" {
		query = append(query, containsFold("name", filter.Search))
	}
	docs, total, err := findPage[referenceDocument](ctx, coll, query, bson.D{{Key: "_id", Value: 1}}, filter.Page, filter.PageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*reference.Entity, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.entity(kind))
	}
	return out, total, nil
}

func (r *ReferenceRepository) Exists(ctx context.Context, kind reference.Kind, id string) (bool, error) {
	coll, err := r.coll(kind)
	if err != nil {
		return false, err
	}
	return exists(ctx, coll, id)
}
