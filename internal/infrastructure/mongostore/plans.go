package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/tcworld/magadmin/internal/domain/plan"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

type PlanRepository struct {
	coll   *mongo.Collection
	logger logger.Interface
}

func NewPlanRepository(db *mongo.Database, logger logger.Interface) plan.Repository {
	return &PlanRepository{coll: db.Collection(CollectionPlans), logger: logger}
}

func (r *PlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	doc, err := toPlanDocument(p)
	if err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		r.logger.Errorw("failed to insert plan", "plan_id", p.ID(), "error", err)
		return fmt.Errorf("failed to create subscription plan: %w", err)
	}
	return nil
}

func (r *PlanRepository) GetByID(ctx context.Context, id string) (*plan.Plan, error) {
	doc, err := findOne[planDocument](ctx, r.coll, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription plan: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	return doc.entity()
}

func (r *PlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	doc, err := toPlanDocument(p)
	if err != nil {
		return err
	}
	return replaceByID(ctx, r.coll, p.ID(), doc)
}

func (r *PlanRepository) Delete(ctx context.Context, id string) error {
	deleted, err := deleteByID(ctx, r.coll, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.NewNotFoundError("Subscription plan not found")
	}
	return nil
}

func (r *PlanRepository) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.coll, id)
}

func (r *PlanRepository) List(ctx context.Context, filter plan.ListFilter) ([]*plan.Plan, int64, error) {
	query := bson.D{}
	if filter.LanguageID != "" {
		query = append(query, bson.E{Key: "subscription_language", Value: filter.LanguageID})
	}
	if filter.ModeID != "" {
		query = append(query, bson.E{Key: "subscription_mode", Value: filter.ModeID})
	}
	sort := bson.D{{Key: "subscription_language", Value: 1}, {Key: "subscription_mode", Value: 1}, {Key: "_id", Value: 1}}
	docs, total, err := findPage[planDocument](ctx, r.coll, query, sort, filter.Page, filter.PageSize)
	if err != nil {
		return nil, 0, err
	}
	plans, err := planEntities(docs)
	if err != nil {
		return nil, 0, err
	}
	return plans, total, nil
}

func (r *PlanRepository) ListByIdentity(ctx context.Context, languageID, modeID string) ([]*plan.Plan, error) {
	docs, err := findAll[planDocument](ctx, r.coll, bson.D{
		{Key: "subscription_language", Value: languageID},
		{Key: "subscription_mode", Value: modeID},
	})
	if err != nil {
		return nil, err
	}
	return planEntities(docs)
}

func planEntities(docs []planDocument) ([]*plan.Plan, error) {
	out := make([]*plan.Plan, 0, len(docs))
	for _, d := range docs {
		p, err := d.entity()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
