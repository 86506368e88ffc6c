package mongostore

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/tcworld/magadmin/internal/domain/admin"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

type AdminUserRepository struct {
	coll   *mongo.Collection
	logger logger.Interface
}

func NewAdminUserRepository(db *mongo.Database, logger logger.Interface) admin.Repository {
	return &AdminUserRepository{coll: db.Collection(CollectionAdminUsers), logger: logger}
}

func (r *AdminUserRepository) Create(ctx context.Context, u *admin.User) error {
	if _, err := r.coll.InsertOne(ctx, toAdminUserDocument(u)); err != nil {
		r.logger.Errorw("failed to insert admin user", "username", u.Username(), "error", err)
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}

func (r *AdminUserRepository) GetByID(ctx context.Context, id string) (*admin.User, error) {
	return r.first(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *AdminUserRepository) GetByUsername(ctx context.Context, username string) (*admin.User, error) {
	return r.first(ctx, bson.D{{Key: "username", Value: username}})
}

func (r *AdminUserRepository) first(ctx context.Context, filter bson.D) (*admin.User, error) {
	doc, err := findOne[adminUserDocument](ctx, r.coll, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	return doc.entity(), nil
}

func (r *AdminUserRepository) Update(ctx context.Context, u *admin.User) error {
	return replaceByID(ctx, r.coll, u.ID(), toAdminUserDocument(u))
}

func (r *AdminUserRepository) List(ctx context.Context, filter admin.ListFilter) ([]*admin.User, int64, error) {
	query := bson.D{}
	if filter.Role != "" {
		query = append(query, bson.E{Key: "role", Value: filter.Role})
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		query = append(query, bson.E{Key: "$or", Value: bson.A{
			bson.D{containsFold("username", term)},
			bson.D{containsFold("email", term)},
		}})
	}
	docs, total, err := findPage[adminUserDocument](ctx, r.coll, query, bson.D{{Key: "username", Value: 1}}, filter.Page, filter.PageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*admin.User, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.entity())
	}
	return out, total, nil
}

func (r *AdminUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "username", Value: username}},
		bson.D{{Key: "email", Value: strings.ToLower(email)}},
	}}})
	if err != nil {
		return false, fmt.Errorf("failed to check admin user existence: %w", err)
	}
	return n > 0, nil
}
