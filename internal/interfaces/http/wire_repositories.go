package http

import (
	"go.mongodb.org/mongo-driver/v2/mongo"
	"gorm.io/gorm"

	"github.com/tcworld/magadmin/internal/domain/admin"
	"github.com/tcworld/magadmin/internal/domain/plan"
	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/domain/subscriber"
	"github.com/tcworld/magadmin/internal/domain/subscription"
	"github.com/tcworld/magadmin/internal/infrastructure/mongostore"
	"github.com/tcworld/magadmin/internal/infrastructure/repository"
	"github.com/tcworld/magadmin/internal/shared/db"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	referenceRepo    reference.Repository
	planRepo         plan.Repository
	subscriberRepo   subscriber.Repository
	subscriptionRepo subscription.Repository
	adminUserRepo    admin.Repository
	transactor       db.Transactor
}

// newRepositories picks the gorm backend when a relational handle is present
// and the document store otherwise.
func newRepositories(gormDB *gorm.DB, mongoDB *mongo.Database, log logger.Interface) *repositories {
	if gormDB != nil {
		return &repositories{
			referenceRepo:    repository.NewReferenceRepository(gormDB, log),
			planRepo:         repository.NewPlanRepository(gormDB, log),
			subscriberRepo:   repository.NewSubscriberRepository(gormDB, log),
			subscriptionRepo: repository.NewSubscriptionRepository(gormDB, log),
			adminUserRepo:    repository.NewAdminUserRepository(gormDB, log),
			transactor:       db.NewTransactionManager(gormDB),
		}
	}

	return &repositories{
		referenceRepo:    mongostore.NewReferenceRepository(mongoDB, log),
		planRepo:         mongostore.NewPlanRepository(mongoDB, log),
		subscriberRepo:   mongostore.NewSubscriberRepository(mongoDB, log),
		subscriptionRepo: mongostore.NewSubscriptionRepository(mongoDB, log),
		adminUserRepo:    mongostore.NewAdminUserRepository(mongoDB, log),
		transactor:       db.NoopTransactor{},
	}
}
