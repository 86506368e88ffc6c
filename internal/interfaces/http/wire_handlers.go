package http

import (
	"github.com/tcworld/magadmin/internal/interfaces/http/handlers"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	referenceHandler    *handlers.ReferenceHandler
	planHandler         *handlers.PlanHandler
	subscriberHandler   *handlers.SubscriberHandler
	subscriptionHandler *handlers.SubscriptionHandler
	authHandler         *handlers.AuthHandler
	adminUserHandler    *handlers.AdminUserHandler
	healthHandler       *handlers.HealthHandler
}

func newHandlers(ucs *allUseCases, checks map[string]handlers.HealthCheck, log logger.Interface) *allHandlers {
	return &allHandlers{
		referenceHandler: handlers.NewReferenceHandler(
			ucs.createReferenceUC,
			ucs.updateReferenceUC,
			ucs.getReferenceUC,
			ucs.listReferencesUC,
			ucs.deleteReferenceUC,
			log,
		),
		planHandler: handlers.NewPlanHandler(
			ucs.createPlanUC,
			ucs.updatePlanUC,
			ucs.getPlanUC,
			ucs.listPlansUC,
			ucs.deletePlanUC,
			log,
		),
		subscriberHandler: handlers.NewSubscriberHandler(
			ucs.createSubscriberUC,
			ucs.updateSubscriberUC,
			ucs.getSubscriberUC,
			ucs.listSubscribersUC,
			ucs.deleteSubscriberUC,
			ucs.activateSubscriberUC,
			ucs.reportUC,
			log,
		),
		subscriptionHandler: handlers.NewSubscriptionHandler(
			ucs.createSubscriptionUC,
			ucs.updateSubscriptionUC,
			ucs.getSubscriptionUC,
			ucs.listSubscriptionsUC,
			ucs.listBySubscriberUC,
			ucs.deleteSubscriptionUC,
			log,
		),
		authHandler:      handlers.NewAuthHandler(ucs.loginUC, ucs.logoutUC, log),
		adminUserHandler: handlers.NewAdminUserHandler(ucs.signupUC, ucs.getAdminUserUC, ucs.listAdminUsersUC, log),
		healthHandler:    handlers.NewHealthHandler(checks, log),
	}
}
