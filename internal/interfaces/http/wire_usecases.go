package http

import (
	adminUsecases "github.com/tcworld/magadmin/internal/application/admin/usecases"
	planUsecases "github.com/tcworld/magadmin/internal/application/plan/usecases"
	referenceUsecases "github.com/tcworld/magadmin/internal/application/reference/usecases"
	subscriberUsecases "github.com/tcworld/magadmin/internal/application/subscriber/usecases"
	subscriptionUsecases "github.com/tcworld/magadmin/internal/application/subscription/usecases"
	"github.com/tcworld/magadmin/internal/infrastructure/config"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Reference registries
	createReferenceUC *referenceUsecases.CreateReferenceUseCase
	updateReferenceUC *referenceUsecases.UpdateReferenceUseCase
	getReferenceUC    *referenceUsecases.GetReferenceUseCase
	listReferencesUC  *referenceUsecases.ListReferencesUseCase
	deleteReferenceUC *referenceUsecases.DeleteReferenceUseCase

	// Plan
	createPlanUC *planUsecases.CreatePlanUseCase
	updatePlanUC *planUsecases.UpdatePlanUseCase
	getPlanUC    *planUsecases.GetPlanUseCase
	listPlansUC  *planUsecases.ListPlansUseCase
	deletePlanUC *planUsecases.DeletePlanUseCase

	// Subscriber
	createSubscriberUC   *subscriberUsecases.CreateSubscriberUseCase
	updateSubscriberUC   *subscriberUsecases.UpdateSubscriberUseCase
	getSubscriberUC      *subscriberUsecases.GetSubscriberUseCase
	listSubscribersUC    *subscriberUsecases.ListSubscribersUseCase
	deleteSubscriberUC   *subscriberUsecases.DeleteSubscriberUseCase
	activateSubscriberUC *subscriberUsecases.ActivateSubscriberUseCase
	reportUC             *subscriberUsecases.ReportUseCase

	// Subscription
	createSubscriptionUC *subscriptionUsecases.CreateSubscriptionUseCase
	updateSubscriptionUC *subscriptionUsecases.UpdateSubscriptionUseCase
	getSubscriptionUC    *subscriptionUsecases.GetSubscriptionUseCase
	listSubscriptionsUC  *subscriptionUsecases.ListSubscriptionsUseCase
	listBySubscriberUC   *subscriptionUsecases.ListBySubscriberUseCase
	deleteSubscriptionUC *subscriptionUsecases.DeleteSubscriptionUseCase

	// Admin users & auth
	loginUC          *adminUsecases.LoginUseCase
	logoutUC         *adminUsecases.LogoutUseCase
	signupUC         *adminUsecases.SignupUseCase
	getAdminUserUC   *adminUsecases.GetAdminUserUseCase
	listAdminUsersUC *adminUsecases.ListAdminUsersUseCase
}

func newUseCases(cfg *config.Config, repos *repositories, svcs *infraServices, log logger.Interface) *allUseCases {
	ucs := &allUseCases{}

	ucs.createReferenceUC = referenceUsecases.NewCreateReferenceUseCase(repos.referenceRepo, log)
	ucs.updateReferenceUC = referenceUsecases.NewUpdateReferenceUseCase(repos.referenceRepo, log)
	ucs.getReferenceUC = referenceUsecases.NewGetReferenceUseCase(repos.referenceRepo, log)
	ucs.listReferencesUC = referenceUsecases.NewListReferencesUseCase(repos.referenceRepo, log)
	ucs.deleteReferenceUC = referenceUsecases.NewDeleteReferenceUseCase(repos.referenceRepo, log)

	ucs.createPlanUC = planUsecases.NewCreatePlanUseCase(repos.planRepo, repos.referenceRepo, log)
	ucs.updatePlanUC = planUsecases.NewUpdatePlanUseCase(repos.planRepo, log)
	ucs.getPlanUC = planUsecases.NewGetPlanUseCase(repos.planRepo, log)
	ucs.listPlansUC = planUsecases.NewListPlansUseCase(repos.planRepo, log)
	ucs.deletePlanUC = planUsecases.NewDeletePlanUseCase(repos.planRepo, repos.subscriptionRepo, repos.transactor, log)

	ucs.createSubscriberUC = subscriberUsecases.NewCreateSubscriberUseCase(repos.subscriberRepo, repos.referenceRepo, log)
	ucs.updateSubscriberUC = subscriberUsecases.NewUpdateSubscriberUseCase(repos.subscriberRepo, repos.referenceRepo, repos.subscriptionRepo, log)
	ucs.getSubscriberUC = subscriberUsecases.NewGetSubscriberUseCase(repos.subscriberRepo, repos.subscriptionRepo, svcs.notes, log)
	ucs.listSubscribersUC = subscriberUsecases.NewListSubscribersUseCase(repos.subscriberRepo, repos.subscriptionRepo, log)
	ucs.deleteSubscriberUC = subscriberUsecases.NewDeleteSubscriberUseCase(repos.subscriberRepo, log)
	ucs.activateSubscriberUC = subscriberUsecases.NewActivateSubscriberUseCase(repos.subscriberRepo, log)
	ucs.reportUC = subscriberUsecases.NewReportUseCase(
		repos.subscriberRepo,
		svcs.labels,
		svcs.mailer,
		cfg.Report.DefaultCharLimit,
		cfg.Report.FileName,
		log,
	)

	ucs.createSubscriptionUC = subscriptionUsecases.NewCreateSubscriptionUseCase(
		repos.subscriptionRepo, repos.subscriberRepo, repos.planRepo, repos.referenceRepo, log,
	)
	ucs.updateSubscriptionUC = subscriptionUsecases.NewUpdateSubscriptionUseCase(
		repos.subscriptionRepo, repos.subscriberRepo, repos.planRepo, repos.referenceRepo, log,
	)
	ucs.getSubscriptionUC = subscriptionUsecases.NewGetSubscriptionUseCase(repos.subscriptionRepo, log)
	ucs.listSubscriptionsUC = subscriptionUsecases.NewListSubscriptionsUseCase(repos.subscriptionRepo, log)
	ucs.listBySubscriberUC = subscriptionUsecases.NewListBySubscriberUseCase(repos.subscriptionRepo, log)
	ucs.deleteSubscriptionUC = subscriptionUsecases.NewDeleteSubscriptionUseCase(repos.subscriptionRepo, log)

	ucs.loginUC = adminUsecases.NewLoginUseCase(
		repos.adminUserRepo,
		svcs.hasher,
		svcs.sessions,
		svcs.jwtSvc,
		cfg.Auth.JWT.AccessTTL(),
		log,
	)
	ucs.logoutUC = adminUsecases.NewLogoutUseCase(svcs.sessions, log)
	ucs.signupUC = adminUsecases.NewSignupUseCase(repos.adminUserRepo, svcs.hasher, log)
	ucs.getAdminUserUC = adminUsecases.NewGetAdminUserUseCase(repos.adminUserRepo, log)
	ucs.listAdminUsersUC = adminUsecases.NewListAdminUsersUseCase(repos.adminUserRepo, log)

	return ucs
}
