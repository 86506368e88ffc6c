package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/tcworld/magadmin/internal/interfaces/http/middleware"
	"github.com/tcworld/magadmin/internal/interfaces/http/routes"

	_ "github.com/tcworld/magadmin/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates the router over a wired container.
func NewRouter(c *Container) *Router {
	return &Router{Container: c}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.CustomLogger(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.hdlrs.healthHandler.Health)
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    r.hdlrs.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.loginRateLimiter,
	})

	protected := api.Group("")
	protected.Use(r.authMiddleware.RequireAuth())

	routes.SetupReferenceRoutes(protected, &routes.ReferenceRouteConfig{
		Handler:              r.hdlrs.referenceHandler,
		PermissionMiddleware: r.permissionMiddleware,
	})
	routes.SetupPlanRoutes(protected, &routes.PlanRouteConfig{
		Handler:              r.hdlrs.planHandler,
		PermissionMiddleware: r.permissionMiddleware,
	})
	routes.SetupSubscriberRoutes(protected, &routes.SubscriberRouteConfig{
		Handler:              r.hdlrs.subscriberHandler,
		PermissionMiddleware: r.permissionMiddleware,
	})
	routes.SetupSubscriptionRoutes(protected, &routes.SubscriptionRouteConfig{
		Handler:              r.hdlrs.subscriptionHandler,
		PermissionMiddleware: r.permissionMiddleware,
	})
	routes.SetupAdminUserRoutes(protected, &routes.AdminUserRouteConfig{
		Handler:              r.hdlrs.adminUserHandler,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
