package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tcworld/magadmin/internal/infrastructure/permission"
	"github.com/tcworld/magadmin/internal/interfaces/http/handlers"
	"github.com/tcworld/magadmin/internal/interfaces/http/middleware"
)

// SubscriptionRouteConfig holds dependencies for subscription routes.
type SubscriptionRouteConfig struct {
	Handler              *handlers.SubscriptionHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupSubscriptionRoutes configures subscription routes.
func SetupSubscriptionRoutes(api *gin.RouterGroup, cfg *SubscriptionRouteConfig) {
	perm := cfg.PermissionMiddleware
	res := permission.ResourceSubscription

	subscriptions := api.Group("/subscriptions")
	{
		subscriptions.POST("", perm.RequirePermission(res, permission.ActionCreate), cfg.Handler.CreateSubscription)
		subscriptions.GET("", perm.RequirePermission(res, permission.ActionRead), cfg.Handler.ListSubscriptions)
		subscriptions.GET("/by-subscriber/:subscriberId", perm.RequirePermission(res, permission.ActionRead), cfg.Handler.ListBySubscriber)
		subscriptions.GET("/:id", perm.RequirePermission(res, permission.ActionRead), cfg.Handler.GetSubscription)
		subscriptions.PATCH("/:id", perm.RequirePermission(res, permission.ActionUpdate), cfg.Handler.UpdateSubscription)
		subscriptions.DELETE("/:id", perm.RequirePermission(res, permission.ActionDelete), cfg.Handler.DeleteSubscription)
	}
}
