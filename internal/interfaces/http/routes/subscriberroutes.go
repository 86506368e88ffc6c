package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tcworld/magadmin/internal/infrastructure/permission"
	"github.com/tcworld/magadmin/internal/interfaces/http/handlers"
	"github.com/tcworld/magadmin/internal/interfaces/http/middleware"
)

// SubscriberRouteConfig holds dependencies for subscriber and report routes.
type SubscriberRouteConfig struct {
	Handler              *handlers.SubscriberHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupSubscriberRoutes configures subscriber routes.
func SetupSubscriberRoutes(api *gin.RouterGroup, cfg *SubscriberRouteConfig) {
	perm := cfg.PermissionMiddleware
	res := permission.ResourceSubscriber

	subscribers := api.Group("/subscribers")
	{
		subscribers.POST("", perm.RequirePermission(res, permission.ActionCreate), cfg.Handler.CreateSubscriber)
		subscribers.GET("", perm.RequirePermission(res, permission.ActionRead), cfg.Handler.ListSubscribers)

		// Report endpoints (must come BEFORE /:id to avoid conflicts)
		report := subscribers.Group("/report")
		{
			report.GET("", perm.RequirePermission(permission.ResourceReport, permission.ActionRead), cfg.Handler.Report)
			report.GET("/pdf", perm.RequirePermission(permission.ResourceReport, permission.ActionRead), cfg.Handler.ReportPDF)
			report.GET("/pdf/sample", perm.RequirePermission(permission.ResourceReport, permission.ActionRead), cfg.Handler.SampleReportPDF)
			report.POST("/email", perm.RequirePermission(permission.ResourceReport, permission.ActionSend), cfg.Handler.EmailReport)
		}

		subscribers.GET("/:id", perm.RequirePermission(res, permission.ActionRead), cfg.Handler.GetSubscriber)
		subscribers.PATCH("/:id", perm.RequirePermission(res, permission.ActionUpdate), cfg.Handler.UpdateSubscriber)
		subscribers.DELETE("/:id", perm.RequirePermission(res, permission.ActionDelete), cfg.Handler.DeleteSubscriber)
		subscribers.POST("/:id/activate", perm.RequirePermission(res, permission.ActionUpdate), cfg.Handler.ActivateSubscriber)
	}
}
