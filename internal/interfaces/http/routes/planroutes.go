package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tcworld/magadmin/internal/infrastructure/permission"
	"github.com/tcworld/magadmin/internal/interfaces/http/handlers"
	"github.com/tcworld/magadmin/internal/interfaces/http/middleware"
)

// PlanRouteConfig holds dependencies for plan routes.
type PlanRouteConfig struct {
	Handler              *handlers.PlanHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupPlanRoutes configures subscription plan routes.
func SetupPlanRoutes(api *gin.RouterGroup, cfg *PlanRouteConfig) {
	perm := cfg.PermissionMiddleware
	res := permission.ResourcePlan

	plans := api.Group("/plans")
	{
		plans.POST("", perm.RequirePermission(res, permission.ActionCreate), cfg.Handler.CreatePlan)
		plans.GET("", perm.RequirePermission(res, permission.ActionRead), cfg.Handler.ListPlans)
		plans.GET("/:id", perm.RequirePermission(res, permission.ActionRead), cfg.Handler.GetPlan)
		plans.PATCH("/:id", perm.RequirePermission(res, permission.ActionUpdate), cfg.Handler.UpdatePlan)
		plans.DELETE("/:id", perm.RequirePermission(res, permission.ActionDelete), cfg.Handler.DeletePlan)
	}
}
