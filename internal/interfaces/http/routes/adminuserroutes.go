package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tcworld/magadmin/internal/infrastructure/permission"
	"github.com/tcworld/magadmin/internal/interfaces/http/handlers"
	"github.com/tcworld/magadmin/internal/interfaces/http/middleware"
)

// AdminUserRouteConfig holds dependencies for admin account routes.
type AdminUserRouteConfig struct {
	Handler              *handlers.AdminUserHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminUserRoutes configures admin account routes. Only admins hold
// admin_user permissions.
func SetupAdminUserRoutes(api *gin.RouterGroup, cfg *AdminUserRouteConfig) {
	perm := cfg.PermissionMiddleware
	res := permission.ResourceAdminUser

	users := api.Group("/admin-users")
	{
		users.POST("", perm.RequirePermission(res, permission.ActionCreate), cfg.Handler.Signup)
		users.GET("", perm.RequirePermission(res, permission.ActionRead), cfg.Handler.ListAdminUsers)
		users.GET("/:id", perm.RequirePermission(res, permission.ActionRead), cfg.Handler.GetAdminUser)
	}
}
