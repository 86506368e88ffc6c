package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/infrastructure/permission"
	"github.com/tcworld/magadmin/internal/interfaces/http/handlers"
	"github.com/tcworld/magadmin/internal/interfaces/http/middleware"
)

// ReferenceRouteConfig holds dependencies for the registry routes.
type ReferenceRouteConfig struct {
	Handler              *handlers.ReferenceHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

// referencePaths maps each registry to its URL segment and policy resource.
var referencePaths = []struct {
	kind     reference.Kind
	path     string
	resource string
}{
	{reference.KindCategory, "/categories", permission.ResourceCategory},
	{reference.KindType, "/types", permission.ResourceType},
	{reference.KindLanguage, "/languages", permission.ResourceLanguage},
	{reference.KindMode, "/modes", permission.ResourceMode},
	{reference.KindPaymentMode, "/payment-modes", permission.ResourcePaymentMode},
}

// SetupReferenceRoutes registers the same CRUD set for every registry.
func SetupReferenceRoutes(api *gin.RouterGroup, cfg *ReferenceRouteConfig) {
	perm := cfg.PermissionMiddleware
	for _, rp := range referencePaths {
		g := api.Group(rp.path)
		{
			g.POST("", perm.RequirePermission(rp.resource, permission.ActionCreate), cfg.Handler.Create(rp.kind))
			g.GET("", perm.RequirePermission(rp.resource, permission.ActionRead), cfg.Handler.List(rp.kind))
			g.GET("/:id", perm.RequirePermission(rp.resource, permission.ActionRead), cfg.Handler.Get(rp.kind))
			g.PATCH("/:id", perm.RequirePermission(rp.resource, permission.ActionUpdate), cfg.Handler.Update(rp.kind))
			g.DELETE("/:id", perm.RequirePermission(rp.resource, permission.ActionDelete), cfg.Handler.Delete(rp.kind))
		}
	}
}
