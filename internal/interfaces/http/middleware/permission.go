package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tcworld/magadmin/internal/shared/constants"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
	"github.com/tcworld/magadmin/internal/shared/utils"
)

// Enforcer answers whether a role may perform an action on a resource.
type Enforcer interface {
	Enforce(role, resource, action string) (bool, error)
}

type PermissionMiddleware struct {
	enforcer Enforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer Enforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// RequirePermission must run after RequireAuth.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			utils.ErrorResponseWithError(c, errors.NewTokenMissingError())
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(string(principal.Role), resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "admin_id", principal.AdminID, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "admin_id", principal.AdminID, "role", principal.Role, "resource", resource, "action", action)
			utils.ErrorResponseWithError(c, errors.NewForbiddenError(constants.ErrMsgForbidden))
			c.Abort()
			return
		}

		c.Next()
	}
}
