package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tcworld/magadmin/internal/domain/admin"
	"github.com/tcworld/magadmin/internal/shared/constants"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
	"github.com/tcworld/magadmin/internal/shared/utils"
)

type AuthMiddleware struct {
	authenticator admin.Authenticator
	logger        logger.Interface
}

func NewAuthMiddleware(authenticator admin.Authenticator, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
		logger:        logger,
	}
}

// RequireAuth resolves the bearer token into a principal or rejects the
// request with 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		principal, err := m.authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.ShouldLogAuthError(err) {
				m.logger.Warnw("failed to authenticate request",
					"path", c.Request.URL.Path,
					"client_ip", c.ClientIP(),
					"error", err)
			}
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		SetPrincipal(c, principal)
		c.Next()
	}
}

// bearerToken reads "Authorization: Bearer <token>". The scheme is matched
// case-insensitively; "Token <token>" is accepted for older clients.
func bearerToken(c *gin.Context) (string, error) {
	header := strings.TrimSpace(c.GetHeader(constants.HeaderAuthorization))
	if header == "" {
		return "", errors.NewTokenMissingError()
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return "", errors.NewTokenInvalidError("token")
	}
	scheme := strings.ToLower(parts[0])
	if scheme != "bearer" && scheme != "token" {
		return "", errors.NewTokenInvalidError("token")
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.NewTokenMissingError()
	}
	return token, nil
}

// SetPrincipal stores the authenticated caller on the request context.
func SetPrincipal(c *gin.Context, p *admin.Principal) {
	c.Set(constants.ContextKeyPrincipal, p)
	c.Set(constants.ContextKeyAdminID, p.AdminID)
	c.Set(constants.ContextKeyRole, string(p.Role))
	c.Set(constants.ContextKeySessionID, p.SessionID)
}

// GetPrincipal returns the caller stored by RequireAuth.
func GetPrincipal(c *gin.Context) (*admin.Principal, bool) {
	v, ok := c.Get(constants.ContextKeyPrincipal)
	if !ok {
		return nil, false
	}
	p, ok := v.(*admin.Principal)
	return p, ok && p != nil
}
