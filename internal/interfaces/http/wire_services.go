package http

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	adminUsecases "github.com/tcworld/magadmin/internal/application/admin/usecases"
	"github.com/tcworld/magadmin/internal/domain/admin"
	"github.com/tcworld/magadmin/internal/infrastructure/auth"
	"github.com/tcworld/magadmin/internal/infrastructure/cache"
	"github.com/tcworld/magadmin/internal/infrastructure/config"
	"github.com/tcworld/magadmin/internal/infrastructure/email"
	"github.com/tcworld/magadmin/internal/infrastructure/permission"
	"github.com/tcworld/magadmin/internal/infrastructure/report"
	"github.com/tcworld/magadmin/internal/shared/logger"
	"github.com/tcworld/magadmin/internal/shared/services/markdown"
)

// infraServices holds the infrastructure services behind use case ports.
type infraServices struct {
	hasher        *auth.BcryptPasswordHasher
	jwtSvc        *auth.JWTService
	sessions      admin.SessionStore
	authenticator admin.Authenticator
	enforcer      *permission.Enforcer
	labels        *report.LabelRenderer
	mailer        *email.SMTPReportMailer
	notes         markdown.Renderer
}

func newInfraServices(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client, log logger.Interface) (*infraServices, error) {
	enforcer, err := permission.NewEnforcer(gormDB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.InitPolicies(); err != nil {
		return nil, fmt.Errorf("failed to load default policies: %w", err)
	}

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer)
	sessions := cache.NewRedisSessionStore(redisClient, cache.DefaultSessionPrefix)

	return &infraServices{
		hasher:        auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		jwtSvc:        jwtSvc,
		sessions:      sessions,
		authenticator: adminUsecases.NewTokenAuthenticator(jwtSvc, sessions),
		enforcer:      enforcer,
		labels:        report.NewLabelRenderer(cfg.Report.FontFamily),
		mailer:        email.NewSMTPReportMailer(cfg.Email),
		notes:         markdown.NewNotesRenderer(),
	}, nil
}
