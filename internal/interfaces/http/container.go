package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"gorm.io/gorm"

	"github.com/tcworld/magadmin/internal/infrastructure/config"
	"github.com/tcworld/magadmin/internal/interfaces/http/handlers"
	"github.com/tcworld/magadmin/internal/interfaces/http/middleware"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

// Infrastructure carries the opened connections the container wires together.
// Exactly one of DB and Mongo is set, matching database.driver.
type Infrastructure struct {
	DB           *gorm.DB
	Mongo        *mongo.Database
	Redis        *redis.Client
	HealthChecks map[string]handlers.HealthCheck
}

// Container holds repositories, use cases, handlers and middlewares and is
// responsible for wiring everything together.
type Container struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface

	repos *repositories
	svcs  *infraServices
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	loginRateLimiter     *middleware.RateLimiter
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(cfg *config.Config, infra Infrastructure, log logger.Interface) (*Container, error) {
	if infra.DB == nil && infra.Mongo == nil {
		return nil, fmt.Errorf("no database handle provided")
	}

	svcs, err := newInfraServices(cfg, infra.DB, infra.Redis, log)
	if err != nil {
		return nil, err
	}

	c := &Container{
		engine: gin.New(),
		cfg:    cfg,
		log:    log,
		repos:  newRepositories(infra.DB, infra.Mongo, log),
		svcs:   svcs,
	}
	c.ucs = newUseCases(cfg, c.repos, c.svcs, log)
	c.hdlrs = newHandlers(c.ucs, infra.HealthChecks, log)

	c.authMiddleware = middleware.NewAuthMiddleware(svcs.authenticator, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(svcs.enforcer, log)
	c.loginRateLimiter = middleware.NewRateLimiter(infra.Redis, "login", cfg.Auth.LoginAttemptsPerMinute, time.Minute, log)

	return c, nil
}
