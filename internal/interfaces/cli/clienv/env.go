// Package clienv holds the startup steps shared by the CLI commands.
package clienv

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"gorm.io/gorm"

	"github.com/tcworld/magadmin/internal/infrastructure/config"
	"github.com/tcworld/magadmin/internal/infrastructure/database"
	"github.com/tcworld/magadmin/internal/infrastructure/mongostore"
	sharedConfig "github.com/tcworld/magadmin/internal/shared/config"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

// Init loads configuration and sets up the process logger.
func Init(env, configPath string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = GinMode(env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logger.NewLogger(), nil
}

// Stores holds the opened data stores. Exactly one of DB and Mongo is set.
type Stores struct {
	DB          *gorm.DB
	MongoClient *mongo.Client
	Mongo       *mongo.Database
}

// OpenStores connects to the database selected by database.driver.
func OpenStores(ctx context.Context, cfg *config.Config, log logger.Interface) (*Stores, error) {
	if cfg.Database.Driver == sharedConfig.DriverMongoDB {
		client, db, err := database.OpenMongo(ctx, &cfg.Mongo)
		if err != nil {
			return nil, err
		}
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("failed to ensure mongo indexes: %w", err)
		}
		log.Infow("mongo indexes ensured", "database", cfg.Mongo.Database)
		return &Stores{MongoClient: client, Mongo: db}, nil
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return &Stores{DB: database.Get()}, nil
}

// Close releases every opened connection.
func (s *Stores) Close(log logger.Interface) {
	if s.MongoClient != nil {
		if err := s.MongoClient.Disconnect(context.Background()); err != nil {
			log.Warnw("failed to disconnect mongo", "error", err)
		}
	}
	if s.DB != nil {
		if err := database.Close(); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}
}

// NewRedisClient creates the client used for sessions and rate limiting.
func NewRedisClient(cfg *sharedConfig.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// GinMode maps an environment name to a gin mode.
func GinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
