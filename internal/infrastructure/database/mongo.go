package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/tcworld/magadmin/internal/shared/config"
	appLogger "github.com/tcworld/magadmin/internal/shared/logger"
)

var ErrMongoHealthcheckFailed = errors.New("mongo healthcheck failed")

// OpenMongo connects to MongoDB and returns the configured database.
func OpenMongo(ctx context.Context, cfg *config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(
		options.Client().
			ApplyURI(cfg.URI).
			SetConnectTimeout(cfg.Timeout()).
			SetMaxPoolSize(cfg.MaxPoolSize).
			SetMinPoolSize(cfg.MinPoolSize).
			SetMaxConnIdleTime(time.Duration(cfg.MaxConnIdleTime) * time.Second),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	appLogger.Info("mongo connection established", "database", cfg.Database)
	return client, client.Database(cfg.Database), nil
}

// MongoHealthcheck pings the server.
func MongoHealthcheck(client *mongo.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx, nil); err != nil {
			return errors.Join(ErrMongoHealthcheckFailed, err)
		}
		return nil
	}
}
