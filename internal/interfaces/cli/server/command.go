package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/tcworld/magadmin/internal/infrastructure/config"
	"github.com/tcworld/magadmin/internal/infrastructure/database"
	"github.com/tcworld/magadmin/internal/infrastructure/migration"
	"github.com/tcworld/magadmin/internal/interfaces/cli/clienv"
	httpRouter "github.com/tcworld/magadmin/internal/interfaces/http"
	"github.com/tcworld/magadmin/internal/interfaces/http/handlers"
	sharedConfig "github.com/tcworld/magadmin/internal/shared/config"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

var (
	env         string
	configPath  string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the magazine subscription admin HTTP server with specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, log, err := clienv.Init(env, configPath)
	if err != nil {
		return err
	}

	log.Infow("starting server",
		"environment", env,
		"driver", cfg.Database.Driver,
		"auto-migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	stores, err := clienv.OpenStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer stores.Close(log)

	if err := handleMigrations(cfg, stores, log); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	redisClient := clienv.NewRedisClient(&cfg.Redis)
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		// Sessions need redis; the server still starts so /health can report it.
		log.Warnw("redis is not reachable", "addr", cfg.Redis.GetAddr(), "error", err)
	}

	checks := map[string]handlers.HealthCheck{
		"redis": func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
	}
	if stores.DB != nil {
		checks["database"] = func(ctx context.Context) error {
			sqlDB, err := stores.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
	} else {
		checks["database"] = database.MongoHealthcheck(stores.MongoClient)
	}

	container, err := httpRouter.NewContainer(cfg, httpRouter.Infrastructure{
		DB:           stores.DB,
		Mongo:        stores.Mongo,
		Redis:        redisClient,
		HealthChecks: checks,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}

	router := httpRouter.NewRouter(container)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	log.Infow("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(cfg *config.Config, stores *clienv.Stores, log logger.Interface) error {
	if stores.DB == nil {
		return nil
	}

	if autoMigrate {
		if env == "production" {
			log.Warnw("auto-migration is enabled in production environment - this is not recommended!")
		}

		manager, err := migration.NewManager(cfg.Database.Driver, log)
		if err != nil {
			return err
		}
		return manager.Migrate(stores.DB)
	}

	if cfg.Database.Driver != sharedConfig.DriverMySQL {
		return nil
	}

	version, err := migration.NewGooseStrategy(log).GetVersion(stores.DB)
	if err != nil {
		log.Warnw("failed to check migration status", "error", err)
		return nil
	}
	log.Infow("current migration version", "version", version)
	return nil
}
