package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/tcworld/magadmin/internal/infrastructure/database"
	"github.com/tcworld/magadmin/internal/infrastructure/migration"
	"github.com/tcworld/magadmin/internal/interfaces/cli/clienv"
	sharedConfig "github.com/tcworld/magadmin/internal/shared/config"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

var (
	env        string
	configPath string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply pending migrations, roll back and check status.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

// initEnv opens the relational database. The document store keeps its
// schema in indexes created at startup, so it has nothing to migrate.
func initEnv() (string, logger.Interface, error) {
	cfg, log, err := clienv.Init(env, configPath)
	if err != nil {
		return "", nil, err
	}

	if cfg.Database.Driver == sharedConfig.DriverMongoDB {
		return "", nil, fmt.Errorf("driver %q has no SQL migrations", cfg.Database.Driver)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return "", nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg.Database.Driver, log, nil
}

func requireGoose(driver string) error {
	if driver != sharedConfig.DriverMySQL {
		return fmt.Errorf("versioned migrations are only supported for %s", sharedConfig.DriverMySQL)
	}
	return nil
}

func runUp(cmd *cobra.Command, args []string) error {
	driver, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env, "driver", driver)

	manager, err := migration.NewManager(driver, log)
	if err != nil {
		return err
	}
	return manager.Migrate(database.Get())
}

func runDown(cmd *cobra.Command, args []string) error {
	driver, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := requireGoose(driver); err != nil {
		return err
	}

	log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := migration.NewGooseStrategy(log).MigrateDown(database.Get(), steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	driver, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := requireGoose(driver); err != nil {
		return err
	}

	return printStatus(database.Get(), log)
}

func printStatus(db *gorm.DB, log logger.Interface) error {
	strategy := migration.NewGooseStrategy(log)

	version, err := strategy.GetVersion(db)
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Environment:     %s\n", env)
	fmt.Printf("  Current Version: %d\n", version)

	if err := strategy.Status(db); err != nil {
		log.Errorw("failed to get detailed status", "error", err)
		return fmt.Errorf("failed to get detailed status: %w", err)
	}
	return nil
}
