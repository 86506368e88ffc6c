package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/tcworld/magadmin/internal/shared/config"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the strategy matching the database driver.
func NewManager(driver string, log logger.Interface) (*Manager, error) {
	var strategy Strategy
	switch driver {
	case config.DriverMySQL:
		strategy = NewGooseStrategy(log)
	case config.DriverSQLite:
		strategy = NewAutoMigrateStrategy(log)
	default:
		return nil, fmt.Errorf("driver %q has no SQL migrations", driver)
	}
	return NewManagerWithStrategy(strategy, log), nil
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
