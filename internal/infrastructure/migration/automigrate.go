package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.PlanModel{},
		&models.SubscriberModel{},
		&models.SubscriptionModel{},
		&models.AdminUserModel{},
	}
}

// AutoMigrate creates every table, one per registry kind plus the model tables.
func AutoMigrate(db *gorm.DB) error {
	for _, kind := range reference.Kinds {
		if err := db.Table(models.ReferenceTable(kind)).AutoMigrate(&models.ReferenceModel{}); err != nil {
			return fmt.Errorf("failed to migrate %s table: %w", kind, err)
		}
	}
	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to migrate models: %w", err)
	}
	return nil
}
