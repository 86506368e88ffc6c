package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/tcworld/magadmin/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for subscriptions
// This is the anti-corruption layer between domain and database
type SubscriptionModel struct {
	ID            string          `gorm:"primaryKey;size:64"`
	SubscriberID  string          `gorm:"not null;size:64;index:idx_subscription_subscriber"`
	PlanID        string          `gorm:"not null;size:64;index:idx_subscription_plan"`
	PaymentModeID string          `gorm:"not null;size:64"`
	StartDate     datatypes.Date  `gorm:"type:date;not null"`
	EndDate       *datatypes.Date `gorm:"type:date"`
	PaymentStatus string          `gorm:"size:50"`
	Active        bool            `gorm:"not null;index:idx_subscription_active"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
