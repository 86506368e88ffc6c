package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/tcworld/magadmin/internal/shared/constants"
)

// PlanModel represents the database persistence model for subscription plans
// This is the anti-corruption layer between domain and database
type PlanModel struct {
	ID               string          `gorm:"primaryKey;size:64"`
	Version          string          `gorm:"not null;size:20"`
	Name             string          `gorm:"size:200"`
	StartDate        *datatypes.Date `gorm:"type:date"`
	Price            decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	LanguageID       string          `gorm:"not null;size:64;index:idx_plan_identity,priority:1"`
	ModeID           string          `gorm:"not null;size:64;index:idx_plan_identity,priority:2"`
	DurationInMonths int             `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}
