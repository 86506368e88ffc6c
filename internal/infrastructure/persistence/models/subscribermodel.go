package models

import (
	"time"

	"github.com/tcworld/magadmin/internal/shared/constants"
)

// SubscriberModel represents the database persistence model for magazine subscribers
type SubscriberModel struct {
	ID                 string `gorm:"primaryKey;size:64"`
	Name               string `gorm:"not null;size:200;index:idx_subscriber_name"`
	RegistrationNumber string `gorm:"size:100"`
	Address            string `gorm:"type:text"`
	CityTown           string `gorm:"size:100"`
	District           string `gorm:"size:100"`
	State              string `gorm:"size:100"`
	Pincode            string `gorm:"size:20"`
	Phone              string `gorm:"size:30"`
	Email              string `gorm:"size:255"`
	CategoryID         string `gorm:"not null;size:64;index:idx_subscriber_category"`
	TypeID             string `gorm:"not null;size:64;index:idx_subscriber_type"`
	Notes              string `gorm:"type:text"`
	IsDeleted          bool   `gorm:"not null;default:false;index:idx_subscriber_deleted"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (SubscriberModel) TableName() string {
	return constants.TableSubscribers
}
