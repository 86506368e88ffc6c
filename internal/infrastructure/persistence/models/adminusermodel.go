package models

import (
	"time"

	"github.com/tcworld/magadmin/internal/shared/constants"
)

// AdminUserModel represents the database persistence model for admin accounts
type AdminUserModel struct {
	ID           string `gorm:"primaryKey;size:36"`
	Username     string `gorm:"uniqueIndex;not null;size:150"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	FirstName    string `gorm:"size:100"`
	LastName     string `gorm:"size:100"`
	Aadhaar      string `gorm:"size:12"`
	Mobile       string `gorm:"size:15"`
	Role         string `gorm:"not null;size:20;default:staff"`
	PasswordHash string `gorm:"not null;size:255"`
	Active       bool   `gorm:"not null"`
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (AdminUserModel) TableName() string {
	return constants.TableAdminUsers
}
