package models

import (
	"time"

	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/shared/constants"
)

// ReferenceModel is the row shape shared by every registry table.
// The table is chosen per kind with ReferenceTable.
type ReferenceModel struct {
	ID        string `gorm:"primaryKey;size:64"`
	Name      string `gorm:"not null;size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReferenceTable returns the table holding records of kind.
func ReferenceTable(kind reference.Kind) string {
	switch kind {
	case reference.KindCategory:
		return constants.TableCategories
	case reference.KindType:
		return constants.TableTypes
	case reference.KindLanguage:
		return constants.TableLanguages
	case reference.KindMode:
		return constants.TableModes
	case reference.KindPaymentMode:
		return constants.TablePaymentModes
	}
	return ""
}
