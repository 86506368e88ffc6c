package mappers

import (
	"time"

	"gorm.io/datatypes"

	"github.com/tcworld/magadmin/internal/shared/dates"
)

func toDate(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := datatypes.Date(dates.Truncate(*t))
	return &d
}

func fromDate(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := dates.Truncate(time.Time(*d))
	return &t
}
