// Package dates handles calendar dates carried as YYYY-MM-DD on the wire.
package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/tcworld/magadmin/internal/shared/constants"
)

// Parse reads a YYYY-MM-DD date at midnight UTC.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(constants.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ParseOptional parses s when non-empty. An empty string yields nil.
func ParseOptional(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Format renders t as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(constants.DateLayout)
}

// FormatPtr renders t, or "" when nil.
func FormatPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return Format(*t)
}

// Truncate drops the clock part, keeping the calendar day in UTC.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day.
func Today() time.Time {
	return Truncate(time.Now())
}

// Equal compares two optional dates by calendar day.
func Equal(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Truncate(*a).Equal(Truncate(*b))
}
