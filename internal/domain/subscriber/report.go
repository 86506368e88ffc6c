package subscriber

import (
	"strings"
)

// DefaultCharLimit is the label width used when a report request gives none.
const DefaultCharLimit = 42

// ReportRow is one postal label line set.
type ReportRow struct {
	Name         string
	AddressLines []string
	City         string
	District     string
	State        string
	Pincode      string
	Phone        string
}

// AddressLine returns the i-th wrapped address line, or "" past the end.
func (r ReportRow) AddressLine(i int) string {
	if i < 0 || i >= len(r.AddressLines) {
		return ""
	}
	return r.AddressLines[i]
}

// NewReportRow wraps s's address to charLimit.
func NewReportRow(s *Subscriber, charLimit int) ReportRow {
	return ReportRow{
		Name:         s.name,
		AddressLines: SplitAddress(s.address, charLimit),
		City:         s.cityTown,
		District:     s.district,
		State:        s.state,
		Pincode:      s.pincode,
		Phone:        s.phone,
	}
}

// SplitAddress wraps address into lines of at most limit characters. Each cut
// falls on the last space inside the limit, or exactly at the limit when the
// text has none; both sides of a cut are trimmed.
func SplitAddress(address string, limit int) []string {
	if limit < 1 {
		limit = 1
	}
	rest := []rune(strings.TrimSpace(address))
	if len(rest) == 0 {
		return []string{}
	}

	var lines []string
	for len(rest) > limit {
		cut := lastSpace(rest[:limit])
		if cut <= 0 {
			cut = limit
		}
		lines = append(lines, strings.TrimSpace(string(rest[:cut])))
		rest = []rune(strings.TrimSpace(string(rest[cut:])))
	}
	return append(lines, string(rest))
}

func lastSpace(r []rune) int {
	for i := len(r) - 1; i >= 0; i-- {
		if r[i] == ' ' {
			return i
		}
	}
	return -1
}

// BuildReport produces one row per subscriber that is not deleted.
func BuildReport(subscribers []*Subscriber, charLimit int) []ReportRow {
	rows := make([]ReportRow, 0, len(subscribers))
	for _, s := range subscribers {
		if s == nil || s.IsDeleted() {
			continue
		}
		rows = append(rows, NewReportRow(s, charLimit))
	}
	return rows
}
