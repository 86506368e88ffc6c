package subscriber

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nowUTC() time.Time { return time.Now().UTC() }

func TestSplitAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		limit   int
		want    []string
	}{
		{"short address is one line", "12 Temple Street", 42, []string{"12 Temple Street"}},
		{"empty address", "   ", 42, []string{}},
		{
			name:    "wraps on the last space inside the limit",
			address: "Door 14, Second Cross Street, Anna Nagar West Extension, Near Bus Depot",
			limit:   42,
			want:    []string{"Door 14, Second Cross Street, Anna Nagar", "West Extension, Near Bus Depot"},
		},
		{"hard cut without spaces", "ABCDEFGHIJ", 4, []string{"ABCD", "EFGH", "IJ"}},
		{"exact fit stays whole", "abcd efgh", 9, []string{"abcd efgh"}},
		{"space right after the limit", "abcd efgh", 4, []string{"abcd", "efgh"}},
		{"multi-byte characters count once", "தமிழ் நாடு சென்னை", 11, []string{"தமிழ் நாடு", "சென்னை"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitAddress(tt.address, tt.limit))
		})
	}
}

func TestSplitAddress_LinesNeverExceedLimit(t *testing.T) {
	address := strings.Repeat("Old Post Office Road ", 8) + "Pudukkottai"
	for _, limit := range []int{1, 5, 13, 42, 80} {
		lines := SplitAddress(address, limit)
		require.NotEmpty(t, lines)
		for _, l := range lines {
			assert.LessOrEqual(t, utf8.RuneCountInString(l), limit, "limit %d line %q", limit, l)
			assert.Equal(t, strings.TrimSpace(l), l)
		}
	}
}

func TestBuildReport(t *testing.T) {
	long := validParams()
	long.ID = "S2"
	long.Address = "Flat 3B, Lakshmi Apartments, 45 Gandhi Road, Near Railway Station"
	deleted := validParams()
	deleted.ID = "S3"

	subs := []*Subscriber{
		ReconstructSubscriber(validParams(), false, nowUTC(), nowUTC()),
		ReconstructSubscriber(long, false, nowUTC(), nowUTC()),
		ReconstructSubscriber(deleted, true, nowUTC(), nowUTC()),
	}

	rows := BuildReport(subs, DefaultCharLimit)
	require.Len(t, rows, 2)

	assert.Equal(t, "12 Temple Street", rows[0].AddressLine(0))
	assert.Equal(t, "", rows[0].AddressLine(1))

	require.GreaterOrEqual(t, len(rows[1].AddressLines), 2)
	for _, l := range rows[1].AddressLines {
		assert.LessOrEqual(t, utf8.RuneCountInString(l), DefaultCharLimit)
	}
	assert.Equal(t, "Flat 3B, Lakshmi Apartments, 45 Gandhi", rows[1].AddressLine(0))
	assert.Equal(t, "Road, Near Railway Station", rows[1].AddressLine(1))
	assert.Equal(t, "Madurai", rows[1].District)
}
