package plan

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcworld/magadmin/internal/shared/errors"
)

func nowUTC() time.Time { return time.Now().UTC() }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(i int) *int { return &i }

func validParams() Params {
	return Params{
		ID:               "P1",
		Version:          "v1",
		Price:            decimal.NewFromInt(200),
		LanguageID:       "L",
		ModeID:           "M",
		DurationInMonths: 6,
	}
}

func TestNewPlan(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(p *Params)
		wantFields []string
	}{
		{"valid", func(p *Params) {}, nil},
		{"zero price", func(p *Params) { p.Price = decimal.Zero }, []string{"subscription_price"}},
		{"negative price", func(p *Params) { p.Price = decimal.NewFromInt(-50) }, []string{"subscription_price"}},
		{"zero duration", func(p *Params) { p.DurationInMonths = 0 }, []string{"duration_in_months"}},
		{"both invalid are reported together", func(p *Params) {
			p.Price = decimal.NewFromInt(-1)
			p.DurationInMonths = -3
		}, []string{"subscription_price", "duration_in_months"}},
		{"missing id and references", func(p *Params) {
			p.ID = ""
			p.LanguageID = ""
			p.ModeID = ""
		}, []string{"_id", "subscription_language", "subscription_mode"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			got, err := NewPlan(p)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				assert.Equal(t, "v1", got.Version())
				return
			}
			verrs := errors.GetValidationErrors(err)
			require.NotNil(t, verrs)
			for _, f := range tt.wantFields {
				assert.True(t, verrs.Has(f), "expected error on %s, got %s", f, verrs.Error())
			}
		})
	}
}

func TestCheckPrice(t *testing.T) {
	tests := []struct {
		price   *decimal.Decimal
		wantMsg string
	}{
		{nil, errors.MsgRequired},
		{decPtr("0"), MsgPriceNotPositive},
		{decPtr("-0.01"), MsgPriceNotPositive},
		{decPtr("0.01"), ""},
		{decPtr("200.50"), ""},
		{decPtr("99999999.99"), ""},
		{decPtr("200.505"), "Ensure that there are no more than 2 decimal places."},
		{decPtr("12345678901"), "Ensure that there are no more than 10 digits in total."},
		{decPtr("123456789.5"), "Ensure that there are no more than 8 digits before the decimal point."},
	}

	for _, tt := range tests {
		verrs := errors.NewValidationErrors()
		CheckPrice(verrs, tt.price)
		if tt.wantMsg == "" {
			assert.True(t, verrs.Empty(), verrs.Error())
			continue
		}
		assert.Equal(t, []string{tt.wantMsg}, verrs.Messages("subscription_price"))
	}
}

func TestCheckDuration(t *testing.T) {
	verrs := errors.NewValidationErrors()
	CheckDuration(verrs, intPtr(0))
	CheckDuration(verrs, intPtr(1))
	CheckDuration(verrs, nil)
	assert.Equal(t, []string{MsgDurationNotPositive, errors.MsgRequired}, verrs.Messages("duration_in_months"))
}

func TestParseStartDate(t *testing.T) {
	verrs := errors.NewValidationErrors()
	raw := "2024-01-01"
	got := ParseStartDate(verrs, &raw)
	require.NotNil(t, got)
	assert.True(t, verrs.Empty())

	bad := "01/01/2024"
	assert.Nil(t, ParseStartDate(verrs, &bad))
	assert.Equal(t, []string{MsgDateFormat}, verrs.Messages("start_date"))

	assert.Nil(t, ParseStartDate(verrs, nil))
}

func TestPlan_Apply(t *testing.T) {
	siblings := []*Plan{sibling("P0", "v1", "200"), sibling("P9", "v2", "300")}

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		p, err := NewPlan(validParams())
		require.NoError(t, err)

		require.NoError(t, p.Apply(Changes{Name: strPtr("Annual")}, siblings))
		assert.Equal(t, "Annual", p.Name())
		assert.Equal(t, 6, p.DurationInMonths())
		assert.Equal(t, "v1", p.Version())
	})

	t.Run("price change moves to the matching tier", func(t *testing.T) {
		p, err := NewPlan(validParams())
		require.NoError(t, err)

		require.NoError(t, p.Apply(Changes{Price: decPtr("300")}, siblings))
		assert.True(t, p.Price().Equal(decimal.NewFromInt(300)))
		assert.Equal(t, "v2", p.Version())
	})

	t.Run("price change to a new price opens a tier", func(t *testing.T) {
		p, err := NewPlan(validParams())
		require.NoError(t, err)

		require.NoError(t, p.Apply(Changes{Price: decPtr("150")}, siblings))
		assert.Equal(t, "v3", p.Version())
	})

	t.Run("invalid values leave the plan untouched", func(t *testing.T) {
		p, err := NewPlan(validParams())
		require.NoError(t, err)

		err = p.Apply(Changes{Price: decPtr("-1"), DurationInMonths: intPtr(0), Name: strPtr("ignored")}, siblings)
		verrs := errors.GetValidationErrors(err)
		require.NotNil(t, verrs)
		assert.True(t, verrs.Has("subscription_price"))
		assert.True(t, verrs.Has("duration_in_months"))
		assert.Equal(t, "", p.Name())
		assert.True(t, p.Price().Equal(decimal.NewFromInt(200)))
	})

	t.Run("same price with other scale keeps version", func(t *testing.T) {
		p, err := NewPlan(validParams())
		require.NoError(t, err)

		require.NoError(t, p.Apply(Changes{Price: decPtr("200.00")}, siblings))
		assert.Equal(t, "v1", p.Version())
	})
}

func strPtr(s string) *string { return &s }
