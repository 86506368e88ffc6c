package plan

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tcworld/magadmin/internal/shared/dates"
	"github.com/tcworld/magadmin/internal/shared/errors"
)

// Price storage limits.
const (
	MaxPriceDigits        = 10
	MaxPriceDecimalPlaces = 2
)

const (
	MsgDuplicateID         = "A plan with this ID already exists."
	MsgPriceNotPositive    = "Subscription price must be a positive number."
	MsgDurationNotPositive = "Duration in months must be greater than zero."
	MsgNotFound            = "SubscriptionPlan matching query does not exist."
	MsgDateFormat          = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	MsgImmutable           = "This field cannot be changed once the plan exists."
)

// CheckPrice records price problems on subscription_price. A nil price is a missing field.
func CheckPrice(verrs *errors.ValidationErrors, price *decimal.Decimal) {
	const field = "subscription_price"
	if price == nil {
		verrs.Add(field, errors.MsgRequired)
		return
	}
	if !price.IsPositive() {
		verrs.Add(field, MsgPriceNotPositive)
		return
	}

	digits, decimals := precision(*price)
	switch {
	case digits > MaxPriceDigits:
		verrs.Add(field, fmt.Sprintf("Ensure that there are no more than %d digits in total.", MaxPriceDigits))
	case decimals > MaxPriceDecimalPlaces:
		verrs.Add(field, fmt.Sprintf("Ensure that there are no more than %d decimal places.", MaxPriceDecimalPlaces))
	case digits-decimals > MaxPriceDigits-MaxPriceDecimalPlaces:
		verrs.Add(field, fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", MaxPriceDigits-MaxPriceDecimalPlaces))
	}
}

// precision counts total and fractional digits the way the value was written,
// so 200.000 has three decimal places.
func precision(d decimal.Decimal) (digits, decimals int) {
	coefficient := d.Coefficient()
	coefficient.Abs(coefficient)
	n := len(coefficient.String())

	exp := int(d.Exponent())
	if exp >= 0 {
		return n + exp, 0
	}
	decimals = -exp
	if decimals > n {
		return decimals, decimals
	}
	return n, decimals
}

// CheckDuration records duration problems on duration_in_months. A nil duration is a missing field.
func CheckDuration(verrs *errors.ValidationErrors, months *int) {
	const field = "duration_in_months"
	if months == nil {
		verrs.Add(field, errors.MsgRequired)
		return
	}
	if *months <= 0 {
		verrs.Add(field, MsgDurationNotPositive)
	}
}

// ParseStartDate parses an optional start_date, recording a field error when malformed.
func ParseStartDate(verrs *errors.ValidationErrors, raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	t, err := dates.ParseOptional(*raw)
	if err != nil {
		verrs.Add("start_date", MsgDateFormat)
		return nil
	}
	return t
}
