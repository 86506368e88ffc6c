package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tcworld/magadmin/internal/domain/plan"
	"github.com/tcworld/magadmin/internal/shared/dates"
	"github.com/tcworld/magadmin/internal/shared/mapper"
)

type PlanDTO struct {
	ID                   string  `json:"_id"`
	Version              string  `json:"version"`
	Name                 string  `json:"name"`
	StartDate            *string `json:"start_date"`
	SubscriptionPrice    string  `json:"subscription_price"`
	SubscriptionLanguage string  `json:"subscription_language"`
	SubscriptionMode     string  `json:"subscription_mode"`
	DurationInMonths     int     `json:"duration_in_months"`
}

// CreatePlanRequest is the body of a plan create. Pointer fields distinguish
// absent values from zero values.
type CreatePlanRequest struct {
	ID                   string           `json:"_id"`
	Version              string           `json:"version"`
	Name                 string           `json:"name"`
	StartDate            *string          `json:"start_date"`
	SubscriptionPrice    *decimal.Decimal `json:"subscription_price" swaggertype:"string"`
	SubscriptionLanguage string           `json:"subscription_language"`
	SubscriptionMode     string           `json:"subscription_mode"`
	DurationInMonths     *int             `json:"duration_in_months"`
}

// UpdatePlanRequest is the body of a partial plan update.
type UpdatePlanRequest struct {
	Name                 *string          `json:"name"`
	StartDate            *string          `json:"start_date"`
	SubscriptionPrice    *decimal.Decimal `json:"subscription_price" swaggertype:"string"`
	SubscriptionLanguage *string          `json:"subscription_language"`
	SubscriptionMode     *string          `json:"subscription_mode"`
	DurationInMonths     *int             `json:"duration_in_months"`
}

func ToPlanDTO(p *plan.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	var start *string
	if p.StartDate() != nil {
		s := dates.Format(*p.StartDate())
		start = &s
	}
	return &PlanDTO{
		ID:                   p.ID(),
		Version:              p.Version(),
		Name:                 p.Name(),
		StartDate:            start,
		SubscriptionPrice:    p.Price().StringFixed(plan.MaxPriceDecimalPlaces),
		SubscriptionLanguage: p.LanguageID(),
		SubscriptionMode:     p.ModeID(),
		DurationInMonths:     p.DurationInMonths(),
	}
}

func ToPlanDTOList(plans []*plan.Plan) []*PlanDTO {
	return mapper.MapSlice(plans, ToPlanDTO)
}
