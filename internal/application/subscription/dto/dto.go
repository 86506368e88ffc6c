package dto

import (
	"github.com/tcworld/magadmin/internal/domain/subscription"
	"github.com/tcworld/magadmin/internal/shared/dates"
	"github.com/tcworld/magadmin/internal/shared/mapper"
)

type SubscriptionDTO struct {
	ID               string  `json:"_id"`
	Subscriber       string  `json:"subscriber"`
	SubscriptionPlan string  `json:"subscription_plan"`
	PaymentMode      string  `json:"payment_mode"`
	StartDate        string  `json:"start_date"`
	EndDate          *string `json:"end_date"`
	PaymentStatus    string  `json:"payment_status"`
	Active           bool    `json:"active"`
}

// CreateSubscriptionRequest is the body of a subscription create.
type CreateSubscriptionRequest struct {
	ID               string  `json:"_id"`
	Subscriber       string  `json:"subscriber"`
	SubscriptionPlan string  `json:"subscription_plan"`
	PaymentMode      string  `json:"payment_mode"`
	StartDate        *string `json:"start_date"`
	EndDate          *string `json:"end_date"`
	PaymentStatus    string  `json:"payment_status"`
	Active           *bool   `json:"active"`
}

// UpdateSubscriptionRequest is the body of a partial subscription update.
type UpdateSubscriptionRequest struct {
	Subscriber       *string `json:"subscriber"`
	SubscriptionPlan *string `json:"subscription_plan"`
	PaymentMode      *string `json:"payment_mode"`
	StartDate        *string `json:"start_date"`
	EndDate          *string `json:"end_date"`
	PaymentStatus    *string `json:"payment_status"`
	Active           *bool   `json:"active"`
}

func ToSubscriptionDTO(s *subscription.Subscription) *SubscriptionDTO {
	if s == nil {
		return nil
	}
	var end *string
	if s.EndDate() != nil {
		e := dates.Format(*s.EndDate())
		end = &e
	}
	return &SubscriptionDTO{
		ID:               s.ID(),
		Subscriber:       s.Subscriber().ID(),
		SubscriptionPlan: s.Plan().ID(),
		PaymentMode:      s.PaymentMode().ID(),
		StartDate:        dates.Format(s.StartDate()),
		EndDate:          end,
		PaymentStatus:    s.PaymentStatus(),
		Active:           s.IsActive(),
	}
}

// ToSubscriptionDTOList never returns nil so that empty lists encode as [].
func ToSubscriptionDTOList(subs []*subscription.Subscription) []*SubscriptionDTO {
	out := mapper.MapSlice(subs, ToSubscriptionDTO)
	if out == nil {
		out = []*SubscriptionDTO{}
	}
	return out
}
