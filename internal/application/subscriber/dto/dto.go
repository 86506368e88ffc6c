package dto

import (
	subdto "github.com/tcworld/magadmin/internal/application/subscription/dto"
	"github.com/tcworld/magadmin/internal/domain/subscriber"
	"github.com/tcworld/magadmin/internal/domain/subscription"
)

type SubscriberDTO struct {
	ID                     string                    `json:"_id"`
	Name                   string                    `json:"name"`
	RegistrationNumber     string                    `json:"registration_number"`
	Address                string                    `json:"address"`
	CityTown               string                    `json:"city_town"`
	District               string                    `json:"district"`
	State                  string                    `json:"state"`
	Pincode                string                    `json:"pincode"`
	Phone                  string                    `json:"phone"`
	Email                  string                    `json:"email"`
	Category               string                    `json:"category"`
	Stype                  string                    `json:"stype"`
	Notes                  string                    `json:"notes"`
	NotesHTML              string                    `json:"notes_html,omitempty"`
	HasActiveSubscriptions bool                      `json:"hasActiveSubscriptions"`
	IsDeleted              bool                      `json:"isDeleted"`
	Subscriptions          []*subdto.SubscriptionDTO `json:"subscriptions"`
}

// CreateSubscriberRequest is the body of a subscriber create. Read-only
// fields such as hasActiveSubscriptions are not accepted.
type CreateSubscriberRequest struct {
	ID                 string  `json:"_id"`
	Name               *string `json:"name"`
	RegistrationNumber string  `json:"registration_number"`
	Address            string  `json:"address"`
	CityTown           string  `json:"city_town"`
	District           string  `json:"district"`
	State              string  `json:"state"`
	Pincode            string  `json:"pincode"`
	Phone              string  `json:"phone"`
	Email              string  `json:"email"`
	Category           string  `json:"category"`
	Stype              string  `json:"stype"`
	Notes              string  `json:"notes"`
}

// UpdateSubscriberRequest is the body of a partial subscriber update.
type UpdateSubscriberRequest struct {
	Name               *string `json:"name"`
	RegistrationNumber *string `json:"registration_number"`
	Address            *string `json:"address"`
	CityTown           *string `json:"city_town"`
	District           *string `json:"district"`
	State              *string `json:"state"`
	Pincode            *string `json:"pincode"`
	Phone              *string `json:"phone"`
	Email              *string `json:"email"`
	Category           *string `json:"category"`
	Stype              *string `json:"stype"`
	Notes              *string `json:"notes"`
}

// ReportRowDTO keeps the column names of the printed label report.
type ReportRowDTO struct {
	Name         string   `json:"Name"`
	AddressLine1 string   `json:"Address line 1"`
	AddressLine2 string   `json:"Address line 2"`
	AddressLines []string `json:"Address lines"`
	City         string   `json:"City"`
	District     string   `json:"District"`
	State        string   `json:"State"`
	Pincode      string   `json:"Pincode"`
	Phone        string   `json:"Phone Number"`
}

type SendReportRequest struct {
	Email     string `json:"email" binding:"required,email"`
	CharLimit *int   `json:"char_limit"`
}

// ToSubscriberDTO renders an aggregate. notesHTML is only set on single reads.
func ToSubscriberDTO(agg *subscription.SubscriberAggregate, notesHTML string) *SubscriberDTO {
	if agg == nil || agg.Subscriber == nil {
		return nil
	}
	s := agg.Subscriber
	return &SubscriberDTO{
		ID:                     s.ID(),
		Name:                   s.Name(),
		RegistrationNumber:     s.RegistrationNumber(),
		Address:                s.Address(),
		CityTown:               s.CityTown(),
		District:               s.District(),
		State:                  s.State(),
		Pincode:                s.Pincode(),
		Phone:                  s.Phone(),
		Email:                  s.Email(),
		Category:               s.CategoryID(),
		Stype:                  s.TypeID(),
		Notes:                  s.Notes(),
		NotesHTML:              notesHTML,
		HasActiveSubscriptions: agg.HasActiveSubscriptions(),
		IsDeleted:              s.IsDeleted(),
		Subscriptions:          subdto.ToSubscriptionDTOList(agg.Subscriptions),
	}
}

func ToReportRowDTO(r subscriber.ReportRow) *ReportRowDTO {
	lines := r.AddressLines
	if lines == nil {
		lines = []string{}
	}
	return &ReportRowDTO{
		Name:         r.Name,
		AddressLine1: r.AddressLine(0),
		AddressLine2: r.AddressLine(1),
		AddressLines: lines,
		City:         r.City,
		District:     r.District,
		State:        r.State,
		Pincode:      r.Pincode,
		Phone:        r.Phone,
	}
}
