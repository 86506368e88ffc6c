// Package plan holds subscription plans and the rule that labels their price tiers.
package plan

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tcworld/magadmin/internal/shared/errors"
)

// Plan is a priced subscription offer for one (language, mode) identity.
type Plan struct {
	id               string
	version          string
	name             string
	startDate        *time.Time
	price            decimal.Decimal
	languageID       string
	modeID           string
	durationInMonths int
	createdAt        time.Time
	updatedAt        time.Time
}

// Params carries already validated creation input.
type Params struct {
	ID               string
	Version          string
	Name             string
	StartDate        *time.Time
	Price            decimal.Decimal
	LanguageID       string
	ModeID           string
	DurationInMonths int
}

// NewPlan builds a plan. Field rules are checked again here so that a plan
// can never exist with a non-positive price or duration.
func NewPlan(p Params) (*Plan, error) {
	verrs := errors.NewValidationErrors()
	if strings.TrimSpace(p.ID) == "" {
		verrs.Add("_id", errors.MsgRequired)
	}
	if strings.TrimSpace(p.Version) == "" {
		verrs.Add("version", errors.MsgRequired)
	}
	if p.LanguageID == "" {
		verrs.Add("subscription_language", errors.MsgRequired)
	}
	if p.ModeID == "" {
		verrs.Add("subscription_mode", errors.MsgRequired)
	}
	CheckPrice(verrs, &p.Price)
	CheckDuration(verrs, &p.DurationInMonths)
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Plan{
		id:               strings.TrimSpace(p.ID),
		version:          p.Version,
		name:             strings.TrimSpace(p.Name),
		startDate:        p.StartDate,
		price:            p.Price,
		languageID:       p.LanguageID,
		modeID:           p.ModeID,
		durationInMonths: p.DurationInMonths,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructPlan rebuilds a plan loaded from storage.
func ReconstructPlan(p Params, createdAt, updatedAt time.Time) *Plan {
	return &Plan{
		id:               p.ID,
		version:          p.Version,
		name:             p.Name,
		startDate:        p.StartDate,
		price:            p.Price,
		languageID:       p.LanguageID,
		modeID:           p.ModeID,
		durationInMonths: p.DurationInMonths,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (p *Plan) ID() string {
	return p.id
}

func (p *Plan) Version() string {
	return p.version
}

func (p *Plan) Name() string {
	return p.name
}

func (p *Plan) StartDate() *time.Time {
	return p.startDate
}

func (p *Plan) Price() decimal.Decimal {
	return p.price
}

func (p *Plan) LanguageID() string {
	return p.languageID
}

func (p *Plan) ModeID() string {
	return p.modeID
}

func (p *Plan) DurationInMonths() int {
	return p.durationInMonths
}

func (p *Plan) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Plan) UpdatedAt() time.Time {
	return p.updatedAt
}

// SameIdentity reports whether both plans belong to the same (language, mode) pair.
func (p *Plan) SameIdentity(languageID, modeID string) bool {
	return p.languageID == languageID && p.modeID == modeID
}

// Changes is a partial update. Nil fields are left untouched.
type Changes struct {
	Name             *string
	StartDate        *time.Time
	ClearStartDate   bool
	Price            *decimal.Decimal
	DurationInMonths *int
}

// Apply validates and applies a partial update. When the price changes the
// version is re-derived against siblings, which must not include p itself.
func (p *Plan) Apply(c Changes, siblings []*Plan) error {
	verrs := errors.NewValidationErrors()
	if c.Price != nil {
		CheckPrice(verrs, c.Price)
	}
	if c.DurationInMonths != nil {
		CheckDuration(verrs, c.DurationInMonths)
	}
	if err := verrs.Err(); err != nil {
		return err
	}

	if c.Name != nil {
		p.name = strings.TrimSpace(*c.Name)
	}
	switch {
	case c.ClearStartDate:
		p.startDate = nil
	case c.StartDate != nil:
		p.startDate = c.StartDate
	}
	if c.DurationInMonths != nil {
		p.durationInMonths = *c.DurationInMonths
	}
	if c.Price != nil && !c.Price.Equal(p.price) {
		p.price = *c.Price
		p.version = ResolveVersion(siblings, p.price, "")
	}
	p.updatedAt = time.Now().UTC()
	return nil
}
