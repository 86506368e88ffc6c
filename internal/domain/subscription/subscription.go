// Package subscription holds the subscriptions linking subscribers to plans and
// the read-time subscriber aggregate built from them.
package subscription

import (
	"strings"
	"time"

	"github.com/tcworld/magadmin/internal/domain/plan"
	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/domain/shared/ref"
	"github.com/tcworld/magadmin/internal/domain/subscriber"
	"github.com/tcworld/magadmin/internal/shared/dates"
	"github.com/tcworld/magadmin/internal/shared/errors"
)

const MaxPaymentStatusLength = 50

const (
	MsgDuplicateID   = "subscription with this _id already exists."
	MsgDuplicate     = "A subscription with the same subscriber, plan, dates, payment mode and payment status already exists."
	MsgEndBeforeFrom = "End date must not be earlier than the start date."
	MsgDateFormat    = plan.MsgDateFormat
)

// Not-found messages reported on each reference field.
const (
	MsgSubscriberNotFound = subscriber.MsgNotFound
	MsgPlanNotFound       = plan.MsgNotFound
)

// Subscription is one paid term of a plan for a subscriber.
type Subscription struct {
	id            string
	subscriber    ref.Ref[subscriber.Subscriber]
	plan          ref.Ref[plan.Plan]
	paymentMode   ref.Ref[reference.Entity]
	startDate     time.Time
	endDate       *time.Time
	paymentStatus string
	active        bool
	createdAt     time.Time
	updatedAt     time.Time
}

// Params carries subscription fields. References may be resolved or bare ids.
type Params struct {
	ID            string
	Subscriber    ref.Ref[subscriber.Subscriber]
	Plan          ref.Ref[plan.Plan]
	PaymentMode   ref.Ref[reference.Entity]
	StartDate     time.Time
	EndDate       *time.Time
	PaymentStatus string
	Active        bool
}

// NewSubscription builds a subscription after checking its own fields.
// Reference resolution and duplicate detection need storage and are done by
// the caller before this point.
func NewSubscription(p Params) (*Subscription, error) {
	verrs := errors.NewValidationErrors()
	if strings.TrimSpace(p.ID) == "" {
		verrs.Add("_id", errors.MsgRequired)
	}
	if p.Subscriber.IsZero() {
		verrs.Add("subscriber", errors.MsgRequired)
	}
	if p.Plan.IsZero() {
		verrs.Add("subscription_plan", errors.MsgRequired)
	}
	if p.PaymentMode.IsZero() {
		verrs.Add("payment_mode", errors.MsgRequired)
	}
	if p.StartDate.IsZero() {
		verrs.Add("start_date", errors.MsgRequired)
	}
	CheckDates(verrs, p.StartDate, p.EndDate)
	CheckPaymentStatus(verrs, p.PaymentStatus)
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	s := &Subscription{createdAt: now, updatedAt: now}
	s.assign(p)
	return s, nil
}

// ReconstructSubscription rebuilds a subscription loaded from storage.
func ReconstructSubscription(p Params, createdAt, updatedAt time.Time) *Subscription {
	s := &Subscription{createdAt: createdAt, updatedAt: updatedAt}
	s.assign(p)
	return s
}

func (s *Subscription) assign(p Params) {
	s.id = strings.TrimSpace(p.ID)
	s.subscriber = p.Subscriber
	s.plan = p.Plan
	s.paymentMode = p.PaymentMode
	s.startDate = dates.Truncate(p.StartDate)
	if p.EndDate != nil {
		end := dates.Truncate(*p.EndDate)
		s.endDate = &end
	} else {
		s.endDate = nil
	}
	s.paymentStatus = p.PaymentStatus
	s.active = p.Active
}

func (s *Subscription) ID() string {
	return s.id
}

func (s *Subscription) Subscriber() ref.Ref[subscriber.Subscriber] {
	return s.subscriber
}

func (s *Subscription) Plan() ref.Ref[plan.Plan] {
	return s.plan
}

func (s *Subscription) PaymentMode() ref.Ref[reference.Entity] {
	return s.paymentMode
}

func (s *Subscription) StartDate() time.Time {
	return s.startDate
}

func (s *Subscription) EndDate() *time.Time {
	return s.endDate
}

func (s *Subscription) PaymentStatus() string {
	return s.paymentStatus
}

func (s *Subscription) IsActive() bool {
	return s.active
}

func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

// Params returns the current field values, for building a modified copy.
func (s *Subscription) Params() Params {
	return Params{
		ID:            s.id,
		Subscriber:    s.subscriber,
		Plan:          s.plan,
		PaymentMode:   s.paymentMode,
		StartDate:     s.startDate,
		EndDate:       s.endDate,
		PaymentStatus: s.paymentStatus,
		Active:        s.active,
	}
}

// Replace swaps in already validated field values, keeping identity and creation time.
func (s *Subscription) Replace(p Params) error {
	p.ID = s.id
	verrs := errors.NewValidationErrors()
	CheckDates(verrs, p.StartDate, p.EndDate)
	CheckPaymentStatus(verrs, p.PaymentStatus)
	if err := verrs.Err(); err != nil {
		return err
	}
	s.assign(p)
	s.updatedAt = time.Now().UTC()
	return nil
}

// SameTermsAs reports whether o repeats s: same subscriber, plan, dates,
// payment mode and payment status. The id and active flag are not compared.
func (s *Subscription) SameTermsAs(o *Subscription) bool {
	if s == nil || o == nil {
		return false
	}
	return s.subscriber.SameTarget(o.subscriber) &&
		s.plan.SameTarget(o.plan) &&
		s.paymentMode.SameTarget(o.paymentMode) &&
		s.startDate.Equal(o.startDate) &&
		dates.Equal(s.endDate, o.endDate) &&
		s.paymentStatus == o.paymentStatus
}

// CheckDates records an end_date that precedes start_date.
func CheckDates(verrs *errors.ValidationErrors, start time.Time, end *time.Time) {
	if end == nil || start.IsZero() {
		return
	}
	if dates.Truncate(*end).Before(dates.Truncate(start)) {
		verrs.Add("end_date", MsgEndBeforeFrom)
	}
}

// CheckPaymentStatus records an over-long payment_status.
func CheckPaymentStatus(verrs *errors.ValidationErrors, status string) {
	if len([]rune(status)) > MaxPaymentStatusLength {
		verrs.Add("payment_status", "Ensure this field has no more than 50 characters.")
	}
}

// FindDuplicate returns the first of existing that repeats candidate's terms,
// skipping candidate itself when it is already stored.
func FindDuplicate(candidate *Subscription, existing []*Subscription) *Subscription {
	for _, e := range existing {
		if e == nil || e.id == candidate.id {
			continue
		}
		if candidate.SameTermsAs(e) {
			return e
		}
	}
	return nil
}
