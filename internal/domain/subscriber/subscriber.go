// Package subscriber holds magazine subscribers and their postal report rows.
package subscriber

import (
	"strings"
	"time"

	"github.com/tcworld/magadmin/internal/shared/errors"
)

// Status is the subscriber lifecycle. Deletion is logical.
type Status string

const (
	StatusActive  Status = "active"
	StatusDeleted Status = "deleted"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusDeleted
}

const (
	MsgDuplicateID  = "magazine subscriber with this _id already exists."
	MsgInvalidEmail = "Enter a valid email address."
	MsgNotFound     = "MagazineSubscriber matching query does not exist."
)

// Subscriber is a magazine recipient.
type Subscriber struct {
	id                 string
	name               string
	registrationNumber string
	address            string
	cityTown           string
	district           string
	state              string
	pincode            string
	phone              string
	email              string
	categoryID         string
	typeID             string
	notes              string
	status             Status
	createdAt          time.Time
	updatedAt          time.Time
}

// Params carries subscriber fields for construction and reconstruction.
type Params struct {
	ID                 string
	Name               string
	RegistrationNumber string
	Address            string
	CityTown           string
	District           string
	State              string
	Pincode            string
	Phone              string
	Email              string
	CategoryID         string
	TypeID             string
	Notes              string
}

// NewSubscriber builds an active subscriber. Reference and email checks
// happen in the application layer, which owns the lookups.
func NewSubscriber(p Params) (*Subscriber, error) {
	verrs := errors.NewValidationErrors()
	if strings.TrimSpace(p.ID) == "" {
		verrs.Add("_id", errors.MsgRequired)
	}
	if strings.TrimSpace(p.Name) == "" {
		verrs.Add("name", errors.MsgBlank)
	}
	if p.CategoryID == "" {
		verrs.Add("category", errors.MsgRequired)
	}
	if p.TypeID == "" {
		verrs.Add("stype", errors.MsgRequired)
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	s := &Subscriber{status: StatusActive, createdAt: now, updatedAt: now}
	s.assign(p)
	return s, nil
}

// ReconstructSubscriber rebuilds a subscriber loaded from storage.
func ReconstructSubscriber(p Params, deleted bool, createdAt, updatedAt time.Time) *Subscriber {
	s := &Subscriber{status: StatusActive, createdAt: createdAt, updatedAt: updatedAt}
	if deleted {
		s.status = StatusDeleted
	}
	s.assign(p)
	return s
}

func (s *Subscriber) assign(p Params) {
	s.id = strings.TrimSpace(p.ID)
	s.name = strings.TrimSpace(p.Name)
	s.registrationNumber = p.RegistrationNumber
	s.address = p.Address
	s.cityTown = p.CityTown
	s.district = p.District
	s.state = p.State
	s.pincode = p.Pincode
	s.phone = p.Phone
	s.email = strings.TrimSpace(p.Email)
	s.categoryID = p.CategoryID
	s.typeID = p.TypeID
	s.notes = p.Notes
}

func (s *Subscriber) ID() string                 { return s.id }
func (s *Subscriber) Name() string               { return s.name }
func (s *Subscriber) RegistrationNumber() string { return s.registrationNumber }
func (s *Subscriber) Address() string            { return s.address }
func (s *Subscriber) CityTown() string           { return s.cityTown }
func (s *Subscriber) District() string           { return s.district }
func (s *Subscriber) State() string              { return s.state }
func (s *Subscriber) Pincode() string            { return s.pincode }
func (s *Subscriber) Phone() string              { return s.phone }
func (s *Subscriber) Email() string              { return s.email }
func (s *Subscriber) CategoryID() string         { return s.categoryID }
func (s *Subscriber) TypeID() string             { return s.typeID }
func (s *Subscriber) Notes() string              { return s.notes }
func (s *Subscriber) Status() Status             { return s.status }
func (s *Subscriber) CreatedAt() time.Time       { return s.createdAt }
func (s *Subscriber) UpdatedAt() time.Time       { return s.updatedAt }

func (s *Subscriber) IsDeleted() bool {
	return s.status == StatusDeleted
}

// Delete marks the subscriber deleted. It reports whether the state changed.
func (s *Subscriber) Delete() bool {
	if s.status == StatusDeleted {
		return false
	}
	s.status = StatusDeleted
	s.updatedAt = time.Now().UTC()
	return true
}

// Activate clears the deleted mark. It reports whether the state changed.
func (s *Subscriber) Activate() bool {
	if s.status == StatusActive {
		return false
	}
	s.status = StatusActive
	s.updatedAt = time.Now().UTC()
	return true
}

// Changes is a partial update. Nil fields are left untouched.
type Changes struct {
	Name               *string
	RegistrationNumber *string
	Address            *string
	CityTown           *string
	District           *string
	State              *string
	Pincode            *string
	Phone              *string
	Email              *string
	CategoryID         *string
	TypeID             *string
	Notes              *string
}

// Apply validates and applies a partial update. The lifecycle state is not
// part of an update; it moves only through Delete and Activate.
func (s *Subscriber) Apply(c Changes) error {
	verrs := errors.NewValidationErrors()
	if c.Name != nil && strings.TrimSpace(*c.Name) == "" {
		verrs.Add("name", errors.MsgBlank)
	}
	if c.CategoryID != nil && *c.CategoryID == "" {
		verrs.Add("category", errors.MsgRequired)
	}
	if c.TypeID != nil && *c.TypeID == "" {
		verrs.Add("stype", errors.MsgRequired)
	}
	if err := verrs.Err(); err != nil {
		return err
	}

	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	if c.Name != nil {
		s.name = strings.TrimSpace(*c.Name)
	}
	set(&s.registrationNumber, c.RegistrationNumber)
	set(&s.address, c.Address)
	set(&s.cityTown, c.CityTown)
	set(&s.district, c.District)
	set(&s.state, c.State)
	set(&s.pincode, c.Pincode)
	set(&s.phone, c.Phone)
	if c.Email != nil {
		s.email = strings.TrimSpace(*c.Email)
	}
	set(&s.categoryID, c.CategoryID)
	set(&s.typeID, c.TypeID)
	set(&s.notes, c.Notes)
	s.updatedAt = time.Now().UTC()
	return nil
}
