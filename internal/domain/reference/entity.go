// Package reference holds the small lookup registries (categories, subscriber
// types, languages, modes and payment modes) that plans, subscribers and
// subscriptions point at.
package reference

import (
	"fmt"
	"strings"
	"time"

	"github.com/tcworld/magadmin/internal/shared/errors"
)

// Kind names one registry.
type Kind string

const (
	KindCategory    Kind = "category"
	KindType        Kind = "type"
	KindLanguage    Kind = "language"
	KindMode        Kind = "mode"
	KindPaymentMode Kind = "payment_mode"
)

const MaxNameLength = 100

// Kinds lists every registry in seed order.
var Kinds = []Kind{KindCategory, KindType, KindLanguage, KindMode, KindPaymentMode}

func (k Kind) IsValid() bool {
	switch k {
	case KindCategory, KindType, KindLanguage, KindMode, KindPaymentMode:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// ModelName is the record name used in lookup failure messages.
func (k Kind) ModelName() string {
	switch k {
	case KindCategory:
		return "Category"
	case KindType:
		return "Type"
	case KindLanguage:
		return "Language"
	case KindMode:
		return "Mode"
	case KindPaymentMode:
		return "PaymentMode"
	}
	return string(k)
}

// NotFoundMessage is the reference-not-found message for this kind.
func (k Kind) NotFoundMessage() string {
	return k.ModelName() + " matching query does not exist."
}

// DuplicateIDMessage is the uniqueness message reported on _id.
func (k Kind) DuplicateIDMessage(id string) string {
	if k == KindLanguage {
		return fmt.Sprintf("A language with this ID already exists : %s", id)
	}
	return fmt.Sprintf("%s with this _id already exists.", strings.ToLower(k.ModelName()))
}

// Entity is one registry record.
type Entity struct {
	kind      Kind
	id        string
	name      string
	createdAt time.Time
	updatedAt time.Time
}

// NewEntity validates and builds a registry record. A nil name means the
// field was absent from the request.
func NewEntity(kind Kind, id string, name *string) (*Entity, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("unknown reference kind %q", kind)
	}

	verrs := errors.NewValidationErrors()
	id = strings.TrimSpace(id)
	if id == "" {
		verrs.Add("_id", errors.MsgRequired)
	}
	checkName(verrs, name)
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Entity{
		kind:      kind,
		id:        id,
		name:      strings.TrimSpace(*name),
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructEntity rebuilds a record loaded from storage.
func ReconstructEntity(kind Kind, id, name string, createdAt, updatedAt time.Time) *Entity {
	return &Entity{
		kind:      kind,
		id:        id,
		name:      name,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (e *Entity) Kind() Kind {
	return e.kind
}

func (e *Entity) ID() string {
	return e.id
}

func (e *Entity) Name() string {
	return e.name
}

func (e *Entity) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entity) UpdatedAt() time.Time {
	return e.updatedAt
}

// Rename applies a partial update. A nil name leaves the record unchanged;
// a present but blank name is rejected.
func (e *Entity) Rename(name *string) error {
	if name == nil {
		return nil
	}
	verrs := errors.NewValidationErrors()
	checkName(verrs, name)
	if err := verrs.Err(); err != nil {
		return err
	}
	e.name = strings.TrimSpace(*name)
	e.updatedAt = time.Now().UTC()
	return nil
}

func checkName(verrs *errors.ValidationErrors, name *string) {
	if name == nil {
		verrs.Add("name", errors.MsgRequired)
		return
	}
	trimmed := strings.TrimSpace(*name)
	switch {
	case trimmed == "":
		verrs.Add("name", errors.MsgBlank)
	case len([]rune(trimmed)) > MaxNameLength:
		verrs.Add("name", fmt.Sprintf("Ensure this field has no more than %d characters.", MaxNameLength))
	}
}
