package errors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// NonFieldErrorsKey is the key under which errors that belong to no single field are reported.
const NonFieldErrorsKey = "non_field_errors"

// FieldErrorKind classifies a single validation failure.
type FieldErrorKind string

const (
	KindInvalid   FieldErrorKind = "invalid"
	KindUnique    FieldErrorKind = "unique"
	KindReference FieldErrorKind = "reference"
	KindNonField  FieldErrorKind = "non_field"
)

// Common field messages.
const (
	MsgRequired = "This field is required."
	MsgBlank    = "This field may not be blank."
)

// FieldError is one failed rule on one field.
type FieldError struct {
	Field   string
	Kind    FieldErrorKind
	Message string
}

// ValidationErrors is the set of field errors gathered while validating one request.
// Rules keep adding to it; the caller decides when to stop by calling Err.
type ValidationErrors struct {
	errs []FieldError
}

func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{}
}

// Add records a field-level validation failure (missing, blank, out of range, malformed).
func (v *ValidationErrors) Add(field, message string) {
	v.errs = append(v.errs, FieldError{Field: field, Kind: KindInvalid, Message: message})
}

// AddUnique records a duplicate identifier.
func (v *ValidationErrors) AddUnique(field, message string) {
	v.errs = append(v.errs, FieldError{Field: field, Kind: KindUnique, Message: message})
}

// AddMissingReference records a foreign key that did not resolve.
func (v *ValidationErrors) AddMissingReference(field, message string) {
	v.errs = append(v.errs, FieldError{Field: field, Kind: KindReference, Message: message})
}

// AddNonField records a rule spanning several fields.
func (v *ValidationErrors) AddNonField(message string) {
	v.errs = append(v.errs, FieldError{Field: NonFieldErrorsKey, Kind: KindNonField, Message: message})
}

// RequireString records a missing (nil) or blank string field and reports
// whether the value is usable.
func (v *ValidationErrors) RequireString(field string, value *string) bool {
	if value == nil {
		v.Add(field, MsgRequired)
		return false
	}
	if strings.TrimSpace(*value) == "" {
		v.Add(field, MsgBlank)
		return false
	}
	return true
}

// Merge appends every error of other.
func (v *ValidationErrors) Merge(other *ValidationErrors) {
	if other == nil {
		return
	}
	v.errs = append(v.errs, other.errs...)
}

func (v *ValidationErrors) Empty() bool {
	return len(v.errs) == 0
}

func (v *ValidationErrors) Len() int {
	return len(v.errs)
}

// Has reports whether any error was recorded for field.
func (v *ValidationErrors) Has(field string) bool {
	for _, e := range v.errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

// HasKind reports whether an error of the given kind was recorded for field.
func (v *ValidationErrors) HasKind(field string, kind FieldErrorKind) bool {
	for _, e := range v.errs {
		if e.Field == field && e.Kind == kind {
			return true
		}
	}
	return false
}

// Messages returns the messages recorded for field, in insertion order.
func (v *ValidationErrors) Messages(field string) []string {
	var out []string
	for _, e := range v.errs {
		if e.Field == field {
			out = append(out, e.Message)
		}
	}
	return out
}

// Errors returns a copy of the recorded errors.
func (v *ValidationErrors) Errors() []FieldError {
	out := make([]FieldError, len(v.errs))
	copy(out, v.errs)
	return out
}

// Fields groups messages by field name.
func (v *ValidationErrors) Fields() map[string][]string {
	out := make(map[string][]string, len(v.errs))
	for _, e := range v.errs {
		out[e.Field] = append(out[e.Field], e.Message)
	}
	return out
}

// Err returns v as an error, or nil when nothing was recorded.
func (v *ValidationErrors) Err() error {
	if v == nil || len(v.errs) == 0 {
		return nil
	}
	return v
}

func (v *ValidationErrors) Error() string {
	fields := v.Fields()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(fields[k], " ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AppError converts the set into the API error shape.
func (v *ValidationErrors) AppError() *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: "Validation failed",
		Code:    http.StatusBadRequest,
		Fields:  v.Fields(),
	}
}

// GetValidationErrors extracts a ValidationErrors set from err.
func GetValidationErrors(err error) *ValidationErrors {
	var v *ValidationErrors
	if errors.As(err, &v) {
		return v
	}
	return nil
}

// FieldValidation returns a single-field validation error set; convenient for one-off checks.
func FieldValidation(field, message string) error {
	v := NewValidationErrors()
	v.Add(field, message)
	return v
}
