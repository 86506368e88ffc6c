package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrors_EmptyIsNil(t *testing.T) {
	v := NewValidationErrors()
	assert.NoError(t, v.Err())
	assert.True(t, v.Empty())

	var nilSet *ValidationErrors
	assert.NoError(t, nilSet.Err())
}

func TestValidationErrors_CollectsEveryKind(t *testing.T) {
	v := NewValidationErrors()
	v.Add("subscription_price", "Subscription price must be a positive number.")
	v.Add("duration_in_months", "Duration in months must be greater than zero.")
	v.AddUnique("_id", "A plan with this ID already exists.")
	v.AddMissingReference("subscription_language", "Language matching query does not exist.")
	v.AddNonField("The fields subscriber, subscription_plan must make a unique set.")

	err := v.Err()
	require.Error(t, err)
	assert.Equal(t, 5, v.Len())

	assert.True(t, v.HasKind("_id", KindUnique))
	assert.True(t, v.HasKind("subscription_language", KindReference))
	assert.True(t, v.HasKind(NonFieldErrorsKey, KindNonField))
	assert.False(t, v.HasKind("subscription_price", KindUnique))

	fields := v.Fields()
	assert.Len(t, fields, 5)
	assert.Equal(t, []string{"A plan with this ID already exists."}, fields["_id"])
}

func TestValidationErrors_SurvivesWrapping(t *testing.T) {
	v := NewValidationErrors()
	v.Add("name", MsgBlank)
	wrapped := fmt.Errorf("create category: %w", v.Err())

	got := GetValidationErrors(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, []string{MsgBlank}, got.Messages("name"))
	assert.True(t, IsValidationError(wrapped))

	appErr := got.AppError()
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Fields, "name")
}

func TestValidationErrors_Merge(t *testing.T) {
	a := NewValidationErrors()
	a.Add("name", MsgRequired)
	b := NewValidationErrors()
	b.AddUnique("_id", "duplicate")

	a.Merge(b)
	a.Merge(nil)
	assert.Equal(t, 2, a.Len())
	assert.True(t, a.Has("_id"))
}

func TestValidationErrors_ErrorStringIsStable(t *testing.T) {
	v := NewValidationErrors()
	v.Add("name", MsgRequired)
	v.AddUnique("_id", "duplicate")
	assert.Equal(t, "validation failed: _id: duplicate; name: This field is required.", v.Error())
}

func TestErrorPredicates(t *testing.T) {
	assert.True(t, IsNotFoundError(fmt.Errorf("wrap: %w", NewNotFoundError("plan not found"))))
	assert.True(t, IsConflictError(NewConflictError("referenced")))
	assert.True(t, IsUnauthorizedError(NewTokenExpiredError("token")))
	assert.True(t, IsAuthError(fmt.Errorf("wrap: %w", NewInvalidCredentialsError())))
	assert.False(t, IsValidationError(NewNotFoundError("x")))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(fmt.Errorf("Error 1062 (23000): Duplicate entry 'P1' for key 'PRIMARY'")))
	assert.True(t, IsDuplicateError(fmt.Errorf("UNIQUE constraint failed: languages.id")))
	assert.True(t, IsDuplicateError(fmt.Errorf("write exception: E11000 duplicate key error collection")))
	assert.False(t, IsDuplicateError(fmt.Errorf("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}

func TestValidationErrors_RequireString(t *testing.T) {
	v := NewValidationErrors()
	blank := "  "
	ok := "S1"

	assert.False(t, v.RequireString("_id", nil))
	assert.False(t, v.RequireString("name", &blank))
	assert.True(t, v.RequireString("email", &ok))

	assert.Equal(t, []string{MsgRequired}, v.Messages("_id"))
	assert.Equal(t, []string{MsgBlank}, v.Messages("name"))
	assert.False(t, v.Has("email"))
}
