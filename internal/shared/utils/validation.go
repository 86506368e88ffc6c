package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/tcworld/magadmin/internal/shared/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)

	// gin's binding validator reports the same wire names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
	}
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// ValidateStruct checks `validate` tags on s and returns every failure keyed by
// json field name. The result is never nil; call Err on it.
func ValidateStruct(s interface{}) *errors.ValidationErrors {
	verrs := errors.NewValidationErrors()
	if err := validate.Struct(s); err != nil {
		collectFieldErrors(verrs, err)
	}
	return verrs
}

// IsEmail reports whether s is a syntactically valid email address.
func IsEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// TranslateBindError converts an error from ShouldBindJSON / ShouldBindQuery into
// a validation error the response layer understands.
func TranslateBindError(err error) error {
	if err == nil {
		return nil
	}

	verrs := errors.NewValidationErrors()
	var fieldErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case stderrors.As(err, &fieldErrs):
		collectFieldErrors(verrs, err)
		return verrs
	case stderrors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			return errors.NewValidationError("Invalid request body", "expected a JSON object")
		}
		verrs.Add(field, fmt.Sprintf("Incorrect type. Expected %s.", typeErr.Type.Kind()))
		return verrs
	case stderrors.As(err, &syntaxErr), stderrors.Is(err, io.ErrUnexpectedEOF):
		return errors.NewValidationError("JSON parse error", err.Error())
	case stderrors.Is(err, io.EOF):
		return errors.NewValidationError("Request body is empty")
	}
	// Decoders of custom types (decimal, dates) return plain errors.
	return errors.NewValidationError("Invalid request body", err.Error())
}

func collectFieldErrors(verrs *errors.ValidationErrors, err error) {
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		verrs.AddNonField(err.Error())
		return
	}
	for _, fe := range fieldErrs {
		verrs.Add(fe.Field(), fieldErrorMessage(fe))
	}
}

// fieldErrorMessage returns a user-facing message for one failed tag.
func fieldErrorMessage(fe validator.FieldError) string {
	param := fe.Param()
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return errors.MsgRequired
	case "email":
		return "Enter a valid email address."
	case "max":
		if isString {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", param)
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", param)
	case "min":
		if isString {
			return fmt.Sprintf("Ensure this field has at least %s characters.", param)
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", param)
	case "gt":
		return fmt.Sprintf("Ensure this value is greater than %s.", param)
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", param)
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fe.Value()))
	case "numeric":
		return "A valid number is required."
	case "alphanum":
		return "Only letters and digits are allowed."
	case "datetime":
		return "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	default:
		return fmt.Sprintf("Failed validation for '%s'.", fe.Tag())
	}
}
