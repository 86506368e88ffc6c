package utils

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tcworld/magadmin/internal/shared/errors"
)

// ParseIDParam reads a caller-assigned identifier from the route.
// entityName is used in error messages (e.g., "plan", "subscriber").
func ParseIDParam(c *gin.Context, paramName, entityName string) (string, error) {
	id := strings.TrimSpace(c.Param(paramName))
	if id == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}
	return id, nil
}

// QueryBool parses an optional boolean query parameter.
// It returns nil when the parameter is absent.
func QueryBool(c *gin.Context, key string) (*bool, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		v := true
		return &v, nil
	case "false", "0", "no":
		v := false
		return &v, nil
	}
	return nil, errors.FieldValidation(key, "Must be a valid boolean.")
}
