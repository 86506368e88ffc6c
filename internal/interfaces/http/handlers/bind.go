package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
	"github.com/tcworld/magadmin/internal/shared/utils"
)

// bindJSON decodes the body into req and writes a 400 on failure.
func bindJSON(c *gin.Context, req interface{}, log logger.Interface, action string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		log.Warnw("invalid request body for "+action, "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return false
	}
	return true
}

// queryInt parses an optional integer query parameter; nil when absent.
func queryInt(c *gin.Context, key string) (*int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.FieldValidation(key, "A valid integer is required.")
	}
	return &n, nil
}
