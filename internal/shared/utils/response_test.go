package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcworld/magadmin/internal/shared/errors"
)

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestErrorResponseWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	verrs := errors.NewValidationErrors()
	verrs.Add("subscription_price", "Subscription price must be a positive number.")
	verrs.AddUnique("_id", "A plan with this ID already exists.")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
		wantFields []string
	}{
		{"collected validation errors", fmt.Errorf("create plan: %w", verrs), http.StatusBadRequest, "validation_error", []string{"_id", "subscription_price"}},
		{"not found", errors.NewNotFoundError("plan not found"), http.StatusNotFound, "not_found", nil},
		{"conflict", errors.NewConflictError("plan is referenced"), http.StatusConflict, "conflict", nil},
		{"auth error", errors.NewTokenInvalidError("token"), http.StatusUnauthorized, "token_invalid", nil},
		{"unknown error hides details", fmt.Errorf("dial tcp: refused"), http.StatusInternalServerError, "internal_error", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			ErrorResponseWithError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantType, resp.Error.Type)
			for _, f := range tt.wantFields {
				assert.Contains(t, resp.Error.Fields, f)
			}
			assert.NotContains(t, w.Body.String(), "dial tcp")
		})
	}
}

func TestListSuccessResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ListSuccessResponse(c, []string{"a", "b"}, 45, 2, 20)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data ListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(45), resp.Data.Total)
	assert.Equal(t, 3, resp.Data.TotalPages)
}
