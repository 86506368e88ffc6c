package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcworld/magadmin/internal/domain/admin"
	"github.com/tcworld/magadmin/internal/shared/constants"
	apperrors "github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuthenticator struct {
	principal *admin.Principal
	err       error
	gotToken  string
}

func (s *stubAuthenticator) Authenticate(_ context.Context, token string) (*admin.Principal, error) {
	s.gotToken = token
	return s.principal, s.err
}

type stubEnforcer struct {
	allowed map[string]bool
	err     error
}

func (s *stubEnforcer) Enforce(role, resource, action string) (bool, error) {
	return s.allowed[role+":"+resource+":"+action], s.err
}

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func staffPrincipal() *admin.Principal {
	return &admin.Principal{AdminID: "a-1", Username: "clerk", Role: admin.RoleStaff, SessionID: "s-1"}
}

func newAuthRouter(auth *stubAuthenticator, enforcer *stubEnforcer) *gin.Engine {
	r := gin.New()
	authMW := NewAuthMiddleware(auth, logger.NewNop())
	permMW := NewPermissionMiddleware(enforcer, logger.NewNop())
	r.GET("/me", authMW.RequireAuth(), func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"admin_id": p.AdminID, "role": c.GetString(constants.ContextKeyRole)})
	})
	r.DELETE("/subscribers/:id", authMW.RequireAuth(), permMW.RequirePermission("subscriber", "delete"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		auth       *stubAuthenticator
		wantStatus int
		wantType   string
		wantToken  string
	}{
		{
			name:       "missing header",
			auth:       &stubAuthenticator{},
			wantStatus: http.StatusUnauthorized,
			wantType:   string(apperrors.ErrorTypeTokenMissing),
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			auth:       &stubAuthenticator{},
			wantStatus: http.StatusUnauthorized,
			wantType:   string(apperrors.ErrorTypeTokenInvalid),
		},
		{
			name:       "expired token",
			header:     "Bearer old",
			auth:       &stubAuthenticator{err: apperrors.NewTokenExpiredError("token")},
			wantStatus: http.StatusUnauthorized,
			wantType:   string(apperrors.ErrorTypeTokenExpired),
			wantToken:  "old",
		},
		{
			name:       "valid bearer",
			header:     "Bearer good",
			auth:       &stubAuthenticator{principal: staffPrincipal()},
			wantStatus: http.StatusOK,
			wantToken:  "good",
		},
		{
			name:       "token scheme",
			header:     "token good",
			auth:       &stubAuthenticator{principal: staffPrincipal()},
			wantStatus: http.StatusOK,
			wantToken:  "good",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthRouter(tt.auth, &stubEnforcer{})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantToken, tt.auth.gotToken)
			if tt.wantType != "" {
				body := decodeError(t, w)
				assert.False(t, body.Success)
				assert.Equal(t, tt.wantType, body.Error.Type)
			} else {
				assert.Contains(t, w.Body.String(), `"role":"staff"`)
			}
		})
	}
}

func TestRequirePermission(t *testing.T) {
	auth := &stubAuthenticator{principal: staffPrincipal()}

	t.Run("denied", func(t *testing.T) {
		r := newAuthRouter(auth, &stubEnforcer{})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/subscribers/S1", nil)
		req.Header.Set("Authorization", "Bearer good")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, string(apperrors.ErrorTypeForbidden), decodeError(t, w).Error.Type)
	})

	t.Run("allowed", func(t *testing.T) {
		r := newAuthRouter(auth, &stubEnforcer{allowed: map[string]bool{"staff:subscriber:delete": true}})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/subscribers/S1", nil)
		req.Header.Set("Authorization", "Bearer good")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("enforcer failure", func(t *testing.T) {
		r := newAuthRouter(auth, &stubEnforcer{err: errors.New("adapter down")})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/subscribers/S1", nil)
		req.Header.Set("Authorization", "Bearer good")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.NewNop()))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, constants.ErrMsgInternalServerError, decodeError(t, w).Error.Message)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:3000"}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), CustomLogger(logger.NewNop()))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(constants.ContextKeyRequestID)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(constants.HeaderXRequestID)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(constants.HeaderXRequestID, "req-42")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(constants.HeaderXRequestID))
}
