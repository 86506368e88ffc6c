package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	admindto "github.com/tcworld/magadmin/internal/application/admin/dto"
	adminuc "github.com/tcworld/magadmin/internal/application/admin/usecases"
	"github.com/tcworld/magadmin/internal/domain/admin"
	"github.com/tcworld/magadmin/internal/interfaces/http/handlers/testutil"
	apperrors "github.com/tcworld/magadmin/internal/shared/errors"
)

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		login := &mockLoginUC{result: &admindto.LoginResponse{
			Token:     "jwt-token",
			ExpiresAt: time.Now().Add(time.Hour),
			Message:   "Login successful!",
			Admin:     &admindto.AdminUserDTO{ID: "A1", Username: "root"},
		}}
		h := NewAuthHandler(login, &mockLogoutUC{}, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", `{"username":"root","password":"secret"}`)
		h.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, "Login successful!", resp.Message)
		var data admindto.LoginResponse
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, "jwt-token", data.Token)
	})

	t.Run("bad credentials", func(t *testing.T) {
		login := &mockLoginUC{err: apperrors.NewInvalidCredentialsError()}
		h := NewAuthHandler(login, &mockLogoutUC{}, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", `{"username":"root","password":"nope"}`)
		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, string(apperrors.ErrorTypeInvalidCredentials), resp.Error.Type)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	logout := &mockLogoutUC{}
	h := NewAuthHandler(&mockLoginUC{}, logout, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/logout", nil)
	principal := testutil.SetAuthContext(c, "A1", admin.RoleStaff)
	h.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, principal, logout.principal)
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		h := NewAuthHandler(&mockLoginUC{}, &mockLogoutUC{}, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/me", nil)
		testutil.SetAuthContext(c, "A1", admin.RoleAdmin)
		h.Me(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		var me admindto.PrincipalDTO
		require.NoError(t, json.Unmarshal(resp.Data, &me))
		assert.Equal(t, "A1", me.AdminID)
		assert.Equal(t, string(admin.RoleAdmin), me.Role)
	})

	t.Run("no principal", func(t *testing.T) {
		h := NewAuthHandler(&mockLoginUC{}, &mockLogoutUC{}, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/me", nil)
		h.Me(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAdminUserHandler_Signup(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		signup := &mockSignupUC{result: &admindto.AdminUserDTO{ID: "A2", Username: "clerk", Role: string(admin.RoleStaff)}}
		h := NewAdminUserHandler(signup, &mockGetAdminUserUC{}, &mockListAdminUsersUC{}, testutil.NewMockLogger())

		body := map[string]string{"username": "clerk", "password": "s3cret-pass", "email": "clerk@example.com", "role": "staff"}
		c, w := testutil.NewTestContext(http.MethodPost, "/api/admin-users", body)
		h.Signup(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "clerk", signup.cmd.Username)
		assert.Equal(t, "clerk@example.com", signup.cmd.Email)
	})

	t.Run("duplicate username", func(t *testing.T) {
		signup := &mockSignupUC{err: apperrors.FieldValidation("username", "A user with that username already exists.")}
		h := NewAdminUserHandler(signup, &mockGetAdminUserUC{}, &mockListAdminUsersUC{}, testutil.NewMockLogger())

		body := map[string]string{"username": "clerk", "password": "s3cret-pass", "email": "clerk@example.com"}
		c, w := testutil.NewTestContext(http.MethodPost, "/api/admin-users", body)
		h.Signup(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminUserHandler_GetAndList(t *testing.T) {
	get := &mockGetAdminUserUC{result: &admindto.AdminUserDTO{ID: "A1", Username: "root"}}
	list := &mockListAdminUsersUC{result: &adminuc.ListAdminUsersResult{
		Items:    []*admindto.AdminUserDTO{{ID: "A1"}},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}}
	h := NewAdminUserHandler(&mockSignupUC{}, get, list, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin-users/A1", nil)
	testutil.SetURLParam(c, "id", "A1")
	h.GetAdminUser(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/api/admin-users", nil)
	h.ListAdminUsers(c)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data testutil.ListData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, int64(1), data.Total)
}
