package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcworld/magadmin/internal/domain/admin"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

func newLogin(repo *memoryAdminRepository, sessions *memorySessionStore) *LoginUseCase {
	return NewLoginUseCase(repo, prefixHasher{}, sessions, plainTokenIssuer{}, time.Hour, logger.NewNop())
}

func TestLoginUseCase(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryAdminRepository()
	sessions := newMemorySessionStore()
	u := seedAdmin(repo, "editor", "s3cret-pass", admin.RoleStaff)

	resp, err := newLogin(repo, sessions).Execute(ctx, LoginCommand{Username: " editor ", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "Login successful!", resp.Message)
	assert.Equal(t, u.ID(), resp.Admin.ID)
	assert.NotNil(t, resp.Admin.LastLogin)
	assert.Len(t, sessions.sessions, 1)

	principal, err := NewTokenAuthenticator(plainTokenIssuer{}, sessions).Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID(), principal.AdminID)
	assert.Equal(t, admin.RoleStaff, principal.Role)
}

func TestLoginUseCase_UpgradesOutdatedHash(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryAdminRepository()
	u := seedAdmin(repo, "editor", "s3cret-pass", admin.RoleStaff)

	uc := NewLoginUseCase(repo, upgradingHasher{}, newMemorySessionStore(), plainTokenIssuer{}, time.Hour, logger.NewNop())
	_, err := uc.Execute(ctx, LoginCommand{Username: "editor", Password: "s3cret-pass"})
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "hashed2:s3cret-pass", stored.PasswordHash())
}

func TestLoginUseCase_Failures(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryAdminRepository()
	sessions := newMemorySessionStore()
	seedAdmin(repo, "editor", "s3cret-pass", admin.RoleStaff)
	inactive := seedAdmin(repo, "gone", "s3cret-pass", admin.RoleStaff)
	inactive.Deactivate()

	uc := newLogin(repo, sessions)

	_, err := uc.Execute(ctx, LoginCommand{Username: "editor", Password: "wrong-pass"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeInvalidCredentials, errors.GetAuthError(err).Type)

	_, err = uc.Execute(ctx, LoginCommand{Username: "nobody", Password: "s3cret-pass"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeInvalidCredentials, errors.GetAuthError(err).Type)

	_, err = uc.Execute(ctx, LoginCommand{Username: "gone", Password: "s3cret-pass"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeAccountInactive, errors.GetAuthError(err).Type)

	assert.Empty(t, sessions.sessions)
}

func TestLoginUseCase_LastLoginFailureIsNotFatal(t *testing.T) {
	repo := newMemoryAdminRepository()
	repo.updateErr = fmt.Errorf("db down")
	seedAdmin(repo, "editor", "s3cret-pass", admin.RoleAdmin)

	resp, err := newLogin(repo, newMemorySessionStore()).Execute(context.Background(), LoginCommand{Username: "editor", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogoutUseCase(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryAdminRepository()
	sessions := newMemorySessionStore()
	seedAdmin(repo, "editor", "s3cret-pass", admin.RoleStaff)

	resp, err := newLogin(repo, sessions).Execute(ctx, LoginCommand{Username: "editor", Password: "s3cret-pass"})
	require.NoError(t, err)

	auth := NewTokenAuthenticator(plainTokenIssuer{}, sessions)
	principal, err := auth.Authenticate(ctx, resp.Token)
	require.NoError(t, err)

	logout := NewLogoutUseCase(sessions, logger.NewNop())
	require.NoError(t, logout.Execute(ctx, principal))

	_, err = auth.Authenticate(ctx, resp.Token)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeTokenInvalid, errors.GetAuthError(err).Type)

	err = logout.Execute(ctx, principal)
	require.Error(t, err)
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestTokenAuthenticator_Errors(t *testing.T) {
	ctx := context.Background()
	sessions := newMemorySessionStore()
	auth := NewTokenAuthenticator(plainTokenIssuer{}, sessions)

	tests := []struct {
		name  string
		token string
		want  errors.ErrorType
	}{
		{"missing", "  ", errors.ErrorTypeTokenMissing},
		{"malformed", "garbage", errors.ErrorTypeTokenInvalid},
		{"expired signature", "expired", errors.ErrorTypeTokenExpired},
		{"unknown session", "admin-1|session-1", errors.ErrorTypeTokenInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Authenticate(ctx, tt.token)
			require.Error(t, err)
			assert.Equal(t, tt.want, errors.GetAuthError(err).Type)
		})
	}

	t.Run("session belongs to another admin", func(t *testing.T) {
		sessions.sessions["session-2"] = &admin.Session{ID: "session-2", AdminID: "admin-2", ExpiresAt: time.Now().Add(time.Hour)}
		_, err := auth.Authenticate(ctx, "admin-1|session-2")
		require.Error(t, err)
		assert.Equal(t, errors.ErrorTypeTokenInvalid, errors.GetAuthError(err).Type)
	})

	t.Run("expired session", func(t *testing.T) {
		sessions.sessions["session-3"] = &admin.Session{ID: "session-3", AdminID: "admin-1", ExpiresAt: time.Now().Add(-time.Minute)}
		_, err := auth.Authenticate(ctx, "admin-1|session-3")
		require.Error(t, err)
		assert.Equal(t, errors.ErrorTypeTokenExpired, errors.GetAuthError(err).Type)
	})
}

func TestSignupUseCase(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryAdminRepository()
	uc := NewSignupUseCase(repo, prefixHasher{}, logger.NewNop())

	created, err := uc.Execute(ctx, SignupCommand{
		Username: "editor",
		Password: "s3cret-pass",
		Email:    "Editor@Example.com",
		Mobile:   "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, "staff", created.Role)
	assert.Equal(t, "editor@example.com", created.Email)
	assert.True(t, created.Active)

	stored, _ := repo.GetByID(ctx, created.ID)
	require.NotNil(t, stored)
	assert.Equal(t, "hashed:s3cret-pass", stored.PasswordHash())

	_, err = uc.Execute(ctx, SignupCommand{Username: "other", Password: "s3cret-pass", Email: "editor@example.com"})
	verrs := errors.GetValidationErrors(err)
	require.NotNil(t, verrs)
	assert.True(t, verrs.HasKind("username", errors.KindUnique))
	assert.Equal(t, []string{admin.MsgDuplicateAccount}, verrs.Messages("username"))
}

func TestSignupUseCase_Invalid(t *testing.T) {
	uc := NewSignupUseCase(newMemoryAdminRepository(), prefixHasher{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), SignupCommand{Username: "editor", Password: "short", Email: "x@example.com", Role: "owner"})
	verrs := errors.GetValidationErrors(err)
	require.NotNil(t, verrs)
	assert.True(t, verrs.Has("password"))
	assert.True(t, verrs.Has("role"))

	_, err = uc.Execute(context.Background(), SignupCommand{Username: "editor", Password: "s3cret-pass", Email: "not-an-email"})
	verrs = errors.GetValidationErrors(err)
	require.NotNil(t, verrs)
	assert.True(t, verrs.Has("email"))
}

func TestAdminQueries(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryAdminRepository()
	boss := seedAdmin(repo, "boss", "s3cret-pass", admin.RoleAdmin)
	seedAdmin(repo, "clerk", "s3cret-pass", admin.RoleStaff)

	got, err := NewGetAdminUserUseCase(repo, logger.NewNop()).Execute(ctx, boss.ID())
	require.NoError(t, err)
	assert.Equal(t, "boss", got.Username)

	_, err = NewGetAdminUserUseCase(repo, logger.NewNop()).Execute(ctx, "missing")
	assert.True(t, errors.IsNotFoundError(err))

	list, err := NewListAdminUsersUseCase(repo, logger.NewNop()).Execute(ctx, ListAdminUsersQuery{Role: "staff"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)
	assert.Equal(t, "clerk", list.Items[0].Username)
	assert.Equal(t, 1, list.Page)
}
