package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcworld/magadmin/internal/domain/admin"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "h:" + p, nil }
func (plainHasher) Verify(p, h string) error {
	if h != "h:"+p {
		return assert.AnError
	}
	return nil
}

func TestAdminUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAdminUserRepository(setupTestDB(t), logger.NewNop())

	u, err := admin.NewUser(admin.Params{Username: "boss", Email: "Boss@Example.com", Role: admin.RoleAdmin}, "s3cret-pass", plainHasher{})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, u))

	clone, err := admin.NewUser(admin.Params{Username: "boss", Email: "other@example.com"}, "s3cret-pass", plainHasher{})
	require.NoError(t, err)
	assert.True(t, errors.IsDuplicateError(repo.Create(ctx, clone)))

	got, err := repo.GetByUsername(ctx, "boss")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, admin.RoleAdmin, got.Role())
	assert.NoError(t, got.VerifyPassword("s3cret-pass", plainHasher{}))
	assert.Nil(t, got.LastLogin())

	got.RecordLogin(time.Now())
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.NotNil(t, got.LastLogin())
	assert.True(t, got.IsActive())

	taken, err := repo.ExistsByUsernameOrEmail(ctx, "someone", "BOSS@example.com")
	require.NoError(t, err)
	assert.True(t, taken)
	taken, err = repo.ExistsByUsernameOrEmail(ctx, "someone", "someone@example.com")
	require.NoError(t, err)
	assert.False(t, taken)

	staff, err := admin.NewUser(admin.Params{Username: "clerk", Email: "clerk@example.com"}, "s3cret-pass", plainHasher{})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, staff))

	items, total, err := repo.List(ctx, admin.ListFilter{Role: "staff"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "clerk", items[0].Username())

	_, total, err = repo.List(ctx, admin.ListFilter{Search: "EXAMPLE"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	missing, err := repo.GetByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
