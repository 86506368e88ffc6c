package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tcworld/magadmin/internal/domain/admin"
	"github.com/tcworld/magadmin/internal/shared/errors"
)

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	other, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "hashes are salted")

	assert.NoError(t, h.Verify("s3cret-pass", hash))
	assert.Error(t, h.Verify("wrong", hash))
	assert.Error(t, h.Verify("s3cret-pass", "not-a-hash"))
}

func TestNewBcryptPasswordHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(1).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(99).cost)
}

func TestBcryptPasswordHasher_NeedsRehash(t *testing.T) {
	weak := NewBcryptPasswordHasher(bcrypt.MinCost)
	hash, err := weak.Hash("s3cret-pass")
	require.NoError(t, err)

	assert.False(t, weak.NeedsRehash(hash))
	assert.True(t, NewBcryptPasswordHasher(bcrypt.MinCost+1).NeedsRehash(hash))
	assert.True(t, weak.NeedsRehash("not-a-hash"))
}

func newSession(ttl time.Duration) *admin.Session {
	now := time.Now().UTC()
	return &admin.Session{
		ID:        "session-1",
		AdminID:   "admin-1",
		Username:  "boss",
		Role:      admin.RoleAdmin,
		CreatedAt: now.Add(-time.Minute),
		ExpiresAt: now.Add(ttl),
	}
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "magadmin")

	token, err := svc.Issue(newSession(time.Hour))
	require.NoError(t, err)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "session-1", claims.SessionID)
	assert.Equal(t, admin.RoleAdmin, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 2*time.Second)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService("test-secret", "magadmin")

	expired, err := svc.Issue(newSession(-time.Second))
	require.NoError(t, err)
	_, err = svc.Parse(expired)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeTokenExpired, errors.GetAuthError(err).Type)

	foreign, err := NewJWTService("other-secret", "magadmin").Issue(newSession(time.Hour))
	require.NoError(t, err)
	_, err = svc.Parse(foreign)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeTokenInvalid, errors.GetAuthError(err).Type)

	wrongIssuer, err := NewJWTService("test-secret", "someone-else").Issue(newSession(time.Hour))
	require.NoError(t, err)
	_, err = svc.Parse(wrongIssuer)
	assert.True(t, errors.IsAuthError(err))

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"admin_id": "admin-1", "session_id": "s"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.Parse(unsigned)
	assert.True(t, errors.IsAuthError(err))

	_, err = svc.Parse("garbage")
	assert.True(t, errors.IsAuthError(err))
}
