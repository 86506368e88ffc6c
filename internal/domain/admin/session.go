package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	AdminID   string
	Username  string
	Role      Role
	SessionID string
}

// IsAdmin reports whether the principal holds the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// Session is a server-side login record. A token is only honoured while its
// session exists.
type Session struct {
	ID        string
	AdminID   string
	Username  string
	Role      Role
	CreatedAt time.Time
	ExpiresAt time.Time
}

func NewSession(u *User, ttl time.Duration) (*Session, error) {
	if u == nil || u.ID() == "" {
		return nil, fmt.Errorf("admin ID is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.NewString(),
		AdminID:   u.ID(),
		Username:  u.Username(),
		Role:      u.Role(),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

func (s *Session) IsExpired() bool {
	return time.Now().UTC().After(s.ExpiresAt)
}

// TTL is the remaining lifetime, never negative.
func (s *Session) TTL() time.Duration {
	d := time.Until(s.ExpiresAt)
	if d < 0 {
		return 0
	}
	return d
}

func (s *Session) Principal() *Principal {
	return &Principal{AdminID: s.AdminID, Username: s.Username, Role: s.Role, SessionID: s.ID}
}

// SessionStore keeps live sessions. Get returns (nil, nil) for an unknown id.
type SessionStore interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) (bool, error)
}

// TokenClaims is what a bearer token carries.
type TokenClaims struct {
	AdminID   string
	Role      Role
	SessionID string
	ExpiresAt time.Time
}

// TokenIssuer signs and verifies bearer tokens.
type TokenIssuer interface {
	Issue(session *Session) (string, error)
	Parse(token string) (*TokenClaims, error)
}

// Authenticator turns a bearer token into a principal or an authentication error.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*Principal, error)
}
