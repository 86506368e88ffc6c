package usecases

import (
	"context"
	"strings"

	"github.com/tcworld/magadmin/internal/domain/admin"
	"github.com/tcworld/magadmin/internal/shared/errors"
)

// TokenAuthenticator accepts a signed token only while its session is stored.
type TokenAuthenticator struct {
	tokens   admin.TokenIssuer
	sessions admin.SessionStore
}

var _ admin.Authenticator = (*TokenAuthenticator)(nil)

func NewTokenAuthenticator(tokens admin.TokenIssuer, sessions admin.SessionStore) *TokenAuthenticator {
	return &TokenAuthenticator{
		tokens:   tokens,
		sessions: sessions,
	}
}

func (a *TokenAuthenticator) Authenticate(ctx context.Context, token string) (*admin.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.NewTokenMissingError()
	}

	claims, err := a.tokens.Parse(token)
	if err != nil {
		if errors.IsAuthError(err) {
			return nil, err
		}
		return nil, errors.NewTokenInvalidError("token")
	}

	session, err := a.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.AdminID != claims.AdminID {
		return nil, errors.NewTokenInvalidError("token")
	}
	if session.IsExpired() {
		return nil, errors.NewTokenExpiredError("token")
	}
	return session.Principal(), nil
}
