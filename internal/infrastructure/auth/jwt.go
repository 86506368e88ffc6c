package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tcworld/magadmin/internal/domain/admin"
	apperrors "github.com/tcworld/magadmin/internal/shared/errors"
)

type Claims struct {
	AdminID   string     `json:"admin_id"`
	SessionID string     `json:"session_id"`
	Role      admin.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTService signs HS256 bearer tokens bound to a session.
type JWTService struct {
	secret []byte
	issuer string
}

var _ admin.TokenIssuer = (*JWTService)(nil)

func NewJWTService(secret, issuer string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Issue signs a token that expires with the session.
func (s *JWTService) Issue(session *admin.Session) (string, error) {
	claims := &Claims{
		AdminID:   session.AdminID,
		SessionID: session.ID,
		Role:      session.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   session.AdminID,
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			NotBefore: jwt.NewNumericDate(session.CreatedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// Parse verifies signature, issuer and expiry. Failures are authentication errors.
func (s *JWTService) Parse(tokenString string) (*admin.TokenClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.NewTokenExpiredError("token")
		}
		return nil, apperrors.NewTokenInvalidError("token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" || claims.AdminID == "" {
		return nil, apperrors.NewTokenInvalidError("token")
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return &admin.TokenClaims{
		AdminID:   claims.AdminID,
		Role:      claims.Role,
		SessionID: claims.SessionID,
		ExpiresAt: expiresAt,
	}, nil
}
