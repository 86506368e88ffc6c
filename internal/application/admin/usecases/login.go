package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/tcworld/magadmin/internal/application/admin/dto"
	"github.com/tcworld/magadmin/internal/domain/admin"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginUseCase struct {
	repo     admin.Repository
	hasher   admin.PasswordHasher
	sessions admin.SessionStore
	tokens   admin.TokenIssuer
	ttl      time.Duration
	logger   logger.Interface
}

func NewLoginUseCase(
	repo admin.Repository,
	hasher admin.PasswordHasher,
	sessions admin.SessionStore,
	tokens admin.TokenIssuer,
	ttl time.Duration,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		repo:     repo,
		hasher:   hasher,
		sessions: sessions,
		tokens:   tokens,
		ttl:      ttl,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(cmd.Username)
	u, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to load admin user", "username", username, "error", err)
		return nil, err
	}
	if u == nil {
		uc.logger.Warnw("login failed: unknown username", "username", username)
		return nil, errors.NewInvalidCredentialsError()
	}
	if err := u.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		uc.logger.Warnw("login failed: wrong password", "admin_id", u.ID())
		return nil, errors.NewInvalidCredentialsError()
	}
	if !u.IsActive() {
		return nil, errors.NewAccountInactiveError()
	}

	session, err := admin.NewSession(u, uc.ttl)
	if err != nil {
		return nil, err
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		uc.logger.Errorw("failed to store session", "admin_id", u.ID(), "error", err)
		return nil, err
	}
	token, err := uc.tokens.Issue(session)
	if err != nil {
		uc.logger.Errorw("failed to issue token", "admin_id", u.ID(), "error", err)
		return nil, err
	}

	if upgraded, err := u.UpgradePassword(cmd.Password, uc.hasher); err != nil {
		uc.logger.Warnw("failed to upgrade password hash", "admin_id", u.ID(), "error", err)
	} else if upgraded {
		uc.logger.Infow("password hash upgraded", "admin_id", u.ID())
	}
	u.RecordLogin(time.Now())
	if err := uc.repo.Update(ctx, u); err != nil {
		uc.logger.Warnw("failed to record last login", "admin_id", u.ID(), "error", err)
	}

	uc.logger.Infow("admin logged in", "admin_id", u.ID(), "session_id", session.ID)
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		Message:   "Login successful!",
		Admin:     dto.ToAdminUserDTO(u),
	}, nil
}
