package usecases

import (
	"context"

	"github.com/tcworld/magadmin/internal/domain/admin"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

type LogoutUseCase struct {
	sessions admin.SessionStore
	logger   logger.Interface
}

func NewLogoutUseCase(sessions admin.SessionStore, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessions: sessions,
		logger:   logger,
	}
}

// Execute ends the principal's session. An unknown session is an authentication error.
func (uc *LogoutUseCase) Execute(ctx context.Context, principal *admin.Principal) error {
	if principal == nil || principal.SessionID == "" {
		return errors.NewTokenMissingError()
	}
	deleted, err := uc.sessions.Delete(ctx, principal.SessionID)
	if err != nil {
		uc.logger.Errorw("failed to delete session", "session_id", principal.SessionID, "error", err)
		return err
	}
	if !deleted {
		return errors.NewTokenInvalidError("token")
	}
	uc.logger.Infow("admin logged out", "admin_id", principal.AdminID, "session_id", principal.SessionID)
	return nil
}
