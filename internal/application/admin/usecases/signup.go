package usecases

import (
	"context"

	"github.com/tcworld/magadmin/internal/application/admin/dto"
	"github.com/tcworld/magadmin/internal/domain/admin"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
	"github.com/tcworld/magadmin/internal/shared/utils"
)

type SignupCommand struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	Aadhaar   string
	Mobile    string
	Role      string
}

type SignupUseCase struct {
	repo   admin.Repository
	hasher admin.PasswordHasher
	logger logger.Interface
}

func NewSignupUseCase(repo admin.Repository, hasher admin.PasswordHasher, logger logger.Interface) *SignupUseCase {
	return &SignupUseCase{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

func (uc *SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (*dto.AdminUserDTO, error) {
	params := admin.Params{
		Username:  cmd.Username,
		Email:     cmd.Email,
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		Aadhaar:   cmd.Aadhaar,
		Mobile:    cmd.Mobile,
		Role:      admin.Role(cmd.Role),
	}

	u, err := admin.NewUser(params, cmd.Password, uc.hasher)
	if err != nil {
		return nil, err
	}
	if !utils.IsEmail(u.Email()) {
		return nil, errors.FieldValidation("email", "Enter a valid email address.")
	}

	taken, err := uc.repo.ExistsByUsernameOrEmail(ctx, u.Username(), u.Email())
	if err != nil {
		uc.logger.Errorw("failed to check admin uniqueness", "username", u.Username(), "error", err)
		return nil, err
	}
	if taken {
		verrs := errors.NewValidationErrors()
		verrs.AddUnique("username", admin.MsgDuplicateAccount)
		return nil, verrs
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			verrs := errors.NewValidationErrors()
			verrs.AddUnique("username", admin.MsgDuplicateAccount)
			return nil, verrs
		}
		uc.logger.Errorw("failed to create admin user", "username", u.Username(), "error", err)
		return nil, err
	}

	uc.logger.Infow("admin user created", "admin_id", u.ID(), "username", u.Username(), "role", u.Role(), "aadhaar", utils.MaskTail(u.Aadhaar(), 4))
	return dto.ToAdminUserDTO(u), nil
}
