package usecases

import (
	"context"
	"strings"

	"github.com/tcworld/magadmin/internal/application/common"
	"github.com/tcworld/magadmin/internal/application/subscriber/dto"
	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/domain/subscriber"
	"github.com/tcworld/magadmin/internal/domain/subscription"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
	"github.com/tcworld/magadmin/internal/shared/utils"
)

type CreateSubscriberCommand struct {
	ID                 string
	Name               *string
	RegistrationNumber string
	Address            string
	CityTown           string
	District           string
	State              string
	Pincode            string
	Phone              string
	Email              string
	CategoryID         string
	TypeID             string
	Notes              string
}

type CreateSubscriberUseCase struct {
	repo    subscriber.Repository
	refRepo reference.Repository
	logger  logger.Interface
}

func NewCreateSubscriberUseCase(repo subscriber.Repository, refRepo reference.Repository, logger logger.Interface) *CreateSubscriberUseCase {
	return &CreateSubscriberUseCase{
		repo:    repo,
		refRepo: refRepo,
		logger:  logger,
	}
}

func (uc *CreateSubscriberUseCase) Execute(ctx context.Context, cmd CreateSubscriberCommand) (*dto.SubscriberDTO, error) {
	id := strings.TrimSpace(cmd.ID)
	verrs := errors.NewValidationErrors()

	if id == "" {
		verrs.Add("_id", errors.MsgRequired)
	} else {
		exists, err := uc.repo.Exists(ctx, id)
		if err != nil {
			uc.logger.Errorw("failed to check subscriber id", "id", id, "error", err)
			return nil, err
		}
		if exists {
			verrs.AddUnique("_id", subscriber.MsgDuplicateID)
		}
	}

	verrs.RequireString("name", cmd.Name)
	checkEmail(verrs, cmd.Email)

	category, err := common.ResolveReference(ctx, verrs, uc.refRepo, reference.KindCategory, "category", cmd.CategoryID)
	if err != nil {
		uc.logger.Errorw("failed to resolve subscriber category", "category", cmd.CategoryID, "error", err)
		return nil, err
	}
	stype, err := common.ResolveReference(ctx, verrs, uc.refRepo, reference.KindType, "stype", cmd.TypeID)
	if err != nil {
		uc.logger.Errorw("failed to resolve subscriber type", "stype", cmd.TypeID, "error", err)
		return nil, err
	}

	if err := verrs.Err(); err != nil {
		uc.logger.Infow("subscriber create rejected", "id", id, "error", err)
		return nil, err
	}

	s, err := subscriber.NewSubscriber(subscriber.Params{
		ID:                 id,
		Name:               *cmd.Name,
		RegistrationNumber: cmd.RegistrationNumber,
		Address:            cmd.Address,
		CityTown:           cmd.CityTown,
		District:           cmd.District,
		State:              cmd.State,
		Pincode:            cmd.Pincode,
		Phone:              cmd.Phone,
		Email:              cmd.Email,
		CategoryID:         category.ID(),
		TypeID:             stype.ID(),
		Notes:              cmd.Notes,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		if errors.IsDuplicateError(err) {
			dup := errors.NewValidationErrors()
			dup.AddUnique("_id", subscriber.MsgDuplicateID)
			return nil, dup
		}
		uc.logger.Errorw("failed to create subscriber", "id", id, "error", err)
		return nil, err
	}

	uc.logger.Infow("subscriber created", "id", s.ID(), "email", utils.MaskEmail(s.Email()))
	return dto.ToSubscriberDTO(subscription.ComposeSubscriber(s, nil), ""), nil
}

// checkEmail accepts an empty address; anything else must parse.
func checkEmail(verrs *errors.ValidationErrors, email string) {
	email = strings.TrimSpace(email)
	if email != "" && !utils.IsEmail(email) {
		verrs.Add("email", subscriber.MsgInvalidEmail)
	}
}
