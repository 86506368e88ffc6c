package mappers

import (
	"github.com/tcworld/magadmin/internal/domain/admin"
	"github.com/tcworld/magadmin/internal/infrastructure/persistence/models"
)

// AdminUserMapper handles the conversion between admin accounts and rows
type AdminUserMapper interface {
	ToEntity(model *models.AdminUserModel) *admin.User
	ToModel(entity *admin.User) *models.AdminUserModel
	ToEntities(models []*models.AdminUserModel) []*admin.User
}

type adminUserMapper struct{}

func NewAdminUserMapper() AdminUserMapper {
	return &adminUserMapper{}
}

func (m *adminUserMapper) ToEntity(model *models.AdminUserModel) *admin.User {
	if model == nil {
		return nil
	}
	return admin.ReconstructUser(admin.Params{
		ID:        model.ID,
		Username:  model.Username,
		Email:     model.Email,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Aadhaar:   model.Aadhaar,
		Mobile:    model.Mobile,
		Role:      admin.Role(model.Role),
	}, model.PasswordHash, model.Active, model.LastLogin, model.CreatedAt, model.UpdatedAt)
}

func (m *adminUserMapper) ToModel(entity *admin.User) *models.AdminUserModel {
	if entity == nil {
		return nil
	}
	return &models.AdminUserModel{
		ID:           entity.ID(),
		Username:     entity.Username(),
		Email:        entity.Email(),
		FirstName:    entity.FirstName(),
		LastName:     entity.LastName(),
		Aadhaar:      entity.Aadhaar(),
		Mobile:       entity.Mobile(),
		Role:         entity.Role().String(),
		PasswordHash: entity.PasswordHash(),
		Active:       entity.IsActive(),
		LastLogin:    entity.LastLogin(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *adminUserMapper) ToEntities(rows []*models.AdminUserModel) []*admin.User {
	entities := make([]*admin.User, 0, len(rows))
	for _, row := range rows {
		entities = append(entities, m.ToEntity(row))
	}
	return entities
}
