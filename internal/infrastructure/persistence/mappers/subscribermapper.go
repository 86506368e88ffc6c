package mappers

import (
	"github.com/tcworld/magadmin/internal/domain/subscriber"
	"github.com/tcworld/magadmin/internal/infrastructure/persistence/models"
)

// SubscriberMapper handles the conversion between subscribers and rows
type SubscriberMapper interface {
	ToEntity(model *models.SubscriberModel) *subscriber.Subscriber
	ToModel(entity *subscriber.Subscriber) *models.SubscriberModel
	ToEntities(models []*models.SubscriberModel) []*subscriber.Subscriber
}

type subscriberMapper struct{}

func NewSubscriberMapper() SubscriberMapper {
	return &subscriberMapper{}
}

func (m *subscriberMapper) ToEntity(model *models.SubscriberModel) *subscriber.Subscriber {
	if model == nil {
		return nil
	}
	return subscriber.ReconstructSubscriber(subscriber.Params{
		ID:                 model.ID,
		Name:               model.Name,
		RegistrationNumber: model.RegistrationNumber,
		Address:            model.Address,
		CityTown:           model.CityTown,
		District:           model.District,
		State:              model.State,
		Pincode:            model.Pincode,
		Phone:              model.Phone,
		Email:              model.Email,
		CategoryID:         model.CategoryID,
		TypeID:             model.TypeID,
		Notes:              model.Notes,
	}, model.IsDeleted, model.CreatedAt, model.UpdatedAt)
}

func (m *subscriberMapper) ToModel(entity *subscriber.Subscriber) *models.SubscriberModel {
	if entity == nil {
		return nil
	}
	return &models.SubscriberModel{
		ID:                 entity.ID(),
		Name:               entity.Name(),
		RegistrationNumber: entity.RegistrationNumber(),
		Address:            entity.Address(),
		CityTown:           entity.CityTown(),
		District:           entity.District(),
		State:              entity.State(),
		Pincode:            entity.Pincode(),
		Phone:              entity.Phone(),
		Email:              entity.Email(),
		CategoryID:         entity.CategoryID(),
		TypeID:             entity.TypeID(),
		Notes:              entity.Notes(),
		IsDeleted:          entity.IsDeleted(),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}
}

func (m *subscriberMapper) ToEntities(rows []*models.SubscriberModel) []*subscriber.Subscriber {
	entities := make([]*subscriber.Subscriber, 0, len(rows))
	for _, row := range rows {
		entities = append(entities, m.ToEntity(row))
	}
	return entities
}
