package mappers

import (
	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/infrastructure/persistence/models"
)

// ReferenceMapper handles the conversion between registry entities and rows.
// The kind travels with the query since every registry shares one row shape.
type ReferenceMapper interface {
	ToEntity(kind reference.Kind, model *models.ReferenceModel) *reference.Entity
	ToModel(entity *reference.Entity) *models.ReferenceModel
	ToEntities(kind reference.Kind, models []*models.ReferenceModel) []*reference.Entity
}

type referenceMapper struct{}

func NewReferenceMapper() ReferenceMapper {
	return &referenceMapper{}
}

func (m *referenceMapper) ToEntity(kind reference.Kind, model *models.ReferenceModel) *reference.Entity {
	if model == nil {
		return nil
	}
	return reference.ReconstructEntity(kind, model.ID, model.Name, model.CreatedAt, model.UpdatedAt)
}

func (m *referenceMapper) ToModel(entity *reference.Entity) *models.ReferenceModel {
	if entity == nil {
		return nil
	}
	return &models.ReferenceModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *referenceMapper) ToEntities(kind reference.Kind, rows []*models.ReferenceModel) []*reference.Entity {
	entities := make([]*reference.Entity, 0, len(rows))
	for _, row := range rows {
		entities = append(entities, m.ToEntity(kind, row))
	}
	return entities
}
