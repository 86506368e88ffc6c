package mappers

import (
	"github.com/tcworld/magadmin/internal/domain/plan"
	"github.com/tcworld/magadmin/internal/infrastructure/persistence/models"
)

// PlanMapper handles the conversion between domain entities and persistence models
type PlanMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.PlanModel) *plan.Plan

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *plan.Plan) *models.PlanModel

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.PlanModel) []*plan.Plan
}

type planMapper struct{}

// NewPlanMapper creates a new plan mapper
func NewPlanMapper() PlanMapper {
	return &planMapper{}
}

func (m *planMapper) ToEntity(model *models.PlanModel) *plan.Plan {
	if model == nil {
		return nil
	}
	return plan.ReconstructPlan(plan.Params{
		ID:               model.ID,
		Version:          model.Version,
		Name:             model.Name,
		StartDate:        fromDate(model.StartDate),
		Price:            model.Price,
		LanguageID:       model.LanguageID,
		ModeID:           model.ModeID,
		DurationInMonths: model.DurationInMonths,
	}, model.CreatedAt, model.UpdatedAt)
}

func (m *planMapper) ToModel(entity *plan.Plan) *models.PlanModel {
	if entity == nil {
		return nil
	}
	return &models.PlanModel{
		ID:               entity.ID(),
		Version:          entity.Version(),
		Name:             entity.Name(),
		StartDate:        toDate(entity.StartDate()),
		Price:            entity.Price(),
		LanguageID:       entity.LanguageID(),
		ModeID:           entity.ModeID(),
		DurationInMonths: entity.DurationInMonths(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}
}

func (m *planMapper) ToEntities(rows []*models.PlanModel) []*plan.Plan {
	entities := make([]*plan.Plan, 0, len(rows))
	for _, row := range rows {
		entities = append(entities, m.ToEntity(row))
	}
	return entities
}
