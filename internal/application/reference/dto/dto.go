package dto

import (
	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/shared/mapper"
)

// ReferenceDTO is the wire shape shared by every registry.
type ReferenceDTO struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// CreateReferenceRequest is the body of a registry create.
type CreateReferenceRequest struct {
	ID   string  `json:"_id"`
	Name *string `json:"name"`
}

// UpdateReferenceRequest is the body of a partial registry update.
type UpdateReferenceRequest struct {
	Name *string `json:"name"`
}

func ToReferenceDTO(e *reference.Entity) *ReferenceDTO {
	if e == nil {
		return nil
	}
	return &ReferenceDTO{ID: e.ID(), Name: e.Name()}
}

func ToReferenceDTOList(entities []*reference.Entity) []*ReferenceDTO {
	return mapper.MapSlice(entities, ToReferenceDTO)
}
