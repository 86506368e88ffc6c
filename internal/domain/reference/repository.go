package reference

import "context"

// Repository persists every registry; kind selects the collection.
type Repository interface {
	Create(ctx context.Context, entity *Entity) error
	GetByID(ctx context.Context, kind Kind, id string) (*Entity, error)
	Update(ctx context.Context, entity *Entity) error
	Delete(ctx context.Context, kind Kind, id string) error
	List(ctx context.Context, kind Kind, filter ListFilter) ([]*Entity, int64, error)
	Exists(ctx context.Context, kind Kind, id string) (bool, error)
}

// ListFilter represents filtering and pagination options for a registry list
type ListFilter struct {
	Page     int
	PageSize int
	Search   string
}
