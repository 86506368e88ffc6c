package plan

import "context"

type Repository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id string) (*Plan, error)
	Update(ctx context.Context, plan *Plan) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*Plan, int64, error)

	// ListByIdentity returns every plan sharing a (language, mode) pair.
	ListByIdentity(ctx context.Context, languageID, modeID string) ([]*Plan, error)
}

// ListFilter represents filtering and pagination options for plan list
type ListFilter struct {
	Page       int
	PageSize   int
	LanguageID string
	ModeID     string
}
