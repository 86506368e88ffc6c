package subscriber

import "context"

type Repository interface {
	Create(ctx context.Context, subscriber *Subscriber) error
	GetByID(ctx context.Context, id string) (*Subscriber, error)
	Update(ctx context.Context, subscriber *Subscriber) error
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*Subscriber, int64, error)

	// ListForReport returns every subscriber that is not deleted, ordered by name.
	ListForReport(ctx context.Context) ([]*Subscriber, error)
}

// ListFilter represents filtering and pagination options for subscriber list.
// A nil IsDeleted lists every subscriber regardless of state.
type ListFilter struct {
	Page       int
	PageSize   int
	IsDeleted  *bool
	CategoryID string
	TypeID     string
	Search     string
}
