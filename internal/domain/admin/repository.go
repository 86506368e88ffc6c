package admin

import "context"

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, user *User) error
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

// ListFilter represents filtering and pagination options for admin user list
type ListFilter struct {
	Page     int
	PageSize int
	Role     string
	Search   string
}
