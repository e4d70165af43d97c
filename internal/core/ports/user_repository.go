package ports

import (
	"context"

	"github.com/companyhub/directory-api/internal/core/domain"
)

// User list sort columns and directions accepted by UserRepository.List.
const (
	SortByCreatedAt = "createdAt"
	SortByFullName  = "fullName"
	SortByEmail     = "email"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListUsersFilter carries the query of an admin user listing.
type ListUsersFilter struct {
	Search    string // optional: case-insensitive match on full name or email
	SortBy    string // createdAt | fullName | email
	SortOrder string // asc | desc
	Limit     int
	Offset    int
}

// UserUpdate holds the fields an admin may change. Nil means unchanged.
type UserUpdate struct {
	FullName *string
	Email    *string
	Role     *domain.Role
}

// UserRepository persists user accounts. Every lookup skips deleted users.
type UserRepository interface {
	// Create inserts the user and fills in its id and timestamps.
	// Returns domain.ErrEmailInUse when the email is taken.
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// EmailExists also considers deleted users, since uniqueness is enforced
	// across the whole table.
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
	Update(ctx context.Context, id int64, update UserUpdate) (*domain.User, error)
	SoftDelete(ctx context.Context, id int64) error
}
