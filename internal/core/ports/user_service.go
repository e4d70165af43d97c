package ports

import (
	"context"

	"github.com/companyhub/directory-api/internal/core/domain"
	"github.com/companyhub/directory-api/internal/core/pagination"
)

type UserService interface {
	ListUsers(ctx context.Context, filter ListUsersFilter, page pagination.Params) (pagination.Page[*domain.User], error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, update UserUpdate) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
