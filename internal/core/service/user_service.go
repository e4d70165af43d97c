package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/companyhub/directory-api/internal/core/domain"
	"github.com/companyhub/directory-api/internal/core/pagination"
	"github.com/companyhub/directory-api/internal/core/ports"
)

// UserService implements admin management of user accounts.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// ListUsers returns a page of live users. Unknown sort options fall back to
// createdAt descending.
func (s *UserService) ListUsers(ctx context.Context, filter ports.ListUsersFilter, page pagination.Params) (pagination.Page[*domain.User], error) {
	switch filter.SortBy {
	case ports.SortByCreatedAt, ports.SortByFullName, ports.SortByEmail:
	default:
		filter.SortBy = ports.SortByCreatedAt
	}
	if filter.SortOrder != ports.SortAsc {
		filter.SortOrder = ports.SortDesc
	}
	filter.Limit = page.Limit
	filter.Offset = page.Offset()

	users, total, err := s.users.List(ctx, filter)
	if err != nil {
		return pagination.Page[*domain.User]{}, fmt.Errorf("list users: %w", err)
	}
	return pagination.NewPage(users, total, page), nil
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// UpdateUser applies a partial update. A taken email yields domain.ErrEmailInUse.
func (s *UserService) UpdateUser(ctx context.Context, id int64, update ports.UserUpdate) (*domain.User, error) {
	user, err := s.users.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", id).Msg("user updated")
	return user, nil
}

// DeleteUser flags the user as deleted. Deleting twice yields domain.ErrUserNotFound.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.users.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
