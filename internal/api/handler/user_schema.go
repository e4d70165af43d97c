package handler

import (
	"github.com/companyhub/directory-api/internal/core/domain"
	"github.com/companyhub/directory-api/internal/core/pagination"
	"github.com/companyhub/directory-api/internal/core/ports"
)

type updateUserRequest struct {
	FullName *string `json:"fullName" validate:"omitnil,min=3,max=255"`
	Email    *string `json:"email" validate:"omitnil,email,max=255"`
	Role     *string `json:"role" validate:"omitnil,role"`
}

func (r updateUserRequest) empty() bool {
	return r.FullName == nil && r.Email == nil && r.Role == nil
}

func (r updateUserRequest) toUpdate() ports.UserUpdate {
	update := ports.UserUpdate{FullName: r.FullName, Email: r.Email}
	if r.Role != nil {
		role := domain.Role(*r.Role)
		update.Role = &role
	}
	return update
}

type listUsersQuery struct {
	Search    string `query:"search"`
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder"`
}

type userPage = pagination.Page[*domain.User]
