package ports

import (
	"context"

	"github.com/companyhub/directory-api/internal/core/domain"
)

// ListCompaniesFilter carries the query of a company listing.
type ListCompaniesFilter struct {
	Search string // optional: case-insensitive match on name
	Limit  int
	Offset int
}

// CompanyUpdate holds the fields to change. Nil means unchanged.
type CompanyUpdate struct {
	Name        *string
	Description *string
	OwnerID     *int64
}

// CompanyRepository persists companies. Every read skips deleted rows.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	FindByID(ctx context.Context, id int64) (*domain.Company, error)
	// List returns a page of companies, newest first, and the total count.
	List(ctx context.Context, filter ListCompaniesFilter) ([]*domain.Company, int64, error)
	Update(ctx context.Context, id int64, update CompanyUpdate) (*domain.Company, error)
	// SoftDeleteCascade flags the company and every live service linked to it
	// in a single transaction. It returns the number of services flagged.
	SoftDeleteCascade(ctx context.Context, id int64) (int64, error)
	// MissingIDs returns the ids in the input that do not reference live companies.
	MissingIDs(ctx context.Context, ids []int64) ([]int64, error)
	// FindFirstByService returns the live company with the lowest id linked
	// to a live service.
	FindFirstByService(ctx context.Context, serviceID int64) (*domain.Company, error)
}
