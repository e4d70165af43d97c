package ports

import (
	"context"

	"github.com/companyhub/directory-api/internal/core/domain"
)

// ListServicesFilter carries the query of a service listing.
type ListServicesFilter struct {
	CompanyID int64  // optional: 0 = any company
	Search    string // optional: case-insensitive match on name
	Limit     int
	Offset    int
}

// ServiceUpdate holds the fields to change. Nil means unchanged; a non-nil
// CompanyIDs replaces every company link.
type ServiceUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	CompanyIDs  []int64
}

// ServiceRepository persists services and their company links. Every read
// skips deleted rows.
type ServiceRepository interface {
	// Create inserts the service and its company links in one transaction.
	Create(ctx context.Context, service *domain.Service) error
	FindByID(ctx context.Context, id int64) (*domain.Service, error)
	// List returns a page of services, newest first, and the total count.
	List(ctx context.Context, filter ListServicesFilter) ([]*domain.Service, int64, error)
	Update(ctx context.Context, id int64, update ServiceUpdate) (*domain.Service, error)
	SoftDelete(ctx context.Context, id int64) error
}
