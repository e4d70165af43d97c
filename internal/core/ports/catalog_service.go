package ports

import (
	"context"

	"github.com/companyhub/directory-api/internal/core/domain"
	"github.com/companyhub/directory-api/internal/core/pagination"
)

// CreateServiceInput carries the fields of a new service.
type CreateServiceInput struct {
	Name        string
	Description *string
	Price       float64
	CompanyIDs  []int64
}

// ListServicesQuery is the caller-facing filter of a service listing.
type ListServicesQuery struct {
	CompanyID int64
	Search    string
}

// CatalogService manages services offered by companies.
type CatalogService interface {
	ListServices(ctx context.Context, query ListServicesQuery, page pagination.Params) (pagination.Page[*domain.Service], error)
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	GetServiceCompany(ctx context.Context, id int64) (*domain.Company, error)
	CreateService(ctx context.Context, input CreateServiceInput) (*domain.Service, error)
	UpdateService(ctx context.Context, id int64, update ServiceUpdate) (*domain.Service, error)
	DeleteService(ctx context.Context, id int64) error
}
