package ports

import (
	"context"

	"github.com/companyhub/directory-api/internal/core/domain"
	"github.com/companyhub/directory-api/internal/core/pagination"
)

// CreateCompanyInput carries the fields of a new company.
type CreateCompanyInput struct {
	Name        string
	Description *string
	OwnerID     *int64
}

type CompanyService interface {
	ListCompanies(ctx context.Context, search string, page pagination.Params) (pagination.Page[*domain.Company], error)
	GetCompany(ctx context.Context, id int64) (*domain.Company, error)
	CreateCompany(ctx context.Context, input CreateCompanyInput) (*domain.Company, error)
	UpdateCompany(ctx context.Context, id int64, update CompanyUpdate) (*domain.Company, error)
	DeleteCompany(ctx context.Context, id int64) error
	ListCompanyServices(ctx context.Context, companyID int64, page pagination.Params) (pagination.Page[*domain.Service], error)
}
