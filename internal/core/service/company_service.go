package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/companyhub/directory-api/internal/core/domain"
	"github.com/companyhub/directory-api/internal/core/pagination"
	"github.com/companyhub/directory-api/internal/core/ports"
)

type CompanyService struct {
	companies ports.CompanyRepository
	services  ports.ServiceRepository
	users     ports.UserRepository
	logger    zerolog.Logger
}

func NewCompanyService(companies ports.CompanyRepository, services ports.ServiceRepository, users ports.UserRepository, logger zerolog.Logger) *CompanyService {
	return &CompanyService{companies: companies, services: services, users: users, logger: logger}
}

func (s *CompanyService) ListCompanies(ctx context.Context, search string, page pagination.Params) (pagination.Page[*domain.Company], error) {
	companies, total, err := s.companies.List(ctx, ports.ListCompaniesFilter{
		Search: search,
		Limit:  page.Limit,
		Offset: page.Offset(),
	})
	if err != nil {
		return pagination.Page[*domain.Company]{}, fmt.Errorf("list companies: %w", err)
	}
	return pagination.NewPage(companies, total, page), nil
}

func (s *CompanyService) GetCompany(ctx context.Context, id int64) (*domain.Company, error) {
	return s.companies.FindByID(ctx, id)
}

// CreateCompany stores a new company. A non-nil OwnerID must reference a live user.
func (s *CompanyService) CreateCompany(ctx context.Context, input ports.CreateCompanyInput) (*domain.Company, error) {
	if err := s.checkOwner(ctx, input.OwnerID); err != nil {
		return nil, err
	}

	company := &domain.Company{
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     input.OwnerID,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}

	s.logger.Info().Int64("company_id", company.ID).Msg("company created")
	return company, nil
}

func (s *CompanyService) UpdateCompany(ctx context.Context, id int64, update ports.CompanyUpdate) (*domain.Company, error) {
	if _, err := s.companies.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.checkOwner(ctx, update.OwnerID); err != nil {
		return nil, err
	}

	company, err := s.companies.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("company_id", id).Msg("company updated")
	return company, nil
}

// DeleteCompany flags the company and its live services as deleted.
func (s *CompanyService) DeleteCompany(ctx context.Context, id int64) error {
	n, err := s.companies.SoftDeleteCascade(ctx, id)
	if err != nil {
		return err
	}

	s.logger.Info().Int64("company_id", id).Int64("services_deleted", n).Msg("company deleted")
	return nil
}

// ListCompanyServices returns the live services linked to a live company.
func (s *CompanyService) ListCompanyServices(ctx context.Context, companyID int64, page pagination.Params) (pagination.Page[*domain.Service], error) {
	if _, err := s.companies.FindByID(ctx, companyID); err != nil {
		return pagination.Page[*domain.Service]{}, err
	}

	services, total, err := s.services.List(ctx, ports.ListServicesFilter{
		CompanyID: companyID,
		Limit:     page.Limit,
		Offset:    page.Offset(),
	})
	if err != nil {
		return pagination.Page[*domain.Service]{}, fmt.Errorf("list company services: %w", err)
	}
	return pagination.NewPage(services, total, page), nil
}

func (s *CompanyService) checkOwner(ctx context.Context, ownerID *int64) error {
	if ownerID == nil {
		return nil
	}

	_, err := s.users.FindByID(ctx, *ownerID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.ErrInvalidOwner
	}
	if err != nil {
		return fmt.Errorf("find owner: %w", err)
	}
	return nil
}
