package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/companyhub/directory-api/internal/core/domain"
	"github.com/companyhub/directory-api/internal/core/pagination"
	"github.com/companyhub/directory-api/internal/core/ports"
)

// CatalogService manages services and their company links.
type CatalogService struct {
	services  ports.ServiceRepository
	companies ports.CompanyRepository
	logger    zerolog.Logger
}

func NewCatalogService(services ports.ServiceRepository, companies ports.CompanyRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{services: services, companies: companies, logger: logger}
}

func (s *CatalogService) ListServices(ctx context.Context, query ports.ListServicesQuery, page pagination.Params) (pagination.Page[*domain.Service], error) {
	services, total, err := s.services.List(ctx, ports.ListServicesFilter{
		CompanyID: query.CompanyID,
		Search:    query.Search,
		Limit:     page.Limit,
		Offset:    page.Offset(),
	})
	if err != nil {
		return pagination.Page[*domain.Service]{}, fmt.Errorf("list services: %w", err)
	}
	return pagination.NewPage(services, total, page), nil
}

func (s *CatalogService) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	return s.services.FindByID(ctx, id)
}

// GetServiceCompany returns the first live company of a live service.
func (s *CatalogService) GetServiceCompany(ctx context.Context, id int64) (*domain.Company, error) {
	return s.companies.FindFirstByService(ctx, id)
}

// CreateService stores a service linked to every company in input.CompanyIDs.
// Duplicate ids are collapsed; ids of missing or deleted companies are
// reported back in the error details.
func (s *CatalogService) CreateService(ctx context.Context, input ports.CreateServiceInput) (*domain.Service, error) {
	ids, err := s.checkCompanies(ctx, input.CompanyIDs)
	if err != nil {
		return nil, err
	}

	service := &domain.Service{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CompanyIDs:  ids,
	}
	if err := s.services.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.logger.Info().Int64("service_id", service.ID).Ints64("company_ids", ids).Msg("service created")
	return service, nil
}

// UpdateService applies a partial update. When update.CompanyIDs is set the
// links are validated like on creation and replaced.
func (s *CatalogService) UpdateService(ctx context.Context, id int64, update ports.ServiceUpdate) (*domain.Service, error) {
	if _, err := s.services.FindByID(ctx, id); err != nil {
		return nil, err
	}

	if update.CompanyIDs != nil {
		ids, err := s.checkCompanies(ctx, update.CompanyIDs)
		if err != nil {
			return nil, err
		}
		update.CompanyIDs = ids
	}

	service, err := s.services.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("service_id", id).Msg("service updated")
	return service, nil
}

func (s *CatalogService) DeleteService(ctx context.Context, id int64) error {
	if err := s.services.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("service_id", id).Msg("service deleted")
	return nil
}

func (s *CatalogService) checkCompanies(ctx context.Context, ids []int64) ([]int64, error) {
	ids = uniqueIDs(ids)

	missing, err := s.companies.MissingIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("check company ids: %w", err)
	}
	if len(missing) > 0 {
		return nil, domain.InvalidCompanyIDs(missing)
	}
	return ids, nil
}

// uniqueIDs drops repeated ids, keeping first-seen order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
