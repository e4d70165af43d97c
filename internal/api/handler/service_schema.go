package handler

import (
	"github.com/companyhub/directory-api/internal/core/domain"
	"github.com/companyhub/directory-api/internal/core/pagination"
	"github.com/companyhub/directory-api/internal/core/ports"
)

type createServiceRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=255"`
	Description *string  `json:"description" validate:"omitnil,max=2000"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	CompanyIDs  []int64  `json:"companyIds" validate:"required,min=1,dive,gt=0"`
}

type updateServiceRequest struct {
	Name        *string  `json:"name" validate:"omitnil,min=2,max=255"`
	Description *string  `json:"description" validate:"omitnil,max=2000"`
	Price       *float64 `json:"price" validate:"omitnil,gte=0"`
	CompanyIDs  []int64  `json:"companyIds" validate:"omitnil,min=1,dive,gt=0"`
}

func (r updateServiceRequest) empty() bool {
	return r.Name == nil && r.Description == nil && r.Price == nil && r.CompanyIDs == nil
}

func (r updateServiceRequest) toUpdate() ports.ServiceUpdate {
	return ports.ServiceUpdate{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CompanyIDs:  r.CompanyIDs,
	}
}

type serviceResponse struct {
	Service *domain.Service `json:"service"`
}

type servicePage = pagination.Page[*domain.Service]
