package handler

import (
	"github.com/companyhub/directory-api/internal/core/domain"
	"github.com/companyhub/directory-api/internal/core/pagination"
	"github.com/companyhub/directory-api/internal/core/ports"
)

type createCompanyRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Description *string `json:"description" validate:"omitnil,max=1000"`
	OwnerID     *int64  `json:"ownerId" validate:"omitnil,gt=0"`
}

type updateCompanyRequest struct {
	Name        *string `json:"name" validate:"omitnil,min=2,max=255"`
	Description *string `json:"description" validate:"omitnil,max=1000"`
	OwnerID     *int64  `json:"ownerId" validate:"omitnil,gt=0"`
}

func (r updateCompanyRequest) empty() bool {
	return r.Name == nil && r.Description == nil && r.OwnerID == nil
}

func (r updateCompanyRequest) toUpdate() ports.CompanyUpdate {
	return ports.CompanyUpdate{Name: r.Name, Description: r.Description, OwnerID: r.OwnerID}
}

type companyResponse struct {
	Company *domain.Company `json:"company"`
}

type companyPage = pagination.Page[*domain.Company]
