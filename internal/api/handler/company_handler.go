package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/companyhub/directory-api/internal/api/envelope"
	"github.com/companyhub/directory-api/internal/api/metrics"
	"github.com/companyhub/directory-api/internal/core/ports"
)

type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// List handles GET /companies.
//
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Page size (default 10, max 100)"
// @Param        search  query     string  false  "Substring of the company name"
// @Success      200     {object}  envelope.SuccessBody
// @Router       /companies [get]
func (h *CompanyHandler) List(c echo.Context) error {
	page, err := h.service.ListCompanies(c.Request().Context(), c.QueryParam("search"), pageParams(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success("Companies fetched successfully", page))
}

// Get handles GET /companies/:id.
//
// @Summary      Get a company
// @Tags         companies
// @Produce      json
// @Param        id   path      int  true  "Company id"
// @Success      200  {object}  envelope.SuccessBody{data=companyResponse}
// @Failure      400  {object}  envelope.ErrorBody
// @Failure      404  {object}  envelope.ErrorBody
// @Router       /companies/{id} [get]
func (h *CompanyHandler) Get(c echo.Context) error {
	id, err := pathID(c, "company")
	if err != nil {
		return err
	}

	company, err := h.service.GetCompany(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success("Company fetched successfully", companyResponse{Company: company}))
}

// Create handles POST /companies.
//
// @Summary      Create a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCompanyRequest  true  "Company"
// @Success      201   {object}  envelope.SuccessBody{data=companyResponse}
// @Failure      400   {object}  envelope.ErrorBody
// @Failure      401   {object}  envelope.ErrorBody
// @Failure      403   {object}  envelope.ErrorBody
// @Router       /companies [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	var req createCompanyRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	company, err := h.service.CreateCompany(c.Request().Context(), ports.CreateCompanyInput{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		return err
	}

	metrics.WritesTotal.WithLabelValues("company", "create").Inc()
	return c.JSON(http.StatusCreated, envelope.Success("Company created successfully", companyResponse{Company: company}))
}

// Update handles PATCH /companies/:id.
//
// @Summary      Update a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Company id"
// @Param        body  body      updateCompanyRequest  true  "Fields to change"
// @Success      200   {object}  envelope.SuccessBody{data=companyResponse}
// @Failure      400   {object}  envelope.ErrorBody
// @Failure      404   {object}  envelope.ErrorBody
// @Router       /companies/{id} [patch]
func (h *CompanyHandler) Update(c echo.Context) error {
	id, err := pathID(c, "company")
	if err != nil {
		return err
	}

	var req updateCompanyRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if req.empty() {
		return errNoFields
	}

	company, err := h.service.UpdateCompany(c.Request().Context(), id, req.toUpdate())
	if err != nil {
		return err
	}

	metrics.WritesTotal.WithLabelValues("company", "update").Inc()
	return c.JSON(http.StatusOK, envelope.Success("Company updated successfully", companyResponse{Company: company}))
}

// Delete handles DELETE /companies/:id. Services linked to the company are
// deleted with it.
//
// @Summary      Delete a company
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Company id"
// @Success      200  {object}  envelope.SuccessBody
// @Failure      400  {object}  envelope.ErrorBody
// @Failure      404  {object}  envelope.ErrorBody
// @Router       /companies/{id} [delete]
func (h *CompanyHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "company")
	if err != nil {
		return err
	}

	if err := h.service.DeleteCompany(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.WritesTotal.WithLabelValues("company", "delete").Inc()
	return c.JSON(http.StatusOK, envelope.Success("Company deleted successfully", nil))
}

// Services handles GET /companies/:id/services.
//
// @Summary      List the services of a company
// @Tags         companies
// @Produce      json
// @Param        id     path      int  true   "Company id"
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10, max 100)"
// @Success      200    {object}  envelope.SuccessBody
// @Failure      400    {object}  envelope.ErrorBody
// @Failure      404    {object}  envelope.ErrorBody
// @Router       /companies/{id}/services [get]
func (h *CompanyHandler) Services(c echo.Context) error {
	id, err := pathID(c, "company")
	if err != nil {
		return err
	}

	page, err := h.service.ListCompanyServices(c.Request().Context(), id, pageParams(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success("Company services fetched successfully", page))
}
