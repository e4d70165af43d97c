package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/companyhub/directory-api/internal/api/envelope"
	"github.com/companyhub/directory-api/internal/api/metrics"
	"github.com/companyhub/directory-api/internal/core/ports"
)

// ServiceHandler serves the /services routes.
type ServiceHandler struct {
	catalog ports.CatalogService
}

func NewServiceHandler(catalog ports.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

// List handles GET /services. A companyId that is not a positive integer is
// ignored.
//
// @Summary      List services
// @Tags         services
// @Produce      json
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        limit      query     int     false  "Page size (default 10, max 100)"
// @Param        companyId  query     int     false  "Only services offered by this company"
// @Param        search     query     string  false  "Substring of the service name"
// @Success      200        {object}  envelope.SuccessBody
// @Router       /services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	query := ports.ListServicesQuery{Search: c.QueryParam("search")}
	if id, ok := positiveInt(c.QueryParam("companyId")); ok {
		query.CompanyID = id
	}

	page, err := h.catalog.ListServices(c.Request().Context(), query, pageParams(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success("Services fetched successfully", page))
}

// Get handles GET /services/:id.
//
// @Summary      Get a service
// @Tags         services
// @Produce      json
// @Param        id   path      int  true  "Service id"
// @Success      200  {object}  envelope.SuccessBody{data=serviceResponse}
// @Failure      400  {object}  envelope.ErrorBody
// @Failure      404  {object}  envelope.ErrorBody
// @Router       /services/{id} [get]
func (h *ServiceHandler) Get(c echo.Context) error {
	id, err := pathID(c, "service")
	if err != nil {
		return err
	}

	service, err := h.catalog.GetService(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success("Service fetched successfully", serviceResponse{Service: service}))
}

// Company handles GET /services/:id/company.
//
// @Summary      Get the company offering a service
// @Tags         services
// @Produce      json
// @Param        id   path      int  true  "Service id"
// @Success      200  {object}  envelope.SuccessBody{data=companyResponse}
// @Failure      400  {object}  envelope.ErrorBody
// @Failure      404  {object}  envelope.ErrorBody
// @Router       /services/{id}/company [get]
func (h *ServiceHandler) Company(c echo.Context) error {
	id, err := pathID(c, "service")
	if err != nil {
		return err
	}

	company, err := h.catalog.GetServiceCompany(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success("Service company fetched successfully", companyResponse{Company: company}))
}

// Create handles POST /services.
//
// @Summary      Create a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createServiceRequest  true  "Service"
// @Success      201   {object}  envelope.SuccessBody{data=serviceResponse}
// @Failure      400   {object}  envelope.ErrorBody
// @Failure      401   {object}  envelope.ErrorBody
// @Failure      403   {object}  envelope.ErrorBody
// @Router       /services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	var req createServiceRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	service, err := h.catalog.CreateService(c.Request().Context(), ports.CreateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		CompanyIDs:  req.CompanyIDs,
	})
	if err != nil {
		return err
	}

	metrics.WritesTotal.WithLabelValues("service", "create").Inc()
	return c.JSON(http.StatusCreated, envelope.Success("Service created successfully", serviceResponse{Service: service}))
}

// Update handles PATCH /services/:id. companyIds, when present, replaces the
// full set of linked companies.
//
// @Summary      Update a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Service id"
// @Param        body  body      updateServiceRequest  true  "Fields to change"
// @Success      200   {object}  envelope.SuccessBody{data=serviceResponse}
// @Failure      400   {object}  envelope.ErrorBody
// @Failure      404   {object}  envelope.ErrorBody
// @Router       /services/{id} [patch]
func (h *ServiceHandler) Update(c echo.Context) error {
	id, err := pathID(c, "service")
	if err != nil {
		return err
	}

	var req updateServiceRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if req.empty() {
		return errNoFields
	}

	service, err := h.catalog.UpdateService(c.Request().Context(), id, req.toUpdate())
	if err != nil {
		return err
	}

	metrics.WritesTotal.WithLabelValues("service", "update").Inc()
	return c.JSON(http.StatusOK, envelope.Success("Service updated successfully", serviceResponse{Service: service}))
}

// Delete handles DELETE /services/:id.
//
// @Summary      Delete a service
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Service id"
// @Success      200  {object}  envelope.SuccessBody
// @Failure      400  {object}  envelope.ErrorBody
// @Failure      404  {object}  envelope.ErrorBody
// @Router       /services/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "service")
	if err != nil {
		return err
	}

	if err := h.catalog.DeleteService(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.WritesTotal.WithLabelValues("service", "delete").Inc()
	return c.JSON(http.StatusOK, envelope.Success("Service deleted successfully", nil))
}
