package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/companyhub/directory-api/internal/core/domain"
	"github.com/companyhub/directory-api/internal/core/pagination"
	"github.com/companyhub/directory-api/internal/core/ports"
)

type stubAuthService struct {
	signUpFn func(ctx context.Context, input ports.SignUpInput) (*ports.AuthResult, error)
	signInFn func(ctx context.Context, email, password string) (*ports.AuthResult, error)
}

func (s *stubAuthService) SignUp(ctx context.Context, input ports.SignUpInput) (*ports.AuthResult, error) {
	return s.signUpFn(ctx, input)
}

func (s *stubAuthService) SignIn(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.signInFn(ctx, email, password)
}

type stubUserService struct {
	listFn   func(ctx context.Context, filter ports.ListUsersFilter, page pagination.Params) (pagination.Page[*domain.User], error)
	getFn    func(ctx context.Context, id int64) (*domain.User, error)
	updateFn func(ctx context.Context, id int64, update ports.UserUpdate) (*domain.User, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubUserService) ListUsers(ctx context.Context, filter ports.ListUsersFilter, page pagination.Params) (pagination.Page[*domain.User], error) {
	return s.listFn(ctx, filter, page)
}

func (s *stubUserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) UpdateUser(ctx context.Context, id int64, update ports.UserUpdate) (*domain.User, error) {
	return s.updateFn(ctx, id, update)
}

func (s *stubUserService) DeleteUser(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubCompanyService struct {
	listFn     func(ctx context.Context, search string, page pagination.Params) (pagination.Page[*domain.Company], error)
	getFn      func(ctx context.Context, id int64) (*domain.Company, error)
	createFn   func(ctx context.Context, input ports.CreateCompanyInput) (*domain.Company, error)
	updateFn   func(ctx context.Context, id int64, update ports.CompanyUpdate) (*domain.Company, error)
	deleteFn   func(ctx context.Context, id int64) error
	servicesFn func(ctx context.Context, companyID int64, page pagination.Params) (pagination.Page[*domain.Service], error)
}

func (s *stubCompanyService) ListCompanies(ctx context.Context, search string, page pagination.Params) (pagination.Page[*domain.Company], error) {
	return s.listFn(ctx, search, page)
}

func (s *stubCompanyService) GetCompany(ctx context.Context, id int64) (*domain.Company, error) {
	return s.getFn(ctx, id)
}

func (s *stubCompanyService) CreateCompany(ctx context.Context, input ports.CreateCompanyInput) (*domain.Company, error) {
	return s.createFn(ctx, input)
}

func (s *stubCompanyService) UpdateCompany(ctx context.Context, id int64, update ports.CompanyUpdate) (*domain.Company, error) {
	return s.updateFn(ctx, id, update)
}

func (s *stubCompanyService) DeleteCompany(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubCompanyService) ListCompanyServices(ctx context.Context, companyID int64, page pagination.Params) (pagination.Page[*domain.Service], error) {
	return s.servicesFn(ctx, companyID, page)
}

type stubCatalogService struct {
	listFn    func(ctx context.Context, query ports.ListServicesQuery, page pagination.Params) (pagination.Page[*domain.Service], error)
	getFn     func(ctx context.Context, id int64) (*domain.Service, error)
	companyFn func(ctx context.Context, id int64) (*domain.Company, error)
	createFn  func(ctx context.Context, input ports.CreateServiceInput) (*domain.Service, error)
	updateFn  func(ctx context.Context, id int64, update ports.ServiceUpdate) (*domain.Service, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (s *stubCatalogService) ListServices(ctx context.Context, query ports.ListServicesQuery, page pagination.Params) (pagination.Page[*domain.Service], error) {
	return s.listFn(ctx, query, page)
}

func (s *stubCatalogService) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	return s.getFn(ctx, id)
}

func (s *stubCatalogService) GetServiceCompany(ctx context.Context, id int64) (*domain.Company, error) {
	return s.companyFn(ctx, id)
}

func (s *stubCatalogService) CreateService(ctx context.Context, input ports.CreateServiceInput) (*domain.Service, error) {
	return s.createFn(ctx, input)
}

func (s *stubCatalogService) UpdateService(ctx context.Context, id int64, update ports.ServiceUpdate) (*domain.Service, error) {
	return s.updateFn(ctx, id, update)
}

func (s *stubCatalogService) DeleteService(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

// newContext builds an echo context for target. A non-empty body is sent as
// JSON. id, when set, becomes the :id path parameter.
func newContext(method, target, body, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

// validationDetails asserts err is a VALIDATION_ERROR and returns its field
// errors.
func validationDetails(t *testing.T, err error) []FieldError {
	t.Helper()
	var derr *domain.Error
	if !errors.As(err, &derr) || derr.Code != domain.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, _ := derr.Details.([]FieldError)
	return details
}

func hasField(details []FieldError, field string) bool {
	for _, d := range details {
		if d.Field == field {
			return true
		}
	}
	return false
}

func ptr[T any](v T) *T { return &v }
