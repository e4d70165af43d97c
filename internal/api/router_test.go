package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/companyhub/directory-api/internal/core/domain"
	"github.com/companyhub/directory-api/internal/core/pagination"
	"github.com/companyhub/directory-api/internal/core/ports"
)

// tokenGate accepts "Bearer admin" and "Bearer user".
type tokenGate struct{}

func (tokenGate) Authenticate(_ context.Context, authorization string, requireAdmin bool) (*domain.User, error) {
	var user *domain.User
	switch authorization {
	case "":
		return nil, domain.ErrMissingAuthHeader
	case "Bearer admin":
		user = &domain.User{ID: 1, Role: domain.RoleAdmin}
	case "Bearer user":
		user = &domain.User{ID: 2, Role: domain.RoleUser}
	default:
		return nil, domain.ErrInvalidToken
	}
	if requireAdmin && !user.IsAdmin() {
		return nil, domain.ErrAdminRequired
	}
	return user, nil
}

type stubCompanies struct {
	ports.CompanyService
}

func (stubCompanies) ListCompanies(_ context.Context, _ string, page pagination.Params) (pagination.Page[*domain.Company], error) {
	return pagination.NewPage([]*domain.Company{{ID: 1, Name: "Acme"}}, 1, page), nil
}

func (stubCompanies) CreateCompany(_ context.Context, input ports.CreateCompanyInput) (*domain.Company, error) {
	return &domain.Company{ID: 2, Name: input.Name}, nil
}

func (stubCompanies) GetCompany(_ context.Context, id int64) (*domain.Company, error) {
	if id == 500 {
		return nil, errors.New("connection reset by peer")
	}
	return nil, domain.ErrCompanyNotFound
}

type stubUsers struct {
	ports.UserService
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func newTestRouter() http.Handler {
	return NewRouter(Deps{
		Gate:      tokenGate{},
		Users:     stubUsers{},
		Companies: stubCompanies{},
		DB:        okPinger{},
		Logger:    zerolog.Nop(),
		Registry:  prometheus.NewRegistry(),
	})
}

func serve(t *testing.T, h http.Handler, method, target, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func errorCode(resp map[string]any) any {
	e, _ := resp["error"].(map[string]any)
	return e["code"]
}

func TestRouter_PublicList(t *testing.T) {
	rec, resp := serve(t, newTestRouter(), http.MethodGet, "/companies", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, "Companies fetched successfully", resp["message"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRouter_AccessControl(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name    string
		method  string
		target  string
		token   string
		body    string
		status  int
		code    any
		message string
	}{
		{"write without token", http.MethodPost, "/companies", "", `{"name":"Acme"}`, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid Authorization header"},
		{"write with bad token", http.MethodPost, "/companies", "garbage", `{"name":"Acme"}`, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token"},
		{"write as user", http.MethodPost, "/companies", "user", `{"name":"Acme"}`, http.StatusForbidden, "FORBIDDEN", "Admin access required"},
		{"users as user", http.MethodGet, "/users", "user", "", http.StatusForbidden, "FORBIDDEN", "Admin access required"},
		{"profile without token", http.MethodGet, "/auth/profile", "", "", http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid Authorization header"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := serve(t, router, tt.method, tt.target, tt.token, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "error", resp["status"])
			assert.Equal(t, tt.code, errorCode(resp))
			assert.Equal(t, tt.message, resp["message"])
		})
	}
}

func TestRouter_AdminWrite(t *testing.T) {
	rec, resp := serve(t, newTestRouter(), http.MethodPost, "/companies", "admin", `{"name":"Acme"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Company created successfully", resp["message"])
}

func TestRouter_ValidationEnvelope(t *testing.T) {
	rec, resp := serve(t, newTestRouter(), http.MethodPost, "/companies", "admin", `{"name":"A"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation error", resp["message"])
	assert.Equal(t, "VALIDATION_ERROR", errorCode(resp))

	details := resp["error"].(map[string]any)["details"].([]any)
	require.Len(t, details, 1)
	assert.Equal(t, "name", details[0].(map[string]any)["field"])
}

func TestRouter_InvalidPathID(t *testing.T) {
	rec, resp := serve(t, newTestRouter(), http.MethodGet, "/users/abc", "admin", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid user id", resp["message"])
}

func TestRouter_NotFound(t *testing.T) {
	router := newTestRouter()

	rec, resp := serve(t, router, http.MethodGet, "/companies/9", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Company not found", resp["message"])

	rec, resp = serve(t, router, http.MethodGet, "/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(resp))
}

func TestRouter_UnexpectedErrorIsHidden(t *testing.T) {
	rec, resp := serve(t, newTestRouter(), http.MethodGet, "/companies/500", "", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", resp["message"])
	assert.Equal(t, "INTERNAL_SERVER_ERROR", errorCode(resp))
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestRouter_Operational(t *testing.T) {
	router := newTestRouter()

	rec, _ := serve(t, router, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = serve(t, router, http.MethodGet, "/health/ready", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = serve(t, router, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "directory_requests_total")
}
