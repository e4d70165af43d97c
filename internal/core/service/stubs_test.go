package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/companyhub/directory-api/internal/core/domain"
	"github.com/companyhub/directory-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users   map[int64]*domain.User
	nextID  int64
	calls   int   // number of FindByID calls
	findErr error // if set, FindByID returns this error
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[int64]*domain.User), nextID: 1}
	for _, u := range users {
		clone := *u
		r.users[u.ID] = &clone
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
	}
	return r
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailInUse
		}
	}
	now := time.Now().UTC()
	user.ID = r.nextID
	user.CreatedAt, user.UpdatedAt = now, now
	r.nextID++
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.calls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id]
	if !ok || u.IsDeleted {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email && !u.IsDeleted {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) List(_ context.Context, f ports.ListUsersFilter) ([]*domain.User, int64, error) {
	var out []*domain.User
	for _, u := range r.users {
		if u.IsDeleted {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(u.FullName+" "+u.Email), strings.ToLower(f.Search)) {
			continue
		}
		clone := *u
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *stubUserRepo) Update(_ context.Context, id int64, update ports.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok || u.IsDeleted {
		return nil, domain.ErrUserNotFound
	}
	if update.Email != nil {
		for _, other := range r.users {
			if other.ID != id && other.Email == *update.Email {
				return nil, domain.ErrEmailInUse
			}
		}
		u.Email = *update.Email
	}
	if update.FullName != nil {
		u.FullName = *update.FullName
	}
	if update.Role != nil {
		u.Role = *update.Role
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) SoftDelete(_ context.Context, id int64) error {
	u, ok := r.users[id]
	if !ok || u.IsDeleted {
		return domain.ErrUserNotFound
	}
	u.IsDeleted = true
	return nil
}

type stubCompanyRepo struct {
	companies map[int64]*domain.Company
	nextID    int64
	cascaded  []int64 // ids passed to SoftDeleteCascade
}

func newStubCompanyRepo(companies ...*domain.Company) *stubCompanyRepo {
	r := &stubCompanyRepo{companies: make(map[int64]*domain.Company), nextID: 1}
	for _, c := range companies {
		clone := *c
		r.companies[c.ID] = &clone
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
	}
	return r
}

func (r *stubCompanyRepo) Create(_ context.Context, c *domain.Company) error {
	c.ID = r.nextID
	r.nextID++
	clone := *c
	r.companies[c.ID] = &clone
	return nil
}

func (r *stubCompanyRepo) FindByID(_ context.Context, id int64) (*domain.Company, error) {
	c, ok := r.companies[id]
	if !ok || c.IsDeleted {
		return nil, domain.ErrCompanyNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCompanyRepo) List(_ context.Context, f ports.ListCompaniesFilter) ([]*domain.Company, int64, error) {
	var out []*domain.Company
	for _, c := range r.companies {
		if !c.IsDeleted {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubCompanyRepo) Update(_ context.Context, id int64, update ports.CompanyUpdate) (*domain.Company, error) {
	c, ok := r.companies[id]
	if !ok || c.IsDeleted {
		return nil, domain.ErrCompanyNotFound
	}
	if update.Name != nil {
		c.Name = *update.Name
	}
	if update.Description != nil {
		c.Description = update.Description
	}
	if update.OwnerID != nil {
		c.OwnerID = update.OwnerID
	}
	clone := *c
	return &clone, nil
}

func (r *stubCompanyRepo) SoftDeleteCascade(_ context.Context, id int64) (int64, error) {
	r.cascaded = append(r.cascaded, id)
	c, ok := r.companies[id]
	if !ok || c.IsDeleted {
		return 0, domain.ErrCompanyNotFound
	}
	c.IsDeleted = true
	return 0, nil
}

func (r *stubCompanyRepo) MissingIDs(_ context.Context, ids []int64) ([]int64, error) {
	var missing []int64
	for _, id := range ids {
		if c, ok := r.companies[id]; !ok || c.IsDeleted {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (r *stubCompanyRepo) FindFirstByService(_ context.Context, _ int64) (*domain.Company, error) {
	return nil, domain.ErrServiceCompanyNotFound
}

type stubServiceRepo struct {
	services   map[int64]*domain.Service
	nextID     int64
	lastFilter ports.ListServicesFilter
	lastUpdate ports.ServiceUpdate
}

func newStubServiceRepo(services ...*domain.Service) *stubServiceRepo {
	r := &stubServiceRepo{services: make(map[int64]*domain.Service), nextID: 1}
	for _, s := range services {
		clone := *s
		r.services[s.ID] = &clone
		if s.ID >= r.nextID {
			r.nextID = s.ID + 1
		}
	}
	return r
}

func (r *stubServiceRepo) Create(_ context.Context, s *domain.Service) error {
	s.ID = r.nextID
	r.nextID++
	clone := *s
	r.services[s.ID] = &clone
	return nil
}

func (r *stubServiceRepo) FindByID(_ context.Context, id int64) (*domain.Service, error) {
	s, ok := r.services[id]
	if !ok || s.IsDeleted {
		return nil, domain.ErrServiceNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubServiceRepo) List(_ context.Context, f ports.ListServicesFilter) ([]*domain.Service, int64, error) {
	r.lastFilter = f
	var out []*domain.Service
	for _, s := range r.services {
		if s.IsDeleted {
			continue
		}
		if f.CompanyID != 0 && !slices.Contains(s.CompanyIDs, f.CompanyID) {
			continue
		}
		clone := *s
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *stubServiceRepo) Update(_ context.Context, id int64, update ports.ServiceUpdate) (*domain.Service, error) {
	r.lastUpdate = update
	s, ok := r.services[id]
	if !ok || s.IsDeleted {
		return nil, domain.ErrServiceNotFound
	}
	if update.Name != nil {
		s.Name = *update.Name
	}
	if update.Price != nil {
		s.Price = *update.Price
	}
	if update.CompanyIDs != nil {
		s.CompanyIDs = update.CompanyIDs
	}
	clone := *s
	return &clone, nil
}

func (r *stubServiceRepo) SoftDelete(_ context.Context, id int64) error {
	s, ok := r.services[id]
	if !ok || s.IsDeleted {
		return domain.ErrServiceNotFound
	}
	s.IsDeleted = true
	return nil
}

func ptr[T any](v T) *T { return &v }
