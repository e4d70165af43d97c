package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/samber/oops"

	"github.com/companyhub/directory-api/internal/core/domain"
	"github.com/companyhub/directory-api/internal/core/ports"
)

// serviceColumns selects a service with the ids of its live companies.
const serviceColumns = `s.id, s.name, s.description, s.price, s.is_deleted, s.created_at, s.updated_at,
	ARRAY(
		SELECT sc.company_id
		FROM service_companies sc
		JOIN companies c ON c.id = sc.company_id AND c.is_deleted = false
		WHERE sc.service_id = s.id
		ORDER BY sc.company_id
	) AS company_ids`

// serviceFilter matches live services, optionally linked to a live company
// ($1, 0 = any) and optionally matching a name pattern ($2 = '' disables, $3).
const serviceFilter = `
	WHERE s.is_deleted = false
	  AND ($1::bigint = 0 OR EXISTS (
		SELECT 1 FROM service_companies sc
		JOIN companies c ON c.id = sc.company_id AND c.is_deleted = false
		WHERE sc.service_id = s.id AND sc.company_id = $1
	  ))
	  AND ($2 = '' OR s.name ILIKE $3)`

// ServiceRepository implements ports.ServiceRepository.
type ServiceRepository struct {
	db DB
}

func NewServiceRepository(db DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, service *domain.Service) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO services (name, description, price)
			VALUES ($1, $2, $3)
			RETURNING id, created_at, updated_at
		`, service.Name, service.Description, service.Price).
			Scan(&service.ID, &service.CreatedAt, &service.UpdatedAt)
		if err != nil {
			return oops.Code("SERVICE_CREATE_FAILED").
				With("operation", "insert service").
				Wrap(err)
		}

		if err := linkCompanies(ctx, tx, service.ID, service.CompanyIDs); err != nil {
			return err
		}
		return nil
	})
}

func (r *ServiceRepository) FindByID(ctx context.Context, id int64) (*domain.Service, error) {
	return findService(ctx, r.db, id)
}

func (r *ServiceRepository) List(ctx context.Context, filter ports.ListServicesFilter) ([]*domain.Service, int64, error) {
	args := []any{filter.CompanyID, filter.Search, containsPattern(filter.Search)}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM services s`+serviceFilter, args...).Scan(&total); err != nil {
		return nil, 0, oops.Code("SERVICE_LIST_FAILED").With("operation", "count services").Wrap(err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+serviceColumns+` FROM services s`+serviceFilter+` ORDER BY s.created_at DESC, s.id DESC LIMIT $4 OFFSET $5`,
		append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, oops.Code("SERVICE_LIST_FAILED").With("operation", "list services").Wrap(err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0, filter.Limit)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, 0, oops.Code("SERVICE_LIST_FAILED").With("operation", "scan service").Wrap(err)
		}
		services = append(services, service)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, oops.Code("SERVICE_LIST_FAILED").With("operation", "iterate services").Wrap(err)
	}
	return services, total, nil
}

// Update changes the given fields and, when update.CompanyIDs is non-nil,
// replaces the company links in the same transaction.
func (r *ServiceRepository) Update(ctx context.Context, id int64, update ports.ServiceUpdate) (*domain.Service, error) {
	var service *domain.Service
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE services
			SET name        = COALESCE($2, name),
			    description = COALESCE($3, description),
			    price       = COALESCE($4, price),
			    updated_at  = now()
			WHERE id = $1 AND is_deleted = false
		`, id, update.Name, update.Description, update.Price)
		if err != nil {
			return oops.Code("SERVICE_UPDATE_FAILED").
				With("operation", "update service").
				With("id", id).
				Wrap(err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrServiceNotFound
		}

		if update.CompanyIDs != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM service_companies WHERE service_id = $1`, id); err != nil {
				return oops.Code("SERVICE_UPDATE_FAILED").
					With("operation", "unlink companies").
					With("id", id).
					Wrap(err)
			}
			if err := linkCompanies(ctx, tx, id, update.CompanyIDs); err != nil {
				return err
			}
		}

		service, err = findService(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return service, nil
}

func (r *ServiceRepository) SoftDelete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE services SET is_deleted = true, updated_at = now()
		WHERE id = $1 AND is_deleted = false
	`, id)
	if err != nil {
		return oops.Code("SERVICE_DELETE_FAILED").
			With("operation", "soft delete service").
			With("id", id).
			Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}

// querier is satisfied by both DB and pgx.Tx.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func findService(ctx context.Context, q querier, id int64) (*domain.Service, error) {
	row := q.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services s WHERE s.id = $1 AND s.is_deleted = false`, id)

	service, err := scanService(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrServiceNotFound
	}
	if err != nil {
		return nil, oops.Code("SERVICE_GET_BY_ID_FAILED").
			With("operation", "get service by id").
			With("id", id).
			Wrap(err)
	}
	return service, nil
}

func linkCompanies(ctx context.Context, tx pgx.Tx, serviceID int64, companyIDs []int64) error {
	if len(companyIDs) == 0 {
		return nil
	}

	_, err := tx.Exec(ctx, `
		INSERT INTO service_companies (service_id, company_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING
	`, serviceID, companyIDs)
	if err != nil {
		return oops.Code("SERVICE_LINK_FAILED").
			With("operation", "link companies").
			With("service_id", serviceID).
			Wrap(err)
	}
	return nil
}

func scanService(row pgx.Row) (*domain.Service, error) {
	var s domain.Service
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.IsDeleted, &s.CreatedAt, &s.UpdatedAt, &s.CompanyIDs); err != nil {
		return nil, err
	}
	if s.CompanyIDs == nil {
		s.CompanyIDs = []int64{}
	}
	return &s, nil
}
