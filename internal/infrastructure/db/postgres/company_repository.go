package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/samber/oops"

	"github.com/companyhub/directory-api/internal/core/domain"
	"github.com/companyhub/directory-api/internal/core/ports"
)

const companyColumns = `c.id, c.name, c.description, c.owner_id, c.is_deleted, c.created_at, c.updated_at`

// CompanyRepository implements ports.CompanyRepository.
type CompanyRepository struct {
	db DB
}

func NewCompanyRepository(db DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO companies (name, description, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, company.Name, company.Description, company.OwnerID).
		Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
	if err != nil {
		return oops.Code("COMPANY_CREATE_FAILED").
			With("operation", "insert company").
			Wrap(err)
	}
	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id int64) (*domain.Company, error) {
	row := r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies c WHERE c.id = $1 AND c.is_deleted = false`, id)

	company, err := scanCompany(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCompanyNotFound
	}
	if err != nil {
		return nil, oops.Code("COMPANY_GET_BY_ID_FAILED").
			With("operation", "get company by id").
			With("id", id).
			Wrap(err)
	}
	return company, nil
}

func (r *CompanyRepository) List(ctx context.Context, filter ports.ListCompaniesFilter) ([]*domain.Company, int64, error) {
	const where = ` WHERE c.is_deleted = false AND ($1 = '' OR c.name ILIKE $2)`
	args := []any{filter.Search, containsPattern(filter.Search)}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM companies c`+where, args...).Scan(&total); err != nil {
		return nil, 0, oops.Code("COMPANY_LIST_FAILED").With("operation", "count companies").Wrap(err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+companyColumns+` FROM companies c`+where+` ORDER BY c.created_at DESC, c.id DESC LIMIT $3 OFFSET $4`,
		append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, oops.Code("COMPANY_LIST_FAILED").With("operation", "list companies").Wrap(err)
	}

	companies, err := collectCompanies(rows, filter.Limit)
	if err != nil {
		return nil, 0, oops.Code("COMPANY_LIST_FAILED").With("operation", "scan companies").Wrap(err)
	}
	return companies, total, nil
}

func (r *CompanyRepository) Update(ctx context.Context, id int64, update ports.CompanyUpdate) (*domain.Company, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE companies c
		SET name        = COALESCE($2, c.name),
		    description = COALESCE($3, c.description),
		    owner_id    = COALESCE($4, c.owner_id),
		    updated_at  = now()
		WHERE c.id = $1 AND c.is_deleted = false
		RETURNING `+companyColumns,
		id, update.Name, update.Description, update.OwnerID)

	company, err := scanCompany(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCompanyNotFound
	}
	if err != nil {
		return nil, oops.Code("COMPANY_UPDATE_FAILED").
			With("operation", "update company").
			With("id", id).
			Wrap(err)
	}
	return company, nil
}

func (r *CompanyRepository) SoftDeleteCascade(ctx context.Context, id int64) (int64, error) {
	var services int64
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE companies SET is_deleted = true, updated_at = now()
			WHERE id = $1 AND is_deleted = false
		`, id)
		if err != nil {
			return oops.Code("COMPANY_DELETE_FAILED").
				With("operation", "soft delete company").
				With("id", id).
				Wrap(err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrCompanyNotFound
		}

		tag, err = tx.Exec(ctx, `
			UPDATE services SET is_deleted = true, updated_at = now()
			WHERE is_deleted = false
			  AND id IN (SELECT service_id FROM service_companies WHERE company_id = $1)
		`, id)
		if err != nil {
			return oops.Code("COMPANY_DELETE_FAILED").
				With("operation", "soft delete company services").
				With("id", id).
				Wrap(err)
		}
		services = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return services, nil
}

func (r *CompanyRepository) MissingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT requested.id
		FROM unnest($1::bigint[]) WITH ORDINALITY AS requested (id, pos)
		WHERE NOT EXISTS (
			SELECT 1 FROM companies c WHERE c.id = requested.id AND c.is_deleted = false
		)
		ORDER BY requested.pos
	`, ids)
	if err != nil {
		return nil, oops.Code("COMPANY_MISSING_IDS_FAILED").With("operation", "check company ids").Wrap(err)
	}

	missing, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, oops.Code("COMPANY_MISSING_IDS_FAILED").With("operation", "scan company ids").Wrap(err)
	}
	return missing, nil
}

func (r *CompanyRepository) FindFirstByService(ctx context.Context, serviceID int64) (*domain.Company, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+companyColumns+`
		FROM companies c
		JOIN service_companies sc ON sc.company_id = c.id
		JOIN services s ON s.id = sc.service_id
		WHERE s.id = $1 AND s.is_deleted = false AND c.is_deleted = false
		ORDER BY c.id
		LIMIT 1
	`, serviceID)

	company, err := scanCompany(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrServiceCompanyNotFound
	}
	if err != nil {
		return nil, oops.Code("SERVICE_COMPANY_GET_FAILED").
			With("operation", "get service company").
			With("service_id", serviceID).
			Wrap(err)
	}
	return company, nil
}

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.OwnerID, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func collectCompanies(rows pgx.Rows, capacity int) ([]*domain.Company, error) {
	defer rows.Close()

	companies := make([]*domain.Company, 0, capacity)
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}
