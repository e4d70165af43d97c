package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/samber/oops"

	"github.com/companyhub/directory-api/internal/core/domain"
	"github.com/companyhub/directory-api/internal/core/ports"
)

const userColumns = `id, full_name, email, password_hash, role, is_deleted, created_at, updated_at`

// userSortColumns whitelists the ORDER BY columns of List.
var userSortColumns = map[string]string{
	ports.SortByCreatedAt: "created_at",
	ports.SortByFullName:  "full_name",
	ports.SortByEmail:     "email",
}

// UserRepository implements ports.UserRepository.
type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (full_name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, user.FullName, user.Email, user.PasswordHash, string(user.Role)).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrEmailInUse
	}
	if err != nil {
		return oops.Code("USER_CREATE_FAILED").
			With("operation", "insert user").
			Wrap(err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 AND is_deleted = false`, id)

	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, oops.Code("USER_GET_BY_ID_FAILED").
			With("operation", "get user by id").
			With("id", id).
			Wrap(err)
	}
	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1 AND is_deleted = false`, email)

	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, oops.Code("USER_GET_BY_EMAIL_FAILED").
			With("operation", "get user by email").
			Wrap(err)
	}
	return user, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, oops.Code("USER_EMAIL_EXISTS_FAILED").
			With("operation", "check email").
			Wrap(err)
	}
	return exists, nil
}

func (r *UserRepository) List(ctx context.Context, filter ports.ListUsersFilter) ([]*domain.User, int64, error) {
	const where = `
		WHERE is_deleted = false
		  AND ($1 = '' OR full_name ILIKE $2 OR email ILIKE $2)`
	args := []any{filter.Search, containsPattern(filter.Search)}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`+where, args...).Scan(&total); err != nil {
		return nil, 0, oops.Code("USER_LIST_FAILED").With("operation", "count users").Wrap(err)
	}

	column, ok := userSortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if filter.SortOrder == ports.SortAsc {
		direction = "ASC"
	}

	query := fmt.Sprintf(`SELECT %s FROM users %s ORDER BY %s %s, id %s LIMIT $3 OFFSET $4`,
		userColumns, where, column, direction, direction)
	rows, err := r.db.Query(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, oops.Code("USER_LIST_FAILED").With("operation", "list users").Wrap(err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0, filter.Limit)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, oops.Code("USER_LIST_FAILED").With("operation", "scan user").Wrap(err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, oops.Code("USER_LIST_FAILED").With("operation", "iterate users").Wrap(err)
	}
	return users, total, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, update ports.UserUpdate) (*domain.User, error) {
	var role *string
	if update.Role != nil {
		s := string(*update.Role)
		role = &s
	}

	row := r.db.QueryRow(ctx, `
		UPDATE users
		SET full_name  = COALESCE($2, full_name),
		    email      = COALESCE($3, email),
		    role       = COALESCE($4, role),
		    updated_at = now()
		WHERE id = $1 AND is_deleted = false
		RETURNING `+userColumns,
		id, update.FullName, update.Email, role)

	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if isUniqueViolation(err) {
		return nil, domain.ErrEmailInUse
	}
	if err != nil {
		return nil, oops.Code("USER_UPDATE_FAILED").
			With("operation", "update user").
			With("id", id).
			Wrap(err)
	}
	return user, nil
}

func (r *UserRepository) SoftDelete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET is_deleted = true, updated_at = now()
		WHERE id = $1 AND is_deleted = false
	`, id)
	if err != nil {
		return oops.Code("USER_DELETE_FAILED").
			With("operation", "soft delete user").
			With("id", id).
			Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &role, &u.IsDeleted, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.Role = domain.Role(role)
	return &u, nil
}
