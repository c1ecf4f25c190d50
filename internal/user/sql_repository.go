package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/gatekeep/internal/platform/db"
)

var _ Repository = (*SQLRepository)(nil)

var ErrQueryFailed = errors.New("user repository: query failed")

type SQLRepository struct {
	db db.Executor
}

func NewSQLRepository(exec db.Executor) *SQLRepository {
	return &SQLRepository{db: exec}
}

const userColumns = "id, name, email, password, email_verified_at, created_at, updated_at"

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.EmailVerifiedAt, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

const QueryUserFind = "SELECT " + userColumns + " FROM users WHERE id = $1"

func (r *SQLRepository) Find(ctx context.Context, userID int64) (*User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, QueryUserFind, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find user with id %d: %v", ErrQueryFailed, userID, err)
	}
	return u, nil
}

const QueryUserFindByEmail = "SELECT " + userColumns + " FROM users WHERE email = $1 LIMIT 1"

func (r *SQLRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, QueryUserFindByEmail, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find user by email: %v", ErrQueryFailed, err)
	}
	return u, nil
}

const QueryUserCreate = `
INSERT INTO users (name, email, password)
VALUES ($1, $2, $3)
RETURNING ` + userColumns

func (r *SQLRepository) Create(ctx context.Context, params CreateParams) (*User, error) {
	row := r.db.QueryRowContext(ctx, QueryUserCreate, params.Name, params.Email, params.PasswordHash)
	u, err := scanUser(row)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: create user: %v", ErrQueryFailed, err)
	}
	return u, nil
}

const QueryUserUpdate = `
UPDATE users
SET name = COALESCE($2, name), email = COALESCE($3, email), updated_at = NOW()
WHERE id = $1
RETURNING ` + userColumns

func (r *SQLRepository) Update(ctx context.Context, userID int64, params UpdateParams) (*User, error) {
	row := r.db.QueryRowContext(ctx, QueryUserUpdate, userID, params.Name, params.Email)
	u, err := scanUser(row)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		case db.IsUniqueViolation(err):
			return nil, ErrDuplicateEmail
		default:
			return nil, fmt.Errorf("%w: update user with id %d: %v", ErrQueryFailed, userID, err)
		}
	}
	return u, nil
}

const QueryUserList = "SELECT " + userColumns + " FROM users ORDER BY id"

func (r *SQLRepository) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, QueryUserList)
	if err != nil {
		return nil, fmt.Errorf("%w: list users: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	//nolint:prealloc //Cannot identify the length of the rows without running another query.
	var users []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("user repository: scan row: %w", err)
		}
		users = append(users, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("user repository: iterate over user rows: %w", err)
	}

	return users, nil
}
