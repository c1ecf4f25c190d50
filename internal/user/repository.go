package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound       = errors.New("user repository: user not found")
	ErrDuplicateEmail = errors.New("user repository: email already exists")
)

type CreateParams struct {
	Name         string
	Email        string
	PasswordHash string
}

// UpdateParams holds the fields to change. A nil field is left as is.
type UpdateParams struct {
	Name  *string
	Email *string
}

// Repository persists users. Implementations enforce email uniqueness on
// Create and Update and report a violation as ErrDuplicateEmail.
type Repository interface {
	Find(ctx context.Context, userID int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, params CreateParams) (*User, error)
	Update(ctx context.Context, userID int64, params UpdateParams) (*User, error)
	List(ctx context.Context) ([]User, error)
}
