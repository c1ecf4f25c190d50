package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ferdiebergado/gatekeep/internal/platform/hash"
)

// Service is the credential store used by the handlers and the auth package.
type Service interface {
	FindUser(ctx context.Context, userID int64) (*User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, params CreateUserParams) (PublicUser, error)
	UpdateUser(ctx context.Context, userID int64, params UpdateParams) (PublicUser, error)
	ListUsers(ctx context.Context) ([]PublicUser, error)
	VerifyPassword(plain, hashed string) (bool, error)
}

type CreateUserParams struct {
	Name     string
	Email    string
	Password string
}

func (p CreateUserParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", p.Name),
		slog.String("email", maskEmail(p.Email)),
		slog.String("password", "*"),
	)
}

type service struct {
	repo   Repository
	hasher hash.Hasher
}

var _ Service = (*service)(nil)

func NewService(repo Repository, hasher hash.Hasher) *service {
	return &service{
		repo:   repo,
		hasher: hasher,
	}
}

// FindUser returns the full record, hash included, or ErrNotFound.
func (s *service) FindUser(ctx context.Context, userID int64) (*User, error) {
	u, err := s.repo.Find(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", userID, err)
	}
	return u, nil
}

func (s *service) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// CreateUser hashes the password and stores a new user. Callers check email
// availability first; a concurrent duplicate still fails with ErrDuplicateEmail.
func (s *service) CreateUser(ctx context.Context, params CreateUserParams) (PublicUser, error) {
	hashed, err := s.hasher.Hash(params.Password)
	if err != nil {
		return PublicUser{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.repo.Create(ctx, CreateParams{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: hashed,
	})
	if err != nil {
		return PublicUser{}, fmt.Errorf("create user: %w", err)
	}

	return u.Public(), nil
}

// UpdateUser applies the non-nil fields. An email owned by another user is
// rejected with ErrDuplicateEmail; the caller's own email is accepted.
func (s *service) UpdateUser(ctx context.Context, userID int64, params UpdateParams) (PublicUser, error) {
	if params.Email != nil {
		owner, err := s.repo.FindByEmail(ctx, *params.Email)
		switch {
		case err == nil && owner.ID != userID:
			return PublicUser{}, fmt.Errorf("update user %d: %w", userID, ErrDuplicateEmail)
		case err != nil && !errors.Is(err, ErrNotFound):
			return PublicUser{}, fmt.Errorf("check email owner: %w", err)
		}
	}

	u, err := s.repo.Update(ctx, userID, params)
	if err != nil {
		return PublicUser{}, fmt.Errorf("update user %d: %w", userID, err)
	}
	return u.Public(), nil
}

func (s *service) ListUsers(ctx context.Context) ([]PublicUser, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return ToPublic(users), nil
}

// VerifyPassword reports whether plain matches hashed. A mismatch is not an error.
func (s *service) VerifyPassword(plain, hashed string) (bool, error) {
	return s.hasher.Verify(plain, hashed)
}
