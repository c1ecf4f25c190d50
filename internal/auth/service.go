package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ferdiebergado/gatekeep/internal/platform/jwt"
	"github.com/ferdiebergado/gatekeep/internal/user"
)

const TokenTypeBearer = "bearer"

var _ AuthService = &Service{}

var (
	ErrUserExists         = errors.New("auth service: user already exists")
	ErrInvalidCredentials = errors.New("auth service: invalid credentials")
)

// Token is an issued access token and its lifetime in seconds.
type Token struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
}

type Service struct {
	userSvc user.Service
	signer  jwt.Signer
}

type RegisterUserParams struct {
	Name     string
	Email    string
	Password string
}

func (p RegisterUserParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", p.Name),
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

type LoginUserParams struct {
	Email    string
	Password string
}

func (p LoginUserParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

func NewService(userSvc user.Service, signer jwt.Signer) *Service {
	return &Service{
		userSvc: userSvc,
		signer:  signer,
	}
}

// RegisterUser creates the account and issues its first token. An email that
// is already registered fails with ErrUserExists, whether it is caught by the
// lookup or by the store's unique constraint.
func (s *Service) RegisterUser(ctx context.Context, params RegisterUserParams) (user.PublicUser, Token, error) {
	existing, err := s.userSvc.FindUserByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, user.ErrNotFound) {
		return user.PublicUser{}, Token{}, fmt.Errorf("check existing user: %w", err)
	}

	if existing != nil {
		return user.PublicUser{}, Token{}, ErrUserExists
	}

	newUser, err := s.userSvc.CreateUser(ctx, user.CreateUserParams{
		Name:     params.Name,
		Email:    params.Email,
		Password: params.Password,
	})
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return user.PublicUser{}, Token{}, ErrUserExists
		}
		return user.PublicUser{}, Token{}, fmt.Errorf("register user: %w", err)
	}

	token, err := s.IssueToken(user.Identity{ID: newUser.ID, Email: newUser.Email})
	if err != nil {
		return user.PublicUser{}, Token{}, err
	}

	return newUser, token, nil
}

// LoginUser checks the credentials. An unknown email and a wrong password
// both fail with ErrInvalidCredentials.
func (s *Service) LoginUser(ctx context.Context, params LoginUserParams) (user.PublicUser, Token, error) {
	u, err := s.userSvc.FindUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.PublicUser{}, Token{}, ErrInvalidCredentials
		}
		return user.PublicUser{}, Token{}, fmt.Errorf("find user by email: %w", err)
	}

	ok, err := s.userSvc.VerifyPassword(params.Password, u.PasswordHash)
	if err != nil {
		return user.PublicUser{}, Token{}, fmt.Errorf("verify password for user %d: %w", u.ID, err)
	}

	if !ok {
		return user.PublicUser{}, Token{}, ErrInvalidCredentials
	}

	token, err := s.IssueToken(user.Identity{ID: u.ID, Email: u.Email})
	if err != nil {
		return user.PublicUser{}, Token{}, err
	}

	return u.Public(), token, nil
}

func (s *Service) IssueToken(identity user.Identity) (Token, error) {
	signed, err := s.signer.Sign(jwt.Claims{UserID: identity.ID, Email: identity.Email})
	if err != nil {
		return Token{}, fmt.Errorf("sign token for user %d: %w", identity.ID, err)
	}

	return Token{
		Token:     signed,
		TokenType: TokenTypeBearer,
		ExpiresIn: int64(s.signer.TTL().Seconds()),
	}, nil
}
