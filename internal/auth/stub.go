package auth

import (
	"context"
	"errors"

	"github.com/ferdiebergado/gatekeep/internal/user"
)

type StubService struct {
	RegisterUserFunc func(ctx context.Context, params RegisterUserParams) (user.PublicUser, Token, error)
	LoginUserFunc    func(ctx context.Context, params LoginUserParams) (user.PublicUser, Token, error)
	IssueTokenFunc   func(identity user.Identity) (Token, error)
}

var _ AuthService = &StubService{}

func (s *StubService) RegisterUser(ctx context.Context, params RegisterUserParams) (user.PublicUser, Token, error) {
	if s.RegisterUserFunc == nil {
		return user.PublicUser{}, Token{}, errors.New("RegisterUser() not implemented by stub")
	}
	return s.RegisterUserFunc(ctx, params)
}

func (s *StubService) LoginUser(ctx context.Context, params LoginUserParams) (user.PublicUser, Token, error) {
	if s.LoginUserFunc == nil {
		return user.PublicUser{}, Token{}, errors.New("LoginUser() not implemented by stub")
	}
	return s.LoginUserFunc(ctx, params)
}

func (s *StubService) IssueToken(identity user.Identity) (Token, error) {
	if s.IssueTokenFunc == nil {
		return Token{}, errors.New("IssueToken() not implemented by stub")
	}
	return s.IssueTokenFunc(identity)
}
