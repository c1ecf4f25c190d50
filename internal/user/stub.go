package user

import (
	"context"
	"errors"
)

type StubService struct {
	FindUserFunc        func(ctx context.Context, userID int64) (*User, error)
	FindUserByEmailFunc func(ctx context.Context, email string) (*User, error)
	CreateUserFunc      func(ctx context.Context, params CreateUserParams) (PublicUser, error)
	UpdateUserFunc      func(ctx context.Context, userID int64, params UpdateParams) (PublicUser, error)
	ListUsersFunc       func(ctx context.Context) ([]PublicUser, error)
	VerifyPasswordFunc  func(plain, hashed string) (bool, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) FindUser(ctx context.Context, userID int64) (*User, error) {
	if s.FindUserFunc == nil {
		return nil, errors.New("FindUser() not implemented by stub")
	}
	return s.FindUserFunc(ctx, userID)
}

func (s *StubService) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	if s.FindUserByEmailFunc == nil {
		return nil, errors.New("FindUserByEmail() not implemented by stub")
	}
	return s.FindUserByEmailFunc(ctx, email)
}

func (s *StubService) CreateUser(ctx context.Context, params CreateUserParams) (PublicUser, error) {
	if s.CreateUserFunc == nil {
		return PublicUser{}, errors.New("CreateUser() not implemented by stub")
	}
	return s.CreateUserFunc(ctx, params)
}

func (s *StubService) UpdateUser(ctx context.Context, userID int64, params UpdateParams) (PublicUser, error) {
	if s.UpdateUserFunc == nil {
		return PublicUser{}, errors.New("UpdateUser() not implemented by stub")
	}
	return s.UpdateUserFunc(ctx, userID, params)
}

func (s *StubService) ListUsers(ctx context.Context) ([]PublicUser, error) {
	if s.ListUsersFunc == nil {
		return nil, errors.New("ListUsers() not implemented by stub")
	}
	return s.ListUsersFunc(ctx)
}

func (s *StubService) VerifyPassword(plain, hashed string) (bool, error) {
	if s.VerifyPasswordFunc == nil {
		return false, errors.New("VerifyPassword() not implemented by stub")
	}
	return s.VerifyPasswordFunc(plain, hashed)
}

type StubRepo struct {
	FindFunc        func(ctx context.Context, userID int64) (*User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*User, error)
	CreateFunc      func(ctx context.Context, params CreateParams) (*User, error)
	UpdateFunc      func(ctx context.Context, userID int64, params UpdateParams) (*User, error)
	ListFunc        func(ctx context.Context) ([]User, error)
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) Find(ctx context.Context, userID int64) (*User, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, userID)
}

func (r *StubRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	if r.FindByEmailFunc == nil {
		return nil, errors.New("FindByEmail() not implemented by stub")
	}
	return r.FindByEmailFunc(ctx, email)
}

func (r *StubRepo) Create(ctx context.Context, params CreateParams) (*User, error) {
	if r.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) Update(ctx context.Context, userID int64, params UpdateParams) (*User, error) {
	if r.UpdateFunc == nil {
		return nil, errors.New("Update() not implemented by stub")
	}
	return r.UpdateFunc(ctx, userID, params)
}

func (r *StubRepo) List(ctx context.Context) ([]User, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx)
}
