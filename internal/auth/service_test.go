package auth_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ferdiebergado/gatekeep/internal/auth"
	"github.com/ferdiebergado/gatekeep/internal/config"
	timex "github.com/ferdiebergado/gatekeep/internal/pkg/time"
	"github.com/ferdiebergado/gatekeep/internal/platform/hash"
	"github.com/ferdiebergado/gatekeep/internal/platform/jwt"
	"github.com/ferdiebergado/gatekeep/internal/user"
)

const (
	testName     = "Alice"
	testEmail    = "alice@example.com"
	testPassword = "password1"
)

func fakeHasher() *hash.StubHasher {
	return &hash.StubHasher{
		HashFunc: func(plain string) (string, error) {
			return "hashed:" + plain, nil
		},
		VerifyFunc: func(plain, hashed string) (bool, error) {
			return hashed == "hashed:"+plain, nil
		},
	}
}

func newSigner(t *testing.T) jwt.Signer {
	t.Helper()

	signer, err := jwt.NewGolangJWTSigner(&config.JWT{
		Issuer: "test",
		TTL:    timex.Duration{Duration: time.Hour},
	}, "secret")
	if err != nil {
		t.Fatal(err)
	}
	return signer
}

func newService(t *testing.T) (*auth.Service, user.Service, jwt.Signer) {
	t.Helper()

	userSvc := user.NewService(user.NewMemoryRepository(), fakeHasher())
	signer := newSigner(t)
	return auth.NewService(userSvc, signer), userSvc, signer
}

func register(t *testing.T, svc *auth.Service) user.PublicUser {
	t.Helper()

	u, _, err := svc.RegisterUser(context.Background(), auth.RegisterUserParams{
		Name: testName, Email: testEmail, Password: testPassword,
	})
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func TestService_RegisterUser(t *testing.T) {
	t.Parallel()

	svc, userSvc, signer := newService(t)

	u, token, err := svc.RegisterUser(context.Background(), auth.RegisterUserParams{
		Name: testName, Email: testEmail, Password: testPassword,
	})
	if err != nil {
		t.Fatalf("svc.RegisterUser() = %v", err)
	}

	if u.Name != testName || u.Email != testEmail || u.EmailVerifiedAt != nil {
		t.Errorf("u = %+v, want name %q, email %q and no verification", u, testName, testEmail)
	}

	if token.TokenType != auth.TokenTypeBearer || token.ExpiresIn != 3600 {
		t.Errorf("token = %+v, want bearer expiring in 3600", token)
	}

	claims, err := signer.Verify(token.Token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != u.ID || claims.Email != u.Email {
		t.Errorf("claims = %+v, want id %d and email %q", claims, u.ID, u.Email)
	}

	stored, err := userSvc.FindUser(context.Background(), u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.PasswordHash == testPassword {
		t.Error("password was stored in plaintext")
	}
}

func TestService_RegisterUser_Duplicate(t *testing.T) {
	t.Parallel()

	svc, userSvc, _ := newService(t)
	register(t, svc)

	_, _, err := svc.RegisterUser(context.Background(), auth.RegisterUserParams{
		Name: "Other", Email: testEmail, Password: "password2",
	})
	if !errors.Is(err, auth.ErrUserExists) {
		t.Errorf("svc.RegisterUser() = %v, want: %v", err, auth.ErrUserExists)
	}

	users, err := userSvc.ListUsers(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 1 {
		t.Errorf("len(users) = %d, want: 1", len(users))
	}
}

func TestService_RegisterUser_DuplicateFromStore(t *testing.T) {
	t.Parallel()

	userSvc := &user.StubService{
		FindUserByEmailFunc: func(context.Context, string) (*user.User, error) {
			return nil, user.ErrNotFound
		},
		CreateUserFunc: func(context.Context, user.CreateUserParams) (user.PublicUser, error) {
			return user.PublicUser{}, user.ErrDuplicateEmail
		},
	}
	svc := auth.NewService(userSvc, newSigner(t))

	_, _, err := svc.RegisterUser(context.Background(), auth.RegisterUserParams{
		Name: testName, Email: testEmail, Password: testPassword,
	})
	if !errors.Is(err, auth.ErrUserExists) {
		t.Errorf("svc.RegisterUser() = %v, want: %v", err, auth.ErrUserExists)
	}
}

func TestService_LoginUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"Correct credentials", testEmail, testPassword, nil},
		{"Wrong password", testEmail, "wrong-password", auth.ErrInvalidCredentials},
		{"Unknown email", "nobody@example.com", testPassword, auth.ErrInvalidCredentials},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, _, signer := newService(t)
			registered := register(t, svc)

			u, token, err := svc.LoginUser(context.Background(), auth.LoginUserParams{
				Email: tc.email, Password: tc.password,
			})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("svc.LoginUser() = %v, want: %v", err, tc.wantErr)
			}

			if tc.wantErr != nil {
				return
			}

			if u.ID != registered.ID {
				t.Errorf("u.ID = %d, want: %d", u.ID, registered.ID)
			}
			if _, err := signer.Verify(token.Token); err != nil {
				t.Errorf("signer.Verify(token) = %v", err)
			}
		})
	}
}

func TestService_LoginUser_StoreFailure(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("connection reset")
	userSvc := &user.StubService{
		FindUserByEmailFunc: func(context.Context, string) (*user.User, error) {
			return nil, storeErr
		},
	}
	svc := auth.NewService(userSvc, newSigner(t))

	_, _, err := svc.LoginUser(context.Background(), auth.LoginUserParams{Email: testEmail, Password: testPassword})
	if !errors.Is(err, storeErr) || errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("svc.LoginUser() = %v, want: %v", err, storeErr)
	}
}

func TestService_IssueToken(t *testing.T) {
	t.Parallel()

	signErr := errors.New("sign failed")
	svc := auth.NewService(&user.StubService{}, &jwt.StubSigner{
		SignFunc: func(jwt.Claims) (string, error) { return "", signErr },
	})

	if _, err := svc.IssueToken(user.Identity{ID: 1, Email: testEmail}); !errors.Is(err, signErr) {
		t.Errorf("svc.IssueToken() = %v, want: %v", err, signErr)
	}

	svc = auth.NewService(&user.StubService{}, &jwt.StubSigner{
		SignFunc: func(c jwt.Claims) (string, error) {
			return strings.Join([]string{"token", c.Email}, ":"), nil
		},
		TTLValue: 30 * time.Minute,
	})
	token, err := svc.IssueToken(user.Identity{ID: 1, Email: testEmail})
	if err != nil {
		t.Fatal(err)
	}
	want := auth.Token{Token: "token:" + testEmail, TokenType: "bearer", ExpiresIn: 1800}
	if token != want {
		t.Errorf("svc.IssueToken() = %+v, want: %+v", token, want)
	}
}
