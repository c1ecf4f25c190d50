package user_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/ferdiebergado/gatekeep/internal/pkg/message"
	"github.com/ferdiebergado/gatekeep/internal/pkg/web"
	"github.com/ferdiebergado/gatekeep/internal/user"
)

var testNow = time.Date(2025, 10, 18, 10, 0, 0, 0, time.UTC)

func testUser() *user.User {
	return &user.User{
		ID:           1,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$12$secret",
		CreatedAt:    testNow,
		UpdatedAt:    testNow,
	}
}

func withIdentity(r *http.Request, id int64) *http.Request {
	ctx := user.NewContextWithIdentity(r.Context(), user.Identity{ID: id, Email: "alice@example.com"})
	return r.WithContext(ctx)
}

func TestHandler_Profile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		svc        user.Service
		identity   bool
		wantStatus int
		wantMsg    string
	}{
		{
			name: "Returns the authenticated user",
			svc: &user.StubService{FindUserFunc: func(_ context.Context, _ int64) (*user.User, error) {
				return testUser(), nil
			}},
			identity:   true,
			wantStatus: http.StatusOK,
		},
		{
			name: "User vanished",
			svc: &user.StubService{FindUserFunc: func(_ context.Context, _ int64) (*user.User, error) {
				return nil, user.ErrNotFound
			}},
			identity:   true,
			wantStatus: http.StatusNotFound,
			wantMsg:    message.UserNotFound,
		},
		{
			name: "Store fails",
			svc: &user.StubService{FindUserFunc: func(_ context.Context, _ int64) (*user.User, error) {
				return nil, errors.New("connection refused")
			}},
			identity:   true,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    message.InternalError,
		},
		{
			name:       "No identity",
			svc:        &user.StubService{},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    message.InvalidToken,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := user.NewHandler(tc.svc)
			req := httptest.NewRequest(http.MethodGet, "/api/user/profile", http.NoBody)
			if tc.identity {
				req = withIdentity(req, 1)
			}
			rec := httptest.NewRecorder()

			h.Profile(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf(message.FmtErrStatusCode, rec.Code, tc.wantStatus)
			}

			if strings.Contains(rec.Body.String(), "password") {
				t.Errorf("response body %s contains a password field", rec.Body.String())
			}

			if tc.wantStatus != http.StatusOK {
				var res web.ErrorResponse
				if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
					t.Fatal(err)
				}
				if res.Success || res.Message != tc.wantMsg {
					t.Errorf("res = %+v, want message %q", res, tc.wantMsg)
				}
				return
			}

			var res web.OKResponse[*user.ProfileResponse]
			if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
				t.Fatal(err)
			}
			want := testUser().Public()
			if !res.Success || !reflect.DeepEqual(res.Data.User, want) {
				t.Errorf("res = %+v, want user %+v", res, want)
			}
		})
	}
}

func TestHandler_UpdateProfile(t *testing.T) {
	t.Parallel()

	newName := "Alicia"
	takenEmail := "bob@example.com"

	tests := []struct {
		name       string
		req        user.UpdateProfileRequest
		updateErr  error
		wantStatus int
		wantMsg    string
		wantErrs   map[string][]string
	}{
		{"Updates the profile", user.UpdateProfileRequest{Name: &newName}, nil, http.StatusOK, user.MsgProfileUpdated, nil},
		{"Email taken", user.UpdateProfileRequest{Email: &takenEmail}, user.ErrDuplicateEmail, http.StatusUnprocessableEntity,
			message.ValidationFailed, map[string][]string{"email": {message.EmailTaken}}},
		{"User vanished", user.UpdateProfileRequest{Name: &newName}, user.ErrNotFound, http.StatusNotFound, message.UserNotFound, nil},
		{"Store fails", user.UpdateProfileRequest{Name: &newName}, errors.New("timeout"), http.StatusInternalServerError, message.InternalError, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &user.StubService{
				UpdateUserFunc: func(_ context.Context, userID int64, params user.UpdateParams) (user.PublicUser, error) {
					if tc.updateErr != nil {
						return user.PublicUser{}, tc.updateErr
					}
					u := testUser()
					u.ID = userID
					if params.Name != nil {
						u.Name = *params.Name
					}
					return u.Public(), nil
				},
			}
			h := user.NewHandler(svc)

			req := httptest.NewRequest(http.MethodPut, "/api/user/profile", http.NoBody)
			req = withIdentity(req, 1)
			req = req.WithContext(web.NewContextWithParams(req.Context(), tc.req))
			rec := httptest.NewRecorder()

			h.UpdateProfile(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf(message.FmtErrStatusCode, rec.Code, tc.wantStatus)
			}

			if tc.wantStatus != http.StatusOK {
				var res web.ErrorResponse
				if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
					t.Fatal(err)
				}
				if res.Message != tc.wantMsg || !reflect.DeepEqual(res.Errors, tc.wantErrs) {
					t.Errorf("res = %+v, want message %q and errors %v", res, tc.wantMsg, tc.wantErrs)
				}
				return
			}

			var res web.OKResponse[*user.ProfileResponse]
			if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
				t.Fatal(err)
			}
			if res.Message != tc.wantMsg || res.Data.User.Name != newName {
				t.Errorf("res = %+v, want message %q and name %q", res, tc.wantMsg, newName)
			}
		})
	}
}

func TestHandler_UpdateProfile_MissingParams(t *testing.T) {
	t.Parallel()

	h := user.NewHandler(&user.StubService{})
	req := withIdentity(httptest.NewRequest(http.MethodPut, "/api/user/profile", http.NoBody), 1)
	rec := httptest.NewRecorder()

	h.UpdateProfile(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf(message.FmtErrStatusCode, rec.Code, http.StatusInternalServerError)
	}
}

func TestHandler_ListUsers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		svc        user.Service
		wantStatus int
		wantUsers  []user.PublicUser
	}{
		{
			name: "Returns every user",
			svc: &user.StubService{ListUsersFunc: func(_ context.Context) ([]user.PublicUser, error) {
				a, b := testUser(), testUser()
				b.ID, b.Email = 2, "bob@example.com"
				return user.ToPublic([]user.User{*a, *b}), nil
			}},
			wantStatus: http.StatusOK,
			wantUsers: func() []user.PublicUser {
				a, b := testUser(), testUser()
				b.ID, b.Email = 2, "bob@example.com"
				return []user.PublicUser{a.Public(), b.Public()}
			}(),
		},
		{
			name: "Empty store",
			svc: &user.StubService{ListUsersFunc: func(_ context.Context) ([]user.PublicUser, error) {
				return []user.PublicUser{}, nil
			}},
			wantStatus: http.StatusOK,
			wantUsers:  []user.PublicUser{},
		},
		{
			name: "Store fails",
			svc: &user.StubService{ListUsersFunc: func(_ context.Context) ([]user.PublicUser, error) {
				return nil, errors.New("db error")
			}},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := user.NewHandler(tc.svc)
			req := httptest.NewRequest(http.MethodGet, "/api/users", http.NoBody)
			rec := httptest.NewRecorder()

			h.ListUsers(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tc.wantStatus {
				t.Fatalf("res.StatusCode = %v, want: %v", res.StatusCode, tc.wantStatus)
			}

			if got := res.Header.Get(web.HeaderContentType); !strings.HasPrefix(got, web.MimeJSON) {
				t.Errorf("res.Header.Get(%q) = %q, want: %q", web.HeaderContentType, got, web.MimeJSON)
			}

			if tc.wantStatus != http.StatusOK {
				return
			}

			var body web.OKResponse[*user.ListResponse]
			if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if !reflect.DeepEqual(body.Data.Users, tc.wantUsers) {
				t.Errorf("body.Data.Users = %+v, want: %+v", body.Data.Users, tc.wantUsers)
			}
		})
	}
}

func TestPublicUser_JSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(testUser().Public())
	if err != nil {
		t.Fatal(err)
	}

	var fields map[string]any
	if err := json.Unmarshal(b, &fields); err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"id", "name", "email", "emailVerifiedAt", "createdAt", "updatedAt"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("PublicUser JSON %s is missing %q", b, key)
		}
	}
	if _, ok := fields["password"]; ok {
		t.Errorf("PublicUser JSON %s has a password field", b)
	}
}
