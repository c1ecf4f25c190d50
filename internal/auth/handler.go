package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/gatekeep/internal/pkg/message"
	"github.com/ferdiebergado/gatekeep/internal/pkg/web"
	"github.com/ferdiebergado/gatekeep/internal/user"
)

const maskChar = "*"

var errNoIdentity = errors.New("no authenticated user in context")

type AuthService interface {
	RegisterUser(ctx context.Context, params RegisterUserParams) (user.PublicUser, Token, error)
	LoginUser(ctx context.Context, params LoginUserParams) (user.PublicUser, Token, error)
	IssueToken(identity user.Identity) (Token, error)
}

type Handler struct {
	svc AuthService
}

func NewHandler(svc AuthService) *Handler {
	return &Handler{svc: svc}
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User user.PublicUser `json:"user"`
	Token
}

type RegisterUserRequest struct {
	Name                 string `json:"name" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8,maxbytes=72"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,min=8,eqfield=Password"`
}

func (r RegisterUserRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", r.Name),
		slog.String("email", maskChar),
		slog.String("password", maskChar),
		slog.String("password_confirmation", maskChar),
	)
}

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[RegisterUserRequest](r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	params := RegisterUserParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	newUser, token, err := h.svc.RegisterUser(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			web.RespondUnprocessableEntity(w, err, message.ValidationFailed, map[string][]string{
				"email": {message.EmailTaken},
			})
			return
		}

		web.RespondInternalServerError(w, err)
		return
	}

	msg := MsgRegistered
	web.RespondCreated(w, &msg, &AuthResponse{User: newUser, Token: token})
}

type UserLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r UserLoginRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

func (h *Handler) LoginUser(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[UserLoginRequest](r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	u, token, err := h.svc.LoginUser(r.Context(), LoginUserParams(req))
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			web.RespondUnauthorized(w, err, message.InvalidCredentials, map[string][]string{
				"email": {message.IncorrectCredentials},
			})
			return
		}

		web.RespondInternalServerError(w, err)
		return
	}

	msg := MsgLoggedIn
	web.RespondOK(w, &msg, &AuthResponse{User: u, Token: token})
}

// RefreshToken issues a new token for the subject of the presented one.
func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	identity, ok := user.IdentityFromContext(r.Context())
	if !ok {
		web.RespondUnauthorized(w, errNoIdentity, message.InvalidToken, nil)
		return
	}

	token, err := h.svc.IssueToken(identity)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	msg := MsgRefreshed
	web.RespondOK(w, &msg, &token)
}

// LogoutUser only acknowledges the request. The token stays valid until it expires.
func (h *Handler) LogoutUser(w http.ResponseWriter, _ *http.Request) {
	msg := MsgLoggedOut
	web.RespondOK[struct{}](w, &msg, nil)
}
