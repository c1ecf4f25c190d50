package user

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/gatekeep/internal/pkg/message"
	"github.com/ferdiebergado/gatekeep/internal/pkg/web"
)

const MsgProfileUpdated = "Profile updated successfully"

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type ProfileResponse struct {
	User PublicUser `json:"user"`
}

type ListResponse struct {
	Users []PublicUser `json:"users"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitnil,min=1"`
	Email *string `json:"email,omitempty" validate:"omitnil,email"`
}

func (r UpdateProfileRequest) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 2)
	if r.Name != nil {
		attrs = append(attrs, slog.String("name", *r.Name))
	}
	if r.Email != nil {
		attrs = append(attrs, slog.String("email", maskEmail(*r.Email)))
	}
	return slog.GroupValue(attrs...)
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		web.RespondUnauthorized(w, errors.New("no identity in context"), message.InvalidToken, nil)
		return
	}

	u, err := h.svc.FindUser(r.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondNotFound(w, err, message.UserNotFound, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondOK(w, nil, &ProfileResponse{User: u.Public()})
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		web.RespondUnauthorized(w, errors.New("no identity in context"), message.InvalidToken, nil)
		return
	}

	req, err := web.ParamsFromContext[UpdateProfileRequest](r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	params := UpdateParams{
		Name:  req.Name,
		Email: req.Email,
	}
	u, err := h.svc.UpdateUser(r.Context(), identity.ID, params)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateEmail):
			web.RespondUnprocessableEntity(w, err, message.ValidationFailed, map[string][]string{
				"email": {message.EmailTaken},
			})
		case errors.Is(err, ErrNotFound):
			web.RespondNotFound(w, err, message.UserNotFound, nil)
		default:
			web.RespondInternalServerError(w, err)
		}
		return
	}

	msg := MsgProfileUpdated
	web.RespondOK(w, &msg, &ProfileResponse{User: u})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondOK(w, nil, &ListResponse{Users: users})
}
