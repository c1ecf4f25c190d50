package user

import (
	"log/slog"
	"strings"
	"time"
)

// User is a stored account, including its password hash.
type User struct {
	ID              int64
	Name            string
	Email           string
	PasswordHash    string `json:"-"`
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (u User) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("id", u.ID),
		slog.String("email", maskEmail(u.Email)),
	)
}

// PublicUser is the only representation of a User that leaves the service.
type PublicUser struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	EmailVerifiedAt *time.Time `json:"emailVerifiedAt"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// Public projects u without its password hash.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		EmailVerifiedAt: u.EmailVerifiedAt,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func ToPublic(users []User) []PublicUser {
	public := make([]PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	return public
}

func maskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at < 1 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
