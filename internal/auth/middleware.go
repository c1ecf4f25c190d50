package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/ferdiebergado/gatekeep/internal/pkg/message"
	"github.com/ferdiebergado/gatekeep/internal/pkg/security"
	"github.com/ferdiebergado/gatekeep/internal/pkg/web"
	"github.com/ferdiebergado/gatekeep/internal/platform/jwt"
	"github.com/ferdiebergado/gatekeep/internal/user"
)

// UserFinder resolves the subject of a verified token.
type UserFinder interface {
	FindUser(ctx context.Context, userID int64) (*user.User, error)
}

// RequireToken rejects requests without a valid bearer token for an existing
// user. A missing token gets "Access token required"; every other failure gets
// the same "Invalid token" message.
func RequireToken(signer jwt.Signer, users UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := security.ExtractBearerToken(r)
			if err != nil {
				if errors.Is(err, security.ErrMissingToken) {
					web.RespondUnauthorized(w, err, message.TokenRequired, nil)
					return
				}
				web.RespondUnauthorized(w, err, message.InvalidToken, nil)
				return
			}

			claims, err := signer.Verify(token)
			if err != nil {
				web.RespondUnauthorized(w, err, message.InvalidToken, nil)
				return
			}

			if _, err := users.FindUser(r.Context(), claims.UserID); err != nil {
				if errors.Is(err, user.ErrNotFound) {
					web.RespondUnauthorized(w, err, message.InvalidToken, nil)
					return
				}
				web.RespondInternalServerError(w, err)
				return
			}

			ctx := user.NewContextWithIdentity(r.Context(), user.Identity{
				ID:    claims.UserID,
				Email: claims.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
