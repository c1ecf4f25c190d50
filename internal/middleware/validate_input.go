package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/gatekeep/internal/pkg/message"
	"github.com/ferdiebergado/gatekeep/internal/pkg/web"
	"github.com/ferdiebergado/gatekeep/internal/platform/validation"
)

var errInvalidInput = errors.New("input failed validation")

func ValidateInput[T any](validator validation.Validator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slog.Debug("Validating input...")
			params, err := web.ParamsFromContext[T](r.Context())
			if err != nil {
				web.RespondInternalServerError(w, err)
				return
			}

			if errs := validator.ValidateStruct(params); len(errs) > 0 {
				web.RespondUnprocessableEntity(w, errInvalidInput, message.ValidationFailed, errs)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
