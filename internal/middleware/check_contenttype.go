package middleware

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"

	"github.com/ferdiebergado/gatekeep/internal/pkg/message"
	"github.com/ferdiebergado/gatekeep/internal/pkg/web"
)

// CheckContentType rejects requests with a body that is not declared as JSON.
// Requests without a body are passed through.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 && r.Header.Get(web.HeaderContentType) == "" {
			next.ServeHTTP(w, r)
			return
		}

		slog.Debug("Checking Content-Type...")
		contentType := r.Header.Get(web.HeaderContentType)
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != web.MimeJSON {
			web.RespondUnsupportedMediaType(w, fmt.Errorf("invalid content-type: %q", contentType), message.UnsupportedMediaType, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
