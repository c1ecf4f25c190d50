package middleware

import (
	"net/http"

	"github.com/unrolled/secure"
)

// SecureHeaders sets the standard browser hardening headers. HSTS is only
// sent in production.
func SecureHeaders(isProduction bool) func(http.Handler) http.Handler {
	opts := secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; frame-ancestors 'none'",
		IsDevelopment:         !isProduction,
	}
	if isProduction {
		opts.STSSeconds = 31536000
		opts.STSIncludeSubdomains = true
	}

	return secure.New(opts).Handler
}
