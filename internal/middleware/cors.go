package middleware

import (
	"net/http"
)

const (
	HeaderOrigin       = "Origin"
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"
	HeaderMaxAge       = "Access-Control-Max-Age"
	HeaderVary         = "Vary"

	AllowedMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	AllowedHeaders = "Content-Type, Authorization"
	AllowAnyOrigin = "*"

	preflightMaxAge = "600"
)

// CORS allows cross-origin calls from allowedOrigin, or from anywhere when it is "*".
// Preflight requests are answered with 204 and never reach the router.
func CORS(allowedOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get(HeaderOrigin)

			switch {
			case allowedOrigin == AllowAnyOrigin:
				w.Header().Set(HeaderAllowOrigin, AllowAnyOrigin)
			case origin == allowedOrigin:
				w.Header().Set(HeaderAllowOrigin, origin)
				w.Header().Add(HeaderVary, HeaderOrigin)
			default:
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set(HeaderAllowMethods, AllowedMethods)
			w.Header().Set(HeaderAllowHeaders, AllowedHeaders)

			if r.Method == http.MethodOptions {
				w.Header().Set(HeaderMaxAge, preflightMaxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
