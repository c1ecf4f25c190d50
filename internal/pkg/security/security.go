package security

import (
	"errors"
	"net/http"
	"strings"
)

const (
	HeaderAuthorization = "Authorization"
	schemeBearer        = "bearer"
)

var (
	ErrMissingToken = errors.New("security: missing bearer token")
	ErrBadScheme    = errors.New("security: authorization scheme is not bearer")
)

// ExtractBearerToken returns the token from an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively. A header without a token is reported
// as a missing token whatever its scheme.
func ExtractBearerToken(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get(HeaderAuthorization))
	if header == "" {
		return "", ErrMissingToken
	}

	scheme, token, _ := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}

	if !strings.EqualFold(scheme, schemeBearer) {
		return "", ErrBadScheme
	}

	return token, nil
}
