package jwt

import (
	"errors"
	"time"
)

// ErrInvalidToken is returned for every verification failure: bad signature,
// malformed token, wrong algorithm or expiry.
var ErrInvalidToken = errors.New("jwt: invalid token")

// Claims represents the JWT claims that are processed for authentication.
type Claims struct {
	UserID int64
	Email  string
}

// Signer defines methods for signing and verifying JWT tokens.
type Signer interface {
	Sign(claims Claims) (token string, err error)
	Verify(tokenString string) (*Claims, error)
	// TTL is the lifetime of every token issued by Sign.
	TTL() time.Duration
}
