package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ferdiebergado/gatekeep/internal/config"
)

// identityClaims is the token payload: {id, email} plus the registered claims.
type identityClaims struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// golangJWTSigner implements the Signer interface using the golang-jwt library.
type golangJWTSigner struct {
	method jwt.SigningMethod
	key    []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

var _ Signer = (*golangJWTSigner)(nil)

// NewGolangJWTSigner creates a new HS256 signer with the provided JWT config and signing key.
func NewGolangJWTSigner(cfg *config.JWT, key string) (Signer, error) {
	if key == "" {
		return nil, errors.New("jwt signing key is empty")
	}

	ttl := cfg.TTL.Duration
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt ttl must be positive, got %v", ttl)
	}

	return &golangJWTSigner{
		method: jwt.SigningMethodHS256,
		key:    []byte(key),
		issuer: cfg.Issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Sign generates a signed JWT for the given identity that expires after the configured TTL.
func (s *golangJWTSigner) Sign(c Claims) (string, error) {
	now := s.now()
	claims := &identityClaims{
		ID:    c.UserID,
		Email: c.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(c.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	signedToken, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signedToken, nil
}

// Verify parses and validates a JWT token string and returns the associated Claims if valid.
func (s *golangJWTSigner) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &identityClaims{}, func(_ *jwt.Token) (any, error) {
		return s.key, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	customClaims, ok := token.Claims.(*identityClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: unknown claims type: %T", ErrInvalidToken, token.Claims)
	}

	claims := &Claims{
		UserID: customClaims.ID,
		Email:  customClaims.Email,
	}

	return claims, nil
}

func (s *golangJWTSigner) TTL() time.Duration {
	return s.ttl
}
