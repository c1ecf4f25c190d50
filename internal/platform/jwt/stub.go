package jwt

import (
	"errors"
	"time"
)

type StubSigner struct {
	SignFunc   func(claims Claims) (string, error)
	VerifyFunc func(tokenString string) (*Claims, error)
	TTLValue   time.Duration
}

var _ Signer = (*StubSigner)(nil)

func (s *StubSigner) Sign(claims Claims) (string, error) {
	if s.SignFunc == nil {
		return "", errors.New("Sign() not implemented by stub")
	}

	return s.SignFunc(claims)
}

func (s *StubSigner) Verify(tokenString string) (*Claims, error) {
	if s.VerifyFunc == nil {
		return nil, errors.New("Verify() not implemented by stub")
	}

	return s.VerifyFunc(tokenString)
}

func (s *StubSigner) TTL() time.Duration {
	if s.TTLValue == 0 {
		return time.Hour
	}
	return s.TTLValue
}
