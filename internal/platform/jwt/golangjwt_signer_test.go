package jwt_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/ferdiebergado/gatekeep/internal/config"
	timex "github.com/ferdiebergado/gatekeep/internal/pkg/time"
	"github.com/ferdiebergado/gatekeep/internal/platform/jwt"
)

const (
	testKey    = "123"
	testIssuer = "gatekeep"
)

func newSigner(t *testing.T, key string) jwt.Signer {
	t.Helper()

	cfg := &config.JWT{
		Issuer: testIssuer,
		TTL:    timex.Duration{Duration: time.Hour},
	}
	signer, err := jwt.NewGolangJWTSigner(cfg, key)
	if err != nil {
		t.Fatal(err)
	}
	return signer
}

func TestSignAndVerify_Success(t *testing.T) {
	t.Parallel()

	signer := newSigner(t, testKey)

	tests := []jwt.Claims{
		{UserID: 1, Email: "john@example.com"},
		{UserID: 9007199254740993, Email: "big.id@example.com"},
		{UserID: 42, Email: "ünïcode@example.com"},
	}

	for _, want := range tests {
		token, err := signer.Sign(want)
		if err != nil {
			t.Fatalf("signer.Sign(%+v) = %v", want, err)
		}

		if token == "" {
			t.Fatalf("token = %q, want: non-empty", token)
		}

		got, err := signer.Verify(token)
		if err != nil {
			t.Fatalf("signer.Verify(token) returned an error: %v", err)
		}

		if !reflect.DeepEqual(*got, want) {
			t.Errorf("signer.Verify(token) = %+v, want: %+v", *got, want)
		}
	}
}

func TestSign_UniqueTokenIDs(t *testing.T) {
	t.Parallel()

	signer := newSigner(t, testKey)
	claims := jwt.Claims{UserID: 1, Email: "john@example.com"}

	first, err := signer.Sign(claims)
	if err != nil {
		t.Fatal(err)
	}
	second, err := signer.Sign(claims)
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Error("two tokens issued in the same second are identical, want: distinct jti")
	}
}

func TestSign_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	signer := newSigner(t, testKey)
	issuedAt := time.Now()
	jwt.SetClock(signer, func() time.Time { return issuedAt })

	token, err := signer.Sign(jwt.Claims{UserID: 1, Email: "john@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	parsed, _, err := gojwt.NewParser().ParseUnverified(token, &gojwt.RegisteredClaims{})
	if err != nil {
		t.Fatal(err)
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil {
		t.Fatal(err)
	}

	got, want := exp.Unix()-issuedAt.Unix(), int64(time.Hour/time.Second)
	if got != want {
		t.Errorf("exp - iat = %d, want: %d", got, want)
	}

	if signer.TTL() != time.Hour {
		t.Errorf("signer.TTL() = %v, want: %v", signer.TTL(), time.Hour)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	signer := newSigner(t, testKey)
	issuedAt := time.Now().Add(-2 * time.Hour)
	jwt.SetClock(signer, func() time.Time { return issuedAt })

	token, err := signer.Sign(jwt.Claims{UserID: 1, Email: "john@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	jwt.SetClock(signer, time.Now)
	if _, err := signer.Verify(token); !errors.Is(err, jwt.ErrInvalidToken) {
		t.Errorf("signer.Verify(expired) = %v, want: %v", err, jwt.ErrInvalidToken)
	}
}

func TestVerify_Invalid(t *testing.T) {
	t.Parallel()

	signer := newSigner(t, testKey)
	token, err := signer.Sign(jwt.Claims{UserID: 1, Email: "john@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	otherToken, err := newSigner(t, "another-key").Sign(jwt.Claims{UserID: 1, Email: "john@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	noneToken, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{
		"id":    1,
		"email": "john@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name, token string
	}{
		{"Garbage", "not.a.token"},
		{"Empty", ""},
		{"Tampered payload", tampered},
		{"Signed with another key", otherToken},
		{"Unsigned token", noneToken},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			claims, err := signer.Verify(tc.token)
			if !errors.Is(err, jwt.ErrInvalidToken) {
				t.Errorf("signer.Verify(%q) = %v, want: %v", tc.token, err, jwt.ErrInvalidToken)
			}
			if claims != nil {
				t.Errorf("claims = %+v, want: nil", claims)
			}
		})
	}
}

func TestNewGolangJWTSigner_InvalidConfig(t *testing.T) {
	t.Parallel()

	if _, err := jwt.NewGolangJWTSigner(&config.JWT{TTL: timex.Duration{Duration: time.Hour}}, ""); err == nil {
		t.Error("jwt.NewGolangJWTSigner() with empty key = nil, want: error")
	}

	if _, err := jwt.NewGolangJWTSigner(&config.JWT{}, testKey); err == nil {
		t.Error("jwt.NewGolangJWTSigner() with zero ttl = nil, want: error")
	}
}
