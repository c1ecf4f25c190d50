package jwt

import "time"

// SetClock replaces the time source of a signer created by NewGolangJWTSigner.
func SetClock(s Signer, now func() time.Time) {
	s.(*golangJWTSigner).now = now
}
