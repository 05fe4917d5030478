package auth

import (
	"time"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

// newTestJWTService builds an HMAC service with an injected clock.
func newTestJWTService(secret string, lifetime time.Duration, now func() time.Time) *hmacJWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      now,
		clockSkew:     2 * time.Minute,
	}
}
