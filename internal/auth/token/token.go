// Package token mints and validates the HS256 session tokens that carry
// user identity between requests.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/claranceatgalvanize/embridge/internal/core/domain"
)

// DefaultTTL is the token lifetime applied when none is configured.
// Expiry is computed as issuance time plus this duration, not from
// day-of-month arithmetic, so it behaves correctly across month
// boundaries.
const DefaultTTL = 7 * 24 * time.Hour

// Claims is the payload embedded in every session token. Subject holds the
// user id.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Issuer mints and verifies session tokens with a process-wide secret
// supplied at construction. The secret is configuration, never derived
// from user input.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer builds an Issuer with the given secret and token lifetime. A
// zero ttl falls back to DefaultTTL; a negative ttl is kept as-is and mints
// already-expired tokens.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token for the user, valid from now until
// now + ttl.
func (i *Issuer) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Email: user.Email,
		Name:  user.Name,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify checks the signature and expiry of raw and returns the embedded
// claims. Every failure mode collapses into domain.ErrInvalidToken so the
// caller cannot tell a bad signature from an expired token.
func (i *Issuer) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !t.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
