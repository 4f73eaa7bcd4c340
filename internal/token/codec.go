// Package token signs and verifies the compact session tokens carried in
// the auth cookie. Tokens are stateless: identity and expiry travel inside
// the signed payload, so no server-side session store exists and no
// revocation is possible before expiry.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cinewatch/movienight/internal/core/domain"
)

// DefaultTTL is the fixed session lifetime when none is configured.
const DefaultTTL = 24 * time.Hour

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Codec issues and verifies HS256-signed session tokens.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec returns a Codec signing with secret. An empty secret is a
// configuration error and must abort startup, not surface per request.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is not configured")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for session, expiring ttl after issuance.
func (c *Codec) Issue(session domain.Session) (string, error) {
	now := c.now().UTC()
	claims := sessionClaims{
		Email: session.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify validates signature and expiry and returns the embedded identity.
// Malformed input, a signature mismatch, an expired claim, and any decode
// failure all collapse to ok=false; callers never see an error.
func (c *Codec) Verify(tokenString string) (domain.Session, bool) {
	claims := &sessionClaims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return c.now() }))
	if err != nil || !t.Valid {
		return domain.Session{}, false
	}
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return domain.Session{}, false
	}

	return domain.Session{UserID: claims.Subject, Email: claims.Email}, true
}

// TTL reports the configured token lifetime; the cookie MaxAge must not
// outlive it.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}
