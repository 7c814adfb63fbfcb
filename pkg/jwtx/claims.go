package jwtx

import (
	"time"

	"github.com/aussiebroadwan/tasks/pkg/idx"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the lifetime given to access tokens when the
// caller does not ask for one.
const DefaultAccessTokenTTL = 20 * time.Minute

// Claims are the access-token claims. The subject carries the username and
// "id" carries the user's identifier.
type Claims struct {
	jwt.RegisteredClaims

	// UserID of the authenticated user.
	UserID string `json:"id,omitempty"`
}

// NewAccessClaims builds minimally-correct claims.
func NewAccessClaims(username, userID, issuer string, ttl time.Duration, now time.Time) Claims {
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}
	now = now.UTC()

	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		UserID: userID,
	}
}

// NewJTI returns a unique identifier for the "jti" claim.
func NewJTI() string {
	return idx.New().String()
}

// ValidateIdentity ensures both identity claims are present.
func (c *Claims) ValidateIdentity() error {
	if c.Subject == "" || c.UserID == "" {
		return ErrInvalidClaim
	}
	return nil
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}
