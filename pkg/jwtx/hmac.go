package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// HMACMethod resolves an algorithm name (HS256, HS384, HS512) to its
// signing method.
func HMACMethod(alg string) (*jwt.SigningMethodHMAC, error) {
	switch alg {
	case jwt.SigningMethodHS256.Alg():
		return jwt.SigningMethodHS256, nil
	case jwt.SigningMethodHS384.Alg():
		return jwt.SigningMethodHS384, nil
	case jwt.SigningMethodHS512.Alg():
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlg, alg)
	}
}

// HMACSigner implements Signer with a shared secret.
type HMACSigner struct {
	method *jwt.SigningMethodHMAC
	secret []byte
}

// NewHMACSigner creates a signer for the given HMAC algorithm.
func NewHMACSigner(alg string, secret []byte) (*HMACSigner, error) {
	method, err := HMACMethod(alg)
	if err != nil {
		return nil, err
	}
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return &HMACSigner{method: method, secret: secret}, nil
}

func (s *HMACSigner) Alg() string { return s.method.Alg() }

// Sign takes your claims and turns them into a signed JWT string.
func (s *HMACSigner) Sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
}

// Validate does a quick sanity check to make sure we actually have a key.
func (s *HMACSigner) Validate() error {
	if s == nil || s.method == nil {
		return ErrUnsupportedAlg
	}
	if len(s.secret) == 0 {
		return ErrEmptySecret
	}
	return nil
}

// HMACVerifier validates JWTs signed with a shared secret.
type HMACVerifier struct {
	method *jwt.SigningMethodHMAC
	secret []byte
	issuer string
	leeway time.Duration
	now    func() time.Time
}

// VerifierOption customises an HMACVerifier.
type VerifierOption func(*HMACVerifier)

// WithLeeway allows small clock skew when validating exp and nbf.
func WithLeeway(d time.Duration) VerifierOption {
	return func(v *HMACVerifier) { v.leeway = d }
}

// WithClock overrides the time source used for exp and nbf.
func WithClock(now func() time.Time) VerifierOption {
	return func(v *HMACVerifier) { v.now = now }
}

// NewHMACVerifier creates a verifier that only accepts tokens signed with
// alg and the given secret. An empty issuer is not enforced.
func NewHMACVerifier(alg string, secret []byte, issuer string, opts ...VerifierOption) (*HMACVerifier, error) {
	method, err := HMACMethod(alg)
	if err != nil {
		return nil, err
	}
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	v := &HMACVerifier{method: method, secret: secret, issuer: issuer, now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Verify validates the JWT string and returns its parsed Claims.
func (v *HMACVerifier) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{v.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
		jwt.WithTimeFunc(v.now),
	)

	var claims Claims
	token, err := parser.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalidSig
	}

	// Now check all the claim requirements
	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateIdentity(); err != nil {
		return Claims{}, err
	}

	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing), errors.Is(err, jwt.ErrTokenInvalidClaims):
		return ErrInvalidClaim
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}
