// Package auth holds the server's credential primitives: HS256 session
// tokens, password hashing and the role gate for privileged operations.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the session token payload: the registered claims (sub, iss,
// iat, exp, jti) plus the principal's role at issuance.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Signer signs and verifies session tokens with a fixed HMAC key.
// It is safe for concurrent use; the key is never modified after construction.
type Signer struct {
	key    []byte
	issuer string
	now    func() time.Time
}

// NewSigner returns a Signer for key and issuer. The key is copied.
func NewSigner(key []byte, issuer string) *Signer {
	k := make([]byte, len(key))
	copy(k, key)
	return &Signer{key: k, issuer: issuer, now: time.Now}
}

// WithClock replaces the time source used for expiry checks.
func (s *Signer) WithClock(now func() time.Time) *Signer {
	s.now = now
	return s
}

// Sign builds and signs a token for subject. It returns the signed string
// together with the claims it carries.
func (s *Signer) Sign(subject, role string, issuedAt, expiresAt time.Time) (string, *Claims, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.key)
	if err != nil {
		return "", nil, err
	}

	return tokenString, claims, nil
}

// Parse verifies signature, algorithm, issuer and expiry of tokenString.
// A token that is well signed but past its exp yields common.ErrTokenExpired;
// every other failure yields common.ErrInvalidToken.
func (s *Signer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

// Expiry verifies the signature, algorithm and issuer of tokenString but
// not its time claims, and returns the signed exp. It accepts expired tokens.
func (s *Signer) Expiry(tokenString string) (time.Time, bool) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || claims.Issuer != s.issuer || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
