// Package jwtmw issues and verifies the stateless session tokens carried in
// the x-token header. There is no server-side session store; the signature is
// the only state.
package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer defines the interface for session token issuance.
type Issuer interface {
	// Issue creates a signed session token for the given user id.
	Issue(uid string) (string, error)
}

// issuer implements the Issuer interface.
type issuer struct {
	secret     []byte
	expiration time.Duration
}

// NewIssuer creates a session token issuer with the provided secret and expiration duration.
func NewIssuer(secret string, expiration time.Duration) Issuer {
	return &issuer{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// Issue creates a signed token carrying the user id in the uid claim.
func (g *issuer) Issue(uid string) (string, error) {
	claims := jwt.MapClaims{
		"uid": uid,
		"exp": time.Now().Add(g.expiration).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
