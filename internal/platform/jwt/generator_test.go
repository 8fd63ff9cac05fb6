package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestIssuer_Issue verifies the issued token is valid and carries the
// expected claims.
func TestIssuer_Issue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		uid        string
		expiration time.Duration
	}{
		{"basic user", "5f4e1c2a-9a0f-4d2b-8c3e-111111111111", time.Hour},
		{"short uid", "u1", time.Hour},
		{"long expiration", "5f4e1c2a-9a0f-4d2b-8c3e-222222222222", 24 * time.Hour * 30},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			iss := NewIssuer("test-secret", tt.expiration)
			tokenStr, err := iss.Issue(tt.uid)

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tokenStr == "" {
				t.Fatal("expected non-empty token")
			}

			// Verify the token can be parsed
			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				return []byte("test-secret"), nil
			})
			if err != nil {
				t.Fatalf("failed to parse token: %v", err)
			}
			if !token.Valid {
				t.Error("expected token to be valid")
			}

			// Verify claims
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				t.Fatal("expected MapClaims")
			}

			if uid, ok := claims["uid"].(string); !ok || uid != tt.uid {
				t.Errorf("expected uid %q, got %v", tt.uid, claims["uid"])
			}
			if _, ok := claims["exp"]; !ok {
				t.Error("expected exp claim to be set")
			}
			if _, ok := claims["iat"]; !ok {
				t.Error("expected iat claim to be set")
			}
		})
	}
}

// TestIssuer_Issue_SigningMethod verifies tokens are signed with the HS256
// algorithm.
func TestIssuer_Issue_SigningMethod(t *testing.T) {
	t.Parallel()

	iss := NewIssuer("test-secret", time.Hour)
	tokenStr, err := iss.Issue("user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(tokenStr, func(tok *jwt.Token) (interface{}, error) {
		// Verify signing method is HMAC
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			t.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if !token.Valid {
		t.Error("expected token to be valid")
	}
}

// TestIssuer_Issue_Expiration verifies the exp and iat claims fall in the
// expected time range.
func TestIssuer_Issue_Expiration(t *testing.T) {
	t.Parallel()

	expiration := 2 * time.Hour
	iss := NewIssuer("test-secret", expiration)

	before := time.Now().Truncate(time.Second)
	tokenStr, err := iss.Issue("user-1")
	after := time.Now().Truncate(time.Second).Add(time.Second) // Add 1 second buffer

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, _ := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})

	claims := token.Claims.(jwt.MapClaims)

	// Check exp is within expected range (using Unix timestamps for comparison)
	expUnix := int64(claims["exp"].(float64))
	expectedMinUnix := before.Add(expiration).Unix()
	expectedMaxUnix := after.Add(expiration).Unix()

	if expUnix < expectedMinUnix || expUnix > expectedMaxUnix {
		t.Errorf("exp %d not in expected range [%d, %d]", expUnix, expectedMinUnix, expectedMaxUnix)
	}

	// Check iat is within expected range
	iatUnix := int64(claims["iat"].(float64))
	if iatUnix < before.Unix() || iatUnix > after.Unix() {
		t.Errorf("iat %d not in expected range [%d, %d]", iatUnix, before.Unix(), after.Unix())
	}
}

// TestIssuer_Issue_DifferentUsersProduceDifferentTokens verifies distinct
// users get distinct tokens.
func TestIssuer_Issue_DifferentUsersProduceDifferentTokens(t *testing.T) {
	t.Parallel()

	iss := NewIssuer("test-secret", time.Hour)

	token1, _ := iss.Issue("user-1")
	token2, _ := iss.Issue("user-2")

	if token1 == token2 {
		t.Error("expected different tokens for different users")
	}
}
