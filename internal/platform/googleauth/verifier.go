// Package googleauth validates Google ID tokens during sign-in.
package googleauth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

// Verifier validates Google ID tokens against a set of accepted OAuth client
// ids (web and mobile clients issue tokens with different audiences).
type Verifier struct {
	audiences []string
}

// NewVerifier creates a Verifier accepting tokens for any of the given
// client ids. Empty entries are skipped.
func NewVerifier(audiences ...string) *Verifier {
	v := &Verifier{}
	for _, aud := range audiences {
		if aud != "" {
			v.audiences = append(v.audiences, aud)
		}
	}
	return v
}

// Verify checks the token signature and audience against Google and returns
// the identity it asserts. The last validation error is returned when no
// audience matches.
func (v *Verifier) Verify(ctx context.Context, rawToken string) (email, name, picture string, err error) {
	if len(v.audiences) == 0 {
		return "", "", "", fmt.Errorf("no google client ids configured")
	}

	var payload *idtoken.Payload
	for _, aud := range v.audiences {
		payload, err = idtoken.Validate(ctx, rawToken, aud)
		if err == nil {
			break
		}
	}
	if err != nil {
		return "", "", "", fmt.Errorf("google id token validation failed: %w", err)
	}

	email, _ = payload.Claims["email"].(string)
	name, _ = payload.Claims["name"].(string)
	picture, _ = payload.Claims["picture"].(string)
	if email == "" {
		return "", "", "", fmt.Errorf("google id token has no email claim")
	}
	return email, name, picture, nil
}
