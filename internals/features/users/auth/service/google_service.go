// file: internals/features/users/auth/service/google_service.go
package service

import (
	"errors"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"

	"uniportal_backend/internals/configs"
)

// GoogleProfile is the subset of the Google ID token the portal keeps.
type GoogleProfile struct {
	GoogleID string
	Email    string
	Name     string
}

// VerifyGoogleIDToken checks the token signature and audience against the
// configured OAuth client id and returns the verified profile.
func VerifyGoogleIDToken(idToken string) (*GoogleProfile, error) {
	if configs.GoogleClientID == "" {
		return nil, errors.New("google sign-in is not configured")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, err
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, err
	}
	if claimSet.Sub == "" || claimSet.Email == "" {
		return nil, errors.New("google token missing required claims")
	}
	return &GoogleProfile{
		GoogleID: claimSet.Sub,
		Email:    claimSet.Email,
		Name:     claimSet.Name,
	}, nil
}
