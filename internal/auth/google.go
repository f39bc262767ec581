package auth

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"
)

var ErrInvalidGoogleToken = errors.New("invalid google token")

// GoogleProfile is the subset of the ID-token payload the backend consumes.
type GoogleProfile struct {
	GoogleID string
	Email    string
	Name     string
	Picture  string
}

// GoogleVerifier validates a Google ID token and extracts the profile.
// An interface so usecases can be tested without calling Google.
type GoogleVerifier interface {
	Verify(ctx context.Context, credential string) (*GoogleProfile, error)
}

type googleVerifier struct {
	clientID string
}

func NewGoogleVerifier(clientID string) GoogleVerifier {
	return &googleVerifier{clientID: clientID}
}

func (v *googleVerifier) Verify(ctx context.Context, credential string) (*GoogleProfile, error) {
	payload, err := idtoken.Validate(ctx, credential, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGoogleToken, err)
	}

	profile := &GoogleProfile{
		GoogleID: payload.Subject,
		Email:    claimString(payload, "email"),
		Name:     claimString(payload, "name"),
		Picture:  claimString(payload, "picture"),
	}
	if profile.Email == "" {
		return nil, ErrInvalidGoogleToken
	}
	return profile, nil
}

func claimString(payload *idtoken.Payload, key string) string {
	if v, ok := payload.Claims[key].(string); ok {
		return v
	}
	return ""
}
