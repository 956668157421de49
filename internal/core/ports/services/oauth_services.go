package services

import (
	"context"

	"github.com/khasanoff/uaa_backend/internal/core/domain"
	"golang.org/x/oauth2"
)

// GoogleOAuthSvcFacade wraps the Google OAuth authorization-code flow.
// The underlying oauth2 config is built once at startup and read-only after.
type GoogleOAuthSvcFacade interface {
	// GenerateStateString creates a random state value for CSRF protection.
	GenerateStateString(ctx context.Context) (string, error)

	// GetLoginURL returns the Google consent page URL for the given state.
	GetLoginURL(ctx context.Context, state string) string

	// ExchangeCodeForToken exchanges an authorization code for tokens.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateIDToken validates the ID token from the exchange and extracts
	// the user information we care about.
	ValidateIDToken(ctx context.Context, idTokenString string) (*domain.GoogleUserInfo, error)
}
