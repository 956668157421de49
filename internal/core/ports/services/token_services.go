package services

import (
	"context"

	"github.com/khasanoff/uaa_backend/internal/core/domain"
)

// TokenSvcFacade issues and verifies the signed tokens used by the API.
// Tokens are stateless: validity is proven solely by signature and expiry.
type TokenSvcFacade interface {
	// IssueAuthToken creates a session token carrying the user's identity
	// claims (email, role, user id).
	IssueAuthToken(ctx context.Context, user *domain.User) (string, error)

	// IssueResetToken creates a short-lived token carrying only the user id,
	// used for the password-reset flow.
	IssueResetToken(ctx context.Context, userID string) (string, error)

	// VerifyAuthToken validates a session token and decodes its claims.
	// Returns apperrors.ErrTokenExpired or apperrors.ErrTokenInvalid.
	VerifyAuthToken(ctx context.Context, tokenString string) (*domain.Identity, error)

	// VerifyResetToken validates a reset token and returns the user id.
	VerifyResetToken(ctx context.Context, tokenString string) (string, error)
}
