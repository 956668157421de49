package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/khasanoff/uaa_backend/internal/apperrors"
	"github.com/khasanoff/uaa_backend/internal/core/domain"
	"github.com/khasanoff/uaa_backend/internal/core/services"
	"github.com/khasanoff/uaa_backend/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenConfig(secret string) *config.Config {
	return &config.Config{
		JWTSecret:         secret,
		JWTExpiryDuration: time.Hour,
		ResetTokenExpiry:  time.Hour,
	}
}

func TestAuthToken_RoundTrip(t *testing.T) {
	svc := services.NewTokenService(testTokenConfig("test-secret"))
	user := &domain.User{
		UserID: uuid.NewString(),
		Email:  "u@example.com",
		Role:   domain.RoleAdmin,
	}

	token, err := svc.IssueAuthToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := svc.VerifyAuthToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, identity.UserID)
	assert.Equal(t, user.Email, identity.Email)
	assert.Equal(t, domain.RoleAdmin, identity.Role)
}

func TestAuthToken_WrongSecret(t *testing.T) {
	issuer := services.NewTokenService(testTokenConfig("secret-a"))
	verifier := services.NewTokenService(testTokenConfig("secret-b"))

	token, err := issuer.IssueAuthToken(context.Background(), &domain.User{UserID: uuid.NewString(), Role: domain.RoleUser})
	require.NoError(t, err)

	identity, err := verifier.VerifyAuthToken(context.Background(), token)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestAuthToken_Expired(t *testing.T) {
	cfg := testTokenConfig("test-secret")
	cfg.JWTExpiryDuration = -time.Minute
	svc := services.NewTokenService(cfg)

	token, err := svc.IssueAuthToken(context.Background(), &domain.User{UserID: uuid.NewString(), Role: domain.RoleUser})
	require.NoError(t, err)

	identity, err := svc.VerifyAuthToken(context.Background(), token)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestAuthToken_Garbage(t *testing.T) {
	svc := services.NewTokenService(testTokenConfig("test-secret"))

	identity, err := svc.VerifyAuthToken(context.Background(), "not.a.jwt")
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestAuthToken_EmptySecret(t *testing.T) {
	svc := services.NewTokenService(testTokenConfig(""))

	token, err := svc.IssueAuthToken(context.Background(), &domain.User{UserID: uuid.NewString()})
	assert.Empty(t, token)
	assert.ErrorIs(t, err, apperrors.ErrTokenSigning)
}

func TestResetToken_RoundTrip(t *testing.T) {
	svc := services.NewTokenService(testTokenConfig("test-secret"))
	userID := uuid.NewString()

	token, err := svc.IssueResetToken(context.Background(), userID)
	require.NoError(t, err)

	got, err := svc.VerifyResetToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestResetToken_Expired(t *testing.T) {
	cfg := testTokenConfig("test-secret")
	cfg.ResetTokenExpiry = -time.Minute
	svc := services.NewTokenService(cfg)

	token, err := svc.IssueResetToken(context.Background(), uuid.NewString())
	require.NoError(t, err)

	got, err := svc.VerifyResetToken(context.Background(), token)
	assert.Empty(t, got)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestResetToken_RejectedAsAuthToken(t *testing.T) {
	// Reset tokens carry only the subject; they must never pass as a session
	// credential even though the signature checks out.
	svc := services.NewTokenService(testTokenConfig("test-secret"))

	token, err := svc.IssueResetToken(context.Background(), uuid.NewString())
	require.NoError(t, err)

	identity, err := svc.VerifyAuthToken(context.Background(), token)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestAuthToken_MissingEmailClaimRejected(t *testing.T) {
	svc := services.NewTokenService(testTokenConfig("test-secret"))

	token, err := svc.IssueAuthToken(context.Background(), &domain.User{
		UserID: uuid.NewString(),
		Role:   domain.RoleUser,
	})
	require.NoError(t, err)

	identity, err := svc.VerifyAuthToken(context.Background(), token)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}
