package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/khasanoff/uaa_backend/internal/apperrors"
	"github.com/khasanoff/uaa_backend/internal/core/domain"
	portssvc "github.com/khasanoff/uaa_backend/internal/core/ports/services"
	"github.com/khasanoff/uaa_backend/internal/platform/config"
)

// authClaims is the JWT claim set for session tokens. The user id travels in
// the registered subject claim.
type authClaims struct {
	Email string          `json:"email"`
	Role  domain.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// tokenService implements TokenSvcFacade using HS256-signed JWTs. Tokens are
// not persisted; validity is proven solely by signature and expiry.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

func (s *tokenService) IssueAuthToken(ctx context.Context, user *domain.User) (string, error) {
	if s.cfg.JWTSecret == "" {
		return "", apperrors.ErrTokenSigning
	}

	now := time.Now()
	claims := authClaims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiryDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrTokenSigning, err)
	}
	return signed, nil
}

func (s *tokenService) IssueResetToken(ctx context.Context, userID string) (string, error) {
	if s.cfg.JWTSecret == "" {
		return "", apperrors.ErrTokenSigning
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.ResetTokenExpiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrTokenSigning, err)
	}
	return signed, nil
}

func (s *tokenService) VerifyAuthToken(ctx context.Context, tokenString string) (*domain.Identity, error) {
	claims := &authClaims{}
	if err := s.parse(tokenString, claims); err != nil {
		return nil, err
	}
	// A session token must carry the full identity claim set. Reset tokens
	// are subject-only and must never pass as a session credential.
	if claims.Subject == "" || claims.Email == "" {
		return nil, apperrors.ErrTokenInvalid
	}
	return &domain.Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}

func (s *tokenService) VerifyResetToken(ctx context.Context, tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	if err := s.parse(tokenString, claims); err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", apperrors.ErrTokenInvalid
	}
	return claims.Subject, nil
}

// parse validates signature and standard claims, mapping jwt library errors
// onto the apperrors sentinels.
func (s *tokenService) parse(tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return apperrors.ErrTokenExpired
		}
		return fmt.Errorf("%w: %v", apperrors.ErrTokenInvalid, err)
	}
	if !token.Valid {
		return apperrors.ErrTokenInvalid
	}
	return nil
}
