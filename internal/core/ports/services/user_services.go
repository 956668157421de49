package services

import (
	"context"

	"github.com/khasanoff/uaa_backend/internal/core/domain"
	"github.com/khasanoff/uaa_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// Register creates a new user from a registration payload.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// UpdateProfile updates a user's name and/or phone.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// UpdatePassword verifies the current password and stores a new hash.
	UpdatePassword(ctx context.Context, userID string, req dto.UpdatePasswordRequest) (*domain.User, error)

	// ResetPassword stores a new hash for a user identified by a verified
	// reset token. Callers are responsible for token verification.
	ResetPassword(ctx context.Context, userID string, newPassword string) (*domain.User, error)
}

// UserAuthSvc defines operations for credential authentication.
type UserAuthSvc interface {
	// Authenticate checks email/password credentials and returns the user.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// FindOrCreateGoogleUser looks up a user by email, creating one with
	// provider "google" on first login.
	FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)
}

// UserLifecycleSvc defines operations for managing the user lifecycle.
type UserLifecycleSvc interface {
	// Deactivate marks a user as deleted (soft delete).
	Deactivate(ctx context.Context, userID string) error
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
	UserLifecycleSvc
}
