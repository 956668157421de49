package repositories

import (
	"context"
	"time"

	"github.com/khasanoff/uaa_backend/internal/core/domain"
)

// UserRepository defines the persistence operations for user records.
// Implementations return apperrors.ErrNotFound when a lookup misses and
// apperrors.ErrDuplicate when a unique constraint is violated.
type UserRepository interface {
	// CreateUser inserts a new user record.
	CreateUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by ID, including soft-deleted users.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, including soft-deleted users.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByPhone retrieves a user by phone number.
	FindUserByPhone(ctx context.Context, phone string) (*domain.User, error)

	// UpdateUser persists profile changes (name, phone, updated_at).
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdatePassword replaces the stored password hash for a user.
	UpdatePassword(ctx context.Context, userID string, passwordHash string, updatedAt time.Time) error

	// MarkUserDeleted sets the soft-delete flag for a user.
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error
}
