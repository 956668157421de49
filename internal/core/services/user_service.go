package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/khasanoff/uaa_backend/internal/apperrors"
	"github.com/khasanoff/uaa_backend/internal/core/domain"
	portsrepo "github.com/khasanoff/uaa_backend/internal/core/ports/repositories"
	portssvc "github.com/khasanoff/uaa_backend/internal/core/ports/services"
	"github.com/khasanoff/uaa_backend/internal/dto"
	"github.com/khasanoff/uaa_backend/internal/middleware"
	"github.com/khasanoff/uaa_backend/internal/utils"
)

// userService implements UserSvcFacade on top of the user repository.
// The uniqueness pre-checks in Register and UpdateProfile are an optimization
// only; the storage-layer unique indexes are the real guarantee, so a
// duplicate-key error from the repository is mapped to the same conflict
// error as a failed pre-check.
type userService struct {
	userRepo   portsrepo.UserRepository
	bcryptCost int
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserRepository, bcryptCost int) portssvc.UserSvcFacade {
	return &userService{
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
	}
}

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if existing, err := s.findByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperrors.NewBadRequestError("Existing email")
	}

	if existing, err := s.findByPhone(ctx, req.Phone); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperrors.NewBadRequestError("Existing phone")
	}

	hash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	provider := domain.ProviderEmail
	if req.Provider != "" {
		provider = domain.AuthProvider(req.Provider)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         domain.RoleUser,
		Provider:     provider,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, mapDuplicateError(err)
	}

	return &user, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.NewUnauthorizedError("Email or password is incorrect")
	}

	// Credentials are checked first, so a removed account with a wrong
	// password answers 401 like any other account.
	if user.Deleted {
		return nil, apperrors.NewForbiddenError("User removed")
	}

	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Phone != nil && *req.Phone != user.Phone {
		existing, err := s.findByPhone(ctx, *req.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.UserID != userID {
			return nil, apperrors.NewBadRequestError("Existing phone")
		}
		user.Phone = *req.Phone
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, mapDuplicateError(err)
	}

	return user, nil
}

func (s *userService) UpdatePassword(ctx context.Context, userID string, req dto.UpdatePasswordRequest) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.NewBadRequestError("Incorrect password")
	}

	hash, err := utils.HashPassword(req.NewPassword, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash new password: %w", err)
	}

	user.PasswordHash = hash
	user.UpdatedAt = time.Now()
	if err := s.userRepo.UpdatePassword(ctx, userID, hash, user.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to update password: %w", err)
	}

	return user, nil
}

func (s *userService) ResetPassword(ctx context.Context, userID string, newPassword string) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash new password: %w", err)
	}

	user.PasswordHash = hash
	user.UpdatedAt = time.Now()
	if err := s.userRepo.UpdatePassword(ctx, userID, hash, user.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to reset password: %w", err)
	}

	return user, nil
}

func (s *userService) FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.findByEmail(ctx, info.Email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	// First Google login: create the account with a placeholder password
	// derived from the Google subject, so it can never match a typed password.
	hash, err := utils.HashPassword(info.Subject, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder password: %w", err)
	}

	now := time.Now()
	newUser := domain.User{
		UserID:       uuid.NewString(),
		Email:        info.Email,
		PasswordHash: hash,
		Name:         info.Name,
		Role:         domain.RoleUser,
		Provider:     domain.ProviderGoogle,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.CreateUser(ctx, newUser); err != nil {
		return nil, mapDuplicateError(err)
	}

	logger.Info("Created user from Google profile", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}

func (s *userService) Deactivate(ctx context.Context, userID string) error {
	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("User not found")
		}
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	return nil
}

// findByEmail looks a user up by email, treating "not found" as a nil user.
func (s *userService) findByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}
	return user, nil
}

// findByPhone looks a user up by phone, treating "not found" as a nil user.
func (s *userService) findByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if phone == "" {
		return nil, nil
	}
	user, err := s.userRepo.FindUserByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up user by phone: %w", err)
	}
	return user, nil
}

// mapDuplicateError converts a storage unique violation into the same
// conflict error the pre-checks produce.
func mapDuplicateError(err error) error {
	if errors.Is(err, apperrors.ErrDuplicate) {
		if strings.Contains(err.Error(), "phone") {
			return apperrors.NewBadRequestError("Existing phone")
		}
		return apperrors.NewBadRequestError("Existing email")
	}
	return err
}
