package pgsql_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/khasanoff/uaa_backend/internal/apperrors"
	"github.com/khasanoff/uaa_backend/internal/core/domain"
	portsrepo "github.com/khasanoff/uaa_backend/internal/core/ports/repositories"
	"github.com/khasanoff/uaa_backend/internal/repositories/database/pgsql"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"user_id", "email", "password_hash", "name", "phone", "role", "provider", "deleted", "phone_confirmed", "created_at", "updated_at"}

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, portsrepo.UserRepository) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)
	return mockPool, pgsql.NewUserRepositoryWithQuerier(mockPool)
}

func sampleUser() domain.User {
	now := time.Now().Truncate(time.Second)
	return domain.User{
		UserID:       uuid.NewString(),
		Email:        "u@example.com",
		PasswordHash: "$2a$10$hash",
		Name:         "Test User",
		Phone:        "998901112233",
		Role:         domain.RoleUser,
		Provider:     domain.ProviderEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestCreateUser_Success(t *testing.T) {
	mockPool, repo := newMockRepo(t)
	user := sampleUser()

	mockPool.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(user.UserID, user.Email, user.PasswordHash, user.Name, user.Phone, user.Role, user.Provider, user.Deleted, user.PhoneConfirmed, user.CreatedAt, user.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.CreateUser(context.Background(), user)

	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	mockPool, repo := newMockRepo(t)
	user := sampleUser()

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	mockPool.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(user.UserID, user.Email, user.PasswordHash, user.Name, user.Phone, user.Role, user.Provider, user.Deleted, user.PhoneConfirmed, user.CreatedAt, user.UpdatedAt).
		WillReturnError(pgErr)

	err := repo.CreateUser(context.Background(), user)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	// The constraint name survives so the caller can tell which field collided.
	assert.Contains(t, err.Error(), "users_email_key")
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestFindUserByID_Success(t *testing.T) {
	mockPool, repo := newMockRepo(t)
	user := sampleUser()

	rows := pgxmock.NewRows(userCols).
		AddRow(user.UserID, user.Email, user.PasswordHash, user.Name, user.Phone, user.Role, user.Provider, user.Deleted, user.PhoneConfirmed, user.CreatedAt, user.UpdatedAt)
	mockPool.ExpectQuery(regexp.QuoteMeta("FROM users WHERE user_id = $1")).
		WithArgs(user.UserID).
		WillReturnRows(rows)

	got, err := repo.FindUserByID(context.Background(), user.UserID)

	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, user.Phone, got.Phone)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	mockPool, repo := newMockRepo(t)

	mockPool.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("missing@example.com").
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.FindUserByEmail(context.Background(), "missing@example.com")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestFindUserByPhone_Success(t *testing.T) {
	mockPool, repo := newMockRepo(t)
	user := sampleUser()

	rows := pgxmock.NewRows(userCols).
		AddRow(user.UserID, user.Email, user.PasswordHash, user.Name, user.Phone, user.Role, user.Provider, user.Deleted, user.PhoneConfirmed, user.CreatedAt, user.UpdatedAt)
	mockPool.ExpectQuery(regexp.QuoteMeta("FROM users WHERE phone = $1")).
		WithArgs(user.Phone).
		WillReturnRows(rows)

	got, err := repo.FindUserByPhone(context.Background(), user.Phone)

	require.NoError(t, err)
	assert.Equal(t, user.UserID, got.UserID)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestUpdateUser_NotFound(t *testing.T) {
	mockPool, repo := newMockRepo(t)
	user := sampleUser()

	mockPool.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WithArgs(user.Name, user.Phone, user.UpdatedAt, user.UserID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateUser(context.Background(), user)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestUpdatePassword_Success(t *testing.T) {
	mockPool, repo := newMockRepo(t)
	userID := uuid.NewString()
	updatedAt := time.Now()

	mockPool.ExpectExec(regexp.QuoteMeta("SET password_hash = $1")).
		WithArgs("$2a$10$newhash", updatedAt, userID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdatePassword(context.Background(), userID, "$2a$10$newhash", updatedAt)

	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestMarkUserDeleted_Success(t *testing.T) {
	mockPool, repo := newMockRepo(t)
	userID := uuid.NewString()
	deletedAt := time.Now()

	mockPool.ExpectExec(regexp.QuoteMeta("SET deleted = TRUE")).
		WithArgs(deletedAt, userID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.MarkUserDeleted(context.Background(), userID, deletedAt)

	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestMarkUserDeleted_AlreadyDeleted(t *testing.T) {
	mockPool, repo := newMockRepo(t)
	userID := uuid.NewString()
	deletedAt := time.Now()

	mockPool.ExpectExec(regexp.QuoteMeta("SET deleted = TRUE")).
		WithArgs(deletedAt, userID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.MarkUserDeleted(context.Background(), userID, deletedAt)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}
