package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrTokenSigning indicates that a token could not be signed, e.g. because
// the signing secret is empty.
var ErrTokenSigning = errors.New("token signing failed")

// ErrTokenExpired indicates that a presented token is past its expiry.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenInvalid indicates a token that failed signature or claim validation.
var ErrTokenInvalid = errors.New("token invalid")

// AppError is an error carrying the HTTP status it should be surfaced with.
// Handlers funnel these through a single response helper; anything that is
// not an AppError becomes a 500.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func New(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func NewBadRequestError(message string) *AppError {
	return New(http.StatusBadRequest, message)
}

func NewUnauthorizedError(message string) *AppError {
	return New(http.StatusUnauthorized, message)
}

func NewForbiddenError(message string) *AppError {
	return New(http.StatusForbidden, message)
}

func NewNotFoundError(message string) *AppError {
	return New(http.StatusNotFound, message)
}

func NewUnprocessableEntityError(message string) *AppError {
	return New(http.StatusUnprocessableEntity, message)
}

func NewInternalServerError(message string) *AppError {
	return New(http.StatusInternalServerError, message)
}
