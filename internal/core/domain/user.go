package domain

import "time"

// UserRole enumerates the roles a user can hold.
type UserRole string

const (
	RoleAdmin     UserRole = "ADMIN"
	RoleUser      UserRole = "USER"
	RoleModerator UserRole = "MODERATOR"
)

// AuthProvider identifies how the account was created.
type AuthProvider string

const (
	ProviderEmail  AuthProvider = "email"
	ProviderGoogle AuthProvider = "google"
)

// User represents a user account in the domain.
// The password is always stored as a bcrypt hash, never plaintext; accounts
// created through Google carry a placeholder hash of the Google subject.
type User struct {
	UserID         string       `json:"userID"`
	Email          string       `json:"email"`
	PasswordHash   string       `json:"-"`
	Name           string       `json:"name"`
	Phone          string       `json:"phone,omitempty"`
	Role           UserRole     `json:"role"`
	Provider       AuthProvider `json:"provider"`
	Deleted        bool         `json:"deleted"`
	PhoneConfirmed bool         `json:"phoneConfirmed"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}
