package domain

// Identity is the request-scoped claim set decoded from a verified bearer
// token. It lives only for the duration of a request and is never persisted.
type Identity struct {
	UserID string
	Email  string
	Role   UserRole
}
