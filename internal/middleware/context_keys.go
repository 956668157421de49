package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/khasanoff/uaa_backend/internal/core/domain"
)

// identityKey is the key used to store the authenticated identity in the
// request context. Using a custom type prevents collisions.
const identityKey = contextKey("identity")

// GetIdentityFromContext retrieves the verified identity claims from the
// request context. The second return value reports whether a verified
// identity is present; absence means the request is anonymous.
func GetIdentityFromContext(c *gin.Context) (*domain.Identity, bool) {
	val := c.Request.Context().Value(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*domain.Identity)
	if !ok {
		return nil, false
	}
	return identity, true
}
