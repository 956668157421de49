package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khasanoff/uaa_backend/internal/core/domain"
	"github.com/khasanoff/uaa_backend/internal/dto"
)

// RequireAuth rejects requests that do not carry a verified identity.
// It must run after AuthMiddleware.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetIdentityFromContext(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authorization error"))
			return
		}
		c.Next()
	}
}

// RequireRole rejects requests whose identity role does not exactly equal the
// required role. No role hierarchy is applied: a MODERATOR does not satisfy an
// ADMIN-only route. Always chain after RequireAuth so an identity is present.
func RequireRole(role domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentityFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authorization error"))
			return
		}
		if identity.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Forbidden Resource"))
			return
		}
		c.Next()
	}
}
