package middleware

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	portssvc "github.com/khasanoff/uaa_backend/internal/core/ports/services"
)

// AuthMiddleware creates a Gin middleware handler that opportunistically
// decodes a bearer token into a request-scoped identity. A missing or invalid
// token leaves the request anonymous; the middleware never rejects by itself.
// Rejection is left to the guards on routes that require an identity.
func AuthMiddleware(tokenService portssvc.TokenSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.Next()
			return
		}

		identity, err := tokenService.VerifyAuthToken(c.Request.Context(), parts[1])
		if err != nil {
			logger.Warn("Bearer token rejected, proceeding anonymously", slog.String("error", err.Error()))
			c.Next()
			return
		}

		ctx := context.WithValue(c.Request.Context(), identityKey, identity)

		// Enrich the request logger with the verified user id
		enrichedLogger := logger.With(slog.String("user_id", identity.UserID))
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
