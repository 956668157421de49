package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/khasanoff/uaa_backend/internal/core/domain"
	"github.com/khasanoff/uaa_backend/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func performGuardedRequest(identity *domain.Identity, guards ...gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	if identity != nil {
		tokenService := new(MockTokenService)
		tokenService.On("VerifyAuthToken", mock.Anything, "token").Return(identity, nil)
		r.Use(middleware.AuthMiddleware(tokenService))
	}

	handlers := append(guards, func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/guarded", handlers...)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if identity != nil {
		req.Header.Set("Authorization", "Bearer token")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_Anonymous(t *testing.T) {
	w := performGuardedRequest(nil, middleware.RequireAuth())

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success":false,"errors":["Authorization error"]}`, w.Body.String())
}

func TestRequireAuth_Authenticated(t *testing.T) {
	identity := &domain.Identity{UserID: "user-1", Role: domain.RoleUser}

	w := performGuardedRequest(identity, middleware.RequireAuth())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_Match(t *testing.T) {
	identity := &domain.Identity{UserID: "user-1", Role: domain.RoleAdmin}

	w := performGuardedRequest(identity, middleware.RequireAuth(), middleware.RequireRole(domain.RoleAdmin))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_Mismatch(t *testing.T) {
	identity := &domain.Identity{UserID: "user-1", Role: domain.RoleUser}

	w := performGuardedRequest(identity, middleware.RequireAuth(), middleware.RequireRole(domain.RoleAdmin))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"success":false,"errors":["Forbidden Resource"]}`, w.Body.String())
}

func TestRequireRole_NoHierarchy(t *testing.T) {
	// MODERATOR does not satisfy an ADMIN-only route.
	identity := &domain.Identity{UserID: "user-1", Role: domain.RoleModerator}

	w := performGuardedRequest(identity, middleware.RequireAuth(), middleware.RequireRole(domain.RoleAdmin))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_Anonymous(t *testing.T) {
	w := performGuardedRequest(nil, middleware.RequireRole(domain.RoleAdmin))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
