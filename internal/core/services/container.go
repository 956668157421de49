package services

import (
	portsrepo "github.com/khasanoff/uaa_backend/internal/core/ports/repositories"
	portssvc "github.com/khasanoff/uaa_backend/internal/core/ports/services"
	"github.com/khasanoff/uaa_backend/internal/platform/config"
)

// NewServiceContainer assembles the application services with their
// dependencies. This is the composition root for the service layer.
func NewServiceContainer(cfg *config.Config, userRepo portsrepo.UserRepository) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:        NewUserService(userRepo, cfg.BcryptCost),
		Token:       NewTokenService(cfg),
		GoogleOAuth: NewGoogleOAuthService(cfg),
	}
}
