package service

import (
	"github.com/nstepanov/lockbox/internal/config"
	"github.com/nstepanov/lockbox/internal/logger"
	"github.com/nstepanov/lockbox/internal/store"
)

// Services bundles the server-side services behind one constructor so the
// handler layer receives a single dependency.
type Services struct {
	AuthService        AuthService
	AuthRequestService AuthRequestService
	DeviceService      DeviceService
	PolicyService      PolicyService
}

// NewServices wires every service to the shared repositories and config.
func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:        NewAuthService(repositories.UserRepository, cfg.App, logger),
		AuthRequestService: NewAuthRequestService(repositories.AuthRequestRepository, repositories.UserRepository, cfg.App, logger),
		DeviceService:      NewDeviceService(repositories.DeviceRepository, logger),
		PolicyService:      NewPolicyService(DefaultMasterPasswordPolicy(), logger),
	}
}
