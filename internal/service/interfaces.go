package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nstepanov/lockbox/models"
)

// AuthService owns account registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Prelogin(ctx context.Context, email string) (models.KdfConfig, error)
	Login(ctx context.Context, email, masterPasswordHash string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AuthRequestService owns the login-with-device flow: pending requests,
// polling, answering, and expiry.
type AuthRequestService interface {
	Create(ctx context.Context, request models.AuthRequest, accessCode string) (models.AuthRequest, error)
	Poll(ctx context.Context, id uuid.UUID, accessCode string) (models.AuthRequest, error)
	ListPending(ctx context.Context, userID int64) ([]models.AuthRequest, error)
	Answer(ctx context.Context, userID int64, id uuid.UUID, answer models.AnswerAuthRequestRequest) (models.AuthRequest, error)
	ExpireStale(ctx context.Context) (int64, error)
}

// DeviceService owns trusted-device enrollment.
type DeviceService interface {
	TrustDevice(ctx context.Context, device models.Device) (models.Device, error)
	GetDevice(ctx context.Context, userID int64, identifier string) (models.Device, error)
	ListDevices(ctx context.Context, userID int64) ([]models.Device, error)
}

// PolicyService serves the org master-password policy enforced at
// registration and, when EnforceOnLogin is set, at login.
type PolicyService interface {
	GetPolicy(ctx context.Context) models.MasterPasswordPolicy
}
