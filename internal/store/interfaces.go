package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nstepanov/lockbox/models"
)

// UserRepository persists account records.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
}

// DeviceRepository persists enrolled client devices and their wrapped trust
// key material.
type DeviceRepository interface {
	SaveDevice(ctx context.Context, device models.Device) (models.Device, error)
	FindDevice(ctx context.Context, userID int64, identifier string) (models.Device, error)
	ListDevices(ctx context.Context, userID int64) ([]models.Device, error)
}

// AuthRequestFilter narrows ListAuthRequests. Zero fields are not applied.
type AuthRequestFilter struct {
	UserID       int64
	States       []models.AuthRequestState
	CreatedAfter time.Time
}

// AuthRequestRepository persists login-with-device requests.
type AuthRequestRepository interface {
	CreateAuthRequest(ctx context.Context, request models.AuthRequest) (models.AuthRequest, error)
	GetAuthRequest(ctx context.Context, id uuid.UUID) (models.AuthRequest, error)
	ListAuthRequests(ctx context.Context, filter AuthRequestFilter) ([]models.AuthRequest, error)
	UpdateAuthRequest(ctx context.Context, request models.AuthRequest, from models.AuthRequestState) (models.AuthRequest, error)
	ExpirePending(ctx context.Context, now time.Time) (int64, error)
}
