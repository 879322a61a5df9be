package store

import (
	"context"

	"github.com/nstepanov/lockbox/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalStore is the client-side cache: the current session and this
// installation's trusted-device material.
type LocalStore interface {
	SaveSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context) error

	SaveLocalDevice(ctx context.Context, device models.LocalDevice) error
	GetLocalDevice(ctx context.Context) (models.LocalDevice, error)

	Close() error
}
