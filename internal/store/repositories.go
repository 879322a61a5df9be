package store

import "github.com/nstepanov/lockbox/internal/logger"

// Repositories bundles the server-side repositories behind one constructor
// so the service layer receives a single dependency.
type Repositories struct {
	UserRepository        UserRepository
	DeviceRepository      DeviceRepository
	AuthRequestRepository AuthRequestRepository
}

// NewRepositories wires every repository to the shared database connection.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db, log),
		DeviceRepository:      NewDeviceRepository(db, log),
		AuthRequestRepository: NewAuthRequestRepository(db, log),
	}
}
