package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registration fails because an
	// account with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a lookup by email or id matches no
	// account.
	ErrUserNotFound = errors.New("user not found")

	// ErrDeviceNotFound is returned when a lookup by (user, identifier)
	// matches no enrolled device.
	ErrDeviceNotFound = errors.New("device not found")

	// ErrAuthRequestNotFound is returned when a login request id matches no
	// record, or the record belongs to another account.
	ErrAuthRequestNotFound = errors.New("auth request not found")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
