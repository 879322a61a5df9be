package service

import "errors"

// Client-side sentinel errors.
var (
	ErrRegisterOnServer = errors.New("register on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")

	// ErrPasswordRejectedByPolicy is returned when a candidate master
	// password does not satisfy the org policy.
	ErrPasswordRejectedByPolicy = errors.New("password rejected by policy")

	// ErrVaultLocked is returned by operations that need the plaintext user
	// key before any login has produced one.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrFingerprintMismatch is returned when a login request's fingerprint
	// does not match the one recomputed from its public key. The request
	// must not be approved.
	ErrFingerprintMismatch = errors.New("fingerprint mismatch")

	// ErrDeviceLoginPending is returned by a poll while the request awaits
	// an answer.
	ErrDeviceLoginPending = errors.New("device login still pending")

	// ErrDeviceLoginDenied is returned when the user rejected the request
	// on the trusted device.
	ErrDeviceLoginDenied = errors.New("device login denied")

	// ErrDeviceNotRemembered is returned by offline unlock when no device
	// key was retained on this installation.
	ErrDeviceNotRemembered = errors.New("device key not remembered on this installation")
)
