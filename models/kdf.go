package models

import "errors"

// KdfType selects the key-derivation algorithm used to stretch a master
// password into the master key.
type KdfType int

const (
	// KdfArgon2id is the default algorithm for new accounts.
	KdfArgon2id KdfType = iota

	// KdfPBKDF2 (HMAC-SHA256) is kept for accounts migrated from older
	// deployments.
	KdfPBKDF2
)

// HashPurpose domain-separates master-password hashes so that the value sent
// to the server can never be replayed as the local unlock hash.
type HashPurpose int

const (
	// PurposeServerAuthorization marks the hash transmitted at login.
	PurposeServerAuthorization HashPurpose = iota

	// PurposeLocalAuthorization marks the hash kept on-device for offline
	// vault unlock verification.
	PurposeLocalAuthorization
)

// KdfConfig holds the per-account tuning parameters of the key-derivation
// function. The values are public: the server returns them from the prelogin
// endpoint so any device can reproduce the same master key.
type KdfConfig struct {
	// Type selects between Argon2id and PBKDF2-SHA256.
	Type KdfType `json:"kdf_type"`

	// Iterations is the time cost (Argon2id passes or PBKDF2 rounds).
	Iterations uint32 `json:"iterations"`

	// MemoryMiB is the Argon2id memory cost in MiB. Ignored for PBKDF2.
	MemoryMiB uint32 `json:"memory_mib,omitempty"`

	// Parallelism is the Argon2id lane count. Ignored for PBKDF2.
	Parallelism uint8 `json:"parallelism,omitempty"`
}

// DefaultKdfConfig returns the Argon2id parameters used for new
// registrations: 3 passes, 64 MiB, 4 lanes.
func DefaultKdfConfig() KdfConfig {
	return KdfConfig{
		Type:        KdfArgon2id,
		Iterations:  3,
		MemoryMiB:   64,
		Parallelism: 4,
	}
}

var (
	ErrUnknownKdfType      = errors.New("unknown kdf type")
	ErrInvalidKdfSettings  = errors.New("invalid kdf settings")
	ErrUnknownHashPurpose  = errors.New("unknown hash purpose")
	errZeroKdfIterations   = errors.New("kdf iterations must be positive")
	errArgonMemoryTooSmall = errors.New("argon2 memory cost below 16 MiB")
)

// Validate checks that the config describes a runnable KDF.
func (k KdfConfig) Validate() error {
	switch k.Type {
	case KdfArgon2id:
		if k.Iterations == 0 {
			return errZeroKdfIterations
		}
		if k.MemoryMiB < 16 {
			return errArgonMemoryTooSmall
		}
		if k.Parallelism == 0 {
			return ErrInvalidKdfSettings
		}
	case KdfPBKDF2:
		if k.Iterations < 100_000 {
			return ErrInvalidKdfSettings
		}
	default:
		return ErrUnknownKdfType
	}

	return nil
}
