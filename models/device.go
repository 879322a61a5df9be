package models

import (
	"time"

	"github.com/google/uuid"
)

// Device is a client installation enrolled for trusted-device (passwordless)
// unlock. All key material is wrapped on the client before upload.
type Device struct {
	// ID is the public device identifier.
	ID uuid.UUID `json:"id"`

	// UserID is the owning account.
	UserID int64 `json:"-"`

	// Name is the user-visible device label (e.g. "work laptop").
	Name string `json:"name"`

	// Identifier is the stable installation identifier reported by the
	// client, unique per (user, installation).
	Identifier string `json:"identifier"`

	// ProtectedUserKey is the user key encrypted to the device public key.
	ProtectedUserKey string `json:"protected_user_key,omitempty"`

	// ProtectedDevicePrivateKey is the device private key wrapped with the
	// device key held on the client.
	ProtectedDevicePrivateKey string `json:"protected_device_private_key,omitempty"`

	// ProtectedDevicePublicKey is the device public key wrapped with the
	// user key.
	ProtectedDevicePublicKey string `json:"protected_device_public_key,omitempty"`

	// TrustedAt is when trust was established, nil for untrusted devices.
	TrustedAt *time.Time `json:"trusted_at,omitempty"`

	// CreatedAt is when the device first registered.
	CreatedAt time.Time `json:"created_at"`
}

// Trusted reports whether the device carries trust key material.
func (d Device) Trusted() bool {
	return d.TrustedAt != nil && d.ProtectedUserKey != ""
}

// TableName returns the database table backing the Device model.
func (d Device) TableName() string {
	return "devices"
}
