package models

import "time"

// Session is the client's persisted login state: the bearer token plus the
// account it belongs to. Stored in the local cache so a restart does not
// force a fresh login.
type Session struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// LocalDevice is the client's half of a trusted-device enrollment. DeviceKey
// stays on this machine only; the matching protected blobs live on the
// server.
type LocalDevice struct {
	// Identifier is the stable installation identifier sent to the server.
	Identifier string `json:"identifier"`

	// Name is the label this installation enrolled under.
	Name string `json:"name"`

	// DeviceKey is the locally retained symmetric device key (base64).
	// Empty when the user declined to be remembered.
	DeviceKey string `json:"device_key,omitempty"`

	// ProtectedDevicePrivateKey mirrors the server copy so the device can
	// unwrap the user key while offline.
	ProtectedDevicePrivateKey string `json:"protected_device_private_key,omitempty"`

	// ProtectedUserKey mirrors the server copy of the user key encrypted to
	// the device public key.
	ProtectedUserKey string `json:"protected_user_key,omitempty"`
}
