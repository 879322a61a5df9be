package models

import (
	"time"

	"github.com/google/uuid"
)

// Transport payloads exchanged between client adapter and HTTP handlers.
// Kept separate from the persistence entities so wire compatibility does not
// leak into the storage layer.

// RegisterRequest carries the derived registration material to the server.
// Nothing in it can be reversed into the master password or user key.
type RegisterRequest struct {
	Email              string      `json:"email"`
	Name               string      `json:"name,omitempty"`
	Kdf                KdfConfig   `json:"kdf"`
	MasterPasswordHash string      `json:"master_password_hash"`
	WrappedUserKey     string      `json:"wrapped_user_key"`
	Keys               AccountKeys `json:"keys"`
}

// PreloginRequest asks for the KDF parameters of an account.
type PreloginRequest struct {
	Email string `json:"email"`
}

// PreloginResponse returns the public KDF parameters so the device can
// reproduce the master key before authenticating.
type PreloginResponse struct {
	Kdf KdfConfig `json:"kdf"`
}

// LoginRequest authenticates with the server-authorization hash.
type LoginRequest struct {
	Email              string `json:"email"`
	MasterPasswordHash string `json:"master_password_hash"`
}

// LoginResponse returns the wrapped key material needed to unlock the vault
// locally. The session token travels in the Authorization response header.
type LoginResponse struct {
	WrappedUserKey string      `json:"wrapped_user_key"`
	Keys           AccountKeys `json:"keys"`
}

// CreateAuthRequestRequest opens a passwordless login request. AccessCode is
// transmitted once at creation; the server keeps only its HMAC.
type CreateAuthRequestRequest struct {
	Email       string `json:"email"`
	PublicKey   string `json:"public_key"`
	Fingerprint string `json:"fingerprint"`
	DeviceName  string `json:"device_name"`
	AccessCode  string `json:"access_code"`
}

// PollAuthRequestRequest checks the state of a pending request. The access
// code proves the poll comes from the device that created the request.
type PollAuthRequestRequest struct {
	AccessCode string `json:"access_code"`
}

// AuthRequestView is the API projection of an auth request. The answer
// payload fields are populated only for an authorized poll of an approved
// request.
type AuthRequestView struct {
	ID                 uuid.UUID `json:"id"`
	Email              string    `json:"email"`
	Fingerprint        string    `json:"fingerprint"`
	DeviceName         string    `json:"device_name"`
	State              string    `json:"state"`
	PublicKey          string    `json:"public_key,omitempty"`
	WrappedUserKey     string    `json:"wrapped_user_key,omitempty"`
	MasterPasswordHash string    `json:"master_password_hash,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	ExpiresAt          time.Time `json:"expires_at"`
}

// AnswerAuthRequestRequest approves or denies a pending request from a
// trusted device. On approval the caller attaches the user key encrypted to
// the requester's public key.
type AnswerAuthRequestRequest struct {
	Approve            bool   `json:"approve"`
	WrappedUserKey     string `json:"wrapped_user_key,omitempty"`
	MasterPasswordHash string `json:"master_password_hash,omitempty"`
}

// TrustDeviceRequest uploads the trusted-device key bundle produced on the
// client.
type TrustDeviceRequest struct {
	Identifier                string `json:"identifier"`
	Name                      string `json:"name"`
	ProtectedUserKey          string `json:"protected_user_key"`
	ProtectedDevicePrivateKey string `json:"protected_device_private_key"`
	ProtectedDevicePublicKey  string `json:"protected_device_public_key"`
}
