package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthRequestState tracks the lifecycle of a passwordless login request.
type AuthRequestState int

const (
	// AuthRequestPending -- created, waiting for a trusted device to answer.
	AuthRequestPending AuthRequestState = iota

	// AuthRequestApproved -- a trusted device attached the encrypted user key.
	AuthRequestApproved

	// AuthRequestDenied -- explicitly rejected by the user.
	AuthRequestDenied

	// AuthRequestExpired -- TTL elapsed before an answer arrived.
	AuthRequestExpired

	// AuthRequestConsumed -- the approved payload was collected once; any
	// further poll is refused.
	AuthRequestConsumed
)

// String returns the lowercase state name used in logs and API payloads.
func (s AuthRequestState) String() string {
	switch s {
	case AuthRequestPending:
		return "pending"
	case AuthRequestApproved:
		return "approved"
	case AuthRequestDenied:
		return "denied"
	case AuthRequestExpired:
		return "expired"
	case AuthRequestConsumed:
		return "consumed"
	default:
		return "unknown"
	}
}

// AuthRequest is the server-side record of a login-with-device attempt.
// The server holds only the requesting device's public key and an HMAC of
// the access code; the answer payload is encrypted end-to-end.
type AuthRequest struct {
	// ID is the public identifier of the request.
	ID uuid.UUID `json:"id"`

	// UserID is the account the request targets.
	UserID int64 `json:"-"`

	// Email is the account email as supplied by the requesting device.
	Email string `json:"email"`

	// PublicKey is the ephemeral public key of the requesting device
	// (PKIX DER, base64).
	PublicKey string `json:"public_key"`

	// AccessCodeHash is the HMAC-SHA256 of the access code. Polls must
	// present the matching code.
	AccessCodeHash string `json:"-"`

	// Fingerprint is the phrase both devices display for comparison.
	Fingerprint string `json:"fingerprint"`

	// DeviceName is the self-reported name of the requesting device.
	DeviceName string `json:"device_name"`

	// State is the current lifecycle state.
	State AuthRequestState `json:"state"`

	// WrappedUserKey is the user key encrypted to PublicKey. Set on
	// approval, cleared once consumed.
	WrappedUserKey string `json:"wrapped_user_key,omitempty"`

	// MasterPasswordHash is the approving device's copy of the server
	// authorization hash, forwarded so the new device can authenticate.
	MasterPasswordHash string `json:"master_password_hash,omitempty"`

	// CreatedAt is when the request was registered.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is CreatedAt plus the configured TTL.
	ExpiresAt time.Time `json:"expires_at"`

	// RespondedAt is when the request left the pending state, if it has.
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

// Answered reports whether the request has left the pending state.
func (r AuthRequest) Answered() bool {
	return r.State != AuthRequestPending
}

// ExpiredBy reports whether the request should be considered expired at now.
func (r AuthRequest) ExpiredBy(now time.Time) bool {
	return r.State == AuthRequestPending && now.After(r.ExpiresAt)
}

// TableName returns the database table backing the AuthRequest model.
func (r AuthRequest) TableName() string {
	return "auth_requests"
}
