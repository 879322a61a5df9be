package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nstepanov/lockbox/models"
)

// UnlockedVault is what a successful login produces on the client: the
// account identity plus the plaintext user key held in memory only.
type UnlockedVault struct {
	UserID  int64
	Email   string
	UserKey []byte
	Keys    models.AccountKeys
}

// DeviceLoginAttempt is the requester-side state of a passwordless login.
// PrivateKey never leaves the process; AccessCode and Fingerprint are shown
// to the user.
type DeviceLoginAttempt struct {
	ID          uuid.UUID
	Email       string
	Fingerprint string
	AccessCode  string

	privateKey []byte
}

// ClientAuthService drives registration and master-password login. It owns
// the in-memory unlocked state consulted by the other client services.
type ClientAuthService interface {
	// Register validates the password against the org policy, derives the
	// registration key bundle locally, and creates the account. On success
	// the vault is left unlocked and the session persisted.
	Register(ctx context.Context, email, name, password string) (UnlockedVault, error)

	// Login fetches the account KDF parameters, derives the authorization
	// hash, authenticates, and unwraps the user key locally.
	Login(ctx context.Context, email, password string) (UnlockedVault, error)

	// CheckPassword scores the password and reports whether it satisfies
	// the org policy. Used before Register and on password change.
	CheckPassword(ctx context.Context, email, password string) (int, error)

	// RestoreSession resumes the persisted session, if any, re-arming the
	// adapter's bearer token. The vault stays locked until a key arrives.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Logout forgets the persisted session and wipes the unlocked state.
	Logout(ctx context.Context) error

	// Vault returns the current unlocked state, or ErrVaultLocked.
	Vault() (UnlockedVault, error)
}

// ClientDeviceService drives the trusted-device flows: enrolling this
// installation, approving login requests from new devices, and logging in
// via an already-trusted device.
type ClientDeviceService interface {
	// TrustDevice re-wraps the unlocked user key for this installation and
	// uploads the bundle. When rememberDevice is set the device key is kept
	// in the local cache for offline unlock.
	TrustDevice(ctx context.Context, name string, rememberDevice bool) (models.Device, error)

	// UnlockWithDeviceKey unlocks the vault offline using the locally
	// retained device key from a previous TrustDevice.
	UnlockWithDeviceKey(ctx context.Context) (UnlockedVault, error)

	// StartDeviceLogin opens a passwordless login request for email and
	// returns the attempt whose fingerprint and access code the user
	// compares out of band.
	StartDeviceLogin(ctx context.Context, email, deviceName string) (DeviceLoginAttempt, error)

	// PollDeviceLogin checks the attempt once. A pending request returns
	// ErrDeviceLoginPending; approval completes the login and unlocks the
	// vault.
	PollDeviceLogin(ctx context.Context, attempt DeviceLoginAttempt) (UnlockedVault, error)

	// AwaitDeviceLogin polls at the given interval until the request is
	// answered, expires, or ctx is done.
	AwaitDeviceLogin(ctx context.Context, attempt DeviceLoginAttempt, interval time.Duration) (UnlockedVault, error)

	// ListPendingRequests returns the account's open login requests so this
	// (trusted, logged-in) device can render an approval screen.
	ListPendingRequests(ctx context.Context) ([]models.AuthRequestView, error)

	// ApproveRequest verifies the request fingerprint locally and, when it
	// matches, encrypts the unlocked user key to the requester.
	ApproveRequest(ctx context.Context, view models.AuthRequestView) error

	// DenyRequest rejects a pending login request.
	DenyRequest(ctx context.Context, id uuid.UUID) error
}
