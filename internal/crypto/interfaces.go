package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keyforge_mock.go -package=mock

import "github.com/nstepanov/lockbox/models"

// KeyForge performs every password/key operation of the zero-knowledge
// scheme. It knows nothing about the network, database, or sessions; all
// state (the unlocked user key) is owned by the caller.
//
// Registration:
//
//	masterKey = KDF(password, email)                  (per models.KdfConfig)
//	hash      = HashPassword(..., server purpose)     (sent to the server)
//	userKey   = random 256-bit key                    (never leaves client)
//	wrapped   = AES-GCM(stretch(masterKey), userKey)  (stored on server)
//
// Login with device:
//
//	requester: NewAuthRequest -> show fingerprint, poll server
//	approver:  ApproveAuthRequest(requester pub key) -> encrypted user key
//	requester: DecryptAuthResponse(private key, payload) -> user key
type KeyForge interface {
	// DeriveMasterKey stretches the master password into the 256-bit
	// master key using the account's KDF parameters. The normalized email
	// acts as the salt so any device reproduces the same key.
	DeriveMasterKey(email, password string, kdf models.KdfConfig) ([]byte, error)

	// HashPassword derives the master key and reduces it to a
	// purpose-separated authorization hash (base64). The server-purpose
	// hash is what travels at login; the local-purpose hash never does.
	HashPassword(email, password string, kdf models.KdfConfig, purpose models.HashPurpose) (string, error)

	// MakeRegisterKeys prepares the full registration bundle: password
	// hash, wrapped user key, and the account key pair with the private
	// half wrapped by the user key.
	MakeRegisterKeys(email, password string, kdf models.KdfConfig) (models.RegisterKeyBundle, error)

	// MakeRegisterTDEKeys provisions key material for a trusted-device
	// enrollment without a master password: a fresh user key, a device
	// key pair, and, when orgPublicKey is non-empty, an admin-reset
	// blob wrapped to the organization key. The device key appears in the
	// bundle only when rememberDevice is true.
	MakeRegisterTDEKeys(email, orgPublicKey string, rememberDevice bool) (models.TrustedDeviceKeyBundle, error)

	// TrustDevice re-wraps an unlocked user key for the current device,
	// producing the same bundle shape as MakeRegisterTDEKeys.
	TrustDevice(userKey []byte, rememberDevice bool) (models.TrustedDeviceKeyBundle, error)

	// NewAuthRequest creates the requester half of a passwordless login:
	// an ephemeral key pair, the fingerprint phrase for out-of-band
	// comparison, and the access code used to authenticate polls.
	NewAuthRequest(email string) (models.AuthRequestBundle, error)

	// ApproveAuthRequest encrypts the unlocked user key to the requesting
	// device's public key (base64 PKIX DER) and returns the base64 blob.
	ApproveAuthRequest(publicKey string, userKey []byte) (string, error)

	// DecryptAuthResponse recovers the user key from an approved auth
	// request using the ephemeral private key kept by the requester.
	DecryptAuthResponse(privateKey []byte, wrappedUserKey string) ([]byte, error)

	// UnlockWithDeviceKey recovers the user key on a trusted device: the
	// locally retained device key opens the device private key, which
	// decrypts the protected user key.
	UnlockWithDeviceKey(deviceKey []byte, protectedDevicePrivateKey, protectedUserKey string) ([]byte, error)

	// UnwrapUserKey decrypts the wrapped user key with the stretched
	// master key. Fails on a wrong password (GCM tag mismatch).
	UnwrapUserKey(wrappedUserKey string, masterKey []byte) ([]byte, error)

	// Fingerprint recomputes the fingerprint phrase for a public key, so
	// the approving device can render it independently.
	Fingerprint(email, publicKey string) (string, error)

	// PasswordStrength scores password 0 (guessable) to 4 (strong),
	// penalizing overlap with the email and any extra user inputs.
	PasswordStrength(password, email string, extraInputs []string) int

	// SatisfiesPolicy reports whether password with the given strength
	// score meets every requirement of the policy.
	SatisfiesPolicy(password string, strength int, policy models.MasterPasswordPolicy) bool

	// ValidatePassword recomputes the server-authorization hash and
	// compares it to storedHash in constant time.
	ValidatePassword(email, password string, kdf models.KdfConfig, storedHash string) (bool, error)

	// ValidateUserKey reports whether userKey actually unwraps the
	// account's wrapped private key, i.e. the key belongs to the account.
	ValidateUserKey(userKey []byte, wrappedPrivateKey string) bool
}
