package models

// AccountKeys is the asymmetric key pair attached to every account.
// The private half is wrapped with the user key before it ever leaves the
// client, so the server only sees opaque blobs.
type AccountKeys struct {
	// PublicKey is the base64-encoded PKIX DER public key.
	PublicKey string `json:"public_key"`

	// WrappedPrivateKey is the PKCS#8 DER private key encrypted with the
	// user key (AES-256-GCM, nonce-prefixed, base64).
	WrappedPrivateKey string `json:"wrapped_private_key"`
}

// RegisterKeyBundle is the immutable result of preparing a new registration.
// Every field is safe to transmit: the plaintext user key and master key are
// never part of the bundle.
type RegisterKeyBundle struct {
	// MasterPasswordHash is the server-authorization hash of the master
	// password (base64).
	MasterPasswordHash string `json:"master_password_hash"`

	// WrappedUserKey is the user key encrypted with the stretched master
	// key (base64).
	WrappedUserKey string `json:"wrapped_user_key"`

	// Keys is the freshly generated account key pair.
	Keys AccountKeys `json:"keys"`
}

// TrustedDeviceKeyBundle carries the key material produced when a device is
// enrolled for passwordless unlock.
type TrustedDeviceKeyBundle struct {
	// DeviceKey is the symmetric device key (base64). Empty when the user
	// declined to remember the device; in that case the key lives only in
	// process memory.
	DeviceKey string `json:"device_key,omitempty"`

	// ProtectedUserKey is the user key encrypted to the device public key
	// with RSA-OAEP (base64).
	ProtectedUserKey string `json:"protected_user_key"`

	// ProtectedDevicePrivateKey is the device private key encrypted with
	// the device key (base64).
	ProtectedDevicePrivateKey string `json:"protected_device_private_key"`

	// ProtectedDevicePublicKey is the device public key encrypted with the
	// user key (base64).
	ProtectedDevicePublicKey string `json:"protected_device_public_key"`

	// AdminResetKey is the user key encrypted to the organization public
	// key, enabling administrative account recovery. Empty outside
	// organization enrollment.
	AdminResetKey string `json:"admin_reset_key,omitempty"`
}

// AuthRequestBundle is created on the device that initiates a passwordless
// login. Only PublicKey, Fingerprint and AccessCode travel to the server;
// PrivateKey never leaves the requesting device.
type AuthRequestBundle struct {
	// PrivateKey is the ephemeral PKCS#8 DER private key held locally to
	// decrypt the approved user key.
	PrivateKey []byte `json:"-"`

	// PublicKey is the ephemeral public key (PKIX DER, base64) shown to
	// the approving device.
	PublicKey string `json:"public_key"`

	// Fingerprint is the human-checkable phrase derived from the public
	// key and account email. Both devices display it; the user compares.
	Fingerprint string `json:"fingerprint"`

	// AccessCode authenticates status polls for the request.
	AccessCode string `json:"access_code"`
}
