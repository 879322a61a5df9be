package crypto

import "errors"

var (
	// ErrCiphertextTooShort -- blob shorter than the GCM nonce.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrUnwrapFailed -- authentication failed during decryption; the
	// usual cause is a key derived from the wrong master password.
	ErrUnwrapFailed = errors.New("decryption failed")

	// ErrNotRSAPublicKey -- the supplied DER is not an RSA public key.
	ErrNotRSAPublicKey = errors.New("not an RSA public key")

	// ErrNotRSAPrivateKey -- the supplied DER is not an RSA private key.
	ErrNotRSAPrivateKey = errors.New("not an RSA private key")

	// ErrEmptyEmail -- operations that salt with the account email refuse
	// to run without one.
	ErrEmptyEmail = errors.New("empty email")
)
