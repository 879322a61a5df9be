// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/hmac"
	"encoding/base64"
	"fmt"

	"github.com/nstepanov/lockbox/models"
)

// keyForge is the private implementation of [KeyForge]. It is stateless:
// every method receives the key material it operates on, so a single
// instance is safe for concurrent use.
type keyForge struct{}

// NewKeyForge constructs the production [KeyForge].
func NewKeyForge() KeyForge {
	return &keyForge{}
}

// DeriveMasterKey implements [KeyForge].
func (f *keyForge) DeriveMasterKey(email, password string, kdf models.KdfConfig) ([]byte, error) {
	return deriveMasterKey(email, password, kdf)
}

// HashPassword implements [KeyForge]. It chains the KDF with one final
// purpose-separated PBKDF2 round and returns the base64 hash.
func (f *keyForge) HashPassword(email, password string, kdf models.KdfConfig, purpose models.HashPurpose) (string, error) {
	masterKey, err := deriveMasterKey(email, password, kdf)
	if err != nil {
		return "", fmt.Errorf("derive master key: %w", err)
	}

	return hashPassword(masterKey, password, purpose)
}

// MakeRegisterKeys implements [KeyForge].
//
// Steps:
//  1. masterKey = KDF(password, email)
//  2. hash      = purpose(server) reduction of masterKey
//  3. userKey   = fresh 256-bit key
//  4. wrapped   = AES-GCM(stretch(masterKey), userKey)
//  5. key pair  = RSA-2048; private half wrapped with userKey
func (f *keyForge) MakeRegisterKeys(email, password string, kdf models.KdfConfig) (models.RegisterKeyBundle, error) {
	masterKey, err := deriveMasterKey(email, password, kdf)
	if err != nil {
		return models.RegisterKeyBundle{}, fmt.Errorf("derive master key: %w", err)
	}

	hash, err := hashPassword(masterKey, password, models.PurposeServerAuthorization)
	if err != nil {
		return models.RegisterKeyBundle{}, fmt.Errorf("hash password: %w", err)
	}

	userKey, err := newSymmetricKey()
	if err != nil {
		return models.RegisterKeyBundle{}, fmt.Errorf("generate user key: %w", err)
	}

	stretched, err := stretchMasterKey(masterKey)
	if err != nil {
		return models.RegisterKeyBundle{}, fmt.Errorf("stretch master key: %w", err)
	}

	wrappedUserKey, err := wrapWithKey(userKey, stretched)
	if err != nil {
		return models.RegisterKeyBundle{}, fmt.Errorf("wrap user key: %w", err)
	}

	publicDER, privateDER, err := newKeyPair()
	if err != nil {
		return models.RegisterKeyBundle{}, fmt.Errorf("generate account keys: %w", err)
	}

	wrappedPrivate, err := wrapWithKey(privateDER, userKey)
	if err != nil {
		return models.RegisterKeyBundle{}, fmt.Errorf("wrap private key: %w", err)
	}

	return models.RegisterKeyBundle{
		MasterPasswordHash: hash,
		WrappedUserKey:     wrappedUserKey,
		Keys: models.AccountKeys{
			PublicKey:         base64.StdEncoding.EncodeToString(publicDER),
			WrappedPrivateKey: wrappedPrivate,
		},
	}, nil
}

// MakeRegisterTDEKeys implements [KeyForge]. The user key is generated
// fresh and appears in the result only in wrapped forms.
func (f *keyForge) MakeRegisterTDEKeys(email, orgPublicKey string, rememberDevice bool) (models.TrustedDeviceKeyBundle, error) {
	if normalizeEmail(email) == "" {
		return models.TrustedDeviceKeyBundle{}, ErrEmptyEmail
	}

	userKey, err := newSymmetricKey()
	if err != nil {
		return models.TrustedDeviceKeyBundle{}, fmt.Errorf("generate user key: %w", err)
	}

	bundle, err := f.TrustDevice(userKey, rememberDevice)
	if err != nil {
		return models.TrustedDeviceKeyBundle{}, err
	}

	if orgPublicKey != "" {
		adminReset, err := encryptToPublicKey(orgPublicKey, userKey)
		if err != nil {
			return models.TrustedDeviceKeyBundle{}, fmt.Errorf("wrap admin reset key: %w", err)
		}
		bundle.AdminResetKey = adminReset
	}

	return bundle, nil
}

// TrustDevice implements [KeyForge]. It wraps an already-unlocked user key
// for a freshly generated device identity.
func (f *keyForge) TrustDevice(userKey []byte, rememberDevice bool) (models.TrustedDeviceKeyBundle, error) {
	deviceKey, err := newSymmetricKey()
	if err != nil {
		return models.TrustedDeviceKeyBundle{}, fmt.Errorf("generate device key: %w", err)
	}

	devicePublicDER, devicePrivateDER, err := newKeyPair()
	if err != nil {
		return models.TrustedDeviceKeyBundle{}, fmt.Errorf("generate device keys: %w", err)
	}

	devicePublicB64 := base64.StdEncoding.EncodeToString(devicePublicDER)

	protectedUserKey, err := encryptToPublicKey(devicePublicB64, userKey)
	if err != nil {
		return models.TrustedDeviceKeyBundle{}, fmt.Errorf("protect user key: %w", err)
	}

	protectedDevicePrivate, err := wrapWithKey(devicePrivateDER, deviceKey)
	if err != nil {
		return models.TrustedDeviceKeyBundle{}, fmt.Errorf("protect device private key: %w", err)
	}

	protectedDevicePublic, err := wrapWithKey(devicePublicDER, userKey)
	if err != nil {
		return models.TrustedDeviceKeyBundle{}, fmt.Errorf("protect device public key: %w", err)
	}

	bundle := models.TrustedDeviceKeyBundle{
		ProtectedUserKey:          protectedUserKey,
		ProtectedDevicePrivateKey: protectedDevicePrivate,
		ProtectedDevicePublicKey:  protectedDevicePublic,
	}
	if rememberDevice {
		bundle.DeviceKey = base64.StdEncoding.EncodeToString(deviceKey)
	}

	return bundle, nil
}

// NewAuthRequest implements [KeyForge].
func (f *keyForge) NewAuthRequest(email string) (models.AuthRequestBundle, error) {
	if normalizeEmail(email) == "" {
		return models.AuthRequestBundle{}, ErrEmptyEmail
	}

	publicDER, privateDER, err := newKeyPair()
	if err != nil {
		return models.AuthRequestBundle{}, fmt.Errorf("generate request keys: %w", err)
	}

	publicB64 := base64.StdEncoding.EncodeToString(publicDER)

	fingerprint, err := fingerprintPhrase(email, publicB64)
	if err != nil {
		return models.AuthRequestBundle{}, fmt.Errorf("derive fingerprint: %w", err)
	}

	accessCode, err := newAccessCode()
	if err != nil {
		return models.AuthRequestBundle{}, fmt.Errorf("generate access code: %w", err)
	}

	return models.AuthRequestBundle{
		PrivateKey:  privateDER,
		PublicKey:   publicB64,
		Fingerprint: fingerprint,
		AccessCode:  accessCode,
	}, nil
}

// ApproveAuthRequest implements [KeyForge].
func (f *keyForge) ApproveAuthRequest(publicKey string, userKey []byte) (string, error) {
	return encryptToPublicKey(publicKey, userKey)
}

// DecryptAuthResponse implements [KeyForge].
func (f *keyForge) DecryptAuthResponse(privateKey []byte, wrappedUserKey string) ([]byte, error) {
	return decryptWithPrivateKey(privateKey, wrappedUserKey)
}

// UnwrapUserKey implements [KeyForge].
func (f *keyForge) UnwrapUserKey(wrappedUserKey string, masterKey []byte) ([]byte, error) {
	stretched, err := stretchMasterKey(masterKey)
	if err != nil {
		return nil, fmt.Errorf("stretch master key: %w", err)
	}

	return unwrapWithKey(wrappedUserKey, stretched)
}

// UnlockWithDeviceKey implements [KeyForge]. It reverses TrustDevice: the
// locally held device key opens the device private key, which in turn
// decrypts the server-stored copy of the user key.
func (f *keyForge) UnlockWithDeviceKey(deviceKey []byte, protectedDevicePrivateKey, protectedUserKey string) ([]byte, error) {
	devicePrivate, err := unwrapWithKey(protectedDevicePrivateKey, deviceKey)
	if err != nil {
		return nil, fmt.Errorf("unwrap device private key: %w", err)
	}

	userKey, err := decryptWithPrivateKey(devicePrivate, protectedUserKey)
	if err != nil {
		return nil, fmt.Errorf("decrypt user key: %w", err)
	}

	return userKey, nil
}

// Fingerprint implements [KeyForge].
func (f *keyForge) Fingerprint(email, publicKey string) (string, error) {
	return fingerprintPhrase(email, publicKey)
}

// PasswordStrength implements [KeyForge].
func (f *keyForge) PasswordStrength(password, email string, extraInputs []string) int {
	return passwordStrength(password, email, extraInputs)
}

// SatisfiesPolicy implements [KeyForge].
func (f *keyForge) SatisfiesPolicy(password string, strength int, policy models.MasterPasswordPolicy) bool {
	return satisfiesPolicy(password, strength, policy)
}

// ValidatePassword implements [KeyForge].
func (f *keyForge) ValidatePassword(email, password string, kdf models.KdfConfig, storedHash string) (bool, error) {
	computed, err := f.HashPassword(email, password, kdf, models.PurposeServerAuthorization)
	if err != nil {
		return false, err
	}

	return hmac.Equal([]byte(computed), []byte(storedHash)), nil
}

// ValidateUserKey implements [KeyForge].
func (f *keyForge) ValidateUserKey(userKey []byte, wrappedPrivateKey string) bool {
	_, err := unwrapWithKey(wrappedPrivateKey, userKey)
	return err == nil
}
