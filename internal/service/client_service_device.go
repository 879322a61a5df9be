// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nstepanov/lockbox/internal/adapter"
	"github.com/nstepanov/lockbox/internal/crypto"
	"github.com/nstepanov/lockbox/internal/store"
	"github.com/nstepanov/lockbox/internal/utils"
	"github.com/nstepanov/lockbox/models"
)

type clientDeviceService struct {
	localStore store.LocalStore
	adapter    adapter.ServerAdapter
	forge      crypto.KeyForge
	state      *vaultState
}

// NewClientDeviceService constructs the trusted-device service sharing the
// given unlocked state with the auth service.
func NewClientDeviceService(localStore store.LocalStore, serverAdapter adapter.ServerAdapter, forge crypto.KeyForge, state *vaultState) ClientDeviceService {
	return &clientDeviceService{
		localStore: localStore,
		adapter:    serverAdapter,
		forge:      forge,
		state:      state,
	}
}

// TrustDevice re-wraps the unlocked user key for this installation, uploads
// the protected bundle, and caches the local half. Re-enrolling reuses the
// stored installation identifier so the server record is replaced, not
// duplicated.
func (d *clientDeviceService) TrustDevice(ctx context.Context, name string, rememberDevice bool) (models.Device, error) {
	vault, ok := d.state.get()
	if !ok {
		return models.Device{}, ErrVaultLocked
	}

	bundle, err := d.forge.TrustDevice(vault.UserKey, rememberDevice)
	if err != nil {
		return models.Device{}, fmt.Errorf("trust device keys: %w", err)
	}

	identifier := ""
	if existing, lerr := d.localStore.GetLocalDevice(ctx); lerr == nil {
		identifier = existing.Identifier
	}
	if identifier == "" {
		identifier = utils.NewID().String()
	}

	device, err := d.adapter.TrustDevice(ctx, models.TrustDeviceRequest{
		Identifier:                identifier,
		Name:                      name,
		ProtectedUserKey:          bundle.ProtectedUserKey,
		ProtectedDevicePrivateKey: bundle.ProtectedDevicePrivateKey,
		ProtectedDevicePublicKey:  bundle.ProtectedDevicePublicKey,
	})
	if err != nil {
		return models.Device{}, fmt.Errorf("upload device trust: %w", err)
	}

	if err = d.localStore.SaveLocalDevice(ctx, models.LocalDevice{
		Identifier:                identifier,
		Name:                      name,
		DeviceKey:                 bundle.DeviceKey,
		ProtectedDevicePrivateKey: bundle.ProtectedDevicePrivateKey,
		ProtectedUserKey:          bundle.ProtectedUserKey,
	}); err != nil {
		return models.Device{}, fmt.Errorf("save local device: %w", err)
	}

	return device, nil
}

// UnlockWithDeviceKey unlocks the vault offline from the cached device key.
// The account keys stay empty until the next online login.
func (d *clientDeviceService) UnlockWithDeviceKey(ctx context.Context) (UnlockedVault, error) {
	local, err := d.localStore.GetLocalDevice(ctx)
	if err != nil {
		if errors.Is(err, store.ErrLocalDeviceNotFound) {
			return UnlockedVault{}, ErrDeviceNotRemembered
		}
		return UnlockedVault{}, fmt.Errorf("load local device: %w", err)
	}
	if local.DeviceKey == "" {
		return UnlockedVault{}, ErrDeviceNotRemembered
	}

	deviceKey, err := base64.StdEncoding.DecodeString(local.DeviceKey)
	if err != nil {
		return UnlockedVault{}, fmt.Errorf("decode device key: %w", err)
	}

	userKey, err := d.forge.UnlockWithDeviceKey(deviceKey, local.ProtectedDevicePrivateKey, local.ProtectedUserKey)
	if err != nil {
		return UnlockedVault{}, fmt.Errorf("unlock with device key: %w", err)
	}

	session, err := d.localStore.GetSession(ctx)
	if err != nil {
		return UnlockedVault{}, fmt.Errorf("load session: %w", err)
	}
	d.adapter.SetToken(session.Token)

	vault := UnlockedVault{
		UserID:  session.UserID,
		Email:   session.Email,
		UserKey: userKey,
	}
	d.state.set(vault, "")

	return vault, nil
}

// StartDeviceLogin opens a passwordless login request. The ephemeral private
// key stays inside the returned attempt.
func (d *clientDeviceService) StartDeviceLogin(ctx context.Context, email, deviceName string) (DeviceLoginAttempt, error) {
	bundle, err := d.forge.NewAuthRequest(email)
	if err != nil {
		return DeviceLoginAttempt{}, fmt.Errorf("new auth request: %w", err)
	}

	view, err := d.adapter.CreateAuthRequest(ctx, models.CreateAuthRequestRequest{
		Email:       email,
		PublicKey:   bundle.PublicKey,
		Fingerprint: bundle.Fingerprint,
		DeviceName:  deviceName,
		AccessCode:  bundle.AccessCode,
	})
	if err != nil {
		return DeviceLoginAttempt{}, fmt.Errorf("create auth request: %w", err)
	}

	return DeviceLoginAttempt{
		ID:          view.ID,
		Email:       email,
		Fingerprint: bundle.Fingerprint,
		AccessCode:  bundle.AccessCode,
		privateKey:  bundle.PrivateKey,
	}, nil
}

// PollDeviceLogin checks the attempt once and completes the login when it has
// been approved.
func (d *clientDeviceService) PollDeviceLogin(ctx context.Context, attempt DeviceLoginAttempt) (UnlockedVault, error) {
	view, err := d.adapter.PollAuthRequest(ctx, attempt.ID, attempt.AccessCode)
	if err != nil {
		if errors.Is(err, adapter.ErrGone) {
			return UnlockedVault{}, ErrAuthRequestExpired
		}
		return UnlockedVault{}, fmt.Errorf("poll auth request: %w", err)
	}

	switch view.State {
	case models.AuthRequestPending.String():
		return UnlockedVault{}, ErrDeviceLoginPending
	case models.AuthRequestDenied.String():
		return UnlockedVault{}, ErrDeviceLoginDenied
	case models.AuthRequestExpired.String():
		return UnlockedVault{}, ErrAuthRequestExpired
	case models.AuthRequestApproved.String():
		return d.completeDeviceLogin(ctx, attempt, view)
	default:
		return UnlockedVault{}, fmt.Errorf("unexpected auth request state %q", view.State)
	}
}

// AwaitDeviceLogin polls at the given interval until the request is answered,
// expires, or ctx is done.
func (d *clientDeviceService) AwaitDeviceLogin(ctx context.Context, attempt DeviceLoginAttempt, interval time.Duration) (UnlockedVault, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return UnlockedVault{}, ctx.Err()
		case <-ticker.C:
			vault, err := d.PollDeviceLogin(ctx, attempt)
			if errors.Is(err, ErrDeviceLoginPending) {
				continue
			}
			return vault, err
		}
	}
}

// ListPendingRequests returns the account's open login requests.
func (d *clientDeviceService) ListPendingRequests(ctx context.Context) ([]models.AuthRequestView, error) {
	return d.adapter.ListPendingAuthRequests(ctx)
}

// ApproveRequest recomputes the request fingerprint from its public key and,
// when it matches the advertised one, encrypts the unlocked user key to the
// requester. The server-authorization hash is forwarded so the new device can
// obtain its own token.
func (d *clientDeviceService) ApproveRequest(ctx context.Context, view models.AuthRequestView) error {
	vault, ok := d.state.get()
	if !ok {
		return ErrVaultLocked
	}

	fingerprint, err := d.forge.Fingerprint(view.Email, view.PublicKey)
	if err != nil {
		return fmt.Errorf("recompute fingerprint: %w", err)
	}
	if fingerprint != view.Fingerprint {
		return ErrFingerprintMismatch
	}

	wrappedUserKey, err := d.forge.ApproveAuthRequest(view.PublicKey, vault.UserKey)
	if err != nil {
		return fmt.Errorf("encrypt user key to requester: %w", err)
	}

	if _, err = d.adapter.AnswerAuthRequest(ctx, view.ID, models.AnswerAuthRequestRequest{
		Approve:            true,
		WrappedUserKey:     wrappedUserKey,
		MasterPasswordHash: d.state.serverAuthHash(),
	}); err != nil {
		return fmt.Errorf("answer auth request: %w", err)
	}

	return nil
}

// DenyRequest rejects a pending login request.
func (d *clientDeviceService) DenyRequest(ctx context.Context, id uuid.UUID) error {
	if _, err := d.adapter.AnswerAuthRequest(ctx, id, models.AnswerAuthRequestRequest{Approve: false}); err != nil {
		return fmt.Errorf("answer auth request: %w", err)
	}

	return nil
}

// completeDeviceLogin finishes an approved attempt: decrypt the forwarded
// user key, authenticate with the forwarded hash, and unlock.
func (d *clientDeviceService) completeDeviceLogin(ctx context.Context, attempt DeviceLoginAttempt, view models.AuthRequestView) (UnlockedVault, error) {
	userKey, err := d.forge.DecryptAuthResponse(attempt.privateKey, view.WrappedUserKey)
	if err != nil {
		return UnlockedVault{}, fmt.Errorf("decrypt auth response: %w", err)
	}

	lr, token, err := d.adapter.Login(ctx, models.LoginRequest{
		Email:              attempt.Email,
		MasterPasswordHash: view.MasterPasswordHash,
	})
	if err != nil {
		return UnlockedVault{}, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	if lr.Keys.WrappedPrivateKey != "" && !d.forge.ValidateUserKey(userKey, lr.Keys.WrappedPrivateKey) {
		return UnlockedVault{}, fmt.Errorf("%w: forwarded user key does not open account keys", ErrLoginOnServer)
	}

	vault := UnlockedVault{
		UserID:  token.UserID,
		Email:   attempt.Email,
		UserKey: userKey,
		Keys:    lr.Keys,
	}
	d.state.set(vault, view.MasterPasswordHash)

	if err = d.localStore.SaveSession(ctx, models.Session{
		UserID:    token.UserID,
		Email:     attempt.Email,
		Token:     token.SignedString,
		CreatedAt: time.Now(),
	}); err != nil {
		return UnlockedVault{}, fmt.Errorf("save session: %w", err)
	}

	return vault, nil
}
