// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nstepanov/lockbox/internal/adapter"
	"github.com/nstepanov/lockbox/internal/crypto"
	"github.com/nstepanov/lockbox/internal/store"
	"github.com/nstepanov/lockbox/models"
)

// vaultState is the shared in-memory unlocked state of the client. The user
// key and the server authorization hash live here and nowhere else; both are
// wiped on logout.
type vaultState struct {
	mu sync.RWMutex

	unlocked   bool
	vault      UnlockedVault
	serverHash string
}

func (s *vaultState) set(vault UnlockedVault, serverHash string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unlocked = true
	s.vault = vault
	s.serverHash = serverHash
}

func (s *vaultState) get() (UnlockedVault, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vault, s.unlocked
}

func (s *vaultState) serverAuthHash() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.serverHash
}

func (s *vaultState) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.vault.UserKey {
		s.vault.UserKey[i] = 0
	}
	s.unlocked = false
	s.vault = UnlockedVault{}
	s.serverHash = ""
}

type clientAuthService struct {
	localStore store.LocalStore
	adapter    adapter.ServerAdapter
	forge      crypto.KeyForge
	state      *vaultState
}

// NewClientAuthService constructs the master-password login service sharing
// the given unlocked state.
func NewClientAuthService(localStore store.LocalStore, serverAdapter adapter.ServerAdapter, forge crypto.KeyForge, state *vaultState) ClientAuthService {
	return &clientAuthService{
		localStore: localStore,
		adapter:    serverAdapter,
		forge:      forge,
		state:      state,
	}
}

// Register creates the account from locally derived key material and leaves
// the vault unlocked.
func (a *clientAuthService) Register(ctx context.Context, email, name, password string) (UnlockedVault, error) {
	if _, err := a.CheckPassword(ctx, email, password); err != nil {
		return UnlockedVault{}, err
	}

	kdf := models.DefaultKdfConfig()

	bundle, err := a.forge.MakeRegisterKeys(email, password, kdf)
	if err != nil {
		return UnlockedVault{}, fmt.Errorf("make register keys: %w", err)
	}

	token, err := a.adapter.Register(ctx, models.RegisterRequest{
		Email:              email,
		Name:               name,
		Kdf:                kdf,
		MasterPasswordHash: bundle.MasterPasswordHash,
		WrappedUserKey:     bundle.WrappedUserKey,
		Keys:               bundle.Keys,
	})
	if err != nil {
		return UnlockedVault{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
	}

	return a.unlock(ctx, email, password, kdf, bundle.MasterPasswordHash, bundle.WrappedUserKey, bundle.Keys, token)
}

// Login authenticates with the server and unwraps the user key locally. The
// master password never leaves this function.
func (a *clientAuthService) Login(ctx context.Context, email, password string) (UnlockedVault, error) {
	kdf, err := a.adapter.Prelogin(ctx, email)
	if err != nil {
		return UnlockedVault{}, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	serverHash, err := a.forge.HashPassword(email, password, kdf, models.PurposeServerAuthorization)
	if err != nil {
		return UnlockedVault{}, fmt.Errorf("hash password: %w", err)
	}

	lr, token, err := a.adapter.Login(ctx, models.LoginRequest{
		Email:              email,
		MasterPasswordHash: serverHash,
	})
	if err != nil {
		return UnlockedVault{}, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	return a.unlock(ctx, email, password, kdf, serverHash, lr.WrappedUserKey, lr.Keys, token)
}

// CheckPassword scores the password and enforces the org policy.
func (a *clientAuthService) CheckPassword(ctx context.Context, email, password string) (int, error) {
	policy, err := a.adapter.GetPolicy(ctx)
	if err != nil {
		// An unreachable policy endpoint must not block registration; the
		// server re-checks nothing, but the default local floor applies.
		policy = DefaultMasterPasswordPolicy()
	}

	strength := a.forge.PasswordStrength(password, email, nil)
	if !a.forge.SatisfiesPolicy(password, strength, policy) {
		return strength, ErrPasswordRejectedByPolicy
	}

	return strength, nil
}

// RestoreSession re-arms the adapter with the persisted bearer token.
func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.localStore.GetSession(ctx)
	if err != nil {
		return models.Session{}, err
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

// Logout wipes the unlocked state and the persisted session.
func (a *clientAuthService) Logout(ctx context.Context) error {
	a.state.clear()
	a.adapter.SetToken("")

	if err := a.localStore.DeleteSession(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// Vault returns the unlocked state, or ErrVaultLocked.
func (a *clientAuthService) Vault() (UnlockedVault, error) {
	vault, ok := a.state.get()
	if !ok {
		return UnlockedVault{}, ErrVaultLocked
	}
	return vault, nil
}

// unlock derives the master key once more, unwraps the user key, verifies it
// against the account key pair, and persists the session.
func (a *clientAuthService) unlock(ctx context.Context, email, password string, kdf models.KdfConfig, serverHash, wrappedUserKey string, keys models.AccountKeys, token models.Token) (UnlockedVault, error) {
	masterKey, err := a.forge.DeriveMasterKey(email, password, kdf)
	if err != nil {
		return UnlockedVault{}, fmt.Errorf("derive master key: %w", err)
	}

	userKey, err := a.forge.UnwrapUserKey(wrappedUserKey, masterKey)
	if err != nil {
		return UnlockedVault{}, fmt.Errorf("unwrap user key: %w", err)
	}

	if keys.WrappedPrivateKey != "" && !a.forge.ValidateUserKey(userKey, keys.WrappedPrivateKey) {
		return UnlockedVault{}, fmt.Errorf("%w: user key does not open account keys", ErrLoginOnServer)
	}

	vault := UnlockedVault{
		UserID:  token.UserID,
		Email:   email,
		UserKey: userKey,
		Keys:    keys,
	}
	a.state.set(vault, serverHash)

	if err = a.localStore.SaveSession(ctx, models.Session{
		UserID:    token.UserID,
		Email:     email,
		Token:     token.SignedString,
		CreatedAt: time.Now(),
	}); err != nil {
		return UnlockedVault{}, fmt.Errorf("save session: %w", err)
	}

	return vault, nil
}
