package service

import (
	"github.com/nstepanov/lockbox/internal/adapter"
	"github.com/nstepanov/lockbox/internal/crypto"
	"github.com/nstepanov/lockbox/internal/store"
)

// ClientServices bundles the client-side service layer. Both services share
// one in-memory unlocked state, so a login through either flow unlocks the
// vault for both.
type ClientServices struct {
	ClientAuthService
	ClientDeviceService
}

// NewClientServices wires the client services around a local cache, a server
// adapter, and the key forge.
func NewClientServices(localStore store.LocalStore, serverAdapter adapter.ServerAdapter, forge crypto.KeyForge) *ClientServices {
	state := &vaultState{}

	return &ClientServices{
		ClientAuthService:   NewClientAuthService(localStore, serverAdapter, forge, state),
		ClientDeviceService: NewClientDeviceService(localStore, serverAdapter, forge, state),
	}
}
