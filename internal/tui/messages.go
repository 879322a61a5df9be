package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nstepanov/lockbox/internal/service"
	"github.com/nstepanov/lockbox/models"
)

// NavigateTo switches the active page of the login flow. A non-nil Payload is
// redelivered to the target page after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult ends the login flow: a nil Err means the vault is unlocked.
type LoginResult struct {
	Vault service.UnlockedVault
	Err   error
}

type deviceLoginStartedMsg struct {
	attempt service.DeviceLoginAttempt
	err     error
}

type deviceLoginPollMsg struct{}

type deviceLoginStateMsg struct {
	vault service.UnlockedVault
	err   error
}

type unlockResultMsg struct {
	vault service.UnlockedVault
	err   error
}

type requestsLoadedMsg struct {
	requests []models.AuthRequestView
	err      error
}

type requestAnsweredMsg struct {
	approved bool
	err      error
}

type deviceTrustedMsg struct {
	device models.Device
	err    error
}

type loggedOutMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}

type refreshTickMsg struct{}
