// Package tui implements the interactive terminal client: registration,
// master-password login, passwordless login with another device, offline
// unlock, and the approval screen trusted devices use to answer login
// requests.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nstepanov/lockbox/internal/logger"
	"github.com/nstepanov/lockbox/internal/service"
)

// ErrUserQuit reports that the user left the program before finishing a flow.
var ErrUserQuit = errors.New("user quit")

// TUI owns the Bubble Tea programs the client runs.
type TUI struct {
	services *service.ClientServices
}

// New creates the terminal UI over the client services.
func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// LoginFlow runs the authentication program until the vault is unlocked or
// the user quits.
func (t *TUI) LoginFlow(ctx context.Context) (service.UnlockedVault, error) {
	pages := map[string]tea.Model{
		"menu":        NewMenuModel(),
		"login":       NewLoginModel(ctx, t.services.ClientAuthService),
		"register":    NewRegisterModel(ctx, t.services.ClientAuthService),
		"devicelogin": NewDeviceLoginModel(ctx, t.services.ClientDeviceService),
		"unlock":      NewUnlockModel(ctx, t.services.ClientDeviceService),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return service.UnlockedVault{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return service.UnlockedVault{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return service.UnlockedVault{}, ErrUserQuit
	}

	return result.resultVault, nil
}

// MainLoop runs the post-login program: pending login requests, device
// enrollment, logout.
func (t *TUI) MainLoop(ctx context.Context, vault service.UnlockedVault) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, vault)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
