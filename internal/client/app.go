package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/nstepanov/lockbox/internal/logger"
	"github.com/nstepanov/lockbox/internal/service"
	"github.com/nstepanov/lockbox/internal/store"
	"github.com/nstepanov/lockbox/internal/tui"
)

// App ties the client services and the terminal UI into one run loop.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

// NewApp assembles the client application from its wired parts.
func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	return &App{
		services: services,
		tui:      ui,
		logger:   logger,
	}, nil
}

// Run restores the previous session when one exists, unlocks or logs in via
// the UI, and enters the main loop. A logout restarts the cycle.
func (a *App) Run() error {
	ctx := context.Background()

	vault, err := a.unlock(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	logout, err := a.tui.MainLoop(ctx, vault)
	if err != nil {
		return err
	}
	if logout {
		return a.Run()
	}

	return nil
}

// unlock produces an unlocked vault: first by resuming the stored session and
// trying the cached device key, then by falling back to the interactive login
// flow.
func (a *App) unlock(ctx context.Context) (service.UnlockedVault, error) {
	_, err := a.services.RestoreSession(ctx)
	if err == nil {
		vault, uerr := a.services.UnlockWithDeviceKey(ctx)
		if uerr == nil {
			a.logger.Debug().Str("email", vault.Email).Msg("vault unlocked offline")
			return vault, nil
		}
		if !errors.Is(uerr, service.ErrDeviceNotRemembered) {
			a.logger.Debug().Err(uerr).Msg("offline unlock failed, falling back to login")
		}
	} else if !errors.Is(err, store.ErrLocalSessionNotFound) {
		return service.UnlockedVault{}, fmt.Errorf("restore session: %w", err)
	}

	return a.tui.LoginFlow(ctx)
}
