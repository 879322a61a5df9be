// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nstepanov/lockbox/internal/service"
)

// UnlockModel unlocks the vault offline from the device key cached by a
// previous trusted-device enrollment. The attempt starts as soon as the page
// opens; there is nothing to type.
type UnlockModel struct {
	ctx     context.Context
	devices service.ClientDeviceService

	spinner   spinner.Model
	unlocking bool
	errMsg    string
}

// NewUnlockModel creates the offline-unlock screen.
func NewUnlockModel(ctx context.Context, devices service.ClientDeviceService) *UnlockModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &UnlockModel{
		ctx:     ctx,
		devices: devices,
		spinner: s,
	}
}

// Init implements [tea.Model]. Kicks off the unlock attempt immediately.
func (m *UnlockModel) Init() tea.Cmd {
	m.unlocking = true
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdUnlock())
}

// Update implements [tea.Model].
func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case unlockResultMsg:
		m.unlocking = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrDeviceNotRemembered) {
				m.errMsg = "This installation was not enrolled with \"remember this device\""
			} else {
				m.errMsg = humanizeServerUnavailableError(msg.err)
			}
			return m, nil
		}
		return m, func() tea.Msg { return LoginResult{Vault: msg.vault} }

	case spinner.TickMsg:
		if !m.unlocking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "enter":
			if !m.unlocking {
				return m, m.Init()
			}
		}
	}

	return m, nil
}

// View implements [tea.Model].
func (m *UnlockModel) View() string {
	var b strings.Builder

	if m.unlocking {
		b.WriteString(m.spinner.View())
		b.WriteString(" unlocking with the cached device key...")
	} else if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("UNLOCK OFFLINE", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: retry")
}

func (m *UnlockModel) cmdUnlock() tea.Cmd {
	ctx := m.ctx
	devices := m.devices

	return func() tea.Msg {
		vault, err := devices.UnlockWithDeviceKey(ctx)
		return unlockResultMsg{vault: vault, err: err}
	}
}
