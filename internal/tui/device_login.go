// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nstepanov/lockbox/internal/service"
)

const devicePollInterval = 2 * time.Second

// DeviceLoginModel drives the requester half of login-with-device. Phase one
// collects the email and a device name; phase two shows the fingerprint and
// access code while polling until a trusted device answers.
type DeviceLoginModel struct {
	ctx     context.Context
	devices service.ClientDeviceService

	inputs  []textinput.Model
	focus   int
	spinner spinner.Model

	waiting    bool
	submitting bool
	attempt    service.DeviceLoginAttempt
	status     string
	errMsg     string
}

// NewDeviceLoginModel creates the device-login screen.
func NewDeviceLoginModel(ctx context.Context, devices service.ClientDeviceService) *DeviceLoginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	nameInput := textinput.New()
	nameInput.Placeholder = "this device's name"
	nameInput.CharLimit = 64
	nameInput.Width = 40

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &DeviceLoginModel{
		ctx:     ctx,
		devices: devices,
		inputs:  []textinput.Model{emailInput, nameInput},
		spinner: s,
	}
}

// Init implements [tea.Model].
func (m *DeviceLoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (m *DeviceLoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case deviceLoginStartedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}

		m.waiting = true
		m.attempt = msg.attempt
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, schedulePoll())

	case deviceLoginPollMsg:
		if !m.waiting {
			return m, nil
		}
		return m, m.cmdPoll()

	case deviceLoginStateMsg:
		switch {
		case msg.err == nil:
			return m, func() tea.Msg { return LoginResult{Vault: msg.vault} }
		case errors.Is(msg.err, service.ErrDeviceLoginPending):
			return m, schedulePoll()
		case errors.Is(msg.err, service.ErrDeviceLoginDenied):
			m.waiting = false
			m.errMsg = "The request was denied on the other device"
		case errors.Is(msg.err, service.ErrAuthRequestExpired):
			m.waiting = false
			m.errMsg = "The request expired before it was answered"
		default:
			m.waiting = false
			m.errMsg = humanizeServerUnavailableError(msg.err)
		}
		return m, nil

	case copiedMsg:
		m.status = "Access code copied to clipboard"
		return m, clearStatusAfter()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *DeviceLoginModel) handleKey(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.waiting = false
		m.submitting = false
		m.errMsg = ""
		m.status = ""
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	case "c":
		if m.waiting {
			return m, cmdCopyToClipboard(m.attempt.AccessCode)
		}
	case "tab":
		if !m.waiting {
			m.focusNext()
			return m, nil
		}
	case "shift+tab":
		if !m.waiting {
			m.focusPrev()
			return m, nil
		}
	case "enter":
		if m.waiting || m.submitting {
			return m, nil
		}

		email := strings.TrimSpace(m.inputs[0].Value())
		deviceName := strings.TrimSpace(m.inputs[1].Value())
		if email == "" {
			m.errMsg = "Email is required"
			return m, nil
		}
		if deviceName == "" {
			deviceName = "unnamed device"
		}

		m.errMsg = ""
		m.submitting = true
		return m, m.cmdStart(email, deviceName)
	}

	if m.waiting {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(keyMsg)
	return m, cmd
}

// View implements [tea.Model].
func (m *DeviceLoginModel) View() string {
	if m.waiting {
		return m.viewWaiting()
	}

	var b strings.Builder
	b.WriteString("Email  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Device │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Requesting...]\n")
	} else {
		b.WriteString("\n[Request login]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("LOG IN WITH ANOTHER DEVICE", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *DeviceLoginModel) viewWaiting() string {
	var b strings.Builder

	b.WriteString("Approve this login from a device that is already logged in.\n\n")
	b.WriteString("Fingerprint │ ")
	b.WriteString(accentStyle.Render(m.attempt.Fingerprint))
	b.WriteString("\n")
	b.WriteString("Access code │ ")
	b.WriteString(accentStyle.Render(m.attempt.AccessCode))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s waiting for an answer...", m.spinner.View()))

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("LOG IN WITH ANOTHER DEVICE", strings.TrimRight(b.String(), "\n"), "c: copy access code │ esc: cancel")
}

func (m *DeviceLoginModel) cmdStart(email, deviceName string) tea.Cmd {
	ctx := m.ctx
	devices := m.devices

	return func() tea.Msg {
		attempt, err := devices.StartDeviceLogin(ctx, email, deviceName)
		return deviceLoginStartedMsg{attempt: attempt, err: err}
	}
}

func (m *DeviceLoginModel) cmdPoll() tea.Cmd {
	ctx := m.ctx
	devices := m.devices
	attempt := m.attempt

	return func() tea.Msg {
		vault, err := devices.PollDeviceLogin(ctx, attempt)
		return deviceLoginStateMsg{vault: vault, err: err}
	}
}

func (m *DeviceLoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *DeviceLoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func schedulePoll() tea.Cmd {
	return tea.Tick(devicePollInterval, func(time.Time) tea.Msg {
		return deviceLoginPollMsg{}
	})
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
