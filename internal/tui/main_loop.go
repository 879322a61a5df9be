// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nstepanov/lockbox/internal/service"
	"github.com/nstepanov/lockbox/models"
)

const requestRefreshInterval = 5 * time.Second

type mainLoopMode int

const (
	modeList mainLoopMode = iota
	modeConfirm
	modeTrust
)

// mainLoopModel is the post-login screen of a trusted, unlocked device. It
// lists the account's pending login requests for approval, lets the user
// enroll this installation as a trusted device, and handles logout.
type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	vault    service.UnlockedVault

	mode     mainLoopMode
	requests []models.AuthRequestView
	idx      int

	spinner   spinner.Model
	loading   bool
	answering bool

	trustName textinput.Model
	remember  bool
	trusting  bool

	status string
	errMsg string
	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, vault service.UnlockedVault) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	name := textinput.New()
	name.Placeholder = "this device's name"
	name.CharLimit = 64
	name.Width = 40

	return mainLoopModel{
		ctx:       ctx,
		services:  services,
		vault:     vault,
		spinner:   s,
		loading:   true,
		trustName: name,
		remember:  true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadRequests(), scheduleRefresh())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case requestsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}

		m.errMsg = ""
		m.requests = msg.requests
		if m.idx >= len(m.requests) {
			m.idx = 0
		}
		return m, nil

	case refreshTickMsg:
		if m.mode == modeList && !m.answering {
			return m, tea.Batch(m.cmdLoadRequests(), scheduleRefresh())
		}
		return m, scheduleRefresh()

	case requestAnsweredMsg:
		m.answering = false
		m.mode = modeList
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}

		m.errMsg = ""
		if msg.approved {
			m.status = "Login request approved"
		} else {
			m.status = "Login request denied"
		}
		return m, tea.Batch(m.cmdLoadRequests(), clearStatusAfter())

	case deviceTrustedMsg:
		m.trusting = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}

		m.mode = modeList
		m.errMsg = ""
		m.status = fmt.Sprintf("Device %q is now trusted", msg.device.Name)
		return m, clearStatusAfter()

	case loggedOutMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.logout = true
		return m, tea.Quit

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == modeTrust {
		var cmd tea.Cmd
		m.trustName, cmd = m.trustName.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeConfirm:
		return m.handleConfirmKey(msg)
	case modeTrust:
		return m.handleTrustKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m mainLoopModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.requests)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, m.cmdLoadRequests()
	case key.Matches(msg, keys.enter):
		if len(m.requests) > 0 {
			m.mode = modeConfirm
			m.errMsg = ""
		}
	case key.Matches(msg, keys.trust):
		m.mode = modeTrust
		m.errMsg = ""
		m.trustName.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m mainLoopModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view, ok := m.current()
	if !ok {
		m.mode = modeList
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
	case key.Matches(msg, keys.yes):
		if !m.answering {
			m.answering = true
			return m, m.cmdApprove(view)
		}
	case key.Matches(msg, keys.no):
		if !m.answering {
			m.answering = true
			return m, m.cmdDeny(view)
		}
	}

	return m, nil
}

func (m mainLoopModel) handleTrustKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		m.trustName.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.trusting {
			return m, nil
		}

		name := strings.TrimSpace(m.trustName.Value())
		if name == "" {
			m.errMsg = "Device name is required"
			return m, nil
		}

		m.errMsg = ""
		m.trusting = true
		return m, m.cmdTrust(name, m.remember)
	case key.Matches(msg, keys.space):
		m.remember = !m.remember
		return m, nil
	}

	var cmd tea.Cmd
	m.trustName, cmd = m.trustName.Update(msg)
	return m, cmd
}

func (m mainLoopModel) View() string {
	switch m.mode {
	case modeConfirm:
		return m.viewConfirm()
	case modeTrust:
		return m.viewTrust()
	default:
		return m.viewList()
	}
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	b.WriteString("Signed in as ")
	b.WriteString(accentStyle.Render(m.vault.Email))
	b.WriteString("\n\nPending login requests:\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" loading...\n")
	case len(m.requests) == 0:
		b.WriteString("  none\n")
	default:
		for i, request := range m.requests {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s  %s  expires %s\n",
				cursor,
				fitText(request.DeviceName, 24),
				request.Fingerprint,
				request.ExpiresAt.Local().Format("15:04:05"),
			))
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("LOCKBOX", strings.TrimRight(b.String(), "\n"),
		"enter: review │ r: refresh │ t: trust this device │ l: logout │ q: quit")
}

func (m mainLoopModel) viewConfirm() string {
	view, ok := m.current()
	if !ok {
		return m.viewList()
	}

	var b strings.Builder
	b.WriteString("A device wants to log in to your account.\n\n")
	b.WriteString("Device      │ ")
	b.WriteString(view.DeviceName)
	b.WriteString("\n")
	b.WriteString("Fingerprint │ ")
	b.WriteString(accentStyle.Render(view.Fingerprint))
	b.WriteString("\n")
	b.WriteString("Requested   │ ")
	b.WriteString(view.CreatedAt.Local().Format("15:04:05"))
	b.WriteString("\n\n")
	b.WriteString("Approve only if the fingerprint matches the one shown\non the requesting device.")

	if m.answering {
		b.WriteString("\n\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" answering...")
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("LOGIN REQUEST", strings.TrimRight(b.String(), "\n"), "y: approve │ n: deny │ esc: back")
}

func (m mainLoopModel) viewTrust() string {
	remember := "[ ]"
	if m.remember {
		remember = "[x]"
	}

	var b strings.Builder
	b.WriteString("Enroll this installation as a trusted device so it can\nunlock the vault without the master password.\n\n")
	b.WriteString("Name     │ [")
	b.WriteString(m.trustName.View())
	b.WriteString("]\n")
	b.WriteString("Remember │ ")
	b.WriteString(remember)
	b.WriteString(" keep the device key on this machine\n")

	if m.trusting {
		b.WriteString("\n[Enrolling...]\n")
	} else {
		b.WriteString("\n[Enroll]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("TRUST THIS DEVICE", strings.TrimRight(b.String(), "\n"), "space: toggle remember │ enter: enroll │ esc: back")
}

func (m mainLoopModel) current() (models.AuthRequestView, bool) {
	if len(m.requests) == 0 || m.idx < 0 || m.idx >= len(m.requests) {
		return models.AuthRequestView{}, false
	}
	return m.requests[m.idx], true
}

func (m mainLoopModel) cmdLoadRequests() tea.Cmd {
	ctx := m.ctx
	devices := m.services.ClientDeviceService

	return func() tea.Msg {
		requests, err := devices.ListPendingRequests(ctx)
		return requestsLoadedMsg{requests: requests, err: err}
	}
}

func (m mainLoopModel) cmdApprove(view models.AuthRequestView) tea.Cmd {
	ctx := m.ctx
	devices := m.services.ClientDeviceService

	return func() tea.Msg {
		err := devices.ApproveRequest(ctx, view)
		return requestAnsweredMsg{approved: true, err: err}
	}
}

func (m mainLoopModel) cmdDeny(view models.AuthRequestView) tea.Cmd {
	ctx := m.ctx
	devices := m.services.ClientDeviceService

	return func() tea.Msg {
		err := devices.DenyRequest(ctx, view.ID)
		return requestAnsweredMsg{approved: false, err: err}
	}
}

func (m mainLoopModel) cmdTrust(name string, remember bool) tea.Cmd {
	ctx := m.ctx
	devices := m.services.ClientDeviceService

	return func() tea.Msg {
		device, err := devices.TrustDevice(ctx, name, remember)
		return deviceTrustedMsg{device: device, err: err}
	}
}

func (m mainLoopModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.ClientAuthService

	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

func scheduleRefresh() tea.Cmd {
	return tea.Tick(requestRefreshInterval, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}
