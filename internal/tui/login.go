package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// loginState backs both the login and verify screens: the email form, the
// link-sent notice, and the one-time token form.
type loginState struct {
	email    field
	token    field
	linkSent bool
	busy     bool
	formErr  string
}

func newLoginState() loginState {
	return loginState{
		email: newField("Email"),
		token: newField("Token"),
	}
}

func (m Model) loginCmd(email string) tea.Cmd {
	session := m.stores.Session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		return loginDoneMsg{err: session.RequestLink(ctx, email)}
	}
}

func (m Model) verifyCmd(token string) tea.Cmd {
	session := m.stores.Session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		return verifyDoneMsg{err: session.Verify(ctx, token)}
	}
}

func (m Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEnter:
		if m.login.busy {
			return m, nil
		}
		// After the link was sent, enter moves on to token entry (the
		// user pastes the token from the email).
		if m.login.linkSent {
			m.screen = ScreenVerify
			m.login.formErr = ""
			return m, nil
		}
		email := strings.TrimSpace(m.login.email.Value())
		if email == "" || !strings.Contains(email, "@") {
			m.login.formErr = "Enter a valid email address"
			return m, nil
		}
		m.login.formErr = ""
		m.login.busy = true
		return m, m.loginCmd(email)

	case tea.KeyEsc:
		m.login.formErr = ""
		m.login.linkSent = false
		return m, nil
	}

	m.login.email.handleKey(msg)
	return m, nil
}

func (m Model) updateLogin(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	m.login.busy = false
	if msg.err != nil {
		m.login.formErr = msg.err.Error()
		return m, nil
	}
	m.login.linkSent = true
	m.login.formErr = ""
	return m, nil
}

func (m Model) handleVerifyKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEnter:
		if m.login.busy {
			return m, nil
		}
		token := strings.TrimSpace(m.login.token.Value())
		if token == "" {
			m.login.formErr = "No verification token provided"
			return m, nil
		}
		m.login.formErr = ""
		m.login.busy = true
		return m, m.verifyCmd(token)

	case tea.KeyEsc:
		m.screen = ScreenLogin
		m.login.formErr = ""
		return m, nil
	}

	m.login.token.handleKey(msg)
	return m, nil
}

func (m Model) updateVerify(msg verifyDoneMsg) (tea.Model, tea.Cmd) {
	m.login.busy = false
	m.pendingToken = ""
	if msg.err != nil {
		m.login.formErr = "Invalid or expired token"
		m.screen = ScreenVerify
		return m, nil
	}
	m.screen = ScreenDashboard
	m.login = newLoginState()
	return m, m.bootstrapCmd()
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString("\n")
	if m.login.linkSent {
		b.WriteString("A login link has been sent to your email.\n")
		b.WriteString(mutedStyle.Render("Press enter to paste the token from the email, or esc to start over."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.login.email.view(true))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("enter: send login link · ctrl+c: quit"))
		b.WriteString("\n")
	}
	if m.login.formErr != "" {
		b.WriteString(errorStyle.Render(m.login.formErr))
		b.WriteString("\n")
	}
	if m.login.busy {
		b.WriteString(mutedStyle.Render("working…"))
		b.WriteString("\n")
	}
	return boxStyle.Render(b.String())
}

func (m Model) viewVerify() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.login.token.view(true))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("enter: verify · esc: back to login"))
	b.WriteString("\n")
	if m.login.formErr != "" {
		b.WriteString(errorStyle.Render(m.login.formErr))
		b.WriteString("\n")
	}
	if m.login.busy {
		b.WriteString(mutedStyle.Render("verifying…"))
		b.WriteString("\n")
	}
	return boxStyle.Render(b.String())
}
