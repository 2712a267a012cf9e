package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fennwald/tracker-api/internal/auth"
	"github.com/fennwald/tracker-api/internal/entities"
	"github.com/fennwald/tracker-api/internal/errors"
)

type loginField int

const (
	fieldEmail loginField = iota
	fieldPassword
)

// loginDoneMsg carries the outcome of a login attempt.
type loginDoneMsg struct {
	err error
}

type loginModel struct {
	gateway    *auth.Gateway
	email      string
	password   string
	focus      loginField
	submitting bool
	errMsg     string
}

func newLoginModel(gw *auth.Gateway) loginModel {
	return loginModel{gateway: gw}
}

func (m loginModel) submit() tea.Cmd {
	gw := m.gateway
	creds := entities.Credentials{Email: m.email, Password: m.password}
	return func() tea.Msg {
		return loginDoneMsg{err: gw.Login(context.Background(), creds)}
	}
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = errors.GetMessage(msg.err)
			m.password = ""
			m.focus = fieldPassword
		}
		return m, nil

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			if m.focus == fieldEmail {
				m.focus = fieldPassword
			} else {
				m.focus = fieldEmail
			}
			return m, nil
		case "enter":
			if m.email == "" || m.password == "" {
				m.errMsg = "email and password are required"
				return m, nil
			}
			m.submitting = true
			m.errMsg = ""
			return m, m.submit()
		case "backspace":
			if m.focus == fieldEmail && m.email != "" {
				m.email = m.email[:len(m.email)-1]
			} else if m.focus == fieldPassword && m.password != "" {
				m.password = m.password[:len(m.password)-1]
			}
			return m, nil
		default:
			if msg.Type == tea.KeyRunes {
				if m.focus == fieldEmail {
					m.email += string(msg.Runes)
				} else {
					m.password += string(msg.Runes)
				}
			}
			return m, nil
		}
	}
	return m, nil
}

func (m loginModel) View() string {
	var b strings.Builder

	b.WriteString(" " + selectedStyle.Render("Sign in") + "\n\n")

	emailPrompt := "   "
	passPrompt := "   "
	if m.focus == fieldEmail {
		emailPrompt = " " + inputPromptStyle.Render("> ")
	}
	if m.focus == fieldPassword {
		passPrompt = " " + inputPromptStyle.Render("> ")
	}

	b.WriteString(emailPrompt + dimStyle.Render("email    ") + normalStyle.Render(m.email) + "\n")
	b.WriteString(passPrompt + dimStyle.Render("password ") + normalStyle.Render(strings.Repeat("*", len(m.password))) + "\n\n")

	switch {
	case m.submitting:
		b.WriteString(" " + dimStyle.Render("signing in...") + "\n")
	case m.errMsg != "":
		b.WriteString(" " + errorStyle.Render(m.errMsg) + "\n")
	}

	b.WriteString("\n " + helpEntry("tab", "switch") + "  " + helpEntry("enter", "sign in") + "  " + helpEntry("ctrl+c", "quit"))
	return b.String()
}
