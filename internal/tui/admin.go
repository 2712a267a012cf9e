package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fennwald/tracker-api/internal/auth"
)

type adminModel struct {
	gateway *auth.Gateway
}

func newAdminModel(gw *auth.Gateway) adminModel {
	return adminModel{gateway: gw}
}

func (m adminModel) Update(_ tea.Msg) (adminModel, tea.Cmd) {
	return m, nil
}

func (m adminModel) View() string {
	var b strings.Builder

	b.WriteString(" " + selectedStyle.Render("Admin") + "  " + adminTagStyle.Render("[admin]") + "\n\n")

	user := m.gateway.Session().User()
	if user == nil || !user.Admin {
		b.WriteString(" " + errorStyle.Render("admin access required") + "\n")
		return b.String()
	}

	b.WriteString("   " + dimStyle.Render("signed in as ") + normalStyle.Render(user.Email) + "\n")
	b.WriteString("   " + dimStyle.Render("user id      ") + metaStyle.Render(user.ID) + "\n")
	return b.String()
}
