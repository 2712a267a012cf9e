package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fennwald/tracker-api/internal/auth"
)

type settingsModel struct {
	gateway *auth.Gateway
}

func newSettingsModel(gw *auth.Gateway) settingsModel {
	return settingsModel{gateway: gw}
}

func (m settingsModel) Update(_ tea.Msg) (settingsModel, tea.Cmd) {
	return m, nil
}

func (m settingsModel) View() string {
	var b strings.Builder

	b.WriteString(" " + selectedStyle.Render("Settings") + "\n\n")

	user := m.gateway.Session().User()
	if user == nil {
		b.WriteString(" " + dimStyle.Render("not signed in") + "\n")
		return b.String()
	}

	b.WriteString("   " + dimStyle.Render("email        ") + normalStyle.Render(user.Email) + "\n")
	if user.Username != "" {
		b.WriteString("   " + dimStyle.Render("username     ") + normalStyle.Render(user.Username) + "\n")
	}
	if user.SubscriptionTier != "" {
		b.WriteString("   " + dimStyle.Render("subscription ") + accentStyle.Render(user.SubscriptionTier) + "\n")
	}
	role := "player"
	if user.Admin {
		role = "admin"
	}
	b.WriteString("   " + dimStyle.Render("role         ") + normalStyle.Render(role) + "\n")

	refresh := "up to date"
	if m.gateway.NeedsRefresh() {
		refresh = "refresh due"
	}
	b.WriteString("   " + dimStyle.Render("access token ") + metaStyle.Render(refresh) + "\n")

	b.WriteString("\n " + helpEntry("L", "logout"))
	return b.String()
}
