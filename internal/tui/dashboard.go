package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fennwald/tracker-api/internal/store/party"
)

type dashboardModel struct {
	store *party.Store
}

func newDashboardModel(s *party.Store) dashboardModel {
	return dashboardModel{store: s}
}

func (m dashboardModel) Update(_ tea.Msg) (dashboardModel, tea.Cmd) {
	return m, nil
}

func (m dashboardModel) View() string {
	var b strings.Builder

	if m.store.Loading() {
		return " " + dimStyle.Render("loading saved state...")
	}
	if err := m.store.Err(); err != nil {
		b.WriteString(" " + errorStyle.Render("load failed: "+err.Error()) + "\n\n")
	}

	parties := m.store.Parties()
	b.WriteString(fmt.Sprintf(" %s %s\n\n",
		selectedStyle.Render("Parties"),
		metaStyle.Render(fmt.Sprintf("(%d)", len(parties)))))

	active := m.store.ActiveParty()
	if active == nil {
		b.WriteString(" " + dimStyle.Render("no active party -- pick one in the Parties tab") + "\n")
		return b.String()
	}

	b.WriteString(" " + activeBadgeStyle.Render("ACTIVE") + " " + normalStyle.Render(active.Name) + "\n")
	if active.Description != "" {
		b.WriteString("   " + dimStyle.Render(active.Description) + "\n")
	}
	b.WriteString("\n")

	if len(active.Characters) == 0 {
		b.WriteString(" " + dimStyle.Render("no characters yet") + "\n")
		return b.String()
	}

	for _, c := range active.Characters {
		hp := hpStyle(c.CurrentHP, c.MaxHP).Render(fmt.Sprintf("%d/%d", c.CurrentHP, c.MaxHP))
		b.WriteString(fmt.Sprintf("   %s  %s  %s %s\n",
			normalStyle.Render(fmt.Sprintf("%-16s", c.Name)),
			dimStyle.Render(fmt.Sprintf("%-10s lv%-2d", c.Class, c.Level)),
			hp,
			metaStyle.Render(fmt.Sprintf("ac%d", c.ArmorClass))))
	}
	return b.String()
}
