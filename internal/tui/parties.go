package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fennwald/tracker-api/internal/entities"
	"github.com/fennwald/tracker-api/internal/pkg/idgen"
	"github.com/fennwald/tracker-api/internal/store/party"
)

type partiesModel struct {
	store  *party.Store
	ids    idgen.Generator
	cursor int
	naming bool
	name   string
}

func newPartiesModel(s *party.Store, ids idgen.Generator) partiesModel {
	return partiesModel{store: s, ids: ids}
}

func mutated() tea.Cmd {
	return func() tea.Msg { return mutatedMsg{} }
}

func (m partiesModel) Update(msg tea.Msg) (partiesModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.naming {
		switch keyMsg.String() {
		case "esc":
			m.naming = false
			m.name = ""
		case "enter":
			name := strings.TrimSpace(m.name)
			if name == "" {
				name = "New Party"
			}
			now := time.Now()
			m.store.AddParty(entities.Party{
				ID:        m.ids.Generate(),
				Name:      name,
				CreatedAt: now,
				UpdatedAt: now,
			})
			m.naming = false
			m.name = ""
			return m, mutated()
		case "backspace":
			if m.name != "" {
				m.name = m.name[:len(m.name)-1]
			}
		default:
			if keyMsg.Type == tea.KeyRunes || keyMsg.Type == tea.KeySpace {
				m.name += string(keyMsg.Runes)
				if keyMsg.Type == tea.KeySpace {
					m.name += " "
				}
			}
		}
		return m, nil
	}

	parties := m.store.Parties()
	switch keyMsg.String() {
	case "j", "down":
		if m.cursor < len(parties)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if m.cursor < len(parties) {
			p := parties[m.cursor]
			m.store.SetActiveParty(&p)
			return m, mutated()
		}
	case "n":
		m.naming = true
		m.name = ""
	case "x":
		if m.cursor < len(parties) {
			if m.store.DeleteParty(parties[m.cursor].ID).Applied() {
				if m.cursor > 0 {
					m.cursor--
				}
				return m, mutated()
			}
		}
	}
	return m, nil
}

func (m partiesModel) View() string {
	var b strings.Builder

	b.WriteString(" " + selectedStyle.Render("Parties") + "\n\n")

	if m.naming {
		b.WriteString(" " + inputPromptStyle.Render("name> ") + normalStyle.Render(m.name) + "\n")
		b.WriteString("\n " + helpEntry("enter", "create") + "  " + helpEntry("esc", "cancel"))
		return b.String()
	}

	parties := m.store.Parties()
	if len(parties) == 0 {
		b.WriteString(" " + dimStyle.Render("no parties yet -- press n to create one") + "\n")
		return b.String()
	}

	active := m.store.ActiveParty()
	for i, p := range parties {
		prefix := "   "
		nameStyle := normalStyle
		if i == m.cursor {
			prefix = " " + accentStyle.Render("> ")
			nameStyle = selectedStyle
		}
		badge := ""
		if active != nil && active.ID == p.ID {
			badge = " " + activeBadgeStyle.Render("ACTIVE")
		}
		b.WriteString(fmt.Sprintf("%s%s %s%s\n",
			prefix,
			nameStyle.Render(p.Name),
			metaStyle.Render(fmt.Sprintf("(%d characters)", len(p.Characters))),
			badge))
	}
	return b.String()
}
