package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fennwald/tracker-api/internal/entities"
	"github.com/fennwald/tracker-api/internal/pkg/idgen"
	"github.com/fennwald/tracker-api/internal/store/party"
)

type encounterModel struct {
	store  *party.Store
	ids    idgen.Generator
	cursor int
	naming bool
	name   string
}

func newEncounterModel(s *party.Store, ids idgen.Generator) encounterModel {
	return encounterModel{store: s, ids: ids}
}

// adjustHP applies a hit-point delta to the character under the cursor,
// clamping at zero and at MaxHP when one is set.
func (m encounterModel) adjustHP(active *entities.Party, delta int32) tea.Cmd {
	if m.cursor >= len(active.Characters) {
		return nil
	}
	c := active.Characters[m.cursor]

	hp := c.CurrentHP + delta
	if hp < 0 {
		hp = 0
	}
	if c.MaxHP > 0 && hp > c.MaxHP {
		hp = c.MaxHP
	}

	if m.store.UpdateCharacterHealth(active.ID, c.ID, hp, nil).Applied() {
		return mutated()
	}
	return nil
}

func (m encounterModel) Update(msg tea.Msg) (encounterModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	active := m.store.ActiveParty()
	if active == nil {
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
				name = "Adventurer"
			}
			res := m.store.AddCharacter(active.ID, entities.Character{
				ID:         m.ids.Generate(),
				Name:       name,
				Level:      1,
				CurrentHP:  10,
				MaxHP:      10,
				ArmorClass: 10,
			})
			m.naming = false
			m.name = ""
			if res.Applied() {
				return m, mutated()
			}
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

	switch keyMsg.String() {
	case "j", "down":
		if m.cursor < len(active.Characters)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "d":
		return m, m.adjustHP(active, -1)
	case "D":
		return m, m.adjustHP(active, -5)
	case "h":
		return m, m.adjustHP(active, 1)
	case "H":
		return m, m.adjustHP(active, 5)
	case "a":
		m.naming = true
		m.name = ""
	case "x":
		if m.cursor < len(active.Characters) {
			c := active.Characters[m.cursor]
			if m.store.RemoveCharacter(active.ID, c.ID).Applied() {
				if m.cursor > 0 {
					m.cursor--
				}
				return m, mutated()
			}
		}
	}
	return m, nil
}

func (m encounterModel) View() string {
	var b strings.Builder

	active := m.store.ActiveParty()
	if active == nil {
		b.WriteString(" " + selectedStyle.Render("Encounter") + "\n\n")
		b.WriteString(" " + dimStyle.Render("no active party -- pick one in the Parties tab") + "\n")
		return b.String()
	}

	b.WriteString(" " + selectedStyle.Render("Encounter") + "  " + dimStyle.Render(active.Name) + "\n\n")

	if m.naming {
		b.WriteString(" " + inputPromptStyle.Render("name> ") + normalStyle.Render(m.name) + "\n")
		b.WriteString("\n " + helpEntry("enter", "add") + "  " + helpEntry("esc", "cancel"))
		return b.String()
	}

	if len(active.Characters) == 0 {
		b.WriteString(" " + dimStyle.Render("no characters -- press a to add one") + "\n")
		return b.String()
	}

	for i, c := range active.Characters {
		prefix := "   "
		nameStyle := normalStyle
		if i == m.cursor {
			prefix = " " + accentStyle.Render("> ")
			nameStyle = selectedStyle
		}
		hp := hpStyle(c.CurrentHP, c.MaxHP).Render(fmt.Sprintf("%3d/%-3d", c.CurrentHP, c.MaxHP))
		down := ""
		if c.CurrentHP <= 0 {
			down = " " + errorStyle.Render("DOWN")
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s %s%s\n",
			prefix,
			nameStyle.Render(fmt.Sprintf("%-16s", c.Name)),
			dimStyle.Render(fmt.Sprintf("%-10s lv%-2d", c.Class, c.Level)),
			hp,
			metaStyle.Render(fmt.Sprintf("ac%d", c.ArmorClass)),
			down))
	}
	return b.String()
}
