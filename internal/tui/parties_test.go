package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fennwald/tracker-api/internal/entities"
	"github.com/fennwald/tracker-api/internal/pkg/clock"
	"github.com/fennwald/tracker-api/internal/pkg/idgen"
	"github.com/fennwald/tracker-api/internal/store/party"
)

func newTestPartiesModel() partiesModel {
	store := party.New(&party.Config{
		Clock: &clock.Fixed{T: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	})
	return newPartiesModel(store, idgen.NewSequential("party"))
}

func typeString(m partiesModel, s string) partiesModel {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestPartiesEmptyState(t *testing.T) {
	m := newTestPartiesModel()
	view := m.View()
	if !strings.Contains(view, "no parties yet") {
		t.Errorf("expected empty-state hint, got:\n%s", view)
	}
}

func TestPartiesCreate(t *testing.T) {
	m := newTestPartiesModel()

	m, _ = m.Update(keyPress("n"))
	if !m.naming {
		t.Fatal("expected naming mode after n")
	}
	m = typeString(m, "The Brave")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	parties := m.store.Parties()
	if len(parties) != 1 {
		t.Fatalf("expected 1 party, got %d", len(parties))
	}
	if parties[0].Name != "The Brave" {
		t.Errorf("Name = %q, want %q", parties[0].Name, "The Brave")
	}
	if parties[0].ID == "" {
		t.Error("expected a generated ID")
	}
	if cmd == nil {
		t.Error("expected a mutation command to persist")
	}
}

func TestPartiesCreateCancel(t *testing.T) {
	m := newTestPartiesModel()

	m, _ = m.Update(keyPress("n"))
	m = typeString(m, "abandoned")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if m.naming {
		t.Error("expected naming mode to end on esc")
	}
	if len(m.store.Parties()) != 0 {
		t.Error("expected no party created after cancel")
	}
}

func TestPartiesActivate(t *testing.T) {
	m := newTestPartiesModel()
	m.store.AddParty(entities.Party{ID: "party_1", Name: "First"})
	m.store.AddParty(entities.Party{ID: "party_2", Name: "Second"})

	m, _ = m.Update(keyPress("j"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	active := m.store.ActiveParty()
	if active == nil || active.ID != "party_2" {
		t.Fatalf("active = %+v, want party_2", active)
	}
	if cmd == nil {
		t.Error("expected a mutation command to persist")
	}

	view := m.View()
	if !strings.Contains(view, "ACTIVE") {
		t.Errorf("expected ACTIVE badge, got:\n%s", view)
	}
}

func TestPartiesDelete(t *testing.T) {
	m := newTestPartiesModel()
	m.store.AddParty(entities.Party{ID: "party_1", Name: "Doomed"})

	m, cmd := m.Update(keyPress("x"))

	if len(m.store.Parties()) != 0 {
		t.Error("expected party removed")
	}
	if cmd == nil {
		t.Error("expected a mutation command to persist")
	}
}

func TestPartiesCursorBounds(t *testing.T) {
	m := newTestPartiesModel()
	m.store.AddParty(entities.Party{ID: "party_1", Name: "Only"})

	m, _ = m.Update(keyPress("k"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 after k at top", m.cursor)
	}
	m, _ = m.Update(keyPress("j"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 after j at bottom", m.cursor)
	}
}
