// Package entities provides core data structures for tracker-api.
package entities

import "time"

// Party is a named group of characters tracked on the dashboard.
// Characters keep their insertion order for display; order carries no
// semantic meaning.
type Party struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Characters  []Character `json:"characters"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Character is a party member with combat-relevant stats. A character
// belongs to exactly one party; the owning party never changes implicitly.
type Character struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Class      string `json:"class,omitempty"`
	Level      int32  `json:"level,omitempty"`
	CurrentHP  int32  `json:"current_hp"`
	MaxHP      int32  `json:"max_hp"`
	ArmorClass int32  `json:"armor_class,omitempty"`
}

// Clone returns a deep copy of the party.
func (p *Party) Clone() *Party {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Characters = make([]Character, len(p.Characters))
	copy(cp.Characters, p.Characters)
	return &cp
}

// Snapshot is the subset of store state that survives restarts: the party
// collection and the active-party pointer. Transient flags are excluded.
type Snapshot struct {
	Parties     []Party `json:"parties"`
	ActiveParty *Party  `json:"active_party"`
}
