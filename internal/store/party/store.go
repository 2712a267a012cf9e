// Package party implements the in-memory record store behind the
// dashboard: the party collection, the active-party pointer, and the
// transient loading/error flags.
//
// Mutations target records by ID with first-match semantics and report
// whether they applied or found no target, so stale mutations degrade to
// a diagnosable no-op instead of disappearing silently. When the active
// pointer names the mutated party it is refreshed to the same merged
// value; the two views of one logical entity never diverge.
package party

import (
	"log/slog"
	"sync"

	"github.com/fennwald/tracker-api/internal/entities"
	"github.com/fennwald/tracker-api/internal/pkg/clock"
)

// Result reports the outcome of a store mutation.
type Result int

// Mutation outcomes.
const (
	ResultApplied Result = iota
	ResultNotFound
)

// Applied reports whether the mutation changed store state.
func (r Result) Applied() bool {
	return r == ResultApplied
}

// PartyPatch is a shallow-merge update for a party. Nil fields keep
// their prior value.
type PartyPatch struct {
	Name        *string
	Description *string
}

// CharacterPatch is a shallow-merge update for a character. Nil fields
// keep their prior value, so a zero is always distinguishable from an
// omitted field.
type CharacterPatch struct {
	Name       *string
	Class      *string
	Level      *int32
	CurrentHP  *int32
	MaxHP      *int32
	ArmorClass *int32
}

// Config holds the dependencies for the store.
type Config struct {
	// Clock stamps UpdatedAt on party mutations. Defaults to the real
	// clock.
	Clock clock.Clock
}

// Store is the mutable dashboard state. All methods are safe for
// concurrent use; reads return copies so callers never alias internal
// state.
type Store struct {
	mu      sync.RWMutex
	clock   clock.Clock
	parties []entities.Party
	active  *entities.Party
	loading bool
	err     error
}

// New creates an empty store.
func New(cfg *Config) *Store {
	c := clock.Clock(nil)
	if cfg != nil {
		c = cfg.Clock
	}
	if c == nil {
		c = clock.New()
	}
	return &Store{clock: c}
}

// Parties returns a deep copy of the party collection in insertion order.
func (s *Store) Parties() []entities.Party {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneParties(s.parties)
}

// Party returns a copy of the first party with the given ID, or nil.
func (s *Store) Party(id string) *entities.Party {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.parties[i].Clone()
	}
	return nil
}

// SetParties replaces the entire collection. The active-party pointer is
// left untouched.
func (s *Store) SetParties(parties []entities.Party) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parties = cloneParties(parties)
}

// AddParty appends a party to the collection. Key uniqueness is the
// caller's responsibility; a duplicate ID shadows the later copy for
// ID lookups.
func (s *Store) AddParty(p entities.Party) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parties = append(s.parties, *p.Clone())
}

// UpdateParty shallow-merges patch into the party with the given ID and
// refreshes the active pointer when it names the same party.
func (s *Store) UpdateParty(id string, patch PartyPatch) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		slog.Debug("update targeted unknown party", "party_id", id)
		return ResultNotFound
	}

	p := &s.parties[i]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	p.UpdatedAt = s.clock.Now()

	s.mirrorActive(p)
	return ResultApplied
}

// DeleteParty removes the party with the given ID. Contained characters
// are discarded with it. The active pointer is nulled when it pointed at
// the deleted party.
func (s *Store) DeleteParty(id string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		slog.Debug("delete targeted unknown party", "party_id", id)
		return ResultNotFound
	}

	s.parties = append(s.parties[:i], s.parties[i+1:]...)
	if s.active != nil && s.active.ID == id {
		s.active = nil
	}
	return ResultApplied
}

// ActiveParty returns a copy of the active party, or nil when unset.
func (s *Store) ActiveParty() *entities.Party {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active.Clone()
}

// SetActiveParty sets the pointer directly. Membership in the collection
// is not validated (caller contract); nil clears the pointer.
func (s *Store) SetActiveParty(p *entities.Party) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = p.Clone()
}

// AddCharacter appends a character to the matching party.
func (s *Store) AddCharacter(partyID string, c entities.Character) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(partyID)
	if i < 0 {
		slog.Debug("add character targeted unknown party", "party_id", partyID)
		return ResultNotFound
	}

	p := &s.parties[i]
	p.Characters = append(p.Characters, c)
	p.UpdatedAt = s.clock.Now()

	s.mirrorActive(p)
	return ResultApplied
}

// UpdateCharacter shallow-merges patch into the matching character of
// the matching party.
func (s *Store) UpdateCharacter(partyID, charID string, patch CharacterPatch) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(partyID)
	if i < 0 {
		slog.Debug("update character targeted unknown party", "party_id", partyID)
		return ResultNotFound
	}

	p := &s.parties[i]
	j := indexOfCharacter(p.Characters, charID)
	if j < 0 {
		slog.Debug("update targeted unknown character",
			"party_id", partyID,
			"character_id", charID)
		return ResultNotFound
	}

	c := &p.Characters[j]
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Class != nil {
		c.Class = *patch.Class
	}
	if patch.Level != nil {
		c.Level = *patch.Level
	}
	if patch.CurrentHP != nil {
		c.CurrentHP = *patch.CurrentHP
	}
	if patch.MaxHP != nil {
		c.MaxHP = *patch.MaxHP
	}
	if patch.ArmorClass != nil {
		c.ArmorClass = *patch.ArmorClass
	}
	p.UpdatedAt = s.clock.Now()

	s.mirrorActive(p)
	return ResultApplied
}

// RemoveCharacter removes the matching character from the matching party.
func (s *Store) RemoveCharacter(partyID, charID string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(partyID)
	if i < 0 {
		slog.Debug("remove character targeted unknown party", "party_id", partyID)
		return ResultNotFound
	}

	p := &s.parties[i]
	j := indexOfCharacter(p.Characters, charID)
	if j < 0 {
		slog.Debug("remove targeted unknown character",
			"party_id", partyID,
			"character_id", charID)
		return ResultNotFound
	}

	p.Characters = append(p.Characters[:j], p.Characters[j+1:]...)
	p.UpdatedAt = s.clock.Now()

	s.mirrorActive(p)
	return ResultApplied
}

// UpdateCharacterHealth sets CurrentHP unconditionally and MaxHP only
// when maxHP is non-nil. A nil pointer, not a zero value, means "not
// supplied", so zero is a settable MaxHP.
func (s *Store) UpdateCharacterHealth(partyID, charID string, currentHP int32, maxHP *int32) Result {
	return s.UpdateCharacter(partyID, charID, CharacterPatch{
		CurrentHP: &currentHP,
		MaxHP:     maxHP,
	})
}

// SetLoading sets the transient loading flag. The store does not enforce
// any sequencing around it.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// Loading returns the transient loading flag.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// SetErr sets the transient error field.
func (s *Store) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Err returns the transient error field.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Snapshot returns a deep copy of the persistent subset of store state.
func (s *Store) Snapshot() *entities.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &entities.Snapshot{
		Parties:     cloneParties(s.parties),
		ActiveParty: s.active.Clone(),
	}
}

// Restore replaces the persistent subset from a snapshot. Transient
// flags reset to their defaults.
func (s *Store) Restore(snap *entities.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap == nil {
		s.parties = nil
		s.active = nil
	} else {
		s.parties = cloneParties(snap.Parties)
		s.active = snap.ActiveParty.Clone()
	}
	s.loading = false
	s.err = nil
}

// indexOf returns the index of the first party with the given ID.
// Callers must hold the lock.
func (s *Store) indexOf(id string) int {
	for i := range s.parties {
		if s.parties[i].ID == id {
			return i
		}
	}
	return -1
}

// mirrorActive refreshes the active pointer when it names p. Callers
// must hold the lock.
func (s *Store) mirrorActive(p *entities.Party) {
	if s.active != nil && s.active.ID == p.ID {
		s.active = p.Clone()
	}
}

func indexOfCharacter(chars []entities.Character, id string) int {
	for i := range chars {
		if chars[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneParties(parties []entities.Party) []entities.Party {
	if parties == nil {
		return nil
	}
	out := make([]entities.Party, len(parties))
	for i := range parties {
		out[i] = *parties[i].Clone()
	}
	return out
}
