package party_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/fennwald/tracker-api/internal/entities"
	"github.com/fennwald/tracker-api/internal/pkg/clock"
	"github.com/fennwald/tracker-api/internal/store/party"
)

type StoreTestSuite struct {
	suite.Suite
	store *party.Store
	now   time.Time
}

func (s *StoreTestSuite) SetupTest() {
	s.now = time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	s.store = party.New(&party.Config{Clock: &clock.Fixed{T: s.now}})
}

func (s *StoreTestSuite) seedParty(id, name string, chars ...entities.Character) entities.Party {
	p := entities.Party{ID: id, Name: name, Characters: chars}
	s.store.AddParty(p)
	return p
}

func strPtr(v string) *string { return &v }
func i32Ptr(v int32) *int32   { return &v }

func (s *StoreTestSuite) TestSetPartiesReplacesCollection() {
	s.seedParty("party_1", "Old Guard")
	s.store.SetActiveParty(&entities.Party{ID: "party_1", Name: "Old Guard"})

	s.store.SetParties([]entities.Party{
		{ID: "party_2", Name: "New Blood"},
	})

	parties := s.store.Parties()
	s.Require().Len(parties, 1)
	s.Equal("party_2", parties[0].ID)

	// Replacing the collection does not touch the active pointer.
	active := s.store.ActiveParty()
	s.Require().NotNil(active)
	s.Equal("party_1", active.ID)
}

func (s *StoreTestSuite) TestAddPartyPreservesInsertionOrder() {
	s.seedParty("party_1", "First")
	s.seedParty("party_2", "Second")
	s.seedParty("party_3", "Third")

	parties := s.store.Parties()
	s.Require().Len(parties, 3)
	s.Equal([]string{"party_1", "party_2", "party_3"},
		[]string{parties[0].ID, parties[1].ID, parties[2].ID})
}

func (s *StoreTestSuite) TestDuplicateIDFirstMatchWins() {
	s.seedParty("party_1", "Original")
	s.seedParty("party_1", "Impostor")

	got := s.store.Party("party_1")
	s.Require().NotNil(got)
	s.Equal("Original", got.Name)

	res := s.store.UpdateParty("party_1", party.PartyPatch{Name: strPtr("Renamed")})
	s.True(res.Applied())

	parties := s.store.Parties()
	s.Equal("Renamed", parties[0].Name)
	s.Equal("Impostor", parties[1].Name)
}

func (s *StoreTestSuite) TestUpdatePartyShallowMerge() {
	s.seedParty("party_1", "Torchbearers")
	res := s.store.UpdateParty("party_1", party.PartyPatch{
		Description: strPtr("Delvers of the Sunless Keep"),
	})
	s.True(res.Applied())

	got := s.store.Party("party_1")
	s.Require().NotNil(got)
	// Omitted fields retain their prior value.
	s.Equal("Torchbearers", got.Name)
	s.Equal("Delvers of the Sunless Keep", got.Description)
	s.Equal(s.now, got.UpdatedAt)
}

func (s *StoreTestSuite) TestUpdatePartyMirrorsActivePointer() {
	p := s.seedParty("party_1", "Torchbearers")
	s.store.SetActiveParty(&p)

	s.store.UpdateParty("party_1", party.PartyPatch{Name: strPtr("Ashwalkers")})

	active := s.store.ActiveParty()
	s.Require().NotNil(active)
	s.Equal("Ashwalkers", active.Name)
	s.Equal(s.store.Party("party_1"), active)
}

func (s *StoreTestSuite) TestUpdatePartyLeavesUnrelatedActiveAlone() {
	s.seedParty("party_1", "Torchbearers")
	other := s.seedParty("party_2", "Ashwalkers")
	s.store.SetActiveParty(&other)

	s.store.UpdateParty("party_1", party.PartyPatch{Name: strPtr("Renamed")})

	active := s.store.ActiveParty()
	s.Require().NotNil(active)
	s.Equal("Ashwalkers", active.Name)
}

func (s *StoreTestSuite) TestUpdatePartyNotFound() {
	res := s.store.UpdateParty("party_missing", party.PartyPatch{Name: strPtr("x")})
	s.Equal(party.ResultNotFound, res)
	s.False(res.Applied())
}

func (s *StoreTestSuite) TestDeletePartyClearsActivePointer() {
	p := s.seedParty("party_1", "Torchbearers")
	s.store.SetActiveParty(&p)

	res := s.store.DeleteParty("party_1")
	s.True(res.Applied())
	s.Nil(s.store.ActiveParty())
	s.Empty(s.store.Parties())
}

func (s *StoreTestSuite) TestDeletePartyKeepsUnrelatedActive() {
	s.seedParty("party_1", "Torchbearers")
	other := s.seedParty("party_2", "Ashwalkers")
	s.store.SetActiveParty(&other)

	res := s.store.DeleteParty("party_1")
	s.True(res.Applied())

	active := s.store.ActiveParty()
	s.Require().NotNil(active)
	s.Equal("party_2", active.ID)
}

func (s *StoreTestSuite) TestDeletePartyDiscardsCharacters() {
	s.seedParty("party_1", "Torchbearers",
		entities.Character{ID: "char_1", Name: "Brakka", CurrentHP: 20, MaxHP: 20})

	s.True(s.store.DeleteParty("party_1").Applied())
	s.Nil(s.store.Party("party_1"))
}

func (s *StoreTestSuite) TestSetActivePartyDoesNotValidateMembership() {
	s.store.SetActiveParty(&entities.Party{ID: "party_ghost", Name: "Not In Collection"})

	active := s.store.ActiveParty()
	s.Require().NotNil(active)
	s.Equal("party_ghost", active.ID)
	s.Empty(s.store.Parties())
}

func (s *StoreTestSuite) TestAddCharacter() {
	p := s.seedParty("party_1", "Torchbearers")
	s.store.SetActiveParty(&p)

	res := s.store.AddCharacter("party_1", entities.Character{
		ID: "char_1", Name: "Brakka", Class: "barbarian", Level: 3, CurrentHP: 31, MaxHP: 31,
	})
	s.True(res.Applied())

	got := s.store.Party("party_1")
	s.Require().Len(got.Characters, 1)
	s.Equal("Brakka", got.Characters[0].Name)

	// Mirrored into the active pointer.
	active := s.store.ActiveParty()
	s.Require().Len(active.Characters, 1)
	s.Equal("char_1", active.Characters[0].ID)
}

func (s *StoreTestSuite) TestAddCharacterUnknownPartyIsNoOp() {
	s.seedParty("party_1", "Torchbearers")

	res := s.store.AddCharacter("party_missing", entities.Character{ID: "char_1"})
	s.Equal(party.ResultNotFound, res)

	got := s.store.Party("party_1")
	s.Empty(got.Characters)
}

func (s *StoreTestSuite) TestUpdateCharacterShallowMerge() {
	s.seedParty("party_1", "Torchbearers",
		entities.Character{ID: "char_1", Name: "Brakka", Class: "barbarian", CurrentHP: 31, MaxHP: 31})

	res := s.store.UpdateCharacter("party_1", "char_1", party.CharacterPatch{
		Level: i32Ptr(4),
	})
	s.True(res.Applied())

	got := s.store.Party("party_1")
	c := got.Characters[0]
	s.Equal(int32(4), c.Level)
	s.Equal("Brakka", c.Name)
	s.Equal(int32(31), c.CurrentHP)
}

func (s *StoreTestSuite) TestUpdateCharacterUnknownCharacterIsNoOp() {
	s.seedParty("party_1", "Torchbearers",
		entities.Character{ID: "char_1", Name: "Brakka"})

	res := s.store.UpdateCharacter("party_1", "char_missing", party.CharacterPatch{
		Name: strPtr("x"),
	})
	s.Equal(party.ResultNotFound, res)
	s.Equal("Brakka", s.store.Party("party_1").Characters[0].Name)
}

func (s *StoreTestSuite) TestRemoveCharacterMirrorsActive() {
	p := s.seedParty("party_1", "Torchbearers",
		entities.Character{ID: "char_1", Name: "Brakka"},
		entities.Character{ID: "char_2", Name: "Selwyn"})
	s.store.SetActiveParty(&p)

	res := s.store.RemoveCharacter("party_1", "char_1")
	s.True(res.Applied())

	got := s.store.Party("party_1")
	s.Require().Len(got.Characters, 1)
	s.Equal("char_2", got.Characters[0].ID)

	active := s.store.ActiveParty()
	s.Require().Len(active.Characters, 1)
	s.Equal("char_2", active.Characters[0].ID)
}

func (s *StoreTestSuite) TestUpdateCharacterHealthWithoutMax() {
	s.seedParty("party_1", "Torchbearers",
		entities.Character{ID: "char_1", Name: "Brakka", CurrentHP: 25, MaxHP: 30})

	res := s.store.UpdateCharacterHealth("party_1", "char_1", 10, nil)
	s.True(res.Applied())

	c := s.store.Party("party_1").Characters[0]
	s.Equal(int32(10), c.CurrentHP)
	s.Equal(int32(30), c.MaxHP)
}

func (s *StoreTestSuite) TestUpdateCharacterHealthWithMax() {
	s.seedParty("party_1", "Torchbearers",
		entities.Character{ID: "char_1", Name: "Brakka", CurrentHP: 25, MaxHP: 30})

	res := s.store.UpdateCharacterHealth("party_1", "char_1", 10, i32Ptr(35))
	s.True(res.Applied())

	c := s.store.Party("party_1").Characters[0]
	s.Equal(int32(10), c.CurrentHP)
	s.Equal(int32(35), c.MaxHP)
}

func (s *StoreTestSuite) TestUpdateCharacterHealthZeroMaxIsExplicit() {
	s.seedParty("party_1", "Torchbearers",
		entities.Character{ID: "char_1", Name: "Brakka", CurrentHP: 25, MaxHP: 30})

	// A supplied zero is a real value, not "absent".
	res := s.store.UpdateCharacterHealth("party_1", "char_1", 0, i32Ptr(0))
	s.True(res.Applied())

	c := s.store.Party("party_1").Characters[0]
	s.Equal(int32(0), c.CurrentHP)
	s.Equal(int32(0), c.MaxHP)
}

func (s *StoreTestSuite) TestLoadingAndErrFlags() {
	s.False(s.store.Loading())
	s.store.SetLoading(true)
	s.True(s.store.Loading())

	boom := errors.New("fetch failed")
	s.store.SetErr(boom)
	s.Equal(boom, s.store.Err())
	s.store.SetErr(nil)
	s.NoError(s.store.Err())
}

func (s *StoreTestSuite) TestSnapshotExcludesTransientFlags() {
	p := s.seedParty("party_1", "Torchbearers")
	s.store.SetActiveParty(&p)
	s.store.SetLoading(true)
	s.store.SetErr(errors.New("transient"))

	snap := s.store.Snapshot()
	s.Require().Len(snap.Parties, 1)
	s.Require().NotNil(snap.ActiveParty)
	s.Equal("party_1", snap.ActiveParty.ID)

	restored := party.New(&party.Config{Clock: &clock.Fixed{T: s.now}})
	restored.Restore(snap)
	s.Equal(s.store.Parties(), restored.Parties())
	s.Equal(s.store.ActiveParty(), restored.ActiveParty())
	s.False(restored.Loading())
	s.NoError(restored.Err())
}

func (s *StoreTestSuite) TestSnapshotIsDeepCopy() {
	s.seedParty("party_1", "Torchbearers",
		entities.Character{ID: "char_1", Name: "Brakka", CurrentHP: 20, MaxHP: 20})

	snap := s.store.Snapshot()
	snap.Parties[0].Characters[0].CurrentHP = 1

	s.Equal(int32(20), s.store.Party("party_1").Characters[0].CurrentHP)
}

func (s *StoreTestSuite) TestRestoreNilResetsToEmpty() {
	s.seedParty("party_1", "Torchbearers")
	s.store.Restore(nil)
	s.Empty(s.store.Parties())
	s.Nil(s.store.ActiveParty())
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
