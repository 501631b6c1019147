package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/delta/internal/core/domain"
	"go.trai.ch/delta/internal/store"
)

func scalarKey(name string) domain.DependencyKey {
	return domain.DependencyKey{Query: domain.NewQueryID(domain.KindInput, name, "scalar:int"), Args: nil}
}

func TestStore_SetInput_AdvancesRevisionOnce(t *testing.T) {
	s := store.New()
	k := scalarKey("x")

	require.Equal(t, domain.Revision(0), s.CurrentRevision())

	changed := s.SetInput(k, 1, domain.ValueEqual)
	assert.True(t, changed)
	assert.Equal(t, domain.Revision(1), s.CurrentRevision())

	// Idempotent write: same value does not advance the revision again.
	changed = s.SetInput(k, 1, domain.ValueEqual)
	assert.False(t, changed)
	assert.Equal(t, domain.Revision(1), s.CurrentRevision())

	changed = s.SetInput(k, 2, domain.ValueEqual)
	assert.True(t, changed)
	assert.Equal(t, domain.Revision(2), s.CurrentRevision())
}

func TestStore_SetInput_PanicsWhileDerivedActive(t *testing.T) {
	s := store.New()
	k := scalarKey("x")
	s.SetInput(k, 1, domain.ValueEqual)

	s.BeginDerived()
	defer s.EndDerived()

	assert.PanicsWithValue(t, domain.ErrInputMutationDuringComputation, func() {
		s.SetInput(k, 2, domain.ValueEqual)
	})
}

func TestStore_SetInput_EqualValueDoesNotPanicEvenWhileActive(t *testing.T) {
	s := store.New()
	k := scalarKey("x")
	s.SetInput(k, 1, domain.ValueEqual)

	s.BeginDerived()
	defer s.EndDerived()

	assert.NotPanics(t, func() {
		changed := s.SetInput(k, 1, domain.ValueEqual)
		assert.False(t, changed)
	})
}

func TestStore_DeleteInput_PanicsWhileDerivedActive(t *testing.T) {
	s := store.New()
	k := scalarKey("x")
	s.SetInput(k, 1, domain.ValueEqual)

	s.BeginDerived()
	defer s.EndDerived()

	assert.PanicsWithValue(t, domain.ErrInputMutationDuringComputation, func() {
		s.DeleteInput(k)
	})
}

func TestStore_DeleteInput_RemovesEntryAndAdvancesRevision(t *testing.T) {
	s := store.New()
	k := scalarKey("x")
	s.SetInput(k, 1, domain.ValueEqual)

	s.DeleteInput(k)
	_, ok := s.LookupInput(k)
	assert.False(t, ok)
	assert.Equal(t, domain.Revision(2), s.CurrentRevision())
}

func TestStore_LookupDerived_MissOnEmptyStore(t *testing.T) {
	s := store.New()
	qid := domain.NewQueryID(domain.KindDerived, "letter", "(string)->string")
	_, ok := s.LookupDerived(qid, "John")
	assert.False(t, ok)
}

func TestStore_InstallAndLookupDerived(t *testing.T) {
	s := store.New()
	qid := domain.NewQueryID(domain.KindDerived, "letter", "(string)->string")
	entry := domain.DerivedEntry{Value: "B", ChangedAt: 1, VerifiedAt: 1}
	s.InstallDerived(qid, "John", entry)

	got, ok := s.LookupDerived(qid, "John")
	require.True(t, ok)
	assert.Equal(t, "B", got.Value)

	_, ok = s.LookupDerived(qid, "Jane")
	assert.False(t, ok)
}

func TestStore_TouchVerified_UpgradesVerifiedAtOnly(t *testing.T) {
	s := store.New()
	qid := domain.NewQueryID(domain.KindDerived, "letter", "(string)->string")
	s.InstallDerived(qid, "John", domain.DerivedEntry{Value: "B", ChangedAt: 1, VerifiedAt: 1})

	s.TouchVerified(qid, "John", 5)

	got, ok := s.LookupDerived(qid, "John")
	require.True(t, ok)
	assert.Equal(t, domain.Revision(1), got.ChangedAt)
	assert.Equal(t, domain.Revision(5), got.VerifiedAt)
	assert.Equal(t, "B", got.Value)
}

func TestStore_ApplyEarlyExit_RetainsOldValue(t *testing.T) {
	s := store.New()
	qid := domain.NewQueryID(domain.KindDerived, "parity", "(int)->int")
	s.InstallDerived(qid, 0, domain.DerivedEntry{Value: 1, ChangedAt: 1, VerifiedAt: 1})

	newDeps := []domain.DependencyKey{{Query: domain.NewQueryID(domain.KindInput, "x", "scalar:int")}}
	s.ApplyEarlyExit(qid, 0, newDeps, 2)

	got, ok := s.LookupDerived(qid, 0)
	require.True(t, ok)
	assert.Equal(t, 1, got.Value, "retains the stale value deliberately")
	assert.Equal(t, domain.Revision(1), got.ChangedAt)
	assert.Equal(t, domain.Revision(2), got.VerifiedAt)
	assert.Equal(t, newDeps, got.Dependencies)
}

func TestStore_SeedInput_DoesNotAdvanceRevision(t *testing.T) {
	s := store.New()
	k := scalarKey("x")
	s.SeedInput(k, 42)
	assert.Equal(t, domain.Revision(0), s.CurrentRevision())

	got, ok := s.LookupInput(k)
	require.True(t, ok)
	assert.Equal(t, 42, got.Value)
	assert.Equal(t, domain.Revision(0), got.ChangedAt)
}

func mapInputKey(name string, arg any) domain.DependencyKey {
	return domain.DependencyKey{Query: domain.NewQueryID(domain.KindInput, name, "map[string]float64"), Args: arg}
}

func TestStore_ClearInputFamily_RemovesAllAndAdvancesOnce(t *testing.T) {
	s := store.New()
	s.SetInput(mapInputKey("grades", "John"), 3.25, domain.ValueEqual)
	s.SetInput(mapInputKey("grades", "Jane"), 3.8, domain.ValueEqual)
	require.Equal(t, domain.Revision(2), s.CurrentRevision())

	qid := domain.NewQueryID(domain.KindInput, "grades", "map[string]float64")
	deleted := s.ClearInputFamily(qid)
	assert.Equal(t, 2, deleted)
	assert.Equal(t, domain.Revision(3), s.CurrentRevision())

	_, ok := s.LookupInput(mapInputKey("grades", "John"))
	assert.False(t, ok)
	_, ok = s.LookupInput(mapInputKey("grades", "Jane"))
	assert.False(t, ok)
}

func TestStore_ClearInputFamily_NoOpOnEmptyFamily(t *testing.T) {
	s := store.New()
	qid := domain.NewQueryID(domain.KindInput, "grades", "map[string]float64")
	deleted := s.ClearInputFamily(qid)
	assert.Equal(t, 0, deleted)
	assert.Equal(t, domain.Revision(0), s.CurrentRevision())
}

func TestStore_ClearInputFamily_PanicsWhileDerivedActive(t *testing.T) {
	s := store.New()
	s.SetInput(mapInputKey("grades", "John"), 3.25, domain.ValueEqual)
	qid := domain.NewQueryID(domain.KindInput, "grades", "map[string]float64")

	s.BeginDerived()
	defer s.EndDerived()

	assert.PanicsWithValue(t, domain.ErrInputMutationDuringComputation, func() {
		s.ClearInputFamily(qid)
	})
}

func TestStore_InputArgs(t *testing.T) {
	s := store.New()
	s.SetInput(mapInputKey("grades", "John"), 3.25, domain.ValueEqual)
	s.SetInput(mapInputKey("grades", "Jane"), 3.8, domain.ValueEqual)

	qid := domain.NewQueryID(domain.KindInput, "grades", "map[string]float64")
	args := s.InputArgs(qid)
	assert.ElementsMatch(t, []any{"John", "Jane"}, args)
}

func TestStore_CachedArgs(t *testing.T) {
	s := store.New()
	qid := domain.NewQueryID(domain.KindDerived, "letter", "(string)->string")
	s.InstallDerived(qid, "John", domain.DerivedEntry{Value: "B"})
	s.InstallDerived(qid, "Jane", domain.DerivedEntry{Value: "A"})

	args := s.CachedArgs(qid)
	assert.ElementsMatch(t, []any{"John", "Jane"}, args)
}
