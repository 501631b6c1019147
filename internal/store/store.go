// Package store implements the revision-versioned Cache Store: the single
// shared mutable resource of the engine. It owns the Revision Clock, the
// derived_active_count guard, and the maps from (QueryID, args) to cached
// entries.
package store

import (
	"sync"

	"go.trai.ch/delta/internal/core/domain"
)

// Store is safe for concurrent use. All structural mutations - map-of-maps
// insertion, per-map insertion, entry installation, and in-place timestamp
// updates on existing entries - happen under mu. Reads of a DerivedEntry's
// own fields that occur outside the lock are only permitted while a derived
// computation is active elsewhere: the input write path panics while
// derived_active_count > 0, which excludes concurrent mutation.
type Store struct {
	mu          sync.Mutex
	revision    domain.Revision
	activeCount int

	inputs  map[domain.DependencyKey]*domain.InputEntry
	derived map[domain.QueryID]map[any]*domain.DerivedEntry
}

// New creates an empty Store at revision 0.
func New() *Store {
	return &Store{
		inputs:  make(map[domain.DependencyKey]*domain.InputEntry),
		derived: make(map[domain.QueryID]map[any]*domain.DerivedEntry),
	}
}

// CurrentRevision returns the current revision. While any derived
// computation is active (derived_active_count > 0), concurrent callers all
// observe the same value, since input writes are excluded for the duration.
func (s *Store) CurrentRevision() domain.Revision {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// BeginDerived increments derived_active_count. It must be paired with a
// deferred EndDerived on every exit path, including panics.
func (s *Store) BeginDerived() {
	s.mu.Lock()
	s.activeCount++
	s.mu.Unlock()
}

// EndDerived decrements derived_active_count.
func (s *Store) EndDerived() {
	s.mu.Lock()
	s.activeCount--
	s.mu.Unlock()
}

// SeedInput installs initial input contents at revision 0, bypassing the
// normal write path: registration of initial contents is not itself a
// "write" and must not advance the clock.
func (s *Store) SeedInput(key domain.DependencyKey, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs[key] = &domain.InputEntry{Value: value, ChangedAt: 0}
}

// SetInput writes an input value. equal is the value-equality predicate;
// if the stored value already equals value, the write is a no-op and no
// guard is even consulted. Otherwise, a derived computation being active
// is a programmer error and panics with ErrInputMutationDuringComputation.
func (s *Store) SetInput(key domain.DependencyKey, value any, equal func(a, b any) bool) (changed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.inputs[key]; ok && equal(existing.Value, value) {
		return false
	}
	if s.activeCount > 0 {
		panic(domain.ErrInputMutationDuringComputation)
	}
	s.revision++
	s.inputs[key] = &domain.InputEntry{Value: value, ChangedAt: s.revision}
	return true
}

// DeleteInput implements the input delete path. Deletion always advances
// the revision: there is no equality-based elision for removal.
func (s *Store) DeleteInput(key domain.DependencyKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeCount > 0 {
		panic(domain.ErrInputMutationDuringComputation)
	}
	s.revision++
	delete(s.inputs, key)
}

// LookupInput returns the InputEntry for key, or false if it was never set
// or has been deleted.
func (s *Store) LookupInput(key domain.DependencyKey) (domain.InputEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.inputs[key]
	if !ok {
		return domain.InputEntry{}, false
	}
	return *entry, true
}

// LookupDerived returns a snapshot of the DerivedEntry for (qid, args), or
// false on miss.
func (s *Store) LookupDerived(qid domain.QueryID, args any) (domain.DerivedEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inner, ok := s.derived[qid]
	if !ok {
		return domain.DerivedEntry{}, false
	}
	entry, ok := inner[args]
	if !ok {
		return domain.DerivedEntry{}, false
	}
	return entry.Snapshot(), true
}

// InstallDerived creates or wholesale-replaces the DerivedEntry for
// (qid, args), lazily creating the per-QueryID map on first reference.
func (s *Store) InstallDerived(qid domain.QueryID, args any, entry domain.DerivedEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inner, ok := s.derived[qid]
	if !ok {
		inner = make(map[any]*domain.DerivedEntry)
		s.derived[qid] = inner
	}
	inner[args] = &entry
}

// TouchVerified upgrades an existing entry's VerifiedAt to revision, leaving
// Value, Dependencies and ChangedAt untouched (the "possibly-valid" path:
// every recorded dependency's changed_at was confirmed <= VerifiedAt).
func (s *Store) TouchVerified(qid domain.QueryID, args any, revision domain.Revision) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if inner, ok := s.derived[qid]; ok {
		if entry, ok := inner[args]; ok {
			entry.VerifiedAt = revision
		}
	}
}

// ApplyEarlyExit upgrades VerifiedAt and replaces Dependencies on an
// existing entry while deliberately retaining the old Value - Early-Exit
// Part 2. Retaining the stale value surfaces bugs in over-permissive
// user-supplied equality predicates: if the predicate is wrong, the cached
// value silently diverges from a fresh recomputation instead of disguising
// the bug.
func (s *Store) ApplyEarlyExit(qid domain.QueryID, args any, deps []domain.DependencyKey, revision domain.Revision) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if inner, ok := s.derived[qid]; ok {
		if entry, ok := inner[args]; ok {
			entry.VerifiedAt = revision
			entry.Dependencies = deps
			return
		}
	}
}

// CachedArgs returns the argument tuples cached for qid, in no particular
// order. Intended for introspection only.
func (s *Store) CachedArgs(qid domain.QueryID) []any {
	s.mu.Lock()
	defer s.mu.Unlock()

	inner := s.derived[qid]
	args := make([]any, 0, len(inner))
	for a := range inner {
		args = append(args, a)
	}
	return args
}

// InputArgs returns the argument tuples currently holding a live input entry
// under qid, in no particular order. Intended for introspection and for the
// empty_input_map bulk-clear path.
func (s *Store) InputArgs(qid domain.QueryID) []any {
	s.mu.Lock()
	defer s.mu.Unlock()

	args := make([]any, 0)
	for key := range s.inputs {
		if key.Query == qid {
			args = append(args, key.Args)
		}
	}
	return args
}

// ClearInputFamily removes every live input entry under qid in one step,
// advancing the revision at most once regardless of how many entries
// existed. It is the bulk counterpart of DeleteInput used by
// empty_input_map.
func (s *Store) ClearInputFamily(qid domain.QueryID) (deleted int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeCount > 0 {
		panic(domain.ErrInputMutationDuringComputation)
	}

	var toDelete []domain.DependencyKey
	for key := range s.inputs {
		if key.Query == qid {
			toDelete = append(toDelete, key)
		}
	}
	if len(toDelete) == 0 {
		return 0
	}

	s.revision++
	for _, key := range toDelete {
		delete(s.inputs, key)
	}
	return len(toDelete)
}
