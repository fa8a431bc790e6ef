package property

import (
	"runtime"
	"sync"
	"weak"
)

// Store associates owners with their per-property value tables.
//
// The association is weak: the store holds no strong reference to any owner,
// so an owner that is otherwise unreachable is collected normally and its
// table is dropped by a runtime cleanup. Construct one with [NewStore], or
// share the process-wide [DefaultStore].
type Store struct {
	// mu guards tables only against the runtime's cleanup goroutine.
	// Get/Set/Coerce themselves follow the package's single-thread contract.
	mu     sync.Mutex
	tables map[any]*table
}

// table holds one owner's values, keyed by descriptor id.
type table struct {
	values map[uint64]any
}

// NewStore creates an empty property store.
// Tests typically give each descriptor under test a fresh store so that
// owners from other tests cannot bleed through the shared default.
func NewStore() *Store {
	return &Store{tables: make(map[any]*table)}
}

var defaultStore = NewStore()

// DefaultStore returns the process-wide store used by descriptors that were
// not configured with one.
func DefaultStore() *Store {
	return defaultStore
}

// lookupTable returns owner's table, creating and registering it on first
// access. It never returns nil.
func lookupTable[O any](s *Store, owner *O) *table {
	key := weak.Make(owner)
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.tables[key]
	if t == nil {
		t = &table{values: make(map[uint64]any)}
		s.tables[key] = t
		runtime.AddCleanup(owner, func(k weak.Pointer[O]) {
			s.mu.Lock()
			delete(s.tables, k)
			s.mu.Unlock()
		}, key)
	}
	return t
}

// Clear removes every stored property value for owner, across all
// descriptors backed by s. No Changed callback and no notification fires,
// even though the next Get will recompute defaults. Clearing an owner with
// no stored values is a no-op.
func Clear[O any](s *Store, owner *O) {
	s.mu.Lock()
	delete(s.tables, weak.Make(owner))
	s.mu.Unlock()
}
