package pure

// Stats counts the traffic of a table.
type Stats struct {
	Hits     int // lookups answered from the store
	Misses   int // compute invocations
	Failures int // compute invocations that returned an error or panicked
	Entries  int // entries currently stored
}

// Table memoizes calls of pure functions, keyed by the identity of the
// function and the full argument tuple of the call.
//
// Entries are written once and never updated or evicted; the table lives as
// long as its owner keeps it. Table is not safe for concurrent use, see
// SyncTable. compute may call back into the same table.
type Table[O any] struct {
	store Store[O]
	stats Stats
}

// NewTable returns a table backed by store, or by a Trie when store is nil.
func NewTable[O any](store Store[O]) *Table[O] {
	return &Table[O]{store: normalizeStore(store)}
}

// LookupOrCompute returns the value stored for (identity, keys), or runs
// compute, stores its result and returns it.
//
// A failed compute leaves no entry behind: the error (or panic) propagates
// to the caller and the next call with the same key runs compute again.
func (t *Table[O]) LookupOrCompute(
	identity Identity,
	keys Key,
	compute func() (O, error),
) (O, error) {
	if v, ok := t.store.Load(identity, keys); ok {
		t.stats.Hits++
		return v, nil
	}

	t.stats.Misses++
	completed := false
	defer func() {
		if !completed {
			t.stats.Failures++
		}
	}()

	v, err := compute()
	if err != nil {
		var zero O
		return zero, err
	}
	t.store.Store(identity, keys, v)
	completed = true
	return v, nil
}

// Load returns the stored value without computing anything.
func (t *Table[O]) Load(identity Identity, keys Key) (O, bool) {
	return t.store.Load(identity, keys)
}

func (t *Table[O]) Stats() Stats {
	s := t.stats
	s.Entries = t.store.Len()
	return s
}

func normalizeStore[O any](store Store[O]) Store[O] {
	if store == nil {
		return NewTrie[O]()
	}
	return store
}
