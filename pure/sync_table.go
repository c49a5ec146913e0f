package pure

import (
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"
)

// SyncTable is the concurrent variant of Table.
//
// Keys are spread over shards by the xxhash of their encoding. Concurrent
// calls for the same key share a single compute (single-flight): it runs
// exactly once and every caller observes its result. Failures are not
// stored, as with Table.
type SyncTable[O any] struct {
	shards []*syncShard[O]

	hits     atomic.Int64
	misses   atomic.Int64
	failures atomic.Int64
}

type syncShard[O any] struct {
	mu     sync.Mutex
	store  *Trie[O]
	flight singleflight.Group
}

func (s *syncShard[O]) load(identity Identity, keys Key) (O, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Load(identity, keys)
}

func (s *syncShard[O]) put(identity Identity, keys Key, value O) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Store(identity, keys, value)
}

func (s *syncShard[O]) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Len()
}

// NewSyncTable returns a table split into numShards shards (at least one).
func NewSyncTable[O any](numShards int) *SyncTable[O] {
	if numShards <= 0 {
		numShards = 1
	}
	shards := make([]*syncShard[O], numShards)
	for i := range shards {
		shards[i] = &syncShard[O]{store: NewTrie[O]()}
	}
	return &SyncTable[O]{shards: shards}
}

func (t *SyncTable[O]) shardOf(flightKey string) *syncShard[O] {
	if len(t.shards) == 1 {
		return t.shards[0]
	}
	return t.shards[xxhash.Sum64String(flightKey)%uint64(len(t.shards))]
}

// LookupOrCompute has the semantics of Table.LookupOrCompute and may be
// called from any number of goroutines.
func (t *SyncTable[O]) LookupOrCompute(
	identity Identity,
	keys Key,
	compute func() (O, error),
) (O, error) {
	mustNotBeEmpty(keys)
	flightKey := string(encode(identity, keys))
	shard := t.shardOf(flightKey)

	if v, ok := shard.load(identity, keys); ok {
		t.hits.Add(1)
		return v, nil
	}

	raw, err, _ := shard.flight.Do(flightKey, func() (any, error) {
		// a flight for this key may have landed since the first load
		if v, ok := shard.load(identity, keys); ok {
			t.hits.Add(1)
			return v, nil
		}

		t.misses.Add(1)
		completed := false
		defer func() {
			if !completed {
				t.failures.Add(1)
			}
		}()

		v, err := compute()
		if err != nil {
			return nil, err
		}
		shard.put(identity, keys, v)
		completed = true
		return v, nil
	})
	if err != nil {
		var zero O
		return zero, err
	}
	v, _ := raw.(O)
	return v, nil
}

func (t *SyncTable[O]) Load(identity Identity, keys Key) (O, bool) {
	mustNotBeEmpty(keys)
	return t.shardOf(string(encode(identity, keys))).load(identity, keys)
}

func (t *SyncTable[O]) Stats() Stats {
	entries := 0
	for _, s := range t.shards {
		entries += s.len()
	}
	return Stats{
		Hits:     int(t.hits.Load()),
		Misses:   int(t.misses.Load()),
		Failures: int(t.failures.Load()),
		Entries:  entries,
	}
}
