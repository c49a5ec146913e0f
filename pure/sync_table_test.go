package pure_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/on-the-ground/tableize_go/pure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncTable_SingleFlight(t *testing.T) {
	table := pure.NewSyncTable[int](4)
	var computes atomic.Int32
	release := make(chan struct{})

	const callers = 32
	results := make([]int, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := table.LookupOrCompute("slow", pure.KeyOf("k"), func() (int, error) {
				computes.Add(1)
				<-release
				return 99, nil
			})
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), computes.Load())
	for _, v := range results {
		assert.Equal(t, 99, v)
	}
	assert.Equal(t, 1, table.Stats().Entries)
	assert.Equal(t, 1, table.Stats().Misses)
}

type holder struct{ V any }

func TestSyncTable_LookalikeKeyDoesNotJoinFlight(t *testing.T) {
	table := pure.NewSyncTable[string](1)
	entered := make(chan struct{})
	release := make(chan struct{})

	first := make(chan string, 1)
	go func() {
		v, err := table.LookupOrCompute("fn", pure.KeyOf(holder{1}), func() (string, error) {
			close(entered)
			<-release
			return "int", nil
		})
		assert.NoError(t, err)
		first <- v
	}()
	<-entered

	second := make(chan string, 1)
	go func() {
		v, err := table.LookupOrCompute("fn", pure.KeyOf(holder{"1"}), func() (string, error) {
			return "string", nil
		})
		assert.NoError(t, err)
		second <- v
	}()

	select {
	case v := <-second:
		assert.Equal(t, "string", v)
	case <-time.After(time.Second):
		t.Fatal("a different key waited on another key's flight")
	}

	close(release)
	assert.Equal(t, "int", <-first)
	assert.Equal(t, pure.Stats{Misses: 2, Entries: 2}, table.Stats())
}

func TestSyncTable_SeparatorBytesInStrings(t *testing.T) {
	table := pure.NewSyncTable[string](4)
	for _, tc := range []struct {
		key  pure.Key
		want string
	}{
		{pure.KeyOf("a\x1estring\x1fb"), "one"},
		{pure.KeyOf("a", "b"), "two"},
		{pure.KeyOf("1:a"), "prefixed"},
		{pure.KeyOf("a"), "plain"},
	} {
		v, err := table.LookupOrCompute("fn", tc.key, func() (string, error) {
			return tc.want, nil
		})
		require.NoError(t, err)
		assert.Equal(t, tc.want, v)
	}
	assert.Equal(t, 4, table.Stats().Entries)
}

func TestSyncTable_DistinctKeysAcrossShards(t *testing.T) {
	table := pure.NewSyncTable[int](8)
	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := table.LookupOrCompute("square", pure.KeyOf(i), func() (int, error) {
				return i * i, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, i*i, v)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, table.Stats().Entries)
	v, ok := table.Load("square", pure.KeyOf(7))
	require.True(t, ok)
	assert.Equal(t, 49, v)
}

func TestSyncTable_FailedComputeIsRetried(t *testing.T) {
	table := pure.NewSyncTable[int](0)
	errBoom := errors.New("boom")

	_, err := table.LookupOrCompute("fn", pure.KeyOf(1), func() (int, error) { return 0, errBoom })
	assert.ErrorIs(t, err, errBoom)
	_, ok := table.Load("fn", pure.KeyOf(1))
	assert.False(t, ok)

	v, err := table.LookupOrCompute("fn", pure.KeyOf(1), func() (int, error) { return 5, nil })
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, pure.Stats{Misses: 2, Failures: 1, Entries: 1}, table.Stats())
}

func TestSyncTable_ReentrantCompute(t *testing.T) {
	table := pure.NewSyncTable[uint64](4)

	var fib func(n int) (uint64, error)
	fib = func(n int) (uint64, error) {
		if n <= 1 {
			return uint64(n), nil
		}
		return table.LookupOrCompute("fib", pure.KeyOf(n), func() (uint64, error) {
			a, _ := fib(n - 1)
			b, _ := fib(n - 2)
			return a + b, nil
		})
	}

	v, err := fib(50)
	require.NoError(t, err)
	assert.Equal(t, uint64(12586269025), v)
	assert.Equal(t, 49, table.Stats().Misses)
}
