// Package pure provides the memo table behind tableized pure functions.
//
// A Table maps (function identity, argument tuple) to the value the function
// returned for those arguments. Each distinct pair is computed at most once:
//
//	var fib func(n int) (int, error)
//	fib = func(n int) (int, error) {
//	    return table.LookupOrCompute("fib", pure.KeyOf(n), func() (int, error) {
//	        if n <= 1 {
//	            return n, nil
//	        }
//	        a, _ := fib(n - 1)
//	        b, _ := fib(n - 2)
//	        return a + b, nil
//	    })
//	}
//
// The table is an explicit object: whoever creates it decides how long its
// entries live. Nothing is evicted while it is reachable.
//
// Backing stores:
//   - Trie: nested hash maps, one level per argument (default).
//   - RadixStore: an immutable radix tree ordered by encoded key.
//
// SyncTable adds sharding and single-flight for concurrent callers.
//
// WARNING: only memoize referentially transparent functions.
package pure
