// Package purefn provides high-level memoization utilities for pure functions.
//
// Tableize is not just a utility to add memoization.
// Tableize is a tool that *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// The Tableize family memoizes pure function calls by their input values:
// every distinct argument tuple is computed at most once for the lifetime of
// the returned function. Each tableized function owns its own pure.Table
// under its own identity, so two tableized functions never share entries.
//
// Recursive functions are tableized by letting the body call the tableized
// value, which turns an exponential recursion into a polynomial one:
//
//	var fib func(int) int
//	fib = purefn.TableizeI1O1(func(n int) int {
//	    if n <= 1 {
//	        return n
//	    }
//	    return fib(n-1) + fib(n-2)
//	})
//
// Features:
//   - TableizeI1O1 to TableizeI4O2: typed, generic memoizers for common arities.
//   - Unbounded table, entries are never evicted.
//   - fmt.Stringer fallback for arguments that are not comparable.
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc).
// Tableized functions are not safe for concurrent use.
package purefn
