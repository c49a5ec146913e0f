// Package mcm computes the cheapest order in which to multiply a chain of
// matrices, known only by their shapes.
//
// The solver splits a chain [first, last) at every interior point, asks for
// the cost of both halves and adds the cost of multiplying the two resulting
// shapes. Every half is looked up in a pure.Table keyed by the identity of
// the sequence and the bounds of the half, so each subrange is solved once:
// O(n³) time and O(n²) entries instead of Catalan-many recursive calls.
//
//	seq := mcm.ExampleProblem()
//	cost, err := mcm.NewSolver().Solve(seq) // 4500
//
// Malformed chains are rejected by NewSequence. Multiplying shapes whose
// inner dimensions differ is a programming error and panics.
package mcm
