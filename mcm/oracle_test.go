package mcm_test

import (
	"math/big"

	"github.com/on-the-ground/tableize_go/mcm"
)

// bruteForce enumerates every parenthesization of shapes and returns the
// cheapest total cost, computed in big.Int so it cannot overflow.
func bruteForce(shapes []mcm.Shape) *big.Int {
	var best *big.Int
	for _, c := range allCosts(shapes, 0, len(shapes)) {
		if best == nil || c.Cmp(best) < 0 {
			best = c
		}
	}
	return best
}

func allCosts(shapes []mcm.Shape, first, last int) []*big.Int {
	if last-first == 1 {
		return []*big.Int{big.NewInt(0)}
	}
	var out []*big.Int
	for middle := first + 1; middle < last; middle++ {
		rows := new(big.Int).SetUint64(shapes[first].Rows)
		inner := new(big.Int).SetUint64(shapes[middle-1].Cols)
		cols := new(big.Int).SetUint64(shapes[last-1].Cols)
		combine := new(big.Int).Mul(rows, inner)
		combine.Mul(combine, cols)
		for _, l := range allCosts(shapes, first, middle) {
			for _, r := range allCosts(shapes, middle, last) {
				c := new(big.Int).Add(l, r)
				out = append(out, c.Add(c, combine))
			}
		}
	}
	return out
}

func shapesOf(dims ...uint64) []mcm.Shape {
	shapes := make([]mcm.Shape, len(dims)-1)
	for i := range shapes {
		shapes[i] = mcm.Shape{Rows: dims[i], Cols: dims[i+1]}
	}
	return shapes
}

var fixedProblems = map[string][]mcm.Shape{
	"single":    shapesOf(7, 3),
	"pair":      shapesOf(2, 3, 4),
	"example":   shapesOf(10, 30, 5, 60),
	"four":      shapesOf(40, 5, 60, 8, 100),
	"ascending": shapesOf(1, 2, 3, 4, 5, 6),
	"textbook":  shapesOf(30, 35, 15, 5, 10, 20, 25),
	"mixed":     shapesOf(5, 10, 3, 12, 5, 50, 6),
	"uniform":   shapesOf(4, 4, 4, 4, 4, 4, 4, 4),
}
