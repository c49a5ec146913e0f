package mcm

import (
	"errors"
	"fmt"
)

var ErrNotChainable = errors.New("shapes are not chainable")

// Shape is the (rows, cols) shape of one matrix.
type Shape struct {
	Rows uint64
	Cols uint64
}

// Chainable reports whether x can be multiplied by y.
func Chainable(x, y Shape) bool {
	return x.Cols == y.Rows
}

// Mul returns the shape of x times y.
// It panics if the shapes are not chainable.
func (x Shape) Mul(y Shape) Shape {
	mustBeChainable(x, y)
	return Shape{Rows: x.Rows, Cols: y.Cols}
}

func (x Shape) String() string {
	return fmt.Sprintf("(%d,%d)", x.Rows, x.Cols)
}

func mustBeChainable(x, y Shape) {
	if !Chainable(x, y) {
		panic(fmt.Errorf("%w: %v x %v", ErrNotChainable, x, y))
	}
}
