package mcm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrEmptySequence = errors.New("empty sequence")

// Sequence is a chain of shapes where each shape's cols equals the next
// shape's rows.
//
// Every sequence built by NewSequence carries its own identity, so memoized
// subranges of two sequences never collide even when their bounds do.
type Sequence struct {
	id     uuid.UUID
	shapes []Shape
}

// NewSequence copies shapes into a new sequence after checking that the
// chain is non-empty and every consecutive pair is chainable.
func NewSequence(shapes ...Shape) (Sequence, error) {
	if len(shapes) == 0 {
		return Sequence{}, ErrEmptySequence
	}
	for i := 1; i < len(shapes); i++ {
		if !Chainable(shapes[i-1], shapes[i]) {
			return Sequence{}, fmt.Errorf(
				"%w: %v at index %d, %v at index %d",
				ErrNotChainable, shapes[i-1], i-1, shapes[i], i,
			)
		}
	}
	return Sequence{
		id:     uuid.New(),
		shapes: append([]Shape(nil), shapes...),
	}, nil
}

// MustNewSequence is the panic-on-failure variant of NewSequence.
func MustNewSequence(shapes ...Shape) Sequence {
	seq, err := NewSequence(shapes...)
	if err != nil {
		panic(err)
	}
	return seq
}

func (s Sequence) ID() uuid.UUID { return s.id }

func (s Sequence) Len() int { return len(s.shapes) }

func (s Sequence) At(i int) Shape { return s.shapes[i] }

// Shapes returns a copy of the chain.
func (s Sequence) Shapes() []Shape {
	return append([]Shape(nil), s.shapes...)
}

// ShapeOf returns the shape of the product of the subrange [first, last).
func (s Sequence) ShapeOf(first, last int) Shape {
	return Shape{Rows: s.shapes[first].Rows, Cols: s.shapes[last-1].Cols}
}

// String renders the chain as tab-separated shapes.
func (s Sequence) String() string {
	parts := make([]string, len(s.shapes))
	for i, shape := range s.shapes {
		parts[i] = shape.String()
	}
	return strings.Join(parts, "\t")
}
