package mcm_test

import (
	"testing"

	"github.com/on-the-ground/tableize_go/mcm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape_Mul(t *testing.T) {
	x := mcm.Shape{Rows: 10, Cols: 30}
	y := mcm.Shape{Rows: 30, Cols: 5}

	assert.True(t, mcm.Chainable(x, y))
	assert.False(t, mcm.Chainable(y, x))
	assert.Equal(t, mcm.Shape{Rows: 10, Cols: 5}, x.Mul(y))
	assert.Equal(t, "(10,30)", x.String())
}

func TestShape_MulPanicsWhenNotChainable(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic on mismatched inner dimensions")
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, mcm.ErrNotChainable)
	}()
	mcm.Shape{Rows: 2, Cols: 3}.Mul(mcm.Shape{Rows: 4, Cols: 5})
}

func TestCombineCost(t *testing.T) {
	assert.Equal(t, mcm.Cost(1500), mcm.CombineCost(mcm.Shape{Rows: 10, Cols: 30}, mcm.Shape{Rows: 30, Cols: 5}))
	assert.Equal(t, mcm.MaxCost, mcm.CombineCost(mcm.Shape{Rows: 1 << 40, Cols: 1 << 20}, mcm.Shape{Rows: 1 << 20, Cols: 1 << 10}))
	assert.Panics(t, func() {
		mcm.CombineCost(mcm.Shape{Rows: 10, Cols: 30}, mcm.Shape{Rows: 5, Cols: 60})
	})
}

func TestNewSequence(t *testing.T) {
	seq, err := mcm.NewSequence(shapesOf(10, 30, 5, 60)...)
	require.NoError(t, err)

	assert.Equal(t, 3, seq.Len())
	assert.Equal(t, mcm.Shape{Rows: 30, Cols: 5}, seq.At(1))
	assert.Equal(t, mcm.Shape{Rows: 10, Cols: 5}, seq.ShapeOf(0, 2))
	assert.Equal(t, mcm.Shape{Rows: 30, Cols: 60}, seq.ShapeOf(1, 3))
	assert.Equal(t, "(10,30)\t(30,5)\t(5,60)", seq.String())
}

func TestNewSequence_Rejects(t *testing.T) {
	_, err := mcm.NewSequence()
	assert.ErrorIs(t, err, mcm.ErrEmptySequence)

	_, err = mcm.NewSequence(
		mcm.Shape{Rows: 10, Cols: 30},
		mcm.Shape{Rows: 30, Cols: 5},
		mcm.Shape{Rows: 6, Cols: 60},
	)
	assert.ErrorIs(t, err, mcm.ErrNotChainable)
	assert.Contains(t, err.Error(), "index 2")

	assert.Panics(t, func() {
		mcm.MustNewSequence(mcm.Shape{Rows: 1, Cols: 2}, mcm.Shape{Rows: 3, Cols: 4})
	})
}

func TestSequence_OwnsItsShapes(t *testing.T) {
	shapes := shapesOf(2, 3, 4)
	seq := mcm.MustNewSequence(shapes...)

	shapes[0].Rows = 99
	assert.Equal(t, uint64(2), seq.At(0).Rows)

	copied := seq.Shapes()
	copied[1].Cols = 99
	assert.Equal(t, uint64(4), seq.At(1).Cols)
}

func TestSequence_IdentityIsPerInstance(t *testing.T) {
	a := mcm.MustNewSequence(shapesOf(2, 3, 4)...)
	b := mcm.MustNewSequence(shapesOf(2, 3, 4)...)

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, a.ID(), a.ID())
}
