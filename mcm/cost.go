package mcm

import (
	"errors"
	"math"
	"math/bits"
)

// Cost counts scalar multiplications.
type Cost uint64

// MaxCost is where cost arithmetic saturates. A chain whose cheapest order
// reaches it is reported as ErrCostOverflow.
const MaxCost = Cost(math.MaxUint64)

var ErrCostOverflow = errors.New("cost overflows the representable range")

// CombineCost is the cost of multiplying a matrix of shape x by one of
// shape y: x.Rows * x.Cols * y.Cols, saturating at MaxCost.
// It panics if the shapes are not chainable.
func CombineCost(x, y Shape) Cost {
	mustBeChainable(x, y)
	return mulCost(mulCost(Cost(x.Rows), x.Cols), y.Cols)
}

func addCost(a, b Cost) Cost {
	sum, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 {
		return MaxCost
	}
	return Cost(sum)
}

func mulCost(a Cost, b uint64) Cost {
	hi, lo := bits.Mul64(uint64(a), b)
	if hi != 0 {
		return MaxCost
	}
	return Cost(lo)
}
