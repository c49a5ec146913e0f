package purefn

import (
	"github.com/google/uuid"

	"github.com/on-the-ground/tableize_go/pure"
)

func TableizeI1O1[I1 pure.ComparableOrStringer, O1 any](
	pureFn func(I1) O1,
) func(I1) O1 {
	tableized := tableize(
		func(args ...pure.ComparableOrStringer) O1 {
			return pureFn(args[0].(I1))
		},
	)
	return func(i1 I1) O1 {
		return tableized(i1)
	}
}

func TableizeI2O1[I1, I2 pure.ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
) func(I1, I2) O1 {
	tableized := tableize(
		func(args ...pure.ComparableOrStringer) O1 {
			return pureFn(args[0].(I1), args[1].(I2))
		},
	)
	return func(i1 I1, i2 I2) O1 {
		return tableized(i1, i2)
	}
}

func TableizeI3O1[I1, I2, I3 pure.ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3) O1,
) func(I1, I2, I3) O1 {
	tableized := tableize(
		func(args ...pure.ComparableOrStringer) O1 {
			return pureFn(args[0].(I1), args[1].(I2), args[2].(I3))
		},
	)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return tableized(i1, i2, i3)
	}
}

func TableizeI4O1[I1, I2, I3, I4 pure.ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
) func(I1, I2, I3, I4) O1 {
	tableized := tableize(
		func(args ...pure.ComparableOrStringer) O1 {
			return pureFn(args[0].(I1), args[1].(I2), args[2].(I3), args[3].(I4))
		},
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return tableized(i1, i2, i3, i4)
	}
}

// newIdentity gives every tableized function its own namespace.
func newIdentity() pure.Identity {
	return pure.Identity("purefn." + uuid.NewString())
}

func tableize[O any](
	pureFn func(...pure.ComparableOrStringer) O,
) func(...pure.ComparableOrStringer) O {
	memo := pure.NewTable[O](nil)
	identity := newIdentity()
	return func(args ...pure.ComparableOrStringer) O {
		// pure functions cannot fail, so the error is always nil
		v, _ := memo.LookupOrCompute(identity, pure.KeyOf(args...), func() (O, error) {
			return pureFn(args...), nil
		})
		return v
	}
}
