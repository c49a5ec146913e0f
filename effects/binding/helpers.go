package binding

import (
	"context"
	"errors"

	"github.com/on-the-ground/tableize_go/shared/helper"
)

// GetFromBindingEffect fetches a typed value from the binding effect.
// Returns the zero value and an error if the key is missing or the type doesn't match.
func GetFromBindingEffect[T any](ctx context.Context, key string) (T, error) {
	return helper.GetTypedValueOf[T](func() (any, error) {
		return Effect(ctx, key)
	})
}

// GetOrDefault is GetFromBindingEffect falling back to def when key is not bound anywhere.
// A bound value of the wrong type is still an error.
func GetOrDefault[T any](ctx context.Context, key string, def T) (T, error) {
	v, err := Effect(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return def, nil
		}
		var zero T
		return zero, err
	}
	return helper.GetTypedValueOf[T](func() (any, error) { return v, nil })
}

// MustGetFromBindingEffect is the panic-on-failure variant of GetFromBindingEffect.
func MustGetFromBindingEffect[T any](ctx context.Context, key string) T {
	return helper.MustGetTypedValue[T](func() (any, error) {
		return Effect(ctx, key)
	})
}
