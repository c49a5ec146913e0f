package binding_test

import (
	"context"
	"testing"

	"github.com/on-the-ground/tableize_go/effects/binding"
	"github.com/on-the-ground/tableize_go/effects/configkeys"
	effectmodel "github.com/on-the-ground/tableize_go/effects/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingEffect_LocalLookup(t *testing.T) {
	ctx, end := binding.WithEffectHandler(context.Background(), effectmodel.NewEffectScopeConfig(1, 2), map[string]any{
		configkeys.ConfigMCMSeed: uint64(7),
	})
	defer end()

	seed, err := binding.GetFromBindingEffect[uint64](ctx, configkeys.ConfigMCMSeed)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), seed)
}

func TestBindingEffect_DelegatesToUpperScope(t *testing.T) {
	upper, endUpper := binding.WithEffectHandler(context.Background(), effectmodel.NewEffectScopeConfig(1, 1), map[string]any{
		configkeys.ConfigMCMStore: "radix",
		configkeys.ConfigMCMSeed:  uint64(1),
	})
	defer endUpper()

	inner, endInner := binding.WithEffectHandler(upper, effectmodel.NewEffectScopeConfig(1, 1), map[string]any{
		configkeys.ConfigMCMSeed: uint64(2),
	})
	defer endInner()

	store := binding.MustGetFromBindingEffect[string](inner, configkeys.ConfigMCMStore)
	assert.Equal(t, "radix", store)

	seed := binding.MustGetFromBindingEffect[uint64](inner, configkeys.ConfigMCMSeed)
	assert.Equal(t, uint64(2), seed, "inner scope shadows upper")
}

func TestBindingEffect_MissingKey(t *testing.T) {
	ctx, end := binding.WithEffectHandler(context.Background(), effectmodel.NewEffectScopeConfig(1, 1), nil)
	defer end()

	_, err := binding.Effect(ctx, "config.absent")
	assert.ErrorIs(t, err, binding.ErrKeyNotFound)

	v, err := binding.GetOrDefault(ctx, "config.absent", 42)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestBindingEffect_TypeMismatch(t *testing.T) {
	ctx, end := binding.WithEffectHandler(context.Background(), effectmodel.NewEffectScopeConfig(1, 1), map[string]any{
		configkeys.ConfigMCMParallel: "four",
	})
	defer end()

	_, err := binding.GetFromBindingEffect[int](ctx, configkeys.ConfigMCMParallel)
	assert.Error(t, err)

	_, err = binding.GetOrDefault(ctx, configkeys.ConfigMCMParallel, 1)
	assert.Error(t, err)

	assert.Panics(t, func() {
		binding.MustGetFromBindingEffect[int](ctx, configkeys.ConfigMCMParallel)
	})
}

func TestBindingEffect_NoHandler(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = binding.Effect(context.Background(), configkeys.ConfigMCMSeed)
	})
}
