package effects

import effectmodel "github.com/on-the-ground/tableize_go/effects/internal/model"

type EffectScopeConfig = effectmodel.EffectScopeConfig

// NewEffectScopeConfig returns a handler scope config; non-positive values default to 1.
func NewEffectScopeConfig(bufferSize, numWorkers int) EffectScopeConfig {
	return effectmodel.NewEffectScopeConfig(bufferSize, numWorkers)
}
