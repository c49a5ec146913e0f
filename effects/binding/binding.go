package binding

import (
	"context"
	"errors"
	"fmt"

	"github.com/on-the-ground/tableize_go/effects"
	effectmodel "github.com/on-the-ground/tableize_go/effects/internal/model"
)

var ErrKeyNotFound = errors.New("binding key not found")

// Payload is the key looked up by the binding effect.
type Payload string

func (bp Payload) PartitionKey() string {
	return string(bp)
}

// WithEffectHandler registers a resumable, partitionable handler answering
// lookups from bindingMap. Keys missing locally are delegated to the handler
// of an upper scope, if any.
//
// The returned function closes the handler; use the context it returns afterwards.
func WithEffectHandler(
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	bindingMap map[string]any,
) (context.Context, func() context.Context) {
	bh := bindingHandler{
		bindingMap: normalizeBindingMap(bindingMap),
	}
	return effects.WithResumablePartitionableEffectHandler[Payload, any](
		ctx,
		config,
		effectmodel.EffectBinding,
		bh.handle,
	)
}

// Effect looks key up through the binding handler in ctx.
// Panics if no binding handler is registered.
func Effect(ctx context.Context, key string) (any, error) {
	resultCh := effects.PerformResumableEffect[Payload, any](ctx, effectmodel.EffectBinding, Payload(key))
	select {
	case res := <-resultCh:
		return res.Value, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func normalizeBindingMap(bm map[string]any) map[string]any {
	if bm == nil {
		bm = make(map[string]any)
	}
	return bm
}

// delegate asks the scope above the handler. A missing upper handler ends
// the chain with ErrKeyNotFound.
func delegate(upperCtx context.Context, key string) (res any, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("%w: %s", ErrKeyNotFound, key)
		}
	}()
	return Effect(upperCtx, key)
}

type bindingHandler struct {
	bindingMap map[string]any
}

// handle runs on the handler's worker, whose context carries the upper scope.
func (bh bindingHandler) handle(ctx context.Context, payload Payload) (any, error) {
	key := string(payload)
	if v, ok := bh.bindingMap[key]; ok {
		return v, nil
	}
	return delegate(ctx, key)
}
