package handlers

import (
	"context"
)

func NewFireAndForgetHandler[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
	teardown func(),
) FireAndForgetHandler[T] {
	return FireAndForgetHandler[T]{
		effectScope: newEffectScope(
			ctx,
			func(ctx context.Context) WorkerDispatcher[T] {
				return NewSingleQueue(ctx, bufferSize, handleFn)
			},
			teardown,
		),
	}
}

type FireAndForgetHandler[T any] struct {
	*effectScope[T]
}

// FireAndForgetEffect queues payload without waiting for it to be handled.
// It reports false when the payload was dropped because ctx is done or the
// handler is closed.
func (ffh FireAndForgetHandler[T]) FireAndForgetEffect(ctx context.Context, payload T) (sent bool) {
	defer func() {
		if r := recover(); r != nil {
			sent = false
		}
	}()

	select {
	case <-ctx.Done():
		return false
	case ffh.dispatcher.GetChannelOf(payload) <- payload:
		return true
	}
}
