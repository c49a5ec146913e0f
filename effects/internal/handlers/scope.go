package handlers

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrHandlerClosed = errors.New("effect handler is closed")

// effectScope owns the workers of one handler.
//
// It is meant to be opened and closed by a single goroutine; Close is not
// synchronized. Performing effects on it from many goroutines is fine.
type effectScope[T any] struct {
	EffectId   string
	dispatcher WorkerDispatcher[T]
	closeFn    func()
	closed     bool
}

// Close stops the workers once their queues are drained, then runs the
// teardown. Calling it again does nothing.
func (es *effectScope[T]) Close() {
	if !es.closed {
		es.closeFn()
		es.closed = true
	}
}

func newEffectScope[T any](
	ctx context.Context,
	start func(context.Context) WorkerDispatcher[T],
	teardown func(),
) *effectScope[T] {
	ctx, cancelFn := context.WithCancel(ctx)
	dispatcher := start(ctx)
	return &effectScope[T]{
		EffectId:   uuid.NewString(),
		dispatcher: dispatcher,
		closeFn: func() {
			cancelFn()
			<-dispatcher.Done()
			teardown()
		},
	}
}
