package handlers

import (
	"context"
	"sync"

	effectmodel "github.com/on-the-ground/tableize_go/effects/internal/model"
)

// --- common interface ---

type WorkerDispatcher[T any] interface {
	GetChannelOf(msg T) chan T
	// Done is closed once every worker has drained its queue and exited.
	Done() <-chan struct{}
}

// startWorkers runs one goroutine per channel until ctx is done.
// On cancellation a worker closes its channel, so late senders fail loudly
// instead of blocking, then handles everything that made it into the buffer.
func startWorkers[T any](
	ctx context.Context,
	numWorkers, bufferSize int,
	handleFn func(context.Context, T),
) ([]chan T, <-chan struct{}) {
	channels := make([]chan T, numWorkers)
	var running, ready sync.WaitGroup
	for i := range channels {
		ch := make(chan T, bufferSize)
		channels[i] = ch
		running.Add(1)
		ready.Add(1)
		go func() {
			defer running.Done()
			ready.Done()
			for {
				select {
				case msg := <-ch:
					handleFn(ctx, msg)
				case <-ctx.Done():
					close(ch)
					for msg := range ch {
						handleFn(ctx, msg)
					}
					return
				}
			}
		}()
	}
	ready.Wait()

	done := make(chan struct{})
	go func() {
		running.Wait()
		close(done)
	}()
	return channels, done
}

// --- single queue ---

type singleQueue[T any] struct {
	effectCh chan T
	done     <-chan struct{}
}

func (q singleQueue[T]) GetChannelOf(_ T) chan T {
	return q.effectCh
}

func (q singleQueue[T]) Done() <-chan struct{} {
	return q.done
}

func NewSingleQueue[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	channels, done := startWorkers(ctx, 1, bufferSize, handleFn)
	return singleQueue[T]{effectCh: channels[0], done: done}
}

// --- partitioned queue ---

// partitionedQueue sends messages with the same partition key to the same
// worker, so they are handled in order.
type partitionedQueue[T effectmodel.Partitionable] struct {
	effectChs []chan T
	done      <-chan struct{}
}

func (pq partitionedQueue[T]) GetChannelOf(msg T) chan T {
	return pq.effectChs[getIndexByHash(msg, len(pq.effectChs))]
}

func (pq partitionedQueue[T]) Done() <-chan struct{} {
	return pq.done
}

func NewPartitionedQueue[T effectmodel.Partitionable](
	ctx context.Context,
	numWorkers, bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	channels, done := startWorkers(ctx, numWorkers, bufferSize, handleFn)
	return partitionedQueue[T]{effectChs: channels, done: done}
}
