package async

import (
	"context"
	"time"
)

// Future represents the result of a computation scheduled on a Pool.
type Future[T any] struct {
	result T
	err    error
	done   chan struct{}
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// complete stores the result exactly once and unblocks all waiters.
// Must be called at most once per future.
func (f *Future[T]) complete(result T, err error) {
	f.result = result
	f.err = err
	close(f.done)
}

// Await blocks until the computation completes and returns its result and error.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout blocks until the computation completes or the timeout elapses.
// On timeout it returns ErrAwaitTimeout; the underlying computation keeps running
// and its result remains available to later Await calls.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrAwaitTimeout
	}
}

// AwaitContext blocks until the computation completes or ctx is done.
func (f *Future[T]) AwaitContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Resolved returns an already-completed future holding the given result.
// Useful for fast paths that skip scheduling entirely.
func Resolved[T any](result T, err error) *Future[T] {
	f := newFuture[T]()
	f.complete(result, err)
	return f
}
