package async

import (
	"context"
	"sync"
	"sync/atomic"
)

// Pool schedules functions onto goroutines, optionally bounding how many run
// at once. The zero value is not usable; use NewPool.
//
// A nil *Pool is valid and behaves like an unbounded pool that is never
// closed, so callers can treat the pool as strictly optional.
type Pool struct {
	sem     chan struct{} // nil when unbounded
	wg      sync.WaitGroup
	closed  atomic.Bool
	closeMu sync.Mutex
}

// NewPool creates a pool that runs at most size functions concurrently.
// A size of zero or less means no limit, matching a plain "goroutine per
// task" scheduler.
func NewPool(size int) *Pool {
	p := &Pool{}
	if size > 0 {
		p.sem = make(chan struct{}, size)
	}
	return p
}

// Submit schedules fn on the pool and returns a Future for its result.
//
// The future completes with ErrPoolClosed if the pool was already closed, and
// with the context error if ctx is done before fn starts. Once fn has started
// it always runs to completion; cancellation is fn's own responsibility via
// the context it receives.
func Submit[T any](p *Pool, ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := newFuture[T]()

	var zero T
	if p != nil && !p.tryAdd() {
		f.complete(zero, ErrPoolClosed)
		return f
	}

	go func() {
		if p != nil {
			defer p.wg.Done()
		}

		if p != nil && p.sem != nil {
			select {
			case p.sem <- struct{}{}:
				defer func() { <-p.sem }()
			case <-ctx.Done():
				f.complete(zero, ctx.Err())
				return
			}
		} else {
			// Unbounded path still honors pre-cancelled contexts to avoid
			// doing work nobody will collect.
			select {
			case <-ctx.Done():
				f.complete(zero, ctx.Err())
				return
			default:
			}
		}

		result, err := fn(ctx)
		f.complete(result, err)
	}()

	return f
}

// tryAdd registers one in-flight task unless the pool is closed.
// The mutex orders registration against Close so Close cannot observe a
// half-registered task.
func (p *Pool) tryAdd() bool {
	p.closeMu.Lock()
	defer p.closeMu.Unlock()
	if p.closed.Load() {
		return false
	}
	p.wg.Add(1)
	return true
}

// Closed reports whether Close has been called.
func (p *Pool) Closed() bool {
	if p == nil {
		return false
	}
	return p.closed.Load()
}

// Close stops the pool from accepting new work and waits for in-flight
// functions to finish. It is idempotent and safe to call without ever having
// submitted anything.
func (p *Pool) Close() error {
	if p == nil {
		return nil
	}
	p.closeMu.Lock()
	alreadyClosed := p.closed.Swap(true)
	p.closeMu.Unlock()
	if alreadyClosed {
		return nil
	}
	p.wg.Wait()
	return nil
}

// Wait blocks until all currently in-flight functions have finished without
// closing the pool.
func (p *Pool) Wait() {
	if p == nil {
		return
	}
	p.wg.Wait()
}
