package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/notifykit/notifykit/pkg/async"
	"github.com/notifykit/notifykit/pkg/logger"
)

// Dispatcher holds an ordered collection of channel senders and broadcasts
// each send request to all of them concurrently. It is safe for concurrent
// use; senders may be registered while sends are in flight.
type Dispatcher struct {
	mu      sync.RWMutex
	senders []Sender

	pool     *async.Pool
	ownsPool bool
	timeout  time.Duration
	logger   *slog.Logger

	disabled atomic.Bool
	closed   atomic.Bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for per-channel failure reporting.
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.logger = log
		}
	}
}

// WithPool injects the executor the fan-out tasks run on, typically to bound
// concurrency or share one pool across dispatchers. The caller keeps
// ownership: Close will not close an injected pool.
func WithPool(pool *async.Pool) Option {
	return func(d *Dispatcher) {
		if pool != nil {
			d.pool = pool
			d.ownsPool = false
		}
	}
}

// WithSenderTimeout bounds how long one sender may take before its task is
// abandoned and counted as a failed channel. Zero (the default) means no
// limit, so a hung sender blocks the whole broadcast.
func WithSenderTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// WithSenders registers senders at construction time, equivalent to calling
// Use immediately after New.
func WithSenders(senders ...Sender) Option {
	return func(d *Dispatcher) {
		for _, s := range senders {
			if s != nil {
				d.senders = append(d.senders, s)
			}
		}
	}
}

// New creates an enabled Dispatcher with no senders registered. Without
// WithPool it owns an unbounded pool that Close releases.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		pool:     async.NewPool(0),
		ownsPool: true,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Use appends senders to the registration list. Nil entries and empty calls
// are silently ignored. Registration order determines the order of
// CompositeOutcome.Outcomes for every subsequent Send.
func (d *Dispatcher) Use(senders ...Sender) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, s := range senders {
		if s != nil {
			d.senders = append(d.senders, s)
		}
	}
}

// Len reports the number of registered senders.
func (d *Dispatcher) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.senders)
}

// Enable resumes broadcasting after Disable.
func (d *Dispatcher) Enable() { d.disabled.Store(false) }

// Disable turns Send into a success no-op that invokes no sender. This is a
// feature-flag escape hatch, not an error path.
func (d *Dispatcher) Disable() { d.disabled.Store(true) }

// Disabled reports whether the dispatcher is currently disabled.
func (d *Dispatcher) Disabled() bool { return d.disabled.Load() }

// Send broadcasts subject and message to every registered sender
// concurrently, waits for all of them, and reduces the results.
//
// Per-channel failures are logged and excluded from the composite; Send
// returns an error only when every sender failed, and that error wraps
// ErrAllSendersFailed together with each underlying cause. A disabled
// dispatcher returns a successful empty composite without touching any
// sender; a dispatcher with no senders returns an unsuccessful composite
// (distinct cases, neither is an error).
//
// Outcomes are collected by awaiting the fan-out tasks in registration
// order, so their order is independent of completion timing.
func (d *Dispatcher) Send(ctx context.Context, subject, message string) (CompositeOutcome, error) {
	if d.closed.Load() {
		return CompositeOutcome{}, ErrDispatcherClosed
	}
	if d.disabled.Load() {
		return CompositeOutcome{Success: true, Summary: "disabled, no-op"}, nil
	}

	senders := d.snapshot()
	attempted := len(senders)
	if attempted == 0 {
		return CompositeOutcome{Summary: "no channels configured", Attempted: 0}, nil
	}

	futures := make([]*async.Future[Outcome], attempted)
	for i, s := range senders {
		futures[i] = async.Submit(d.pool, ctx, d.attempt(s, subject, message))
	}

	outcomes := make([]Outcome, 0, attempted)
	var failures []error
	for i, f := range futures {
		out, err := f.Await()
		if err != nil {
			d.logger.LogAttrs(ctx, slog.LevelWarn, "channel send failed",
				slog.Int("channel_index", i),
				logger.Error(err),
			)
			failures = append(failures, fmt.Errorf("channel %d: %w", i, err))
			continue
		}
		outcomes = append(outcomes, out)
	}

	if len(outcomes) == 0 {
		return CompositeOutcome{}, errors.Join(append([]error{ErrAllSendersFailed}, failures...)...)
	}

	delivered := 0
	for _, o := range outcomes {
		if o.Success {
			delivered++
		}
	}

	return CompositeOutcome{
		Success:   delivered == attempted,
		Outcomes:  outcomes,
		Summary:   summarize(delivered, attempted),
		Delivered: delivered,
		Attempted: attempted,
	}, nil
}

// SendAsync schedules Send and returns a future for its composite result.
// The coordinating task runs on its own goroutine so a fully occupied
// bounded pool cannot deadlock the join; the per-sender tasks still run on
// the dispatcher's pool. Abandoning the future does not retract sender tasks
// that were already dispatched.
func (d *Dispatcher) SendAsync(ctx context.Context, subject, message string) *async.Future[CompositeOutcome] {
	if d.closed.Load() {
		return async.Resolved(CompositeOutcome{}, ErrDispatcherClosed)
	}
	return async.Submit(nil, ctx, func(ctx context.Context) (CompositeOutcome, error) {
		return d.Send(ctx, subject, message)
	})
}

// AsSender adapts the dispatcher to the Sender contract so it can be
// registered inside another Dispatcher, grouping several channels behind one
// entry. The composite is flattened into a single Outcome; only total
// failure surfaces as the contract error.
func (d *Dispatcher) AsSender() Sender {
	return &groupSender{dispatcher: d}
}

// Close releases the dispatcher's worker pool and rejects further sends.
// It is idempotent and safe to call without ever having sent anything.
// Injected pools (WithPool) are left for their owner to close.
func (d *Dispatcher) Close() error {
	if d.closed.Swap(true) {
		return nil
	}
	if d.ownsPool {
		return d.pool.Close()
	}
	return nil
}

// snapshot copies the sender list so an in-flight Send observes a consistent
// set even while Use is appending.
func (d *Dispatcher) snapshot() []Sender {
	d.mu.RLock()
	defer d.mu.RUnlock()
	senders := make([]Sender, len(d.senders))
	copy(senders, d.senders)
	return senders
}

// attempt wraps one sender call as a pool task, applying the per-sender
// timeout when configured. On timeout the sender goroutine is abandoned and
// the task reports ErrSenderTimeout instead of blocking the join barrier.
func (d *Dispatcher) attempt(s Sender, subject, message string) func(context.Context) (Outcome, error) {
	return func(ctx context.Context) (Outcome, error) {
		if d.timeout <= 0 {
			return s.Send(ctx, subject, message)
		}

		ctx, cancel := context.WithTimeout(ctx, d.timeout)
		defer cancel()

		type result struct {
			out Outcome
			err error
		}
		done := make(chan result, 1)
		go func() {
			out, err := s.Send(ctx, subject, message)
			done <- result{out, err}
		}()

		select {
		case r := <-done:
			return r.out, r.err
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return Outcome{}, fmt.Errorf("%w after %s", ErrSenderTimeout, d.timeout)
			}
			return Outcome{}, ctx.Err()
		}
	}
}

// groupSender lets a Dispatcher stand in for a single sender.
type groupSender struct {
	dispatcher *Dispatcher
}

var _ Sender = (*groupSender)(nil)

func (g *groupSender) Send(ctx context.Context, subject, message string) (Outcome, error) {
	composite, err := g.dispatcher.Send(ctx, subject, message)
	if err != nil {
		return Outcome{}, err
	}
	return composite.Outcome(), nil
}
