// Package notify broadcasts a notification (subject plus message) across an
// arbitrary set of delivery channels without the caller knowing which
// channels are configured.
//
// The core type is Dispatcher: it owns zero or more values implementing the
// one-method Sender contract, fans each Send call out to all of them
// concurrently, waits for every one to finish, and reduces the independent
// results into a single CompositeOutcome. Reduction is deliberately
// best-effort: one failed SMS provider must not suppress a successful email,
// so per-channel failures are logged and dropped from the composite, and
// only the total-failure case escalates to an error (wrapping every
// underlying cause).
//
// # Usage
//
//	d := notify.New(
//	    notify.WithSenderTimeout(10*time.Second),
//	    notify.WithLogger(log),
//	)
//	defer d.Close()
//
//	d.Use(emailSender, smsSender, pushSender)
//
//	out, err := d.Send(ctx, "Alert", "Service is down")
//	if err != nil {
//	    // every channel failed
//	}
//	for _, o := range out.Outcomes {
//	    // registration order, regardless of completion timing
//	}
//
// # Ordering
//
// CompositeOutcome.Outcomes preserves sender registration order: the
// dispatcher awaits its fan-out tasks in the order senders were registered,
// not in the order they happen to complete.
//
// # Nesting
//
// A Dispatcher can itself act as a sender inside another Dispatcher via
// AsSender, so a group of providers (say, all email backends) can be
// registered as one channel at a higher level.
//
// # Concurrency
//
// By default each send attempt runs on its own goroutine with no queueing
// limit. Production deployments that need bounded fan-out inject a sized
// pool with WithPool; tests that want sequential execution inject a pool of
// size one.
package notify
