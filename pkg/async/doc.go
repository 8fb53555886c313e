// Package async provides a small futures-and-pool layer used to schedule and
// join concurrent work.
//
// Submit runs a function on a Pool and returns a Future that callers can
// Await, Await with a timeout, or poll with IsComplete. A Pool created with a
// positive size acts as a semaphore bounding how many submitted functions run
// at once; a size of zero (or a nil pool) spawns one goroutine per task with
// no queueing limit.
//
// # Usage
//
//	pool := async.NewPool(8)
//	defer pool.Close()
//
//	f := async.Submit(pool, ctx, func(ctx context.Context) (string, error) {
//	    return fetch(ctx)
//	})
//	res, err := f.Await()
//
// Close is idempotent: the first call stops new submissions and waits for
// in-flight functions, later calls return immediately. Futures submitted to a
// closed pool complete with ErrPoolClosed instead of panicking, which lets
// shutdown paths stay simple.
package async
