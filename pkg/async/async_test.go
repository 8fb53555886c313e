package async_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifykit/notifykit/pkg/async"
)

func TestSubmit_Await(t *testing.T) {
	t.Parallel()

	pool := async.NewPool(0)
	defer pool.Close()

	f := async.Submit(pool, context.Background(), func(ctx context.Context) (int, error) {
		return 42, nil
	})

	got, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.True(t, f.IsComplete())
}

func TestSubmit_NilPool(t *testing.T) {
	t.Parallel()

	f := async.Submit(nil, context.Background(), func(ctx context.Context) (string, error) {
		return "ok", nil
	})
	got, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
}

func TestSubmit_PropagatesError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("boom")
	f := async.Submit(nil, context.Background(), func(ctx context.Context) (int, error) {
		return 0, wantErr
	})
	_, err := f.Await()
	assert.ErrorIs(t, err, wantErr)
}

func TestSubmit_PreCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Bool
	f := async.Submit(nil, ctx, func(ctx context.Context) (int, error) {
		ran.Store(true)
		return 1, nil
	})
	_, err := f.Await()
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran.Load())
}

func TestFuture_AwaitWithTimeout(t *testing.T) {
	t.Parallel()

	f := async.Submit(nil, context.Background(), func(ctx context.Context) (int, error) {
		time.Sleep(200 * time.Millisecond)
		return 7, nil
	})

	_, err := f.AwaitWithTimeout(10 * time.Millisecond)
	assert.ErrorIs(t, err, async.ErrAwaitTimeout)

	// The computation keeps running; a later Await still gets the result.
	got, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestFuture_AwaitContext(t *testing.T) {
	t.Parallel()

	f := async.Submit(nil, context.Background(), func(ctx context.Context) (int, error) {
		time.Sleep(200 * time.Millisecond)
		return 7, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := f.AwaitContext(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResolved(t *testing.T) {
	t.Parallel()

	f := async.Resolved("done", nil)
	assert.True(t, f.IsComplete())
	got, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, "done", got)
}

func TestPool_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	pool := async.NewPool(3)
	defer pool.Close()

	var inFlight, peak atomic.Int32
	futures := make([]*async.Future[int], 10)
	for i := range futures {
		futures[i] = async.Submit(pool, context.Background(), func(ctx context.Context) (int, error) {
			cur := inFlight.Add(1)
			for {
				old := peak.Load()
				if cur <= old || peak.CompareAndSwap(old, cur) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			inFlight.Add(-1)
			return 0, nil
		})
	}
	for _, f := range futures {
		_, err := f.Await()
		require.NoError(t, err)
	}
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestPool_Close(t *testing.T) {
	t.Parallel()

	pool := async.NewPool(1)

	started := make(chan struct{})
	f := async.Submit(pool, context.Background(), func(ctx context.Context) (int, error) {
		close(started)
		time.Sleep(30 * time.Millisecond)
		return 1, nil
	})
	<-started

	// Close waits for the in-flight function.
	require.NoError(t, pool.Close())
	assert.True(t, f.IsComplete())
	assert.True(t, pool.Closed())

	// Idempotent.
	require.NoError(t, pool.Close())

	// New submissions are rejected, not panicking.
	_, err := async.Submit(pool, context.Background(), func(ctx context.Context) (int, error) {
		return 2, nil
	}).Await()
	assert.ErrorIs(t, err, async.ErrPoolClosed)
}

func TestPool_CloseWithoutUse(t *testing.T) {
	t.Parallel()

	pool := async.NewPool(0)
	assert.NoError(t, pool.Close())
}

func TestPool_NilIsUsable(t *testing.T) {
	t.Parallel()

	var pool *async.Pool
	assert.False(t, pool.Closed())
	assert.NoError(t, pool.Close())
	pool.Wait()
}
