package machine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
)

func TestDispatcher_RunsOneOperationAtATime(t *testing.T) {
	d := NewDispatcher(quietLogger(), frozenClock(), 4)
	defer d.Shutdown()

	var running, maxRunning int32
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := d.Execute(context.Background(), "increment", func(context.Context) error {
				now := atomic.AddInt32(&running, 1)
				for {
					prev := atomic.LoadInt32(&maxRunning)
					if now <= prev || atomic.CompareAndSwapInt32(&maxRunning, prev, now) {
						break
					}
				}
				counter++
				atomic.AddInt32(&running, -1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Equal(t, int32(1), atomic.LoadInt32(&maxRunning))
}

func TestDispatcher_ReturnsOperationError(t *testing.T) {
	d := NewDispatcher(quietLogger(), frozenClock(), 1)
	defer d.Shutdown()

	err := d.Execute(context.Background(), "fail", func(context.Context) error {
		return errs.ErrNoBalance
	})

	assert.ErrorIs(t, err, errs.ErrNoBalance)
}

func TestDispatcher_RecoversPanics(t *testing.T) {
	d := NewDispatcher(quietLogger(), frozenClock(), 1)
	defer d.Shutdown()

	err := d.Execute(context.Background(), "boom", func(context.Context) error {
		panic("boom")
	})
	assert.ErrorIs(t, err, errs.ErrInternal)

	// the worker is still alive
	err = d.Execute(context.Background(), "after", func(context.Context) error { return nil })
	assert.NoError(t, err)
}

func TestDispatcher_ContextCanceledWhileWaiting(t *testing.T) {
	d := NewDispatcher(quietLogger(), frozenClock(), 1)
	defer d.Shutdown()

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = d.Execute(context.Background(), "slow", func(context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	ran := false
	err := d.Execute(ctx, "queued", func(context.Context) error {
		ran = true
		return nil
	})
	close(release)

	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	// wait for the queue to drain, the canceled operation must have been skipped
	require.NoError(t, d.Execute(context.Background(), "sync", func(context.Context) error { return nil }))
	assert.False(t, ran)
}

func TestDispatcher_Shutdown(t *testing.T) {
	d := NewDispatcher(quietLogger(), frozenClock(), 0)

	done := 0
	for i := 0; i < 3; i++ {
		require.NoError(t, d.Execute(context.Background(), "op", func(context.Context) error {
			done++
			return nil
		}))
	}

	d.Shutdown()
	d.Shutdown()

	err := d.Execute(context.Background(), "late", func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrDispatcherClosed)
	assert.ErrorIs(t, err, errs.ErrInternal)
	assert.Equal(t, 3, done)
}
