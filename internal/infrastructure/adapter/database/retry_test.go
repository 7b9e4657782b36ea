package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/logger"
)

func fastRetry() RetryConfig {
	return RetryConfig{MaxRetries: 3, RetryInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
}

func TestRetryOnTransientError(t *testing.T) {
	mapper := NewErrorMapper()
	log := logger.NewNoopLogger()

	t.Run("Succeeds after transient failure", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(), func() error {
			calls++
			if calls == 1 {
				return errors.New("connection reset by peer")
			}
			return nil
		}, mapper, log)

		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("Stops on permanent error", func(t *testing.T) {
		calls := 0
		permanent := errors.New(`duplicate key value violates unique constraint`)
		err := RetryOnTransientError(context.Background(), fastRetry(), func() error {
			calls++
			return permanent
		}, mapper, log)

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("Gives up after max retries", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(), func() error {
			calls++
			return errors.New("i/o timeout")
		}, mapper, log)

		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Canceled context stops waiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		config := fastRetry()
		config.RetryInterval = time.Hour
		config.MaxInterval = time.Hour

		err := RetryOnTransientError(ctx, config, func() error {
			return errors.New("broken pipe")
		}, mapper, log)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestBackoffWithJitter(t *testing.T) {
	config := RetryConfig{RetryInterval: 10 * time.Millisecond, MaxInterval: 30 * time.Millisecond}

	assert.Equal(t, 10*time.Millisecond, backoffWithJitter(0, config))
	assert.Equal(t, 20*time.Millisecond, backoffWithJitter(1, config))
	assert.Equal(t, 30*time.Millisecond, backoffWithJitter(4, config))

	config.JitterFactor = 0.5
	got := backoffWithJitter(0, config)
	assert.GreaterOrEqual(t, got, 10*time.Millisecond)
	assert.LessOrEqual(t, got, 15*time.Millisecond)
}
