package core

import (
	"context"
	"time"
)

// TimeProvider abstracts the clock for the domain so journal timestamps
// and request deadlines can be controlled in tests
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
