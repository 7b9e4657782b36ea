package machine

import (
	"context"
	"fmt"
	"sync"

	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/vending-machine/internal/domain/port/core"
)

// DefaultQueueSize is used when a non-positive queue size is configured
const DefaultQueueSize = 64

// Operation is a unit of work run on the dispatcher goroutine
type Operation func(ctx context.Context) error

// operationRequest represents a queued operation
type operationRequest struct {
	ctx        context.Context
	name       string
	op         Operation
	resultChan chan error
}

// Dispatcher runs operations one at a time on a single worker goroutine.
// Every adapter call into the Machine goes through it, so the engine
// only ever sees one caller.
type Dispatcher struct {
	logger       coreport.Logger
	timeProvider coreport.TimeProvider

	queue    chan *operationRequest
	workerWG sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher creates a dispatcher and starts its worker
func NewDispatcher(logger coreport.Logger, timeProvider coreport.TimeProvider, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	d := &Dispatcher{
		logger:       logger,
		timeProvider: timeProvider,
		queue:        make(chan *operationRequest, queueSize),
	}

	d.workerWG.Add(1)
	go d.run()

	return d
}

// ErrDispatcherClosed is returned by Execute after Shutdown
var ErrDispatcherClosed = fmt.Errorf("%w: dispatcher is shut down", errs.ErrInternal)

// Execute queues op and waits for it to finish.
// If ctx ends first, Execute returns ctx.Err(); an operation already
// picked up by the worker still runs to completion.
func (d *Dispatcher) Execute(ctx context.Context, name string, op Operation) error {
	req := &operationRequest{
		ctx:        ctx,
		name:       name,
		op:         op,
		resultChan: make(chan error, 1),
	}

	d.mu.RLock()
	if d.closed {
		d.mu.RUnlock()
		return ErrDispatcherClosed
	}

	select {
	case d.queue <- req:
		d.mu.RUnlock()
	case <-ctx.Done():
		d.mu.RUnlock()
		d.logger.Warn("Context canceled while enqueueing operation", map[string]any{
			"operation": name,
			"error":     ctx.Err().Error(),
		})
		return ctx.Err()
	}

	select {
	case err := <-req.resultChan:
		return err
	case <-ctx.Done():
		d.logger.Warn("Context canceled while waiting for operation result", map[string]any{
			"operation": name,
			"error":     ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

// run is the worker loop
func (d *Dispatcher) run() {
	defer d.workerWG.Done()

	d.logger.Debug("Operation dispatcher started", nil)

	for req := range d.queue {
		req.resultChan <- d.process(req)
		close(req.resultChan)
	}

	d.logger.Debug("Operation dispatcher stopped", nil)
}

// process runs a single operation, skipping it if the caller already gave up
func (d *Dispatcher) process(req *operationRequest) (err error) {
	if ctxErr := req.ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	started := d.timeProvider.Now()
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Operation panicked", map[string]any{
				"operation": req.name,
				"panic":     fmt.Sprint(r),
			})
			err = fmt.Errorf("%w: operation %s panicked", errs.ErrInternal, req.name)
		}

		d.logger.Debug("Operation finished", map[string]any{
			"operation":   req.name,
			"duration_ms": d.timeProvider.Since(started).Milliseconds(),
			"failed":      err != nil,
		})
	}()

	return req.op(req.ctx)
}

// Shutdown stops accepting operations, drains the queue and waits for the worker
func (d *Dispatcher) Shutdown() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.workerWG.Wait()
	d.logger.Info("Operation dispatcher shut down", nil)
}
