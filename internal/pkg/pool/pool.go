// Package pool provides a bounded concurrency semaphore used to keep
// blocking storage access off the request path: every synchronous database
// touch happens inside a pool slot, so at most size calls block at once.
package pool

import "context"

// Pool limits concurrent blocking operations.
type Pool struct {
	sem chan struct{}
}

// New creates a pool with at least one slot and at most 128 slots.
func New(size int) *Pool {
	if size <= 0 {
		size = 1
	}
	if size > 128 {
		size = 128
	}
	return &Pool{sem: make(chan struct{}, size)}
}

// Acquire reserves one slot in the pool. If the pool is full, it blocks until
// a slot becomes available or the context is canceled, in which case it
// returns ctx.Err().
func (p *Pool) Acquire(ctx context.Context) error {
	select {
	case p.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees a previously acquired slot.
func (p *Pool) Release() {
	<-p.sem
}
