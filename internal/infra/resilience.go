// Package infra provides shared infrastructure for the calculation services:
// an LRU+TTL result cache and a deduplicator that coalesces identical
// in-flight calculations.
package infra

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// RequestDeduplicator coalesces identical in-flight calculations. The first
// caller for a key runs fn; callers arriving before it finishes wait for
// and share its result.
type RequestDeduplicator struct {
	mu     sync.Mutex
	calls  map[string]*call
	shared atomic.Int64
}

type call struct {
	done chan struct{}
	val  any
	err  error
}

// NewRequestDeduplicator returns an empty deduplicator.
func NewRequestDeduplicator() *RequestDeduplicator {
	return &RequestDeduplicator{calls: make(map[string]*call)}
}

// Do runs fn for key unless an identical call is already running, in which
// case it waits for that call. The boolean reports whether the result was
// shared. A waiter whose ctx ends stops waiting; the running call is not
// cancelled. When the running call fails only because its own caller's
// context ended, waiters with a live ctx run fn themselves.
func (d *RequestDeduplicator) Do(ctx context.Context, key string, fn func() (any, error)) (any, bool, error) {
	for {
		d.mu.Lock()
		c, ok := d.calls[key]
		if !ok {
			c = &call{done: make(chan struct{})}
			d.calls[key] = c
			d.mu.Unlock()
			return d.lead(key, c, fn)
		}
		d.mu.Unlock()

		d.shared.Add(1)
		select {
		case <-c.done:
			if contextError(c.err) && ctx.Err() == nil {
				d.shared.Add(-1)
				continue
			}
			return c.val, true, c.err
		case <-ctx.Done():
			return nil, false, ctx.Err()
		}
	}
}

func (d *RequestDeduplicator) lead(key string, c *call, fn func() (any, error)) (any, bool, error) {
	c.val, c.err = run(fn)

	d.mu.Lock()
	delete(d.calls, key)
	d.mu.Unlock()
	close(c.done)

	return c.val, false, c.err
}

func contextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// run calls fn and turns a panic into an error so waiters are released.
func run(fn func() (any, error)) (val any, err error) {
	defer func() {
		if r := recover(); r != nil {
			val, err = nil, fmt.Errorf("calculation panicked: %v", r)
		}
	}()
	return fn()
}

// Stats returns the number of calculations currently running.
func (d *RequestDeduplicator) Stats() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.calls)
}

// Shared returns how many callers were handed another caller's result.
func (d *RequestDeduplicator) Shared() int64 {
	return d.shared.Load()
}
