// Package base provides the shared calculation engine behind every domain
// service: a memo cache, in-flight deduplication and a bounded worker pool.
package base

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/olgasafonova/restoolbox-mcp-server/internal/infra"
	"github.com/olgasafonova/restoolbox-mcp-server/metrics"
	"github.com/olgasafonova/restoolbox-mcp-server/tracing"
)

const (
	// DefaultCacheTTL for memoised results
	DefaultCacheTTL = 10 * time.Minute

	// MaxConcurrentCalculations limits parallel heavy calculations
	MaxConcurrentCalculations = 4
)

// Engine provides memoisation and concurrency limits for deterministic
// calculations. Services embed it.
type Engine struct {
	Logger    *slog.Logger
	Cache     *infra.Cache
	Dedup     *infra.RequestDeduplicator
	Semaphore chan struct{}
	TTL       time.Duration

	ownsCache bool
}

// Option configures the Engine
type Option func(*Engine)

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.Logger = l
	}
}

// WithCache shares an existing cache. The caller keeps ownership and closes it.
func WithCache(c *infra.Cache) Option {
	return func(e *Engine) {
		e.Cache = c
	}
}

// WithCacheTTL sets how long memoised results live
func WithCacheTTL(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.TTL = d
		}
	}
}

// WithMaxConcurrent sets the worker pool size
func WithMaxConcurrent(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.Semaphore = make(chan struct{}, n)
		}
	}
}

// WithDedup shares an in-flight deduplicator between services
func WithDedup(d *infra.RequestDeduplicator) Option {
	return func(e *Engine) {
		e.Dedup = d
	}
}

// NewEngine creates a new engine with default settings
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		Logger:    slog.Default(),
		Dedup:     infra.NewRequestDeduplicator(),
		Semaphore: make(chan struct{}, MaxConcurrentCalculations),
		TTL:       DefaultCacheTTL,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.Cache == nil {
		e.Cache = infra.NewCache(infra.DefaultMaxCacheEntries, infra.WithEvictionHook(func(n int) {
			metrics.CacheEvictions.Add(float64(n))
		}))
		e.ownsCache = true
	}

	return e
}

// Close releases resources held by the engine
func (e *Engine) Close() {
	if e.ownsCache && e.Cache != nil {
		e.Cache.Close()
	}
}

// DedupStats returns the number of in-flight deduplicated calculations
func (e *Engine) DedupStats() int {
	return e.Dedup.Stats()
}

// AcquireSlot blocks until a worker slot is available or context is canceled
func (e *Engine) AcquireSlot(ctx context.Context) error {
	select {
	case e.Semaphore <- struct{}{}:
		return nil
	default:
	}
	metrics.WorkerWaits.Inc()
	select {
	case e.Semaphore <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("context canceled while waiting for a worker: %w", ctx.Err())
	}
}

// ReleaseSlot releases a worker slot
func (e *Engine) ReleaseSlot() {
	<-e.Semaphore
}

// Key builds a memo key from a calculation name and its arguments.
// Arguments are hashed from their JSON form, so field order is stable.
func Key(name string, args any) (string, error) {
	b, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s arguments: %w", name, err)
	}
	return name + ":" + strconv.FormatUint(xxhash.Sum64(b), 16), nil
}

// Memo returns the cached result of fn for (name, args), computing it at most
// once across concurrent callers. fn runs while holding a worker slot.
func Memo[T any](ctx context.Context, e *Engine, name string, args any, fn func() (T, error)) (T, error) {
	var zero T

	key, err := Key(name, args)
	if err != nil {
		return zero, err
	}

	if cached, ok := e.Cache.Get(key); ok {
		metrics.RecordCacheAccess(true)
		if v, ok := cached.(T); ok {
			return v, nil
		}
	}
	metrics.RecordCacheAccess(false)

	ctx, span := tracing.StartCalculationSpan(ctx, name)
	defer span.End()

	start := time.Now()
	result, shared, err := e.Dedup.Do(ctx, key, func() (any, error) {
		if err := e.AcquireSlot(ctx); err != nil {
			return nil, err
		}
		defer e.ReleaseSlot()

		v, err := fn()
		if err != nil {
			return nil, err
		}
		e.Cache.Set(key, v, e.TTL)
		metrics.SetCacheSize(e.Cache.Size())
		return v, nil
	})
	metrics.RecordCalculation(name, time.Since(start).Seconds(), shared)
	tracing.AddCalculationAttributes(span, shared)
	tracing.Finish(span, err)
	if err != nil {
		return zero, err
	}

	if shared {
		e.Logger.Debug("Shared in-flight calculation", "calculation", name)
	}

	v, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("%s: unexpected result type %T", name, result)
	}
	return v, nil
}
