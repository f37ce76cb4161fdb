// Command benchmark measures how much the shared memo cache and request
// deduplication save on the expensive calculations.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/olgasafonova/restoolbox-mcp-server/internal/base"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/gas"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/infra"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/num"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/oil"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/simtools"
)

type options struct {
	Repeat     int `long:"repeat" default:"5" description:"cached calls per calculation"`
	Concurrent int `long:"concurrent" default:"16" description:"identical requests fired at once in the dedup test"`
}

type benchmark struct {
	name string
	call func(ctx context.Context) error
}

func newEngine(cache *infra.Cache) *base.Engine {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return base.NewEngine(
		base.WithLogger(logger),
		base.WithCache(cache),
		base.WithDedup(infra.NewRequestDeduplicator()),
		base.WithCacheTTL(10*time.Minute),
	)
}

func benchmarks(engine *base.Engine) []benchmark {
	gasSvc := gas.NewService(engine)
	oilSvc := oil.NewService(engine)
	simSvc := simtools.NewService(engine, "")

	return []benchmark{
		{"gas_pseudopressure (20 pressures)", func(ctx context.Context) error {
			p2 := make([]float64, 20)
			for i := range p2 {
				p2[i] = 500 + 250*float64(i)
			}
			_, err := gasSvc.PseudopressureMCP(ctx, gas.PseudopressureArgs{
				SG: 0.7, DegF: 200, P1: num.Scalar(14.7), P2: num.Array(p2...),
			})
			return err
		}},
		{"generate_black_oil_table (100 rows)", func(ctx context.Context) error {
			_, err := oilSvc.BlackOilTableMCP(ctx, oil.BlackOilTableArgs{
				Pi: 4000, API: 35, DegF: 200, SGg: 0.75, NRows: 100, Export: true,
			})
			return err
		}},
		{"generate_aquifer_influence (200 rows)", func(ctx context.Context) error {
			_, err := simSvc.AquiferInfluenceMCP(ctx, simtools.InfluenceArgs{Rows: 200, Res: 20})
			return err
		}},
	}
}

// measureCachePerformance compares the first (computed) call with repeats
// served from the memo cache.
func measureCachePerformance(ctx context.Context, engine *base.Engine, cache *infra.Cache, repeat int) error {
	fmt.Println("=== Memo Cache Performance ===")
	fmt.Println()

	for i, b := range benchmarks(engine) {
		fmt.Printf("%d. %s:\n", i+1, b.name)

		start := time.Now()
		if err := b.call(ctx); err != nil {
			return fmt.Errorf("%s: %w", b.name, err)
		}
		firstCall := time.Since(start)
		fmt.Printf("   First call (computed): %v\n", firstCall)

		start = time.Now()
		for range repeat {
			if err := b.call(ctx); err != nil {
				return fmt.Errorf("%s: %w", b.name, err)
			}
		}
		cached := time.Since(start) / time.Duration(max(repeat, 1))
		fmt.Printf("   Repeat call (cached):  %v\n", cached)
		if cached > 0 {
			fmt.Printf("   Speedup: %.0fx faster\n", float64(firstCall)/float64(cached))
		}
		fmt.Println()
	}

	stats := cache.Stats()
	fmt.Printf("Cache: %d entries, %d hits, %d misses\n\n", stats.Size, stats.Hits, stats.Misses)
	return nil
}

// measureDeduplication fires identical requests at a cold engine so that
// only one of them computes.
func measureDeduplication(ctx context.Context, n int) error {
	fmt.Println("=== Request Deduplication ===")
	fmt.Println()

	cache := infra.NewCache(100)
	defer cache.Close()
	engine := newEngine(cache)
	defer engine.Close()

	table := benchmarks(engine)[1]

	var wg sync.WaitGroup
	errs := make([]error, n)
	start := time.Now()
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = table.call(ctx)
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	if err := errors.Join(errs...); err != nil {
		return err
	}

	fmt.Printf("   %d concurrent %s requests: %v\n", n, table.name, elapsed)
	fmt.Printf("   Served by a shared in-flight computation: %d\n\n", engine.Dedup.Shared())
	return nil
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	fmt.Println("Reservoir Toolbox MCP Server - Performance Measurements")
	fmt.Println("=======================================================")
	fmt.Println()

	ctx := context.Background()
	cache := infra.NewCache(1000)
	engine := newEngine(cache)

	err := measureCachePerformance(ctx, engine, cache, opts.Repeat)
	engine.Close()
	cache.Close()
	if err == nil {
		err = measureDeduplication(ctx, opts.Concurrent)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Summary ===")
	fmt.Println()
	fmt.Println("• Memo cache: repeated table and integral requests skip recomputation")
	fmt.Println("• Deduplication: identical concurrent requests share one computation")
}
