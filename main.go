// Reservoir Toolbox MCP Server - A Model Context Protocol server for
// reservoir engineering calculations: PVT, inflow, simulation support,
// brine properties and geomechanics.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/olgasafonova/restoolbox-mcp-server/internal/base"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/brine"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/gas"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/geomech"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/inflow"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/infra"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/layer"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/library"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/oil"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/simtools"
	"github.com/olgasafonova/restoolbox-mcp-server/metrics"
	"github.com/olgasafonova/restoolbox-mcp-server/tools"
	"github.com/olgasafonova/restoolbox-mcp-server/tracing"
)

const (
	ServerName    = "restoolbox-mcp-server"
	ServerVersion = "1.0.0"
)

// Options are the command line flags. Every flag falls back to an
// environment variable.
type Options struct {
	Transport   string        `long:"transport" env:"RESTOOLBOX_TRANSPORT" default:"stdio" choice:"stdio" choice:"http" description:"MCP transport"`
	Addr        string        `long:"addr" env:"RESTOOLBOX_ADDR" default:":8080" description:"HTTP listen address"`
	RateLimit   int           `long:"rate-limit" env:"RESTOOLBOX_RATE_LIMIT" default:"120" description:"HTTP requests per minute per client IP (0 disables)"`
	MaxBody     int64         `long:"max-body" env:"RESTOOLBOX_MAX_BODY" default:"1048576" description:"HTTP request body limit in bytes"`
	LogLevel    string        `long:"log-level" env:"RESTOOLBOX_LOG_LEVEL" default:"info" description:"log level: debug, info, warn or error"`
	CacheSize   int           `long:"cache-size" env:"RESTOOLBOX_CACHE_SIZE" default:"1000" description:"memo cache entries"`
	CacheTTL    time.Duration `long:"cache-ttl" env:"RESTOOLBOX_CACHE_TTL" default:"10m" description:"memo cache TTL"`
	DataDir     string        `long:"data-dir" env:"RESTOOLBOX_DATA_DIR" description:"restrict simulator file tools to this directory"`
	Workers     int           `long:"workers" env:"RESTOOLBOX_WORKERS" default:"4" description:"concurrent heavy calculations"`
	Trace       string        `long:"trace" choice:"none" choice:"stderr" choice:"otlp" description:"span exporter (default from OTEL_* variables)"`
	TraceURL    string        `long:"trace-endpoint" description:"OTLP host:port (default OTEL_EXPORTER_OTLP_ENDPOINT)"`
	ShowVersion bool          `long:"version" description:"print version and exit"`
}

// recoverPanic wraps a function with panic recovery and logs instead of crashing
func recoverPanic(logger *slog.Logger, operation string) {
	if r := recover(); r != nil {
		logger.Error("Panic recovered",
			"operation", operation,
			"panic", r,
			"stack", string(debug.Stack()))
	}
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if opts.ShowVersion {
		fmt.Printf("%s %s\n", ServerName, ServerVersion)
		return
	}

	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(opts.LogLevel),
	}))

	if err := run(opts, logger); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}

func parseOptions(args []string) (*Options, error) {
	opts := &Options{}
	if _, err := flags.ParseArgs(opts, args); err != nil {
		return nil, err
	}
	return opts, nil
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// tracingConfig applies the trace flags on top of the OTEL environment.
func tracingConfig(opts *Options) tracing.Config {
	cfg := tracing.ConfigFromEnv(ServerVersion)
	if opts.TraceURL != "" {
		cfg.Endpoint = opts.TraceURL
		cfg.Exporter = tracing.ExporterOTLP
	}
	if opts.Trace != "" {
		cfg.Exporter = tracing.Exporter(opts.Trace)
	}
	return cfg
}

func run(opts *Options, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, tracingConfig(opts))
	if err != nil {
		return fmt.Errorf("tracing setup: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	server, cleanup, err := newServer(opts, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Info("Starting Reservoir Toolbox MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"transport", opts.Transport,
		"tools", len(tools.AllTools),
		"data_dir", opts.DataDir,
	)

	if opts.Transport == "http" {
		return serveHTTP(ctx, server, opts, logger)
	}
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// newServer builds the services on one shared engine and registers every
// tool and resource. cleanup releases the engine and its cache.
func newServer(opts *Options, logger *slog.Logger) (server *mcp.Server, cleanup func(), err error) {
	cache := infra.NewCache(opts.CacheSize, infra.WithEvictionHook(func(n int) {
		metrics.CacheEvictions.Add(float64(n))
	}))
	engine := base.NewEngine(
		base.WithLogger(logger),
		base.WithCache(cache),
		base.WithDedup(infra.NewRequestDeduplicator()),
		base.WithCacheTTL(opts.CacheTTL),
		base.WithMaxConcurrent(opts.Workers),
	)
	cleanup = func() {
		engine.Close()
		cache.Close()
	}

	server = mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: instructions,
	})

	registry := tools.NewHandlerRegistry(tools.Services{
		Gas:      gas.NewService(engine),
		Oil:      oil.NewService(engine),
		Inflow:   inflow.NewService(engine),
		SimTools: simtools.NewService(engine, opts.DataDir),
		Brine:    brine.NewService(engine),
		Layer:    layer.NewService(engine),
		Library:  library.NewService(engine),
		Geomech:  geomech.NewService(engine),
	}, logger)
	if err := registry.RegisterAll(server); err != nil {
		cleanup()
		return nil, nil, err
	}
	tools.RegisterResources(server, tools.ServerInfo{Name: ServerName, Version: ServerVersion})

	return server, cleanup, nil
}

// serveHTTP runs the streamable HTTP transport with metrics and health
// endpoints until ctx is canceled.
func serveHTTP(ctx context.Context, server *mcp.Server, opts *Options, logger *slog.Logger) error {
	security := NewSecurityMiddleware(newMux(server), logger, SecurityConfig{
		RateLimit:   opts.RateLimit,
		MaxBodySize: opts.MaxBody,
	})
	defer security.Close()

	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           security,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		defer recoverPanic(logger, "http server")
		logger.Info("Listening", "addr", opts.Addr, "mcp", "/mcp")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("Shutting down HTTP server")
	return srv.Shutdown(shutdownCtx)
}

func newMux(server *mcp.Server) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", handleHealth)
	return mux
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","name":%q,"version":%q}`+"\n", ServerName, ServerVersion)
}

const instructions = `Reservoir Toolbox MCP Server provides reservoir engineering calculations in field units.

Tool families:
- gas_*: gas PVT (Z-factor, critical properties, Bg, viscosity, density, compressibility, pseudopressure)
- oil_*, generate_black_oil_table: oil PVT (bubble point, Rs, Bo, viscosity, density, gas gravities)
- oil_rate_*, gas_rate_*: radial and linear well inflow
- generate_rel_perm_table, generate_aquifer_influence, rachford_rice_flash: simulator table generation
- extract_eclipse_problem_cells, validate_simulation_deck: ECLIPSE file checks
- calculate_brine_properties, co2_brine_mutual_solubility: brine and CO2-brine properties
- lorenz_*, beta_to_lorenz, flow_fractions_from_lorenz, generate_layer_distribution: layer heterogeneity
- get_component_properties: pure component library
- geomech_*: stresses, pore pressure, rock strength, wellbore stability, fracturing

Numeric inputs marked as arrays accept a number or a list; results follow the input shape.
Read config://units and config://methods for units and accepted correlation codes, and help://overview for workflows.`
