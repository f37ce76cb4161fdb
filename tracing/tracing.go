// Package tracing wires OpenTelemetry for the reservoir toolbox MCP server.
// Every tool call gets a span, and memoised calculations get a child span
// so cache hits and shared computations are visible in a trace.
package tracing

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
	"go.opentelemetry.io/otel/trace"

	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
)

// TracerName identifies spans created by this server
const TracerName = "restoolbox-mcp-server"

// Exporter selects where finished spans are sent.
type Exporter string

const (
	ExporterNone   Exporter = "none"
	ExporterStderr Exporter = "stderr"
	ExporterOTLP   Exporter = "otlp"
)

// Config holds tracing configuration
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Exporter       Exporter
	Endpoint       string // OTLP host:port, used with ExporterOTLP
	SampleRate     float64
}

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

// ConfigFromEnv reads the standard OTEL variables. An OTLP endpoint selects
// the OTLP exporter; OTEL_ENABLED=true without one writes spans to stderr.
func ConfigFromEnv(version string) Config {
	cfg := Config{
		ServiceName:    getEnvOrDefault("OTEL_SERVICE_NAME", TracerName),
		ServiceVersion: version,
		Environment:    getEnvOrDefault("OTEL_ENVIRONMENT", "development"),
		Exporter:       ExporterNone,
		Endpoint:       os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		SampleRate:     1.0,
	}
	switch {
	case cfg.Endpoint != "":
		cfg.Exporter = ExporterOTLP
	case os.Getenv("OTEL_ENABLED") == "true":
		cfg.Exporter = ExporterStderr
	}
	if v, err := strconv.ParseFloat(os.Getenv("OTEL_TRACES_SAMPLER_ARG"), 64); err == nil {
		cfg.SampleRate = v
	}
	return cfg
}

// Setup installs the global tracer provider. With ExporterNone it installs
// nothing and the returned shutdown is a no-op.
func Setup(ctx context.Context, cfg Config) (ShutdownFunc, error) {
	if cfg.Exporter == "" || cfg.Exporter == ExporterNone {
		return func(context.Context) error { return nil }, nil
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
			attribute.String("environment", cfg.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tracing resource: %w", err)
	}

	exporter, err := newExporter(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(2*time.Second)),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(newSampler(cfg.SampleRate))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

func newExporter(ctx context.Context, cfg Config) (sdktrace.SpanExporter, error) {
	switch cfg.Exporter {
	case ExporterOTLP:
		if cfg.Endpoint == "" {
			return nil, fmt.Errorf("tracing: otlp exporter needs an endpoint")
		}
		return otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(cfg.Endpoint),
			otlptracehttp.WithInsecure(),
		)
	case ExporterStderr:
		// stdout carries the MCP stdio protocol
		return stdouttrace.New(stdouttrace.WithWriter(os.Stderr), stdouttrace.WithPrettyPrint())
	default:
		return nil, fmt.Errorf("tracing: unknown exporter %q", cfg.Exporter)
	}
}

func newSampler(rate float64) sdktrace.Sampler {
	switch {
	case rate >= 1:
		return sdktrace.AlwaysSample()
	case rate <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.TraceIDRatioBased(rate)
	}
}

// Tracer returns the named tracer for the server
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// StartToolSpan opens the span for one tool call.
func StartToolSpan(ctx context.Context, tool, category, requestID string, readOnly bool) (context.Context, trace.Span) {
	return Tracer().Start(ctx, "mcp.tool."+tool,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("mcp.tool.name", tool),
			attribute.String("mcp.tool.category", category),
			attribute.String("mcp.request.id", requestID),
			attribute.Bool("mcp.tool.readonly", readOnly),
		),
	)
}

// StartCalculationSpan opens a span for a memoised calculation.
func StartCalculationSpan(ctx context.Context, calculation string) (context.Context, trace.Span) {
	return Tracer().Start(ctx, "calc."+calculation,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("calc.name", calculation)),
	)
}

// AddCalculationAttributes records whether the result came from another
// caller's in-flight computation.
func AddCalculationAttributes(span trace.Span, shared bool) {
	span.SetAttributes(attribute.Bool("calc.shared", shared))
}

// Finish sets the span status from err and tags errors with their class.
func Finish(span trace.Span, err error) {
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}
	span.RecordError(err)
	span.SetAttributes(attribute.String("error.type", apierrors.Class(err)))
	span.SetStatus(codes.Error, err.Error())
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
