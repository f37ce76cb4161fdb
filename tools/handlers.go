package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/olgasafonova/restoolbox-mcp-server/internal/brine"
	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/gas"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/geomech"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/inflow"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/layer"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/library"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/num"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/oil"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/simtools"
	"github.com/olgasafonova/restoolbox-mcp-server/metrics"
	"github.com/olgasafonova/restoolbox-mcp-server/tracing"
)

// Services bundles the calculation services the tools dispatch to.
type Services struct {
	Gas      *gas.Service
	Oil      *oil.Service
	Inflow   *inflow.Service
	SimTools *simtools.Service
	Brine    *brine.Service
	Layer    *layer.Service
	Library  *library.Service
	Geomech  *geomech.Service
}

// binding registers one typed handler for a spec.
type binding func(h *HandlerRegistry, server *mcp.Server, tool *mcp.Tool, spec ToolSpec) error

// HandlerRegistry provides type-safe tool registration by mapping
// spec methods to their concrete handler implementations.
type HandlerRegistry struct {
	services Services
	bindings map[string]binding
	logger   *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(services Services, logger *slog.Logger) *HandlerRegistry {
	h := &HandlerRegistry{
		services: services,
		logger:   logger,
	}
	h.bindings = h.methodBindings()
	return h
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) error {
	for _, spec := range AllTools {
		if err := h.registerByName(server, spec); err != nil {
			return err
		}
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
	return nil
}

// registerByName dispatches to the typed registration bound to spec.Method.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) error {
	b, ok := h.bindings[spec.Method]
	if !ok {
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
		return fmt.Errorf("tool %s: no handler for method %q", spec.Name, spec.Method)
	}
	return b(h, server, h.buildTool(spec), spec)
}

// methodBindings maps every spec method to its service handler.
func (h *HandlerRegistry) methodBindings() map[string]binding {
	s := h.services
	return map[string]binding{
		// Gas tools
		"GasZFactor":            bind(s.Gas.ZFactorMCP),
		"GasCriticalProperties": bind(s.Gas.CriticalPropertiesMCP),
		"GasFVF":                bind(s.Gas.FormationVolumeFactorMCP),
		"GasViscosity":          bind(s.Gas.ViscosityMCP),
		"GasDensity":            bind(s.Gas.DensityMCP),
		"GasCompressibility":    bind(s.Gas.CompressibilityMCP),
		"GasPseudopressure":     bind(s.Gas.PseudopressureMCP),
		"GasPressureFromPZ":     bind(s.Gas.PressureFromPZMCP),
		"GasSGFromGradient":     bind(s.Gas.SGFromGradientMCP),
		"GasWaterContent":       bind(s.Gas.WaterContentMCP),
		"GasSGFromComposition":  bind(s.Gas.SGFromCompositionMCP),

		// Oil tools
		"OilBubblePoint":     bind(s.Oil.BubblePointMCP),
		"OilSolutionGOR":     bind(s.Oil.SolutionGORMCP),
		"OilFVF":             bind(s.Oil.FVFMCP),
		"OilViscosity":       bind(s.Oil.ViscosityMCP),
		"OilDensity":         bind(s.Oil.DensityMCP),
		"OilCompressibility": bind(s.Oil.CompressibilityMCP),
		"OilAPIFromSG":       bind(s.Oil.APIFromSGMCP),
		"OilSGFromAPI":       bind(s.Oil.SGFromAPIMCP),
		"OilBlackOilTable":   bind(s.Oil.BlackOilTableMCP),
		"OilRsAtBubblePoint": bind(s.Oil.RsAtBubblePointMCP),
		"OilEvolvedGasSG":    bind(s.Oil.EvolvedGasSGMCP),
		"OilStockTankGasSG":  bind(s.Oil.StockTankGasSGMCP),
		"OilJacobySG":        bind(s.Oil.JacobySGMCP),
		"OilTwu":             bind(s.Oil.TwuMCP),
		"OilWeightedGasSG":   bind(s.Oil.WeightedGasSGMCP),
		"OilStockTankGOR":    bind(s.Oil.StockTankGORMCP),
		"OilCheckGasSGs":     bind(s.Oil.CheckGasSGsMCP),

		// Inflow tools
		"InflowOilRadial": bind(s.Inflow.OilRateRadialMCP),
		"InflowOilLinear": bind(s.Inflow.OilRateLinearMCP),
		"InflowGasRadial": bind(s.Inflow.GasRateRadialMCP),
		"InflowGasLinear": bind(s.Inflow.GasRateLinearMCP),

		// Simulation tools
		"SimRelPermTable":     bind(s.SimTools.RelPermTableMCP),
		"SimAquiferInfluence": bind(s.SimTools.AquiferInfluenceMCP),
		"SimRachfordRice":     bind(s.SimTools.RachfordRiceMCP),
		"SimProblemCells":     bind(s.SimTools.ProblemCellsMCP),
		"SimValidateDeck":     bind(s.SimTools.ValidateDeckMCP),

		// Brine tools
		"BrineProperties": bind(s.Brine.BrinePropertiesMCP),
		"BrineCO2":        bind(s.Brine.CO2BrineMCP),

		// Layer tools
		"LayerLorenzToBeta":        bind(s.Layer.LorenzToBetaMCP),
		"LayerBetaToLorenz":        bind(s.Layer.BetaToLorenzMCP),
		"LayerLorenzFromFractions": bind(s.Layer.LorenzFromFlowFractionsMCP),
		"LayerFractionsFromLorenz": bind(s.Layer.FlowFractionsFromLorenzMCP),
		"LayerDistribution":        bind(s.Layer.GenerateLayerDistributionMCP),

		// Library tools
		"LibraryComponent": bind(s.Library.GetComponentPropertiesMCP),

		// Geomechanics tools
		"GeoVerticalStress":       bind(s.Geomech.VerticalStressMCP),
		"GeoPorePressureEaton":    bind(s.Geomech.PorePressureEatonMCP),
		"GeoEffectiveStress":      bind(s.Geomech.EffectiveStressMCP),
		"GeoHorizontalStress":     bind(s.Geomech.HorizontalStressMCP),
		"GeoElasticModuli":        bind(s.Geomech.ElasticModuliMCP),
		"GeoRockStrength":         bind(s.Geomech.RockStrengthMCP),
		"GeoDynamicToStatic":      bind(s.Geomech.DynamicToStaticMCP),
		"GeoBreakoutWidth":        bind(s.Geomech.BreakoutWidthMCP),
		"GeoFractureGradient":     bind(s.Geomech.FractureGradientMCP),
		"GeoMudWeightWindow":      bind(s.Geomech.MudWeightWindowMCP),
		"GeoCriticalMudWeight":    bind(s.Geomech.CriticalMudWeightMCP),
		"GeoReservoirCompaction":  bind(s.Geomech.ReservoirCompactionMCP),
		"GeoPoreCompressibility":  bind(s.Geomech.PoreCompressibilityMCP),
		"GeoLeakOff":              bind(s.Geomech.LeakOffMCP),
		"GeoFractureWidth":        bind(s.Geomech.FractureWidthMCP),
		"GeoStressPolygon":        bind(s.Geomech.StressPolygonMCP),
		"GeoSandProduction":       bind(s.Geomech.SandProductionMCP),
		"GeoFaultStability":       bind(s.Geomech.FaultStabilityMCP),
		"GeoDeviatedWellStress":   bind(s.Geomech.DeviatedWellStressMCP),
		"GeoTensileFailure":       bind(s.Geomech.TensileFailureMCP),
		"GeoShearFailureCriteria": bind(s.Geomech.ShearFailureCriteriaMCP),
		"GeoBreakoutInversion":    bind(s.Geomech.BreakoutInversionMCP),
		"GeoBreakdownPressure":    bind(s.Geomech.BreakdownPressureMCP),
		"GeoStressPath":           bind(s.Geomech.StressPathMCP),
		"GeoThermalStress":        bind(s.Geomech.ThermalStressMCP),
		"GeoUCSFromLogs":          bind(s.Geomech.UCSFromLogsMCP),
		"GeoCriticalDrawdown":     bind(s.Geomech.CriticalDrawdownMCP),
	}
}

// bind captures a typed service method for later registration.
func bind[Args, Result any](method func(context.Context, Args) (Result, error)) binding {
	return func(h *HandlerRegistry, server *mcp.Server, tool *mcp.Tool, spec ToolSpec) error {
		return register(h, server, tool, spec, method)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	return &mcp.Tool{
		Name:        spec.Name,
		Title:       spec.Title,
		Description: spec.Description,
		Annotations: spec.Annotations(),
	}
}

// schemaOptions teaches schema inference about the scalar-or-array type.
var schemaOptions = &jsonschema.ForOptions{TypeSchemas: num.TypeSchemas()}

// schemasFor infers the input and output schemas of a handler.
func schemasFor[Args, Result any]() (in, out *jsonschema.Schema, err error) {
	in, err = jsonschema.For[Args](schemaOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("input schema: %w", err)
	}
	out, err = jsonschema.For[Result](schemaOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("output schema: %w", err)
	}
	return in, out, nil
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the service method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) error {
	in, out, err := schemasFor[Args, Result]()
	if err != nil {
		return fmt.Errorf("tool %s: %w", spec.Name, err)
	}
	tool.InputSchema = in
	tool.OutputSchema = out

	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (_ *mcp.CallToolResult, result Result, err error) {
		defer h.recoverPanic(spec.Name, &err)

		requestID := uuid.NewString()

		ctx, span := tracing.StartToolSpan(ctx, spec.Name, spec.Category, requestID, spec.ReadOnly)
		defer span.End()

		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err = method(ctx, args)
		elapsed := time.Since(start)
		duration := elapsed.Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))
		tracing.Finish(span, err)

		if err != nil {
			metrics.RecordRequest(spec.Name, apierrors.Class(err), duration)
			h.recordFailure(spec, requestID, err)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		metrics.RecordRequest(spec.Name, metrics.OutcomeOK, duration)
		h.logExecution(spec, requestID, elapsed, args, result)
		return nil, result, nil
	})
	return nil
}

// recordFailure logs a handler error. Rejected input is logged at info,
// solver and internal failures at warn.
func (h *HandlerRegistry) recordFailure(spec ToolSpec, requestID string, err error) {
	class := apierrors.Class(err)
	level := slog.LevelWarn
	if class == apierrors.ClassValidation || class == apierrors.ClassNotFound {
		level = slog.LevelInfo
	}
	h.logger.Log(context.Background(), level, "Tool failed",
		"tool", spec.Name,
		"category", spec.Category,
		"request_id", requestID,
		"error_class", class,
		"error", err)
}

// recoverPanic recovers from panics in tool handlers and turns them into
// a tool error.
func (h *HandlerRegistry) recoverPanic(toolName string, errp *error) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
		if errp != nil {
			*errp = fmt.Errorf("%s failed: internal error", toolName)
		}
	}
}

// loggable results describe themselves for the execution log.
type loggable interface {
	LogAttrs() []any
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, requestID string, elapsed time.Duration, args, result any) {
	attrs := []any{
		"tool", spec.Name,
		"category", spec.Category,
		"request_id", requestID,
		"duration", elapsed,
	}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case simtools.ProblemCellsArgs:
		attrs = append(attrs, "file", a.Filename)
	case simtools.DeckArgs:
		attrs = append(attrs, "decks", len(a.Files2Scrape), "tozip", a.ToZip)
	case simtools.FlashArgs:
		attrs = append(attrs, "components", len(a.Zis))
	case library.ComponentArgs:
		attrs = append(attrs, "component", a.Component, "eos", a.EOS)
	case layer.LayerDistributionArgs:
		attrs = append(attrs, "nlay", a.NLay)
	}

	// Add extractable fields from result
	switch r := result.(type) {
	case loggable:
		attrs = append(attrs, r.LogAttrs()...)
	case oil.BlackOilTableResult:
		metrics.TableRows.WithLabelValues(spec.Name).Observe(float64(len(r.Table)))
		attrs = append(attrs, "rows", len(r.Table), "pb", r.Summary.BubblePointPsia)
	case simtools.RelPermResult:
		metrics.TableRows.WithLabelValues(spec.Name).Observe(float64(r.Rows))
		attrs = append(attrs, "rows", r.Rows, "table", r.TableType)
	case simtools.InfluenceResult:
		metrics.TableRows.WithLabelValues(spec.Name).Observe(float64(r.Rows))
		attrs = append(attrs, "rows", r.Rows)
	case simtools.FlashResponse:
		attrs = append(attrs, "iterations", r.Iterations, "phase", r.Phase)
	case simtools.ProblemCellsResult:
		attrs = append(attrs, "problems", r.TotalProblems)
	case simtools.DeckResult:
		attrs = append(attrs, "found", r.Validation.FilesFound, "missing", r.Validation.FilesMissing)
	case layer.LayerDistributionResult:
		metrics.TableRows.WithLabelValues(spec.Name).Observe(float64(len(r.Layers)))
		attrs = append(attrs, "layers", len(r.Layers))
	case library.ComponentResult:
		attrs = append(attrs, "kind", r.Kind)
	case geomech.ShearFailureCriteriaResult:
		attrs = append(attrs, "criteria", len(r.CriteriaResults))
	}

	h.logger.Info("Tool executed", attrs...)
}
