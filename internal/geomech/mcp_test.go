package geomech

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/olgasafonova/restoolbox-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/num"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	e := base.NewEngine()
	t.Cleanup(e.Close)
	return NewService(e)
}

func TestVerticalStressMCP_Defaults(t *testing.T) {
	s := newTestService(t)
	res, err := s.VerticalStressMCP(context.Background(), VerticalStressArgs{Depth: 10000})
	if err != nil {
		t.Fatalf("VerticalStressMCP() error = %v", err)
	}
	if res.Inputs.AvgDensity != 144 || res.Inputs.WaterDensity != 64 {
		t.Errorf("defaults not applied: %+v", res.Inputs)
	}
	assertClose(t, "sv", res.Value, 10010.695187165775, 1e-12)
	assertClose(t, "gradient", res.Gradient, 1.0010695187165775, 1e-12)
}

func TestPorePressureEatonMCP(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	ob := 10010.695187165775

	sonic, err := s.PorePressureEatonMCP(ctx, PorePressureEatonArgs{
		Depth: 10000, ObservedValue: 120, NormalValue: 100, OverburdenPsi: ob,
	})
	if err != nil {
		t.Fatalf("PorePressureEatonMCP() error = %v", err)
	}
	assertClose(t, "sonic pp", sonic.Value, 6908.441027926321, 1e-9)
	assertClose(t, "overpressure", sonic.Overpressure, 6908.441027926321-4650, 1e-9)

	res, err := s.PorePressureEatonMCP(ctx, PorePressureEatonArgs{
		Depth: 10000, ObservedValue: 0.8, NormalValue: 1, OverburdenPsi: ob, EatonExponent: 1.2, Method: "resistivity",
	})
	if err != nil {
		t.Fatalf("PorePressureEatonMCP() error = %v", err)
	}
	assertClose(t, "resistivity pp", res.Value, 5909.323792879048, 1e-9)

	_, err = s.PorePressureEatonMCP(ctx, PorePressureEatonArgs{
		Depth: 10000, ObservedValue: 120, NormalValue: 100, OverburdenPsi: 4000,
	})
	if !apierrors.IsValidation(err) {
		t.Errorf("overburden below hydrostatic error = %v, want ValidationError", err)
	}
}

func TestEffectiveStressMCP_Shapes(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	res, err := s.EffectiveStressMCP(ctx, EffectiveStressArgs{
		TotalStress: num.Array(8000, 9000, 10000), PorePressure: num.Scalar(4000), BiotCoefficient: 0.8,
	})
	if err != nil {
		t.Fatalf("EffectiveStressMCP() error = %v", err)
	}
	if res.Value.Scalar || res.Value.Len() != 3 {
		t.Fatalf("array input should give an array, got %+v", res.Value)
	}
	assertClose(t, "effective[2]", res.Value.Data[2], 6800, 1e-12)

	scalar, err := s.EffectiveStressMCP(ctx, EffectiveStressArgs{TotalStress: num.Scalar(8000), PorePressure: num.Scalar(4000)})
	if err != nil {
		t.Fatalf("EffectiveStressMCP() error = %v", err)
	}
	if !scalar.Value.Scalar || scalar.Value.First() != 4000 {
		t.Errorf("scalar result = %+v, want scalar 4000", scalar.Value)
	}

	_, err = s.EffectiveStressMCP(ctx, EffectiveStressArgs{TotalStress: num.Array(1, 2), PorePressure: num.Array(1, 2, 3)})
	if !apierrors.IsValidation(err) {
		t.Errorf("mismatched arrays error = %v, want ValidationError", err)
	}
}

func TestElasticAndStrengthMCP(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	m, err := s.ElasticModuliMCP(ctx, ElasticModuliArgs{YoungsModulus: ptr(1e6), PoissonRatio: ptr(0.25)})
	if err != nil {
		t.Fatalf("ElasticModuliMCP() error = %v", err)
	}
	assertClose(t, "G", m.ShearModulus, 400000, 1e-12)

	r, err := s.RockStrengthMCP(ctx, RockStrengthArgs{Cohesion: 1000, FrictionAngle: 30, EffectiveStressMin: 2000})
	if err != nil {
		t.Fatalf("RockStrengthMCP() error = %v", err)
	}
	assertClose(t, "sigma1", r.MaxPrincipalStress, 9464.101615137755, 1e-12)
	assertClose(t, "shear strength", r.ShearStrength, 3232.050807568877, 1e-9)

	d, err := s.DynamicToStaticMCP(ctx, DynamicToStaticArgs{DynamicYoungs: ptr(4e6)})
	if err != nil {
		t.Fatalf("DynamicToStaticMCP() error = %v", err)
	}
	if d.StaticPoisson != nil {
		t.Errorf("static_poisson should be null without dynamic_poisson, got %v", *d.StaticPoisson)
	}
	assertClose(t, "static E", *d.StaticYoungs, 4e6*0.541, 1e-12)

	if _, err := s.DynamicToStaticMCP(ctx, DynamicToStaticArgs{}); !apierrors.IsValidation(err) {
		t.Errorf("no dynamic values error = %v, want ValidationError", err)
	}
}

func TestBreakoutWidthMCP(t *testing.T) {
	s := newTestService(t)
	res, err := s.BreakoutWidthMCP(context.Background(), BreakoutWidthArgs{
		SigmaHMax: 9000, SigmaHMin: 7000, PorePressure: 4650, MudWeight: 10, UCS: 5000, FrictionAngle: 30,
	})
	if err != nil {
		t.Fatalf("BreakoutWidthMCP() error = %v", err)
	}
	assertClose(t, "default depth", res.Inputs.Depth, 10000, 1e-12)
	assertClose(t, "width", res.BreakoutWidth, 82.81924421854171, 1e-9)
	assertClose(t, "critical mud weight", res.CriticalMudWeight, 6075/(0.052*10000), 1e-9)
	if res.FailureStatus != BreakoutModerate {
		t.Errorf("status = %q", res.FailureStatus)
	}
}

func TestFractureGradientMCP(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	res, err := s.FractureGradientMCP(ctx, FractureGradientArgs{
		Depth: 10000, VerticalStress: 10000, PorePressure: 4650, Method: FracMatthewsKelly,
	})
	if err != nil {
		t.Fatalf("FractureGradientMCP() error = %v", err)
	}
	assertClose(t, "frac", res.FracturePressure, 8662.5, 1e-12)
	if !strings.Contains(res.Method, "Matthews-Kelly") {
		t.Errorf("method = %q", res.Method)
	}

	measured, err := s.FractureGradientMCP(ctx, FractureGradientArgs{
		Depth: 10000, VerticalStress: 10000, PorePressure: 4650, SigmaHMin: ptr(7200),
	})
	if err != nil {
		t.Fatalf("FractureGradientMCP() error = %v", err)
	}
	if measured.FracturePressure != 7200 || measured.Margin != 2550 {
		t.Errorf("measured sigma_h_min should override the method: %+v", measured)
	}
}

func TestCriticalMudWeightMCP(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	args := CriticalMudWeightArgs{
		SigmaHMax: 9000, SigmaHMin: 7000, PorePressure: 4650, Cohesion: 1000, FrictionAngle: 30,
		Depth:     10000, SigmaV: ptr(10000),
	}

	vertical, err := s.CriticalMudWeightMCP(ctx, args)
	if err != nil {
		t.Fatalf("CriticalMudWeightMCP() error = %v", err)
	}
	assertClose(t, "vertical collapse", vertical.CollapsePressure, 6458.974596215561, 1e-9)
	assertClose(t, "vertical mud weight", vertical.CriticalMudWeight, 12.421104992722233, 1e-9)
	if vertical.GovernedBy != "collapse" {
		t.Errorf("governed_by = %q", vertical.GovernedBy)
	}

	// horizontal along σh,min sees σv and σH,max across the hole
	args.WellboreAzimuth, args.WellboreInclination = 90, 90
	horizontal, err := s.CriticalMudWeightMCP(ctx, args)
	if err != nil {
		t.Fatalf("CriticalMudWeightMCP() error = %v", err)
	}
	assertClose(t, "stress max", horizontal.HoopStressMax, 10000, 1e-9)
	assertClose(t, "stress min", horizontal.HoopStressMin, 9000, 1e-9)
	assertClose(t, "horizontal collapse", horizontal.CollapsePressure, 6708.974596215561, 1e-9)

	strong := args
	strong.Cohesion = 5000
	res, err := s.CriticalMudWeightMCP(ctx, strong)
	if err != nil {
		t.Fatalf("CriticalMudWeightMCP() error = %v", err)
	}
	if res.GovernedBy != "pore_pressure" {
		t.Errorf("strong rock governed_by = %q, want pore_pressure", res.GovernedBy)
	}
}

func TestCompactionMCP(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	res, err := s.ReservoirCompactionMCP(ctx, ReservoirCompactionArgs{
		PressureDrop: 1000, ReservoirThickness: 100, YoungsModulus: 1e6, PoissonRatio: 0.25,
	})
	if err != nil {
		t.Fatalf("ReservoirCompactionMCP() error = %v", err)
	}
	assertClose(t, "compaction", res.Compaction, 0.08333333333333333, 1e-12)
	assertClose(t, "subsidence", res.Subsidence, 0.65*0.08333333333333333, 1e-12)

	// supplying the same bulk compressibility gives the same answer
	same, err := s.ReservoirCompactionMCP(ctx, ReservoirCompactionArgs{
		PressureDrop: 1000, ReservoirThickness: 100, YoungsModulus: 1e6, PoissonRatio: 0.25, BulkCompressibility: ptr(1.5e-6),
	})
	if err != nil {
		t.Fatalf("ReservoirCompactionMCP() error = %v", err)
	}
	assertClose(t, "compaction from cb", same.Compaction, res.Compaction, 1e-12)

	pc, err := s.PoreCompressibilityMCP(ctx, PoreCompressibilityArgs{YoungsModulus: ptr(1e6), PoissonRatio: ptr(0.25), Porosity: 0.2})
	if err != nil {
		t.Fatalf("PoreCompressibilityMCP() error = %v", err)
	}
	assertClose(t, "pore compressibility", pc.PoreCompressibility, 6e-6, 1e-12)

	if _, err := s.PoreCompressibilityMCP(ctx, PoreCompressibilityArgs{Porosity: 0.2}); !apierrors.IsValidation(err) {
		t.Errorf("missing bulk compressibility error = %v, want ValidationError", err)
	}
}

func TestLeakOffMCP(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	lot, err := s.LeakOffMCP(ctx, LeakOffArgs{LeakOffPressure: 1500, MudWeight: 10, TestDepth: 8000, PorePressure: 3720})
	if err != nil {
		t.Fatalf("LeakOffMCP() error = %v", err)
	}
	assertClose(t, "pressure at depth", lot.TestPressureAtDepth, 1500+4160, 1e-12)
	if lot.BreakdownPressure == nil {
		t.Error("LOT should report a breakdown pressure")
	}

	fit, err := s.LeakOffMCP(ctx, LeakOffArgs{LeakOffPressure: 1500, MudWeight: 10, TestDepth: 8000, PorePressure: 3720, TestType: "FIT"})
	if err != nil {
		t.Fatalf("LeakOffMCP() error = %v", err)
	}
	if fit.BreakdownPressure != nil || fit.Note == "" {
		t.Errorf("FIT should have no breakdown pressure and a note: %+v", fit)
	}
}

func TestStressPolygonMCP(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	res, err := s.StressPolygonMCP(ctx, StressPolygonArgs{
		VerticalStress: 10000, PorePressure: 4650, SigmaHMin: ptr(7000), SigmaHMax: ptr(12000),
	})
	if err != nil {
		t.Fatalf("StressPolygonMCP() error = %v", err)
	}
	assertClose(t, "normal lower", res.NormalFaulting.Lower, 6365.057767018634, 1e-12)
	st := res.ActualStressState
	if st == nil {
		t.Fatal("actual stress state missing")
	}
	if st.Regime != RegimeStrikeSlip || !st.WithinFrictionalLimits {
		t.Errorf("stress state = %+v", st)
	}

	bare, err := s.StressPolygonMCP(ctx, StressPolygonArgs{VerticalStress: 10000, PorePressure: 4650})
	if err != nil {
		t.Fatalf("StressPolygonMCP() error = %v", err)
	}
	if bare.ActualStressState != nil {
		t.Error("no stresses given, actual_stress_state should be omitted")
	}

	if _, err := s.StressPolygonMCP(ctx, StressPolygonArgs{VerticalStress: 4000, PorePressure: 4650}); !apierrors.IsValidation(err) {
		t.Errorf("pore pressure above sv error = %v, want ValidationError", err)
	}
}

func TestSandProductionMCP(t *testing.T) {
	s := newTestService(t)
	tests := []struct {
		name string
		ucs  float64
		risk string
		dd   float64
	}{
		{"strong", 12000, SandingModerate, 650},
		{"weak", 8000, SandingModerate, 0},
		{"very strong", 14000, SandingLow, 1650},
		{"friable", 800, SandingHigh, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.SandProductionMCP(context.Background(), SandProductionArgs{
				SigmaHMax: 9000, SigmaHMin: 7000, PorePressure: 4650, UCS: tt.ucs,
				Cohesion:  500, FrictionAngle: 30, Permeability: 100, Porosity: 0.25,
			})
			if err != nil {
				t.Fatalf("SandProductionMCP() error = %v", err)
			}
			if res.SandingRisk != tt.risk {
				t.Errorf("risk = %q, want %q", res.SandingRisk, tt.risk)
			}
			if math.Abs(res.CriticalDrawdown-tt.dd) > 1e-9 {
				t.Errorf("critical drawdown = %g, want %g", res.CriticalDrawdown, tt.dd)
			}
			assertClose(t, "twc", res.TWCStrengthEstimate, 2*tt.ucs, 1e-12)
		})
	}
}

func TestFaultStabilityMCP(t *testing.T) {
	s := newTestService(t)
	res, err := s.FaultStabilityMCP(context.Background(), FaultStabilityArgs{
		Sigma1: 10000, Sigma3: 6000, PorePressure: 4650, FaultStrike: 45, FaultDip: 60,
	})
	if err != nil {
		t.Fatalf("FaultStabilityMCP() error = %v", err)
	}
	assertClose(t, "slip tendency", res.SlipTendency, 0.73704289683782, 1e-9)
	assertClose(t, "critical pp", res.CriticalPorePressure, 4113.248654051871, 1e-9)
	if res.StabilityStatus != "critically stressed" {
		t.Errorf("status = %q, want critically stressed", res.StabilityStatus)
	}
	if res.PPIncreaseToSlip >= 0 {
		t.Errorf("a critically stressed fault should need no pressure increase, got %g", res.PPIncreaseToSlip)
	}
}

func TestDeviatedWellStressMCP(t *testing.T) {
	s := newTestService(t)
	args := DeviatedWellStressArgs{
		SigmaV:          10000, SigmaHMax: 9000, SigmaHMin: 7000, SigmaHMaxAzimuth: 40, WellAzimuth: 70,
		WellInclination: 45, PorePressure: 4650, MudWeight: 10, Depth: 10000,
	}
	res, err := s.DeviatedWellStressMCP(context.Background(), args)
	if err != nil {
		t.Fatalf("DeviatedWellStressMCP() error = %v", err)
	}
	assertClose(t, "relative azimuth", res.RelativeAzimuth, 30, 1e-12)
	assertClose(t, "sigma_xx", res.TransformedStresses.SigmaXX, 9250, 1e-9)
	assertClose(t, "tau_xz", res.TransformedStresses.TauXZ, -750, 1e-9)
	assertClose(t, "principal max", res.PrincipalStresses[0], 10000, 1e-9)

	wall := res.WellboreWallStresses
	if wall.MaxHoopStress <= wall.MinHoopStress {
		t.Errorf("max hoop %g should exceed min hoop %g", wall.MaxHoopStress, wall.MinHoopStress)
	}
	if wall.MinPrincipalStress > wall.MinHoopStress {
		t.Errorf("min principal %g should not exceed min hoop %g", wall.MinPrincipalStress, wall.MinHoopStress)
	}

	again, err := s.DeviatedWellStressMCP(context.Background(), args)
	if err != nil {
		t.Fatalf("second DeviatedWellStressMCP() error = %v", err)
	}
	if again.WellboreWallStresses != wall {
		t.Error("memoised result differs")
	}
}

func TestTensileAndBreakdownMCP(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	tf, err := s.TensileFailureMCP(ctx, TensileFailureArgs{
		SigmaHMax: 9000, SigmaHMin: 7000, PorePressure: 4650, TensileStrength: 500, ThermalStress: -200,
	})
	if err != nil {
		t.Fatalf("TensileFailureMCP() error = %v", err)
	}
	assertClose(t, "initiation", tf.FractureInitiationPressure, 7650, 1e-12)
	assertClose(t, "reopening", tf.ReopeningPressure, 7150, 1e-12)

	bd, err := s.BreakdownPressureMCP(ctx, BreakdownPressureArgs{
		SigmaHMax: 9000, SigmaHMin: 7000, PorePressure: 4650, TensileStrength: 500, PoroelasticConstant: 0.5,
	})
	if err != nil {
		t.Fatalf("BreakdownPressureMCP() error = %v", err)
	}
	assertClose(t, "breakdown", bd.BreakdownPressure, 6783.333333333334, 1e-12)
	assertClose(t, "impermeable", bd.BreakdownImpermeable, 7850, 1e-12)
}

func TestShearFailureCriteriaMCP(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	res, err := s.ShearFailureCriteriaMCP(ctx, ShearFailureCriteriaArgs{
		Sigma1: 8000, Sigma2: 5000, Sigma3: 3000, UCS: 3464.101615137755, Cohesion: 1000, FrictionAngle: 30,
	})
	if err != nil {
		t.Fatalf("ShearFailureCriteriaMCP() error = %v", err)
	}
	if len(res.CriteriaResults) != 3 {
		t.Errorf("default should evaluate three criteria, got %d", len(res.CriteriaResults))
	}
	assertClose(t, "most conservative", res.Summary.MostConservativeRatio, 0.741466344083538, 1e-9)
	assertClose(t, "least conservative", res.Summary.LeastConservativeRatio, 0.6027196240074478, 1e-9)
	if got := res.CriteriaResults[CriterionMohrCoulomb].Status; got != "stable" {
		t.Errorf("mohr_coulomb status = %q", got)
	}

	_, err = s.ShearFailureCriteriaMCP(ctx, ShearFailureCriteriaArgs{
		Sigma1: 3000, Sigma2: 5000, Sigma3: 3000, UCS: 3000, Cohesion: 1000, FrictionAngle: 30,
	})
	if !apierrors.IsValidation(err) {
		t.Errorf("unordered stresses error = %v, want ValidationError", err)
	}

	_, err = s.ShearFailureCriteriaMCP(ctx, ShearFailureCriteriaArgs{
		Sigma1: 8000, Sigma2: 5000, Sigma3: 3000, UCS: 3000, Cohesion: 1000, FrictionAngle: 30, Criteria: []string{"griffith"},
	})
	if !apierrors.IsValidation(err) {
		t.Errorf("unknown criterion error = %v, want ValidationError", err)
	}
}

func TestBreakoutInversionMCP(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	res, err := s.BreakoutInversionMCP(ctx, BreakoutInversionArgs{
		BreakoutWidth: 82.81924421854171, SigmaV: 10000, PorePressure: 4650, MudWeight: 10,
		UCS:           5000, FrictionAngle: 30, Depth: 10000, SigmaHMin: ptr(7000),
	})
	if err != nil {
		t.Fatalf("BreakoutInversionMCP() error = %v", err)
	}
	assertClose(t, "shmax", res.EstimatedSigmaHMax, 9000, 1e-9)
	if res.Confidence != "high" || res.Note != "" {
		t.Errorf("confidence = %q, note = %q", res.Confidence, res.Note)
	}

	est, err := s.BreakoutInversionMCP(ctx, BreakoutInversionArgs{
		BreakoutWidth: 20, SigmaV: 10000, PorePressure: 4650, MudWeight: 10,
		UCS:           5000, FrictionAngle: 30, Depth: 10000,
	})
	if err != nil {
		t.Fatalf("BreakoutInversionMCP() error = %v", err)
	}
	assertClose(t, "estimated shmin", est.EstimatedSigmaHMin, 0.6*5350+4650, 1e-9)
	if est.Confidence != "moderate" || !strings.Contains(est.Note, "K0") {
		t.Errorf("confidence = %q, note = %q", est.Confidence, est.Note)
	}
}

func TestStressPathMCP(t *testing.T) {
	s := newTestService(t)
	res, err := s.StressPathMCP(context.Background(), StressPathArgs{
		InitialPorePressure: 5000, FinalPorePressure: 4000, VerticalStress: 10000, InitialSigmaH: 7000, PoissonRatio: 0.25,
	})
	if err != nil {
		t.Fatalf("StressPathMCP() error = %v", err)
	}
	assertClose(t, "gamma", res.StressPathCoefficient, 2.0/3, 1e-12)
	assertClose(t, "delta sh", res.DeltaSigmaH, -666.6666666666666, 1e-12)
	if res.Operation != "depletion" || res.EffectiveStressTrend != "increasing" {
		t.Errorf("operation = %q, trend = %q", res.Operation, res.EffectiveStressTrend)
	}
}

func TestThermalStressMCP(t *testing.T) {
	s := newTestService(t)
	res, err := s.ThermalStressMCP(context.Background(), ThermalStressArgs{
		TemperatureChange: -50, YoungsModulus: 2e6, PoissonRatio: 0.25,
	})
	if err != nil {
		t.Fatalf("ThermalStressMCP() error = %v", err)
	}
	assertClose(t, "thermal stress", res.ThermalStress, 800, 1e-12)
	assertClose(t, "emw change", res.EquivalentMudWeightChange, 1.5384615384615385, 1e-12)
	if !strings.HasPrefix(res.StabilityEffect, "Cooling") {
		t.Errorf("stability effect = %q", res.StabilityEffect)
	}
}

func TestUCSFromLogsMCP(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	res, err := s.UCSFromLogsMCP(ctx, UCSFromLogsArgs{SonicDT: ptr(80)})
	if err != nil {
		t.Fatalf("UCSFromLogsMCP() error = %v", err)
	}
	assertClose(t, "ucs", res.UCS, 9770.008478324504, 1e-9)
	if res.Confidence != "moderate" || res.CorrelationUsed != UCSMcNally {
		t.Errorf("correlation = %q, confidence = %q", res.CorrelationUsed, res.Confidence)
	}

	fallback, err := s.UCSFromLogsMCP(ctx, UCSFromLogsArgs{Porosity: ptr(0.15), Correlation: UCSHorsrud, Lithology: "shale"})
	if err != nil {
		t.Fatalf("UCSFromLogsMCP() error = %v", err)
	}
	if fallback.CorrelationUsed != UCSVernik || fallback.Confidence != "low" {
		t.Errorf("correlation = %q, confidence = %q", fallback.CorrelationUsed, fallback.Confidence)
	}
}

func TestCriticalDrawdownMCP(t *testing.T) {
	s := newTestService(t)
	res, err := s.CriticalDrawdownMCP(context.Background(), CriticalDrawdownArgs{
		SigmaHMax: 9000, SigmaHMin: 7000, ReservoirPressure: 5000, UCS: 12000, Cohesion: 1000, FrictionAngle: 30,
	})
	if err != nil {
		t.Fatalf("CriticalDrawdownMCP() error = %v", err)
	}
	assertClose(t, "drawdown", res.CriticalDrawdown, 500, 1e-9)
	assertClose(t, "pwf", res.CriticalFlowingBHP, 4500, 1e-9)
	assertClose(t, "safe", res.SafeDrawdown80Pct, 400, 1e-9)
}
