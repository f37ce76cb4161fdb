package geomech

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/olgasafonova/restoolbox-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/num"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/validate"
)

const (
	unitsPsi      = "psi"
	unitsGradient = "psi/ft"
	unitsMixed    = "psi, psi/ft, ppg"
)

// VerticalStressMCP is the MCP wrapper for VerticalStress
func (s *Service) VerticalStressMCP(ctx context.Context, args VerticalStressArgs) (GradientResult[VerticalStressArgs], error) {
	if err := validate.Args(&args); err != nil {
		return GradientResult[VerticalStressArgs]{}, err
	}
	sv, err := VerticalStress(args.Depth, args.WaterDepth, args.AvgDensity, args.WaterDensity)
	if err != nil {
		return GradientResult[VerticalStressArgs]{}, err
	}
	return GradientResult[VerticalStressArgs]{
		Value:         sv,
		Gradient:      sv / args.Depth,
		Units:         unitsPsi,
		GradientUnits: unitsGradient,
		Method:        "Integrated bulk density",
		Inputs:        args,
	}, nil
}

// PorePressureEatonMCP is the MCP wrapper for EatonPorePressure
func (s *Service) PorePressureEatonMCP(ctx context.Context, args PorePressureEatonArgs) (PorePressureResult, error) {
	if err := validate.Args(&args); err != nil {
		return PorePressureResult{}, err
	}
	hydro := Hydrostatic(args.Depth)
	if args.OverburdenPsi <= hydro {
		return PorePressureResult{}, apierrors.NewValidationError("overburden_psi", fmt.Sprintf("%g", args.OverburdenPsi),
			fmt.Sprintf("must exceed hydrostatic pressure %.0f psi at this depth", hydro))
	}

	ratio := args.NormalValue / args.ObservedValue
	if args.Method == "resistivity" {
		ratio = args.ObservedValue / args.NormalValue
	}
	pp := EatonPorePressure(args.OverburdenPsi, hydro, ratio, args.EatonExponent)

	return PorePressureResult{
		GradientResult: GradientResult[PorePressureEatonArgs]{
			Value:         pp,
			Gradient:      pp / args.Depth,
			Units:         unitsPsi,
			GradientUnits: unitsGradient,
			Method:        fmt.Sprintf("Eaton (1975), %s, exponent %g", args.Method, args.EatonExponent),
			Inputs:        args,
		},
		Overpressure: pp - hydro,
		Hydrostatic:  hydro,
	}, nil
}

// EffectiveStressMCP is the MCP wrapper for EffectiveStress
func (s *Service) EffectiveStressMCP(ctx context.Context, args EffectiveStressArgs) (base.Response[EffectiveStressArgs], error) {
	if err := validate.Args(&args); err != nil {
		return base.Response[EffectiveStressArgs]{}, err
	}
	v, err := num.MapN(func(i int) (float64, error) {
		return EffectiveStress(args.TotalStress.At(i), args.PorePressure.At(i), args.BiotCoefficient), nil
	}, args.TotalStress, args.PorePressure)
	if err != nil {
		return base.Response[EffectiveStressArgs]{}, err
	}
	return base.NewResponse(v, "Biot effective stress", unitsPsi, args), nil
}

// HorizontalStressMCP is the MCP wrapper for HorizontalStress
func (s *Service) HorizontalStressMCP(ctx context.Context, args HorizontalStressArgs) (HorizontalStressResult, error) {
	if err := validate.Args(&args); err != nil {
		return HorizontalStressResult{}, err
	}
	shmin, shmax, regime := HorizontalStress(args.VerticalStress, args.PorePressure,
		args.PoissonRatio, args.TectonicFactor, args.BiotCoefficient)
	return HorizontalStressResult{
		SigmaHMin:    shmin,
		SigmaHMax:    shmax,
		StressRegime: regime,
		Method:       "Uniaxial strain with tectonic factor",
		Units:        unitsPsi,
		Inputs:       args,
	}, nil
}

// ElasticModuliMCP is the MCP wrapper for ConvertModuli
func (s *Service) ElasticModuliMCP(ctx context.Context, args ElasticModuliArgs) (ElasticModuliResult, error) {
	if err := validate.Args(&args); err != nil {
		return ElasticModuliResult{}, err
	}
	m, err := ConvertModuli(args.YoungsModulus, args.BulkModulus, args.ShearModulus, args.PoissonRatio, args.LameParameter)
	if err != nil {
		return ElasticModuliResult{}, err
	}
	return ElasticModuliResult{
		YoungsModulus: m.E,
		BulkModulus:   m.K,
		ShearModulus:  m.G,
		PoissonRatio:  m.Nu,
		LameParameter: m.Lambda,
		Units:         "psi (poisson_ratio dimensionless)",
		Inputs:        args,
	}, nil
}

// RockStrengthMCP is the MCP wrapper for MohrCoulomb
func (s *Service) RockStrengthMCP(ctx context.Context, args RockStrengthArgs) (RockStrengthResult, error) {
	if err := validate.Args(&args); err != nil {
		return RockStrengthResult{}, err
	}
	m := MohrCoulomb{Cohesion: args.Cohesion, Friction: args.FrictionAngle}
	ucs := m.UCS()
	s1 := m.Sigma1AtFailure(ucs, args.EffectiveStressMin)
	s3 := args.EffectiveStressMin

	phi := deg2rad(args.FrictionAngle)
	sn := (s1+s3)/2 - (s1-s3)/2*math.Sin(phi)

	return RockStrengthResult{
		MaxPrincipalStress: s1,
		ShearStrength:      args.Cohesion + sn*math.Tan(phi),
		UnconfinedStrength: ucs,
		QFactor:            m.Q(),
		Method:             "Mohr-Coulomb",
		Units:              unitsPsi,
		Inputs:             args,
	}, nil
}

// DynamicToStaticMCP is the MCP wrapper for DynamicToStaticFactors
func (s *Service) DynamicToStaticMCP(ctx context.Context, args DynamicToStaticArgs) (DynamicToStaticResult, error) {
	if err := validate.Args(&args); err != nil {
		return DynamicToStaticResult{}, err
	}
	if args.DynamicYoungs == nil && args.DynamicPoisson == nil {
		return DynamicToStaticResult{}, apierrors.NewValidationError("dynamic_youngs", "",
			"provide dynamic_youngs, dynamic_poisson or both")
	}
	ef, nf := DynamicToStaticFactors(args.Correlation, args.Lithology)

	res := DynamicToStaticResult{
		CorrectionFactor: ef,
		PoissonFactor:    nf,
		Units:            unitsPsi,
		Inputs:           args,
	}
	if args.DynamicYoungs != nil {
		e := *args.DynamicYoungs * ef
		res.StaticYoungs = &e
	}
	if args.DynamicPoisson != nil {
		nu := *args.DynamicPoisson * nf
		res.StaticPoisson = &nu
	}
	return res, nil
}

// BreakoutWidthMCP is the MCP wrapper for BreakoutWidth
func (s *Service) BreakoutWidthMCP(ctx context.Context, args BreakoutWidthArgs) (BreakoutWidthResult, error) {
	if err := validate.Args(&args); err != nil {
		return BreakoutWidthResult{}, err
	}
	q := MohrCoulomb{Friction: args.FrictionAngle}.Q()
	pw := MudPressure(args.MudWeight, args.Depth)
	b := BreakoutWidth(args.SigmaHMax, args.SigmaHMin, args.PorePressure, pw, args.UCS, q)
	collapse := CollapsePressure(args.SigmaHMax, args.SigmaHMin, args.PorePressure, args.UCS, q)

	return BreakoutWidthResult{
		BreakoutWidth:       b.Width,
		MaxTangentialStress: b.MaxHoop,
		FailureStatus:       b.Status,
		CriticalMudWeight:   EquivalentMudWeight(math.Max(collapse, 0), args.Depth),
		MudPressure:         pw,
		Method:              "Kirsch vertical wellbore with Mohr-Coulomb strength",
		Units:               "degrees, psi, ppg",
		Inputs:              args,
	}, nil
}

// FractureGradientMCP is the MCP wrapper for FracturePressure
func (s *Service) FractureGradientMCP(ctx context.Context, args FractureGradientArgs) (FractureGradientResult, error) {
	if err := validate.Args(&args); err != nil {
		return FractureGradientResult{}, err
	}
	method := map[string]string{
		FracEaton:         "Eaton (1969)",
		FracHubbertWillis: "Hubbert-Willis (1957)",
		FracMatthewsKelly: "Matthews-Kelly (1967)",
	}[args.Method]

	var frac float64
	if args.SigmaHMin != nil {
		frac, method = *args.SigmaHMin, "Measured minimum horizontal stress"
	} else {
		frac = FracturePressure(args.Method, args.VerticalStress, args.PorePressure, args.PoissonRatio, args.Ki)
	}

	return FractureGradientResult{
		FracturePressure:    frac,
		FractureGradient:    frac / args.Depth,
		EquivalentMudWeight: EquivalentMudWeight(frac, args.Depth),
		Margin:              frac - args.PorePressure,
		Method:              method,
		Units:               unitsMixed,
		Inputs:              args,
	}, nil
}

// MudWeightWindowMCP is the MCP wrapper for MudWeightWindow
func (s *Service) MudWeightWindowMCP(ctx context.Context, args MudWeightWindowArgs) (MudWeightWindowResult, error) {
	if err := validate.Args(&args); err != nil {
		return MudWeightWindowResult{}, err
	}
	var collapse float64
	if args.CollapsePressure != nil {
		collapse = *args.CollapsePressure
	}
	w := MudWeightWindow(args.PorePressure, args.FracturePressure, collapse, args.Depth,
		*args.SafetyMarginOverbalance, *args.SafetyMarginFracture)
	return MudWeightWindowResult{
		MinMudWeight: w.Min,
		MaxMudWeight: w.Max,
		WindowWidth:  w.Width,
		Status:       w.Status,
		Units:        "ppg",
		Inputs:       args,
	}, nil
}

// CriticalMudWeightMCP is the MCP wrapper for CollapsePressure on an
// arbitrarily oriented well
func (s *Service) CriticalMudWeightMCP(ctx context.Context, args CriticalMudWeightArgs) (CriticalMudWeightResult, error) {
	if err := validate.Args(&args); err != nil {
		return CriticalMudWeightResult{}, err
	}
	m := MohrCoulomb{Cohesion: args.Cohesion, Friction: args.FrictionAngle}
	ucs := m.UCS()

	w := ToWellFrame(Principal{SV: *args.SigmaV, SHmax: args.SigmaHMax, Shmin: args.SigmaHMin},
		args.WellboreAzimuth, args.WellboreInclination)
	hi, lo := math.Max(w.XX, w.YY), math.Min(w.XX, w.YY)

	collapse := CollapsePressure(hi, lo, args.PorePressure, ucs, m.Q())
	governed := "collapse"
	limit := collapse
	if collapse < args.PorePressure {
		governed, limit = "pore_pressure", args.PorePressure
	}

	return CriticalMudWeightResult{
		CriticalMudWeight: EquivalentMudWeight(limit, args.Depth),
		CollapsePressure:  collapse,
		GovernedBy:        governed,
		UCS:               ucs,
		HoopStressMax:     hi,
		HoopStressMin:     lo,
		Method:            "Kirsch with Mohr-Coulomb in the wellbore frame",
		Units:             "ppg, psi",
		Inputs:            args,
	}, nil
}

// ReservoirCompactionMCP is the MCP wrapper for UniaxialCompaction
func (s *Service) ReservoirCompactionMCP(ctx context.Context, args ReservoirCompactionArgs) (ReservoirCompactionResult, error) {
	if err := validate.Args(&args); err != nil {
		return ReservoirCompactionResult{}, err
	}
	nu := args.PoissonRatio
	cb := BulkCompressibility(args.YoungsModulus, nu)
	cm := UniaxialCompaction(args.YoungsModulus, nu)
	if args.BulkCompressibility != nil {
		cb = *args.BulkCompressibility
		cm = cb * (1 + nu) / (3 * (1 - nu))
	}

	strain := cm * args.BiotCoefficient * args.PressureDrop
	compaction := strain * args.ReservoirThickness
	return ReservoirCompactionResult{
		Compaction:            compaction,
		Subsidence:            compaction * args.SubsidenceRatio,
		Strain:                strain,
		CompactionCoefficient: cm,
		BulkCompressibility:   cb,
		Units:                 "ft, 1/psi",
		Inputs:                args,
	}, nil
}

// PoreCompressibilityMCP is the MCP wrapper for PoreCompressibility
func (s *Service) PoreCompressibilityMCP(ctx context.Context, args PoreCompressibilityArgs) (PoreCompressibilityResult, error) {
	if err := validate.Args(&args); err != nil {
		return PoreCompressibilityResult{}, err
	}
	var cb float64
	switch {
	case args.BulkCompressibility != nil:
		cb = *args.BulkCompressibility
	case args.YoungsModulus != nil && args.PoissonRatio != nil:
		cb = BulkCompressibility(*args.YoungsModulus, *args.PoissonRatio)
	default:
		return PoreCompressibilityResult{}, apierrors.NewValidationError("bulk_compressibility", "",
			"provide bulk_compressibility, or youngs_modulus with poisson_ratio")
	}
	if cb <= args.GrainCompressibility {
		return PoreCompressibilityResult{}, apierrors.NewValidationError("bulk_compressibility", fmt.Sprintf("%g", cb),
			"must exceed grain_compressibility")
	}
	return PoreCompressibilityResult{
		PoreCompressibility: PoreCompressibility(cb, args.GrainCompressibility, args.Porosity),
		BulkCompressibility: cb,
		Units:               "1/psi",
		TypicalRange:        "3e-6 to 2e-5 1/psi for consolidated sandstone",
		Inputs:              args,
	}, nil
}

// LeakOffMCP interprets a leak-off or formation integrity test
func (s *Service) LeakOffMCP(ctx context.Context, args LeakOffArgs) (LeakOffResult, error) {
	if err := validate.Args(&args); err != nil {
		return LeakOffResult{}, err
	}
	p := args.LeakOffPressure + MudPressure(args.MudWeight, args.TestDepth)

	res := LeakOffResult{
		SigmaHMin:           p,
		FractureGradient:    p / args.TestDepth,
		EquivalentMudWeight: EquivalentMudWeight(p, args.TestDepth),
		TestPressureAtDepth: p,
		Units:               unitsMixed,
		Inputs:              args,
	}
	if args.TestType == "LOT" {
		res.BreakdownPressure = &p
	} else {
		res.Note = "FIT stopped before leak-off; values are lower bounds"
	}
	if p <= args.PorePressure {
		res.Note = "Test pressure at depth does not exceed pore pressure; check inputs"
	}
	return res, nil
}

// FractureWidthMCP is the MCP wrapper for FractureWidth
func (s *Service) FractureWidthMCP(ctx context.Context, args FractureWidthArgs) (FractureWidthResult, error) {
	if err := validate.Args(&args); err != nil {
		return FractureWidthResult{}, err
	}
	avg, maxW := FractureWidth(args.Model, args.NetPressure, args.FractureHeight,
		args.FractureHalfLength, args.YoungsModulus, args.PoissonRatio)
	return FractureWidthResult{
		AvgWidth:           avg,
		MaxWidth:           maxW,
		FractureCompliance: avg / args.NetPressure,
		ModelUsed:          args.Model,
		Units:              "inches",
		Inputs:             args,
	}, nil
}

// StressPolygonMCP is the MCP wrapper for StressPolygon
func (s *Service) StressPolygonMCP(ctx context.Context, args StressPolygonArgs) (StressPolygonResult, error) {
	if err := validate.Args(&args); err != nil {
		return StressPolygonResult{}, err
	}
	if args.PorePressure >= args.VerticalStress {
		return StressPolygonResult{}, apierrors.NewValidationError("pore_pressure", fmt.Sprintf("%g", args.PorePressure),
			"must be less than vertical_stress")
	}
	p := StressPolygon(args.VerticalStress, args.PorePressure, args.FrictionCoefficient)

	res := StressPolygonResult{
		NormalFaulting: RegimeBounds{
			Lower:       p.NormalShminMin, Upper: p.NormalShminMax, Stress: "sigma_h_min",
			Description: "Sv >= SHmax >= Shmin",
		},
		StrikeSlip: RegimeBounds{
			Lower:       p.StrikeSlipShmin, Upper: p.StrikeSlipShmax, Stress: "sigma_h_min to sigma_h_max",
			Description: "SHmax >= Sv >= Shmin",
		},
		ReverseFaulting: RegimeBounds{
			Lower:       p.ReverseShmaxMin, Upper: p.ReverseShmaxMax, Stress: "sigma_h_max",
			Description: "SHmax >= Shmin >= Sv",
		},
		FrictionCoefficient: args.FrictionCoefficient,
		StressRatioLimit:    p.Q,
		Units:               unitsPsi,
		Inputs:              args,
	}

	if args.SigmaHMin != nil && args.SigmaHMax != nil {
		sh, sH := *args.SigmaHMin, *args.SigmaHMax
		st := &StressState{
			Regime:                 ClassifyRegime(args.VerticalStress, sH, sh),
			WithinFrictionalLimits: WithinFrictionalLimits(args.VerticalStress, sH, sh, args.PorePressure, p.Q),
		}
		sve := args.VerticalStress - args.PorePressure
		if she := sh - args.PorePressure; she > 0 {
			r := sve / she
			st.SigmaVOverSigmaHMin = &r
		}
		r := (sH - args.PorePressure) / sve
		st.SigmaHMaxOverSigmaV = &r
		res.ActualStressState = st
	}
	return res, nil
}

// Sanding risk classes
const (
	SandingLow      = "low"
	SandingModerate = "moderate"
	SandingHigh     = "high"
)

// SandProductionMCP is the MCP wrapper for SandingDrawdown
func (s *Service) SandProductionMCP(ctx context.Context, args SandProductionArgs) (SandProductionResult, error) {
	if err := validate.Args(&args); err != nil {
		return SandProductionResult{}, err
	}
	ucs := args.UCS
	if ucs == 0 {
		ucs = MohrCoulomb{Cohesion: args.Cohesion, Friction: args.FrictionAngle}.UCS()
	}
	if ucs <= 0 {
		return SandProductionResult{}, apierrors.NewValidationError("ucs", "0", "provide ucs or a positive cohesion")
	}

	dd := SandingDrawdown(args.SigmaHMax, args.SigmaHMin, args.PorePressure, ucs)
	risk, action := SandingHigh, "Sand control required (gravel pack or screens)"
	switch {
	case dd > 1000 && ucs > 2000:
		risk, action = SandingLow, "Natural completion acceptable; monitor sand at high rates"
	case dd > 500 || ucs > 1000:
		risk, action = SandingModerate, "Limit drawdown or use oriented perforations"
	}

	hoop := 3*(args.SigmaHMax-args.PorePressure) - (args.SigmaHMin - args.PorePressure)
	s.Logger.Debug("Sanding assessment", "critical_drawdown", dd, "ucs", ucs, "risk", risk)
	return SandProductionResult{
		CriticalDrawdown:    dd,
		CriticalFlowingBHP:  args.PorePressure - dd,
		SandingRisk:         risk,
		RecommendedAction:   action,
		UCSUsed:             ucs,
		TWCStrengthEstimate: 2 * ucs,
		StressConcentration: hoop / ucs,
		Units:               unitsPsi,
		Inputs:              args,
	}, nil
}

// FaultStabilityMCP is the MCP wrapper for ResolveOnFault
func (s *Service) FaultStabilityMCP(ctx context.Context, args FaultStabilityArgs) (FaultStabilityResult, error) {
	if err := validate.Args(&args); err != nil {
		return FaultStabilityResult{}, err
	}
	if args.Sigma1 < args.Sigma3 {
		return FaultStabilityResult{}, apierrors.NewValidationError("sigma_1", fmt.Sprintf("%g", args.Sigma1),
			"must be greater than or equal to sigma_3")
	}
	mu, pp := args.FrictionCoefficient, args.PorePressure

	fs := ResolveOnFault(args.Sigma1-pp, args.Sigma3-pp, args.FaultDip)
	sn := fs.Normal + pp
	ppCrit := sn - (fs.Shear-args.Cohesion)/mu

	status := "stable"
	switch {
	case fs.Normal <= 0 || fs.Slip >= mu:
		status = "critically stressed"
	case fs.Slip >= 0.8*mu:
		status = "near critical"
	}

	return FaultStabilityResult{
		SlipTendency:         fs.Slip,
		DilationTendency:     fs.Dilation,
		CoulombStress:        CoulombStress(fs, mu, args.Cohesion),
		CriticalPorePressure: ppCrit,
		PPIncreaseToSlip:     ppCrit - pp,
		NormalStressOnFault:  sn,
		ShearStressOnFault:   fs.Shear,
		StabilityStatus:      status,
		Note:                 "Resolved in the sigma_1-sigma_3 plane with sigma_1 vertical; strike and sigma_1 azimuth are not used",
		Units:                unitsPsi,
		Inputs:               args,
	}, nil
}

// DeviatedWellStressMCP is the MCP wrapper for ToWellFrame and WallStresses
func (s *Service) DeviatedWellStressMCP(ctx context.Context, args DeviatedWellStressArgs) (DeviatedWellStressResult, error) {
	if err := validate.Args(&args); err != nil {
		return DeviatedWellStressResult{}, err
	}
	return base.Memo(ctx, s.Engine, "deviated_well_stress", args, func() (DeviatedWellStressResult, error) {
		relAz := math.Mod(args.WellAzimuth-args.SigmaHMaxAzimuth+360, 360)
		w := ToWellFrame(Principal{SV: args.SigmaV, SHmax: args.SigmaHMax, Shmin: args.SigmaHMin},
			relAz, args.WellInclination)
		principal, err := PrincipalValues(w.Tensor())
		if err != nil {
			return DeviatedWellStressResult{}, err
		}
		pw := MudPressure(args.MudWeight, args.Depth)
		pts, err := WallStresses(w, pw, args.PoissonRatio, 1)
		if err != nil {
			return DeviatedWellStressResult{}, err
		}

		wall := summarizeWall(pts)
		s.Logger.Debug("Deviated well stress", "relative_azimuth", relAz,
			"inclination", args.WellInclination, "max_hoop", wall.MaxHoopStress)
		return DeviatedWellStressResult{
			TransformedStresses: TransformedStresses{
				SigmaXX: w.XX, SigmaYY: w.YY, SigmaZZ: w.ZZ,
				TauXY:   w.XY, TauXZ: w.XZ, TauYZ: w.YZ,
			},
			PrincipalStresses:    principal,
			WellboreWallStresses: wall,
			MudPressure:          pw,
			RelativeAzimuth:      relAz,
			Method:               "Tensor rotation with Kirsch wall stresses (1 degree scan)",
			Units:                unitsPsi,
			Inputs:               args,
		}, nil
	})
}

func summarizeWall(pts []WallPoint) WallStressSummary {
	hi, lo, minP := pts[0], pts[0], pts[0]
	maxP := pts[0].Max
	for _, p := range pts[1:] {
		if p.Hoop > hi.Hoop {
			hi = p
		}
		if p.Hoop < lo.Hoop {
			lo = p
		}
		if p.Min < minP.Min {
			minP = p
		}
		maxP = math.Max(maxP, p.Max)
	}
	return WallStressSummary{
		MaxHoopStress:      hi.Hoop,
		MaxHoopAngle:       hi.Theta,
		MinHoopStress:      lo.Hoop,
		MinHoopAngle:       lo.Theta,
		RadialStress:       hi.Radial,
		AxialStress:        hi.Axial,
		MaxPrincipalStress: maxP,
		MinPrincipalStress: minP.Min,
		MinPrincipalAngle:  minP.Theta,
	}
}

// TensileFailureMCP is the MCP wrapper for FractureInitiation
func (s *Service) TensileFailureMCP(ctx context.Context, args TensileFailureArgs) (TensileFailureResult, error) {
	if err := validate.Args(&args); err != nil {
		return TensileFailureResult{}, err
	}
	pinit := FractureInitiation(args.SigmaHMax, args.SigmaHMin, args.PorePressure, args.TensileStrength, args.ThermalStress)
	return TensileFailureResult{
		FractureInitiationPressure: pinit,
		PropagationPressure:        args.SigmaHMin,
		ReopeningPressure:          FractureInitiation(args.SigmaHMax, args.SigmaHMin, args.PorePressure, 0, args.ThermalStress),
		FractureGradient:           pinit / args.Depth,
		EquivalentMudWeight:        EquivalentMudWeight(pinit, args.Depth),
		StressAnisotropy:           args.SigmaHMax / args.SigmaHMin,
		Units:                      unitsMixed,
		Inputs:                     args,
	}, nil
}

// ShearFailureCriteriaMCP evaluates a stress state against several criteria
func (s *Service) ShearFailureCriteriaMCP(ctx context.Context, args ShearFailureCriteriaArgs) (ShearFailureCriteriaResult, error) {
	if err := validate.Args(&args); err != nil {
		return ShearFailureCriteriaResult{}, err
	}
	if args.Sigma1 < args.Sigma2 || args.Sigma2 < args.Sigma3 {
		return ShearFailureCriteriaResult{}, apierrors.NewValidationError("sigma_1,sigma_2,sigma_3",
			fmt.Sprintf("%g,%g,%g", args.Sigma1, args.Sigma2, args.Sigma3), "must satisfy sigma_1 >= sigma_2 >= sigma_3")
	}
	m := MohrCoulomb{Cohesion: args.Cohesion, Friction: args.FrictionAngle}

	res := ShearFailureCriteriaResult{CriteriaResults: make(map[string]CriterionOutcome, len(args.Criteria)), Inputs: args}
	var ratios []float64
	for _, name := range args.Criteria {
		r, ok := EvaluateCriterion(name, args.Sigma1, args.Sigma2, args.Sigma3, args.UCS, m)
		if !ok {
			return ShearFailureCriteriaResult{}, apierrors.NewValidationError("criteria", name, "unknown criterion")
		}
		out := CriterionOutcome{StressMeasure: r.Demand, AtFailure: r.Capacity, Status: "stable"}
		switch {
		case math.IsInf(r.Ratio, 1):
			out.Status = "failure"
		case r.Failed():
			out.Status = "failure"
			fallthrough
		default:
			out.StrengthRatio = r.Ratio
			if r.Ratio > 0 {
				out.SafetyFactor = 1 / r.Ratio
			}
			ratios = append(ratios, r.Ratio)
		}
		if out.Status == "stable" && r.Ratio >= 0.9 {
			out.Status = "near failure"
		}
		res.CriteriaResults[name] = out
	}

	if len(ratios) > 0 {
		sort.Float64s(ratios)
		res.Summary = CriteriaSummary{
			MostConservativeRatio:  ratios[len(ratios)-1],
			LeastConservativeRatio: ratios[0],
			Sigma2EffectRange:      ratios[len(ratios)-1] - ratios[0],
		}
	}
	return res, nil
}

// BreakoutInversionMCP is the MCP wrapper for InvertBreakout
func (s *Service) BreakoutInversionMCP(ctx context.Context, args BreakoutInversionArgs) (BreakoutInversionResult, error) {
	if err := validate.Args(&args); err != nil {
		return BreakoutInversionResult{}, err
	}
	m := MohrCoulomb{Friction: args.FrictionAngle}
	pw := MudPressure(args.MudWeight, args.Depth)

	var notes []string
	shmin := 0.0
	if args.SigmaHMin != nil {
		shmin = *args.SigmaHMin
	} else {
		k0 := 0.4 + 0.4*math.Sin(deg2rad(args.FrictionAngle))
		shmin = k0*(args.SigmaV-args.PorePressure) + args.PorePressure
		notes = append(notes, fmt.Sprintf("sigma_h_min estimated with K0 = %.2f", k0))
	}

	shmax, ok := InvertBreakout(args.BreakoutWidth, shmin, args.PorePressure, pw, args.UCS, m.Q())
	if !ok {
		shmax = args.SigmaV
		notes = append(notes, "breakout width near the singular 120 degrees; sigma_h_max set to sigma_v")
	}
	if shmax < shmin {
		shmax = 1.2 * shmin
		notes = append(notes, "inverted sigma_h_max below sigma_h_min; set to 1.2 x sigma_h_min")
	}

	confidence := "low"
	switch w := args.BreakoutWidth; {
	case w >= 30 && w <= 90:
		confidence = "high"
	case w >= 15 && w <= 120:
		confidence = "moderate"
	}

	res := BreakoutInversionResult{
		EstimatedSigmaHMax:     shmax,
		EstimatedSigmaHMin:     shmin,
		StressRatio:            shmax / shmin,
		Confidence:             confidence,
		BreakoutAngleFromSHmax: 90 - args.BreakoutWidth/2,
		MudPressure:            pw,
		Units:                  unitsPsi,
		Inputs:                 args,
	}
	for i, n := range notes {
		if i > 0 {
			res.Note += "; "
		}
		res.Note += n
	}
	return res, nil
}

// BreakdownPressureMCP is the MCP wrapper for FractureInitiation and
// HaimsonFairhurst
func (s *Service) BreakdownPressureMCP(ctx context.Context, args BreakdownPressureArgs) (BreakdownPressureResult, error) {
	if err := validate.Args(&args); err != nil {
		return BreakdownPressureResult{}, err
	}
	imp := FractureInitiation(args.SigmaHMax, args.SigmaHMin, args.PorePressure, args.TensileStrength, 0)
	perm := HaimsonFairhurst(args.SigmaHMax, args.SigmaHMin, args.PorePressure, args.TensileStrength, args.PoroelasticConstant)

	bd, method := imp, "Hubbert-Willis (non-penetrating)"
	if args.PoroelasticConstant > 0 {
		bd, method = perm, "Haimson-Fairhurst (penetrating)"
	}
	return BreakdownPressureResult{
		BreakdownPressure:    bd,
		BreakdownImpermeable: imp,
		BreakdownPermeable:   perm,
		ISIPEstimate:         args.SigmaHMin,
		ClosurePressure:      args.SigmaHMin,
		FractureOrientation:  "vertical, parallel to sigma_h_max",
		Method:               method,
		Units:                unitsPsi,
		Inputs:               args,
	}, nil
}

// StressPathMCP is the MCP wrapper for PoroelasticStressPath
func (s *Service) StressPathMCP(ctx context.Context, args StressPathArgs) (StressPathResult, error) {
	if err := validate.Args(&args); err != nil {
		return StressPathResult{}, err
	}
	gamma := PoroelasticStressPath(args.PoissonRatio, args.BiotCoefficient)
	if args.StressPathCoefficient != nil {
		gamma = *args.StressPathCoefficient
	}
	dpp := args.FinalPorePressure - args.InitialPorePressure
	dsh := gamma * dpp

	res := StressPathResult{
		InitialSigmaH:         args.InitialSigmaH,
		FinalSigmaH:           args.InitialSigmaH + dsh,
		DeltaSigmaH:           dsh,
		DeltaPorePressure:     dpp,
		StressPathCoefficient: gamma,
		DeltaEffectiveStressH: dsh - args.BiotCoefficient*dpp,
		DeltaEffectiveStressV: -args.BiotCoefficient * dpp,
		Units:                 unitsPsi,
		Inputs:                args,
	}
	switch {
	case dpp < 0:
		res.Operation = "depletion"
		res.EffectiveStressTrend = "increasing"
		res.FaultStabilityImpact = "Differential stress grows; normal faults move toward slip"
	case dpp > 0:
		res.Operation = "injection"
		res.EffectiveStressTrend = "decreasing"
		res.FaultStabilityImpact = "Effective stresses fall; faults of all orientations move toward slip"
	default:
		res.Operation = "none"
		res.EffectiveStressTrend = "unchanged"
		res.FaultStabilityImpact = "No change"
	}
	return res, nil
}

// ThermalStressMCP is the MCP wrapper for ThermalStress
func (s *Service) ThermalStressMCP(ctx context.Context, args ThermalStressArgs) (ThermalStressResult, error) {
	if err := validate.Args(&args); err != nil {
		return ThermalStressResult{}, err
	}
	ds := ThermalStress(args.YoungsModulus, args.PoissonRatio, args.ThermalExpansionCoefficient, args.TemperatureChange)

	res := ThermalStressResult{
		ThermalStress:             ds,
		HoopStressChange:          ds,
		EquivalentMudWeightChange: EquivalentMudWeight(ds, args.Depth),
		TemperatureChange:         args.TemperatureChange,
		Units:                     "psi, ppg",
		Inputs:                    args,
	}
	switch {
	case args.TemperatureChange < 0:
		res.StabilityEffect = "Cooling lowers hoop stress and improves shear stability"
		res.FractureEffect = "Cooling lowers fracture initiation pressure"
		res.MudWeightEffect = fmt.Sprintf("Fracture limit reduced by %.2f ppg", -res.EquivalentMudWeightChange)
	case args.TemperatureChange > 0:
		res.StabilityEffect = "Heating raises hoop stress and increases collapse risk"
		res.FractureEffect = "Heating raises fracture initiation pressure"
		res.MudWeightEffect = fmt.Sprintf("Collapse limit raised by %.2f ppg", res.EquivalentMudWeightChange)
	default:
		res.StabilityEffect = "No thermal effect"
		res.FractureEffect = "No thermal effect"
		res.MudWeightEffect = "No change"
	}
	return res, nil
}

var nativeLithology = map[string]string{
	UCSMcNally: "sandstone",
	UCSChang:   "sandstone",
	UCSVernik:  "sandstone",
	UCSHorsrud: "shale",
	UCSLal:     "shale",
}

// UCSFromLogsMCP is the MCP wrapper for UCSFromLogs
func (s *Service) UCSFromLogsMCP(ctx context.Context, args UCSFromLogsArgs) (UCSFromLogsResult, error) {
	if err := validate.Args(&args); err != nil {
		return UCSFromLogsResult{}, err
	}
	est, err := UCSFromLogs(args.Correlation, UCSInputs{SonicDT: args.SonicDT, Phi: args.Porosity, E: args.YoungsModulus})
	if err != nil {
		return UCSFromLogsResult{}, err
	}

	confidence := "low"
	if !est.Fallback && (args.Lithology == "general" || nativeLithology[est.Correlation] == args.Lithology) {
		confidence = "moderate"
	}
	if est.Fallback {
		s.Logger.Debug("UCS correlation fell back", "requested", args.Correlation, "used", est.Correlation)
	}
	return UCSFromLogsResult{
		UCS:              est.UCS,
		CohesionEstimate: est.UCS / 3.5,
		CorrelationUsed:  est.Correlation,
		Lithology:        args.Lithology,
		TypicalRangePsi:  est.Range,
		Confidence:       confidence,
		Units:            unitsPsi,
		Inputs:           args,
	}, nil
}

// CriticalDrawdownMCP is the MCP wrapper for CollapsePressure on a
// producing well
func (s *Service) CriticalDrawdownMCP(ctx context.Context, args CriticalDrawdownArgs) (CriticalDrawdownResult, error) {
	if err := validate.Args(&args); err != nil {
		return CriticalDrawdownResult{}, err
	}
	pr := args.ReservoirPressure
	q := MohrCoulomb{Cohesion: args.Cohesion, Friction: args.FrictionAngle}.Q()
	pwf := CollapsePressure(args.SigmaHMax, args.SigmaHMin, pr, args.UCS, q)
	dd := num.Clamp(pr-pwf, 0, pr)
	safe := 0.8 * dd

	mech := "Stable to high drawdown"
	switch {
	case dd < 500:
		mech = "Shear failure at low drawdown; sand control likely required"
	case dd < 1500:
		mech = "Shear failure at moderate drawdown"
	}
	return CriticalDrawdownResult{
		CriticalDrawdown:   dd,
		CriticalFlowingBHP: pr - dd,
		SafeDrawdown80Pct:  safe,
		SafeRateFactor:     safe / pr,
		FailureMechanism:   mech,
		UCSUsed:            args.UCS,
		QFactor:            q,
		Units:              unitsPsi,
		Inputs:             args,
	}, nil
}
