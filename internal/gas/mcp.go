package gas

import (
	"context"

	"github.com/olgasafonova/restoolbox-mcp-server/internal/base"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/num"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/validate"
)

// MCP Tool wrapper methods
// These methods validate Args, run the correlation per array element and
// wrap the result in the tool response envelope.

// ZFactorMCP is the MCP wrapper for ZFactor
func (s *Service) ZFactorMCP(ctx context.Context, args ZFactorArgs) (base.Response[ZFactorArgs], error) {
	if err := validate.Args(&args); err != nil {
		return base.Response[ZFactorArgs]{}, err
	}
	fl, err := NewFluid(args.SG, args.DegF, Composition{H2S: args.H2S, CO2: args.CO2, N2: args.N2}, args.Method)
	if err != nil {
		return base.Response[ZFactorArgs]{}, err
	}
	value, err := num.MapN(func(i int) (float64, error) {
		return fl.Z(args.P.At(i))
	}, args.P)
	if err != nil {
		return base.Response[ZFactorArgs]{}, err
	}
	return base.NewResponse(value, args.Method, "dimensionless", args), nil
}

// CriticalPropertiesMCP is the MCP wrapper for CriticalProperties
func (s *Service) CriticalPropertiesMCP(ctx context.Context, args CriticalPropertiesArgs) (CriticalPropertiesResult, error) {
	if err := validate.Args(&args); err != nil {
		return CriticalPropertiesResult{}, err
	}
	tc, pc, err := CriticalProperties(args.SG, Composition{H2S: args.H2S, CO2: args.CO2, N2: args.N2}, args.Method)
	if err != nil {
		return CriticalPropertiesResult{}, err
	}
	return CriticalPropertiesResult{
		Value:  CriticalValues{Tc: tc, Pc: pc},
		Method: args.Method,
		Units:  CriticalUnits{Tc: "degR", Pc: "psia"},
		Inputs: args,
	}, nil
}

// property evaluates fn at every pressure in args.
func (s *Service) property(args *PropertyArgs, fn func(*Fluid, float64) (float64, error)) (num.Values, error) {
	if err := validate.Args(args); err != nil {
		return num.Values{}, err
	}
	fl, err := args.fluid()
	if err != nil {
		return num.Values{}, err
	}
	return num.MapN(func(i int) (float64, error) {
		return fn(fl, args.P.At(i))
	}, args.P)
}

// FormationVolumeFactorMCP is the MCP wrapper for Fluid.FVF
func (s *Service) FormationVolumeFactorMCP(ctx context.Context, args PropertyArgs) (base.Response[PropertyArgs], error) {
	value, err := s.property(&args, (*Fluid).FVF)
	if err != nil {
		return base.Response[PropertyArgs]{}, err
	}
	return base.NewResponse(value, args.ZMethod, "rcf/scf", args), nil
}

// ViscosityMCP is the MCP wrapper for Fluid.Viscosity
func (s *Service) ViscosityMCP(ctx context.Context, args PropertyArgs) (base.Response[PropertyArgs], error) {
	value, err := s.property(&args, (*Fluid).Viscosity)
	if err != nil {
		return base.Response[PropertyArgs]{}, err
	}
	return base.NewResponse(value, "Lee-Gonzalez-Eakin", "cP", args), nil
}

// DensityMCP is the MCP wrapper for Fluid.Density
func (s *Service) DensityMCP(ctx context.Context, args PropertyArgs) (base.Response[PropertyArgs], error) {
	value, err := s.property(&args, (*Fluid).Density)
	if err != nil {
		return base.Response[PropertyArgs]{}, err
	}
	return base.NewResponse(value, args.ZMethod, "lb/cuft", args), nil
}

// CompressibilityMCP is the MCP wrapper for Fluid.Compressibility
func (s *Service) CompressibilityMCP(ctx context.Context, args PropertyArgs) (base.Response[PropertyArgs], error) {
	value, err := s.property(&args, (*Fluid).Compressibility)
	if err != nil {
		return base.Response[PropertyArgs]{}, err
	}
	return base.NewResponse(value, args.ZMethod, "1/psi", args), nil
}

// PseudopressureMCP is the MCP wrapper for Fluid.Pseudopressure.
// Results are memoised since each element needs a 50-point quadrature.
func (s *Service) PseudopressureMCP(ctx context.Context, args PseudopressureArgs) (base.Response[PseudopressureArgs], error) {
	if err := validate.Args(&args); err != nil {
		return base.Response[PseudopressureArgs]{}, err
	}
	value, err := base.Memo(ctx, s.Engine, "gas_pseudopressure", args, func() (num.Values, error) {
		fl, err := NewFluid(args.SG, args.DegF, Composition{H2S: args.H2S, CO2: args.CO2, N2: args.N2}, args.ZMethod)
		if err != nil {
			return num.Values{}, err
		}
		return num.MapN(func(i int) (float64, error) {
			return fl.Pseudopressure(args.P1.At(i), args.P2.At(i))
		}, args.P1, args.P2)
	})
	if err != nil {
		return base.Response[PseudopressureArgs]{}, err
	}
	return base.NewResponse(value, "Pseudopressure integration using "+args.ZMethod, "psia²/cP", args), nil
}

// PressureFromPZMCP is the MCP wrapper for Fluid.PressureFromPZ
func (s *Service) PressureFromPZMCP(ctx context.Context, args PressureFromPZArgs) (base.Response[PressureFromPZArgs], error) {
	if err := validate.Args(&args); err != nil {
		return base.Response[PressureFromPZArgs]{}, err
	}
	fl, err := NewFluid(args.SG, args.DegF, Composition{H2S: args.H2S, CO2: args.CO2, N2: args.N2}, args.ZMethod)
	if err != nil {
		return base.Response[PressureFromPZArgs]{}, err
	}
	value, err := num.MapN(func(i int) (float64, error) {
		return fl.PressureFromPZ(args.PZ.At(i))
	}, args.PZ)
	if err != nil {
		return base.Response[PressureFromPZArgs]{}, err
	}
	return base.NewResponse(value, "Iterative solution using "+args.ZMethod, "psia", args), nil
}

// SGFromGradientMCP is the MCP wrapper for SGFromGradient
func (s *Service) SGFromGradientMCP(ctx context.Context, args SGFromGradientArgs) (base.Response[SGFromGradientArgs], error) {
	if err := validate.Args(&args); err != nil {
		return base.Response[SGFromGradientArgs]{}, err
	}
	value, err := num.MapN(func(i int) (float64, error) {
		return SGFromGradient(args.Grad.At(i), args.DegF, args.P)
	}, args.Grad)
	if err != nil {
		return base.Response[SGFromGradientArgs]{}, err
	}
	return base.NewResponse(value, "Gradient inversion (Brent)", "dimensionless (air=1)", args), nil
}

// WaterContentMCP is the MCP wrapper for WaterContent
func (s *Service) WaterContentMCP(ctx context.Context, args WaterContentArgs) (base.Response[WaterContentArgs], error) {
	if err := validate.Args(&args); err != nil {
		return base.Response[WaterContentArgs]{}, err
	}
	value, err := num.MapN(func(i int) (float64, error) {
		return WaterContent(args.P.At(i), args.DegF.At(i)), nil
	}, args.P, args.DegF)
	if err != nil {
		return base.Response[WaterContentArgs]{}, err
	}
	resp := base.NewResponse(value, "Bukacek (1955) correlation", "lb/MMscf", args)
	resp.Note = "For hydrate prevention, compare to the hydrate formation curve"
	return resp, nil
}

// SGFromCompositionMCP is the MCP wrapper for SGFromComposition
func (s *Service) SGFromCompositionMCP(ctx context.Context, args SGFromCompositionArgs) (SGFromCompositionResult, error) {
	if err := validate.Args(&args); err != nil {
		return SGFromCompositionResult{}, err
	}
	sg, hcFrac, err := SGFromComposition(args.HCMW, args.CO2, args.H2S, args.N2, args.H2)
	if err != nil {
		return SGFromCompositionResult{}, err
	}
	return SGFromCompositionResult{
		GasSpecificGravity: sg,
		Composition: CompositionBreakdown{
			HydrocarbonFraction: hcFrac,
			HydrocarbonMW:       args.HCMW,
			CO2Fraction:         args.CO2,
			H2SFraction:         args.H2S,
			N2Fraction:          args.N2,
			H2Fraction:          args.H2,
			MixtureMW:           sg * MWAir,
		},
		Method: "Molecular weight weighted average",
		Units:  "dimensionless (air=1)",
		Inputs: args,
	}, nil
}
