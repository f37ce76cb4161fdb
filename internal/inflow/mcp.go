package inflow

import (
	"context"

	"github.com/olgasafonova/restoolbox-mcp-server/internal/base"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/num"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/validate"
)

// OilRateRadialMCP is the MCP wrapper for OilRateRadial
func (s *Service) OilRateRadialMCP(ctx context.Context, args OilRateRadialArgs) (base.Response[OilRateRadialArgs], error) {
	if err := validate.Args(&args); err != nil {
		return base.Response[OilRateRadialArgs]{}, err
	}
	o, err := newOil(args.API, args.DegF, args.SGg, args.Pb, args.Rsb)
	if err != nil {
		return base.Response[OilRateRadialArgs]{}, err
	}
	r := Radial{K: args.K, H: args.H, Re: args.Re, Rw: args.Rw, S: args.S}
	value, err := num.MapN(func(i int) (float64, error) {
		return OilRateRadial(o, r, args.Pi, args.Psd.At(i), args.Vogel)
	}, args.Psd)
	if err != nil {
		return base.Response[OilRateRadialArgs]{}, err
	}
	method := "Darcy radial flow"
	if args.Vogel {
		method = "Darcy radial flow with Vogel IPR below pb"
	}
	return base.NewResponse(value, method, "STB/day", args), nil
}

// OilRateLinearMCP is the MCP wrapper for OilRateLinear
func (s *Service) OilRateLinearMCP(ctx context.Context, args OilRateLinearArgs) (base.Response[OilRateLinearArgs], error) {
	if err := validate.Args(&args); err != nil {
		return base.Response[OilRateLinearArgs]{}, err
	}
	o, err := newOil(args.API, args.DegF, args.SGg, args.Pb, args.Rsb)
	if err != nil {
		return base.Response[OilRateLinearArgs]{}, err
	}
	l := Linear{K: args.K, Area: args.Area, Length: args.Length}
	value, err := num.MapN(func(i int) (float64, error) {
		return OilRateLinear(o, l, args.Pi, args.Psd.At(i))
	}, args.Psd)
	if err != nil {
		return base.Response[OilRateLinearArgs]{}, err
	}
	return base.NewResponse(value, "Darcy linear flow", "STB/day", args), nil
}

// GasRateRadialMCP is the MCP wrapper for GasRateRadial. Each pwf needs a
// pseudopressure integral, so results are memoised.
func (s *Service) GasRateRadialMCP(ctx context.Context, args GasRateRadialArgs) (base.Response[GasRateRadialArgs], error) {
	if err := validate.Args(&args); err != nil {
		return base.Response[GasRateRadialArgs]{}, err
	}
	return base.Memo(ctx, s.Engine, "gas_rate_radial", args, func() (base.Response[GasRateRadialArgs], error) {
		f, err := newGas(args.SG, args.DegF, args.H2S, args.CO2, args.N2)
		if err != nil {
			return base.Response[GasRateRadialArgs]{}, err
		}
		r := Radial{K: args.K, H: args.H, Re: args.Re, Rw: args.Rw, S: args.S}
		value, err := num.MapN(func(i int) (float64, error) {
			return GasRateRadial(f, r, args.Pi, args.Psd.At(i))
		}, args.Psd)
		if err != nil {
			return base.Response[GasRateRadialArgs]{}, err
		}
		return base.NewResponse(value, "Pseudopressure radial flow", "MSCF/day", args), nil
	})
}

// GasRateLinearMCP is the MCP wrapper for GasRateLinear
func (s *Service) GasRateLinearMCP(ctx context.Context, args GasRateLinearArgs) (base.Response[GasRateLinearArgs], error) {
	if err := validate.Args(&args); err != nil {
		return base.Response[GasRateLinearArgs]{}, err
	}
	return base.Memo(ctx, s.Engine, "gas_rate_linear", args, func() (base.Response[GasRateLinearArgs], error) {
		f, err := newGas(args.SG, args.DegF, args.H2S, args.CO2, args.N2)
		if err != nil {
			return base.Response[GasRateLinearArgs]{}, err
		}
		l := Linear{K: args.K, Area: args.Area, Length: args.Length}
		value, err := num.MapN(func(i int) (float64, error) {
			return GasRateLinear(f, l, args.Pi, args.Psd.At(i))
		}, args.Psd)
		if err != nil {
			return base.Response[GasRateLinearArgs]{}, err
		}
		return base.NewResponse(value, "Pseudopressure linear flow", "MSCF/day", args), nil
	})
}
