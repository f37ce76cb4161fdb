package oil

import (
	"context"
	"fmt"
	"math"

	"github.com/olgasafonova/restoolbox-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/num"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/validate"
)

// MCP Tool wrapper methods
// These methods validate Args, resolve the bubble point where needed and
// evaluate each array element.

// BubblePointMCP is the MCP wrapper for BubblePoint
func (s *Service) BubblePointMCP(ctx context.Context, args BubblePointArgs) (base.Response[BubblePointArgs], error) {
	if err := validate.Args(&args); err != nil {
		return base.Response[BubblePointArgs]{}, err
	}
	pb, err := BubblePoint(args.API, args.DegF, args.Rsb, args.SGg, args.Method)
	if err != nil {
		return base.Response[BubblePointArgs]{}, err
	}
	return base.NewResponse(num.Scalar(pb), args.Method, "psia", args), nil
}

// RsAtBubblePointMCP returns the consistent (pb, rsb) pair
func (s *Service) RsAtBubblePointMCP(ctx context.Context, args RsAtBubblePointArgs) (RsAtBubblePointResult, error) {
	if err := validate.Args(&args); err != nil {
		return RsAtBubblePointResult{}, err
	}
	o, err := NewOil(args.API, args.DegF, args.SGg, args.Pb, args.Rsb, args.Method)
	if err != nil {
		return RsAtBubblePointResult{}, err
	}
	return RsAtBubblePointResult{
		Value:           o.Rsb,
		BubblePointPsia: o.Pb,
		Method:          args.Method,
		Units:           "scf/stb",
		Inputs:          args,
	}, nil
}

// SolutionGORMCP is the MCP wrapper for Oil.Rs
func (s *Service) SolutionGORMCP(ctx context.Context, args SolutionGORArgs) (base.Response[SolutionGORArgs], error) {
	if err := validate.Args(&args); err != nil {
		return base.Response[SolutionGORArgs]{}, err
	}
	o, err := NewOil(args.API, args.DegF, args.SGg, args.Pb, args.Rsb, args.Method)
	if err != nil {
		return base.Response[SolutionGORArgs]{}, err
	}
	o.RsMethod = args.Method
	value, err := num.MapN(func(i int) (float64, error) {
		return o.Rs(args.P.At(i))
	}, args.P)
	if err != nil {
		return base.Response[SolutionGORArgs]{}, err
	}
	return base.NewResponse(value, args.Method, "scf/stb", args), nil
}

// rsAt returns the supplied rs at index i, or computes it from p.
func rsAt(o *Oil, rs num.Values, p float64, i int) (float64, error) {
	if !rs.IsZero() {
		return rs.At(i), nil
	}
	return o.Rs(p)
}

// FVFMCP is the MCP wrapper for Oil.Bo
func (s *Service) FVFMCP(ctx context.Context, args FVFArgs) (base.Response[FVFArgs], error) {
	if err := validate.Args(&args); err != nil {
		return base.Response[FVFArgs]{}, err
	}
	o, err := NewOil(args.API, args.DegF, args.SGg, args.Pb, args.Rsb, MethodValkoMcCain)
	if err != nil {
		return base.Response[FVFArgs]{}, err
	}
	o.BoMethod = args.Method
	value, err := num.MapN(func(i int) (float64, error) {
		p := args.P.At(i)
		rs, err := rsAt(o, args.Rs, p, i)
		if err != nil {
			return 0, err
		}
		return o.Bo(p, rs)
	}, args.P, args.Rs)
	if err != nil {
		return base.Response[FVFArgs]{}, err
	}
	return base.NewResponse(value, args.Method, "rb/stb", args), nil
}

// ViscosityMCP is the MCP wrapper for Oil.Viscosity
func (s *Service) ViscosityMCP(ctx context.Context, args ViscosityArgs) (base.Response[ViscosityArgs], error) {
	if err := validate.Args(&args); err != nil {
		return base.Response[ViscosityArgs]{}, err
	}
	o, err := NewOil(args.API, args.DegF, args.SGg, args.Pb, args.Rsb, MethodValkoMcCain)
	if err != nil {
		return base.Response[ViscosityArgs]{}, err
	}
	value, err := num.MapN(func(i int) (float64, error) {
		p := args.P.At(i)
		rs, err := rsAt(o, args.Rs, p, i)
		if err != nil {
			return 0, err
		}
		return o.Viscosity(p, rs), nil
	}, args.P, args.Rs)
	if err != nil {
		return base.Response[ViscosityArgs]{}, err
	}
	return base.NewResponse(value, args.Method, "cP", args), nil
}

// DensityMCP is the MCP wrapper for Density
func (s *Service) DensityMCP(ctx context.Context, args DensityArgs) (base.Response[DensityArgs], error) {
	if err := validate.Args(&args); err != nil {
		return base.Response[DensityArgs]{}, err
	}
	sgo := SGFromAPI(args.API)
	value, err := num.MapN(func(i int) (float64, error) {
		return Density(sgo, args.Rs.At(i), args.SGg, args.Bo.At(i)), nil
	}, args.P, args.Rs, args.Bo)
	if err != nil {
		return base.Response[DensityArgs]{}, err
	}
	return base.NewResponse(value, "Standard", "lb/cuft", args), nil
}

// CompressibilityMCP is the MCP wrapper for Oil.Compressibility
func (s *Service) CompressibilityMCP(ctx context.Context, args CompressibilityArgs) (base.Response[CompressibilityArgs], error) {
	if err := validate.Args(&args); err != nil {
		return base.Response[CompressibilityArgs]{}, err
	}
	o, err := NewOil(args.API, args.DegF, args.SGg, args.Pb, args.Rsb, MethodValkoMcCain)
	if err != nil {
		return base.Response[CompressibilityArgs]{}, err
	}
	value, err := num.MapN(func(i int) (float64, error) {
		return o.Compressibility(args.P.At(i)), nil
	}, args.P)
	if err != nil {
		return base.Response[CompressibilityArgs]{}, err
	}
	return base.NewResponse(value, "McCain", "1/psi", args), nil
}

// APIFromSGMCP converts specific gravity to API gravity
func (s *Service) APIFromSGMCP(ctx context.Context, args SGToAPIArgs) (base.Response[SGToAPIArgs], error) {
	if err := validate.Args(&args); err != nil {
		return base.Response[SGToAPIArgs]{}, err
	}
	value, err := num.MapN(func(i int) (float64, error) {
		return APIFromSG(args.SG.At(i)), nil
	}, args.SG)
	if err != nil {
		return base.Response[SGToAPIArgs]{}, err
	}
	return base.NewResponse(value, "Standard conversion", "degrees API", args), nil
}

// SGFromAPIMCP converts API gravity to specific gravity
func (s *Service) SGFromAPIMCP(ctx context.Context, args APIToSGArgs) (base.Response[APIToSGArgs], error) {
	if err := validate.Args(&args); err != nil {
		return base.Response[APIToSGArgs]{}, err
	}
	value, err := num.MapN(func(i int) (float64, error) {
		return SGFromAPI(args.API.At(i)), nil
	}, args.API)
	if err != nil {
		return base.Response[APIToSGArgs]{}, err
	}
	return base.NewResponse(value, "Standard conversion", "dimensionless (water=1)", args), nil
}

// BlackOilTableMCP generates a black oil table. Tables are memoised.
func (s *Service) BlackOilTableMCP(ctx context.Context, args BlackOilTableArgs) (BlackOilTableResult, error) {
	if err := validate.Args(&args); err != nil {
		return BlackOilTableResult{}, err
	}
	if args.Pmax <= args.Pi {
		return BlackOilTableResult{}, apierrors.NewValidationError("pmax", fmt.Sprintf("%g", args.Pmax),
			fmt.Sprintf("must be greater than pi (%g psia)", args.Pi))
	}
	return base.Memo(ctx, s.Engine, "black_oil_table", args, func() (BlackOilTableResult, error) {
		o, err := NewOil(args.API, args.DegF, args.SGg, args.Pb, args.Rsb, args.PbMethod)
		if err != nil {
			return BlackOilTableResult{}, err
		}
		o.RsMethod = args.RsMethod
		o.BoMethod = args.BoMethod

		t, err := MakeTable(o, args.Pmax, args.NRows)
		if err != nil {
			return BlackOilTableResult{}, err
		}
		for _, r := range t.Rows {
			if !finiteRow(r) {
				return BlackOilTableResult{}, apierrors.NewConvergenceError("black oil table", 0, r.Pressure)
			}
		}

		res := BlackOilTableResult{
			Table: t.Rows,
			Summary: TableSummary{
				BubblePointPsia:      t.Pb,
				SolutionGORScfStb:    t.Rsb,
				OilFVFAtPbRbStb:      t.Bob,
				OilViscosityAtPbCp:   t.Uob,
				OilDensityAtPbLbCuft: t.Denb,
				GasSG:                t.SGg,
				Rows:                 len(t.Rows),
			},
			Columns: TableColumns,
			Methods: TableMethods{
				PbMethod: args.PbMethod,
				RsMethod: args.RsMethod,
				BoMethod: args.BoMethod,
				UoMethod: args.UoMethod,
			},
			Inputs: args,
		}
		if args.Export {
			res.Export = &TableExport{
				PVTO:    t.PVTO(),
				PVDG:    t.PVDG(),
				Density: t.DensityKeyword(args.API),
			}
		}
		return res, nil
	})
}

func finiteRow(r TableRow) bool {
	for _, v := range []float64{r.Rs, r.Bo, r.Uo, r.Density, r.Co, r.Bg, r.Ug} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// EvolvedGasSGMCP returns the gravity of gas evolved below the bubble point
func (s *Service) EvolvedGasSGMCP(ctx context.Context, args EvolvedGasSGArgs) (base.Response[EvolvedGasSGArgs], error) {
	if err := validate.Args(&args); err != nil {
		return base.Response[EvolvedGasSGArgs]{}, err
	}
	pb, err := BubblePoint(args.API, args.DegF, args.Rsb, args.SGg, MethodValkoMcCain)
	if err != nil {
		return base.Response[EvolvedGasSGArgs]{}, err
	}
	sgst := StockTankGasSG(args.Psep, SeparatorGORFraction*args.Rsb, args.API, args.SGg, DefaultSeparatorDegF)
	value, err := num.MapN(func(i int) (float64, error) {
		return EvolvedGasSG(args.P.At(i), pb, args.SGg, sgst), nil
	}, args.P)
	if err != nil {
		return base.Response[EvolvedGasSGArgs]{}, err
	}
	resp := base.NewResponse(value, "Valko-McCain correlation", "dimensionless (air=1)", args)
	resp.Note = fmt.Sprintf("Bubble point %.1f psia; stock tank gas SG %.4f", pb, sgst)
	return resp, nil
}

// StockTankGasSGMCP is the MCP wrapper for StockTankGasSG
func (s *Service) StockTankGasSGMCP(ctx context.Context, args StockTankGasSGArgs) (base.Response[StockTankGasSGArgs], error) {
	if err := validate.Args(&args); err != nil {
		return base.Response[StockTankGasSGArgs]{}, err
	}
	sg := StockTankGasSG(args.Psep, args.Rsp, args.API, args.SGg, args.DegFSp)
	if math.IsNaN(sg) || sg <= 0 {
		return base.Response[StockTankGasSGArgs]{}, apierrors.NewValidationError("psep", fmt.Sprintf("%g", args.Psep),
			"separator conditions are outside the range of the Valko-McCain correlation")
	}
	return base.NewResponse(num.Scalar(sg), "Valko-McCain correlation", "dimensionless (air=1)", args), nil
}

// JacobySGMCP is the MCP wrapper for JacobySG
func (s *Service) JacobySGMCP(ctx context.Context, args JacobyArgs) (base.Response[JacobyArgs], error) {
	if err := validate.Args(&args); err != nil {
		return base.Response[JacobyArgs]{}, err
	}
	value, err := num.MapN(func(i int) (float64, error) {
		return JacobySG(args.MW.At(i), args.JA.At(i)), nil
	}, args.MW, args.JA)
	if err != nil {
		return base.Response[JacobyArgs]{}, err
	}
	return base.NewResponse(value, "Jacoby aromaticity correlation", "dimensionless (water=1)", args), nil
}

// TwuMCP is the MCP wrapper for TwuFromMW and TwuFromTb
func (s *Service) TwuMCP(ctx context.Context, args TwuArgs) (TwuResult, error) {
	if err := validate.Args(&args); err != nil {
		return TwuResult{}, err
	}
	useTb := !args.Tb.IsZero()
	if !useTb && args.MW.IsZero() {
		return TwuResult{}, apierrors.NewValidationError("mw", "", "provide mw or tb")
	}
	basis := args.MW
	if useTb {
		basis = args.Tb
	}

	n, err := num.Broadcast(basis, args.SG)
	if err != nil {
		return TwuResult{}, err
	}
	props := make([]TwuProperties, n)
	for i := range props {
		if useTb {
			props[i], err = TwuFromTb(args.Tb.At(i), args.SG.At(i))
		} else {
			props[i], err = TwuFromMW(args.MW.At(i), args.SG.At(i), args.Damp)
		}
		if err != nil {
			return TwuResult{}, err
		}
	}

	column := func(get func(TwuProperties) float64) (num.Values, error) {
		return num.MapN(func(i int) (float64, error) {
			return get(props[i]), nil
		}, basis, args.SG)
	}
	var res TwuResult
	for _, c := range []struct {
		dst *num.Values
		get func(TwuProperties) float64
	}{
		{&res.SpecificGravity, func(p TwuProperties) float64 { return p.SG }},
		{&res.MolecularWeight, func(p TwuProperties) float64 { return p.MW }},
		{&res.BoilingPoint, func(p TwuProperties) float64 { return p.Tb }},
		{&res.CriticalTemp, func(p TwuProperties) float64 { return p.Tc }},
		{&res.CriticalPressure, func(p TwuProperties) float64 { return p.Pc }},
		{&res.CriticalVolume, func(p TwuProperties) float64 { return p.Vc }},
	} {
		if *c.dst, err = column(c.get); err != nil {
			return TwuResult{}, err
		}
	}
	res.Method = "Twu (1984) correlation"
	res.Inputs = args
	res.Note = "Use for plus fraction characterization and EOS modeling"
	return res, nil
}

// WeightedGasSGMCP is the MCP wrapper for WeightedGasSG
func (s *Service) WeightedGasSGMCP(ctx context.Context, args WeightedGasSGArgs) (WeightedGasSGResult, error) {
	if err := validate.Args(&args); err != nil {
		return WeightedGasSGResult{}, err
	}
	avg, err := WeightedGasSG(args.SGsp, args.Rsp, args.SGst, args.Rst)
	if err != nil {
		return WeightedGasSGResult{}, err
	}
	total := args.Rsp + args.Rst
	return WeightedGasSGResult{
		WeightedAverageSG:     avg,
		SeparatorContribution: args.SGsp * args.Rsp / total,
		StockTankContribution: args.SGst * args.Rst / total,
		TotalGOR:              total,
		Method:                "Weighted average by GOR",
		Units:                 "dimensionless (air=1)",
		Inputs:                args,
	}, nil
}

// StockTankGORMCP is the MCP wrapper for StockTankGOR
func (s *Service) StockTankGORMCP(ctx context.Context, args StockTankGORArgs) (StockTankGORResult, error) {
	if err := validate.Args(&args); err != nil {
		return StockTankGORResult{}, err
	}
	return StockTankGORResult{
		StockTankGOR: StockTankGOR(args.Psp, args.DegFSp, args.API),
		Method:       "Valko-McCain correlation",
		Units:        "scf/stb",
		Inputs:       args,
		Note:         "Add to separator GOR for total solution GOR at reservoir conditions",
	}, nil
}

// CheckGasSGsMCP is the MCP wrapper for CheckGasSGs
func (s *Service) CheckGasSGsMCP(ctx context.Context, args CheckGasSGsArgs) (CheckGasSGsResult, error) {
	if err := validate.Args(&args); err != nil {
		return CheckGasSGsResult{}, err
	}
	sgg, sgsp, err := CheckGasSGs(args.SGg, args.SGsp, args.Rst, args.Rsp, args.SGst)
	if err != nil {
		return CheckGasSGsResult{}, err
	}
	res := CheckGasSGsResult{
		SGg:     sgg,
		SGsp:    sgsp,
		Derived: "none",
		Method:  "Weighted average calculation",
		Units:   "dimensionless (air=1)",
		Inputs:  args,
		Note:    "sg_g and sg_sp are consistent",
	}
	switch {
	case args.SGg <= 0:
		res.Derived = "sg_g"
	case args.SGsp <= 0:
		res.Derived = "sg_sp"
	default:
		if want, err := WeightedGasSG(sgsp, args.Rsp, args.SGst, args.Rst); err == nil && math.Abs(want-sgg) > 0.01 {
			res.Note = fmt.Sprintf("Supplied sg_g %.4f differs from the GOR-weighted value %.4f", sgg, want)
		}
	}
	return res, nil
}
