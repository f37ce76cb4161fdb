package brine

import (
	"context"
	"math"

	"github.com/olgasafonova/restoolbox-mcp-server/internal/base"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/num"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/validate"
)

// BrinePropertiesMCP is the MCP wrapper for Brine
func (s *Service) BrinePropertiesMCP(ctx context.Context, args BrinePropertiesArgs) (BrinePropertiesResult, error) {
	if err := validate.Args(&args); err != nil {
		return BrinePropertiesResult{}, err
	}
	n, err := num.Broadcast(args.P, args.DegF)
	if err != nil {
		return BrinePropertiesResult{}, err
	}
	sat := math.Min(args.CH4+args.CO2, 1)
	props := make([]Properties, n)
	for i := range props {
		if props[i], err = Brine(args.P.At(i), args.DegF.At(i), args.Wt, sat); err != nil {
			return BrinePropertiesResult{}, err
		}
	}
	column := func(get func(Properties) float64) (num.Values, error) {
		return num.MapN(func(i int) (float64, error) { return get(props[i]), nil }, args.P, args.DegF)
	}

	res := BrinePropertiesResult{
		Method:          "McCain (1990) brine correlations",
		SalinityWt:      args.Wt,
		DissolvedGasSat: args.CH4 + args.CO2,
		Inputs:          args,
	}
	for _, c := range []struct {
		dst *num.Values
		get func(Properties) float64
	}{
		{&res.FVF, func(p Properties) float64 { return p.Bw }},
		{&res.Density, func(p Properties) float64 { return p.Density }},
		{&res.Viscosity, func(p Properties) float64 { return p.Viscosity }},
		{&res.Compressibility, func(p Properties) float64 { return p.Compressibility }},
		{&res.SolutionGOR, func(p Properties) float64 { return p.Rsw }},
	} {
		if *c.dst, err = column(c.get); err != nil {
			return BrinePropertiesResult{}, err
		}
	}
	if sat == 0 {
		res.Note = "Gas-free brine; set ch4 for methane-saturated properties"
	} else if args.CO2 > 0 {
		res.Note = "Dissolved gas treated as methane; use co2_brine_mutual_solubility for CO2-rich systems"
	}
	return res, nil
}

// CO2BrineMCP is the MCP wrapper for MutualSolubility. Inputs and outputs are
// field units unless metric is set.
func (s *Service) CO2BrineMCP(ctx context.Context, args CO2BrineArgs) (CO2BrineResult, error) {
	if err := validate.Args(&args); err != nil {
		return CO2BrineResult{}, err
	}
	tc, pBar := args.Temp, args.Pres
	if !args.Metric {
		tc = (args.Temp - 32) / 1.8
		pBar = args.Pres * BarPerPsi
	}
	return base.Memo(ctx, s.Engine, "co2_brine", args, func() (CO2BrineResult, error) {
		r, err := MutualSolubility(tc, pBar, args.PPM, args.CwSat)
		if err != nil {
			return CO2BrineResult{}, err
		}

		perP, rs, units := 1.0, r.Rs, "metric"
		note := "Compressibility and viscosibility per bar; Rs in sm3/sm3"
		if !args.Metric {
			perP, rs, units = BarPerPsi, r.Rs*CfPerBbl, "field"
			note = "Compressibility and viscosibility per psi; Rs in scf/stb"
		}
		return CO2BrineResult{
			PhaseEquilibrium: PhaseEquilibrium{
				Aqueous:  MoleFractions{CO2: r.XCO2, H2O: r.XH2O},
				Vapor:    MoleFractions{CO2: r.YCO2, H2O: r.YH2O},
				Salt:     r.XSalt,
				Molality: r.MolalityCO2,
				Phase:    r.Phase,
			},
			Densities: CO2Densities{
				Gas:        r.GasDensity,
				Saturated:  r.SatDensity,
				Pure:       r.BrineDensity,
				FreshWater: r.WaterDensity,
			},
			Viscosities: CO2Viscosities{
				Saturated:  r.SatViscosity,
				Pure:       r.BrineViscosity,
				FreshWater: r.WaterViscosity,
			},
			Viscosibility: r.Viscosibility * perP,
			FVF: CO2FVFs{
				Saturated:  r.BwSat,
				Pure:       r.Bw,
				FreshWater: r.BwFresh,
			},
			SolutionGOR: rs,
			Compressibility: CO2Compressibility{
				Undersaturated: r.CwUsat * perP,
				Saturated:      r.CwSat * perP,
			},
			Method: "Spycher & Pruess (2003) CO2-H2O with Duan & Sun (2003) NaCl salting out",
			Units:  units,
			Inputs: args,
			Note:   note,
		}, nil
	})
}
