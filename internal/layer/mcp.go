package layer

import (
	"context"
	"fmt"

	"github.com/olgasafonova/restoolbox-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/validate"
)

const method = "Exponential Lorenz curve"

// LorenzToBetaMCP is the MCP wrapper for BetaFromLorenz
func (s *Service) LorenzToBetaMCP(ctx context.Context, args LorenzArgs) (BetaResult, error) {
	if err := validate.Args(&args); err != nil {
		return BetaResult{}, err
	}
	b, err := BetaFromLorenz(args.Value)
	if err != nil {
		return BetaResult{}, err
	}
	return BetaResult{Beta: b, Lorenz: args.Value, Method: method, Inputs: args}, nil
}

// BetaToLorenzMCP is the MCP wrapper for LorenzFromBeta
func (s *Service) BetaToLorenzMCP(ctx context.Context, args BetaArgs) (LorenzResult, error) {
	if err := validate.Args(&args); err != nil {
		return LorenzResult{}, err
	}
	return LorenzResult{Lorenz: LorenzFromBeta(args.Value), Beta: args.Value, Method: method, Inputs: args}, nil
}

// LorenzFromFlowFractionsMCP is the MCP wrapper for LorenzFromFractions
func (s *Service) LorenzFromFlowFractionsMCP(ctx context.Context, args FlowFractionArgs) (FlowFractionResult, error) {
	if err := validate.Args(&args); err != nil {
		return FlowFractionResult{}, err
	}
	l, err := LorenzFromFractions(args.FlowFrac, args.StorageFrac)
	if err != nil {
		return FlowFractionResult{}, err
	}
	return FlowFractionResult{
		Lorenz:         l,
		Layers:         len(args.FlowFrac),
		Method:         "Lorenz from flow and storage capacity fractions",
		Interpretation: Conformance(l),
		Inputs:         args,
	}, nil
}

// FlowFractionsFromLorenzMCP is the MCP wrapper for Curve
func (s *Service) FlowFractionsFromLorenzMCP(ctx context.Context, args LorenzArgs) (CurveResult, error) {
	if err := validate.Args(&args); err != nil {
		return CurveResult{}, err
	}
	storage, flow, err := Curve(args.Value, CurvePoints)
	if err != nil {
		return CurveResult{}, err
	}
	b, _ := BetaFromLorenz(args.Value)
	return CurveResult{
		CumulativeFlow:    flow,
		CumulativeStorage: storage,
		Lorenz:            args.Value,
		Beta:              b,
		Method:            method,
		Note:              "Plot cumulative flow against cumulative storage to visualize heterogeneity",
		Inputs:            args,
	}, nil
}

// GenerateLayerDistributionMCP is the MCP wrapper for Layers. Results are
// memoised.
func (s *Service) GenerateLayerDistributionMCP(ctx context.Context, args LayerDistributionArgs) (LayerDistributionResult, error) {
	if err := validate.Args(&args); err != nil {
		return LayerDistributionResult{}, err
	}
	return base.Memo(ctx, s.Engine, "layer_distribution", args, func() (LayerDistributionResult, error) {
		k, err := Layers(args.Lorenz, args.NLay, args.KAvg)
		if err != nil {
			return LayerDistributionResult{}, err
		}
		st := Statistics(k)
		if st.Min <= 0 {
			return LayerDistributionResult{}, apierrors.NewValidationError("lorenz", fmt.Sprintf("%g", args.Lorenz),
				fmt.Sprintf("is too high for %d layers: the lowest layer has no permeability", args.NLay))
		}

		n := float64(args.NLay)
		h := args.H / n
		khTotal := 0.0
		for _, ki := range k {
			khTotal += ki * h
		}
		ones := make([]float64, args.NLay)
		kh := make([]float64, args.NLay)
		for i, ki := range k {
			ones[i] = 1 / n
			kh[i] = ki * h / khTotal
		}
		var achieved float64
		if args.NLay > 1 {
			if achieved, err = LorenzFromFractions(kh, ones); err != nil {
				return LayerDistributionResult{}, err
			}
		}

		scaleK, scaleH := 1.0, 1.0
		note := "Absolute layer properties, ready for simulation model input"
		if *args.Normalize {
			scaleK, scaleH = 1/args.KAvg, 1/args.H
			note = "Normalized: permeability is k/k_avg and thickness is a fraction of h"
		}
		layers := make([]Layer, args.NLay)
		for i, ki := range k {
			layers[i] = Layer{
				Layer:        i + 1,
				Thickness:    h * scaleH,
				Permeability: ki * scaleK,
				ThickFrac:    1 / n,
				KHFrac:       kh[i],
			}
		}
		return LayerDistributionResult{
			Layers: layers,
			Statistics: LayerStatistics{
				Min:    st.Min * scaleK,
				Max:    st.Max * scaleK,
				Mean:   st.Mean * scaleK,
				Median: st.Median * scaleK,
				StdDev: st.StdDev * scaleK,
				Ratio:  st.Ratio,
			},
			TotalThickness: args.H,
			KAvg:           args.KAvg,
			Lorenz:         args.Lorenz,
			AchievedLorenz: achieved,
			NLay:           args.NLay,
			Method:         method,
			Inputs:         args,
			Note:           note,
		}, nil
	})
}
