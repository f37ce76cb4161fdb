// Package layer models vertical permeability heterogeneity with an
// exponential Lorenz curve.
//
// The curve F(x) = (1 - e^(-Bx)) / (1 - e^(-B)) maps cumulative storage
// capacity x to cumulative flow capacity. Its Lorenz coefficient is
// L(B) = 2/(1 - e^(-B)) - 2/B - 1, so B = 0 is homogeneous and L tends to 1
// as B grows.
package layer

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"

	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/num"
)

// Curve and layering limits
const (
	CurvePoints  = 20
	MaxLayers    = 100
	MaxBeta      = 1e8
	fractionTol  = 0.01
	seriesCutoff = 1e-3
)

// LorenzFromBeta returns the Lorenz coefficient of the curve with shape B.
func LorenzFromBeta(b float64) float64 {
	if b < seriesCutoff {
		return b/6 - b*b*b/360
	}
	return 2/(1-math.Exp(-b)) - 2/b - 1
}

// BetaFromLorenz inverts LorenzFromBeta. l must be in [0, 1).
func BetaFromLorenz(l float64) (float64, error) {
	if l < 0 || l >= 1 {
		return 0, apierrors.NewValidationError("lorenz", fmt.Sprintf("%g", l), "must be between 0 and 1 (exclusive)")
	}
	if l == 0 {
		return 0, nil
	}
	return num.BrentExpand(func(b float64) float64 { return LorenzFromBeta(b) - l }, 0, 1, MaxBeta, 1e-12)
}

// FlowFraction returns the cumulative flow capacity F(x) of the curve with
// shape B at cumulative storage fraction x.
func FlowFraction(b, x float64) float64 {
	if b == 0 {
		return x
	}
	return math.Expm1(-b*x) / math.Expm1(-b)
}

// Curve samples the Lorenz curve for coefficient l at n evenly spaced
// storage fractions from 0 to 1.
func Curve(l float64, n int) (storage, flow []float64, err error) {
	b, err := BetaFromLorenz(l)
	if err != nil {
		return nil, nil, err
	}
	storage = num.Linspace(0, 1, n)
	flow = make([]float64, n)
	for i, x := range storage {
		flow[i] = FlowFraction(b, x)
	}
	return storage, flow, nil
}

// LorenzFromFractions returns the Lorenz coefficient of layers with flow
// capacity fractions kh and storage capacity fractions phih. Layers are
// ranked by kh/phih so the cumulative curve lies on or above the diagonal.
func LorenzFromFractions(kh, phih []float64) (float64, error) {
	if len(kh) != len(phih) {
		return 0, apierrors.NewValidationError("flow_frac", fmt.Sprintf("%d layers", len(kh)),
			fmt.Sprintf("must match the %d storage fractions", len(phih)))
	}
	if len(kh) < 2 {
		return 0, apierrors.NewValidationError("flow_frac", fmt.Sprintf("%d layers", len(kh)), "must contain at least 2 items")
	}
	for _, f := range []struct {
		name string
		v    []float64
	}{{"flow_frac", kh}, {"storage_frac", phih}} {
		if floats.Min(f.v) < 0 {
			return 0, apierrors.NewValidationError(f.name, fmt.Sprintf("%v", f.v), "must not contain negative values")
		}
		if sum := floats.Sum(f.v); math.Abs(sum-1) > fractionTol {
			return 0, apierrors.NewValidationError(f.name, fmt.Sprintf("sum %g", sum), "must sum to 1")
		}
	}

	type lay struct{ kh, phih float64 }
	layers := make([]lay, len(kh))
	sk, sp := floats.Sum(kh), floats.Sum(phih)
	for i := range kh {
		layers[i] = lay{kh[i] / sk, phih[i] / sp}
	}
	sort.SliceStable(layers, func(i, j int) bool {
		// kh_i/phih_i > kh_j/phih_j without dividing by zero storage
		return layers[i].kh*layers[j].phih > layers[j].kh*layers[i].phih
	})

	x := make([]float64, len(layers)+1)
	y := make([]float64, len(layers)+1)
	for i, l := range layers {
		x[i+1] = x[i] + l.phih
		y[i+1] = y[i] + l.kh
	}
	return 2*integrate.Trapezoidal(x, y) - 1, nil
}

// Conformance labels a Lorenz coefficient.
func Conformance(l float64) string {
	switch {
	case l < 0.3:
		return "High conformance (L<0.3)"
	case l < 0.6:
		return "Moderate conformance (0.3≤L<0.6)"
	default:
		return "Poor conformance (L≥0.6)"
	}
}

// Layers returns the permeabilities of n equal-thickness layers whose
// cumulative flow capacities lie on the Lorenz curve for l, highest first.
// Their thickness-weighted mean is kAvg.
func Layers(l float64, n int, kAvg float64) ([]float64, error) {
	if n < 1 || n > MaxLayers {
		return nil, apierrors.NewValidationError("nlay", fmt.Sprintf("%d", n),
			fmt.Sprintf("must be between 1 and %d", MaxLayers))
	}
	b, err := BetaFromLorenz(l)
	if err != nil {
		return nil, err
	}
	k := make([]float64, n)
	nf := float64(n)
	for i := range k {
		k[i] = kAvg * nf * (FlowFraction(b, float64(i+1)/nf) - FlowFraction(b, float64(i)/nf))
	}
	return k, nil
}

// Stats summarises a permeability distribution.
type Stats struct {
	Min, Max, Mean, Median, StdDev float64
	Ratio                          float64 // Max / Min
}

// Statistics returns population statistics of k.
func Statistics(k []float64) Stats {
	sorted := append([]float64(nil), k...)
	sort.Float64s(sorted)
	n := len(sorted)
	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	mean, std := stat.PopMeanStdDev(k, nil)
	return Stats{
		Min:    sorted[0],
		Max:    sorted[n-1],
		Mean:   mean,
		Median: median,
		StdDev: std,
		Ratio:  sorted[n-1] / sorted[0],
	}
}
