package simtools

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/num"
)

// Phase states reported by Flash
const (
	PhaseTwo    = "two-phase"
	PhaseLiquid = "single-phase liquid"
	PhaseVapor  = "single-phase vapor"
)

// FlashResult is a Rachford-Rice solution.
type FlashResult struct {
	Beta       float64 // vapor mole fraction
	X, Y       []float64
	Iterations int
	Phase      string
}

// Flash solves the Rachford-Rice equation for feed z and K-values k. z is
// normalized to sum to one. A feed without a root in (0, 1) is reported as
// single phase.
func Flash(z, k []float64) (*FlashResult, error) {
	if len(z) != len(k) {
		return nil, apierrors.NewValidationError("Kis", fmt.Sprintf("%d values", len(k)),
			fmt.Sprintf("must match the %d mole fractions", len(z)))
	}
	if len(z) < 2 {
		return nil, apierrors.NewValidationError("zis", fmt.Sprintf("%d values", len(z)), "must contain at least 2 items")
	}
	if floats.Min(z) < 0 || floats.Min(k) <= 0 {
		return nil, apierrors.NewValidationError("zis", fmt.Sprintf("%v", z), "mole fractions must be non-negative and K-values positive")
	}
	sum := floats.Sum(z)
	if sum <= 0 {
		return nil, apierrors.NewValidationError("zis", fmt.Sprintf("%v", z), "must not all be zero")
	}
	zn := make([]float64, len(z))
	floats.ScaleTo(zn, 1/sum, z)

	h := func(b float64) float64 {
		r := 0.0
		for i := range zn {
			r += zn[i] * (k[i] - 1) / (1 + b*(k[i]-1))
		}
		return r
	}
	dh := func(b float64) float64 {
		r := 0.0
		for i := range zn {
			d := 1 + b*(k[i]-1)
			r -= zn[i] * (k[i] - 1) * (k[i] - 1) / (d * d)
		}
		return r
	}

	res := &FlashResult{Phase: PhaseTwo}
	switch {
	case h(0) <= 0:
		res.Beta, res.Phase = 0, PhaseLiquid
	case h(1) >= 0:
		res.Beta, res.Phase = 1, PhaseVapor
	default:
		// h is monotone decreasing; Newton steps leaving the bracket bisect
		lo, hi, b := 0.0, 1.0, 0.5
		converged := false
		for res.Iterations = 1; res.Iterations <= num.MaxIterations; res.Iterations++ {
			f := h(b)
			if math.Abs(f) < 1e-14 {
				converged = true
				break
			}
			if f > 0 {
				lo = b
			} else {
				hi = b
			}
			next := b - f/dh(b)
			if next <= lo || next >= hi {
				next = (lo + hi) / 2
			}
			if math.Abs(next-b) < 1e-15 {
				b = next
				converged = true
				break
			}
			b = next
		}
		if !converged {
			return nil, apierrors.NewConvergenceError("rachford-rice", num.MaxIterations, h(b))
		}
		res.Beta = b
	}

	res.X = make([]float64, len(zn))
	res.Y = make([]float64, len(zn))
	for i := range zn {
		res.X[i] = zn[i] / (1 + res.Beta*(k[i]-1))
		res.Y[i] = k[i] * res.X[i]
	}
	return res, nil
}
