package oil

import (
	"fmt"
	"math"

	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/num"
)

// Normal boiling point range (°R) covered by the Twu n-alkane reference,
// molecular weights 16 to 10000.
const (
	twuMinMW = 16.0
	twuMaxMW = 10000.0
)

// TwuProperties are the Twu (1984) characterization results of a petroleum
// fraction. Temperatures in °R, pressure in psia, volume in cuft/lbmol.
type TwuProperties struct {
	MW float64
	SG float64
	Tb float64
	Tc float64
	Pc float64
	Vc float64
}

// alkaneTb returns the normal boiling point (°R) of the n-alkane of molecular weight m.
func alkaneTb(m float64) float64 {
	th := math.Log(m)
	return math.Exp(5.71419+2.71579*th-0.286590*th*th-39.8544/th-0.122488/(th*th)) -
		24.7522*th + 35.3155*th*th
}

type alkaneReference struct {
	tc, pc, vc, sg, mw float64
}

func twuAlkane(tb float64) (alkaneReference, error) {
	tc := tb / (0.533272 + 0.191017e-3*tb + 0.779681e-7*tb*tb - 0.284376e-10*tb*tb*tb + 0.959468e28/math.Pow(tb, 13))
	a := 1 - tb/tc
	pc := math.Pow(3.83354+1.19629*math.Sqrt(a)+34.8888*a+36.1952*a*a+104.193*math.Pow(a, 4), 2)
	vc := math.Pow(1-(0.419869-0.505839*a-1.56436*a*a*a-9481.70*math.Pow(a, 14)), -8)
	sg := 0.843593 - 0.128624*a - 3.36159*a*a*a - 13749.5*math.Pow(a, 12)

	th, err := num.Brent(func(th float64) float64 {
		return alkaneTb(math.Exp(th)) - tb
	}, math.Log(twuMinMW), math.Log(twuMaxMW), 1e-13)
	if err != nil {
		return alkaneReference{}, apierrors.NewValidationError("tb", fmt.Sprintf("%g", tb),
			fmt.Sprintf("outside the Twu range %.0f-%.0f degR", alkaneTb(twuMinMW), alkaneTb(twuMaxMW)))
	}
	return alkaneReference{tc: tc, pc: pc, vc: vc, sg: sg, mw: math.Exp(th)}, nil
}

func twuRatio(f float64) float64 {
	r := (1 + 2*f) / (1 - 2*f)
	return r * r
}

// TwuFromTb characterizes a fraction from its normal boiling point (°R)
// and specific gravity.
func TwuFromTb(tb, sg float64) (TwuProperties, error) {
	ref, err := twuAlkane(tb)
	if err != nil {
		return TwuProperties{}, err
	}
	st := math.Sqrt(tb)

	dsgM := math.Exp(5*(ref.sg-sg)) - 1
	fM := dsgM * (math.Abs(0.012342-0.244541/st) + (-0.0175691+0.193168/st)*dsgM)
	mw := math.Exp(math.Log(ref.mw) * twuRatio(fM))

	fT := dsgM * (-0.362456/st + (0.0398285-0.948125/st)*dsgM)
	tc := ref.tc * twuRatio(fT)

	dsgV := math.Exp(4*(ref.sg*ref.sg-sg*sg)) - 1
	fV := dsgV * (0.466590/st + (-0.182421+3.01721/st)*dsgV)
	vc := ref.vc * twuRatio(fV)

	dsgP := math.Exp(0.5*(ref.sg-sg)) - 1
	fP := dsgP * (2.53262 - 46.1955/st - 0.00127885*tb + (-11.4277+252.140/st+0.00230535*tb)*dsgP)
	pc := ref.pc * (tc / ref.tc) * (ref.vc / vc) * twuRatio(fP)

	return TwuProperties{MW: mw, SG: sg, Tb: tb, Tc: tc, Pc: pc, Vc: vc}, nil
}

// TwuFromMW characterizes a fraction from molecular weight and specific
// gravity. Tb is found with a Newton solve scaled by damp (0 or 1 for a full
// step), falling back to Brent when Newton fails.
func TwuFromMW(mw, sg, damp float64) (TwuProperties, error) {
	if mw < twuMinMW || mw > twuMaxMW {
		return TwuProperties{}, apierrors.NewValidationError("mw", fmt.Sprintf("%g", mw),
			fmt.Sprintf("must be between %g and %g", twuMinMW, twuMaxMW))
	}
	target := math.Log(mw)
	var solveErr error
	f := func(tb float64) float64 {
		p, err := TwuFromTb(tb, sg)
		if err != nil {
			solveErr = err
			return math.NaN()
		}
		return math.Log(p.MW) - target
	}

	tb0 := alkaneTb(mw)
	tb, err := num.Newton(f, tb0, damp, 1e-10)
	if err != nil || solveErr != nil {
		solveErr = nil
		lo := math.Max(alkaneTb(twuMinMW)*1.001, 0.5*tb0)
		hi := math.Min(alkaneTb(twuMaxMW)*0.999, 1.5*tb0)
		tb, err = num.Brent(f, lo, hi, 1e-10)
		if err != nil {
			return TwuProperties{}, apierrors.NewConvergenceError("Twu boiling point", num.MaxIterations, math.NaN())
		}
	}
	return TwuFromTb(tb, sg)
}
