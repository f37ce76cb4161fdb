package gas

import (
	"fmt"
	"math"

	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/num"
)

// Z-factor methods
const (
	ZMethodDAK = "DAK"
	ZMethodHY  = "HY"
)

// Dranchuk & Abou-Kassem (1975) coefficients, A1..A11
var dak = [12]float64{0, 0.3265, -1.07, -0.5339, 0.01569, -0.05165, 0.5475, -0.7361, 0.1844, 0.1056, 0.6134, 0.7210}

// ZFactor returns the gas deviation factor at reduced temperature tpr and
// reduced pressure ppr.
func ZFactor(tpr, ppr float64, method string) (float64, error) {
	if tpr <= 0 {
		return 0, apierrors.NewValidationError("tpr", fmt.Sprintf("%g", tpr), "reduced temperature must be positive")
	}
	if ppr <= 0 {
		return 0, apierrors.NewValidationError("ppr", fmt.Sprintf("%g", ppr), "reduced pressure must be positive")
	}
	switch method {
	case "", ZMethodDAK:
		return zDAK(tpr, ppr)
	case ZMethodHY:
		return zHallYarborough(tpr, ppr)
	default:
		return 0, apierrors.NewValidationError("zmethod", method, "must be one of: DAK, HY")
	}
}

func dakZ(tr, rho float64) float64 {
	tr2, tr3 := tr*tr, tr*tr*tr
	r2 := rho * rho
	c1 := dak[1] + dak[2]/tr + dak[3]/tr3 + dak[4]/(tr3*tr) + dak[5]/(tr3*tr2)
	c2 := dak[6] + dak[7]/tr + dak[8]/tr2
	c3 := dak[9] * (dak[7]/tr + dak[8]/tr2)
	c4 := dak[10] * (1 + dak[11]*r2) * (r2 / tr3) * math.Exp(-dak[11]*r2)
	return 1 + c1*rho + c2*r2 - c3*r2*r2*rho + c4
}

// zDAK solves rho*z(rho) = 0.27*Ppr/Tpr for the reduced density.
func zDAK(tpr, ppr float64) (float64, error) {
	target := 0.27 * ppr / tpr
	f := func(rho float64) float64 {
		return rho*dakZ(tpr, rho) - target
	}
	rho, err := num.BrentExpand(f, 1e-9, 0.5, 16, 1e-12)
	if err != nil {
		return 0, apierrors.NewConvergenceError("DAK z-factor", num.MaxIterations, f(rho))
	}
	return dakZ(tpr, rho), nil
}

// zHallYarborough solves the Hall-Yarborough (1973) reduced density equation.
func zHallYarborough(tpr, ppr float64) (float64, error) {
	t := 1 / tpr
	a := 0.06125 * t * math.Exp(-1.2*(1-t)*(1-t))
	b := 14.76*t - 9.76*t*t + 4.58*t*t*t
	c := 90.7*t - 242.2*t*t + 42.4*t*t*t
	d := 2.18 + 2.82*t

	f := func(y float64) float64 {
		y2 := y * y
		return -a*ppr + (y+y2+y2*y-y2*y2)/math.Pow(1-y, 3) - b*y2 + c*math.Pow(y, d)
	}
	y, err := num.Brent(f, 1e-12, 0.999999, 1e-14)
	if err != nil {
		return 0, apierrors.NewConvergenceError("Hall-Yarborough z-factor", num.MaxIterations, math.NaN())
	}
	return a * ppr / y, nil
}
