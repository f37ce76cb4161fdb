// Package brine computes formation water properties: McCain correlations for
// NaCl brine with dissolved methane, and CO2-H2O-NaCl mutual solubility.
package brine

import (
	"fmt"
	"math"

	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
)

// Salinity limit (wt% NaCl) of the McCain correlations
const MaxSalinityWt = 30.0

// Properties holds McCain brine properties at one pressure and temperature.
type Properties struct {
	Bw              float64 // rb/stb
	Density         float64 // lb/cuft
	Viscosity       float64 // cP
	Compressibility float64 // 1/psi
	Rsw             float64 // scf/stb
}

// FVF returns the McCain water formation volume factor (rb/stb).
func FVF(p, degf float64) float64 {
	dvt := -1.0001e-2 + 1.33391e-4*degf + 5.50654e-7*degf*degf
	dvp := -1.95301e-9*p*degf - 1.72834e-13*p*p*degf - 3.58922e-7*p - 2.25341e-10*p*p
	return (1 + dvt) * (1 + dvp)
}

// StockTankDensity returns brine density (lb/cuft) at standard conditions
// for salinity wt (weight percent NaCl).
func StockTankDensity(wt float64) float64 {
	return 62.368 + 0.438603*wt + 1.60074e-3*wt*wt
}

// Viscosity returns McCain brine viscosity (cP).
func Viscosity(p, degf, wt float64) float64 {
	a := 109.574 - 8.40564*wt + 0.313314*wt*wt + 8.72213e-3*wt*wt*wt
	b := -1.12166 + 2.63951e-2*wt - 6.79461e-4*wt*wt - 5.47119e-5*wt*wt*wt + 1.55586e-6*wt*wt*wt*wt
	mu1 := a * math.Pow(degf, b)
	return mu1 * (0.9994 + 4.0295e-5*p + 3.1062e-9*p*p)
}

// MethaneSolubility returns McCain methane solubility in brine (scf/stb) at
// full saturation.
func MethaneSolubility(p, degf, wt float64) float64 {
	t := degf
	a := 8.15839 - 6.12265e-2*t + 1.91663e-4*t*t - 2.1654e-7*t*t*t
	b := 1.01021e-2 - 7.44241e-5*t + 3.05553e-7*t*t - 2.94883e-10*t*t*t
	c := (-9.02505 + 0.130237*t - 8.53425e-4*t*t + 2.34122e-6*t*t*t - 2.37049e-9*t*t*t*t) * 1e-7
	rsw := a + b*p + c*p*p
	if rsw < 0 {
		rsw = 0
	}
	return rsw * math.Pow(10, -0.0840655*wt*math.Pow(t, -0.285854))
}

// Compressibility returns Osif water compressibility (1/psi) with the McCain
// dissolved-gas adjustment for solution GOR rsw.
func Compressibility(p, degf, wt, rsw float64) float64 {
	cgl := 10 * wt * StockTankDensity(wt) / 62.428 // g/L NaCl
	cw := 1 / (7.033*p + 541.5*cgl - 537*degf + 403300)
	return cw * (1 + 8.9e-3*rsw)
}

// Brine returns McCain brine properties. gasSat is the dissolved-gas
// saturation fraction (0 for gas-free brine, 1 for methane-saturated); Rsw
// scales with it.
func Brine(p, degf, wt, gasSat float64) (Properties, error) {
	if p <= 0 || degf <= 0 {
		return Properties{}, apierrors.NewValidationError("p,degf", fmt.Sprintf("%g,%g", p, degf), "must be greater than 0")
	}
	if wt < 0 || wt > MaxSalinityWt {
		return Properties{}, apierrors.NewValidationError("wt", fmt.Sprintf("%g", wt),
			fmt.Sprintf("must be between 0 and %g", MaxSalinityWt))
	}
	sat := math.Min(math.Max(gasSat, 0), 1)

	bw := FVF(p, degf)
	rsw := sat * MethaneSolubility(p, degf, wt)
	return Properties{
		Bw:              bw,
		Density:         StockTankDensity(wt) / bw,
		Viscosity:       Viscosity(p, degf, wt),
		Compressibility: Compressibility(p, degf, wt, rsw),
		Rsw:             rsw,
	}, nil
}
