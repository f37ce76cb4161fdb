// Package inflow computes steady-state well deliverability: Darcy oil rates
// (optionally Vogel below the bubble point) and pseudopressure gas rates,
// for radial and linear geometry.
package inflow

import (
	"fmt"
	"math"

	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/gas"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/oil"
)

// Darcy constants in oilfield units
const (
	radialConst = 0.00708  // STB/d from mD·ft·psi/(cP·rb/stb)
	linearConst = 0.001127 // STB/d from mD·ft²·psi/(cP·rb/stb·ft)
	gasRadial   = 1422.0   // MSCF/d radial pseudopressure constant
	bgConst     = 0.02827  // Bg = 0.02827 z T / p
	cfPerBbl    = 5.615
	vogelFactor = 1.8
	skinOffset  = 0.75 // pseudo-steady state: ln(re/rw) - 3/4
)

// Radial describes drainage to a vertical well.
type Radial struct {
	K, H   float64 // mD, ft
	Re, Rw float64 // ft
	S      float64 // skin
}

func (r Radial) validate() error {
	if r.Rw >= r.Re {
		return apierrors.NewValidationError("rw", fmt.Sprintf("%g", r.Rw), "must be less than re")
	}
	if r.denominator() <= 0 {
		return apierrors.NewValidationError("s", fmt.Sprintf("%g", r.S), "ln(re/rw) - 0.75 + s must be positive")
	}
	return nil
}

func (r Radial) denominator() float64 {
	return math.Log(r.Re/r.Rw) - skinOffset + r.S
}

// Linear describes flow through a cross section of Area (ft²) over Length (ft).
type Linear struct {
	K, Area, Length float64
}

// OilPVT evaluates the Bo and viscosity a Darcy rate uses. Both are taken at
// the average of reservoir and flowing pressure, with Velarde Rs, McCain Bo
// and Beggs-Robinson viscosity.
func OilPVT(o *oil.Oil, pi, pwf float64) (bo, uo float64, err error) {
	pavg := (pi + pwf) / 2
	rs, err := o.Rs(pavg)
	if err != nil {
		return 0, 0, err
	}
	bo, err = o.Bo(pavg, rs)
	if err != nil {
		return 0, 0, err
	}
	return bo, o.Viscosity(pavg, rs), nil
}

// OilRateRadial returns the oil rate (STB/d) of a vertical well flowing at
// pwf. With vogel set and pwf below the bubble point, the rate below pb
// follows Vogel's two-phase IPR on top of the single-phase rate down to pb.
func OilRateRadial(o *oil.Oil, r Radial, pi, pwf float64, vogel bool) (float64, error) {
	if err := r.validate(); err != nil {
		return 0, err
	}
	if pwf >= pi {
		return 0, nil
	}
	bo, uo, err := OilPVT(o, pi, pwf)
	if err != nil {
		return 0, err
	}
	j := radialConst * r.K * r.H / (uo * bo * r.denominator())
	if !vogel || pwf >= o.Pb {
		return j * (pi - pwf), nil
	}
	pb := math.Min(o.Pb, pi)
	x := pwf / pb
	return j*(pi-pb) + j*pb/vogelFactor*(1-0.2*x-0.8*x*x), nil
}

// OilRateLinear returns the single-phase oil rate (STB/d) for linear flow.
func OilRateLinear(o *oil.Oil, l Linear, pi, pwf float64) (float64, error) {
	if pwf >= pi {
		return 0, nil
	}
	bo, uo, err := OilPVT(o, pi, pwf)
	if err != nil {
		return 0, err
	}
	return linearConst * l.K * l.Area * (pi - pwf) / (uo * bo * l.Length), nil
}

// GasRateRadial returns the gas rate (MSCF/d) of a vertical well from the
// real-gas pseudopressure drop m(pi) - m(pwf).
func GasRateRadial(f *gas.Fluid, r Radial, pi, pwf float64) (float64, error) {
	if err := r.validate(); err != nil {
		return 0, err
	}
	if pwf >= pi {
		return 0, nil
	}
	dm, err := f.Pseudopressure(pwf, pi)
	if err != nil {
		return 0, err
	}
	return r.K * r.H * dm / (gasRadial * f.Rankine() * r.denominator()), nil
}

// GasRateLinear returns the gas rate (MSCF/d) for linear flow.
func GasRateLinear(f *gas.Fluid, l Linear, pi, pwf float64) (float64, error) {
	if pwf >= pi {
		return 0, nil
	}
	dm, err := f.Pseudopressure(pwf, pi)
	if err != nil {
		return 0, err
	}
	return linearConst * cfPerBbl * l.K * l.Area * dm / (2 * bgConst * f.Rankine() * l.Length) / 1000, nil
}
