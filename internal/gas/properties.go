package gas

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/num"
)

// pseudopressureNodes is the Gauss-Legendre order used for m(p) integrals.
const pseudopressureNodes = 50

// Fluid is a gas of fixed gravity and composition at a fixed temperature.
type Fluid struct {
	SG      float64
	DegF    float64
	Comp    Composition
	ZMethod string

	Tpc, Ppc float64
}

// NewFluid resolves the pseudo-critical properties (Piper-McCain-Corredor)
// of a gas at temperature degf.
func NewFluid(sg, degf float64, comp Composition, zmethod string) (*Fluid, error) {
	if sg <= 0 {
		return nil, apierrors.NewValidationError("sg", fmt.Sprintf("%g", sg), "must be greater than 0")
	}
	if degf <= -DegRankine {
		return nil, apierrors.NewValidationError("degf", fmt.Sprintf("%g", degf), "must be above absolute zero")
	}
	tpc, ppc, err := CriticalProperties(sg, comp, CriticalPMC)
	if err != nil {
		return nil, err
	}
	if zmethod == "" {
		zmethod = ZMethodDAK
	}
	return &Fluid{SG: sg, DegF: degf, Comp: comp, ZMethod: zmethod, Tpc: tpc, Ppc: ppc}, nil
}

// Rankine returns the fluid temperature in °R.
func (f *Fluid) Rankine() float64 {
	return f.DegF + DegRankine
}

// MW returns the apparent molecular weight.
func (f *Fluid) MW() float64 {
	return MWAir * f.SG
}

// Z returns the deviation factor at pressure p (psia).
func (f *Fluid) Z(p float64) (float64, error) {
	return ZFactor(f.Rankine()/f.Tpc, p/f.Ppc, f.ZMethod)
}

// FVF returns Bg in rcf/scf.
func (f *Fluid) FVF(p float64) (float64, error) {
	z, err := f.Z(p)
	if err != nil {
		return 0, err
	}
	return 0.02827 * z * f.Rankine() / p, nil
}

// Density returns the gas density in lb/cuft.
func (f *Fluid) Density(p float64) (float64, error) {
	z, err := f.Z(p)
	if err != nil {
		return 0, err
	}
	return p * f.MW() / (z * R * f.Rankine()), nil
}

// Viscosity returns the Lee, Gonzalez & Eakin (1966) gas viscosity in cP.
func (f *Fluid) Viscosity(p float64) (float64, error) {
	rho, err := f.Density(p)
	if err != nil {
		return 0, err
	}
	return LeeGonzalezEakin(f.Rankine(), f.MW(), rho), nil
}

// LeeGonzalezEakin returns viscosity (cP) for temperature degR, molecular
// weight mw and density rho in lb/cuft.
func LeeGonzalezEakin(degR, mw, rho float64) float64 {
	k := (9.4 + 0.02*mw) * math.Pow(degR, 1.5) / (209 + 19*mw + degR)
	x := 3.5 + 986/degR + 0.01*mw
	y := 2.4 - 0.2*x
	return 1e-4 * k * math.Exp(x*math.Pow(rho/62.428, y))
}

// Compressibility returns cg = 1/p - (1/z) dz/dp in 1/psi.
func (f *Fluid) Compressibility(p float64) (float64, error) {
	z, err := f.Z(p)
	if err != nil {
		return 0, err
	}
	h := math.Max(1e-4*p, 1e-3)
	zHi, err := f.Z(p + h)
	if err != nil {
		return 0, err
	}
	lo := math.Max(p-h, p/2)
	zLo, err := f.Z(lo)
	if err != nil {
		return 0, err
	}
	return 1/p - (zHi-zLo)/(p+h-lo)/z, nil
}

// Pseudopressure returns m(p2) - m(p1) in psia²/cP, where m(p) = 2∫ p/(μz) dp.
func (f *Fluid) Pseudopressure(p1, p2 float64) (float64, error) {
	if p1 == p2 {
		return 0, nil
	}
	lo, hi, sign := p1, p2, 1.0
	if lo > hi {
		lo, hi, sign = p2, p1, -1.0
	}

	var firstErr error
	integrand := func(p float64) float64 {
		if firstErr != nil {
			return 0
		}
		z, err := f.Z(p)
		if err != nil {
			firstErr = err
			return 0
		}
		rho := p * f.MW() / (z * R * f.Rankine())
		mu := LeeGonzalezEakin(f.Rankine(), f.MW(), rho)
		return p / (mu * z)
	}
	m := quad.Fixed(integrand, lo, hi, pseudopressureNodes, quad.Legendre{}, 0)
	if firstErr != nil {
		return 0, firstErr
	}
	return sign * 2 * m, nil
}

// PressureFromPZ returns the pressure at which p/z equals pz.
func (f *Fluid) PressureFromPZ(pz float64) (float64, error) {
	var zErr error
	fn := func(p float64) float64 {
		z, err := f.Z(p)
		if err != nil {
			zErr = err
			return math.NaN()
		}
		return p/z - pz
	}
	p, err := num.BrentExpand(fn, 0.1*pz, 2*pz, 64*pz, 1e-9)
	if zErr != nil {
		return 0, zErr
	}
	if err != nil {
		return 0, apierrors.NewConvergenceError("p/z inversion", num.MaxIterations, math.NaN())
	}
	return p, nil
}

// SGFromGradient returns the gas gravity whose density at (p, degf)
// produces the pressure gradient grad (psi/ft).
func SGFromGradient(grad, degf, p float64) (float64, error) {
	var zErr error
	fn := func(sg float64) float64 {
		fl, err := NewFluid(sg, degf, Composition{}, ZMethodDAK)
		if err != nil {
			zErr = err
			return math.NaN()
		}
		rho, err := fl.Density(p)
		if err != nil {
			zErr = err
			return math.NaN()
		}
		return rho/144 - grad
	}
	sg, err := num.Brent(fn, 0.5, 3.0, 1e-10)
	if zErr != nil {
		return 0, zErr
	}
	if err != nil {
		return 0, apierrors.NewValidationError("grad", fmt.Sprintf("%g", grad), "no gas gravity between 0.5 and 3.0 matches this gradient")
	}
	return sg, nil
}

// WaterContent returns saturated water content (lb/MMscf) from the
// Bukacek (1955) correlation.
func WaterContent(p, degf float64) float64 {
	degC := (degf - 32) / 1.8
	var log10Pv float64
	if degC <= 100 {
		log10Pv = 8.07131 - 1730.63/(233.426+degC)
	} else {
		log10Pv = 8.14019 - 1810.94/(244.485+degC)
	}
	pv := math.Pow(10, log10Pv) * 0.0193368 // mmHg to psia
	b := math.Pow(10, -3083.87/(459.6+degf)+6.69449)
	return 47484*pv/p + b
}

// SGFromComposition returns the mixture gravity of a gas whose hydrocarbon
// part has molecular weight hcMW.
func SGFromComposition(hcMW, co2, h2s, n2, h2 float64) (sg, hcFrac float64, err error) {
	inerts := co2 + h2s + n2 + h2
	if inerts > 1 {
		return 0, 0, apierrors.NewValidationError("co2+h2s+n2+h2", fmt.Sprintf("%.4g", inerts), "mole fractions must sum to 1 or less")
	}
	hcFrac = 1 - inerts
	mw := hcFrac*hcMW + MWCO2*co2 + MWH2S*h2s + MWN2*n2 + MWH2*h2
	return mw / MWAir, hcFrac, nil
}
