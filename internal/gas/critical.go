// Package gas implements natural gas PVT correlations: pseudo-critical
// properties, Z-factor, viscosity, density, compressibility, pseudopressure
// and water content.
package gas

import (
	"fmt"
	"math"

	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
)

// Physical constants in oilfield units
const (
	R          = 10.732 // psia·ft³/(lbmol·°R)
	MWAir      = 28.97
	Psc        = 14.696 // psia
	Tsc        = 60.0   // degF
	DegRankine = 459.67

	MWH2S = 34.082
	MWCO2 = 44.01
	MWN2  = 28.014
	MWH2  = 2.016
)

// Critical property methods
const (
	CriticalPMC = "PMC"
	CriticalSUT = "SUT"
)

// Composition holds non-hydrocarbon mole fractions of a gas mixture.
type Composition struct {
	H2S float64
	CO2 float64
	N2  float64
}

// Inerts returns the total non-hydrocarbon fraction.
func (c Composition) Inerts() float64 {
	return c.H2S + c.CO2 + c.N2
}

// Validate rejects compositions whose inert fractions exceed unity.
func (c Composition) Validate() error {
	if c.Inerts() > 1 {
		return apierrors.NewValidationError("h2s+co2+n2", fmt.Sprintf("%.4g", c.Inerts()), "inert mole fractions must sum to 1 or less")
	}
	return nil
}

// pure component critical constants (°R, psia)
var inertCritical = [3]struct{ tc, pc float64 }{
	{672.35, 1306.0}, // H2S
	{547.58, 1071.0}, // CO2
	{227.16, 493.1},  // N2
}

// Piper, McCain & Corredor (1993) coefficients
var (
	pmcAlpha = [6]float64{0.11582, -0.45820, -0.90348, -0.66026, 0.70729, -0.099397}
	pmcBeta  = [6]float64{3.8216, -0.06534, -0.42113, -0.91249, 17.438, -3.2191}
)

// CriticalProperties returns the pseudo-critical temperature (°R) and
// pressure (psia) of a gas mixture.
func CriticalProperties(sg float64, comp Composition, method string) (tpc, ppc float64, err error) {
	if err := comp.Validate(); err != nil {
		return 0, 0, err
	}
	switch method {
	case "", CriticalPMC:
		tpc, ppc = piperMcCain(sg, comp)
	case CriticalSUT:
		tpc, ppc, err = suttonWichertAziz(sg, comp)
		if err != nil {
			return 0, 0, err
		}
	default:
		return 0, 0, apierrors.NewValidationError("method", method, "must be one of: PMC, SUT")
	}
	return tpc, ppc, nil
}

func piperMcCain(sg float64, comp Composition) (float64, float64) {
	y := [3]float64{comp.H2S, comp.CO2, comp.N2}
	j := pmcAlpha[0] + pmcAlpha[4]*sg + pmcAlpha[5]*sg*sg
	k := pmcBeta[0] + pmcBeta[4]*sg + pmcBeta[5]*sg*sg
	for i, c := range inertCritical {
		j += pmcAlpha[i+1] * y[i] * c.tc / c.pc
		k += pmcBeta[i+1] * y[i] * c.tc / math.Sqrt(c.pc)
	}
	tpc := k * k / j
	return tpc, tpc / j
}

// suttonWichertAziz applies Sutton's hydrocarbon correlation, Kay's mixing
// rule for the inerts, then the Wichert-Aziz sour gas correction.
func suttonWichertAziz(sg float64, comp Composition) (float64, float64, error) {
	yi := comp.Inerts()
	if yi >= 1 {
		return 0, 0, apierrors.NewValidationError("h2s+co2+n2", "1", "SUT needs a hydrocarbon fraction above zero")
	}
	sgHC := (sg - (MWCO2*comp.CO2+MWH2S*comp.H2S+MWN2*comp.N2)/MWAir) / (1 - yi)
	if sgHC <= 0 {
		return 0, 0, apierrors.NewValidationError("sg", fmt.Sprintf("%g", sg), "too low for the stated inert content")
	}

	tpc := (1-yi)*(169.2+349.5*sgHC-74*sgHC*sgHC) +
		comp.H2S*inertCritical[0].tc + comp.CO2*inertCritical[1].tc + comp.N2*inertCritical[2].tc
	ppc := (1-yi)*(756.8-131*sgHC-3.6*sgHC*sgHC) +
		comp.H2S*inertCritical[0].pc + comp.CO2*inertCritical[1].pc + comp.N2*inertCritical[2].pc

	a := comp.H2S + comp.CO2
	b := comp.H2S
	eps := 120*(math.Pow(a, 0.9)-math.Pow(a, 1.6)) + 15*(math.Sqrt(b)-math.Pow(b, 4))
	tpcCorr := tpc - eps
	ppcCorr := ppc * tpcCorr / (tpc + b*(1-b)*eps)
	return tpcCorr, ppcCorr, nil
}
