// Package geomech implements wellbore and reservoir geomechanics: in-situ
// stresses, elastic moduli, rock failure criteria, Kirsch wellbore-wall
// stresses and mud weight limits. Stresses are compressive-positive, in psi.
package geomech

import "math"

const (
	// PsiPerFtPerPPG converts mud weight (ppg) to pressure gradient (psi/ft).
	PsiPerFtPerPPG = 0.052
	// HydrostaticGradient is the normal pore pressure gradient (psi/ft).
	HydrostaticGradient = 0.465
	// MPaToPsi converts megapascals to psi.
	MPaToPsi = 145.038

	lbPerCuftPerPPG = 7.48
)

// Hydrostatic returns normal pore pressure (psi) at depth (ft).
func Hydrostatic(depth float64) float64 {
	return HydrostaticGradient * depth
}

// MudPressure returns the static mud column pressure (psi).
func MudPressure(mw, depth float64) float64 {
	return PsiPerFtPerPPG * mw * depth
}

// EquivalentMudWeight converts a pressure at depth to ppg.
func EquivalentMudWeight(p, depth float64) float64 {
	return p / (PsiPerFtPerPPG * depth)
}

// MohrCoulomb is a linear shear failure envelope τ = c + σn·tan φ.
type MohrCoulomb struct {
	Cohesion float64 // psi
	Friction float64 // degrees
}

// Q is the passive stress ratio (1 + sin φ)/(1 − sin φ).
func (m MohrCoulomb) Q() float64 {
	s := math.Sin(m.Friction * math.Pi / 180)
	return (1 + s) / (1 - s)
}

// UCS is the unconfined strength 2c·cos φ/(1 − sin φ).
func (m MohrCoulomb) UCS() float64 {
	phi := m.Friction * math.Pi / 180
	return 2 * m.Cohesion * math.Cos(phi) / (1 - math.Sin(phi))
}

// Sigma1AtFailure returns the maximum effective principal stress the rock
// sustains at confinement s3, given unconfined strength ucs.
func (m MohrCoulomb) Sigma1AtFailure(ucs, s3 float64) float64 {
	return ucs + m.Q()*s3
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

func rad2deg(r float64) float64 { return r * 180 / math.Pi }
