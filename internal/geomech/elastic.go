package geomech

import (
	"math"

	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
)

// Moduli is a complete set of isotropic elastic constants (psi, except ν).
type Moduli struct {
	E      float64 // Young's modulus
	K      float64 // bulk modulus
	G      float64 // shear modulus
	Nu     float64 // Poisson's ratio
	Lambda float64 // Lamé's first parameter
}

// ConvertModuli completes a set of isotropic moduli from any two of E, K,
// G, ν and λ. nil marks a missing value; supported pairs are tried in order
// E-ν, E-G, E-K, G-ν, K-ν, K-G, λ-G.
func ConvertModuli(e, k, g, nu, lambda *float64) (Moduli, error) {
	n := 0
	for _, v := range []*float64{e, k, g, nu, lambda} {
		if v != nil {
			n++
		}
	}
	if n < 2 {
		return Moduli{}, apierrors.NewValidationError("", "", "provide at least two elastic parameters")
	}

	var m Moduli
	switch {
	case e != nil && nu != nil:
		m.E, m.Nu = *e, *nu
		m.G = m.E / (2 * (1 + m.Nu))
		m.K = m.E / (3 * (1 - 2*m.Nu))
		m.Lambda = m.E * m.Nu / ((1 + m.Nu) * (1 - 2*m.Nu))
	case e != nil && g != nil:
		m.E, m.G = *e, *g
		m.Nu = m.E/(2*m.G) - 1
		m.K = m.E * m.G / (3 * (3*m.G - m.E))
		m.Lambda = m.G * (m.E - 2*m.G) / (3*m.G - m.E)
	case e != nil && k != nil:
		m.E, m.K = *e, *k
		m.G = 3 * m.K * m.E / (9*m.K - m.E)
		m.Nu = (3*m.K - m.E) / (6 * m.K)
		m.Lambda = m.K - 2*m.G/3
	case g != nil && nu != nil:
		m.G, m.Nu = *g, *nu
		m.E = 2 * m.G * (1 + m.Nu)
		m.K = 2 * m.G * (1 + m.Nu) / (3 * (1 - 2*m.Nu))
		m.Lambda = 2 * m.G * m.Nu / (1 - 2*m.Nu)
	case k != nil && nu != nil:
		m.K, m.Nu = *k, *nu
		m.E = 3 * m.K * (1 - 2*m.Nu)
		m.G = 3 * m.K * (1 - 2*m.Nu) / (2 * (1 + m.Nu))
		m.Lambda = 3 * m.K * m.Nu / (1 + m.Nu)
	case k != nil && g != nil:
		m.K, m.G = *k, *g
		m.Nu = (3*m.K - 2*m.G) / (6*m.K + 2*m.G)
		m.E = 9 * m.K * m.G / (3*m.K + m.G)
		m.Lambda = m.K - 2*m.G/3
	case lambda != nil && g != nil:
		m.Lambda, m.G = *lambda, *g
		m.K = m.Lambda + 2*m.G/3
		m.Nu = m.Lambda / (2 * (m.Lambda + m.G))
		m.E = m.G * (3*m.Lambda + 2*m.G) / (m.Lambda + m.G)
	default:
		return Moduli{}, apierrors.NewValidationError("", "", "unsupported parameter pair; use E, K or G with one of the others, or lambda with G")
	}

	if m.Nu < 0 || m.Nu >= 0.5 || m.E <= 0 || m.K <= 0 || m.G <= 0 {
		return Moduli{}, apierrors.NewValidationError("", "",
			"parameters do not describe a stable material (need E, K, G > 0 and 0 <= nu < 0.5)")
	}
	return m, nil
}

// DynamicToStaticFactors returns the multipliers applied to dynamic E and ν.
// The correlation takes precedence over the lithology.
func DynamicToStaticFactors(correlation, lithology string) (eFactor, nuFactor float64) {
	switch {
	case correlation == "eissa_kazi" || lithology == "sandstone":
		return 0.541, 0.87
	case correlation == "plona_cook" || lithology == "carbonate":
		return 0.70, 0.90
	}
	return 0.60, 0.85
}

// BulkCompressibility returns the drained bulk compressibility 1/K (1/psi).
func BulkCompressibility(e, nu float64) float64 {
	return 3 * (1 - 2*nu) / e
}

// PoreCompressibility returns pore volume compressibility (1/psi) from bulk
// and grain compressibility.
func PoreCompressibility(cb, cg, phi float64) float64 {
	return (cb - cg) / phi
}

// UniaxialCompaction returns the uniaxial compaction coefficient
// cm = (1 + ν)(1 − 2ν)/(E(1 − ν)) (1/psi).
func UniaxialCompaction(e, nu float64) float64 {
	return (1 + nu) * (1 - 2*nu) / (e * (1 - nu))
}

// Fracture width models
const (
	ModelPKN = "PKN"
	ModelKGD = "KGD"
)

// FractureWidth returns average and maximum fracture width (inches) for the
// PKN (height-controlled) or KGD (length-controlled) model.
func FractureWidth(model string, pnet, height, halfLength, e, nu float64) (avg, maxW float64) {
	ePrime := e / (1 - nu*nu)
	if model == ModelKGD {
		avg = 3.5 * pnet * halfLength / ePrime
		maxW = 1.6 * avg
	} else {
		avg = 2.5 * pnet * height / ePrime
		maxW = 2 * avg
	}
	return avg * 12, maxW * 12
}

// UCS correlations
const (
	UCSMcNally = "mcnally"
	UCSHorsrud = "horsrud"
	UCSChang   = "chang"
	UCSLal     = "lal"
	UCSVernik  = "vernik"
)

// UCSInputs are the log measurements available to UCS correlations.
type UCSInputs struct {
	SonicDT *float64 // µs/ft
	Phi     *float64
	E       *float64 // psi
}

// UCSEstimate is a UCS value with the correlation that produced it.
type UCSEstimate struct {
	UCS         float64 // psi
	Correlation string
	Fallback    bool
	Range       [2]float64 // typical psi range of the correlation
}

// UCSFromLogs estimates unconfined compressive strength with the requested
// correlation. When its input is missing it falls back to McNally (sonic),
// then Vernik (porosity), then Chang (Young's modulus).
func UCSFromLogs(correlation string, in UCSInputs) (UCSEstimate, error) {
	if est, ok := ucsCorrelation(correlation, in); ok {
		return est, nil
	}
	for _, c := range []string{UCSMcNally, UCSVernik, UCSChang} {
		if est, ok := ucsCorrelation(c, in); ok {
			est.Fallback = true
			return est, nil
		}
	}
	return UCSEstimate{}, apierrors.NewValidationError("", "", "provide sonic_dt, porosity or youngs_modulus")
}

func ucsCorrelation(name string, in UCSInputs) (UCSEstimate, bool) {
	var mpa float64
	var rng [2]float64
	switch {
	case name == UCSMcNally && in.SonicDT != nil:
		mpa = 1200 * math.Exp(-0.036*(*in.SonicDT))
		rng = [2]float64{2000, 15000}
	case name == UCSHorsrud && in.SonicDT != nil:
		vp := 304.8 / *in.SonicDT // km/s
		mpa = 0.77 * math.Pow(vp, 2.93)
		rng = [2]float64{500, 8000}
	case name == UCSLal && in.SonicDT != nil:
		mpa = 10 * (304.8 / *in.SonicDT - 1)
		rng = [2]float64{500, 5000}
	case name == UCSChang && in.E != nil:
		mpa = 2.28 + 4.1089*(*in.E/MPaToPsi/1000)
		rng = [2]float64{1000, 20000}
	case name == UCSVernik && in.Phi != nil:
		f := math.Max(0, 1-2.7*(*in.Phi))
		mpa = 254 * f * f
		rng = [2]float64{2000, 25000}
	default:
		return UCSEstimate{}, false
	}
	return UCSEstimate{UCS: math.Max(0, mpa*MPaToPsi), Correlation: name, Range: rng}, true
}
