package geomech

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
)

// Stress regimes (Anderson)
const (
	RegimeNormal     = "normal"
	RegimeStrikeSlip = "strike-slip"
	RegimeReverse    = "reverse"
	RegimeUndefined  = "undefined"
)

// VerticalStress returns the overburden (psi) at depth (ft) for an average
// bulk density and an optional water column, densities in lb/cuft.
func VerticalStress(depth, waterDepth, bulkDensity, waterDensity float64) (float64, error) {
	if waterDepth > depth {
		return 0, apierrors.NewValidationError("water_depth", fmt.Sprintf("%g", waterDepth), "must not exceed depth")
	}
	rock := PsiPerFtPerPPG * bulkDensity / lbPerCuftPerPPG * (depth - waterDepth)
	water := PsiPerFtPerPPG * waterDensity / lbPerCuftPerPPG * waterDepth
	return rock + water, nil
}

// EatonPorePressure returns Eaton pore pressure (psi). ratio is normal/observed
// for sonic transit time and observed/normal for resistivity.
func EatonPorePressure(overburden, hydrostatic, ratio, exponent float64) float64 {
	return overburden - (overburden-hydrostatic)*math.Pow(ratio, exponent)
}

// EffectiveStress is the Terzaghi/Biot effective stress σ − α·Pp.
func EffectiveStress(total, pp, biot float64) float64 {
	return total - biot*pp
}

// UniaxialStrainRatio is ν/(1 − ν), the horizontal-to-vertical effective
// stress ratio of a laterally confined elastic layer.
func UniaxialStrainRatio(nu float64) float64 {
	return nu / (1 - nu)
}

// HorizontalStress returns σh,min from uniaxial strain and σH,max blended
// toward σv by the tectonic factor (0 passive, 1 reverse).
func HorizontalStress(sv, pp, nu, tectonic, biot float64) (shmin, shmax float64, regime string) {
	shmin = UniaxialStrainRatio(nu)*EffectiveStress(sv, pp, biot) + biot*pp
	shmax = shmin + tectonic*(sv-shmin)
	switch {
	case tectonic < 0.3:
		regime = RegimeNormal
	case tectonic < 0.7:
		regime = RegimeStrikeSlip
	default:
		regime = RegimeReverse
	}
	return shmin, shmax, regime
}

// ClassifyRegime names the Anderson regime of a principal stress ordering.
func ClassifyRegime(sv, shmax, shmin float64) string {
	switch {
	case sv >= shmax && shmax >= shmin:
		return RegimeNormal
	case shmax >= sv && sv >= shmin:
		return RegimeStrikeSlip
	case shmax >= shmin && shmin >= sv:
		return RegimeReverse
	}
	return RegimeUndefined
}

// FrictionalLimit is the largest effective principal stress ratio a
// critically oriented fault with friction mu can sustain.
func FrictionalLimit(mu float64) float64 {
	r := math.Sqrt(mu*mu+1) + mu
	return r * r
}

// Polygon holds the frictional-equilibrium bounds on horizontal stresses.
type Polygon struct {
	Q               float64 // frictional limit
	NormalShminMin  float64
	NormalShminMax  float64
	ReverseShmaxMin float64
	ReverseShmaxMax float64
	StrikeSlipShmin float64
	StrikeSlipShmax float64
}

// StressPolygon returns the horizontal stress bounds allowed by faults of
// friction mu at the given vertical stress and pore pressure.
func StressPolygon(sv, pp, mu float64) Polygon {
	q := FrictionalLimit(mu)
	sve := sv - pp
	lo := sve/q + pp
	hi := sve*q + pp
	return Polygon{
		Q:               q,
		NormalShminMin:  lo,
		NormalShminMax:  sv,
		ReverseShmaxMin: sv,
		ReverseShmaxMax: hi,
		StrikeSlipShmin: lo,
		StrikeSlipShmax: hi,
	}
}

// WithinFrictionalLimits reports whether the effective stress ratios of
// (sv, shmax, shmin) stay within the frictional limit q. States with
// non-positive effective stress cannot be checked and pass.
func WithinFrictionalLimits(sv, shmax, shmin, pp, q float64) bool {
	sve, sHe, she := sv-pp, shmax-pp, shmin-pp
	if sve <= 0 || she <= 0 {
		return true
	}
	return sve/she <= q && sHe/sve <= q
}

// PoroelasticStressPath is γ = Δσh/ΔPp = α(1 − 2ν)/(1 − ν) for a laterally
// unbounded reservoir.
func PoroelasticStressPath(nu, biot float64) float64 {
	return biot * (1 - 2*nu) / (1 - nu)
}

// ThermalStress returns the thermally induced hoop stress change (psi) for a
// temperature change dT (°F); cooling is negative.
func ThermalStress(e, nu, alpha, dT float64) float64 {
	return -e * alpha * dT / (1 - nu)
}

// Principal holds the far-field principal stresses.
type Principal struct {
	SV    float64
	SHmax float64
	Shmin float64
}

// WellStress is the far-field stress tensor in wellbore coordinates: x toward
// the high side, y horizontal, z along the well axis.
type WellStress struct {
	XX, YY, ZZ float64
	XY, XZ, YZ float64
}

// Tensor returns the stress as a symmetric matrix.
func (w WellStress) Tensor() *mat.SymDense {
	return mat.NewSymDense(3, []float64{
		w.XX, w.XY, w.XZ,
		w.XY, w.YY, w.YZ,
		w.XZ, w.YZ, w.ZZ,
	})
}

// ToWellFrame rotates the principal stresses into a wellbore with azimuth
// relAz (degrees from σH,max) and inclination inc (degrees from vertical).
func ToWellFrame(p Principal, relAz, inc float64) WellStress {
	a, i := deg2rad(relAz), deg2rad(inc)
	ca, sa := math.Cos(a), math.Sin(a)
	ci, si := math.Cos(i), math.Sin(i)

	r := mat.NewDense(3, 3, []float64{
		ca * ci, sa * ci, -si,
		-sa, ca, 0,
		ca * si, sa * si, ci,
	})
	s := mat.NewDiagDense(3, []float64{p.SHmax, p.Shmin, p.SV})
	var t mat.Dense
	t.Product(r, s, r.T())

	return WellStress{
		XX: t.At(0, 0), YY: t.At(1, 1), ZZ: t.At(2, 2),
		XY: t.At(0, 1), XZ: t.At(0, 2), YZ: t.At(1, 2),
	}
}

// PrincipalValues returns the eigenvalues of a symmetric stress tensor in
// descending order.
func PrincipalValues(t mat.Symmetric) ([]float64, error) {
	var eig mat.EigenSym
	if ok := eig.Factorize(t, false); !ok {
		return nil, fmt.Errorf("eigen decomposition of stress tensor failed")
	}
	vals := eig.Values(nil)
	for i, j := 0, len(vals)-1; i < j; i, j = i+1, j-1 {
		vals[i], vals[j] = vals[j], vals[i]
	}
	return vals, nil
}

// WallPoint is the total stress state at one position on the wellbore wall.
type WallPoint struct {
	Theta  float64 // degrees from the high side
	Radial float64
	Hoop   float64
	Axial  float64
	Shear  float64 // hoop-axial shear
	Max    float64 // largest principal stress
	Min    float64 // smallest principal stress
}

// WallStresses evaluates the Kirsch wall stresses of an inclined well at
// mud pressure pw, every step degrees from 0 to 180. nu enters through the
// plane-strain axial stress.
func WallStresses(w WellStress, pw, nu, step float64) ([]WallPoint, error) {
	if step <= 0 {
		step = 1
	}
	var pts []WallPoint
	for deg := 0.0; deg <= 180+1e-9; deg += step {
		th := deg2rad(deg)
		c2, s2 := math.Cos(2*th), math.Sin(2*th)
		hoop := w.XX + w.YY - 2*(w.XX-w.YY)*c2 - 4*w.XY*s2 - pw
		axial := w.ZZ - 2*nu*(w.XX-w.YY)*c2 - 4*nu*w.XY*s2
		shear := 2 * (w.YZ*math.Cos(th) - w.XZ*math.Sin(th))

		vals, err := PrincipalValues(mat.NewSymDense(3, []float64{
			pw, 0, 0,
			0, hoop, shear,
			0, shear, axial,
		}))
		if err != nil {
			return nil, err
		}
		pts = append(pts, WallPoint{
			Theta:  deg,
			Radial: pw,
			Hoop:   hoop,
			Axial:  axial,
			Shear:  shear,
			Max:    vals[0],
			Min:    vals[len(vals)-1],
		})
	}
	return pts, nil
}
