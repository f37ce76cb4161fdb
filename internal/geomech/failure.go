package geomech

import "math"

// Shear failure criteria
const (
	CriterionMohrCoulomb     = "mohr_coulomb"
	CriterionDruckerPrager   = "drucker_prager"
	CriterionMogiCoulomb     = "mogi_coulomb"
	CriterionModifiedLade    = "modified_lade"
	CriterionModifiedWiebols = "modified_wiebols"
)

// CriterionResult compares a stress state with one failure criterion.
// Ratio is demand over capacity; the rock fails at Ratio >= 1.
type CriterionResult struct {
	Demand   float64 // the criterion's stress measure at the current state
	Capacity float64 // the same measure at failure
	Ratio    float64
}

// Failed reports whether the state reaches the envelope.
func (r CriterionResult) Failed() bool { return r.Ratio >= 1 }

func ratio(demand, capacity float64) CriterionResult {
	r := CriterionResult{Demand: demand, Capacity: capacity, Ratio: math.Inf(1)}
	if capacity > 0 {
		r.Ratio = demand / capacity
	}
	return r
}

func octahedralShear(s1, s2, s3 float64) float64 {
	return math.Sqrt((s1-s2)*(s1-s2)+(s2-s3)*(s2-s3)+(s1-s3)*(s1-s3)) / 3
}

func sqrtJ2(s1, s2, s3 float64) float64 {
	return math.Sqrt(((s1-s2)*(s1-s2) + (s2-s3)*(s2-s3) + (s1-s3)*(s1-s3)) / 6)
}

// EvaluateCriterion checks effective principal stresses s1 >= s2 >= s3
// against a shear failure criterion calibrated to ucs and the Mohr-Coulomb
// parameters m. ok is false for an unknown criterion.
func EvaluateCriterion(name string, s1, s2, s3, ucs float64, m MohrCoulomb) (CriterionResult, bool) {
	phi := deg2rad(m.Friction)
	sinPhi, cosPhi, tanPhi := math.Sin(phi), math.Cos(phi), math.Tan(phi)
	c := m.Cohesion

	switch name {
	case CriterionMohrCoulomb:
		return ratio(s1, m.Sigma1AtFailure(ucs, s3)), true

	case CriterionDruckerPrager:
		// inscribed (plane strain) match to Mohr-Coulomb
		d := math.Sqrt(9 + 12*tanPhi*tanPhi)
		alpha, k := tanPhi/d, 3*c/d
		return ratio(sqrtJ2(s1, s2, s3), k+alpha*(s1+s2+s3)), true

	case CriterionMogiCoulomb:
		a := 2 * math.Sqrt2 / 3 * c * cosPhi
		b := 2 * math.Sqrt2 / 3 * sinPhi
		return ratio(octahedralShear(s1, s2, s3), a+b*(s1+s3)/2), true

	case CriterionModifiedLade:
		// Ewy (1999)
		sh := c / tanPhi
		p1, p2, p3 := s1+sh, s2+sh, s3+sh
		i1 := p1 + p2 + p3
		i3 := p1 * p2 * p3
		eta := 4 * tanPhi * tanPhi * (9 - 7*sinPhi) / (1 - sinPhi)
		if i3 <= 0 {
			return ratio(math.Inf(1), eta), true
		}
		return ratio(i1*i1*i1/i3-27, eta), true

	case CriterionModifiedWiebols:
		// Zhou (1994) calibrated to ucs and friction
		q := m.Q()
		c1 := (1 + 0.6*tanPhi) * ucs
		cc := math.Sqrt(27) / (2*c1 + (q-1)*s3 - ucs) *
			((c1+(q-1)*s3-ucs)/(2*c1+(2*q+1)*s3-ucs) - (q-1)/(q+2))
		b := math.Sqrt(3)*(q-1)/(q+2) - cc/3*(2*ucs+(q+2)*s3)
		a := ucs/math.Sqrt(3) - ucs/3*b - ucs*ucs/9*cc
		j1 := (s1 + s2 + s3) / 3
		return ratio(sqrtJ2(s1, s2, s3), a+b*j1+cc*j1*j1), true
	}
	return CriterionResult{}, false
}

// FaultStress holds the effective normal and shear stress resolved on a fault.
type FaultStress struct {
	Normal   float64 // effective
	Shear    float64
	Slip     float64 // slip tendency τ/σn'
	Dilation float64 // dilation tendency (σ1' − σn')/(σ1' − σ3')
}

// ResolveOnFault resolves effective σ1 and σ3 onto a plane whose normal
// makes angle theta (degrees) with σ1, in the σ1-σ3 plane.
func ResolveOnFault(s1, s3, theta float64) FaultStress {
	t := deg2rad(theta)
	mean, dev := (s1+s3)/2, (s1-s3)/2
	fs := FaultStress{
		Normal: mean + dev*math.Cos(2*t),
		Shear:  math.Abs(dev * math.Sin(2*t)),
	}
	if fs.Normal > 0 {
		fs.Slip = fs.Shear / fs.Normal
	}
	if s1 > s3 {
		fs.Dilation = (s1 - fs.Normal) / (s1 - s3)
	}
	return fs
}

// CoulombStress is the Coulomb failure function τ − μσn' − c; slip occurs
// at zero or above.
func CoulombStress(fs FaultStress, mu, cohesion float64) float64 {
	return fs.Shear - mu*fs.Normal - cohesion
}

// FractureInitiation returns the Hubbert-Willis (non-penetrating) breakdown
// pressure of a vertical well, 3σh − σH − Pp + T + Δσ_thermal.
func FractureInitiation(shmax, shmin, pp, tensile, thermal float64) float64 {
	return 3*shmin - shmax - pp + tensile + thermal
}

// HaimsonFairhurst returns the breakdown pressure with penetrating fluid for
// poroelastic constant eta = α(1 − 2ν)/(1 − ν).
func HaimsonFairhurst(shmax, shmin, pp, tensile, eta float64) float64 {
	return pp + (3*shmin-shmax+tensile-2*pp)/(2-eta)
}

// SandingDrawdown returns the drawdown (psi) at which the maximum effective
// hoop stress of a producing hole reaches ucs, with the wall in pressure
// equilibrium with the wellbore. The result is clamped to [0, pp].
func SandingDrawdown(shmax, shmin, pp, ucs float64) float64 {
	hoop := 3*(shmax-pp) - (shmin - pp)
	return math.Max(0, math.Min((ucs-hoop)/2, pp))
}
