package geomech

import "math"

// Breakout severities
const (
	BreakoutStable   = "stable"
	BreakoutMinor    = "minor_breakout"
	BreakoutModerate = "moderate_breakout"
	BreakoutSevere   = "severe_breakout"
)

// MaxHoopStress is the largest total hoop stress on a vertical wellbore
// wall, 3σH − σh − Pw, found at 90° from σH,max.
func MaxHoopStress(shmax, shmin, pw float64) float64 {
	return 3*shmax - shmin - pw
}

// CollapsePressure returns the wellbore pressure at which the maximum
// effective hoop stress of a vertical hole reaches Mohr-Coulomb failure,
// σθ' = ucs + q·σr', with formation pore pressure pp at the wall. Below it
// the wall fails in shear.
func CollapsePressure(shmax, shmin, pp, ucs, q float64) float64 {
	return (3*shmax - shmin + (q-1)*pp - ucs) / (1 + q)
}

// Breakout describes compressive failure around a vertical wellbore.
type Breakout struct {
	Width   float64 // degrees, per breakout
	MaxHoop float64 // total, psi
	Status  string
}

// BreakoutWidth returns the Kirsch breakout width: the arc around σh,min
// where the effective hoop stress exceeds the confined Mohr-Coulomb
// strength ucs + q·(Pw − Pp).
func BreakoutWidth(shmax, shmin, pp, pw, ucs, q float64) Breakout {
	b := Breakout{MaxHoop: MaxHoopStress(shmax, shmin, pw), Status: BreakoutStable}
	strength := ucs + q*math.Max(pw-pp, 0)
	if b.MaxHoop-pp <= strength {
		return b
	}

	if shmax-shmin <= 0 {
		b.Width = 180
	} else {
		c := (shmax + shmin - pw - pp - strength) / (2 * (shmax - shmin))
		thetaB := rad2deg(math.Acos(math.Max(-1, math.Min(1, c)))) / 2
		b.Width = 180 - 2*thetaB
	}

	switch {
	case b.Width < 30:
		b.Status = BreakoutMinor
	case b.Width < 90:
		b.Status = BreakoutModerate
	default:
		b.Status = BreakoutSevere
	}
	return b
}

// InvertBreakout solves the Kirsch failure condition at the breakout edge
// for σH,max, given σh,min. width is in degrees.
func InvertBreakout(width, shmin, pp, pw, ucs, q float64) (shmax float64, ok bool) {
	cos2 := math.Cos(2 * deg2rad(90-width/2))
	coefH := 1 - 2*cos2
	coefh := 1 + 2*cos2
	if math.Abs(coefH) <= 0.01 {
		return 0, false
	}
	rhs := ucs + q*(pw-pp) + pp + pw
	return (rhs - coefh*shmin) / coefH, true
}

// Fracture gradient methods
const (
	FracHubbertWillis = "hubbert_willis"
	FracEaton         = "eaton"
	FracMatthewsKelly = "matthews_kelly"
)

// FracturePressure estimates σh,min as the fracture closure pressure (psi).
// Hubbert-Willis uses a fixed effective stress ratio of 1/3, Eaton uses
// ν/(1 − ν), and Matthews-Kelly uses the matrix stress coefficient ki.
func FracturePressure(method string, sv, pp, nu, ki float64) float64 {
	sve := sv - pp
	switch method {
	case FracHubbertWillis:
		return sve/3 + pp
	case FracMatthewsKelly:
		return ki*sve + pp
	}
	return UniaxialStrainRatio(nu)*sve + pp
}

// MudWindow is the drillable mud weight range (ppg).
type MudWindow struct {
	Min    float64
	Max    float64
	Width  float64
	Status string
}

// MudWeightWindow returns the window between pore (or collapse, when
// larger) pressure plus an overbalance margin and fracture pressure minus a
// fracture margin. collapse may be 0 when unknown.
func MudWeightWindow(pp, frac, collapse, depth, overbalance, fracMargin float64) MudWindow {
	lo := EquivalentMudWeight(pp, depth) + overbalance
	if collapse > 0 {
		lo = math.Max(lo, EquivalentMudWeight(collapse, depth))
	}
	hi := EquivalentMudWeight(frac, depth) - fracMargin
	w := MudWindow{Min: lo, Max: hi, Width: hi - lo}
	switch {
	case w.Width < 0:
		w.Status = "negative - MPD required"
	case w.Width < 2:
		w.Status = "narrow - challenging"
	case w.Width < 4:
		w.Status = "moderate - normal drilling"
	default:
		w.Status = "wide - easy drilling"
	}
	return w
}
