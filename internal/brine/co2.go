package brine

import (
	"fmt"
	"math"

	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
)

// Spycher & Pruess (2003) Redlich-Kwong parameters, bar cm³ mol⁻¹ units
const (
	rBar       = 83.1447 // bar cm³/(mol K)
	bCO2       = 27.80
	bH2O       = 18.18
	aH2OCO2    = 7.89e7
	vbarH2O    = 18.1 // cm³/mol
	vbarCO2    = 32.6
	molesWater = 55.508 // mol H2O per kg
)

// Molar masses (kg/mol) and reference states
const (
	mwCO2      = 0.04401
	mwH2O      = 0.018015
	mwNaCl     = 0.0584428
	stdMolarL  = 23.6906 // L/mol ideal gas at 60 °F, 1.01325 bar
	stdTempC   = 15.5556
	stdPresBar = 1.01325
	CfPerBbl   = 5.614583
	BarPerPsi  = 0.0689476
)

// Validity range of the solubility model
const (
	MinTempC = 10.0
	MaxTempC = 110.0
	MaxPBar  = 700.0
)

// CO2Brine is the equilibrium state of CO2 with NaCl brine. Densities are
// g/cm³, viscosities cP, compressibilities and viscosibility per bar, and Rs
// standard volumes of CO2 per standard volume of brine.
type CO2Brine struct {
	XCO2, XH2O, XSalt float64 // aqueous mole fractions
	YCO2, YH2O        float64 // CO2-rich phase mole fractions
	MolalityCO2       float64 // mol/kg H2O
	Phase             string  // state of the CO2-rich phase: gas or liquid

	GasDensity, SatDensity, BrineDensity, WaterDensity          float64
	SatViscosity, BrineViscosity, WaterViscosity, Viscosibility float64

	BwSat, Bw, BwFresh float64
	Rs                 float64
	CwUsat, CwSat      float64
}

// rkParams returns mixture a and b for pure CO2 at temperature tk (K).
func rkParams(tk float64) (a, b float64) {
	return 7.54e7 - 4.13e4*tk, bCO2
}

// cubicRoots returns the real roots of x³ + a2x² + a1x + a0, ascending.
func cubicRoots(a2, a1, a0 float64) []float64 {
	q := (3*a1 - a2*a2) / 9
	r := (9*a2*a1 - 27*a0 - 2*a2*a2*a2) / 54
	d := q*q*q + r*r
	if d > 0 {
		sd := math.Sqrt(d)
		return []float64{math.Cbrt(r+sd) + math.Cbrt(r-sd) - a2/3}
	}
	th := math.Acos(r / math.Sqrt(-q*q*q))
	m := 2 * math.Sqrt(-q)
	roots := []float64{
		m*math.Cos(th/3) - a2/3,
		m*math.Cos((th+2*math.Pi)/3) - a2/3,
		m*math.Cos((th+4*math.Pi)/3) - a2/3,
	}
	if roots[0] > roots[1] {
		roots[0], roots[1] = roots[1], roots[0]
	}
	if roots[1] > roots[2] {
		roots[1], roots[2] = roots[2], roots[1]
	}
	if roots[0] > roots[1] {
		roots[0], roots[1] = roots[1], roots[0]
	}
	return roots
}

// rkVolume returns the molar volume (cm³/mol) of CO2 at tk, pBar and whether
// the stable root is liquid-like.
func rkVolume(tk, pBar float64) (float64, bool) {
	a, b := rkParams(tk)
	st := math.Sqrt(tk)
	roots := cubicRoots(-rBar*tk/pBar, -(rBar*tk*b/pBar - a/(pBar*st) + b*b), -a*b/(pBar*st))
	var vs []float64
	for _, v := range roots {
		if v > b {
			vs = append(vs, v)
		}
	}
	if len(vs) == 1 {
		return vs[0], false
	}
	vl, vg := vs[0], vs[len(vs)-1]
	w1 := pBar * (vg - vl)
	w2 := rBar*tk*math.Log((vg-b)/(vl-b)) + a/(st*b)*math.Log((vg+b)*vl/((vl+b)*vg))
	if w2-w1 >= 0 {
		return vg, false
	}
	return vl, true
}

// fugacityCoeff returns the RK fugacity coefficient of a component with
// cross term aik and co-volume bk in the CO2-rich phase.
func fugacityCoeff(tk, pBar, v, aik, bk float64) float64 {
	a, b := rkParams(tk)
	t15 := math.Pow(tk, 1.5)
	lnv := math.Log((v + b) / v)
	lnphi := math.Log(v/(v-b)) + bk/(v-b) - 2*aik/(rBar*t15*b)*lnv +
		a*bk/(rBar*t15*b*b)*(lnv-b/(v+b)) - math.Log(pBar*v/(rBar*tk))
	return math.Exp(lnphi)
}

// Duan & Sun (2003) interaction parameters c1..c11 for λ(CO2-Na) and ζ(CO2-Na-Cl)
var (
	duanLambda = [11]float64{-0.411370585, 6.07632013e-4, 97.5347708, 0, 0, 0, 0, -0.0237622469, 0.0170656236, 0, 1.41335834e-5}
	duanZeta   = [11]float64{3.36389723e-4, -1.98298980e-5, 0, 0, 0, 0, 0, 2.12220830e-3, -5.24873303e-3, 0, 0}
)

func duanPar(c [11]float64, tk, pBar float64) float64 {
	return c[0] + c[1]*tk + c[2]/tk + c[3]*tk*tk + c[4]/(630-tk) + c[5]*pBar +
		c[6]*pBar*math.Log(tk) + c[7]*pBar/tk + c[8]*pBar/(630-tk) +
		c[9]*pBar*pBar/((630-tk)*(630-tk)) + c[10]*tk*math.Log(pBar)
}

// SaltingOut returns the Duan-Sun CO2 activity coefficient in NaCl brine of
// molality m.
func SaltingOut(tk, pBar, m float64) float64 {
	return math.Exp(2*duanPar(duanLambda, tk, pBar)*m + duanPar(duanZeta, tk, pBar)*m*m)
}

type phaseSplit struct {
	v      float64 // CO2-rich phase molar volume, cm³/mol
	liquid bool
	yH2O   float64
	mCO2   float64 // mol/kg H2O in brine
}

// equilibrium solves Spycher-Pruess mutual solubility in pure water and
// applies Duan-Sun salting out for salt molality m.
func equilibrium(tc, pBar, m float64) phaseSplit {
	tk := tc + 273.15
	v, liquid := rkVolume(tk, pBar)
	a, _ := rkParams(tk)
	phiCO2 := fugacityCoeff(tk, pBar, v, a, bCO2)
	phiH2O := fugacityCoeff(tk, pBar, v, aH2OCO2, bH2O)

	kH2O := math.Pow(10, -2.209+3.097e-2*tc-1.098e-4*tc*tc+2.048e-7*tc*tc*tc)
	kCO2 := math.Pow(10, 1.189+1.304e-2*tc-5.446e-5*tc*tc)
	if liquid {
		kCO2 = math.Pow(10, 1.169+1.368e-2*tc-5.380e-5*tc*tc)
	}
	dp := (pBar - 1) / (rBar * tk)
	kH2O *= math.Exp(dp * vbarH2O)
	kCO2 *= math.Exp(dp * vbarCO2)

	bigA := kH2O / (phiH2O * pBar)
	bigB := phiCO2 * pBar / (molesWater * kCO2)
	y := math.Min(math.Max((1-bigB)/(1/bigA-bigB), 0), 1)
	x := math.Max(bigB*(1-y), 0)

	mPure := molesWater * x / (1 - x)
	return phaseSplit{v: v, liquid: liquid, yH2O: y, mCO2: mPure / SaltingOut(tk, pBar, m)}
}

// BatzleWangWater returns fresh water density (g/cm³); tc in °C, pMPa in MPa.
func BatzleWangWater(tc, pMPa float64) float64 {
	t, p := tc, pMPa
	return 1 + 1e-6*(-80*t-3.3*t*t+0.00175*t*t*t+489*p-2*t*p+0.016*t*t*p-1.3e-5*t*t*t*p-0.333*p*p-0.002*t*p*p)
}

// BatzleWangBrine returns NaCl brine density (g/cm³) for salt mass fraction s.
func BatzleWangBrine(tc, pMPa, s float64) float64 {
	t, p := tc, pMPa
	return BatzleWangWater(t, p) + s*(0.668+0.44*s+1e-6*(300*p-2400*p*s+t*(80+3*t-3300*s-13*p+47*p*s)))
}

// apparentVolumeCO2 is the Garcia (2001) apparent molar volume of dissolved
// CO2 (cm³/mol).
func apparentVolumeCO2(tc float64) float64 {
	return 37.51 - 9.585e-2*tc + 8.740e-4*tc*tc - 5.044e-7*tc*tc*tc
}

// brineState is the volumetric state of brine holding mCO2 mol/kg of CO2.
type brineState struct {
	saltMass float64 // kg brine per kg water
	rhoBrine float64
	rhoSat   float64
	rhoSC    float64 // CO2-free brine at standard conditions
}

func newBrineState(tc, pBar, s, m, mCO2 float64) brineState {
	mb := 1 + m*mwNaCl
	rb := BatzleWangBrine(tc, pBar/10, s)
	return brineState{
		saltMass: mb,
		rhoBrine: rb,
		rhoSat:   (mb + mCO2*mwCO2) / (mb/rb + mCO2*apparentVolumeCO2(tc)/1000),
		rhoSC:    BatzleWangBrine(stdTempC, stdPresBar/10, s),
	}
}

// bwSat is the CO2-saturated brine volume at reservoir conditions per unit
// CO2-free brine volume at standard conditions.
func (b brineState) bwSat(mCO2 float64) float64 {
	return (b.saltMass + mCO2*mwCO2) / b.rhoSat / (b.saltMass / b.rhoSC)
}

// rs is standard volumes of CO2 per standard volume of brine.
func (b brineState) rs(mCO2 float64) float64 {
	return mCO2 * stdMolarL / (b.saltMass / b.rhoSC)
}

// SaltMolality converts brine salinity in ppm (mass) to NaCl molality.
func SaltMolality(ppm float64) float64 {
	s := ppm / 1e6
	return s / ((1 - s) * mwNaCl)
}

// MutualSolubility returns the CO2-brine equilibrium at tc (°C) and pBar for
// salinity ppm. The saturated compressibility, which needs two further
// equilibrium solves, is computed only when withSatCompressibility is set.
func MutualSolubility(tc, pBar, ppm float64, withSatCompressibility bool) (*CO2Brine, error) {
	switch {
	case tc < MinTempC || tc > MaxTempC:
		return nil, apierrors.NewValidationError("temp", fmt.Sprintf("%g degC", tc),
			fmt.Sprintf("must be between %g and %g degC", MinTempC, MaxTempC))
	case pBar <= stdPresBar || pBar > MaxPBar:
		return nil, apierrors.NewValidationError("pres", fmt.Sprintf("%g bar", pBar),
			fmt.Sprintf("must be between %g and %g bar", stdPresBar, MaxPBar))
	case ppm < 0 || ppm >= 3e5:
		return nil, apierrors.NewValidationError("ppm", fmt.Sprintf("%g", ppm), "must be between 0 and 300000")
	}

	s := ppm / 1e6
	m := SaltMolality(ppm)
	eq := equilibrium(tc, pBar, m)
	st := newBrineState(tc, pBar, s, m, eq.mCO2)

	total := eq.mCO2 + molesWater + 2*m
	res := &CO2Brine{
		XCO2:        eq.mCO2 / total,
		XH2O:        molesWater / total,
		XSalt:       2 * m / total,
		YCO2:        1 - eq.yH2O,
		YH2O:        eq.yH2O,
		MolalityCO2: eq.mCO2,
		Phase:       "gas",

		GasDensity:   ((1-eq.yH2O)*mwCO2 + eq.yH2O*mwH2O) * 1000 / eq.v,
		SatDensity:   st.rhoSat,
		BrineDensity: st.rhoBrine,
		WaterDensity: BatzleWangWater(tc, pBar/10),

		BwSat:   st.bwSat(eq.mCO2),
		Bw:      st.rhoSC / st.rhoBrine,
		BwFresh: BatzleWangWater(stdTempC, stdPresBar/10) / BatzleWangWater(tc, pBar/10),
		Rs:      st.rs(eq.mCO2),
	}
	if eq.liquid {
		res.Phase = "liquid"
	}

	degf := tc*1.8 + 32
	psia := pBar / BarPerPsi
	wt := s * 100
	satVisc := func(p float64, xco2 float64) float64 {
		return Viscosity(p, degf, wt) * (1 + 4.65*math.Pow(xco2, 1.0134))
	}
	res.BrineViscosity = Viscosity(psia, degf, wt)
	res.WaterViscosity = Viscosity(psia, degf, 0)
	res.SatViscosity = satVisc(psia, res.XCO2)

	h := math.Min(1, 0.01*pBar)
	dpsi := h / BarPerPsi
	res.Viscosibility = (satVisc(psia+dpsi, res.XCO2) - satVisc(psia-dpsi, res.XCO2)) / (2 * h) / res.SatViscosity

	// Fixed composition: the brine compresses without exsolving CO2.
	hi := newBrineState(tc, pBar+h, s, m, eq.mCO2)
	lo := newBrineState(tc, pBar-h, s, m, eq.mCO2)
	res.CwUsat = (hi.rhoSat - lo.rhoSat) / (2 * h) / st.rhoSat

	if withSatCompressibility {
		eqHi := equilibrium(tc, pBar+h, m)
		eqLo := equilibrium(tc, pBar-h, m)
		stHi := newBrineState(tc, pBar+h, s, m, eqHi.mCO2)
		stLo := newBrineState(tc, pBar-h, s, m, eqLo.mCO2)
		dBw := (stHi.bwSat(eqHi.mCO2) - stLo.bwSat(eqLo.mCO2)) / (2 * h)
		dRs := (stHi.rs(eqHi.mCO2) - stLo.rs(eqLo.mCO2)) / (2 * h)
		bg := eq.v / 1000 / stdMolarL
		res.CwSat = -dBw/res.BwSat + bg*dRs/res.BwSat
	}
	return res, nil
}
