// Package oil implements black oil PVT correlations: bubble point, solution
// GOR, formation volume factor, viscosity, density and compressibility, plus
// gas gravity helpers and Twu petroleum fraction characterization.
package oil

import (
	"fmt"
	"math"

	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/num"
)

// Oilfield constants
const (
	DegRankine = 459.67
	Patm       = 14.7 // psia
	WaterDen   = 62.372
)

// Bubble point and solution GOR methods share codes.
const (
	MethodStanding    = "STAN"
	MethodValkoMcCain = "VALMC"
	MethodVelarde     = "VELAR"
)

// Oil FVF and viscosity methods
const (
	BoMcCain          = "MCAIN"
	BoStanding        = "STAN"
	ViscBeggsRobinson = "BR"
)

// SGFromAPI converts API gravity to specific gravity (water=1).
func SGFromAPI(api float64) float64 {
	return 141.5 / (api + 131.5)
}

// APIFromSG converts specific gravity (water=1) to API gravity.
func APIFromSG(sg float64) float64 {
	return 141.5/sg - 131.5
}

// BubblePoint returns the bubble point pressure (psia) of an oil with
// solution GOR rsb (scf/stb). sgg is the weighted average gas gravity for
// STAN and the separator gas gravity for VALMC and VELAR.
func BubblePoint(api, degf, rsb, sgg float64, method string) (float64, error) {
	if api <= 0 || degf <= 0 || rsb <= 0 {
		return 0, apierrors.NewValidationError("api,degf,rsb",
			fmt.Sprintf("%g,%g,%g", api, degf, rsb), "must all be greater than 0")
	}
	if sgg <= 0 {
		return 0, apierrors.NewValidationError("sg_g", fmt.Sprintf("%g", sgg), method+" needs a gas gravity greater than 0")
	}
	switch method {
	case MethodStanding:
		return pbStanding(api, degf, rsb, sgg), nil
	case "", MethodValkoMcCain:
		return pbValkoMcCain(api, degf, rsb, sgg), nil
	case MethodVelarde:
		return pbVelarde(api, degf, rsb, sgg), nil
	default:
		return 0, apierrors.NewValidationError("method", method, "must be one of: STAN, VALMC, VELAR")
	}
}

// Standing (1947)
func pbStanding(api, degf, rsb, sgg float64) float64 {
	return 18.2 * (math.Pow(rsb/sgg, 0.83)*math.Pow(10, 0.00091*degf-0.0125*api) - 1.4)
}

// Valko & McCain (2003)
func pbValkoMcCain(api, degf, rsb, sgsp float64) float64 {
	lr := math.Log(rsb)
	z := -5.48 - 0.0378*lr + 0.281*lr*lr - 0.0206*lr*lr*lr
	z += 1.27 - 0.0449*api + 4.36e-4*api*api - 4.76e-6*api*api*api
	z += 4.51 - 10.84*sgsp + 8.39*sgsp*sgsp - 2.34*sgsp*sgsp*sgsp
	z += -0.7835 + 6.23e-3*degf - 1.22e-5*degf*degf + 1.03e-8*degf*degf*degf
	return math.Exp(7.475 + 0.713*z + 0.0075*z*z)
}

// Velarde, Blasingame & McCain (1997)
func pbVelarde(api, degf, rsb, sgsp float64) float64 {
	x := 0.013098*math.Pow(degf, 0.282372) - 8.2e-6*math.Pow(api, 2.176124)
	return 1091.47 * math.Pow(math.Pow(rsb, 0.081465)*math.Pow(sgsp, -0.161488)*math.Pow(10, x)-0.740152, 5.354891)
}

// RsbFromBubblePoint inverts the bubble point correlation for the solution
// GOR that gives bubble point pb.
func RsbFromBubblePoint(api, degf, pb, sgg float64, method string) (float64, error) {
	if _, err := BubblePoint(api, degf, 1, sgg, method); err != nil {
		return 0, err
	}
	f := func(rsb float64) float64 {
		p, _ := BubblePoint(api, degf, rsb, sgg, method)
		return p - pb
	}
	rsb, err := num.BrentExpand(f, 1, 100, 1e5, 1e-9)
	if err != nil {
		return 0, apierrors.NewValidationError("pb", fmt.Sprintf("%g", pb), "no solution GOR between 1 and 100000 scf/stb gives this bubble point")
	}
	return rsb, nil
}

// Oil is a black oil at a fixed temperature with a resolved bubble point.
type Oil struct {
	API  float64
	DegF float64
	SGg  float64 // gas gravity used by the correlations
	Pb   float64 // bubble point (psia)
	Rsb  float64 // solution GOR at pb (scf/stb)

	RsMethod string
	BoMethod string
}

// NewOil builds an Oil, deriving whichever of pb and rsb is zero with the
// pbMethod correlation.
func NewOil(api, degf, sgg, pb, rsb float64, pbMethod string) (*Oil, error) {
	var err error
	switch {
	case pb <= 0 && rsb <= 0:
		return nil, apierrors.NewValidationError("pb", "", "provide pb, rsb or both")
	case pb <= 0:
		pb, err = BubblePoint(api, degf, rsb, sgg, pbMethod)
	case rsb <= 0:
		rsb, err = RsbFromBubblePoint(api, degf, pb, sgg, pbMethod)
	}
	if err != nil {
		return nil, err
	}
	return &Oil{
		API:      api,
		DegF:     degf,
		SGg:      sgg,
		Pb:       pb,
		Rsb:      rsb,
		RsMethod: MethodVelarde,
		BoMethod: BoMcCain,
	}, nil
}

// SG returns the stock tank oil specific gravity.
func (o *Oil) SG() float64 {
	return SGFromAPI(o.API)
}

// Rs returns the solution GOR (scf/stb) at pressure p. Rs is constant at
// Rsb above the bubble point.
func (o *Oil) Rs(p float64) (float64, error) {
	if p >= o.Pb {
		return o.Rsb, nil
	}
	switch o.RsMethod {
	case "", MethodVelarde:
		return o.rsVelarde(p), nil
	case MethodStanding:
		// Standing's Rs(p) ratio is independent of API, T and gas gravity.
		return o.Rsb * math.Pow((p/18.2+1.4)/(o.Pb/18.2+1.4), 1/0.83), nil
	case MethodValkoMcCain:
		rs, err := o.rsValkoMcCain(p)
		if err != nil {
			return 0, err
		}
		rsPb, err := o.rsValkoMcCain(o.Pb)
		if err != nil {
			return 0, err
		}
		return o.Rsb * rs / rsPb, nil
	default:
		return 0, apierrors.NewValidationError("method", o.RsMethod, "must be one of: VELAR, STAN, VALMC")
	}
}

// Velarde reduced-pressure coefficients X0..X4 for a1, a2, a3
var velardeCoeffs = [3][5]float64{
	{9.73e-7, 1.672608, 0.929870, 0.247235, 1.056052},
	{0.022339, -1.004750, 0.337711, 0.132795, 0.302065},
	{0.725167, -1.485480, -0.164741, -0.091330, 0.047094},
}

func (o *Oil) rsVelarde(p float64) float64 {
	pr := (p - Patm) / (o.Pb - Patm)
	if pr <= 0 {
		return 0
	}
	var a [3]float64
	for i, x := range velardeCoeffs {
		a[i] = x[0] * math.Pow(o.SGg, x[1]) * math.Pow(o.API, x[2]) * math.Pow(o.DegF, x[3]) * math.Pow(o.Pb, x[4])
	}
	return o.Rsb * (a[0]*math.Pow(pr, a[1]) + (1-a[0])*math.Pow(pr, a[2]))
}

// rsValkoMcCain inverts the Valko-McCain bubble point. The correlation turns
// over below 1 scf/stb, so Rs is linear to zero under that pressure.
func (o *Oil) rsValkoMcCain(p float64) (float64, error) {
	floor := pbValkoMcCain(o.API, o.DegF, 1, o.SGg)
	if p <= floor {
		return math.Max(p-Patm, 0) / (floor - Patm), nil
	}
	f := func(rs float64) float64 {
		return pbValkoMcCain(o.API, o.DegF, rs, o.SGg) - p
	}
	rs, err := num.BrentExpand(f, 1, 100, 1e5, 1e-9)
	if err != nil {
		return 0, apierrors.NewConvergenceError("Valko-McCain Rs inversion", num.MaxIterations, math.NaN())
	}
	return rs, nil
}

// vasquezBeggsA is the undersaturated compressibility numerator, co = A/p.
func (o *Oil) vasquezBeggsA() float64 {
	return (-1433 + 5*o.Rsb + 17.2*o.DegF - 1180*o.SGg + 12.61*o.API) / 1e5
}

// Bo returns the oil formation volume factor (rb/stb) at pressure p with
// solution GOR rs. Above the bubble point Bob is shrunk by the integrated
// Vasquez-Beggs compressibility.
func (o *Oil) Bo(p, rs float64) (float64, error) {
	if p > o.Pb {
		bob, err := o.saturatedBo(o.Pb, o.Rsb)
		if err != nil {
			return 0, err
		}
		return bob * math.Exp(-o.vasquezBeggsA()*math.Log(p/o.Pb)), nil
	}
	return o.saturatedBo(p, rs)
}

func (o *Oil) saturatedBo(p, rs float64) (float64, error) {
	switch o.BoMethod {
	case "", BoMcCain:
		rho, err := mcCainDensity(o.SG(), o.DegF, p, rs, o.SGg)
		if err != nil {
			return 0, err
		}
		return (62.42796*o.SG() + 0.0136*rs*o.SGg) / rho, nil
	case BoStanding:
		return 0.9759 + 0.00012*math.Pow(rs*math.Sqrt(o.SGg/o.SG())+1.25*o.DegF, 1.2), nil
	default:
		return 0, apierrors.NewValidationError("method", o.BoMethod, "must be one of: MCAIN, STAN")
	}
}

// mcCainDensity returns reservoir oil density (lb/cuft) by the McCain
// pseudo-liquid density method with pressure and temperature corrections.
func mcCainDensity(sgo, degf, p, rs, sgg float64) (float64, error) {
	rpo := 52.8 - 0.01*rs
	converged := false
	for i := 0; i < num.MaxIterations; i++ {
		ra := -49.8930 + 85.0149*sgg - 3.70373*sgg*rpo + 0.0479818*sgg*rpo*rpo + 2.98914*rpo - 0.0356888*rpo*rpo
		next := (rs*sgg + 4600*sgo) / (73.71 + rs*sgg/ra)
		if math.Abs(next-rpo) < 1e-10 {
			rpo = next
			converged = true
			break
		}
		rpo = next
	}
	if !converged || rpo <= 0 {
		return 0, apierrors.NewConvergenceError("McCain pseudo-liquid density", num.MaxIterations, rpo)
	}

	pk := p / 1000
	drp := (0.167+16.181*math.Pow(10, -0.0425*rpo))*pk - 0.01*(0.299+263*math.Pow(10, -0.0603*rpo))*pk*pk
	rbs := rpo + drp
	dt := math.Max(degf-60, 0)
	drt := (0.00302+1.505*math.Pow(rbs, -0.951))*math.Pow(dt, 0.938) -
		(0.0216-0.0233*math.Pow(10, -0.0161*rbs))*math.Pow(dt, 0.475)
	return rbs - drt, nil
}

// DeadOilViscosity returns the Beggs & Robinson (1975) dead oil viscosity (cP).
func DeadOilViscosity(api, degf float64) float64 {
	x := math.Pow(degf, -1.163) * math.Exp(6.9824-0.04658*api)
	return math.Pow(10, x) - 1
}

func liveOilViscosity(uod, rs float64) float64 {
	a := 10.715 * math.Pow(rs+100, -0.515)
	b := 5.44 * math.Pow(rs+150, -0.338)
	return a * math.Pow(uod, b)
}

// Viscosity returns oil viscosity (cP) at pressure p with solution GOR rs:
// Beggs-Robinson at and below pb, Vasquez-Beggs above.
func (o *Oil) Viscosity(p, rs float64) float64 {
	uod := DeadOilViscosity(o.API, o.DegF)
	if p <= o.Pb {
		return liveOilViscosity(uod, rs)
	}
	uob := liveOilViscosity(uod, o.Rsb)
	m := 2.6 * math.Pow(p, 1.187) * math.Exp(-11.513-8.98e-5*p)
	return uob * math.Pow(p/o.Pb, m)
}

// Density returns live oil density (lb/cuft) from mass balance.
func Density(sgo, rs, sgg, bo float64) float64 {
	return (WaterDen*sgo + 0.01357*rs*sgg) / bo
}

// Compressibility returns oil compressibility (1/psi): Vasquez-Beggs above
// the bubble point, McCain below.
func (o *Oil) Compressibility(p float64) float64 {
	if p >= o.Pb {
		return o.vasquezBeggsA() / p
	}
	return math.Exp(-7.573 - 1.45*math.Log(p) - 0.383*math.Log(o.Pb) + 1.402*math.Log(o.DegF+DegRankine) +
		0.256*math.Log(o.API) + 0.449*math.Log(o.Rsb))
}
