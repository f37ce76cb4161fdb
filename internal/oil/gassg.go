package oil

import (
	"fmt"
	"math"

	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
)

// Defaults used when separator conditions are not supplied
const (
	DefaultSeparatorP    = 100.0 // psia
	DefaultSeparatorDegF = 100.0
	DefaultRsb           = 800.0 // scf/stb
	SeparatorGORFraction = 0.9   // share of rsb liberated at the separator
	DefaultGasSG         = 0.75  // assumed when gas gravity only fills in pb or rs
)

// Valko & McCain (2003) stock tank gas gravity: C0..C4 for
// ln psp, ln rsp, API, sg_sp and Tsp.
var stockTankSGCoeffs = [5][5]float64{
	{-17.275, 7.9597, -1.1013, 2.7735e-2, 3.2287e-3},
	{-0.3354, -0.3346, 0.1956, -3.4374e-2, 2.08e-3},
	{3.705, -0.4273, 1.818e-2, -3.459e-4, 2.834e-6},
	{-155.52, 629.61, -957.38, 647.57, -163.26},
	{2.085, -7.097e-2, 9.859e-4, -6.312e-6, 1.4e-8},
}

// StockTankGasSG returns the gravity of gas liberated in the stock tank.
func StockTankGasSG(psp, rsp, api, sgsp, degfsp float64) float64 {
	vars := [5]float64{math.Log(psp), math.Log(rsp), api, sgsp, degfsp}
	var z float64
	for i, c := range stockTankSGCoeffs {
		v := vars[i]
		z += c[0] + c[1]*v + c[2]*v*v + c[3]*v*v*v + c[4]*v*v*v*v
	}
	return 1.219 + 0.198*z + 0.0845*z*z + 0.03*z*z*z + 0.003*z*z*z*z
}

// Valko & McCain (2003) stock tank GOR: C0..C2 for ln psp, ln Tsp and API.
var stockTankGORCoeffs = [3][3]float64{
	{-8.005, 2.7, -0.161},
	{1.224, -0.5, 0},
	{-1.587, 0.0441, -2.29e-5},
}

// StockTankGOR returns the incremental GOR (scf/stb) liberated between the
// separator and the stock tank.
func StockTankGOR(psp, degfsp, api float64) float64 {
	vars := [3]float64{math.Log(psp), math.Log(degfsp), api}
	var z float64
	for i, c := range stockTankGORCoeffs {
		v := vars[i]
		z += c[0] + c[1]*v + c[2]*v*v
	}
	return math.Exp(3.955 + 0.83*z - 0.024*z*z + 0.075*z*z*z)
}

// EvolvedGasSG returns the gravity of gas evolved at p below the bubble
// point pb: separator gravity at pb, stock tank gravity at atmospheric
// pressure, log-pressure weighted in between.
func EvolvedGasSG(p, pb, sgsp, sgst float64) float64 {
	switch {
	case p >= pb:
		return sgsp
	case p <= Patm:
		return sgst
	}
	w := math.Log(pb/p) / math.Log(pb/Patm)
	return sgsp + w*(sgst-sgsp)
}

// WeightedGasSG returns the GOR-weighted average of separator and stock
// tank gas gravities.
func WeightedGasSG(sgsp, rsp, sgst, rst float64) (float64, error) {
	if rsp+rst <= 0 {
		return 0, apierrors.NewValidationError("rsp+rst", fmt.Sprintf("%g", rsp+rst), "total GOR must be greater than 0")
	}
	return (sgsp*rsp + sgst*rst) / (rsp + rst), nil
}

// CheckGasSGs makes the weighted average gravity sgg and the separator
// gravity sgsp consistent. A zero value is derived from the other; when both
// are given they are returned unchanged.
func CheckGasSGs(sgg, sgsp, rst, rsp, sgst float64) (float64, float64, error) {
	switch {
	case sgg <= 0 && sgsp <= 0:
		return 0, 0, apierrors.NewValidationError("sg_g", "", "provide sg_g, sg_sp or both")
	case sgg <= 0:
		avg, err := WeightedGasSG(sgsp, rsp, sgst, rst)
		return avg, sgsp, err
	case sgsp <= 0:
		if rsp <= 0 {
			return 0, 0, apierrors.NewValidationError("rsp", fmt.Sprintf("%g", rsp), "must be greater than 0 to derive sg_sp")
		}
		sp := (sgg*(rsp+rst) - sgst*rst) / rsp
		if sp <= 0 {
			return 0, 0, apierrors.NewValidationError("sg_g", fmt.Sprintf("%g", sgg), "too low for the stated stock tank gas; derived sg_sp is not positive")
		}
		return sgg, sp, nil
	}
	return sgg, sgsp, nil
}

// JacobySG returns the specific gravity of a petroleum fraction of molecular
// weight mw and Jacoby aromaticity factor ja.
func JacobySG(mw, ja float64) float64 {
	return 0.8468 - 15.8/mw + ja*(0.2456-1.77/mw)
}
