package brine

import "github.com/olgasafonova/restoolbox-mcp-server/internal/num"

// BrinePropertiesArgs contains parameters for McCain brine properties
type BrinePropertiesArgs struct {
	P    num.Values `json:"p" jsonschema:"Pressure (psia), scalar or array" validate:"required,dive,gt=0"`
	DegF num.Values `json:"degf" jsonschema:"Temperature (degF), scalar or array" validate:"required,dive,gt=0"`
	Wt   float64    `json:"wt,omitempty" jsonschema:"Salinity (wt% NaCl), 0-30" validate:"gte=0,lte=30"`
	CH4  float64    `json:"ch4,omitempty" jsonschema:"Dissolved methane saturation fraction, 0 for gas-free brine" validate:"gte=0"`
	CO2  float64    `json:"co2,omitempty" jsonschema:"Dissolved CO2 saturation fraction" validate:"gte=0"`
}

// CO2BrineArgs contains parameters for CO2-brine mutual solubility
type CO2BrineArgs struct {
	Pres   float64 `json:"pres" jsonschema:"Pressure (bar if metric, psia otherwise)" validate:"gt=0"`
	Temp   float64 `json:"temp" jsonschema:"Temperature (degC if metric, degF otherwise)" validate:"gt=0"`
	PPM    float64 `json:"ppm,omitempty" jsonschema:"NaCl salinity (ppm by weight)" validate:"gte=0,lt=300000"`
	Metric bool    `json:"metric,omitempty" jsonschema:"Use bar and degC for inputs and outputs"`
	CwSat  bool    `json:"cw_sat,omitempty" jsonschema:"Also compute saturated brine compressibility, which allows CO2 to exsolve"`
}
