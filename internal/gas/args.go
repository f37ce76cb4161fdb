package gas

import "github.com/olgasafonova/restoolbox-mcp-server/internal/num"

// ZFactorArgs contains parameters for the Z-factor calculation
type ZFactorArgs struct {
	SG     float64    `json:"sg" jsonschema:"Gas specific gravity (air=1), 0.5-2.0" validate:"gte=0.5,lte=2"`
	DegF   float64    `json:"degf" jsonschema:"Temperature (degF)" validate:"gt=-460,lt=1000"`
	P      num.Values `json:"p" jsonschema:"Pressure (psia), scalar or array" validate:"required,dive,gt=0"`
	Method string     `json:"method,omitempty" jsonschema:"Z-factor method: DAK (default) or HY" validate:"oneof=DAK HY"`
	H2S    float64    `json:"h2s,omitempty" jsonschema:"H2S mole fraction (0-1, default 0)" validate:"gte=0,lte=1"`
	CO2    float64    `json:"co2,omitempty" jsonschema:"CO2 mole fraction (0-1, default 0)" validate:"gte=0,lte=1"`
	N2     float64    `json:"n2,omitempty" jsonschema:"N2 mole fraction (0-1, default 0)" validate:"gte=0,lte=1"`
}

func (a *ZFactorArgs) ApplyDefaults() {
	if a.Method == "" {
		a.Method = ZMethodDAK
	}
}

// CriticalPropertiesArgs contains parameters for pseudo-critical properties
type CriticalPropertiesArgs struct {
	SG     float64 `json:"sg" jsonschema:"Gas specific gravity (air=1), 0.5-2.0" validate:"gte=0.5,lte=2"`
	Method string  `json:"method,omitempty" jsonschema:"Critical property method: PMC (default) or SUT" validate:"oneof=PMC SUT"`
	H2S    float64 `json:"h2s,omitempty" jsonschema:"H2S mole fraction (0-1, default 0)" validate:"gte=0,lte=1"`
	CO2    float64 `json:"co2,omitempty" jsonschema:"CO2 mole fraction (0-1, default 0)" validate:"gte=0,lte=1"`
	N2     float64 `json:"n2,omitempty" jsonschema:"N2 mole fraction (0-1, default 0)" validate:"gte=0,lte=1"`
}

func (a *CriticalPropertiesArgs) ApplyDefaults() {
	if a.Method == "" {
		a.Method = CriticalPMC
	}
}

// PropertyArgs contains parameters shared by Bg, viscosity, density and compressibility
type PropertyArgs struct {
	SG      float64    `json:"sg" jsonschema:"Gas specific gravity (air=1), 0.5-2.0" validate:"gte=0.5,lte=2"`
	DegF    float64    `json:"degf" jsonschema:"Temperature (degF)" validate:"gt=-460,lt=1000"`
	P       num.Values `json:"p" jsonschema:"Pressure (psia), scalar or array" validate:"required,dive,gt=0"`
	ZMethod string     `json:"zmethod,omitempty" jsonschema:"Z-factor method: DAK (default) or HY" validate:"oneof=DAK HY"`
	H2S     float64    `json:"h2s,omitempty" jsonschema:"H2S mole fraction (0-1, default 0)" validate:"gte=0,lte=1"`
	CO2     float64    `json:"co2,omitempty" jsonschema:"CO2 mole fraction (0-1, default 0)" validate:"gte=0,lte=1"`
	N2      float64    `json:"n2,omitempty" jsonschema:"N2 mole fraction (0-1, default 0)" validate:"gte=0,lte=1"`
}

func (a *PropertyArgs) ApplyDefaults() {
	if a.ZMethod == "" {
		a.ZMethod = ZMethodDAK
	}
}

// PseudopressureArgs contains parameters for the pseudopressure difference
type PseudopressureArgs struct {
	SG      float64    `json:"sg" jsonschema:"Gas specific gravity (air=1), 0.5-2.0" validate:"gte=0.5,lte=2"`
	DegF    float64    `json:"degf" jsonschema:"Temperature (degF)" validate:"gt=-460,lt=1000"`
	P1      num.Values `json:"p1" jsonschema:"Initial pressure (psia), scalar or array" validate:"required,dive,gt=0"`
	P2      num.Values `json:"p2" jsonschema:"Final pressure (psia), scalar or array" validate:"required,dive,gt=0"`
	ZMethod string     `json:"zmethod,omitempty" jsonschema:"Z-factor method: DAK (default) or HY" validate:"oneof=DAK HY"`
	H2S     float64    `json:"h2s,omitempty" jsonschema:"H2S mole fraction (0-1, default 0)" validate:"gte=0,lte=1"`
	CO2     float64    `json:"co2,omitempty" jsonschema:"CO2 mole fraction (0-1, default 0)" validate:"gte=0,lte=1"`
	N2      float64    `json:"n2,omitempty" jsonschema:"N2 mole fraction (0-1, default 0)" validate:"gte=0,lte=1"`
}

func (a *PseudopressureArgs) ApplyDefaults() {
	if a.ZMethod == "" {
		a.ZMethod = ZMethodDAK
	}
}

// PressureFromPZArgs contains parameters for inverting p/z
type PressureFromPZArgs struct {
	PZ      num.Values `json:"pz" jsonschema:"p/z value (psia), scalar or array" validate:"required,dive,gt=0"`
	SG      float64    `json:"sg" jsonschema:"Gas specific gravity (air=1), 0.5-2.0" validate:"gte=0.5,lte=2"`
	DegF    float64    `json:"degf" jsonschema:"Temperature (degF)" validate:"gt=-460,lt=1000"`
	ZMethod string     `json:"zmethod,omitempty" jsonschema:"Z-factor method: DAK (default) or HY" validate:"oneof=DAK HY"`
	H2S     float64    `json:"h2s,omitempty" jsonschema:"H2S mole fraction (0-1, default 0)" validate:"gte=0,lte=1"`
	CO2     float64    `json:"co2,omitempty" jsonschema:"CO2 mole fraction (0-1, default 0)" validate:"gte=0,lte=1"`
	N2      float64    `json:"n2,omitempty" jsonschema:"N2 mole fraction (0-1, default 0)" validate:"gte=0,lte=1"`
}

func (a *PressureFromPZArgs) ApplyDefaults() {
	if a.ZMethod == "" {
		a.ZMethod = ZMethodDAK
	}
}

// SGFromGradientArgs contains parameters for gas SG from a pressure gradient
type SGFromGradientArgs struct {
	Grad num.Values `json:"grad" jsonschema:"Gas column pressure gradient (psi/ft), scalar or array" validate:"required,dive,gt=0"`
	DegF float64    `json:"degf" jsonschema:"Temperature (degF)" validate:"gt=-460,lt=1000"`
	P    float64    `json:"p" jsonschema:"Pressure (psia)" validate:"gt=0"`
}

// WaterContentArgs contains parameters for saturated water content
type WaterContentArgs struct {
	P    num.Values `json:"p" jsonschema:"Pressure (psia), scalar or array" validate:"required,dive,gt=0"`
	DegF num.Values `json:"degf" jsonschema:"Temperature (degF), scalar or array" validate:"required,dive,gt=0"`
}

// SGFromCompositionArgs contains parameters for gas SG from composition
type SGFromCompositionArgs struct {
	HCMW float64 `json:"hc_mw" jsonschema:"Hydrocarbon molecular weight (lb/lbmol)" validate:"gt=0"`
	CO2  float64 `json:"co2,omitempty" jsonschema:"CO2 mole fraction" validate:"gte=0,lte=1"`
	H2S  float64 `json:"h2s,omitempty" jsonschema:"H2S mole fraction" validate:"gte=0,lte=1"`
	N2   float64 `json:"n2,omitempty" jsonschema:"N2 mole fraction" validate:"gte=0,lte=1"`
	H2   float64 `json:"h2,omitempty" jsonschema:"H2 mole fraction" validate:"gte=0,lte=1"`
}
