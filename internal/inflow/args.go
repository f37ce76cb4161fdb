package inflow

import "github.com/olgasafonova/restoolbox-mcp-server/internal/num"

// OilRateRadialArgs contains parameters for radial oil inflow
type OilRateRadialArgs struct {
	Pi    float64    `json:"pi" jsonschema:"Reservoir pressure (psia)" validate:"gt=0"`
	Pb    float64    `json:"pb" jsonschema:"Bubble point pressure (psia), 0 to derive from rsb" validate:"gte=0"`
	API   float64    `json:"api" jsonschema:"Oil API gravity (degrees), 0-100" validate:"gt=0,lte=100"`
	DegF  float64    `json:"degf" jsonschema:"Reservoir temperature (degF)" validate:"gt=0,lt=1000"`
	SGg   float64    `json:"sg_g" jsonschema:"Separator gas specific gravity (air=1)" validate:"gt=0,lte=3"`
	Psd   num.Values `json:"psd" jsonschema:"Sandface flowing pressure (psia), scalar or array" validate:"required,dive,gt=0"`
	H     float64    `json:"h" jsonschema:"Net pay thickness (ft)" validate:"gt=0"`
	K     float64    `json:"k" jsonschema:"Permeability (mD)" validate:"gt=0"`
	S     float64    `json:"s,omitempty" jsonschema:"Skin factor (default 0)"`
	Re    float64    `json:"re" jsonschema:"Drainage radius (ft)" validate:"gt=0"`
	Rw    float64    `json:"rw" jsonschema:"Wellbore radius (ft), less than re" validate:"gt=0"`
	Rsb   float64    `json:"rsb,omitempty" jsonschema:"Solution GOR at bubble point (scf/stb), 0 to derive from pb" validate:"gte=0"`
	Vogel bool       `json:"vogel,omitempty" jsonschema:"Apply Vogel IPR below the bubble point"`
}

// OilRateLinearArgs contains parameters for linear oil inflow
type OilRateLinearArgs struct {
	Pi     float64    `json:"pi" jsonschema:"Reservoir pressure (psia)" validate:"gt=0"`
	Pb     float64    `json:"pb" jsonschema:"Bubble point pressure (psia), 0 to derive from rsb" validate:"gte=0"`
	API    float64    `json:"api" jsonschema:"Oil API gravity (degrees), 0-100" validate:"gt=0,lte=100"`
	DegF   float64    `json:"degf" jsonschema:"Reservoir temperature (degF)" validate:"gt=0,lt=1000"`
	SGg    float64    `json:"sg_g" jsonschema:"Separator gas specific gravity (air=1)" validate:"gt=0,lte=3"`
	Psd    num.Values `json:"psd" jsonschema:"Sandface flowing pressure (psia), scalar or array" validate:"required,dive,gt=0"`
	H      float64    `json:"h" jsonschema:"Net pay thickness (ft)" validate:"gt=0"`
	K      float64    `json:"k" jsonschema:"Permeability (mD)" validate:"gt=0"`
	Area   float64    `json:"area" jsonschema:"Cross-sectional flow area (sq ft)" validate:"gt=0"`
	Length float64    `json:"length" jsonschema:"Flow length (ft)" validate:"gt=0"`
	Rsb    float64    `json:"rsb,omitempty" jsonschema:"Solution GOR at bubble point (scf/stb), 0 to derive from pb" validate:"gte=0"`
}

// GasRateRadialArgs contains parameters for radial gas inflow
type GasRateRadialArgs struct {
	Pi   float64    `json:"pi" jsonschema:"Reservoir pressure (psia)" validate:"gt=0"`
	SG   float64    `json:"sg" jsonschema:"Gas specific gravity (air=1), 0.5-2.0" validate:"gte=0.5,lte=2"`
	DegF float64    `json:"degf" jsonschema:"Reservoir temperature (degF)" validate:"gt=-460,lt=1000"`
	Psd  num.Values `json:"psd" jsonschema:"Sandface flowing pressure (psia), scalar or array" validate:"required,dive,gt=0"`
	H    float64    `json:"h" jsonschema:"Net pay thickness (ft)" validate:"gt=0"`
	K    float64    `json:"k" jsonschema:"Permeability (mD)" validate:"gt=0"`
	S    float64    `json:"s,omitempty" jsonschema:"Skin factor (default 0)"`
	Re   float64    `json:"re" jsonschema:"Drainage radius (ft)" validate:"gt=0"`
	Rw   float64    `json:"rw" jsonschema:"Wellbore radius (ft), less than re" validate:"gt=0"`
	H2S  float64    `json:"h2s,omitempty" jsonschema:"H2S mole fraction (0-1, default 0)" validate:"gte=0,lte=1"`
	CO2  float64    `json:"co2,omitempty" jsonschema:"CO2 mole fraction (0-1, default 0)" validate:"gte=0,lte=1"`
	N2   float64    `json:"n2,omitempty" jsonschema:"N2 mole fraction (0-1, default 0)" validate:"gte=0,lte=1"`
}

// GasRateLinearArgs contains parameters for linear gas inflow
type GasRateLinearArgs struct {
	Pi     float64    `json:"pi" jsonschema:"Reservoir pressure (psia)" validate:"gt=0"`
	SG     float64    `json:"sg" jsonschema:"Gas specific gravity (air=1), 0.5-2.0" validate:"gte=0.5,lte=2"`
	DegF   float64    `json:"degf" jsonschema:"Reservoir temperature (degF)" validate:"gt=-460,lt=1000"`
	Psd    num.Values `json:"psd" jsonschema:"Sandface flowing pressure (psia), scalar or array" validate:"required,dive,gt=0"`
	H      float64    `json:"h" jsonschema:"Net pay thickness (ft)" validate:"gt=0"`
	K      float64    `json:"k" jsonschema:"Permeability (mD)" validate:"gt=0"`
	Area   float64    `json:"area" jsonschema:"Cross-sectional flow area (sq ft)" validate:"gt=0"`
	Length float64    `json:"length" jsonschema:"Flow length (ft)" validate:"gt=0"`
	H2S    float64    `json:"h2s,omitempty" jsonschema:"H2S mole fraction (0-1, default 0)" validate:"gte=0,lte=1"`
	CO2    float64    `json:"co2,omitempty" jsonschema:"CO2 mole fraction (0-1, default 0)" validate:"gte=0,lte=1"`
	N2     float64    `json:"n2,omitempty" jsonschema:"N2 mole fraction (0-1, default 0)" validate:"gte=0,lte=1"`
}
