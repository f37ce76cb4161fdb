package library

// ComponentProperties are the tabulated or derived properties of a component
type ComponentProperties struct {
	MolecularWeight         float64 `json:"molecular_weight_lb_lbmol"`
	CriticalTemperature     float64 `json:"critical_temperature_degR"`
	CriticalPressure        float64 `json:"critical_pressure_psia"`
	CriticalCompressibility float64 `json:"critical_compressibility"`
	AcentricFactor          float64 `json:"acentric_factor"`
	CriticalVolume          float64 `json:"critical_volume_cuft_lbmol"`
	BoilingPoint            float64 `json:"boiling_point_degR"`
	SpecificGravity         float64 `json:"specific_gravity"`
}

// EOSParameters are the cubic EOS constants of a component
type EOSParameters struct {
	OmegaA float64 `json:"omega_a"`
	OmegaB float64 `json:"omega_b"`
	Kappa  float64 `json:"kappa" jsonschema:"Alpha-function slope (m for SRK, 0 for RK)"`
}

// ComponentResult is the result of a component lookup
type ComponentResult struct {
	Component  string              `json:"component" jsonschema:"Canonical component name"`
	Kind       string              `json:"kind" jsonschema:"pure or scn (single carbon number fraction)"`
	EOSModel   string              `json:"eos_model"`
	Properties ComponentProperties `json:"properties"`
	EOS        EOSParameters       `json:"eos"`
	Method     string              `json:"method"`
	Note       string              `json:"note,omitempty"`
	Inputs     ComponentArgs       `json:"inputs"`
}
