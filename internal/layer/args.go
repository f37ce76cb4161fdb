package layer

// LorenzArgs contains a Lorenz coefficient
type LorenzArgs struct {
	Value float64 `json:"value" jsonschema:"Lorenz coefficient, 0 (homogeneous) to below 1" validate:"gte=0,lt=1"`
}

// BetaArgs contains a Lorenz curve shape parameter
type BetaArgs struct {
	Value float64 `json:"value" jsonschema:"Lorenz curve shape parameter B (0 = homogeneous)" validate:"gte=0,lte=100000000"`
}

// FlowFractionArgs contains per-layer capacity fractions
type FlowFractionArgs struct {
	FlowFrac    []float64 `json:"flow_frac" jsonschema:"Flow capacity (kh) fraction per layer, summing to 1" validate:"required,min=2,dive,gte=0"`
	StorageFrac []float64 `json:"storage_frac" jsonschema:"Storage capacity (phi*h) fraction per layer, summing to 1" validate:"required,min=2,dive,gte=0"`
}

// LayerDistributionArgs contains parameters for layer generation
type LayerDistributionArgs struct {
	Lorenz    float64 `json:"lorenz" jsonschema:"Lorenz coefficient, 0 (homogeneous) to below 1" validate:"gte=0,lt=1"`
	NLay      int     `json:"nlay" jsonschema:"Number of equal-thickness layers, 1-100" validate:"gt=0,lte=100"`
	H         float64 `json:"h,omitempty" jsonschema:"Total thickness (ft), default 1" validate:"gt=0"`
	KAvg      float64 `json:"k_avg,omitempty" jsonschema:"Average permeability (mD), default 1" validate:"gt=0"`
	Normalize *bool   `json:"normalize,omitempty" jsonschema:"Report k/k_avg and thickness fractions instead of absolute values (default true)"`
}

func (a *LayerDistributionArgs) ApplyDefaults() {
	if a.H == 0 {
		a.H = 1
	}
	if a.KAvg == 0 {
		a.KAvg = 1
	}
	if a.Normalize == nil {
		t := true
		a.Normalize = &t
	}
}
