package layer

// BetaResult is the result of a Lorenz to B conversion
type BetaResult struct {
	Beta   float64    `json:"beta" jsonschema:"Lorenz curve shape parameter B"`
	Lorenz float64    `json:"lorenz_coefficient"`
	Method string     `json:"method"`
	Inputs LorenzArgs `json:"inputs"`
}

// LorenzResult is the result of a B to Lorenz conversion
type LorenzResult struct {
	Lorenz float64  `json:"lorenz_coefficient"`
	Beta   float64  `json:"beta"`
	Method string   `json:"method"`
	Inputs BetaArgs `json:"inputs"`
}

// FlowFractionResult is the Lorenz coefficient of measured layer fractions
type FlowFractionResult struct {
	Lorenz         float64          `json:"lorenz_coefficient"`
	Layers         int              `json:"number_of_layers"`
	Method         string           `json:"method"`
	Interpretation string           `json:"interpretation"`
	Inputs         FlowFractionArgs `json:"inputs"`
}

// CurveResult is a sampled Lorenz curve
type CurveResult struct {
	CumulativeFlow    []float64  `json:"cumulative_flow_capacity"`
	CumulativeStorage []float64  `json:"cumulative_storage_capacity"`
	Lorenz            float64    `json:"lorenz_coefficient"`
	Beta              float64    `json:"beta"`
	Method            string     `json:"method"`
	Note              string     `json:"note"`
	Inputs            LorenzArgs `json:"inputs"`
}

// Layer is one generated layer
type Layer struct {
	Layer        int     `json:"layer"`
	Thickness    float64 `json:"thickness_ft"`
	Permeability float64 `json:"permeability_md"`
	ThickFrac    float64 `json:"thickness_fraction"`
	KHFrac       float64 `json:"kh_fraction"`
}

// LayerStatistics summarises generated permeabilities (mD)
type LayerStatistics struct {
	Min    float64 `json:"k_min_md"`
	Max    float64 `json:"k_max_md"`
	Mean   float64 `json:"k_avg_md"`
	Median float64 `json:"k_median_md"`
	StdDev float64 `json:"k_std_md"`
	Ratio  float64 `json:"heterogeneity_ratio"`
}

// LayerDistributionResult is a generated layer distribution
type LayerDistributionResult struct {
	Layers         []Layer               `json:"layers"`
	Statistics     LayerStatistics       `json:"statistics"`
	TotalThickness float64               `json:"total_thickness_ft"`
	KAvg           float64               `json:"average_permeability_md"`
	Lorenz         float64               `json:"lorenz_coefficient"`
	AchievedLorenz float64               `json:"achieved_lorenz_coefficient" jsonschema:"Lorenz coefficient of the discrete layers"`
	NLay           int                   `json:"number_of_layers"`
	Method         string                `json:"method"`
	Inputs         LayerDistributionArgs `json:"inputs"`
	Note           string                `json:"note"`
}
