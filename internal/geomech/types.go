package geomech

// GradientResult is a pressure or stress at depth with its gradient
type GradientResult[In any] struct {
	Value         float64 `json:"value"`
	Gradient      float64 `json:"gradient" jsonschema:"Gradient (psi/ft)"`
	Units         string  `json:"units"`
	GradientUnits string  `json:"gradient_units"`
	Method        string  `json:"method"`
	Inputs        In      `json:"inputs"`
}

// PorePressureResult is the result of an Eaton pore pressure estimate
type PorePressureResult struct {
	GradientResult[PorePressureEatonArgs]
	Overpressure float64 `json:"overpressure" jsonschema:"Pore pressure above hydrostatic (psi)"`
	Hydrostatic  float64 `json:"hydrostatic" jsonschema:"Normal pore pressure at 0.465 psi/ft (psi)"`
}

// HorizontalStressResult holds estimated horizontal stresses
type HorizontalStressResult struct {
	SigmaHMin    float64              `json:"sigma_h_min"`
	SigmaHMax    float64              `json:"sigma_h_max"`
	StressRegime string               `json:"stress_regime"`
	Method       string               `json:"method"`
	Units        string               `json:"units"`
	Inputs       HorizontalStressArgs `json:"inputs"`
}

// ElasticModuliResult holds a complete set of elastic constants
type ElasticModuliResult struct {
	YoungsModulus float64           `json:"youngs_modulus"`
	BulkModulus   float64           `json:"bulk_modulus"`
	ShearModulus  float64           `json:"shear_modulus"`
	PoissonRatio  float64           `json:"poisson_ratio"`
	LameParameter float64           `json:"lame_parameter"`
	Units         string            `json:"units"`
	Inputs        ElasticModuliArgs `json:"inputs"`
}

// RockStrengthResult holds Mohr-Coulomb strength values
type RockStrengthResult struct {
	MaxPrincipalStress float64          `json:"max_principal_stress" jsonschema:"Effective sigma 1 at failure (psi)"`
	ShearStrength      float64          `json:"shear_strength" jsonschema:"Shear strength at the failure-plane normal stress (psi)"`
	UnconfinedStrength float64          `json:"unconfined_strength"`
	QFactor            float64          `json:"q_factor"`
	Method             string           `json:"method"`
	Units              string           `json:"units"`
	Inputs             RockStrengthArgs `json:"inputs"`
}

// DynamicToStaticResult holds static moduli estimated from log values
type DynamicToStaticResult struct {
	StaticYoungs     *float64            `json:"static_youngs"`
	StaticPoisson    *float64            `json:"static_poisson"`
	CorrectionFactor float64             `json:"correction_factor"`
	PoissonFactor    float64             `json:"poisson_factor"`
	Units            string              `json:"units"`
	Inputs           DynamicToStaticArgs `json:"inputs"`
}

// BreakoutWidthResult describes predicted borehole breakouts
type BreakoutWidthResult struct {
	BreakoutWidth       float64           `json:"breakout_width" jsonschema:"Angular width of each breakout (degrees)"`
	MaxTangentialStress float64           `json:"max_tangential_stress" jsonschema:"Total hoop stress at the breakout centre (psi)"`
	FailureStatus       string            `json:"failure_status"`
	CriticalMudWeight   float64           `json:"critical_mud_weight" jsonschema:"Mud weight that suppresses breakouts (ppg)"`
	MudPressure         float64           `json:"mud_pressure"`
	Method              string            `json:"method"`
	Units               string            `json:"units"`
	Inputs              BreakoutWidthArgs `json:"inputs"`
}

// FractureGradientResult holds fracture pressure and its mud weight
type FractureGradientResult struct {
	FracturePressure    float64              `json:"fracture_pressure"`
	FractureGradient    float64              `json:"fracture_gradient"`
	EquivalentMudWeight float64              `json:"equivalent_mud_weight"`
	Margin              float64              `json:"margin" jsonschema:"Fracture pressure minus pore pressure (psi)"`
	Method              string               `json:"method"`
	Units               string               `json:"units"`
	Inputs              FractureGradientArgs `json:"inputs"`
}

// MudWeightWindowResult is the drillable mud weight window
type MudWeightWindowResult struct {
	MinMudWeight float64             `json:"min_mud_weight"`
	MaxMudWeight float64             `json:"max_mud_weight"`
	WindowWidth  float64             `json:"window_width"`
	Status       string              `json:"status"`
	Units        string              `json:"units"`
	Inputs       MudWeightWindowArgs `json:"inputs"`
}

// CriticalMudWeightResult is the collapse limit of a wellbore
type CriticalMudWeightResult struct {
	CriticalMudWeight float64               `json:"critical_mud_weight"`
	CollapsePressure  float64               `json:"collapse_pressure" jsonschema:"Wellbore pressure below which the wall fails in shear (psi)"`
	GovernedBy        string                `json:"governed_by" jsonschema:"collapse or pore_pressure"`
	UCS               float64               `json:"ucs" jsonschema:"Unconfined strength from cohesion and friction (psi)"`
	HoopStressMax     float64               `json:"well_frame_stress_max" jsonschema:"Larger far-field normal stress across the well axis (psi)"`
	HoopStressMin     float64               `json:"well_frame_stress_min" jsonschema:"Smaller far-field normal stress across the well axis (psi)"`
	Method            string                `json:"method"`
	Units             string                `json:"units"`
	Inputs            CriticalMudWeightArgs `json:"inputs"`
}

// ReservoirCompactionResult holds depletion compaction
type ReservoirCompactionResult struct {
	Compaction            float64                 `json:"compaction" jsonschema:"Reservoir compaction (ft)"`
	Subsidence            float64                 `json:"subsidence" jsonschema:"Surface subsidence (ft)"`
	Strain                float64                 `json:"strain"`
	CompactionCoefficient float64                 `json:"compaction_coefficient" jsonschema:"Uniaxial compaction coefficient (1/psi)"`
	BulkCompressibility   float64                 `json:"bulk_compressibility" jsonschema:"Bulk compressibility used (1/psi)"`
	Units                 string                  `json:"units"`
	Inputs                ReservoirCompactionArgs `json:"inputs"`
}

// PoreCompressibilityResult holds pore volume compressibility
type PoreCompressibilityResult struct {
	PoreCompressibility float64                 `json:"pore_compressibility"`
	BulkCompressibility float64                 `json:"bulk_compressibility"`
	Units               string                  `json:"units"`
	TypicalRange        string                  `json:"typical_range"`
	Inputs              PoreCompressibilityArgs `json:"inputs"`
}

// LeakOffResult holds the interpretation of a LOT or FIT
type LeakOffResult struct {
	SigmaHMin           float64     `json:"sigma_h_min"`
	FractureGradient    float64     `json:"fracture_gradient"`
	EquivalentMudWeight float64     `json:"equivalent_mud_weight"`
	BreakdownPressure   *float64    `json:"breakdown_pressure" jsonschema:"Fracture initiation pressure; null for a FIT"`
	TestPressureAtDepth float64     `json:"test_pressure_at_depth"`
	Note                string      `json:"note,omitempty"`
	Units               string      `json:"units"`
	Inputs              LeakOffArgs `json:"inputs"`
}

// FractureWidthResult holds hydraulic fracture widths
type FractureWidthResult struct {
	AvgWidth           float64           `json:"avg_width"`
	MaxWidth           float64           `json:"max_width"`
	FractureCompliance float64           `json:"fracture_compliance" jsonschema:"Average width per unit net pressure (in/psi)"`
	ModelUsed          string            `json:"model_used"`
	Units              string            `json:"units"`
	Inputs             FractureWidthArgs `json:"inputs"`
}

// RegimeBounds are the stress bounds of one faulting regime
type RegimeBounds struct {
	Lower       float64 `json:"lower"`
	Upper       float64 `json:"upper"`
	Stress      string  `json:"stress" jsonschema:"Bounded stress: sigma_h_min or sigma_h_max"`
	Description string  `json:"description"`
}

// StressState checks an observed stress state against the polygon
type StressState struct {
	Regime                 string   `json:"regime"`
	WithinFrictionalLimits bool     `json:"within_frictional_limits"`
	SigmaVOverSigmaHMin    *float64 `json:"sigma_v_over_sigma_h_min"`
	SigmaHMaxOverSigmaV    *float64 `json:"sigma_H_max_over_sigma_v"`
}

// StressPolygonResult holds frictional-equilibrium stress bounds
type StressPolygonResult struct {
	NormalFaulting      RegimeBounds      `json:"normal_faulting"`
	StrikeSlip          RegimeBounds      `json:"strike_slip"`
	ReverseFaulting     RegimeBounds      `json:"reverse_faulting"`
	FrictionCoefficient float64           `json:"friction_coefficient"`
	StressRatioLimit    float64           `json:"stress_ratio_limit"`
	ActualStressState   *StressState      `json:"actual_stress_state,omitempty"`
	Units               string            `json:"units"`
	Inputs              StressPolygonArgs `json:"inputs"`
}

// SandProductionResult holds a sanding risk assessment
type SandProductionResult struct {
	CriticalDrawdown    float64            `json:"critical_drawdown"`
	CriticalFlowingBHP  float64            `json:"critical_flowing_bhp"`
	SandingRisk         string             `json:"sanding_risk"`
	RecommendedAction   string             `json:"recommended_action"`
	UCSUsed             float64            `json:"ucs_used"`
	TWCStrengthEstimate float64            `json:"twc_strength_estimate" jsonschema:"Thick-wall cylinder strength, about 2 x UCS (psi)"`
	StressConcentration float64            `json:"stress_concentration"`
	Units               string             `json:"units"`
	Inputs              SandProductionArgs `json:"inputs"`
}

// FaultStabilityResult holds slip and dilation analysis of a fault
type FaultStabilityResult struct {
	SlipTendency         float64            `json:"slip_tendency"`
	DilationTendency     float64            `json:"dilation_tendency"`
	CoulombStress        float64            `json:"coulomb_stress" jsonschema:"Coulomb failure function, slip at >= 0 (psi)"`
	CriticalPorePressure float64            `json:"critical_pore_pressure"`
	PPIncreaseToSlip     float64            `json:"pp_increase_to_slip"`
	NormalStressOnFault  float64            `json:"normal_stress_on_fault" jsonschema:"Total normal stress (psi)"`
	ShearStressOnFault   float64            `json:"shear_stress_on_fault"`
	StabilityStatus      string             `json:"stability_status"`
	Note                 string             `json:"note,omitempty"`
	Units                string             `json:"units"`
	Inputs               FaultStabilityArgs `json:"inputs"`
}

// TransformedStresses is the far-field stress in wellbore coordinates
type TransformedStresses struct {
	SigmaXX float64 `json:"sigma_xx"`
	SigmaYY float64 `json:"sigma_yy"`
	SigmaZZ float64 `json:"sigma_zz"`
	TauXY   float64 `json:"tau_xy"`
	TauXZ   float64 `json:"tau_xz"`
	TauYZ   float64 `json:"tau_yz"`
}

// WallStressSummary holds the extreme stresses on the wellbore wall
type WallStressSummary struct {
	MaxHoopStress      float64 `json:"max_hoop_stress"`
	MaxHoopAngle       float64 `json:"max_hoop_angle" jsonschema:"Angle from the high side (degrees)"`
	MinHoopStress      float64 `json:"min_hoop_stress"`
	MinHoopAngle       float64 `json:"min_hoop_angle"`
	RadialStress       float64 `json:"radial_stress"`
	AxialStress        float64 `json:"axial_stress" jsonschema:"Axial wall stress at the maximum hoop position (psi)"`
	MaxPrincipalStress float64 `json:"max_principal_stress"`
	MinPrincipalStress float64 `json:"min_principal_stress" jsonschema:"Lowest principal wall stress, the tensile-failure candidate (psi)"`
	MinPrincipalAngle  float64 `json:"min_principal_angle"`
}

// DeviatedWellStressResult holds wellbore-frame and wall stresses
type DeviatedWellStressResult struct {
	TransformedStresses  TransformedStresses    `json:"transformed_stresses"`
	PrincipalStresses    []float64              `json:"principal_stresses" jsonschema:"Eigenvalues of the transformed tensor, descending (psi)"`
	WellboreWallStresses WallStressSummary      `json:"wellbore_wall_stresses"`
	MudPressure          float64                `json:"mud_pressure"`
	RelativeAzimuth      float64                `json:"relative_azimuth" jsonschema:"Well azimuth relative to sigma H max (degrees)"`
	Method               string                 `json:"method"`
	Units                string                 `json:"units"`
	Inputs               DeviatedWellStressArgs `json:"inputs"`
}

// TensileFailureResult holds fracture initiation pressures
type TensileFailureResult struct {
	FractureInitiationPressure float64            `json:"fracture_initiation_pressure"`
	PropagationPressure        float64            `json:"propagation_pressure"`
	ReopeningPressure          float64            `json:"reopening_pressure"`
	FractureGradient           float64            `json:"fracture_gradient"`
	EquivalentMudWeight        float64            `json:"equivalent_mud_weight"`
	StressAnisotropy           float64            `json:"stress_anisotropy"`
	Units                      string             `json:"units"`
	Inputs                     TensileFailureArgs `json:"inputs"`
}

// CriterionOutcome is one failure criterion's verdict
type CriterionOutcome struct {
	StressMeasure float64 `json:"stress_measure" jsonschema:"Criterion stress measure at the current state"`
	AtFailure     float64 `json:"at_failure" jsonschema:"The same measure on the failure envelope"`
	StrengthRatio float64 `json:"strength_ratio"`
	SafetyFactor  float64 `json:"safety_factor"`
	Status        string  `json:"status"`
}

// CriteriaSummary compares the criteria evaluated
type CriteriaSummary struct {
	MostConservativeRatio  float64 `json:"most_conservative_ratio"`
	LeastConservativeRatio float64 `json:"least_conservative_ratio"`
	Sigma2EffectRange      float64 `json:"sigma_2_effect_range"`
}

// ShearFailureCriteriaResult holds the verdict of each criterion
type ShearFailureCriteriaResult struct {
	CriteriaResults map[string]CriterionOutcome `json:"criteria_results"`
	Summary         CriteriaSummary             `json:"summary"`
	Inputs          ShearFailureCriteriaArgs    `json:"inputs"`
}

// BreakoutInversionResult holds horizontal stresses inferred from breakouts
type BreakoutInversionResult struct {
	EstimatedSigmaHMax     float64               `json:"estimated_sigma_h_max"`
	EstimatedSigmaHMin     float64               `json:"estimated_sigma_h_min"`
	StressRatio            float64               `json:"stress_ratio"`
	Confidence             string                `json:"confidence"`
	BreakoutAngleFromSHmax float64               `json:"breakout_angle_from_shmax"`
	MudPressure            float64               `json:"mud_pressure"`
	Note                   string                `json:"note,omitempty"`
	Units                  string                `json:"units"`
	Inputs                 BreakoutInversionArgs `json:"inputs"`
}

// BreakdownPressureResult holds formation breakdown estimates
type BreakdownPressureResult struct {
	BreakdownPressure    float64               `json:"breakdown_pressure"`
	BreakdownImpermeable float64               `json:"breakdown_impermeable" jsonschema:"Hubbert-Willis, non-penetrating fluid (psi)"`
	BreakdownPermeable   float64               `json:"breakdown_permeable" jsonschema:"Haimson-Fairhurst, penetrating fluid (psi)"`
	ISIPEstimate         float64               `json:"isip_estimate"`
	ClosurePressure      float64               `json:"closure_pressure"`
	FractureOrientation  string                `json:"fracture_orientation"`
	Method               string                `json:"method"`
	Units                string                `json:"units"`
	Inputs               BreakdownPressureArgs `json:"inputs"`
}

// StressPathResult holds stress changes from a pore pressure change
type StressPathResult struct {
	Operation             string         `json:"operation"`
	InitialSigmaH         float64        `json:"initial_sigma_h"`
	FinalSigmaH           float64        `json:"final_sigma_h"`
	DeltaSigmaH           float64        `json:"delta_sigma_h"`
	DeltaPorePressure     float64        `json:"delta_pore_pressure"`
	StressPathCoefficient float64        `json:"stress_path_coefficient"`
	DeltaEffectiveStressH float64        `json:"delta_effective_stress_h"`
	DeltaEffectiveStressV float64        `json:"delta_effective_stress_v"`
	EffectiveStressTrend  string         `json:"effective_stress_trend"`
	FaultStabilityImpact  string         `json:"fault_stability_impact"`
	Units                 string         `json:"units"`
	Inputs                StressPathArgs `json:"inputs"`
}

// ThermalStressResult holds thermally induced stress changes
type ThermalStressResult struct {
	ThermalStress             float64           `json:"thermal_stress"`
	HoopStressChange          float64           `json:"hoop_stress_change"`
	EquivalentMudWeightChange float64           `json:"equivalent_mud_weight_change"`
	TemperatureChange         float64           `json:"temperature_change"`
	StabilityEffect           string            `json:"stability_effect"`
	FractureEffect            string            `json:"fracture_effect"`
	MudWeightEffect           string            `json:"mud_weight_effect"`
	Units                     string            `json:"units"`
	Inputs                    ThermalStressArgs `json:"inputs"`
}

// UCSFromLogsResult holds a log-derived UCS estimate
type UCSFromLogsResult struct {
	UCS              float64         `json:"ucs"`
	CohesionEstimate float64         `json:"cohesion_estimate" jsonschema:"UCS / 3.5 (psi)"`
	CorrelationUsed  string          `json:"correlation_used"`
	Lithology        string          `json:"lithology"`
	TypicalRangePsi  [2]float64      `json:"typical_range_psi"`
	Confidence       string          `json:"confidence"`
	Units            string          `json:"units"`
	Inputs           UCSFromLogsArgs `json:"inputs"`
}

// CriticalDrawdownResult holds the shear-failure drawdown limit
type CriticalDrawdownResult struct {
	CriticalDrawdown   float64              `json:"critical_drawdown"`
	CriticalFlowingBHP float64              `json:"critical_flowing_bhp"`
	SafeDrawdown80Pct  float64              `json:"safe_drawdown_80pct"`
	SafeRateFactor     float64              `json:"safe_rate_factor"`
	FailureMechanism   string               `json:"failure_mechanism"`
	UCSUsed            float64              `json:"ucs_used"`
	QFactor            float64              `json:"q_factor"`
	Units              string               `json:"units"`
	Inputs             CriticalDrawdownArgs `json:"inputs"`
}
