package geomech

import "github.com/olgasafonova/restoolbox-mcp-server/internal/num"

// VerticalStressArgs contains parameters for the overburden calculation
type VerticalStressArgs struct {
	Depth        float64 `json:"depth" jsonschema:"True vertical depth below surface (ft)" validate:"gt=0"`
	WaterDepth   float64 `json:"water_depth,omitempty" jsonschema:"Water depth for offshore wells (ft), default 0" validate:"gte=0"`
	AvgDensity   float64 `json:"avg_density,omitempty" jsonschema:"Average overburden bulk density (lb/cuft), default 144" validate:"gt=0,lte=300"`
	WaterDensity float64 `json:"water_density,omitempty" jsonschema:"Water density (lb/cuft), default 64 (seawater)" validate:"gt=0,lte=100"`
}

func (a *VerticalStressArgs) ApplyDefaults() {
	if a.AvgDensity == 0 {
		a.AvgDensity = 144
	}
	if a.WaterDensity == 0 {
		a.WaterDensity = 64
	}
}

// PorePressureEatonArgs contains parameters for Eaton pore pressure
type PorePressureEatonArgs struct {
	Depth         float64 `json:"depth" jsonschema:"True vertical depth (ft)" validate:"gt=0"`
	ObservedValue float64 `json:"observed_value" jsonschema:"Observed sonic (us/ft) or resistivity (ohm-m)" validate:"gt=0"`
	NormalValue   float64 `json:"normal_value" jsonschema:"Normal compaction trend value at this depth" validate:"gt=0"`
	OverburdenPsi float64 `json:"overburden_psi" jsonschema:"Overburden stress at depth (psi)" validate:"gt=0"`
	EatonExponent float64 `json:"eaton_exponent,omitempty" jsonschema:"Eaton exponent, default 3.0 (use 1.2 for resistivity)" validate:"gt=0,lte=5"`
	Method        string  `json:"method,omitempty" jsonschema:"Log type: sonic (default) or resistivity" validate:"oneof=sonic resistivity"`
}

func (a *PorePressureEatonArgs) ApplyDefaults() {
	if a.EatonExponent == 0 {
		a.EatonExponent = 3
	}
	if a.Method == "" {
		a.Method = "sonic"
	}
}

// EffectiveStressArgs contains parameters for effective stress
type EffectiveStressArgs struct {
	TotalStress     num.Values `json:"total_stress" jsonschema:"Total stress (psi), scalar or array" validate:"required"`
	PorePressure    num.Values `json:"pore_pressure" jsonschema:"Pore pressure (psi), scalar or array" validate:"required"`
	BiotCoefficient float64    `json:"biot_coefficient,omitempty" jsonschema:"Biot coefficient (0-1], default 1" validate:"gt=0,lte=1"`
}

func (a *EffectiveStressArgs) ApplyDefaults() {
	if a.BiotCoefficient == 0 {
		a.BiotCoefficient = 1
	}
}

// HorizontalStressArgs contains parameters for horizontal stress estimation
type HorizontalStressArgs struct {
	VerticalStress  float64 `json:"vertical_stress" jsonschema:"Total vertical stress (psi)" validate:"gt=0"`
	PorePressure    float64 `json:"pore_pressure" jsonschema:"Formation pore pressure (psi)" validate:"gt=0"`
	PoissonRatio    float64 `json:"poisson_ratio" jsonschema:"Poisson's ratio (0-0.5)" validate:"gt=0,lt=0.5"`
	TectonicFactor  float64 `json:"tectonic_factor,omitempty" jsonschema:"Tectonic factor: 0 passive/normal, 0.5 strike-slip, 1 reverse (default 0)" validate:"gte=0,lte=1"`
	BiotCoefficient float64 `json:"biot_coefficient,omitempty" jsonschema:"Biot coefficient, default 1" validate:"gt=0,lte=1"`
}

func (a *HorizontalStressArgs) ApplyDefaults() {
	if a.BiotCoefficient == 0 {
		a.BiotCoefficient = 1
	}
}

// ElasticModuliArgs contains any two isotropic elastic parameters
type ElasticModuliArgs struct {
	YoungsModulus *float64 `json:"youngs_modulus,omitempty" jsonschema:"Young's modulus E (psi)" validate:"omitempty,gt=0"`
	BulkModulus   *float64 `json:"bulk_modulus,omitempty" jsonschema:"Bulk modulus K (psi)" validate:"omitempty,gt=0"`
	ShearModulus  *float64 `json:"shear_modulus,omitempty" jsonschema:"Shear modulus G (psi)" validate:"omitempty,gt=0"`
	PoissonRatio  *float64 `json:"poisson_ratio,omitempty" jsonschema:"Poisson's ratio (0-0.5)" validate:"omitempty,gte=0,lt=0.5"`
	LameParameter *float64 `json:"lame_parameter,omitempty" jsonschema:"Lame's first parameter lambda (psi)"`
}

// RockStrengthArgs contains Mohr-Coulomb parameters and confinement
type RockStrengthArgs struct {
	Cohesion           float64 `json:"cohesion" jsonschema:"Rock cohesion (psi)" validate:"gte=0"`
	FrictionAngle      float64 `json:"friction_angle" jsonschema:"Internal friction angle (degrees)" validate:"gt=0,lt=90"`
	EffectiveStressMin float64 `json:"effective_stress_min" jsonschema:"Minimum effective principal stress (psi)" validate:"gte=0"`
}

// DynamicToStaticArgs contains log-derived dynamic moduli
type DynamicToStaticArgs struct {
	DynamicYoungs  *float64 `json:"dynamic_youngs,omitempty" jsonschema:"Dynamic Young's modulus (psi)" validate:"omitempty,gt=0"`
	DynamicPoisson *float64 `json:"dynamic_poisson,omitempty" jsonschema:"Dynamic Poisson's ratio" validate:"omitempty,gt=0,lt=0.5"`
	Correlation    string   `json:"correlation,omitempty" jsonschema:"Correlation: eissa_kazi (default), plona_cook or linear" validate:"oneof=eissa_kazi plona_cook linear"`
	Lithology      string   `json:"lithology,omitempty" jsonschema:"Lithology: sandstone (default), shale or carbonate" validate:"oneof=sandstone shale carbonate"`
}

func (a *DynamicToStaticArgs) ApplyDefaults() {
	if a.Correlation == "" {
		a.Correlation = "eissa_kazi"
	}
	if a.Lithology == "" {
		a.Lithology = "sandstone"
	}
}

// BreakoutWidthArgs contains parameters for breakout width
type BreakoutWidthArgs struct {
	SigmaHMax       float64 `json:"sigma_h_max" jsonschema:"Maximum horizontal stress (psi)" validate:"gt=0"`
	SigmaHMin       float64 `json:"sigma_h_min" jsonschema:"Minimum horizontal stress (psi)" validate:"gt=0"`
	PorePressure    float64 `json:"pore_pressure" jsonschema:"Formation pore pressure (psi)" validate:"gt=0"`
	MudWeight       float64 `json:"mud_weight" jsonschema:"Mud weight (ppg)" validate:"gt=0"`
	WellboreAzimuth float64 `json:"wellbore_azimuth" jsonschema:"Well azimuth (degrees, 0-360)" validate:"gte=0,lte=360"`
	UCS             float64 `json:"ucs" jsonschema:"Unconfined compressive strength (psi)" validate:"gt=0"`
	FrictionAngle   float64 `json:"friction_angle" jsonschema:"Internal friction angle (degrees)" validate:"gt=0,lt=90"`
	Depth           float64 `json:"depth,omitempty" jsonschema:"True vertical depth (ft); default estimated from hydrostatic pore pressure" validate:"gte=0"`
}

func (a *BreakoutWidthArgs) ApplyDefaults() {
	if a.Depth == 0 {
		a.Depth = a.PorePressure / HydrostaticGradient
	}
}

// FractureGradientArgs contains parameters for fracture gradient
type FractureGradientArgs struct {
	Depth          float64  `json:"depth" jsonschema:"True vertical depth (ft)" validate:"gt=0"`
	SigmaHMin      *float64 `json:"sigma_h_min,omitempty" jsonschema:"Measured minimum horizontal stress (psi); overrides the method" validate:"omitempty,gt=0"`
	VerticalStress float64  `json:"vertical_stress" jsonschema:"Overburden stress (psi)" validate:"gt=0"`
	PorePressure   float64  `json:"pore_pressure" jsonschema:"Formation pore pressure (psi)" validate:"gt=0"`
	PoissonRatio   float64  `json:"poisson_ratio,omitempty" jsonschema:"Poisson's ratio for the Eaton method, default 0.25" validate:"gt=0,lt=0.5"`
	Method         string   `json:"method,omitempty" jsonschema:"Method: eaton (default), hubbert_willis or matthews_kelly" validate:"oneof=hubbert_willis eaton matthews_kelly"`
	Ki             float64  `json:"ki,omitempty" jsonschema:"Matthews-Kelly matrix stress coefficient, default 0.75" validate:"gt=0,lte=1"`
}

func (a *FractureGradientArgs) ApplyDefaults() {
	if a.PoissonRatio == 0 {
		a.PoissonRatio = 0.25
	}
	if a.Method == "" {
		a.Method = FracEaton
	}
	if a.Ki == 0 {
		a.Ki = 0.75
	}
}

// MudWeightWindowArgs contains parameters for the mud weight window
type MudWeightWindowArgs struct {
	PorePressure            float64  `json:"pore_pressure" jsonschema:"Formation pore pressure (psi)" validate:"gt=0"`
	FracturePressure        float64  `json:"fracture_pressure" jsonschema:"Formation fracture pressure (psi)" validate:"gt=0"`
	Depth                   float64  `json:"depth" jsonschema:"True vertical depth (ft)" validate:"gt=0"`
	CollapsePressure        *float64 `json:"collapse_pressure,omitempty" jsonschema:"Collapse pressure (psi), if known" validate:"omitempty,gt=0"`
	SafetyMarginOverbalance *float64 `json:"safety_margin_overbalance,omitempty" jsonschema:"Overbalance margin (ppg), default 0.5" validate:"omitempty,gte=0"`
	SafetyMarginFracture    *float64 `json:"safety_margin_fracture,omitempty" jsonschema:"Fracture margin (ppg), default 0.5" validate:"omitempty,gte=0"`
}

func (a *MudWeightWindowArgs) ApplyDefaults() {
	if a.SafetyMarginOverbalance == nil {
		m := 0.5
		a.SafetyMarginOverbalance = &m
	}
	if a.SafetyMarginFracture == nil {
		m := 0.5
		a.SafetyMarginFracture = &m
	}
}

// CriticalMudWeightArgs contains parameters for collapse mud weight
type CriticalMudWeightArgs struct {
	SigmaHMax           float64  `json:"sigma_h_max" jsonschema:"Maximum horizontal stress (psi)" validate:"gt=0"`
	SigmaHMin           float64  `json:"sigma_h_min" jsonschema:"Minimum horizontal stress (psi)" validate:"gt=0"`
	PorePressure        float64  `json:"pore_pressure" jsonschema:"Formation pore pressure (psi)" validate:"gt=0"`
	Cohesion            float64  `json:"cohesion" jsonschema:"Rock cohesion (psi)" validate:"gte=0"`
	FrictionAngle       float64  `json:"friction_angle" jsonschema:"Internal friction angle (degrees)" validate:"gt=0,lt=90"`
	WellboreAzimuth     float64  `json:"wellbore_azimuth" jsonschema:"Well azimuth relative to sigma_h_max (degrees)" validate:"gte=0,lte=360"`
	WellboreInclination float64  `json:"wellbore_inclination,omitempty" jsonschema:"Well inclination from vertical (degrees), default 0" validate:"gte=0,lte=90"`
	Depth               float64  `json:"depth" jsonschema:"True vertical depth (ft)" validate:"gt=0"`
	SigmaV              *float64 `json:"sigma_v,omitempty" jsonschema:"Vertical stress (psi); default from a 144 lb/cuft overburden" validate:"omitempty,gt=0"`
}

func (a *CriticalMudWeightArgs) ApplyDefaults() {
	if a.SigmaV == nil && a.Depth > 0 {
		sv, _ := VerticalStress(a.Depth, 0, 144, 64)
		a.SigmaV = &sv
	}
}

// ReservoirCompactionArgs contains parameters for depletion compaction
type ReservoirCompactionArgs struct {
	PressureDrop        float64  `json:"pressure_drop" jsonschema:"Reservoir pressure depletion (psi)" validate:"gt=0"`
	ReservoirThickness  float64  `json:"reservoir_thickness" jsonschema:"Reservoir thickness (ft)" validate:"gt=0"`
	BulkCompressibility *float64 `json:"bulk_compressibility,omitempty" jsonschema:"Bulk compressibility (1/psi), if known" validate:"omitempty,gt=0"`
	YoungsModulus       float64  `json:"youngs_modulus" jsonschema:"Static Young's modulus (psi)" validate:"gt=0"`
	PoissonRatio        float64  `json:"poisson_ratio" jsonschema:"Poisson's ratio" validate:"gt=0,lt=0.5"`
	BiotCoefficient     float64  `json:"biot_coefficient,omitempty" jsonschema:"Biot coefficient, default 1" validate:"gt=0,lte=1"`
	SubsidenceRatio     float64  `json:"subsidence_ratio,omitempty" jsonschema:"Surface subsidence as a fraction of compaction, default 0.65" validate:"gt=0,lte=1"`
}

func (a *ReservoirCompactionArgs) ApplyDefaults() {
	if a.BiotCoefficient == 0 {
		a.BiotCoefficient = 1
	}
	if a.SubsidenceRatio == 0 {
		a.SubsidenceRatio = 0.65
	}
}

// PoreCompressibilityArgs contains parameters for pore compressibility
type PoreCompressibilityArgs struct {
	BulkCompressibility  *float64 `json:"bulk_compressibility,omitempty" jsonschema:"Rock bulk compressibility (1/psi)" validate:"omitempty,gt=0"`
	GrainCompressibility float64  `json:"grain_compressibility,omitempty" jsonschema:"Grain compressibility (1/psi), default 3e-7" validate:"gt=0"`
	Porosity             float64  `json:"porosity" jsonschema:"Porosity (fraction)" validate:"gt=0,lt=1"`
	YoungsModulus        *float64 `json:"youngs_modulus,omitempty" jsonschema:"Young's modulus (psi), used when bulk_compressibility is absent" validate:"omitempty,gt=0"`
	PoissonRatio         *float64 `json:"poisson_ratio,omitempty" jsonschema:"Poisson's ratio, used with youngs_modulus" validate:"omitempty,gt=0,lt=0.5"`
}

func (a *PoreCompressibilityArgs) ApplyDefaults() {
	if a.GrainCompressibility == 0 {
		a.GrainCompressibility = 3e-7
	}
}

// LeakOffArgs contains leak-off or formation integrity test data
type LeakOffArgs struct {
	LeakOffPressure float64 `json:"leak_off_pressure" jsonschema:"Surface leak-off pressure (psi)" validate:"gt=0"`
	MudWeight       float64 `json:"mud_weight" jsonschema:"Mud weight during the test (ppg)" validate:"gt=0"`
	TestDepth       float64 `json:"test_depth" jsonschema:"True vertical depth of the test (ft)" validate:"gt=0"`
	PorePressure    float64 `json:"pore_pressure" jsonschema:"Pore pressure at test depth (psi)" validate:"gt=0"`
	TestType        string  `json:"test_type,omitempty" jsonschema:"LOT (default) or FIT" validate:"oneof=LOT FIT"`
}

func (a *LeakOffArgs) ApplyDefaults() {
	if a.TestType == "" {
		a.TestType = "LOT"
	}
}

// FractureWidthArgs contains parameters for hydraulic fracture width
type FractureWidthArgs struct {
	NetPressure        float64 `json:"net_pressure" jsonschema:"Net treating pressure (psi)" validate:"gt=0"`
	FractureHeight     float64 `json:"fracture_height" jsonschema:"Fracture height (ft)" validate:"gt=0"`
	FractureHalfLength float64 `json:"fracture_half_length" jsonschema:"Fracture half-length (ft)" validate:"gt=0"`
	YoungsModulus      float64 `json:"youngs_modulus" jsonschema:"Young's modulus (psi)" validate:"gt=0"`
	PoissonRatio       float64 `json:"poisson_ratio" jsonschema:"Poisson's ratio" validate:"gt=0,lt=0.5"`
	Model              string  `json:"model,omitempty" jsonschema:"PKN (default) or KGD" validate:"oneof=PKN KGD"`
}

func (a *FractureWidthArgs) ApplyDefaults() {
	if a.Model == "" {
		a.Model = ModelPKN
	}
}

// StressPolygonArgs contains parameters for the stress polygon
type StressPolygonArgs struct {
	VerticalStress      float64  `json:"vertical_stress" jsonschema:"Vertical stress (psi)" validate:"gt=0"`
	PorePressure        float64  `json:"pore_pressure" jsonschema:"Pore pressure (psi)" validate:"gt=0"`
	FrictionCoefficient float64  `json:"friction_coefficient,omitempty" jsonschema:"Fault friction coefficient, default 0.6" validate:"gt=0,lt=1.5"`
	SigmaHMin           *float64 `json:"sigma_h_min,omitempty" jsonschema:"Actual minimum horizontal stress to check (psi)" validate:"omitempty,gt=0"`
	SigmaHMax           *float64 `json:"sigma_h_max,omitempty" jsonschema:"Actual maximum horizontal stress to check (psi)" validate:"omitempty,gt=0"`
}

func (a *StressPolygonArgs) ApplyDefaults() {
	if a.FrictionCoefficient == 0 {
		a.FrictionCoefficient = 0.6
	}
}

// SandProductionArgs contains parameters for sanding prediction
type SandProductionArgs struct {
	SigmaHMax        float64 `json:"sigma_h_max" jsonschema:"Maximum horizontal stress (psi)" validate:"gt=0"`
	SigmaHMin        float64 `json:"sigma_h_min" jsonschema:"Minimum horizontal stress (psi)" validate:"gt=0"`
	PorePressure     float64 `json:"pore_pressure" jsonschema:"Formation pore pressure (psi)" validate:"gt=0"`
	UCS              float64 `json:"ucs,omitempty" jsonschema:"Unconfined compressive strength (psi); derived from cohesion and friction when 0" validate:"gte=0"`
	Cohesion         float64 `json:"cohesion" jsonschema:"Rock cohesion (psi)" validate:"gte=0"`
	FrictionAngle    float64 `json:"friction_angle" jsonschema:"Internal friction angle (degrees)" validate:"gt=0,lt=90"`
	WellboreRadius   float64 `json:"wellbore_radius,omitempty" jsonschema:"Wellbore radius (ft), default 0.354" validate:"gt=0"`
	PerforationDepth float64 `json:"perforation_depth,omitempty" jsonschema:"Perforation tunnel depth (ft), default 0.5" validate:"gt=0"`
	Permeability     float64 `json:"permeability" jsonschema:"Formation permeability (mD)" validate:"gt=0"`
	Porosity         float64 `json:"porosity" jsonschema:"Porosity (fraction)" validate:"gt=0,lt=1"`
}

func (a *SandProductionArgs) ApplyDefaults() {
	if a.WellboreRadius == 0 {
		a.WellboreRadius = 0.354
	}
	if a.PerforationDepth == 0 {
		a.PerforationDepth = 0.5
	}
}

// FaultStabilityArgs contains parameters for fault reactivation analysis
type FaultStabilityArgs struct {
	Sigma1              float64 `json:"sigma_1" jsonschema:"Maximum principal stress (psi)" validate:"gt=0"`
	Sigma3              float64 `json:"sigma_3" jsonschema:"Minimum principal stress (psi)" validate:"gt=0"`
	PorePressure        float64 `json:"pore_pressure" jsonschema:"Pore pressure (psi)" validate:"gt=0"`
	FaultStrike         float64 `json:"fault_strike" jsonschema:"Fault strike azimuth (degrees)" validate:"gte=0,lte=360"`
	FaultDip            float64 `json:"fault_dip" jsonschema:"Fault dip (degrees from horizontal)" validate:"gt=0,lte=90"`
	Sigma1Azimuth       float64 `json:"sigma_1_azimuth,omitempty" jsonschema:"Sigma 1 azimuth (degrees from North), default 0" validate:"gte=0,lte=360"`
	FrictionCoefficient float64 `json:"friction_coefficient,omitempty" jsonschema:"Fault friction coefficient, default 0.6" validate:"gt=0,lt=1.5"`
	Cohesion            float64 `json:"cohesion,omitempty" jsonschema:"Fault cohesion (psi), default 0" validate:"gte=0"`
}

func (a *FaultStabilityArgs) ApplyDefaults() {
	if a.FrictionCoefficient == 0 {
		a.FrictionCoefficient = 0.6
	}
}

// DeviatedWellStressArgs contains parameters for the wellbore stress transform
type DeviatedWellStressArgs struct {
	SigmaV           float64 `json:"sigma_v" jsonschema:"Vertical stress (psi)" validate:"gt=0"`
	SigmaHMax        float64 `json:"sigma_h_max" jsonschema:"Maximum horizontal stress (psi)" validate:"gt=0"`
	SigmaHMin        float64 `json:"sigma_h_min" jsonschema:"Minimum horizontal stress (psi)" validate:"gt=0"`
	SigmaHMaxAzimuth float64 `json:"sigma_h_max_azimuth" jsonschema:"Sigma H max azimuth from North (degrees)" validate:"gte=0,lte=360"`
	WellAzimuth      float64 `json:"well_azimuth" jsonschema:"Well azimuth from North (degrees)" validate:"gte=0,lte=360"`
	WellInclination  float64 `json:"well_inclination" jsonschema:"Well inclination from vertical (degrees)" validate:"gte=0,lte=90"`
	PorePressure     float64 `json:"pore_pressure" jsonschema:"Formation pore pressure (psi)" validate:"gt=0"`
	MudWeight        float64 `json:"mud_weight" jsonschema:"Mud weight (ppg)" validate:"gt=0"`
	Depth            float64 `json:"depth" jsonschema:"True vertical depth (ft)" validate:"gt=0"`
	PoissonRatio     float64 `json:"poisson_ratio,omitempty" jsonschema:"Poisson's ratio for the axial wall stress, default 0.25" validate:"gt=0,lt=0.5"`
}

func (a *DeviatedWellStressArgs) ApplyDefaults() {
	if a.PoissonRatio == 0 {
		a.PoissonRatio = 0.25
	}
}

// TensileFailureArgs contains parameters for tensile fracture initiation
type TensileFailureArgs struct {
	SigmaHMax       float64 `json:"sigma_h_max" jsonschema:"Maximum horizontal stress (psi)" validate:"gt=0"`
	SigmaHMin       float64 `json:"sigma_h_min" jsonschema:"Minimum horizontal stress (psi)" validate:"gt=0"`
	PorePressure    float64 `json:"pore_pressure" jsonschema:"Formation pore pressure (psi)" validate:"gt=0"`
	TensileStrength float64 `json:"tensile_strength,omitempty" jsonschema:"Rock tensile strength (psi), default 0" validate:"gte=0"`
	ThermalStress   float64 `json:"thermal_stress,omitempty" jsonschema:"Thermal hoop stress change (psi), negative for cooling"`
	Depth           float64 `json:"depth,omitempty" jsonschema:"True vertical depth (ft); default estimated from hydrostatic pore pressure" validate:"gte=0"`
}

func (a *TensileFailureArgs) ApplyDefaults() {
	if a.Depth == 0 {
		a.Depth = a.PorePressure / HydrostaticGradient
	}
}

// ShearFailureCriteriaArgs contains a principal stress state and strength
type ShearFailureCriteriaArgs struct {
	Sigma1        float64  `json:"sigma_1" jsonschema:"Maximum effective principal stress (psi)"`
	Sigma2        float64  `json:"sigma_2" jsonschema:"Intermediate effective principal stress (psi)"`
	Sigma3        float64  `json:"sigma_3" jsonschema:"Minimum effective principal stress (psi)" validate:"gte=0"`
	UCS           float64  `json:"ucs" jsonschema:"Unconfined compressive strength (psi)" validate:"gt=0"`
	Cohesion      float64  `json:"cohesion" jsonschema:"Rock cohesion (psi)" validate:"gte=0"`
	FrictionAngle float64  `json:"friction_angle" jsonschema:"Internal friction angle (degrees)" validate:"gt=0,lt=90"`
	Criteria      []string `json:"criteria,omitempty" jsonschema:"Criteria to evaluate: mohr_coulomb, drucker_prager, mogi_coulomb, modified_lade, modified_wiebols (default first three)" validate:"dive,oneof=mohr_coulomb drucker_prager mogi_coulomb modified_lade modified_wiebols"`
}

func (a *ShearFailureCriteriaArgs) ApplyDefaults() {
	if len(a.Criteria) == 0 {
		a.Criteria = []string{CriterionMohrCoulomb, CriterionDruckerPrager, CriterionMogiCoulomb}
	}
}

// BreakoutInversionArgs contains an observed breakout and its conditions
type BreakoutInversionArgs struct {
	BreakoutWidth float64  `json:"breakout_width" jsonschema:"Observed breakout angular width (degrees)" validate:"gt=0,lt=180"`
	SigmaV        float64  `json:"sigma_v" jsonschema:"Vertical stress (psi)" validate:"gt=0"`
	PorePressure  float64  `json:"pore_pressure" jsonschema:"Formation pore pressure (psi)" validate:"gt=0"`
	MudWeight     float64  `json:"mud_weight" jsonschema:"Mud weight when the breakout formed (ppg)" validate:"gt=0"`
	UCS           float64  `json:"ucs" jsonschema:"Unconfined compressive strength (psi)" validate:"gt=0"`
	FrictionAngle float64  `json:"friction_angle" jsonschema:"Internal friction angle (degrees)" validate:"gt=0,lt=90"`
	Depth         float64  `json:"depth" jsonschema:"True vertical depth (ft)" validate:"gt=0"`
	SigmaHMin     *float64 `json:"sigma_h_min,omitempty" jsonschema:"Measured minimum horizontal stress (psi); estimated from friction when absent" validate:"omitempty,gt=0"`
}

// BreakdownPressureArgs contains parameters for formation breakdown
type BreakdownPressureArgs struct {
	SigmaHMax           float64 `json:"sigma_h_max" jsonschema:"Maximum horizontal stress (psi)" validate:"gt=0"`
	SigmaHMin           float64 `json:"sigma_h_min" jsonschema:"Minimum horizontal stress (psi)" validate:"gt=0"`
	PorePressure        float64 `json:"pore_pressure" jsonschema:"Formation pore pressure (psi)" validate:"gt=0"`
	TensileStrength     float64 `json:"tensile_strength,omitempty" jsonschema:"Rock tensile strength (psi), default 0" validate:"gte=0"`
	PoroelasticConstant float64 `json:"poroelastic_constant,omitempty" jsonschema:"Poroelastic constant eta = alpha(1-2nu)/(1-nu); 0 (default) for non-penetrating fluid" validate:"gte=0,lte=1"`
}

// StressPathArgs contains parameters for depletion or injection stress path
type StressPathArgs struct {
	InitialPorePressure   float64  `json:"initial_pore_pressure" jsonschema:"Initial pore pressure (psi)" validate:"gt=0"`
	FinalPorePressure     float64  `json:"final_pore_pressure" jsonschema:"Final pore pressure (psi)" validate:"gt=0"`
	VerticalStress        float64  `json:"vertical_stress" jsonschema:"Vertical stress, assumed constant (psi)" validate:"gt=0"`
	InitialSigmaH         float64  `json:"initial_sigma_h" jsonschema:"Initial horizontal stress (psi)" validate:"gt=0"`
	PoissonRatio          float64  `json:"poisson_ratio" jsonschema:"Poisson's ratio" validate:"gt=0,lt=0.5"`
	BiotCoefficient       float64  `json:"biot_coefficient,omitempty" jsonschema:"Biot coefficient, default 1" validate:"gt=0,lte=1"`
	StressPathCoefficient *float64 `json:"stress_path_coefficient,omitempty" jsonschema:"Stress path coefficient dSh/dPp; poroelastic value when absent" validate:"omitempty,gt=0,lt=1"`
}

func (a *StressPathArgs) ApplyDefaults() {
	if a.BiotCoefficient == 0 {
		a.BiotCoefficient = 1
	}
}

// ThermalStressArgs contains parameters for thermal stress
type ThermalStressArgs struct {
	TemperatureChange           float64 `json:"temperature_change" jsonschema:"Temperature change (degF), negative for cooling"`
	YoungsModulus               float64 `json:"youngs_modulus" jsonschema:"Young's modulus (psi)" validate:"gt=0"`
	PoissonRatio                float64 `json:"poisson_ratio" jsonschema:"Poisson's ratio" validate:"gt=0,lt=0.5"`
	ThermalExpansionCoefficient float64 `json:"thermal_expansion_coefficient,omitempty" jsonschema:"Linear thermal expansion coefficient (1/degF), default 6e-6" validate:"gt=0"`
	BiotCoefficient             float64 `json:"biot_coefficient,omitempty" jsonschema:"Biot coefficient, default 1" validate:"gt=0,lte=1"`
	Depth                       float64 `json:"depth,omitempty" jsonschema:"Depth for the mud weight equivalent (ft), default 10000" validate:"gt=0"`
}

func (a *ThermalStressArgs) ApplyDefaults() {
	if a.ThermalExpansionCoefficient == 0 {
		a.ThermalExpansionCoefficient = 6e-6
	}
	if a.BiotCoefficient == 0 {
		a.BiotCoefficient = 1
	}
	if a.Depth == 0 {
		a.Depth = 10000
	}
}

// UCSFromLogsArgs contains log measurements for UCS estimation
type UCSFromLogsArgs struct {
	SonicDT       *float64 `json:"sonic_dt,omitempty" jsonschema:"Compressional transit time (us/ft)" validate:"omitempty,gt=0"`
	Porosity      *float64 `json:"porosity,omitempty" jsonschema:"Porosity (fraction)" validate:"omitempty,gt=0,lt=1"`
	YoungsModulus *float64 `json:"youngs_modulus,omitempty" jsonschema:"Young's modulus (psi)" validate:"omitempty,gt=0"`
	Lithology     string   `json:"lithology,omitempty" jsonschema:"sandstone (default), shale, carbonate or general" validate:"oneof=sandstone shale carbonate general"`
	Correlation   string   `json:"correlation,omitempty" jsonschema:"mcnally (default), horsrud, chang, lal or vernik" validate:"oneof=mcnally horsrud chang lal vernik"`
}

func (a *UCSFromLogsArgs) ApplyDefaults() {
	if a.Lithology == "" {
		a.Lithology = "sandstone"
	}
	if a.Correlation == "" {
		a.Correlation = UCSMcNally
	}
}

// CriticalDrawdownArgs contains parameters for critical drawdown
type CriticalDrawdownArgs struct {
	SigmaHMax         float64 `json:"sigma_h_max" jsonschema:"Maximum horizontal stress (psi)" validate:"gt=0"`
	SigmaHMin         float64 `json:"sigma_h_min" jsonschema:"Minimum horizontal stress (psi)" validate:"gt=0"`
	ReservoirPressure float64 `json:"reservoir_pressure" jsonschema:"Reservoir pressure (psi)" validate:"gt=0"`
	UCS               float64 `json:"ucs" jsonschema:"Unconfined compressive strength (psi)" validate:"gt=0"`
	Cohesion          float64 `json:"cohesion" jsonschema:"Rock cohesion (psi)" validate:"gte=0"`
	FrictionAngle     float64 `json:"friction_angle" jsonschema:"Internal friction angle (degrees)" validate:"gt=0,lt=90"`
	WellboreRadius    float64 `json:"wellbore_radius,omitempty" jsonschema:"Wellbore radius (ft), default 0.354" validate:"gt=0"`
}

func (a *CriticalDrawdownArgs) ApplyDefaults() {
	if a.WellboreRadius == 0 {
		a.WellboreRadius = 0.354
	}
}
