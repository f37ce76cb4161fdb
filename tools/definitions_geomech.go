package tools

// ==========================================================================
// GEOMECHANICS TOOLS
// ==========================================================================

var geomechTools = []ToolSpec{
	{
		Name:     "geomech_vertical_stress",
		Method:   "GeoVerticalStress",
		Title:    "Vertical Stress",
		Category: "geomech",
		Description: `Calculate overburden (vertical) stress by integrating rock and water column density.

USE WHEN: User asks "what is the overburden at 10,000 ft", "sigma_v", "offshore overburden with 3000 ft of water".

NOT FOR: Horizontal stresses (use geomech_horizontal_stress).

PARAMETERS:
- depth: TVD in ft (required)
- water_depth: Offshore water depth (default 0)
- avg_density, water_density: lb/cuft (defaults 144 and 64)

RETURNS: Sv in psi and its gradient in psi/ft.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_pore_pressure_eaton",
		Method:   "GeoPorePressureEaton",
		Title:    "Pore Pressure (Eaton)",
		Category: "geomech",
		Description: `Estimate pore pressure from sonic or resistivity logs with Eaton's method.

USE WHEN: User asks "pore pressure prediction from sonic", "Eaton overpressure", "is this shale overpressured".

NOT FOR: Effective stress (use geomech_effective_stress).

PARAMETERS:
- depth, observed_value, normal_value, overburden_psi (required)
- method: sonic (default) or resistivity
- eaton_exponent: Default 3.0 for sonic

RETURNS: Pore pressure, gradient, hydrostatic pressure and overpressure.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_effective_stress",
		Method:   "GeoEffectiveStress",
		Title:    "Effective Stress",
		Category: "geomech",
		Description: `Calculate Terzaghi/Biot effective stress.

USE WHEN: User asks "effective stress", "sigma prime", "grain-supported stress".

NOT FOR: Stress change with depletion (use geomech_stress_path).

PARAMETERS:
- total_stress, pore_pressure: psi, number or array (required)
- biot_coefficient: Default 1

RETURNS: Effective stress in psi.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_horizontal_stress",
		Method:   "GeoHorizontalStress",
		Title:    "Horizontal Stress",
		Category: "geomech",
		Description: `Estimate minimum and maximum horizontal stresses from the uniaxial strain model with a tectonic factor.

USE WHEN: User asks "Shmin from Poisson's ratio", "horizontal stress estimate", "SHmax for a strike-slip regime".

NOT FOR: Checking frictional limits (use geomech_stress_polygon).

PARAMETERS:
- vertical_stress, pore_pressure, poisson_ratio (required)
- tectonic_factor: 0 normal, 0.5 strike-slip, 1 reverse (default 0)
- biot_coefficient: Default 1

RETURNS: Shmin, SHmax and the faulting regime.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_elastic_moduli_conversion",
		Method:   "GeoElasticModuli",
		Title:    "Elastic Moduli Conversion",
		Category: "geomech",
		Description: `Convert any two isotropic elastic moduli into the full set.

USE WHEN: User asks "bulk modulus from E and nu", "shear modulus", "Lame parameter".

NOT FOR: Dynamic to static conversion (use geomech_dynamic_to_static_moduli).

PARAMETERS:
- Exactly two of youngs_modulus, bulk_modulus, shear_modulus, poisson_ratio, lame_parameter (psi)

RETURNS: E, K, G, nu and lambda.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_rock_strength_mohr_coulomb",
		Method:   "GeoRockStrength",
		Title:    "Rock Strength (Mohr-Coulomb)",
		Category: "geomech",
		Description: `Calculate Mohr-Coulomb strength: UCS and the failure stress at a confining stress.

USE WHEN: User asks "what sigma1 fails this rock at 2000 psi confinement", "UCS from cohesion and friction angle".

NOT FOR: Comparing several failure criteria (use geomech_shear_failure_criteria).

PARAMETERS:
- cohesion, friction_angle, effective_stress_min (required)

RETURNS: sigma1 at failure, shear strength, UCS and the passive pressure coefficient q.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_dynamic_to_static_moduli",
		Method:   "GeoDynamicToStatic",
		Title:    "Dynamic to Static Moduli",
		Category: "geomech",
		Description: `Convert log-derived dynamic Young's modulus and Poisson's ratio to static values.

USE WHEN: User asks "static Young's modulus from sonic", "Eissa-Kazi conversion".

NOT FOR: Converting between elastic moduli (use geomech_elastic_moduli_conversion).

PARAMETERS:
- dynamic_youngs and/or dynamic_poisson (one required)
- correlation: eissa_kazi (default), plona_cook or linear
- lithology: sandstone (default), shale or carbonate

RETURNS: Static moduli and the conversion factors.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_breakout_width",
		Method:   "GeoBreakoutWidth",
		Title:    "Breakout Width",
		Category: "geomech",
		Description: `Predict borehole breakout angular width from the Kirsch solution.

USE WHEN: User asks "how wide will the breakouts be", "is this well going to break out at 10 ppg".

NOT FOR: Back-calculating stress from observed breakouts (use geomech_breakout_stress_inversion).

PARAMETERS:
- sigma_h_max, sigma_h_min, pore_pressure, mud_weight, wellbore_azimuth, ucs, friction_angle (required)
- depth: TVD; estimated from hydrostatic pore pressure when omitted

RETURNS: Breakout width in degrees, maximum hoop stress, failure status and the critical mud weight.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_fracture_gradient",
		Method:   "GeoFractureGradient",
		Title:    "Fracture Gradient",
		Category: "geomech",
		Description: `Calculate fracture pressure and gradient with Eaton, Hubbert-Willis or Matthews-Kelly.

USE WHEN: User asks "fracture gradient at 12,000 ft", "maximum mud weight before losses".

NOT FOR: The whole drilling window (use geomech_safe_mud_weight_window).

PARAMETERS:
- depth, vertical_stress, pore_pressure (required)
- method: eaton (default), hubbert_willis or matthews_kelly
- poisson_ratio, ki: Method parameters
- sigma_h_min: Measured Shmin; overrides the method

RETURNS: Fracture pressure (psi), gradient (psi/ft), mud weight equivalent (ppg) and margin over pore pressure.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_safe_mud_weight_window",
		Method:   "GeoMudWeightWindow",
		Title:    "Safe Mud Weight Window",
		Category: "geomech",
		Description: `Calculate the safe drilling mud weight window between pore/collapse pressure and fracture pressure.

USE WHEN: User asks "what mud weight should we drill with", "drilling margin", "mud window".

NOT FOR: Collapse pressure itself (use geomech_critical_mud_weight_collapse).

PARAMETERS:
- pore_pressure, fracture_pressure, depth (required)
- collapse_pressure: Optional lower bound
- safety_margin_overbalance, safety_margin_fracture: ppg (default 0.5)

RETURNS: Minimum and maximum mud weights in ppg, the window width and a status.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_critical_mud_weight_collapse",
		Method:   "GeoCriticalMudWeight",
		Title:    "Critical Collapse Mud Weight",
		Category: "geomech",
		Description: `Calculate the minimum mud weight that prevents shear collapse of the wellbore wall.

USE WHEN: User asks "collapse mud weight", "minimum mud weight for borehole stability", "deviated well collapse".

NOT FOR: Fracture limits (use geomech_fracture_gradient).

PARAMETERS:
- sigma_h_max, sigma_h_min, pore_pressure, cohesion, friction_angle, wellbore_azimuth, depth (required)
- wellbore_inclination: Default 0
- sigma_v: Default from a 144 lb/cuft overburden

RETURNS: Collapse pressure, critical mud weight (ppg), UCS, hoop stress range and whether collapse or pore pressure governs.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_reservoir_compaction",
		Method:   "GeoReservoirCompaction",
		Title:    "Reservoir Compaction",
		Category: "geomech",
		Description: `Estimate uniaxial reservoir compaction and surface subsidence from depletion.

USE WHEN: User asks "how much will the reservoir compact", "subsidence from 2000 psi drawdown".

NOT FOR: Stress changes with depletion (use geomech_stress_path).

PARAMETERS:
- pressure_drop, reservoir_thickness, youngs_modulus, poisson_ratio (required)
- bulk_compressibility: Optional, replaces the elastic estimate
- biot_coefficient, subsidence_ratio: Defaults 1 and 0.65

RETURNS: Compaction, subsidence, strain and the uniaxial compaction coefficient.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_pore_compressibility",
		Method:   "GeoPoreCompressibility",
		Title:    "Pore Compressibility",
		Category: "geomech",
		Description: `Calculate pore volume compressibility from bulk compressibility or elastic moduli.

USE WHEN: User asks "pore volume compressibility", "cp for material balance", "rock compressibility from E".

NOT FOR: Oil or gas compressibility (use oil_compressibility or gas_compressibility).

PARAMETERS:
- porosity (required)
- bulk_compressibility, or youngs_modulus with poisson_ratio
- grain_compressibility: Default 3e-7

RETURNS: Pore and bulk compressibility in 1/psi with a typical range.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_leak_off_pressure",
		Method:   "GeoLeakOff",
		Title:    "Leak-Off Test Interpretation",
		Category: "geomech",
		Description: `Interpret a leak-off test (LOT) or formation integrity test (FIT).

USE WHEN: User asks "what does this LOT tell us", "Shmin from leak-off", "FIT equivalent mud weight".

NOT FOR: Predicting fracture pressure without a test (use geomech_fracture_gradient).

PARAMETERS:
- leak_off_pressure, mud_weight, test_depth, pore_pressure (required)
- test_type: LOT (default) or FIT

RETURNS: Test pressure at depth, Shmin estimate, fracture gradient and EMW.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_hydraulic_fracture_width",
		Method:   "GeoFractureWidth",
		Title:    "Hydraulic Fracture Width",
		Category: "geomech",
		Description: `Calculate hydraulic fracture width with the PKN or KGD model.

USE WHEN: User asks "how wide is the frac", "PKN width", "fracture volume for a treatment".

NOT FOR: Breakdown pressure (use geomech_breakdown_pressure).

PARAMETERS:
- net_pressure, fracture_height, fracture_half_length, youngs_modulus, poisson_ratio (required)
- model: PKN (default) or KGD

RETURNS: Maximum and average width in inches and the fracture compliance.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_stress_polygon",
		Method:   "GeoStressPolygon",
		Title:    "Stress Polygon",
		Category: "geomech",
		Description: `Calculate Zoback stress polygon bounds for normal, strike-slip and reverse faulting.

USE WHEN: User asks "what stresses are frictionally allowed", "stress polygon", "is my stress estimate plausible".

NOT FOR: A single fault's slip tendency (use geomech_fault_stability).

PARAMETERS:
- vertical_stress, pore_pressure (required)
- friction_coefficient: Default 0.6
- sigma_h_min, sigma_h_max: Optional actual stresses to classify

RETURNS: Regime bounds and, when stresses are given, the regime and whether they are within frictional limits.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_sand_production",
		Method:   "GeoSandProduction",
		Title:    "Sand Production Risk",
		Category: "geomech",
		Description: `Assess sanding risk and the critical drawdown before sand production.

USE WHEN: User asks "will this well produce sand", "sanding risk", "need sand control".

NOT FOR: Wellbore collapse while drilling (use geomech_critical_mud_weight_collapse).

PARAMETERS:
- sigma_h_max, sigma_h_min, pore_pressure, cohesion, friction_angle, permeability, porosity (required)
- ucs: Derived from cohesion and friction when 0
- wellbore_radius, perforation_depth: Defaults 0.354 and 0.5 ft

RETURNS: Critical drawdown, risk class, recommendation, thick wall cylinder strength and stress concentration.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_fault_stability",
		Method:   "GeoFaultStability",
		Title:    "Fault Stability",
		Category: "geomech",
		Description: `Evaluate fault slip tendency and the pore pressure that would reactivate it.

USE WHEN: User asks "is this fault critically stressed", "injection pressure to reactivate the fault", "slip tendency".

NOT FOR: Regional stress bounds (use geomech_stress_polygon).

PARAMETERS:
- sigma_1, sigma_3, pore_pressure, fault_strike, fault_dip (required)
- sigma_1_azimuth, friction_coefficient, cohesion: Defaults 0, 0.6, 0

RETURNS: Normal and shear stress on the fault, slip and dilation tendency, critical pore pressure and status.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_deviated_well_stress",
		Method:   "GeoDeviatedWellStress",
		Title:    "Deviated Well Stresses",
		Category: "geomech",
		Description: `Transform in-situ stresses into a deviated wellbore frame and compute Kirsch wall stresses.

USE WHEN: User asks "stresses around a horizontal well", "hoop stress for a 60 degree well", "wellbore frame stress".

NOT FOR: Vertical well breakouts (use geomech_breakout_width).

PARAMETERS:
- sigma_v, sigma_h_max, sigma_h_min, sigma_h_max_azimuth (required)
- well_azimuth, well_inclination, pore_pressure, mud_weight, depth (required)
- poisson_ratio: Default 0.25

RETURNS: Well-frame stresses, principal stresses and wall stress extremes with their angles.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_tensile_failure",
		Method:   "GeoTensileFailure",
		Title:    "Tensile Failure",
		Category: "geomech",
		Description: `Calculate the wellbore pressure that initiates tensile (drilling-induced) fractures.

USE WHEN: User asks "at what mud weight do we fracture the wall", "tensile fracture pressure", "lost circulation threshold".

NOT FOR: Fracture propagation (use geomech_fracture_gradient).

PARAMETERS:
- sigma_h_max, sigma_h_min, pore_pressure (required)
- tensile_strength, thermal_stress: Defaults 0
- depth: Estimated from pore pressure when omitted

RETURNS: Initiation, propagation and reopening pressures with the gradient and mud weight equivalent.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_shear_failure_criteria",
		Method:   "GeoShearFailureCriteria",
		Title:    "Shear Failure Criteria",
		Category: "geomech",
		Description: `Compare Mohr-Coulomb, Drucker-Prager, Mogi-Coulomb, modified Lade and modified Wiebols-Cook.

USE WHEN: User asks "does the intermediate stress matter", "compare failure criteria", "safety factor for this stress state".

NOT FOR: Single-criterion strength (use geomech_rock_strength_mohr_coulomb).

PARAMETERS:
- sigma_1, sigma_2, sigma_3 effective stresses (required, ordered)
- ucs, cohesion, friction_angle (required)
- criteria: Subset to evaluate (default all)

RETURNS: Strength ratio, safety factor and status per criterion plus a summary.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_breakout_stress_inversion",
		Method:   "GeoBreakoutInversion",
		Title:    "Breakout Stress Inversion",
		Category: "geomech",
		Description: `Back-calculate SHmax from an observed breakout width.

USE WHEN: User asks "what SHmax explains 60 degree breakouts", "invert image log breakouts".

NOT FOR: Forward breakout prediction (use geomech_breakout_width).

PARAMETERS:
- breakout_width, sigma_v, pore_pressure, mud_weight, ucs, friction_angle, depth (required)
- sigma_h_min: Estimated from friction when omitted

RETURNS: SHmax, Shmin, the stress ratio and a confidence level.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_breakdown_pressure",
		Method:   "GeoBreakdownPressure",
		Title:    "Breakdown Pressure",
		Category: "geomech",
		Description: `Calculate formation breakdown pressure with Hubbert-Willis or Haimson-Fairhurst.

USE WHEN: User asks "breakdown pressure for the frac job", "minifrac breakdown".

NOT FOR: Fracture width (use geomech_hydraulic_fracture_width).

PARAMETERS:
- sigma_h_max, sigma_h_min, pore_pressure (required)
- tensile_strength: Default 0
- poroelastic_constant: 0 (default) for non-penetrating fluid

RETURNS: Breakdown pressure for impermeable and permeable cases, ISIP, closure pressure and fracture orientation.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_stress_path",
		Method:   "GeoStressPath",
		Title:    "Depletion Stress Path",
		Category: "geomech",
		Description: `Calculate horizontal stress change and fault reactivation tendency during depletion or injection.

USE WHEN: User asks "how does Shmin change with depletion", "stress path coefficient", "injection induced stress change".

NOT FOR: Compaction (use geomech_reservoir_compaction).

PARAMETERS:
- initial_pore_pressure, final_pore_pressure, vertical_stress, initial_sigma_h, poisson_ratio (required)
- biot_coefficient: Default 1
- stress_path_coefficient: Poroelastic value when omitted

RETURNS: Final Shmin, the stress path coefficient, effective stress changes and the fault stability impact.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_thermal_stress",
		Method:   "GeoThermalStress",
		Title:    "Thermal Stress",
		Category: "geomech",
		Description: `Calculate thermally induced stress from heating or cooling of the formation.

USE WHEN: User asks "stress change from cold water injection", "thermal fracturing", "heating effect on hoop stress".

NOT FOR: Tensile initiation without temperature effects (use geomech_tensile_failure).

PARAMETERS:
- temperature_change, youngs_modulus, poisson_ratio (required)
- thermal_expansion_coefficient: Default 6e-6 1/degF
- biot_coefficient, depth: Defaults 1 and 10000 ft

RETURNS: Thermal stress in psi, its mud weight equivalent and the effect on stability and fracturing.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_ucs_from_logs",
		Method:   "GeoUCSFromLogs",
		Title:    "UCS from Logs",
		Category: "geomech",
		Description: `Estimate unconfined compressive strength from sonic, porosity or Young's modulus.

USE WHEN: User asks "UCS from sonic", "rock strength from logs", "McNally correlation".

NOT FOR: UCS from cohesion and friction (use geomech_rock_strength_mohr_coulomb).

PARAMETERS:
- sonic_dt, porosity or youngs_modulus: The input the correlation needs
- lithology: sandstone (default), shale, carbonate or general
- correlation: mcnally (default), horsrud, chang, lal or vernik

RETURNS: UCS and cohesion estimate in psi, the typical range and a confidence level.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "geomech_critical_drawdown",
		Method:   "GeoCriticalDrawdown",
		Title:    "Critical Drawdown",
		Category: "geomech",
		Description: `Calculate the maximum drawdown before wellbore wall shear failure during production.

USE WHEN: User asks "maximum drawdown for this completion", "critical bottomhole flowing pressure".

NOT FOR: Sanding risk classification (use geomech_sand_production).

PARAMETERS:
- sigma_h_max, sigma_h_min, reservoir_pressure, ucs, cohesion, friction_angle (required)
- wellbore_radius: Default 0.354 ft

RETURNS: Critical drawdown, minimum flowing pressure, an 80% safe drawdown and the failure mechanism.`,
		ReadOnly:   true,
		Idempotent: true,
	},
}
