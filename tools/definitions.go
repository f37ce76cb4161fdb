package tools

import "slices"

// AllTools contains all tool specifications for the restoolbox MCP server.
// Tools are organized by category for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = slices.Concat(gasTools, oilTools, inflowTools, simulationTools, brineTools, layerTools, libraryTools, geomechTools)

// ==========================================================================
// GAS PVT TOOLS
// ==========================================================================

var gasTools = []ToolSpec{
	{
		Name:     "gas_z_factor",
		Method:   "GasZFactor",
		Title:    "Gas Z-Factor",
		Category: "gas",
		Description: `Calculate the gas compressibility factor (Z) at reservoir conditions.

USE WHEN: User asks "what is Z at 3000 psia", "gas deviation factor", "real gas correction", or needs Z for volumetrics.

NOT FOR: Pseudo-critical properties alone (use gas_critical_properties). Gas FVF (use gas_formation_volume_factor).

PARAMETERS:
- sg: Gas specific gravity, air = 1 (required)
- degf: Temperature in degF (required)
- p: Pressure in psia, number or array (required)
- method: DAK (default) or HY
- h2s, co2, n2: Inert mole fractions (default 0)

RETURNS: Z-factor (dimensionless), same shape as p.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "gas_critical_properties",
		Method:   "GasCriticalProperties",
		Title:    "Gas Pseudo-Critical Properties",
		Category: "gas",
		Description: `Calculate pseudo-critical temperature and pressure of a natural gas from its gravity and inerts.

USE WHEN: User asks "what are Tpc and Ppc", "pseudo-critical properties for a sour gas", "Sutton correlation".

NOT FOR: Z-factor (use gas_z_factor). Pure component criticals (use get_component_properties).

PARAMETERS:
- sg: Gas specific gravity (required)
- method: PMC (default) or SUT
- h2s, co2, n2: Inert mole fractions (default 0)

RETURNS: tpc (degR) and ppc (psia), plus the method used.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "gas_formation_volume_factor",
		Method:   "GasFVF",
		Title:    "Gas Formation Volume Factor",
		Category: "gas",
		Description: `Calculate the gas formation volume factor Bg.

USE WHEN: User asks "convert surface gas to reservoir volume", "what is Bg", "reservoir cubic feet per scf".

NOT FOR: Oil FVF (use oil_formation_volume_factor).

PARAMETERS:
- sg, degf, p: Gas gravity, temperature (degF), pressure (psia, number or array) (required)
- zmethod: DAK (default) or HY
- h2s, co2, n2: Inert mole fractions

RETURNS: Bg in rcf/scf, same shape as p.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "gas_viscosity",
		Method:   "GasViscosity",
		Title:    "Gas Viscosity",
		Category: "gas",
		Description: `Calculate gas viscosity with the Lee-Gonzalez-Eakin correlation.

USE WHEN: User asks "gas viscosity at reservoir conditions", "mu_g", "LGE viscosity".

NOT FOR: Oil viscosity (use oil_viscosity). Brine viscosity (use calculate_brine_properties).

PARAMETERS:
- sg, degf, p: Gas gravity, temperature (degF), pressure (psia, number or array) (required)
- zmethod: DAK (default) or HY
- h2s, co2, n2: Inert mole fractions

RETURNS: Viscosity in cP, same shape as p.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "gas_density",
		Method:   "GasDensity",
		Title:    "Gas Density",
		Category: "gas",
		Description: `Calculate gas density from the real gas law.

USE WHEN: User asks "gas density at 5000 psia", "rho_g", "in-situ gas density".

NOT FOR: Gas gravity from a pressure gradient (use gas_sg_from_gradient).

PARAMETERS:
- sg, degf, p: Gas gravity, temperature (degF), pressure (psia, number or array) (required)
- zmethod: DAK (default) or HY
- h2s, co2, n2: Inert mole fractions

RETURNS: Density in lb/cuft, same shape as p.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "gas_compressibility",
		Method:   "GasCompressibility",
		Title:    "Gas Compressibility",
		Category: "gas",
		Description: `Calculate isothermal gas compressibility cg.

USE WHEN: User asks "gas compressibility", "cg for material balance", "total compressibility gas term".

NOT FOR: Z-factor (use gas_z_factor). Oil compressibility (use oil_compressibility).

PARAMETERS:
- sg, degf, p: Gas gravity, temperature (degF), pressure (psia, number or array) (required)
- zmethod: DAK (default) or HY
- h2s, co2, n2: Inert mole fractions

RETURNS: cg in 1/psi, same shape as p.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "gas_pseudopressure",
		Method:   "GasPseudopressure",
		Title:    "Gas Pseudopressure",
		Category: "gas",
		Description: `Calculate the real gas pseudopressure difference m(p2) - m(p1).

USE WHEN: User asks "real gas pseudopressure", "m(p) for well test analysis", "pseudopressure between two pressures".

NOT FOR: Gas rates (use gas_rate_radial, which integrates pseudopressure itself).

PARAMETERS:
- sg, degf: Gas gravity and temperature (required)
- p1, p2: Lower and upper pressures in psia, number or array (required)
- zmethod: DAK (default) or HY
- h2s, co2, n2: Inert mole fractions

RETURNS: Pseudopressure difference in psia^2/cP.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "gas_pressure_from_pz",
		Method:   "GasPressureFromPZ",
		Title:    "Pressure from P/Z",
		Category: "gas",
		Description: `Solve for pressure given a p/z value.

USE WHEN: User asks "what pressure gives p/z of 2500", "invert p/z from material balance", "reservoir pressure from a p/z plot".

NOT FOR: Computing Z at a known pressure (use gas_z_factor).

PARAMETERS:
- pz: p/z in psia, number or array (required)
- sg, degf: Gas gravity and temperature (required)
- zmethod: DAK (default) or HY
- h2s, co2, n2: Inert mole fractions

RETURNS: Pressure in psia, same shape as pz.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "gas_sg_from_gradient",
		Method:   "GasSGFromGradient",
		Title:    "Gas SG from Gradient",
		Category: "gas",
		Description: `Infer gas specific gravity from a measured pressure gradient.

USE WHEN: User asks "what gas gravity matches a 0.08 psi/ft gradient", "gas SG from an RFT gradient".

NOT FOR: Gas SG from composition (use gas_sg_from_composition).

PARAMETERS:
- grad: Gradient in psi/ft, number or array (required)
- degf: Temperature in degF (required)
- p: Pressure in psia (required)

RETURNS: Gas specific gravity, same shape as grad.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "gas_water_content",
		Method:   "GasWaterContent",
		Title:    "Gas Water Content",
		Category: "gas",
		Description: `Calculate saturated water content of natural gas (Bukacek).

USE WHEN: User asks "how much water vapour is in the gas", "water content lb/MMscf", "dehydration load".

NOT FOR: Brine properties (use calculate_brine_properties).

PARAMETERS:
- p: Pressure in psia, number or array (required)
- degf: Temperature in degF, number or array (required)

RETURNS: Water content in lb/MMscf.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "gas_sg_from_composition",
		Method:   "GasSGFromComposition",
		Title:    "Gas SG from Composition",
		Category: "gas",
		Description: `Calculate mixture gas gravity from hydrocarbon molecular weight and inert fractions.

USE WHEN: User asks "gas gravity for 20% CO2 and hydrocarbon MW 19", "mixture SG of a gas with hydrogen".

NOT FOR: Gas SG from a gradient (use gas_sg_from_gradient).

PARAMETERS:
- hc_mw: Hydrocarbon molecular weight (required)
- co2, h2s, n2, h2: Mole fractions (default 0)

RETURNS: Mixture SG, mixture MW and the composition breakdown.`,
		ReadOnly:   true,
		Idempotent: true,
	},
}

// ==========================================================================
// OIL PVT TOOLS
// ==========================================================================

var oilTools = []ToolSpec{
	{
		Name:     "oil_bubble_point",
		Method:   "OilBubblePoint",
		Title:    "Oil Bubble Point",
		Category: "oil",
		Description: `Calculate bubble point pressure from oil gravity, temperature and solution GOR.

USE WHEN: User asks "what is the bubble point", "saturation pressure of this oil", "Pb from Rsb".

NOT FOR: Rsb from a known Pb (use oil_rs_at_bubble_point).

PARAMETERS:
- api: Oil gravity in degrees API (required)
- degf: Reservoir temperature (required)
- rsb: Solution GOR at bubble point, scf/stb (required)
- sg_g: Gas gravity (required)
- method: VALMC (default), STAN or VELAR

RETURNS: Bubble point pressure in psia.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "oil_solution_gor",
		Method:   "OilSolutionGOR",
		Title:    "Oil Solution GOR",
		Category: "oil",
		Description: `Calculate solution gas-oil ratio Rs at one or more pressures.

USE WHEN: User asks "how much gas is dissolved at 2000 psia", "Rs below the bubble point", "solution GOR curve".

NOT FOR: Rsb alone from a bubble point (use oil_rs_at_bubble_point).

PARAMETERS:
- api, degf, sg_g: Oil gravity, temperature and gas gravity (required)
- p: Pressure in psia, number or array (required)
- pb or rsb: One of them is required; the other is derived
- method: VELAR (default), STAN or VALMC

RETURNS: Rs in scf/stb, equal to rsb at and above the bubble point.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "oil_formation_volume_factor",
		Method:   "OilFVF",
		Title:    "Oil Formation Volume Factor",
		Category: "oil",
		Description: `Calculate oil formation volume factor Bo, including undersaturated shrinkage above Pb.

USE WHEN: User asks "what is Bo", "reservoir barrels per stock tank barrel", "oil shrinkage".

NOT FOR: Gas FVF (use gas_formation_volume_factor). A whole PVT table (use generate_black_oil_table).

PARAMETERS:
- api, degf, sg_g: Oil gravity, temperature and gas gravity (required)
- p: Pressure in psia, number or array (required)
- pb or rsb: One of them is required
- rs: Solution GOR at p (optional, computed when omitted)
- method: MCAIN (default) or STAN

RETURNS: Bo in rb/stb.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "oil_viscosity",
		Method:   "OilViscosity",
		Title:    "Oil Viscosity",
		Category: "oil",
		Description: `Calculate live oil viscosity (Beggs-Robinson, Vasquez-Beggs above Pb).

USE WHEN: User asks "oil viscosity at reservoir conditions", "mu_o", "live oil viscosity".

NOT FOR: Gas viscosity (use gas_viscosity).

PARAMETERS:
- api, degf: Oil gravity and temperature (required)
- p: Pressure in psia, number or array (required)
- pb or rsb: One of them is required
- rs, sg_g: Optional; derived when omitted
- method: BR (default)

RETURNS: Viscosity in cP.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "oil_density",
		Method:   "OilDensity",
		Title:    "Oil Density",
		Category: "oil",
		Description: `Calculate live oil density by mass balance from Rs and Bo.

USE WHEN: User asks "in-situ oil density", "oil gradient", "rho_o at reservoir pressure".

NOT FOR: API-SG conversion (use oil_sg_from_api).

PARAMETERS:
- p: Pressure in psia, number or array (required)
- api, degf, sg_g: Oil gravity, temperature, gas gravity (required)
- rs, bo: Solution GOR and FVF matching p (required)

RETURNS: Density in lb/cuft.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "oil_compressibility",
		Method:   "OilCompressibility",
		Title:    "Oil Compressibility",
		Category: "oil",
		Description: `Calculate undersaturated oil compressibility co.

USE WHEN: User asks "oil compressibility above the bubble point", "co for material balance".

NOT FOR: Gas compressibility (use gas_compressibility). Pore compressibility (use geomech_pore_compressibility).

PARAMETERS:
- p: Pressure in psia, number or array (required)
- api, degf, sg_g: Oil gravity, temperature, gas gravity (required)
- pb or rsb: One of them is required

RETURNS: co in 1/psi.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "oil_api_from_sg",
		Method:   "OilAPIFromSG",
		Title:    "API from Specific Gravity",
		Category: "oil",
		Description: `Convert oil specific gravity to API gravity.

USE WHEN: User asks "what API is SG 0.85", "convert specific gravity to API".

NOT FOR: The reverse conversion (use oil_sg_from_api).

PARAMETERS:
- sg: Oil specific gravity, number or array (required)

RETURNS: API gravity in degrees.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "oil_sg_from_api",
		Method:   "OilSGFromAPI",
		Title:    "Specific Gravity from API",
		Category: "oil",
		Description: `Convert API gravity to oil specific gravity.

USE WHEN: User asks "what is the SG of a 35 API oil", "convert API to specific gravity".

NOT FOR: The reverse conversion (use oil_api_from_sg). Gas gravity (use the gas tools).

PARAMETERS:
- api: API gravity, number or array (required)

RETURNS: Specific gravity relative to water.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "generate_black_oil_table",
		Method:   "OilBlackOilTable",
		Title:    "Black Oil PVT Table",
		Category: "oil",
		Description: `Generate a complete black oil PVT table (Rs, Bo, uo, density, co, Bg, ug, Z) over a pressure range.

USE WHEN: User asks "build a PVT table", "make PVTO for ECLIPSE", "black oil table for simulation".

NOT FOR: A single property at one pressure (use the individual oil_ or gas_ tools).

PARAMETERS:
- pi, api, degf, sg_g: Initial pressure, oil gravity, temperature, gas gravity (required)
- pmax: Maximum table pressure (default 1.5 x pi)
- pb or rsb: Optional, the other is derived
- nrows: Rows (default 50, max 200)
- export: Include PVTO, PVDG and DENSITY keyword text
- pb_method, rs_method, bo_method, uo_method: Correlation overrides

RETURNS: Table rows, the bubble point, Rsb and optional ECLIPSE keyword text.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "oil_rs_at_bubble_point",
		Method:   "OilRsAtBubblePoint",
		Title:    "Rs at Bubble Point",
		Category: "oil",
		Description: `Solve for solution GOR at the bubble point, or the bubble point from Rsb.

USE WHEN: User asks "what Rsb gives Pb = 2500", "solution GOR at saturation".

NOT FOR: Rs at pressures below Pb (use oil_solution_gor).

PARAMETERS:
- api, degf, sg_g: Oil gravity, temperature, gas gravity (required)
- pb: Bubble point (psia), or rsb (scf/stb); one is required
- method: VALMC (default), STAN or VELAR

RETURNS: Rsb and Pb together.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "evolved_gas_sg",
		Method:   "OilEvolvedGasSG",
		Title:    "Evolved Gas Gravity",
		Category: "oil",
		Description: `Calculate the specific gravity of gas liberated below the bubble point.

USE WHEN: User asks "gravity of the evolved gas at 1500 psia", "liberated gas SG".

NOT FOR: Stock tank gas gravity (use stock_tank_gas_sg).

PARAMETERS:
- api, degf, sg_g: Oil gravity, temperature, separator gas gravity (required)
- p: Pressure, number or array (required)
- psep: Separator pressure (default 100)
- rsb: Solution GOR at bubble point (default 800)

RETURNS: Evolved gas SG.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "stock_tank_gas_sg",
		Method:   "OilStockTankGasSG",
		Title:    "Stock Tank Gas Gravity",
		Category: "oil",
		Description: `Estimate stock tank vent gas gravity from separator conditions.

USE WHEN: User asks "stock tank gas gravity", "tank vent gas SG".

NOT FOR: Evolved gas in the reservoir (use evolved_gas_sg).

PARAMETERS:
- api, sg_g: Oil gravity and separator gas gravity (required)
- psep, rsp, degf_sp: Separator pressure, GOR and temperature (defaults 100, 720, 100)

RETURNS: Stock tank gas SG.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "oil_sg_from_jacoby",
		Method:   "OilJacobySG",
		Title:    "Jacoby Specific Gravity",
		Category: "oil",
		Description: `Estimate liquid specific gravity from molecular weight and the Jacoby aromaticity factor.

USE WHEN: User asks "SG of a C7+ fraction with MW 180", "Jacoby aromaticity".

NOT FOR: Critical properties of a fraction (use oil_twu_critical_properties).

PARAMETERS:
- mw: Molecular weight, number or array (required)
- ja: Aromaticity 0-1, number or array (required)

RETURNS: Specific gravity relative to water.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "oil_twu_critical_properties",
		Method:   "OilTwu",
		Title:    "Twu Critical Properties",
		Category: "oil",
		Description: `Calculate critical properties of a petroleum fraction with the Twu (1984) correlation.

USE WHEN: User asks "Tc and Pc of a plus fraction", "characterize C7+ with Twu".

NOT FOR: Named pure components (use get_component_properties).

PARAMETERS:
- sg: Specific gravity, number or array (required)
- mw or tb: Molecular weight, or normal boiling point in degR (one required)
- damp: Newton step scale for the boiling point solve

RETURNS: Tb, Tc, Pc, Vc and MW, same shape as sg.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "weighted_average_gas_sg",
		Method:   "OilWeightedGasSG",
		Title:    "Weighted Average Gas SG",
		Category: "oil",
		Description: `Combine separator and stock tank gas gravities into a GOR-weighted average.

USE WHEN: User asks "total gas gravity", "weighted average of separator and tank gas".

NOT FOR: Checking consistency of given gravities (use validate_gas_gravities).

PARAMETERS:
- sg_sp, rsp: Separator gas gravity and GOR (required)
- sg_st, rst: Stock tank gas gravity and GOR (required)

RETURNS: Weighted gas SG, each stream's contribution and the total GOR.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "stock_tank_incremental_gor",
		Method:   "OilStockTankGOR",
		Title:    "Stock Tank Incremental GOR",
		Category: "oil",
		Description: `Estimate gas liberated between the separator and the stock tank.

USE WHEN: User asks "how much gas flashes in the tank", "stock tank GOR".

NOT FOR: Reservoir solution GOR (use oil_solution_gor).

PARAMETERS:
- psp, degf_sp: Separator pressure and temperature (required)
- api: Oil gravity (required)

RETURNS: Incremental stock tank GOR in scf/stb.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "validate_gas_gravities",
		Method:   "OilCheckGasSGs",
		Title:    "Validate Gas Gravities",
		Category: "oil",
		Description: `Check and complete a set of separator, stock tank and weighted gas gravities.

USE WHEN: User asks "are these gas gravities consistent", "derive the missing separator SG".

NOT FOR: Just averaging known gravities (use weighted_average_gas_sg).

PARAMETERS:
- rst, rsp, sg_st: Stock tank GOR, separator GOR and stock tank SG (required)
- sg_g, sg_sp: Weighted and separator SG; either may be omitted and is derived

RETURNS: The weighted and separator gravities, which one was derived, and a note.`,
		ReadOnly:   true,
		Idempotent: true,
	},
}

// ==========================================================================
// INFLOW TOOLS
// ==========================================================================

var inflowTools = []ToolSpec{
	{
		Name:     "oil_rate_radial",
		Method:   "InflowOilRadial",
		Title:    "Oil Rate (Radial)",
		Category: "inflow",
		Description: `Calculate steady-state oil rate for radial flow to a vertical well, with optional Vogel IPR.

USE WHEN: User asks "what rate will this well make", "IPR curve", "oil productivity at 1500 psi flowing".

NOT FOR: Linear flow geometry (use oil_rate_linear). Gas wells (use gas_rate_radial).

PARAMETERS:
- pi, pb, api, degf, sg_g: Reservoir pressure, bubble point, oil and gas gravity, temperature (required)
- psd: Flowing sandface pressure, number or array (required)
- h, k, re, rw: Thickness, permeability, drainage and wellbore radius (required)
- s: Skin (default 0)
- vogel: Apply Vogel below the bubble point

RETURNS: Oil rate in STB/d, same shape as psd.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "oil_rate_linear",
		Method:   "InflowOilLinear",
		Title:    "Oil Rate (Linear)",
		Category: "inflow",
		Description: `Calculate steady-state oil rate for linear flow.

USE WHEN: User asks "oil rate through a core", "linear flow rate across a block".

NOT FOR: Radial flow to a well (use oil_rate_radial).

PARAMETERS:
- pi, pb, api, degf, sg_g: Pressure, bubble point, gravities, temperature (required)
- psd: Downstream pressure, number or array (required)
- h, k, area, length: Geometry and permeability (required)

RETURNS: Oil rate in STB/d.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "gas_rate_radial",
		Method:   "InflowGasRadial",
		Title:    "Gas Rate (Radial)",
		Category: "inflow",
		Description: `Calculate gas rate for radial flow using real gas pseudopressure.

USE WHEN: User asks "gas well deliverability", "gas rate at a given flowing pressure", "gas IPR".

NOT FOR: Oil wells (use oil_rate_radial).

PARAMETERS:
- pi, sg, degf: Reservoir pressure, gas gravity, temperature (required)
- psd: Flowing sandface pressure, number or array (required)
- h, k, re, rw: Geometry and permeability (required)
- s: Skin (default 0)
- h2s, co2, n2: Inert mole fractions

RETURNS: Gas rate in MSCF/d.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "gas_rate_linear",
		Method:   "InflowGasLinear",
		Title:    "Gas Rate (Linear)",
		Category: "inflow",
		Description: `Calculate gas rate for linear flow using real gas pseudopressure.

USE WHEN: User asks "gas flow through a fracture face", "linear gas rate".

NOT FOR: Radial well inflow (use gas_rate_radial).

PARAMETERS:
- pi, sg, degf: Pressure, gas gravity, temperature (required)
- psd: Downstream pressure, number or array (required)
- h, k, area, length: Geometry and permeability (required)
- h2s, co2, n2: Inert mole fractions

RETURNS: Gas rate in MSCF/d.`,
		ReadOnly:   true,
		Idempotent: true,
	},
}

// ==========================================================================
// SIMULATION TOOLS
// ==========================================================================

var simulationTools = []ToolSpec{
	{
		Name:     "generate_rel_perm_table",
		Method:   "SimRelPermTable",
		Title:    "Relative Permeability Table",
		Category: "simtools",
		Description: `Generate SWOF, SGOF or SGWFN relative permeability tables from Corey or LET curves.

USE WHEN: User asks "make a SWOF table", "Corey rel perm curves", "LET relative permeability for the simulator".

NOT FOR: Aquifer tables (use generate_aquifer_influence).

PARAMETERS:
- krtable: SWOF (default), SGOF or SGWFN
- krfamily: LET (default) or COR
- rows: Table rows (default 25)
- swc, swcr, sorw, sorg, sgc: End point saturations
- kromax, krwmax, krgmax: End point relative permeabilities
- no, nw, ng: Corey exponents; Lo/Eo/To, Lw/Ew/Tw, Lg/Eg/Tg: LET parameters

RETURNS: Table rows and the table as ECLIPSE keyword text.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "generate_aquifer_influence",
		Method:   "SimAquiferInfluence",
		Title:    "Aquifer Influence Table",
		Category: "simtools",
		Description: `Generate Van Everdingen-Hurst dimensionless aquifer influence tables (AQUTAB).

USE WHEN: User asks "Carter-Tracy influence function", "AQUTAB for a finite aquifer", "pD versus tD".

NOT FOR: Relative permeability tables (use generate_rel_perm_table).

PARAMETERS:
- res: Dimensionless radius reD (default 10)
- start, end, rows: Dimensionless time range and row count
- infl: pot (pD, default) or press (cumulative influx)
- aqunum: AQUTAB table number
- ei, piston, td_scale: Infinite-acting and boundary options

RETURNS: tD and influence rows plus AQUTAB keyword text.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "rachford_rice_flash",
		Method:   "SimRachfordRice",
		Title:    "Rachford-Rice Flash",
		Category: "simtools",
		Description: `Solve the Rachford-Rice equation for vapour fraction and phase compositions.

USE WHEN: User asks "flash this feed with these K-values", "vapour fraction", "two-phase split".

NOT FOR: CO2-brine equilibrium (use co2_brine_mutual_solubility).

PARAMETERS:
- zis: Feed mole fractions (required)
- Kis: Equilibrium ratios, one per component (required)

RETURNS: Vapour fraction, liquid and vapour compositions, phase state and iteration count.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "extract_eclipse_problem_cells",
		Method:   "SimProblemCells",
		Title:    "Extract Problem Cells",
		Category: "simtools",
		Description: `Scan an ECLIPSE PRT or Intersect log for convergence problem cells.

USE WHEN: User asks "which cells are causing timestep cuts", "find problem cells in the PRT file".

NOT FOR: Checking deck includes (use validate_simulation_deck).

PARAMETERS:
- filename: Path to the PRT or log file (required, must be inside the data directory when one is set)
- silent: Skip the server-side summary (default true)

RETURNS: Problem cells ranked by occurrence with their counts.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "validate_simulation_deck",
		Method:   "SimValidateDeck",
		Title:    "Validate Simulation Deck",
		Category: "simtools",
		Description: `Check that every INCLUDE file referenced by a simulation deck exists, optionally zipping the deck.

USE WHEN: User asks "are all include files present", "package this deck", "zip the model for sharing".

NOT FOR: Log analysis (use extract_eclipse_problem_cells).

PARAMETERS:
- files2scrape: Main DATA files (required)
- tozip: Write a zip archive of the deck
- console_summary: Log a summary on the server (default true)

RETURNS: Found and missing include files, and the archive path when zipped.`,
		Idempotent: true,
	},
}

// ==========================================================================
// BRINE TOOLS
// ==========================================================================

var brineTools = []ToolSpec{
	{
		Name:     "calculate_brine_properties",
		Method:   "BrineProperties",
		Title:    "Brine Properties",
		Category: "brine",
		Description: `Calculate brine density, FVF, viscosity and compressibility with dissolved gas corrections.

USE WHEN: User asks "formation water properties", "Bw and water viscosity", "brine density at 20 wt%".

NOT FOR: CO2 solubility in brine (use co2_brine_mutual_solubility).

PARAMETERS:
- p, degf: Pressure and temperature, number or array (required)
- wt: Salinity in wt% NaCl
- ch4, co2: Dissolved gas saturation fractions

RETURNS: Bw, density, viscosity, compressibility and solution GOR per input point.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "co2_brine_mutual_solubility",
		Method:   "BrineCO2",
		Title:    "CO2-Brine Mutual Solubility",
		Category: "brine",
		Description: `Calculate CO2-brine mutual solubilities and saturated phase properties (Spycher-Pruess).

USE WHEN: User asks "CO2 solubility in brine", "CCS storage brine properties", "water content of CO2".

NOT FOR: Hydrocarbon gas in brine (use calculate_brine_properties).

PARAMETERS:
- pres, temp: Pressure and temperature (required)
- ppm: Salinity in ppm NaCl
- metric: Use bar and degC
- cw_sat: Also compute saturated compressibility

RETURNS: Mole fractions of both phases, Rs, density, viscosity and FVF of the saturated brine.`,
		ReadOnly:   true,
		Idempotent: true,
	},
}

// ==========================================================================
// LAYER HETEROGENEITY TOOLS
// ==========================================================================

var layerTools = []ToolSpec{
	{
		Name:     "lorenz_to_beta",
		Method:   "LayerLorenzToBeta",
		Title:    "Lorenz to Beta",
		Category: "layer",
		Description: `Convert a Lorenz coefficient to the Lorenz curve shape parameter B.

USE WHEN: User asks "what B matches Lorenz 0.6", "curve parameter from heterogeneity".

NOT FOR: The reverse conversion (use beta_to_lorenz).

PARAMETERS:
- value: Lorenz coefficient 0-1 (required)

RETURNS: B.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "beta_to_lorenz",
		Method:   "LayerBetaToLorenz",
		Title:    "Beta to Lorenz",
		Category: "layer",
		Description: `Convert the Lorenz curve shape parameter B to a Lorenz coefficient.

USE WHEN: User asks "what Lorenz coefficient does B = 5 give".

NOT FOR: The reverse conversion (use lorenz_to_beta).

PARAMETERS:
- value: B (required)

RETURNS: Lorenz coefficient.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "lorenz_from_flow_fractions",
		Method:   "LayerLorenzFromFractions",
		Title:    "Lorenz from Flow Fractions",
		Category: "layer",
		Description: `Calculate the Lorenz coefficient from layer flow and storage capacity fractions.

USE WHEN: User asks "how heterogeneous is this layering", "Lorenz from kh and phi-h".

NOT FOR: Generating layers (use generate_layer_distribution).

PARAMETERS:
- flow_frac: kh fraction per layer (required)
- storage_frac: phi-h fraction per layer (required)

RETURNS: Lorenz coefficient and B.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "flow_fractions_from_lorenz",
		Method:   "LayerFractionsFromLorenz",
		Title:    "Flow Fractions from Lorenz",
		Category: "layer",
		Description: `Generate the cumulative Lorenz curve for a given Lorenz coefficient.

USE WHEN: User asks "plot the Lorenz curve", "flow capacity versus storage capacity for Lorenz 0.5".

NOT FOR: Layer permeabilities (use generate_layer_distribution).

PARAMETERS:
- value: Lorenz coefficient (required)

RETURNS: Cumulative storage and flow capacity fractions.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "generate_layer_distribution",
		Method:   "LayerDistribution",
		Title:    "Layer Permeability Distribution",
		Category: "layer",
		Description: `Generate layer permeabilities honouring a Lorenz coefficient.

USE WHEN: User asks "split the reservoir into 10 layers", "permeability per layer for Lorenz 0.7".

NOT FOR: Measuring heterogeneity of existing layers (use lorenz_from_flow_fractions).

PARAMETERS:
- lorenz: Lorenz coefficient (required)
- nlay: Number of layers (required)
- h, k_avg: Thickness and average permeability (default 1)
- normalize: Report fractions (default true)

RETURNS: Per-layer thickness and permeability plus summary statistics.`,
		ReadOnly:   true,
		Idempotent: true,
	},
}

// ==========================================================================
// COMPONENT LIBRARY TOOLS
// ==========================================================================

var libraryTools = []ToolSpec{
	{
		Name:     "get_component_properties",
		Method:   "LibraryComponent",
		Title:    "Component Properties",
		Category: "library",
		Description: `Look up critical properties and EOS parameters of a pure component or single carbon number fraction.

USE WHEN: User asks "critical temperature of methane", "acentric factor of CO2", "properties of C10".

NOT FOR: Petroleum fractions characterised by MW and SG (use oil_twu_critical_properties).

PARAMETERS:
- component: Name or alias, e.g. C1, Methane, CO2, nC4, C7 (required)
- eos: PR79 (default), PR77, SRK or RK

RETURNS: MW, Tc, Pc, Vc, Zc, acentric factor and EOS constants. Unknown names return suggestions.`,
		ReadOnly:   true,
		Idempotent: true,
	},
}
