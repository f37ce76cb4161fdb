package brine

import "github.com/olgasafonova/restoolbox-mcp-server/internal/num"

// BrinePropertiesResult holds McCain brine properties, each mirroring the
// shape of the pressure and temperature inputs
type BrinePropertiesResult struct {
	FVF             num.Values          `json:"formation_volume_factor_rb_stb"`
	Density         num.Values          `json:"density_lb_cuft"`
	Viscosity       num.Values          `json:"viscosity_cp"`
	Compressibility num.Values          `json:"compressibility_1_psi"`
	SolutionGOR     num.Values          `json:"solution_gor_scf_stb"`
	Method          string              `json:"method"`
	SalinityWt      float64             `json:"salinity_wt_percent"`
	DissolvedGasSat float64             `json:"dissolved_gas_saturation"`
	Inputs          BrinePropertiesArgs `json:"inputs"`
	Note            string              `json:"note,omitempty"`
}

// MoleFractions is a CO2/H2O pair of mole fractions
type MoleFractions struct {
	CO2 float64 `json:"co2"`
	H2O float64 `json:"h2o"`
}

// PhaseEquilibrium describes the aqueous and CO2-rich phase compositions
type PhaseEquilibrium struct {
	Aqueous  MoleFractions `json:"aqueous_phase_mole_fractions"`
	Vapor    MoleFractions `json:"vapor_phase_mole_fractions"`
	Salt     float64       `json:"salt_mole_fraction"`
	Molality float64       `json:"co2_molality_mol_kg"`
	Phase    string        `json:"co2_rich_phase_state" jsonschema:"gas or liquid"`
}

// CO2Densities are in g/cm³
type CO2Densities struct {
	Gas        float64 `json:"co2_rich_gas_gm_cm3"`
	Saturated  float64 `json:"brine_co2_saturated_gm_cm3"`
	Pure       float64 `json:"brine_pure_gm_cm3"`
	FreshWater float64 `json:"fresh_water_gm_cm3"`
}

type CO2Viscosities struct {
	Saturated  float64 `json:"brine_co2_saturated_cP"`
	Pure       float64 `json:"brine_pure_cP"`
	FreshWater float64 `json:"fresh_water_cP"`
}

type CO2FVFs struct {
	Saturated  float64 `json:"bw_co2_saturated"`
	Pure       float64 `json:"bw_pure"`
	FreshWater float64 `json:"bw_fresh"`
}

type CO2Compressibility struct {
	Undersaturated float64 `json:"undersaturated_per_bar_or_psi"`
	Saturated      float64 `json:"saturated_per_bar_or_psi,omitempty" jsonschema:"Only when cw_sat is set"`
}

// CO2BrineResult is the result of a CO2-brine mutual solubility calculation
type CO2BrineResult struct {
	PhaseEquilibrium PhaseEquilibrium   `json:"phase_equilibrium"`
	Densities        CO2Densities       `json:"densities"`
	Viscosities      CO2Viscosities     `json:"viscosities"`
	Viscosibility    float64            `json:"viscosibility_per_bar_or_psi"`
	FVF              CO2FVFs            `json:"formation_volume_factors"`
	SolutionGOR      float64            `json:"solution_gor_co2" jsonschema:"sm3/sm3 if metric, scf/stb otherwise"`
	Compressibility  CO2Compressibility `json:"compressibility"`
	Method           string             `json:"method"`
	Units            string             `json:"units" jsonschema:"metric or field"`
	Inputs           CO2BrineArgs       `json:"inputs"`
	Note             string             `json:"note"`
}
