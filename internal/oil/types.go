package oil

import "github.com/olgasafonova/restoolbox-mcp-server/internal/num"

// RsAtBubblePointResult pairs a bubble point with its solution GOR
type RsAtBubblePointResult struct {
	Value           float64             `json:"value" jsonschema:"Solution GOR at bubble point (scf/stb)"`
	BubblePointPsia float64             `json:"bubble_point_psia"`
	Method          string              `json:"method"`
	Units           string              `json:"units"`
	Inputs          RsAtBubblePointArgs `json:"inputs"`
}

// TableSummary holds the bubble point properties of a black oil table
type TableSummary struct {
	BubblePointPsia      float64 `json:"bubble_point_psia"`
	SolutionGORScfStb    float64 `json:"solution_gor_scf_stb"`
	OilFVFAtPbRbStb      float64 `json:"oil_fvf_at_pb_rb_stb"`
	OilViscosityAtPbCp   float64 `json:"oil_viscosity_at_pb_cp"`
	OilDensityAtPbLbCuft float64 `json:"oil_density_at_pb_lb_cuft"`
	GasSG                float64 `json:"gas_sg"`
	Rows                 int     `json:"rows"`
}

// TableMethods records the correlations used to build a table
type TableMethods struct {
	PbMethod string `json:"pb_method"`
	RsMethod string `json:"rs_method"`
	BoMethod string `json:"bo_method"`
	UoMethod string `json:"uo_method"`
}

// TableExport carries ECLIPSE include text for a black oil table
type TableExport struct {
	PVTO    string `json:"pvto" jsonschema:"PVTO keyword (live oil)"`
	PVDG    string `json:"pvdg" jsonschema:"PVDG keyword (dry gas)"`
	Density string `json:"density" jsonschema:"DENSITY keyword (stock tank densities)"`
}

// BlackOilTableResult is the result of black oil table generation
type BlackOilTableResult struct {
	Table   []TableRow        `json:"table"`
	Summary TableSummary      `json:"summary"`
	Columns []string          `json:"columns"`
	Methods TableMethods      `json:"methods"`
	Inputs  BlackOilTableArgs `json:"inputs"`
	Export  *TableExport      `json:"export,omitempty"`
}

// TwuResult holds Twu critical properties, each mirroring the input shape
type TwuResult struct {
	SpecificGravity  num.Values `json:"specific_gravity"`
	MolecularWeight  num.Values `json:"molecular_weight"`
	BoilingPoint     num.Values `json:"boiling_point_degR"`
	CriticalTemp     num.Values `json:"critical_temperature_degR"`
	CriticalPressure num.Values `json:"critical_pressure_psia"`
	CriticalVolume   num.Values `json:"critical_volume_cuft_lbmol"`
	Method           string     `json:"method"`
	Inputs           TwuArgs    `json:"inputs"`
	Note             string     `json:"note"`
}

// WeightedGasSGResult is the result of a GOR-weighted gas gravity
type WeightedGasSGResult struct {
	WeightedAverageSG     float64           `json:"weighted_average_sg"`
	SeparatorContribution float64           `json:"separator_contribution"`
	StockTankContribution float64           `json:"stock_tank_contribution"`
	TotalGOR              float64           `json:"total_gor_scf_stb"`
	Method                string            `json:"method"`
	Units                 string            `json:"units"`
	Inputs                WeightedGasSGArgs `json:"inputs"`
}

// StockTankGORResult is the result of the incremental stock tank GOR
type StockTankGORResult struct {
	StockTankGOR float64          `json:"stock_tank_gor_scf_stb"`
	Method       string           `json:"method"`
	Units        string           `json:"units"`
	Inputs       StockTankGORArgs `json:"inputs"`
	Note         string           `json:"note"`
}

// CheckGasSGsResult is the result of a gas gravity consistency check
type CheckGasSGsResult struct {
	SGg     float64         `json:"sg_g_weighted_average"`
	SGsp    float64         `json:"sg_sp_separator"`
	Derived string          `json:"derived" jsonschema:"Which gravity was derived: sg_g, sg_sp or none"`
	Method  string          `json:"method"`
	Units   string          `json:"units"`
	Inputs  CheckGasSGsArgs `json:"inputs"`
	Note    string          `json:"note"`
}
