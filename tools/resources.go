package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/olgasafonova/restoolbox-mcp-server/internal/brine"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/gas"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/geomech"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/oil"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/simtools"
)

// Resource URIs
const (
	URIVersion   = "config://version"
	URIUnits     = "config://units"
	URIMethods   = "config://methods"
	URIConstants = "config://constants"
	URIOverview  = "help://overview"
)

// ServerInfo identifies the running server in config://version
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type versionInfo struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	ToolCount int    `json:"tool_count"`
}

type unitSystem struct {
	System string            `json:"system"`
	Units  map[string]string `json:"units"`
}

// MethodCode describes one correlation code accepted by a tool.
type MethodCode struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Recommended bool   `json:"recommended,omitempty"`
	Unsupported bool   `json:"unsupported,omitempty"`
}

type constant struct {
	Value float64 `json:"value"`
	Units string  `json:"units"`
}

var units = unitSystem{
	System: "Field Units (US Oilfield)",
	Units: map[string]string{
		"pressure":        "psia",
		"temperature":     "degF",
		"length":          "ft",
		"permeability":    "mD",
		"viscosity":       "cP",
		"oil_rate":        "STB/day",
		"gas_rate":        "MSCF/day",
		"oil_gravity":     "API",
		"gas_gravity":     "SG (air = 1)",
		"solution_gor":    "scf/stb",
		"fvf":             "rb/stb (oil), rcf/scf (gas)",
		"compressibility": "1/psi",
		"density":         "lb/cuft",
		"stress":          "psi",
		"mud_weight":      "ppg",
	},
}

// Methods lists the correlation codes per property. Unsupported codes are
// listed so clients can see why a request with them is rejected.
var Methods = map[string][]MethodCode{
	"z_factor": {
		{Code: gas.ZMethodDAK, Name: "Dranchuk & Abou-Kassem", Recommended: true},
		{Code: gas.ZMethodHY, Name: "Hall & Yarborough"},
		{Code: "WYW", Name: "Wang, Ye & Wu", Unsupported: true},
		{Code: "BUR", Name: "Burgoyne tuned", Unsupported: true},
	},
	"critical_properties": {
		{Code: gas.CriticalPMC, Name: "Piper, McCain & Corredor", Recommended: true},
		{Code: gas.CriticalSUT, Name: "Sutton"},
		{Code: "BUR", Name: "Burgoyne", Unsupported: true},
	},
	"bubble_point": {
		{Code: oil.MethodStanding, Name: "Standing"},
		{Code: oil.MethodValkoMcCain, Name: "Valko & McCain", Recommended: true},
		{Code: oil.MethodVelarde, Name: "Velarde, Blasingame & McCain"},
	},
	"solution_gor": {
		{Code: oil.MethodVelarde, Name: "Velarde, Blasingame & McCain", Recommended: true},
		{Code: oil.MethodStanding, Name: "Standing"},
		{Code: oil.MethodValkoMcCain, Name: "Valko & McCain"},
	},
	"oil_fvf": {
		{Code: oil.BoMcCain, Name: "McCain density balance", Recommended: true},
		{Code: oil.BoStanding, Name: "Standing"},
	},
	"oil_viscosity": {
		{Code: oil.ViscBeggsRobinson, Name: "Beggs & Robinson", Recommended: true},
	},
	"rel_perm": {
		{Code: simtools.FamilyCorey, Name: "Corey", Recommended: true},
		{Code: simtools.FamilyLET, Name: "LET"},
	},
}

var constants = map[string]constant{
	"R":                    {Value: gas.R, Units: "psia·ft³/(lbmol·°R)"},
	"psc":                  {Value: gas.Psc, Units: "psia"},
	"Tsc":                  {Value: gas.Tsc, Units: "degF"},
	"MW_air":               {Value: gas.MWAir, Units: "lb/lbmol"},
	"degF_to_degR":         {Value: gas.DegRankine, Units: "°R"},
	"water_density":        {Value: oil.StandardWaterDen, Units: "lb/cuft"},
	"air_density":          {Value: oil.StandardAirDen, Units: "lb/cuft"},
	"cuft_per_bbl":         {Value: brine.CfPerBbl, Units: "ft³/bbl"},
	"bar_per_psi":          {Value: brine.BarPerPsi, Units: "bar/psi"},
	"psi_per_ft_per_ppg":   {Value: geomech.PsiPerFtPerPPG, Units: "psi/ft/ppg"},
	"hydrostatic_gradient": {Value: geomech.HydrostaticGradient, Units: "psi/ft"},
	"psi_per_mpa":          {Value: geomech.MPaToPsi, Units: "psi/MPa"},
}

var categoryTitles = map[string]string{
	"gas":      "Gas PVT",
	"oil":      "Oil PVT",
	"inflow":   "Well inflow",
	"simtools": "Simulation support",
	"brine":    "Brine and CO2-brine",
	"layer":    "Layer heterogeneity",
	"library":  "Component library",
	"geomech":  "Geomechanics",
}

// RegisterResources adds the static reference resources to the server.
func RegisterResources(server *mcp.Server, info ServerInfo) {
	version := versionInfo{
		Name:      info.Name,
		Version:   info.Version,
		GoVersion: runtime.Version(),
		ToolCount: len(AllTools),
	}

	addJSON(server, URIVersion, "version", "Server name, version, Go runtime and tool count", version)
	addJSON(server, URIUnits, "units", "Unit system used by every tool", units)
	addJSON(server, URIMethods, "methods", "Correlation codes per property, with unsupported codes marked", Methods)
	addJSON(server, URIConstants, "constants", "Physical constants used in the correlations", constants)

	overview := Overview()
	server.AddResource(&mcp.Resource{
		URI:         URIOverview,
		Name:        "overview",
		Description: "Overview of tool categories, units and common workflows",
		MIMEType:    "text/markdown",
	}, func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     overview,
			}},
		}, nil
	})
}

// addJSON registers a resource whose body is v encoded once at startup.
func addJSON(server *mcp.Server, uri, name, description string, v any) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		// Static tables only; a failure here is a programming error.
		panic(fmt.Sprintf("encode %s: %v", uri, err))
	}
	text := string(body)

	server.AddResource(&mcp.Resource{
		URI:         uri,
		Name:        name,
		Description: description,
		MIMEType:    "application/json",
	}, func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     text,
			}},
		}, nil
	})
}

// Overview renders the help://overview markdown from the tool catalogue.
func Overview() string {
	var b strings.Builder

	b.WriteString("# Reservoir Engineering Toolbox\n\n")
	fmt.Fprintf(&b, "%d tools for PVT, inflow, simulation support, brine and geomechanics calculations.\n\n", len(AllTools))

	b.WriteString("## Conventions\n\n")
	b.WriteString("- Field units throughout; see `config://units`.\n")
	b.WriteString("- Numeric inputs marked as arrays accept a single number or a list. Lists of equal length are evaluated element-wise; scalars broadcast.\n")
	b.WriteString("- Correlation codes are listed in `config://methods`. Unsupported codes are rejected with a validation error.\n")
	b.WriteString("- Results echo the method and units used.\n\n")

	b.WriteString("## Tools\n")
	for _, category := range Categories {
		specs := ByCategory(category)
		if len(specs) == 0 {
			continue
		}
		title := categoryTitles[category]
		if title == "" {
			title = category
		}
		fmt.Fprintf(&b, "\n### %s\n\n", title)
		for _, spec := range specs {
			fmt.Fprintf(&b, "- `%s`: %s\n", spec.Name, spec.Title)
		}
	}

	b.WriteString("\n## Workflows\n\n")
	b.WriteString("1. Gas well deliverability: `gas_critical_properties` → `gas_z_factor` → `gas_rate_radial`.\n")
	b.WriteString("2. Black-oil deck: `oil_bubble_point` → `oil_black_oil_table` → `simtools_rel_perm_table`.\n")
	b.WriteString("3. Wellbore stability: `geomech_vertical_stress` → `geomech_pore_pressure_eaton` → `geomech_safe_mud_weight_window`.\n")
	return b.String()
}
