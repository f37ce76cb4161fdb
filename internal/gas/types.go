package gas

// CriticalValues holds pseudo-critical temperature and pressure
type CriticalValues struct {
	Tc float64 `json:"tc" jsonschema:"Pseudo-critical temperature (degR)"`
	Pc float64 `json:"pc" jsonschema:"Pseudo-critical pressure (psia)"`
}

// CriticalUnits names the units of CriticalValues
type CriticalUnits struct {
	Tc string `json:"tc"`
	Pc string `json:"pc"`
}

// CriticalPropertiesResult is the result of a pseudo-critical property calculation
type CriticalPropertiesResult struct {
	Value  CriticalValues         `json:"value"`
	Method string                 `json:"method"`
	Units  CriticalUnits          `json:"units"`
	Inputs CriticalPropertiesArgs `json:"inputs"`
}

// CompositionBreakdown describes the mixture behind a composition-based SG
type CompositionBreakdown struct {
	HydrocarbonFraction float64 `json:"hydrocarbon_fraction"`
	HydrocarbonMW       float64 `json:"hydrocarbon_mw"`
	CO2Fraction         float64 `json:"co2_fraction"`
	H2SFraction         float64 `json:"h2s_fraction"`
	N2Fraction          float64 `json:"n2_fraction"`
	H2Fraction          float64 `json:"h2_fraction"`
	MixtureMW           float64 `json:"mixture_mw"`
}

// SGFromCompositionResult is the result of a composition-based gravity calculation
type SGFromCompositionResult struct {
	GasSpecificGravity float64               `json:"gas_specific_gravity"`
	Composition        CompositionBreakdown  `json:"composition"`
	Method             string                `json:"method"`
	Units              string                `json:"units"`
	Inputs             SGFromCompositionArgs `json:"inputs"`
}
