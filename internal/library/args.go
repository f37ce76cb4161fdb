package library

// ComponentArgs contains parameters for a component lookup
type ComponentArgs struct {
	Component string `json:"component" jsonschema:"Component name or alias, e.g. C1, Methane, CO2, nC4, C7 (single carbon number C6-C45)" validate:"required"`
	EOS       string `json:"eos,omitempty" jsonschema:"Equation of state for the returned constants: PR79 (default), PR77, SRK or RK" validate:"oneof=PR79 PR77 SRK RK"`
}

func (a *ComponentArgs) ApplyDefaults() {
	if a.EOS == "" {
		a.EOS = EOSPR79
	}
}
