package library

import (
	"context"

	"github.com/olgasafonova/restoolbox-mcp-server/internal/validate"
)

// GetComponentPropertiesMCP is the MCP wrapper for Library.Lookup
func (s *Service) GetComponentPropertiesMCP(ctx context.Context, args ComponentArgs) (ComponentResult, error) {
	if err := validate.Args(&args); err != nil {
		return ComponentResult{}, err
	}
	lib, err := Default()
	if err != nil {
		return ComponentResult{}, err
	}
	c, err := lib.Lookup(args.Component)
	if err != nil {
		return ComponentResult{}, err
	}
	eos, err := EOS(args.EOS, c.Omega)
	if err != nil {
		return ComponentResult{}, err
	}

	res := ComponentResult{
		Component: c.Name,
		Kind:      c.Kind,
		EOSModel:  args.EOS,
		Properties: ComponentProperties{
			MolecularWeight:         c.MW,
			CriticalTemperature:     c.Tc,
			CriticalPressure:        c.Pc,
			CriticalCompressibility: c.Zc,
			AcentricFactor:          c.Omega,
			CriticalVolume:          c.Vc,
			BoilingPoint:            c.Tb,
			SpecificGravity:         c.SG,
		},
		EOS:    EOSParameters{OmegaA: eos.OmegaA, OmegaB: eos.OmegaB, Kappa: eos.Kappa},
		Method: "Component database lookup",
		Inputs: args,
	}
	if c.Kind == KindSCN {
		res.Method = "Katz-Firoozabadi SCN table with Twu critical properties"
		res.Note = "Critical properties from Twu (1984), acentric factor from Kesler-Lee"
	}
	s.Logger.Debug("Component lookup", "component", c.Name, "eos", args.EOS)
	return res, nil
}
