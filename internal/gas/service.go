package gas

import "github.com/olgasafonova/restoolbox-mcp-server/internal/base"

// Service exposes the gas correlations as MCP tool handlers.
type Service struct {
	*base.Engine
}

// NewService creates a gas service on top of a shared engine.
func NewService(e *base.Engine) *Service {
	return &Service{Engine: e}
}

func (a PropertyArgs) fluid() (*Fluid, error) {
	return NewFluid(a.SG, a.DegF, Composition{H2S: a.H2S, CO2: a.CO2, N2: a.N2}, a.ZMethod)
}
