package inflow

import (
	"github.com/olgasafonova/restoolbox-mcp-server/internal/base"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/gas"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/oil"
)

// Service exposes the inflow calculations as MCP tool handlers.
type Service struct {
	*base.Engine
}

// NewService creates an inflow service on top of a shared engine.
func NewService(e *base.Engine) *Service {
	return &Service{Engine: e}
}

func newOil(api, degf, sgg, pb, rsb float64) (*oil.Oil, error) {
	return oil.NewOil(api, degf, sgg, pb, rsb, oil.MethodValkoMcCain)
}

func newGas(sg, degf, h2s, co2, n2 float64) (*gas.Fluid, error) {
	return gas.NewFluid(sg, degf, gas.Composition{H2S: h2s, CO2: co2, N2: n2}, gas.ZMethodDAK)
}
