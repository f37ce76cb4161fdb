package layer

import "github.com/olgasafonova/restoolbox-mcp-server/internal/base"

// Service exposes the heterogeneity calculations as MCP tool handlers.
type Service struct {
	*base.Engine
}

// NewService creates a layer service on top of a shared engine.
func NewService(e *base.Engine) *Service {
	return &Service{Engine: e}
}
