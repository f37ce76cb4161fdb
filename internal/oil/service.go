package oil

import "github.com/olgasafonova/restoolbox-mcp-server/internal/base"

// Service exposes the oil correlations as MCP tool handlers.
type Service struct {
	*base.Engine
}

// NewService creates an oil service on top of a shared engine.
func NewService(e *base.Engine) *Service {
	return &Service{Engine: e}
}
