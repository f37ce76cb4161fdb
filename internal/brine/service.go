package brine

import "github.com/olgasafonova/restoolbox-mcp-server/internal/base"

// Service exposes the brine calculations as MCP tool handlers.
type Service struct {
	*base.Engine
}

// NewService creates a brine service on top of a shared engine.
func NewService(e *base.Engine) *Service {
	return &Service{Engine: e}
}
