package library

import "github.com/olgasafonova/restoolbox-mcp-server/internal/base"

// Service exposes the component library as an MCP tool handler.
type Service struct {
	*base.Engine
}

// NewService creates a library service on top of a shared engine.
func NewService(e *base.Engine) *Service {
	return &Service{Engine: e}
}
