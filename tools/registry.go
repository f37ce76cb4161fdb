// Package tools provides a metadata-driven registry for MCP tool definitions.
// Tools are declared once in AllTools and bound to their typed service
// handlers by method name.
package tools

import "github.com/modelcontextprotocol/go-sdk/mcp"

// ToolSpec declares one MCP tool. Method names the service handler that
// serves it; the handler's Args and Result types provide the schemas.
type ToolSpec struct {
	Name        string // MCP tool name, e.g. "gas_z_factor"
	Method      string // handler key, e.g. "GasZFactor"
	Title       string
	Category    string // one of Categories
	Description string // USE WHEN / NOT FOR / PARAMETERS / RETURNS text shown to the model

	// Behaviour hints published as tool annotations.
	ReadOnly    bool
	Destructive bool
	Idempotent  bool
	OpenWorld   bool
}

// Annotations converts the behaviour hints to MCP tool annotations. The
// destructive and open-world hints are always sent explicitly since the
// protocol defaults both to true.
func (s ToolSpec) Annotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		Title:           s.Title,
		ReadOnlyHint:    s.ReadOnly,
		IdempotentHint:  s.Idempotent,
		DestructiveHint: &s.Destructive,
		OpenWorldHint:   &s.OpenWorld,
	}
}

// Categories lists tool categories in presentation order.
var Categories = []string{"gas", "oil", "inflow", "simtools", "brine", "layer", "library", "geomech"}

// ByCategory returns the specs of one category in declaration order.
func ByCategory(category string) []ToolSpec {
	var out []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			out = append(out, spec)
		}
	}
	return out
}

// Lookup finds a spec by tool name.
func Lookup(name string) (ToolSpec, bool) {
	for _, spec := range AllTools {
		if spec.Name == name {
			return spec, true
		}
	}
	return ToolSpec{}, false
}
