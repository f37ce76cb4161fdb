package base

import "github.com/olgasafonova/restoolbox-mcp-server/internal/num"

// Response is the envelope returned by single-property tools. Value mirrors
// the shape of the array inputs: scalar in, scalar out.
type Response[In any] struct {
	Value  num.Values `json:"value" jsonschema:"Calculated value, a number or an array matching the input shape"`
	Method string     `json:"method" jsonschema:"Correlation or method used"`
	Units  string     `json:"units" jsonschema:"Units of value"`
	Inputs In         `json:"inputs" jsonschema:"Echo of the validated request after defaults"`
	Note   string     `json:"note,omitempty"`
}

// NewResponse builds a Response.
func NewResponse[In any](value num.Values, method, units string, inputs In) Response[In] {
	return Response[In]{
		Value:  value,
		Method: method,
		Units:  units,
		Inputs: inputs,
	}
}

// LogAttrs returns the attributes logged for a completed call.
func (r Response[In]) LogAttrs() []any {
	return []any{"method", r.Method, "points", r.Value.Len()}
}
