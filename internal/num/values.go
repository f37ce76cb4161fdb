// Package num holds the numeric plumbing shared by the correlation packages:
// the scalar-or-array Values type, broadcasting, and 1-D root finders.
package num

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/google/jsonschema-go/jsonschema"

	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
)

// Values is a numeric input or output that may be a single number or an array.
// It remembers which form it was decoded from so results can mirror the input.
type Values struct {
	Data   []float64
	Scalar bool
}

// Scalar wraps a single number.
func Scalar(v float64) Values {
	return Values{Data: []float64{v}, Scalar: true}
}

// Array wraps a list of numbers.
func Array(v ...float64) Values {
	return Values{Data: v}
}

// Len returns the number of elements.
func (v Values) Len() int {
	return len(v.Data)
}

// IsZero reports whether no value was supplied.
func (v Values) IsZero() bool {
	return len(v.Data) == 0
}

// At returns element i, broadcasting single-element values.
func (v Values) At(i int) float64 {
	if len(v.Data) == 1 {
		return v.Data[0]
	}
	return v.Data[i]
}

// First returns the first element, or 0 when empty.
func (v Values) First() float64 {
	if len(v.Data) == 0 {
		return 0
	}
	return v.Data[0]
}

// UnmarshalJSON accepts a number or an array of numbers.
func (v *Values) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*v = Values{}
		return nil
	}
	if b[0] == '[' {
		var arr []float64
		if err := json.Unmarshal(b, &arr); err != nil {
			return fmt.Errorf("expected number or array of numbers: %w", err)
		}
		*v = Values{Data: arr}
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("expected number or array of numbers: %w", err)
	}
	*v = Scalar(f)
	return nil
}

// MarshalJSON writes a number for scalar values and an array otherwise.
func (v Values) MarshalJSON() ([]byte, error) {
	if v.Scalar && len(v.Data) == 1 {
		return json.Marshal(v.Data[0])
	}
	if v.Data == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v.Data)
}

// Finite reports whether every element is a finite number.
func (v Values) Finite() bool {
	for _, x := range v.Data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Broadcast returns the common length of the given values. Single-element
// values broadcast against longer ones; any other length mismatch is an error.
// Empty values are ignored.
func Broadcast(vs ...Values) (int, error) {
	n := 0
	for _, v := range vs {
		l := v.Len()
		switch {
		case l == 0 || l == 1:
			if n == 0 && l == 1 {
				n = 1
			}
		case n <= 1:
			n = l
		case l != n:
			return 0, apierrors.NewValidationError("", "", fmt.Sprintf("array lengths do not match: %d vs %d", n, l))
		}
	}
	return n, nil
}

// Shape returns true when every supplied value is scalar, meaning the
// result should be returned as a scalar too.
func Shape(vs ...Values) bool {
	for _, v := range vs {
		if v.Len() > 0 && !v.Scalar {
			return false
		}
	}
	return true
}

// MapN evaluates fn for each broadcast index of the inputs and returns the
// results in the input shape.
func MapN(fn func(i int) (float64, error), vs ...Values) (Values, error) {
	n, err := Broadcast(vs...)
	if err != nil {
		return Values{}, err
	}
	out := make([]float64, n)
	for i := range out {
		y, err := fn(i)
		if err != nil {
			return Values{}, err
		}
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return Values{}, apierrors.NewValidationError("", fmt.Sprintf("index %d", i), "calculation produced a non-finite value")
		}
		out[i] = y
	}
	return Values{Data: out, Scalar: Shape(vs...) && n == 1}, nil
}

// Schema returns the JSON schema accepted for Values: a number or an array of numbers.
func Schema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Types: []string{"number", "array"},
		Items: &jsonschema.Schema{Type: "number"},
	}
}

// TypeSchemas maps custom numeric types to their schemas for jsonschema.For.
func TypeSchemas() map[reflect.Type]*jsonschema.Schema {
	return map[reflect.Type]*jsonschema.Schema{
		reflect.TypeFor[Values](): Schema(),
	}
}
