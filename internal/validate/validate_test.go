package validate

import (
	"strings"
	"testing"

	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/num"
)

type sampleArgs struct {
	SG       float64    `json:"sg" validate:"gt=0,lte=3"`
	Pressure num.Values `json:"p" validate:"required,dive,gt=0"`
	Method   string     `json:"method,omitempty" validate:"omitempty,oneof=DAK HY"`
	Rows     int        `json:"rows,omitempty" validate:"gte=0,lte=200"`
	Fracs    []float64  `json:"fracs,omitempty" validate:"omitempty,min=2"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name      string
		args      sampleArgs
		wantErr   bool
		wantField string
		wantMsg   string
	}{
		{
			name: "valid scalar",
			args: sampleArgs{SG: 0.7, Pressure: num.Scalar(2000)},
		},
		{
			name: "valid array with method",
			args: sampleArgs{SG: 0.7, Pressure: num.Array(1000, 2000), Method: "HY"},
		},
		{
			name:      "sg zero",
			args:      sampleArgs{SG: 0, Pressure: num.Scalar(2000)},
			wantErr:   true,
			wantField: "sg",
			wantMsg:   "greater than 0",
		},
		{
			name:      "missing pressure",
			args:      sampleArgs{SG: 0.7},
			wantErr:   true,
			wantField: "p",
			wantMsg:   "is required",
		},
		{
			name:      "negative pressure element",
			args:      sampleArgs{SG: 0.7, Pressure: num.Array(1000, -5)},
			wantErr:   true,
			wantField: "p[1]",
			wantMsg:   "greater than 0",
		},
		{
			name:      "unknown method",
			args:      sampleArgs{SG: 0.7, Pressure: num.Scalar(1000), Method: "XYZ"},
			wantErr:   true,
			wantField: "method",
			wantMsg:   "one of: DAK, HY",
		},
		{
			name:      "too few fractions",
			args:      sampleArgs{SG: 0.7, Pressure: num.Scalar(1000), Fracs: []float64{1}},
			wantErr:   true,
			wantField: "fracs",
			wantMsg:   "at least 2 items",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			if !apierrors.IsValidation(err) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			verr := err.(*apierrors.ValidationError)
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
			if !strings.Contains(verr.Message, tt.wantMsg) {
				t.Errorf("Message = %q, want substring %q", verr.Message, tt.wantMsg)
			}
		})
	}
}

type defaultedArgs struct {
	Method string  `json:"method,omitempty" validate:"oneof=DAK HY"`
	SG     float64 `json:"sg" validate:"gt=0"`
}

func (a *defaultedArgs) ApplyDefaults() {
	if a.Method == "" {
		a.Method = "DAK"
	}
}

func TestArgs(t *testing.T) {
	args := defaultedArgs{SG: 0.7}
	if err := Args(&args); err != nil {
		t.Fatalf("Args() error = %v", err)
	}
	if args.Method != "DAK" {
		t.Errorf("Method = %q, want default DAK", args.Method)
	}

	bad := defaultedArgs{SG: 0.7, Method: "WYW"}
	err := Args(&bad)
	if !apierrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(err.Error(), "DAK, HY") {
		t.Errorf("error %q should list the accepted methods", err)
	}

	// Structs without defaults validate unchanged.
	if err := Args(&sampleArgs{SG: 0.7, Pressure: num.Scalar(100)}); err != nil {
		t.Errorf("Args() on plain struct error = %v", err)
	}
}
