package brine

import (
	"context"
	"testing"

	"github.com/olgasafonova/restoolbox-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/num"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	e := base.NewEngine()
	t.Cleanup(e.Close)
	return NewService(e)
}

func TestBrinePropertiesMCP(t *testing.T) {
	s := newTestService(t)
	res, err := s.BrinePropertiesMCP(context.Background(), BrinePropertiesArgs{
		P: num.Array(1000, 5000), DegF: num.Scalar(200), Wt: 0, CH4: 1,
	})
	if err != nil {
		t.Fatalf("BrinePropertiesMCP() error = %v", err)
	}
	if res.FVF.Len() != 2 || res.FVF.Scalar {
		t.Fatalf("FVF = %v, want 2-element array", res.FVF)
	}
	assertClose(t, "Bw", res.FVF.Data[1], 1.0280615168852416, 1e-9)
	assertClose(t, "Rsw", res.SolutionGOR.Data[1], 21.804785, 1e-9)
	if res.Note != "" {
		t.Errorf("Note = %q, want none for methane", res.Note)
	}

	res, err = s.BrinePropertiesMCP(context.Background(), BrinePropertiesArgs{
		P: num.Scalar(3000), DegF: num.Scalar(150), Wt: 10,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Density.Scalar || res.SolutionGOR.First() != 0 || res.Note == "" {
		t.Errorf("gas-free brine: density %v, rsw %v, note %q", res.Density, res.SolutionGOR, res.Note)
	}
}

func TestBrinePropertiesMCP_Invalid(t *testing.T) {
	s := newTestService(t)
	tests := []struct {
		name string
		args BrinePropertiesArgs
	}{
		{"salinity above 30", BrinePropertiesArgs{P: num.Scalar(3000), DegF: num.Scalar(150), Wt: 35}},
		{"missing pressure", BrinePropertiesArgs{DegF: num.Scalar(150)}},
		{"shape mismatch", BrinePropertiesArgs{P: num.Array(1000, 2000), DegF: num.Array(100, 150, 200)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.BrinePropertiesMCP(context.Background(), tt.args); !apierrors.IsValidation(err) {
				t.Errorf("error = %v, want ValidationError", err)
			}
		})
	}
}

func TestCO2BrineMCP(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	metric, err := s.CO2BrineMCP(ctx, CO2BrineArgs{Pres: 200, Temp: 50, Metric: true, CwSat: true})
	if err != nil {
		t.Fatalf("CO2BrineMCP() error = %v", err)
	}
	if metric.Units != "metric" {
		t.Errorf("Units = %q, want metric", metric.Units)
	}
	assertClose(t, "x_co2", metric.PhaseEquilibrium.Aqueous.CO2, 0.02287799057544629, 1e-6)
	assertClose(t, "rs", metric.SolutionGOR, 30.728105521047027, 1e-6)
	assertClose(t, "cw_sat", metric.Compressibility.Saturated, 6.59322845084798e-05, 1e-6)

	field, err := s.CO2BrineMCP(ctx, CO2BrineArgs{Pres: 3000, Temp: 150, PPM: 50000, CwSat: true})
	if err != nil {
		t.Fatal(err)
	}
	if field.Units != "field" {
		t.Errorf("Units = %q, want field", field.Units)
	}
	assertClose(t, "rs scf/stb", field.SolutionGOR, 23.531511928813774*CfPerBbl, 1e-6)
	assertClose(t, "cw_sat 1/psi", field.Compressibility.Saturated, 6.758211430901609e-05*BarPerPsi, 1e-6)
	assertClose(t, "x_salt", field.PhaseEquilibrium.Salt, 0.03088264189450775, 1e-6)

	size := s.Cache.Stats().Size
	if _, err := s.CO2BrineMCP(ctx, CO2BrineArgs{Pres: 3000, Temp: 150, PPM: 50000, CwSat: true}); err != nil {
		t.Fatal(err)
	}
	if s.Cache.Stats().Size != size {
		t.Error("repeat call should be served from the cache")
	}
}

func TestCO2BrineMCP_OutOfRange(t *testing.T) {
	s := newTestService(t)
	// 300 degF is about 149 degC
	if _, err := s.CO2BrineMCP(context.Background(), CO2BrineArgs{Pres: 3000, Temp: 300}); !apierrors.IsValidation(err) {
		t.Errorf("error = %v, want ValidationError", err)
	}
}
