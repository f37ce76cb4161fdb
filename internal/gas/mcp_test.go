package gas

import (
	"context"
	"strings"
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

func TestZFactorMCP_Shapes(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	scalar, err := s.ZFactorMCP(ctx, ZFactorArgs{SG: 0.7, DegF: 180, P: num.Scalar(2000)})
	if err != nil {
		t.Fatalf("ZFactorMCP() error = %v", err)
	}
	if !scalar.Value.Scalar || scalar.Value.Len() != 1 {
		t.Errorf("scalar input should give a scalar result, got %+v", scalar.Value)
	}
	if scalar.Method != ZMethodDAK {
		t.Errorf("Method = %q, want default DAK", scalar.Method)
	}
	if scalar.Inputs.Method != ZMethodDAK {
		t.Errorf("inputs should echo the applied default, got %q", scalar.Inputs.Method)
	}
	assertClose(t, "z", scalar.Value.First(), 0.87248441, 1e-6)

	arr, err := s.ZFactorMCP(ctx, ZFactorArgs{SG: 0.7, DegF: 180, P: num.Array(1000, 2000, 3000), Method: ZMethodHY})
	if err != nil {
		t.Fatalf("ZFactorMCP() error = %v", err)
	}
	if arr.Value.Scalar || arr.Value.Len() != 3 {
		t.Errorf("array input should give a 3-element array, got %+v", arr.Value)
	}
	assertClose(t, "z[2]", arr.Value.Data[2], 0.87780695, 1e-6)
}

func TestZFactorMCP_Validation(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		args      ZFactorArgs
		wantField string
		wantMsg   string
	}{
		{"unknown method", ZFactorArgs{SG: 0.7, DegF: 180, P: num.Scalar(2000), Method: "WYW"}, "method", "DAK, HY"},
		{"negative pressure", ZFactorArgs{SG: 0.7, DegF: 180, P: num.Array(1000, -1)}, "p[1]", "greater than 0"},
		{"missing pressure", ZFactorArgs{SG: 0.7, DegF: 180}, "p", "required"},
		{"sg too high", ZFactorArgs{SG: 2.5, DegF: 180, P: num.Scalar(2000)}, "sg", "less than or equal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ZFactorMCP(ctx, tt.args)
			if !apierrors.IsValidation(err) {
				t.Fatalf("expected ValidationError, got %v", err)
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

func TestPropertyMCPs(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	args := PropertyArgs{SG: 0.7, DegF: 180, P: num.Scalar(1000)}

	tests := []struct {
		name  string
		call  func(context.Context, PropertyArgs) (base.Response[PropertyArgs], error)
		want  float64
		units string
	}{
		{"fvf", s.FormationVolumeFactorMCP, 0.016573199, "rcf/scf"},
		{"viscosity", s.ViscosityMCP, 0.014146065, "cP"},
		{"density", s.DensityMCP, 3.2231857, "lb/cuft"},
		{"compressibility", s.CompressibilityMCP, 0.0010739550, "1/psi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := tt.call(ctx, args)
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			assertClose(t, tt.name, resp.Value.First(), tt.want, 1e-4)
			if resp.Units != tt.units {
				t.Errorf("Units = %q, want %q", resp.Units, tt.units)
			}
		})
	}
}

func TestPseudopressureMCP_Memoised(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	args := PseudopressureArgs{SG: 0.7, DegF: 180, P1: num.Scalar(14.7), P2: num.Array(1000, 2000)}

	first, err := s.PseudopressureMCP(ctx, args)
	if err != nil {
		t.Fatalf("PseudopressureMCP() error = %v", err)
	}
	if first.Value.Len() != 2 || first.Value.Scalar {
		t.Fatalf("expected 2-element array, got %+v", first.Value)
	}
	assertClose(t, "m(2000)", first.Value.Data[1], 2.9699201e8, 1e-5)

	sizeBefore := s.Cache.Stats().Size
	second, err := s.PseudopressureMCP(ctx, args)
	if err != nil {
		t.Fatalf("PseudopressureMCP() error = %v", err)
	}
	if second.Value.Data[1] != first.Value.Data[1] {
		t.Errorf("cached value differs: %g vs %g", second.Value.Data[1], first.Value.Data[1])
	}
	if s.Cache.Stats().Size != sizeBefore {
		t.Errorf("second call should hit the cache, size %d -> %d", sizeBefore, s.Cache.Stats().Size)
	}
}

func TestPseudopressureMCP_MismatchedArrays(t *testing.T) {
	s := newTestService(t)
	_, err := s.PseudopressureMCP(context.Background(), PseudopressureArgs{
		SG: 0.7, DegF: 180, P1: num.Array(14.7, 100), P2: num.Array(1000, 2000, 3000),
	})
	if !apierrors.IsValidation(err) {
		t.Errorf("expected ValidationError for mismatched lengths, got %v", err)
	}
}

func TestPressureFromPZMCP(t *testing.T) {
	s := newTestService(t)
	resp, err := s.PressureFromPZMCP(context.Background(), PressureFromPZArgs{
		PZ: num.Scalar(2000 / 0.87248441), SG: 0.7, DegF: 180,
	})
	if err != nil {
		t.Fatalf("PressureFromPZMCP() error = %v", err)
	}
	assertClose(t, "p", resp.Value.First(), 2000, 1e-6)
}

func TestCriticalPropertiesMCP(t *testing.T) {
	s := newTestService(t)
	resp, err := s.CriticalPropertiesMCP(context.Background(), CriticalPropertiesArgs{SG: 0.65})
	if err != nil {
		t.Fatalf("CriticalPropertiesMCP() error = %v", err)
	}
	if resp.Method != CriticalPMC {
		t.Errorf("Method = %q, want PMC", resp.Method)
	}
	assertClose(t, "tc", resp.Value.Tc, 356.72615, 1e-6)
	if resp.Units.Pc != "psia" {
		t.Errorf("Units.Pc = %q", resp.Units.Pc)
	}
}

func TestWaterContentMCP_Broadcast(t *testing.T) {
	s := newTestService(t)
	resp, err := s.WaterContentMCP(context.Background(), WaterContentArgs{
		P: num.Scalar(1000), DegF: num.Array(100, 150),
	})
	if err != nil {
		t.Fatalf("WaterContentMCP() error = %v", err)
	}
	if resp.Value.Len() != 2 {
		t.Fatalf("expected 2 values, got %d", resp.Value.Len())
	}
	assertClose(t, "wc[0]", resp.Value.Data[0], 60.236095, 1e-6)
	assertClose(t, "wc[1]", resp.Value.Data[1], 219.34282, 1e-6)
	if resp.Note == "" {
		t.Error("expected a hydrate note")
	}
}

func TestSGFromCompositionMCP(t *testing.T) {
	s := newTestService(t)
	resp, err := s.SGFromCompositionMCP(context.Background(), SGFromCompositionArgs{HCMW: 18, CO2: 0.1})
	if err != nil {
		t.Fatalf("SGFromCompositionMCP() error = %v", err)
	}
	assertClose(t, "mixture mw", resp.Composition.MixtureMW, 0.9*18+0.1*MWCO2, 1e-12)
	assertClose(t, "hc fraction", resp.Composition.HydrocarbonFraction, 0.9, 1e-12)
}
