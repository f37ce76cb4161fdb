package gas

import (
	"errors"
	"math"
	"testing"

	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
)

func assertClose(t *testing.T, name string, got, want, rel float64) {
	t.Helper()
	if math.Abs(got-want) > rel*math.Abs(want) {
		t.Errorf("%s = %.8g, want %.8g (rel tol %g)", name, got, want, rel)
	}
}

func TestCriticalProperties(t *testing.T) {
	tests := []struct {
		name    string
		sg      float64
		comp    Composition
		method  string
		wantTc  float64
		wantPc  float64
		wantErr bool
	}{
		{"PMC sweet", 0.65, Composition{}, CriticalPMC, 356.72615, 668.57329, false},
		{"PMC sour", 0.7, Composition{H2S: 0.05, CO2: 0.1, N2: 0.02}, CriticalPMC, 365.78633, 734.29302, false},
		{"default method is PMC", 0.65, Composition{}, "", 356.72615, 668.57329, false},
		{"SUT sweet", 0.7, Composition{}, CriticalSUT, 377.59, 663.336, false},
		{"SUT sour with Wichert-Aziz", 0.7, Composition{H2S: 0.05, CO2: 0.1, N2: 0.02}, CriticalSUT, 358.55656, 707.87745, false},
		{"BUR unsupported", 0.7, Composition{}, "BUR", 0, 0, true},
		{"inerts above unity", 0.7, Composition{H2S: 0.6, CO2: 0.6}, CriticalPMC, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, pc, err := CriticalProperties(tt.sg, tt.comp, tt.method)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CriticalProperties() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !apierrors.IsValidation(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
				return
			}
			assertClose(t, "tc", tc, tt.wantTc, 1e-6)
			assertClose(t, "pc", pc, tt.wantPc, 1e-6)
		})
	}
}

func TestZFactor_Reduced(t *testing.T) {
	tests := []struct {
		method string
		want   float64
	}{
		{ZMethodDAK, 0.82146513},
		{ZMethodHY, 0.82083378},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			z, err := ZFactor(1.5, 2.0, tt.method)
			if err != nil {
				t.Fatalf("ZFactor() error = %v", err)
			}
			assertClose(t, "z", z, tt.want, 1e-6)
		})
	}
}

func TestZFactor_IdealLimit(t *testing.T) {
	for _, method := range []string{ZMethodDAK, ZMethodHY} {
		z, err := ZFactor(2.0, 0.01, method)
		if err != nil {
			t.Fatalf("%s: %v", method, err)
		}
		if math.Abs(z-1) > 0.002 {
			t.Errorf("%s: z at low pressure = %g, want ~1", method, z)
		}
	}
}

func TestZFactor_UnsupportedMethod(t *testing.T) {
	_, err := ZFactor(1.5, 2, "WYW")
	if !apierrors.IsValidation(err) {
		t.Errorf("expected ValidationError for WYW, got %v", err)
	}
}

func TestZFactor_NonPositiveReduced(t *testing.T) {
	tests := []struct {
		tpr, ppr   float64
		field, val string
	}{
		{1.5, 0, "ppr", "0"},
		{1.5, -0.5, "ppr", "-0.5"},
		{0, 2, "tpr", "0"},
	}
	for _, tt := range tests {
		_, err := ZFactor(tt.tpr, tt.ppr, ZMethodDAK)
		var verr *apierrors.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("ZFactor(%g, %g) error = %v, want ValidationError", tt.tpr, tt.ppr, err)
		}
		if verr.Field != tt.field || verr.Value != tt.val {
			t.Errorf("ZFactor(%g, %g) reported %s=%s, want %s=%s", tt.tpr, tt.ppr, verr.Field, verr.Value, tt.field, tt.val)
		}
	}
}

func TestFluidProperties(t *testing.T) {
	fl, err := NewFluid(0.7, 180, Composition{}, ZMethodDAK)
	if err != nil {
		t.Fatalf("NewFluid() error = %v", err)
	}

	tests := []struct {
		p                  float64
		z, mu, bg, rho, cg float64
	}{
		{1000, 0.91648332, 0.014146065, 0.016573199, 3.2231857, 0.0010739550},
		{2000, 0.87248441, 0.016685680, 0.0078887732, 6.7714583, 0.00052028384},
		{3000, 0.88038714, 0.020071735, 0.0053068184, 10.066012, 0.00029834791},
	}

	for _, tt := range tests {
		z, err := fl.Z(tt.p)
		if err != nil {
			t.Fatalf("Z(%g) error = %v", tt.p, err)
		}
		assertClose(t, "z", z, tt.z, 1e-6)

		mu, _ := fl.Viscosity(tt.p)
		assertClose(t, "viscosity", mu, tt.mu, 1e-6)

		bg, _ := fl.FVF(tt.p)
		assertClose(t, "bg", bg, tt.bg, 1e-6)

		rho, _ := fl.Density(tt.p)
		assertClose(t, "density", rho, tt.rho, 1e-6)

		cg, _ := fl.Compressibility(tt.p)
		assertClose(t, "cg", cg, tt.cg, 1e-4)
	}
}

func TestFluid_HallYarborough(t *testing.T) {
	fl, err := NewFluid(0.7, 180, Composition{}, ZMethodHY)
	if err != nil {
		t.Fatalf("NewFluid() error = %v", err)
	}
	z, err := fl.Z(3000)
	if err != nil {
		t.Fatalf("Z() error = %v", err)
	}
	assertClose(t, "z", z, 0.87780695, 1e-6)
}

func TestPseudopressure(t *testing.T) {
	fl, _ := NewFluid(0.7, 180, Composition{}, ZMethodDAK)

	m, err := fl.Pseudopressure(14.7, 2000)
	if err != nil {
		t.Fatalf("Pseudopressure() error = %v", err)
	}
	assertClose(t, "m(p)", m, 2.9699201e8, 1e-5)

	back, _ := fl.Pseudopressure(2000, 14.7)
	assertClose(t, "reversed m(p)", back, -m, 1e-12)

	zero, _ := fl.Pseudopressure(1500, 1500)
	if zero != 0 {
		t.Errorf("m(p) over an empty interval = %g, want 0", zero)
	}
}

func TestPressureFromPZ_RoundTrip(t *testing.T) {
	fl, _ := NewFluid(0.7, 180, Composition{}, ZMethodDAK)
	for _, p := range []float64{500, 1000, 4000} {
		z, _ := fl.Z(p)
		got, err := fl.PressureFromPZ(p / z)
		if err != nil {
			t.Fatalf("PressureFromPZ(%g) error = %v", p/z, err)
		}
		assertClose(t, "p", got, p, 1e-7)
	}
}

func TestSGFromGradient(t *testing.T) {
	sg, err := SGFromGradient(6.7714583/144, 180, 2000)
	if err != nil {
		t.Fatalf("SGFromGradient() error = %v", err)
	}
	assertClose(t, "sg", sg, 0.7, 1e-6)

	if _, err := SGFromGradient(5, 180, 2000); !apierrors.IsValidation(err) {
		t.Errorf("expected ValidationError for an impossible gradient, got %v", err)
	}
}

func TestWaterContent(t *testing.T) {
	assertClose(t, "water content 150F", WaterContent(1000, 150), 219.34282, 1e-6)
	assertClose(t, "water content 100F", WaterContent(1000, 100), 60.236095, 1e-6)

	if WaterContent(2000, 150) >= WaterContent(1000, 150) {
		t.Error("water content should fall with pressure")
	}
}

func TestSGFromComposition(t *testing.T) {
	sg, hc, err := SGFromComposition(20.5, 0.05, 0.01, 0.02, 0)
	if err != nil {
		t.Fatalf("SGFromComposition() error = %v", err)
	}
	wantMW := 0.92*20.5 + 0.05*MWCO2 + 0.01*MWH2S + 0.02*MWN2
	assertClose(t, "sg", sg, wantMW/MWAir, 1e-12)
	assertClose(t, "hc fraction", hc, 0.92, 1e-12)

	if _, _, err := SGFromComposition(20, 0.5, 0.3, 0.3, 0); !apierrors.IsValidation(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}
