package geomech

import (
	"math"
	"sort"
	"testing"

	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
)

func assertClose(t *testing.T, name string, got, want, rel float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > rel*math.Abs(want) {
		t.Errorf("%s = %.10g, want %.10g (rel %g)", name, got, want, rel)
	}
}

func ptr(v float64) *float64 { return &v }

func TestVerticalStress(t *testing.T) {
	tests := []struct {
		name              string
		depth, water, rho float64
		want              float64
	}{
		{"onshore", 10000, 0, 144, 10010.695187165775},
		{"offshore", 10000, 1000, 144, 9454.545454545452},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VerticalStress(tt.depth, tt.water, tt.rho, 64)
			if err != nil {
				t.Fatalf("VerticalStress() error = %v", err)
			}
			assertClose(t, "sv", got, tt.want, 1e-12)
		})
	}

	if _, err := VerticalStress(1000, 2000, 144, 64); !apierrors.IsValidation(err) {
		t.Errorf("water deeper than depth error = %v, want ValidationError", err)
	}
}

func TestHorizontalStress(t *testing.T) {
	shmin, shmax, regime := HorizontalStress(10000, 4650, 0.25, 0.5, 1)
	assertClose(t, "shmin", shmin, 6433.333333333333, 1e-12)
	assertClose(t, "shmax", shmax, 8216.666666666666, 1e-12)
	if regime != RegimeStrikeSlip {
		t.Errorf("regime = %q, want %q", regime, RegimeStrikeSlip)
	}
}

func TestClassifyRegime(t *testing.T) {
	tests := []struct {
		sv, shmax, shmin float64
		want             string
	}{
		{10000, 8000, 7000, RegimeNormal},
		{10000, 12000, 7000, RegimeStrikeSlip},
		{10000, 14000, 12000, RegimeReverse},
		{10000, 7000, 8000, RegimeUndefined},
	}
	for _, tt := range tests {
		if got := ClassifyRegime(tt.sv, tt.shmax, tt.shmin); got != tt.want {
			t.Errorf("ClassifyRegime(%g, %g, %g) = %q, want %q", tt.sv, tt.shmax, tt.shmin, got, tt.want)
		}
	}
}

func TestStressPolygon(t *testing.T) {
	p := StressPolygon(10000, 4650, 0.6)
	assertClose(t, "q", p.Q, 3.119428454762872, 1e-12)
	assertClose(t, "normal min", p.NormalShminMin, 6365.057767018634, 1e-12)
	assertClose(t, "reverse max", p.ReverseShmaxMax, 21338.942232981364, 1e-12)

	if !WithinFrictionalLimits(10000, 9000, 7000, 4650, p.Q) {
		t.Error("moderate stress state should lie inside the polygon")
	}
	if WithinFrictionalLimits(10000, 9000, 6000, 4650, p.Q) {
		t.Error("shmin below the normal faulting bound should lie outside the polygon")
	}
}

func TestMohrCoulomb(t *testing.T) {
	m := MohrCoulomb{Cohesion: 1000, Friction: 30}
	assertClose(t, "q", m.Q(), 3, 1e-12)
	assertClose(t, "ucs", m.UCS(), 3464.101615137755, 1e-12)
	assertClose(t, "sigma1", m.Sigma1AtFailure(m.UCS(), 2000), 9464.101615137755, 1e-12)
}

func TestConvertModuli(t *testing.T) {
	ref := Moduli{E: 1e6, Nu: 0.25, G: 400000, K: 666666.6666666666, Lambda: 400000}
	tests := []struct {
		name                string
		e, k, g, nu, lambda *float64
	}{
		{"E-nu", ptr(ref.E), nil, nil, ptr(ref.Nu), nil},
		{"E-G", ptr(ref.E), nil, ptr(ref.G), nil, nil},
		{"E-K", ptr(ref.E), ptr(ref.K), nil, nil, nil},
		{"G-nu", nil, nil, ptr(ref.G), ptr(ref.Nu), nil},
		{"K-nu", nil, ptr(ref.K), nil, ptr(ref.Nu), nil},
		{"K-G", nil, ptr(ref.K), ptr(ref.G), nil, nil},
		{"lambda-G", nil, nil, ptr(ref.G), nil, ptr(ref.Lambda)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ConvertModuli(tt.e, tt.k, tt.g, tt.nu, tt.lambda)
			if err != nil {
				t.Fatalf("ConvertModuli() error = %v", err)
			}
			assertClose(t, "E", m.E, ref.E, 1e-9)
			assertClose(t, "K", m.K, ref.K, 1e-9)
			assertClose(t, "G", m.G, ref.G, 1e-9)
			assertClose(t, "nu", m.Nu, ref.Nu, 1e-9)
			assertClose(t, "lambda", m.Lambda, ref.Lambda, 1e-9)
		})
	}
}

func TestConvertModuli_Invalid(t *testing.T) {
	tests := []struct {
		name                string
		e, k, g, nu, lambda *float64
	}{
		{"one value", ptr(1e6), nil, nil, nil, nil},
		{"lambda with nu", nil, nil, nil, ptr(0.25), ptr(4e5)},
		{"G too large for E", ptr(1e6), nil, ptr(6e5), nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ConvertModuli(tt.e, tt.k, tt.g, tt.nu, tt.lambda); !apierrors.IsValidation(err) {
				t.Errorf("error = %v, want ValidationError", err)
			}
		})
	}
}

func TestDynamicToStaticFactors(t *testing.T) {
	tests := []struct {
		corr, lith string
		e, nu      float64
	}{
		{"eissa_kazi", "shale", 0.541, 0.87},
		{"linear", "sandstone", 0.541, 0.87},
		{"plona_cook", "shale", 0.70, 0.90},
		{"linear", "carbonate", 0.70, 0.90},
		{"linear", "shale", 0.60, 0.85},
	}
	for _, tt := range tests {
		e, nu := DynamicToStaticFactors(tt.corr, tt.lith)
		if e != tt.e || nu != tt.nu {
			t.Errorf("DynamicToStaticFactors(%q, %q) = %g, %g, want %g, %g", tt.corr, tt.lith, e, nu, tt.e, tt.nu)
		}
	}
}

func TestCompressibility(t *testing.T) {
	assertClose(t, "bulk", BulkCompressibility(1e6, 0.25), 1.5e-6, 1e-12)
	assertClose(t, "uniaxial", UniaxialCompaction(1e6, 0.25), 8.333333333333333e-07, 1e-12)
	assertClose(t, "pore", PoreCompressibility(1.5e-6, 3e-7, 0.2), 6e-6, 1e-12)
}

func TestFractureWidth(t *testing.T) {
	avg, maxW := FractureWidth(ModelPKN, 500, 100, 300, 1e6, 0.25)
	assertClose(t, "PKN avg", avg, 1.40625, 1e-12)
	assertClose(t, "PKN max", maxW, 2.8125, 1e-12)

	avg, maxW = FractureWidth(ModelKGD, 500, 100, 300, 1e6, 0.25)
	assertClose(t, "KGD avg", avg, 5.90625, 1e-12)
	assertClose(t, "KGD max", maxW, 1.6*5.90625, 1e-12)
}

func TestUCSFromLogs(t *testing.T) {
	tests := []struct {
		name     string
		corr     string
		in       UCSInputs
		want     float64
		used     string
		fallback bool
	}{
		{"mcnally", UCSMcNally, UCSInputs{SonicDT: ptr(80)}, 9770.008478324504, UCSMcNally, false},
		{"horsrud", UCSHorsrud, UCSInputs{SonicDT: ptr(100)}, 2925.070704180183, UCSHorsrud, false},
		{"lal", UCSLal, UCSInputs{SonicDT: ptr(100)}, 2970.3782400000005, UCSLal, false},
		{"chang", UCSChang, UCSInputs{E: ptr(3e6)}, 12657.386639999999, UCSChang, false},
		{"vernik", UCSVernik, UCSInputs{Phi: ptr(0.15)}, 13042.157799300001, UCSVernik, false},
		{"horsrud without sonic falls back to vernik", UCSHorsrud, UCSInputs{Phi: ptr(0.15)}, 13042.157799300001, UCSVernik, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UCSFromLogs(tt.corr, tt.in)
			if err != nil {
				t.Fatalf("UCSFromLogs() error = %v", err)
			}
			assertClose(t, "ucs", got.UCS, tt.want, 1e-9)
			if got.Correlation != tt.used || got.Fallback != tt.fallback {
				t.Errorf("correlation = %q (fallback %v), want %q (fallback %v)", got.Correlation, got.Fallback, tt.used, tt.fallback)
			}
		})
	}

	if _, err := UCSFromLogs(UCSMcNally, UCSInputs{}); !apierrors.IsValidation(err) {
		t.Errorf("no inputs error = %v, want ValidationError", err)
	}
}

func TestEvaluateCriterion_TriaxialFailure(t *testing.T) {
	m := MohrCoulomb{Cohesion: 1000, Friction: 30}
	ucs := m.UCS()
	s3 := 2000.0
	s1 := m.Sigma1AtFailure(ucs, s3)

	// criteria calibrated to Mohr-Coulomb agree with it in triaxial compression
	for _, name := range []string{CriterionMohrCoulomb, CriterionMogiCoulomb, CriterionModifiedLade, CriterionModifiedWiebols} {
		t.Run(name, func(t *testing.T) {
			r, ok := EvaluateCriterion(name, s1, s3, s3, ucs, m)
			if !ok {
				t.Fatal("criterion not recognised")
			}
			assertClose(t, "ratio", r.Ratio, 1, 1e-9)
		})
	}

	dp, _ := EvaluateCriterion(CriterionDruckerPrager, s1, s3, s3, ucs, m)
	assertClose(t, "inscribed Drucker-Prager", dp.Ratio, 1.4422205101855956, 1e-9)
}

func TestEvaluateCriterion_Sigma2(t *testing.T) {
	m := MohrCoulomb{Cohesion: 1000, Friction: 30}
	ucs := m.UCS()
	tests := []struct {
		name string
		want float64
	}{
		{CriterionMohrCoulomb, 0.6418432909985212},
		{CriterionDruckerPrager, 0.741466344083538},
		{CriterionMogiCoulomb, 0.6027196240074478},
		{CriterionModifiedLade, 0.2533891521725042},
		{CriterionModifiedWiebols, 0.4940886278869233},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := EvaluateCriterion(tt.name, 8000, 5000, 3000, ucs, m)
			assertClose(t, "ratio", r.Ratio, tt.want, 1e-9)
			if r.Failed() {
				t.Error("state should be stable")
			}
		})
	}

	if _, ok := EvaluateCriterion("hoek_brown", 8000, 5000, 3000, ucs, m); ok {
		t.Error("unknown criterion should not be ok")
	}
}

func TestResolveOnFault(t *testing.T) {
	fs := ResolveOnFault(10000-4650, 6000-4650, 60)
	assertClose(t, "normal", fs.Normal, 2350, 1e-9)
	assertClose(t, "shear", fs.Shear, 1732.0508075688774, 1e-9)
	assertClose(t, "slip", fs.Slip, 0.73704289683782, 1e-9)
	assertClose(t, "dilation", fs.Dilation, 0.75, 1e-9)
	assertClose(t, "coulomb", CoulombStress(fs, 0.6, 0), 322.0508075688772, 1e-9)
}

func TestBreakdown(t *testing.T) {
	assertClose(t, "initiation", FractureInitiation(9000, 7000, 4650, 500, -200), 7650, 1e-12)
	assertClose(t, "haimson-fairhurst", HaimsonFairhurst(9000, 7000, 4650, 500, 0.5), 6783.333333333334, 1e-12)
}

func TestSandingDrawdown(t *testing.T) {
	assertClose(t, "strong rock", SandingDrawdown(9000, 7000, 4650, 12000), 650, 1e-12)
	if got := SandingDrawdown(9000, 7000, 4650, 8000); got != 0 {
		t.Errorf("weak rock drawdown = %g, want 0", got)
	}
	if got := SandingDrawdown(9000, 7000, 4650, 1e6); got != 4650 {
		t.Errorf("drawdown should be capped at pore pressure, got %g", got)
	}
}

func TestBreakoutWidth(t *testing.T) {
	q := MohrCoulomb{Friction: 30}.Q()
	pw := MudPressure(10, 10000)

	b := BreakoutWidth(9000, 7000, 4650, pw, 5000, q)
	assertClose(t, "width", b.Width, 82.81924421854171, 1e-9)
	assertClose(t, "max hoop", b.MaxHoop, 14800, 1e-12)
	if b.Status != BreakoutModerate {
		t.Errorf("status = %q, want %q", b.Status, BreakoutModerate)
	}

	// mud at the collapse pressure suppresses breakouts
	collapse := CollapsePressure(9000, 7000, 4650, 5000, q)
	assertClose(t, "collapse", collapse, 6075, 1e-12)
	if b := BreakoutWidth(9000, 7000, 4650, collapse+1, 5000, q); b.Status != BreakoutStable {
		t.Errorf("status above collapse pressure = %q, want stable", b.Status)
	}
}

func TestInvertBreakout_RoundTrip(t *testing.T) {
	q := MohrCoulomb{Friction: 30}.Q()
	pw := MudPressure(10, 10000)
	for _, shmax := range []float64{8500, 9000, 9500} {
		b := BreakoutWidth(shmax, 7000, 4650, pw, 5000, q)
		got, ok := InvertBreakout(b.Width, 7000, 4650, pw, 5000, q)
		if !ok {
			t.Fatalf("InvertBreakout(%g) not ok", b.Width)
		}
		assertClose(t, "shmax", got, shmax, 1e-9)
	}

	if _, ok := InvertBreakout(120, 7000, 4650, pw, 5000, q); ok {
		t.Error("120 degree breakout should be singular")
	}
}

func TestFracturePressure(t *testing.T) {
	tests := []struct {
		method string
		nu     float64
		want   float64
	}{
		{FracEaton, 0.3, 6942.857142857143},
		{FracHubbertWillis, 0.3, 6433.333333333333},
		{FracMatthewsKelly, 0.3, 8662.5},
	}
	for _, tt := range tests {
		assertClose(t, tt.method, FracturePressure(tt.method, 10000, 4650, tt.nu, 0.75), tt.want, 1e-12)
	}
}

func TestMudWeightWindow(t *testing.T) {
	w := MudWeightWindow(4650, 7000, 0, 10000, 0.5, 0.5)
	assertClose(t, "min", w.Min, 9.442307692307692, 1e-12)
	assertClose(t, "max", w.Max, 12.961538461538462, 1e-12)
	if w.Status != "moderate - normal drilling" {
		t.Errorf("status = %q", w.Status)
	}

	w = MudWeightWindow(4650, 7000, 6900, 10000, 0.5, 0.5)
	if w.Width >= 0 {
		t.Errorf("collapse above fracture limit should close the window, width %g", w.Width)
	}
}

func TestToWellFrame(t *testing.T) {
	p := Principal{SV: 10000, SHmax: 9000, Shmin: 7000}

	vertical := ToWellFrame(p, 0, 0)
	assertClose(t, "vertical xx", vertical.XX, 9000, 1e-12)
	assertClose(t, "vertical yy", vertical.YY, 7000, 1e-12)
	assertClose(t, "vertical zz", vertical.ZZ, 10000, 1e-12)

	w := ToWellFrame(p, 30, 45)
	assertClose(t, "xx", w.XX, 9250, 1e-9)
	assertClose(t, "yy", w.YY, 7500, 1e-9)
	assertClose(t, "zz", w.ZZ, 9250, 1e-9)
	assertClose(t, "xy", w.XY, -612.3724356957941, 1e-9)
	assertClose(t, "xz", w.XZ, -750, 1e-9)
	assertClose(t, "yz", w.YZ, -612.3724356957941, 1e-9)

	vals, err := PrincipalValues(w.Tensor())
	if err != nil {
		t.Fatalf("PrincipalValues() error = %v", err)
	}
	want := []float64{10000, 9000, 7000}
	if !sort.IsSorted(sort.Reverse(sort.Float64Slice(vals))) {
		t.Errorf("principal values not descending: %v", vals)
	}
	for i := range want {
		assertClose(t, "principal", vals[i], want[i], 1e-9)
	}
}

func TestWallStresses_VerticalKirsch(t *testing.T) {
	w := ToWellFrame(Principal{SV: 10000, SHmax: 9000, Shmin: 7000}, 0, 0)
	pts, err := WallStresses(w, 5200, 0.25, 1)
	if err != nil {
		t.Fatalf("WallStresses() error = %v", err)
	}
	if len(pts) != 181 {
		t.Fatalf("got %d points, want 181", len(pts))
	}
	// θ measured from σH,max: minimum hoop at 0°, maximum at 90°
	assertClose(t, "hoop at 0", pts[0].Hoop, 3*7000-9000-5200, 1e-9)
	assertClose(t, "hoop at 90", pts[90].Hoop, MaxHoopStress(9000, 7000, 5200), 1e-9)
	assertClose(t, "axial at 90", pts[90].Axial, 10000+2*0.25*2000, 1e-9)
	if pts[90].Shear != 0 {
		t.Errorf("vertical well should have no hoop-axial shear, got %g", pts[90].Shear)
	}
}
