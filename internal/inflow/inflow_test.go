package inflow

import (
	"context"
	"math"
	"testing"

	"github.com/olgasafonova/restoolbox-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/num"
)

func assertClose(t *testing.T, name string, got, want, rel float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > rel*math.Abs(want) {
		t.Errorf("%s = %.10g, want %.10g (rel %g)", name, got, want, rel)
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	e := base.NewEngine()
	t.Cleanup(e.Close)
	return NewService(e)
}

var well = Radial{K: 100, H: 50, Re: 1000, Rw: 0.5}

func TestOilRateRadial(t *testing.T) {
	o, err := newOil(35, 200, 0.75, 0, 500)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name  string
		pwf   float64
		vogel bool
		want  float64
	}{
		{"above pb", 3000, false, 6338.47801996442},
		{"below pb, Darcy", 1500, false, 17059.87893449797},
		{"below pb, Vogel", 1500, true, 16157.904184133367},
		{"Vogel above pb is Darcy", 3000, true, 6338.47801996442},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := OilRateRadial(o, well, 4000, tt.pwf, tt.vogel)
			if err != nil {
				t.Fatalf("OilRateRadial() error = %v", err)
			}
			assertClose(t, "q", q, tt.want, 1e-7)
		})
	}

	q, err := OilRateRadial(o, well, 4000, 4500, false)
	if err != nil || q != 0 {
		t.Errorf("pwf above pi: q = %g, err = %v; want 0", q, err)
	}

	bad := Radial{K: 100, H: 50, Re: 0.4, Rw: 0.5}
	if _, err := OilRateRadial(o, bad, 4000, 3000, false); !apierrors.IsValidation(err) {
		t.Errorf("rw >= re error = %v, want ValidationError", err)
	}
}

func TestOilRateLinear(t *testing.T) {
	o, err := newOil(35, 200, 0.75, 0, 500)
	if err != nil {
		t.Fatal(err)
	}
	q, err := OilRateLinear(o, Linear{K: 100, Area: 1000, Length: 500}, 4000, 3000)
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, "q", q, 276.49254281430547, 1e-7)
}

func TestGasRates(t *testing.T) {
	f, err := newGas(0.7, 180, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	q, err := GasRateRadial(f, well, 5000, 2000)
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, "radial", q, 828382.1401853012, 1e-6)

	q, err = GasRateLinear(f, Linear{K: 100, Area: 1000, Length: 500}, 5000, 2000)
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, "linear", q, 36129.002526993565, 1e-6)

	if q, _ := GasRateRadial(f, well, 5000, 5000); q != 0 {
		t.Errorf("zero drawdown rate = %g, want 0", q)
	}
}

func TestOilRateRadialMCP(t *testing.T) {
	s := newTestService(t)
	res, err := s.OilRateRadialMCP(context.Background(), OilRateRadialArgs{
		Pi:  4000, API: 35, DegF: 200, SGg: 0.75, Rsb: 500,
		Psd: num.Array(1500, 3000, 4000), H: 50, K: 100, Re: 1000, Rw: 0.5,
	})
	if err != nil {
		t.Fatalf("OilRateRadialMCP() error = %v", err)
	}
	if res.Value.Len() != 3 || res.Units != "STB/day" {
		t.Fatalf("unexpected response %+v", res)
	}
	if !(res.Value.Data[0] > res.Value.Data[1] && res.Value.Data[2] == 0) {
		t.Errorf("rates should fall to zero as pwf rises to pi: %v", res.Value.Data)
	}

	_, err = s.OilRateRadialMCP(context.Background(), OilRateRadialArgs{
		Pi: 4000, API: 35, DegF: 200, SGg: 0.75, Psd: num.Scalar(3000), H: 50, K: 100, Re: 1000, Rw: 0.5,
	})
	if !apierrors.IsValidation(err) {
		t.Errorf("missing pb and rsb error = %v, want ValidationError", err)
	}
}

func TestGasRateRadialMCP_Memoised(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	args := GasRateRadialArgs{Pi: 5000, SG: 0.7, DegF: 180, Psd: num.Scalar(2000), H: 50, K: 100, Re: 1000, Rw: 0.5}

	first, err := s.GasRateRadialMCP(ctx, args)
	if err != nil {
		t.Fatalf("GasRateRadialMCP() error = %v", err)
	}
	if !first.Value.Scalar {
		t.Error("scalar psd should give a scalar rate")
	}
	assertClose(t, "q", first.Value.First(), 828382.1401853012, 1e-6)

	size := s.Cache.Stats().Size
	second, err := s.GasRateRadialMCP(ctx, args)
	if err != nil {
		t.Fatal(err)
	}
	if s.Cache.Stats().Size != size || second.Value.First() != first.Value.First() {
		t.Error("repeat call should be served from the cache")
	}
}

func TestGasRateLinearMCP(t *testing.T) {
	s := newTestService(t)
	res, err := s.GasRateLinearMCP(context.Background(), GasRateLinearArgs{
		Pi: 5000, SG: 0.7, DegF: 180, Psd: num.Array(2000, 6000), H: 50, K: 100, Area: 1000, Length: 500,
	})
	if err != nil {
		t.Fatalf("GasRateLinearMCP() error = %v", err)
	}
	assertClose(t, "q[0]", res.Value.Data[0], 36129.002526993565, 1e-6)
	if res.Value.Data[1] != 0 {
		t.Errorf("pwf above pi rate = %g, want 0", res.Value.Data[1])
	}
}
