package num

import (
	"encoding/json"
	"math"
	"testing"

	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
)

func TestValuesUnmarshal(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantData   []float64
		wantScalar bool
		wantErr    bool
	}{
		{"scalar", `2500`, []float64{2500}, true, false},
		{"array", `[1000, 2000, 3000]`, []float64{1000, 2000, 3000}, false, false},
		{"single element array", `[1500]`, []float64{1500}, false, false},
		{"null", `null`, nil, false, false},
		{"string", `"abc"`, nil, false, true},
		{"array of strings", `["a"]`, nil, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Values
			err := json.Unmarshal([]byte(tt.input), &v)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if v.Scalar != tt.wantScalar {
				t.Errorf("Scalar = %v, want %v", v.Scalar, tt.wantScalar)
			}
			if len(v.Data) != len(tt.wantData) {
				t.Fatalf("len(Data) = %d, want %d", len(v.Data), len(tt.wantData))
			}
			for i := range v.Data {
				if v.Data[i] != tt.wantData[i] {
					t.Errorf("Data[%d] = %v, want %v", i, v.Data[i], tt.wantData[i])
				}
			}
		})
	}
}

func TestValuesMarshalMirrorsShape(t *testing.T) {
	tests := []struct {
		name string
		in   Values
		want string
	}{
		{"scalar", Scalar(0.85), `0.85`},
		{"array", Array(1, 2), `[1,2]`},
		{"single element array stays array", Array(3), `[3]`},
		{"empty", Values{}, `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("Marshal() = %s, want %s", b, tt.want)
			}
		})
	}
}

func TestBroadcast(t *testing.T) {
	tests := []struct {
		name    string
		in      []Values
		want    int
		wantErr bool
	}{
		{"all scalars", []Values{Scalar(1), Scalar(2)}, 1, false},
		{"scalar and array", []Values{Scalar(1), Array(1, 2, 3)}, 3, false},
		{"array then scalar", []Values{Array(1, 2, 3), Scalar(1)}, 3, false},
		{"equal arrays", []Values{Array(1, 2), Array(3, 4)}, 2, false},
		{"mismatch", []Values{Array(1, 2), Array(1, 2, 3)}, 0, true},
		{"empty ignored", []Values{{}, Array(1, 2)}, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Broadcast(tt.in...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Broadcast() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Broadcast() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMapN(t *testing.T) {
	p := Array(100, 200, 300)
	scale := Scalar(2)
	out, err := MapN(func(i int) (float64, error) {
		return p.At(i) * scale.At(i), nil
	}, p, scale)
	if err != nil {
		t.Fatalf("MapN() error = %v", err)
	}
	if out.Scalar {
		t.Error("array input should give array output")
	}
	want := []float64{200, 400, 600}
	for i := range want {
		if out.Data[i] != want[i] {
			t.Errorf("out[%d] = %v, want %v", i, out.Data[i], want[i])
		}
	}

	single, err := MapN(func(i int) (float64, error) { return 1, nil }, Scalar(5))
	if err != nil {
		t.Fatalf("MapN() error = %v", err)
	}
	if !single.Scalar {
		t.Error("scalar input should give scalar output")
	}

	if _, err := MapN(func(i int) (float64, error) { return math.NaN(), nil }, Scalar(1)); !apierrors.IsValidation(err) {
		t.Errorf("non-finite result error = %v, want ValidationError", err)
	}
}

func TestBrent(t *testing.T) {
	tests := []struct {
		name string
		f    func(float64) float64
		a, b float64
		want float64
	}{
		{"sqrt2", func(x float64) float64 { return x*x - 2 }, 0, 2, math.Sqrt2},
		{"cubic", func(x float64) float64 { return x*x*x - x - 2 }, 1, 2, 1.5213797068045676},
		{"cos", math.Cos, 0, 3, math.Pi / 2},
		{"root at end", func(x float64) float64 { return x - 1 }, 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Brent(tt.f, tt.a, tt.b, 1e-12)
			if err != nil {
				t.Fatalf("Brent() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Brent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBrentNotBracketed(t *testing.T) {
	_, err := Brent(func(x float64) float64 { return x*x + 1 }, -1, 1, 0)
	if err != ErrNotBracketed {
		t.Errorf("Brent() error = %v, want ErrNotBracketed", err)
	}
}

func TestBrentExpand(t *testing.T) {
	got, err := BrentExpand(func(x float64) float64 { return x - 1000 }, 0, 1, 1e6, 1e-10)
	if err != nil {
		t.Fatalf("BrentExpand() error = %v", err)
	}
	if math.Abs(got-1000) > 1e-6 {
		t.Errorf("BrentExpand() = %v, want 1000", got)
	}
	if _, err := BrentExpand(func(x float64) float64 { return 1 }, 0, 1, 100, 0); err == nil {
		t.Error("expected error when no sign change exists")
	}
}

func TestNewton(t *testing.T) {
	got, err := Newton(func(x float64) float64 { return x*x - 9 }, 1, 1, 1e-12)
	if err != nil {
		t.Fatalf("Newton() error = %v", err)
	}
	if math.Abs(got-3) > 1e-8 {
		t.Errorf("Newton() = %v, want 3", got)
	}

	damped, err := Newton(func(x float64) float64 { return x*x - 9 }, 1, 0.5, 1e-12)
	if err != nil {
		t.Fatalf("damped Newton() error = %v", err)
	}
	if math.Abs(damped-3) > 1e-8 {
		t.Errorf("damped Newton() = %v, want 3", damped)
	}

	_, err = Newton(func(x float64) float64 { return x*x + 1 }, 0, 1, 1e-12)
	if !apierrors.IsConvergence(err) {
		t.Errorf("Newton() error = %v, want ConvergenceError", err)
	}
}

func TestSpaces(t *testing.T) {
	lin := Linspace(0, 10, 11)
	if len(lin) != 11 || lin[0] != 0 || lin[10] != 10 || math.Abs(lin[5]-5) > 1e-12 {
		t.Errorf("Linspace() = %v", lin)
	}
	logs := Logspace(0.01, 100, 5)
	if len(logs) != 5 || math.Abs(logs[2]-1) > 1e-12 || math.Abs(logs[4]-100) > 1e-9 {
		t.Errorf("Logspace() = %v", logs)
	}
	if got := Linspace(3, 4, 1); len(got) != 1 || got[0] != 3 {
		t.Errorf("Linspace(n=1) = %v", got)
	}
}
