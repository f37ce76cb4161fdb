package num

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"

	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
)

// Solver limits
const (
	DefaultTol     = 1e-10
	MaxIterations  = 200
	machineEpsilon = 2.220446049250313e-16
)

// ErrNotBracketed is returned when a root finder is given an interval whose
// end points do not straddle a sign change.
var ErrNotBracketed = errors.New("root is not bracketed by the search interval")

// Brent finds a root of f in [a, b] using Brent's method.
// f(a) and f(b) must have opposite signs.
func Brent(f func(float64) float64, a, b, tol float64) (float64, error) {
	if tol <= 0 {
		tol = DefaultTol
	}
	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if math.IsNaN(fa) || math.IsNaN(fb) || (fa > 0) == (fb > 0) {
		return 0, ErrNotBracketed
	}

	c, fc := b, fb
	var d, e float64
	for iter := 0; iter < MaxIterations; iter++ {
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol1 := 2*machineEpsilon*math.Abs(b) + 0.5*tol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, nil
		}
		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			s := fb / fa
			var p, q float64
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}
		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
		if math.IsNaN(fb) {
			return 0, apierrors.NewConvergenceError("brent", iter+1, math.NaN())
		}
	}
	return b, apierrors.NewConvergenceError("brent", MaxIterations, fb)
}

// BrentExpand runs Brent on [lo, hi], growing hi geometrically (up to limit)
// until the interval brackets a root.
func BrentExpand(f func(float64) float64, lo, hi, limit, tol float64) (float64, error) {
	flo := f(lo)
	for hi <= limit {
		fhi := f(hi)
		if !math.IsNaN(fhi) && (flo > 0) != (fhi > 0) {
			return Brent(f, lo, hi, tol)
		}
		hi *= 2
	}
	return 0, ErrNotBracketed
}

// Newton finds a root of f starting from x0 using a damped Newton step with a
// central-difference derivative. damp in (0, 1] scales each step.
func Newton(f func(float64) float64, x0, damp, tol float64) (float64, error) {
	if damp <= 0 || damp > 1 {
		damp = 1
	}
	if tol <= 0 {
		tol = DefaultTol
	}
	x := x0
	var fx float64
	for iter := 0; iter < MaxIterations; iter++ {
		fx = f(x)
		if math.Abs(fx) < tol {
			return x, nil
		}
		h := 1e-6 * math.Max(math.Abs(x), 1)
		df := (f(x+h) - f(x-h)) / (2 * h)
		if df == 0 || math.IsNaN(df) {
			break
		}
		step := damp * fx / df
		x -= step
		if math.IsNaN(x) || math.IsInf(x, 0) {
			break
		}
		if math.Abs(step) < tol*math.Max(math.Abs(x), 1) {
			return x, nil
		}
	}
	return x, apierrors.NewConvergenceError("newton", MaxIterations, fx)
}

// Linspace returns n evenly spaced points from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Logspace returns n logarithmically spaced points from lo to hi inclusive.
func Logspace(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	return floats.LogSpan(make([]float64, n), lo, hi)
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
