package simtools

import "math"

// Exponentially scaled modified Bessel functions, Abramowitz & Stegun
// 9.8.1-9.8.8 (|error| < 2e-7): i0s(x) = I0(x)e^-x, k0s(x) = K0(x)e^x.

func poly(t float64, c ...float64) float64 {
	r := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		r = r*t + c[i]
	}
	return r
}

func i0s(x float64) float64 {
	if x <= 3.75 {
		t := (x / 3.75) * (x / 3.75)
		return poly(t, 1, 3.5156229, 3.0899424, 1.2067492, 0.2659732, 0.0360768, 0.0045813) * math.Exp(-x)
	}
	t := 3.75 / x
	return poly(t, 0.39894228, 0.01328592, 0.00225319, -0.00157565, 0.00916281,
		-0.02057706, 0.02635537, -0.01647633, 0.00392377) / math.Sqrt(x)
}

func i1s(x float64) float64 {
	if x <= 3.75 {
		t := (x / 3.75) * (x / 3.75)
		return x * poly(t, 0.5, 0.87890594, 0.51498869, 0.15084934, 0.02658733, 0.00301532, 0.00032411) * math.Exp(-x)
	}
	t := 3.75 / x
	return poly(t, 0.39894228, -0.03988024, -0.00362018, 0.00163801, -0.01031555,
		0.02282967, -0.02895312, 0.01787654, -0.00420059) / math.Sqrt(x)
}

func k0s(x float64) float64 {
	if x <= 2 {
		t := (x / 2) * (x / 2)
		i0 := i0s(x) * math.Exp(x)
		return (-math.Log(x/2)*i0 + poly(t, -0.57721566, 0.42278420, 0.23069756, 0.03488590,
			0.00262698, 0.00010750, 0.00000740)) * math.Exp(x)
	}
	t := 2 / x
	return poly(t, 1.25331414, -0.07832358, 0.02189568, -0.01062446, 0.00587872,
		-0.00251540, 0.00053208) / math.Sqrt(x)
}

func k1s(x float64) float64 {
	if x <= 2 {
		t := (x / 2) * (x / 2)
		i1 := i1s(x) * math.Exp(x)
		return (x*math.Log(x/2)*i1 + poly(t, 1, 0.15443144, -0.67278579, -0.18156897,
			-0.01919402, -0.00110404, -0.00004686)) / x * math.Exp(x)
	}
	t := 2 / x
	return poly(t, 1.25331414, 0.23498619, -0.03655620, 0.01504268, -0.00780353,
		0.00325614, -0.00068245) / math.Sqrt(x)
}

const eulerGamma = 0.5772156649015329

// expint returns the exponential integral E1(x) for x > 0.
func expint(x float64) float64 {
	if x <= 1 {
		sum, term := 0.0, 1.0
		for k := 1; k < 100; k++ {
			term *= -x / float64(k)
			add := -term / float64(k)
			sum += add
			if math.Abs(add) < 1e-17*math.Abs(sum) {
				break
			}
		}
		return -eulerGamma - math.Log(x) + sum
	}
	// Modified Lentz continued fraction
	b := x + 1
	c := 1 / 1e-300
	d := 1 / b
	h := d
	for i := 1; i < 200; i++ {
		an := -float64(i * i)
		b += 2
		d = 1 / (an*d + b)
		c = b + an/c
		del := c * d
		h *= del
		if math.Abs(del-1) < 1e-15 {
			break
		}
	}
	return h * math.Exp(-x)
}

// stehfestWeights returns the Gaver-Stehfest coefficients for even n.
func stehfestWeights(n int) []float64 {
	fact := func(k int) float64 {
		f := 1.0
		for i := 2; i <= k; i++ {
			f *= float64(i)
		}
		return f
	}
	h := n / 2
	v := make([]float64, n)
	for i := 1; i <= n; i++ {
		s := 0.0
		for k := (i + 1) / 2; k <= min(i, h); k++ {
			s += math.Pow(float64(k), float64(h)) * fact(2*k) /
				(fact(h-k) * fact(k) * fact(k-1) * fact(i-k) * fact(2*k-i))
		}
		if (h+i)%2 != 0 {
			s = -s
		}
		v[i-1] = s
	}
	return v
}

var stehfest8 = stehfestWeights(8)

// invertLaplace returns f(t) from its Laplace transform fs by the Stehfest
// algorithm with eight terms.
func invertLaplace(fs func(s float64) float64, t float64) float64 {
	a := math.Ln2 / t
	sum := 0.0
	for i, v := range stehfest8 {
		sum += v * fs(float64(i+1)*a)
	}
	return a * sum
}
