package interp

// Polynomial holds coefficients lowest degree first: p(x) = Σ p[i]·xⁱ.
type Polynomial []float64

// Degree returns len(p)-1, or -1 for the empty polynomial.
func (p Polynomial) Degree() int { return len(p) - 1 }

// Eval evaluates p at x with Horner's rule. The empty polynomial is 0.
func (p Polynomial) Eval(x float64) float64 {
	var y float64
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}

	return y
}

// Deriv returns the coefficients of p'. Constants differentiate to Polynomial{0}.
func (p Polynomial) Deriv() Polynomial {
	if len(p) <= 1 {
		return Polynomial{0}
	}
	d := make(Polynomial, len(p)-1)
	for i := 1; i < len(p); i++ {
		d[i-1] = float64(i) * p[i]
	}

	return d
}

// ValueDeriv returns p(x) and p'(x) in one Horner pass.
// Its signature matches newton.Evaluator.
func (p Polynomial) ValueDeriv(x float64) (v, d float64) {
	for i := len(p) - 1; i >= 0; i-- {
		d = d*x + v
		v = v*x + p[i]
	}

	return v, d
}

// Eval evaluates the polynomial with coefficients c at every point of xs.
func Eval(c []float64, xs []float64) []float64 {
	p := Polynomial(c)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = p.Eval(x)
	}

	return ys
}

// Linspace returns n evenly spaced samples over [lo, hi], both ends included.
// n <= 0 yields nil; n == 1 yields [lo].
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n-1; i++ {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi

	return out
}
