package plot

import (
	"fmt"

	"github.com/katalvlaran/lvnum/interp"
	"github.com/katalvlaran/lvnum/newton"
)

const (
	// Samples is the number of points used to draw a curve.
	Samples = 1001

	// InterpolationTitle is the title of figures built by Interpolation.
	InterpolationTitle = "Data points and interpolating polynomial"

	// IntersectionsTitle is the title of figures built by Intersections.
	IntersectionsTitle = "Curves and their intersections"
)

// Interpolation plots the polynomial with coefficients c over
// [min(xi)-1, max(xi)+1] as a blue line and the data points as red markers.
// The y window is [min(yi)-1, max(yi)+1]; the curve is clipped to it.
func Interpolation(xi, yi, c []float64) (*Figure, error) {
	if len(xi) == 0 || len(xi) != len(yi) || len(c) == 0 {
		return nil, fmt.Errorf("Interpolation: %w", ErrEmptySeries)
	}
	xr, okX := Span(xi)
	yr, okY := Span(yi)
	if !okX || !okY {
		return nil, fmt.Errorf("Interpolation: %w", ErrBadRange)
	}

	fig, err := New(xr.Pad(1), yr.Pad(1))
	if err != nil {
		return nil, fmt.Errorf("Interpolation: %w", err)
	}
	fig.Title = InterpolationTitle

	xs := interp.Linspace(fig.XRange.Min, fig.XRange.Max, Samples)
	if err = fig.Line(xs, interp.Eval(c, xs), Blue); err != nil {
		return nil, fmt.Errorf("Interpolation: %w", err)
	}
	if err = fig.Points(xi, yi, Red); err != nil {
		return nil, fmt.Errorf("Interpolation: %w", err)
	}

	return fig, nil
}

// Intersections plots g1 (blue) and g2 (green) over [lower, upper] and marks
// every root with a red marker at (root, g1(root)). The y window spans both
// sampled curves padded by 10%.
func Intersections(g1, g2 newton.Evaluator, lower, upper float64, roots []float64) (*Figure, error) {
	if g1 == nil || g2 == nil {
		return nil, fmt.Errorf("Intersections: %w", ErrEmptySeries)
	}
	xr := Range{Min: lower, Max: upper}
	if err := xr.Validate(); err != nil {
		return nil, fmt.Errorf("Intersections: %w", err)
	}

	xs := interp.Linspace(lower, upper, Samples)
	y1, y2 := sample(g1, xs), sample(g2, xs)

	yr, ok := Span(append(append([]float64(nil), y1...), y2...))
	if !ok {
		return nil, fmt.Errorf("Intersections: %w", ErrBadRange)
	}
	pad := 0.1 * (yr.Max - yr.Min)
	if pad == 0 {
		pad = 1
	}

	fig, err := New(xr, yr.Pad(pad))
	if err != nil {
		return nil, fmt.Errorf("Intersections: %w", err)
	}
	fig.Title = IntersectionsTitle

	if err = fig.Line(xs, y1, Blue); err != nil {
		return nil, fmt.Errorf("Intersections: %w", err)
	}
	if err = fig.Line(xs, y2, Green); err != nil {
		return nil, fmt.Errorf("Intersections: %w", err)
	}
	if len(roots) > 0 {
		if err = fig.Points(roots, sample(g1, roots), Red); err != nil {
			return nil, fmt.Errorf("Intersections: %w", err)
		}
	}

	return fig, nil
}

func sample(g newton.Evaluator, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i], _ = g(x)
	}

	return ys
}
