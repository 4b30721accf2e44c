package plot

import "gonum.org/v1/plot/plotter"

// Outcodes of a point relative to a window.
const (
	outLeft = 1 << iota
	outRight
	outBottom
	outTop
)

// window is the closed world rectangle a figure shows.
type window struct {
	x, y Range
}

func (w window) code(x, y float64) int {
	c := 0
	switch {
	case x < w.x.Min:
		c |= outLeft
	case x > w.x.Max:
		c |= outRight
	}
	switch {
	case y < w.y.Min:
		c |= outBottom
	case y > w.y.Max:
		c |= outTop
	}

	return c
}

// clip cuts the segment (x0,y0)→(x1,y1) to w (Cohen–Sutherland).
// A crossing sets the boundary coordinate exactly and interpolates only the
// other one, so an endpoint at 1e150 still yields an exact crossing.
func (w window) clip(x0, y0, x1, y1 float64) (float64, float64, float64, float64, bool) {
	c0, c1 := w.code(x0, y0), w.code(x1, y1)
	// Each pass moves one endpoint onto a boundary; four per endpoint at most.
	for pass := 0; pass < 8; pass++ {
		if c0|c1 == 0 {
			return x0, y0, x1, y1, true
		}
		if c0&c1 != 0 {
			return 0, 0, 0, 0, false
		}
		c := c0
		if c == 0 {
			c = c1
		}

		var x, y float64
		switch {
		case c&outTop != 0:
			x, y = x0+(x1-x0)*((w.y.Max-y0)/(y1-y0)), w.y.Max
		case c&outBottom != 0:
			x, y = x0+(x1-x0)*((w.y.Min-y0)/(y1-y0)), w.y.Min
		case c&outRight != 0:
			x, y = w.x.Max, y0+(y1-y0)*((w.x.Max-x0)/(x1-x0))
		default:
			x, y = w.x.Min, y0+(y1-y0)*((w.x.Min-x0)/(x1-x0))
		}
		if !finite(x) || !finite(y) {
			return 0, 0, 0, 0, false
		}

		if c == c0 {
			x0, y0, c0 = x, y, w.code(x, y)
		} else {
			x1, y1, c1 = x, y, w.code(x, y)
		}
	}

	return 0, 0, 0, 0, false
}

// polylines cuts a sampled curve into the runs visible in w.
// Non-finite samples and excursions outside the window break the curve.
func (w window) polylines(xs, ys []float64) []plotter.XYs {
	var (
		out []plotter.XYs
		cur plotter.XYs
	)
	flush := func() {
		if len(cur) >= 2 {
			out = append(out, cur)
		}
		cur = nil
	}

	for i := 1; i < len(xs); i++ {
		if !finite(xs[i-1]) || !finite(ys[i-1]) || !finite(xs[i]) || !finite(ys[i]) {
			flush()
			continue
		}
		x0, y0, x1, y1, ok := w.clip(xs[i-1], ys[i-1], xs[i], ys[i])
		if !ok {
			flush()
			continue
		}
		if n := len(cur); n == 0 || cur[n-1].X != x0 || cur[n-1].Y != y0 {
			flush()
			cur = append(cur, plotter.XY{X: x0, Y: y0})
		}
		cur = append(cur, plotter.XY{X: x1, Y: y1})
	}
	flush()

	return out
}

// inside keeps the finite points that lie in w.
func (w window) inside(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		if finite(xs[i]) && finite(ys[i]) && w.code(xs[i], ys[i]) == 0 {
			pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
		}
	}

	return pts
}
