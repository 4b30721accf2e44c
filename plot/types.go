package plot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
)

const (
	// DefaultWidth and DefaultHeight give a 4:3 canvas, in pixels.
	DefaultWidth  = 640
	DefaultHeight = 480

	// pointsPerInch renders one vg point as one pixel.
	pointsPerInch = 72
)

var (
	// LineWidth is the stroke width of Line series.
	LineWidth = vg.Points(1.5)

	// MarkerRadius is the radius of Points markers.
	MarkerRadius = vg.Points(3)
)

// Palette used by the figure builders.
var (
	Blue  = color.NRGBA{R: 0x1f, G: 0x4e, B: 0xd8, A: 0xff}
	Red   = color.NRGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	Green = color.NRGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	Gray  = color.NRGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
)

// Range is a closed world interval [Min, Max] along one axis.
type Range struct {
	Min, Max float64
}

// Validate rejects empty, inverted and non-finite ranges.
func (r Range) Validate() error {
	if !finite(r.Min) || !finite(r.Max) || r.Min >= r.Max {
		return fmt.Errorf("[%g, %g]: %w", r.Min, r.Max, ErrBadRange)
	}

	return nil
}

// Pad widens the range by d on both sides.
func (r Range) Pad(d float64) Range { return Range{Min: r.Min - d, Max: r.Max + d} }

// Span returns the [min, max] of vs, skipping NaN and ±Inf.
// ok is false when vs holds no finite value.
func Span(vs []float64) (r Range, ok bool) {
	r = Range{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, v := range vs {
		if !finite(v) {
			continue
		}
		r.Min = math.Min(r.Min, v)
		r.Max = math.Max(r.Max, v)
		ok = true
	}

	return r, ok
}

type seriesKind int

const (
	lineSeries seriesKind = iota
	pointSeries
)

type series struct {
	kind   seriesKind
	xs, ys []float64
	color  color.NRGBA
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
