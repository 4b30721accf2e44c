package plot

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure is a plot of line and point series over a fixed world window.
// Build it with New, add series, then Render, Encode or Save.
type Figure struct {
	Title         string
	Width, Height int
	XRange        Range
	YRange        Range

	series []series
}

// New returns a DefaultWidth×DefaultHeight figure over the given window.
func New(x, y Range) (*Figure, error) {
	if err := x.Validate(); err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	if err := y.Validate(); err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}

	return &Figure{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		XRange: x,
		YRange: y,
	}, nil
}

// Line adds a polyline through (xs[i], ys[i]). Non-finite samples break the line.
func (f *Figure) Line(xs, ys []float64, c color.Color) error {
	return f.add(lineSeries, xs, ys, c)
}

// Points adds a filled circular marker at every (xs[i], ys[i]) inside the window.
func (f *Figure) Points(xs, ys []float64, c color.Color) error {
	return f.add(pointSeries, xs, ys, c)
}

func (f *Figure) add(kind seriesKind, xs, ys []float64, c color.Color) error {
	if len(xs) == 0 || len(xs) != len(ys) {
		return fmt.Errorf("len(xs)=%d, len(ys)=%d: %w", len(xs), len(ys), ErrEmptySeries)
	}
	f.series = append(f.series, series{
		kind:  kind,
		xs:    append([]float64(nil), xs...),
		ys:    append([]float64(nil), ys...),
		color: color.NRGBAModel.Convert(c).(color.NRGBA),
	})

	return nil
}

// validate checks the canvas size and both ranges.
func (f *Figure) validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", f.Width, f.Height, ErrBadSize)
	}
	if err := f.XRange.Validate(); err != nil {
		return fmt.Errorf("x axis: %w", err)
	}
	if err := f.YRange.Validate(); err != nil {
		return fmt.Errorf("y axis: %w", err)
	}

	return nil
}

// build assembles the gonum plot: grid, series in insertion order, then the
// fixed axis window.
func (f *Figure) build() (*gplot.Plot, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	w := window{x: f.XRange, y: f.YRange}

	p := gplot.New()
	p.Title.Text = f.Title
	p.Add(plotter.NewGrid())

	for _, s := range f.series {
		switch s.kind {
		case lineSeries:
			for _, run := range w.polylines(s.xs, s.ys) {
				l, err := plotter.NewLine(run)
				if err != nil {
					return nil, fmt.Errorf("plot: line: %w", err)
				}
				l.LineStyle.Color = s.color
				l.LineStyle.Width = LineWidth
				p.Add(l)
			}
		case pointSeries:
			pts := w.inside(s.xs, s.ys)
			if len(pts) == 0 {
				continue
			}
			sc, err := plotter.NewScatter(pts)
			if err != nil {
				return nil, fmt.Errorf("plot: points: %w", err)
			}
			sc.GlyphStyle.Color = s.color
			sc.GlyphStyle.Radius = MarkerRadius
			sc.GlyphStyle.Shape = draw.CircleGlyph{}
			p.Add(sc)
		}
	}

	// Set after Add: Add widens the axes to the data ranges.
	p.X.Min, p.X.Max = f.XRange.Min, f.XRange.Max
	p.Y.Min, p.Y.Max = f.YRange.Min, f.YRange.Max

	return p, nil
}

// Render draws the figure onto a fresh Width×Height canvas.
func (f *Figure) Render() (*image.NRGBA, error) {
	p, err := f.build()
	if err != nil {
		return nil, err
	}
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(f.Width), vg.Length(f.Height)),
		vgimg.UseDPI(pointsPerInch),
	)
	p.Draw(draw.New(c))

	return imaging.Clone(c.Image()), nil
}

// Encode renders and writes the figure to w in the given raster format.
func (f *Figure) Encode(w io.Writer, format imaging.Format) error {
	img, err := f.Render()
	if err != nil {
		return err
	}

	return imaging.Encode(w, img, format)
}

// Save writes the figure to path; the format follows the extension.
// .svg, .pdf and .eps are vector output, anything else is rendered and
// encoded as a raster image (.png, .jpg, .gif, .bmp, .tif).
func (f *Figure) Save(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg", ".pdf", ".eps":
		p, err := f.build()
		if err != nil {
			return err
		}
		if err = p.Save(vg.Length(f.Width), vg.Length(f.Height), path); err != nil {
			return fmt.Errorf("plot: save %s: %w", path, err)
		}

		return nil
	}

	img, err := f.Render()
	if err != nil {
		return err
	}
	if err = imaging.Save(img, path); err != nil {
		return fmt.Errorf("plot: save %s: %w", path, err)
	}

	return nil
}
