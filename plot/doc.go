// Package plot renders small line-and-marker figures on top of
// gonum.org/v1/plot.
//
// A Figure shows a fixed world window (XRange × YRange), the way a fixed
// xlim/ylim does: series are cut to the window in world coordinates before
// they reach the canvas, so a curve shooting off to ±1e150 keeps its
// crossings. Non-finite samples break a line.
//
// Raster output (PNG, JPEG, GIF, TIFF, BMP) goes through imaging; .svg, .pdf
// and .eps are written by gonum's vector backends.
//
// Interpolation and Intersections build the two figures of this module:
// an interpolating polynomial with its data points, and two curves with
// the points where they meet.
//
//	fig, _ := plot.Interpolation(xi, yi, c)
//	_ = fig.Save("poly.png") // format chosen from the extension
package plot
