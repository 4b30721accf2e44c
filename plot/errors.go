package plot

import "errors"

var (
	// ErrEmptySeries indicates a series without points or with xs/ys of different lengths.
	ErrEmptySeries = errors.New("plot: empty or ragged series")

	// ErrBadRange indicates a world range with Min >= Max or non-finite bounds.
	ErrBadRange = errors.New("plot: invalid axis range")

	// ErrBadSize indicates a canvas without positive width and height.
	ErrBadSize = errors.New("plot: invalid canvas size")
)
