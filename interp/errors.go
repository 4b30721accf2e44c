package interp

import "errors"

var (
	// ErrEmptyInput indicates no data points were given.
	ErrEmptyInput = errors.New("interp: no data points")

	// ErrLengthMismatch indicates len(xi) != len(yi).
	ErrLengthMismatch = errors.New("interp: xi and yi must have the same length")

	// ErrPointCount indicates the wrong number of points for a fixed-degree fit.
	ErrPointCount = errors.New("interp: wrong number of data points")

	// ErrNonFinite indicates a NaN or ±Inf sample.
	ErrNonFinite = errors.New("interp: NaN or Inf in data points")

	// ErrRepeatedNode indicates two equal nodes, which make the Vandermonde
	// system singular. It is returned joined with matrix.ErrSingular.
	ErrRepeatedNode = errors.New("interp: repeated interpolation node")
)
