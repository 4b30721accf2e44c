package intersect

import "errors"

var (
	// ErrNilCurve indicates g1 or g2 is nil.
	ErrNilCurve = errors.New("intersect: nil curve")

	// ErrBadRange indicates n <= 0, upper <= lower or non-finite bounds.
	ErrBadRange = errors.New("intersect: invalid sweep range")
)
