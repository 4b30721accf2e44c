package intersect

// RoundDigits is the number of decimal digits roots are rounded to before
// deduplication in FindIntersections.
const RoundDigits = 14

// Status classifies the outcome of one starting guess in a Sweep.
type Status int

const (
	// Found - the solver returned an iterate (converged or cap exhausted).
	Found Status = iota

	// ZeroDerivative - the difference had a zero slope at some iterate.
	ZeroDerivative

	// NonFinite - a curve produced NaN or ±Inf along the way.
	NonFinite

	// Failed - reserved for any other solver error. Sweep validates curves
	// and options before solving, so newton.Solve reports none today.
	Failed
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case ZeroDerivative:
		return "zero-derivative"
	case NonFinite:
		return "non-finite"
	default:
		return "failed"
	}
}

// Attempt is the explicit per-guess result of a Sweep.
// Root and Iterations are meaningful only when Status == Found; Err holds the
// solver error otherwise.
type Attempt struct {
	Guess      float64
	Root       float64
	Iterations int
	Status     Status
	Err        error
}
