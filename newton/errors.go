package newton

import "errors"

var (
	// ErrZeroDerivative is the division-by-zero condition: f'(x) == 0 at the
	// current iterate, so the Newton step is undefined.
	ErrZeroDerivative = errors.New("newton: zero derivative")

	// ErrNonFinite indicates the evaluator returned NaN or ±Inf.
	ErrNonFinite = errors.New("newton: evaluator returned NaN or Inf")

	// ErrNilEvaluator indicates a nil Evaluator was passed.
	ErrNilEvaluator = errors.New("newton: nil evaluator")

	// ErrBadOptions indicates invalid MaxIter or Tol.
	ErrBadOptions = errors.New("newton: invalid options")
)
