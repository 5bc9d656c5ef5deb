package goalseek

import (
	"errors"
	"math"

	"github.com/katalvlaran/whatif/model"
)

var (
	// ErrNilModel indicates a nil model was passed to Solve.
	ErrNilModel = errors.New("goalseek: model is nil")
	// ErrBadInterval indicates lo >= hi or a non-finite bound or target.
	ErrBadInterval = errors.New("goalseek: need finite lo < hi and a finite target")
	// ErrNoBracket indicates the interval does not bracket the target:
	// f(lo)-target and f(hi)-target do not have strictly opposite signs.
	ErrNoBracket = errors.New("goalseek: interval does not bracket the target")
	// ErrBracketLost indicates the output stopped straddling the target
	// mid-search (non-monotone or flat output inside the interval).
	ErrBracketLost = errors.New("goalseek: bracket lost during bisection")
)

// DefaultMaxIter is the bisection step cap when Options is nil or MaxIter<=0.
// 100 halvings shrink any float64 interval to adjacent representable values.
const DefaultMaxIter = 100

// Options configures Solve.
type Options struct {
	// MaxIter caps bisection steps; <=0 means DefaultMaxIter.
	MaxIter int

	// Tol, when positive, stops the search early once |f(mid)-target| <= Tol.
	// Zero (the default) keeps the classic behavior: run MaxIter halvings
	// and return the final midpoint unless the target is hit exactly.
	Tol float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options { return Options{MaxIter: DefaultMaxIter} }

// Solve finds a value x of the named input within [lo, hi] such that the
// named output evaluates to target.
//
// The search requires (f(lo)-target)·(f(hi)-target) < 0; otherwise
// ErrNoBracket is returned and no iterations run. On an exact hit the
// midpoint is returned immediately. After MaxIter halvings the current
// midpoint is returned as the best approximation.
//
// Errors:
//   - ErrNilModel / ErrBadInterval — argument validation.
//   - ErrNoBracket                 — target not straddled by [lo, hi].
//   - ErrBracketLost               — signs degenerate mid-search.
//   - model.ErrUnknownInput / model.ErrUnknownOutput — bad names.
//
// Complexity: 2 + MaxIter output evaluations, O(1) space.
func Solve(m model.Model, output string, target float64, input string, lo, hi float64, opts *Options) (float64, error) {
	if m == nil {
		return 0, ErrNilModel
	}
	if !isFinite(lo) || !isFinite(hi) || !isFinite(target) || lo >= hi {
		return 0, ErrBadInterval
	}

	maxIter := DefaultMaxIter
	tol := 0.0
	if opts != nil {
		if opts.MaxIter > 0 {
			maxIter = opts.MaxIter
		}
		if opts.Tol > 0 {
			tol = opts.Tol
		}
	}

	// Work on a clone; all evaluation goes through eval.
	clone := m.Clone()
	eval := func(x float64) (float64, error) {
		if err := clone.SetInput(input, x); err != nil {
			return 0, err
		}

		return clone.Output(output)
	}

	fLo, err := eval(lo)
	if err != nil {
		return 0, err
	}
	fHi, err := eval(hi)
	if err != nil {
		return 0, err
	}
	if (fLo-target)*(fHi-target) >= 0 {
		return 0, ErrNoBracket
	}

	var (
		a, b   = lo, hi
		fA, fB = fLo, fHi
		mid    float64
		fMid   float64
	)
	for n := 0; n < maxIter; n++ {
		mid = (a + b) / 2
		if fMid, err = eval(mid); err != nil {
			return 0, err
		}
		if tol > 0 && math.Abs(fMid-target) <= tol {
			return mid, nil
		}

		// Keep the half that still straddles the target.
		switch {
		case (fA-target)*(fMid-target) < 0:
			b, fB = mid, fMid
		case (fB-target)*(fMid-target) < 0:
			a, fA = mid, fMid
		case fMid == target:
			return mid, nil
		default:
			return 0, ErrBracketLost
		}
	}

	// Iteration cap reached: the midpoint of the final bracket is the
	// best approximation available.
	return (a + b) / 2, nil
}

// isFinite reports whether f is neither NaN nor ±Inf.
func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
