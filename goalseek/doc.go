// Package goalseek back-solves one model input so that a chosen output
// hits a target value — the programmatic form of Excel's Goal Seek.
//
// The solver is bisection with a non-zero target: given a bracketing
// interval [lo, hi] where f(lo)-target and f(hi)-target have opposite
// signs, it halves the interval until it hits the target exactly, meets
// the optional tolerance, or exhausts MaxIter and returns the final
// midpoint.
//
// ⚙️ Usage:
//
//	x, err := goalseek.Solve(m, "profit", 0, "order_quantity", 0, 1000, nil)
//	if err != nil {
//	  // ErrNoBracket: profit-target has the same sign at both ends
//	}
//
// Bisection only needs the output to cross the target once inside the
// interval; no derivative or smoothness is required. For outputs that are
// flat or cross multiple times, the solver may stop on ErrBracketLost —
// shrink the interval around the crossing you want.
//
// Solve clones the model; the caller's model is never mutated.
//
// Complexity: O(MaxIter) output evaluations. The bracket width after n
// iterations is (hi-lo)/2ⁿ.
package goalseek
