// Package finance provides the two discounted-cash-flow primitives that
// multi-period what-if models need: net present value and internal rate
// of return.
//
// Conventions match numpy-financial: cashflows[0] occurs at period 0 and
// is not discounted; cashflows[t] is discounted by (1+rate)^t. An initial
// investment therefore enters as a negative cashflows[0].
package finance

import (
	"errors"
	"math"
)

var (
	// ErrNoCashflows indicates an empty cash-flow stream.
	ErrNoCashflows = errors.New("finance: cash-flow stream must be non-empty")
	// ErrBadRate indicates a discount rate at or below -100%.
	ErrBadRate = errors.New("finance: rate must be greater than -1")
	// ErrNoSignChange indicates IRR cannot bracket a root: NPV has the same
	// sign at both ends of the search interval.
	ErrNoSignChange = errors.New("finance: no IRR sign change in search interval")
)

// IRR search defaults. The interval is wide enough for any realistic
// project return; MaxIter=200 halves the bracket far below float64 eps.
const (
	DefaultIRRLo      = -0.99
	DefaultIRRHi      = 10.0
	DefaultIRRMaxIter = 200
	DefaultIRRTol     = 1e-9
)

// NPV computes the net present value of cashflows at the given per-period
// discount rate: Σ cashflows[t] / (1+rate)^t.
//
// Errors:
//   - ErrNoCashflows — empty stream.
//   - ErrBadRate     — rate <= -1 (discount factor undefined).
//
// Complexity: O(n).
func NPV(rate float64, cashflows []float64) (float64, error) {
	if len(cashflows) == 0 {
		return 0, ErrNoCashflows
	}
	if math.IsNaN(rate) || rate <= -1 {
		return 0, ErrBadRate
	}

	var (
		npv  float64
		disc = 1.0
	)
	for _, cf := range cashflows {
		npv += cf / disc
		disc *= 1 + rate
	}

	return npv, nil
}

// IRROptions configures the IRR bisection search.
// A nil options value means the Default* constants.
type IRROptions struct {
	// Lo, Hi bound the rate search interval; NPV must change sign across it.
	Lo, Hi float64
	// MaxIter caps the number of bisection steps.
	MaxIter int
	// Tol stops the search once |NPV(mid)| <= Tol.
	Tol float64
}

// IRR finds the rate at which NPV(rate, cashflows) crosses zero, by
// bisection over [opts.Lo, opts.Hi].
//
// Errors:
//   - ErrNoCashflows  — empty stream.
//   - ErrNoSignChange — NPV has the same sign at Lo and Hi.
//
// Complexity: O(MaxIter · n).
func IRR(cashflows []float64, opts *IRROptions) (float64, error) {
	if len(cashflows) == 0 {
		return 0, ErrNoCashflows
	}

	lo, hi := DefaultIRRLo, DefaultIRRHi
	maxIter, tol := DefaultIRRMaxIter, DefaultIRRTol
	if opts != nil {
		if opts.Lo != 0 || opts.Hi != 0 {
			lo, hi = opts.Lo, opts.Hi
		}
		if opts.MaxIter > 0 {
			maxIter = opts.MaxIter
		}
		if opts.Tol > 0 {
			tol = opts.Tol
		}
	}

	fLo, err := NPV(lo, cashflows)
	if err != nil {
		return 0, err
	}
	fHi, err := NPV(hi, cashflows)
	if err != nil {
		return 0, err
	}
	if fLo*fHi > 0 {
		return 0, ErrNoSignChange
	}

	var mid, fMid float64
	for i := 0; i < maxIter; i++ {
		mid = (lo + hi) / 2
		if fMid, err = NPV(mid, cashflows); err != nil {
			return 0, err
		}
		if math.Abs(fMid) <= tol {
			return mid, nil
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}

	return (lo + hi) / 2, nil
}
