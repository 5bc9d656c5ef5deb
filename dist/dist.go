package dist

import (
	"errors"
	"math"
	"math/rand"
	"sort"
)

var (
	// ErrBadSupport indicates a degenerate or inverted support (e.g. lo >= hi).
	ErrBadSupport = errors.New("dist: invalid distribution support")
	// ErrBadSpread indicates a non-positive or non-finite spread parameter.
	ErrBadSpread = errors.New("dist: spread parameter must be positive and finite")
	// ErrBadWeights indicates empty, mismatched, negative or all-zero weights.
	ErrBadWeights = errors.New("dist: invalid discrete weights")
)

// Dist is a samplable univariate distribution. Sample must be pure with
// respect to rng: identical rng state yields identical draws.
type Dist interface {
	// Sample draws one variate using rng as the sole source of randomness.
	Sample(rng *rand.Rand) float64

	// Mean reports the distribution's expected value.
	Mean() float64
}

// ---------------------------------------------------------------- Uniform

// Uniform is the continuous uniform distribution on [lo, hi).
type Uniform struct {
	lo, hi float64
}

// NewUniform builds a Uniform on [lo, hi). Requires lo < hi and finite bounds.
func NewUniform(lo, hi float64) (Uniform, error) {
	if !isFinite(lo) || !isFinite(hi) || lo >= hi {
		return Uniform{}, ErrBadSupport
	}

	return Uniform{lo: lo, hi: hi}, nil
}

// Sample draws lo + U·(hi-lo) for U ~ [0,1).
func (u Uniform) Sample(rng *rand.Rand) float64 {
	return u.lo + rng.Float64()*(u.hi-u.lo)
}

// Mean returns (lo+hi)/2.
func (u Uniform) Mean() float64 { return (u.lo + u.hi) / 2 }

// ----------------------------------------------------------------- Normal

// Normal is the Gaussian distribution.
type Normal struct {
	mean, std float64
}

// NewNormal builds a Normal with the given mean and standard deviation.
// Requires std > 0 and finite parameters.
func NewNormal(mean, std float64) (Normal, error) {
	if !isFinite(mean) || !isFinite(std) || std <= 0 {
		return Normal{}, ErrBadSpread
	}

	return Normal{mean: mean, std: std}, nil
}

// Sample draws mean + std·Z for Z ~ N(0,1).
func (n Normal) Sample(rng *rand.Rand) float64 {
	return n.mean + n.std*rng.NormFloat64()
}

// Mean returns the location parameter.
func (n Normal) Mean() float64 { return n.mean }

// ------------------------------------------------------------- Triangular

// Triangular is the three-point distribution on [lo, hi] with the given mode.
type Triangular struct {
	lo, mode, hi float64
}

// NewTriangular builds a Triangular on [lo, hi] with mode in between.
// Requires lo < hi and lo <= mode <= hi, all finite.
func NewTriangular(lo, mode, hi float64) (Triangular, error) {
	if !isFinite(lo) || !isFinite(mode) || !isFinite(hi) ||
		lo >= hi || mode < lo || mode > hi {
		return Triangular{}, ErrBadSupport
	}

	return Triangular{lo: lo, mode: mode, hi: hi}, nil
}

// Sample draws by inverse-CDF: the CDF has a single breakpoint at the mode,
// F(mode) = (mode-lo)/(hi-lo); each branch inverts to a square root.
func (t Triangular) Sample(rng *rand.Rand) float64 {
	u := rng.Float64()
	span := t.hi - t.lo
	fc := (t.mode - t.lo) / span
	if u < fc {
		return t.lo + math.Sqrt(u*span*(t.mode-t.lo))
	}

	return t.hi - math.Sqrt((1-u)*span*(t.hi-t.mode))
}

// Mean returns (lo+mode+hi)/3.
func (t Triangular) Mean() float64 { return (t.lo + t.mode + t.hi) / 3 }

// -------------------------------------------------------------- LogNormal

// LogNormal is the distribution of exp(N(mu, sigma)).
type LogNormal struct {
	mu, sigma float64
}

// NewLogNormal builds a LogNormal with log-space parameters mu and sigma.
// Requires sigma > 0 and finite parameters.
func NewLogNormal(mu, sigma float64) (LogNormal, error) {
	if !isFinite(mu) || !isFinite(sigma) || sigma <= 0 {
		return LogNormal{}, ErrBadSpread
	}

	return LogNormal{mu: mu, sigma: sigma}, nil
}

// Sample draws exp(mu + sigma·Z).
func (l LogNormal) Sample(rng *rand.Rand) float64 {
	return math.Exp(l.mu + l.sigma*rng.NormFloat64())
}

// Mean returns exp(mu + sigma²/2).
func (l LogNormal) Mean() float64 { return math.Exp(l.mu + l.sigma*l.sigma/2) }

// --------------------------------------------------------------- Discrete

// Discrete is a finite-support distribution over given values with
// relative (not necessarily normalized) weights.
type Discrete struct {
	values []float64
	cum    []float64 // cumulative weights; cum[len-1] == total
	mean   float64
}

// NewDiscrete builds a Discrete over values with matching weights.
// Weights must be non-negative, finite, not all zero, and len(weights)
// must equal len(values).
func NewDiscrete(values, weights []float64) (Discrete, error) {
	if len(values) == 0 || len(values) != len(weights) {
		return Discrete{}, ErrBadWeights
	}

	var (
		cum   = make([]float64, len(weights))
		vals  = make([]float64, len(values))
		total float64
		wmean float64
	)
	copy(vals, values)
	for i, w := range weights {
		if !isFinite(w) || w < 0 || !isFinite(values[i]) {
			return Discrete{}, ErrBadWeights
		}
		total += w
		cum[i] = total
		wmean += w * values[i]
	}
	if total == 0 {
		return Discrete{}, ErrBadWeights
	}

	return Discrete{values: vals, cum: cum, mean: wmean / total}, nil
}

// Sample draws a value with probability proportional to its weight,
// via binary search over the cumulative weights.
func (d Discrete) Sample(rng *rand.Rand) float64 {
	u := rng.Float64() * d.cum[len(d.cum)-1]
	i := sort.SearchFloat64s(d.cum, u)
	// SearchFloat64s finds the first cum[i] >= u; a draw exactly on a
	// boundary belongs to the next value, except at the very end.
	if i == len(d.cum) {
		i--
	}
	for i < len(d.cum)-1 && d.cum[i] == u {
		i++
	}

	return d.values[i]
}

// Mean returns the weight-averaged value.
func (d Discrete) Mean() float64 { return d.mean }

// ------------------------------------------------------------------ Point

// Point is the degenerate distribution that always yields one value.
// Handy for pinning an otherwise-random input during experiments.
type Point struct {
	v float64
}

// Constant builds a Point mass at v.
func Constant(v float64) Point { return Point{v: v} }

// Sample returns the fixed value; rng is untouched.
func (p Point) Sample(_ *rand.Rand) float64 { return p.v }

// Mean returns the fixed value.
func (p Point) Mean() float64 { return p.v }

// isFinite reports whether f is neither NaN nor ±Inf.
func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
