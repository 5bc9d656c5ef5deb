// Package stats summarizes simulation output: location, spread, quantiles
// and histograms over a sample of float64 values.
//
// All functions are deterministic and leave their input untouched (sorting
// happens on an internal copy). Quantiles use linear interpolation between
// order statistics (the R-7 definition, matching NumPy's default), so
// summaries line up with what a spreadsheet or numpy.percentile reports.
package stats

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrEmptySample indicates an empty input sample.
	ErrEmptySample = errors.New("stats: sample must be non-empty")
	// ErrBadQuantile indicates q outside [0, 1].
	ErrBadQuantile = errors.New("stats: quantile must be in [0,1]")
	// ErrBadBins indicates a non-positive histogram bin count.
	ErrBadBins = errors.New("stats: bins must be >= 1")
)

// Summary is the five-number summary plus mean and sample deviation.
type Summary struct {
	N      int
	Mean   float64
	Std    float64 // sample standard deviation (n-1 denominator); 0 for N==1
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe computes a Summary of the sample.
//
// Errors: ErrEmptySample.
//
// Complexity: O(n log n) time, O(n) space (one sorted copy).
func Describe(sample []float64) (Summary, error) {
	n := len(sample)
	if n == 0 {
		return Summary{}, ErrEmptySample
	}

	sorted := sortedCopy(sample)

	s := Summary{
		N:      n,
		Mean:   mean(sample),
		Min:    sorted[0],
		Q1:     quantileSorted(sorted, 0.25),
		Median: quantileSorted(sorted, 0.5),
		Q3:     quantileSorted(sorted, 0.75),
		Max:    sorted[n-1],
	}

	if n > 1 {
		var ss float64
		for _, v := range sample {
			d := v - s.Mean
			ss += d * d
		}
		s.Std = math.Sqrt(ss / float64(n-1))
	}

	return s, nil
}

// Mean returns the arithmetic mean of the sample.
//
// Errors: ErrEmptySample.
func Mean(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return 0, ErrEmptySample
	}

	return mean(sample), nil
}

// Quantile returns the q-th quantile of the sample using linear
// interpolation between closest ranks (R-7): for n values the rank is
// h = (n-1)q and the result interpolates between floor(h) and floor(h)+1.
//
// Errors: ErrEmptySample, ErrBadQuantile.
//
// Complexity: O(n log n) time, O(n) space.
func Quantile(sample []float64, q float64) (float64, error) {
	if len(sample) == 0 {
		return 0, ErrEmptySample
	}
	if math.IsNaN(q) || q < 0 || q > 1 {
		return 0, ErrBadQuantile
	}

	return quantileSorted(sortedCopy(sample), q), nil
}

// Histogram bins the sample into `bins` equal-width intervals spanning
// [min, max]. It returns the per-bin counts and the bins+1 edges. The last
// bin is closed on both sides, so the maximum lands in the final bin.
// A constant sample yields a single populated first bin.
//
// Errors: ErrEmptySample, ErrBadBins.
//
// Complexity: O(n + bins) time, O(bins) space.
func Histogram(sample []float64, bins int) (counts []int, edges []float64, err error) {
	if len(sample) == 0 {
		return nil, nil, ErrEmptySample
	}
	if bins < 1 {
		return nil, nil, ErrBadBins
	}

	lo, hi := sample[0], sample[0]
	for _, v := range sample[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	counts = make([]int, bins)
	edges = make([]float64, bins+1)
	width := (hi - lo) / float64(bins)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[bins] = hi // guard against FP drift on the last edge

	if width == 0 {
		counts[0] = len(sample)

		return counts, edges, nil
	}

	var k int
	for _, v := range sample {
		k = int((v - lo) / width)
		if k >= bins {
			k = bins - 1 // max value belongs to the last (closed) bin
		}
		counts[k]++
	}

	return counts, edges, nil
}

// mean assumes a non-empty sample.
func mean(sample []float64) float64 {
	var sum float64
	for _, v := range sample {
		sum += v
	}

	return sum / float64(len(sample))
}

// sortedCopy returns an ascending copy of the sample.
func sortedCopy(sample []float64) []float64 {
	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)

	return sorted
}

// quantileSorted assumes sorted ascending, non-empty, and q in [0,1].
func quantileSorted(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := float64(n-1) * q
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}

	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}
