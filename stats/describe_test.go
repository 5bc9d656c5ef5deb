package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/whatif/stats"
)

// TestDescribe_Empty verifies the empty-sample sentinel.
func TestDescribe_Empty(t *testing.T) {
	_, err := stats.Describe(nil)
	assert.ErrorIs(t, err, stats.ErrEmptySample)
}

// TestDescribe_SingleValue verifies the degenerate one-value summary.
func TestDescribe_SingleValue(t *testing.T) {
	s, err := stats.Describe([]float64{7})
	require.NoError(t, err)
	assert.Equal(t, 1, s.N)
	assert.Equal(t, 7.0, s.Mean)
	assert.Equal(t, 0.0, s.Std, "single value has zero sample deviation")
	assert.Equal(t, 7.0, s.Min)
	assert.Equal(t, 7.0, s.Median)
	assert.Equal(t, 7.0, s.Max)
}

// TestDescribe_KnownSample verifies against hand-computed values
// for the sample 2,4,4,4,5,5,7,9 (mean 5, population variance 4).
func TestDescribe_KnownSample(t *testing.T) {
	sample := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	s, err := stats.Describe(sample)
	require.NoError(t, err)
	assert.Equal(t, 8, s.N)
	assert.Equal(t, 5.0, s.Mean)
	// sum of squared deviations = 32; sample variance = 32/7
	assert.InDelta(t, 2.13808993, s.Std, 1e-8)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
	assert.Equal(t, 4.5, s.Median, "average of 4 and 5")
	assert.Equal(t, 4.0, s.Q1)
	assert.InDelta(t, 5.5, s.Q3, 1e-12, "R-7 interpolation between 5 and 7")
}

// TestQuantile_R7 verifies R-7 interpolation on 1..4.
func TestQuantile_R7(t *testing.T) {
	sample := []float64{1, 2, 3, 4}

	q, err := stats.Quantile(sample, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, q)

	q, err = stats.Quantile(sample, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, q)

	// h = 3*0.5 = 1.5 → between 2 and 3
	q, err = stats.Quantile(sample, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 2.5, q)

	// h = 3*0.25 = 0.75 → 1 + 0.75*(2-1)
	q, err = stats.Quantile(sample, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 1.75, q)

	_, err = stats.Quantile(sample, 1.5)
	assert.ErrorIs(t, err, stats.ErrBadQuantile)
	_, err = stats.Quantile(nil, 0.5)
	assert.ErrorIs(t, err, stats.ErrEmptySample)
}

// TestQuantile_DoesNotMutate verifies the input stays unsorted.
func TestQuantile_DoesNotMutate(t *testing.T) {
	sample := []float64{3, 1, 2}
	_, err := stats.Quantile(sample, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, sample)
}

// TestHistogram_Basic verifies counts, edges and the closed last bin.
func TestHistogram_Basic(t *testing.T) {
	sample := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 10}

	counts, edges, err := stats.Histogram(sample, 5)
	require.NoError(t, err)
	require.Len(t, counts, 5)
	require.Len(t, edges, 6)
	assert.Equal(t, 0.0, edges[0])
	assert.Equal(t, 10.0, edges[5])
	// width=2: [0,2) {0,1} [2,4) {2,3} [4,6) {4,5} [6,8) {6,7} [8,10] {8,10}
	assert.Equal(t, []int{2, 2, 2, 2, 2}, counts)

	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, len(sample), total, "every value must land in a bin")
}

// TestHistogram_Degenerate verifies the constant-sample and bad-bins paths.
func TestHistogram_Degenerate(t *testing.T) {
	counts, edges, err := stats.Histogram([]float64{5, 5, 5}, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0, 0, 0}, counts)
	assert.Equal(t, 5.0, edges[0])
	assert.Equal(t, 5.0, edges[4])

	_, _, err = stats.Histogram([]float64{1}, 0)
	assert.ErrorIs(t, err, stats.ErrBadBins)
	_, _, err = stats.Histogram(nil, 3)
	assert.ErrorIs(t, err, stats.ErrEmptySample)
}

// TestMean verifies the convenience wrapper.
func TestMean(t *testing.T) {
	m, err := stats.Mean([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2.5, m)

	_, err = stats.Mean(nil)
	assert.ErrorIs(t, err, stats.ErrEmptySample)
}
