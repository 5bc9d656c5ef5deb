package dist_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/whatif/dist"
)

const sampleDraws = 20000

// drawMany samples n variates from d with a fixed seed.
func drawMany(d dist.Dist, n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Sample(rng)
	}

	return out
}

// TestConstructors_Validation verifies parameter validation sentinels.
func TestConstructors_Validation(t *testing.T) {
	_, err := dist.NewUniform(5, 5)
	assert.ErrorIs(t, err, dist.ErrBadSupport, "lo==hi")
	_, err = dist.NewUniform(5, 1)
	assert.ErrorIs(t, err, dist.ErrBadSupport, "inverted bounds")
	_, err = dist.NewUniform(math.NaN(), 1)
	assert.ErrorIs(t, err, dist.ErrBadSupport, "NaN bound")

	_, err = dist.NewNormal(0, 0)
	assert.ErrorIs(t, err, dist.ErrBadSpread, "zero std")
	_, err = dist.NewNormal(0, -1)
	assert.ErrorIs(t, err, dist.ErrBadSpread, "negative std")

	_, err = dist.NewTriangular(0, 5, 4)
	assert.ErrorIs(t, err, dist.ErrBadSupport, "mode above hi")
	_, err = dist.NewTriangular(0, -1, 4)
	assert.ErrorIs(t, err, dist.ErrBadSupport, "mode below lo")
	_, err = dist.NewTriangular(4, 4, 4)
	assert.ErrorIs(t, err, dist.ErrBadSupport, "degenerate support")

	_, err = dist.NewLogNormal(0, 0)
	assert.ErrorIs(t, err, dist.ErrBadSpread)

	_, err = dist.NewDiscrete(nil, nil)
	assert.ErrorIs(t, err, dist.ErrBadWeights, "empty support")
	_, err = dist.NewDiscrete([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, dist.ErrBadWeights, "length mismatch")
	_, err = dist.NewDiscrete([]float64{1}, []float64{-1})
	assert.ErrorIs(t, err, dist.ErrBadWeights, "negative weight")
	_, err = dist.NewDiscrete([]float64{1, 2}, []float64{0, 0})
	assert.ErrorIs(t, err, dist.ErrBadWeights, "all-zero weights")
}

// TestUniform_RangeAndMean verifies support bounds and empirical mean.
func TestUniform_RangeAndMean(t *testing.T) {
	u, err := dist.NewUniform(2, 6)
	require.NoError(t, err)
	assert.Equal(t, 4.0, u.Mean())

	var sum float64
	for _, v := range drawMany(u, sampleDraws, 7) {
		require.GreaterOrEqual(t, v, 2.0)
		require.Less(t, v, 6.0)
		sum += v
	}
	assert.InDelta(t, 4.0, sum/sampleDraws, 0.05, "empirical mean off")
}

// TestNormal_Mean verifies location and empirical moments.
func TestNormal_Mean(t *testing.T) {
	n, err := dist.NewNormal(10, 2)
	require.NoError(t, err)
	assert.Equal(t, 10.0, n.Mean())

	var sum float64
	for _, v := range drawMany(n, sampleDraws, 11) {
		sum += v
	}
	assert.InDelta(t, 10.0, sum/sampleDraws, 0.1, "empirical mean off")
}

// TestTriangular_RangeAndMean verifies support and the (lo+mode+hi)/3 mean.
func TestTriangular_RangeAndMean(t *testing.T) {
	tr, err := dist.NewTriangular(50, 75, 85)
	require.NoError(t, err)
	assert.Equal(t, 70.0, tr.Mean())

	var sum float64
	for _, v := range drawMany(tr, sampleDraws, 13) {
		require.GreaterOrEqual(t, v, 50.0)
		require.LessOrEqual(t, v, 85.0)
		sum += v
	}
	assert.InDelta(t, 70.0, sum/sampleDraws, 0.5, "empirical mean off")
}

// TestLogNormal_PositiveAndMean verifies positivity and exp(mu+sigma²/2).
func TestLogNormal_PositiveAndMean(t *testing.T) {
	l, err := dist.NewLogNormal(0, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(0.03125), l.Mean(), 1e-12)

	for _, v := range drawMany(l, 1000, 17) {
		require.Greater(t, v, 0.0)
	}
}

// TestDiscrete_SupportAndMean verifies draws stay on the support and
// weighting is respected.
func TestDiscrete_SupportAndMean(t *testing.T) {
	d, err := dist.NewDiscrete([]float64{1, 2, 4}, []float64{1, 1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 2.75, d.Mean(), 1e-12, "(1+2+2*4)/4")

	freq := map[float64]int{}
	for _, v := range drawMany(d, sampleDraws, 19) {
		require.Contains(t, []float64{1, 2, 4}, v)
		freq[v]++
	}
	assert.InDelta(t, 0.5, float64(freq[4])/sampleDraws, 0.02, "weight-2 value should appear ~half the time")
}

// TestDiscrete_ZeroWeightValue verifies zero-weight values are never drawn.
func TestDiscrete_ZeroWeightValue(t *testing.T) {
	d, err := dist.NewDiscrete([]float64{1, 2, 3}, []float64{0, 1, 1})
	require.NoError(t, err)

	for _, v := range drawMany(d, 5000, 23) {
		require.NotEqual(t, 1.0, v, "zero-weight value drawn")
	}
}

// TestConstant verifies the point mass.
func TestConstant(t *testing.T) {
	p := dist.Constant(3.5)
	assert.Equal(t, 3.5, p.Mean())
	assert.Equal(t, 3.5, p.Sample(nil), "Point ignores the rng")
}

// TestSample_Deterministic verifies identical seeds yield identical draws.
func TestSample_Deterministic(t *testing.T) {
	tr, err := dist.NewTriangular(0, 1, 2)
	require.NoError(t, err)

	a := drawMany(tr, 100, 42)
	b := drawMany(tr, 100, 42)
	assert.Equal(t, a, b, "same seed must reproduce the same stream")
}
