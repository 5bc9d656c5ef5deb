package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/whatif/finance"
)

// TestNPV_Validation verifies the sentinels.
func TestNPV_Validation(t *testing.T) {
	_, err := finance.NPV(0.1, nil)
	assert.ErrorIs(t, err, finance.ErrNoCashflows)

	_, err = finance.NPV(-1, []float64{1})
	assert.ErrorIs(t, err, finance.ErrBadRate)
	_, err = finance.NPV(-1.5, []float64{1})
	assert.ErrorIs(t, err, finance.ErrBadRate)
}

// TestNPV_ZeroRate verifies that rate 0 reduces to a plain sum.
func TestNPV_ZeroRate(t *testing.T) {
	npv, err := finance.NPV(0, []float64{-100, 40, 40, 40})
	require.NoError(t, err)
	assert.Equal(t, 20.0, npv)
}

// TestNPV_KnownValue verifies against a hand-computed stream:
// -100 + 110/1.1 = 0 at 10%.
func TestNPV_KnownValue(t *testing.T) {
	npv, err := finance.NPV(0.10, []float64{-100, 110})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, npv, 1e-12)

	// -1000 + 600/1.05 + 600/1.05^2 = 115.646...
	npv, err = finance.NPV(0.05, []float64{-1000, 600, 600})
	require.NoError(t, err)
	assert.InDelta(t, 115.64625850340136, npv, 1e-9)
}

// TestIRR_KnownValue verifies the solved rate zeroes the NPV.
func TestIRR_KnownValue(t *testing.T) {
	// -100 now, 110 in one period: IRR is exactly 10%.
	r, err := finance.IRR([]float64{-100, 110}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.10, r, 1e-6)

	// Multi-period: verify the fixed point property instead of a constant.
	cfs := []float64{-1000, 300, 420, 680}
	r, err = finance.IRR(cfs, nil)
	require.NoError(t, err)
	npv, err := finance.NPV(r, cfs)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, npv, 1e-6, "NPV at IRR must be ~0")
}

// TestIRR_NoSignChange verifies all-positive streams are rejected.
func TestIRR_NoSignChange(t *testing.T) {
	_, err := finance.IRR([]float64{100, 50, 50}, nil)
	assert.ErrorIs(t, err, finance.ErrNoSignChange)

	_, err = finance.IRR(nil, nil)
	assert.ErrorIs(t, err, finance.ErrNoCashflows)
}

// TestIRR_CustomInterval verifies the options path.
func TestIRR_CustomInterval(t *testing.T) {
	r, err := finance.IRR([]float64{-100, 110}, &finance.IRROptions{Lo: 0.01, Hi: 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 0.10, r, 1e-6)
}
