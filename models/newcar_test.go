package models_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/whatif/dist"
	"github.com/katalvlaran/whatif/finance"
	"github.com/katalvlaran/whatif/model"
	"github.com/katalvlaran/whatif/models"
	"github.com/katalvlaran/whatif/montecarlo"
)

// TestNewCar_Schedules verifies the yearly schedule identities.
func TestNewCar_Schedules(t *testing.T) {
	c := models.NewNewCar()

	sales := c.Sales()
	require.Len(t, sales, models.NewCarYears)
	assert.Equal(t, models.DefaultYr1Demand, sales[0])
	for tt := 1; tt < models.NewCarYears; tt++ {
		assert.InDelta(t, (1-c.DemandDecr)*sales[tt-1], sales[tt], 1e-9, "year %d demand decay", tt)
	}

	uc := c.UnitContribution()
	assert.Equal(t, c.BaseMargin, uc[0])
	assert.InDelta(t, c.BaseMargin*0.96, uc[1], 1e-9)

	dep := c.Depreciation()
	var depTotal float64
	for _, d := range dep {
		depTotal += d
	}
	assert.InDelta(t, c.FixedDevCost, depTotal, 1e-6, "straight-line depreciation must sum to the investment")

	// Cash flow identity: after-tax profit plus depreciation.
	atp, cf := c.AfterTaxProfit(), c.CashFlow()
	for tt := range cf {
		assert.InDelta(t, atp[tt]+dep[tt], cf[tt], 1e-6)
	}
}

// TestNewCar_NPVZeroRate verifies NPV at 0% equals total cash flow minus
// the investment (no discounting).
func TestNewCar_NPVZeroRate(t *testing.T) {
	c := models.NewNewCar()
	c.DiscountRate = 0

	npv, err := c.NPV()
	require.NoError(t, err)
	assert.InDelta(t, c.TotalCashFlow()-c.FixedDevCost, npv, 1e-6)
}

// TestNewCar_IRRZeroesNPV verifies the IRR fixed point.
func TestNewCar_IRRZeroesNPV(t *testing.T) {
	c := models.NewNewCar()

	irr, err := c.IRR()
	require.NoError(t, err)

	stream := append([]float64{-c.FixedDevCost}, c.CashFlow()...)
	npv, err := finance.NPV(irr, stream)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, npv, 1.0, "NPV at IRR must be ~0 (scale is hundreds of millions)")
}

// TestNewCar_ModelProtocol verifies the model.Model implementation.
func TestNewCar_ModelProtocol(t *testing.T) {
	c := models.NewNewCar()

	require.NoError(t, c.SetInput("tax_rate", 0))
	v, err := c.Input("tax_rate")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	_, err = c.Output("ebitda")
	assert.ErrorIs(t, err, model.ErrUnknownOutput)
	assert.ErrorIs(t, c.SetInput("horizon", 10), model.ErrUnknownInput)

	// Zero tax must raise cash flow versus the default 21%.
	npvNoTax, err := c.Output("npv")
	require.NoError(t, err)
	npvTaxed, err := models.NewNewCar().Output("npv")
	require.NoError(t, err)
	assert.Greater(t, npvNoTax, npvTaxed)
}

// TestNewCar_Simulation runs the textbook experiment: uncertain first-year
// demand and decay rate, NPV distribution out.
func TestNewCar_Simulation(t *testing.T) {
	c := models.NewNewCar()

	yr1, err := dist.NewTriangular(50000, 53560, 58000)
	require.NoError(t, err)
	decay, err := dist.NewTriangular(0.05, 0.077, 0.10)
	require.NoError(t, err)

	results, err := montecarlo.Simulate(context.Background(), c,
		map[string]dist.Dist{"yr1_demand": yr1, "demand_decr": decay},
		[]string{"npv"},
		&montecarlo.Options{Replications: 300, Seed: 21, Workers: 4})
	require.NoError(t, err)

	npvs := results[0].Outputs["npv"]
	require.Len(t, npvs, 300)

	// Bound the distribution by the deterministic extremes.
	best, worst := models.NewNewCar(), models.NewNewCar()
	best.Yr1Demand, best.DemandDecr = 58000, 0.05
	worst.Yr1Demand, worst.DemandDecr = 50000, 0.10
	hi, err := best.NPV()
	require.NoError(t, err)
	lo, err := worst.NPV()
	require.NoError(t, err)

	for _, v := range npvs {
		require.GreaterOrEqual(t, v, lo)
		require.LessOrEqual(t, v, hi)
	}
}
