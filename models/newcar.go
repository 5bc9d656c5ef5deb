package models

import (
	"math"

	"github.com/katalvlaran/whatif/finance"
	"github.com/katalvlaran/whatif/model"
)

// NewCar default parameter values.
const (
	DefaultFixedDevCost     = 600e6
	DefaultBaseMargin       = 4e3
	DefaultAnnualMarginDecr = 0.04
	DefaultYr1Demand        = 53560.0
	DefaultDemandDecr       = 0.077
	DefaultTaxRate          = 0.21
	DefaultDiscountRate     = 0.07

	// NewCarYears is the fixed model horizon.
	NewCarYears = 5
)

// NewCar is a multi-year new-product model: a fixed development cost is
// recovered through unit margins that decay annually, on demand that also
// decays annually from an uncertain first-year level. Depreciation is
// straight-line over the horizon; cash flow is after-tax profit plus
// depreciation, and NPV discounts the stream against the initial outlay.
type NewCar struct {
	FixedDevCost     float64
	BaseMargin       float64
	AnnualMarginDecr float64
	Yr1Demand        float64
	DemandDecr       float64
	TaxRate          float64
	DiscountRate     float64
}

// NewNewCar returns a NewCar with the textbook defaults.
func NewNewCar() *NewCar {
	return &NewCar{
		FixedDevCost:     DefaultFixedDevCost,
		BaseMargin:       DefaultBaseMargin,
		AnnualMarginDecr: DefaultAnnualMarginDecr,
		Yr1Demand:        DefaultYr1Demand,
		DemandDecr:       DefaultDemandDecr,
		TaxRate:          DefaultTaxRate,
		DiscountRate:     DefaultDiscountRate,
	}
}

// Sales is demand by year: year 1 demand decayed by DemandDecr annually.
func (c *NewCar) Sales() []float64 {
	sales := make([]float64, NewCarYears)
	sales[0] = c.Yr1Demand
	for t := 1; t < NewCarYears; t++ {
		sales[t] = (1 - c.DemandDecr) * sales[t-1]
	}

	return sales
}

// UnitContribution is margin per unit by year, decaying by AnnualMarginDecr.
func (c *NewCar) UnitContribution() []float64 {
	uc := make([]float64, NewCarYears)
	for t := 0; t < NewCarYears; t++ {
		uc[t] = c.BaseMargin * math.Pow(1-c.AnnualMarginDecr, float64(t))
	}

	return uc
}

// NetRevenue is sales times unit contribution, by year.
func (c *NewCar) NetRevenue() []float64 {
	sales, uc := c.Sales(), c.UnitContribution()
	net := make([]float64, NewCarYears)
	for t := range net {
		net[t] = sales[t] * uc[t]
	}

	return net
}

// Depreciation is straight-line over the horizon.
func (c *NewCar) Depreciation() []float64 {
	dep := make([]float64, NewCarYears)
	for t := range dep {
		dep[t] = c.FixedDevCost / NewCarYears
	}

	return dep
}

// BeforeTaxProfit is net revenue minus depreciation, by year.
func (c *NewCar) BeforeTaxProfit() []float64 {
	net, dep := c.NetRevenue(), c.Depreciation()
	btp := make([]float64, NewCarYears)
	for t := range btp {
		btp[t] = net[t] - dep[t]
	}

	return btp
}

// AfterTaxProfit is before-tax profit net of taxes, by year.
func (c *NewCar) AfterTaxProfit() []float64 {
	btp := c.BeforeTaxProfit()
	atp := make([]float64, NewCarYears)
	for t := range atp {
		atp[t] = btp[t] * (1 - c.TaxRate)
	}

	return atp
}

// CashFlow is after-tax profit plus depreciation (a non-cash expense).
func (c *NewCar) CashFlow() []float64 {
	atp, dep := c.AfterTaxProfit(), c.Depreciation()
	cf := make([]float64, NewCarYears)
	for t := range cf {
		cf[t] = atp[t] + dep[t]
	}

	return cf
}

// NPV discounts the cash-flow stream at DiscountRate, with the development
// cost as a negative period-0 flow.
func (c *NewCar) NPV() (float64, error) {
	stream := make([]float64, 0, NewCarYears+1)
	stream = append(stream, -c.FixedDevCost)
	stream = append(stream, c.CashFlow()...)

	return finance.NPV(c.DiscountRate, stream)
}

// TotalCashFlow is the undiscounted sum of yearly cash flows.
func (c *NewCar) TotalCashFlow() float64 {
	var total float64
	for _, cf := range c.CashFlow() {
		total += cf
	}

	return total
}

// IRR solves the project's internal rate of return.
func (c *NewCar) IRR() (float64, error) {
	stream := make([]float64, 0, NewCarYears+1)
	stream = append(stream, -c.FixedDevCost)
	stream = append(stream, c.CashFlow()...)

	return finance.IRR(stream, nil)
}

// ---- model.Model ----

var newCarInputs = []string{
	"fixed_dev_cost", "base_margin", "annual_margin_decr",
	"yr1_demand", "demand_decr", "tax_rate", "discount_rate",
}

var newCarOutputs = []string{"npv", "total_cash_flow", "irr"}

// Clone returns an independent copy.
func (c *NewCar) Clone() model.Model { cp := *c; return &cp }

// SetInput assigns a named input value.
func (c *NewCar) SetInput(name string, v float64) error {
	switch name {
	case "fixed_dev_cost":
		c.FixedDevCost = v
	case "base_margin":
		c.BaseMargin = v
	case "annual_margin_decr":
		c.AnnualMarginDecr = v
	case "yr1_demand":
		c.Yr1Demand = v
	case "demand_decr":
		c.DemandDecr = v
	case "tax_rate":
		c.TaxRate = v
	case "discount_rate":
		c.DiscountRate = v
	default:
		return model.ErrUnknownInput
	}

	return nil
}

// Input reports a named input value.
func (c *NewCar) Input(name string) (float64, error) {
	switch name {
	case "fixed_dev_cost":
		return c.FixedDevCost, nil
	case "base_margin":
		return c.BaseMargin, nil
	case "annual_margin_decr":
		return c.AnnualMarginDecr, nil
	case "yr1_demand":
		return c.Yr1Demand, nil
	case "demand_decr":
		return c.DemandDecr, nil
	case "tax_rate":
		return c.TaxRate, nil
	case "discount_rate":
		return c.DiscountRate, nil
	default:
		return 0, model.ErrUnknownInput
	}
}

// Output evaluates a named output.
func (c *NewCar) Output(name string) (float64, error) {
	switch name {
	case "npv":
		return c.NPV()
	case "total_cash_flow":
		return c.TotalCashFlow(), nil
	case "irr":
		return c.IRR()
	default:
		return 0, model.ErrUnknownOutput
	}
}

// InputNames lists the input labels in declaration order.
func (c *NewCar) InputNames() []string {
	names := make([]string, len(newCarInputs))
	copy(names, newCarInputs)

	return names
}

// OutputNames lists the output labels.
func (c *NewCar) OutputNames() []string {
	names := make([]string, len(newCarOutputs))
	copy(names, newCarOutputs)

	return names
}
