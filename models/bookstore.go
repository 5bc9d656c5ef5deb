package models

import (
	"math"

	"github.com/katalvlaran/whatif/model"
)

// Bookstore default parameter values.
const (
	DefaultUnitCost      = 7.50
	DefaultSellingPrice  = 10.00
	DefaultUnitRefund    = 2.50
	DefaultOrderQuantity = 200.0
	DefaultDemand        = 193.0
)

// Bookstore is the newsvendor model: one order of a perishable product
// per season, uncertain demand, partial refund on unsold units.
//
//	profit = num_sold·price + num_unsold·refund − order_quantity·cost
//
// Demand in excess of the order quantity is lost.
type Bookstore struct {
	UnitCost      float64
	SellingPrice  float64
	UnitRefund    float64
	OrderQuantity float64
	Demand        float64
}

// NewBookstore returns a Bookstore with the textbook defaults.
func NewBookstore() *Bookstore {
	return &Bookstore{
		UnitCost:      DefaultUnitCost,
		SellingPrice:  DefaultSellingPrice,
		UnitRefund:    DefaultUnitRefund,
		OrderQuantity: DefaultOrderQuantity,
		Demand:        DefaultDemand,
	}
}

// OrderCost is the total cost of the one order.
func (b *Bookstore) OrderCost() float64 { return b.UnitCost * b.OrderQuantity }

// NumSold is the number of items sold; excess demand is lost.
func (b *Bookstore) NumSold() float64 { return math.Min(b.OrderQuantity, b.Demand) }

// SalesRevenue is revenue from sold items.
func (b *Bookstore) SalesRevenue() float64 { return b.NumSold() * b.SellingPrice }

// NumUnsold is the number of ordered items left over.
func (b *Bookstore) NumUnsold() float64 { return math.Max(0, b.OrderQuantity-b.Demand) }

// RefundRevenue is salvage revenue from unsold items.
func (b *Bookstore) RefundRevenue() float64 { return b.NumUnsold() * b.UnitRefund }

// TotalRevenue is sales plus salvage revenue.
func (b *Bookstore) TotalRevenue() float64 { return b.SalesRevenue() + b.RefundRevenue() }

// Profit is total revenue minus order cost.
func (b *Bookstore) Profit() float64 { return b.TotalRevenue() - b.OrderCost() }

// ---- model.Model ----

var bookstoreInputs = []string{
	"unit_cost", "selling_price", "unit_refund", "order_quantity", "demand",
}

var bookstoreOutputs = []string{
	"order_cost", "num_sold", "sales_revenue", "num_unsold",
	"refund_revenue", "total_revenue", "profit",
}

// Clone returns an independent copy.
func (b *Bookstore) Clone() model.Model { cp := *b; return &cp }

// SetInput assigns a named input value.
func (b *Bookstore) SetInput(name string, v float64) error {
	switch name {
	case "unit_cost":
		b.UnitCost = v
	case "selling_price":
		b.SellingPrice = v
	case "unit_refund":
		b.UnitRefund = v
	case "order_quantity":
		b.OrderQuantity = v
	case "demand":
		b.Demand = v
	default:
		return model.ErrUnknownInput
	}

	return nil
}

// Input reports a named input value.
func (b *Bookstore) Input(name string) (float64, error) {
	switch name {
	case "unit_cost":
		return b.UnitCost, nil
	case "selling_price":
		return b.SellingPrice, nil
	case "unit_refund":
		return b.UnitRefund, nil
	case "order_quantity":
		return b.OrderQuantity, nil
	case "demand":
		return b.Demand, nil
	default:
		return 0, model.ErrUnknownInput
	}
}

// Output evaluates a named output.
func (b *Bookstore) Output(name string) (float64, error) {
	switch name {
	case "order_cost":
		return b.OrderCost(), nil
	case "num_sold":
		return b.NumSold(), nil
	case "sales_revenue":
		return b.SalesRevenue(), nil
	case "num_unsold":
		return b.NumUnsold(), nil
	case "refund_revenue":
		return b.RefundRevenue(), nil
	case "total_revenue":
		return b.TotalRevenue(), nil
	case "profit":
		return b.Profit(), nil
	default:
		return 0, model.ErrUnknownOutput
	}
}

// InputNames lists the input labels in declaration order.
func (b *Bookstore) InputNames() []string {
	names := make([]string, len(bookstoreInputs))
	copy(names, bookstoreInputs)

	return names
}

// OutputNames lists the output labels in evaluation order.
func (b *Bookstore) OutputNames() []string {
	names := make([]string, len(bookstoreOutputs))
	copy(names, bookstoreOutputs)

	return names
}
