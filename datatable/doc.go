// Package datatable recomputes model outputs across a cartesian grid of
// input values — the programmatic form of an Excel n-way data table.
//
// One call sweeps any number of axes:
//
//	tb, err := datatable.Run(m,
//		[]model.Axis{
//			{Name: "order_quantity", Values: []float64{100, 150, 200}},
//			{Name: "demand", Values: []float64{120, 160, 200}},
//		},
//		[]string{"profit", "total_revenue"},
//	)
//
// The result is a table.Table with one row per grid point: the axis
// columns (in axis order) followed by the output columns (in the order
// requested). Row order follows model.Grid: first axis slowest, last axis
// fastest.
//
// Run clones the model before sweeping; the caller's model is never
// mutated.
//
// Complexity: O(n·(k+p)) for n grid points, k axes and p outputs, plus
// whatever each output evaluation costs.
package datatable
