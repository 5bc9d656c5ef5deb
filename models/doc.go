// Package models ships two ready-made models used across examples, tests
// and the cmd/whatif runner.
//
//   - Bookstore: the classic single-period newsvendor problem — order a
//     perishable product once, sell at a fixed price, salvage leftovers
//     for a partial refund.
//   - NewCar: a five-year new-product model — fixed development cost,
//     decaying unit margin and demand, straight-line depreciation, taxes,
//     and an NPV of the resulting cash flows.
//
// Both implement model.Model directly with spreadsheet-style snake_case
// input and output names ("order_quantity", "profit", ...), which keep
// data-table and simulation CSV headers readable.
package models
