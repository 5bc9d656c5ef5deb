// Package whatif is an in-memory toolkit for Excel-style what-if analysis:
// build a deterministic model once, then interrogate it from every angle.
//
// 🚀 What is whatif?
//
//	A small, deterministic library that brings together:
//		• Model protocol: named float inputs & outputs, clone-safe evaluation
//		• Data tables: sweep cartesian grids of inputs, tabulate outputs
//		• Goal seek: back-solve an input to hit a target output (bisection)
//		• Monte-Carlo: random variates, replications, scenario grids, summaries
//		• Distributions: uniform, normal, triangular, lognormal, discrete
//		• Finance helpers: NPV and IRR for cash-flow models
//
// ✨ Why choose whatif?
//
//   - Reproducible – every random draw flows from an explicit seed
//   - Clone-first – analysis never mutates your model
//   - Minimal API – plain float64 in, plain float64 out
//   - Concurrent – simulation fans out over workers without losing determinism
//
// Everything is organized under flat subpackages:
//
//	model/      — Model interface, Params, scenario grids, reflection binder
//	datatable/  — n-way data tables over scenario grids
//	goalseek/   — bisection goal seeking with a non-zero target
//	dist/       — random variate distributions
//	montecarlo/ — replicated simulation with scenario support
//	stats/      — summary statistics for simulation output
//	table/      — ordered float64 columns + CSV export
//	finance/    — NPV / IRR
//	models/     — ready-made example models (newsvendor, multi-year NPV)
//
// Quick sketch:
//
//	m := models.NewBookstore()
//	x, _ := goalseek.Solve(m, "profit", 0, "demand", 0, 200, nil)
//
//	solves the demand level at which the bookstore breaks even.
//
// See cmd/whatif for a YAML-driven runner and examples/ for worked scenarios.
package whatif
