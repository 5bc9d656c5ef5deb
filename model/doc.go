// Package model defines the evaluation protocol every what-if analysis in
// this library is built on.
//
// A Model is anything with named float64 inputs and named float64 outputs:
//
//	type Model interface {
//		Clone() Model
//		SetInput(name string, v float64) error
//		Input(name string) (float64, error)
//		Output(name string) (float64, error)
//		InputNames() []string
//		OutputNames() []string
//	}
//
// Analyses (data tables, goal seek, Monte-Carlo) always Clone the model
// first and mutate only the clone, so a Model value handed to the library
// is never changed by it.
//
// Two ways to obtain a Model:
//
//   - implement the interface directly (see the models package for two
//     hand-written examples), or
//   - wrap a pointer-to-struct with FromStruct: exported float64 fields
//     become inputs and exported niladic float64-returning methods become
//     outputs.
//
// The package also provides Params (a named set of input values) and
// Grid, the cartesian scenario enumerator shared by data tables and
// Monte-Carlo scenario sweeps.
package model
