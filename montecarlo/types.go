package montecarlo

import (
	"errors"

	"github.com/katalvlaran/whatif/model"
)

var (
	// ErrNilModel indicates a nil model was passed to Simulate.
	ErrNilModel = errors.New("montecarlo: model is nil")
	// ErrNoReplications indicates Options.Replications < 1.
	ErrNoReplications = errors.New("montecarlo: at least one replication required")
	// ErrNoOutputs indicates Simulate was called without output names.
	ErrNoOutputs = errors.New("montecarlo: at least one output required")
	// ErrNoRandomInputs indicates an empty random-input map.
	ErrNoRandomInputs = errors.New("montecarlo: at least one random input required")
	// ErrNilDist indicates a nil distribution for a random input.
	ErrNilDist = errors.New("montecarlo: nil distribution for random input")
	// ErrNoResults indicates ResultsTable received an empty result set.
	ErrNoResults = errors.New("montecarlo: no results to tabulate")
	// ErrRaggedResults indicates results with inconsistent shapes (mixed
	// scenario keys or output series of different lengths).
	ErrRaggedResults = errors.New("montecarlo: results have inconsistent shape")
)

// DefaultReplications is used when Options is nil.
const DefaultReplications = 1000

// Options configures Simulate. A nil Options means DefaultOptions().
type Options struct {
	// Replications is the number of trials per scenario. Must be >= 1.
	Replications int

	// Seed drives all sampling; 0 selects a stable default seed.
	// Identical seed + identical request ⇒ identical results.
	Seed int64

	// Workers bounds the number of concurrent evaluation goroutines.
	// Values < 1 mean single-worker (sequential) execution. Worker count
	// never changes results, only wall-clock time.
	Workers int

	// KeepInputs records the raw sampled variates per replication in
	// Result.Inputs, alongside the outputs.
	KeepInputs bool

	// Scenarios, when non-empty, crosses the simulation with the cartesian
	// grid of these axes: one Result per grid point. An axis that names a
	// random input pins it — the scenario value wins and no sampling
	// happens for that input in that scenario.
	Scenarios []model.Axis
}

// DefaultOptions returns the documented defaults: 1000 replications,
// default seed, sequential execution.
func DefaultOptions() Options {
	return Options{Replications: DefaultReplications, Workers: 1}
}

// Result is the outcome of one scenario of a simulation.
type Result struct {
	// ScenarioNum is the grid index of this scenario, counting from 0.
	// A simulation without scenarios produces a single Result numbered 0.
	ScenarioNum int

	// ScenarioParams holds this scenario's grid values (empty when no
	// scenario axes were given).
	ScenarioParams model.Params

	// BaseParams snapshots the model's input values before the run.
	BaseParams model.Params

	// Outputs maps each requested output name to its per-replication
	// series; every series has length Options.Replications.
	Outputs map[string][]float64

	// Inputs maps each sampled input name to its per-replication variates.
	// Populated only under Options.KeepInputs, and only for inputs that
	// were actually sampled (scenario-pinned inputs are excluded).
	Inputs map[string][]float64
}
