package montecarlo

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/whatif/dist"
	"github.com/katalvlaran/whatif/model"
)

// Simulate runs a replicated sampling experiment against m.
//
// Per replication, every random input is sampled (names in sorted order)
// and applied, then every requested output is evaluated and recorded.
// With opts.Scenarios set, the experiment repeats for every grid point;
// scenario values are applied before sampling and pin any input they
// share a name with.
//
// Determinism: the variates of (scenario s, replication k) depend only on
// opts.Seed, s and k — never on opts.Workers or goroutine scheduling.
//
// Errors:
//   - ErrNilModel / ErrNoReplications / ErrNoOutputs / ErrNoRandomInputs /
//     ErrNilDist — argument validation.
//   - model.ErrUnknownInput / model.ErrUnknownOutput — bad names.
//   - grid sentinels from model.Grid for bad scenario axes.
//   - ctx.Err() when the context is canceled mid-run.
//
// Complexity: O(S·R·(I+P)) evaluations for S scenarios, R replications,
// I random inputs and P outputs; memory O(S·R·(P + I under KeepInputs)).
func Simulate(ctx context.Context, m model.Model, random map[string]dist.Dist, outputs []string, opts *Options) ([]Result, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if len(outputs) == 0 {
		return nil, ErrNoOutputs
	}
	if len(random) == 0 {
		return nil, ErrNoRandomInputs
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Replications < 1 {
		return nil, ErrNoReplications
	}
	workers := o.Workers
	if workers < 1 {
		workers = 1
	}

	// Sorted input names give a stable sampling order inside each
	// replication; the order is part of the determinism contract.
	names := make([]string, 0, len(random))
	for name, d := range random {
		if d == nil {
			return nil, ErrNilDist
		}
		names = append(names, name)
	}
	sort.Strings(names)

	base, err := model.Snapshot(m)
	if err != nil {
		return nil, err
	}

	// Resolve the scenario list: one empty scenario when no axes given.
	scenarios := []model.Params{{}}
	if len(o.Scenarios) > 0 {
		if scenarios, err = model.Grid(o.Scenarios...); err != nil {
			return nil, err
		}
	}

	results := make([]Result, len(scenarios))
	for s, scenParams := range scenarios {
		if results[s], err = runScenario(ctx, m, random, names, outputs, scenParams, s, o, workers); err != nil {
			return nil, err
		}
		results[s].BaseParams = base
	}

	return results, nil
}

// runScenario executes all replications of one scenario, fanning out over
// the worker pool. Output (and input) series are written by replication
// index, so concurrent workers never touch the same slot.
func runScenario(ctx context.Context, m model.Model, random map[string]dist.Dist, names, outputs []string, scenParams model.Params, scenNum int, o Options, workers int) (Result, error) {
	res := Result{
		ScenarioNum:    scenNum,
		ScenarioParams: scenParams.Clone(),
		Outputs:        make(map[string][]float64, len(outputs)),
	}
	for _, out := range outputs {
		res.Outputs[out] = make([]float64, o.Replications)
	}

	// Scenario values pin inputs: drop them from the sampling set.
	sampled := make([]string, 0, len(names))
	for _, name := range names {
		if _, pinned := scenParams[name]; !pinned {
			sampled = append(sampled, name)
		}
	}
	if o.KeepInputs {
		res.Inputs = make(map[string][]float64, len(sampled))
		for _, name := range sampled {
			res.Inputs[name] = make([]float64, o.Replications)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	if workers > o.Replications {
		workers = o.Replications
	}

	// Contiguous replication ranges per worker; bounds are precomputed so
	// every replication is covered exactly once.
	chunk := (o.Replications + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > o.Replications {
			hi = o.Replications
		}
		if lo >= hi {
			break
		}

		g.Go(func() error {
			clone := m.Clone()
			if err := scenParams.Apply(clone); err != nil {
				return err
			}

			var (
				v   float64
				err error
			)
			for rep := lo; rep < hi; rep++ {
				if err = gctx.Err(); err != nil {
					return err
				}

				rng := replicationRNG(o.Seed, scenNum, rep)
				for _, name := range sampled {
					v = random[name].Sample(rng)
					if err = clone.SetInput(name, v); err != nil {
						return err
					}
					if o.KeepInputs {
						res.Inputs[name][rep] = v
					}
				}
				for _, out := range outputs {
					if v, err = clone.Output(out); err != nil {
						return err
					}
					res.Outputs[out][rep] = v
				}
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	return res, nil
}
