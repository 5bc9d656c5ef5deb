// Package montecarlo runs replicated random-sampling experiments against a
// model: stochastic inputs are drawn from distributions, outputs are
// recorded per replication, and the whole experiment can be crossed with a
// deterministic scenario grid.
//
// 🚀 What does a simulation look like?
//
//	results, err := montecarlo.Simulate(ctx, m,
//		map[string]dist.Dist{"demand": demandDist},
//		[]string{"profit"},
//		&montecarlo.Options{
//			Replications: 10_000,
//			Seed:         42,
//			Workers:      8,
//			Scenarios:    []model.Axis{{Name: "order_quantity", Values: qs}},
//		})
//
// One Result per scenario; each holds the sampled output series (and,
// under KeepInputs, the raw input variates). ResultsTable flattens
// everything into a table.Table; stats.Describe summarizes a series.
//
// ✨ Determinism:
//
//   - All randomness flows from Options.Seed.
//   - Each (scenario, replication) pair gets its own RNG stream derived
//     with a SplitMix64-style mix, so results are identical no matter how
//     many workers run, and replication k can be reproduced in isolation.
//
// ⚙️ Concurrency:
//
//	Replications fan out over Options.Workers goroutines (errgroup with
//	context cancellation); every worker evaluates on its own model clone.
//	The caller's model is never mutated.
//
// Complexity: O(scenarios · replications · (inputs + outputs)) evaluations.
package montecarlo
