// Command whatif executes a what-if analysis described by a YAML run spec:
// a model name, parameter overrides, and exactly one of a data-table sweep,
// a goal seek, or a Monte-Carlo simulation. Tables are written as CSV to
// stdout or -out; progress goes to stderr as structured logs.
//
// Usage:
//
//	whatif -spec run.yaml [-out results.csv] [-quiet]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/whatif/datatable"
	"github.com/katalvlaran/whatif/dist"
	"github.com/katalvlaran/whatif/goalseek"
	"github.com/katalvlaran/whatif/model"
	"github.com/katalvlaran/whatif/models"
	"github.com/katalvlaran/whatif/montecarlo"
	"github.com/katalvlaran/whatif/stats"
	"github.com/katalvlaran/whatif/table"
)

// registry maps spec model names to constructors.
var registry = map[string]func() model.Model{
	"bookstore": func() model.Model { return models.NewBookstore() },
	"newcar":    func() model.Model { return models.NewNewCar() },
}

func main() {
	specPath := flag.String("spec", "", "path to the YAML run spec (required)")
	outPath := flag.String("out", "", "CSV output path (default stdout)")
	quiet := flag.Bool("quiet", false, "suppress progress logging")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Str("run_id", uuid.NewString()).Logger()
	if *quiet {
		log = log.Level(zerolog.ErrorLevel)
	}

	if *specPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(log, *specPath, *outPath); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(log zerolog.Logger, specPath, outPath string) error {
	spec, err := loadSpec(specPath)
	if err != nil {
		return err
	}

	build, ok := registry[spec.Model]
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownModel, spec.Model)
	}
	m := build()
	if err = model.Params(spec.Params).Apply(m); err != nil {
		return fmt.Errorf("apply params: %w", err)
	}
	log.Info().Str("model", spec.Model).Int("overrides", len(spec.Params)).Msg("model ready")

	switch {
	case spec.DataTable != nil:
		return runDataTable(log, m, spec.DataTable, outPath)
	case spec.GoalSeek != nil:
		return runGoalSeek(log, m, spec.GoalSeek)
	default:
		return runSimulate(log, m, spec.Simulate, outPath)
	}
}

func runDataTable(log zerolog.Logger, m model.Model, spec *dataTableSpec, outPath string) error {
	axes, err := expandAxes(spec.Axes)
	if err != nil {
		return err
	}

	tb, err := datatable.Run(m, axes, spec.Outputs)
	if err != nil {
		return err
	}
	log.Info().Int("axes", len(axes)).Int("rows", tb.Len()).Msg("data table built")

	return writeTable(tb, outPath)
}

func runGoalSeek(log zerolog.Logger, m model.Model, spec *goalSeekSpec) error {
	opts := goalseek.DefaultOptions()
	if spec.MaxIter > 0 {
		opts.MaxIter = spec.MaxIter
	}
	if spec.Tol > 0 {
		opts.Tol = spec.Tol
	}

	v, err := goalseek.Solve(m, spec.Output, spec.Target, spec.Input, spec.Lo, spec.Hi, &opts)
	if err != nil {
		return err
	}
	log.Info().
		Str("input", spec.Input).Str("output", spec.Output).
		Float64("target", spec.Target).Float64("solution", v).
		Msg("goal seek converged")
	fmt.Printf("%s = %g\n", spec.Input, v)

	return nil
}

func runSimulate(log zerolog.Logger, m model.Model, spec *simulateSpec, outPath string) error {
	random := make(map[string]dist.Dist, len(spec.Random))
	for name, ds := range spec.Random {
		d, err := ds.dist()
		if err != nil {
			return fmt.Errorf("random input %q: %w", name, err)
		}
		random[name] = d
	}

	scenarios, err := expandAxes(spec.Scenarios)
	if err != nil {
		return err
	}

	reps := spec.Replications
	if reps == 0 {
		reps = montecarlo.DefaultReplications
	}

	results, err := montecarlo.Simulate(context.Background(), m, random, spec.Outputs,
		&montecarlo.Options{
			Replications: reps,
			Seed:         spec.Seed,
			Workers:      spec.Workers,
			KeepInputs:   spec.KeepInputs,
			Scenarios:    scenarios,
		})
	if err != nil {
		return err
	}
	log.Info().Int("scenarios", len(results)).
		Int("replications", len(results[0].Outputs[spec.Outputs[0]])).
		Msg("simulation complete")

	// One summary line per scenario and output.
	for _, res := range results {
		for _, out := range spec.Outputs {
			s, derr := stats.Describe(res.Outputs[out])
			if derr != nil {
				return derr
			}
			log.Info().Int("scenario", res.ScenarioNum).Str("output", out).
				Float64("mean", s.Mean).Float64("std", s.Std).
				Float64("min", s.Min).Float64("max", s.Max).
				Msg("summary")
		}
	}

	tb, err := montecarlo.ResultsTable(results)
	if err != nil {
		return err
	}

	return writeTable(tb, outPath)
}

func writeTable(tb *table.Table, outPath string) error {
	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	return tb.WriteCSV(w)
}
