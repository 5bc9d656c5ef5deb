package montecarlo

import (
	"sort"

	"github.com/katalvlaran/whatif/table"
)

// ResultsTable flattens simulation results into one long-format table with
// a row per (scenario, replication):
//
//	scenario_num, replication, <scenario params...>, <outputs...>
//
// Scenario parameter and output columns appear in sorted name order. All
// results must share the same scenario parameter names and output names,
// and every series must have the same length (Simulate guarantees both).
//
// Errors:
//   - ErrNoResults     — empty input.
//   - ErrRaggedResults — mixed shapes across results.
func ResultsTable(results []Result) (*table.Table, error) {
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	scenCols := results[0].ScenarioParams.Names()
	outCols := make([]string, 0, len(results[0].Outputs))
	for name := range results[0].Outputs {
		outCols = append(outCols, name)
	}
	sort.Strings(outCols)
	if len(outCols) == 0 {
		return nil, ErrRaggedResults
	}

	cols := make([]string, 0, 2+len(scenCols)+len(outCols))
	cols = append(cols, "scenario_num", "replication")
	cols = append(cols, scenCols...)
	cols = append(cols, outCols...)

	tb, err := table.New(cols)
	if err != nil {
		return nil, err
	}

	reps := len(results[0].Outputs[outCols[0]])
	row := make([]float64, len(cols))
	for _, res := range results {
		if err = checkShape(res, scenCols, outCols, reps); err != nil {
			return nil, err
		}
		for rep := 0; rep < reps; rep++ {
			row[0] = float64(res.ScenarioNum)
			row[1] = float64(rep)
			for i, name := range scenCols {
				row[2+i] = res.ScenarioParams[name]
			}
			for j, name := range outCols {
				row[2+len(scenCols)+j] = res.Outputs[name][rep]
			}
			if err = tb.AppendRow(row); err != nil {
				return nil, err
			}
		}
	}

	return tb, nil
}

// checkShape verifies one result matches the reference column layout.
func checkShape(res Result, scenCols, outCols []string, reps int) error {
	if len(res.ScenarioParams) != len(scenCols) || len(res.Outputs) != len(outCols) {
		return ErrRaggedResults
	}
	for _, name := range scenCols {
		if _, ok := res.ScenarioParams[name]; !ok {
			return ErrRaggedResults
		}
	}
	for _, name := range outCols {
		series, ok := res.Outputs[name]
		if !ok || len(series) != reps {
			return ErrRaggedResults
		}
	}

	return nil
}
