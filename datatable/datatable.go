package datatable

import (
	"errors"

	"github.com/katalvlaran/whatif/model"
	"github.com/katalvlaran/whatif/table"
)

var (
	// ErrNilModel indicates a nil model was passed to Run.
	ErrNilModel = errors.New("datatable: model is nil")
	// ErrNoOutputs indicates Run was called without output names.
	ErrNoOutputs = errors.New("datatable: at least one output required")
	// ErrAxisOutputClash indicates an axis and an output share a name,
	// which would collide in the result columns.
	ErrAxisOutputClash = errors.New("datatable: axis and output share a name")
)

// Run evaluates the requested outputs at every point of the cartesian grid
// spanned by axes and tabulates the results.
//
// The returned table has len(axes)+len(outputs) columns: axis names in the
// order given, then output names in the order given. Rows follow the
// model.Grid enumeration order.
//
// Errors:
//   - ErrNilModel / ErrNoOutputs / ErrAxisOutputClash — argument validation.
//   - model.ErrNoAxes, model.ErrEmptyAxis, model.ErrDuplicateAxis — bad grid.
//   - model.ErrUnknownInput / model.ErrUnknownOutput — name not on the model.
func Run(m model.Model, axes []model.Axis, outputs []string) (*table.Table, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if len(outputs) == 0 {
		return nil, ErrNoOutputs
	}

	scenarios, err := model.Grid(axes...)
	if err != nil {
		return nil, err
	}

	cols := make([]string, 0, len(axes)+len(outputs))
	axisSet := make(map[string]struct{}, len(axes))
	for _, ax := range axes {
		cols = append(cols, ax.Name)
		axisSet[ax.Name] = struct{}{}
	}
	for _, out := range outputs {
		if _, clash := axisSet[out]; clash {
			return nil, ErrAxisOutputClash
		}
		cols = append(cols, out)
	}

	tb, err := table.New(cols)
	if err != nil {
		return nil, err
	}

	// Sweep on a clone so the caller's model is untouched.
	var (
		clone = m.Clone()
		row   = make([]float64, len(cols))
		v     float64
	)
	for _, params := range scenarios {
		if err = params.Apply(clone); err != nil {
			return nil, err
		}
		for i, ax := range axes {
			row[i] = params[ax.Name]
		}
		for j, out := range outputs {
			if v, err = clone.Output(out); err != nil {
				return nil, err
			}
			row[len(axes)+j] = v
		}
		if err = tb.AppendRow(row); err != nil {
			return nil, err
		}
	}

	return tb, nil
}
