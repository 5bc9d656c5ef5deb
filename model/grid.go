package model

import "errors"

var (
	// ErrNoAxes indicates Grid was called without any axes.
	ErrNoAxes = errors.New("model: scenario grid requires at least one axis")
	// ErrEmptyAxis indicates an axis with no values (or an empty name).
	ErrEmptyAxis = errors.New("model: scenario axis must have a name and at least one value")
	// ErrDuplicateAxis indicates two axes share the same name.
	ErrDuplicateAxis = errors.New("model: duplicate scenario axis name")
)

// Axis is one swept input: a name and the candidate values for it.
type Axis struct {
	Name   string
	Values []float64
}

// Grid enumerates the cartesian product of the given axes as a list of
// Params, one per scenario.
//
// Enumeration order is deterministic: the first axis varies slowest and the
// last axis varies fastest, exactly like nested loops over the axes in the
// order given. Data tables and Monte-Carlo scenario sweeps both rely on
// this ordering for stable row numbering.
//
// Errors:
//   - ErrNoAxes        — no axes given.
//   - ErrEmptyAxis     — an axis has no values or an empty name.
//   - ErrDuplicateAxis — two axes share a name.
//
// Complexity: O(n·k) time and space for n scenarios over k axes.
func Grid(axes ...Axis) ([]Params, error) {
	if len(axes) == 0 {
		return nil, ErrNoAxes
	}

	total := 1
	seen := make(map[string]struct{}, len(axes))
	for _, ax := range axes {
		if ax.Name == "" || len(ax.Values) == 0 {
			return nil, ErrEmptyAxis
		}
		if _, dup := seen[ax.Name]; dup {
			return nil, ErrDuplicateAxis
		}
		seen[ax.Name] = struct{}{}
		total *= len(ax.Values)
	}

	var (
		scenarios = make([]Params, 0, total)
		idx       = make([]int, len(axes)) // current position per axis
		k         int
	)
	for {
		p := make(Params, len(axes))
		for i, ax := range axes {
			p[ax.Name] = ax.Values[idx[i]]
		}
		scenarios = append(scenarios, p)

		// Odometer increment: last axis fastest.
		for k = len(axes) - 1; k >= 0; k-- {
			idx[k]++
			if idx[k] < len(axes[k].Values) {
				break
			}
			idx[k] = 0
		}
		if k < 0 {
			break
		}
	}

	return scenarios, nil
}
