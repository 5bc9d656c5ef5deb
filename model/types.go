package model

import (
	"errors"
	"sort"
)

var (
	// ErrNilModel indicates a nil Model was passed to an analysis entry point.
	ErrNilModel = errors.New("model: model is nil")
	// ErrUnknownInput indicates SetInput/Input was called with a name the model does not expose.
	ErrUnknownInput = errors.New("model: unknown input name")
	// ErrUnknownOutput indicates Output was called with a name the model does not expose.
	ErrUnknownOutput = errors.New("model: unknown output name")
	// ErrNotStructPointer indicates FromStruct received something other than a non-nil pointer to struct.
	ErrNotStructPointer = errors.New("model: binder requires a non-nil pointer to struct")
	// ErrNoInputs indicates FromStruct found no exported float64 fields to bind.
	ErrNoInputs = errors.New("model: struct exposes no float64 input fields")
	// ErrNoOutputs indicates FromStruct found no exported niladic float64 methods to bind.
	ErrNoOutputs = errors.New("model: struct exposes no float64 output methods")
)

// Model is the evaluation protocol consumed by datatable, goalseek and
// montecarlo. Implementations must be self-contained value types: Clone
// returns an independent copy whose inputs can be mutated without
// affecting the receiver.
type Model interface {
	// Clone returns an independent copy of the model.
	Clone() Model

	// SetInput assigns v to the named input.
	// Returns ErrUnknownInput for names the model does not expose.
	SetInput(name string, v float64) error

	// Input reports the current value of the named input.
	// Returns ErrUnknownInput for names the model does not expose.
	Input(name string) (float64, error)

	// Output evaluates and returns the named output at the current inputs.
	// Returns ErrUnknownOutput for names the model does not expose.
	Output(name string) (float64, error)

	// InputNames lists the model's input names in a stable order.
	InputNames() []string

	// OutputNames lists the model's output names in a stable order.
	OutputNames() []string
}

// Params is a named set of input values, the unit of scenario application.
type Params map[string]float64

// Apply assigns every value in p to the corresponding input of m.
// Names are applied in sorted order so error surfacing is deterministic.
//
// Complexity: O(k log k) for k=len(p).
func (p Params) Apply(m Model) error {
	if m == nil {
		return ErrNilModel
	}
	var err error
	for _, name := range p.Names() {
		if err = m.SetInput(name, p[name]); err != nil {
			return err
		}
	}

	return nil
}

// Names returns the parameter names in sorted order.
func (p Params) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Clone returns an independent copy of p.
func (p Params) Clone() Params {
	q := make(Params, len(p))
	for name, v := range p {
		q[name] = v
	}

	return q
}

// Snapshot captures the current values of all inputs of m as Params.
// Useful for recording the base configuration before a scenario sweep.
func Snapshot(m Model) (Params, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	var (
		p   = make(Params)
		v   float64
		err error
	)
	for _, name := range m.InputNames() {
		if v, err = m.Input(name); err != nil {
			return nil, err
		}
		p[name] = v
	}

	return p, nil
}
