package model

import "reflect"

// structModel adapts a pointer-to-struct to the Model interface.
//
// Binding rules:
//   - inputs:  exported fields of type float64, in declaration order.
//   - outputs: exported methods on the pointer type with signature
//     func() float64, in reflect's (alphabetical) method order.
//
// The wrapped struct must hold only value state: Clone performs a plain
// struct copy, so pointer or slice fields would be shared between clones.
type structModel struct {
	ptr     reflect.Value // non-nil pointer to the bound struct
	inputs  map[string]int
	outputs map[string]int
	inNames  []string
	outNames []string
}

var float64Type = reflect.TypeOf(float64(0))

// FromStruct wraps a non-nil pointer to struct as a Model.
//
// Exported float64 fields become inputs addressed by their Go field name;
// exported methods with signature func() float64 become outputs addressed
// by their Go method name. Fields and methods of other shapes are ignored.
//
// This is the Go rendition of a dynamic attribute protocol: models written
// as plain structs with computation methods need no boilerplate to take
// part in data tables, goal seeking or simulation.
//
// Errors:
//   - ErrNotStructPointer — v is not a non-nil pointer to struct.
//   - ErrNoInputs         — no float64 fields found.
//   - ErrNoOutputs        — no float64 methods found.
func FromStruct(v any) (Model, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() ||
		rv.Elem().Kind() != reflect.Struct {
		return nil, ErrNotStructPointer
	}

	m := &structModel{
		ptr:     rv,
		inputs:  make(map[string]int),
		outputs: make(map[string]int),
	}

	st := rv.Elem().Type()
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if !f.IsExported() || f.Type != float64Type {
			continue
		}
		m.inputs[f.Name] = i
		m.inNames = append(m.inNames, f.Name)
	}
	if len(m.inputs) == 0 {
		return nil, ErrNoInputs
	}

	pt := rv.Type()
	for i := 0; i < pt.NumMethod(); i++ {
		mt := rv.Method(i).Type() // bound signature, receiver excluded
		if mt.NumIn() != 0 || mt.NumOut() != 1 || mt.Out(0) != float64Type {
			continue
		}
		name := pt.Method(i).Name
		m.outputs[name] = i
		m.outNames = append(m.outNames, name)
	}
	if len(m.outputs) == 0 {
		return nil, ErrNoOutputs
	}

	return m, nil
}

// Clone copies the underlying struct into fresh storage and rebinds it.
func (m *structModel) Clone() Model {
	np := reflect.New(m.ptr.Elem().Type())
	np.Elem().Set(m.ptr.Elem())

	clone := &structModel{
		ptr:      np,
		inputs:   m.inputs,
		outputs:  m.outputs,
		inNames:  m.inNames,
		outNames: m.outNames,
	}

	return clone
}

// SetInput assigns v to the named bound field.
func (m *structModel) SetInput(name string, v float64) error {
	idx, ok := m.inputs[name]
	if !ok {
		return ErrUnknownInput
	}
	m.ptr.Elem().Field(idx).SetFloat(v)

	return nil
}

// Input reports the current value of the named bound field.
func (m *structModel) Input(name string) (float64, error) {
	idx, ok := m.inputs[name]
	if !ok {
		return 0, ErrUnknownInput
	}

	return m.ptr.Elem().Field(idx).Float(), nil
}

// Output invokes the named bound method and returns its value.
func (m *structModel) Output(name string) (float64, error) {
	idx, ok := m.outputs[name]
	if !ok {
		return 0, ErrUnknownOutput
	}
	out := m.ptr.Method(idx).Call(nil)

	return out[0].Float(), nil
}

// InputNames lists bound field names in declaration order.
func (m *structModel) InputNames() []string {
	names := make([]string, len(m.inNames))
	copy(names, m.inNames)

	return names
}

// OutputNames lists bound method names in reflect's method order.
func (m *structModel) OutputNames() []string {
	names := make([]string, len(m.outNames))
	copy(names, m.outNames)

	return names
}
