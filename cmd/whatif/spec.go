package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/whatif/dist"
	"github.com/katalvlaran/whatif/model"
)

var (
	errNoAction       = errors.New("spec: exactly one of data_table, goal_seek or simulate required")
	errUnknownModel   = errors.New("spec: unknown model name")
	errBadAxis        = errors.New("spec: axis needs either values or min/max/step with step > 0")
	errUnknownDist    = errors.New("spec: unknown distribution kind")
	errMissingModel   = errors.New("spec: model name required")
	errMissingOutputs = errors.New("spec: outputs required")
)

// runSpec is the YAML run description consumed by the CLI.
//
// Exactly one of the three action sections must be present.
type runSpec struct {
	Model  string             `yaml:"model"`
	Params map[string]float64 `yaml:"params"`

	DataTable *dataTableSpec `yaml:"data_table"`
	GoalSeek  *goalSeekSpec  `yaml:"goal_seek"`
	Simulate  *simulateSpec  `yaml:"simulate"`
}

// axisSpec describes one swept input, either as an explicit value list or
// as an inclusive min/max range with a positive step.
type axisSpec struct {
	Name   string    `yaml:"name"`
	Values []float64 `yaml:"values"`
	Min    *float64  `yaml:"min"`
	Max    *float64  `yaml:"max"`
	Step   *float64  `yaml:"step"`
}

type dataTableSpec struct {
	Axes    []axisSpec `yaml:"axes"`
	Outputs []string   `yaml:"outputs"`
}

type goalSeekSpec struct {
	Output  string  `yaml:"output"`
	Target  float64 `yaml:"target"`
	Input   string  `yaml:"input"`
	Lo      float64 `yaml:"lo"`
	Hi      float64 `yaml:"hi"`
	MaxIter int     `yaml:"max_iter"`
	Tol     float64 `yaml:"tol"`
}

// distSpec describes one random input. Kind selects the distribution and
// the matching parameter fields.
type distSpec struct {
	Kind string `yaml:"dist"`

	// normal / lognormal
	Mean  float64 `yaml:"mean"`
	Std   float64 `yaml:"std"`
	Mu    float64 `yaml:"mu"`
	Sigma float64 `yaml:"sigma"`

	// uniform / triangular
	Lo   float64 `yaml:"lo"`
	Mode float64 `yaml:"mode"`
	Hi   float64 `yaml:"hi"`

	// discrete
	Values  []float64 `yaml:"values"`
	Weights []float64 `yaml:"weights"`

	// constant
	Value float64 `yaml:"value"`
}

type simulateSpec struct {
	Replications int                 `yaml:"replications"`
	Seed         int64               `yaml:"seed"`
	Workers      int                 `yaml:"workers"`
	KeepInputs   bool                `yaml:"keep_inputs"`
	Outputs      []string            `yaml:"outputs"`
	Random       map[string]distSpec `yaml:"random"`
	Scenarios    []axisSpec          `yaml:"scenarios"`
}

// loadSpec reads and validates a YAML run spec from path.
func loadSpec(path string) (*runSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("spec: read %s: %w", path, err)
	}

	var spec runSpec
	if err = yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("spec: parse %s: %w", path, err)
	}
	if err = spec.validate(); err != nil {
		return nil, err
	}

	return &spec, nil
}

// validate checks the structural contract; semantic validation happens in
// the library calls.
func (s *runSpec) validate() error {
	if s.Model == "" {
		return errMissingModel
	}

	actions := 0
	if s.DataTable != nil {
		actions++
		if len(s.DataTable.Outputs) == 0 {
			return errMissingOutputs
		}
	}
	if s.GoalSeek != nil {
		actions++
	}
	if s.Simulate != nil {
		actions++
		if len(s.Simulate.Outputs) == 0 {
			return errMissingOutputs
		}
	}
	if actions != 1 {
		return errNoAction
	}

	return nil
}

// axis materializes an axisSpec into a model.Axis, expanding ranges.
func (a axisSpec) axis() (model.Axis, error) {
	if len(a.Values) > 0 {
		return model.Axis{Name: a.Name, Values: a.Values}, nil
	}
	if a.Min == nil || a.Max == nil || a.Step == nil || *a.Step <= 0 || *a.Max < *a.Min {
		return model.Axis{}, errBadAxis
	}

	var values []float64
	// Half-step slack keeps the inclusive upper bound under FP drift.
	for v := *a.Min; v <= *a.Max+*a.Step/2; v += *a.Step {
		values = append(values, math.Min(v, *a.Max))
	}

	return model.Axis{Name: a.Name, Values: values}, nil
}

func expandAxes(specs []axisSpec) ([]model.Axis, error) {
	axes := make([]model.Axis, len(specs))
	var err error
	for i, a := range specs {
		if axes[i], err = a.axis(); err != nil {
			return nil, err
		}
	}

	return axes, nil
}

// dist materializes a distSpec into a dist.Dist.
func (d distSpec) dist() (dist.Dist, error) {
	switch d.Kind {
	case "uniform":
		return dist.NewUniform(d.Lo, d.Hi)
	case "normal":
		return dist.NewNormal(d.Mean, d.Std)
	case "triangular":
		return dist.NewTriangular(d.Lo, d.Mode, d.Hi)
	case "lognormal":
		return dist.NewLogNormal(d.Mu, d.Sigma)
	case "discrete":
		return dist.NewDiscrete(d.Values, d.Weights)
	case "constant":
		return dist.Constant(d.Value), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownDist, d.Kind)
	}
}
