// Package config loads root-finding jobs from YAML files.
//
// Example job:
//
//	function: "x*x - 2"
//	derivative: "2*x"
//	method: newton
//	x0: 1
//	x1: 3
//	epsilon: 1e-12
//	loop_tol: 500
//	plot:
//	  enabled: true
//	  interval: [-2, 2]
//
// Every field but function is optional. Absent numeric fields fall back to
// the rootfind defaults; absent start values stay absent so Solve can log the
// substitution itself.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rootfind"
)

// ErrInvalidJob wraps every validation failure.
var ErrInvalidJob = errors.New("config: invalid job")

// Job describes one solve request.
type Job struct {
	Function   string    `yaml:"function" validate:"required"`
	Derivative string    `yaml:"derivative"`
	Method     string    `yaml:"method" validate:"omitempty,oneof=bisection newton Bisection Newton"`
	Bracket    []float64 `yaml:"bracket" validate:"omitempty,len=2,dive,notnan"`
	X0         *float64  `yaml:"x0"`
	X1         *float64  `yaml:"x1"`
	Epsilon    float64   `yaml:"epsilon" validate:"gte=0"`
	LoopTol    int       `yaml:"loop_tol" validate:"gte=0"`
	Plot       Plot      `yaml:"plot"`
}

// Plot holds the plotting request of a Job.
type Plot struct {
	Enabled  bool      `yaml:"enabled"`
	Interval []float64 `yaml:"interval" validate:"omitempty,len=2,dive,notnan"`
}

var validate = newValidator()

// newValidator registers notnan, which rejects NaN floats. rootfind panics
// on a NaN bracket endpoint, so it must never reach the options.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notnan", func(fl validator.FieldLevel) bool {
		return !math.IsNaN(fl.Field().Float())
	}); err != nil {
		panic(err)
	}

	return v
}

// Load reads and validates the job file at path.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML job.
func Parse(data []byte) (*Job, error) {
	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}

	return &job, nil
}

// Validate checks the struct tags of j.
func (j *Job) Validate() error {
	if err := validate.Struct(j); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}
	if math.IsInf(j.Epsilon, 0) {
		return fmt.Errorf("%w: epsilon must be finite", ErrInvalidJob)
	}

	return nil
}

// Options converts j into solve options. fprime is the compiled Derivative,
// or nil when the job has none; plotter is used only when the job enables
// plotting.
func (j *Job) Options(fprime rootfind.Func, plotter rootfind.Plotter) []rootfind.Option {
	var opts []rootfind.Option
	if j.Method != "" {
		opts = append(opts, rootfind.WithMethod(rootfind.ParseMethod(j.Method)))
	}
	if len(j.Bracket) == 2 {
		opts = append(opts, rootfind.WithBracket(j.Bracket[0], j.Bracket[1]))
	}
	if fprime != nil {
		opts = append(opts, rootfind.WithDerivative(fprime))
	}
	if j.X0 != nil {
		opts = append(opts, rootfind.WithStart(*j.X0))
	}
	if j.X1 != nil {
		opts = append(opts, rootfind.WithRetryStart(*j.X1))
	}
	if j.Epsilon > 0 {
		opts = append(opts, rootfind.WithEpsilon(j.Epsilon))
	}
	if j.LoopTol > 0 {
		opts = append(opts, rootfind.WithLoopTol(j.LoopTol))
	}
	if j.Plot.Enabled && plotter != nil {
		opts = append(opts, rootfind.WithPlotter(plotter))
		if len(j.Plot.Interval) == 2 {
			opts = append(opts, rootfind.WithPlotInterval(j.Plot.Interval[0], j.Plot.Interval[1]))
		}
	}

	return opts
}
