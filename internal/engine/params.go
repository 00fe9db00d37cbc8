package engine

import (
	"fmt"
	"math"
)

// Integration uses a fixed forward-Euler step.
const dt = 1.0

// StepParams carries the control values for a single stencil iteration.
// A fresh value is pulled from the parameter source before every
// iteration and discarded afterwards.
type StepParams struct {
	DiffusionRate float64
	DiffusionStep float64
	Feed          float64
	Kill          float64
	Reset         bool
}

// Validate checks a parameter set at the boundary. The stepping path
// itself does not re-validate: under a correct source no errors occur
// during steady-state stepping.
func (p StepParams) Validate() error {
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"diffusion_rate", p.DiffusionRate},
		{"diffusion_step", p.DiffusionStep},
		{"feed", p.Feed},
		{"kill", p.Kill},
	} {
		if math.IsNaN(v.val) || math.IsInf(v.val, 0) {
			return fmt.Errorf("%s must be finite, got %v", v.name, v.val)
		}
	}
	if p.DiffusionRate < 0 {
		return fmt.Errorf("diffusion_rate must be non-negative, got %f", p.DiffusionRate)
	}
	if p.DiffusionStep <= 0 {
		return fmt.Errorf("diffusion_step must be positive, got %f", p.DiffusionStep)
	}
	return nil
}

// ParamSource supplies the parameters for one iteration, keyed by an
// opaque tick counter. Sources should be pure: the same tick yields the
// same parameters.
type ParamSource func(tick uint64) StepParams

// Constant returns a source that ignores the tick counter.
func Constant(p StepParams) ParamSource {
	return func(uint64) StepParams { return p }
}
