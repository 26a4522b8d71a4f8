package plan

import (
	"fmt"

	"github.com/born-ml/strided/internal/layout"
)

// Observer is called after each successful step.
type Observer func(index int, step Step, result layout.Layout)

// Option configures Run.
type Option func(*runConfig)

type runConfig struct {
	registry *Registry
	observer Observer
}

// WithRegistry runs steps through r instead of NewRegistry().
func WithRegistry(r *Registry) Option {
	return func(c *runConfig) {
		c.registry = r
	}
}

// WithObserver reports every completed step to o.
func WithObserver(o Observer) Option {
	return func(c *runConfig) {
		c.observer = o
	}
}

// Result holds the base layout and the layout after each step.
type Result struct {
	Base  layout.Layout
	Steps []layout.Layout
}

// Final returns the layout after the last step, or the base if the plan has
// no steps.
func (r *Result) Final() layout.Layout {
	if len(r.Steps) == 0 {
		return r.Base
	}
	return r.Steps[len(r.Steps)-1]
}

// StepError reports the step at which a plan failed.
type StepError struct {
	Index int
	Op    string
	Err   error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Op, e.Err)
}

// Unwrap returns the underlying layout or plan error.
func (e *StepError) Unwrap() error {
	return e.Err
}

// Run builds the base layout and applies the steps in order. On failure the
// returned error is a *StepError wrapping the layout error, and no partial
// result is returned.
func Run(p *Plan, opts ...Option) (*Result, error) {
	cfg := runConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = NewRegistry()
	}

	base, err := p.Base.Layout()
	if err != nil {
		return nil, fmt.Errorf("base: %w", err)
	}

	res := &Result{Base: base, Steps: make([]layout.Layout, 0, len(p.Steps))}
	cur := base
	for i, s := range p.Steps {
		next, err := cfg.registry.Apply(cur, s)
		if err != nil {
			return nil, &StepError{Index: i, Op: s.Op, Err: err}
		}
		if cfg.observer != nil {
			cfg.observer(i, s, next)
		}
		res.Steps = append(res.Steps, next)
		cur = next
	}
	return res, nil
}
