// Package plan describes layout transformations declaratively and runs them.
//
// A plan is a TOML document naming a base layout and an ordered list of
// steps:
//
//	name = "split heads"
//
//	[base]
//	extents = [2, 8, 64]
//
//	[[step]]
//	op = "split"
//	axis = 2
//	factors = [4, 16]
//
//	[[step]]
//	op = "permute"
//	axes = [0, 2, 1, 3]
//
// Each step is dispatched through a Registry to the matching layout
// transformation. Run stops at the first failing step and reports its index.
package plan

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/born-ml/strided/internal/layout"
)

// Common errors.
var (
	ErrInvalidPlan = errors.New("invalid plan")
	ErrUnknownOp   = errors.New("unknown operation")
)

// Plan is a base layout plus the steps to apply to it, in order.
type Plan struct {
	Name  string `toml:"name"`
	Base  Base   `toml:"base"`
	Steps []Step `toml:"step"`
}

// Base describes the starting layout. Without strides it is contiguous in
// Order ("row", the default, or "column").
type Base struct {
	Extents []int  `toml:"extents"`
	Strides []int  `toml:"strides,omitempty"`
	Offset  int    `toml:"offset,omitempty"`
	Order   string `toml:"order,omitempty"`
}

// Step is one transformation. Which fields are read depends on Op; see
// NewRegistry for the per-operation parameters.
type Step struct {
	Op      string `toml:"op"`
	Axis    int    `toml:"axis,omitempty"`
	Axes    []int  `toml:"axes,omitempty"`
	Extents []int  `toml:"extents,omitempty"`
	Factors []int  `toml:"factors,omitempty"`
	Extent  int    `toml:"extent,omitempty"`
	Start   int    `toml:"start,omitempty"`
	End     *int   `toml:"end,omitempty"`
	By      *int   `toml:"step,omitempty"`
	Index   int    `toml:"index,omitempty"`
	Repeat  int    `toml:"repeat,omitempty"`
	Pick    int    `toml:"pick,omitempty"`
}

// String returns the step's operation name.
func (s Step) String() string {
	return s.Op
}

// Decode reads a plan from TOML. Keys the plan does not define are rejected
// so that typos do not silently change a step's meaning.
func Decode(r io.Reader) (*Plan, error) {
	var p Plan
	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", ErrInvalidPlan, undecoded)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads a plan from a TOML file.
func Load(path string) (*Plan, error) {
	var p Plan
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPlan, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: %s: unknown keys %v", ErrInvalidPlan, path, undecoded)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &p, nil
}

// Validate checks the parts of a plan that do not depend on running it.
func (p *Plan) Validate() error {
	if _, err := p.Base.order(); err != nil {
		return err
	}
	if p.Base.Strides != nil && len(p.Base.Strides) != len(p.Base.Extents) {
		return fmt.Errorf("%w: base has %d extents but %d strides",
			ErrInvalidPlan, len(p.Base.Extents), len(p.Base.Strides))
	}
	for i, s := range p.Steps {
		if s.Op == "" {
			return fmt.Errorf("%w: step %d has no op", ErrInvalidPlan, i)
		}
	}
	return nil
}

// Layout builds the base layout.
func (b Base) Layout() (layout.Layout, error) {
	if b.Strides != nil {
		return layout.New(b.Extents, b.Strides, b.Offset)
	}
	order, err := b.order()
	if err != nil {
		return layout.Layout{}, err
	}
	l, err := layout.Contiguous(b.Extents, order)
	if err != nil {
		return layout.Layout{}, err
	}
	if b.Offset == 0 {
		return l, nil
	}
	return layout.New(l.Extents(), l.Strides(), b.Offset)
}

func (b Base) order() (layout.Order, error) {
	switch b.Order {
	case "", "row", "row-major":
		return layout.RowMajor, nil
	case "column", "col", "column-major":
		return layout.ColumnMajor, nil
	default:
		return 0, fmt.Errorf("%w: unknown order %q", ErrInvalidPlan, b.Order)
	}
}
