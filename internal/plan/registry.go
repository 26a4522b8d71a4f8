package plan

import (
	"fmt"
	"sort"

	"github.com/born-ml/strided/internal/layout"
)

// Handler applies one step to a layout.
type Handler func(l layout.Layout, s Step) (layout.Layout, error)

// Registry maps operation names to handlers.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates a registry with every layout transformation:
//
//	permute       axes = full permutation
//	transpose     axes = axes to rearrange
//	merge         axes = [first, last]
//	split         axis, factors (first factor outermost)
//	split_le      axis, factors (first factor innermost)
//	broadcast     axis, extent
//	broadcast_to  extents
//	insert_axis   axis (insertion position)
//	remove_axis   axis
//	slice         axis, start, end, step (default 1); end defaults to the
//	              extent for a positive step and to 0 for a negative one
//	reverse       axis
//	index         axis, index
//	chunk         axis, factors (piece sizes), pick (piece to keep)
//	tile          axis, repeat
//	canonicalize  no parameters
func NewRegistry() *Registry {
	r := &Registry{
		handlers: make(map[string]Handler),
	}

	r.registerAxisOps()
	r.registerShapeOps()
	r.registerViewOps()

	return r
}

// Register adds or replaces a handler.
func (r *Registry) Register(op string, handler Handler) {
	r.handlers[op] = handler
}

// Get returns the handler for an operation.
func (r *Registry) Get(op string) (Handler, bool) {
	h, ok := r.handlers[op]
	return h, ok
}

// Apply runs the handler registered for s.Op.
func (r *Registry) Apply(l layout.Layout, s Step) (layout.Layout, error) {
	handler, ok := r.handlers[s.Op]
	if !ok {
		return layout.Layout{}, fmt.Errorf("%w: %q", ErrUnknownOp, s.Op)
	}
	return handler(l, s)
}

// SupportedOps returns the registered operation names, sorted.
func (r *Registry) SupportedOps() []string {
	ops := make([]string, 0, len(r.handlers))
	for op := range r.handlers {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

func (r *Registry) registerAxisOps() {
	r.Register("permute", func(l layout.Layout, s Step) (layout.Layout, error) {
		return l.Permute(s.Axes...)
	})
	r.Register("transpose", func(l layout.Layout, s Step) (layout.Layout, error) {
		return l.Transpose(s.Axes...)
	})
	r.Register("insert_axis", func(l layout.Layout, s Step) (layout.Layout, error) {
		return l.InsertAxis(s.Axis)
	})
	r.Register("remove_axis", func(l layout.Layout, s Step) (layout.Layout, error) {
		return l.RemoveAxis(s.Axis)
	})
}

func (r *Registry) registerShapeOps() {
	r.Register("merge", func(l layout.Layout, s Step) (layout.Layout, error) {
		if len(s.Axes) != 2 {
			return layout.Layout{}, fmt.Errorf("%w: merge takes axes = [first, last], got %v", ErrInvalidPlan, s.Axes)
		}
		return l.Merge(s.Axes[0], s.Axes[1])
	})
	r.Register("split", func(l layout.Layout, s Step) (layout.Layout, error) {
		return l.Split(s.Axis, s.Factors...)
	})
	r.Register("split_le", func(l layout.Layout, s Step) (layout.Layout, error) {
		return l.SplitLE(s.Axis, s.Factors...)
	})
	r.Register("broadcast", func(l layout.Layout, s Step) (layout.Layout, error) {
		return l.Broadcast(s.Axis, s.Extent)
	})
	r.Register("broadcast_to", func(l layout.Layout, s Step) (layout.Layout, error) {
		return l.BroadcastTo(s.Extents...)
	})
	r.Register("tile", func(l layout.Layout, s Step) (layout.Layout, error) {
		return l.Tile(s.Axis, s.Repeat)
	})
	r.Register("canonicalize", func(l layout.Layout, _ Step) (layout.Layout, error) {
		return l.Canonicalize()
	})
}

func (r *Registry) registerViewOps() {
	r.Register("slice", func(l layout.Layout, s Step) (layout.Layout, error) {
		end, by := 0, 1
		if s.By != nil {
			by = *s.By
		}
		if by > 0 && s.Axis >= 0 && s.Axis < l.Rank() {
			end = l.Extent(s.Axis)
		}
		if s.End != nil {
			end = *s.End
		}
		return l.Slice(s.Axis, s.Start, end, by)
	})
	r.Register("reverse", func(l layout.Layout, s Step) (layout.Layout, error) {
		return l.Reverse(s.Axis)
	})
	r.Register("index", func(l layout.Layout, s Step) (layout.Layout, error) {
		return l.Index(s.Axis, s.Index)
	})
	r.Register("chunk", func(l layout.Layout, s Step) (layout.Layout, error) {
		parts, err := l.Chunk(s.Axis, s.Factors...)
		if err != nil {
			return layout.Layout{}, err
		}
		if s.Pick < 0 || s.Pick >= len(parts) {
			return layout.Layout{}, fmt.Errorf("%w: pick %d of %d chunks", ErrInvalidPlan, s.Pick, len(parts))
		}
		return parts[s.Pick], nil
	})
}
