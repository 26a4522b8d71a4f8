package layout

import (
	"iter"
	"sort"
)

// NumElements returns the product of all extents: 1 for a rank-0 layout,
// 0 if any extent is 0. It fails with ErrOverflow if the count does not fit
// in an int.
func (l Layout) NumElements() (int, error) {
	return product("num_elements", l.Extents())
}

// IsEmpty reports whether the layout addresses no elements.
func (l Layout) IsEmpty() bool {
	for _, a := range l.axes {
		if a.Extent == 0 {
			return true
		}
	}
	return false
}

// Span is the half-open range [Start, End) of storage offsets a layout
// reaches.
type Span struct {
	Start int
	End   int
}

// Len returns the number of storage units in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Span returns the range of storage offsets reached by the layout.
// An empty layout reaches nothing and reports Span{Offset, Offset}.
func (l Layout) Span() (Span, error) {
	if l.IsEmpty() {
		return Span{Start: l.offset, End: l.offset}, nil
	}
	lo, hi := l.offset, l.offset
	for _, a := range l.axes {
		d, err := mul("span", a.Extent-1, a.Stride)
		if err != nil {
			return Span{}, err
		}
		if d < 0 {
			lo, err = add("span", lo, d)
		} else {
			hi, err = add("span", hi, d)
		}
		if err != nil {
			return Span{}, err
		}
	}
	end, err := add("span", hi, 1)
	if err != nil {
		return Span{}, err
	}
	return Span{Start: lo, End: end}, nil
}

// SpanBytes returns the size in bytes of the storage range the layout
// reaches, for elements of elemSize bytes.
func (l Layout) SpanBytes(elemSize int) (int, error) {
	if elemSize < 0 {
		return 0, newError("span_bytes", ErrInvalidShape, "negative element size %d", elemSize)
	}
	s, err := l.Span()
	if err != nil {
		return 0, err
	}
	return mul("span_bytes", s.Len(), elemSize)
}

// IsContiguous reports whether the layout addresses one unbroken run of
// NumElements storage units in some traversal order of its axes. Axes of
// extent 1 are ignored, reversed axes are allowed, and an empty layout is
// trivially contiguous.
func (l Layout) IsContiguous() bool {
	if l.IsEmpty() {
		return true
	}
	return isDense(l.axes)
}

// isDense checks that the non-degenerate axes, ordered by |stride|, tile
// storage without gaps or overlap. The axes must all have non-zero extent.
func isDense(axes []Axis) bool {
	type dim struct{ extent, stride int }
	dims := make([]dim, 0, len(axes))
	for _, a := range axes {
		if a.Extent == 1 {
			continue
		}
		s, ok := absInt(a.Stride)
		if !ok {
			return false
		}
		dims = append(dims, dim{a.Extent, s})
	}
	sort.SliceStable(dims, func(i, j int) bool { return dims[i].stride < dims[j].stride })

	expected := 1
	for _, d := range dims {
		if d.stride != expected {
			return false
		}
		var ok bool
		if expected, ok = checkedMul(expected, d.extent); !ok {
			return false
		}
	}
	return true
}

// AxesMergeable reports whether the adjacent axes i and j can be flattened
// into a single axis without touching storage. With outer = min(i, j) and
// inner = max(i, j) this holds when
//
//	stride[outer] == stride[inner] * extent[inner]
//
// or when either axis has extent 1 (a no-op dimension) or extent 0 (nothing
// is addressed). A broadcast axis (stride 0) therefore only merges with
// another broadcast axis or a degenerate one.
//
// Non-adjacent or out-of-range pairs are never mergeable.
func (l Layout) AxesMergeable(i, j int) bool {
	if i < 0 || j < 0 || i >= len(l.axes) || j >= len(l.axes) {
		return false
	}
	if i-j != 1 && j-i != 1 {
		return false
	}
	outer, inner := l.axes[min(i, j)], l.axes[max(i, j)]
	return mergeable(outer, inner)
}

func mergeable(outer, inner Axis) bool {
	if outer.Extent <= 1 || inner.Extent <= 1 {
		return true
	}
	want, ok := checkedMul(inner.Stride, inner.Extent)
	return ok && outer.Stride == want
}

// OffsetOf maps a logical index to its storage offset.
func (l Layout) OffsetOf(index ...int) (int, error) {
	if len(index) != len(l.axes) {
		return 0, newError("offset_of", ErrInvalidIndex, "got %d indices for rank %d", len(index), len(l.axes))
	}
	off := l.offset
	for i, x := range index {
		a := l.axes[i]
		if x < 0 || x >= a.Extent {
			return 0, axisError("offset_of", ErrInvalidIndex, i, "index %d not in [0, %d)", x, a.Extent)
		}
		d, err := mul("offset_of", x, a.Stride)
		if err != nil {
			return 0, err
		}
		if off, err = add("offset_of", off, d); err != nil {
			return 0, err
		}
	}
	return off, nil
}

// Offsets iterates over every logical index in row-major order together with
// its storage offset. The index slice is reused between iterations; copy it
// to retain it. Layouts whose span overflows yield nothing.
func (l Layout) Offsets() iter.Seq2[[]int, int] {
	return func(yield func([]int, int) bool) {
		if l.IsEmpty() {
			return
		}
		if _, err := l.Span(); err != nil {
			return
		}
		rank := len(l.axes)
		index := make([]int, rank)
		off := l.offset
		for {
			if !yield(index, off) {
				return
			}
			// Odometer increment, innermost axis first.
			d := rank - 1
			for ; d >= 0; d-- {
				index[d]++
				off += l.axes[d].Stride
				if index[d] < l.axes[d].Extent {
					break
				}
				off -= index[d] * l.axes[d].Stride
				index[d] = 0
			}
			if d < 0 {
				return
			}
		}
	}
}
