// Package layout implements strided array layouts and their transformation
// algebra.
//
// A Layout maps an N-dimensional logical index to a linear storage offset:
//
//	offset(i0, ..., iN-1) = Offset + i0*Stride[0] + ... + iN-1*Stride[N-1]
//
// Transformations (permute, merge, split, broadcast, slice, tile) produce a
// new Layout describing a different view of the same storage, or fail with
// an *Error when the view cannot be expressed as shape/stride/offset metadata.
// No transformation moves data, and none mutates its receiver.
package layout

import (
	"fmt"
	"strings"
)

// Order selects the major order of a contiguous layout.
type Order int

// Supported major orders.
const (
	RowMajor    Order = iota // Last axis has unit stride
	ColumnMajor              // First axis has unit stride
)

// String returns a human-readable order name.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return "unknown"
	}
}

// Axis is one dimension of a layout.
//
// Stride may be zero (broadcast: every position aliases the same element) or
// negative (the axis runs backwards through storage). When Extent is 0 the
// stride is irrelevant and kept as given.
type Axis struct {
	Extent int
	Stride int
}

// Layout is an immutable strided mapping from logical indices to storage
// offsets. The zero value is a rank-0 layout addressing the single element
// at offset 0.
type Layout struct {
	axes   []Axis
	offset int
}

// New creates a layout from explicit extents, strides and base offset.
// Extents must be non-negative and both slices must have the same length;
// nothing else is validated.
func New(extents, strides []int, offset int) (Layout, error) {
	if len(extents) != len(strides) {
		return Layout{}, newError("new", ErrInvalidShape,
			"%d extents but %d strides", len(extents), len(strides))
	}
	axes := make([]Axis, len(extents))
	for i, e := range extents {
		if e < 0 {
			return Layout{}, axisError("new", ErrInvalidShape, i, "negative extent %d", e)
		}
		axes[i] = Axis{Extent: e, Stride: strides[i]}
	}
	return Layout{axes: axes, offset: offset}, nil
}

// FromAxes creates a layout from a list of axes and a base offset.
func FromAxes(axes []Axis, offset int) (Layout, error) {
	for i, a := range axes {
		if a.Extent < 0 {
			return Layout{}, axisError("new", ErrInvalidShape, i, "negative extent %d", a.Extent)
		}
	}
	out := make([]Axis, len(axes))
	copy(out, axes)
	return Layout{axes: out, offset: offset}, nil
}

// Contiguous creates a dense layout for extents in the given major order,
// with offset zero.
//
// Row-major: stride[i] = product of extents after i.
// Column-major: stride[i] = product of extents before i.
//
// Zero extents count as 1 when computing strides, so an empty layout keeps
// the strides it would have with that axis at extent 1.
func Contiguous(extents []int, order Order) (Layout, error) {
	n := len(extents)
	axes := make([]Axis, n)
	for i, e := range extents {
		if e < 0 {
			return Layout{}, axisError("contiguous", ErrInvalidShape, i, "negative extent %d", e)
		}
		axes[i].Extent = e
	}

	stride := 1
	step := func(i int) error {
		axes[i].Stride = stride
		var err error
		stride, err = mul("contiguous", stride, max(axes[i].Extent, 1))
		return err
	}

	switch order {
	case RowMajor:
		for i := n - 1; i >= 0; i-- {
			if err := step(i); err != nil {
				return Layout{}, err
			}
		}
	case ColumnMajor:
		for i := 0; i < n; i++ {
			if err := step(i); err != nil {
				return Layout{}, err
			}
		}
	default:
		return Layout{}, newError("contiguous", ErrInvalidShape, "unknown order %d", int(order))
	}
	return Layout{axes: axes, offset: 0}, nil
}

// Rank returns the number of axes.
func (l Layout) Rank() int {
	return len(l.axes)
}

// Offset returns the storage offset of the all-zero index.
func (l Layout) Offset() int {
	return l.offset
}

// Axis returns axis i. It panics if i is out of range, like slice indexing.
func (l Layout) Axis(i int) Axis {
	return l.axes[i]
}

// Extent returns the extent of axis i. It panics if i is out of range.
func (l Layout) Extent(i int) int {
	return l.axes[i].Extent
}

// Stride returns the stride of axis i. It panics if i is out of range.
func (l Layout) Stride(i int) int {
	return l.axes[i].Stride
}

// Axes returns a copy of the layout's axes.
func (l Layout) Axes() []Axis {
	out := make([]Axis, len(l.axes))
	copy(out, l.axes)
	return out
}

// Extents returns a copy of the per-axis extents.
func (l Layout) Extents() []int {
	out := make([]int, len(l.axes))
	for i, a := range l.axes {
		out[i] = a.Extent
	}
	return out
}

// Strides returns a copy of the per-axis strides.
func (l Layout) Strides() []int {
	out := make([]int, len(l.axes))
	for i, a := range l.axes {
		out[i] = a.Stride
	}
	return out
}

// Equal reports structural equality: same rank, extents, strides and offset.
// Two layouts describing the same mapping through different axes are not
// equal; compare their Canonicalize results for that.
func (l Layout) Equal(other Layout) bool {
	if l.offset != other.offset || len(l.axes) != len(other.axes) {
		return false
	}
	for i := range l.axes {
		if l.axes[i] != other.axes[i] {
			return false
		}
	}
	return true
}

// String returns a compact description, e.g. "[2 3 4]:[12 4 1]+0".
func (l Layout) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprint(l.Extents()))
	b.WriteByte(':')
	b.WriteString(fmt.Sprint(l.Strides()))
	fmt.Fprintf(&b, "%+d", l.offset)
	return b.String()
}

// with returns a layout with the given axes and offset. The axes slice is
// owned by the result.
func with(axes []Axis, offset int) Layout {
	return Layout{axes: axes, offset: offset}
}

// checkAxis validates an axis argument against the layout rank.
func (l Layout) checkAxis(op string, axis int) error {
	if axis < 0 || axis >= len(l.axes) {
		return axisError(op, ErrAxisOutOfRange, axis, "rank is %d", len(l.axes))
	}
	return nil
}
