package layout

import "math"

// SliceArg restricts one axis to indices Start, Start+Step, ... strictly
// before End.
type SliceArg struct {
	Axis  int
	Start int
	End   int
	Step  int
}

// IndexArg selects position Index along Axis.
type IndexArg struct {
	Axis  int
	Index int
}

// Slice restricts axis to the indices start, start+step, ... stopping before
// end. Both bounds must lie in [0, extent] and step must be non-zero; a
// negative step walks the axis backwards and negates the stride.
//
//	extent' = max(0, ceil((end-start)/step))
//	stride' = stride * step
//	offset' = offset + start*stride
//
// Example:
//
//	// [2 3 4]:[12 4 1], Slice(1, 1, 3, 1) -> [2 2 4]:[12 4 1]+4
//	// [2 3 4]:[12 4 1], Slice(1, 2, 0, -1) -> [2 2 4]:[12 -4 1]+8
func (l Layout) Slice(axis, start, end, step int) (Layout, error) {
	return l.SliceMany(SliceArg{Axis: axis, Start: start, End: end, Step: step})
}

// SliceMany applies several slices at once. Arguments naming the same axis
// are applied in order.
func (l Layout) SliceMany(args ...SliceArg) (Layout, error) {
	axes := l.Axes()
	offset := l.offset
	for _, arg := range args {
		if err := l.checkAxis("slice", arg.Axis); err != nil {
			return Layout{}, err
		}
		a, delta, err := sliceAxis(axes[arg.Axis], arg)
		if err != nil {
			return Layout{}, err
		}
		if offset, err = add("slice", offset, delta); err != nil {
			return Layout{}, err
		}
		axes[arg.Axis] = a
	}
	return with(axes, offset), nil
}

// sliceAxis returns the sliced axis and the offset contribution of start.
func sliceAxis(a Axis, arg SliceArg) (Axis, int, error) {
	if arg.Step == 0 {
		return Axis{}, 0, axisError("slice", ErrInvalidStep, arg.Axis, "step must be non-zero")
	}
	if arg.Start < 0 || arg.Start > a.Extent || arg.End < 0 || arg.End > a.Extent {
		return Axis{}, 0, axisError("slice", ErrSliceOutOfBounds, arg.Axis,
			"bounds [%d, %d) not within [0, %d]", arg.Start, arg.End, a.Extent)
	}

	n := sliceLen(arg.Start, arg.End, arg.Step)
	if n > 0 && arg.Start == a.Extent {
		return Axis{}, 0, axisError("slice", ErrSliceOutOfBounds, arg.Axis,
			"start %d is past the last index %d", arg.Start, a.Extent-1)
	}
	stride, err := mul("slice", a.Stride, arg.Step)
	if err != nil {
		return Axis{}, 0, err
	}
	delta, err := mul("slice", arg.Start, a.Stride)
	if err != nil {
		return Axis{}, 0, err
	}
	return Axis{Extent: n, Stride: stride}, delta, nil
}

// sliceLen counts start, start+step, ... strictly before end. start and end
// are non-negative, so their distance fits in an int.
func sliceLen(start, end, step int) int {
	var dist int
	var mag uint
	if step > 0 {
		dist = end - start
		mag = uint(step)
	} else {
		dist = start - end
		mag = uint(-(step + 1)) + 1 // |step| without overflowing at math.MinInt
	}
	if dist <= 0 {
		return 0
	}
	return int((uint(dist)-1)/mag) + 1
}

// Reverse flips the traversal direction of axis: index i of the result is
// index extent-1-i of l.
func (l Layout) Reverse(axis int) (Layout, error) {
	if err := l.checkAxis("reverse", axis); err != nil {
		return Layout{}, err
	}
	a := l.axes[axis]
	if a.Extent <= 1 {
		return l, nil
	}
	if a.Stride == math.MinInt {
		return Layout{}, axisError("reverse", ErrOverflow, axis, "cannot negate stride %d", a.Stride)
	}
	delta, err := mul("reverse", a.Extent-1, a.Stride)
	if err != nil {
		return Layout{}, err
	}
	offset, err := add("reverse", l.offset, delta)
	if err != nil {
		return Layout{}, err
	}
	axes := l.Axes()
	axes[axis].Stride = -a.Stride
	return with(axes, offset), nil
}

// Index selects one position along axis and drops the axis, folding
// index*stride into the offset.
//
// Example:
//
//	// [2 3 4]:[12 4 1], Index(1, 2) -> [2 4]:[12 1]+8
func (l Layout) Index(axis, index int) (Layout, error) {
	return l.IndexMany(IndexArg{Axis: axis, Index: index})
}

// IndexMany selects positions along several axes at once. Axes must be given
// in strictly ascending order; the result drops all of them.
func (l Layout) IndexMany(args ...IndexArg) (Layout, error) {
	offset := l.offset
	drop := make([]bool, len(l.axes))
	last := -1
	for _, arg := range args {
		if err := l.checkAxis("index", arg.Axis); err != nil {
			return Layout{}, err
		}
		if arg.Axis <= last {
			return Layout{}, axisError("index", ErrInvalidIndex, arg.Axis, "axes must be strictly ascending")
		}
		last = arg.Axis
		a := l.axes[arg.Axis]
		if arg.Index < 0 || arg.Index >= a.Extent {
			return Layout{}, axisError("index", ErrInvalidIndex, arg.Axis,
				"index %d not in [0, %d)", arg.Index, a.Extent)
		}
		d, err := mul("index", arg.Index, a.Stride)
		if err != nil {
			return Layout{}, err
		}
		if offset, err = add("index", offset, d); err != nil {
			return Layout{}, err
		}
		drop[arg.Axis] = true
	}

	axes := make([]Axis, 0, len(l.axes)-len(args))
	for i, a := range l.axes {
		if !drop[i] {
			axes = append(axes, a)
		}
	}
	return with(axes, offset), nil
}

// Chunk partitions axis into consecutive pieces of the given sizes and
// returns one layout per piece. The sizes must sum to the axis extent.
//
// Example:
//
//	// [2 3 4]:[12 4 1], Chunk(2, 1, 3) -> [2 3 1]:[12 4 1]+0, [2 3 3]:[12 4 1]+1
func (l Layout) Chunk(axis int, sizes ...int) ([]Layout, error) {
	if err := l.checkAxis("chunk", axis); err != nil {
		return nil, err
	}
	total := 0
	for _, s := range sizes {
		if s < 0 {
			return nil, axisError("chunk", ErrFactorMismatch, axis, "negative size %d", s)
		}
		var err error
		if total, err = add("chunk", total, s); err != nil {
			return nil, err
		}
	}
	if e := l.axes[axis].Extent; total != e {
		return nil, axisError("chunk", ErrFactorMismatch, axis, "sizes %v sum to %d, extent is %d", sizes, total, e)
	}

	parts := make([]Layout, len(sizes))
	start := 0
	for i, s := range sizes {
		part, err := l.Slice(axis, start, start+s, 1)
		if err != nil {
			return nil, err
		}
		parts[i] = part
		start += s
	}
	return parts, nil
}
