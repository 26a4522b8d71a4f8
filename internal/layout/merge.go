package layout

// AxisRange is an inclusive run of adjacent axes [First, Last].
type AxisRange struct {
	First int
	Last  int
}

// Merge flattens the adjacent axes first..last (inclusive) into one axis.
//
// Every pair of neighbouring axes in the run must be mergeable (see
// AxesMergeable). Axes of extent 1 are skipped when checking, so a
// degenerate axis between two real ones does not hide a gap. The merged axis
// has the product of the extents and the stride of the innermost
// non-degenerate axis of the run. On failure the error wraps ErrNotMergeable
// and names the first offending pair, so the caller can fall back to a copy.
//
// Example:
//
//	// [2 3 4]:[12 4 1] -> [2 12]:[12 1]
//	m, _ := l.Merge(1, 2)
func (l Layout) Merge(first, last int) (Layout, error) {
	return l.MergeMany(AxisRange{First: first, Last: last})
}

// MergeMany merges several disjoint runs at once. Ranges must be given in
// ascending axis order.
func (l Layout) MergeMany(ranges ...AxisRange) (Layout, error) {
	axes := make([]Axis, 0, len(l.axes))
	next := 0
	for _, r := range ranges {
		if r.First < next || r.First > r.Last || r.Last >= len(l.axes) {
			return Layout{}, pairError("merge", ErrAxisOutOfRange, r.First, r.Last,
				"range must be ascending, disjoint and within rank %d", len(l.axes))
		}
		axes = append(axes, l.axes[next:r.First]...)
		merged, err := mergeRun(l.axes, r.First, r.Last)
		if err != nil {
			return Layout{}, err
		}
		axes = append(axes, merged)
		next = r.Last + 1
	}
	axes = append(axes, l.axes[next:]...)
	return with(axes, l.offset), nil
}

// mergeRun collapses axes[first..last] into a single axis.
func mergeRun(axes []Axis, first, last int) (Axis, error) {
	run := axes[first : last+1]
	extents := make([]int, len(run))
	for i, a := range run {
		extents[i] = a.Extent
	}
	extent, err := product("merge", extents)
	if err != nil {
		return Axis{}, err
	}
	if extent == 0 {
		return Axis{Extent: 0, Stride: run[len(run)-1].Stride}, nil
	}

	// Walk the non-degenerate axes outer to inner.
	inner := -1
	for k := first; k <= last; k++ {
		if axes[k].Extent == 1 {
			continue
		}
		if inner >= 0 && !mergeable(axes[inner], axes[k]) {
			return Axis{}, pairError("merge", ErrNotMergeable, inner, k,
				"stride %d != %d * %d", axes[inner].Stride, axes[k].Stride, axes[k].Extent)
		}
		inner = k
	}
	if inner < 0 {
		return Axis{Extent: 1, Stride: run[len(run)-1].Stride}, nil
	}
	return Axis{Extent: extent, Stride: axes[inner].Stride}, nil
}
