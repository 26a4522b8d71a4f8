package layout

// Canonicalize merges every adjacent mergeable pair of axes, in stored order,
// until no merge applies, and returns the minimal-rank layout with the same
// index-to-offset mapping in row-major traversal. Axes of extent 1 are
// absorbed by their neighbours; a layout with any empty axis collapses to a
// single axis of extent 0. Rank only drops to 0 for rank-0 input.
//
// Canonicalize is idempotent. Two layouts with equal canonical forms address
// the same offsets in the same order, which makes the result usable as a
// cache key or as a fast contiguity check.
func (l Layout) Canonicalize() (Layout, error) {
	if len(l.axes) == 0 {
		return l, nil
	}
	if l.IsEmpty() {
		last := l.axes[len(l.axes)-1]
		return with([]Axis{{Extent: 0, Stride: last.Stride}}, l.offset), nil
	}
	axes := make([]Axis, 0, len(l.axes))
	axes = append(axes, l.axes[0])
	for _, in := range l.axes[1:] {
		top := &axes[len(axes)-1]
		if !mergeable(*top, in) {
			axes = append(axes, in)
			continue
		}
		merged, err := combine(*top, in)
		if err != nil {
			return Layout{}, err
		}
		*top = merged
	}
	return with(axes, l.offset), nil
}

// combine merges a mergeable outer/inner pair.
func combine(outer, inner Axis) (Axis, error) {
	switch {
	case outer.Extent == 0 || inner.Extent == 0:
		return Axis{Extent: 0, Stride: inner.Stride}, nil
	case inner.Extent == 1:
		return outer, nil
	case outer.Extent == 1:
		return inner, nil
	}
	e, err := mul("canonicalize", outer.Extent, inner.Extent)
	if err != nil {
		return Axis{}, err
	}
	return Axis{Extent: e, Stride: inner.Stride}, nil
}
