package layout

// Split replaces axis with len(factors) new axes whose extents are factors,
// first factor outermost. The product of factors must equal the axis extent.
// The innermost new axis keeps the original stride and each axis further out
// strides over its inner neighbour:
//
//	// [2 3 6]:[18 6 1], Split(2, 2, 3) -> [2 3 2 3]:[18 6 3 1]
//
// Split never fails for lack of contiguity: it only subdivides an existing
// stride pattern. It is the inverse of Merge on the same axes.
func (l Layout) Split(axis int, factors ...int) (Layout, error) {
	return l.split("split", axis, factors, false)
}

// SplitLE is Split with the first factor innermost:
//
//	// [2 3 6]:[18 6 1], SplitLE(2, 2, 3) -> [2 3 2 3]:[18 6 1 2]
func (l Layout) SplitLE(axis int, factors ...int) (Layout, error) {
	return l.split("split_le", axis, factors, true)
}

func (l Layout) split(op string, axis int, factors []int, littleEndian bool) (Layout, error) {
	if err := l.checkAxis(op, axis); err != nil {
		return Layout{}, err
	}
	src := l.axes[axis]
	if len(factors) == 0 {
		return Layout{}, axisError(op, ErrFactorMismatch, axis, "no factors for extent %d", src.Extent)
	}
	for _, f := range factors {
		if f < 0 {
			return Layout{}, axisError(op, ErrFactorMismatch, axis, "negative factor %d", f)
		}
	}
	p, err := product(op, factors)
	if err != nil {
		return Layout{}, err
	}
	if p != src.Extent {
		return Layout{}, axisError(op, ErrFactorMismatch, axis,
			"factors %v multiply to %d, extent is %d", factors, p, src.Extent)
	}

	group := make([]Axis, len(factors))
	stride := src.Stride
	order := make([]int, len(factors))
	for i := range order {
		order[i] = len(factors) - 1 - i
		if littleEndian {
			order[i] = i
		}
	}
	for i, k := range order {
		group[k] = Axis{Extent: factors[k], Stride: stride}
		if i == len(order)-1 {
			break
		}
		if stride, err = mul(op, stride, max(factors[k], 1)); err != nil {
			return Layout{}, err
		}
	}

	axes := make([]Axis, 0, len(l.axes)+len(factors)-1)
	axes = append(axes, l.axes[:axis]...)
	axes = append(axes, group...)
	axes = append(axes, l.axes[axis+1:]...)
	return with(axes, l.offset), nil
}
