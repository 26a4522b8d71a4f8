package layout

import "sort"

// Permute reorders the axes: axis i of the result is axis order[i] of l.
// The offset is unchanged. order must be a permutation of 0..Rank()-1.
//
// Example:
//
//	l, _ := layout.Contiguous([]int{2, 3, 4}, layout.RowMajor)
//	p, _ := l.Permute(2, 0, 1) // extents [4 2 3], strides [1 12 4]
func (l Layout) Permute(order ...int) (Layout, error) {
	if err := checkPermutation("permute", order, len(l.axes)); err != nil {
		return Layout{}, err
	}
	axes := make([]Axis, len(order))
	for i, src := range order {
		axes[i] = l.axes[src]
	}
	return with(axes, l.offset), nil
}

// Transpose rearranges only the listed axes. The positions they occupy,
// taken in ascending order, receive the listed axes in the given order; every
// other axis stays where it is.
//
// Example:
//
//	// [2 3 4]:[12 4 1] -> [3 2 4]:[4 12 1]
//	t, _ := l.Transpose(1, 0)
//	// [2 3 4]:[12 4 1] -> [4 3 2]:[1 4 12]
//	t, _ = l.Transpose(2, 0)
func (l Layout) Transpose(axes ...int) (Layout, error) {
	seen := make(map[int]bool, len(axes))
	for _, a := range axes {
		if a < 0 || a >= len(l.axes) {
			return Layout{}, axisError("transpose", ErrInvalidPermutation, a, "rank is %d", len(l.axes))
		}
		if seen[a] {
			return Layout{}, axisError("transpose", ErrInvalidPermutation, a, "axis listed twice")
		}
		seen[a] = true
	}

	positions := make([]int, len(axes))
	copy(positions, axes)
	sort.Ints(positions)

	order := make([]int, len(l.axes))
	for i := range order {
		order[i] = i
	}
	for k, pos := range positions {
		order[pos] = axes[k]
	}
	return l.Permute(order...)
}

// InversePermutation returns the permutation that undoes order, so that
// l.Permute(order...) followed by Permute(inverse...) yields l.
func InversePermutation(order []int) ([]int, error) {
	if err := checkPermutation("inverse_permutation", order, len(order)); err != nil {
		return nil, err
	}
	inv := make([]int, len(order))
	for i, src := range order {
		inv[src] = i
	}
	return inv, nil
}

// checkPermutation validates that order is a bijection over 0..rank-1.
func checkPermutation(op string, order []int, rank int) error {
	if len(order) != rank {
		return newError(op, ErrInvalidPermutation, "got %d axes for rank %d", len(order), rank)
	}
	seen := make([]bool, rank)
	for _, a := range order {
		if a < 0 || a >= rank {
			return axisError(op, ErrInvalidPermutation, a, "rank is %d", rank)
		}
		if seen[a] {
			return axisError(op, ErrInvalidPermutation, a, "axis listed twice")
		}
		seen[a] = true
	}
	return nil
}
