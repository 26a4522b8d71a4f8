package layout

// Tile repeats the block formed by axes axis..Rank()-1 repeat times along a
// new axis inserted at position axis. The new axis has stride 0, so index
// (.., r, i, ..) reaches the same element for every r: the block's logical
// indices wrap modulo their original extents.
//
// The repetition is only expressible as metadata when the block addresses a
// single dense run of storage (IsContiguous restricted to the block);
// otherwise the caller has to materialise the copies and Tile fails with
// ErrNotTileable. axis may equal Rank(), in which case the block is the single
// element at the insertion point.
//
// Example:
//
//	// [2 3 4]:[12 4 1], Tile(1, 5) -> [2 5 3 4]:[12 0 4 1]
func (l Layout) Tile(axis, repeat int) (Layout, error) {
	if axis < 0 || axis > len(l.axes) {
		return Layout{}, axisError("tile", ErrAxisOutOfRange, axis, "rank is %d", len(l.axes))
	}
	if repeat < 0 {
		return Layout{}, axisError("tile", ErrInvalidShape, axis, "negative repeat count %d", repeat)
	}
	block := l.axes[axis:]
	if !blockContiguous(block) {
		return Layout{}, axisError("tile", ErrNotTileable, axis, "axes %d..%d do not address a dense run", axis, len(l.axes)-1)
	}
	axes := make([]Axis, 0, len(l.axes)+1)
	axes = append(axes, l.axes[:axis]...)
	axes = append(axes, Axis{Extent: repeat, Stride: 0})
	axes = append(axes, block...)
	return with(axes, l.offset), nil
}

func blockContiguous(block []Axis) bool {
	for _, a := range block {
		if a.Extent == 0 {
			return true
		}
	}
	return isDense(block)
}
