package layout

// BroadcastArg names an axis of extent 1 and the extent to broadcast it to.
type BroadcastArg struct {
	Axis   int
	Extent int
}

// Broadcast stretches an axis of extent 1 to extent, forcing its stride to 0
// so that every position aliases the same storage element.
//
// Example:
//
//	// [1 5 2]:[10 2 1] -> [10 5 2]:[0 2 1]
//	b, _ := l.Broadcast(0, 10)
func (l Layout) Broadcast(axis, extent int) (Layout, error) {
	return l.BroadcastMany(BroadcastArg{Axis: axis, Extent: extent})
}

// BroadcastMany broadcasts several axes at once. Each named axis must have
// extent 1 in l.
func (l Layout) BroadcastMany(args ...BroadcastArg) (Layout, error) {
	axes := l.Axes()
	for _, arg := range args {
		if err := l.checkAxis("broadcast", arg.Axis); err != nil {
			return Layout{}, err
		}
		if arg.Extent < 0 {
			return Layout{}, axisError("broadcast", ErrInvalidShape, arg.Axis, "negative extent %d", arg.Extent)
		}
		if e := l.axes[arg.Axis].Extent; e != 1 {
			return Layout{}, axisError("broadcast", ErrNotBroadcastable, arg.Axis, "extent is %d, want 1", e)
		}
		axes[arg.Axis] = Axis{Extent: arg.Extent, Stride: 0}
	}
	return with(axes, l.offset), nil
}

// BroadcastTo expands l to the target extents following NumPy rules:
// extents are aligned from the right, missing leading axes are inserted, and
// every axis must either already match or have extent 1.
//
// Example:
//
//	// [3 1]:[1 1] -> [2 3 4]:[0 1 0]
//	b, _ := l.BroadcastTo(2, 3, 4)
func (l Layout) BroadcastTo(extents ...int) (Layout, error) {
	if len(extents) < len(l.axes) {
		return Layout{}, newError("broadcast_to", ErrNotBroadcastable,
			"target rank %d is below rank %d", len(extents), len(l.axes))
	}
	lead := len(extents) - len(l.axes)
	axes := make([]Axis, len(extents))
	for i, e := range extents {
		if e < 0 {
			return Layout{}, axisError("broadcast_to", ErrInvalidShape, i, "negative extent %d", e)
		}
		if i < lead {
			axes[i] = Axis{Extent: e, Stride: 0}
			continue
		}
		src := l.axes[i-lead]
		switch {
		case src.Extent == e:
			axes[i] = src
		case src.Extent == 1:
			axes[i] = Axis{Extent: e, Stride: 0}
		default:
			return Layout{}, axisError("broadcast_to", ErrNotBroadcastable, i-lead,
				"cannot expand extent %d to %d", src.Extent, e)
		}
	}
	return with(axes, l.offset), nil
}

// InsertAxis adds a new axis of extent 1 and stride 0 before position, which
// may range over 0..Rank(). Combined with Broadcast it adds a broadcast
// dimension.
func (l Layout) InsertAxis(position int) (Layout, error) {
	if position < 0 || position > len(l.axes) {
		return Layout{}, axisError("insert_axis", ErrAxisOutOfRange, position, "rank is %d", len(l.axes))
	}
	axes := make([]Axis, 0, len(l.axes)+1)
	axes = append(axes, l.axes[:position]...)
	axes = append(axes, Axis{Extent: 1, Stride: 0})
	axes = append(axes, l.axes[position:]...)
	return with(axes, l.offset), nil
}

// RemoveAxis drops an axis of extent 1. It is the inverse of InsertAxis.
func (l Layout) RemoveAxis(axis int) (Layout, error) {
	if err := l.checkAxis("remove_axis", axis); err != nil {
		return Layout{}, err
	}
	if e := l.axes[axis].Extent; e != 1 {
		return Layout{}, axisError("remove_axis", ErrInvalidShape, axis, "extent is %d, want 1", e)
	}
	axes := make([]Axis, 0, len(l.axes)-1)
	axes = append(axes, l.axes[:axis]...)
	axes = append(axes, l.axes[axis+1:]...)
	return with(axes, l.offset), nil
}
