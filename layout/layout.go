// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layout provides the public API for strided array layouts.
//
// A Layout describes how the logical index space of an N-dimensional array
// maps to linear storage offsets through per-axis extents and strides plus a
// base offset. Transformations return new layouts and never move data:
//   - Permute, Transpose: reorder axes
//   - Merge, Split: flatten or subdivide axes
//   - Broadcast, BroadcastTo, InsertAxis: add aliasing (stride 0) axes
//   - Slice, Reverse, Index, Chunk: restrict axes
//   - Tile: repeat a dense block
//   - Canonicalize: minimal-rank equivalent layout
//
// Every transformation returns an error wrapping one of the Err* sentinels
// when the requested view cannot be expressed as metadata, so the caller can
// fall back to copying.
//
// Example:
//
//	l, _ := layout.Contiguous([]int{2, 3, 4}, layout.RowMajor)
//	v, _ := l.Slice(1, 1, 3, 1)   // [2 2 4]:[12 4 1]+4
//	m, err := v.Merge(0, 1)       // fails: rows are no longer adjacent
//	if errors.Is(err, layout.ErrNotMergeable) {
//	    // copy instead
//	}
package layout

import (
	"github.com/born-ml/strided/internal/layout"
)

// Type aliases for public API

// Layout maps a multi-dimensional index to a storage offset.
type Layout = layout.Layout

// Axis is one (extent, stride) pair of a Layout.
type Axis = layout.Axis

// Order selects the major order of a contiguous layout.
type Order = layout.Order

// Major order constants.
const (
	RowMajor    Order = layout.RowMajor
	ColumnMajor Order = layout.ColumnMajor
)

// Span is the half-open range of storage offsets a layout reaches.
type Span = layout.Span

// AxisRange is an inclusive run of adjacent axes, used by MergeMany.
type AxisRange = layout.AxisRange

// SliceArg is one argument to SliceMany.
type SliceArg = layout.SliceArg

// IndexArg is one argument to IndexMany.
type IndexArg = layout.IndexArg

// BroadcastArg is one argument to BroadcastMany.
type BroadcastArg = layout.BroadcastArg

// Error describes a failed layout operation.
type Error = layout.Error

// New creates a layout from explicit extents, strides and offset.
func New(extents, strides []int, offset int) (Layout, error) {
	return layout.New(extents, strides, offset)
}

// FromAxes creates a layout from a list of axes and an offset.
func FromAxes(axes []Axis, offset int) (Layout, error) {
	return layout.FromAxes(axes, offset)
}

// Contiguous creates a dense layout for extents in the given major order.
func Contiguous(extents []int, order Order) (Layout, error) {
	return layout.Contiguous(extents, order)
}

// InversePermutation returns the permutation undoing order.
func InversePermutation(order []int) ([]int, error) {
	return layout.InversePermutation(order)
}
