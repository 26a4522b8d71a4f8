// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package layout

import "github.com/born-ml/strided/internal/layout"

// Error classes. Use errors.Is to test a returned error against them and
// errors.As with *Error to read the axes involved.
var (
	ErrInvalidShape       = layout.ErrInvalidShape
	ErrAxisOutOfRange     = layout.ErrAxisOutOfRange
	ErrInvalidIndex       = layout.ErrInvalidIndex
	ErrInvalidPermutation = layout.ErrInvalidPermutation
	ErrNotMergeable       = layout.ErrNotMergeable
	ErrFactorMismatch     = layout.ErrFactorMismatch
	ErrNotBroadcastable   = layout.ErrNotBroadcastable
	ErrSliceOutOfBounds   = layout.ErrSliceOutOfBounds
	ErrInvalidStep        = layout.ErrInvalidStep
	ErrNotTileable        = layout.ErrNotTileable
	ErrOverflow           = layout.ErrOverflow
)
