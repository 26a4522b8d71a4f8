package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name        string
		l           Layout
		first, last int
		wantExtents []int
		wantStrides []int
	}{
		{"inner pair", mustContiguous(t, RowMajor, 2, 3, 4), 1, 2, []int{2, 12}, []int{12, 1}},
		{"all axes", mustContiguous(t, RowMajor, 2, 3, 4), 0, 2, []int{24}, []int{1}},
		{"single axis", mustContiguous(t, RowMajor, 2, 3, 4), 1, 1, []int{2, 3, 4}, []int{12, 4, 1}},
		{"padded rows keep outer", mustNew(t, []int{2, 3, 4}, []int{16, 4, 1}, 0), 1, 2, []int{2, 12}, []int{16, 1}},
		{"reversed", mustNew(t, []int{3, 4}, []int{-4, -1}, 11), 0, 1, []int{12}, []int{-1}},
		{"degenerate between", mustNew(t, []int{3, 1, 4}, []int{4, 99, 1}, 0), 0, 2, []int{12}, []int{1}},
		{"degenerate innermost", mustNew(t, []int{4, 1}, []int{2, 7}, 0), 0, 1, []int{4}, []int{2}},
		{"all degenerate", mustNew(t, []int{1, 1}, []int{5, 7}, 0), 0, 1, []int{1}, []int{7}},
		{"broadcast pair", mustNew(t, []int{5, 4, 3}, []int{0, 0, 1}, 0), 0, 1, []int{20, 3}, []int{0, 1}},
		{"empty", mustNew(t, []int{2, 0, 3}, []int{7, 5, 1}, 0), 0, 2, []int{0}, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.l.Merge(tt.first, tt.last)
			require.NoError(t, err)
			assert.Equal(t, tt.wantExtents, m.Extents())
			assert.Equal(t, tt.wantStrides, m.Strides())
			assert.Equal(t, tt.l.Offset(), m.Offset())
			assert.Equal(t, offsetsOf(tt.l), offsetsOf(m), "merge must not change the mapping")
		})
	}
}

func TestMergeNotMergeable(t *testing.T) {
	// [2 3 4] permuted to [4 2 3]:[1 12 4].
	l, err := mustContiguous(t, RowMajor, 2, 3, 4).Permute(2, 0, 1)
	require.NoError(t, err)

	_, err = l.Merge(0, 1)
	require.ErrorIs(t, err, ErrNotMergeable)

	var lerr *Error
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, 0, lerr.Axis)
	assert.Equal(t, 1, lerr.Other)

	// First offending pair in a longer run.
	l = mustNew(t, []int{2, 3, 4, 5}, []int{60, 20, 5, 2}, 0)
	_, err = l.Merge(0, 3)
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, 2, lerr.Axis)
	assert.Equal(t, 3, lerr.Other)

	// A degenerate axis does not hide a gap.
	l = mustNew(t, []int{3, 1, 4}, []int{5, 99, 1}, 0)
	_, err = l.Merge(0, 2)
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, 0, lerr.Axis)
	assert.Equal(t, 2, lerr.Other)

	// Broadcast next to a strided axis.
	l = mustNew(t, []int{5, 4}, []int{0, 1}, 0)
	_, err = l.Merge(0, 1)
	require.ErrorIs(t, err, ErrNotMergeable)
}

func TestMergeRangeErrors(t *testing.T) {
	l := mustContiguous(t, RowMajor, 2, 3, 4)
	for _, r := range []AxisRange{{-1, 1}, {1, 0}, {1, 3}} {
		_, err := l.Merge(r.First, r.Last)
		require.ErrorIs(t, err, ErrAxisOutOfRange, "range %v", r)
	}

	_, err := l.MergeMany(AxisRange{1, 2}, AxisRange{0, 1})
	require.ErrorIs(t, err, ErrAxisOutOfRange)
	_, err = l.MergeMany(AxisRange{0, 1}, AxisRange{1, 2})
	require.ErrorIs(t, err, ErrAxisOutOfRange)
}

func TestMergeOverflow(t *testing.T) {
	l := mustNew(t, []int{math.MaxInt / 2, 4}, []int{0, 0}, 0)
	_, err := l.Merge(0, 1)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestMergeMany(t *testing.T) {
	l := mustContiguous(t, RowMajor, 2, 3, 4, 5, 6)

	m, err := l.MergeMany(AxisRange{0, 1}, AxisRange{3, 4})
	require.NoError(t, err)
	assert.Equal(t, []int{6, 4, 30}, m.Extents())
	assert.Equal(t, []int{120, 30, 1}, m.Strides())

	m, err = l.MergeMany()
	require.NoError(t, err)
	assert.True(t, m.Equal(l))
}
