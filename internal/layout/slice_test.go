package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlice(t *testing.T) {
	base := mustContiguous(t, RowMajor, 2, 3, 4)

	tests := []struct {
		name                   string
		axis, start, end, step int
		wantExtents            []int
		wantStrides            []int
		wantOffset             int
	}{
		{"middle rows", 1, 1, 3, 1, []int{2, 2, 4}, []int{12, 4, 1}, 4},
		{"identity", 2, 0, 4, 1, []int{2, 3, 4}, []int{12, 4, 1}, 0},
		{"stride 2", 2, 0, 4, 2, []int{2, 3, 2}, []int{12, 4, 2}, 0},
		{"stride 3 rounds up", 2, 1, 4, 3, []int{2, 3, 1}, []int{12, 4, 3}, 1},
		{"reverse", 1, 2, 0, -1, []int{2, 2, 4}, []int{12, -4, 1}, 8},
		{"reverse stride 2", 2, 3, 0, -2, []int{2, 3, 2}, []int{12, 4, -2}, 3},
		{"empty forward", 1, 2, 2, 1, []int{2, 0, 4}, []int{12, 4, 1}, 8},
		{"empty backward", 1, 0, 2, -1, []int{2, 0, 4}, []int{12, -4, 1}, 0},
		{"start at end, empty", 1, 3, 3, 1, []int{2, 0, 4}, []int{12, 4, 1}, 12},
		{"huge step", 2, 0, 4, math.MaxInt, []int{2, 3, 1}, []int{12, 4, math.MaxInt}, 0},
		{"min step", 2, 3, 0, math.MinInt, []int{2, 3, 1}, []int{12, 4, math.MinInt}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := base.Slice(tt.axis, tt.start, tt.end, tt.step)
			require.NoError(t, err)
			assert.Equal(t, tt.wantExtents, s.Extents())
			assert.Equal(t, tt.wantStrides, s.Strides())
			assert.Equal(t, tt.wantOffset, s.Offset())
		})
	}
}

func TestSliceSelectsExpectedOffsets(t *testing.T) {
	l := mustNew(t, []int{10}, []int{3}, 1)
	s, err := l.Slice(0, 8, 1, -3)
	require.NoError(t, err)
	// Indices 8, 5, 2.
	assert.Equal(t, []int{25, 16, 7}, offsetsOf(s))
}

func TestSliceErrors(t *testing.T) {
	l := mustContiguous(t, RowMajor, 2, 3, 4)

	_, err := l.Slice(1, 0, 3, 0)
	require.ErrorIs(t, err, ErrInvalidStep)
	_, err = l.Slice(1, -1, 3, 1)
	require.ErrorIs(t, err, ErrSliceOutOfBounds)
	_, err = l.Slice(1, 0, 4, 1)
	require.ErrorIs(t, err, ErrSliceOutOfBounds)
	_, err = l.Slice(1, 3, 0, -1)
	require.ErrorIs(t, err, ErrSliceOutOfBounds, "start == extent cannot be read backwards")
	_, err = l.Slice(3, 0, 1, 1)
	require.ErrorIs(t, err, ErrAxisOutOfRange)

	wide := mustNew(t, []int{3}, []int{math.MaxInt / 2}, 0)
	_, err = wide.Slice(0, 0, 3, 4)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestSliceMany(t *testing.T) {
	l := mustContiguous(t, RowMajor, 4, 6)
	s, err := l.SliceMany(
		SliceArg{Axis: 0, Start: 1, End: 4, Step: 2},
		SliceArg{Axis: 1, Start: 5, End: 0, Step: -1},
	)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5}, s.Extents())
	assert.Equal(t, []int{12, -1}, s.Strides())
	assert.Equal(t, 6+5, s.Offset())

	// Same axis twice composes.
	s, err = l.SliceMany(
		SliceArg{Axis: 1, Start: 1, End: 6, Step: 1},
		SliceArg{Axis: 1, Start: 1, End: 5, Step: 2},
	)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2}, s.Extents())
	assert.Equal(t, []int{6, 2}, s.Strides())
	assert.Equal(t, 2, s.Offset())
}

func TestReverse(t *testing.T) {
	l := mustContiguous(t, RowMajor, 2, 3)
	r, err := l.Reverse(1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, -1}, r.Strides())
	assert.Equal(t, 2, r.Offset())
	assert.Equal(t, []int{2, 1, 0, 5, 4, 3}, offsetsOf(r))

	back, err := r.Reverse(1)
	require.NoError(t, err)
	assert.True(t, back.Equal(l))

	single := mustNew(t, []int{1}, []int{math.MinInt}, 0)
	same, err := single.Reverse(0)
	require.NoError(t, err)
	assert.True(t, same.Equal(single))

	_, err = mustNew(t, []int{2}, []int{math.MinInt}, 0).Reverse(0)
	require.ErrorIs(t, err, ErrOverflow)
	_, err = l.Reverse(2)
	require.ErrorIs(t, err, ErrAxisOutOfRange)
}

func TestIndex(t *testing.T) {
	l := mustContiguous(t, RowMajor, 2, 3, 4)
	x, err := l.Index(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, x.Extents())
	assert.Equal(t, []int{12, 1}, x.Strides())
	assert.Equal(t, 8, x.Offset())

	r := mustNew(t, []int{2, 3, 4}, []int{12, -4, 1}, 20)
	x, err = r.Index(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{12, 1}, x.Strides())
	assert.Equal(t, 12, x.Offset())

	x, err = l.IndexMany(IndexArg{Axis: 0, Index: 1}, IndexArg{Axis: 2, Index: 3})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, x.Extents())
	assert.Equal(t, []int{4}, x.Strides())
	assert.Equal(t, 15, x.Offset())

	_, err = l.Index(1, 3)
	require.ErrorIs(t, err, ErrInvalidIndex)
	_, err = l.IndexMany(IndexArg{Axis: 2, Index: 0}, IndexArg{Axis: 0, Index: 0})
	require.ErrorIs(t, err, ErrInvalidIndex)
	_, err = l.Index(5, 0)
	require.ErrorIs(t, err, ErrAxisOutOfRange)
}

func TestChunk(t *testing.T) {
	l := mustContiguous(t, RowMajor, 2, 3, 4)
	parts, err := l.Chunk(2, 1, 3)
	require.NoError(t, err)
	require.Len(t, parts, 2)

	assert.Equal(t, []int{2, 3, 1}, parts[0].Extents())
	assert.Equal(t, []int{12, 4, 1}, parts[0].Strides())
	assert.Equal(t, 0, parts[0].Offset())

	assert.Equal(t, []int{2, 3, 3}, parts[1].Extents())
	assert.Equal(t, 1, parts[1].Offset())

	// Pieces cover the original exactly once.
	var all []int
	for _, p := range parts {
		all = append(all, offsetsOf(p)...)
	}
	assert.ElementsMatch(t, offsetsOf(l), all)

	parts, err = l.Chunk(0, 0, 2, 0)
	require.NoError(t, err)
	assert.True(t, parts[0].IsEmpty())
	assert.True(t, parts[2].IsEmpty())

	_, err = l.Chunk(2, 2, 3)
	require.ErrorIs(t, err, ErrFactorMismatch)
	_, err = l.Chunk(2, 5, -1)
	require.ErrorIs(t, err, ErrFactorMismatch)
	_, err = l.Chunk(9, 1)
	require.ErrorIs(t, err, ErrAxisOutOfRange)
}
