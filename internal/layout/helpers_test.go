package layout

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, extents, strides []int, offset int) Layout {
	t.Helper()
	l, err := New(extents, strides, offset)
	require.NoError(t, err)
	return l
}

func mustContiguous(t *testing.T, order Order, extents ...int) Layout {
	t.Helper()
	l, err := Contiguous(extents, order)
	require.NoError(t, err)
	return l
}

// offsetsOf lists the storage offsets of l in row-major index order.
func offsetsOf(l Layout) []int {
	var out []int
	for _, off := range l.Offsets() {
		out = append(out, off)
	}
	return out
}

// sortedOffsets is offsetsOf without the traversal order.
func sortedOffsets(l Layout) []int {
	out := offsetsOf(l)
	slices.Sort(out)
	return out
}

// sampleLayouts covers the shapes the algebra has to cope with: dense in both
// orders, permuted, reversed, broadcast, offset, padded and degenerate.
func sampleLayouts(t *testing.T) map[string]Layout {
	t.Helper()
	return map[string]Layout{
		"row-major":    mustContiguous(t, RowMajor, 2, 3, 4),
		"column-major": mustContiguous(t, ColumnMajor, 2, 3, 4),
		"permuted":     mustNew(t, []int{4, 2, 3}, []int{1, 12, 4}, 0),
		"reversed":     mustNew(t, []int{2, 3, 4}, []int{12, -4, 1}, 20),
		"broadcast":    mustNew(t, []int{5, 3, 4}, []int{0, 4, 1}, 0),
		"padded":       mustNew(t, []int{3, 4}, []int{8, 1}, 2),
		"degenerate":   mustNew(t, []int{3, 1, 4}, []int{4, 99, 1}, 0),
		"empty":        mustNew(t, []int{2, 0, 3}, []int{7, 5, 1}, 0),
		"vector":       mustContiguous(t, RowMajor, 6),
		"empty-tail":   mustNew(t, []int{2, 3, 0}, []int{10, 1, 1}, 0),
	}
}
