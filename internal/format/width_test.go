package format

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestShrinkToFit(t *testing.T) {
	tests := []struct {
		name   string
		limit  int
		widths []int
		want   []int
	}{
		{"fits", 20, []int{5, 5, 5}, []int{5, 5, 5}},
		{"clip widest", 10, []int{10, 3, 2}, []int{3, 3, 2}},
		{"clip two widest", 12, []int{10, 8, 2}, []int{2, 2, 2}},
		{"too narrow", 3, []int{10, 8, 6}, []int{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shrinkToFit(tt.limit, tt.widths)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("shrinkToFit() mismatch (-want +got):\n%s", diff)
			}
			assert.LessOrEqual(t, lo.Sum(got), max(tt.limit, len(tt.widths)))
		})
	}
}

func TestColumnWidths(t *testing.T) {
	wc := newWidthCalculator(0)
	rows := []Row{
		{"Section", "Depth"},
		{"A very long section title", "1"},
		{"日本語", "2"},
	}

	t.Run("unlimited", func(t *testing.T) {
		assert.Equal(t, []int{25, 5}, wc.columnWidths(0, rows))
	})

	t.Run("fits exactly", func(t *testing.T) {
		// overhead for two columns is 7
		got := wc.columnWidths(20, rows)
		assert.Equal(t, 13, lo.Sum(got))
		assert.Equal(t, 5, got[1])
	})

	t.Run("no rows", func(t *testing.T) {
		assert.Nil(t, wc.columnWidths(80, nil))
	})
}

func TestMaxWithIdx(t *testing.T) {
	idx, v := maxWithIdx(0, slices.Values([]int{3, 9, 2, 9}))
	assert.Equal(t, 1, idx)
	assert.Equal(t, 9, v)

	idx, v = maxWithIdx(0, slices.Values([]int{-1, -2}))
	assert.Equal(t, -1, idx)
	assert.Equal(t, 0, v)
}
