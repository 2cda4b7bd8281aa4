package format

import (
	"cmp"
	"iter"
	"log/slog"
	"slices"

	"github.com/apstndb/go-runewidthex"
	"github.com/apstndb/lox"
	"github.com/ngicks/go-iterator-helper/hiter"
	"github.com/ngicks/go-iterator-helper/hiter/stringsiter"
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
	"spheric.cloud/xiter"
)

type widthCalculator struct{ Condition *runewidthex.Condition }

func newWidthCalculator(tabWidth int) *widthCalculator {
	rw := runewidthex.NewCondition()
	rw.TabWidth = cmp.Or(tabWidth, 4)
	return &widthCalculator{Condition: rw}
}

func (wc *widthCalculator) StringWidth(s string) int {
	return wc.Condition.StringWidth(s)
}

// maxWidth returns the width of the widest line of s.
func (wc *widthCalculator) maxWidth(s string) int {
	return hiter.Max(hiter.Map(
		wc.StringWidth,
		stringsiter.SplitFunc(s, 0, stringsiter.CutNewLine)))
}

// columnWidths calculates the width of each column so that the table fits
// screenWidth. Rows must include the header. Columns are shrunk widest first;
// width freed up by shrinking goes to the column missing the most.
func (wc *widthCalculator) columnWidths(screenWidth int, rows []Row) []int {
	if len(rows) == 0 {
		return nil
	}

	columns := len(rows[0])
	natural := make([]int, columns)
	for i := range columns {
		natural[i] = hiter.Max(xiter.Map(slices.Values(rows), func(row Row) int {
			return wc.maxWidth(lo.NthOr(row, i, ""))
		}))
	}

	if screenWidth <= 0 {
		return natural
	}

	// table overhead is len(`|  |`) + len(` | `) * (columns - 1)
	available := screenWidth - (4 + 3*(columns-1))
	slog.Debug("screen width info", "screenWidth", screenWidth, "available", available, "natural", natural)

	widths := shrinkToFit(available, natural)

	shortages := hiter.Unify(
		func(natural, adjusted int) int { return natural - adjusted },
		hiter.Pairs(slices.Values(natural), slices.Values(widths)))
	if idx, shortage := maxWithIdx(0, shortages); idx >= 0 {
		widths[idx] += min(shortage, available-lo.Sum(widths))
	}

	slog.Debug("adjusted widths", "widths", widths)
	return widths
}

// shrinkToFit clips the widest values of widths to the largest common width
// that keeps the sum within limit. Every width stays at least 1.
func shrinkToFit(limit int, widths []int) []int {
	if lo.Sum(widths) <= limit {
		return slices.Clone(widths)
	}

	// widest first
	candidates := slices.SortedFunc(slices.Values(lo.Uniq(widths)), toSortFunc(func(w int) int { return -w }))
	for _, candidate := range candidates[1:] {
		clipped := clipTo(widths, candidate)
		if lo.Sum(clipped) <= limit {
			return clipped
		}
	}

	return clipTo(widths, max(limit/len(widths), 1))
}

func toSortFunc[T any, R constraints.Ordered](f func(T) R) func(T, T) int {
	return func(lhs T, rhs T) int {
		return cmp.Compare(f(lhs), f(rhs))
	}
}

func clipTo(widths []int, limit int) []int {
	return lo.Map(widths, func(w int, _ int) int {
		return min(w, limit)
	})
}

// maxWithIdx returns the index and value of the maximum element in seq
// that exceeds fallback, or -1 and fallback.
func maxWithIdx[E cmp.Ordered](fallback E, seq iter.Seq[E]) (int, E) {
	return maxByWithIdx(fallback, lox.Identity, seq)
}

func maxByWithIdx[O cmp.Ordered, E any](fallback E, f func(E) O, seq iter.Seq[E]) (int, E) {
	val := fallback
	idx := -1
	current := -1
	for v := range seq {
		current++
		if f(val) < f(v) {
			val = v
			idx = current
		}
	}
	return idx, val
}
