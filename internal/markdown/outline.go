package markdown

import (
	"iter"

	"github.com/samber/lo"
)

// Lines returns the text lines directly inside s.
func (s *Section) Lines() []string {
	return lo.FilterMap(s.Children, func(n Node, _ int) (string, bool) {
		l, ok := n.(Line)
		return string(l), ok
	})
}

// Subsections returns the sections directly inside s.
func (s *Section) Subsections() []*Section {
	return Sections(s.Children)
}

// Sections returns the sections among nodes.
func Sections(nodes []Node) []*Section {
	return lo.FilterMap(nodes, func(n Node, _ int) (*Section, bool) {
		sec, ok := n.(*Section)
		return sec, ok
	})
}

// Walk iterates over every section in nodes depth-first in document order.
// It yields the nesting level, starting at 0 for sections in nodes, and the section.
func Walk(nodes []Node) iter.Seq2[int, *Section] {
	return func(yield func(int, *Section) bool) {
		walk(nodes, 0, yield)
	}
}

func walk(nodes []Node, level int, yield func(int, *Section) bool) bool {
	for _, s := range Sections(nodes) {
		if !yield(level, s) {
			return false
		}
		if !walk(s.Children, level+1, yield) {
			return false
		}
	}
	return true
}

// OutlineRow summarizes one section of a document.
type OutlineRow struct {
	Level       int
	Depth       int
	Title       string
	Lines       int
	Subsections int
}

// Flatten returns one row per section in the order of Walk.
func Flatten(nodes []Node) []OutlineRow {
	var rows []OutlineRow
	for level, s := range Walk(nodes) {
		rows = append(rows, OutlineRow{
			Level:       level,
			Depth:       s.Depth,
			Title:       s.Title,
			Lines:       lo.CountBy(s.Children, isLine),
			Subsections: len(s.Children) - lo.CountBy(s.Children, isLine),
		})
	}
	return rows
}

// Preamble returns the lines before the first section.
func Preamble(nodes []Node) []string {
	var lines []string
	for _, n := range nodes {
		l, ok := n.(Line)
		if !ok {
			break
		}
		lines = append(lines, string(l))
	}
	return lines
}

func isLine(n Node) bool {
	_, ok := n.(Line)
	return ok
}
