package format

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/ngicks/go-iterator-helper/hiter"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/apstndb/protoform/internal/markdown"
)

var tableHeader = Row{"Section", "Depth", "Lines", "Subsections"}

// OutlineRows converts the outline of nodes to table rows. Titles are
// indented by their nesting level.
func OutlineRows(nodes []markdown.Node) []Row {
	var rows []Row
	for _, r := range markdown.Flatten(nodes) {
		rows = append(rows, Row{
			strings.Repeat("  ", r.Level) + r.Title,
			strconv.Itoa(r.Depth),
			strconv.Itoa(r.Lines),
			strconv.Itoa(r.Subsections),
		})
	}
	return rows
}

// WriteTable writes the outline of doc as an ASCII table. Cells wider than
// their column are truncated. Nothing is written for a document without sections.
func WriteTable(out io.Writer, doc Document, config Config) error {
	rows := OutlineRows(doc.Nodes)
	if len(rows) == 0 {
		return nil
	}

	table := tablewriter.NewTable(out,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleASCII)})),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithTrimSpace(tw.Off),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	).Configure(func(twConfig *tablewriter.Config) {
		twConfig.Row.Formatting.AutoWrap = tw.WrapNone
		twConfig.Row.Alignment.PerColumn = []tw.Align{tw.AlignLeft, tw.AlignRight, tw.AlignRight, tw.AlignRight}
	})

	wc := newWidthCalculator(config.TabWidth)
	widths := wc.columnWidths(config.Width, slices.Concat([]Row{tableHeader}, rows))

	fit := func(row Row) Row {
		return slices.Collect(hiter.Unify(
			truncate,
			hiter.Pairs(slices.Values(row), slices.Values(widths))))
	}

	if !config.SkipColumnNames {
		table.Header(fit(tableHeader))
	}

	for _, row := range rows {
		if err := table.Append(fit(row)); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "...")
}
