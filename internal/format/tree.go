package format

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/apstndb/protoform/internal/markdown"
)

// WriteTree writes the sections of doc as an indented outline, one header per
// line. In verbose mode the text lines of each section are included, prefixed
// with "| ".
func WriteTree(out io.Writer, doc Document, config Config) error {
	marker := string(cmp.Or(config.Marker, markdown.DefaultMarker))
	return writeTreeNodes(out, doc.Nodes, 0, marker, config.Verbose)
}

func writeTreeNodes(out io.Writer, nodes []markdown.Node, level int, marker string, verbose bool) error {
	indent := strings.Repeat("  ", level)
	for _, n := range nodes {
		switch n := n.(type) {
		case markdown.Line:
			if !verbose {
				continue
			}
			if _, err := fmt.Fprintf(out, "%s| %s\n", indent, n); err != nil {
				return err
			}
		case *markdown.Section:
			if _, err := fmt.Fprintf(out, "%s%s %s\n", indent, strings.Repeat(marker, n.Depth), n.Title); err != nil {
				return err
			}
			if err := writeTreeNodes(out, n.Children, level+1, marker, verbose); err != nil {
				return err
			}
		}
	}
	return nil
}
