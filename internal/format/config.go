package format

import (
	"io"

	"github.com/apstndb/protoform/internal/markdown"
)

// Row is a row of rendered cell values.
type Row = []string

// Document is a parsed input as seen by formatters.
type Document struct {
	// Name identifies the input, typically a file name or "-" for stdin.
	Name string `json:"name" yaml:"name"`

	Nodes []markdown.Node `json:"nodes" yaml:"nodes"`

	// Remaining is the input left unconsumed by a partial parse.
	Remaining string `json:"remaining,omitempty" yaml:"remaining,omitempty"`
}

// Config holds the settings shared by formatters.
type Config struct {
	// Width is the screen width available to the table format.
	// Zero or negative disables fitting.
	Width int

	// TabWidth is the display width of a tab character.
	TabWidth int

	// Marker is the header marker used by the tree format.
	Marker rune

	// Verbose makes the tree format include text lines.
	Verbose bool

	// SkipColumnNames omits the table header.
	SkipColumnNames bool
}

// FormatFunc writes a document to out.
type FormatFunc func(out io.Writer, doc Document, config Config) error
