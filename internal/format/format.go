package format

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/k0kubun/pp/v3"
)

// Format is the name of an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatTree  Format = "tree"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatDebug Format = "debug"
)

// Formats lists every supported format.
var Formats = []Format{FormatTable, FormatTree, FormatJSON, FormatYAML, FormatDebug}

// IsValid reports whether f is a supported format.
func (f Format) IsValid() bool {
	return slices.Contains(Formats, f)
}

// ParseFormat parses a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if !f.IsValid() {
		return "", fmt.Errorf("invalid format: %s (valid: %s)", s, strings.Join(formatNames(), ", "))
	}
	return f, nil
}

func formatNames() []string {
	names := make([]string, 0, len(Formats))
	for _, f := range Formats {
		names = append(names, string(f))
	}
	return names
}

// NewFormatter returns the formatter for f.
func NewFormatter(f Format) (FormatFunc, error) {
	switch f {
	case FormatTable, "":
		return buffered(WriteTable), nil
	case FormatTree:
		return buffered(WriteTree), nil
	case FormatJSON:
		return buffered(writeJSON), nil
	case FormatYAML:
		return buffered(writeYAML), nil
	case FormatDebug:
		return writeDebug, nil
	default:
		return nil, fmt.Errorf("unsupported format: %v", f)
	}
}

// buffered makes fn write to out only when it completes without error.
func buffered(fn FormatFunc) FormatFunc {
	return func(out io.Writer, doc Document, config Config) error {
		return writeBuffered(out, func(w io.Writer) error {
			return fn(w, doc, config)
		})
	}
}

// writeBuffered writes to a temporary buffer first, and only writes to out if no error occurs.
func writeBuffered(out io.Writer, buildFunc func(out io.Writer) error) error {
	var buf strings.Builder
	if err := buildFunc(&buf); err != nil {
		return err
	}

	if buf.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(out, buf.String())
	return err
}

func writeYAML(out io.Writer, doc Document, _ Config) error {
	if err := yaml.NewEncoder(out, yaml.UseJSONMarshaler()).Encode(doc); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return nil
}

func writeDebug(out io.Writer, doc Document, _ Config) error {
	printer := pp.New()
	printer.SetColoringEnabled(false)
	_, err := fmt.Fprintln(out, printer.Sprint(doc))
	return err
}
