package format

import (
	"fmt"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

func writeJSON(out io.Writer, doc Document, _ Config) error {
	if err := json.MarshalWrite(out, doc, jsontext.WithIndent("  ")); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	_, err := io.WriteString(out, "\n")
	return err
}
