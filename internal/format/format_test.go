package format_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/go-json-experiment/json"
	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apstndb/protoform/internal/format"
	"github.com/apstndb/protoform/internal/markdown"
)

var sample = heredoc.Doc(`
	intro
	# Guide
	Welcome
	## Install
	go install
	## Usage
	Run it
	### Flags
`)

func parseSample(t *testing.T) format.Document {
	t.Helper()
	nodes, err := markdown.Parse(sample)
	require.NoError(t, err)
	return format.Document{Name: "guide.md", Nodes: nodes}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    format.Format
		wantErr bool
	}{
		{"table", format.FormatTable, false},
		{"TREE", format.FormatTree, false},
		{"Json", format.FormatJSON, false},
		{"yaml", format.FormatYAML, false},
		{"debug", format.FormatDebug, false},
		{"csv", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := format.ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("error lists valid formats", func(t *testing.T) {
		_, err := format.ParseFormat("csv")
		assert.EqualError(t, err, "invalid format: csv (valid: table, tree, json, yaml, debug)")
	})
}

func TestNewFormatter(t *testing.T) {
	for _, f := range format.Formats {
		t.Run(string(f), func(t *testing.T) {
			fn, err := format.NewFormatter(f)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, fn(&buf, parseSample(t), format.Config{}))
			assert.Contains(t, buf.String(), "Install")
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		_, err := format.NewFormatter("csv")
		assert.Error(t, err)
	})
}

func TestWriteTree(t *testing.T) {
	doc := parseSample(t)

	tests := []struct {
		name   string
		config format.Config
		want   string
	}{
		{
			name: "headers only",
			want: heredoc.Doc(`
				# Guide
				  ## Install
				  ## Usage
				    ### Flags
			`),
		},
		{
			name:   "verbose",
			config: format.Config{Verbose: true},
			want: heredoc.Doc(`
				| intro
				# Guide
				  | Welcome
				  ## Install
				    | go install
				  ## Usage
				    | Run it
				    ### Flags
			`),
		},
		{
			name:   "custom marker",
			config: format.Config{Marker: '='},
			want: heredoc.Doc(`
				= Guide
				  == Install
				  == Usage
				    === Flags
			`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			require.NoError(t, format.WriteTree(&buf, doc, tt.config))
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("WriteTree() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOutlineRows(t *testing.T) {
	want := []format.Row{
		{"Guide", "1", "1", "2"},
		{"  Install", "2", "1", "0"},
		{"  Usage", "2", "1", "1"},
		{"    Flags", "3", "0", "0"},
	}
	if diff := cmp.Diff(want, format.OutlineRows(parseSample(t).Nodes)); diff != "" {
		t.Errorf("OutlineRows() mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteTable(t *testing.T) {
	doc := parseSample(t)

	t.Run("unlimited width", func(t *testing.T) {
		var buf strings.Builder
		require.NoError(t, format.WriteTable(&buf, doc, format.Config{}))

		out := buf.String()
		assert.Contains(t, out, "| Section")
		assert.Contains(t, out, "Subsections |")
		assert.Contains(t, out, "|     Flags")
		assert.True(t, strings.HasPrefix(out, "+"), "table starts with a border: %q", out)
	})

	t.Run("skip column names", func(t *testing.T) {
		var buf strings.Builder
		require.NoError(t, format.WriteTable(&buf, doc, format.Config{SkipColumnNames: true}))
		assert.NotContains(t, buf.String(), "Section")
	})

	t.Run("narrow screen truncates", func(t *testing.T) {
		var buf strings.Builder
		require.NoError(t, format.WriteTable(&buf, doc, format.Config{Width: 30}))

		for line := range strings.Lines(buf.String()) {
			assert.LessOrEqual(t, len(strings.TrimRight(line, "\n")), 30, "line %q", line)
		}
		assert.Contains(t, buf.String(), "...")
	})

	t.Run("no sections", func(t *testing.T) {
		nodes, err := markdown.Parse("just text\n")
		require.NoError(t, err)

		var buf strings.Builder
		require.NoError(t, format.WriteTable(&buf, format.Document{Nodes: nodes}, format.Config{}))
		assert.Empty(t, buf.String())
	})
}

func TestWriteJSON(t *testing.T) {
	fn, err := format.NewFormatter(format.FormatJSON)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fn(&buf, parseSample(t), format.Config{}))
	assert.True(t, strings.HasSuffix(buf.String(), "}\n"))
	assert.NotContains(t, buf.String(), "remaining")

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "guide.md", got["name"])

	nodes := got["nodes"].([]any)
	require.Len(t, nodes, 2)
	assert.Equal(t, "intro", nodes[0])

	guide := nodes[1].(map[string]any)
	assert.Equal(t, "Guide", guide["title"])
	assert.EqualValues(t, 1, guide["depth"])
	assert.Len(t, guide["children"], 3)
}

func TestWriteYAML(t *testing.T) {
	fn, err := format.NewFormatter(format.FormatYAML)
	require.NoError(t, err)

	doc := parseSample(t)
	doc.Remaining = "leftover"

	var buf bytes.Buffer
	require.NoError(t, fn(&buf, doc, format.Config{}))

	var got struct {
		Name  string `yaml:"name"`
		Nodes []any  `yaml:"nodes"`
		Rest  string `yaml:"remaining"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "guide.md", got.Name)
	assert.Equal(t, "leftover", got.Rest)
	require.Len(t, got.Nodes, 2)
	assert.Equal(t, "intro", got.Nodes[0])
}

func TestWriteDebug(t *testing.T) {
	fn, err := format.NewFormatter(format.FormatDebug)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fn(&buf, parseSample(t), format.Config{}))

	out := buf.String()
	assert.Contains(t, out, "format.Document")
	assert.Contains(t, out, `"Guide"`)
	assert.NotContains(t, out, "\x1b[", "coloring is disabled")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestBufferedFormatterWriteError(t *testing.T) {
	fn, err := format.NewFormatter(format.FormatTree)
	require.NoError(t, err)

	err = fn(failingWriter{}, parseSample(t), format.Config{})
	assert.EqualError(t, err, "write failed")

	err = fn(io.Discard, format.Document{}, format.Config{})
	assert.NoError(t, err)
}
