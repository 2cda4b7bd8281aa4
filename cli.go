package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/sourcegraph/conc/iter"
	"github.com/spf13/afero"

	"github.com/apstndb/protoform/internal/format"
	"github.com/apstndb/protoform/internal/markdown"
	"github.com/apstndb/protoform/parser"
)

// stdinName is the file argument that reads standard input.
const stdinName = "-"

// App parses inputs and writes their outlines.
type App struct {
	Fs       afero.Fs
	In       io.Reader
	Out      io.Writer
	Err      io.Writer
	Settings *settings
	Tracer   parser.Tracer
}

type input struct {
	name    string
	content string
}

type parseResult struct {
	doc format.Document
	err error
}

// Run parses every named input, or standard input if there are none, and
// writes the results in argument order. Inputs that fail to parse are
// reported to Err and make Run return a *ParseFailureError after the other
// inputs have been written.
func (a *App) Run(ctx context.Context, names []string) error {
	if len(names) == 0 {
		names = []string{stdinName}
	}

	inputs, err := a.readInputs(names)
	if err != nil {
		return err
	}

	formatter, err := format.NewFormatter(a.Settings.format)
	if err != nil {
		return err
	}

	results := a.parseAll(ctx, inputs)

	var failed, written int
	for i, r := range results {
		in := inputs[i]
		if r.err != nil {
			failed++
			a.reportParseError(in, r.err)
			continue
		}

		if r.doc.Remaining != "" {
			line, col := position(in.content, r.doc.Remaining)
			printWarning(a.Err, "%s:%d:%d: unconsumed input: %q", in.name, line, col, preview(r.doc.Remaining))
		}

		if err := a.writeHeader(written, len(inputs), in.name); err != nil {
			return err
		}
		if err := formatter(a.Out, r.doc, a.Settings.fmtConfig); err != nil {
			return fmt.Errorf("failed to write %s: %w", in.name, err)
		}
		written++
	}

	if failed > 0 {
		return &ParseFailureError{Failed: failed, Total: len(inputs)}
	}
	return nil
}

func (a *App) readInputs(names []string) ([]input, error) {
	var (
		stdin     string
		stdinRead bool
	)
	inputs := make([]input, 0, len(names))
	for _, name := range names {
		if name == stdinName {
			// stdin can only be read once; repeated "-" arguments share it.
			if !stdinRead {
				b, err := io.ReadAll(a.In)
				if err != nil {
					return nil, fmt.Errorf("read from stdin failed: %w", err)
				}
				stdin, stdinRead = string(b), true
			}
			inputs = append(inputs, input{name: name, content: stdin})
			continue
		}

		b, err := afero.ReadFile(a.Fs, name)
		if err != nil {
			return nil, fmt.Errorf("read from file %v failed: %w", name, err)
		}
		inputs = append(inputs, input{name: name, content: string(b)})
	}
	return inputs, nil
}

func (a *App) grammar() *markdown.Grammar {
	opts := []markdown.Option{markdown.WithTracer(a.Tracer)}
	if a.Settings.strict {
		opts = append(opts, markdown.WithStrictHeaders())
	}
	return markdown.NewGrammar(a.Settings.marker, opts...)
}

// parseAll parses inputs concurrently and returns the results in input order.
func (a *App) parseAll(ctx context.Context, inputs []input) []parseResult {
	g := a.grammar()
	mapper := iter.Mapper[input, parseResult]{MaxGoroutines: a.Settings.jobs}
	return mapper.Map(inputs, func(in *input) parseResult {
		if err := ctx.Err(); err != nil {
			return parseResult{err: err}
		}

		slog.Debug("parsing", "name", in.name, "bytes", len(in.content))
		nodes, rest, err := g.ParseWithMode(in.content, a.Settings.mode)
		if err != nil {
			return parseResult{err: err}
		}
		return parseResult{doc: format.Document{Name: in.name, Nodes: nodes, Remaining: rest}}
	})
}

func (a *App) reportParseError(in input, err error) {
	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		printError(a.Err, fmt.Errorf("%s: %w", in.name, err))
		return
	}

	line, col := position(in.content, pe.Remaining)
	printError(a.Err, fmt.Errorf("%s:%d:%d: %w [%v]", in.name, line, col, pe, pe.Kind))
}

// writeHeader separates the outputs of multiple inputs. written is the
// number of outputs already written.
func (a *App) writeHeader(written, total int, name string) error {
	if total < 2 {
		return nil
	}

	var err error
	switch a.Settings.format {
	case format.FormatJSON:
	case format.FormatYAML:
		if written > 0 {
			_, err = io.WriteString(a.Out, "---\n")
		}
	default:
		_, err = fmt.Fprintf(a.Out, "%s%s:\n", lo.Ternary(written > 0, "\n", ""), name)
	}
	return err
}

// position returns the 1-based line and column at which remaining starts
// within content. remaining must be a suffix of content.
func position(content, remaining string) (line, col int) {
	consumed := content[:len(content)-len(remaining)]
	line = strings.Count(consumed, "\n") + 1
	col = utf8.RuneCountInString(consumed[strings.LastIndexByte(consumed, '\n')+1:]) + 1
	return line, col
}

const previewLength = 20

func preview(s string) string {
	if utf8.RuneCountInString(s) <= previewLength {
		return s
	}
	return string([]rune(s)[:previewLength]) + "..."
}
