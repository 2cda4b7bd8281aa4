// Package markdown structures a markdown-like document into nested sections
// by their headers. Only headers are interpreted; every other line is kept
// as text inside the section it belongs to.
package markdown

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/apstndb/protoform/parser"
)

// DefaultMarker is the header marker of standard markdown.
const DefaultMarker = '#'

// Node is an element of a section body: a Line or a *Section.
type Node interface {
	isNode()
}

// Line is a line of text that is not a header. It excludes the line terminator.
type Line string

func (Line) isNode() {}

// Section is a header together with everything up to the next header of the
// same or lower depth.
type Section struct {
	// Depth is the number of marker characters of the header.
	Depth int `json:"depth" yaml:"depth"`

	// Title is the header text with surrounding whitespace removed.
	Title string `json:"title" yaml:"title"`

	// Children are the lines and subsections of the section in document order.
	Children []Node `json:"children" yaml:"children"`
}

func (*Section) isNode() {}

// Grammar is the parser set for documents using one header marker.
// A Grammar is safe for concurrent use.
type Grammar struct {
	marker rune
	tracer parser.Tracer
	strict bool

	// Header matches a run of marker characters terminated by a space or the
	// end of input, and yields the run. The terminator is not consumed.
	Header parser.Parser[string]

	// Line matches the text up to and including the next newline, or the
	// rest of the input if there is no newline. It yields the text without
	// the newline and needs at least one character.
	Line parser.Parser[string]

	// Document matches any number of top-level nodes.
	Document parser.Parser[[]Node]

	// text is Line, restricted in strict mode to lines not starting with
	// the marker.
	text parser.Parser[string]

	// strayMarker matches, without consuming, a marker that does not start
	// a header. It is only set in strict mode.
	strayMarker parser.Parser[struct{}]

	mu       sync.Mutex
	sections map[int]parser.Parser[*Section]
}

// Option configures a Grammar.
type Option func(*Grammar)

// WithTracer reports section, header and line attempts to tracer.
func WithTracer(tracer parser.Tracer) Option {
	return func(g *Grammar) {
		g.tracer = tracer
	}
}

// WithStrictHeaders rejects lines that start with the marker but are not
// headers, such as "#tag". Parsing stops in front of such a line instead of
// treating it as text.
func WithStrictHeaders() Option {
	return func(g *Grammar) {
		g.strict = true
	}
}

// NewGrammar builds the grammar for headers written with marker.
// It panics if marker is a space or a newline, which would make headers
// indistinguishable from their terminators.
func NewGrammar(marker rune, opts ...Option) *Grammar {
	if marker == ' ' || marker == '\n' {
		panic("markdown: marker must not be a space or a newline")
	}

	g := &Grammar{
		marker:   marker,
		sections: make(map[int]parser.Parser[*Section]),
	}
	for _, opt := range opts {
		opt(g)
	}

	newline := parser.Char('\n')
	markerChar := parser.Char(marker)

	g.Header = parser.Trace("header", parser.Concat(
		markerChar,
		parser.TakeUntilString(parser.Char(' '), markerChar),
	), g.tracer)

	g.Line = parser.Trace("line", parser.Alternative(
		parser.Left(parser.TakeUntilString(newline, parser.AnyChar()), newline),
		parser.AsString(parser.Many1(parser.AnyChar())),
	), g.tracer)

	g.text = g.Line
	if g.strict {
		g.text = parser.Unless(markerChar, g.Line)
		g.strayMarker = parser.Map(parser.Peek(parser.Unless(g.Header, markerChar)), func(string) struct{} {
			return struct{}{}
		})
	}

	g.Document = parser.Many(g.nodeDeeperThan(0))
	return g
}

// Marker returns the header marker.
func (g *Grammar) Marker() rune {
	return g.marker
}

// sectionIf parses a section if the depth of the header at the current
// position satisfies pred. The header is only peeked at; the section parser
// consumes it.
func (g *Grammar) sectionIf(pred func(depth int) bool) parser.Parser[*Section] {
	return parser.Bind(parser.Peek(g.Header), func(header string) parser.Parser[*Section] {
		depth := utf8.RuneCountInString(header)
		if !pred(depth) {
			return parser.Fail[*Section]()
		}
		return g.section(depth)
	})
}

// nodeDeeperThan parses a section deeper than depth or, failing that, a line.
func (g *Grammar) nodeDeeperThan(depth int) parser.Parser[Node] {
	return parser.Alternative(
		parser.Map(g.sectionIf(func(m int) bool { return m > depth }), func(s *Section) Node { return s }),
		parser.Map(g.text, func(s string) Node { return Line(s) }),
	)
}

// sectionEnd matches, without consuming, the end of the body of a section
// with the given depth.
func (g *Grammar) sectionEnd(depth int) parser.Parser[struct{}] {
	end := parser.Map(g.sectionIf(func(m int) bool { return m <= depth }), func(*Section) struct{} {
		return struct{}{}
	})
	if g.strict {
		return parser.Alternative(end, g.strayMarker)
	}
	return end
}

// section returns the parser for a section whose header has the given depth.
// Its body extends up to the next header of the same or lower depth.
func (g *Grammar) section(depth int) parser.Parser[*Section] {
	g.mu.Lock()
	defer g.mu.Unlock()

	if p, ok := g.sections[depth]; ok {
		return p
	}

	title := parser.Map(parser.Right(g.Header, g.Line), strings.TrimSpace)
	body := parser.TakeUntil(g.sectionEnd(depth), g.nodeDeeperThan(depth))

	p := parser.Trace("section", parser.Define2[*Section](title, body)(func(title string, children []Node) *Section {
		return &Section{Depth: depth, Title: title, Children: children}
	}), g.tracer)
	g.sections[depth] = p
	return p
}

// Parse parses the whole of doc.
func (g *Grammar) Parse(doc string) ([]Node, error) {
	return g.Document.Parse(doc)
}

// ParseWithMode parses doc in the given mode and also returns the unconsumed input.
func (g *Grammar) ParseWithMode(doc string, mode parser.Mode) ([]Node, string, error) {
	return g.Document.ParseWithMode(doc, mode)
}

var defaultGrammar = sync.OnceValue(func() *Grammar {
	return NewGrammar(DefaultMarker)
})

// Parse parses doc with the standard '#' header marker.
func Parse(doc string) ([]Node, error) {
	return defaultGrammar().Parse(doc)
}
