package parser_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apstndb/protoform/parser"
)

type recordingTracer struct {
	mu     sync.Mutex
	events []parser.TraceEvent
}

func (r *recordingTracer) TraceParse(ev parser.TraceEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func TestTrace(t *testing.T) {
	tracer := &recordingTracer{}
	word := parser.Trace("word", parser.Tag("foo"), tracer)
	p := parser.Many(word)

	got, rest, err := p.ParsePartial("foofoobar")
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "foo"}, got)
	assert.Equal(t, "bar", rest)

	require.Len(t, tracer.events, 3)
	assert.True(t, tracer.events[0].OK())
	assert.Equal(t, "word", tracer.events[0].Name)
	assert.Equal(t, 3, tracer.events[0].Consumed)
	assert.Equal(t, "foobar", tracer.events[1].Input)

	last := tracer.events[2]
	assert.False(t, last.OK())
	assert.Equal(t, "bar", last.Input)
	assert.Equal(t, parser.KindNoMatch, last.Err.Kind)
	assert.Equal(t, 0, last.Consumed)
}

func TestTraceNilTracer(t *testing.T) {
	p := parser.Trace[string]("word", parser.Tag("foo"), nil)

	got, err := p.Parse("foo")
	require.NoError(t, err)
	assert.Equal(t, "foo", got)
}

func TestTracerFunc(t *testing.T) {
	var names []string
	tracer := parser.TracerFunc(func(ev parser.TraceEvent) {
		names = append(names, ev.Name)
	})

	p := parser.Seq2(
		parser.Trace("key", parser.Tag("k"), tracer),
		parser.Trace("value", parser.Tag("v"), tracer),
	)
	_, err := p.Parse("kv")
	require.NoError(t, err)
	assert.Equal(t, []string{"key", "value"}, names)
}

func TestSlogTracer(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := parser.Trace("greeting", parser.Tag("hello"), parser.SlogTracer(logger))

	_, err := p.Parse("hello")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `msg="parser matched" parser=greeting consumed=5`)

	buf.Reset()
	_, err = p.Parse("help")
	require.Error(t, err)
	out := buf.String()
	assert.Contains(t, out, `msg="parser failed" parser=greeting kind=NoMatch`)
	assert.Contains(t, out, `err="expected \"hello\""`)
}

func TestSlogTracerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	p := parser.Trace("greeting", parser.Tag("hello"), parser.SlogTracer(logger))

	_, err := p.Parse("hello")
	require.NoError(t, err)
	assert.Empty(t, buf.String(), "trace events are logged at debug level")
}
