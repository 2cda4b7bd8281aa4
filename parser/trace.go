package parser

import "log/slog"

// TraceEvent describes one attempt of a traced parser.
type TraceEvent struct {
	// Name is the name given to Trace.
	Name string

	// Input is the input the attempt started at.
	Input string

	// Consumed is the number of bytes consumed on success, or the distance
	// to the failure point on failure.
	Consumed int

	// Err is the failure, or nil on success.
	Err *ParseError
}

// OK reports whether the attempt succeeded.
func (ev TraceEvent) OK() bool {
	return ev.Err == nil
}

// Tracer receives trace events. Implementations must be safe for concurrent
// use if the traced parser is shared between goroutines.
type Tracer interface {
	TraceParse(ev TraceEvent)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(ev TraceEvent)

// TraceParse implements Tracer.
func (f TracerFunc) TraceParse(ev TraceEvent) {
	f(ev)
}

// Trace returns a parser that reports every attempt of p to tracer.
// A nil tracer returns p unchanged.
func Trace[T any](name string, p Parser[T], tracer Tracer) Parser[T] {
	if tracer == nil {
		return p
	}
	return New(func(input string) Result[T] {
		r := p.Run(input)
		tracer.TraceParse(TraceEvent{
			Name:     name,
			Input:    input,
			Consumed: len(input) - len(r.remaining),
			Err:      r.err,
		})
		return r
	})
}

// SlogTracer logs trace events to logger at debug level.
func SlogTracer(logger *slog.Logger) Tracer {
	return TracerFunc(func(ev TraceEvent) {
		if ev.OK() {
			logger.Debug("parser matched", "parser", ev.Name, "consumed", ev.Consumed)
			return
		}
		logger.Debug("parser failed", "parser", ev.Name, "kind", ev.Err.Kind.String(), "err", ev.Err.Message, "at", ev.Consumed)
	})
}
