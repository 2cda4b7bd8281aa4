package parser

// RunFunc is the function a Parser wraps.
type RunFunc[T any] func(input string) Result[T]

// Parser is an immutable, reusable parser producing values of type T.
// The zero value is valid and always fails with KindNotConfigured.
type Parser[T any] struct {
	run RunFunc[T]
}

// New creates a parser from a run function.
func New[T any](run RunFunc[T]) Parser[T] {
	return Parser[T]{run: run}
}

// Run attempts a parse of input and returns the result without any
// requirement on how much input was consumed.
func (p Parser[T]) Run(input string) Result[T] {
	if p.run == nil {
		return Failure[T](newError(KindNotConfigured, input, "parser not configured"))
	}
	return p.run(input)
}

// Else returns a parser that tries p and falls back to q on the same input.
// It is equivalent to Alternative(p, q).
func (p Parser[T]) Else(q Parser[T]) Parser[T] {
	return Alternative(p, q)
}

// Label returns a parser that reports failures of p as "expected <name>",
// keeping the failure kind and remaining input.
func (p Parser[T]) Label(name string) Parser[T] {
	message := "expected " + name
	return New(func(input string) Result[T] {
		r := p.Run(input)
		if r.OK() {
			return r
		}
		inner := r.err
		return Failure[T](&ParseError{
			Kind:         inner.Kind,
			Message:      message,
			Remaining:    inner.Remaining,
			Alternatives: inner.Alternatives,
			Cause:        inner,
		})
	})
}
