package parser

// Result is the outcome of a single parse attempt: either a success holding a
// value and the remaining input, or a failure holding a *ParseError.
type Result[T any] struct {
	value     T
	remaining string
	err       *ParseError
}

// Success creates a successful result.
func Success[T any](value T, remaining string) Result[T] {
	return Result[T]{value: value, remaining: remaining}
}

// Failure creates a failed result. The remaining input is taken from err.
func Failure[T any](err *ParseError) Result[T] {
	return Result[T]{remaining: err.Remaining, err: err}
}

// OK reports whether the attempt succeeded.
func (r Result[T]) OK() bool {
	return r.err == nil
}

// Value returns the parsed value, or the zero value of T on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Remaining returns the unconsumed input after a success, or the unconsumed
// input at the failure point.
func (r Result[T]) Remaining() string {
	return r.remaining
}

// ParseError returns the failure diagnostic, or nil on success.
func (r Result[T]) ParseError() *ParseError {
	return r.err
}

// Err returns the failure as an error, or nil on success.
func (r Result[T]) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// propagate converts a failed result to another value type.
func propagate[T, U any](r Result[T]) Result[U] {
	return Result[U]{remaining: r.remaining, err: r.err}
}
