package parser

// Map returns a parser that applies f to the value of p on success.
// f must not fail; conversions that can fail belong in Bind.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return New(func(input string) Result[U] {
		r := p.Run(input)
		if !r.OK() {
			return propagate[T, U](r)
		}
		return Success(f(r.value), r.remaining)
	})
}

// Bind runs p, then runs the parser returned by f(value) on the remaining
// input. f is not called when p fails.
//
// A failure of the continuation parser is reported with
// KindBindContinuationFailure; its message and remaining input are kept and
// the original failure is available as Cause.
func Bind[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return New(func(input string) Result[U] {
		r := p.Run(input)
		if !r.OK() {
			return propagate[T, U](r)
		}

		next := f(r.value).Run(r.remaining)
		if next.OK() {
			return next
		}
		inner := next.err
		return Failure[U](&ParseError{
			Kind:      KindBindContinuationFailure,
			Message:   inner.Message,
			Remaining: inner.Remaining,
			Cause:     inner,
		})
	})
}
