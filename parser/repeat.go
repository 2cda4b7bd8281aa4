package parser

// Many runs p repeatedly until it fails and collects the values in order.
// Many never fails: when p does not match at all it returns an empty slice
// and the original input.
//
// p must consume input whenever it succeeds. Many panics with a
// *ZeroWidthError if p succeeds without consuming anything.
func Many[T any](p Parser[T]) Parser[[]T] {
	return New(func(input string) Result[[]T] {
		values, rest := repeat("Many", p, input, []T{})
		return Success(values, rest)
	})
}

// Many1 is like Many but requires at least one match. If the first attempt
// fails, its failure is returned.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return New(func(input string) Result[[]T] {
		first := p.Run(input)
		if !first.OK() {
			return propagate[T, []T](first)
		}
		checkProgress("Many1", input, first.remaining)

		values, rest := repeat("Many1", p, first.remaining, []T{first.value})
		return Success(values, rest)
	})
}

func repeat[T any](name string, p Parser[T], input string, values []T) ([]T, string) {
	rest := input
	for {
		r := p.Run(rest)
		if !r.OK() {
			return values, rest
		}
		checkProgress(name, rest, r.remaining)
		values = append(values, r.value)
		rest = r.remaining
	}
}

// checkProgress panics when a repeated item succeeded without consuming input.
// Both strings are suffixes of the same input, so comparing lengths is enough.
func checkProgress(combinator, before, after string) {
	if len(after) >= len(before) {
		panic(&ZeroWidthError{Combinator: combinator, Remaining: before})
	}
}

// TakeUntil collects values of item until stop matches at the current
// position or the input is exhausted. The text matched by stop is not
// consumed. Reaching the end of input is not a failure; a failure of item
// before that is.
//
// Like Many, TakeUntil panics with a *ZeroWidthError if item succeeds without
// consuming input.
func TakeUntil[S, T any](stop Parser[S], item Parser[T]) Parser[[]T] {
	lookahead := Peek(stop)
	return New(func(input string) Result[[]T] {
		values := []T{}
		rest := input
		for {
			if lookahead.Run(rest).OK() || rest == "" {
				return Success(values, rest)
			}

			r := item.Run(rest)
			if !r.OK() {
				return propagate[T, []T](r)
			}
			checkProgress("TakeUntil", rest, r.remaining)
			values = append(values, r.value)
			rest = r.remaining
		}
	})
}

// TakeUntilString is TakeUntil with the collected characters joined into a
// single string.
func TakeUntilString[S any](stop Parser[S], item Parser[string]) Parser[string] {
	return AsString(TakeUntil(stop, item))
}
