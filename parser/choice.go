package parser

import "sync"

// Alternative tries each parser in order against the same input and returns
// the first success. If every parser fails, it fails with
// KindAllAlternativesFailed at the original input and keeps the per-branch
// failures in Alternatives.
//
// Backtracking is unlimited: each branch restarts from the original input no
// matter how far a previous branch got.
func Alternative[T any](ps ...Parser[T]) Parser[T] {
	return New(func(input string) Result[T] {
		failures := make([]*ParseError, 0, len(ps))
		for _, p := range ps {
			r := p.Run(input)
			if r.OK() {
				return r
			}
			failures = append(failures, r.err)
		}
		return Failure[T](&ParseError{
			Kind:         KindAllAlternativesFailed,
			Message:      "no alternative matched",
			Remaining:    input,
			Alternatives: failures,
		})
	})
}

// Peek runs p without consuming input: on success it returns the value of p
// and the original input. It fails exactly when p fails.
func Peek[T any](p Parser[T]) Parser[T] {
	return New(func(input string) Result[T] {
		r := p.Run(input)
		if !r.OK() {
			return r
		}
		return Success(r.value, input)
	})
}

// Unless fails when stop matches at the current position and otherwise runs p.
func Unless[S, T any](stop Parser[S], p Parser[T]) Parser[T] {
	lookahead := Peek(stop)
	return New(func(input string) Result[T] {
		if lookahead.Run(input).OK() {
			return Failure[T](newError(KindNoMatch, input, "unexpected stop pattern"))
		}
		return p.Run(input)
	})
}

// Optional runs p and succeeds with def, consuming nothing, if p fails.
func Optional[T any](p Parser[T], def T) Parser[T] {
	return p.Else(Pure(def))
}

// Lazy defers construction of a parser until its first use. It allows
// recursive grammars to refer to parsers that are not built yet.
// build is called at most once.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	get := sync.OnceValue(build)
	return New(func(input string) Result[T] {
		return get().Run(input)
	})
}
