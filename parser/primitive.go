package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Tag matches literal at the start of the input, comparing bytes exactly.
// If the input ends before the literal does, the failure kind is
// KindEndOfInput; otherwise it is KindNoMatch.
func Tag(literal string) Parser[string] {
	return New(func(input string) Result[string] {
		if strings.HasPrefix(input, literal) {
			return Success(literal, input[len(literal):])
		}

		kind := KindNoMatch
		if len(input) < len(literal) && strings.HasPrefix(literal, input) {
			kind = KindEndOfInput
		}
		return Failure[string](newError(kind, input, "expected %q", literal))
	})
}

// Char matches the single character c.
// It panics if c is not a valid rune.
func Char(c rune) Parser[string] {
	if !utf8.ValidRune(c) {
		panic(fmt.Sprintf("parser.Char: invalid rune %U", c))
	}
	return Tag(string(c))
}

var anyChar = New(func(input string) Result[string] {
	if input == "" {
		return Failure[string](newError(KindEndOfInput, input, "expected any character, got end of input"))
	}
	// An invalid byte decodes with size 1 and is returned as is.
	_, size := utf8.DecodeRuneInString(input)
	return Success(input[:size], input[size:])
})

// AnyChar matches any single character and returns it as a string.
func AnyChar() Parser[string] {
	return anyChar
}

// Satisfy matches a single character for which pred returns true.
// The name is used only for error messages.
func Satisfy(name string, pred func(rune) bool) Parser[string] {
	return New(func(input string) Result[string] {
		if input == "" {
			return Failure[string](newError(KindEndOfInput, input, "expected %s, got end of input", name))
		}
		r, size := utf8.DecodeRuneInString(input)
		if !pred(r) {
			return Failure[string](newError(KindNoMatch, input, "expected %s", name))
		}
		return Success(input[:size], input[size:])
	})
}

// EndOfInput succeeds, consuming nothing, only when the input is empty.
func EndOfInput() Parser[struct{}] {
	return New(func(input string) Result[struct{}] {
		if input != "" {
			return Failure[struct{}](newError(KindNoMatch, input, "expected end of input"))
		}
		return Success(struct{}{}, input)
	})
}

// Fail always fails with a fixed diagnostic.
// It is useful as a branch of a Bind continuation that must reject.
func Fail[T any]() Parser[T] {
	return FailWith[T]("explicit failure")
}

// FailWith always fails with the given message.
func FailWith[T any](message string) Parser[T] {
	return New(func(input string) Result[T] {
		return Failure[T](&ParseError{Kind: KindExplicit, Message: message, Remaining: input})
	})
}

// Pure always succeeds with value, consuming nothing.
func Pure[T any](value T) Parser[T] {
	return New(func(input string) Result[T] {
		return Success(value, input)
	})
}
