// Package parser provides a generic parser-combinator engine for building
// recursive-descent parsers directly in Go code.
//
// # Design Philosophy
//
// Every parser is a value of the single concrete type Parser[T], holding a
// closure from an input string to a Result[T]. Primitive parsers match
// literals and characters; combinators build new parsers from existing ones.
// There is no lexer, no grammar compilation and no generated table: a grammar
// is ordinary Go code.
//
// # Results and Failures
//
// A parse attempt returns a Result[T], which is either a success (value plus
// the remaining input) or a failure carrying a *ParseError. Failures are plain
// values, not panics, so backtracking-heavy grammars never pay for unwinding.
// The remaining input in both cases is always a suffix of the input that was
// passed in; parsers never fabricate input.
//
// ParseError kinds can be matched with errors.Is against the sentinel errors
// (ErrNoMatch, ErrEndOfInput, ErrIncompleteConsumption, ...) or inspected
// through errors.As.
//
// # Invocation Modes
//
// Parsers support two invocation modes:
//   - Complete mode (Parse): the whole input must be consumed.
//   - Partial mode (ParsePartial): leftover input is returned to the caller.
//
// # Concurrency
//
// Parsers never mutate captured state, so a parser may be shared freely
// between goroutines. Recursion depth equals grammar nesting depth; deeply
// nested input can exhaust the goroutine stack, which is not reported as a
// parse failure.
//
// # Programmer Errors
//
// Contract violations panic instead of producing parse failures: Char with an
// invalid rune panics at construction time, and a repeated parser that
// succeeds without consuming input panics with a *ZeroWidthError rather than
// looping forever.
//
// # Usage Examples
//
//	greeting := parser.Left(parser.Tag("hello"), parser.Char(' '))
//	name := parser.AsString(parser.Many1(parser.Satisfy("letter", unicode.IsLetter)))
//	p := parser.Right(greeting, name)
//
//	v, err := p.Parse("hello gopher") // "gopher", nil
//	v, rest, err := p.ParsePartial("hello gopher!") // "gopher", "!", nil
package parser
