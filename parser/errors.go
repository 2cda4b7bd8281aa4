package parser

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// KindNoMatch indicates the input did not match a literal or character.
	KindNoMatch ErrorKind = iota + 1

	// KindEndOfInput indicates a required character was unavailable.
	KindEndOfInput

	// KindIncompleteConsumption indicates a complete-mode parse succeeded
	// but left unconsumed input.
	KindIncompleteConsumption

	// KindAllAlternativesFailed indicates every branch of an Alternative failed.
	KindAllAlternativesFailed

	// KindBindContinuationFailure indicates the parser produced by a Bind
	// continuation failed.
	KindBindContinuationFailure

	// KindExplicit indicates a failure produced by Fail or FailWith.
	KindExplicit

	// KindNotConfigured indicates the zero value of Parser was run.
	KindNotConfigured
)

// Sentinel errors matched by errors.Is for each ErrorKind.
var (
	ErrNoMatch                 = errors.New("no match")
	ErrEndOfInput              = errors.New("end of input")
	ErrIncompleteConsumption   = errors.New("incomplete consumption")
	ErrAllAlternativesFailed   = errors.New("all alternatives failed")
	ErrBindContinuationFailure = errors.New("bind continuation failure")
	ErrExplicitFailure         = errors.New("explicit failure")
	ErrNotConfigured           = errors.New("parser not configured")
)

var kindSentinels = map[ErrorKind]error{
	KindNoMatch:                 ErrNoMatch,
	KindEndOfInput:              ErrEndOfInput,
	KindIncompleteConsumption:   ErrIncompleteConsumption,
	KindAllAlternativesFailed:   ErrAllAlternativesFailed,
	KindBindContinuationFailure: ErrBindContinuationFailure,
	KindExplicit:                ErrExplicitFailure,
	KindNotConfigured:           ErrNotConfigured,
}

func (k ErrorKind) String() string {
	switch k {
	case KindNoMatch:
		return "NoMatch"
	case KindEndOfInput:
		return "EndOfInput"
	case KindIncompleteConsumption:
		return "IncompleteConsumption"
	case KindAllAlternativesFailed:
		return "AllAlternativesFailed"
	case KindBindContinuationFailure:
		return "BindContinuationFailure"
	case KindExplicit:
		return "Explicit"
	case KindNotConfigured:
		return "NotConfigured"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is the diagnostic carried by a failed Result.
// Remaining is the unconsumed input at the failure point and is always a
// suffix of the input passed to the failing parser.
type ParseError struct {
	Kind      ErrorKind
	Message   string
	Remaining string

	// Alternatives holds the per-branch failures of an Alternative, in order.
	Alternatives []*ParseError

	// Cause is the inner failure for errors that re-diagnose another one
	// (Bind continuations and Label).
	Cause *ParseError
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap exposes the kind sentinel and the cause, if any, to errors.Is and errors.As.
func (e *ParseError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if sentinel, ok := kindSentinels[e.Kind]; ok {
		errs = append(errs, sentinel)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

func newError(kind ErrorKind, remaining, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:      kind,
		Message:   fmt.Sprintf(format, args...),
		Remaining: remaining,
	}
}

// ZeroWidthError is the panic value raised when a repeating combinator's
// item parser succeeds without consuming input, which would otherwise loop
// forever.
type ZeroWidthError struct {
	Combinator string
	Remaining  string
}

// Error implements the error interface.
func (e *ZeroWidthError) Error() string {
	return fmt.Sprintf("%s: item parser succeeded without consuming input at %q", e.Combinator, preview(e.Remaining, previewLength))
}

// previewLength is the number of characters of unconsumed input named in diagnostics.
const previewLength = 10

// preview returns the first n characters of s, followed by "..." if s is longer.
func preview(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos] + "..."
		}
		i++
	}
	return s
}
