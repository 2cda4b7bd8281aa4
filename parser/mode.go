package parser

import (
	"errors"
	"fmt"
)

// Mode selects how a parser is invoked.
type Mode int

const (
	// ModeComplete requires the parser to consume all input.
	ModeComplete Mode = iota

	// ModePartial accepts leftover input and returns it to the caller.
	// This is used when a parser intentionally matches a prefix, for example
	// when embedding one grammar inside a larger document.
	ModePartial
)

func (m Mode) String() string {
	switch m {
	case ModeComplete:
		return "complete"
	case ModePartial:
		return "partial"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Parse runs p in complete mode. It fails with KindIncompleteConsumption if
// p succeeds without consuming all of input.
func (p Parser[T]) Parse(input string) (T, error) {
	var zero T

	r := p.Run(input)
	if !r.OK() {
		return zero, r.err
	}
	if r.remaining != "" {
		return zero, newError(KindIncompleteConsumption, r.remaining,
			"failed to consume all input, remaining: %q", preview(r.remaining, previewLength))
	}
	return r.value, nil
}

// ParsePartial runs p in partial mode and returns the value together with the
// unconsumed input. On failure the returned string is the unconsumed input at
// the failure point.
func (p Parser[T]) ParsePartial(input string) (T, string, error) {
	r := p.Run(input)
	if !r.OK() {
		var zero T
		return zero, r.remaining, r.err
	}
	return r.value, r.remaining, nil
}

// ParseWithMode runs p using the specified mode. In ModeComplete the returned
// remaining input is always empty on success.
func (p Parser[T]) ParseWithMode(input string, mode Mode) (T, string, error) {
	switch mode {
	case ModeComplete:
		v, err := p.Parse(input)
		if err != nil {
			var zero T
			return zero, remainingOf(err, input), err
		}
		return v, "", nil

	case ModePartial:
		return p.ParsePartial(input)

	default:
		var zero T
		return zero, input, fmt.Errorf("unknown parse mode: %v", mode)
	}
}

func remainingOf(err error, input string) string {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Remaining
	}
	return input
}
