package parser

// Field is one step of a record parser: it parses a value and stores it into
// the record being built.
type Field[T any] struct {
	run func(dst *T, input string) (string, *ParseError)
}

// Set creates a field that parses a value with p and stores it with assign.
func Set[T, F any](p Parser[F], assign func(*T, F)) Field[T] {
	return Field[T]{
		run: func(dst *T, input string) (string, *ParseError) {
			r := p.Run(input)
			if !r.OK() {
				return r.remaining, r.err
			}
			assign(dst, r.value)
			return r.remaining, nil
		},
	}
}

// Skip creates a field that parses with p and discards the value, for
// separators and punctuation between fields.
func Skip[T, F any](p Parser[F]) Field[T] {
	return Set(p, func(*T, F) {})
}

// RecordBuilder provides a fluent interface for deriving a parser that
// produces fully constructed values of type T from a sequence of field
// parsers.
type RecordBuilder[T any] struct {
	fields []Field[T]
	init   func() T
}

// NewRecord creates a new record builder with the given fields.
func NewRecord[T any](fields ...Field[T]) *RecordBuilder[T] {
	return &RecordBuilder[T]{fields: fields}
}

// With appends fields to the record.
func (b *RecordBuilder[T]) With(fields ...Field[T]) *RecordBuilder[T] {
	b.fields = append(b.fields, fields...)
	return b
}

// WithInit sets the function producing the initial value each field is
// stored into. By default the zero value of T is used.
func (b *RecordBuilder[T]) WithInit(init func() T) *RecordBuilder[T] {
	b.init = init
	return b
}

// Build creates the record parser. The parser is independent of the builder;
// later changes to the builder do not affect it.
func (b *RecordBuilder[T]) Build() Parser[T] {
	if len(b.fields) == 0 {
		panic("record has no fields")
	}

	fields := append([]Field[T](nil), b.fields...)
	init := b.init
	return New(func(input string) Result[T] {
		var record T
		if init != nil {
			record = init()
		}

		rest := input
		for _, f := range fields {
			next, err := f.run(&record, rest)
			if err != nil {
				return Failure[T](err)
			}
			rest = next
		}
		return Success(record, rest)
	})
}
