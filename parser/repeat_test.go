package parser_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apstndb/protoform/parser"
)

func TestMany(t *testing.T) {
	p := parser.Many(parser.Char('a'))

	tests := []struct {
		name          string
		input         string
		want          []string
		wantRemaining string
	}{
		{"no match", "b", []string{}, "b"},
		{"empty input", "", []string{}, ""},
		{"some matches", "aaab", []string{"a", "a", "a"}, "b"},
		{"all input", "aa", []string{"a", "a"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := p.Run(tt.input)
			require.True(t, r.OK(), "Many never fails")
			if diff := cmp.Diff(tt.want, r.Value()); diff != "" {
				t.Errorf("Many() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.wantRemaining, r.Remaining())
		})
	}
}

func TestMany1(t *testing.T) {
	p := parser.Many1(parser.Char('a'))

	t.Run("no match", func(t *testing.T) {
		r := p.Run("")
		require.False(t, r.OK())
		assert.ErrorIs(t, r.Err(), parser.ErrEndOfInput)

		r = p.Run("ba")
		require.False(t, r.OK())
		assert.ErrorIs(t, r.Err(), parser.ErrNoMatch)
		assert.Equal(t, "ba", r.Remaining())
	})

	t.Run("matches", func(t *testing.T) {
		got, rest, err := p.ParsePartial("aaab")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "a", "a"}, got)
		assert.Equal(t, "b", rest)
	})
}

func TestTakeUntil(t *testing.T) {
	tests := []struct {
		name          string
		p             parser.Parser[[]string]
		input         string
		want          []string
		wantRemaining string
		wantErr       error
	}{
		{
			name:          "stops before stop pattern",
			p:             parser.TakeUntil(parser.Char('b'), parser.AnyChar()),
			input:         "foobar",
			want:          []string{"f", "o", "o"},
			wantRemaining: "bar",
		},
		{
			name:          "end of input",
			p:             parser.TakeUntil(parser.Char('x'), parser.AnyChar()),
			input:         "foo",
			want:          []string{"f", "o", "o"},
			wantRemaining: "",
		},
		{
			name:          "stop at start",
			p:             parser.TakeUntil(parser.Char('f'), parser.AnyChar()),
			input:         "foo",
			want:          []string{},
			wantRemaining: "foo",
		},
		{
			name:          "empty input",
			p:             parser.TakeUntil(parser.Char('f'), parser.AnyChar()),
			input:         "",
			want:          []string{},
			wantRemaining: "",
		},
		{
			name:          "multi-character stop",
			p:             parser.TakeUntil(parser.Tag("--"), parser.AnyChar()),
			input:         "a-b--c",
			want:          []string{"a", "-", "b"},
			wantRemaining: "--c",
		},
		{
			name:          "item failure",
			p:             parser.TakeUntil(parser.Char(';'), parser.Char('a')),
			input:         "aab;",
			wantRemaining: "b;",
			wantErr:       parser.ErrNoMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.p.Run(tt.input)
			if tt.wantErr != nil {
				require.False(t, r.OK())
				assert.ErrorIs(t, r.Err(), tt.wantErr)
				assert.Equal(t, tt.wantRemaining, r.Remaining())
				return
			}
			require.NoError(t, r.Err())
			if diff := cmp.Diff(tt.want, r.Value()); diff != "" {
				t.Errorf("TakeUntil() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.wantRemaining, r.Remaining())
		})
	}
}

func TestTakeUntilString(t *testing.T) {
	got, rest, err := parser.TakeUntilString(parser.Char('\n'), parser.AnyChar()).ParsePartial("first line\nsecond")
	require.NoError(t, err)
	assert.Equal(t, "first line", got)
	assert.Equal(t, "\nsecond", rest)
}

func TestZeroWidthRepetition(t *testing.T) {
	empty := parser.Pure("")

	tests := []struct {
		name       string
		run        func()
		combinator string
	}{
		{"Many", func() { parser.Many(empty).Run("abc") }, "Many"},
		{"Many1", func() { parser.Many1(empty).Run("abc") }, "Many1"},
		{"Many1 later item", func() {
			parser.Many1(parser.Alternative(parser.Char('a'), empty)).Run("ab")
		}, "Many1"},
		{"TakeUntil", func() { parser.TakeUntil(parser.Char('x'), empty).Run("abc") }, "TakeUntil"},
		{"Optional item", func() { parser.Many(parser.Optional(parser.Char('a'), "")).Run("b") }, "Many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var recovered any
			func() {
				defer func() { recovered = recover() }()
				tt.run()
			}()
			require.NotNil(t, recovered, "expected a panic")

			err, ok := recovered.(error)
			require.True(t, ok, "panic value %v is not an error", recovered)

			var zw *parser.ZeroWidthError
			require.True(t, errors.As(err, &zw))
			assert.Equal(t, tt.combinator, zw.Combinator)
			assert.Contains(t, zw.Error(), "without consuming input")
		})
	}
}
