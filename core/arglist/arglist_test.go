package arglist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		line     string
		expected []string
	}{
		{"", nil},
		{"   ", nil},
		{"\t \t", nil},
		{"one", []string{"one"}},
		{"one two three", []string{"one", "two", "three"}},
		{"  padded   out  ", []string{"padded", "out"}},
		{`"a b" c`, []string{"a b", "c"}},
		{`"  spaced  "`, []string{"  spaced  "}},
		// A quote inside an open word is an ordinary character.
		{`a"b"c`, []string{`a"b"c`}},
		// A closing quote returns to the base state, so an abutting
		// word starts a fresh token.
		{`"a b"c`, []string{"a b", "c"}},
		{`x"y z"`, []string{`x"y`, `z"`}},
		// Unterminated quotes run to the end of the input.
		{`"abc`, []string{"abc"}},
		{`one "two three`, []string{"one", "two three"}},
		// An empty quoted pair is one empty token.
		{`""`, []string{""}},
		{`"" tail`, []string{"", "tail"}},
	}

	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			got := Parse(tc.line)
			if assert.NotNil(t, got) {
				assert.Equal(t, tc.expected, nilIfEmpty(got.Args))
				assert.Equal(t, len(tc.expected), got.Len())
			}
		})
	}
}

// Re-parsing tokens joined with single spaces preserves token content
// for inputs whose tokens carry no whitespace of their own.
func TestParseRejoinStable(t *testing.T) {
	for _, line := range []string{
		"alpha beta gamma",
		`  alpha   beta  `,
		`a"b"c d`,
	} {
		first := Parse(line)
		second := Parse(strings.Join(first.Args, " "))
		assert.Equal(t, first.Args, second.Args, "line %q", line)
	}
}

func TestLenNil(t *testing.T) {
	var a *ArgList
	assert.Equal(t, 0, a.Len())
}

func nilIfEmpty(args []string) []string {
	if len(args) == 0 {
		return nil
	}
	return args
}
