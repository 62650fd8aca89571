// Package arglist splits command argument text into ordered argument
// lists using a small quote-aware state machine.
package arglist

// ArgList is the ordered list of arguments parsed from one line of
// input. It is built once per dispatch iteration and must not be
// retained by command handlers beyond their own invocation.
//
// A nil *ArgList means no argument text was supplied at all, which is
// distinct from an ArgList with zero arguments (empty or
// all-whitespace argument text). Parse never returns nil; the caller
// decides whether argument text exists.
type ArgList struct {
	Args []string
}

// Len returns the number of arguments. It is safe to call on nil.
func (a *ArgList) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Args)
}

type state int

const (
	stateNone state = iota
	stateInWord
	stateInQuotes
)

// Parse tokenizes argline. Whitespace separates arguments, a double
// quote opens a verbatim segment ended by the next double quote, and a
// quote inside an already-open word is an ordinary character. A quote
// left unterminated runs to the end of the input. The closing quote
// always returns the machine to its base state, so a quoted segment
// and an abutting word are two tokens, never one.
//
// The walk happens twice: the first pass only counts tokens so the
// result slice can be allocated at its final size, the second pass
// materializes each token.
func Parse(argline string) *ArgList {
	count := 0
	st := stateNone
	for i := 0; i < len(argline); i++ {
		c := argline[i]
		switch st {
		case stateNone:
			switch {
			case isSpace(c):
			case c == '"':
				st = stateInQuotes
			default:
				st = stateInWord
			}
		case stateInQuotes:
			if c == '"' {
				st = stateNone
				count++
			}
		case stateInWord:
			if isSpace(c) {
				st = stateNone
				count++
			}
		}
	}
	// A token still open at end of input closes implicitly.
	if st != stateNone {
		count++
	}

	out := &ArgList{Args: make([]string, 0, count)}

	st = stateNone
	start := 0
	for i := 0; i < len(argline); i++ {
		c := argline[i]
		switch st {
		case stateNone:
			switch {
			case isSpace(c):
			case c == '"':
				st = stateInQuotes
				start = i + 1
			default:
				st = stateInWord
				start = i
			}
		case stateInQuotes:
			if c == '"' {
				out.Args = append(out.Args, argline[start:i])
				st = stateNone
			}
		case stateInWord:
			if isSpace(c) {
				out.Args = append(out.Args, argline[start:i])
				st = stateNone
			}
		}
	}
	if st != stateNone {
		out.Args = append(out.Args, argline[start:])
	}

	return out
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
