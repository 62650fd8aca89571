package term

import (
	"fmt"
	"io"
	"strings"
)

// rightMargin keeps the last column free so terminals that wrap
// eagerly don't insert blank lines.
const rightMargin = 1

// WrapPrinter returns a help renderer that prints text word by word,
// breaking to a new line indented by offset columns whenever the next
// word would cross the reported width.
func WrapPrinter(width func() int) func(w io.Writer, offset int, text string) {
	return func(w io.Writer, offset int, text string) {
		limit := width()
		printed := offset

		for _, word := range strings.Fields(text) {
			if printed+len(word)+1 > limit-rightMargin && printed > offset {
				fmt.Fprintf(w, "\n%s", strings.Repeat(" ", offset))
				printed = offset
			}
			fmt.Fprintf(w, "%s ", word)
			printed += len(word) + 1
		}

		fmt.Fprintln(w)
	}
}
