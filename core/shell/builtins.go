package shell

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/cmdf-dev/cmdf/core/arglist"
)

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	errorColor = color.New(color.FgRed)
)

// doHelp is the builtin help command. Without arguments it lists the
// active session's commands, documented then undocumented. With one
// argument it prints that command's help text. Anything else is an
// argument-count error.
func (s *Session) doHelp(args *arglist.ArgList) error {
	out := s.shell.out

	if args.Len() == 0 {
		s.printCommandList()
		fmt.Fprintln(out)
		return nil
	}

	if args.Len() > 1 {
		fmt.Fprintln(out, "Too many arguments for the 'help' command!")
		return ErrTooManyArgs
	}

	name := args.Args[0]
	entry, ok := s.shell.table.Lookup(s.rng, name)
	if !ok {
		fmt.Fprintf(out, "Command '%s' was not found.\n", name)
		return ErrUnknownCommand
	}

	if entry.Help == "" {
		fmt.Fprintln(out, "\n(No documentation)")
		return nil
	}

	// The help text starts in the column right after "name   " and
	// wraps back to it.
	offset, _ := fmt.Fprintf(out, "%s   ", entry.Name)
	s.shell.wrap(out, offset, entry.Help)
	return nil
}

// doExit is the builtin exit command: it sets the session's exit flag
// and nothing else.
func (s *Session) doExit(args *arglist.ArgList) error {
	s.exit = true
	return nil
}

// printCommandList renders the session-scoped help listing. The
// documented section always prints; the undocumented one only when
// needed.
func (s *Session) printCommandList() {
	out := s.shell.out
	documented, undocumented := s.shell.table.List(s.rng)

	s.printTitle(s.docHeader)
	for _, name := range documented {
		fmt.Fprintf(out, "%s ", name)
	}
	fmt.Fprintln(out)

	if len(undocumented) > 0 {
		s.printTitle(s.undocHeader)
		for _, name := range undocumented {
			fmt.Fprintf(out, "%s ", name)
		}
		fmt.Fprintln(out)
	}
}

// printTitle prints a header underlined with the session's ruler.
func (s *Session) printTitle(title string) {
	out := s.shell.out
	if s.shell.color {
		fmt.Fprintf(out, "\n%s\n", titleColor.Sprint(title))
	} else {
		fmt.Fprintf(out, "\n%s\n", title)
	}
	fmt.Fprintln(out, strings.Repeat(string(s.ruler), len(title)+1))
}

func (sh *Shell) errText(text string) string {
	if sh.color {
		return errorColor.Sprint(text)
	}
	return text
}
