package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/cmdf-dev/cmdf/core/arglist"
)

// Run drives the session until its exit flag is set or input is
// exhausted, then pops it off the stack. End-of-input is an implicit
// exit, not an error.
//
// Nesting: a handler that starts a sub-session calls StartSession and
// Run again; the nested loop completes on this call stack before the
// handler returns and this loop resumes.
func (s *Session) Run() {
	sh := s.shell

	if s.banner != "" {
		fmt.Fprintf(sh.out, "\n%s\n\n", s.banner)
	}

	for !s.exit {
		line, err := sh.src.ReadLine(s.prompt)
		switch {
		case err == io.EOF:
			s.exit = true
			continue
		case err != nil:
			fmt.Fprintf(sh.out, "%s\n", sh.errText(fmt.Sprintf("read error: %v", err)))
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			s.onEmptyLine()
			continue
		}

		name, rest, hasRest := splitCommand(line)

		// The ArgList lives for exactly one invocation; handlers must
		// not retain it.
		var args *arglist.ArgList
		if hasRest {
			args = arglist.Parse(rest)
		}

		if err := s.dispatch(name, args); errors.Is(err, ErrUnknownCommand) {
			if sh.log != nil {
				sh.log.UnknownCommand(name)
			}
			fmt.Fprintf(sh.out, "%s\n", sh.errText(fmt.Sprintf("Unknown command '%s'.", name)))
		}
	}

	sh.pop(s)
}

// defaultDispatch resolves name within the session's own range only
// and invokes its handler. Handler errors are the handler's to report;
// the loop only ever reacts to resolution failure, so a handler's own
// unknown-command result (help's lookup miss) is absorbed here.
func (s *Session) defaultDispatch(name string, args *arglist.ArgList) error {
	handler, ok := s.shell.table.Resolve(s.rng, name)
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownCommand)
	}
	if s.shell.log != nil {
		var argv []string
		if args != nil {
			argv = args.Args
		}
		s.shell.log.Dispatch(name, argv)
	}
	if err := handler(args); err != nil && !errors.Is(err, ErrUnknownCommand) {
		return err
	}
	return nil
}

// splitCommand splits the trimmed line at its first whitespace run
// into the command name and the argument text. hasRest is false when
// the line holds no whitespace at all, which is the "no argument text"
// case, distinct from empty argument text.
func splitCommand(line string) (name, rest string, hasRest bool) {
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, "", false
	}
	return line[:i], line[i+1:], true
}
