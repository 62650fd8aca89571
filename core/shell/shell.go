// Package shell implements the nested-session command dispatch engine:
// a bounded stack of sessions over one shared command table, where each
// session runs its own read-tokenize-dispatch loop and a command
// handler may start a nested session that fully exits before control
// returns.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cmdf-dev/cmdf/core/logger"
	"github.com/cmdf-dev/cmdf/core/registry"
)

// Status codes surfaced by the engine and its builtin commands.
// Capacity errors on registration are recoverable; the nesting ceiling
// is not (see Options.Fatal).
var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrTooManyArgs     = errors.New("too many arguments")
	ErrArgument        = errors.New("argument error")
	ErrOutOfStackSpace = errors.New("session nesting limit reached")
)

const (
	DefaultMaxCommandsPerSession = 24
	DefaultMaxNestingDepth       = 8
)

// LineSource supplies one line of input per dispatch iteration.
// ReadLine blocks until a line is available and returns io.EOF when
// input is exhausted, which ends the active session.
type LineSource interface {
	ReadLine(prompt string) (string, error)
}

// WrapFunc renders help text that conceptually starts at the given
// column offset. The default writes the text as-is; terminal-aware
// word wrapping lives in core/term and is wired in by the caller.
type WrapFunc func(w io.Writer, offset int, text string)

// Options configures a Shell. The zero value is usable.
type Options struct {
	// MaxCommandsPerSession caps registrations per session.
	MaxCommandsPerSession int
	// MaxNestingDepth caps simultaneously live sessions.
	MaxNestingDepth int
	// Log receives engine events when non-nil.
	Log *logger.SessionLogger
	// Wrap renders help text for "help <name>".
	Wrap WrapFunc
	// Color enables colored section titles and error text.
	Color bool
	// Fatal is invoked when the nesting ceiling is hit. The stack
	// cannot grow, so the default reports the error and terminates
	// the process. Tests inject a recorder here.
	Fatal func(error)
}

// Shell owns the command table and the session stack. It is not safe
// for concurrent use: only the session on top of the stack may be
// mutated, and only by its own dispatch loop or a handler that loop is
// currently running.
type Shell struct {
	table *registry.Table
	stack []*Session
	src   LineSource
	out   io.Writer
	log   *logger.SessionLogger
	wrap  WrapFunc
	color bool
	fatal func(error)

	maxDepth int
}

// New builds a Shell reading lines from src and writing banners, help
// and error text to out.
func New(src LineSource, out io.Writer, opts Options) *Shell {
	maxCommands := opts.MaxCommandsPerSession
	if maxCommands <= 0 {
		maxCommands = DefaultMaxCommandsPerSession
	}
	maxDepth := opts.MaxNestingDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxNestingDepth
	}
	wrap := opts.Wrap
	if wrap == nil {
		wrap = func(w io.Writer, offset int, text string) {
			fmt.Fprintln(w, text)
		}
	}
	fatal := opts.Fatal
	if fatal == nil {
		fatal = func(err error) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	return &Shell{
		table:    registry.NewTable(maxCommands, maxDepth),
		src:      src,
		out:      out,
		log:      opts.Log,
		wrap:     wrap,
		color:    opts.Color,
		fatal:    fatal,
		maxDepth: maxDepth,
	}
}

// StartSession pushes a new session and makes it active. The session's
// command range begins exactly where the parent's ends, so live ranges
// never collide. The builtin help command is always registered; exit
// is registered when cfg.EnableExit is set.
//
// Exceeding the nesting ceiling is fatal: the fixed-size stack cannot
// grow. When a non-terminating Fatal hook is installed, StartSession
// returns nil after invoking it.
func (sh *Shell) StartSession(cfg Config) *Session {
	if len(sh.stack) >= sh.maxDepth {
		sh.fatal(ErrOutOfStackSpace)
		return nil
	}

	start := 0
	if n := len(sh.stack); n > 0 {
		parent := sh.stack[n-1]
		start = parent.rng.Start + parent.rng.Count
	}

	s := newSession(sh, cfg, start)
	sh.stack = append(sh.stack, s)

	// Builtins. Registration cannot overflow here: the session's
	// range is empty and the per-session cap is at least 1.
	s.Register("help", "Get information on a command or list commands.", s.doHelp)
	if cfg.EnableExit {
		s.Register("exit", "Quit the session.", s.doExit)
	}

	if sh.log != nil {
		sh.log.SessionStart(s.prompt, len(sh.stack))
	}
	return s
}

// Active returns the session on top of the stack, or nil when no
// session is live.
func (sh *Shell) Active() *Session {
	if len(sh.stack) == 0 {
		return nil
	}
	return sh.stack[len(sh.stack)-1]
}

// Depth returns the number of live sessions.
func (sh *Shell) Depth() int {
	return len(sh.stack)
}

// ActiveCommandNames returns the command names of the active session,
// in registration order. Completion providers query this per
// keystroke so nested sessions complete their own command sets.
func (sh *Shell) ActiveCommandNames() []string {
	active := sh.Active()
	if active == nil {
		return nil
	}
	return sh.table.Names(active.rng)
}

// pop removes the active session. The dispatch loop calls this exactly
// once, when its session's exit flag is set or input ends.
func (sh *Shell) pop(s *Session) {
	n := len(sh.stack)
	if n == 0 || sh.stack[n-1] != s {
		return
	}
	if sh.log != nil {
		sh.log.SessionEnd(s.prompt, n)
	}
	sh.stack[n-1] = nil
	sh.stack = sh.stack[:n-1]
}
