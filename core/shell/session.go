package shell

import (
	"github.com/cmdf-dev/cmdf/core/arglist"
	"github.com/cmdf-dev/cmdf/core/registry"
)

// Defaults applied by Config when fields are left zero.
const (
	DefaultPrompt      = "(cmdf) "
	DefaultDocHeader   = "Documented Commands:"
	DefaultUndocHeader = "Undocumented Commands:"
	DefaultRuler       = '='
)

// DispatchFunc resolves and invokes one command. args is nil when the
// command name was not followed by any argument text.
type DispatchFunc func(name string, args *arglist.ArgList) error

// Config configures one session.
type Config struct {
	// Prompt shown before each input line.
	Prompt string
	// Banner printed once when the session's loop starts. Empty
	// means no banner.
	Banner string
	// DocHeader and UndocHeader title the two halves of the help
	// listing.
	DocHeader   string
	UndocHeader string
	// Ruler underlines the headers.
	Ruler rune
	// EnableExit registers the default exit command.
	EnableExit bool
	// OnEmptyLine runs when the trimmed input line is empty. Default
	// is a no-op.
	OnEmptyLine func()
	// Dispatch overrides the default range-scoped resolve-and-invoke
	// step.
	Dispatch DispatchFunc
}

// Session is the mutable state of one shell instance: its prompt,
// banner, headers, command range and exit flag. A session may only be
// mutated while it is on top of the stack.
type Session struct {
	shell *Shell

	prompt      string
	banner      string
	docHeader   string
	undocHeader string
	ruler       rune

	rng  registry.Range
	exit bool

	onEmptyLine func()
	dispatch    DispatchFunc
}

func newSession(sh *Shell, cfg Config, start int) *Session {
	s := &Session{
		shell:       sh,
		prompt:      cfg.Prompt,
		banner:      cfg.Banner,
		docHeader:   cfg.DocHeader,
		undocHeader: cfg.UndocHeader,
		ruler:       cfg.Ruler,
		rng:         registry.Range{Start: start},
		onEmptyLine: cfg.OnEmptyLine,
		dispatch:    cfg.Dispatch,
	}
	if s.prompt == "" {
		s.prompt = DefaultPrompt
	}
	if s.docHeader == "" {
		s.docHeader = DefaultDocHeader
	}
	if s.undocHeader == "" {
		s.undocHeader = DefaultUndocHeader
	}
	if s.ruler == 0 {
		s.ruler = DefaultRuler
	}
	if s.onEmptyLine == nil {
		s.onEmptyLine = func() {}
	}
	if s.dispatch == nil {
		s.dispatch = s.defaultDispatch
	}
	return s
}

// Register adds a command to the session, immediately after its
// current range. An empty help string marks the command undocumented;
// it is still invocable. Only the active session may register.
func (s *Session) Register(name, help string, handler registry.Handler) error {
	err := s.shell.table.Register(&s.rng, name, help, handler)
	if err != nil && s.shell.log != nil {
		s.shell.log.RegisterError(name, err)
	}
	return err
}

// Exit marks the session finished; its loop stops before the next
// read.
func (s *Session) Exit() {
	s.exit = true
}

// CommandCount returns the number of commands registered in the
// session, builtins included.
func (s *Session) CommandCount() int {
	return s.rng.Count
}

// Prompt returns the session's prompt.
func (s *Session) Prompt() string {
	return s.prompt
}

// SetPrompt replaces the session's prompt.
func (s *Session) SetPrompt(prompt string) {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	s.prompt = prompt
}

// SetBanner replaces the banner. Only affects loops not yet started.
func (s *Session) SetBanner(banner string) {
	s.banner = banner
}

// SetDocHeader replaces the documented-commands header.
func (s *Session) SetDocHeader(header string) {
	if header == "" {
		header = DefaultDocHeader
	}
	s.docHeader = header
}

// SetUndocHeader replaces the undocumented-commands header.
func (s *Session) SetUndocHeader(header string) {
	if header == "" {
		header = DefaultUndocHeader
	}
	s.undocHeader = header
}

// Ruler returns the header underline character.
func (s *Session) Ruler() rune {
	return s.ruler
}
