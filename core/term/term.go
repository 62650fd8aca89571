// Package term holds the terminal-facing collaborators of the engine:
// a readline-backed line source with history and command completion,
// terminal width probing, and word-wrapped help rendering. None of it
// affects dispatch correctness; every piece can be swapped for a fake.
package term

import (
	"io"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	xterm "golang.org/x/term"
)

// NamesFunc returns the completion candidates for the command word.
// It is queried per completion attempt so nested sessions complete
// their own command sets.
type NamesFunc func() []string

// ReadlineSource is a shell.LineSource over a readline instance.
type ReadlineSource struct {
	rl *readline.Instance
}

// NewReadlineSource builds a line source with line editing, history
// and command-name completion over the given streams.
func NewReadlineSource(stdin io.ReadCloser, stdout, stderr io.Writer, names NamesFunc) (*ReadlineSource, error) {
	cfg := &readline.Config{
		Stdin:        readline.NewCancelableStdin(stdin),
		Stdout:       stdout,
		Stderr:       stderr,
		AutoComplete: &commandCompleter{names: names},
	}
	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}
	return &ReadlineSource{rl: rl}, nil
}

// ReadLine reads one line, echoing prompt first. Non-empty lines are
// appended to history. Returns io.EOF when input is exhausted; an
// interrupt reads as an empty line.
func (r *ReadlineSource) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	switch {
	case err == readline.ErrInterrupt:
		return "", nil
	case err != nil:
		return "", err
	}

	if strings.TrimSpace(line) != "" {
		r.rl.SaveHistory(line)
	}
	return line, nil
}

// Close releases the underlying readline instance.
func (r *ReadlineSource) Close() error {
	return r.rl.Close()
}

// commandCompleter completes the command word only; arguments are the
// command's own business.
type commandCompleter struct {
	names NamesFunc
}

func (c *commandCompleter) Do(line []rune, pos int) ([][]rune, int) {
	prefix := string(line[:pos])
	if strings.ContainsAny(prefix, " \t") {
		return nil, 0
	}

	var out [][]rune
	for _, name := range c.names() {
		if strings.HasPrefix(name, prefix) {
			out = append(out, []rune(name[len(prefix):]))
		}
	}
	return out, len(prefix)
}

// Width reports the terminal width of stdout, or fallback when stdout
// is not a terminal or the probe fails.
func Width(fallback int) int {
	if w, _, err := xterm.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallback
}
