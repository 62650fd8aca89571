// Package registry implements the flat command table shared by every
// session of a shell. The table is a fixed-capacity arena partitioned
// into contiguous per-session ranges; all lookups are range-scoped so
// nested sessions never see each other's commands.
package registry

import (
	"errors"

	"github.com/cmdf-dev/cmdf/core/arglist"
)

// ErrTooManyCommands is returned by Register when a session has
// reached its per-session command limit.
var ErrTooManyCommands = errors.New("too many commands registered in session")

// Handler executes one command invocation. args is nil when the
// command name was not followed by any argument text; an ArgList with
// zero arguments means argument text was present but empty.
type Handler func(args *arglist.ArgList) error

// Entry is one registered command. An empty Help string marks the
// command undocumented: still invocable, listed under the
// undocumented header, and without text for "help <name>".
type Entry struct {
	Name    string
	Help    string
	Handler Handler
}

// Range identifies the contiguous slice of the table owned by one
// session. A child session's range starts exactly where its parent's
// ended at the moment of push, so live ranges are disjoint and stack
// in push order.
type Range struct {
	Start int
	Count int
}

// Table is the arena of command entries. Entries are never removed
// individually; a whole range simply becomes unreachable when its
// owning session ends, and the slots are reused by the next push.
type Table struct {
	entries       []Entry
	maxPerSession int
}

// NewTable allocates a table sized for maxPerSession commands in each
// of up to maxSessions simultaneously live sessions.
func NewTable(maxPerSession, maxSessions int) *Table {
	return &Table{
		entries:       make([]Entry, maxPerSession*maxSessions),
		maxPerSession: maxPerSession,
	}
}

// MaxPerSession returns the per-session command limit.
func (t *Table) MaxPerSession() int {
	return t.maxPerSession
}

// Register appends an entry immediately after rng's current end and
// grows the range by one. Only the range of the active session may be
// registered into. The table is left untouched on failure.
func (t *Table) Register(rng *Range, name, help string, handler Handler) error {
	if rng.Count >= t.maxPerSession {
		return ErrTooManyCommands
	}
	idx := rng.Start + rng.Count
	if idx >= len(t.entries) {
		return ErrTooManyCommands
	}
	t.entries[idx] = Entry{Name: name, Help: help, Handler: handler}
	rng.Count++
	return nil
}

// Lookup finds the first entry named name within rng, in registration
// order. Names outside rng are invisible.
func (t *Table) Lookup(rng Range, name string) (Entry, bool) {
	for i := rng.Start; i < rng.Start+rng.Count; i++ {
		if t.entries[i].Name == name {
			return t.entries[i], true
		}
	}
	return Entry{}, false
}

// Resolve returns the handler for name within rng.
func (t *Table) Resolve(rng Range, name string) (Handler, bool) {
	entry, ok := t.Lookup(rng, name)
	if !ok {
		return nil, false
	}
	return entry.Handler, true
}

// List partitions rng's entries into documented and undocumented
// command names, each in registration order.
func (t *Table) List(rng Range) (documented, undocumented []string) {
	for i := rng.Start; i < rng.Start+rng.Count; i++ {
		if t.entries[i].Help != "" {
			documented = append(documented, t.entries[i].Name)
		} else {
			undocumented = append(undocumented, t.entries[i].Name)
		}
	}
	return documented, undocumented
}

// Names returns every command name in rng in registration order,
// primarily for completion providers.
func (t *Table) Names(rng Range) []string {
	out := make([]string, 0, rng.Count)
	for i := rng.Start; i < rng.Start+rng.Count; i++ {
		out = append(out, t.entries[i].Name)
	}
	return out
}
