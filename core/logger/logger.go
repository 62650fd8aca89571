// Package logger is a standardized event logging framework for the
// shell engine.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"
)

// EventType names one kind of engine event.
type EventType string

const (
	EventSessionStart   EventType = "session_start"
	EventSessionEnd     EventType = "session_end"
	EventDispatch       EventType = "dispatch"
	EventUnknownCommand EventType = "unknown_command"
	EventRegisterError  EventType = "register_error"
)

// LogEntry is one recorded event.
type LogEntry struct {
	TimestampMicros int64     `json:"timestamp_micros"`
	SessionID       string    `json:"session_id,omitempty"`
	Event           EventType `json:"event"`
	Command         string    `json:"command,omitempty"`
	Args            []string  `json:"args,omitempty"`
	Prompt          string    `json:"prompt,omitempty"`
	Depth           int       `json:"depth,omitempty"`
	Error           string    `json:"error,omitempty"`
}

// LogRecorder is a callback that stores entries in an external
// datastore.
type LogRecorder func(le *LogEntry) error

// Logger captures engine events for later inspection.
type Logger struct {
	Record LogRecorder
}

// NewJsonLinesLogRecorder creates a Logger that exports entries in
// newline delimited JSON object format.
func NewJsonLinesLogRecorder(w io.Writer) *Logger {
	return &Logger{
		Record: func(le *LogEntry) error {
			entry, err := json.Marshal(le)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
	}
}

// NewSession creates a logger with an attached random session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{Logger: l, sessionID: fmt.Sprintf("%d", rand.Uint64())}
}

// SessionLogger logs entries that share a session ID.
type SessionLogger struct {
	*Logger
	sessionID string
}

func (s *SessionLogger) record(le *LogEntry) error {
	le.TimestampMicros = time.Now().UnixNano() / int64(time.Microsecond)
	le.SessionID = s.sessionID
	return s.Record(le)
}

// SessionStart records a session being pushed onto the stack.
func (s *SessionLogger) SessionStart(prompt string, depth int) error {
	return s.record(&LogEntry{Event: EventSessionStart, Prompt: prompt, Depth: depth})
}

// SessionEnd records a session being popped off the stack.
func (s *SessionLogger) SessionEnd(prompt string, depth int) error {
	return s.record(&LogEntry{Event: EventSessionEnd, Prompt: prompt, Depth: depth})
}

// Dispatch records a resolved command invocation.
func (s *SessionLogger) Dispatch(command string, args []string) error {
	return s.record(&LogEntry{Event: EventDispatch, Command: command, Args: args})
}

// UnknownCommand records a command name that resolved to nothing.
func (s *SessionLogger) UnknownCommand(command string) error {
	return s.record(&LogEntry{Event: EventUnknownCommand, Command: command})
}

// RegisterError records a failed command registration.
func (s *SessionLogger) RegisterError(command string, err error) error {
	return s.record(&LogEntry{Event: EventRegisterError, Command: command, Error: err.Error()})
}
