package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonLinesRecorder(t *testing.T) {
	var buf bytes.Buffer
	log := NewJsonLinesLogRecorder(&buf).NewSession()

	require.NoError(t, log.SessionStart("(cmdf) ", 1))
	require.NoError(t, log.Dispatch("greet", []string{"world"}))
	require.NoError(t, log.UnknownCommand("bogus"))
	require.NoError(t, log.SessionEnd("(cmdf) ", 1))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	var entries []LogEntry
	for _, line := range lines {
		var le LogEntry
		require.NoError(t, json.Unmarshal([]byte(line), &le))
		entries = append(entries, le)
	}

	assert.Equal(t, EventSessionStart, entries[0].Event)
	assert.Equal(t, "(cmdf) ", entries[0].Prompt)
	assert.Equal(t, 1, entries[0].Depth)

	assert.Equal(t, EventDispatch, entries[1].Event)
	assert.Equal(t, "greet", entries[1].Command)
	assert.Equal(t, []string{"world"}, entries[1].Args)

	assert.Equal(t, EventUnknownCommand, entries[2].Event)
	assert.Equal(t, EventSessionEnd, entries[3].Event)

	// All entries share the session ID and carry timestamps.
	for _, le := range entries {
		assert.Equal(t, entries[0].SessionID, le.SessionID)
		assert.NotZero(t, le.TimestampMicros)
	}
}

func TestSessionIDsDiffer(t *testing.T) {
	log := NewJsonLinesLogRecorder(&bytes.Buffer{})
	a := log.NewSession()
	b := log.NewSession()
	assert.NotEqual(t, a.sessionID, b.sessionID)
}
