package registry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdf-dev/cmdf/core/arglist"
)

func nop(args *arglist.ArgList) error { return nil }

func TestRegisterLimit(t *testing.T) {
	table := NewTable(3, 2)
	rng := &Range{}

	for i := 0; i < 3; i++ {
		require.NoError(t, table.Register(rng, fmt.Sprintf("cmd%d", i), "", nop))
	}
	assert.Equal(t, 3, rng.Count)

	// The (max+1)-th registration fails and changes nothing.
	err := table.Register(rng, "overflow", "", nop)
	assert.ErrorIs(t, err, ErrTooManyCommands)
	assert.Equal(t, 3, rng.Count)
	_, ok := table.Lookup(*rng, "overflow")
	assert.False(t, ok)
}

func TestLookupIsRangeScoped(t *testing.T) {
	table := NewTable(4, 2)

	parent := &Range{}
	require.NoError(t, table.Register(parent, "shared", "parent version", nop))
	require.NoError(t, table.Register(parent, "parent-only", "", nop))

	child := &Range{Start: parent.Start + parent.Count}
	require.NoError(t, table.Register(child, "shared", "child version", nop))
	require.NoError(t, table.Register(child, "child-only", "", nop))

	entry, ok := table.Lookup(*parent, "shared")
	require.True(t, ok)
	assert.Equal(t, "parent version", entry.Help)

	entry, ok = table.Lookup(*child, "shared")
	require.True(t, ok)
	assert.Equal(t, "child version", entry.Help)

	_, ok = table.Lookup(*parent, "child-only")
	assert.False(t, ok, "parent must not see the child's commands")
	_, ok = table.Lookup(*child, "parent-only")
	assert.False(t, ok, "child must not see the parent's commands")
}

func TestSlotsReusedAfterRangeEnds(t *testing.T) {
	table := NewTable(2, 2)

	parent := &Range{}
	require.NoError(t, table.Register(parent, "top", "", nop))

	// First child registers, then its session ends; the range is
	// simply forgotten.
	first := &Range{Start: parent.Start + parent.Count}
	require.NoError(t, table.Register(first, "gone", "", nop))

	// A sibling pushed later starts at the parent's end again and
	// overwrites the dead slots.
	second := &Range{Start: parent.Start + parent.Count}
	require.NoError(t, table.Register(second, "fresh", "", nop))

	_, ok := table.Lookup(*second, "gone")
	assert.False(t, ok)
	_, ok = table.Lookup(*second, "fresh")
	assert.True(t, ok)
}

func TestListPartitionsByHelp(t *testing.T) {
	table := NewTable(4, 1)
	rng := &Range{}
	require.NoError(t, table.Register(rng, "hello", "", nop))
	require.NoError(t, table.Register(rng, "greet", "Greets you.", nop))
	require.NoError(t, table.Register(rng, "zz", "Sleeps.", nop))
	require.NoError(t, table.Register(rng, "anon", "", nop))

	documented, undocumented := table.List(*rng)
	assert.Equal(t, []string{"greet", "zz"}, documented)
	assert.Equal(t, []string{"hello", "anon"}, undocumented)
}

func TestFirstMatchWins(t *testing.T) {
	table := NewTable(4, 1)
	rng := &Range{}

	var got string
	mk := func(tag string) Handler {
		return func(args *arglist.ArgList) error {
			got = tag
			return nil
		}
	}
	require.NoError(t, table.Register(rng, "dup", "", mk("first")))
	require.NoError(t, table.Register(rng, "dup", "", mk("second")))

	handler, ok := table.Resolve(*rng, "dup")
	require.True(t, ok)
	require.NoError(t, handler(nil))
	assert.Equal(t, "first", got)
}

func TestNames(t *testing.T) {
	table := NewTable(4, 1)
	rng := &Range{}
	require.NoError(t, table.Register(rng, "b", "", nop))
	require.NoError(t, table.Register(rng, "a", "", nop))

	assert.Equal(t, []string{"b", "a"}, table.Names(*rng))
}
