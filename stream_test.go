package kdl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collectKinds(t *testing.T, input string) []EventKind {
	t.Helper()
	s := NewStream(input)
	var kinds []EventKind
	for {
		ev, err := s.Next()
		require.NoError(t, err)
		kinds = append(kinds, ev.Kind)
		if ev.Kind == EventDone {
			return kinds
		}
	}
}

func TestStreamDropsSlashdashNode(t *testing.T) {
	kinds := collectKinds(t, "/-dropped 1 2\nkept\n")
	require.Equal(t, []EventKind{EventNode, EventEnd, EventDone}, kinds)
}

func TestStreamDropsSlashdashProperty(t *testing.T) {
	s := NewStream("node /-key=1 2\n")
	ev, err := s.Next()
	require.NoError(t, err)
	require.Equal(t, EventNode, ev.Kind)

	ev, err = s.Next()
	require.NoError(t, err)
	require.Equal(t, EventPropValue, ev.Kind)
	require.False(t, ev.Entry.HasKey)
}

func TestStreamDropsSlashdashChildrenBlock(t *testing.T) {
	kinds := collectKinds(t, "node /-{\n  child 1\n}\n")
	require.Equal(t, []EventKind{EventNode, EventEnd, EventDone}, kinds)
}

func TestStreamSlashdashCascadesThroughNestedChildren(t *testing.T) {
	kinds := collectKinds(t, "/-node {\n  inner {\n    deep\n  }\n}\nkept\n")
	require.Equal(t, []EventKind{EventNode, EventEnd, EventDone}, kinds)
}

func TestStreamEmptyStringKeyIsStillKeyed(t *testing.T) {
	s := NewStream("node \"\"=5\n")
	ev, err := s.Next()
	require.NoError(t, err)
	require.Equal(t, EventNode, ev.Kind)

	ev, err = s.Next()
	require.NoError(t, err)
	require.Equal(t, EventPropValue, ev.Kind)
	require.True(t, ev.Entry.HasKey)
	require.Equal(t, "", ev.Entry.Key)
}

func TestStreamValuesAndTypes(t *testing.T) {
	s := NewStream(`(pkg)node (u8)1 key=(str)"v"` + "\n")
	ev, err := s.Next()
	require.NoError(t, err)
	require.Equal(t, "pkg", ev.Node.Type)

	ev, err = s.Next()
	require.NoError(t, err)
	require.True(t, ev.Entry.HasType)
	require.Equal(t, "u8", ev.Entry.Type)

	ev, err = s.Next()
	require.NoError(t, err)
	require.True(t, ev.Entry.HasKey)
	require.Equal(t, "key", ev.Entry.Key)
	str, ok := ev.Entry.Value.AsString()
	require.True(t, ok)
	require.Equal(t, "v", str)
}
