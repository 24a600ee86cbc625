package grammar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collectEvents(t *testing.T, input string) []Event {
	t.Helper()
	e := NewEngine(input)
	var events []Event
	for {
		ev, err := e.Next()
		require.NoError(t, err)
		events = append(events, ev)
		if ev.Kind == EventDone {
			return events
		}
	}
}

func TestEngineSimpleNode(t *testing.T) {
	events := collectEvents(t, "node 1 2 key=3\n")
	require.Equal(t, EventNode, events[0].Kind)
	require.Equal(t, "node", events[0].Node.Name)
	require.Equal(t, EventPropValue, events[1].Kind)
	require.Equal(t, EventPropValue, events[2].Kind)
	require.Equal(t, EventPropValue, events[3].Kind)
	require.Equal(t, "key", events[3].PropValue.Key)
	require.Equal(t, EventEnd, events[4].Kind)
	require.Equal(t, EventDone, events[5].Kind)
}

func TestEngineChildren(t *testing.T) {
	events := collectEvents(t, "parent {\n  child\n}\n")
	kinds := make([]EventKind, len(events))
	for i, ev := range events {
		kinds[i] = ev.Kind
	}
	require.Equal(t, []EventKind{EventNode, EventBegin, EventNode, EventEnd, EventEnd, EventDone}, kinds)
}

func TestEngineMultipleChildrenRejected(t *testing.T) {
	e := NewEngine("node {\n} {\n}\n")
	var lastErr error
	for {
		_, err := e.Next()
		if err != nil {
			lastErr = err
			break
		}
	}
	require.Error(t, lastErr)
	ge, ok := lastErr.(*Error)
	require.True(t, ok)
	require.Equal(t, MultipleChildren, ge.Kind)
}

func TestEngineSlashdashNodePreserved(t *testing.T) {
	// The grammar engine reports slashdash without filtering it; that is
	// the stream layer's job.
	events := collectEvents(t, "/-node 1\n")
	require.True(t, events[0].Node.Slashdash)
}

func TestEngineTypeHintOnNode(t *testing.T) {
	events := collectEvents(t, "(u8)node\n")
	require.True(t, events[0].Node.HasType)
	require.Equal(t, "u8", events[0].Node.Type)
}

func TestEngineUnexpectedCloseBracket(t *testing.T) {
	e := NewEngine("}\n")
	_, err := e.Next()
	ge, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, UnexpectedCloseBracket, ge.Kind)
}

func TestEngineBareIdentifierWithParenRejected(t *testing.T) {
	e := NewEngine("foo(bar)\n")
	_, err := e.Next()
	require.NoError(t, err)
	_, err = e.Next()
	require.Error(t, err)
}

func TestEngineNestedChildren(t *testing.T) {
	events := collectEvents(t, "a {\n  b {\n    c\n  }\n}\n")
	kinds := make([]EventKind, len(events))
	for i, ev := range events {
		kinds[i] = ev.Kind
	}
	require.Equal(t, []EventKind{
		EventNode, EventBegin,
		EventNode, EventBegin,
		EventNode, EventEnd,
		EventEnd,
		EventEnd,
		EventDone,
	}, kinds)
}
