// Package kdl provides a streaming event parser and text writer for the
// KDL v2 document language, together with the document subpackage's DOM
// assembled on top of it.
package kdl

import (
	"github.com/kdl2/kdl2-go/internal/grammar"
	"github.com/kdl2/kdl2-go/value"
)

// EventKind classifies a Stream event. Unlike the grammar engine's raw
// events, a Stream never emits anything that was marked slashdash — those
// nodes, properties, values, and children blocks are filtered out here,
// cascading through any nesting they contain, so document assembly never
// has to think about slashdash at all.
type EventKind = grammar.EventKind

const (
	EventNode      = grammar.EventNode
	EventPropValue = grammar.EventPropValue
	EventBegin     = grammar.EventBegin
	EventEnd       = grammar.EventEnd
	EventDone      = grammar.EventDone
)

// Node reports a node's name and optional type annotation, with slashdash
// already resolved (a Stream never emits a Node for a commented-out one).
type Node struct {
	Type    string
	HasType bool
	Name    string
}

// Entry is a positional value (HasKey == false) or key=value property belonging
// to the node most recently reported by a Node event.
type Entry struct {
	Type    string
	HasType bool
	Key     string
	HasKey  bool
	Value   value.Value
}

// Event is one item of a filtered, flattened KDL event stream: exactly
// one of Node, Entry, or neither (for Begin/End/Done) is meaningful,
// selected by Kind.
type Event struct {
	Kind  EventKind
	Node  Node
	Entry Entry
}

// Stream parses a KDL document lazily, one event at a time, resolving
// slashdash filtering as it goes. Construct one with NewStream or
// NewStreamOptions.
type Stream struct {
	engine *grammar.Engine

	skipping bool
	// skipDepth is the engine depth at which the End closing the skipped
	// block will appear.
	skipDepth int
	// skipEmitEnd is true when the skip was started by a slashdashed
	// Begin (only the children block is commented out, the node itself
	// stays) so the End that closes it must still be surfaced as the
	// node's own terminator. It is false when the skip was started by a
	// slashdashed Node (the whole node, children block included, is
	// commented out), whose End must not be surfaced at all.
	skipEmitEnd bool
}

// Options controls Stream construction. The zero value is the default:
// no tracing.
type Options struct {
	// Trace, if set, is invoked at each underlying grammar event with its
	// byte offset and a short label, before slashdash filtering is
	// applied. Useful for stepping through a misbehaving parse by eye;
	// costs nothing when nil.
	Trace func(pos int, label string)
}

// NewStream returns a Stream over text, ready to produce its first event.
func NewStream(text string) *Stream {
	return NewStreamOptions(text, Options{})
}

// NewStreamOptions returns a Stream over text configured by opts.
func NewStreamOptions(text string, opts Options) *Stream {
	e := grammar.NewEngine(text)
	e.Trace = opts.Trace
	return &Stream{engine: e}
}

// Next returns the stream's next event. Once it returns a non-nil error,
// or an EventDone event, the Stream is exhausted and must not be called
// again.
func (s *Stream) Next() (Event, error) {
	for {
		ev, err := s.engine.Next()
		if err != nil {
			return Event{}, err
		}

		if s.skipping {
			if ev.Kind == grammar.EventEnd && s.engine.Depth() == s.skipDepth {
				s.skipping = false
				if s.skipEmitEnd {
					return Event{Kind: EventEnd}, nil
				}
			}
			continue
		}

		switch ev.Kind {
		case grammar.EventNode:
			if ev.Node.Slashdash {
				s.skipping = true
				s.skipDepth = s.engine.Depth()
				s.skipEmitEnd = false
				continue
			}
			return Event{Kind: EventNode, Node: Node{
				Type:    ev.Node.Type,
				HasType: ev.Node.HasType,
				Name:    ev.Node.Name,
			}}, nil

		case grammar.EventPropValue:
			if ev.PropValue.Slashdash {
				continue
			}
			return Event{Kind: EventPropValue, Entry: Entry{
				Type:    ev.PropValue.Type,
				HasType: ev.PropValue.HasType,
				Key:     ev.PropValue.Key,
				HasKey:  ev.PropValue.HasKey,
				Value:   grammarValueToValue(ev.PropValue.Value),
			}}, nil

		case grammar.EventBegin:
			if ev.Begin.Slashdash {
				s.skipping = true
				s.skipDepth = s.engine.Depth() - 1
				s.skipEmitEnd = true
				continue
			}
			return Event{Kind: EventBegin}, nil

		case grammar.EventEnd:
			return Event{Kind: EventEnd}, nil

		case grammar.EventDone:
			return Event{Kind: EventDone}, nil
		}
	}
}

// grammarValueToValue lifts the grammar engine's minimal literal
// representation into the public value.Value type.
func grammarValueToValue(v grammar.Value) value.Value {
	switch v.Kind {
	case grammar.ValueString:
		return value.NewString(v.Str)
	case grammar.ValueNumber:
		return value.NewNumber(v.Num)
	case grammar.ValueBool:
		return value.NewBool(v.Bool)
	default:
		return value.NewNull()
	}
}
