// Package document assembles a tree-shaped DOM from a kdl.Stream's flat
// event sequence (§4.4), and renders one back to canonical text (§6).
package document

import (
	"fmt"
	"io"
	"strings"

	kdl "github.com/kdl2/kdl2-go"
	"github.com/kdl2/kdl2-go/value"
)

// Document is the top-level container for a sequence of sibling nodes,
// either the document root or a single node's children block.
type Document struct {
	Nodes []*Node
}

// New creates an empty Document.
func New() *Document {
	return &Document{Nodes: make([]*Node, 0, 8)}
}

// AddNode appends a node to the document.
func (d *Document) AddNode(n *Node) {
	d.Nodes = append(d.Nodes, n)
}

// Get returns every top-level node named name, in document order.
func (d *Document) Get(name string) []*Node {
	var out []*Node
	for _, n := range d.Nodes {
		if n.Name == name {
			out = append(out, n)
		}
	}
	return out
}

// GetFirst returns the first top-level node named name, or nil if there is
// none.
func (d *Document) GetFirst(name string) *Node {
	for _, n := range d.Nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// Own forces every borrowed string reachable from d to be independently
// allocated, so d no longer holds a reference into whatever buffer it was
// parsed from.
func (d *Document) Own() {
	for _, n := range d.Nodes {
		n.Own()
	}
}

// Normalize applies §4.4's two normalizations to d and every descendant
// document: nodes with an empty (but present) children block have that
// block dropped, and among a node's keyed entries, only the rightmost
// occurrence of each key is retained.
func (d *Document) Normalize() {
	for _, n := range d.Nodes {
		n.Normalize()
	}
}

// Node is a single KDL node: a name, an optional type annotation, an
// ordered list of entries (positional values and keyed properties), and
// an optional children block.
type Node struct {
	Name     string
	Type     string
	HasType  bool
	Entries  []*Entry
	Children *Document
	// HasChildren distinguishes a node with an empty children block ('{}')
	// from one with none at all; Normalize clears both this and Children.
	HasChildren bool
}

// NewNode creates a childless node with the given name.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// AddEntry appends an entry (positional or keyed) to the node.
func (n *Node) AddEntry(e *Entry) {
	n.Entries = append(n.Entries, e)
}

// Arguments returns the node's positional (unkeyed) values, in order.
func (n *Node) Arguments() []*Entry {
	var out []*Entry
	for _, e := range n.Entries {
		if !e.HasKey {
			out = append(out, e)
		}
	}
	return out
}

// Argument returns the node's i'th positional (unkeyed) value, or nil if
// there is no such index.
func (n *Node) Argument(i int) *Entry {
	args := n.Arguments()
	if i < 0 || i >= len(args) {
		return nil
	}
	return args[i]
}

// Property returns the rightmost entry keyed key, or nil if none matches.
func (n *Node) Property(key string) *Entry {
	var found *Entry
	for _, e := range n.Entries {
		if e.HasKey && e.Key == key {
			found = e
		}
	}
	return found
}

// Own forces every borrowed string reachable from n, and from its
// children, to be independently allocated.
func (n *Node) Own() {
	n.Name = strings.Clone(n.Name)
	n.Type = strings.Clone(n.Type)
	for _, e := range n.Entries {
		e.Own()
	}
	if n.Children != nil {
		n.Children.Own()
	}
}

// Normalize drops an empty children block and deduplicates keyed entries
// (rightmost wins), then recurses into any remaining children.
func (n *Node) Normalize() {
	if n.Children != nil {
		n.Children.Normalize()
		if len(n.Children.Nodes) == 0 {
			n.Children = nil
			n.HasChildren = false
		}
	}

	seen := make(map[string]bool, len(n.Entries))
	kept := make([]*Entry, 0, len(n.Entries))
	for i := len(n.Entries) - 1; i >= 0; i-- {
		e := n.Entries[i]
		if e.HasKey {
			if seen[e.Key] {
				continue
			}
			seen[e.Key] = true
		}
		kept = append(kept, e)
	}
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	n.Entries = kept
}

// Entry is a single node argument (HasKey == false) or property
// (HasKey == true), with an optional type annotation on the value.
type Entry struct {
	Key     string
	HasKey  bool
	Type    string
	HasType bool
	Value   value.Value
}

// Own forces any borrowed strings in e to be independently allocated.
func (e *Entry) Own() {
	e.Key = strings.Clone(e.Key)
	e.Type = strings.Clone(e.Type)
	e.Value = e.Value.Clone()
}

// WriteTo renders d as canonical KDL text (§6) using a default Writer.
func (d *Document) WriteTo(w io.Writer) error {
	return kdl.NewWriter(w).WriteNodes(d.writableNodes())
}

func (d *Document) writableNodes() []kdl.WritableNode {
	out := make([]kdl.WritableNode, len(d.Nodes))
	for i, n := range d.Nodes {
		out[i] = n
	}
	return out
}

// WriteName implements kdl.WritableNode.
func (n *Node) WriteName() (typ string, hasType bool, name string) {
	return n.Type, n.HasType, n.Name
}

// WriteEntries implements kdl.WritableNode.
func (n *Node) WriteEntries() []kdl.WritableEntry {
	out := make([]kdl.WritableEntry, len(n.Entries))
	for i, e := range n.Entries {
		out[i] = kdl.WritableEntry{
			Type:    e.Type,
			HasType: e.HasType,
			Key:     e.Key,
			HasKey:  e.HasKey,
			Literal: e.Value.Literal(),
		}
	}
	return out
}

// WriteChildren implements kdl.WritableNode.
func (n *Node) WriteChildren() ([]kdl.WritableNode, bool) {
	if !n.HasChildren || n.Children == nil {
		return nil, false
	}
	return n.Children.writableNodes(), true
}

// Parse parses a complete KDL document from text into a Document.
func Parse(text string) (*Document, error) {
	s := kdl.NewStream(text)
	doc, err := assemble(s)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// assemble drives a Stream to exhaustion, building nested Documents as a
// stack of in-progress node lists: a Begin event pushes a new frame for
// the most recently reported node's children, and an End event pops it.
func assemble(s *kdl.Stream) (*Document, error) {
	root := New()
	type frame struct {
		doc     *Document
		pending *Node // node awaiting its terminating End, or nil
	}
	stack := []frame{{doc: root}}

	for {
		ev, err := s.Next()
		if err != nil {
			return nil, err
		}

		i := len(stack) - 1
		switch ev.Kind {
		case kdl.EventNode:
			n := &Node{Name: ev.Node.Name, Type: ev.Node.Type, HasType: ev.Node.HasType}
			stack[i].doc.AddNode(n)
			stack[i].pending = n

		case kdl.EventPropValue:
			if stack[i].pending == nil {
				return nil, fmt.Errorf("document: entry event with no open node")
			}
			stack[i].pending.AddEntry(&Entry{
				Key:     ev.Entry.Key,
				HasKey:  ev.Entry.HasKey,
				Type:    ev.Entry.Type,
				HasType: ev.Entry.HasType,
				Value:   ev.Entry.Value,
			})

		case kdl.EventBegin:
			if stack[i].pending == nil {
				return nil, fmt.Errorf("document: children event with no open node")
			}
			child := New()
			stack[i].pending.Children = child
			stack[i].pending.HasChildren = true
			stack = append(stack, frame{doc: child})

		case kdl.EventEnd:
			// A frame-closing End (matching the Begin that pushed the
			// current frame) arrives while no node in that frame is
			// mid-parse; a childless node's own terminating End arrives
			// while it is. Popping also finishes the parent node whose
			// Begin opened the popped frame.
			if len(stack) > 1 && stack[i].pending == nil {
				stack = stack[:i]
				stack[len(stack)-1].pending = nil
			} else {
				stack[i].pending = nil
			}

		case kdl.EventDone:
			return root, nil
		}
	}
}
