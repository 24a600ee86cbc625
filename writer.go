package kdl

import (
	"fmt"
	"io"

	"github.com/kdl2/kdl2-go/ident"
)

// WriterOptions controls canonical text output (§6).
type WriterOptions struct {
	// Indent is the string repeated once per nesting depth before a node.
	Indent string
}

// DefaultWriterOptions is what NewWriter uses.
var DefaultWriterOptions = WriterOptions{Indent: "    "}

// Writer renders nodes to canonical KDL text: one node per line, a
// 4-space indent per nesting depth by default, no surrounding spaces
// around a property's '=', and children wrapped in "{\n...\n}".
type Writer struct {
	w       io.Writer
	depth   int
	options WriterOptions
}

// NewWriter creates a Writer with DefaultWriterOptions.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, options: DefaultWriterOptions}
}

// NewWriterOptions creates a Writer with the given options.
func NewWriterOptions(w io.Writer, opts WriterOptions) *Writer {
	return &Writer{w: w, options: opts}
}

// WritableNode is the minimal shape a Writer needs to render a node tree;
// the document package's *Node satisfies it without either package
// depending on the other's concrete types.
type WritableNode interface {
	WriteName() (typ string, hasType bool, name string)
	WriteEntries() []WritableEntry
	WriteChildren() ([]WritableNode, bool)
}

// WritableEntry is the minimal shape a Writer needs to render one entry.
type WritableEntry struct {
	Type    string
	HasType bool
	Key     string
	HasKey  bool
	Literal string
}

// WriteNodes writes a sequence of sibling nodes at the writer's current
// depth.
func (w *Writer) WriteNodes(nodes []WritableNode) error {
	for _, n := range nodes {
		if err := w.writeNode(n); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeIndent() error {
	for i := 0; i < w.depth; i++ {
		if _, err := io.WriteString(w.w, w.options.Indent); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeNode(n WritableNode) error {
	if err := w.writeIndent(); err != nil {
		return err
	}

	typ, hasType, name := n.WriteName()
	if hasType {
		if _, err := fmt.Fprintf(w.w, "(%s)", ident.String(typ)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w.w, ident.String(name)); err != nil {
		return err
	}

	for _, e := range n.WriteEntries() {
		if _, err := io.WriteString(w.w, " "); err != nil {
			return err
		}
		if e.HasKey {
			if _, err := fmt.Fprintf(w.w, "%s=", ident.String(e.Key)); err != nil {
				return err
			}
		}
		if e.HasType {
			if _, err := fmt.Fprintf(w.w, "(%s)", ident.String(e.Type)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w.w, e.Literal); err != nil {
			return err
		}
	}

	children, has := n.WriteChildren()
	if has {
		if _, err := io.WriteString(w.w, " {\n"); err != nil {
			return err
		}
		w.depth++
		if err := w.WriteNodes(children); err != nil {
			return err
		}
		w.depth--
		if err := w.writeIndent(); err != nil {
			return err
		}
		if _, err := io.WriteString(w.w, "}\n"); err != nil {
			return err
		}
		return nil
	}

	_, err := io.WriteString(w.w, "\n")
	return err
}
