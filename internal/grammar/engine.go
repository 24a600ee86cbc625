package grammar

import "strings"

type engineMode uint8

const (
	modeBetween engineMode = iota
	modeEntries
)

// Engine is a pull-based, position-threaded recognizer over a single KDL
// document. Each call to Next advances it and returns the next low-level
// event (§4.2.7). An Engine holds only a byte position and a small amount
// of per-node bookkeeping; it never buffers tokens or builds a tree —
// that is the job of the stream and document layers built on top of it.
type Engine struct {
	input string
	pos   int
	mode  engineMode
	depth int

	// childrenOpened is reset at each node header and set when that node's
	// '{' is consumed. A second '{' following the block's closing '}' is
	// reported as MultipleChildren by nextBetween.
	childrenOpened bool

	// Trace, if set, is called with the byte offset and a short label at
	// each event the engine produces. It costs nothing when nil and
	// exists for the same reason the teacher's tokenizer carries a
	// debug-logging hook: stepping through a misbehaving parse by eye.
	Trace func(pos int, label string)
}

// NewEngine returns an Engine positioned at the start of input, after any
// leading byte-order mark.
func NewEngine(input string) *Engine {
	return &Engine{input: input, pos: skipBOM(input), mode: modeBetween}
}

func (e *Engine) trace(label string) {
	if e.Trace != nil {
		e.Trace(e.pos, label)
	}
}

// Pos reports the engine's current byte offset into its input.
func (e *Engine) Pos() int { return e.pos }

// Depth reports the engine's current children-block nesting depth.
func (e *Engine) Depth() int { return e.depth }

// Next returns the next event, or an error if the input is not
// well-formed at the current position. Once an error is returned, the
// Engine must not be used again: its position is left at the point of
// failure.
func (e *Engine) Next() (Event, error) {
	var ev Event
	var err error
	switch e.mode {
	case modeEntries:
		ev, err = e.nextEntries()
	default:
		ev, err = e.nextBetween()
	}
	if err == nil {
		e.trace(ev.Kind.String())
	}
	return ev, err
}

// nextBetween scans for the next node, a '}' block close, or the end of
// input, at the engine's current nesting depth.
func (e *Engine) nextBetween() (Event, error) {
	pos, err := lineSpace(e.input, e.pos)
	if err != nil {
		return Event{}, err
	}
	e.pos = pos

	if e.pos >= len(e.input) {
		if e.depth != 0 {
			return Event{}, errf(UnexpectedEof, e.pos, "unterminated children block")
		}
		return Event{Kind: EventDone}, nil
	}

	if e.input[e.pos] == '}' {
		if e.depth == 0 {
			return Event{}, errf(UnexpectedCloseBracket, e.pos, "'}' without a matching '{'")
		}
		e.depth--
		e.pos++
		if p, _, err := nodeSpace(e.input, e.pos); err == nil && p < len(e.input) && e.input[p] == '{' {
			return Event{}, errf(MultipleChildren, p, "node already has a children block")
		}
		return Event{Kind: EventEnd}, nil
	}

	slashdash := false
	if strings.HasPrefix(e.input[e.pos:], "/-") {
		e.pos += 2
		p, _, err := nodeSpace(e.input, e.pos)
		if err != nil {
			return Event{}, err
		}
		e.pos = p
		slashdash = true
	}

	hasType := false
	typ := ""
	if e.pos < len(e.input) && e.input[e.pos] == '(' {
		p, h, err := typeHint(e.input, e.pos)
		if err != nil {
			return Event{}, err
		}
		e.pos = p
		typ = h
		hasType = true
	}

	p, name, owned, err := stringLiteral(e.input, e.pos)
	if err != nil {
		return Event{}, err
	}
	e.pos = p
	e.childrenOpened = false
	e.mode = modeEntries

	return Event{Kind: EventNode, Node: Node{
		Slashdash: slashdash,
		Type:      typ,
		HasType:   hasType,
		Name:      name,
		NameOwned: owned,
	}}, nil
}

// nextEntries scans one more item belonging to the node currently being
// parsed: a node-terminator (which ends the node and returns to
// nextBetween), a children block opener, or a positional/keyed value.
func (e *Engine) nextEntries() (Event, error) {
	p, consumedSpace, err := nodeSpace(e.input, e.pos)
	if err != nil {
		return Event{}, err
	}
	e.pos = p

	if end, ok, err := e.tryNodeTerminator(); err != nil {
		return Event{}, err
	} else if ok {
		return end, nil
	}

	if !consumedSpace {
		return Event{}, errf(ExpectedSpace, e.pos, "expected node-space before entry")
	}

	slashdash := false
	if strings.HasPrefix(e.input[e.pos:], "/-") {
		e.pos += 2
		p, _, err := nodeSpace(e.input, e.pos)
		if err != nil {
			return Event{}, err
		}
		e.pos = p
		slashdash = true
	}

	if e.pos < len(e.input) && e.input[e.pos] == '{' {
		if e.childrenOpened {
			return Event{}, errf(MultipleChildren, e.pos, "node already has a children block")
		}
		e.childrenOpened = true
		e.pos++
		e.depth++
		e.mode = modeBetween
		return Event{Kind: EventBegin, Begin: Begin{Slashdash: slashdash}}, nil
	}

	var key string
	var hasKey bool
	var keyOwned bool
	if looksLikeKeyStart(e.input, e.pos) {
		save := e.pos
		p2, k, owned2, err2 := stringLiteral(e.input, e.pos)
		if err2 == nil && p2 < len(e.input) && e.input[p2] == '=' {
			e.pos = p2 + 1
			key, keyOwned = k, owned2
			hasKey = true
		} else {
			e.pos = save
		}
	}

	p3, typ2, hasType2, val, err3 := literalValue(e.input, e.pos)
	if err3 != nil {
		return Event{}, err3
	}
	e.pos = p3

	return Event{Kind: EventPropValue, PropValue: PropValue{
		Slashdash: slashdash,
		Type:      typ2,
		HasType:   hasType2,
		Key:       key,
		HasKey:    hasKey,
		KeyOwned:  keyOwned,
		Value:     val,
	}}, nil
}

// tryNodeTerminator checks whether the engine is positioned at a
// node-terminator (EOF, an enclosing '}', ';', a newline, or a
// single-line comment) and if so emits the node's End event and switches
// back to nextBetween. A ';', a newline, or a comment is consumed; EOF and
// '}' are left in place for nextBetween.
func (e *Engine) tryNodeTerminator() (Event, bool, error) {
	if e.pos >= len(e.input) || e.input[e.pos] == '}' {
		e.mode = modeBetween
		return Event{Kind: EventEnd}, true, nil
	}
	if e.input[e.pos] == ';' {
		e.pos++
		e.mode = modeBetween
		return Event{Kind: EventEnd}, true, nil
	}
	if p, found, err := trySingleLineCommentOnly(e.input, e.pos); err != nil {
		return Event{}, false, err
	} else if found {
		e.pos = p
		e.mode = modeBetween
		return Event{Kind: EventEnd}, true, nil
	}
	if p, ok := skipOneNewline(e.input, e.pos); ok {
		e.pos = p
		e.mode = modeBetween
		return Event{Kind: EventEnd}, true, nil
	}
	return Event{}, false, nil
}

// looksLikeKeyStart reports whether pos could begin a property key: a
// quoted or raw string, or an identifier that isn't number-like. Numbers
// and '(' (which only ever introduces a type hint on the value side) are
// excluded so the entries loop doesn't commit to a doomed key parse.
func looksLikeKeyStart(input string, pos int) bool {
	if pos >= len(input) {
		return false
	}
	c := input[pos]
	if c == '"' {
		return true
	}
	if c == '#' && isRawStringStart(input, pos) {
		return true
	}
	if isNumberStart(input, pos) {
		return false
	}
	r, size := decodeRune(input, pos)
	return size > 0 && IsIdentifierChar(r) && c != '('
}
