package grammar

// identifierString reads a maximal run of identifier chars starting at
// pos (§4.2.4), rejecting the result if it looks number-like or is a
// reserved bare word — those must be written as an actual number token or
// a '#'-prefixed keyword respectively.
func identifierString(input string, pos int) (newPos int, text string, err error) {
	start := pos
	for {
		r, size := decodeRune(input, pos)
		if size == 0 || !IsIdentifierChar(r) {
			break
		}
		pos += size
	}
	if pos == start {
		return pos, "", errf(ExpectedString, pos, "expected identifier")
	}
	text = input[start:pos]
	if LooksNumberLike(text) {
		return pos, "", errf(BadIdentifier, start, "identifier %q looks like a number", text)
	}
	if IsReservedWord(text) {
		return pos, "", errf(BadIdentifier, start, "%q is a reserved word; use #%s", text, text)
	}
	return pos, text, nil
}

// keyword reads a '#'-prefixed keyword starting at pos (pointing at '#')
// and returns its bare name (without the '#'), failing with BadKeyword if
// the keyword isn't one of the allowed set.
func keyword(input string, pos int) (newPos int, name string, err error) {
	start := pos
	pos++ // '#'
	kwStart := pos
	for {
		r, size := decodeRune(input, pos)
		if size == 0 || !IsIdentifierChar(r) {
			break
		}
		pos += size
	}
	name = input[kwStart:pos]
	switch name {
	case "true", "false", "null", "nan", "inf", "-inf":
		return pos, name, nil
	default:
		return pos, "", errf(BadKeyword, start, "unknown keyword #%s", name)
	}
}

// typeHint parses `( node-space? string node-space? )` starting at pos
// (pointing at '(') and returns the hinted string (§4.2.8).
func typeHint(input string, pos int) (newPos int, hint string, err error) {
	start := pos
	pos++ // '('
	pos, _, err = nodeSpace(input, pos)
	if err != nil {
		return pos, "", err
	}
	pos, hint, _, err = stringLiteral(input, pos)
	if err != nil {
		return pos, "", err
	}
	pos, _, err = nodeSpace(input, pos)
	if err != nil {
		return pos, "", err
	}
	if pos >= len(input) || input[pos] != ')' {
		return pos, "", errf(ExpectedCloseParen, pos, "expected ')' closing type hint opened at %d", start)
	}
	pos++
	return pos, hint, nil
}
