// Recursive-descent parser building a Document from source text.
//
// There is no separate tokenizer stage: the grammar needs just enough
// lookahead (one or two bytes) that scanning primitives directly off the
// scanner is simpler than staging a token channel, and it lets every
// expression keep the exact trivia it was written with (§3, §9).

package toml

import (
	"fmt"
	"strings"

	"github.com/go-tomlkit/toml/internal/literal"
)

type parser struct {
	s    *scanner
	errs *errorList

	currentPath    []string
	explicitTables map[string]bool
	arrayCounts    map[string]int
	leafKeys       map[string]bool
}

// parseDocument builds a Document from input, collecting every semantic
// error encountered along the way rather than aborting on the first one
// (§7): only a construct the grammar cannot resynchronize past would stop
// parsing early, and none does here.
func parseDocument(input string) (*Document, *errorList) {
	p := &parser{
		s:              newScanner(input),
		errs:           &errorList{},
		explicitTables: map[string]bool{},
		arrayCounts:    map[string]int{},
		leafKeys:       map[string]bool{},
	}
	doc := &Document{}
	for !p.s.eof() {
		expr := p.parseExpression()
		doc.Expressions = append(doc.Expressions, expr)
	}
	return doc, p.errs
}

func joinPath(parts []string) string {
	return strings.Join(parts, "\x1f")
}

func (p *parser) parseExpression() Expression {
	lineStart := *p.s
	leadingWS := p.s.scanWhitespace()

	if p.s.eof() {
		return Expression{Kind: ExprBlank, Blank: &BlankLine{LeadingWS: leadingWS}}
	}
	if p.s.peekByte() == '#' {
		comment := &Comment{Raw: p.s.scanComment()}
		term := p.parseTerminator()
		return Expression{Kind: ExprBlank, Blank: &BlankLine{LeadingWS: leadingWS, Comment: comment, Terminator: term}}
	}
	if term, ok := p.s.scanNewline(); ok {
		return Expression{Kind: ExprBlank, Blank: &BlankLine{LeadingWS: leadingWS, Terminator: term}}
	}
	if p.s.peekByte() == '[' {
		if expr, ok := p.parseTableHeader(leadingWS); ok {
			return expr
		}
		return p.recoverLine(lineStart)
	}
	if expr, ok := p.parseKeyValueLine(leadingWS); ok {
		return expr
	}
	return p.recoverLine(lineStart)
}

// recoverLine resynchronizes after an unrecognized construct: it rewinds
// to the start of the offending line, consumes it verbatim, and records a
// single UnparseableLine error so parsing can continue at the next line.
func (p *parser) recoverLine(lineStart scanner) Expression {
	*p.s = lineStart
	pos := p.s.position()
	start := p.s.pos
	for !p.s.eof() && p.s.peekByte() != '\n' && !(p.s.peekByte() == '\r' && p.s.peekByteAt(1) == '\n') {
		p.s.advance(1)
	}
	text := p.s.input[start:p.s.pos]
	term := p.parseTerminator()
	p.errs.add(UnparseableLine, "", pos)
	return Expression{Kind: ExprRaw, Raw: &RawLine{Text: text, Terminator: term}}
}

func (p *parser) parseTerminator() string {
	if t, ok := p.s.scanNewline(); ok {
		return t
	}
	return ""
}

func (p *parser) parseOptionalComment() *Comment {
	if p.s.peekByte() == '#' {
		return &Comment{Raw: p.s.scanComment()}
	}
	return nil
}

// parseDottedKey parses a non-empty sequence of key fragments joined by
// '.', each carrying the whitespace immediately around it.
func (p *parser) parseDottedKey() (DottedKey, bool) {
	var frags []KeyFragment
	for {
		lead := p.s.scanWhitespace()
		key, ok := p.parseKeyFragment()
		if !ok {
			return nil, false
		}
		trail := p.s.scanWhitespace()
		frags = append(frags, KeyFragment{Key: key, LeadWS: lead, TrailWS: trail})
		if p.s.peekByte() == '.' {
			p.s.advance(1)
			continue
		}
		break
	}
	return DottedKey(frags), true
}

func (p *parser) parseKeyFragment() (Key, bool) {
	switch p.s.peekByte() {
	case '"':
		raw, decoded, err := p.s.scanBasicString()
		if err != nil {
			return Key{}, false
		}
		return Key{Raw: raw, Text: decoded, Style: BasicQuoted}, true
	case '\'':
		raw, decoded, err := p.s.scanLiteralString()
		if err != nil {
			return Key{}, false
		}
		return Key{Raw: raw, Text: decoded, Style: LiteralQuoted}, true
	default:
		text, ok := p.s.scanBareKey()
		if !ok {
			return Key{}, false
		}
		return NewBareKey(text), true
	}
}

func (p *parser) parseTableHeader(leadingWS string) (Expression, bool) {
	pos := p.s.position()
	kind := StdTableHeader
	if p.s.hasPrefix("[[") {
		kind = ArrayTableHeader
		p.s.advance(2)
	} else {
		p.s.advance(1)
	}
	innerLead := p.s.scanWhitespace()
	key, ok := p.parseDottedKey()
	if !ok {
		return Expression{}, false
	}
	innerTrail := p.s.scanWhitespace()
	if kind == ArrayTableHeader {
		if !p.s.hasPrefix("]]") {
			return Expression{}, false
		}
		p.s.advance(2)
	} else {
		if p.s.peekByte() != ']' {
			return Expression{}, false
		}
		p.s.advance(1)
	}
	trailingWS := p.s.scanWhitespace()
	comment := p.parseOptionalComment()
	term := p.parseTerminator()

	p.openTable(key, kind, pos)

	hdr := &TableHeader{
		LeadingWS: leadingWS, Kind: kind, InnerLeadWS: innerLead, Path: key,
		InnerTrailWS: innerTrail, TrailingWS: trailingWS, Comment: comment, Terminator: term,
	}
	exprKind := ExprStdTable
	if kind == ArrayTableHeader {
		exprKind = ExprArrayTable
	}
	return Expression{Kind: exprKind, Header: hdr}, true
}

// resolvePath expands a sequence of ancestor key segments by inserting an
// "[idx]" marker after any segment that names an already-opened
// array-of-tables, matching TOML's rule that a nested "[a.b]" header (or
// a key under it) resolves against the array's current last element.
// Callers must pass only the path's ancestor segments, never a header's
// own final segment: whether that final segment itself names an
// already-open array-of-tables (or vice versa) is a table/AoT coherence
// conflict for openTable to flag, not a path to silently resolve through.
func (p *parser) resolvePath(keyParts []string) []string {
	resolved := make([]string, 0, len(keyParts))
	for _, part := range keyParts {
		resolved = append(resolved, part)
		joined := joinPath(resolved)
		if count, ok := p.arrayCounts[joined]; ok && count > 0 {
			resolved = append(resolved, fmt.Sprintf("[%d]", count-1))
		}
	}
	return resolved
}

// renderPath joins a resolved path for display in an error's Key field:
// "[idx]" segments attach directly to the preceding segment, everything
// else is dot-joined.
func renderPath(parts []string) string {
	var b strings.Builder
	for i, part := range parts {
		if strings.HasPrefix(part, "[") {
			b.WriteString(part)
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

// openTable updates the table-tracking state used for DuplicateKey and
// InvalidTable detection (§7): a [table] header may only appear once, but
// [[table]] may repeat, each time opening a fresh element. It also
// enforces the table/array-of-tables coherence invariant (§3.5 invariant
// 4): redeclaring a path as a standard table after it was used as an
// array-of-tables, or vice versa, is an InvalidTable error in both
// directions.
func (p *parser) openTable(key DottedKey, kind TableHeaderKind, pos Position) {
	keyParts := key.Text()
	parent := p.resolvePath(keyParts[:len(keyParts)-1])
	last := keyParts[len(keyParts)-1]
	full := append(append([]string{}, parent...), last)
	joined := joinPath(full)
	priorArrayCount := p.arrayCounts[joined]

	if kind == ArrayTableHeader {
		if p.explicitTables[joined] {
			p.errs.add(InvalidTable, renderPath(full), pos)
		}
		p.arrayCounts[joined] = priorArrayCount + 1
		p.currentPath = append(append([]string{}, full...), fmt.Sprintf("[%d]", priorArrayCount))
		return
	}

	if priorArrayCount > 0 || p.explicitTables[joined] {
		p.errs.add(InvalidTable, renderPath(full), pos)
	}
	p.explicitTables[joined] = true
	if priorArrayCount > 0 {
		p.currentPath = append(append([]string{}, full...), fmt.Sprintf("[%d]", priorArrayCount-1))
	} else {
		p.currentPath = full
	}
}

func (p *parser) parseKeyValueLine(leadingWS string) (Expression, bool) {
	key, ok := p.parseDottedKey()
	if !ok {
		return Expression{}, false
	}
	beforeEq := p.s.scanWhitespace()
	if p.s.peekByte() != '=' {
		return Expression{}, false
	}
	p.s.advance(1)
	afterEq := p.s.scanWhitespace()
	pos := p.s.position()

	fullParts := append(append([]string{}, p.currentPath...), key.Text()...)
	fullKeyStr := renderPath(fullParts)

	val, ok := p.parseValue(fullKeyStr)
	if !ok {
		return Expression{}, false
	}
	trailingWS := p.s.scanWhitespace()
	comment := p.parseOptionalComment()
	term := p.parseTerminator()

	p.recordKeyAssignment(fullParts, fullKeyStr, pos)

	kv := &KeyValueLine{
		LeadingWS: leadingWS, Key: key, BeforeEqual: beforeEq, AfterEqual: afterEq,
		Value: val, TrailingWS: trailingWS, Comment: comment, Terminator: term,
	}
	return Expression{Kind: ExprKeyValue, KeyValue: kv}, true
}

func (p *parser) recordKeyAssignment(fullParts []string, display string, pos Position) {
	joined := joinPath(fullParts)
	if p.leafKeys[joined] {
		p.errs.add(DuplicateKey, display, pos)
	}
	p.leafKeys[joined] = true
}

// parseValue parses one scalar or container value. contextKey is the
// dotted key it is being assigned to, used only to attribute errors.
func (p *parser) parseValue(contextKey string) (*Value, bool) {
	pos := p.s.position()

	switch {
	case p.s.peekByte() == '"' || p.s.peekByte() == '\'':
		raw, decoded, style, err := p.s.scanQuotedString()
		if err != nil {
			p.errs.add(InvalidString, contextKey, pos)
		}
		return &Value{kind: KindString, str: decoded, strStyle: style, raw: raw}, true
	case p.s.peekByte() == '[':
		return p.parseArray(contextKey)
	case p.s.peekByte() == '{':
		return p.parseInlineTable(contextKey)
	case p.s.hasPrefix("true"):
		p.s.advance(4)
		return &Value{kind: KindBoolean, boolean: true, raw: "true"}, true
	case p.s.hasPrefix("false"):
		p.s.advance(5)
		return &Value{kind: KindBoolean, boolean: false, raw: "false"}, true
	}

	save := *p.s
	if raw, ok := p.s.scanDateTime(); ok {
		dt, err := parseDateTime(raw)
		if err != nil {
			p.errs.add(InvalidDateTime, contextKey, pos)
		}
		return &Value{kind: KindDateTime, datetime: dt, raw: raw}, true
	}
	*p.s = save

	if raw, isFloat, ok := p.s.scanNumber(); ok {
		if isFloat {
			f, err := literal.ParseFloat(raw)
			if err != nil {
				p.errs.add(InvalidFloat, contextKey, pos)
			}
			return &Value{kind: KindFloat, floating: f, raw: raw}, true
		}
		n, err := literal.ParseInteger(raw)
		if err != nil {
			p.errs.add(InvalidInteger, contextKey, pos)
		}
		return &Value{kind: KindInteger, integer: n, raw: raw}, true
	}

	return nil, false
}

// scanArrayTrivia consumes whitespace, newlines and comments freely:
// unlike inline tables, arrays may span multiple lines (§4.B).
func (p *parser) scanArrayTrivia() string {
	start := p.s.pos
	for {
		if ws := p.s.scanWhitespace(); ws != "" {
			continue
		}
		if _, ok := p.s.scanNewline(); ok {
			continue
		}
		if p.s.peekByte() == '#' {
			p.s.scanComment()
			continue
		}
		break
	}
	return p.s.input[start:p.s.pos]
}

func (p *parser) parseArray(contextKey string) (*Value, bool) {
	pos := p.s.position()
	p.s.advance(1) // '['
	var cells []*ArrayCell
	var firstKind *ValueKind

	prefix := p.scanArrayTrivia()
	if p.s.peekByte() == ']' {
		p.s.advance(1)
		return &Value{kind: KindArray, arrayClosingWS: prefix}, true
	}

	for {
		val, ok := p.parseValue(contextKey)
		if !ok {
			return nil, false
		}
		if firstKind == nil {
			k := val.Kind()
			firstKind = &k
		} else if *firstKind != val.Kind() {
			p.errs.add(MixedArray, contextKey, pos)
		}
		suffix := p.scanArrayTrivia()
		comma := false
		if p.s.peekByte() == ',' {
			p.s.advance(1)
			comma = true
		}
		cells = append(cells, &ArrayCell{Prefix: prefix, Value: val, Suffix: suffix, Comma: comma})

		prefix = p.scanArrayTrivia()
		if p.s.peekByte() == ']' {
			p.s.advance(1)
			return &Value{kind: KindArray, array: cells, arrayClosingWS: prefix}, true
		}
		if p.s.eof() {
			return nil, false
		}
		if !comma {
			// two values back to back with no separator: malformed.
			return nil, false
		}
	}
}

// parseInlineTable parses `{ k = v, ... }`. Inline tables forbid
// newlines and comments between cells (§4.B), and keys here are treated
// as single fragments rather than dotted paths.
func (p *parser) parseInlineTable(contextKey string) (*Value, bool) {
	p.s.advance(1) // '{'
	var cells []*InlineTableCell
	seen := map[string]bool{}

	prefix := p.s.scanWhitespace()
	if p.s.peekByte() == '}' {
		p.s.advance(1)
		return &Value{kind: KindInlineTable, inlineTableClosingWS: prefix}, true
	}

	for {
		keyPos := p.s.position()
		key, ok := p.parseKeyFragment()
		if !ok {
			return nil, false
		}
		betweenKeyEqual := p.s.scanWhitespace()
		if p.s.peekByte() != '=' {
			return nil, false
		}
		p.s.advance(1)
		betweenEqualValue := p.s.scanWhitespace()

		childKey := key.Text
		if contextKey != "" {
			childKey = contextKey + "." + key.Text
		}
		val, ok := p.parseValue(childKey)
		if !ok {
			return nil, false
		}
		if seen[key.Text] {
			p.errs.add(DuplicateKey, childKey, keyPos)
		}
		seen[key.Text] = true

		suffix := p.s.scanWhitespace()
		comma := false
		if p.s.peekByte() == ',' {
			p.s.advance(1)
			comma = true
		}
		cells = append(cells, &InlineTableCell{
			Prefix: prefix, Key: key, BetweenKeyEqual: betweenKeyEqual,
			BetweenEqualValue: betweenEqualValue, Value: val, Suffix: suffix, Comma: comma,
		})

		prefix = p.s.scanWhitespace()
		if p.s.peekByte() == '}' {
			p.s.advance(1)
			return &Value{kind: KindInlineTable, inlineTable: cells, inlineTableClosingWS: prefix}, true
		}
		if p.s.eof() || !comma {
			return nil, false
		}
	}
}
