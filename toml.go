// Package toml implements a format-preserving TOML parser, dotted-path
// query engine, and in-place mutator. Unlike a decode-into-struct
// library, parsing here retains every whitespace run, comment, and
// literal spelling, so an unmodified document serializes back
// byte-for-byte (§3, §8 property 1).
package toml

// ParseResultKind tags which of the four parse outcomes a ParseResult
// holds (§6.4).
type ParseResultKind int

const (
	ResultFull ParseResultKind = iota
	ResultFullError
	ResultPartial
	ResultPartialError
)

func (k ParseResultKind) String() string {
	switch k {
	case ResultFull:
		return "Full"
	case ResultFullError:
		return "FullError"
	case ResultPartial:
		return "Partial"
	case ResultPartialError:
		return "PartialError"
	default:
		return "Unknown"
	}
}

// ParseResult reports how much of the input was consumed and whatever
// semantic errors were recorded along the way (§6.4). Partial and
// PartialError are part of the interface for forward compatibility, but
// this implementation's line-level resynchronization always makes
// progress: even an unterminated multi-line string consumes to the end
// of input rather than stopping short, so every parse here ends Full or
// FullError in practice.
type ParseResult struct {
	kind      ParseResultKind
	remainder string
	errs      *errorList
}

func (r ParseResult) Kind() ParseResultKind { return r.kind }
func (r ParseResult) Remainder() string     { return r.remainder }

// Errors returns the semantic errors recorded during the parse, in the
// order they were found. Empty for Full and Partial.
func (r ParseResult) Errors() []*ParseError {
	if r.errs == nil {
		return nil
	}
	return r.errs.Errors()
}

// Parser owns a parsed Document and exposes the four operations of §4.G:
// Parse, GetValue, GetChildren, SetValue.
type Parser struct {
	doc *Document
}

// New returns an empty facade holding no document until Parse succeeds.
func New() *Parser {
	return &Parser{}
}

// Parse parses input, replacing any document this Parser previously
// held, and returns the Parser alongside a ParseResult describing the
// outcome. The recorded errors are reachable only through the
// ParseResult; the Parser keeps the document and not the error list.
func (p *Parser) Parse(input string) (*Parser, ParseResult) {
	doc, errs := parseDocument(input)
	p.doc = doc
	kind := ResultFull
	if len(errs.Errors()) > 0 {
		kind = ResultFullError
	}
	return p, ParseResult{kind: kind, errs: errs}
}

// Parse is a package-level convenience equivalent to New().Parse(input).
func Parse(input string) (*Parser, ParseResult) {
	return New().Parse(input)
}

// Document returns the Parser's underlying document, or nil before the
// first successful Parse.
func (p *Parser) Document() *Document {
	return p.doc
}

// GetValue resolves path (§4.D, §6.2) against the parsed document and
// returns the value there, or ok=false if no such path exists.
func (p *Parser) GetValue(path string) (*Value, bool) {
	if p.doc == nil {
		return nil, false
	}
	return getValue(p.doc, path)
}

// GetChildren returns the ordered child key names (tables, inline
// tables) or bracketed indices (arrays, arrays of tables) at path. An
// empty path queries the document root. Scalars return an empty,
// successful result.
func (p *Parser) GetChildren(path string) ([]string, bool) {
	if p.doc == nil {
		return nil, false
	}
	return getChildren(p.doc, path)
}

// SetValue replaces the value at path with newValue in place, applying
// the format-preservation policy of §4.D. Reports false, leaving the
// document unchanged, if path does not resolve to an existing value.
func (p *Parser) SetValue(path string, newValue *Value) bool {
	if p.doc == nil {
		return false
	}
	return setValue(p.doc, path, newValue)
}

// Serialize renders the Parser's document back to TOML text (§4.E).
func (p *Parser) Serialize() string {
	if p.doc == nil {
		return ""
	}
	return Serialize(p.doc)
}
