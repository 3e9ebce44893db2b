package toml

import "strings"

// KeyStyle records how a key fragment was written in the source: as a
// bare identifier or as a quoted string.
type KeyStyle int

const (
	Bare KeyStyle = iota
	BasicQuoted
	LiteralQuoted
)

func (s KeyStyle) String() string {
	switch s {
	case Bare:
		return "Bare"
	case BasicQuoted:
		return "BasicQuoted"
	case LiteralQuoted:
		return "LiteralQuoted"
	default:
		return "Unknown"
	}
}

// Key is a single fragment of a dotted key: either a bare identifier
// matching [A-Za-z0-9_-]+ or a quoted string (basic or literal).
type Key struct {
	Raw   string // exact source text, including surrounding quotes if any
	Text  string // decoded text used for key comparison
	Style KeyStyle
}

// NewBareKey builds a bare key fragment. text must already satisfy the
// bare-key character class; it is not validated here.
func NewBareKey(text string) Key {
	return Key{Raw: text, Text: text, Style: Bare}
}

// NewQuotedKey builds a quoted key fragment with the given decoded text
// and quoting style (BasicQuoted or LiteralQuoted).
func NewQuotedKey(text string, style KeyStyle) Key {
	return Key{Raw: quoteKeyText(text, style), Text: text, Style: style}
}

func quoteKeyText(text string, style KeyStyle) string {
	if style == LiteralQuoted {
		return "'" + text + "'"
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range text {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// KeyFragment is one segment of a DottedKey together with the whitespace
// immediately surrounding it, so "a . b" round-trips exactly.
type KeyFragment struct {
	Key     Key
	LeadWS  string // whitespace before the key text (after the previous dot, or opening delimiter)
	TrailWS string // whitespace after the key text (before the next dot, ']', or '=')
}

// DottedKey is a non-empty ordered sequence of key fragments, as used both
// for key-value lines and table headers.
type DottedKey []KeyFragment

// Text returns the decoded dotted key, e.g. []string{"a", "b", "c"} for
// `a.b.c`.
func (k DottedKey) Text() []string {
	out := make([]string, len(k))
	for i, f := range k {
		out[i] = f.Key.Text
	}
	return out
}

// String renders the decoded dotted key joined by '.', ignoring trivia.
// Used for error reporting and canonical path strings, not serialization.
func (k DottedKey) String() string {
	parts := k.Text()
	for i, p := range parts {
		if needsQuotingForDisplay(p) {
			parts[i] = quoteKeyText(p, BasicQuoted)
		}
	}
	return strings.Join(parts, ".")
}

func needsQuotingForDisplay(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if !isBareKeyRune(r) {
			return true
		}
	}
	return false
}

func isBareKeyRune(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-'
}

// raw renders the dotted key exactly as written in the source, including
// all surrounding whitespace, for serialization.
func (k DottedKey) raw() string {
	var b strings.Builder
	for i, f := range k {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(f.LeadWS)
		b.WriteString(f.Key.Raw)
		b.WriteString(f.TrailWS)
	}
	return b.String()
}

// simpleDottedKey builds a DottedKey with no internal whitespace from
// decoded text fragments, quoting any fragment that needs it. Used when
// synthesizing new path-derived keys (not typical in this core, since
// insertion is out of scope, but needed internally for canonical rendering
// of containers created by set_value).
func simpleDottedKey(text []string) DottedKey {
	out := make(DottedKey, len(text))
	for i, t := range text {
		style := Bare
		raw := t
		if needsQuotingForDisplay(t) {
			style = BasicQuoted
			raw = quoteKeyText(t, BasicQuoted)
		}
		out[i] = KeyFragment{Key: Key{Raw: raw, Text: t, Style: style}}
	}
	return out
}
