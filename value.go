package toml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-tomlkit/toml/internal/literal"
)

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	KindInteger ValueKind = iota
	KindFloat
	KindBoolean
	KindDateTime
	KindString
	KindArray
	KindInlineTable
)

func (k ValueKind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindBoolean:
		return "Boolean"
	case KindDateTime:
		return "DateTime"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindInlineTable:
		return "InlineTable"
	default:
		return "Unknown"
	}
}

// StringStyle records which of the four TOML string forms produced a
// String value.
type StringStyle int

const (
	Basic StringStyle = iota
	Literal
	MultiLineBasic
	MultiLineLiteral
)

func (s StringStyle) String() string {
	switch s {
	case Basic:
		return "Basic"
	case Literal:
		return "Literal"
	case MultiLineBasic:
		return "MultiLineBasic"
	case MultiLineLiteral:
		return "MultiLineLiteral"
	default:
		return "Unknown"
	}
}

// ArrayCell is one element of an Array, with the trivia immediately
// surrounding it.
type ArrayCell struct {
	Prefix string // whitespace/newlines/comments before the value
	Value  *Value
	Suffix string // whitespace/comments after the value, before its separator
	Comma  bool   // whether a comma follows this cell
}

// InlineTableCell is one key/value pair of an InlineTable, with the
// trivia immediately surrounding it. Inline tables do not admit newlines
// or comments between cells (§4.B), so Prefix/Suffix only ever hold
// horizontal whitespace.
type InlineTableCell struct {
	Prefix            string // whitespace before the key
	Key               Key
	BetweenKeyEqual   string
	BetweenEqualValue string
	Value             *Value
	Suffix            string // whitespace after the value, before its separator
	Comma             bool
}

// Value is a tagged variant over every TOML scalar and container kind.
// Every variant preserves both its decoded payload and (for scalars) the
// exact literal text it was parsed from, per §3.1.
type Value struct {
	kind ValueKind
	raw  string // scalars: exact source text, or the spelling a constructor gave it; always "" for arrays and inline tables

	integer  int64
	floating float64
	boolean  bool
	datetime DateTime

	str      string
	strStyle StringStyle

	array       []*ArrayCell
	inlineTable []*InlineTableCell

	// closing trivia: whitespace/comments between the last element (or
	// the opening delimiter, for an empty container) and the closing
	// bracket/brace. Rendered immediately before it.
	arrayClosingWS       string
	inlineTableClosingWS string
}

// Kind reports which variant v holds.
func (v *Value) Kind() ValueKind { return v.kind }

// Raw returns the exact source text a scalar was parsed from, or the
// spelling its constructor gave it (canonical unless one was passed in).
// Arrays and inline tables have no raw form and return ""; they are
// rendered from their cells.
func (v *Value) Raw() string { return v.raw }

// Integer returns the decoded magnitude. Panics if Kind() != KindInteger.
func (v *Value) Integer() int64 {
	v.assertKind(KindInteger)
	return v.integer
}

// Float returns the decoded magnitude. Panics if Kind() != KindFloat.
func (v *Value) Float() float64 {
	v.assertKind(KindFloat)
	return v.floating
}

// Boolean returns the decoded value. Panics if Kind() != KindBoolean.
func (v *Value) Boolean() bool {
	v.assertKind(KindBoolean)
	return v.boolean
}

// DateTime returns the decoded timestamp. Panics if Kind() != KindDateTime.
func (v *Value) DateTime() DateTime {
	v.assertKind(KindDateTime)
	return v.datetime
}

// String returns the decoded code-point sequence. Panics if Kind() != KindString.
func (v *Value) String() string {
	v.assertKind(KindString)
	return v.str
}

// StringStyle returns the quoting style the string was written with.
// Panics if Kind() != KindString.
func (v *Value) StringStyle() StringStyle {
	v.assertKind(KindString)
	return v.strStyle
}

// Array returns the ordered cells of the array. Panics if Kind() != KindArray.
func (v *Value) Array() []*ArrayCell {
	v.assertKind(KindArray)
	return v.array
}

// InlineTable returns the ordered cells of the inline table. Panics if
// Kind() != KindInlineTable.
func (v *Value) InlineTable() []*InlineTableCell {
	v.assertKind(KindInlineTable)
	return v.inlineTable
}

func (v *Value) assertKind(k ValueKind) {
	if v.kind != k {
		panic(fmt.Errorf("value is a %s, not a %s", v.kind, k))
	}
}

// Equal reports whether two values hold the same decoded payload,
// ignoring raw-form/trivia differences. Containers compare element-wise.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindInteger:
		return v.integer == other.integer
	case KindFloat:
		return v.floating == other.floating
	case KindBoolean:
		return v.boolean == other.boolean
	case KindDateTime:
		return v.datetime == other.datetime
	case KindString:
		return v.str == other.str
	case KindArray:
		if len(v.array) != len(other.array) {
			return false
		}
		for i, c := range v.array {
			if !c.Value.Equal(other.array[i].Value) {
				return false
			}
		}
		return true
	case KindInlineTable:
		if len(v.inlineTable) != len(other.inlineTable) {
			return false
		}
		for i, c := range v.inlineTable {
			o := other.inlineTable[i]
			if c.Key.Text != o.Key.Text || !c.Value.Equal(o.Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// -- Value constructors (§6.5) --------------------------------------------

// NewInteger builds an integer Value. If raw is empty, a canonical decimal
// spelling of n is used.
func NewInteger(n int64, raw ...string) *Value {
	r := ""
	if len(raw) > 0 && raw[0] != "" {
		r = raw[0]
	} else {
		r = strconv.FormatInt(n, 10)
	}
	return &Value{kind: KindInteger, integer: n, raw: r}
}

// NewIntegerFromText validates and decodes raw as a TOML integer literal.
func NewIntegerFromText(raw string) (*Value, error) {
	n, err := literal.ParseInteger(raw)
	if err != nil {
		return nil, err
	}
	return &Value{kind: KindInteger, integer: n, raw: raw}, nil
}

// NewFloat builds a float Value. If raw is empty, a canonical spelling of
// f is used.
func NewFloat(f float64, raw ...string) *Value {
	r := ""
	if len(raw) > 0 && raw[0] != "" {
		r = raw[0]
	} else {
		r = canonicalFloat(f)
	}
	return &Value{kind: KindFloat, floating: f, raw: r}
}

// NewFloatFromText validates and decodes raw as a TOML float literal.
func NewFloatFromText(raw string) (*Value, error) {
	f, err := literal.ParseFloat(raw)
	if err != nil {
		return nil, err
	}
	return &Value{kind: KindFloat, floating: f, raw: raw}, nil
}

func canonicalFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// NewBoolean builds a boolean Value.
func NewBoolean(b bool) *Value {
	raw := "false"
	if b {
		raw = "true"
	}
	return &Value{kind: KindBoolean, boolean: b, raw: raw}
}

// NewDateTime builds a DateTime Value. If raw is empty, the canonical
// RFC 3339 spelling of dt is used.
func NewDateTime(dt DateTime, raw ...string) *Value {
	r := dt.String()
	if len(raw) > 0 && raw[0] != "" {
		r = raw[0]
	}
	return &Value{kind: KindDateTime, datetime: dt, raw: r}
}

// NewString builds a String value with the given decoded text and
// quoting style. If raw is empty, a canonical quoted spelling is
// synthesized for the requested style.
func NewString(text string, style StringStyle, raw ...string) *Value {
	r := ""
	if len(raw) > 0 && raw[0] != "" {
		r = raw[0]
	} else {
		r = quoteStringText(text, style)
	}
	return &Value{kind: KindString, str: text, strStyle: style, raw: r}
}

func quoteStringText(text string, style StringStyle) string {
	switch style {
	case Literal:
		return "'" + text + "'"
	case MultiLineLiteral:
		return "'''" + text + "'''"
	case MultiLineBasic:
		return `"""` + escapeBasic(text) + `"""`
	default:
		return `"` + escapeBasic(text) + `"`
	}
}

func escapeBasic(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NewArray builds an Array Value from cells, taking ownership of them.
func NewArray(cells []*ArrayCell) *Value {
	return &Value{kind: KindArray, array: cells}
}

// NewInlineTable builds an InlineTable Value from cells, taking ownership
// of them.
func NewInlineTable(cells []*InlineTableCell) *Value {
	return &Value{kind: KindInlineTable, inlineTable: cells}
}
