package toml

import "strings"

// Comment is a trailing or standalone "# ..." comment, excluding its line
// terminator.
type Comment struct {
	Raw string // exact text from '#' to end of line, terminator excluded
}

// TableHeaderKind distinguishes a standard table header from an
// array-of-tables header.
type TableHeaderKind int

const (
	StdTableHeader TableHeaderKind = iota
	ArrayTableHeader
)

// TableHeader is a `[a.b]` or `[[a.b]]` line.
type TableHeader struct {
	LeadingWS    string
	Kind         TableHeaderKind
	InnerLeadWS  string // whitespace just inside the opening bracket(s)
	Path         DottedKey
	InnerTrailWS string // whitespace just inside the closing bracket(s); the parser leaves it "" because the last Path fragment's TrailWS holds that whitespace
	TrailingWS   string // whitespace between the closing bracket(s) and a comment
	Comment      *Comment
	Terminator   string // "\n", "\r\n", or "" at EOF
}

// KeyValueLine is a `key = value` line, either at document root or inside
// a table body.
type KeyValueLine struct {
	LeadingWS   string
	Key         DottedKey
	BeforeEqual string
	AfterEqual  string
	Value       *Value
	TrailingWS  string
	Comment     *Comment
	Terminator  string
}

// BlankLine is a blank or comment-only line that carries no key/value.
type BlankLine struct {
	LeadingWS  string
	Comment    *Comment
	Terminator string
}

// RawLine is a line the parser could not recognize as any of the other
// expression kinds. Its exact text is kept so the document still
// round-trips; resynchronization resumes at the next line (§7).
type RawLine struct {
	Text       string
	Terminator string
}

// ExprKind tags the variant held by an Expression.
type ExprKind int

const (
	ExprBlank ExprKind = iota
	ExprKeyValue
	ExprStdTable
	ExprArrayTable
	ExprRaw
)

// Expression is exactly one of the top-level expression kinds described
// in §3.2, plus the RawLine fallback used during error recovery (§7).
type Expression struct {
	Kind     ExprKind
	Blank    *BlankLine
	KeyValue *KeyValueLine
	Header   *TableHeader
	Raw      *RawLine
}

// Document is the ordered sequence of top-level expressions that make up
// a parsed TOML source. It is the sole source of truth for serialization:
// rendering every expression in order and concatenating their trivia
// reproduces the original bytes exactly for an unmodified document.
type Document struct {
	Expressions []Expression
}

func (c *Comment) render() string {
	if c == nil {
		return ""
	}
	return c.Raw
}

func (b *BlankLine) render() string {
	var s strings.Builder
	s.WriteString(b.LeadingWS)
	s.WriteString(b.Comment.render())
	s.WriteString(b.Terminator)
	return s.String()
}

func (h *TableHeader) render() string {
	var s strings.Builder
	s.WriteString(h.LeadingWS)
	if h.Kind == ArrayTableHeader {
		s.WriteString("[[")
	} else {
		s.WriteByte('[')
	}
	s.WriteString(h.InnerLeadWS)
	s.WriteString(h.Path.raw())
	s.WriteString(h.InnerTrailWS)
	if h.Kind == ArrayTableHeader {
		s.WriteString("]]")
	} else {
		s.WriteByte(']')
	}
	s.WriteString(h.TrailingWS)
	s.WriteString(h.Comment.render())
	s.WriteString(h.Terminator)
	return s.String()
}

func (kv *KeyValueLine) render() string {
	var s strings.Builder
	s.WriteString(kv.LeadingWS)
	s.WriteString(kv.Key.raw())
	s.WriteString(kv.BeforeEqual)
	s.WriteByte('=')
	s.WriteString(kv.AfterEqual)
	s.WriteString(renderValue(kv.Value))
	s.WriteString(kv.TrailingWS)
	s.WriteString(kv.Comment.render())
	s.WriteString(kv.Terminator)
	return s.String()
}

func renderValue(v *Value) string {
	switch v.Kind() {
	case KindArray:
		return renderArray(v)
	case KindInlineTable:
		return renderInlineTable(v)
	default:
		return v.Raw()
	}
}

func renderArray(v *Value) string {
	var s strings.Builder
	s.WriteByte('[')
	for _, cell := range v.Array() {
		s.WriteString(cell.Prefix)
		s.WriteString(renderValue(cell.Value))
		s.WriteString(cell.Suffix)
		if cell.Comma {
			s.WriteByte(',')
		}
	}
	s.WriteString(v.arrayClosingWS)
	s.WriteByte(']')
	return s.String()
}

func renderInlineTable(v *Value) string {
	var s strings.Builder
	s.WriteByte('{')
	for _, cell := range v.InlineTable() {
		s.WriteString(cell.Prefix)
		s.WriteString(cell.Key.Raw)
		s.WriteString(cell.BetweenKeyEqual)
		s.WriteByte('=')
		s.WriteString(cell.BetweenEqualValue)
		s.WriteString(renderValue(cell.Value))
		s.WriteString(cell.Suffix)
		if cell.Comma {
			s.WriteByte(',')
		}
	}
	s.WriteString(v.inlineTableClosingWS)
	s.WriteByte('}')
	return s.String()
}

func (e *Expression) render() string {
	switch e.Kind {
	case ExprBlank:
		return e.Blank.render()
	case ExprKeyValue:
		return e.KeyValue.render()
	case ExprRaw:
		return e.Raw.Text + e.Raw.Terminator
	default:
		return e.Header.render()
	}
}
