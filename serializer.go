package toml

import "strings"

// Serialize renders doc back to TOML text. For a document that was parsed
// and never mutated, the result is byte-identical to the original input
// (§8 property 1): every expression carries its own exact leading trivia,
// punctuation and terminator, so rendering is pure concatenation.
func Serialize(doc *Document) string {
	var b strings.Builder
	for i := range doc.Expressions {
		b.WriteString(doc.Expressions[i].render())
	}
	return b.String()
}

// String implements fmt.Stringer, rendering the document via Serialize.
func (d *Document) String() string {
	return Serialize(d)
}
