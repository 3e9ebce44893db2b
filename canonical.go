// Canonical minimal formatting for containers synthesized from scratch,
// used when SetValue replaces a value with an array/inline-table that
// has no shape in common with what it is replacing (§4.D).

package toml

// CanonicalArrayCells builds the cells of a freshly synthesized array
// with the conventional "[v1, v2, v3]" spacing: no leading/trailing
// space inside the brackets, ", " between elements.
func CanonicalArrayCells(values []*Value) []*ArrayCell {
	cells := make([]*ArrayCell, len(values))
	for i, v := range values {
		cells[i] = &ArrayCell{Value: v, Comma: i < len(values)-1}
		if i > 0 {
			cells[i].Prefix = " "
		}
	}
	return cells
}

// CanonicalInlineTableCells builds the cells of a freshly synthesized
// inline table with the conventional "{ k1 = v1, k2 = v2 }" spacing. The
// space before the closing brace is not part of any cell;
// NewCanonicalInlineTable adds it.
func CanonicalInlineTableCells(keys []Key, values []*Value) []*InlineTableCell {
	n := len(keys)
	if len(values) < n {
		n = len(values)
	}
	cells := make([]*InlineTableCell, n)
	for i := 0; i < n; i++ {
		cells[i] = &InlineTableCell{
			Prefix: " ", Key: keys[i], BetweenKeyEqual: " ", BetweenEqualValue: " ",
			Value: values[i], Comma: i < n-1,
		}
	}
	return cells
}

// NewCanonicalArray builds an Array Value from bare decoded values using
// CanonicalArrayCells.
func NewCanonicalArray(values []*Value) *Value {
	return NewArray(CanonicalArrayCells(values))
}

// NewCanonicalInlineTable builds an InlineTable Value from parallel key
// and value slices using CanonicalInlineTableCells.
func NewCanonicalInlineTable(keys []Key, values []*Value) *Value {
	v := NewInlineTable(CanonicalInlineTableCells(keys, values))
	if len(v.inlineTable) > 0 {
		v.inlineTableClosingWS = " "
	}
	return v
}

// NewCanonicalInlineTableFromText is NewCanonicalInlineTable for callers
// that only have plain key names, not pre-built Key values; each name is
// quoted per simpleDottedKey's rules if it isn't a valid bare key.
func NewCanonicalInlineTableFromText(names []string, values []*Value) *Value {
	dotted := simpleDottedKey(names)
	keys := make([]Key, len(dotted))
	for i, f := range dotted {
		keys[i] = f.Key
	}
	return NewCanonicalInlineTable(keys, values)
}
