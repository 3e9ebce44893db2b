// Tagged-JSON rendering used by the conformance test harness
// (testsuite/testsuite.go), in the encoding the BurntSushi/toml-test
// suite expects: every scalar wrapped as {"type": "...", "value": "..."},
// tables and arrays left as plain JSON objects/arrays.

package toml

import "strconv"

// TaggedDocument converts doc into the tagged-JSON shape toml-test reads.
func TaggedDocument(doc *Document) map[string]interface{} {
	return taggedTable(buildIndex(doc))
}

func taggedTable(n *locatedNode) map[string]interface{} {
	out := make(map[string]interface{}, len(n.order))
	for _, name := range n.order {
		e := n.children[name]
		switch e.kind {
		case childTable:
			out[name] = taggedTable(e.table)
		case childArray:
			arr := make([]interface{}, len(e.array))
			for i, elem := range e.array {
				arr[i] = taggedTable(elem)
			}
			out[name] = arr
		default:
			out[name] = taggedValue(e.leaf.Value)
		}
	}
	return out
}

func taggedValue(v *Value) interface{} {
	switch v.Kind() {
	case KindString:
		return tagged("string", v.String())
	case KindInteger:
		return tagged("integer", strconv.FormatInt(v.Integer(), 10))
	case KindFloat:
		return tagged("float", taggedFloat(v.Float()))
	case KindBoolean:
		return tagged("bool", strconv.FormatBool(v.Boolean()))
	case KindDateTime:
		return taggedDateTime(v.DateTime())
	case KindArray:
		cells := v.Array()
		arr := make([]interface{}, len(cells))
		for i, c := range cells {
			arr[i] = taggedValue(c.Value)
		}
		return arr
	default:
		out := map[string]interface{}{}
		for _, c := range v.InlineTable() {
			out[c.Key.Text] = taggedValue(c.Value)
		}
		return out
	}
}

func taggedDateTime(dt DateTime) map[string]interface{} {
	switch dt.Kind {
	case OffsetDateTimeKind:
		return tagged("datetime", dt.String())
	case LocalDateTimeKind:
		return tagged("datetime-local", dt.String())
	case LocalDateKind:
		return tagged("date-local", dt.String())
	default:
		return tagged("time-local", dt.String())
	}
}

func taggedFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func tagged(typ, value string) map[string]interface{} {
	return map[string]interface{}{"type": typ, "value": value}
}
