package toml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrorString(t *testing.T) {
	t.Parallel()
	err := newParseError(DuplicateKey, "a.b", Position{Line: 3, Col: 5})
	assert.Equal(t, "DuplicateKey: a.b at line 3, column 5", err.Error())
}

func TestParseErrorStringNoKey(t *testing.T) {
	t.Parallel()
	err := newParseError(UnparseableLine, "", Position{Line: 1, Col: 1})
	assert.Equal(t, "UnparseableLine at line 1, column 1", err.Error())
}

func TestErrorKindStringUnknown(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Unknown", ErrorKind(999).String())
}

func TestParseErrorHighlight(t *testing.T) {
	t.Parallel()
	doc := "a = 1\nb = [5, true]\nc = 3\n"
	_, result := Parse(doc)
	require.Len(t, result.Errors(), 1)
	out := result.Errors()[0].Highlight(doc)
	assert.Contains(t, out, "b = [5, true]")
	assert.Contains(t, out, "^")
	assert.Contains(t, out, "MixedArray")
}
