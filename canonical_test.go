package toml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalArrayCellsSpacing(t *testing.T) {
	t.Parallel()
	v := NewCanonicalArray([]*Value{NewInteger(1), NewInteger(2), NewInteger(3)})
	assert.Equal(t, "[1, 2, 3]", renderValue(v))
}

func TestCanonicalInlineTableCellsSpacing(t *testing.T) {
	t.Parallel()
	v := NewCanonicalInlineTable(
		[]Key{NewBareKey("a"), NewBareKey("b")},
		[]*Value{NewInteger(1), NewInteger(2)},
	)
	assert.Equal(t, "{ a = 1, b = 2 }", renderValue(v))
}

func TestNewCanonicalInlineTableFromTextQuotesAsNeeded(t *testing.T) {
	t.Parallel()
	v := NewCanonicalInlineTableFromText([]string{"a", "needs space"}, []*Value{NewInteger(1), NewInteger(2)})
	assert.Equal(t, `{ a = 1, "needs space" = 2 }`, renderValue(v))
}
