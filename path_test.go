package toml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	t.Parallel()
	examples := []struct {
		desc string
		path string
		want []pathSegment
	}{
		{desc: "single key", path: "a", want: []pathSegment{{kind: segKey, key: "a"}}},
		{desc: "dotted", path: "a.b.c", want: []pathSegment{
			{kind: segKey, key: "a"}, {kind: segKey, key: "b"}, {kind: segKey, key: "c"},
		}},
		{desc: "index", path: "a[2]", want: []pathSegment{
			{kind: segKey, key: "a"}, {kind: segIndex, index: 2},
		}},
		{desc: "quoted segment", path: `a."b c"`, want: []pathSegment{
			{kind: segKey, key: "a"}, {kind: segKey, key: "b c"},
		}},
	}
	for _, ex := range examples {
		ex := ex
		t.Run(ex.desc, func(t *testing.T) {
			t.Parallel()
			got, err := parsePath(ex.path)
			require.NoError(t, err)
			assert.Equal(t, ex.want, got)
		})
	}
}

func TestParsePathInvalid(t *testing.T) {
	t.Parallel()
	_, err := parsePath("a[x]")
	assert.Error(t, err)
}

// Query stability (§8 property 2): repeated GetValue calls between
// mutations return equal results.
func TestQueryStability(t *testing.T) {
	t.Parallel()
	p, _ := Parse("[t]\nk = 1\n")
	v1, ok1 := p.GetValue("t.k")
	v2, ok2 := p.GetValue("t.k")
	require.True(t, ok1)
	require.True(t, ok2)
	assert.True(t, v1.Equal(v2))
}

// Mutation locality (§8 property 3): setting one path leaves every other
// path's value unchanged.
func TestMutationLocality(t *testing.T) {
	t.Parallel()
	p, _ := Parse("[t]\na = 1\nb = 2\nc = 3\n")
	before, ok := p.GetValue("t.c")
	require.True(t, ok)

	require.True(t, p.SetValue("t.a", NewInteger(100)))

	reparsed, result := Parse(p.Serialize())
	require.Empty(t, result.Errors())

	gotA, ok := reparsed.GetValue("t.a")
	require.True(t, ok)
	assert.Equal(t, int64(100), gotA.Integer())

	gotC, ok := reparsed.GetValue("t.c")
	require.True(t, ok)
	assert.True(t, before.Equal(gotC))
}

func TestSetValueNotFound(t *testing.T) {
	t.Parallel()
	p, _ := Parse("a = 1\n")
	assert.False(t, p.SetValue("missing", NewInteger(1)))
	assert.Equal(t, "a = 1\n", p.Serialize())
}

func TestSetValueSameShapeArrayGraftsTrivia(t *testing.T) {
	t.Parallel()
	p, _ := Parse("a = [1, 2, 3] # keep me\n")
	newArr := NewCanonicalArray([]*Value{NewInteger(10), NewInteger(20), NewInteger(30)})
	require.True(t, p.SetValue("a", newArr))
	assert.Equal(t, "a = [10, 20, 30] # keep me\n", p.Serialize())
}

func TestSetValueDifferentShapeUsesCanonicalForm(t *testing.T) {
	t.Parallel()
	p, _ := Parse("a = [1, 2, 3]\n")
	require.True(t, p.SetValue("a", NewCanonicalArray([]*Value{NewInteger(1)})))
	assert.Equal(t, "a = [1]\n", p.Serialize())
}

// Order preservation (§8 property 5).
func TestGetChildrenOrderPreservation(t *testing.T) {
	t.Parallel()
	p, _ := Parse("z = 1\na = 2\nm = 3\n")
	children, ok := p.GetChildren("")
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, children)
}

func TestGetChildrenOfArray(t *testing.T) {
	t.Parallel()
	p, _ := Parse("a = [1, 2, 3]\n")
	children, ok := p.GetChildren("a")
	require.True(t, ok)
	assert.Equal(t, []string{"[0]", "[1]", "[2]"}, children)
}
