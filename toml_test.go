package toml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	toml "github.com/go-tomlkit/toml"
)

func TestParseResultKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Full", toml.ResultFull.String())
	assert.Equal(t, "FullError", toml.ResultFullError.String())
	assert.Equal(t, "Partial", toml.ResultPartial.String())
	assert.Equal(t, "PartialError", toml.ResultPartialError.String())
	assert.Equal(t, "Unknown", toml.ParseResultKind(99).String())
}

func TestPackageLevelParse(t *testing.T) {
	t.Parallel()
	p, result := toml.Parse("a = 1\n")
	require.Equal(t, toml.ResultFull, result.Kind())
	require.Empty(t, result.Errors())
	v, ok := p.GetValue("a")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.Integer())
}

func TestNewParserBeforeParse(t *testing.T) {
	t.Parallel()
	p := toml.New()
	assert.Nil(t, p.Document())
	_, ok := p.GetValue("a")
	assert.False(t, ok)
	_, ok = p.GetChildren("")
	assert.False(t, ok)
	assert.False(t, p.SetValue("a", toml.NewInteger(1)))
	assert.Equal(t, "", p.Serialize())
}

func TestParseReplacesPreviousDocument(t *testing.T) {
	t.Parallel()
	p := toml.New()
	p.Parse("a = 1\n")
	p.Parse("b = 2\n")
	_, ok := p.GetValue("a")
	assert.False(t, ok)
	v, ok := p.GetValue("b")
	require.True(t, ok)
	assert.Equal(t, int64(2), v.Integer())
}

func TestTaggedDocument(t *testing.T) {
	t.Parallel()
	p, result := toml.Parse("name = \"Tom\"\nage = 30\n")
	require.Empty(t, result.Errors())
	tagged := toml.TaggedDocument(p.Document())
	name, ok := tagged["name"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "string", name["type"])
	assert.Equal(t, "Tom", name["value"])
}
