package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/ghostedit/internal/domain/value"
)

func TestValueMapOrderAndMutation(t *testing.T) {
	m := NewValueMap()
	m.Set("a", false, []value.Value{value.Number{N: 1}}, nil)
	m.Set("b", false, []value.Value{value.Number{N: 2}}, []string{"too small"})
	m.Set("a", false, []value.Value{value.Number{N: 3}}, nil)

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	e, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, value.Number{N: 3}, e.Value())
	assert.Equal(t, []string{"b"}, m.Flagged())

	m.Set("a", false, nil, nil)
	assert.False(t, m.Has("a"))
	assert.Equal(t, []string{"b"}, m.Keys())

	assert.True(t, m.Delete("b"))
	assert.False(t, m.Delete("b"))
	assert.Zero(t, m.Len())
}

func TestValueMapAppend(t *testing.T) {
	m := NewValueMap()
	m.Append("env", value.TextItem{S: "A=1"}, nil)
	m.Append("env", value.TextItem{S: ""}, nil)

	e, ok := m.Get("env")
	require.True(t, ok)
	assert.True(t, e.Repeatable)
	assert.Equal(t, []string{"A=1", ""}, e.Raw())
}

func TestValueMapCloneIsIndependent(t *testing.T) {
	m := NewValueMap()
	m.Append("env", value.TextItem{S: "A=1"}, nil)

	c := m.Clone()
	c.Append("env", value.TextItem{S: "B=2"}, nil)
	c.Set("title", false, []value.Value{value.Text{S: "x"}}, nil)

	e, _ := m.Get("env")
	assert.Len(t, e.Values, 1)
	assert.False(t, m.Has("title"))

	got, _ := m.Get("env")
	got.Values[0] = value.TextItem{S: "changed"}
	e, _ = m.Get("env")
	assert.Equal(t, value.TextItem{S: "A=1"}, e.Values[0])
}

func TestLineIndex(t *testing.T) {
	doc := parse("font-size = 1\nkeybind = ctrl+a=select_all\n# c\nkeybind = ctrl+b=x\nbad = 1\n")
	assert.Equal(t, []string{"font-size", "keybind"}, doc.Index.Keys())

	first, ok := doc.Index.First("keybind")
	require.True(t, ok)
	assert.Equal(t, 1, first)
	last, _ := doc.Index.Last("keybind")
	assert.Equal(t, 3, last)

	_, ok = doc.Index.First("bad")
	assert.False(t, ok)
}
