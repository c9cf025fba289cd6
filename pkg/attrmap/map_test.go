package attrmap_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/mongosession/pkg/attrmap"
)

type sym = attrmap.Symbol

func newFixture() *attrmap.Map {
	return attrmap.From(map[any]any{
		sym("fred"): 10,
		sym("blee"): "duh",
		"crap":      20,
	})
}

func TestMap_IndifferentAccess(t *testing.T) {
	t.Parallel()

	m := newFixture()

	t.Run("symbol keys", func(t *testing.T) {
		assert.Equal(t, 10, m.Value(sym("fred")))
		assert.Equal(t, "duh", m.Value(sym("blee")))
	})

	t.Run("string keys", func(t *testing.T) {
		assert.Equal(t, 10, m.Value("fred"))
		assert.Equal(t, 20, m.Value(sym("crap")))
		assert.Equal(t, m.Fetch(sym("crap"), nil), m.Fetch("crap", nil))
	})

	t.Run("missing key", func(t *testing.T) {
		assert.Nil(t, m.Value(sym("zob")))
		v, ok := m.Get("zob")
		assert.False(t, ok)
		assert.Nil(t, v)
		assert.Equal(t, "fallback", m.Fetch("zob", "fallback"))
	})

	t.Run("values at", func(t *testing.T) {
		assert.Equal(t, []any{10, "duh"}, m.ValuesAt(sym("fred"), sym("blee")))
		assert.Equal(t, []any{10, "duh"}, m.ValuesAt("fred", "blee"))
		assert.Equal(t, []any{10, "duh"}, m.ValuesAt(sym("fred"), "blee"))
		assert.Equal(t, []any{nil}, m.ValuesAt("nope"))
	})

	t.Run("membership", func(t *testing.T) {
		assert.True(t, m.Has("fred"))
		assert.True(t, m.Has(sym("crap")))
		assert.False(t, m.Has("zob"))
	})

	t.Run("canonical keys", func(t *testing.T) {
		assert.Equal(t, []string{"blee", "crap", "fred"}, m.Keys())
	})
}

func TestMap_SetThenReadOtherForm(t *testing.T) {
	t.Parallel()

	values := []any{
		"text",
		42,
		map[string]any{"inner": 1},
		[]any{map[sym]any{"a": 1}, "b"},
	}

	for _, v := range values {
		m := attrmap.New()
		m.Set(sym("k"), v)
		assert.True(t, attrmap.ValuesEqual(v, m.Value("k")))

		m2 := attrmap.New()
		m2.Set("k", v)
		assert.True(t, attrmap.ValuesEqual(v, m2.Value(sym("k"))))
	}
}

func TestMap_NestedConversion(t *testing.T) {
	t.Parallel()

	m := newFixture()
	m.Set(sym("blee"), map[any]any{"bobo": 10, sym("ema"): "Hello"})

	sub, ok := m.Value(sym("blee")).(*attrmap.Map)
	require.True(t, ok)
	assert.Equal(t, 10, sub.Value(sym("bobo")))
	assert.Equal(t, "Hello", sub.Value("ema"))

	m.Set("list", []map[string]any{{"x": 1}})
	list, ok := m.Value("list").([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
	elem, ok := list[0].(*attrmap.Map)
	require.True(t, ok)
	assert.Equal(t, 1, elem.Value(sym("x")))

	m.Set("tags", []string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, m.Value("tags"))
}

func TestMap_Delete(t *testing.T) {
	t.Parallel()

	m := newFixture()
	assert.Equal(t, 10, m.Delete("fred"))
	assert.False(t, m.Has(sym("fred")))
	assert.Equal(t, 20, m.Delete(sym("crap")))
	assert.Nil(t, m.Delete("missing"))
	assert.Equal(t, 1, m.Len())
}

func TestMap_UpdateAndMerge(t *testing.T) {
	t.Parallel()

	a := attrmap.New()
	a.Set("key", "value")

	b := attrmap.New()
	b.Set(sym("key"), "New Value!")
	b.Set("other", 1)

	merged := a.Merge(b)
	assert.Equal(t, "value", a.Value("key"), "merge must not modify the receiver")
	assert.Equal(t, "New Value!", merged.Value("key"))
	assert.Equal(t, 1, merged.Value("other"))

	a.Update(map[sym]any{"key": "updated"})
	assert.Equal(t, "updated", a.Value("key"))
	assert.Equal(t, 1, a.Len())
}

func TestMap_Duplicate(t *testing.T) {
	t.Parallel()

	orig := attrmap.New()
	orig.Set("n", 1)
	orig.Set("nested", map[string]any{"deep": "x"})
	orig.Set("list", []any{map[string]any{"i": 1}})

	dup := orig.Duplicate()
	assert.True(t, dup.Equal(orig))

	dup.Set("n", 2)
	dup.Value("nested").(*attrmap.Map).Set("deep", "changed")
	dup.Value("list").([]any)[0].(*attrmap.Map).Set("i", 99)
	dup.Set("added", true)

	assert.Equal(t, 1, orig.Value("n"))
	assert.Equal(t, "x", orig.Value("nested").(*attrmap.Map).Value("deep"))
	assert.Equal(t, 1, orig.Value("list").([]any)[0].(*attrmap.Map).Value("i"))
	assert.False(t, orig.Has("added"))

	orig.Set("n", 3)
	assert.Equal(t, 2, dup.Value("n"))
}

func TestMap_DuplicateTypedSequences(t *testing.T) {
	t.Parallel()

	orig := attrmap.From(map[string]any{
		"tags":  []string{"a", "b"},
		"ids":   []int{1, 2},
		"raw":   []byte("xy"),
		"grid":  [][]int{{1}, {2}},
		"fixed": [2]string{"l", "r"},
	})
	dup := orig.Duplicate()
	require.True(t, dup.Equal(orig))

	dup.Value("tags").([]string)[0] = "z"
	dup.Value("ids").([]int)[1] = 9
	dup.Value("raw").([]byte)[0] = 'q'
	dup.Value("grid").([][]int)[0][0] = 7

	assert.Equal(t, []string{"a", "b"}, orig.Value("tags"))
	assert.Equal(t, []int{1, 2}, orig.Value("ids"))
	assert.Equal(t, []byte("xy"), orig.Value("raw"))
	assert.Equal(t, [][]int{{1}, {2}}, orig.Value("grid"))
	assert.Equal(t, [2]string{"l", "r"}, dup.Value("fixed"))
	assert.False(t, dup.Equal(orig))

	var empty []string
	nilSlice := attrmap.From(map[string]any{"tags": empty}).Duplicate()
	assert.Nil(t, nilSlice.Value("tags"))
}

func TestMap_MergeKeepsTypedSliceEdit(t *testing.T) {
	t.Parallel()

	base := attrmap.From(map[string]any{"n": []int{1}})
	cur := base.Duplicate()
	cur.Value("n").([]int)[0] = 2

	merged := base.Merge(cur)
	assert.Equal(t, []int{2}, merged.Value("n"))
	assert.Equal(t, []int{1}, base.Value("n"))
}

func TestMap_Equal(t *testing.T) {
	t.Parallel()

	m := attrmap.New()
	m.Set(sym("a"), 1)
	m.Set("b", map[sym]any{"c": "d"})

	assert.True(t, m.Equal(map[string]any{"a": 1, "b": map[string]any{"c": "d"}}))
	assert.True(t, m.Equal(map[sym]any{"a": 1, "b": map[sym]any{"c": "d"}}))
	assert.False(t, m.Equal(map[string]any{"a": 2, "b": map[string]any{"c": "d"}}))
	assert.False(t, m.Equal(map[string]any{"a": 1}))
	assert.False(t, m.Equal("not a map"))
	assert.True(t, attrmap.New().Equal(map[string]any{}))
}

func TestMap_ToPlainMap(t *testing.T) {
	t.Parallel()

	m := attrmap.New()
	m.Set(sym("user"), map[sym]any{"name": "bob"})
	m.Set("items", []any{map[string]any{"id": 1}, 2})

	plain := m.ToPlainMap()
	assert.Equal(t, map[string]any{
		"user":  map[string]any{"name": "bob"},
		"items": []any{map[string]any{"id": 1}, 2},
	}, plain)
}

func TestMap_ZeroValue(t *testing.T) {
	t.Parallel()

	var m attrmap.Map
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Value("x"))
	m.Set("x", 1)
	assert.Equal(t, 1, m.Value("x"))

	var nilMap *attrmap.Map
	assert.Nil(t, nilMap.Value("x"))
	assert.Equal(t, 0, nilMap.Len())
	assert.Equal(t, map[string]any{}, nilMap.ToPlainMap())
}

func TestMap_All(t *testing.T) {
	t.Parallel()

	m := attrmap.From(map[string]any{"b": 2, "a": 1})
	var keys []string
	for k := range m.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestMap_JSON(t *testing.T) {
	t.Parallel()

	m := attrmap.New()
	m.Set(sym("counter"), 1)
	m.Set("nested", map[string]any{"k": "v"})

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"counter":1,"nested":{"k":"v"}}`, string(data))

	decoded := attrmap.New()
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.Equal(t, float64(1), decoded.Value(sym("counter")))
	assert.Equal(t, "v", decoded.Value("nested").(*attrmap.Map).Value(sym("k")))
}

func TestMap_YAML(t *testing.T) {
	t.Parallel()

	m := attrmap.New()
	m.Set(sym("counter"), 1)
	m.Set("nested", map[string]any{"k": "v"})

	data, err := yaml.Marshal(m)
	require.NoError(t, err)

	decoded := attrmap.New()
	require.NoError(t, yaml.Unmarshal(data, decoded))
	assert.True(t, decoded.Equal(m))
	assert.Equal(t, 1, decoded.Value("counter"))
}

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	type named string

	tests := []struct {
		name string
		key  any
		want string
	}{
		{name: "string", key: "a", want: "a"},
		{name: "symbol", key: sym("a"), want: "a"},
		{name: "named string", key: named("a"), want: "a"},
		{name: "int", key: 7, want: "7"},
		{name: "nil", key: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, attrmap.NormalizeKey(tt.key))
		})
	}
}

func TestIsMapShaped(t *testing.T) {
	t.Parallel()

	var nilMap *attrmap.Map
	assert.True(t, attrmap.IsMapShaped(attrmap.New()))
	assert.True(t, attrmap.IsMapShaped(map[string]any{}))
	assert.True(t, attrmap.IsMapShaped(map[int]string{}))
	assert.False(t, attrmap.IsMapShaped(nilMap))
	assert.False(t, attrmap.IsMapShaped(nil))
	assert.False(t, attrmap.IsMapShaped([]any{}))
	assert.False(t, attrmap.IsMapShaped("BumbleBeeTuna"))
}
