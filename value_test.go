// FILE: lixenwraith/hhopts/value_test.go
package hhopts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueVariants(t *testing.T) {
	s := StringValue("x")
	i := IntValue(3)
	l := ListValue([]string{"a", "b"})
	m := MapValue(map[string]string{"k": "v"})

	assert.Equal(t, KindString, s.Kind())
	assert.Equal(t, KindInt, i.Kind())
	assert.Equal(t, KindList, l.Kind())
	assert.Equal(t, KindMap, m.Kind())

	// Accessors only succeed for their own variant
	_, ok := s.Int()
	assert.False(t, ok)
	_, ok = i.Str()
	assert.False(t, ok)
	_, ok = l.Map()
	assert.False(t, ok)
	_, ok = m.List()
	assert.False(t, ok)

	assert.Equal(t, "x", s.Any())
	assert.Equal(t, 3, i.Any())
	assert.Equal(t, []string{"a", "b"}, l.Any())
	assert.Equal(t, map[string]string{"k": "v"}, m.Any())

	var zero Value
	assert.False(t, zero.IsValid())
	assert.Nil(t, zero.Any())
	assert.Equal(t, "invalid", zero.Kind().String())
}

func TestValueAccessorsCopy(t *testing.T) {
	l := ListValue([]string{"a"})
	list, _ := l.List()
	list[0] = "changed"
	again, _ := l.List()
	assert.Equal(t, []string{"a"}, again)

	m := MapValue(map[string]string{"k": "v"})
	got, _ := m.Map()
	got["k"] = "changed"
	again2, _ := m.Map()
	assert.Equal(t, "v", again2["k"])
}

func TestValueEqual(t *testing.T) {
	assert.True(t, StringValue("1").Equal(StringValue("1")))
	assert.False(t, StringValue("1").Equal(IntValue(1)))
	assert.True(t, ListValue(nil).Equal(ListValue([]string{})))
	assert.True(t, MapValue(map[string]string{"a": "1", "b": "2"}).Equal(MapValue(map[string]string{"b": "2", "a": "1"})))
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "x", StringValue("x").String())
	assert.Equal(t, "-4", IntValue(-4).String())
	assert.Equal(t, "[a,b]", ListValue([]string{"a", "b"}).String())
	assert.Equal(t, "{a:1,b:2}", MapValue(map[string]string{"b": "2", "a": "1"}).String())
}

func TestValueMarshalJSON(t *testing.T) {
	doc := map[string]Value{
		"s": StringValue("true"),
		"i": IntValue(1),
		"l": ListValue([]string{""}),
		"m": MapValue(map[string]string{"/a": "/x"}),
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"s":"true","i":1,"l":[""],"m":{"/a":"/x"}}`, string(data))

	_, err = json.Marshal(Value{})
	assert.Error(t, err)
}

func TestValueScan(t *testing.T) {
	t.Run("IntFromString", func(t *testing.T) {
		var port int
		require.NoError(t, StringValue("8080").Scan(&port))
		assert.Equal(t, 8080, port)
	})

	t.Run("IntToString", func(t *testing.T) {
		var s string
		require.NoError(t, IntValue(7).Scan(&s))
		assert.Equal(t, "7", s)
	})

	t.Run("ListToSlice", func(t *testing.T) {
		var fns []string
		require.NoError(t, ListValue([]string{"f", "g"}).Scan(&fns))
		assert.Equal(t, []string{"f", "g"}, fns)
	})

	t.Run("MapToStruct", func(t *testing.T) {
		type Roots struct {
			A string `toml:"/a"`
			B string `toml:"/b"`
		}
		var roots Roots
		require.NoError(t, MapValue(map[string]string{"/a": "/x", "/b": "/y"}).Scan(&roots))
		assert.Equal(t, Roots{A: "/x", B: "/y"}, roots)
	})

	t.Run("InvalidTarget", func(t *testing.T) {
		var i int
		assert.Error(t, IntValue(1).Scan(i))
		assert.Error(t, Value{}.Scan(&i))
	})

	t.Run("Unconvertible", func(t *testing.T) {
		var i int
		assert.Error(t, StringValue("abc").Scan(&i))
	})
}
