// FILE: lixenwraith/hhopts/value.go
package hhopts

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	// KindInvalid is the zero Value, produced only on decode failure
	KindInvalid ValueKind = iota
	KindString
	KindInt
	KindList
	KindMap
)

// String returns the lower-case name of the kind.
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "invalid"
	}
}

// Value is a decoded configuration value: a string, an integer,
// a list of strings, or a map of strings to strings.
type Value struct {
	kind ValueKind
	str  string
	num  int
	list []string
	m    map[string]string
}

// StringValue wraps s.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// IntValue wraps i.
func IntValue(i int) Value {
	return Value{kind: KindInt, num: i}
}

// ListValue wraps items. A nil slice is stored as an empty list.
func ListValue(items []string) Value {
	if items == nil {
		items = []string{}
	}
	return Value{kind: KindList, list: items}
}

// MapValue wraps m. A nil map is stored as an empty map.
func MapValue(m map[string]string) Value {
	if m == nil {
		m = map[string]string{}
	}
	return Value{kind: KindMap, m: m}
}

// Kind returns the variant tag.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsValid reports whether v holds a decoded value.
func (v Value) IsValid() bool {
	return v.kind != KindInvalid
}

// Str returns the string variant.
func (v Value) Str() (string, bool) {
	return v.str, v.kind == KindString
}

// Int returns the integer variant.
func (v Value) Int() (int, bool) {
	return v.num, v.kind == KindInt
}

// List returns a copy of the list variant.
func (v Value) List() ([]string, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return append([]string(nil), v.list...), true
}

// Map returns a copy of the map variant.
func (v Value) Map() (map[string]string, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	m := make(map[string]string, len(v.m))
	for k, val := range v.m {
		m[k] = val
	}
	return m, true
}

// Any returns the value as a plain Go value: string, int, []string or
// map[string]string. The zero Value yields nil.
func (v Value) Any() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.num
	case KindList:
		list, _ := v.List()
		return list
	case KindMap:
		m, _ := v.Map()
		return m
	default:
		return nil
	}
}

// Equal reports whether v and other hold the same variant and contents.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	return reflect.DeepEqual(v.Any(), other.Any())
}

// String renders the value for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return fmt.Sprintf("%d", v.num)
	case KindList:
		return "[" + strings.Join(v.list, ",") + "]"
	case KindMap:
		keys := make([]string, 0, len(v.m))
		for k := range v.m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, k+":"+v.m[k])
		}
		return "{" + strings.Join(pairs, ",") + "}"
	default:
		return "<invalid>"
	}
}

// MarshalJSON encodes the value as a JSON string, number, array or object.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindInvalid {
		return nil, fmt.Errorf("cannot marshal invalid value")
	}
	return json.Marshal(v.Any())
}

// Scan decodes the value into target, which must be a non-nil pointer.
// Weak typing is enabled, so an integer value scans into a string field and a
// numeric string scans into an int. Map values scan into structs using the
// "toml" tag.
func (v Value) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}
	if v.kind == KindInvalid {
		return fmt.Errorf("cannot scan invalid value into %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(v.Any()); err != nil {
		return fmt.Errorf("scan %s value into %T failed: %w", v.kind, target, err)
	}
	return nil
}
