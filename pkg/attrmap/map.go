package attrmap

import (
	"iter"
	"maps"
	"slices"
)

// Symbol is the symbolic key form. Symbol("a") and "a" address the same entry.
type Symbol string

// String returns the canonical key form.
func (s Symbol) String() string {
	return string(s)
}

// Map is a mapping with canonical string keys.
// The zero value is an empty map ready to use.
type Map struct {
	values map[string]any
}

// New creates an empty Map.
func New() *Map {
	return &Map{values: make(map[string]any)}
}

// From creates a Map from any mapping value: *Map, map[string]any,
// map[Symbol]any or any other map kind. Nested values are converted.
// Non-map input yields an empty Map.
func From(src any) *Map {
	m := New()
	m.Update(src)
	return m
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.values)
}

// Get returns the value stored under key and whether it exists.
func (m *Map) Get(key any) (any, bool) {
	if m == nil || m.values == nil {
		return nil, false
	}
	v, ok := m.values[NormalizeKey(key)]
	return v, ok
}

// Value returns the value stored under key, or nil when absent.
func (m *Map) Value(key any) any {
	v, _ := m.Get(key)
	return v
}

// Fetch returns the value stored under key, or fallback when absent.
func (m *Map) Fetch(key, fallback any) any {
	if v, ok := m.Get(key); ok {
		return v
	}
	return fallback
}

// ValuesAt returns the values for keys in order. Missing keys yield nil.
func (m *Map) ValuesAt(keys ...any) []any {
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = m.Value(k)
	}
	return out
}

// Has reports whether key is present.
func (m *Map) Has(key any) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores value under key, converting nested mappings to *Map.
func (m *Map) Set(key, value any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	m.values[NormalizeKey(key)] = convertValue(value)
}

// Delete removes key and returns the value it held, if any.
func (m *Map) Delete(key any) any {
	if m == nil || m.values == nil {
		return nil
	}
	k := NormalizeKey(key)
	v := m.values[k]
	delete(m.values, k)
	return v
}

// Clear removes every entry.
func (m *Map) Clear() {
	m.values = make(map[string]any)
}

// Update writes every entry of other into m, other taking precedence.
// other may be a *Map or any map kind; anything else is ignored.
// It returns m for chaining.
func (m *Map) Update(other any) *Map {
	eachEntry(other, func(k string, v any) {
		m.Set(k, v)
	})
	return m
}

// Merge returns a copy of m updated with other. m is left untouched.
func (m *Map) Merge(other any) *Map {
	return m.Duplicate().Update(other)
}

// Duplicate returns a copy of m that shares no nested maps with it.
func (m *Map) Duplicate() *Map {
	dup := New()
	if m == nil {
		return dup
	}
	for k, v := range m.values {
		dup.values[k] = convertValue(v)
	}
	return dup
}

// Keys returns the canonical keys in sorted order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(m.values))
}

// All iterates over entries in sorted key order.
func (m *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range m.Keys() {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// ToPlainMap materializes m as nested map[string]any and []any values.
func (m *Map) ToPlainMap() map[string]any {
	if m == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(m.values))
	for k, v := range m.values {
		out[k] = plainValue(v)
	}
	return out
}

// Equal reports whether m and other hold the same canonical content.
// other may be a *Map or any map kind.
func (m *Map) Equal(other any) bool {
	if !isMapShaped(other) {
		return false
	}
	return ValuesEqual(m, other)
}
