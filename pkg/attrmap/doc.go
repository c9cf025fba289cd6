// Package attrmap provides Map, the attribute container behind every session.
//
// A Map addresses its entries through a single canonical string key. Keys may
// be given in either of two cosmetically different forms, a Symbol or a plain
// string, and both resolve to the same entry:
//
//	m := attrmap.New()
//	m.Set(attrmap.Symbol("user"), "bob")
//	m.Value("user") // "bob"
//
// Every path into the map (Set, Update, Merge, Delete, Has, Get, Fetch,
// ValuesAt) funnels through the same key normalization, so callers never
// need to care which form they hold.
//
// Values that are themselves mappings, or sequences containing mappings, are
// converted to *Map on write. Indifferent access therefore holds at every
// depth:
//
//	m.Set("prefs", map[string]any{"theme": "dark"})
//	m.Value("prefs").(*attrmap.Map).Value(attrmap.Symbol("theme")) // "dark"
//
// # Copies and equality
//
// Duplicate returns an independent copy: the conversion rules are re-applied
// to every value, so mutating nested maps of the copy never reaches the
// original. ToPlainMap materializes nested map[string]any / []any values for
// serialization. Equal and ValuesEqual compare canonical content regardless
// of the key form originally used.
//
// # Missing keys
//
// A Map never panics or errors on a missing key. Get reports presence through
// its second return value, Value returns nil.
//
// # Serialization
//
// Map implements json.Marshaler/json.Unmarshaler and yaml.Marshaler/
// yaml.Unmarshaler. JSON numbers decode as float64, YAML integers as int.
//
// A Map is not safe for concurrent use. Sessions hand one Map to one request.
package attrmap
