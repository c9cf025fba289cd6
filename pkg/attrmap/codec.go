package attrmap

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the plain form of m.
func (m *Map) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToPlainMap())
}

// UnmarshalJSON replaces the content of m with the decoded object.
func (m *Map) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Clear()
	m.Update(raw)
	return nil
}

// MarshalYAML encodes the plain form of m.
func (m *Map) MarshalYAML() (any, error) {
	return m.ToPlainMap(), nil
}

// UnmarshalYAML replaces the content of m with the decoded mapping.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	m.Clear()
	m.Update(raw)
	return nil
}
