package patricia

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type jsonEntry[K, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// MarshalJSON encodes the trie as an array of {"key": ..., "value": ...} objects in
// key order.
func (t *Trie[K, V]) MarshalJSON() ([]byte, error) {
	items := make([]jsonEntry[K, V], 0, t.length)

	for k, v := range t.All() {
		items = append(items, jsonEntry[K, V]{Key: k, Value: v})
	}

	return json.Marshal(items)
}

// UnmarshalJSON replaces the contents of the trie with the decoded entries.
func (t *Trie[K, V]) UnmarshalJSON(data []byte) error {
	var items []jsonEntry[K, V]

	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("cannot decode trie entries: %w", err)
	}

	t.Clear()

	for _, item := range items {
		t.Insert(item.Key, item.Value)
	}

	return nil
}

// MarshalYAML encodes the trie as a mapping in key order.
func (t *Trie[K, V]) MarshalYAML() (interface{}, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for k, v := range t.All() {
		var key, value yaml.Node

		if err := key.Encode(k); err != nil {
			return nil, fmt.Errorf("cannot encode key %v: %w", k, err)
		}
		if err := value.Encode(v); err != nil {
			return nil, fmt.Errorf("cannot encode value of key %v: %w", k, err)
		}

		mapping.Content = append(mapping.Content, &key, &value)
	}

	return mapping, nil
}

// UnmarshalYAML replaces the contents of the trie with a decoded mapping.
func (t *Trie[K, V]) UnmarshalYAML(value *yaml.Node) error {
	var items []jsonEntry[K, V]

	switch {
	case value.Kind == yaml.ScalarNode && value.Tag == "!!null":
	case value.Kind == yaml.MappingNode:
		for i := 0; i+1 < len(value.Content); i += 2 {
			var item jsonEntry[K, V]

			if err := value.Content[i].Decode(&item.Key); err != nil {
				return fmt.Errorf("cannot decode key at line %d: %w", value.Content[i].Line, err)
			}
			if err := value.Content[i+1].Decode(&item.Value); err != nil {
				return fmt.Errorf("cannot decode value at line %d: %w", value.Content[i+1].Line, err)
			}

			items = append(items, item)
		}
	default:
		return fmt.Errorf("cannot decode a trie from a YAML node of kind %d at line %d", value.Kind, value.Line)
	}

	t.Clear()

	for _, item := range items {
		t.Insert(item.Key, item.Value)
	}

	return nil
}
