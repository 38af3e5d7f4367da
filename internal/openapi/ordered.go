package openapi

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Map is a string-keyed mapping that remembers insertion order. yaml.v3 sorts
// plain Go maps on output, so every dynamic mapping in a Document (paths,
// schemas, properties, reusable responses) goes through Map instead.
type Map[V any] struct {
	keys   []string
	values map[string]V
}

// NewMap returns an empty ordered mapping.
func NewMap[V any]() *Map[V] {
	return &Map[V]{values: make(map[string]V)}
}

// Set stores value under key. A new key is appended; an existing key keeps its
// original position and has its value replaced, so colliding writers follow
// last-write-wins without reordering the document.
func (m *Map[V]) Set(key string, value V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Len returns the number of entries.
func (m *Map[V]) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order.
func (m *Map[V]) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// MarshalYAML renders the mapping as a YAML mapping node with entries in
// insertion order. An empty Map renders as {}.
func (m *Map[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range m.keys {
		keyNode := &yaml.Node{}
		keyNode.SetString(key)
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(m.values[key]); err != nil {
			return nil, fmt.Errorf("encode entry %q: %w", key, err)
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}
