package umap

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ToMap collects all entries into a built-in map[K]V.
func (m *Map[K, V]) ToMap() map[K]V {
	a := make(map[K]V, m.Size())
	m.Range(func(key K, value V) bool {
		a[key] = value
		return true
	})
	return a
}

// FromMap stores every pair of source into the map, overwriting values of
// keys that are already present.
func (m *Map[K, V]) FromMap(source map[K]V) {
	for k, v := range source {
		*m.Ref(k) = v
	}
}

// String implements fmt.Stringer.
func (m *Map[K, V]) String() string {
	return strings.Replace(fmt.Sprint(m.ToMap()), "map[", "Map[", 1)
}

// MarshalJSON encodes the map as a JSON object. K is subject to the same
// key constraints as a built-in map passed to json.Marshal.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToMap())
}

// UnmarshalJSON decodes a JSON object into the map, overwriting values of
// keys that are already present.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	var a map[K]V
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	m.FromMap(a)
	return nil
}

// DumpValues streams the contained values to w in traversal order, each
// followed by a space. It is a diagnostic aid; the output carries no
// delimiter contract and is not meant to be parsed.
func (m *Map[K, V]) DumpValues(w io.Writer) error {
	if m.sentinel == nil {
		return nil
	}
	for n := m.sentinel.next; n != m.sentinel; n = n.next {
		if _, err := fmt.Fprintf(w, "%v ", n.value); err != nil {
			return err
		}
	}
	return nil
}
